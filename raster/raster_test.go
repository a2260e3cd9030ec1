package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/benoitkugler/bezedit/editor"
	"github.com/benoitkugler/bezedit/scene"
)

func saveToPngFile(filePath string, m image.Image) error {
	var b bytes.Buffer
	if err := EncodePNG(&b, m); err != nil {
		return err
	}
	return os.WriteFile(filePath, b.Bytes(), os.ModePerm)
}

func TestRasterDefaultFrame(t *testing.T) {
	e := editor.New(editor.DefaultLayout())
	img := RasterCanvasToImage(e.Canvas(), e.Style())

	if b := img.Bounds(); b.Dx() != 1200 || b.Dy() != 800 {
		t.Fatalf("unexpected bounds %v", b)
	}
	for _, test := range []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, scene.DefaultStyle.Background},
		{1150, 50, scene.DefaultStyle.Background},
		{100, 100, scene.DefaultStyle.Marker}, // first point
		{500, 700, scene.DefaultStyle.Marker}, // last point
	} {
		if got := img.RGBAAt(test.x, test.y); got != test.want {
			t.Errorf("pixel (%d, %d): expected %v, got %v", test.x, test.y, test.want, got)
		}
	}

	if err := saveToPngFile(filepath.Join(t.TempDir(), "frame.png"), img); err != nil {
		t.Fatal(err)
	}
}

func TestRasterFollowsDrag(t *testing.T) {
	e := editor.New(editor.DefaultLayout())
	e.PointerDown(100, 100)
	e.PointerMove(200, 600)
	e.PointerUp(200, 600)

	img := RasterCanvasToImage(e.Canvas(), e.Style())
	if got := img.RGBAAt(200, 600); got != scene.DefaultStyle.Marker {
		t.Errorf("expected a marker at the new position, got %v", got)
	}
	if got := img.RGBAAt(100, 100); got == scene.DefaultStyle.Marker {
		t.Errorf("the old marker position must be repainted")
	}
}

func TestRasterDegenerateCurves(t *testing.T) {
	e := editor.New(editor.DefaultLayout(), editor.WithPrecision(2))
	img := RasterCanvasToImage(e.Canvas(), e.Style())
	var b bytes.Buffer
	if err := EncodePNG(&b, img); err != nil {
		t.Fatal(err)
	}
	if _, err := png.Decode(&b); err != nil {
		t.Fatal(err)
	}
}
