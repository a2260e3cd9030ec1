package ggraster

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/benoitkugler/bezedit/editor"
	"github.com/benoitkugler/bezedit/scene"
	"github.com/gogpu/gg"
)

func near(a, b color.Color) bool {
	r1, g1, b1, a1 := a.RGBA()
	r2, g2, b2, a2 := b.RGBA()
	d := func(x, y uint32) bool {
		if x > y {
			x, y = y, x
		}
		return y-x <= 3*0x101
	}
	return d(r1, r2) && d(g1, g2) && d(b1, b2) && d(a1, a2)
}

func TestRenderCanvas(t *testing.T) {
	e := editor.New(editor.DefaultLayout())
	dc, err := RenderCanvas(e.Canvas(), e.Style())
	if err != nil {
		t.Fatal(err)
	}
	defer dc.Close()

	if dc.Width() != 1200 || dc.Height() != 800 {
		t.Fatalf("unexpected size %dx%d", dc.Width(), dc.Height())
	}
	img := dc.Image()
	for _, test := range []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, scene.DefaultStyle.Background},
		{1150, 50, scene.DefaultStyle.Background},
		{100, 100, scene.DefaultStyle.Marker},
		{1000, 500, scene.DefaultStyle.Marker},
	} {
		if got := img.At(test.x, test.y); !near(got, test.want) {
			t.Errorf("pixel (%d, %d): expected %v, got %v", test.x, test.y, test.want, got)
		}
	}

	f, err := os.Create(filepath.Join(t.TempDir(), "frame_gg.png"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := dc.EncodePNG(f); err != nil {
		t.Fatal(err)
	}
}

func TestRendererErr(t *testing.T) {
	// degenerate curves are skipped: no painting error
	e := editor.New(editor.DefaultLayout(), editor.WithPrecision(2))
	dc := gg.NewContext(e.Style().Width, e.Style().Height)
	defer dc.Close()
	rd := NewRenderer(dc)
	e.Canvas().Draw(rd, e.Style())
	if err := rd.Err(); err != nil {
		t.Fatalf("unexpected error %s", err)
	}

	// only the first error is kept
	first, second := errors.New("first"), errors.New("second")
	rd.setErr(nil)
	rd.setErr(first)
	rd.setErr(second)
	if err := rd.Err(); err != first {
		t.Errorf("expected %v, got %v", first, err)
	}
}
