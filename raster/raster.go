// Implements a raster backend to render frames,
// by wrapping rasterx.
package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/benoitkugler/bezedit/scene"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
)

var _ scene.Driver = (*Renderer)(nil) // assert interface conformance

// Renderer paints into an RGBA image.
type Renderer struct {
	img    *image.RGBA
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instance
}

// filler adapts rasterx.Filler to scene.Filler
type filler struct{ *rasterx.Filler }

// stroker adapts rasterx.Dasher to scene.Stroker
type stroker struct{ *rasterx.Dasher }

// NewRenderer returns a renderer drawing into `img`,
// using a rasterx.ScannerGV.
func NewRenderer(img *image.RGBA) *Renderer {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	return &Renderer{
		img:    img,
		dasher: rasterx.NewDasher(w, h, scanner),
		filler: rasterx.NewFiller(w, h, scanner),
	}
}

// RasterCanvasToImage renders the display list `c`
// into a new image of the size given by `st`.
func RasterCanvasToImage(c *scene.Canvas, st scene.Style) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, st.Width, st.Height))
	c.Draw(NewRenderer(img), st)
	return img
}

// EncodePNG writes `img` to `w` in PNG format.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

func (rd *Renderer) Erase(bg color.Color) {
	draw.Draw(rd.img, rd.img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
}

func (rd *Renderer) SetupDrawers(willFill, willStroke bool) (f scene.Filler, s scene.Stroker) {
	if willFill {
		f = filler{rd.filler}
	}
	if willStroke {
		s = stroker{rd.dasher}
	}
	return f, s
}

func (f filler) SetColor(c color.Color) {
	f.Filler.SetColor(c)
}

func (s stroker) SetColor(c color.Color) {
	s.Dasher.SetColor(c)
}

var (
	joinToJoin = [...]rasterx.JoinMode{
		scene.Round: rasterx.Round,
		scene.Bevel: rasterx.Bevel,
		scene.Miter: rasterx.Miter,
	}

	capToFunc = [...]rasterx.CapFunc{
		scene.ButtCap:   rasterx.ButtCap,
		scene.SquareCap: rasterx.SquareCap,
		scene.RoundCap:  rasterx.RoundCap,
	}
)

func (s stroker) SetStrokeOptions(options scene.StrokeOptions) {
	capFunc := capToFunc[options.Cap]
	s.Dasher.SetStroke(options.LineWidth, options.MiterLimit, capFunc, capFunc,
		rasterx.RoundGap, joinToJoin[options.Join], nil, 0)
}
