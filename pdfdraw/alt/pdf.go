// Package alt is a second PDF backend, emitting the content stream
// operators of github.com/benoitkugler/pdf directly.
package alt

import (
	"image/color"

	"github.com/benoitkugler/bezedit/scene"
	"github.com/benoitkugler/pdf/contentstream"
	"github.com/benoitkugler/pdf/model"
	"golang.org/x/image/math/fixed"
)

var (
	_ scene.Driver  = Renderer{}
	_ scene.Filler  = (*drawer)(nil)
	_ scene.Stroker = (*drawer)(nil)
)

// Renderer paints into a page content stream of the given size.
type Renderer struct {
	app  *contentstream.Appearance
	w, h float64
}

// drawer is both the filler and the stroker: only the
// painting operator differs.
type drawer struct {
	app     *contentstream.Appearance
	stroke  bool
	nonZero bool
}

// PDF line cap and line join styles
var (
	pdfCaps  = map[scene.CapMode]uint8{scene.ButtCap: 0, scene.RoundCap: 1, scene.SquareCap: 2}
	pdfJoins = map[scene.JoinMode]uint8{scene.Miter: 0, scene.Round: 1, scene.Bevel: 2}
)

// RenderCanvasToPDF renders `c` in a one page document,
// written to the file `pdfName`.
func RenderCanvasToPDF(c *scene.Canvas, st scene.Style, pdfName string) error {
	w, h := float64(st.Width), float64(st.Height)
	app := contentstream.NewAppearance(w, h)
	// canvas y axis points down
	app.Ops(contentstream.OpSave{}, contentstream.OpConcat{Matrix: model.Matrix{1, 0, 0, -1, 0, h}})
	c.Draw(NewRenderer(&app, w, h), st)
	app.Ops(contentstream.OpRestore{})

	var page model.PageObject
	app.ApplyToPageObject(&page, true)
	var doc model.Document
	doc.Catalog.Pages.Kids = append(doc.Catalog.Pages.Kids, &page)
	if err := doc.WriteFile(pdfName, nil); err != nil {
		return err
	}
	scene.Logger().Debug("pdf frame written", "backend", "alt", "file", pdfName, "items", c.Len())
	return nil
}

// NewRenderer returns a driver appending to `app`, whose page is `w` x `h`.
func NewRenderer(app *contentstream.Appearance, w, h float64) Renderer {
	return Renderer{app: app, w: w, h: h}
}

func (r Renderer) Erase(bg color.Color) {
	r.app.SetColorFill(bg)
	r.app.Ops(
		contentstream.OpMoveTo{},
		contentstream.OpLineTo{X: r.w},
		contentstream.OpLineTo{X: r.w, Y: r.h},
		contentstream.OpLineTo{Y: r.h},
		contentstream.OpClosePath{},
		contentstream.OpFill{},
	)
}

func (r Renderer) SetupDrawers(willFill, willStroke bool) (scene.Filler, scene.Stroker) {
	var (
		f scene.Filler
		s scene.Stroker
	)
	if willFill {
		f = &drawer{app: r.app, nonZero: true}
	}
	if willStroke {
		s = &drawer{app: r.app, stroke: true}
	}
	return f, s
}

func unfix(v fixed.Int26_6) float64 { return float64(v) / 64 }

func (d *drawer) Clear() {}

func (d *drawer) Start(a fixed.Point26_6) {
	d.app.Ops(contentstream.OpMoveTo{X: unfix(a.X), Y: unfix(a.Y)})
}

func (d *drawer) Line(b fixed.Point26_6) {
	d.app.Ops(contentstream.OpLineTo{X: unfix(b.X), Y: unfix(b.Y)})
}

func (d *drawer) CubeBezier(b, c, e fixed.Point26_6) {
	d.app.Ops(contentstream.OpCubicTo{
		X1: unfix(b.X), Y1: unfix(b.Y),
		X2: unfix(c.X), Y2: unfix(c.Y),
		X3: unfix(e.X), Y3: unfix(e.Y),
	})
}

func (d *drawer) Stop(closeLoop bool) {
	if closeLoop {
		d.app.Ops(contentstream.OpClosePath{})
	}
}

func (d *drawer) SetColor(c color.Color) {
	if d.stroke {
		d.app.SetColorStroke(c)
	} else {
		d.app.SetColorFill(c)
	}
}

func (d *drawer) SetWinding(useNonZeroWinding bool) { d.nonZero = useNonZeroWinding }

func (d *drawer) SetStrokeOptions(options scene.StrokeOptions) {
	d.app.Ops(
		contentstream.OpSetLineWidth{W: unfix(options.LineWidth)},
		contentstream.OpSetLineCap{Style: pdfCaps[options.Cap]},
		contentstream.OpSetLineJoin{Style: pdfJoins[options.Join]},
		contentstream.OpSetMiterLimit{Limit: unfix(options.MiterLimit)},
	)
}

func (d *drawer) Draw() {
	switch {
	case d.stroke:
		d.app.Ops(contentstream.OpStroke{})
	case d.nonZero:
		d.app.Ops(contentstream.OpFill{})
	default:
		d.app.Ops(contentstream.OpEOFill{})
	}
}
