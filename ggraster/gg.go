// Implements an alternative raster backend,
// by replaying the frames into a gogpu/gg context.
package ggraster

import (
	"image/color"

	"github.com/benoitkugler/bezedit/scene"
	"github.com/gogpu/gg"
	"golang.org/x/image/math/fixed"
)

var _ scene.Driver = (*Renderer)(nil) // assert interface conformance

// Renderer paints into a gg.Context.
// Since gg reports painting errors but scene.Drawer does not,
// the first error is kept and available with Err.
type Renderer struct {
	dc  *gg.Context
	err error
}

// shared by the filler and the stroker
type pather struct {
	rd *Renderer
}

type filler struct {
	pather
}

type stroker struct {
	pather
}

func NewRenderer(dc *gg.Context) *Renderer {
	return &Renderer{dc: dc}
}

// RenderCanvas renders the display list `c` into a new context
// of the size given by `st`.
func RenderCanvas(c *scene.Canvas, st scene.Style) (*gg.Context, error) {
	dc := gg.NewContext(st.Width, st.Height)
	rd := NewRenderer(dc)
	c.Draw(rd, st)
	if err := rd.Err(); err != nil {
		dc.Close()
		return nil, err
	}
	return dc, nil
}

// Err returns the first error reported by gg.
func (rd *Renderer) Err() error { return rd.err }

func (rd *Renderer) setErr(err error) {
	if rd.err == nil && err != nil {
		rd.err = err
		scene.Logger().Warn("gg painting failed", "err", err)
	}
}

func (rd *Renderer) Erase(bg color.Color) {
	rd.dc.ClearWithColor(gg.FromColor(bg))
}

func (rd *Renderer) SetupDrawers(willFill, willStroke bool) (f scene.Filler, s scene.Stroker) {
	if willFill {
		f = filler{pather{rd}}
	}
	if willStroke {
		s = stroker{pather{rd}}
	}
	return f, s
}

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

func (p pather) Clear() {
	p.rd.dc.ClearPath()
}

func (p pather) Start(a fixed.Point26_6) {
	p.rd.dc.MoveTo(fixedTof(a))
}

func (p pather) Line(b fixed.Point26_6) {
	p.rd.dc.LineTo(fixedTof(b))
}

func (p pather) CubeBezier(b, c, d fixed.Point26_6) {
	cx0, cy0 := fixedTof(b)
	cx1, cy1 := fixedTof(c)
	x, y := fixedTof(d)
	p.rd.dc.CubicTo(cx0, cy0, cx1, cy1, x, y)
}

func (p pather) Stop(closeLoop bool) {
	if closeLoop {
		p.rd.dc.ClosePath()
	}
}

func (p pather) SetColor(c color.Color) {
	p.rd.dc.SetColor(c)
}

func (f filler) SetWinding(useNonZeroWinding bool) {
	if useNonZeroWinding {
		f.rd.dc.SetFillRule(gg.FillRuleNonZero)
	} else {
		f.rd.dc.SetFillRule(gg.FillRuleEvenOdd)
	}
}

func (f filler) Draw() {
	f.rd.setErr(f.rd.dc.Fill())
}

var (
	joinToJoin = [...]gg.LineJoin{
		scene.Round: gg.LineJoinRound,
		scene.Bevel: gg.LineJoinBevel,
		scene.Miter: gg.LineJoinMiter,
	}

	capToCap = [...]gg.LineCap{
		scene.ButtCap:   gg.LineCapButt,
		scene.SquareCap: gg.LineCapSquare,
		scene.RoundCap:  gg.LineCapRound,
	}
)

func (s stroker) SetStrokeOptions(options scene.StrokeOptions) {
	s.rd.dc.SetLineWidth(float64(options.LineWidth) / 64)
	s.rd.dc.SetMiterLimit(float64(options.MiterLimit) / 64)
	s.rd.dc.SetLineCap(capToCap[options.Cap])
	s.rd.dc.SetLineJoin(joinToJoin[options.Join])
}

func (s stroker) Draw() {
	s.rd.setErr(s.rd.dc.Stroke())
}
