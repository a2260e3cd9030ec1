// Implements a PDF backend to render frames,
// by wrapping github.com/jung-kurt/gofpdf.
package pdfdraw

import (
	"image/color"
	"io"

	"github.com/benoitkugler/bezedit/scene"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/math/fixed"
)

// assert interface conformance
var (
	_ scene.Driver  = Renderer{}
	_ scene.Filler  = (*filler)(nil)
	_ scene.Stroker = (*stroker)(nil)
)

type Renderer struct {
	pdf *gofpdf.Fpdf
}

// implements the common path commands,
// shared by the filler and the stroker
type pather struct {
	pdf *gofpdf.Fpdf
}

// implements the filling operation
type filler struct {
	pather
	useNonZeroWinding bool
}

// implements the stroking operation
type stroker struct {
	pather
}

// NewRenderer return a renderer which will
// write to the current page of `pdf`.
func NewRenderer(pdf *gofpdf.Fpdf) Renderer {
	return Renderer{pdf: pdf}
}

// RenderCanvasToPDF writes a one page document, of the size
// given by `st` (one unit is one point), to `w`.
func RenderCanvasToPDF(c *scene.Canvas, st scene.Style, w io.Writer) error {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: float64(st.Width), Ht: float64(st.Height)},
	})
	pdf.AddPage()
	c.Draw(NewRenderer(pdf), st)
	if err := pdf.Output(w); err != nil {
		return err
	}
	scene.Logger().Debug("pdf frame written", "backend", "gofpdf", "items", c.Len())
	return nil
}

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

func rgb(c color.Color) (int, int, int) {
	r, g, b, _ := c.RGBA()
	return int(r >> 8), int(g >> 8), int(b >> 8)
}

func (r Renderer) Erase(bg color.Color) {
	w, h := r.pdf.GetPageSize()
	r.pdf.SetFillColor(rgb(bg))
	r.pdf.Rect(0, 0, w, h, "F")
}

func (r Renderer) SetupDrawers(willFill, willStroke bool) (f scene.Filler, s scene.Stroker) {
	if willFill {
		f = &filler{pather: pather{pdf: r.pdf}, useNonZeroWinding: true}
	}
	if willStroke {
		s = &stroker{pather: pather{pdf: r.pdf}}
	}
	return f, s
}

func (p *pather) Clear() {}

func (p *pather) Start(a fixed.Point26_6) {
	p.pdf.MoveTo(fixedTof(a))
}

func (p *pather) Line(b fixed.Point26_6) {
	p.pdf.LineTo(fixedTof(b))
}

func (p *pather) CubeBezier(b fixed.Point26_6, c fixed.Point26_6, d fixed.Point26_6) {
	cx0, cy0 := fixedTof(b)
	cx1, cy1 := fixedTof(c)
	x, y := fixedTof(d)
	p.pdf.CurveBezierCubicTo(cx0, cy0, cx1, cy1, x, y)
}

func (p *pather) Stop(closeLoop bool) {
	if closeLoop {
		p.pdf.ClosePath()
	}
}

func (f *filler) SetColor(c color.Color) {
	f.pdf.SetFillColor(rgb(c))
}

func (f *filler) Draw() {
	styleStr := "F*"
	if f.useNonZeroWinding {
		styleStr = "F"
	}
	f.pdf.DrawPath(styleStr)
}

func (f *filler) SetWinding(useNonZeroWinding bool) {
	f.useNonZeroWinding = useNonZeroWinding
}

func (s *stroker) SetColor(c color.Color) {
	s.pdf.SetDrawColor(rgb(c))
}

func (s *stroker) SetStrokeOptions(options scene.StrokeOptions) {
	s.pdf.SetLineWidth(float64(options.LineWidth) / 64)
	switch options.Cap {
	case scene.ButtCap:
		s.pdf.SetLineCapStyle("butt")
	case scene.RoundCap:
		s.pdf.SetLineCapStyle("round")
	case scene.SquareCap:
		s.pdf.SetLineCapStyle("square")
	}
	switch options.Join {
	case scene.Bevel:
		s.pdf.SetLineJoinStyle("bevel")
	case scene.Miter:
		s.pdf.SetLineJoinStyle("miter")
	case scene.Round:
		s.pdf.SetLineJoinStyle("round")
	}
}

func (s *stroker) Draw() {
	s.pdf.DrawPath("D")
}
