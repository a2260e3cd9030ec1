package scene

import (
	"image/color"

	"github.com/benoitkugler/bezedit/bezpath"
	"golang.org/x/image/math/fixed"
)

// Given a display list, implements how to
// draw it on a surface.
// This requires a driver implementing the actual draw operations,
// such as a rasterizer to output .png images or a pdf writer.

// Drawer knows how to do the actual draw operations
// but doesn't need any knowledge of the editor.
// Points are already converted to fixed coordinates.
type Drawer interface {
	// Clear must reset the internal state (used before starting a new path painting)
	Clear()

	// Start starts a new path at the given point.
	Start(a fixed.Point26_6)

	// Line Adds a line for the current point to `b`
	Line(b fixed.Point26_6)

	// CubeBezier adds a cubic bezier curve to the path
	CubeBezier(b, c, d fixed.Point26_6)

	// Closes the path to the start point if `closeLoop` is true
	Stop(closeLoop bool)

	// SetColor set the color for the current path
	SetColor(c color.Color)

	// Draw fills or strokes the accumulated path using the current settings
	Draw()
}

type Filler interface {
	Drawer

	// Decide to use or not the NonZeroWinding rule for the current path
	SetWinding(useNonZeroWinding bool)
}

type Stroker interface {
	Drawer

	// Parametrize the stroking style for the current path
	SetStrokeOptions(options StrokeOptions)
}

type Driver interface {
	// Erase paints the whole surface with `bg`.
	// It is called once, before any path.
	Erase(bg color.Color)

	// SetupDrawers returns the backend painters, and
	// will be called at the begining of every path.
	// If the `willXXX` boolean is false, the returned drawer should be nil
	// to avoid useless operations.
	SetupDrawers(willFill, willStroke bool) (Filler, Stroker)
}

// kappa is the distance from an on-curve point to its control point
// for a cubic approximation of a quarter of the unit circle
const kappa = 0.5522847498307936

// circle adds a closed path approximating the circle (center, r).
func circle(d Drawer, center bezpath.Point, r float64) {
	cx, cy := center.X, center.Y
	k := kappa * r
	pt := func(x, y float64) fixed.Point26_6 { return bezpath.Pt(x, y).Fixed() }
	d.Start(pt(cx+r, cy))
	d.CubeBezier(pt(cx+r, cy+k), pt(cx+k, cy+r), pt(cx, cy+r))
	d.CubeBezier(pt(cx-k, cy+r), pt(cx-r, cy+k), pt(cx-r, cy))
	d.CubeBezier(pt(cx-r, cy-k), pt(cx-k, cy-r), pt(cx, cy-r))
	d.CubeBezier(pt(cx+k, cy-r), pt(cx+r, cy-k), pt(cx+r, cy))
	d.Stop(true)
}

func strokePolyline(s Stroker, pts []bezpath.Point, opts StrokeOptions, c color.Color) {
	s.Clear()
	s.SetStrokeOptions(opts)
	s.Start(pts[0].Fixed())
	for _, p := range pts[1:] {
		s.Line(p.Fixed())
	}
	s.Stop(false)
	s.SetColor(c)
	s.Draw()
}

func fillCircle(d Driver, center bezpath.Point, r float64, c color.Color) {
	filler, _ := d.SetupDrawers(true, false)
	filler.Clear()
	filler.SetWinding(true)
	circle(filler, center, r)
	filler.SetColor(c)
	filler.Draw()
}

// Draw replays the display list into the driver `d`:
// the background first, then every item in order.
// Curves with less than two vertices have nothing to stroke and are skipped.
// A freehand stroke of one vertex is painted as a dot.
func (c *Canvas) Draw(d Driver, st Style) {
	d.Erase(st.Background)
	for _, it := range c.items {
		switch it := it.(type) {
		case HelperLine:
			_, stroker := d.SetupDrawers(false, true)
			strokePolyline(stroker, []bezpath.Point{it.From, it.To}, st.helperStroke(), st.Helper)
		case Curve:
			if len(it) < 2 {
				continue
			}
			_, stroker := d.SetupDrawers(false, true)
			strokePolyline(stroker, it, st.curveStroke(), st.Curve)
		case Marker:
			fillCircle(d, it.Center, it.Radius, st.Marker)
		case Stroke:
			switch len(it) {
			case 0:
				continue
			case 1:
				fillCircle(d, it[0], st.StrokeRadius, st.Stroke)
				continue
			}
			_, stroker := d.SetupDrawers(false, true)
			strokePolyline(stroker, it, st.freehandStroke(), st.Stroke)
		}
	}
}
