package scene

import (
	"context"
	"log/slog"

	"github.com/benoitkugler/bezedit/bezpath"
)

type itemKind uint8

const (
	helperLineKind itemKind = iota
	curveKind
	markerKind
	strokeKind
)

// Item is one primitive of the display list: HelperLine, Curve, Marker or Stroke.
type Item interface {
	kind() itemKind
}

// HelperLine joins an end point to its adjacent control point.
type HelperLine struct {
	From, To bezpath.Point
}

// Curve is the connected polyline sampled from one segment.
type Curve []bezpath.Point

// Marker is the filled disk drawn on every point.
type Marker struct {
	Center bezpath.Point
	Radius float64
}

// Stroke is a freehand trace drawn over the chain.
type Stroke []bezpath.Point

func (HelperLine) kind() itemKind { return helperLineKind }
func (Curve) kind() itemKind      { return curveKind }
func (Marker) kind() itemKind     { return markerKind }
func (Stroke) kind() itemKind     { return strokeKind }

// Stats counts the items of a canvas, by kind.
type Stats struct {
	HelperLines, Curves, Markers, Strokes int
}

// Canvas is a retained list of drawing items.
// Items are painted in insertion order.
type Canvas struct {
	items []Item
}

// Clear removes every item.
func (c *Canvas) Clear() {
	c.items = c.items[:0]
}

func (c *Canvas) add(it Item) {
	c.items = append(c.items, it)
}

// Len returns the number of items.
func (c *Canvas) Len() int { return len(c.items) }

// Items returns a copy of the display list.
func (c *Canvas) Items() []Item {
	return append([]Item(nil), c.items...)
}

func (c *Canvas) Count() Stats {
	var out Stats
	for _, it := range c.items {
		switch it.kind() {
		case helperLineKind:
			out.HelperLines++
		case curveKind:
			out.Curves++
		case markerKind:
			out.Markers++
		case strokeKind:
			out.Strokes++
		}
	}
	return out
}

// Repaint rebuilds the whole content of `c` from the current points:
// for each segment, its two helper lines and its sampled curve,
// then one marker per point.
func Repaint(c *Canvas, pts *bezpath.Points, precision float64, st Style) {
	c.Clear()
	for i := 0; i < pts.Segments(); i++ {
		s := pts.Segment(i)
		c.add(HelperLine{From: s[0], To: s[1]})
		c.add(HelperLine{From: s[2], To: s[3]})
		c.add(Curve(pts.SampleSegment(i, precision)))
	}
	for i := 0; i < pts.Len(); i++ {
		c.add(Marker{Center: pts.At(i), Radius: st.Radius})
	}

	l := Logger()
	if l.Enabled(context.Background(), slog.LevelDebug) {
		stats := c.Count()
		l.Debug("repaint", "precision", precision,
			"helpers", stats.HelperLines, "curves", stats.Curves, "markers", stats.Markers)
	}
}

// Overlay adds the freehand strokes on top of the current content.
// Empty strokes are skipped.
func Overlay(c *Canvas, strokes []Stroke) {
	for _, s := range strokes {
		if len(s) == 0 {
			continue
		}
		c.add(append(Stroke(nil), s...))
	}
}
