package bezpath

import (
	"errors"
	"fmt"
)

var (
	ErrEmpty        = errors.New("bezpath: empty point sequence")
	ErrSegmentation = errors.New("bezpath: point count is not 1+3k")
)

// Points is the ordered sequence of control points.
// Segment i is made of the points 3i, 3i+1, 3i+2 and 3i+3, so that
// consecutive segments share their end point.
// Its length is fixed at creation and is always 1+3k.
type Points struct {
	pts []Point
}

// NewPoints validates the length of `pts` and returns
// a sequence holding a copy of it.
func NewPoints(pts []Point) (*Points, error) {
	if len(pts) == 0 {
		return nil, ErrEmpty
	}
	if (len(pts)-1)%3 != 0 {
		return nil, fmt.Errorf("%w (got %d points)", ErrSegmentation, len(pts))
	}
	return &Points{pts: append([]Point(nil), pts...)}, nil
}

// Len returns the number of points.
func (p *Points) Len() int { return len(p.pts) }

// At returns the point at index i.
func (p *Points) At(i int) Point { return p.pts[i] }

// All returns a copy of the sequence.
func (p *Points) All() []Point { return append([]Point(nil), p.pts...) }

// Segments returns the number of cubic segments.
func (p *Points) Segments() int { return (len(p.pts) - 1) / 3 }

// Segment returns the four control points of the i-th segment.
func (p *Points) Segment(i int) [4]Point {
	s := p.pts[3*i : 3*i+4]
	return [4]Point{s[0], s[1], s[2], s[3]}
}

// Set overwrites the coordinates of the point at index i.
// An index out of range is a programming error and panics.
func (p *Points) Set(i int, x, y float64) {
	if i < 0 || i >= len(p.pts) {
		panic(fmt.Sprintf("bezpath: point index %d out of range [0, %d)", i, len(p.pts)))
	}
	p.pts[i] = Point{X: x, Y: y}
}

// Path returns the chain as a path: one MoveTo followed
// by one CubicTo per segment.
func (p *Points) Path() Path {
	out := make(Path, 0, 1+p.Segments())
	out.Start(p.pts[0])
	for i := 0; i < p.Segments(); i++ {
		s := p.Segment(i)
		out.CubeBezier(s[1], s[2], s[3])
	}
	return out
}
