package bezpath

import (
	"errors"
	"fmt"
	"strings"
)

type pathCommand uint8

const (
	pathMoveTo pathCommand = iota
	pathLineTo
	pathCubicTo
	pathClose
)

// Operation groups the path commands understood by the editor.
type Operation interface {
	command() pathCommand
}

type MoveTo Point

type LineTo Point

type CubicTo [3]Point

type Close struct{}

func (MoveTo) command() pathCommand  { return pathMoveTo }
func (LineTo) command() pathCommand  { return pathLineTo }
func (CubicTo) command() pathCommand { return pathCubicTo }
func (Close) command() pathCommand   { return pathClose }

// Path describes a sequence of basic SVG operations.
type Path []Operation

// ToSVGPath returns a string representation of the path
func (p Path) ToSVGPath() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = fmt.Sprintf("M%4.3f,%4.3f", op.X, op.Y)
		case LineTo:
			chunks[i] = fmt.Sprintf("L%4.3f,%4.3f", op.X, op.Y)
		case CubicTo:
			chunks[i] = fmt.Sprintf("C%4.3f,%4.3f,%4.3f,%4.3f,%4.3f,%4.3f",
				op[0].X, op[0].Y, op[1].X, op[1].Y, op[2].X, op[2].Y)
		case Close:
			chunks[i] = "Z"
		}
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}

// Start starts a new curve at the given point.
func (p *Path) Start(a Point) {
	*p = append(*p, MoveTo(a))
}

// Line adds a linear segment to the current curve.
func (p *Path) Line(b Point) {
	*p = append(*p, LineTo(b))
}

// CubeBezier adds a cubic segment to the current curve.
func (p *Path) CubeBezier(b, c, d Point) {
	*p = append(*p, CubicTo{b, c, d})
}

// Stop joins the ends of the path
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}

var errSubpath = errors.New("bezpath: only one sub-path is supported")

// lerp3 returns the control points of the cubic curve
// tracing the segment [a, b].
func lerp3(a, b Point) [3]Point {
	return [3]Point{
		{X: a.X + (b.X-a.X)/3, Y: a.Y + (b.Y-a.Y)/3},
		{X: a.X + 2*(b.X-a.X)/3, Y: a.Y + 2*(b.Y-a.Y)/3},
		b,
	}
}

// ToPoints converts the path into a chain of cubic segments.
// The path must start with a MoveTo and contain no other one.
// Lines (and a closing segment back to the start) are
// expressed as cubic curves with aligned control points.
func (p Path) ToPoints() (*Points, error) {
	if len(p) == 0 {
		return nil, ErrEmpty
	}
	start, ok := p[0].(MoveTo)
	if !ok {
		return nil, errors.New("bezpath: path must start with a move")
	}
	current := Point(start)
	out := []Point{current}
	for _, op := range p[1:] {
		switch op := op.(type) {
		case MoveTo:
			return nil, errSubpath
		case LineTo:
			l := lerp3(current, Point(op))
			out = append(out, l[:]...)
			current = Point(op)
		case CubicTo:
			out = append(out, op[:]...)
			current = op[2]
		case Close:
			if current != Point(start) {
				l := lerp3(current, Point(start))
				out = append(out, l[:]...)
				current = Point(start)
			}
		}
	}
	return NewPoints(out)
}
