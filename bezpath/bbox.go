package bezpath

import "math"

// compute the extent of a chain, used to size the output surfaces

// Rect is an axis aligned rectangle.
type Rect struct {
	Min, Max Point
}

// Union returns the smallest rectangle containing r and s.
func (r Rect) Union(s Rect) Rect {
	return Rect{
		Min: Point{math.Min(r.Min.X, s.Min.X), math.Min(r.Min.Y, s.Min.Y)},
		Max: Point{math.Max(r.Max.X, s.Max.X), math.Max(r.Max.Y, s.Max.Y)},
	}
}

// Grow returns r grown by m on every side (shrunk if m is negative).
func (r Rect) Grow(m float64) Rect {
	return Rect{Min: Point{r.Min.X - m, r.Min.Y - m}, Max: Point{r.Max.X + m, r.Max.Y + m}}
}

// X' = (3*p3-9*p2+9*p1-3*p0)t^2 + (6*p2-12*p1+6*p0)t + (3*p1-3*p0)
// taken as aX^2 + bX + c  a,b and c are:
func cubicDerivative(p0, p1, p2, p3 float64) (a, b, c float64) {
	return 3*p3 - 9*p2 + 9*p1 - 3*p0, 6*p2 - 12*p1 + 6*p0, 3*p1 - 3*p0
}

func quadraticRoots(a, b, c float64) []float64 {
	if a == 0 {
		if b == 0 {
			return nil
		}
		return []float64{-c / b}
	}
	d := b*b - 4*a*c
	if d < 0 {
		return nil
	}
	if d == 0 {
		return []float64{-b / (2 * a)}
	}
	sq := math.Sqrt(d)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}

// CubicBounds returns the tight bounding box of the
// curve (a, b, c, d), using the roots of its derivative.
func CubicBounds(a, b, c, d Point) Rect {
	aX, bX, cX := cubicDerivative(a.X, b.X, c.X, d.X)
	aY, bY, cY := cubicDerivative(a.Y, b.Y, c.Y, d.Y)
	ts := append(quadraticRoots(aX, bX, cX), quadraticRoots(aY, bY, cY)...)

	out := Rect{Min: a, Max: a}.Union(Rect{Min: d, Max: d})
	for _, t := range ts {
		if !(0 <= t && t <= 1) { // filter invalid value
			continue
		}
		p := Eval(a, b, c, d, t)
		out = out.Union(Rect{Min: p, Max: p})
	}
	return out
}

// Bounds returns the extent of the chain. Control points off the curves
// are not included.
func (p *Points) Bounds() Rect {
	out := Rect{Min: p.pts[0], Max: p.pts[0]}
	for i := 0; i < p.Segments(); i++ {
		s := p.Segment(i)
		out = out.Union(CubicBounds(s[0], s[1], s[2], s[3]))
	}
	return out
}

// Extent returns the bounding box of every point of the chain,
// control points included. It contains Bounds.
func (p *Points) Extent() Rect {
	out := Rect{Min: p.pts[0], Max: p.pts[0]}
	for _, pt := range p.pts[1:] {
		out = out.Union(Rect{Min: pt, Max: pt})
	}
	return out
}
