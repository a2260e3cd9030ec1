package bezpath

import "math"

// MaxSamples bounds the number of points produced for one segment.
// Smaller steps are coarsened to 1/MaxSamples so that the whole
// segment is still covered.
const MaxSamples = 1 << 20

const minStep = 1.0 / MaxSamples

// binomial returns n choose k.
func binomial(n, k int) float64 {
	out := 1.
	for i := 1; i <= k; i++ {
		out = out * float64(n-i+1) / float64(i)
	}
	return out
}

// Bernstein returns the value at t of the k-th Bernstein
// basis polynomial of degree n.
func Bernstein(n, k int, t float64) float64 {
	return binomial(n, k) * math.Pow(t, float64(k)) * math.Pow(1-t, float64(n-k))
}

// Eval returns the point of parameter t of the cubic Bezier curve
// defined by a, b, c and d.
func Eval(a, b, c, d Point, t float64) Point {
	mt := 1 - t
	k0 := mt * mt * mt
	k1 := 3 * t * mt * mt
	k2 := 3 * t * t * mt
	k3 := t * t * t
	return Point{
		X: a.X*k0 + b.X*k1 + c.X*k2 + d.X*k3,
		Y: a.Y*k0 + b.Y*k1 + c.Y*k2 + d.Y*k3,
	}
}

// EvalN returns the point of parameter t of the Bezier curve
// of degree len(ctrl)-1. ctrl must not be empty.
func EvalN(ctrl []Point, t float64) Point {
	if len(ctrl) == 4 {
		return Eval(ctrl[0], ctrl[1], ctrl[2], ctrl[3], t)
	}
	n := len(ctrl) - 1
	var out Point
	for k, p := range ctrl {
		w := Bernstein(n, k, t)
		out.X += w * p.X
		out.Y += w * p.Y
	}
	return out
}

// sampleCount returns the number of samples for `step`
// and the step actually used.
func sampleCount(step float64) (int, float64) {
	if !(step > 0) || step >= 1 {
		return 0, 0
	}
	step = math.Max(step, minStep)
	return int(math.Ceil(1 / step)), step
}

// SampleN approximates the Bezier curve of control points `ctrl`
// by the points of parameter t = i*step, for i < ceil(1/step).
// The end point is never included.
//
// A step outside of (0, 1) (including NaN) returns an empty slice.
// A step below 1/MaxSamples is replaced by 1/MaxSamples.
func SampleN(ctrl []Point, step float64) []Point {
	n, step := sampleCount(step)
	if n == 0 {
		return nil
	}
	out := make([]Point, n)
	for i := range out {
		out[i] = EvalN(ctrl, float64(i)*step) // not accumulated, to avoid drift
	}
	return out
}

// Sample is SampleN for the cubic curve (a, b, c, d):
// it returns ceil(1/step) points, the first one being a.
func Sample(a, b, c, d Point, step float64) []Point {
	return SampleN([]Point{a, b, c, d}, step)
}

// SampleSegment samples the i-th segment of p.
func (p *Points) SampleSegment(i int, step float64) []Point {
	s := p.Segment(i)
	return Sample(s[0], s[1], s[2], s[3], step)
}
