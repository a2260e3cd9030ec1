// Implements the geometric model of the editor:
// a chain of cubic Bezier segments sharing their end points,
// and the sampling of one segment into a polyline.
package bezpath

import (
	"fmt"

	"golang.org/x/image/math/fixed"
)

// Point is a position on the canvas.
// It has no identity beyond its index in a Points sequence.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Fixed converts the point to the 26.6 fixed representation
// used by the painting drivers.
func (pt Point) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(pt.X * 64), Y: fixed.Int26_6(pt.Y * 64)}
}

// InBox returns true if (x, y) lies in the axis aligned square
// of half side r centered on pt, borders included.
func (pt Point) InBox(x, y, r float64) bool {
	return pt.X-r <= x && x <= pt.X+r &&
		pt.Y-r <= y && y <= pt.Y+r
}
