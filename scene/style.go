// Builds and paints the display list of the editor:
// helper lines, sampled curves and point markers.
// The list is replayed into painting drivers,
// see for example bezedit/raster or bezedit/pdfdraw.
package scene

import (
	"image/color"

	"golang.org/x/image/math/fixed"
)

// Style holds the cosmetic parameters of a frame.
type Style struct {
	Width, Height int     // size of the drawing surface
	Radius        float64 // half side of the marker hit box, and marker radius

	Background color.RGBA
	Helper     color.RGBA
	Curve      color.RGBA
	Marker     color.RGBA
	Stroke     color.RGBA // freehand overlay

	HelperWidth  float64
	CurveWidth   float64
	StrokeRadius float64 // half width of the freehand traces
}

// DefaultStyle is a 1200x800 light grey canvas with dark curves.
var DefaultStyle = Style{
	Width:        1200,
	Height:       800,
	Radius:       8,
	Background:   color.RGBA{0xdd, 0xdd, 0xdd, 0xff},
	Helper:       color.RGBA{0xaa, 0xaa, 0xaa, 0xff},
	Curve:        color.RGBA{0x33, 0x33, 0x33, 0xff},
	Marker:       color.RGBA{0x44, 0x44, 0x44, 0xff},
	Stroke:       color.RGBA{0x00, 0x00, 0xff, 0xff},
	HelperWidth:  1,
	CurveWidth:   3,
	StrokeRadius: 5,
}

// JoinMode type to specify how segments join.
type JoinMode uint8

const (
	Round JoinMode = iota
	Bevel
	Miter
)

// CapMode defines how to draw caps on the ends of lines
type CapMode uint8

const (
	ButtCap CapMode = iota
	SquareCap
	RoundCap
)

type StrokeOptions struct {
	LineWidth  fixed.Int26_6 // width of the line
	MiterLimit fixed.Int26_6
	Cap        CapMode
	Join       JoinMode
}

func fToFixed(f float64) fixed.Int26_6 {
	return fixed.Int26_6(f * 64)
}

func (st Style) helperStroke() StrokeOptions {
	return StrokeOptions{LineWidth: fToFixed(st.HelperWidth), MiterLimit: fToFixed(4), Cap: ButtCap, Join: Miter}
}

func (st Style) curveStroke() StrokeOptions {
	return StrokeOptions{LineWidth: fToFixed(st.CurveWidth), MiterLimit: fToFixed(4), Cap: RoundCap, Join: Round}
}

func (st Style) freehandStroke() StrokeOptions {
	return StrokeOptions{LineWidth: fToFixed(2 * st.StrokeRadius), MiterLimit: fToFixed(4), Cap: RoundCap, Join: Round}
}
