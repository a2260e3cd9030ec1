// Package editor holds the application state of the curve editor
// and maps pointer and text input onto it.
// Every accepted mutation is followed by a full repaint of the canvas.
package editor

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/benoitkugler/bezedit/bezpath"
	"github.com/benoitkugler/bezedit/scene"
)

// DefaultPrecision is the parametric step used at startup.
const DefaultPrecision = 0.01

// Editor owns the points, the drawing precision, the selection
// and the canvas. It is not safe for concurrent use: events
// must be delivered one at a time.
type Editor struct {
	points    *bezpath.Points
	precision float64
	style     scene.Style
	canvas    scene.Canvas

	selected int // -1 when idle

	// freehand mode: pointer input traces strokes
	// instead of dragging points
	strokeMode bool
	drawing    bool
	strokes    []scene.Stroke

	present func(*scene.Canvas)
	logger  *slog.Logger
}

// Option customizes an Editor.
type Option func(*Editor)

// WithPrecision sets the initial parametric step.
func WithPrecision(p float64) Option {
	return func(e *Editor) { e.precision = p }
}

// WithStyle replaces scene.DefaultStyle. Its Radius is also
// the half side of the hit box of a point.
func WithStyle(st scene.Style) Option {
	return func(e *Editor) { e.style = st }
}

// WithPresenter registers a function called with the canvas
// after each repaint, typically to push the frame to a window.
func WithPresenter(present func(*scene.Canvas)) Option {
	return func(e *Editor) { e.present = present }
}

// WithLogger overrides scene.Logger() for this editor.
func WithLogger(l *slog.Logger) Option {
	return func(e *Editor) { e.logger = l }
}

// New returns an editor working on `pts`, which is modified in place,
// and paints the initial frame.
func New(pts *bezpath.Points, opts ...Option) *Editor {
	e := &Editor{
		points:    pts,
		precision: DefaultPrecision,
		style:     scene.DefaultStyle,
		selected:  -1,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = scene.Logger()
	}
	e.Repaint()
	return e
}

func (e *Editor) Points() *bezpath.Points { return e.points }

func (e *Editor) Style() scene.Style { return e.style }

// Canvas returns the display list of the last repaint.
func (e *Editor) Canvas() *scene.Canvas { return &e.canvas }

// Selected returns the index of the point being dragged, if any.
func (e *Editor) Selected() (int, bool) {
	return e.selected, e.selected >= 0
}

func (e *Editor) Precision() float64 { return e.precision }

// Repaint rebuilds the canvas from the current state
// and hands it to the presenter.
func (e *Editor) Repaint() {
	scene.Repaint(&e.canvas, e.points, e.precision, e.style)
	scene.Overlay(&e.canvas, e.strokes)
	if e.present != nil {
		e.present(&e.canvas)
	}
}

// applyMutation runs `mutate` and always repaints afterwards.
func (e *Editor) applyMutation(mutate func()) {
	mutate()
	e.Repaint()
}

// PointerDown selects the first point, in index order, whose box
// [x-r, x+r] x [y-r, y+r] contains (x, y). In stroke mode, it starts
// a new trace instead. Nothing is repainted.
func (e *Editor) PointerDown(x, y float64) {
	if e.strokeMode {
		e.drawing = true
		e.strokes = append(e.strokes, nil)
		return
	}
	r := e.style.Radius
	for i := 0; i < e.points.Len(); i++ {
		if e.points.At(i).InBox(x, y, r) {
			e.selected = i
			e.logger.Debug("point selected", "index", i)
			return
		}
	}
}

// PointerMove moves the selected point to (x, y) and repaints.
// In stroke mode, it extends the current trace instead.
// Without selection, it does nothing.
func (e *Editor) PointerMove(x, y float64) {
	if e.drawing {
		last := len(e.strokes) - 1
		e.applyMutation(func() { e.strokes[last] = append(e.strokes[last], bezpath.Pt(x, y)) })
		return
	}
	if e.selected < 0 {
		return
	}
	i := e.selected
	e.applyMutation(func() { e.points.Set(i, x, y) })
}

// PointerUp ends the drag, if any.
func (e *Editor) PointerUp(x, y float64) {
	e.selected = -1
	e.endStroke()
}

// endStroke stops the current trace, dropping it if nothing was drawn.
func (e *Editor) endStroke() {
	if !e.drawing {
		return
	}
	e.drawing = false
	if last := len(e.strokes) - 1; len(e.strokes[last]) == 0 {
		e.strokes = e.strokes[:last]
	}
}

// SetStrokeMode switches between dragging points (the default) and
// tracing freehand strokes over the chain. A drag or a trace in
// progress is ended. Nothing is repainted.
func (e *Editor) SetStrokeMode(on bool) {
	e.selected = -1
	e.endStroke()
	e.strokeMode = on
}

func (e *Editor) StrokeMode() bool { return e.strokeMode }

// Strokes returns a copy of the freehand traces.
func (e *Editor) Strokes() []scene.Stroke {
	out := make([]scene.Stroke, len(e.strokes))
	for i, s := range e.strokes {
		out[i] = append(scene.Stroke(nil), s...)
	}
	return out
}

// ClearStrokes removes every freehand trace and repaints.
func (e *Editor) ClearStrokes() {
	e.endStroke()
	e.applyMutation(func() { e.strokes = nil })
}

// SetPrecision parses `raw` as a float and, on success, uses it as
// the new parametric step and repaints.
// Out of range values are accepted, rounded to ±Inf or 0.
// Invalid input is ignored: the precision is left unchanged.
func (e *Editor) SetPrecision(raw string) {
	p, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if errors.Is(err, strconv.ErrRange) {
		err = nil
	}
	if err != nil {
		e.logger.Debug("precision ignored", "input", raw, "err", err)
		return
	}
	e.applyMutation(func() { e.precision = p })
}
