package main

import (
	"image"
	"strconv"
	"unicode"

	"9fans.net/go/draw"
	"github.com/benoitkugler/bezedit/bezpath"
	"github.com/benoitkugler/bezedit/editor"
	"github.com/benoitkugler/bezedit/raster"
	"github.com/benoitkugler/bezedit/scene"
)

const (
	keyDelete    = 0x7F
	keyBackspace = '\b'
	keyTab       = '\t'
	keyEscape    = 0x1B
)

// window shows the frames of an editor in a devdraw window.
type window struct {
	d     *draw.Display
	frame *draw.Image // rasterized canvas, loaded after each repaint
	st    scene.Style
	field []rune // text of the precision field

	strokeMode bool // mirrors the editor mode, toggled by Tab
}

func newWindow(d *draw.Display, st scene.Style) (*window, error) {
	r := image.Rect(0, 0, st.Width, st.Height)
	frame, err := d.AllocImage(r, draw.ABGR32, false, draw.White)
	if err != nil {
		return nil, err
	}
	return &window{d: d, frame: frame, st: st}, nil
}

// present rasterizes the canvas and uploads it to the server.
func (w *window) present(c *scene.Canvas) {
	img := raster.RasterCanvasToImage(c, w.st)
	if _, err := w.frame.Load(img.Rect, img.Pix); err != nil {
		scene.Logger().Warn("loading frame", "error", err)
		return
	}
	w.redraw()
}

// redraw composes the last frame and the precision field on the screen.
func (w *window) redraw() {
	screen := w.d.ScreenImage
	screen.Draw(screen.R, w.d.White, nil, image.Point{})
	screen.Draw(screen.R, w.frame, nil, image.Point{})
	pt := image.Pt(screen.R.Min.X+4, screen.R.Max.Y-w.d.Font.Height-4)
	screen.String(pt, w.d.Black, image.Point{}, w.d.Font, w.label())
	if err := w.d.Flush(); err != nil {
		scene.Logger().Warn("flushing display", "error", err)
	}
}

func (w *window) label() string {
	s := "precision: " + string(w.field) + "_"
	if w.strokeMode {
		s += "  [strokes]"
	}
	return s
}

// canvasPoint converts a screen position to canvas coordinates.
func (w *window) canvasPoint(p image.Point) (float64, float64) {
	p = p.Sub(w.d.ScreenImage.R.Min)
	return float64(p.X), float64(p.Y)
}

// pointerEvent maps a mouse sample to an editor event,
// given the button state of the previous sample.
func pointerEvent(x, y float64, wasDown, isDown bool) (editor.Event, bool) {
	switch {
	case isDown && !wasDown:
		return editor.PointerPressed{X: x, Y: y}, true
	case isDown && wasDown:
		return editor.PointerMoved{X: x, Y: y}, true
	case !isDown && wasDown:
		return editor.PointerReleased{X: x, Y: y}, true
	}
	return nil, false
}

// editField applies a typed rune to the precision field. It returns the
// event to send to the editor, if any, and false when the user quits.
// Tab toggles the freehand mode and Escape clears the traces.
func (w *window) editField(r rune) (ev editor.Event, ok bool) {
	switch r {
	case keyDelete:
		return nil, false
	case keyTab:
		w.strokeMode = !w.strokeMode
		return editor.StrokeModeSet{On: w.strokeMode}, true
	case keyEscape:
		return editor.StrokesCleared{}, true
	case '\n', '\r':
		return editor.PrecisionApplied{Text: string(w.field)}, true
	case keyBackspace:
		if len(w.field) > 0 {
			w.field = w.field[:len(w.field)-1]
		}
	default:
		// arrows and function keys are private use runes, not printable
		if unicode.IsPrint(r) {
			w.field = append(w.field, r)
		}
	}
	return nil, true
}

func runWindow(cfg config, pts *bezpath.Points, st scene.Style) error {
	errch := make(chan error)
	d, err := draw.Init(errch, "", "bezedit", cfg.winsize)
	if err != nil {
		return err
	}
	defer d.Close()

	w, err := newWindow(d, st)
	if err != nil {
		return err
	}
	w.field = []rune(strconv.FormatFloat(cfg.precision, 'g', -1, 64))
	e := editor.New(pts,
		editor.WithPrecision(cfg.precision),
		editor.WithStyle(st),
		editor.WithPresenter(w.present),
	)

	mc := d.InitMouse()
	kc := d.InitKeyboard()
	wasDown := false
	for {
		select {
		case err := <-errch:
			return err
		case <-mc.Resize:
			if err := d.Attach(draw.RefNone); err != nil {
				return err
			}
			w.redraw()
		case m := <-mc.C:
			isDown := m.Buttons&1 != 0
			x, y := w.canvasPoint(m.Point)
			if ev, ok := pointerEvent(x, y, wasDown, isDown); ok {
				e.Handle(ev)
			}
			wasDown = isDown
		case r := <-kc.C:
			ev, ok := w.editField(r)
			if !ok {
				return nil
			}
			if ev != nil {
				e.Handle(ev)
			}
			w.redraw()
		}
	}
}
