// Command bezedit edits a chain of cubic Bezier curves.
//
// Without -script, it opens a devdraw window (Plan 9 from User Space):
// drag the markers with the first mouse button, type a precision and press
// Enter to apply it, press Delete to quit.
// With -script, the event script is replayed headlessly and -o (or the
// script export commands) writes the resulting frames.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/benoitkugler/bezedit/bezpath"
	"github.com/benoitkugler/bezedit/editor"
	"github.com/benoitkugler/bezedit/scene"
	"github.com/benoitkugler/bezedit/svgio"
	"github.com/gogpu/gg"
)

type config struct {
	layout    string
	precision float64
	radius    float64
	width     int
	height    int
	fit       string
	script    string
	output    string
	backend   string
	pdf       string
	winsize   string
	strict    bool
	verbose   bool
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("bezedit", flag.ContinueOnError)
	fs.StringVar(&cfg.layout, "layout", "", "SVG file whose first <path> gives the initial points")
	fs.Float64Var(&cfg.precision, "precision", editor.DefaultPrecision, "initial parametric step")
	fs.Float64Var(&cfg.radius, "radius", scene.DefaultStyle.Radius, "marker radius and hit box half size")
	fs.IntVar(&cfg.width, "width", scene.DefaultStyle.Width, "canvas width")
	fs.IntVar(&cfg.height, "height", scene.DefaultStyle.Height, "canvas height")
	fs.StringVar(&cfg.fit, "fit", "", "grow the canvas to contain every point (points) or the curves only (curves)")
	fs.StringVar(&cfg.script, "script", "", "replay this event script instead of opening a window")
	fs.StringVar(&cfg.output, "o", "", "write the final frame to this .png, .pdf or .svg file")
	fs.StringVar(&cfg.backend, "backend", "rasterx", "PNG rasterizer: rasterx or gg")
	fs.StringVar(&cfg.pdf, "pdf", "gofpdf", "PDF writer: gofpdf or alt")
	fs.StringVar(&cfg.winsize, "winsize", "", "window size, as WxH")
	fs.BoolVar(&cfg.strict, "strict", false, "reject unsupported elements in the layout file")
	fs.BoolVar(&cfg.verbose, "v", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() != 0 {
		return cfg, fmt.Errorf("unexpected arguments %v", fs.Args())
	}
	if cfg.width <= 0 || cfg.height <= 0 {
		return cfg, fmt.Errorf("invalid canvas size %dx%d", cfg.width, cfg.height)
	}
	if cfg.radius < 0 {
		return cfg, fmt.Errorf("invalid marker radius %g", cfg.radius)
	}
	switch cfg.fit {
	case "", "points", "curves":
	default:
		return cfg, fmt.Errorf("unknown fit mode %q", cfg.fit)
	}
	switch cfg.backend {
	case "rasterx", "gg":
	default:
		return cfg, fmt.Errorf("unknown raster backend %q", cfg.backend)
	}
	switch cfg.pdf {
	case "gofpdf", "alt":
	default:
		return cfg, fmt.Errorf("unknown pdf writer %q", cfg.pdf)
	}
	return cfg, nil
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	scene.SetLogger(l)
	gg.SetLogger(l)
}

func loadPoints(cfg config) (*bezpath.Points, error) {
	if cfg.layout == "" {
		return editor.DefaultLayout(), nil
	}
	mode := svgio.WarnErrorMode
	if cfg.strict {
		mode = svgio.StrictErrorMode
	}
	pts, err := svgio.ReadLayoutFile(cfg.layout, mode)
	if err != nil {
		return nil, fmt.Errorf("reading layout %s: %w", cfg.layout, err)
	}
	return pts, nil
}

// buildStyle applies the size flags to the default style,
// growing the canvas to the extent of `pts` if asked.
func buildStyle(cfg config, pts *bezpath.Points) scene.Style {
	st := scene.DefaultStyle
	st.Width, st.Height, st.Radius = cfg.width, cfg.height, cfg.radius
	var ext bezpath.Rect
	switch cfg.fit {
	case "points":
		ext = pts.Extent()
	case "curves":
		ext = pts.Bounds()
	default:
		return st
	}
	ext = ext.Grow(cfg.radius)
	if w := int(math.Ceil(ext.Max.X)); w > st.Width {
		st.Width = w
	}
	if h := int(math.Ceil(ext.Max.Y)); h > st.Height {
		st.Height = h
	}
	return st
}

func run(args []string) error {
	cfg, err := parseFlags(args)
	if err != nil {
		return err
	}
	setupLogging(cfg.verbose)

	pts, err := loadPoints(cfg)
	if err != nil {
		return err
	}
	st := buildStyle(cfg, pts)
	ex := exporter{style: st, backend: cfg.backend, pdf: cfg.pdf}

	if cfg.script == "" {
		return runWindow(cfg, pts, st)
	}

	e := editor.New(pts, editor.WithPrecision(cfg.precision), editor.WithStyle(st))
	f, err := os.Open(cfg.script)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := editor.Replay(f, e, func(path string) error { return ex.export(e.Canvas(), path) }); err != nil {
		return err
	}
	if cfg.output != "" {
		return ex.export(e.Canvas(), cfg.output)
	}
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, "bezedit:", err)
		os.Exit(1)
	}
}
