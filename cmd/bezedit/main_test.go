package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/benoitkugler/bezedit/bezpath"
	"github.com/benoitkugler/bezedit/editor"
	"github.com/benoitkugler/bezedit/svgio"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.precision != editor.DefaultPrecision || cfg.width != 1200 || cfg.height != 800 || cfg.radius != 8 {
		t.Errorf("unexpected defaults %+v", cfg)
	}

	for _, args := range [][]string{
		{"-backend", "cairo"},
		{"-pdf", "latex"},
		{"-width", "0"},
		{"-radius", "-1"},
		{"-fit", "everything"},
		{"extra"},
	} {
		if _, err := parseFlags(args); err == nil {
			t.Errorf("expected error for %v", args)
		}
	}
}

func TestBuildStyle(t *testing.T) {
	pts, err := bezpath.NewPoints([]bezpath.Point{{X: 0, Y: 0}, {X: 1500, Y: 20}, {X: 50, Y: 900}, {X: 10, Y: 10}})
	if err != nil {
		t.Fatal(err)
	}
	cfg, _ := parseFlags(nil)
	st := buildStyle(cfg, pts)
	if st.Width != 1200 || st.Height != 800 {
		t.Errorf("unexpected size %dx%d", st.Width, st.Height)
	}
	cfg.fit = "points"
	st = buildStyle(cfg, pts)
	if st.Width != 1508 || st.Height != 908 {
		t.Errorf("unexpected fitted size %dx%d", st.Width, st.Height)
	}
	// the curve stays well inside its control polygon
	cfg.fit = "curves"
	st = buildStyle(cfg, pts)
	want := pts.Bounds().Grow(8)
	if st.Width != int(math.Max(1200, math.Ceil(want.Max.X))) || st.Height != int(math.Max(800, math.Ceil(want.Max.Y))) {
		t.Errorf("unexpected fitted size %dx%d for bounds %v", st.Width, st.Height, want)
	}
	if st.Width >= 1508 {
		t.Errorf("curve bounds should be smaller than the point extent, got width %d", st.Width)
	}
}

func TestPointerEvent(t *testing.T) {
	for _, test := range []struct {
		wasDown, isDown bool
		want            editor.Event
	}{
		{false, true, editor.PointerPressed{X: 1, Y: 2}},
		{true, true, editor.PointerMoved{X: 1, Y: 2}},
		{true, false, editor.PointerReleased{X: 1, Y: 2}},
		{false, false, nil},
	} {
		got, ok := pointerEvent(1, 2, test.wasDown, test.isDown)
		if ok != (test.want != nil) || got != test.want {
			t.Errorf("%v -> %v: expected %v, got %v", test.wasDown, test.isDown, test.want, got)
		}
	}
}

func TestEditField(t *testing.T) {
	var w window
	// 0xF00E is an arrow key, not printable
	for _, r := range "0.1x\b\x01\uF00E" {
		if _, ok := w.editField(r); !ok {
			t.Fatal("unexpected quit")
		}
	}
	ev, ok := w.editField('\n')
	if !ok || ev != (editor.PrecisionApplied{Text: "0.1"}) {
		t.Errorf("unexpected event %v", ev)
	}
	for _, want := range []editor.Event{
		editor.StrokeModeSet{On: true},
		editor.StrokeModeSet{On: false},
	} {
		if ev, _ := w.editField(keyTab); ev != want {
			t.Errorf("expected %v, got %v", want, ev)
		}
	}
	if ev, _ := w.editField(keyEscape); ev != (editor.StrokesCleared{}) {
		t.Errorf("unexpected event %v", ev)
	}
	if string(w.field) != "0.1" {
		t.Errorf("unexpected field %q", string(w.field))
	}
	if _, ok := w.editField(keyDelete); ok {
		t.Error("expected quit on Delete")
	}
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	e := editor.New(editor.DefaultLayout())

	for _, ex := range []exporter{
		{style: e.Style(), backend: "rasterx", pdf: "gofpdf"},
		{style: e.Style(), backend: "gg", pdf: "alt"},
	} {
		for _, name := range []string{"frame.png", "frame.pdf", "frame.svg"} {
			path := filepath.Join(dir, ex.backend+"_"+name)
			if err := ex.export(e.Canvas(), path); err != nil {
				t.Fatal(err)
			}
			b, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if len(b) == 0 {
				t.Errorf("%s: empty output", path)
			}
		}
	}

	var ex exporter
	if err := ex.export(e.Canvas(), filepath.Join(dir, "frame.bmp")); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestRunScript(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "drag.txt")
	out := filepath.Join(dir, "final.svg")
	err := os.WriteFile(script, []byte("# drag the first point\ndown 100 100\nmove 150 160\nup\nprecision 0.5\n"), os.ModePerm)
	if err != nil {
		t.Fatal(err)
	}
	if err := run([]string{"-script", script, "-o", out}); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	pts, err := svgio.ReadLayout(bytes.NewReader(b), svgio.StrictErrorMode)
	if err != nil {
		t.Fatal(err)
	}
	want := editor.DefaultLayout().All()
	want[0] = bezpath.Pt(150, 160)
	if diff := cmp.Diff(want, pts.All(), cmpopts.EquateApprox(0, 1e-3)); diff != "" {
		t.Errorf("unexpected layout (-want +got):\n%s", diff)
	}
}
