package editor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ScriptError reports a malformed line of an event script.
type ScriptError struct {
	Line int
	Text string
	Err  error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("script line %d (%q): %s", e.Line, e.Text, e.Err)
}

func (e *ScriptError) Unwrap() error { return e.Err }

func parseXY(args []string) (x, y float64, err error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("expected 2 coordinates, got %d", len(args))
	}
	if x, err = strconv.ParseFloat(args[0], 64); err != nil {
		return 0, 0, err
	}
	if y, err = strconv.ParseFloat(args[1], 64); err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// parseLine returns the event described by `line`,
// or the export target if it is an export command.
func parseLine(line string) (ev Event, export string, err error) {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "down", "move":
		x, y, err := parseXY(args)
		if err != nil {
			return nil, "", err
		}
		if cmd == "down" {
			return PointerPressed{x, y}, "", nil
		}
		return PointerMoved{x, y}, "", nil
	case "up":
		if len(args) == 0 {
			return PointerReleased{}, "", nil
		}
		x, y, err := parseXY(args)
		if err != nil {
			return nil, "", err
		}
		return PointerReleased{x, y}, "", nil
	case "precision":
		// the text is kept raw: invalid values are handled by the editor
		text := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), cmd))
		return PrecisionApplied{Text: text}, "", nil
	case "strokes":
		if len(args) != 1 {
			return nil, "", fmt.Errorf("expected on, off or clear, got %d arguments", len(args))
		}
		switch args[0] {
		case "on":
			return StrokeModeSet{On: true}, "", nil
		case "off":
			return StrokeModeSet{On: false}, "", nil
		case "clear":
			return StrokesCleared{}, "", nil
		}
		return nil, "", fmt.Errorf("unknown strokes argument %q", args[0])
	case "export":
		if len(args) != 1 {
			return nil, "", fmt.Errorf("expected one output path, got %d", len(args))
		}
		return nil, args[0], nil
	default:
		return nil, "", fmt.Errorf("unknown command %q", cmd)
	}
}

// Replay reads an event script from `r` and applies it to `e`, line by line.
// Supported commands are:
//
//	down X Y
//	move X Y
//	up [X Y]
//	precision TEXT
//	strokes on|off|clear
//	export PATH
//
// Blank lines and lines starting with # are skipped.
// `export` is called for export commands; it may be nil
// if the script has none.
func Replay(r io.Reader, e *Editor, export func(path string) error) error {
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ev, target, err := parseLine(line)
		if err != nil {
			return &ScriptError{Line: lineNo, Text: line, Err: err}
		}
		if ev != nil {
			e.Handle(ev)
			continue
		}
		if export == nil {
			return &ScriptError{Line: lineNo, Text: line, Err: errors.New("export is not supported")}
		}
		if err := export(target); err != nil {
			return &ScriptError{Line: lineNo, Text: line, Err: err}
		}
	}
	return sc.Err()
}
