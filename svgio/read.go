// Reads and writes the SVG documents of the editor:
// an initial layout is taken from the first path of a file,
// and a frame may be exported as a flat SVG image.
package svgio

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/benoitkugler/bezedit/bezpath"
	"github.com/benoitkugler/bezedit/scene"
	"golang.org/x/net/html/charset"
)

// ErrorMode is the for setting how to handle unsupported elements
type ErrorMode uint8

const (
	// IgnoreErrorMode skips unsupported elements
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode logs a warning for unsupported elements
	WarnErrorMode
	// StrictErrorMode returns an error on unsupported elements
	StrictErrorMode
)

// ErrNoPath is returned when a document has no path to load.
var ErrNoPath = errors.New("svgio: no <path> element with a 'd' attribute")

var errParamMismatch = errors.New("svgio: parameter count mismatch")

// elements which may appear in a layout file
var knownElements = map[string]bool{
	"svg":      true,
	"g":        true,
	"path":     true,
	"title":    true,
	"desc":     true,
	"metadata": true,
	"defs":     true,
	"rect":     true,
	"line":     true,
	"polyline": true,
	"circle":   true,
}

// layoutCursor is used while parsing SVG files
type layoutCursor struct {
	errorMode ErrorMode
	offsets   []bezpath.Point // accumulated translations, one per open element
	path      bezpath.Path
	found     bool
}

func (c *layoutCursor) offset() bezpath.Point {
	return c.offsets[len(c.offsets)-1]
}

// splitOnCommaOrSpace returns a list of strings after splitting the input on comma and space delimiters
func splitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s,
		func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n'
		})
}

// parseTransform only accepts a list of translate(...) functions
func parseTransform(v string) (bezpath.Point, error) {
	var out bezpath.Point
	for _, t := range strings.Split(v, ")") {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		name, args, ok := strings.Cut(t, "(")
		if !ok {
			return out, fmt.Errorf("svgio: malformed transform %q", v)
		}
		if name = strings.TrimSpace(name); strings.ToLower(name) != "translate" {
			return out, fmt.Errorf("svgio: unsupported transform %q", name)
		}
		var vals []float64
		for _, f := range splitOnCommaOrSpace(args) {
			x, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return out, err
			}
			vals = append(vals, x)
		}
		switch len(vals) {
		case 1:
			out.X += vals[0]
		case 2:
			out.X += vals[0]
			out.Y += vals[1]
		default:
			return out, errParamMismatch
		}
	}
	return out, nil
}

func (c *layoutCursor) readStartElement(se xml.StartElement) error {
	off := c.offset()
	for _, attr := range se.Attr {
		if attr.Name.Local == "transform" {
			tr, err := parseTransform(attr.Value)
			if err != nil {
				return err
			}
			off.X += tr.X
			off.Y += tr.Y
		}
	}
	c.offsets = append(c.offsets, off)

	if !knownElements[se.Name.Local] {
		errStr := "cannot process svg element " + se.Name.Local
		if c.errorMode == StrictErrorMode {
			return errors.New(errStr)
		} else if c.errorMode == WarnErrorMode {
			scene.Logger().Warn(errStr)
		}
		return nil
	}
	if se.Name.Local != "path" || c.found {
		return nil
	}
	for _, attr := range se.Attr {
		if attr.Name.Local != "d" {
			continue
		}
		path, err := bezpath.ParsePathData(attr.Value)
		if err != nil {
			return err
		}
		for i, op := range path {
			path[i] = translate(op, off)
		}
		c.path = path
		c.found = true
	}
	return nil
}

func translate(op bezpath.Operation, off bezpath.Point) bezpath.Operation {
	tr := func(p bezpath.Point) bezpath.Point { return bezpath.Pt(p.X+off.X, p.Y+off.Y) }
	switch op := op.(type) {
	case bezpath.MoveTo:
		return bezpath.MoveTo(tr(bezpath.Point(op)))
	case bezpath.LineTo:
		return bezpath.LineTo(tr(bezpath.Point(op)))
	case bezpath.CubicTo:
		return bezpath.CubicTo{tr(op[0]), tr(op[1]), tr(op[2])}
	}
	return op
}

// ReadLayout reads the chain of points from the first <path> of the document.
// The path must be made of a single sub-path; lines are converted to
// straight cubic segments. errMode determines if the reader ignores, errors out, or logs a warning
// if it does not handle an element found in the file.
func ReadLayout(stream io.Reader, errMode ErrorMode) (*bezpath.Points, error) {
	cursor := &layoutCursor{errorMode: errMode, offsets: []bezpath.Point{{}}}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	seenTag := false
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if !seenTag {
					return nil, errors.New("svgio: invalid svg xml document")
				}
				break
			}
			return nil, err
		}
		switch se := t.(type) {
		case xml.StartElement:
			seenTag = true
			if err = cursor.readStartElement(se); err != nil {
				return nil, err
			}
		case xml.EndElement:
			cursor.offsets = cursor.offsets[:len(cursor.offsets)-1]
		}
	}
	if !cursor.found {
		return nil, ErrNoPath
	}
	pts, err := cursor.path.ToPoints()
	if err != nil {
		return nil, fmt.Errorf("svgio: invalid layout path: %w", err)
	}
	return pts, nil
}

// ReadLayoutFile reads the layout from the named file.
func ReadLayoutFile(file string, errMode ErrorMode) (*bezpath.Points, error) {
	fin, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer fin.Close()
	return ReadLayout(fin, errMode)
}
