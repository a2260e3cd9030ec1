package bezpath

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"
)

var errParamMismatch = errors.New("bezpath: parameter count mismatch")

// pathCursor reads the "d" attribute of an SVG path element.
type pathCursor struct {
	path             Path
	points           []float64
	placeX, placeY   float64 // current point
	startX, startY   float64 // start of the current sub-path
	lastCtrl         Point   // second control point of the last cubic
	inPath, hasCubic bool
}

// ParsePathData parses SVG path data restricted to
// the M, L, H, V, C, S and Z commands (and their relative forms).
// Quadratic and arc commands are rejected.
func ParsePathData(d string) (Path, error) {
	var c pathCursor
	if err := c.compile(d); err != nil {
		return nil, err
	}
	return c.path, nil
}

func isCommand(r rune) bool {
	switch unicode.ToUpper(r) {
	case 'M', 'L', 'H', 'V', 'C', 'S', 'Z', 'Q', 'T', 'A':
		return true
	}
	return false
}

// readNumber returns the longest float prefix of s
// and the number of bytes consumed.
func readNumber(s string) (float64, int, error) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	seenDot, seenDigit := false, false
	for ; i < len(s); i++ {
		ch := s[i]
		if ch >= '0' && ch <= '9' {
			seenDigit = true
		} else if ch == '.' && !seenDot {
			seenDot = true
		} else {
			break
		}
	}
	if seenDigit && i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && s[j] >= '0' && s[j] <= '9' {
			for j < len(s) && s[j] >= '0' && s[j] <= '9' {
				j++
			}
			i = j
		}
	}
	if !seenDigit {
		return 0, 0, fmt.Errorf("bezpath: invalid number near %q", s)
	}
	f, err := strconv.ParseFloat(s[:i], 64)
	return f, i, err
}

func (c *pathCursor) compile(d string) error {
	c.path = c.path[:0]
	c.points = c.points[:0]
	var key rune
	for i := 0; i < len(d); {
		r := rune(d[i])
		switch {
		case r == ' ' || r == ',' || r == '\t' || r == '\n' || r == '\r':
			i++
		case isCommand(r):
			if key != 0 {
				if err := c.addSeg(key); err != nil {
					return err
				}
			}
			key = r
			i++
		default:
			if key == 0 {
				return fmt.Errorf("bezpath: path data must start with a command, got %q", r)
			}
			f, n, err := readNumber(d[i:])
			if err != nil {
				return err
			}
			c.points = append(c.points, f)
			i += n
		}
	}
	if key != 0 {
		return c.addSeg(key)
	}
	return nil
}

// reflection returns the first control point of a smooth cubic.
func (c *pathCursor) reflection() Point {
	cur := Point{c.placeX, c.placeY}
	if !c.hasCubic {
		return cur
	}
	return Point{2*cur.X - c.lastCtrl.X, 2*cur.Y - c.lastCtrl.Y}
}

func (c *pathCursor) addSeg(key rune) error {
	defer func() { c.points = c.points[:0] }()
	rel := unicode.IsLower(key)
	l := len(c.points)
	switch unicode.ToUpper(key) {
	case 'Z':
		if l != 0 {
			return errParamMismatch
		}
		c.path.Stop(true)
		c.placeX, c.placeY = c.startX, c.startY
		c.hasCubic = false
	case 'M':
		if l < 2 || l%2 != 0 {
			return errParamMismatch
		}
		x, y := c.points[0], c.points[1]
		if rel {
			x, y = x+c.placeX, y+c.placeY
		}
		c.path.Start(Point{x, y})
		c.placeX, c.placeY = x, y
		c.startX, c.startY = x, y
		c.inPath = true
		// extra pairs are implicit line commands
		for i := 2; i < l; i += 2 {
			x, y := c.points[i], c.points[i+1]
			if rel {
				x, y = x+c.placeX, y+c.placeY
			}
			c.path.Line(Point{x, y})
			c.placeX, c.placeY = x, y
		}
		c.hasCubic = false
	case 'L':
		if l == 0 || l%2 != 0 {
			return errParamMismatch
		}
		for i := 0; i < l; i += 2 {
			x, y := c.points[i], c.points[i+1]
			if rel {
				x, y = x+c.placeX, y+c.placeY
			}
			c.path.Line(Point{x, y})
			c.placeX, c.placeY = x, y
		}
		c.hasCubic = false
	case 'H':
		if l == 0 {
			return errParamMismatch
		}
		for _, x := range c.points {
			if rel {
				x += c.placeX
			}
			c.path.Line(Point{x, c.placeY})
			c.placeX = x
		}
		c.hasCubic = false
	case 'V':
		if l == 0 {
			return errParamMismatch
		}
		for _, y := range c.points {
			if rel {
				y += c.placeY
			}
			c.path.Line(Point{c.placeX, y})
			c.placeY = y
		}
		c.hasCubic = false
	case 'C':
		if l == 0 || l%6 != 0 {
			return errParamMismatch
		}
		for i := 0; i < l; i += 6 {
			pts := c.points[i : i+6]
			if rel {
				for j := 0; j < 6; j += 2 {
					pts[j] += c.placeX
					pts[j+1] += c.placeY
				}
			}
			b, cc, d := Point{pts[0], pts[1]}, Point{pts[2], pts[3]}, Point{pts[4], pts[5]}
			c.path.CubeBezier(b, cc, d)
			c.lastCtrl, c.hasCubic = cc, true
			c.placeX, c.placeY = d.X, d.Y
		}
	case 'S':
		if l == 0 || l%4 != 0 {
			return errParamMismatch
		}
		for i := 0; i < l; i += 4 {
			pts := c.points[i : i+4]
			if rel {
				for j := 0; j < 4; j += 2 {
					pts[j] += c.placeX
					pts[j+1] += c.placeY
				}
			}
			b := c.reflection()
			cc, d := Point{pts[0], pts[1]}, Point{pts[2], pts[3]}
			c.path.CubeBezier(b, cc, d)
			c.lastCtrl, c.hasCubic = cc, true
			c.placeX, c.placeY = d.X, d.Y
		}
	default:
		return fmt.Errorf("bezpath: unsupported path command %q", key)
	}
	if !c.inPath {
		return errors.New("bezpath: path data must start with a move")
	}
	return nil
}
