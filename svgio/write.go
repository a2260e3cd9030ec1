package svgio

import (
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/benoitkugler/bezedit/bezpath"
	"github.com/benoitkugler/bezedit/scene"
)

type svgDoc struct {
	XMLName  xml.Name `xml:"svg"`
	Xmlns    string   `xml:"xmlns,attr"`
	Width    int      `xml:"width,attr"`
	Height   int      `xml:"height,attr"`
	ViewBox  string   `xml:"viewBox,attr"`
	Elements []interface{}
}

type svgPath struct {
	XMLName xml.Name `xml:"path"`
	ID      string   `xml:"id,attr"`
	D       string   `xml:"d,attr"`
	Fill    string   `xml:"fill,attr"`
	Stroke  string   `xml:"stroke,attr"`
}

type svgRect struct {
	XMLName xml.Name `xml:"rect"`
	Width   int      `xml:"width,attr"`
	Height  int      `xml:"height,attr"`
	Fill    string   `xml:"fill,attr"`
}

type svgLine struct {
	XMLName     xml.Name `xml:"line"`
	X1          float64  `xml:"x1,attr"`
	Y1          float64  `xml:"y1,attr"`
	X2          float64  `xml:"x2,attr"`
	Y2          float64  `xml:"y2,attr"`
	Stroke      string   `xml:"stroke,attr"`
	StrokeWidth float64  `xml:"stroke-width,attr"`
}

type svgPolyline struct {
	XMLName        xml.Name `xml:"polyline"`
	Points         string   `xml:"points,attr"`
	Fill           string   `xml:"fill,attr"`
	Stroke         string   `xml:"stroke,attr"`
	StrokeWidth    float64  `xml:"stroke-width,attr"`
	StrokeLinecap  string   `xml:"stroke-linecap,attr"`
	StrokeLinejoin string   `xml:"stroke-linejoin,attr"`
}

type svgCircle struct {
	XMLName xml.Name `xml:"circle"`
	Cx      float64  `xml:"cx,attr"`
	Cy      float64  `xml:"cy,attr"`
	R       float64  `xml:"r,attr"`
	Fill    string   `xml:"fill,attr"`
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func formatPolyline(pts []bezpath.Point) string {
	chunks := make([]string, len(pts))
	for i, p := range pts {
		chunks[i] = strconv.FormatFloat(p.X, 'g', -1, 64) + "," + strconv.FormatFloat(p.Y, 'g', -1, 64)
	}
	return strings.Join(chunks, " ")
}

// chainPath returns the path joining the marker centers,
// or an empty string if they do not form a chain of segments.
func chainPath(c *scene.Canvas) string {
	var centers []bezpath.Point
	for _, it := range c.Items() {
		if m, ok := it.(scene.Marker); ok {
			centers = append(centers, m.Center)
		}
	}
	pts, err := bezpath.NewPoints(centers)
	if err != nil {
		return ""
	}
	return pts.Path().ToSVGPath()
}

// WriteCanvas writes the display list `c` as an SVG image.
// An invisible path joining the points comes first, so that
// the output may be reloaded with ReadLayout.
func WriteCanvas(w io.Writer, c *scene.Canvas, st scene.Style) error {
	doc := svgDoc{
		Xmlns:   "http://www.w3.org/2000/svg",
		Width:   st.Width,
		Height:  st.Height,
		ViewBox: fmt.Sprintf("0 0 %d %d", st.Width, st.Height),
	}
	if d := chainPath(c); d != "" {
		doc.Elements = append(doc.Elements, svgPath{ID: "chain", D: d, Fill: "none", Stroke: "none"})
	}
	doc.Elements = append(doc.Elements, svgRect{Width: st.Width, Height: st.Height, Fill: hexColor(st.Background)})
	for _, it := range c.Items() {
		switch it := it.(type) {
		case scene.HelperLine:
			doc.Elements = append(doc.Elements, svgLine{
				X1: it.From.X, Y1: it.From.Y, X2: it.To.X, Y2: it.To.Y,
				Stroke: hexColor(st.Helper), StrokeWidth: st.HelperWidth,
			})
		case scene.Curve:
			if len(it) < 2 {
				continue
			}
			doc.Elements = append(doc.Elements, svgPolyline{
				Points: formatPolyline(it), Fill: "none",
				Stroke: hexColor(st.Curve), StrokeWidth: st.CurveWidth,
				StrokeLinecap: "round", StrokeLinejoin: "round",
			})
		case scene.Marker:
			doc.Elements = append(doc.Elements, svgCircle{
				Cx: it.Center.X, Cy: it.Center.Y, R: it.Radius, Fill: hexColor(st.Marker),
			})
		case scene.Stroke:
			switch len(it) {
			case 0:
			case 1:
				doc.Elements = append(doc.Elements, svgCircle{
					Cx: it[0].X, Cy: it[0].Y, R: st.StrokeRadius, Fill: hexColor(st.Stroke),
				})
			default:
				doc.Elements = append(doc.Elements, svgPolyline{
					Points: formatPolyline(it), Fill: "none",
					Stroke: hexColor(st.Stroke), StrokeWidth: 2 * st.StrokeRadius,
					StrokeLinecap: "round", StrokeLinejoin: "round",
				})
			}
		}
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("svgio: encoding frame: %w", err)
	}
	scene.Logger().Debug("svg frame written", "items", c.Len())
	return nil
}
