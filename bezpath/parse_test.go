package bezpath

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParsePathData(t *testing.T) {
	for _, test := range []struct {
		d    string
		want []Point
	}{
		{
			"M100,100 C400,20 50,480 400,400",
			[]Point{Pt(100, 100), Pt(400, 20), Pt(50, 480), Pt(400, 400)},
		},
		{
			"m10 10 c10 0 10 10 0 10",
			[]Point{Pt(10, 10), Pt(20, 10), Pt(20, 20), Pt(10, 20)},
		},
		{
			// S reflects the previous second control point
			"M0,0 C0,10 10,10 10,0 S20,-10 20,0",
			[]Point{Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0), Pt(10, -10), Pt(20, -10), Pt(20, 0)},
		},
		{
			"M0,0 s10,10 10,0",
			[]Point{Pt(0, 0), Pt(0, 0), Pt(10, 10), Pt(10, 0)},
		},
		{
			"M0 0L3 0",
			[]Point{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0)},
		},
		{
			"M0 0H3V3",
			[]Point{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0), Pt(3, 1), Pt(3, 2), Pt(3, 3)},
		},
		{
			"M0 0 3 0z",
			[]Point{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0), Pt(2, 0), Pt(1, 0), Pt(0, 0)},
		},
		{
			"M1e1-5 C.5.5 1 1 -2e0 3",
			[]Point{Pt(10, -5), Pt(0.5, 0.5), Pt(1, 1), Pt(-2, 3)},
		},
	} {
		path, err := ParsePathData(test.d)
		if err != nil {
			t.Errorf("%q: %s", test.d, err)
			continue
		}
		pts, err := path.ToPoints()
		if err != nil {
			t.Errorf("%q: %s", test.d, err)
			continue
		}
		if diff := cmp.Diff(test.want, pts.All(), approx); diff != "" {
			t.Errorf("%q (-want +got):\n%s", test.d, diff)
		}
	}
}

func TestParsePathDataInvalid(t *testing.T) {
	for _, d := range []string{
		"10 10",
		"M10",
		"M0,0 C1,1 2,2",
		"M0,0 Q1,1 2,2",
		"M0,0 A1,1 0 0 1 2,2",
		"C1,1 2,2 3,3",
		"M0,0 L1,x",
	} {
		if _, err := ParsePathData(d); err == nil {
			t.Errorf("%q: expected an error", d)
		}
	}

	path, err := ParsePathData("M0,0 C1,1 2,2 3,3 M4,4 C5,5 6,6 7,7")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := path.ToPoints(); err == nil {
		t.Error("expected an error for a second sub-path")
	}
}

func TestToSVGPath(t *testing.T) {
	path, err := ParsePathData("M100,100 C400,20 50,480 400,400 Z")
	if err != nil {
		t.Fatal(err)
	}
	want := "M100.000,100.000 C400.000,20.000,50.000,480.000,400.000,400.000 Z"
	if got := path.ToSVGPath(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	again, err := ParsePathData(path.ToSVGPath())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(path, again); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}
