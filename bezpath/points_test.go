package bezpath

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func makePoints(n int) []Point {
	out := make([]Point, n)
	for i := range out {
		out[i] = Pt(float64(i), float64(2*i))
	}
	return out
}

func TestNewPoints(t *testing.T) {
	for _, n := range []int{1, 4, 7, 10} {
		p, err := NewPoints(makePoints(n))
		if err != nil {
			t.Errorf("%d points: unexpected error %s", n, err)
			continue
		}
		if p.Len() != n || p.Segments() != (n-1)/3 {
			t.Errorf("%d points: got Len %d and %d segments", n, p.Len(), p.Segments())
		}
	}

	if _, err := NewPoints(nil); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
	for _, n := range []int{2, 3, 5, 6, 8} {
		if _, err := NewPoints(makePoints(n)); !errors.Is(err, ErrSegmentation) {
			t.Errorf("%d points: expected ErrSegmentation, got %v", n, err)
		}
	}
}

func TestNewPointsCopies(t *testing.T) {
	src := makePoints(4)
	p, err := NewPoints(src)
	if err != nil {
		t.Fatal(err)
	}
	src[0] = Pt(-1, -1)
	if p.At(0) != Pt(0, 0) {
		t.Errorf("store shares its input slice")
	}
	all := p.All()
	all[1] = Pt(-1, -1)
	if p.At(1) != Pt(1, 2) {
		t.Errorf("All must return a copy")
	}
}

func TestSegments(t *testing.T) {
	p, err := NewPoints(makePoints(7))
	if err != nil {
		t.Fatal(err)
	}
	pts := makePoints(7)
	if diff := cmp.Diff([4]Point{pts[0], pts[1], pts[2], pts[3]}, p.Segment(0)); diff != "" {
		t.Errorf("segment 0 (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([4]Point{pts[3], pts[4], pts[5], pts[6]}, p.Segment(1)); diff != "" {
		t.Errorf("segment 1 (-want +got):\n%s", diff)
	}
}

func TestSet(t *testing.T) {
	p, err := NewPoints(makePoints(4))
	if err != nil {
		t.Fatal(err)
	}
	p.Set(3, 50, 60)
	if got := p.At(3); got != Pt(50, 60) {
		t.Errorf("expected (50, 60), got %s", got)
	}
	if got := p.Segment(0)[3]; got != Pt(50, 60) {
		t.Errorf("segment does not see the update: %s", got)
	}
}

func TestSetOutOfRange(t *testing.T) {
	p, err := NewPoints(makePoints(4))
	if err != nil {
		t.Fatal(err)
	}
	for _, i := range []int{-1, 4} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("index %d: expected a panic", i)
				}
			}()
			p.Set(i, 0, 0)
		}()
	}
}

func TestPointsPath(t *testing.T) {
	p, err := NewPoints(makePoints(7))
	if err != nil {
		t.Fatal(err)
	}
	pts := makePoints(7)
	want := Path{
		MoveTo(pts[0]),
		CubicTo{pts[1], pts[2], pts[3]},
		CubicTo{pts[4], pts[5], pts[6]},
	}
	if diff := cmp.Diff(want, p.Path()); diff != "" {
		t.Errorf("unexpected path (-want +got):\n%s", diff)
	}
	back, err := p.Path().ToPoints()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(pts, back.All()); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}
