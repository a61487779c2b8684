package gpath

import (
	"testing"

	"github.com/mancoi64/gdipath/geom"
)

// TestRectangleS1 is scenario S1 from spec §8.
func TestRectangleS1(t *testing.T) {
	p := New()
	if err := p.Rectangle(geom.Identity(), Advanced, 10, 20, 30, 40); err != nil {
		t.Fatalf("Rectangle: %v", err)
	}
	pts, kinds := p.Entries()
	if len(pts) != 4 {
		t.Fatalf("got %d entries, want 4", len(pts))
	}
	want := []Point{{X: 30, Y: 20}, {X: 10, Y: 20}, {X: 10, Y: 40}, {X: 30, Y: 40}}
	for i, w := range want {
		if pts[i] != w {
			t.Fatalf("point %d = %v, want %v", i, pts[i], w)
		}
	}
	if kinds[0].Primary() != Move {
		t.Fatalf("entry 0 = %v, want Move", kinds[0])
	}
	for i := 1; i < 4; i++ {
		if kinds[i].Primary() != Line {
			t.Fatalf("entry %d = %v, want Line", i, kinds[i])
		}
	}
	if !kinds[3].Closed() {
		t.Fatalf("entry 3 not closed")
	}
}

func TestRectangleCompatibleModeShrinksBottomRight(t *testing.T) {
	p := New()
	if err := p.Rectangle(geom.Identity(), Compatible, 0, 0, 10, 10); err != nil {
		t.Fatalf("Rectangle: %v", err)
	}
	pts, _ := p.Entries()
	if pts[0] != (Point{X: 9, Y: 0}) || pts[3] != (Point{X: 9, Y: 9}) {
		t.Fatalf("compatible-mode rectangle = %v, want right/bottom shrunk by 1", pts)
	}
}

// TestArcQuadrantS3 is scenario S3 from spec §8.
func TestArcQuadrantS3(t *testing.T) {
	p := New()
	err := p.Arc(geom.Identity(), Advanced, 0, 0, 100, 100, 100, 50, 50, 0, CounterClockwise, ArcOnly)
	if err != nil {
		t.Fatalf("Arc: %v", err)
	}
	_, kinds := p.Entries()
	if len(kinds) != 4 {
		t.Fatalf("got %d entries, want 4 (1 MOVE + 3 BEZIER)", len(kinds))
	}
	if kinds[0].Primary() != Move {
		t.Fatalf("entry 0 = %v, want Move", kinds[0])
	}
	for i := 1; i < 4; i++ {
		if kinds[i].Primary() != Bezier {
			t.Fatalf("entry %d = %v, want Bezier", i, kinds[i])
		}
	}
	if kinds[3].Closed() {
		t.Fatalf("ArcOnly must not close the figure")
	}
}

// TestPolyDrawBadBezierS5 is scenario S5 from spec §8.
func TestPolyDrawBadBezierS5(t *testing.T) {
	p := New()
	p.MoveTo(geom.Identity(), 0, 0)
	err := p.PolyDraw(geom.Identity(),
		[]geom.Point{{X: 1, Y: 1}, {X: 2, Y: 2}},
		[]PathPointType{PtBezier, PtBezier},
		[]bool{false, false},
	)
	if err != ErrCannotComplete {
		t.Fatalf("got err %v, want ErrCannotComplete", err)
	}
	if p.Cursor() != (Point{X: 0, Y: 0}) {
		t.Fatalf("cursor = %v, want (0,0) restored", p.Cursor())
	}
}

func TestPolygonClosesEachSubRun(t *testing.T) {
	p := New()
	err := p.PolyPolygon(geom.Identity(), [][]geom.Point{
		{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}},
		{{X: 20, Y: 20}, {X: 30, Y: 20}, {X: 30, Y: 30}},
	})
	if err != nil {
		t.Fatalf("PolyPolygon: %v", err)
	}
	_, kinds := p.Entries()
	if len(kinds) != 6 {
		t.Fatalf("got %d entries, want 6", len(kinds))
	}
	if kinds[0].Primary() != Move || kinds[3].Primary() != Move {
		t.Fatalf("leading entries of each sub-run must be Move: %v", kinds)
	}
	if !kinds[2].Closed() || !kinds[5].Closed() {
		t.Fatalf("last entry of each sub-run must be closed: %v", kinds)
	}
}
