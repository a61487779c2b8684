package gpath

import (
	"testing"

	"github.com/mancoi64/gdipath/geom"
)

func fx(v float32) Fixed { return Fixed(v * 65536) }

func TestAppendGlyphOutlineLineContour(t *testing.T) {
	p := New()
	contours := []GlyphContour{{
		Start: FixedPoint{fx(0), fx(0)},
		Curves: []GlyphCurve{
			{Kind: GlyphCurveLine, Points: []FixedPoint{{fx(10), fx(0)}, {fx(10), fx(10)}}},
		},
	}}
	if err := p.AppendGlyphOutline(geom.Identity(), contours); err != nil {
		t.Fatalf("AppendGlyphOutline: %v", err)
	}
	pts, kinds := p.Entries()
	if len(pts) != 3 {
		t.Fatalf("got %d entries, want 3", len(pts))
	}
	if kinds[0].Primary() != Move || kinds[1].Primary() != Line || kinds[2].Primary() != Line {
		t.Fatalf("unexpected kinds: %v", kinds)
	}
	if !kinds[2].Closed() {
		t.Fatalf("expected contour to close")
	}
}

func TestAppendGlyphOutlineSingleOffCurve(t *testing.T) {
	p := New()
	contours := []GlyphContour{{
		Start: FixedPoint{fx(0), fx(0)},
		Curves: []GlyphCurve{
			{Kind: GlyphCurveSpline, Points: []FixedPoint{{fx(5), fx(10)}, {fx(10), fx(0)}}},
		},
	}}
	if err := p.AppendGlyphOutline(geom.Identity(), contours); err != nil {
		t.Fatalf("AppendGlyphOutline: %v", err)
	}
	pts, kinds := p.Entries()
	if len(pts) != 4 {
		t.Fatalf("got %d entries, want 4 (move + one cubic triple)", len(pts))
	}
	if kinds[0].Primary() != Move {
		t.Fatalf("entry 0 must be MOVE")
	}
	for _, k := range kinds[1:] {
		if k.Primary() != Bezier {
			t.Fatalf("expected BEZIER run, got %v", kinds)
		}
	}
}

func TestAppendGlyphOutlineTwoOffCurveSharesMidpoint(t *testing.T) {
	p := New()
	contours := []GlyphContour{{
		Start: FixedPoint{fx(0), fx(0)},
		Curves: []GlyphCurve{
			{Kind: GlyphCurveSpline, Points: []FixedPoint{
				{fx(5), fx(10)}, {fx(15), fx(10)}, {fx(20), fx(0)},
			}},
		},
	}}
	if err := p.AppendGlyphOutline(geom.Identity(), contours); err != nil {
		t.Fatalf("AppendGlyphOutline: %v", err)
	}
	pts, kinds := p.Entries()
	if len(pts) != 7 {
		t.Fatalf("got %d entries, want 7 (move + two cubic triples)", len(pts))
	}
	if kinds[0].Primary() != Move {
		t.Fatalf("entry 0 must be MOVE")
	}
	for _, k := range kinds[1:] {
		if k.Primary() != Bezier {
			t.Fatalf("expected BEZIER run, got %v", kinds)
		}
	}
}
