package gpath

import (
	"testing"

	"github.com/mancoi64/gdipath/geom"
)

func TestToRegionEmptyPathIsNil(t *testing.T) {
	p := New()
	r, err := ToRegion(p, Alternate)
	if err != nil {
		t.Fatalf("ToRegion: %v", err)
	}
	if r != nil {
		t.Fatalf("expected nil region for empty path")
	}
}

func TestToRegionRectangleMembership(t *testing.T) {
	p := New()
	if err := p.Rectangle(geom.Identity(), Advanced, 10, 10, 20, 20); err != nil {
		t.Fatalf("Rectangle: %v", err)
	}
	r, err := ToRegion(p, Alternate)
	if err != nil {
		t.Fatalf("ToRegion: %v", err)
	}
	if r == nil {
		t.Fatalf("expected non-nil region")
	}
	if !r.Contains(15, 15) {
		t.Fatalf("expected (15,15) inside rectangle region")
	}
	if r.Contains(5, 5) {
		t.Fatalf("expected (5,5) outside rectangle region")
	}
	if r.Contains(25, 25) {
		t.Fatalf("expected (25,25) outside rectangle region")
	}
}
