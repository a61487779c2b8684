package gdi

import (
	"testing"

	"github.com/mancoi64/gdipath/geom"
	"github.com/mancoi64/gdipath/gpath"
)

// fakeContext is a fixed, identity-transform Context for tests.
type fakeContext struct {
	pen      gpath.PenStyle
	fillMode gpath.FillMode
	arcDir   gpath.ArcDirection
	gfxMode  gpath.GraphicsMode
	pos      geom.Point
}

func (f *fakeContext) WorldToDevice() geom.Affine2D    { return geom.Identity() }
func (f *fakeContext) DeviceToLogical() geom.Affine2D  { return geom.Identity() }
func (f *fakeContext) Pen() gpath.PenStyle             { return f.pen }
func (f *fakeContext) FillMode() gpath.FillMode        { return f.fillMode }
func (f *fakeContext) ArcDirection() gpath.ArcDirection { return f.arcDir }
func (f *fakeContext) GraphicsMode() gpath.GraphicsMode { return f.gfxMode }
func (f *fakeContext) Position() geom.Point             { return f.pos }

// fakeBackend is a passthrough GeometryOps implementation (a second,
// independent *gpath.Path standing in for direct rasterizer drawing)
// plus a recording Rasterizer used to assert fill/stroke/clip calls.
type fakeBackend struct {
	*gpath.Path
	filled   *gpath.Region
	stroked  *gpath.Path
	clipped  *gpath.Region
}

func (b *fakeBackend) Fill(r *gpath.Region, mode gpath.FillMode) { b.filled = r }
func (b *fakeBackend) Stroke(p *gpath.Path)                      { b.stroked = p }
func (b *fakeBackend) SetClip(r *gpath.Region)                   { b.clipped = r }

func newTestDC() (*DC, *fakeBackend) {
	backend := &fakeBackend{Path: gpath.New()}
	ctx := &fakeContext{pen: gpath.PenStyle{Width: 2, Cap: gpath.FlatCap, Join: gpath.BevelJoin, MiterLimit: 4}}
	return NewDC(ctx, backend), backend
}

func TestBeginEndPathRectangle(t *testing.T) {
	dc, _ := newTestDC()
	dc.BeginPath()
	if err := dc.Rectangle(10, 20, 30, 40); err != nil {
		t.Fatalf("Rectangle: %v", err)
	}
	if err := dc.EndPath(); err != nil {
		t.Fatalf("EndPath: %v", err)
	}
	pts, kinds, count, err := dc.GetPath(0)
	if err != nil {
		t.Fatalf("GetPath: %v", err)
	}
	if count != 4 {
		t.Fatalf("got count %d, want 4", count)
	}
	if pts != nil || kinds != nil {
		t.Fatalf("capacity=0 must not copy")
	}
}

func TestGetPathCopiesInLogicalSpace(t *testing.T) {
	dc, _ := newTestDC()
	dc.BeginPath()
	if err := dc.Rectangle(10, 20, 30, 40); err != nil {
		t.Fatalf("Rectangle: %v", err)
	}
	if err := dc.EndPath(); err != nil {
		t.Fatalf("EndPath: %v", err)
	}
	pts, kinds, count, err := dc.GetPath(4)
	if err != nil {
		t.Fatalf("GetPath: %v", err)
	}
	if count != 4 || len(pts) != 4 {
		t.Fatalf("got %d points, want 4", len(pts))
	}
	want := []geom.Point{{X: 30, Y: 20}, {X: 10, Y: 20}, {X: 10, Y: 40}, {X: 30, Y: 40}}
	for i, p := range want {
		if pts[i] != p {
			t.Fatalf("point %d = %v, want %v", i, pts[i], p)
		}
	}
	if kinds[0].Primary() != gpath.Move || !kinds[3].Closed() {
		t.Fatalf("unexpected kinds: %v", kinds)
	}
}

func TestGetPathUndersizedCapacity(t *testing.T) {
	dc, _ := newTestDC()
	dc.BeginPath()
	if err := dc.Rectangle(0, 0, 10, 10); err != nil {
		t.Fatalf("Rectangle: %v", err)
	}
	if err := dc.EndPath(); err != nil {
		t.Fatalf("EndPath: %v", err)
	}
	if _, _, _, err := dc.GetPath(2); err != gpath.ErrInvalidParameter {
		t.Fatalf("got err %v, want ErrInvalidParameter", err)
	}
}

func TestEndPathWithoutOpenFails(t *testing.T) {
	dc, _ := newTestDC()
	if err := dc.EndPath(); err != gpath.ErrCannotComplete {
		t.Fatalf("got err %v, want ErrCannotComplete", err)
	}
}

func TestAbortPathIsClean(t *testing.T) {
	dc, _ := newTestDC()
	dc.BeginPath()
	if err := dc.LineTo(1, 1); err != nil {
		t.Fatalf("LineTo: %v", err)
	}
	if err := dc.AbortPath(); err != nil {
		t.Fatalf("AbortPath: %v", err)
	}
	dc.BeginPath()
	if err := dc.EndPath(); err != nil {
		t.Fatalf("EndPath: %v", err)
	}
	_, _, count, err := dc.GetPath(0)
	if err != nil {
		t.Fatalf("GetPath: %v", err)
	}
	if count != 0 {
		t.Fatalf("got count %d, want 0", count)
	}
}

func TestFillPathConsumesAndInvokesBackend(t *testing.T) {
	dc, backend := newTestDC()
	dc.BeginPath()
	if err := dc.Rectangle(0, 0, 10, 10); err != nil {
		t.Fatalf("Rectangle: %v", err)
	}
	if err := dc.EndPath(); err != nil {
		t.Fatalf("EndPath: %v", err)
	}
	if err := dc.FillPath(); err != nil {
		t.Fatalf("FillPath: %v", err)
	}
	if backend.filled == nil {
		t.Fatalf("expected backend.Fill to be invoked")
	}
	if _, _, _, err := dc.GetPath(0); err != gpath.ErrCannotComplete {
		t.Fatalf("expected closed path consumed, got err %v", err)
	}
}

func TestSaveRestoreRoundTrip(t *testing.T) {
	dc, _ := newTestDC()
	dc.BeginPath()
	if err := dc.Rectangle(0, 0, 10, 10); err != nil {
		t.Fatalf("Rectangle: %v", err)
	}
	if err := dc.EndPath(); err != nil {
		t.Fatalf("EndPath: %v", err)
	}
	dc.Save()

	dc.BeginPath()
	if err := dc.LineTo(5, 5); err != nil {
		t.Fatalf("LineTo: %v", err)
	}
	if !dc.Restore() {
		t.Fatalf("Restore: expected a saved frame")
	}
	if dc.IsPathOpen() {
		t.Fatalf("expected restored state to have no open recorder")
	}
	_, _, count, err := dc.GetPath(0)
	if err != nil {
		t.Fatalf("GetPath: %v", err)
	}
	if count != 4 {
		t.Fatalf("got count %d, want 4 (restored rectangle)", count)
	}
}

func TestTextOutRoutesThroughDriver(t *testing.T) {
	dc, _ := newTestDC()
	dc.BeginPath()
	contour := gpath.GlyphContour{
		Start: gpath.FixedPoint{X: 0, Y: 0},
		Curves: []gpath.GlyphCurve{
			{Kind: gpath.GlyphCurveLine, Points: []gpath.FixedPoint{
				{X: 10 << 16, Y: 0},
				{X: 10 << 16, Y: 10 << 16},
			}},
		},
	}
	if err := dc.TextOut([]gpath.GlyphContour{contour}); err != nil {
		t.Fatalf("TextOut: %v", err)
	}
	if err := dc.EndPath(); err != nil {
		t.Fatalf("EndPath: %v", err)
	}
	_, _, count, err := dc.GetPath(0)
	if err != nil {
		t.Fatalf("GetPath: %v", err)
	}
	if count != 3 {
		t.Fatalf("got count %d, want 3 (MOVE + 2 LINE)", count)
	}
}
