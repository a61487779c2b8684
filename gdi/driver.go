package gdi

import (
	"math"

	"github.com/mancoi64/gdipath/geom"
	"github.com/mancoi64/gdipath/gpath"
)

// snapshot is one Save()'d frame of DC state (spec §4.G, "Save/restore").
type snapshot struct {
	closed   *gpath.Path
	recorder *gpath.Path
	position geom.Point
}

// DC binds a path recorder into a device context's driver stack. The
// zero value is not ready to use; construct with NewDC.
type DC struct {
	ctx     Context
	backend Backend

	recorder *gpath.Path // non-nil while a path frame is open
	closed   *gpath.Path // the DC's closed-path slot

	position geom.Point
	saved    []snapshot
}

// NewDC returns a DC reading state from ctx and routing non-recording
// geometry and all rasterization through backend.
func NewDC(ctx Context, backend Backend) *DC {
	return &DC{ctx: ctx, backend: backend, position: ctx.Position()}
}

// driver returns whichever of the two driver-stack variants is active:
// the open recorder, or the passthrough backend.
func (dc *DC) driver() GeometryOps {
	if dc.recorder != nil {
		return dc.recorder
	}
	return dc.backend
}

// IsPathOpen reports whether a path recorder frame is currently pushed.
func (dc *DC) IsPathOpen() bool { return dc.recorder != nil }

// BeginPath pushes a path recorder frame, seeding its cursor from the
// DC's current position and discarding any previously closed path. A
// no-op if a path is already open (spec §4.G).
func (dc *DC) BeginPath() {
	if dc.recorder != nil {
		return
	}
	dc.recorder = gpath.New()
	dc.recorder.MoveToDevice(gpath.ToDevicePoint(dc.ctx.WorldToDevice(), dc.position))
	dc.closed = nil
}

// EndPath detaches the recorder frame and moves its path into the
// closed-path slot. Fails with ErrCannotComplete if no recorder is open.
func (dc *DC) EndPath() error {
	if dc.recorder == nil {
		return gpath.ErrCannotComplete
	}
	dc.closed = dc.recorder
	dc.recorder = nil
	return nil
}

// AbortPath detaches the recorder frame and discards its path. Fails
// with ErrCannotComplete if no recorder is open.
func (dc *DC) AbortPath() error {
	if dc.recorder == nil {
		return gpath.ErrCannotComplete
	}
	dc.recorder = nil
	return nil
}

// CloseFigure marks the current figure closed on whichever driver is
// active.
func (dc *DC) CloseFigure() {
	dc.driver().CloseFigure()
}

// MoveTo, LineTo and the rest of the geometric primitives below route to
// whichever driver-stack variant is active and track the DC's logical
// current position, independent of whether a path is open (spec §4.G,
// §9).

func (dc *DC) MoveTo(x, y float32) {
	dc.driver().MoveTo(dc.ctx.WorldToDevice(), x, y)
	dc.position = geom.Pt(x, y)
}

func (dc *DC) LineTo(x, y float32) error {
	if err := dc.driver().LineTo(dc.ctx.WorldToDevice(), x, y); err != nil {
		return err
	}
	dc.position = geom.Pt(x, y)
	return nil
}

func (dc *DC) PolyLineTo(pts []geom.Point) error {
	if err := dc.driver().PolyLineTo(dc.ctx.WorldToDevice(), pts); err != nil {
		return err
	}
	if len(pts) > 0 {
		dc.position = pts[len(pts)-1]
	}
	return nil
}

func (dc *DC) PolyBezierTo(pts []geom.Point) error {
	if err := dc.driver().PolyBezierTo(dc.ctx.WorldToDevice(), pts); err != nil {
		return err
	}
	if len(pts) > 0 {
		dc.position = pts[len(pts)-1]
	}
	return nil
}

func (dc *DC) Rectangle(x1, y1, x2, y2 float32) error {
	return dc.driver().Rectangle(dc.ctx.WorldToDevice(), dc.ctx.GraphicsMode(), x1, y1, x2, y2)
}

func (dc *DC) RoundRect(x1, y1, x2, y2, ew, eh float32) error {
	return dc.driver().RoundRect(dc.ctx.WorldToDevice(), dc.ctx.GraphicsMode(), x1, y1, x2, y2, ew, eh)
}

func (dc *DC) Arc(x1, y1, x2, y2, xs, ys, xe, ye float32, lines gpath.ArcLines) error {
	return dc.driver().Arc(dc.ctx.WorldToDevice(), dc.ctx.GraphicsMode(), x1, y1, x2, y2, xs, ys, xe, ye, dc.ctx.ArcDirection(), lines)
}

func (dc *DC) AngleArc(cx, cy, r, startAngle, sweepAngle float32) error {
	if err := dc.driver().AngleArc(dc.ctx.WorldToDevice(), dc.ctx.GraphicsMode(), cx, cy, r, startAngle, sweepAngle); err != nil {
		return err
	}
	end := startAngle + sweepAngle
	dc.position = geom.Pt(cx+r*float32(math.Cos(float64(end))), cy+r*float32(math.Sin(float64(end))))
	return nil
}

func (dc *DC) Polyline(pts []geom.Point) error {
	return dc.driver().Polyline(dc.ctx.WorldToDevice(), pts)
}

func (dc *DC) Polygon(pts []geom.Point) error {
	return dc.driver().Polygon(dc.ctx.WorldToDevice(), pts)
}

func (dc *DC) PolyPolyline(polys [][]geom.Point) error {
	return dc.driver().PolyPolyline(dc.ctx.WorldToDevice(), polys)
}

func (dc *DC) PolyPolygon(polys [][]geom.Point) error {
	return dc.driver().PolyPolygon(dc.ctx.WorldToDevice(), polys)
}

func (dc *DC) PolyDraw(pts []geom.Point, types []gpath.PathPointType, closeBits []bool) error {
	return dc.driver().PolyDraw(dc.ctx.WorldToDevice(), pts, types, closeBits)
}

// TextOut records one glyph outline per contour stream (spec §4.C "Glyph
// outline path", §6's ExtTextOut public operation). Like the rest of the
// shape constructors above, it routes through whichever driver-stack
// variant is active.
func (dc *DC) TextOut(contours []gpath.GlyphContour) error {
	return dc.driver().AppendGlyphOutline(dc.ctx.WorldToDevice(), contours)
}

// FlattenPath replaces the closed path with its flattened form.
func (dc *DC) FlattenPath() error {
	if dc.closed == nil {
		return gpath.ErrCannotComplete
	}
	flat, err := gpath.Flatten(dc.closed)
	if err != nil {
		return err
	}
	dc.closed = flat
	return nil
}

// WidenPath replaces the closed path with its stroked outline.
func (dc *DC) WidenPath() error {
	if dc.closed == nil {
		return gpath.ErrCannotComplete
	}
	widened, err := gpath.Widen(dc.closed, dc.ctx.Pen())
	if err != nil {
		return err
	}
	dc.closed = widened
	return nil
}

// PathToRegion converts and consumes the closed path.
func (dc *DC) PathToRegion() (*gpath.Region, error) {
	if dc.closed == nil {
		return nil, gpath.ErrCannotComplete
	}
	flat, err := gpath.Flatten(dc.closed)
	if err != nil {
		return nil, err
	}
	region, err := gpath.ToRegion(flat, dc.ctx.FillMode())
	if err != nil {
		return nil, err
	}
	dc.closed = nil
	return region, nil
}

// FillPath converts the closed path to a region, invokes the backend
// fill entry point, and consumes it.
func (dc *DC) FillPath() error {
	if dc.closed == nil {
		return gpath.ErrCannotComplete
	}
	flat, err := gpath.Flatten(dc.closed)
	if err != nil {
		return err
	}
	region, err := gpath.ToRegion(flat, dc.ctx.FillMode())
	if err != nil {
		return err
	}
	dc.backend.Fill(region, dc.ctx.FillMode())
	dc.closed = nil
	return nil
}

// StrokePath widens the closed path, invokes the backend stroke entry
// point, and consumes it.
func (dc *DC) StrokePath() error {
	if dc.closed == nil {
		return gpath.ErrCannotComplete
	}
	widened, err := gpath.Widen(dc.closed, dc.ctx.Pen())
	if err != nil {
		return err
	}
	dc.backend.Stroke(widened)
	dc.closed = nil
	return nil
}

// StrokeAndFillPath performs both FillPath and StrokePath against the
// same original closed path, then consumes it once.
func (dc *DC) StrokeAndFillPath() error {
	if dc.closed == nil {
		return gpath.ErrCannotComplete
	}
	flat, err := gpath.Flatten(dc.closed)
	if err != nil {
		return err
	}
	region, err := gpath.ToRegion(flat, dc.ctx.FillMode())
	if err != nil {
		return err
	}
	widened, err := gpath.Widen(dc.closed, dc.ctx.Pen())
	if err != nil {
		return err
	}
	dc.backend.Fill(region, dc.ctx.FillMode())
	dc.backend.Stroke(widened)
	dc.closed = nil
	return nil
}

// SelectClipPath converts the closed path to a region, installs it as
// the backend's clip, and consumes it.
func (dc *DC) SelectClipPath() error {
	if dc.closed == nil {
		return gpath.ErrCannotComplete
	}
	flat, err := gpath.Flatten(dc.closed)
	if err != nil {
		return err
	}
	region, err := gpath.ToRegion(flat, dc.ctx.FillMode())
	if err != nil {
		return err
	}
	dc.backend.SetClip(region)
	dc.closed = nil
	return nil
}

// GetPath copies the closed path's entries in logical coordinates.
// capacity==0 returns the count without copying; a nonzero capacity
// smaller than the count fails with ErrInvalidParameter. GetPath does
// not consume the closed path (spec §4.G lists it outside both the
// "replace" and "consume" terminal-operation groups).
func (dc *DC) GetPath(capacity int) (points []geom.Point, kinds []gpath.Kind, count int, err error) {
	if dc.closed == nil {
		return nil, nil, 0, gpath.ErrCannotComplete
	}
	devPts, devKinds := dc.closed.Entries()
	count = len(devPts)
	if capacity == 0 {
		return nil, nil, count, nil
	}
	if capacity < count {
		return nil, nil, 0, gpath.ErrInvalidParameter
	}
	d2l := dc.ctx.DeviceToLogical()
	points = make([]geom.Point, count)
	for i, p := range devPts {
		points[i] = d2l.Transform(geom.Pt(float32(p.X), float32(p.Y)))
	}
	kinds = make([]gpath.Kind, count)
	copy(kinds, devKinds)
	return points, kinds, count, nil
}

// Save snapshots the closed path and, if a recorder is open, the open
// path too (spec §4.G, "Save/restore").
func (dc *DC) Save() {
	snap := snapshot{position: dc.position}
	if dc.closed != nil {
		snap.closed = dc.closed.Clone()
	}
	if dc.recorder != nil {
		snap.recorder = dc.recorder.Clone()
	}
	dc.saved = append(dc.saved, snap)
}

// Restore pops the most recent Save snapshot, reinstating the recorder
// frame if the snapshot had one open. Reports false if there was nothing
// to restore.
func (dc *DC) Restore() bool {
	n := len(dc.saved)
	if n == 0 {
		return false
	}
	snap := dc.saved[n-1]
	dc.saved = dc.saved[:n-1]
	dc.closed = snap.closed
	dc.recorder = snap.recorder
	dc.position = snap.position
	return true
}
