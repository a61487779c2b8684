// Package gpath records device-context drawing primitives into a path —
// a sequence of MOVE/LINE/BEZIER entries in device space — and implements
// the closed-form transformations on it: flattening, widening, region
// conversion, and logical-space readback. Shape constructors (rectangles,
// arcs, polygons, glyph outlines, …) build on the same recorder.
package gpath

import (
	"math"

	"github.com/mancoi64/gdipath/geom"
	"github.com/mancoi64/gdipath/internal/raw"
)

// Kind re-exports the entry tag so callers of this package never need to
// import internal/raw directly.
type Kind = raw.Kind

const (
	Move        = raw.Move
	Line        = raw.Line
	Bezier      = raw.Bezier
	CloseFigure = raw.CloseFigure
)

// Point is a device-space integer coordinate, as stored in a Path.
type Point = raw.Point

// Path is a recorded sequence of path entries plus the auxiliary cursor
// and new-stroke state described in spec §3. The zero value is an empty,
// ready-to-use path.
type Path struct {
	buf raw.Buffer

	cursor    Point
	newStroke bool
}

// New returns an empty path with its cursor at the origin.
func New() *Path {
	return &Path{newStroke: true}
}

// Len reports the number of entries recorded.
func (p *Path) Len() int { return p.buf.Len() }

// Cursor returns the current device-space position.
func (p *Path) Cursor() Point { return p.cursor }

// Entries returns the backing points and kinds slices. Callers must not
// retain them past the next mutation of p.
func (p *Path) Entries() ([]Point, []Kind) { return p.buf.Points, p.buf.Kinds }

// Clone returns a deep copy of p, as used when a device context with an
// open recorder is saved.
func (p *Path) Clone() *Path {
	c := &Path{
		buf:       p.buf.Clone(),
		cursor:    p.cursor,
		newStroke: p.newStroke,
	}
	return c
}

// round converts a logical-space floating point coordinate, already
// transformed to device space, to the integer representation stored in
// the buffer. Uses standard round-half-away-from-zero.
func round(f float32) int32 {
	if f >= 0 {
		return int32(math.Floor(float64(f) + 0.5))
	}
	return int32(math.Ceil(float64(f) - 0.5))
}

func toDevicePoint(g geom.Point) Point {
	return Point{X: round(g.X), Y: round(g.Y)}
}

// transformToDevice applies tr to a logical point and rounds to device
// coordinates.
func transformToDevice(tr geom.Affine2D, x, y float32) Point {
	return toDevicePoint(tr.Transform(geom.Pt(x, y)))
}

// ToDevicePoint is transformToDevice exported for callers outside this
// package that need to seed a path's cursor directly, such as the driver
// façade converting a device context's logical-space current position on
// BeginPath (spec §4.G).
func ToDevicePoint(tr geom.Affine2D, p geom.Point) Point {
	return transformToDevice(tr, p.X, p.Y)
}

// addPointsDevice is the §4.A add_points_device primitive: it appends pts
// unchanged (already in device space) and returns the index of the first
// new entry so callers can patch its kind.
func (p *Path) addPointsDevice(pts []Point, kind Kind) (int, error) {
	first, err := p.buf.AddPoints(pts, kind)
	if err != nil {
		return 0, ErrOutOfMemory
	}
	return first, nil
}

// ensureStrokeStart implements the §4.B rule: avoid a redundant MOVE when
// consecutive segments flow naturally from the last entry, but open a new
// stroke after close_figure or an explicit move_to.
func (p *Path) ensureStrokeStart() error {
	if !p.newStroke {
		if last, kind, ok := p.buf.Last(); ok && !kind.Closed() && last == p.cursor {
			return nil
		}
	}
	if _, err := p.addPointsDevice([]Point{p.cursor}, Move); err != nil {
		return err
	}
	p.newStroke = false
	return nil
}

// MoveTo sets the cursor from a logical-space point and opens a new
// stroke. No entry is appended.
func (p *Path) MoveTo(tr geom.Affine2D, x, y float32) {
	p.cursor = transformToDevice(tr, x, y)
	p.newStroke = true
}

// MoveToDevice is MoveTo for a point already in device space, used
// internally by shape constructors that compute their geometry directly in
// device coordinates.
func (p *Path) MoveToDevice(pt Point) {
	p.cursor = pt
	p.newStroke = true
}

// LineTo appends one LINE entry at the transformed point, preceded by an
// implicit MOVE if necessary.
func (p *Path) LineTo(tr geom.Affine2D, x, y float32) error {
	return p.LineToDevice(transformToDevice(tr, x, y))
}

// LineToDevice is LineTo for a point already in device space.
func (p *Path) LineToDevice(pt Point) error {
	if err := p.ensureStrokeStart(); err != nil {
		return err
	}
	if _, err := p.addPointsDevice([]Point{pt}, Line); err != nil {
		return err
	}
	p.cursor = pt
	return nil
}

// PolyLineTo appends a batch of LINE entries, logical-space.
func (p *Path) PolyLineTo(tr geom.Affine2D, pts []geom.Point) error {
	dev := make([]Point, len(pts))
	for i, pt := range pts {
		dev[i] = toDevicePoint(tr.Transform(pt))
	}
	return p.PolyLineToDevice(dev)
}

// PolyLineToDevice is PolyLineTo for points already in device space.
func (p *Path) PolyLineToDevice(pts []Point) error {
	if len(pts) == 0 {
		return nil
	}
	if err := p.ensureStrokeStart(); err != nil {
		return err
	}
	if _, err := p.addPointsDevice(pts, Line); err != nil {
		return err
	}
	p.cursor = pts[len(pts)-1]
	return nil
}

// PolyBezierTo appends len(pts)/3 cubic BEZIER triples, logical-space.
// len(pts) must be a multiple of 3.
func (p *Path) PolyBezierTo(tr geom.Affine2D, pts []geom.Point) error {
	dev := make([]Point, len(pts))
	for i, pt := range pts {
		dev[i] = toDevicePoint(tr.Transform(pt))
	}
	return p.PolyBezierToDevice(dev)
}

// PolyBezierToDevice is PolyBezierTo for points already in device space.
func (p *Path) PolyBezierToDevice(pts []Point) error {
	if len(pts) == 0 {
		return nil
	}
	if len(pts)%3 != 0 {
		return ErrCannotComplete
	}
	if err := p.ensureStrokeStart(); err != nil {
		return err
	}
	if _, err := p.addPointsDevice(pts, Bezier); err != nil {
		return err
	}
	p.cursor = pts[len(pts)-1]
	return nil
}

// CloseFigure sets the CloseFigure bit on the last entry and opens a new
// stroke. No-op on an empty path.
func (p *Path) CloseFigure() {
	n := p.buf.Len()
	if n == 0 {
		return
	}
	p.buf.OrKind(n-1, CloseFigure)
	p.newStroke = true
}
