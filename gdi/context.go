// Package gdi implements the driver façade described in spec §4.G: the
// state machine that binds the path recorder into a device context's
// driver stack, redirecting geometric drawing calls to the recorder
// while a path is open and routing terminal operations (flatten, widen,
// region conversion, fill, stroke, extraction) through package gpath.
package gdi

import (
	"github.com/mancoi64/gdipath/geom"
	"github.com/mancoi64/gdipath/gpath"
)

// Context is the set of device-context state this package only reads:
// the world-to-device and device-to-logical transforms, the current pen
// and fill mode, the arc sweep convention, the legacy graphics mode, and
// the DC's current position (spec §6, "Consumed from external
// collaborators"). A real device context implements this by reporting
// its own live state; this package never mutates it.
type Context interface {
	WorldToDevice() geom.Affine2D
	DeviceToLogical() geom.Affine2D
	Pen() gpath.PenStyle
	FillMode() gpath.FillMode
	ArcDirection() gpath.ArcDirection
	GraphicsMode() gpath.GraphicsMode
	Position() geom.Point
}

// GeometryOps is the capability set spec §9 calls for: a single
// interface implemented by two driver-stack variants, "recording" (a
// *gpath.Path) and "passthrough" (direct rasterizer drawing), so the
// façade can redirect without any type-specific branching beyond "is a
// path open". *gpath.Path satisfies this interface already.
type GeometryOps interface {
	MoveTo(tr geom.Affine2D, x, y float32)
	LineTo(tr geom.Affine2D, x, y float32) error
	PolyLineTo(tr geom.Affine2D, pts []geom.Point) error
	PolyBezierTo(tr geom.Affine2D, pts []geom.Point) error
	Rectangle(tr geom.Affine2D, mode gpath.GraphicsMode, x1, y1, x2, y2 float32) error
	RoundRect(tr geom.Affine2D, mode gpath.GraphicsMode, x1, y1, x2, y2, ew, eh float32) error
	Arc(tr geom.Affine2D, mode gpath.GraphicsMode, x1, y1, x2, y2, xs, ys, xe, ye float32, dir gpath.ArcDirection, lines gpath.ArcLines) error
	AngleArc(tr geom.Affine2D, mode gpath.GraphicsMode, cx, cy, r, startAngle, sweepAngle float32) error
	Polyline(tr geom.Affine2D, pts []geom.Point) error
	Polygon(tr geom.Affine2D, pts []geom.Point) error
	PolyPolyline(tr geom.Affine2D, polys [][]geom.Point) error
	PolyPolygon(tr geom.Affine2D, polys [][]geom.Point) error
	PolyDraw(tr geom.Affine2D, pts []geom.Point, types []gpath.PathPointType, closeBits []bool) error
	AppendGlyphOutline(tr geom.Affine2D, contours []gpath.GlyphContour) error
	CloseFigure()
}

// Rasterizer is the external fill/stroke/clip entry point invoked after
// a terminal operation has reduced a closed path to a region or widened
// outline (spec §6, "Rasterizer fill/stroke entry points"). Its actual
// pixel-level behavior is out of scope for this package.
type Rasterizer interface {
	Fill(r *gpath.Region, mode gpath.FillMode)
	Stroke(widened *gpath.Path)
	SetClip(r *gpath.Region)
}

// Backend is the passthrough driver-stack variant plus the rasterizer
// entry points: everything this package delegates to when it is not
// itself recording or converting a path.
type Backend interface {
	GeometryOps
	Rasterizer
}

var _ GeometryOps = (*gpath.Path)(nil)
