package gpath

import (
	"math"

	"github.com/mancoi64/gdipath/geom"
)

// Fixed is a 16.16 fixed-point coordinate, the format glyph outline
// contours arrive in from the outline extractor (spec §4.C, §9). The low
// 16 bits are the fractional part.
type Fixed int32

// FixedPoint is a glyph outline coordinate pair in Fixed units.
type FixedPoint struct {
	X, Y Fixed
}

// toGeom converts a fixed-point coordinate to a floating-point point not
// yet transformed to device space, with no rounding yet: rounding only
// happens once, at the point where a coordinate is actually appended to
// the path.
func (p FixedPoint) toGeom() geom.Point {
	return geom.Pt(float32(p.X)/65536, float32(p.Y)/65536)
}

// roundHalfUp implements spec §9's "round half up toward +∞" fixed-point
// conversion rule, used for glyph coordinates in place of the
// round-half-away-from-zero rule every other coordinate in this package
// uses (see path.go's round). Unlike that rule, -0.5 rounds to 0, not -1.
func roundHalfUp(v float32) int32 {
	return int32(math.Floor(float64(v) + 0.5))
}

func toDevicePointHalfUp(p geom.Point) Point {
	return Point{X: roundHalfUp(p.X), Y: roundHalfUp(p.Y)}
}

// GlyphCurveKind selects how a GlyphCurve's points continue a contour.
type GlyphCurveKind uint8

const (
	// GlyphCurveLine appends each point as a straight LINE.
	GlyphCurveLine GlyphCurveKind = iota
	// GlyphCurveSpline expands a run of off-curve control points plus a
	// trailing on-curve anchor into cubic Béziers via midpoint
	// construction (spec §4.C).
	GlyphCurveSpline
)

// GlyphCurve is one curve within a glyph contour. For GlyphCurveLine,
// Points holds one or more on-curve points appended in order. For
// GlyphCurveSpline, Points holds the run's off-curve control points
// followed by its final on-curve anchor — i.e. p[1..n] from spec §4.C,
// with p[0] being whatever anchor the contour's cursor already sits at.
type GlyphCurve struct {
	Kind   GlyphCurveKind
	Points []FixedPoint
}

// GlyphContour is one closed contour of a glyph outline: a start point
// followed by a sequence of curves, terminated with CloseFigure.
type GlyphContour struct {
	Start  FixedPoint
	Curves []GlyphCurve
}

// AppendGlyphOutline records a glyph's outline contours (spec §4.C,
// "Glyph outline path"), one closed figure per contour. The outline
// itself is opaque to this package: it is read from whatever stream the
// external glyph outline extractor produced for one character.
func (p *Path) AppendGlyphOutline(tr geom.Affine2D, contours []GlyphContour) error {
	for _, c := range contours {
		if err := p.appendContour(tr, c); err != nil {
			return err
		}
	}
	return nil
}

func (p *Path) appendContour(tr geom.Affine2D, c GlyphContour) error {
	anchor := transformFixed(tr, c.Start)
	p.MoveToDevice(toDevicePointHalfUp(anchor))

	for _, curve := range c.Curves {
		switch curve.Kind {
		case GlyphCurveLine:
			for _, fp := range curve.Points {
				pt := transformFixed(tr, fp)
				if err := p.LineToDevice(toDevicePointHalfUp(pt)); err != nil {
					return err
				}
				anchor = pt
			}
		case GlyphCurveSpline:
			var err error
			anchor, err = p.appendSpline(tr, anchor, curve.Points)
			if err != nil {
				return err
			}
		}
	}
	p.CloseFigure()
	return nil
}

// appendSpline expands a run of off-curve control points (all but the
// last entry of pts) plus a trailing on-curve anchor (the last entry)
// into cubic Béziers, elevating each quadratic control point to a cubic
// pair via the standard 2/3 construction, and sharing the midpoint
// between consecutive off-curve points as the implicit on-curve anchor
// between segments (spec §4.C).
func (p *Path) appendSpline(tr geom.Affine2D, prevAnchor geom.Point, pts []FixedPoint) (geom.Point, error) {
	if len(pts) == 0 {
		return prevAnchor, nil
	}
	ctrls := pts[:len(pts)-1]
	final := transformFixed(tr, pts[len(pts)-1])
	if len(ctrls) == 0 {
		// No off-curve points at all: the run is a plain line.
		if err := p.LineToDevice(toDevicePointHalfUp(final)); err != nil {
			return prevAnchor, err
		}
		return final, nil
	}

	for i, fp := range ctrls {
		ctrl := transformFixed(tr, fp)
		var end geom.Point
		if i == len(ctrls)-1 {
			end = final
		} else {
			next := transformFixed(tr, ctrls[i+1])
			end = ctrl.Add(next).Mul(0.5)
		}
		c1 := prevAnchor.Add(ctrl.Sub(prevAnchor).Mul(2.0 / 3.0))
		c2 := end.Add(ctrl.Sub(end).Mul(2.0 / 3.0))
		devPts := []Point{toDevicePointHalfUp(c1), toDevicePointHalfUp(c2), toDevicePointHalfUp(end)}
		if err := p.PolyBezierToDevice(devPts); err != nil {
			return prevAnchor, err
		}
		prevAnchor = end
	}
	return prevAnchor, nil
}

func transformFixed(tr geom.Affine2D, fp FixedPoint) geom.Point {
	return tr.Transform(fp.toGeom())
}
