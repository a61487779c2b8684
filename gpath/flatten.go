package gpath

import (
	"math"

	"github.com/mancoi64/gdipath/geom"
)

// flattenTolerance bounds the maximum deviation, in device pixels, between
// a cubic Bézier and the polyline approximating it.
const flattenTolerance = 0.25

func toGeomPoint(p Point) geom.Point {
	return geom.Pt(float32(p.X), float32(p.Y))
}

// subdivideCubic is the external flattening utility referenced in spec
// §4.D and §6 (subdivide(P0,P1,P2,P3) -> line points): it recursively
// bisects the curve with de Casteljau's algorithm until each piece is
// within tolerance of a straight line, and returns every sampled point
// after P0 (always at least the endpoint, so always >= 1 point; the
// recursive call always contributes at least 2 when it subdivides).
func subdivideCubic(p0, p1, p2, p3 geom.Point, tol float32, out []geom.Point) []geom.Point {
	if cubicIsFlat(p0, p1, p2, p3, tol) {
		return append(out, p3)
	}
	mid := func(a, b geom.Point) geom.Point { return a.Add(b).Mul(0.5) }
	p01, p12, p23 := mid(p0, p1), mid(p1, p2), mid(p2, p3)
	p012, p123 := mid(p01, p12), mid(p12, p23)
	p0123 := mid(p012, p123)

	out = subdivideCubic(p0, p01, p012, p0123, tol, out)
	out = subdivideCubic(p0123, p123, p23, p3, tol, out)
	return out
}

// cubicIsFlat reports whether both control points lie within tol of the
// chord p0-p3.
func cubicIsFlat(p0, p1, p2, p3 geom.Point, tol float32) bool {
	return pointLineDist(p1, p0, p3) <= tol && pointLineDist(p2, p0, p3) <= tol
}

func pointLineDist(p, a, b geom.Point) float32 {
	d := b.Sub(a)
	length := float32(math.Hypot(float64(d.X), float64(d.Y)))
	if length < 1e-6 {
		// Degenerate chord: fall back to distance from a.
		e := p.Sub(a)
		return float32(math.Hypot(float64(e.X), float64(e.Y)))
	}
	cross := d.X*(p.Y-a.Y) - d.Y*(p.X-a.X)
	if cross < 0 {
		cross = -cross
	}
	return cross / length
}

// Flatten produces a new path containing only MOVE and LINE entries,
// preserving CloseFigure bits (spec §4.D). Flattening a path with no
// Bézier entries is the identity, up to a fresh copy.
func Flatten(src *Path) (*Path, error) {
	pts, kinds := src.Entries()
	dst := New()

	var anchor Point
	for i := 0; i < len(pts); {
		k := kinds[i].Primary()
		switch k {
		case Move, Line:
			kind := Move
			if k == Line {
				kind = Line
			}
			idx, err := dst.addPointsDevice([]Point{pts[i]}, kind)
			if err != nil {
				return nil, err
			}
			if kinds[i].Closed() {
				dst.buf.OrKind(idx, CloseFigure)
			}
			anchor = pts[i]
			i++
		case Bezier:
			p1, p2, p3 := pts[i], pts[i+1], pts[i+2]
			closed := kinds[i+2].Closed()
			line := subdivideCubic(toGeomPoint(anchor), toGeomPoint(p1), toGeomPoint(p2), toGeomPoint(p3), flattenTolerance, nil)
			for j, gp := range line {
				dp := toDevicePoint(gp)
				idx, err := dst.addPointsDevice([]Point{dp}, Line)
				if err != nil {
					return nil, err
				}
				if closed && j == len(line)-1 {
					dst.buf.OrKind(idx, CloseFigure)
				}
			}
			anchor = p3
			i += 3
		default:
			i++
		}
	}
	dst.cursor = src.cursor
	dst.newStroke = true
	return dst, nil
}
