package gpath

import (
	"math"

	"github.com/mancoi64/gdipath/geom"
)

// quadrantBeziers emits a run of cubic Bézier control triples approximating
// the elliptical arc inscribed in box, swept from angleStart to angleEnd
// (angleEnd may be outside [-2π,2π]; each segment spans at most π/2 and is
// clamped by angleEnd). It is shared by the arc/chord/pie/ellipse/arcTo
// shape constructors (§4.C) and by the widener's round caps and joins
// (§4.E), which call it with a circular box centered on the join pivot.
//
// Each returned triple is (ctrl1, ctrl2, end); the curve's start point is
// whatever the previous segment (or the initial angleStart point) left off.
func quadrantBeziers(box geom.Rectangle, angleStart, angleEnd float64) [][3]geom.Point {
	center := box.Center()
	half := geom.Pt(box.Dx()/2, box.Dy()/2)

	const quarterTurn = math.Pi / 2

	var segs [][3]geom.Point
	alpha := angleStart
	dir := 1.0
	if angleEnd < angleStart {
		dir = -1.0
	}
	for {
		var beta float64
		if dir > 0 {
			next := math.Floor(alpha/quarterTurn+1)*quarterTurn
			beta = math.Min(next, angleEnd)
		} else {
			next := math.Ceil(alpha/quarterTurn-1) * quarterTurn
			beta = math.Max(next, angleEnd)
		}
		segs = append(segs, quadrantSegment(center, half, alpha, beta))
		if beta == angleEnd {
			break
		}
		alpha = beta
	}
	return segs
}

// quadrantSegment returns the single cubic control triple for a sweep from
// alpha to beta, where |beta-alpha| <= π/2, using the formula from spec
// §4.C step 7.
func quadrantSegment(center, half geom.Point, alpha, beta float64) [3]geom.Point {
	d := beta - alpha
	var a float64
	const epsilon = 1e-9
	if math.Abs(math.Sin(d/2)) > epsilon {
		a = 4.0 / 3.0 * (1 - math.Cos(d/2)) / math.Sin(d/2)
	}

	ca, sa := math.Cos(alpha), math.Sin(alpha)
	cb, sb := math.Cos(beta), math.Sin(beta)

	p0 := geom.Pt(float32(ca), float32(sa))
	p3 := geom.Pt(float32(cb), float32(sb))
	p1 := p0.Add(geom.Pt(float32(-a*sa), float32(a*ca)))
	p2 := p3.Add(geom.Pt(float32(a*sb), float32(-a*cb)))

	scale := func(p geom.Point) geom.Point {
		return geom.Pt(center.X+half.X*p.X, center.Y+half.Y*p.Y)
	}
	return [3]geom.Point{scale(p1), scale(p2), scale(p3)}
}

// normalizeSweep adjusts angleEnd so it lies on the correct side of
// angleStart for the given direction (spec §4.C step 4).
func normalizeSweep(dir ArcDirection, angleStart, angleEnd float64) float64 {
	const twoPi = 2 * math.Pi
	switch dir {
	case Clockwise:
		if angleEnd <= angleStart {
			angleEnd += twoPi
		}
	case CounterClockwise:
		if angleEnd >= angleStart {
			angleEnd -= twoPi
		}
	}
	return angleEnd
}
