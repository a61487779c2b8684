package gpath

import (
	"math"

	"github.com/mancoi64/gdipath/geom"
)

// subpath is a single flattened figure: a polyline plus whether its
// original CloseFigure bit was set.
type subpath struct {
	pts    []geom.Point
	closed bool
}

// splitSubpaths partitions a flattened path into sub-paths on each MOVE
// entry (spec §4.E). It fails with ErrCannotComplete if a BEZIER entry
// survived flattening or the leading entry is not MOVE.
func splitSubpaths(flat *Path) ([]subpath, error) {
	pts, kinds := flat.Entries()
	if len(pts) == 0 {
		return nil, nil
	}
	if kinds[0].Primary() != Move {
		return nil, ErrCannotComplete
	}
	var subs []subpath
	var cur subpath
	for i, k := range kinds {
		switch k.Primary() {
		case Move:
			if i != 0 {
				subs = append(subs, cur)
			}
			cur = subpath{pts: []geom.Point{toGeomPoint(pts[i])}}
		case Line:
			cur.pts = append(cur.pts, toGeomPoint(pts[i]))
		default:
			return nil, ErrCannotComplete
		}
		if k.Closed() {
			cur.closed = true
		}
	}
	subs = append(subs, cur)
	return subs, nil
}

func rotCW(p geom.Point) geom.Point  { return geom.Pt(p.Y, -p.X) }
func rotCCW(p geom.Point) geom.Point { return geom.Pt(-p.Y, p.X) }

func normalize(p geom.Point) geom.Point {
	l := math.Hypot(float64(p.X), float64(p.Y))
	if l < 1e-9 {
		return geom.Point{}
	}
	f := float32(1 / l)
	return geom.Pt(p.X*f, p.Y*f)
}

// normalizeAngle folds a into (-π, π].
func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// edge describes how chain vertex i connects to vertex i+1: a straight
// line, or a cubic Bézier with the given pair of control points.
type edge struct {
	bezier bool
	c1, c2 geom.Point
}

// chain is one side (up or down) of a widened figure: an ordered run of
// vertices together with the edge kind joining each consecutive pair. It
// exists so that round caps and joins can keep their genuine BEZIER
// entries all the way to emission, instead of being flattened to lines
// the way a plain []geom.Point accumulator would force (spec §4.E).
type chain struct {
	verts []geom.Point
	edges []edge
}

// addPoint appends p, joined to the previous vertex (if any) by a
// straight line.
func (c *chain) addPoint(p geom.Point) {
	if len(c.verts) == 0 {
		c.verts = []geom.Point{p}
		return
	}
	c.verts = append(c.verts, p)
	c.edges = append(c.edges, edge{})
}

// addBezier appends the curve's end point, joined to the previous vertex
// by a cubic Bézier through c1, c2.
func (c *chain) addBezier(c1, c2, end geom.Point) {
	c.verts = append(c.verts, end)
	c.edges = append(c.edges, edge{bezier: true, c1: c1, c2: c2})
}

// reversed returns the chain traversed tail to head. Reversing a Bézier
// edge swaps its control points; reversing a line edge needs no change
// beyond the vertex order.
func (c chain) reversed() chain {
	n := len(c.verts)
	rv := make([]geom.Point, n)
	for i, p := range c.verts {
		rv[n-1-i] = p
	}
	var re []edge
	if n > 1 {
		re = make([]edge, len(c.edges))
		for i, e := range c.edges {
			j := len(c.edges) - 1 - i
			if e.bezier {
				re[j] = edge{bezier: true, c1: e.c2, c2: e.c1}
			}
		}
	}
	return chain{verts: rv, edges: re}
}

// Widen produces the filled offset-curve outline of src stroked with pen
// (spec §4.E). src is flattened internally first. Cosmetic pens fail with
// ErrCannotComplete, as does malformed input (a BEZIER entry surviving
// flatten, or a missing leading MOVE).
func Widen(src *Path, pen PenStyle) (*Path, error) {
	if pen.Cosmetic {
		return nil, ErrCannotComplete
	}
	flat, err := Flatten(src)
	if err != nil {
		return nil, err
	}
	subs, err := splitSubpaths(flat)
	if err != nil {
		return nil, err
	}

	hwIn := float32(math.Floor(float64(pen.Width) / 2))
	hwOut := float32(math.Ceil(float64(pen.Width) / 2))

	dst := New()
	for _, sp := range subs {
		up, down, err := widenSubpath(sp, hwIn, hwOut, pen)
		if err != nil {
			return nil, err
		}
		if len(up.verts) == 0 {
			continue
		}
		if err := emitWidenedFigure(dst, up, down); err != nil {
			return nil, err
		}
	}
	return dst, nil
}

// emitWidenedFigure appends the up chain as MOVE plus LINE/BEZIER edges,
// then the down chain reversed the same way (spec §4.E, final paragraph).
// The result is one closed figure per input sub-path regardless of
// whether the original sub-path was open or closed.
func emitWidenedFigure(dst *Path, up, down chain) error {
	if err := emitChain(dst, up, true); err != nil {
		return err
	}
	if err := emitChain(dst, down.reversed(), false); err != nil {
		return err
	}
	dst.buf.OrKind(dst.buf.Len()-1, CloseFigure)
	return nil
}

// emitChain appends chain c's vertices and edges to dst. If first is
// true, c's leading vertex starts a new figure (MOVE); otherwise it is
// emitted as a LINE continuing from whatever dst already holds, bridging
// the gap between the up chain's end and the down chain's start.
func emitChain(dst *Path, c chain, first bool) error {
	start := Line
	if first {
		start = Move
	}
	if _, err := dst.addPointsDevice([]Point{toDevicePoint(c.verts[0])}, start); err != nil {
		return err
	}
	for i, e := range c.edges {
		if e.bezier {
			pts := []Point{toDevicePoint(e.c1), toDevicePoint(e.c2), toDevicePoint(c.verts[i+1])}
			if _, err := dst.addPointsDevice(pts, Bezier); err != nil {
				return err
			}
			continue
		}
		if _, err := dst.addPointsDevice([]Point{toDevicePoint(c.verts[i+1])}, Line); err != nil {
			return err
		}
	}
	return nil
}

// widenSubpath computes the up (left-of-travel) and down (right-of-travel)
// offset chains for one sub-path.
func widenSubpath(sp subpath, hwIn, hwOut float32, pen PenStyle) (up, down chain, err error) {
	n := len(sp.pts)
	if n < 2 {
		return chain{}, chain{}, nil
	}
	closed := sp.closed
	pts := sp.pts
	// splitSubpaths never duplicates the closing point; tolerate it
	// anyway so a subpath fed in with an explicit closing duplicate
	// (first point repeated as last) still widens correctly.
	if closed && n > 1 && sp.pts[0] == sp.pts[n-1] {
		pts = pts[:n-1]
		n--
	}
	if n < 2 {
		return chain{}, chain{}, nil
	}

	dir := func(i int) geom.Point {
		j := (i + 1) % n
		return normalize(pts[j].Sub(pts[i]))
	}

	for v := 0; v < n; v++ {
		switch {
		case !closed && v == 0:
			d := dir(0)
			perp := rotCW(d)
			theta := math.Atan2(float64(d.Y), float64(d.X))
			appendCap(&up, pen.Cap, pts[0], theta+math.Pi, hwOut)
			down.addPoint(pts[0].Sub(perp.Mul(hwIn)))
		case !closed && v == n-1:
			d := dir(n - 2)
			perp := rotCW(d)
			theta := math.Atan2(float64(d.Y), float64(d.X))
			appendCap(&up, pen.Cap, pts[n-1], theta, hwOut)
			down.addPoint(pts[n-1].Sub(perp.Mul(hwIn)))
		default:
			prev := (v - 1 + n) % n
			in := dir(prev)
			out := dir(v)
			thetaIn := math.Atan2(float64(in.Y), float64(in.X))
			thetaOut := math.Atan2(float64(out.Y), float64(out.X))
			alpha := normalizeAngle(thetaOut - thetaIn)
			if alpha == 0 {
				continue
			}
			perpIn := rotCW(in)
			perpOut := rotCW(out)

			insideUp := alpha > 0
			var insideSide, outsideSide *chain
			if insideUp {
				insideSide, outsideSide = &up, &down
			} else {
				insideSide, outsideSide = &down, &up
			}
			sign := float32(1)
			hwInside, hwOutside := hwIn, hwOut
			if !insideUp {
				sign = -1
				hwInside, hwOutside = hwOut, hwIn
			}
			// Inner miter approximation: two points, one per adjoining
			// segment's offset, left un-averaged per spec §4.E.
			insideSide.addPoint(pts[v].Add(perpIn.Mul(sign * hwInside)))
			insideSide.addPoint(pts[v].Add(perpOut.Mul(sign * hwInside)))
			emitOuterJoin(outsideSide, pen, pts[v], perpIn.Mul(sign*hwOutside), perpOut.Mul(sign*hwOutside), hwOutside, alpha)
		}
	}
	return up, down, nil
}

// appendCap appends flat/square/round end-cap geometry at pivot to c,
// sweeping from the trailing side of the stroke to its leading side
// (spec §4.E). The cap always starts a fresh vertex at the offset line's
// end regardless of c's prior contents, since the per-vertex loop never
// deposits a point there itself.
func appendCap(c *chain, cap Cap, pivot geom.Point, theta float64, hw float32) {
	n0 := geom.Pt(float32(math.Cos(theta+math.Pi/2)), float32(math.Sin(theta+math.Pi/2))).Mul(hw)
	switch cap {
	case FlatCap:
		c.addPoint(pivot.Add(n0))
		c.addPoint(pivot.Sub(n0))
	case SquareCap:
		const sqrt2 = 1.4142135
		e1 := geom.Pt(float32(sqrt2*hw*math.Cos(theta+math.Pi/4)), float32(sqrt2*hw*math.Sin(theta+math.Pi/4)))
		e2 := geom.Pt(float32(sqrt2*hw*math.Cos(theta-math.Pi/4)), float32(sqrt2*hw*math.Sin(theta-math.Pi/4)))
		c.addPoint(pivot.Add(e1))
		c.addPoint(pivot.Add(e2))
	case RoundCap:
		box := geom.Rectangle{Min: geom.Pt(pivot.X-hw, pivot.Y-hw), Max: geom.Pt(pivot.X+hw, pivot.Y+hw)}
		alpha := theta + math.Pi/2
		beta := alpha - math.Pi
		c.addPoint(pivot.Add(n0))
		for _, s := range quadrantBeziers(box, alpha, beta) {
			c.addBezier(s[0], s[1], s[2])
		}
	}
}

// emitOuterJoin appends the outer-side join geometry to side (spec
// §4.E). perpIn/perpOut already carry sign and are scaled to the
// half-width.
func emitOuterJoin(side *chain, pen PenStyle, pivot, perpIn, perpOut geom.Point, hw float32, alpha float64) {
	join := pen.Join
	if join == MiterJoin {
		cos := math.Cos(math.Pi/2 - math.Abs(alpha)/2)
		var dist float64
		if math.Abs(cos) > 1e-9 {
			dist = math.Abs(float64(hw) / cos)
		} else {
			dist = math.Inf(1)
		}
		limit := pen.MiterLimit
		if limit <= 0 {
			limit = 1
		}
		if dist > float64(limit*hw) {
			join = BevelJoin
		} else {
			bis := normalize(perpIn.Add(perpOut))
			side.addPoint(pivot.Add(bis.Mul(float32(dist))))
			return
		}
	}
	switch join {
	case BevelJoin:
		side.addPoint(pivot.Add(perpIn))
		side.addPoint(pivot.Add(perpOut))
	case RoundJoin:
		box := geom.Rectangle{Min: geom.Pt(pivot.X-hw, pivot.Y-hw), Max: geom.Pt(pivot.X+hw, pivot.Y+hw)}
		a0 := math.Atan2(float64(perpIn.Y), float64(perpIn.X))
		a1 := a0 + alpha
		side.addPoint(pivot.Add(perpIn))
		for _, s := range quadrantBeziers(box, a0, a1) {
			side.addBezier(s[0], s[1], s[2])
		}
	}
}
