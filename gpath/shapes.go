package gpath

import (
	"math"

	"github.com/mancoi64/gdipath/geom"
)

// canonBox canonicalizes a logical-space bounding box into device space,
// transforming first and then sorting the corners (so a flipping or
// rotating transform still yields a well-formed rectangle).
func canonBox(tr geom.Affine2D, x1, y1, x2, y2 float32) geom.Rectangle {
	p1 := tr.Transform(geom.Pt(x1, y1))
	p2 := tr.Transform(geom.Pt(x2, y2))
	return geom.Rectangle{Min: p1, Max: p2}.Canon()
}

// Rectangle appends a closed 4-point rectangle figure (spec §4.C). In
// Compatible mode the bottom-right corner is nudged in by one device
// pixel, matching the legacy half-open convention.
func (p *Path) Rectangle(tr geom.Affine2D, mode GraphicsMode, x1, y1, x2, y2 float32) error {
	r := canonBox(tr, x1, y1, x2, y2)
	if mode == Compatible {
		r.Max.X--
		r.Max.Y--
	}
	tr2, tl, bl, br := toDevicePoint(geom.Pt(r.Max.X, r.Min.Y)),
		toDevicePoint(geom.Pt(r.Min.X, r.Min.Y)),
		toDevicePoint(geom.Pt(r.Min.X, r.Max.Y)),
		toDevicePoint(geom.Pt(r.Max.X, r.Max.Y))

	first, err := p.addPointsDevice([]Point{tr2, tl, bl, br}, Line)
	if err != nil {
		return err
	}
	p.buf.PatchKind(first, Move)
	p.buf.OrKind(p.buf.Len()-1, CloseFigure)
	p.cursor = br
	p.newStroke = true
	return nil
}

// RoundRect appends a closed figure of four quarter-ellipse corners joined
// by straight flats (spec §4.C).
func (p *Path) RoundRect(tr geom.Affine2D, mode GraphicsMode, x1, y1, x2, y2, ew, eh float32) error {
	r := canonBox(tr, x1, y1, x2, y2)
	if mode == Compatible {
		r.Max.X--
		r.Max.Y--
	}
	// Ellipse radii are transformed as a vector, so they pick up scale but
	// not translation.
	o := tr.Transform(geom.Pt(0, 0))
	rv := tr.Transform(geom.Pt(ew, eh))
	rw, rh := rv.X-o.X, rv.Y-o.Y
	if rw < 0 {
		rw = -rw
	}
	if rh < 0 {
		rh = -rh
	}
	rw, rh = rw/2, rh/2

	corner := func(cx, cy float32) geom.Rectangle {
		return geom.Rectangle{Min: geom.Pt(cx-rw, cy-rh), Max: geom.Pt(cx+rw, cy+rh)}
	}

	type quarter struct {
		box                  geom.Rectangle
		angleStart, angleEnd float64
	}
	quarters := []quarter{
		{corner(r.Max.X-rw, r.Min.Y+rh), -math.Pi / 2, 0},
		{corner(r.Max.X-rw, r.Max.Y-rh), 0, math.Pi / 2},
		{corner(r.Min.X+rw, r.Max.Y-rh), math.Pi / 2, math.Pi},
		{corner(r.Min.X+rw, r.Min.Y+rh), math.Pi, 3 * math.Pi / 2},
	}

	first := -1
	for i, q := range quarters {
		segs := quadrantBeziers(q.box, q.angleStart, q.angleEnd)
		startPt := toDevicePoint(geom.Pt(q.box.Center().X+float32(math.Cos(q.angleStart))*q.box.Dx()/2, q.box.Center().Y+float32(math.Sin(q.angleStart))*q.box.Dy()/2))
		if i == 0 {
			idx, err := p.addPointsDevice([]Point{startPt}, Line)
			if err != nil {
				return err
			}
			first = idx
			p.cursor = startPt
		} else if startPt != p.cursor {
			if err := p.LineToDevice(startPt); err != nil {
				return err
			}
		}
		for _, seg := range segs {
			pts := []Point{toDevicePoint(seg[0]), toDevicePoint(seg[1]), toDevicePoint(seg[2])}
			if _, err := p.addPointsDevice(pts, Bezier); err != nil {
				return err
			}
			p.cursor = pts[2]
		}
	}
	if first >= 0 {
		p.buf.PatchKind(first, Move)
	}
	p.buf.OrKind(p.buf.Len()-1, CloseFigure)
	p.newStroke = true
	return nil
}

// ArcLines selects the post-processing pass of the Arc primitive.
type ArcLines int

const (
	ArcOnly  ArcLines = 0
	ArcChord ArcLines = 1
	ArcPie   ArcLines = 2
	ArcTo    ArcLines = -1
)

// Arc is the shared construction behind Arc/ArcTo/Chord/Pie/Ellipse (spec
// §4.C). Box and the ray endpoints are in logical space; dir selects the
// sweep orientation; lines selects the post-processing pass.
func (p *Path) Arc(tr geom.Affine2D, mode GraphicsMode, x1, y1, x2, y2, xs, ys, xe, ye float32, dir ArcDirection, lines ArcLines) error {
	box := canonBox(tr, x1, y1, x2, y2)

	startDev := tr.Transform(geom.Pt(xs, ys))
	endDev := tr.Transform(geom.Pt(xe, ye))

	half := geom.Pt(box.Dx()/2, box.Dy()/2)
	center := box.Center()
	if half.X == 0 || half.Y == 0 {
		return ErrCannotComplete
	}
	nStart := geom.Pt((startDev.X-center.X)/half.X, (startDev.Y-center.Y)/half.Y)
	nEnd := geom.Pt((endDev.X-center.X)/half.X, (endDev.Y-center.Y)/half.Y)

	angleStart := math.Atan2(float64(nStart.Y), float64(nStart.X))
	angleEnd := math.Atan2(float64(nEnd.Y), float64(nEnd.X))
	angleEnd = normalizeSweep(dir, angleStart, angleEnd)

	if mode == Compatible {
		box.Max.X--
		box.Max.Y--
	}

	if lines == ArcTo {
		if err := p.ensureStrokeStart(); err != nil {
			return err
		}
	}

	segs := quadrantBeziers(box, angleStart, angleEnd)
	startPt := toDevicePoint(geom.Pt(
		box.Center().X+float32(math.Cos(angleStart))*box.Dx()/2,
		box.Center().Y+float32(math.Sin(angleStart))*box.Dy()/2,
	))

	leadKind := Move
	if lines == ArcTo {
		leadKind = Line
	}
	first, err := p.addPointsDevice([]Point{startPt}, leadKind)
	if err != nil {
		return err
	}
	if lines != ArcTo {
		p.buf.PatchKind(first, Move)
	}
	p.cursor = startPt

	for _, seg := range segs {
		pts := []Point{toDevicePoint(seg[0]), toDevicePoint(seg[1]), toDevicePoint(seg[2])}
		if _, err := p.addPointsDevice(pts, Bezier); err != nil {
			return err
		}
		p.cursor = pts[2]
	}

	switch lines {
	case ArcTo:
		// cursor already updated to last point.
	case ArcOnly:
	case ArcChord:
		p.CloseFigure()
	case ArcPie:
		centerDev := toDevicePoint(box.Center())
		if _, err := p.addPointsDevice([]Point{centerDev}, Line|CloseFigure); err != nil {
			return err
		}
		p.cursor = centerDev
		p.newStroke = true
	}
	return nil
}

// Ellipse appends a full closed ellipse (spec §4.C): an Arc from (x1,
// (y1+y2)/2) back to itself with ArcChord post-processing.
func (p *Path) Ellipse(tr geom.Affine2D, mode GraphicsMode, x1, y1, x2, y2 float32) error {
	midY := (y1 + y2) / 2
	return p.Arc(tr, mode, x1, y1, x2, y2, x1, midY, x1, midY, CounterClockwise, ArcChord)
}

// AngleArc computes Cartesian ray endpoints from polar inputs and invokes
// the Arc primitive in ArcTo mode (spec §4.C).
func (p *Path) AngleArc(tr geom.Affine2D, mode GraphicsMode, cx, cy, r, startAngle, sweepAngle float32) error {
	dir := CounterClockwise
	if sweepAngle < 0 {
		dir = Clockwise
	}
	xs := cx + r*float32(math.Cos(float64(startAngle)))
	ys := cy + r*float32(math.Sin(float64(startAngle)))
	xe := cx + r*float32(math.Cos(float64(startAngle+sweepAngle)))
	ye := cy + r*float32(math.Sin(float64(startAngle+sweepAngle)))
	return p.Arc(tr, mode, cx-r, cy-r, cx+r, cy+r, xs, ys, xe, ye, dir, ArcTo)
}

// Polyline appends every point as LINE, patching the first to MOVE. Fails
// on an empty input.
func (p *Path) Polyline(tr geom.Affine2D, pts []geom.Point) error {
	if len(pts) == 0 {
		return ErrCannotComplete
	}
	dev := make([]Point, len(pts))
	for i, pt := range pts {
		dev[i] = toDevicePoint(tr.Transform(pt))
	}
	first, err := p.addPointsDevice(dev, Line)
	if err != nil {
		return err
	}
	p.buf.PatchKind(first, Move)
	p.cursor = dev[len(dev)-1]
	p.newStroke = true
	return nil
}

// Polygon is Polyline with the CloseFigure bit OR'd onto the last entry.
func (p *Path) Polygon(tr geom.Affine2D, pts []geom.Point) error {
	if err := p.Polyline(tr, pts); err != nil {
		return err
	}
	p.buf.OrKind(p.buf.Len()-1, CloseFigure)
	return nil
}

// PolyPolyline appends several sub-runs, each patched to start with MOVE.
func (p *Path) PolyPolyline(tr geom.Affine2D, polys [][]geom.Point) error {
	if len(polys) == 0 {
		return ErrCannotComplete
	}
	for _, poly := range polys {
		if err := p.Polyline(tr, poly); err != nil {
			return err
		}
	}
	return nil
}

// PolyPolygon is PolyPolyline with every sub-run closed.
func (p *Path) PolyPolygon(tr geom.Affine2D, polys [][]geom.Point) error {
	if len(polys) == 0 {
		return ErrCannotComplete
	}
	for _, poly := range polys {
		if err := p.Polygon(tr, poly); err != nil {
			return err
		}
	}
	return nil
}

// PathPointType is the per-point type tag accepted by PolyDraw.
type PathPointType uint8

const (
	PtMove   PathPointType = 0
	PtLine   PathPointType = 1
	PtBezier PathPointType = 2
)

// PolyDraw walks pts/types performing the stateful append described in
// spec §4.C: MOVE points reset the cursor, LINE points append through
// ensure-stroke-start, and BEZIER points must appear in groups of three.
// Any other pattern fails and restores the pre-call cursor; CloseFigure
// bits reset the cursor to the figure's most recent MOVE point.
func (p *Path) PolyDraw(tr geom.Affine2D, pts []geom.Point, types []PathPointType, closeBits []bool) error {
	if len(pts) != len(types) || len(pts) != len(closeBits) {
		return ErrCannotComplete
	}
	savedCursor := p.cursor
	savedStroke := p.newStroke

	fail := func() error {
		p.cursor = savedCursor
		p.newStroke = savedStroke
		return ErrCannotComplete
	}

	// figureStart returns the point of the most recent MOVE entry, i.e.
	// the start of the figure being closed.
	figureStart := func() Point {
		for j := p.buf.Len() - 1; j >= 0; j-- {
			if p.buf.Kinds[j].Primary() == Move {
				return p.buf.Points[j]
			}
		}
		return p.cursor
	}
	i := 0
	for i < len(pts) {
		dev := toDevicePoint(tr.Transform(pts[i]))
		switch types[i] {
		case PtMove:
			p.MoveToDevice(dev)
			if closeBits[i] {
				return fail()
			}
			i++
		case PtLine:
			if err := p.LineToDevice(dev); err != nil {
				return err
			}
			if closeBits[i] {
				p.CloseFigure()
				p.cursor = figureStart()
			}
			i++
		case PtBezier:
			if i+2 >= len(pts) || types[i+1] != PtBezier || types[i+2] != PtBezier {
				return fail()
			}
			if closeBits[i] || closeBits[i+1] {
				return fail()
			}
			p2 := toDevicePoint(tr.Transform(pts[i+1]))
			p3 := toDevicePoint(tr.Transform(pts[i+2]))
			if err := p.PolyBezierToDevice([]Point{dev, p2, p3}); err != nil {
				return err
			}
			if closeBits[i+2] {
				p.CloseFigure()
				p.cursor = figureStart()
			}
			i += 3
		default:
			return fail()
		}
	}
	return nil
}
