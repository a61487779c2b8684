package gpath

import (
	"image"

	"golang.org/x/image/math/f32"
	"golang.org/x/image/vector"
)

// Region is the opaque handle produced by ToRegion (spec §4.F). It wraps
// an anti-aliased coverage mask rasterized from the path's sub-polygons,
// the same representation the external region_from_poly_poly collaborator
// is modeled on.
type Region struct {
	mask             *image.Alpha
	originX, originY int32
}

// insideThreshold is the coverage level, out of 255, at or above which a
// sample point is considered inside the region. 128 puts the boundary at
// half-coverage, which keeps integer sample points well clear of it for
// the axis-aligned shapes exercised by the testable properties.
const insideThreshold = 128

// ToRegion partitions a flattened path into sub-polygons on each MOVE and
// rasterizes them into a filled region, standing in for the external
// region_from_poly_poly constructor (spec §4.F, §6). An empty path
// produces a nil region and no error.
func ToRegion(flat *Path, fill FillMode) (*Region, error) {
	pts, kinds := flat.Entries()
	if len(pts) == 0 {
		return nil, nil
	}
	if kinds[0].Primary() != Move {
		return nil, ErrCannotComplete
	}

	var polys [][]Point
	var cur []Point
	for i, k := range kinds {
		if k.Primary() == Bezier {
			return nil, ErrCannotComplete
		}
		if k.Primary() == Move && i != 0 {
			polys = append(polys, cur)
			cur = nil
		}
		cur = append(cur, pts[i])
	}
	polys = append(polys, cur)

	min, max := polyBounds(polys)
	w := int(max.X-min.X) + 1
	h := int(max.Y-min.Y) + 1
	if w <= 0 || h <= 0 {
		return nil, nil
	}

	rast := vector.NewRasterizer(w, h)
	ox, oy := min.X, min.Y
	for _, poly := range polys {
		if len(poly) == 0 {
			continue
		}
		rast.MoveTo(f32.Vec2{float32(poly[0].X - ox), float32(poly[0].Y - oy)})
		for _, p := range poly[1:] {
			rast.LineTo(f32.Vec2{float32(p.X - ox), float32(p.Y - oy)})
		}
		rast.ClosePath()
	}

	// fill is consulted by the external rasterizer in the real system;
	// x/image/vector always accumulates nonzero-winding coverage, so
	// Alternate and Winding render identically here (see DESIGN.md).
	_ = fill

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	rast.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	return &Region{mask: mask, originX: ox, originY: oy}, nil
}

// Contains reports whether the device-space point (x, y) is inside r,
// using half coverage as the inside/outside boundary.
func (r *Region) Contains(x, y int32) bool {
	if r == nil {
		return false
	}
	lx, ly := int(x-r.originX), int(y-r.originY)
	b := r.mask.Bounds()
	if lx < b.Min.X || lx >= b.Max.X || ly < b.Min.Y || ly >= b.Max.Y {
		return false
	}
	return r.mask.AlphaAt(lx, ly).A >= insideThreshold
}

func polyBounds(polys [][]Point) (min, max Point) {
	first := true
	for _, poly := range polys {
		for _, p := range poly {
			if first {
				min, max = p, p
				first = false
				continue
			}
			if p.X < min.X {
				min.X = p.X
			}
			if p.Y < min.Y {
				min.Y = p.Y
			}
			if p.X > max.X {
				max.X = p.X
			}
			if p.Y > max.Y {
				max.Y = p.Y
			}
		}
	}
	return min, max
}
