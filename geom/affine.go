package geom

import "math"

// Affine2D is an affine transformation matrix. It is represented in row
// major form:
//
//	sx  hx  ox
//	hy  sy  oy
//
// The same layout used by the enclosing library's world-to-device and
// device-to-logical transforms, so instances can be read directly off a
// device context and passed through unchanged.
type Affine2D struct {
	sx, hx, ox float32
	hy, sy, oy float32
}

// NewAffine2D returns the transform:
//
//	sx  hx  ox
//	hy  sy  oy
func NewAffine2D(sx, hx, ox, hy, sy, oy float32) Affine2D {
	return Affine2D{sx: sx, hx: hx, ox: ox, hy: hy, sy: sy, oy: oy}
}

// Identity returns the identity transform.
func Identity() Affine2D {
	return Affine2D{sx: 1, sy: 1}
}

func (a Affine2D) isZero() bool {
	return a == Affine2D{}
}

// Elems returns the matrix elements.
func (a Affine2D) Elems() (sx, hx, ox, hy, sy, oy float32) {
	if a.isZero() {
		return 1, 0, 0, 0, 1, 0
	}
	return a.sx, a.hx, a.ox, a.hy, a.sy, a.oy
}

// Transform applies the transform to p.
func (a Affine2D) Transform(p Point) Point {
	sx, hx, ox, hy, sy, oy := a.Elems()
	return Point{
		X: sx*p.X + hx*p.Y + ox,
		Y: hy*p.X + sy*p.Y + oy,
	}
}

// Offset returns a transform that first applies a, then translates by p.
func (a Affine2D) Offset(p Point) Affine2D {
	b := Affine2D{sx: 1, sy: 1, ox: p.X, oy: p.Y}
	return b.Mul(a)
}

// Scale returns a transform that first applies a, then scales around origin
// by factor.
func (a Affine2D) Scale(origin, factor Point) Affine2D {
	b := Affine2D{
		sx: factor.X,
		sy: factor.Y,
		ox: origin.X - factor.X*origin.X,
		oy: origin.Y - factor.Y*origin.Y,
	}
	return b.Mul(a)
}

// Rotate returns a transform that first applies a, then rotates by radians
// around origin.
func (a Affine2D) Rotate(origin Point, radians float32) Affine2D {
	s, c := float32(math.Sin(float64(radians))), float32(math.Cos(float64(radians)))
	b := Affine2D{
		sx: c, hx: -s,
		hy: s, sy: c,
	}
	b.ox = origin.X - c*origin.X + s*origin.Y
	b.oy = origin.Y - s*origin.X - c*origin.Y
	return b.Mul(a)
}

// Shear returns a transform that first applies a, then shears around
// origin.
func (a Affine2D) Shear(origin Point, radiansX, radiansY float32) Affine2D {
	tx := float32(math.Tan(float64(radiansX)))
	ty := float32(math.Tan(float64(radiansY)))
	b := Affine2D{
		sx: 1, hx: tx,
		hy: ty, sy: 1,
	}
	b.ox = -tx * origin.Y
	b.oy = -ty * origin.X
	return b.Mul(a)
}

// Mul returns the transform that applies a2 followed by a (a composed with
// a2, i.e. a.Mul(a2).Transform(p) == a.Transform(a2.Transform(p))).
func (a Affine2D) Mul(a2 Affine2D) Affine2D {
	asx, ahx, aox, ahy, asy, aoy := a.Elems()
	bsx, bhx, box, bhy, bsy, boy := a2.Elems()
	return Affine2D{
		sx: asx*bsx + ahx*bhy,
		hx: asx*bhx + ahx*bsy,
		ox: asx*box + ahx*boy + aox,
		hy: ahy*bsx + asy*bhy,
		sy: ahy*bhx + asy*bsy,
		oy: ahy*box + asy*boy + aoy,
	}
}

// Invert returns the inverse transform of a.
func (a Affine2D) Invert() Affine2D {
	sx, hx, ox, hy, sy, oy := a.Elems()
	det := sx*sy - hx*hy
	sx, hx, hy, sy = sy/det, -hx/det, -hy/det, sx/det
	ox, oy = -(sx*ox + hx*oy), -(hy*ox + sy*oy)
	return Affine2D{sx: sx, hx: hx, ox: ox, hy: hy, sy: sy, oy: oy}
}
