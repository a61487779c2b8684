// Package geom provides the float32 point, rectangle and affine transform
// types shared by the path subsystem. It mirrors the coordinate-space
// conventions of the enclosing graphics library: origin top-left, axes
// extending right and down.
package geom

// Point is a two dimensional point in logical or device space, depending
// on context.
type Point struct {
	X, Y float32
}

// Pt is a shorthand for Point{X: x, Y: y}.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }
func (p Point) Mul(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Rectangle contains the points (X, Y) where Min.X <= X <= Max.X and
// Min.Y <= Y <= Max.Y.
type Rectangle struct {
	Min, Max Point
}

// Canon returns the canonical version of r, where Min is to the upper left
// of Max.
func (r Rectangle) Canon() Rectangle {
	if r.Max.X < r.Min.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

func (r Rectangle) Dx() float32 { return r.Max.X - r.Min.X }
func (r Rectangle) Dy() float32 { return r.Max.Y - r.Min.Y }

// Center returns the midpoint of r.
func (r Rectangle) Center() Point {
	return Point{X: 0.5 * (r.Min.X + r.Max.X), Y: 0.5 * (r.Min.Y + r.Max.Y)}
}
