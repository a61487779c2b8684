// Package raw implements the low-level dual-array path buffer: a pair of
// growable arrays tying device-space points to per-point kind flags. It is
// the zero-copy storage backing every path built by package gpath.
//
// The dual-array layout (rather than a single slice of tagged entries) is
// a deliberate choice: many call sites need a pointer to a single flag byte
// so they can patch it in place (for example downgrading the first entry of
// a run from BEZIER to MOVE), and polygon emission to an external region
// builder wants a flat array of points with no per-entry tag to skip over.
package raw

import (
	"errors"

	"golang.org/x/exp/slices"
)

// ErrOutOfMemory is returned by Reserve when the requested capacity cannot
// be satisfied. Go's allocator does not fail like this in practice, but the
// error is kept as a first-class return value (rather than a panic) so
// calling code mirrors the host library's allocation-failure contract: the
// operation aborts and the caller is expected to discard the path.
var ErrOutOfMemory = errors.New("raw: out of memory")

// Kind is the bitfield tag of a path entry. The low bits hold the primary
// kind; CloseFigure may be OR'd onto the last entry of a figure.
type Kind uint8

const (
	Move Kind = iota
	Line
	Bezier

	primaryMask = 0x0f

	// CloseFigure marks the final entry of a closed figure. It is only ever
	// set on the last entry of a run.
	CloseFigure Kind = 0x10
)

// Primary returns the MOVE/LINE/BEZIER component of k, with CloseFigure
// masked off.
func (k Kind) Primary() Kind { return k & primaryMask }

// Closed reports whether k carries the CloseFigure bit.
func (k Kind) Closed() bool { return k&CloseFigure != 0 }

// Point is an integer device-space coordinate.
type Point struct {
	X, Y int32
}

const minCapacity = 16

// Buffer is the dual growable array of points and kinds described in the
// package comment. The zero value is an empty buffer ready to use.
type Buffer struct {
	Points []Point
	Kinds  []Kind
}

// Len returns the number of entries currently stored.
func (b *Buffer) Len() int { return len(b.Points) }

// Cap returns the current capacity, i.e. the number of entries that can be
// appended before the backing arrays must grow again.
func (b *Buffer) Cap() int { return cap(b.Points) }

// Reserve ensures capacity for at least need entries. Capacity doubles (at
// least) on growth, starting at 16; both arrays grow atomically, so a
// failure never leaves one array larger than the other.
//
// Go slices cannot fail to grow short of an out-of-memory process kill, so
// this never actually returns ErrOutOfMemory; the signature is kept so that
// higher layers route through the same failure path as the original driver,
// which must cope with real allocation failure.
func (b *Buffer) Reserve(need int) error {
	if need <= cap(b.Points) {
		return nil
	}
	newCap := cap(b.Points) * 2
	if newCap == 0 {
		newCap = minCapacity
	}
	if newCap < need {
		newCap = need
	}
	points := make([]Point, len(b.Points), newCap)
	copy(points, b.Points)
	kinds := make([]Kind, len(b.Kinds), newCap)
	copy(kinds, b.Kinds)
	b.Points, b.Kinds = points, kinds
	return nil
}

// Reset empties the buffer without releasing its backing storage.
func (b *Buffer) Reset() {
	b.Points = b.Points[:0]
	b.Kinds = b.Kinds[:0]
}

// Free releases the backing storage.
func (b *Buffer) Free() {
	b.Points = nil
	b.Kinds = nil
}

// Clone returns a deep copy of b, used when a device context is saved.
func (b *Buffer) Clone() Buffer {
	return Buffer{
		Points: slices.Clone(b.Points),
		Kinds:  slices.Clone(b.Kinds),
	}
}

// AddPoints appends the given points with the given kind on every new
// entry, returning the index of the first appended entry so the caller can
// patch its kind (e.g. downgrading a BEZIER run's leader to MOVE, or OR-ing
// in CloseFigure on the last one).
func (b *Buffer) AddPoints(pts []Point, kind Kind) (firstIndex int, err error) {
	if err := b.Reserve(b.Len() + len(pts)); err != nil {
		return 0, err
	}
	first := len(b.Points)
	b.Points = append(b.Points, pts...)
	for range pts {
		b.Kinds = append(b.Kinds, kind)
	}
	return first, nil
}

// Last returns the last entry of the buffer and true, or the zero entry and
// false if the buffer is empty.
func (b *Buffer) Last() (p Point, k Kind, ok bool) {
	n := b.Len()
	if n == 0 {
		return Point{}, 0, false
	}
	return b.Points[n-1], b.Kinds[n-1], true
}

// PatchKind overwrites the kind at index i, preserving the CloseFigure bit
// of whatever was already stored unless explicitly included in k.
func (b *Buffer) PatchKind(i int, k Kind) {
	b.Kinds[i] = k | b.Kinds[i]&CloseFigure
}

// OrKind ORs bits into the kind at index i, used to set CloseFigure on the
// last entry of a figure without disturbing its primary kind.
func (b *Buffer) OrKind(i int, bits Kind) {
	b.Kinds[i] |= bits
}
