package gpath

// Cap describes the head or tail of a stroked open sub-path.
type Cap uint8

const (
	FlatCap Cap = iota
	SquareCap
	RoundCap
)

// Join describes how two stroked segments are collated at an interior
// vertex.
type Join uint8

const (
	MiterJoin Join = iota
	BevelJoin
	RoundJoin
)

// PenStyle is the subset of a pen descriptor the widener needs: width,
// cap, join and miter limit. It is queried from the pen object owned by
// the device context, an external collaborator this package only reads.
type PenStyle struct {
	Width      float32
	Cap        Cap
	Join       Join
	MiterLimit float32

	// Cosmetic pens always draw one device pixel wide regardless of the
	// world transform; widening them is undefined (spec §4.E, Glossary).
	Cosmetic bool
}

// FillMode selects the polygon fill rule used by region conversion.
type FillMode uint8

const (
	Alternate FillMode = iota
	Winding
)

// ArcDirection is the sweep convention used by the arc family of shape
// constructors.
type ArcDirection uint8

const (
	Clockwise ArcDirection = iota
	CounterClockwise
)

// GraphicsMode selects the legacy half-open rectangle convention.
type GraphicsMode uint8

const (
	// Advanced leaves rectangle edges inclusive.
	Advanced GraphicsMode = iota
	// Compatible excludes the right and bottom edges of rectangles and
	// shrinks arc bounding boxes by one device pixel.
	Compatible
)
