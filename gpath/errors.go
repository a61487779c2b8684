package gpath

import "errors"

// Error codes surfaced to callers of the path subsystem (spec §6/§7).
var (
	// ErrOutOfMemory is returned when the backing buffer could not grow to
	// hold new entries. The path is left in whatever well-formed partial
	// state it had before the failed append; callers must abort it.
	ErrOutOfMemory = errors.New("gpath: out of memory")

	// ErrCannotComplete covers preconditions that make an operation
	// impossible to carry out: no path open, a BEZIER entry where only
	// flattened geometry is accepted, or widening a cosmetic pen.
	ErrCannotComplete = errors.New("gpath: cannot complete")

	// ErrInvalidParameter is returned by GetPath when the caller-supplied
	// buffer is smaller than the entry count.
	ErrInvalidParameter = errors.New("gpath: invalid parameter")
)
