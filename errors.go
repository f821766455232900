package torus

import "errors"

// Sentinel errors for torus operations.
var (
	// ErrInvalidDimension indicates a non-positive width or height, or a
	// NewWithSize size that is not a positive multiple of width.
	ErrInvalidDimension = errors.New("torus: invalid grid dimensions")
	// ErrOverflow indicates that width*height exceeds the int range.
	ErrOverflow = errors.New("torus: width*height exceeds the representable index range")
	// ErrIndexOutOfRange indicates a flat index outside [0, Size()).
	ErrIndexOutOfRange = errors.New("torus: flat index out of range")
)
