// Package torus provides the Grid constructors and the core index
// arithmetic: Euclidean modulo, coordinate⇄index conversion, and
// delta-based neighbor lookup.
package torus

import (
	"fmt"
	"math"
)

// New constructs a Grid with the given dimensions.
// Returns ErrInvalidDimension if width or height is less than 1, and
// ErrOverflow if width*height does not fit in an int.
// Complexity: O(1).
func New(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, ErrInvalidDimension
	}
	if width > math.MaxInt/height {
		return nil, ErrOverflow
	}

	return &Grid{width: width, height: height, size: width * height}, nil
}

// NewWithSize constructs a Grid from a width and a total flat-buffer
// length, deriving height = size/width. The policy is strict: size must be
// a positive exact multiple of width, otherwise ErrInvalidDimension.
// Complexity: O(1).
func NewWithSize(width, size int) (*Grid, error) {
	if width < 1 || size < 1 || size%width != 0 {
		return nil, ErrInvalidDimension
	}

	return New(width, size/width)
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Size returns width*height, the length of the flat buffer this Grid
// indexes. Use it to allocate cell-attribute slices.
func (g *Grid) Size() int { return g.size }

// Mod returns the Euclidean modulo of lhs by rhs: a result in [0, rhs) for
// any lhs and any positive rhs. Go's native % truncates toward zero and can
// return a negative remainder (-11 % 10 == -1), whereas Mod(-11, 10) == 9.
// Complexity: O(1).
func Mod(lhs, rhs int) int {
	r := lhs % rhs
	if r < 0 {
		r += rhs
	}

	return r
}

// Index returns the flat, row-major index of the cell at (x, y).
// Both coordinates may be any int; each axis wraps independently, so the
// result is always in [0, Size()) and the call never errors.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return Mod(y, g.height)*g.width + Mod(x, g.width)
}

// Coords returns the (x, y) coordinates of the cell at the given flat
// index, the inverse of Index on the canonical range. Returns
// ErrIndexOutOfRange unless 0 <= index < Size(); a flat index outside the
// buffer has no meaningful grid position.
// Complexity: O(1).
func (g *Grid) Coords(index int) (x, y int, err error) {
	if index < 0 || index >= g.size {
		return 0, 0, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, g.size)
	}

	return index % g.width, index / g.width, nil
}

// Neighbor returns the flat index of the cell offset from (x, y) by
// (dx, dy), wrapping each axis exactly as Index does. Deltas may have any
// magnitude or sign; a delta spanning several full dimensions wraps around
// that many times, and dx = Width() lands on the starting column.
// Equivalent to Index(x+dx, y+dy), except that each operand is reduced
// first and the wrapped sum is computed by comparison rather than
// addition, so no intermediate can overflow even when a dimension exceeds
// half the int range.
// Complexity: O(1).
func (g *Grid) Neighbor(x, y, dx, dy int) int {
	return wrapStep(y, dy, g.height)*g.width + wrapStep(x, dx, g.width)
}

// wrapStep returns Mod(v+delta, dim) without forming v+delta: both
// operands are reduced to [0, dim) and the reduced sum either stays below
// dim or exceeds it by less than dim, so a single compare-and-subtract
// wraps it. dim may be any positive int, including values above MaxInt/2
// where reduced operands can still sum past MaxInt.
func wrapStep(v, delta, dim int) int {
	nv := Mod(v, dim)
	d := Mod(delta, dim)
	if nv >= dim-d {
		return nv - (dim - d)
	}

	return nv + d
}

// Shift is the index-based form of Neighbor: it returns the flat index of
// the cell offset by (dx, dy) from the cell at the given flat index.
// Returns ErrIndexOutOfRange unless 0 <= index < Size().
// Complexity: O(1).
func (g *Grid) Shift(index, dx, dy int) (int, error) {
	if index < 0 || index >= g.size {
		return 0, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, g.size)
	}

	return g.Neighbor(index%g.width, index/g.width, dx, dy), nil
}
