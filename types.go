package torus

// Grid is an immutable mapping between coordinates on a wrapping 2D grid
// and flat indices into a row-major 1D buffer of length Size().
// Dimensions are fixed at construction; changing them means constructing a
// new Grid. A Grid owns no cell data and holds no mutable state, so it is
// safe to share across goroutines without synchronization.
type Grid struct {
	width  int
	height int
	size   int // width*height, cached; construction guarantees it fits in int
}
