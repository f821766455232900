// File: example_test.go
package torus_test

import (
	"fmt"

	"github.com/katalvlaran/torus"
)

////////////////////////////////////////////////////////////////////////////////
// Example: construction and accessors
////////////////////////////////////////////////////////////////////////////////

// ExampleNew builds a 10×10 grid suitable for indexing a flat buffer of
// 100 cells — make([]T, g.Size()) for each cell attribute.
func ExampleNew() {
	g, err := torus.New(10, 10)
	if err != nil {
		fmt.Println("construction failed:", err)
		return
	}
	fmt.Println(g.Width(), g.Height(), g.Size())

	// Output:
	// 10 10 100
}

////////////////////////////////////////////////////////////////////////////////
// Example: wrapping coordinate→index conversion
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Index shows row-major indexing on a 3×3 grid and the wrap
// contract: x = width re-enters at column 0, x = -1 lands on the last
// column.
func ExampleGrid_Index() {
	g, _ := torus.New(3, 3)

	fmt.Println(g.Index(0, 0), g.Index(2, 2))
	fmt.Println(g.Index(3, 0), g.Index(-1, 0))

	// Output:
	// 0 8
	// 0 2
}

// ExampleGrid_Coords recovers the (x, y) position of a flat index on a
// non-square 4×2 grid.
func ExampleGrid_Coords() {
	g, _ := torus.New(4, 2)

	x, y, err := g.Coords(5)
	if err != nil {
		fmt.Println("lookup failed:", err)
		return
	}
	fmt.Println(x, y)

	// Output:
	// 1 1
}

////////////////////////////////////////////////////////////////////////////////
// Example: neighbor lookups
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Shift moves diagonally up-left from the origin of a 10×10
// grid; both axes wrap, landing on the opposite corner.
func ExampleGrid_Shift() {
	g, _ := torus.New(10, 10)

	idx, _ := g.Shift(0, -1, -1)
	fmt.Println(idx)

	// Output:
	// 99
}

// ExampleGrid_Neighbors4XY lists the von Neumann neighborhood of the
// origin, counter-clockwise from the right neighbor.
func ExampleGrid_Neighbors4XY() {
	g, _ := torus.New(10, 10)

	fmt.Println(g.Neighbors4XY(0, 0))

	// Output:
	// [1 10 9 90]
}

// ExampleMod contrasts Go's truncated remainder with the Euclidean modulo
// used for coordinate normalization.
func ExampleMod() {
	fmt.Println(-11%10, torus.Mod(-11, 10))

	// Output:
	// -1 9
}
