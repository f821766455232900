package torus

import "fmt"

// Neighborhood offset tables, ordered counter-clockwise in 2D starting
// from the cell to the right. ring24 is ring8 followed by ring16: the
// Moore neighborhood first, then the second ring around it.
var (
	ring4 = [][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	ring8 = [][2]int{
		{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1},
	}
	ring16 = [][2]int{
		{2, 0}, {2, 1}, {2, 2}, {1, 2}, {0, 2}, {-1, 2}, {-2, 2}, {-2, 1},
		{-2, 0}, {-2, -1}, {-2, -2}, {-1, -2}, {0, -2}, {1, -2}, {2, -2}, {2, -1},
	}
	ring24 = append(append(make([][2]int, 0, 24), ring8...), ring16...)
)

// neighborsXY collects the wrapped flat indices of the cells offset from
// (x, y) by each entry of ring, in ring order.
func (g *Grid) neighborsXY(x, y int, ring [][2]int) []int {
	out := make([]int, len(ring))
	for i, d := range ring {
		out[i] = g.Neighbor(x, y, d[0], d[1])
	}

	return out
}

// neighborsAt validates the start index, then delegates to neighborsXY.
func (g *Grid) neighborsAt(index int, ring [][2]int) ([]int, error) {
	if index < 0 || index >= g.size {
		return nil, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, g.size)
	}

	return g.neighborsXY(index%g.width, index/g.width, ring), nil
}

// Neighbors4 returns the flat indices of the 4 orthogonal neighbors (the
// von Neumann neighborhood) of the cell at the given flat index, ordered
// counter-clockwise starting from the neighbor to the right.
// Returns ErrIndexOutOfRange unless 0 <= index < Size().
// Complexity: O(1) time, one 4-element allocation.
func (g *Grid) Neighbors4(index int) ([]int, error) {
	return g.neighborsAt(index, ring4)
}

// Neighbors4XY is the coordinate form of Neighbors4. Like Index, it
// accepts any integer coordinates and never errors.
func (g *Grid) Neighbors4XY(x, y int) []int {
	return g.neighborsXY(x, y, ring4)
}

// Neighbors8 returns the flat indices of the 8 surrounding cells (the
// Moore neighborhood) of the cell at the given flat index, ordered
// counter-clockwise starting from the neighbor to the right.
// Returns ErrIndexOutOfRange unless 0 <= index < Size().
// Complexity: O(1) time, one 8-element allocation.
func (g *Grid) Neighbors8(index int) ([]int, error) {
	return g.neighborsAt(index, ring8)
}

// Neighbors8XY is the coordinate form of Neighbors8. Like Index, it
// accepts any integer coordinates and never errors.
func (g *Grid) Neighbors8XY(x, y int) []int {
	return g.neighborsXY(x, y, ring8)
}

// Neighbors16 returns the flat indices of the 16 second-ring cells — those
// adjacent to the Moore neighborhood — of the cell at the given flat
// index, ordered counter-clockwise starting from the second cell to the
// right. Returns ErrIndexOutOfRange unless 0 <= index < Size().
// Complexity: O(1) time, one 16-element allocation.
func (g *Grid) Neighbors16(index int) ([]int, error) {
	return g.neighborsAt(index, ring16)
}

// Neighbors16XY is the coordinate form of Neighbors16. Like Index, it
// accepts any integer coordinates and never errors.
func (g *Grid) Neighbors16XY(x, y int) []int {
	return g.neighborsXY(x, y, ring16)
}

// Neighbors24 returns the flat indices of the 24 nearest cells (the 5×5
// block minus the center): the Moore neighborhood first, then the second
// ring, each ordered counter-clockwise starting from the right.
// Returns ErrIndexOutOfRange unless 0 <= index < Size().
// Complexity: O(1) time, one 24-element allocation.
func (g *Grid) Neighbors24(index int) ([]int, error) {
	return g.neighborsAt(index, ring24)
}

// Neighbors24XY is the coordinate form of Neighbors24. Like Index, it
// accepts any integer coordinates and never errors.
func (g *Grid) Neighbors24XY(x, y int) []int {
	return g.neighborsXY(x, y, ring24)
}
