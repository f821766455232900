// Package torus translates between 2D grid coordinates and flat 1D indices
// with wrapping on both axes (toroidal topology).
//
// What:
//
//   - Grid holds fixed Width×Height dimensions and maps (x, y) coordinate
//     pairs to row-major flat indices (y*Width + x) and back.
//   - Both axes wrap independently: any integer coordinate — negative or
//     arbitrarily large — lands on a valid cell. Stepping past the right
//     edge re-enters from the left; stepping below row 0 re-enters from
//     the last row.
//   - Neighbor lookups: Shift/Neighbor move by an arbitrary (dx, dy) delta,
//     and Neighbors4/8/16/24 enumerate the fixed neighborhoods used by
//     cellular automata and agent-based models.
//
// Why:
//
//   - Simulation state lives best in flat, cache-friendly slices (one slice
//     per cell attribute, ECS-style); Grid keeps the row/column arithmetic
//     in one place, and keeps it correct for negative deltas.
//   - Wrap-around game maps: tile worlds where walking off one edge
//     continues on the opposite edge.
//
// Grid is not a container. It never touches cell data; it only computes
// indices into whatever flat buffers the caller owns.
//
// Complexity:
//
//   - Index, Coords, Neighbor, Shift: O(1), allocation-free.
//   - NeighborsN: O(N) time and memory (N ∈ {4, 8, 16, 24}).
//
// Errors:
//
//   - ErrInvalidDimension: width or height < 1, or a NewWithSize size that
//     is not a positive multiple of width.
//   - ErrOverflow: width*height exceeds the int range.
//   - ErrIndexOutOfRange: a flat index outside [0, Size()) passed to an
//     index-consuming operation.
//
// Coordinate-to-index conversion never errors: wrapping makes every
// integer input valid.
package torus
