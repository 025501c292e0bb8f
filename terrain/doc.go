// Package terrain holds the altitude grid that probes are placed on and the
// 64-bit cell sets used to describe placements and observed cells.
//
// What:
//
//   - Grid wraps a rectangular [][]int altitude matrix (row-major, y then x).
//   - Cells are addressed either by (x,y) or by the linear index y*Width + x.
//   - CellSet is a uint64 bitmask over linear indices; bit i set ⇔ cell i in set.
//   - Directions lists the eight principal and diagonal unit steps.
//
// Why:
//
//   - Every search branch keeps its whole positional state in one machine word,
//     so copying a branch is a couple of register moves.
//   - The 64-bit representation bounds the grid to 64 cells; NewGrid enforces it.
//
// Complexity:
//
//   - NewGrid:          O(W×H) time and memory (deep copy).
//   - Index/Coordinate: O(1).
//   - Sum:              O(popcount) using trailing-zero iteration.
//
// Errors:
//
//   - ErrEmptyGrid:      input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrGridTooLarge:   W×H exceeds MaxCells.
package terrain
