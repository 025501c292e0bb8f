// Package visibility computes which cells a probe observes from a given cell
// and precomputes those observations for every (probe, cell) pair.
//
// Algorithm (radial horizon sweep):
//
//  1. The origin cell is always observed.
//  2. For each of the eight compass directions, walk outward one cell at a time.
//  3. Stop at the grid edge or once the Euclidean distance exceeds the range.
//  4. slope = (alt(cell) − alt(origin)) / distance. A cell whose slope is
//     strictly below the steepest slope seen nearer on the same ray is
//     occluded; the walk continues past it. Otherwise the cell is observed and
//     becomes the new horizon. Equal slopes are observed.
//
// Table prefetches the sweep for every probe range and every cell into a
// dense probe×cell buffer so the search reads a placement's observations in
// O(1). It also records, per probe, the largest observation count any single
// cell achieves. That count is the admissible per-probe bound used by the
// placement search.
//
// Complexity:
//
//   - Sweep:    O(8·min(R, max(W,H))) time, O(1) memory.
//   - NewTable: O(P·W·H·8·R) time, O(P·W·H) memory (P ≤ 8, W·H ≤ 64).
//
// Errors:
//
//   - ErrNilGrid:     grid is nil.
//   - ErrOutOfBounds: origin outside the grid.
//   - ErrBadRange:    range is not positive.
package visibility
