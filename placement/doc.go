// Package placement finds the exact best assignment of probes to grid cells.
//
// Objective (lexicographic, most significant first):
//
//  1. maximise the number of distinct cells observed by at least one probe;
//  2. then maximise the summed altitude of those observed cells;
//  3. then minimise the summed altitude of the cells the probes stand on.
//
// Search:
//
//   - Probes are sorted by descending range and placed in that fixed order, one
//     probe per search level, so permutations of the probe list are never
//     revisited.
//   - The frontier is an explicit LIFO stack of State values. A State packs the
//     whole branch into two 64-bit cell sets, an 8-bit remaining-probe set and
//     the next probe index, so children are plain copies and siblings never
//     alias.
//   - Observations come from a visibility.Table built once up front.
//   - Bound (SimpleBound): before pushing a child, its observed count plus the
//     per-probe best single-cell count of every still-unplaced probe is an upper
//     bound on anything the branch can reach. Children whose bound is strictly
//     below the incumbent's observed count are dropped. The bound is admissible
//     because a union of sets never has more members than the sum of their
//     sizes.
//   - Terminal states (no probes left) are folded into the incumbent with
//     Better. Ties on all three criteria keep the first one found.
//
// Complexity:
//
//   - Worst case O(C^P) states for C cells and P probes (C ≤ 64, P ≤ 8).
//   - Per state: O(C) child generation, O(P) bound.
//   - Memory: O(P·C) stack entries of 32 bytes each.
//
// Options:
//
//   - WithBound(SimpleBound|NoBound): NoBound disables pruning (testing only).
//   - WithOnImprove(fn): called every time the incumbent improves.
//
// Errors:
//
//   - ErrNilGrid, ErrTooManyProbes, ErrBadRange, ErrNotEnoughCells.
package placement
