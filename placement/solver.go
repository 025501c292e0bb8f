// Package placement - exact branch-and-bound over probe-to-cell assignments.
//
// Rationale (succinct):
//  1. Inputs are validated once in NewSolver; the hot loop never fails.
//  2. All observations are prefetched into a visibility.Table so a child's
//     observed set is one table read and one OR.
//  3. The frontier is an explicit stack of State values; nothing recurses and
//     the branch set of any state can be inspected with Expand.
//  4. The incumbent lives in a local accumulator owned by Run, never in
//     package or solver state, so a Solver can be Run any number of times.
package placement

import (
	"fmt"
	"math/bits"
	"sort"

	"github.com/katalvlaran/probeplace/terrain"
	"github.com/katalvlaran/probeplace/visibility"
)

// Solver holds the read-only data shared by every branch of a search.
type Solver struct {
	grid   *terrain.Grid
	table  *visibility.Table
	ranges []int // descending
	n      int
	cells  int
	all    uint8
	opts   Options
}

// incumbent is the running best, folded over terminal states by Run.
type incumbent struct {
	found   bool
	outcome Outcome
	state   State
}

// NewSolver validates the instance, sorts the probe ranges in descending
// order and prefetches the visibility table.
//
// Errors (in order): ErrNilGrid, ErrTooManyProbes, ErrBadRange, ErrNotEnoughCells.
//
// Complexity: O(P log P + P·W·H·8·R).
func NewSolver(g *terrain.Grid, ranges []int, opts ...Option) (*Solver, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if len(ranges) > MaxProbes {
		return nil, ErrTooManyProbes
	}
	for _, r := range ranges {
		if r <= 0 {
			return nil, ErrBadRange
		}
	}
	if len(ranges) > g.Cells() {
		return nil, ErrNotEnoughCells
	}

	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	sorted := append([]int(nil), ranges...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	table, err := visibility.NewTable(g, sorted)
	if err != nil {
		return nil, fmt.Errorf("placement: building visibility table: %w", err)
	}

	return &Solver{
		grid:   g,
		table:  table,
		ranges: sorted,
		n:      len(sorted),
		cells:  g.Cells(),
		all:    suffix(0, len(sorted)),
		opts:   cfg,
	}, nil
}

// Solve is the one-call entry point: NewSolver followed by Run.
func Solve(g *terrain.Grid, ranges []int, opts ...Option) (Result, error) {
	s, err := NewSolver(g, ranges, opts...)
	if err != nil {
		return Result{}, err
	}

	return s.Run(), nil
}

// Ranges returns the probe ranges in search order (descending).
func (s *Solver) Ranges() []int { return append([]int(nil), s.ranges...) }

// Table returns the prefetched visibility table.
func (s *Solver) Table() *visibility.Table { return s.table }

// Root returns the initial state: nothing placed, every probe remaining.
func (s *Solver) Root() State {
	return State{Remaining: s.all}
}

// Expand returns the children of st that survive the bound against an
// incumbent observing incumbentPeaks cells. Terminal states have no children.
// Expand panics with ErrRemainingInvariant if st.Remaining is not the suffix
// of probes starting at st.Next.
func (s *Solver) Expand(st State, incumbentPeaks int) []State {
	if st.Terminal() {
		return nil
	}
	var stats Stats

	return s.branch(nil, st, incumbentPeaks, &stats)
}

// Run explores the whole search tree and returns the best outcome.
// It always runs to exhaustion.
func (s *Solver) Run() Result {
	var (
		best  incumbent
		stats Stats
		st    State
	)
	stack := make([]State, 0, s.n*s.cells+1)
	stack = append(stack, s.Root())

	for len(stack) > 0 {
		st = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if st.Terminal() {
			stats.Terminals++
			if s.fold(&best, st) && s.opts.OnImprove != nil {
				s.opts.OnImprove(s.result(best, stats))
			}
			continue
		}

		stats.Expanded++
		stack = s.branch(stack, st, best.outcome.Peaks, &stats)
	}

	return s.result(best, stats)
}

// branch appends to dst every child of st obtained by placing probe st.Next
// on a free cell, skipping children the bound rules out.
func (s *Solver) branch(dst []State, st State, incumbentPeaks int, stats *Stats) []State {
	if st.Remaining != suffix(st.Next, s.n) {
		panic(ErrRemainingInvariant)
	}

	var (
		p     = st.Next
		rest  = st.Remaining &^ (1 << uint(p))
		extra = s.bound(rest)
		prune = s.opts.Bound != NoBound
		vis   terrain.CellSet
		child State
		c     int
	)
	for c = 0; c < s.cells; c++ {
		if st.Occupied.Has(c) {
			continue
		}
		vis = st.Visible.Union(s.table.Mask(p, c))
		if prune && vis.Count()+extra < incumbentPeaks {
			stats.Pruned++
			continue
		}
		child = st
		child.Occupied = st.Occupied.Add(c)
		child.Visible = vis
		child.Remaining = rest
		child.Next = p + 1
		child.cells[p] = uint8(c)
		dst = append(dst, child)
		stats.Pushed++
	}

	return dst
}

// bound sums the best single-cell count of every probe in remaining.
func (s *Solver) bound(remaining uint8) int {
	total := 0
	for remaining != 0 {
		p := bits.TrailingZeros8(remaining)
		total += s.table.MaxCount(p)
		remaining &= remaining - 1
	}

	return total
}

// fold scores a terminal state and replaces the incumbent if it is strictly
// better. It reports whether the incumbent changed.
func (s *Solver) fold(best *incumbent, st State) bool {
	o := Outcome{
		Peaks:          st.Visible.Count(),
		AltitudeSum:    s.grid.Sum(st.Visible),
		PlacedAltitude: s.grid.Sum(st.Occupied),
	}
	if best.found && !Better(o, best.outcome) {
		return false
	}
	best.found = true
	best.outcome = o
	best.state = st

	return true
}

// result materialises the incumbent into a Result.
func (s *Solver) result(best incumbent, stats Stats) Result {
	res := Result{Outcome: best.outcome, Stats: stats}
	if !best.found {
		return res
	}
	res.Placement = make([]Placed, s.n)
	var (
		p, c int
		x, y int
	)
	for p = 0; p < s.n; p++ {
		c = best.state.Cell(p)
		x, y = s.grid.Coordinate(c)
		res.Placement[p] = Placed{
			Range:    s.ranges[p],
			X:        x,
			Y:        y,
			Altitude: s.grid.Altitude(x, y),
		}
	}

	return res
}

// suffix returns the probe set {from, ..., n-1}.
func suffix(from, n int) uint8 {
	if from >= n {
		return 0
	}

	return uint8((uint(1)<<uint(n) - 1) &^ (uint(1)<<uint(from) - 1))
}
