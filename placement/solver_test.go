// Package placement_test validates the exact branch-and-bound search.
// Focus:
//  1. Strict sentinels on malformed inputs.
//  2. Small hand-checked scenarios.
//  3. Policy equivalence (NoBound vs SimpleBound) and a brute-force oracle.
//  4. Intermediate states exposed through Expand.
package placement_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/probeplace/placement"
	"github.com/katalvlaran/probeplace/terrain"
	"github.com/katalvlaran/probeplace/visibility"
)

// ---------------------------
// 1) Strict sentinels.
// ---------------------------

func TestSolve_Errors(t *testing.T) {
	g := mustGrid(t, [][]int{{1, 2}, {3, 4}})

	_, err := placement.Solve(nil, []int{1})
	assert.ErrorIs(t, err, placement.ErrNilGrid)

	_, err = placement.Solve(g, []int{1, 1, 1, 1, 1, 1, 1, 1, 1})
	assert.ErrorIs(t, err, placement.ErrTooManyProbes)

	_, err = placement.Solve(g, []int{2, 0})
	assert.ErrorIs(t, err, placement.ErrBadRange)

	_, err = placement.Solve(g, []int{1, 1, 1, 1, 1})
	assert.ErrorIs(t, err, placement.ErrNotEnoughCells)
}

// ---------------------------
// 2) Scenarios.
// ---------------------------

func TestSolve_SingleCell(t *testing.T) {
	g := mustGrid(t, [][]int{{5}})
	res, err := placement.Solve(g, []int{1})
	require.NoError(t, err)
	assert.Equal(t, placement.Outcome{Peaks: 1, AltitudeSum: 5, PlacedAltitude: 5}, res.Outcome)
	assert.Equal(t, []placement.Placed{{Range: 1, X: 0, Y: 0, Altitude: 5}}, res.Placement)
}

func TestSolve_TwoCellsPrefersLowSeat(t *testing.T) {
	g := mustGrid(t, [][]int{{1, 100}})
	res, err := placement.Solve(g, []int{10})
	require.NoError(t, err)
	assert.Equal(t, placement.Outcome{Peaks: 2, AltitudeSum: 101, PlacedAltitude: 1}, res.Outcome)
	require.Len(t, res.Placement, 1)
	assert.Equal(t, 0, res.Placement[0].X)
}

func TestSolve_NoProbes(t *testing.T) {
	g := mustGrid(t, [][]int{{3, 4}})
	res, err := placement.Solve(g, nil)
	require.NoError(t, err)
	assert.Equal(t, placement.Outcome{}, res.Outcome)
	assert.Empty(t, res.Placement)
	assert.Equal(t, 1, res.Stats.Terminals)
}

// TestSolve_SurplusProbes: probes beyond what is useful never push the
// observed totals past the whole grid.
func TestSolve_SurplusProbes(t *testing.T) {
	g := mustGrid(t, [][]int{{2, 2, 2}})
	res, err := placement.Solve(g, []int{5, 5, 5})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Peaks)
	assert.Equal(t, 6, res.AltitudeSum)
	assert.Equal(t, 6, res.PlacedAltitude)
}

// TestSolve_WallSplitsValleys needs two probes to see both sides of a ridge.
func TestSolve_WallSplitsValleys(t *testing.T) {
	g := mustGrid(t, [][]int{{0, 0, 9, 0, 0}})

	one, err := placement.Solve(g, []int{4})
	require.NoError(t, err)
	// Standing on the ridge sees everything.
	assert.Equal(t, 5, one.Peaks)
	assert.Equal(t, 2, one.Placement[0].X)

	two, err := placement.Solve(g, []int{1, 4})
	require.NoError(t, err)
	assert.Equal(t, 5, two.Peaks)
	assert.Equal(t, 9, two.AltitudeSum)
	// Range 4 at x=1 sees x=0..2 (x=3,4 hide behind the ridge); range 1 at
	// x=3 sees x=2..4. Both seats are at altitude 0.
	assert.Equal(t, 0, two.PlacedAltitude)
}

// TestSolve_PlacementConsistent checks the reported placement reproduces the outcome.
func TestSolve_PlacementConsistent(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for iter := 0; iter < 20; iter++ {
		g := mustGrid(t, randomGrid(r, 1+r.Intn(4), 1+r.Intn(4)))
		ranges := randomRanges(r, 1+r.Intn(min(3, g.Cells())))
		res, err := placement.Solve(g, ranges)
		require.NoError(t, err)
		require.Len(t, res.Placement, len(ranges))

		var occ, vis terrain.CellSet
		prev := res.Placement[0].Range
		for _, pl := range res.Placement {
			assert.LessOrEqual(t, pl.Range, prev, "placement must follow descending range")
			prev = pl.Range
			c := g.Index(pl.X, pl.Y)
			assert.False(t, occ.Has(c), "cell reused")
			occ = occ.Add(c)
			m, err := visibility.Sweep(g, pl.X, pl.Y, pl.Range)
			require.NoError(t, err)
			vis = vis.Union(m)
			assert.Equal(t, g.Altitude(pl.X, pl.Y), pl.Altitude)
		}
		assert.Equal(t, vis.Count(), res.Peaks)
		assert.Equal(t, g.Sum(vis), res.AltitudeSum)
		assert.Equal(t, g.Sum(occ), res.PlacedAltitude)
	}
}

// ---------------------------
// 3) Equivalences.
// ---------------------------

// TestSolve_BoundDoesNotChangeResult runs both policies on random instances.
func TestSolve_BoundDoesNotChangeResult(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for iter := 0; iter < 40; iter++ {
		g := mustGrid(t, randomGrid(r, 1+r.Intn(4), 1+r.Intn(4)))
		ranges := randomRanges(r, 1+r.Intn(min(3, g.Cells())))

		withBound, err := placement.Solve(g, ranges, placement.WithBound(placement.SimpleBound))
		require.NoError(t, err)
		noBound, err := placement.Solve(g, ranges, placement.WithBound(placement.NoBound))
		require.NoError(t, err)

		assert.Equal(t, noBound.Outcome, withBound.Outcome, "iter %d ranges %v", iter, ranges)
		assert.Zero(t, noBound.Stats.Pruned)
		assert.LessOrEqual(t, withBound.Stats.Terminals, noBound.Stats.Terminals)
	}
}

// TestSolve_MatchesBruteForce compares against exhaustive enumeration.
func TestSolve_MatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	for iter := 0; iter < 30; iter++ {
		g := mustGrid(t, randomGrid(r, 1+r.Intn(3), 1+r.Intn(3)))
		ranges := randomRanges(r, 1+r.Intn(min(3, g.Cells())))

		res, err := placement.Solve(g, ranges)
		require.NoError(t, err)
		assert.Equal(t, bruteForce(t, g, ranges), res.Outcome, "iter %d ranges %v", iter, ranges)
	}
}

// TestSolve_AtLeastBestSingle: the optimum observes at least as many cells as
// any one probe on any one cell.
func TestSolve_AtLeastBestSingle(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for iter := 0; iter < 20; iter++ {
		g := mustGrid(t, randomGrid(r, 1+r.Intn(5), 1+r.Intn(5)))
		ranges := randomRanges(r, 1+r.Intn(min(2, g.Cells())))
		res, err := placement.Solve(g, ranges)
		require.NoError(t, err)

		for _, rng := range ranges {
			for c := 0; c < g.Cells(); c++ {
				x, y := g.Coordinate(c)
				m, err := visibility.Sweep(g, x, y, rng)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, res.Peaks, m.Count())
			}
		}
	}
}

// TestSolve_InputOrderIrrelevant: probe list order never matters.
func TestSolve_InputOrderIrrelevant(t *testing.T) {
	g := mustGrid(t, [][]int{
		{3, 1, 4},
		{1, 5, 9},
		{2, 6, 5},
	})
	a, err := placement.Solve(g, []int{1, 3, 2})
	require.NoError(t, err)
	b, err := placement.Solve(g, []int{3, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, a.Outcome, b.Outcome)
	assert.Equal(t, a.Placement, b.Placement)
}

// TestSolve_Deterministic repeats a run and expects identical results.
func TestSolve_Deterministic(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	g := mustGrid(t, randomGrid(r, 4, 4))
	first, err := placement.Solve(g, []int{3, 2, 1})
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := placement.Solve(g, []int{3, 2, 1})
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// TestSolve_OnImprove observes the incumbent only ever getting better.
func TestSolve_OnImprove(t *testing.T) {
	r := rand.New(rand.NewSource(8))
	g := mustGrid(t, randomGrid(r, 4, 3))

	var seen []placement.Outcome
	res, err := placement.Solve(g, []int{2, 1}, placement.WithOnImprove(func(r placement.Result) {
		seen = append(seen, r.Outcome)
	}))
	require.NoError(t, err)
	require.NotEmpty(t, seen)
	for i := 1; i < len(seen); i++ {
		assert.True(t, placement.Better(seen[i], seen[i-1]), "step %d did not improve", i)
	}
	assert.Equal(t, res.Outcome, seen[len(seen)-1])
}

// ---------------------------
// 4) Expand / State.
// ---------------------------

func TestSolver_RootAndExpand(t *testing.T) {
	g := mustGrid(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	s, err := placement.NewSolver(g, []int{1, 3})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1}, s.Ranges())

	root := s.Root()
	assert.Equal(t, uint8(0b11), root.Remaining)
	assert.Equal(t, 0, root.Next)
	assert.False(t, root.Terminal())

	kids := s.Expand(root, 0)
	require.Len(t, kids, g.Cells())
	for i, k := range kids {
		assert.Equal(t, 1, k.Next)
		assert.Equal(t, uint8(0b10), k.Remaining)
		assert.Equal(t, 1, k.Occupied.Count())
		assert.Equal(t, k.Occupied.Lowest(), k.Cell(0))
		assert.Equal(t, s.Table().Mask(0, k.Cell(0)), k.Visible)
		if i > 0 {
			assert.NotEqual(t, kids[i-1].Occupied, k.Occupied, "siblings share a cell")
		}
	}

	// Second level: one fewer free cell, terminal children.
	grand := s.Expand(kids[0], 0)
	require.Len(t, grand, g.Cells()-1)
	for _, gk := range grand {
		assert.True(t, gk.Terminal())
		assert.Equal(t, 2, gk.Occupied.Count())
		assert.Equal(t, kids[0].Cell(0), gk.Cell(0))
		assert.Nil(t, s.Expand(gk, 0))
	}
}

func TestSolver_ExpandPrunes(t *testing.T) {
	g := mustGrid(t, [][]int{{0, 0, 0}})
	s, err := placement.NewSolver(g, []int{1})
	require.NoError(t, err)
	// Range 1 sees at most 3 cells in a row of three; an incumbent of 4 is unbeatable.
	assert.Empty(t, s.Expand(s.Root(), 4))
	assert.Len(t, s.Expand(s.Root(), 3), 1, "only the middle cell reaches 3")

	ns, err := placement.NewSolver(g, []int{1}, placement.WithBound(placement.NoBound))
	require.NoError(t, err)
	assert.Len(t, ns.Expand(ns.Root(), 4), 3)
}

func TestSolver_RemainingInvariantPanics(t *testing.T) {
	g := mustGrid(t, [][]int{{0, 0, 0}})
	s, err := placement.NewSolver(g, []int{1, 1})
	require.NoError(t, err)

	bad := placement.State{Remaining: 0b10, Next: 0}
	assert.PanicsWithError(t, placement.ErrRemainingInvariant.Error(), func() {
		s.Expand(bad, 0)
	})
}
