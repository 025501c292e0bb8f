// Package placement_test provides small helpers shared across *_test.go files.
package placement_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/probeplace/placement"
	"github.com/katalvlaran/probeplace/terrain"
	"github.com/katalvlaran/probeplace/visibility"
)

// mustGrid builds a grid or fails the test.
func mustGrid(t testing.TB, vals [][]int) *terrain.Grid {
	t.Helper()
	g, err := terrain.NewGrid(vals)
	require.NoError(t, err)

	return g
}

// randomGrid returns a deterministic w×h grid with altitudes in [-9, 9].
func randomGrid(r *rand.Rand, w, h int) [][]int {
	vals := make([][]int, h)
	for y := range vals {
		vals[y] = make([]int, w)
		for x := range vals[y] {
			vals[y][x] = r.Intn(19) - 9
		}
	}

	return vals
}

// randomRanges returns n ranges in [1, 4].
func randomRanges(r *rand.Rand, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = 1 + r.Intn(4)
	}

	return out
}

// bruteForce enumerates every injective probe→cell assignment directly from
// Sweep, with no table and no pruning, and returns the best outcome.
func bruteForce(t testing.TB, g *terrain.Grid, ranges []int) placement.Outcome {
	t.Helper()
	n := g.Cells()
	masks := make([][]terrain.CellSet, len(ranges))
	for p, rng := range ranges {
		masks[p] = make([]terrain.CellSet, n)
		for c := 0; c < n; c++ {
			x, y := g.Coordinate(c)
			m, err := visibility.Sweep(g, x, y, rng)
			require.NoError(t, err)
			masks[p][c] = m
		}
	}

	var outcomes []placement.Outcome
	var walk func(p int, occ, vis terrain.CellSet)
	walk = func(p int, occ, vis terrain.CellSet) {
		if p == len(ranges) {
			outcomes = append(outcomes, placement.Outcome{
				Peaks:          vis.Count(),
				AltitudeSum:    g.Sum(vis),
				PlacedAltitude: g.Sum(occ),
			})
			return
		}
		for c := 0; c < n; c++ {
			if occ.Has(c) {
				continue
			}
			walk(p+1, occ.Add(c), vis.Union(masks[p][c]))
		}
	}
	walk(0, 0, 0)

	best, ok := placement.Best(outcomes)
	require.True(t, ok)

	return best
}
