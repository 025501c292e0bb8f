package visibility

import (
	"math"

	"github.com/katalvlaran/probeplace/terrain"
)

// Sweep returns the set of cells observed by a probe of range rng placed on (x,y).
//
// Contract:
//   - g must be non-nil, (x,y) must be InBounds, rng must be > 0.
//   - No cell farther than rng from the origin is ever included.
//
// Complexity: O(8·rng) time, no allocations.
func Sweep(g *terrain.Grid, x, y, rng int) (terrain.CellSet, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	if !g.InBounds(x, y) {
		return 0, ErrOutOfBounds
	}
	if rng <= 0 {
		return 0, ErrBadRange
	}

	return sweep(g, x, y, float64(rng)), nil
}

// sweep is the unchecked hot path shared with NewTable.
func sweep(g *terrain.Grid, x, y int, rng float64) terrain.CellSet {
	var (
		origin = g.Altitude(x, y)
		seen   = terrain.Single(g.Index(x, y))
		nx, ny int
		dist   float64
		slope  float64
		peak   float64
	)
	for _, d := range terrain.Directions {
		nx, ny = x, y
		peak = math.Inf(-1)
		for {
			nx += d.DX
			ny += d.DY
			if !g.InBounds(nx, ny) {
				break
			}
			dist = distance(x, y, nx, ny)
			if dist > rng {
				break
			}
			slope = float64(g.Altitude(nx, ny)-origin) / dist
			if slope < peak {
				continue // occluded, but a steeper cell further out may still show
			}
			peak = slope
			seen = seen.Add(g.Index(nx, ny))
		}
	}

	return seen
}

// distance is the Euclidean distance between two cells.
func distance(x1, y1, x2, y2 int) float64 {
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)

	return math.Sqrt(dx*dx + dy*dy)
}
