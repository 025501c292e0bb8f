package visibility

import "github.com/katalvlaran/probeplace/terrain"

// NewTable sweeps every cell of g (row-major) for every probe range and
// stores the results. ranges is used in the order given; callers that rely on
// a particular probe order (the placement search sorts descending) must sort
// before calling.
//
// Errors: ErrNilGrid, ErrBadRange.
//
// Complexity: O(P·W·H·8·R) time, O(P·W·H) memory.
func NewTable(g *terrain.Grid, ranges []int) (*Table, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	var p int
	for p = range ranges {
		if ranges[p] <= 0 {
			return nil, ErrBadRange
		}
	}

	n := g.Cells()
	t := &Table{
		ranges:   append([]int(nil), ranges...),
		cells:    n,
		masks:    make([]terrain.CellSet, len(ranges)*n),
		maxCount: make([]int, len(ranges)),
		bestCell: make([]int, len(ranges)),
	}

	var (
		x, y  int
		c     int
		m     terrain.CellSet
		count int
	)
	for p = range t.ranges {
		rng := float64(t.ranges[p])
		for y = 0; y < g.Height; y++ {
			for x = 0; x < g.Width; x++ {
				c = g.Index(x, y)
				m = sweep(g, x, y, rng)
				t.masks[p*n+c] = m
				if count = m.Count(); count > t.maxCount[p] {
					t.maxCount[p] = count
					t.bestCell[p] = c
				}
			}
		}
	}

	return t, nil
}

// Probes returns the number of probes the table was built for.
func (t *Table) Probes() int { return len(t.ranges) }

// Cells returns the number of grid cells per probe row.
func (t *Table) Cells() int { return t.cells }

// Ranges returns a copy of the probe ranges in table order.
func (t *Table) Ranges() []int { return append([]int(nil), t.ranges...) }

// Mask returns the cells probe p observes from cell c. O(1).
func (t *Table) Mask(p, c int) terrain.CellSet { return t.masks[p*t.cells+c] }

// MaxCount returns the largest number of cells probe p observes from any single cell.
func (t *Table) MaxCount(p int) int { return t.maxCount[p] }

// BestCell returns the first cell (row-major) at which probe p reaches MaxCount.
func (t *Table) BestCell(p int) int { return t.bestCell[p] }
