package visibility

import (
	"errors"

	"github.com/katalvlaran/probeplace/terrain"
)

// Sentinel errors for visibility computations.
var (
	// ErrNilGrid is returned when a nil *terrain.Grid is passed in.
	ErrNilGrid = errors.New("visibility: grid is nil")
	// ErrOutOfBounds indicates the origin cell lies outside the grid.
	ErrOutOfBounds = errors.New("visibility: origin out of bounds")
	// ErrBadRange indicates a non-positive visibility range.
	ErrBadRange = errors.New("visibility: range must be positive")
)

// Table is the dense probe×cell observation buffer.
// masks[p*cells+c] is what probe p observes when placed on cell c.
// A Table is immutable once built and safe for concurrent reads.
type Table struct {
	ranges   []int
	cells    int
	masks    []terrain.CellSet
	maxCount []int
	bestCell []int
}
