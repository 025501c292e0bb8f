package placement

import (
	"errors"

	"github.com/katalvlaran/probeplace/terrain"
)

// MaxProbes is the largest probe list the 8-bit remaining set can track.
const MaxProbes = 8

var (
	// ErrNilGrid is returned when a nil *terrain.Grid is passed to Solve.
	ErrNilGrid = errors.New("placement: grid is nil")

	// ErrTooManyProbes indicates more than MaxProbes probes.
	ErrTooManyProbes = errors.New("placement: more than 8 probes")

	// ErrBadRange indicates a probe with a non-positive visibility range.
	ErrBadRange = errors.New("placement: probe range must be positive")

	// ErrNotEnoughCells indicates more probes than cells, so no complete
	// placement exists. Such instances are rejected up front instead of being
	// searched and reported as an empty "0 0 <max int>" result.
	ErrNotEnoughCells = errors.New("placement: more probes than grid cells")

	// ErrRemainingInvariant is the panic value raised when a State's remaining
	// set is not exactly the probes at or after its next index.
	ErrRemainingInvariant = errors.New("placement: remaining probes are not the unplaced suffix")
)

// BoundAlgo selects the pruning policy.
type BoundAlgo int

const (
	// SimpleBound prunes with the sum of per-probe best single-cell counts.
	SimpleBound BoundAlgo = iota
	// NoBound disables pruning. The result is identical; only slower.
	NoBound
)

// Options configures the placement search.
type Options struct {
	// Bound selects the pruning policy. Default SimpleBound.
	Bound BoundAlgo

	// OnImprove, if non-nil, is invoked each time a terminal state strictly
	// beats the incumbent. The Result passed in is a snapshot; Stats reflect
	// the search so far.
	OnImprove func(Result)
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// DefaultOptions returns Options with SimpleBound and no hooks.
func DefaultOptions() Options {
	return Options{
		Bound:     SimpleBound,
		OnImprove: nil,
	}
}

// WithBound sets the pruning policy.
func WithBound(b BoundAlgo) Option {
	return func(o *Options) {
		o.Bound = b
	}
}

// WithOnImprove installs fn as the incumbent-improvement hook.
func WithOnImprove(fn func(Result)) Option {
	return func(o *Options) {
		o.OnImprove = fn
	}
}

// Outcome is the score of a complete placement, compared with Better.
type Outcome struct {
	Peaks          int // distinct cells observed by at least one probe
	AltitudeSum    int // summed altitude of the observed cells
	PlacedAltitude int // summed altitude of the cells holding a probe
}

// Placed records where one probe stands.
type Placed struct {
	Range    int
	X, Y     int
	Altitude int
}

// Stats are diagnostic counters collected during the search.
type Stats struct {
	Expanded  int // non-terminal states popped and branched
	Pushed    int // children pushed onto the stack
	Pruned    int // children discarded by the bound
	Terminals int // complete placements scored
}

// Result is the best outcome found together with the placement achieving it.
// Placement is listed in search order (descending range).
type Result struct {
	Outcome
	Placement []Placed
	Stats     Stats
}

// State is one node of the search. It is a value type: children are copies
// of their parent with one more probe placed.
type State struct {
	Occupied  terrain.CellSet // cells holding a placed probe
	Visible   terrain.CellSet // cells observed by any placed probe
	Remaining uint8           // bit p set ⇔ probe p not yet placed
	Next      int             // index of the probe placed by the next step

	cells [MaxProbes]uint8 // cells[p] is the cell of probe p, for p < Next
}

// Terminal reports whether every probe has been placed.
func (s State) Terminal() bool {
	return s.Remaining == 0
}

// Cell returns the cell index of placed probe p (p < Next).
func (s State) Cell(p int) int {
	return int(s.cells[p])
}
