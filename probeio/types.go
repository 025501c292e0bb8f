package probeio

import (
	"errors"

	"github.com/katalvlaran/probeplace/terrain"
)

// MaxProbes mirrors the search's probe capacity so oversize inputs fail at
// the parsing stage with a precise diagnostic.
const MaxProbes = 8

// Sentinel errors, one per input stage plus capacity.
var (
	// ErrDimensions indicates a missing or malformed "H W" line.
	ErrDimensions = errors.New("probeio: bad dimensions")
	// ErrMatrix indicates a missing, short, long or non-numeric altitude row.
	ErrMatrix = errors.New("probeio: bad altitude matrix")
	// ErrProbeCount indicates a missing or malformed probe count line.
	ErrProbeCount = errors.New("probeio: bad probe count")
	// ErrProbeList indicates a missing or malformed probe range list.
	ErrProbeList = errors.New("probeio: bad probe list")
	// ErrCapacity indicates more than 64 cells or more than 8 probes.
	ErrCapacity = errors.New("probeio: instance exceeds capacity")
	// ErrJSON indicates a malformed JSON instance.
	ErrJSON = errors.New("probeio: bad JSON instance")
)

// Instance is a parsed, validated problem.
type Instance struct {
	Grid   *terrain.Grid
	Ranges []int

	// DeclaredProbes is the count announced by the input; -1 when the format
	// carries none (JSON).
	DeclaredProbes int
}
