package terrain

import "errors"

// MaxCells is the largest grid a CellSet can describe.
const MaxCells = 64

// Sentinel errors for terrain construction.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("terrain: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("terrain: all rows must have the same length")
	// ErrGridTooLarge indicates the grid has more cells than a CellSet can hold.
	ErrGridTooLarge = errors.New("terrain: grid exceeds 64 cells")
)

// Direction is a unit step (Δx, Δy) along one of the eight compass rays.
type Direction struct {
	DX, DY int
}

// Directions enumerates N, NE, E, SE, S, SW, W, NW.
// Screen orientation: y grows downwards, so North is DY = -1.
var Directions = [8]Direction{
	{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// Grid is an immutable rectangular altitude map.
// altitudes[y][x] holds the altitude of the cell at column x, row y; it is
// only reachable through Altitude, AltitudeAt and Rows.
type Grid struct {
	Width, Height int
	altitudes     [][]int
}
