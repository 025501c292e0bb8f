package terrain

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice of altitudes.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrGridTooLarge if the
// grid holds more than MaxCells cells.
// Complexity: O(W×H) time and memory.
func NewGrid(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	if w*h > MaxCells {
		return nil, ErrGridTooLarge
	}
	// Deep copy to prevent external mutation
	alt := make([][]int, h)
	for y := 0; y < h; y++ {
		alt[y] = make([]int, w)
		copy(alt[y], values[y])
	}

	return &Grid{Width: w, Height: h, altitudes: alt}, nil
}

// Cells returns W×H, the number of addressable cells.
func (g *Grid) Cells() int {
	return g.Width * g.Height
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// Altitude returns the altitude at (x,y). The caller guarantees InBounds.
func (g *Grid) Altitude(x, y int) int {
	return g.altitudes[y][x]
}

// Rows returns a copy of the altitude matrix, one slice per row.
func (g *Grid) Rows() [][]int {
	out := make([][]int, g.Height)
	for y := range out {
		out[y] = append([]int(nil), g.altitudes[y]...)
	}

	return out
}

// AltitudeAt returns the altitude of the cell with linear index idx.
func (g *Grid) AltitudeAt(idx int) int {
	x, y := g.Coordinate(idx)

	return g.altitudes[y][x]
}

// Sum adds up the altitudes of every cell in s.
// Bits at or above Cells() are ignored.
// Complexity: O(|s|).
func (g *Grid) Sum(s CellSet) int {
	s &= Full(g.Cells())
	total := 0
	for s != 0 {
		total += g.AltitudeAt(s.Lowest())
		s = s.withoutLowest()
	}

	return total
}
