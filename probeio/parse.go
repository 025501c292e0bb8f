package probeio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/probeplace/terrain"
)

// maxLineBytes bounds a single input line, padding included.
const maxLineBytes = 1 << 20

// lineReader yields non-blank lines together with their 1-based line number.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

// next returns the fields of the next non-blank line. ok is false at EOF.
func (lr *lineReader) next() (fields []string, ok bool) {
	for lr.sc.Scan() {
		lr.line++
		if fields = strings.Fields(lr.sc.Text()); len(fields) > 0 {
			return fields, true
		}
	}

	return nil, false
}

// ints converts every field to an int.
func ints(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	var err error
	for i, f := range fields {
		if out[i], err = strconv.Atoi(f); err != nil {
			return nil, fmt.Errorf("token %d %q is not an integer", i+1, f)
		}
	}

	return out, nil
}

// Parse reads one instance in the line-oriented text format.
//
// Stages and their sentinels, in order:
//  1. dimensions  (ErrDimensions, ErrCapacity)
//  2. matrix rows (ErrMatrix)
//  3. probe count (ErrProbeCount)
//  4. probe list  (ErrProbeList, ErrCapacity)
//
// Content after the probe list is ignored.
func Parse(r io.Reader) (*Instance, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	lr := &lineReader{sc: sc}
	inst, err := parse(lr)
	if err == nil {
		return inst, nil
	}
	// A read failure surfaces as a premature end of input; keep the stage.
	if scanErr := lr.sc.Err(); scanErr != nil {
		return nil, fmt.Errorf("%w (reading input after line %d: %w)", err, lr.line, scanErr)
	}

	return nil, err
}

func parse(lr *lineReader) (*Instance, error) {
	// Stage 1: dimensions.
	fields, ok := lr.next()
	if !ok {
		return nil, fmt.Errorf("%w: missing dimensions line", ErrDimensions)
	}
	dims, err := ints(fields)
	if err != nil {
		return nil, fmt.Errorf("%w: line %d: %v", ErrDimensions, lr.line, err)
	}
	if len(dims) != 2 {
		return nil, fmt.Errorf("%w: line %d: want 2 values (height width), got %d", ErrDimensions, lr.line, len(dims))
	}
	h, w := dims[0], dims[1]
	if h <= 0 || w <= 0 {
		return nil, fmt.Errorf("%w: line %d: height and width must be positive, got %d×%d", ErrDimensions, lr.line, h, w)
	}
	if h > terrain.MaxCells || w > terrain.MaxCells/h {
		return nil, fmt.Errorf("%w: %d×%d grid has more than %d cells", ErrCapacity, h, w, terrain.MaxCells)
	}

	// Stage 2: matrix.
	rows := make([][]int, h)
	for y := 0; y < h; y++ {
		if fields, ok = lr.next(); !ok {
			return nil, fmt.Errorf("%w: unexpected end of input after %d of %d rows", ErrMatrix, y, h)
		}
		if len(fields) != w {
			return nil, fmt.Errorf("%w: line %d: want %d altitudes, got %d", ErrMatrix, lr.line, w, len(fields))
		}
		if rows[y], err = ints(fields); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMatrix, lr.line, err)
		}
	}
	grid, err := terrain.NewGrid(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMatrix, err)
	}

	// Stage 3: declared probe count.
	if fields, ok = lr.next(); !ok {
		return nil, fmt.Errorf("%w: missing probe count line", ErrProbeCount)
	}
	if len(fields) != 1 {
		return nil, fmt.Errorf("%w: line %d: want 1 value, got %d", ErrProbeCount, lr.line, len(fields))
	}
	declared, err := strconv.Atoi(fields[0])
	if err != nil || declared < 0 {
		return nil, fmt.Errorf("%w: line %d: %q is not a non-negative integer", ErrProbeCount, lr.line, fields[0])
	}

	// Stage 4: probe ranges.
	fields, ok = lr.next()
	if !ok {
		if declared == 0 {
			return &Instance{Grid: grid, Ranges: []int{}, DeclaredProbes: 0}, nil
		}
		return nil, fmt.Errorf("%w: missing probe list (%d declared)", ErrProbeList, declared)
	}
	ranges, err := ints(fields)
	if err != nil {
		return nil, fmt.Errorf("%w: line %d: %v", ErrProbeList, lr.line, err)
	}
	if err = checkRanges(ranges); err != nil {
		return nil, fmt.Errorf("line %d: %w", lr.line, err)
	}

	return &Instance{Grid: grid, Ranges: ranges, DeclaredProbes: declared}, nil
}

// checkRanges enforces probe capacity and positive ranges.
func checkRanges(ranges []int) error {
	if len(ranges) > MaxProbes {
		return fmt.Errorf("%w: %d probes, at most %d supported", ErrCapacity, len(ranges), MaxProbes)
	}
	for i, r := range ranges {
		if r <= 0 {
			return fmt.Errorf("%w: probe %d has non-positive range %d", ErrProbeList, i+1, r)
		}
	}

	return nil
}

// Stage names a failed input stage for diagnostics, or "" for nil and
// errors that did not come from this package.
func Stage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrDimensions):
		return "dimensions"
	case errors.Is(err, ErrMatrix):
		return "matrix"
	case errors.Is(err, ErrProbeCount):
		return "probe count"
	case errors.Is(err, ErrProbeList):
		return "probe list"
	case errors.Is(err, ErrCapacity):
		return "capacity"
	case errors.Is(err, ErrJSON):
		return "json"
	}

	return ""
}
