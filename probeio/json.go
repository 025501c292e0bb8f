package probeio

import (
	"fmt"
	"math"

	"github.com/tidwall/gjson"

	"github.com/katalvlaran/probeplace/terrain"
)

// ParseJSON reads one instance of the form
// {"grid": [[...], ...], "probes": [...]}. A missing "probes" key means no
// probes. Every number must be an integer.
func ParseJSON(data []byte) (*Instance, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: not valid JSON", ErrJSON)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: top level must be an object", ErrJSON)
	}

	gridRes := root.Get("grid")
	if !gridRes.IsArray() {
		return nil, fmt.Errorf("%w: \"grid\" must be an array of rows", ErrJSON)
	}
	rowsRes := gridRes.Array()
	rows := make([][]int, len(rowsRes))
	var err error
	for y, rowRes := range rowsRes {
		if !rowRes.IsArray() {
			return nil, fmt.Errorf("%w: grid row %d is not an array", ErrJSON, y)
		}
		if rows[y], err = jsonInts(rowRes.Array()); err != nil {
			return nil, fmt.Errorf("%w: grid row %d: %v", ErrJSON, y, err)
		}
	}
	if len(rows) > 0 && len(rows)*len(rows[0]) > terrain.MaxCells {
		return nil, fmt.Errorf("%w: grid has more than %d cells", ErrCapacity, terrain.MaxCells)
	}
	grid, err := terrain.NewGrid(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrJSON, err)
	}

	ranges := []int{}
	if probesRes := root.Get("probes"); probesRes.Exists() {
		if !probesRes.IsArray() {
			return nil, fmt.Errorf("%w: \"probes\" must be an array", ErrJSON)
		}
		if ranges, err = jsonInts(probesRes.Array()); err != nil {
			return nil, fmt.Errorf("%w: probes: %v", ErrJSON, err)
		}
	}
	if err = checkRanges(ranges); err != nil {
		return nil, err
	}

	return &Instance{Grid: grid, Ranges: ranges, DeclaredProbes: -1}, nil
}

// jsonInts converts a JSON array of integral numbers.
func jsonInts(vals []gjson.Result) ([]int, error) {
	out := make([]int, len(vals))
	for i, v := range vals {
		if v.Type != gjson.Number || v.Num != math.Trunc(v.Num) {
			return nil, fmt.Errorf("element %d (%s) is not an integer", i, v.Raw)
		}
		if v.Num < float64(math.MinInt) || v.Num >= float64(math.MaxInt) {
			return nil, fmt.Errorf("element %d (%s) is out of integer range", i, v.Raw)
		}
		out[i] = int(v.Int())
	}

	return out, nil
}
