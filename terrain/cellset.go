package terrain

import (
	"fmt"
	"math/bits"
)

// CellSet is a set of linear cell indices packed into one 64-bit word.
// The zero value is the empty set. CellSet is a value type: every method
// returns a new set and leaves the receiver untouched.
type CellSet uint64

// Single returns the set containing only idx.
func Single(idx int) CellSet {
	return CellSet(1) << uint(idx)
}

// Full returns the set {0, 1, ..., n-1}.
func Full(n int) CellSet {
	if n >= MaxCells {
		return ^CellSet(0)
	}

	return CellSet(1)<<uint(n) - 1
}

// Add returns s ∪ {idx}.
func (s CellSet) Add(idx int) CellSet {
	return s | Single(idx)
}

// Has reports whether idx is in s.
func (s CellSet) Has(idx int) bool {
	return s&Single(idx) != 0
}

// Union returns s ∪ o.
func (s CellSet) Union(o CellSet) CellSet {
	return s | o
}

// Count returns |s|.
func (s CellSet) Count() int {
	return bits.OnesCount64(uint64(s))
}

// Empty reports whether s has no members.
func (s CellSet) Empty() bool {
	return s == 0
}

// Lowest returns the smallest index in s, or 64 when s is empty.
func (s CellSet) Lowest() int {
	return bits.TrailingZeros64(uint64(s))
}

func (s CellSet) withoutLowest() CellSet {
	return s & (s - 1)
}

// Indices lists the members of s in ascending order.
func (s CellSet) Indices() []int {
	out := make([]int, 0, s.Count())
	for s != 0 {
		out = append(out, s.Lowest())
		s = s.withoutLowest()
	}

	return out
}

func (s CellSet) String() string {
	return fmt.Sprint(s.Indices())
}
