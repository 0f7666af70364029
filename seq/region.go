// SPDX-License-Identifier: MIT
// Package seq: Region — the half-open position interval [Start, End) shared
// by every windowed operation (substitution, shuffling, composition counts).

package seq

// Region is a half-open interval of positions: Start inclusive, End exclusive.
type Region struct {
	Start int
	End   int
}

// FullRegion covers every position of a length-L sequence: [0, L).
func FullRegion(length int) Region { return Region{Start: 0, End: length} }

// Len reports the number of positions covered.
func (r Region) Len() int { return r.End - r.Start }

// Contains reports whether pos falls inside the interval.
func (r Region) Contains(pos int) bool { return pos >= r.Start && pos < r.End }

// Validate checks the interval against a sequence of the given length.
// Empty (Start == End), inverted, or out-of-bounds intervals yield ErrRegion.
func (r Region) Validate(length int) error {
	if r.Start < 0 || r.End > length || r.Start >= r.End {
		return ErrRegion
	}

	return nil
}
