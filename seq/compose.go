// SPDX-License-Identifier: MIT
// Package seq: composition helpers.
// Symbol counts, adjacent-pair counts and GC content over a region of one
// sequence. The shuffling algorithms preserve exactly these statistics, so
// the helpers double as the measurement side of their invariants.

package seq

// Counts tallies the symbols of sequence i inside reg. The result has one
// slot per channel plus a final slot for missing columns, i.e. length
// Channels()+1 with counts[Channels()] counting Missing.
func (b *Batch) Counts(i int, reg Region) ([]int, error) {
	if b == nil {
		return nil, ErrNilBatch
	}
	if i < 0 || i >= b.n {
		return nil, ErrOutOfRange
	}
	if err := reg.Validate(b.length); err != nil {
		return nil, err
	}

	var (
		counts = make([]int, b.alpha.Len()+1)
		sym    int
		err    error
	)
	for pos := reg.Start; pos < reg.End; pos++ {
		if sym, err = b.decodeColumn(i, pos); err != nil {
			return nil, err
		}
		if sym == Missing {
			sym = b.alpha.Len()
		}
		counts[sym]++
	}

	return counts, nil
}

// PairCounts tallies adjacent symbol pairs (positions p, p+1 for p in
// [reg.Start, reg.End-1)) of sequence i, keyed by the two symbol indices
// (Missing included). A region shorter than two positions yields an empty map.
func (b *Batch) PairCounts(i int, reg Region) (map[[2]int]int, error) {
	if b == nil {
		return nil, ErrNilBatch
	}
	if i < 0 || i >= b.n {
		return nil, ErrOutOfRange
	}
	if err := reg.Validate(b.length); err != nil {
		return nil, err
	}

	var (
		pairs = make(map[[2]int]int)
		prev  int
		cur   int
		err   error
	)
	if prev, err = b.decodeColumn(i, reg.Start); err != nil {
		return nil, err
	}
	for pos := reg.Start + 1; pos < reg.End; pos++ {
		if cur, err = b.decodeColumn(i, pos); err != nil {
			return nil, err
		}
		pairs[[2]int{prev, cur}]++
		prev = cur
	}

	return pairs, nil
}

// GCContent reports the fraction of non-missing positions of sequence i
// holding a 'G' or 'C' symbol. Returns ErrUnsupportedSymbol when the
// alphabet defines neither, and 0 for an all-missing sequence.
func (b *Batch) GCContent(i int) (float64, error) {
	if b == nil {
		return 0, ErrNilBatch
	}
	if i < 0 || i >= b.n {
		return 0, ErrOutOfRange
	}

	var (
		gIdx, gErr = b.alpha.Index('G')
		cIdx, cErr = b.alpha.Index('C')
	)
	if gErr == nil && gIdx == Missing {
		gErr = ErrUnsupportedSymbol // 'G' is the missing marker, not a symbol
	}
	if cErr == nil && cIdx == Missing {
		cErr = ErrUnsupportedSymbol
	}
	if gErr != nil && cErr != nil {
		return 0, ErrUnsupportedSymbol
	}

	var (
		gc    int
		total int
		sym   int
		err   error
	)
	for pos := 0; pos < b.length; pos++ {
		if sym, err = b.decodeColumn(i, pos); err != nil {
			return 0, err
		}
		if sym == Missing {
			continue
		}
		total++
		if (gErr == nil && sym == gIdx) || (cErr == nil && sym == cIdx) {
			gc++
		}
	}
	if total == 0 {
		return 0, nil
	}

	return float64(gc) / float64(total), nil
}
