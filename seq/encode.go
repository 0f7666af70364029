// SPDX-License-Identifier: MIT
// Package seq: string <-> one-hot conversion.
// Encode turns equal-length strings into a Batch; Strings decodes a Batch
// back. The alphabet's missing marker round-trips through an all-zero
// column, so Encode/Strings is lossless for every valid input.

package seq

// Encode builds a batch from one or more equal-length strings over alpha.
// Each character becomes a one-hot column; the missing marker becomes an
// all-zero column.
//
// Errors: ErrEmptyInput with no strings, ErrBadShape for empty strings,
// ErrLengthMismatch when lengths differ, ErrUnsupportedSymbol for characters
// outside the alphabet.
func Encode(alpha *Alphabet, strs ...string) (*Batch, error) {
	if len(strs) == 0 {
		return nil, ErrEmptyInput
	}

	length := len(strs[0])
	for _, s := range strs {
		if len(s) != length {
			return nil, ErrLengthMismatch
		}
	}

	b, err := NewBatch(alpha, len(strs), length)
	if err != nil {
		return nil, err
	}

	var sym int
	for i, s := range strs {
		for pos := 0; pos < length; pos++ {
			if sym, err = alpha.Index(s[pos]); err != nil {
				return nil, err
			}
			if sym != Missing {
				b.data[b.idx(i, sym, pos)] = 1
			}
		}
	}

	return b, nil
}

// Strings decodes every sequence of the batch; missing columns decode to
// the alphabet's missing marker. Returns ErrNotOneHot on corrupt columns.
func (b *Batch) Strings() ([]string, error) {
	if b == nil {
		return nil, ErrNilBatch
	}

	var (
		out = make([]string, b.n)
		s   Sequence
		err error
	)
	for i := 0; i < b.n; i++ {
		if s, err = b.Sequence(i); err != nil {
			return nil, err
		}
		if out[i], err = s.Decode(); err != nil {
			return nil, err
		}
	}

	return out, nil
}
