// SPDX-License-Identifier: MIT
// Package seq: Sequence — a zero-copy single-sequence view.
// A Sequence is a slice-like header over one A×L slab (channel-major, i.e.
// ch*L + pos). Views created from a Batch or Draws alias the parent storage:
// writes through the view are visible in the parent and vice versa. Clone
// materializes an owned copy when isolation is needed.

package seq

// Sequence is one sequence's channel × position slab. The zero value is
// unusable; obtain views via (*Batch).Sequence / (*Draws).Sequence, or an
// owned slab via NewSequence / Clone. Copying the header copies the view,
// not the data (slice semantics).
type Sequence struct {
	alpha  *Alphabet
	length int
	data   []float64 // ch*length + pos
}

// newView wraps an existing slab without copying. len(data) must equal
// alpha.Len()*length; callers guarantee it.
func newView(alpha *Alphabet, length int, data []float64) Sequence {
	return Sequence{alpha: alpha, length: length, data: data}
}

// NewSequence allocates an owned all-missing sequence of the given length.
// Returns ErrBadShape unless length >= 1 and alpha is non-nil.
func NewSequence(alpha *Alphabet, length int) (Sequence, error) {
	if alpha == nil || alpha.Len() == 0 || length <= 0 {
		return Sequence{}, ErrBadShape
	}

	return newView(alpha, length, make([]float64, alpha.Len()*length)), nil
}

// Sequence returns a zero-copy view of sequence i. Mutations through the
// view write into the batch.
func (b *Batch) Sequence(i int) (Sequence, error) {
	if b == nil {
		return Sequence{}, ErrNilBatch
	}
	if i < 0 || i >= b.n {
		return Sequence{}, ErrOutOfRange
	}

	var (
		slab  = b.alpha.Len() * b.length
		start = i * slab
	)

	return newView(b.alpha, b.length, b.data[start:start+slab:start+slab]), nil
}

// Len reports the number of positions.
func (s Sequence) Len() int { return s.length }

// Alphabet returns the symbol table, nil for the zero value.
func (s Sequence) Alphabet() *Alphabet { return s.alpha }

// At returns the activation at (channel ch, position pos).
func (s Sequence) At(ch, pos int) (float64, error) {
	if s.alpha == nil {
		return 0, ErrNilBatch
	}
	if ch < 0 || ch >= s.alpha.Len() || pos < 0 || pos >= s.length {
		return 0, ErrOutOfRange
	}

	return s.data[ch*s.length+pos], nil
}

// Set writes a single activation; only 0 and 1 are legal values.
// Like (*Batch).Set it does not police the column invariant.
func (s Sequence) Set(ch, pos int, v float64) error {
	if s.alpha == nil {
		return ErrNilBatch
	}
	if ch < 0 || ch >= s.alpha.Len() || pos < 0 || pos >= s.length {
		return ErrOutOfRange
	}
	if v != 0 && v != 1 {
		return ErrNotOneHot
	}
	s.data[ch*s.length+pos] = v

	return nil
}

// Symbol decodes the column at pos: the active channel, or Missing for an
// all-zero column. Corrupt columns yield ErrNotOneHot.
func (s Sequence) Symbol(pos int) (int, error) {
	if s.alpha == nil {
		return 0, ErrNilBatch
	}
	if pos < 0 || pos >= s.length {
		return 0, ErrOutOfRange
	}

	var sym = Missing
	for ch := 0; ch < s.alpha.Len(); ch++ {
		switch v := s.data[ch*s.length+pos]; v {
		case 0:
		case 1:
			if sym != Missing {
				return 0, ErrNotOneHot
			}
			sym = ch
		default:
			return 0, ErrNotOneHot
		}
	}

	return sym, nil
}

// SetSymbol overwrites the column at pos with the one-hot encoding of sym;
// Missing clears it.
func (s Sequence) SetSymbol(pos, sym int) error {
	if s.alpha == nil {
		return ErrNilBatch
	}
	if pos < 0 || pos >= s.length {
		return ErrOutOfRange
	}
	if sym != Missing && (sym < 0 || sym >= s.alpha.Len()) {
		return ErrUnsupportedSymbol
	}
	for ch := 0; ch < s.alpha.Len(); ch++ {
		s.data[ch*s.length+pos] = 0
	}
	if sym != Missing {
		s.data[sym*s.length+pos] = 1
	}

	return nil
}

// Symbols decodes the whole sequence into symbol indices.
func (s Sequence) Symbols() ([]int, error) {
	if s.alpha == nil {
		return nil, ErrNilBatch
	}

	var (
		syms = make([]int, s.length)
		err  error
	)
	for pos := 0; pos < s.length; pos++ {
		if syms[pos], err = s.Symbol(pos); err != nil {
			return nil, err
		}
	}

	return syms, nil
}

// Clone returns an owned copy backed by a fresh slab.
func (s Sequence) Clone() Sequence {
	if s.alpha == nil {
		return Sequence{}
	}

	out := newView(s.alpha, s.length, make([]float64, len(s.data)))
	copy(out.data, s.data)

	return out
}

// Decode renders the sequence as a string; missing columns decode to the
// alphabet's missing marker.
func (s Sequence) Decode() (string, error) {
	syms, err := s.Symbols()
	if err != nil {
		return "", err
	}

	var (
		buf = make([]byte, s.length)
		c   byte
	)
	for pos, sym := range syms {
		if c, err = s.alpha.Char(sym); err != nil {
			return "", err
		}
		buf[pos] = c
	}

	return string(buf), nil
}

// Equal reports exact content equality of two views (shape, alphabet, slab).
func (s Sequence) Equal(o Sequence) bool {
	if s.alpha == nil || o.alpha == nil {
		return s.alpha == nil && o.alpha == nil
	}
	if s.length != o.length || !s.alpha.Equal(o.alpha) {
		return false
	}
	for k := range s.data {
		if s.data[k] != o.data[k] {
			return false
		}
	}

	return true
}
