// SPDX-License-Identifier: MIT
// Package seq: Batch — the dense one-hot container (sequence × channel × position).
//
// Storage discipline (single source of truth):
//   - one flat row-major []float64 slab, no per-sequence slices
//   - linear index: ((i*A)+ch)*L + pos, A = alphabet size, L = length
//   - an all-zero column encodes the missing symbol (index Missing)
//
// Public indexers (At/Set/Symbol/...) validate bounds and return sentinels;
// package-internal helpers skip rechecking when the caller already validated.

package seq

// Batch holds n equal-length sequences over one alphabet as a dense one-hot
// tensor. The zero value is unusable; construct via NewBatch, Encode or
// NewBatchFromData.
//
// Batch values are not safe for concurrent mutation. Algorithms in hotseq
// treat their input batches as read-only and return fresh containers, so
// sharing an input across goroutines is safe as long as nobody writes to it.
type Batch struct {
	alpha  *Alphabet
	n      int       // number of sequences
	length int       // positions per sequence
	data   []float64 // flat slab, ((i*A)+ch)*L + pos
}

// NewBatch allocates an all-missing batch of n sequences of the given length.
// Every column starts all-zero; fill via Set, SetSymbol or SetSymbols.
// Returns ErrBadShape unless n >= 1, length >= 1 and alpha is non-nil.
func NewBatch(alpha *Alphabet, n, length int) (*Batch, error) {
	if alpha == nil || alpha.Len() == 0 || n <= 0 || length <= 0 {
		return nil, ErrBadShape
	}

	return &Batch{
		alpha:  alpha,
		n:      n,
		length: length,
		data:   make([]float64, n*alpha.Len()*length),
	}, nil
}

// NewBatchFromData builds a batch from an existing flat slab laid out as
// ((i*A)+ch)*L + pos. The slab is copied (the caller keeps ownership of data)
// and validated: ErrDataSize on a length mismatch, ErrNotOneHot when any
// column is not a valid one-hot-or-missing encoding.
func NewBatchFromData(alpha *Alphabet, n, length int, data []float64) (*Batch, error) {
	b, err := NewBatch(alpha, n, length)
	if err != nil {
		return nil, err
	}
	if len(data) != len(b.data) {
		return nil, ErrDataSize
	}
	copy(b.data, data)
	if err = b.Validate(); err != nil {
		return nil, err
	}

	return b, nil
}

// N reports the number of sequences.
func (b *Batch) N() int { return b.n }

// Len reports the number of positions per sequence.
func (b *Batch) Len() int { return b.length }

// Channels reports the alphabet size (rows of the one-hot axis).
func (b *Batch) Channels() int { return b.alpha.Len() }

// Alphabet returns the shared symbol table.
func (b *Batch) Alphabet() *Alphabet { return b.alpha }

// idx maps (sequence, channel, position) to the flat slab offset.
// Callers must have validated bounds already.
func (b *Batch) idx(i, ch, pos int) int {
	return (i*b.alpha.Len()+ch)*b.length + pos
}

// checkCell validates a full (sequence, channel, position) triple.
func (b *Batch) checkCell(i, ch, pos int) error {
	if i < 0 || i >= b.n || ch < 0 || ch >= b.alpha.Len() || pos < 0 || pos >= b.length {
		return ErrOutOfRange
	}

	return nil
}

// checkColumn validates a (sequence, position) pair.
func (b *Batch) checkColumn(i, pos int) error {
	if i < 0 || i >= b.n || pos < 0 || pos >= b.length {
		return ErrOutOfRange
	}

	return nil
}

// At returns the activation at (sequence i, channel ch, position pos).
// Returns ErrOutOfRange instead of panicking on bad indices.
func (b *Batch) At(i, ch, pos int) (float64, error) {
	if b == nil {
		return 0, ErrNilBatch
	}
	if err := b.checkCell(i, ch, pos); err != nil {
		return 0, err
	}

	return b.data[b.idx(i, ch, pos)], nil
}

// Set writes a single activation. Only the exact values 0 and 1 are legal
// (ErrNotOneHot otherwise). Set does not police the one-column-one-hot
// invariant — use SetSymbol for invariant-preserving writes, or Validate to
// audit a batch assembled cell by cell.
func (b *Batch) Set(i, ch, pos int, v float64) error {
	if b == nil {
		return ErrNilBatch
	}
	if err := b.checkCell(i, ch, pos); err != nil {
		return err
	}
	if v != 0 && v != 1 {
		return ErrNotOneHot
	}
	b.data[b.idx(i, ch, pos)] = v

	return nil
}

// Symbol decodes the column at (sequence i, position pos) into a symbol
// index: the channel holding the single 1, or Missing for an all-zero
// column. A corrupt column (non-binary value or several 1s) yields
// ErrNotOneHot.
func (b *Batch) Symbol(i, pos int) (int, error) {
	if b == nil {
		return 0, ErrNilBatch
	}
	if err := b.checkColumn(i, pos); err != nil {
		return 0, err
	}

	return b.decodeColumn(i, pos)
}

// decodeColumn is Symbol without bounds rechecking.
func (b *Batch) decodeColumn(i, pos int) (int, error) {
	var (
		sym  = Missing
		base = (i*b.alpha.Len())*b.length + pos
		step = b.length
	)
	for ch := 0; ch < b.alpha.Len(); ch++ {
		switch v := b.data[base+ch*step]; v {
		case 0:
			// inactive channel
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

// SetSymbol overwrites the column at (sequence i, position pos) with the
// one-hot encoding of sym. sym == Missing clears the column. Returns
// ErrUnsupportedSymbol for any other index outside [0, Channels).
func (b *Batch) SetSymbol(i, pos, sym int) error {
	if b == nil {
		return ErrNilBatch
	}
	if err := b.checkColumn(i, pos); err != nil {
		return err
	}
	if sym != Missing && (sym < 0 || sym >= b.alpha.Len()) {
		return ErrUnsupportedSymbol
	}
	b.writeColumn(i, pos, sym)

	return nil
}

// writeColumn is SetSymbol without validation.
func (b *Batch) writeColumn(i, pos, sym int) {
	var (
		base = (i*b.alpha.Len())*b.length + pos
		step = b.length
	)
	for ch := 0; ch < b.alpha.Len(); ch++ {
		b.data[base+ch*step] = 0
	}
	if sym != Missing {
		b.data[base+sym*step] = 1
	}
}

// Symbols decodes sequence i into a fresh slice of symbol indices
// (Missing for all-zero columns). One bounds check, then O(A·L) decoding.
func (b *Batch) Symbols(i int) ([]int, error) {
	if b == nil {
		return nil, ErrNilBatch
	}
	if i < 0 || i >= b.n {
		return nil, ErrOutOfRange
	}

	var (
		syms = make([]int, b.length)
		err  error
	)
	for pos := 0; pos < b.length; pos++ {
		if syms[pos], err = b.decodeColumn(i, pos); err != nil {
			return nil, err
		}
	}

	return syms, nil
}

// SetSymbols overwrites every column of sequence i from a slice of symbol
// indices. len(syms) must equal Len (ErrLengthMismatch); each entry must be
// Missing or a valid channel (ErrUnsupportedSymbol), checked before any
// column is written so a failed call leaves the batch untouched.
func (b *Batch) SetSymbols(i int, syms []int) error {
	if b == nil {
		return ErrNilBatch
	}
	if i < 0 || i >= b.n {
		return ErrOutOfRange
	}
	if len(syms) != b.length {
		return ErrLengthMismatch
	}
	for _, sym := range syms {
		if sym != Missing && (sym < 0 || sym >= b.alpha.Len()) {
			return ErrUnsupportedSymbol
		}
	}
	for pos := 0; pos < b.length; pos++ {
		b.writeColumn(i, pos, syms[pos])
	}

	return nil
}

// Clone returns a deep copy sharing only the (immutable) alphabet.
func (b *Batch) Clone() *Batch {
	if b == nil {
		return nil
	}

	out := &Batch{
		alpha:  b.alpha,
		n:      b.n,
		length: b.length,
		data:   make([]float64, len(b.data)),
	}
	copy(out.data, b.data)

	return out
}

// Equal reports exact equality: same shape, same alphabet, identical slab.
func (b *Batch) Equal(o *Batch) bool {
	if b == o {
		return true
	}
	if b == nil || o == nil {
		return false
	}
	if b.n != o.n || b.length != o.length || !b.alpha.Equal(o.alpha) {
		return false
	}
	for k := range b.data {
		if b.data[k] != o.data[k] {
			return false
		}
	}

	return true
}

// Validate audits the full one-hot invariant: every activation is exactly
// 0 or 1 and every column holds at most a single 1. O(N·A·L).
func (b *Batch) Validate() error {
	if b == nil {
		return ErrNilBatch
	}
	for i := 0; i < b.n; i++ {
		for pos := 0; pos < b.length; pos++ {
			if _, err := b.decodeColumn(i, pos); err != nil {
				return err
			}
		}
	}

	return nil
}
