// SPDX-License-Identifier: MIT
// Package seq: Draws — the draw-axis container (sequence × draw × channel × position).
// Every randomized operation in hotseq returns this shape, draw count 1 by
// default, so callers never branch on the presence of the draw axis. Layout
// extends the Batch slab by one axis: (((i*R)+r)*A+ch)*L + pos.

package seq

// Draws holds R independent variants of each of N sequences. The zero value
// is unusable; construct via NewDraws or (*Batch).Repeat.
type Draws struct {
	alpha  *Alphabet
	n      int // sequences
	draws  int // variants per sequence
	length int
	data   []float64 // (((i*draws)+r)*A+ch)*length + pos
}

// NewDraws allocates an all-missing container. Returns ErrBadShape unless
// n >= 1, draws >= 1, length >= 1 and alpha is non-nil.
func NewDraws(alpha *Alphabet, n, draws, length int) (*Draws, error) {
	if alpha == nil || alpha.Len() == 0 || n <= 0 || draws <= 0 || length <= 0 {
		return nil, ErrBadShape
	}

	return &Draws{
		alpha:  alpha,
		n:      n,
		draws:  draws,
		length: length,
		data:   make([]float64, n*draws*alpha.Len()*length),
	}, nil
}

// Repeat replicates the batch content into every draw slot: Sequence(i, r)
// of the result equals batch sequence i for all r. This is the canonical
// starting point of the randomized operations, which then rewrite only the
// region under edit. Returns ErrBadShape for draws < 1.
func (b *Batch) Repeat(draws int) (*Draws, error) {
	if b == nil {
		return nil, ErrNilBatch
	}

	d, err := NewDraws(b.alpha, b.n, draws, b.length)
	if err != nil {
		return nil, err
	}

	var (
		slab = b.alpha.Len() * b.length
		i, r int
	)
	for i = 0; i < b.n; i++ {
		src := b.data[i*slab : (i+1)*slab]
		for r = 0; r < draws; r++ {
			copy(d.data[((i*draws)+r)*slab:], src)
		}
	}

	return d, nil
}

// N reports the number of sequences.
func (d *Draws) N() int { return d.n }

// DrawCount reports the number of variants per sequence.
func (d *Draws) DrawCount() int { return d.draws }

// Len reports the number of positions per sequence.
func (d *Draws) Len() int { return d.length }

// Channels reports the alphabet size.
func (d *Draws) Channels() int { return d.alpha.Len() }

// Alphabet returns the shared symbol table.
func (d *Draws) Alphabet() *Alphabet { return d.alpha }

// checkDraw validates a (sequence, draw) pair.
func (d *Draws) checkDraw(i, r int) error {
	if i < 0 || i >= d.n || r < 0 || r >= d.draws {
		return ErrOutOfRange
	}

	return nil
}

// Sequence returns a zero-copy view of draw r of sequence i. Mutations
// through the view write into the container.
func (d *Draws) Sequence(i, r int) (Sequence, error) {
	if d == nil {
		return Sequence{}, ErrNilBatch
	}
	if err := d.checkDraw(i, r); err != nil {
		return Sequence{}, err
	}

	var (
		slab  = d.alpha.Len() * d.length
		start = ((i * d.draws) + r) * slab
	)

	return newView(d.alpha, d.length, d.data[start:start+slab:start+slab]), nil
}

// At returns the activation at (sequence i, draw r, channel ch, position pos).
func (d *Draws) At(i, r, ch, pos int) (float64, error) {
	if d == nil {
		return 0, ErrNilBatch
	}
	if err := d.checkDraw(i, r); err != nil {
		return 0, err
	}
	if ch < 0 || ch >= d.alpha.Len() || pos < 0 || pos >= d.length {
		return 0, ErrOutOfRange
	}

	return d.data[(((i*d.draws)+r)*d.alpha.Len()+ch)*d.length+pos], nil
}

// Symbol decodes the column at (sequence i, draw r, position pos).
func (d *Draws) Symbol(i, r, pos int) (int, error) {
	s, err := d.Sequence(i, r)
	if err != nil {
		return 0, err
	}

	return s.Symbol(pos)
}

// Symbols decodes draw r of sequence i into symbol indices.
func (d *Draws) Symbols(i, r int) ([]int, error) {
	s, err := d.Sequence(i, r)
	if err != nil {
		return nil, err
	}

	return s.Symbols()
}

// SetSymbol overwrites one column with the one-hot encoding of sym.
func (d *Draws) SetSymbol(i, r, pos, sym int) error {
	s, err := d.Sequence(i, r)
	if err != nil {
		return err
	}

	return s.SetSymbol(pos, sym)
}

// Extract copies draw r of every sequence into a standalone batch
// (sequence i of the result = Sequence(i, r)).
func (d *Draws) Extract(r int) (*Batch, error) {
	if d == nil {
		return nil, ErrNilBatch
	}
	if r < 0 || r >= d.draws {
		return nil, ErrOutOfRange
	}

	b, err := NewBatch(d.alpha, d.n, d.length)
	if err != nil {
		return nil, err
	}

	slab := d.alpha.Len() * d.length
	for i := 0; i < d.n; i++ {
		copy(b.data[i*slab:(i+1)*slab], d.data[((i*d.draws)+r)*slab:])
	}

	return b, nil
}

// Clone returns a deep copy sharing only the alphabet.
func (d *Draws) Clone() *Draws {
	if d == nil {
		return nil
	}

	out := &Draws{
		alpha:  d.alpha,
		n:      d.n,
		draws:  d.draws,
		length: d.length,
		data:   make([]float64, len(d.data)),
	}
	copy(out.data, d.data)

	return out
}

// Equal reports exact equality: same shape, same alphabet, identical slab.
func (d *Draws) Equal(o *Draws) bool {
	if d == o {
		return true
	}
	if d == nil || o == nil {
		return false
	}
	if d.n != o.n || d.draws != o.draws || d.length != o.length || !d.alpha.Equal(o.alpha) {
		return false
	}
	for k := range d.data {
		if d.data[k] != o.data[k] {
			return false
		}
	}

	return true
}

// Validate audits the one-hot invariant over every draw. O(N·R·A·L).
func (d *Draws) Validate() error {
	if d == nil {
		return ErrNilBatch
	}

	var (
		s   Sequence
		err error
		i   int
		r   int
		pos int
	)
	for i = 0; i < d.n; i++ {
		for r = 0; r < d.draws; r++ {
			if s, err = d.Sequence(i, r); err != nil {
				return err
			}
			for pos = 0; pos < d.length; pos++ {
				if _, err = s.Symbol(pos); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
