package edit

import "github.com/katalvlaran/hotseq/seq"

// Insert returns a new batch of length L+W where the motif is spliced into
// every sequence at the insertion point: content at and after the point
// shifts right. Without WithStart the point is L/2, which centers the motif
// in the widened output. The point may be 0 (prepend) through L (append);
// anything else is seq.ErrRegion.
//
// Motif broadcast and alphabet rules match Substitute.
//
// Complexity: O(N·A·(L+W)).
func Insert(b, motif *seq.Batch, opts ...Option) (*seq.Batch, error) {
	o := apply(opts)
	if err := checkMotif(b, motif); err != nil {
		return nil, err
	}

	var (
		length = b.Len()
		w      = motif.Len()
		point  = o.start
	)
	if !o.hasStart {
		point = length / 2
	}
	if point < 0 || point > length {
		return nil, seq.ErrRegion
	}

	rows, err := motifRows(motif)
	if err != nil {
		return nil, err
	}

	out, err := seq.NewBatch(b.Alphabet(), b.N(), length+w)
	if err != nil {
		return nil, err
	}

	var (
		syms   []int
		merged = make([]int, length+w)
	)
	for i := 0; i < b.N(); i++ {
		if syms, err = b.Symbols(i); err != nil {
			return nil, err
		}
		copy(merged, syms[:point])
		copy(merged[point:], rowFor(rows, i))
		copy(merged[point+w:], syms[point:])
		if err = out.SetSymbols(i, merged); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Delete returns a new batch with the region [start, end) removed from
// every sequence: downstream content shifts left, output length L-(end-start).
//
// Empty, inverted, or out-of-bounds regions are seq.ErrRegion. Removing the
// whole sequence is rejected with seq.ErrBadShape, since containers cannot
// be empty.
//
// Complexity: O(N·A·L).
func Delete(b *seq.Batch, start, end int) (*seq.Batch, error) {
	if b == nil {
		return nil, seq.ErrNilBatch
	}

	reg := seq.Region{Start: start, End: end}
	if err := reg.Validate(b.Len()); err != nil {
		return nil, err
	}
	if reg.Len() == b.Len() {
		return nil, seq.ErrBadShape
	}

	out, err := seq.NewBatch(b.Alphabet(), b.N(), b.Len()-reg.Len())
	if err != nil {
		return nil, err
	}

	var (
		syms   []int
		merged = make([]int, b.Len()-reg.Len())
	)
	for i := 0; i < b.N(); i++ {
		if syms, err = b.Symbols(i); err != nil {
			return nil, err
		}
		copy(merged, syms[:start])
		copy(merged[start:], syms[end:])
		if err = out.SetSymbols(i, merged); err != nil {
			return nil, err
		}
	}

	return out, nil
}
