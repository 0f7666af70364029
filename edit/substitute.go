package edit

import "github.com/katalvlaran/hotseq/seq"

// checkMotif validates the shared motif contract: non-nil operands, one
// alphabet, and a motif count of 1 (broadcast) or b.N (per sequence).
func checkMotif(b, motif *seq.Batch) error {
	if b == nil || motif == nil {
		return seq.ErrNilBatch
	}
	if !b.Alphabet().Equal(motif.Alphabet()) {
		return seq.ErrAlphabetMismatch
	}
	if motif.N() != 1 && motif.N() != b.N() {
		return ErrMotifCount
	}

	return nil
}

// motifRows decodes every motif sequence to symbol indices once, so the
// write loops below never re-decode per target sequence.
func motifRows(motif *seq.Batch) ([][]int, error) {
	var (
		rows = make([][]int, motif.N())
		err  error
	)
	for i := range rows {
		if rows[i], err = motif.Symbols(i); err != nil {
			return nil, err
		}
	}

	return rows, nil
}

// rowFor picks the motif row serving target sequence i under broadcast.
func rowFor(rows [][]int, i int) []int {
	if len(rows) == 1 {
		return rows[0]
	}

	return rows[i]
}

// paste overwrites out[start : start+len(row)) of every sequence with its
// motif row. Bounds were validated by the caller.
func paste(out *seq.Batch, rows [][]int, start int) error {
	for i := 0; i < out.N(); i++ {
		for k, sym := range rowFor(rows, i) {
			if err := out.SetSymbol(i, start+k, sym); err != nil {
				return err
			}
		}
	}

	return nil
}

// Substitute returns a copy of b with the window [start, start+W) of every
// sequence overwritten by the motif (W = motif length; length preserved).
// Without WithStart the motif is centered at (L-W)/2.
//
// Contracts:
//   - motif broadcasts (N==1) or supplies one row per sequence (N==b.N),
//     anything else is ErrMotifCount; alphabets must match.
//   - the window must fit entirely inside the sequence: seq.ErrRegion when
//     the motif overhangs either end (including W > L).
//
// Complexity: O(N·A·L).
func Substitute(b, motif *seq.Batch, opts ...Option) (*seq.Batch, error) {
	o := apply(opts)
	if err := checkMotif(b, motif); err != nil {
		return nil, err
	}

	var (
		w     = motif.Len()
		start = o.start
	)
	if !o.hasStart {
		start = (b.Len() - w) / 2
	}
	if err := (seq.Region{Start: start, End: start + w}).Validate(b.Len()); err != nil {
		return nil, err
	}

	rows, err := motifRows(motif)
	if err != nil {
		return nil, err
	}

	out := b.Clone()
	if err = paste(out, rows, start); err != nil {
		return nil, err
	}

	return out, nil
}

// Multisubstitute places several motifs left to right starting at start:
// each subsequent motif begins where the previous one ended plus the
// corresponding gap. A single-element spacing vector broadcasts its gap to
// every boundary; otherwise len(spacing) must be len(motifs)-1.
//
// All placements are validated before the first write, so a failing call
// never returns a half-edited batch. Gaps must be non-negative (ErrSpacing);
// placements never overlap as a consequence.
//
// Complexity: O(N·A·L) plus the total motif width.
func Multisubstitute(b *seq.Batch, motifs []*seq.Batch, spacing []int, start int) (*seq.Batch, error) {
	if b == nil {
		return nil, seq.ErrNilBatch
	}
	if len(motifs) == 0 {
		return nil, ErrMotifCount
	}
	for _, m := range motifs {
		if err := checkMotif(b, m); err != nil {
			return nil, err
		}
	}

	// Stage 1: spacing arity, then sign.
	gaps := len(motifs) - 1
	if len(spacing) != gaps && len(spacing) != 1 {
		return nil, ErrSpacingArity
	}
	for _, g := range spacing {
		if g < 0 {
			return nil, ErrSpacing
		}
	}

	// Stage 2: resolve placements and validate every window up front.
	var (
		starts = make([]int, len(motifs))
		pos    = start
	)
	for k, m := range motifs {
		starts[k] = pos
		if err := (seq.Region{Start: pos, End: pos + m.Len()}).Validate(b.Len()); err != nil {
			return nil, err
		}
		pos += m.Len()
		if k < gaps {
			if len(spacing) == gaps {
				pos += spacing[k]
			} else {
				pos += spacing[0]
			}
		}
	}

	// Stage 3: single clone, then paste each motif.
	out := b.Clone()
	for k, m := range motifs {
		rows, err := motifRows(m)
		if err != nil {
			return nil, err
		}
		if err = paste(out, rows, starts[k]); err != nil {
			return nil, err
		}
	}

	return out, nil
}
