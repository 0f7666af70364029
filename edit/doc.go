// Package edit places motifs into, and removes spans from, one-hot sequence
// batches: the positional editing half of hotseq.
//
// 🚀 What does it do?
//
//	Counterfactual inputs for interpretability analyses are built by
//	overwriting, inserting, or deleting stretches of an observed sequence:
//	  • Substitute — overwrite a window with a motif, length preserved
//	  • Multisubstitute — several motifs at controlled gaps, left to right
//	  • Insert — splice a motif in, downstream content shifts right
//	  • Delete — remove a span, downstream content shifts left
//
// ✨ Key behaviors:
//   - every operation returns a new batch; inputs are never mutated
//   - motifs are one-hot batches: a 1-sequence motif broadcasts across the
//     batch, an N-sequence motif supplies one motif per sequence
//   - Substitute centers the motif by default; Insert splices at the middle;
//     WithStart positions explicitly
//   - missing (all-zero) motif columns are placed verbatim, so masked
//     windows can be written just like concrete ones
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hotseq/edit"
//
//	b, _ := seq.Encode(seq.DNA(), "ATCATTTTCTCGATGAAAGC")
//	m, _ := seq.Encode(seq.DNA(), "TGACTCA")
//	out, err := edit.Substitute(b, m, edit.WithStart(2))
//	// out: "ATTGACTCATCGATGAAAGC"
//
// Errors:
//
//	Placement problems surface as seq.ErrRegion; motif/batch disagreements
//	as seq.ErrAlphabetMismatch, ErrMotifCount, ErrSpacingArity or
//	ErrSpacing. All checks run before any column is written.
//
// Performance: every operation is a single pass, O(N·A·L) for batch
// dimensions N×A×L (plus motif width); no randomness anywhere.
package edit
