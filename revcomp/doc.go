// Package revcomp computes reverse complements of biological sequences, in
// character space and in one-hot space.
//
// 🚀 What does it do?
//
//	A model scanning double-stranded DNA should respond to a motif on
//	either strand. Reverse-complemented counterfactuals probe exactly
//	that: the sequence is reversed and every symbol replaced by its
//	complement, so the result reads the opposite strand 5'→3'.
//
// ✨ Key behaviors:
//   - String transforms text; OneHot transforms an encoded sequence by
//     reversing column order and permuting channels through the
//     complement table
//   - cell values are copied untouched, so missing (all-zero) columns
//     stay missing at their mirrored position; the missing marker
//     complements to itself on every alphabet
//   - both directions are involutions: applied twice they restore the
//     input bit for bit
//   - alphabets built without a complement table (seq.Protein) are
//     rejected with seq.ErrNoComplement
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hotseq/revcomp"
//
//	rc, err := revcomp.String(seq.DNA(), "ATTGCAT") // "ATGCAAT"
//
//	s, _ := b.Sequence(0)
//	mirror, err := revcomp.OneHot(s)
//
// Unknown characters:
//
//	String fails with seq.ErrUnsupportedSymbol on bytes outside the
//	alphabet; WithAllowN() maps them to the missing marker instead — the
//	usual treatment of soft-masked or ambiguous bases in DNA text.
//
// Performance: O(L) for String, O(A·L) for OneHot; no randomness anywhere.
package revcomp
