// Package seq provides the one-hot sequence containers shared by every
// editing and shuffling algorithm in hotseq.
//
// 🚀 What is a one-hot batch?
//
//	A Batch stores N equal-length sequences over a fixed Alphabet as a dense
//	rank-3 tensor (sequence × channel × position). Each position column holds
//	at most a single 1.0: the row of the 1 names the symbol, and an all-zero
//	column encodes a missing observation (soft-masked or unknown input).
//	Draws is the rank-4 sibling (sequence × draw × channel × position) used
//	by randomized operations that emit several variants per input.
//
// ✨ Key features:
//   - dense row-major float64 storage, friendly to model pipelines
//   - Alphabet with optional complement table and a missing-symbol marker
//   - Encode/Strings round-trip between Go strings and one-hot tensors
//   - Sequence: a zero-copy single-sequence view for slicing-free access
//   - composition helpers (symbol counts, adjacent-pair counts, GC content)
//   - CRC-64/ECMA fingerprints for cheap content comparison in tests
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hotseq/seq"
//
//	b, err := seq.Encode(seq.DNA(), "ACGTACGT", "TTTTACGT")
//	if err != nil { ... }
//	syms, _ := b.Symbols(0)      // [0 1 2 3 0 1 2 3]
//	out, _ := b.Strings()        // ["ACGTACGT", "TTTTACGT"]
//
// Errors:
//
//	All public entry points validate their inputs and return the package
//	sentinels from errors.go (ErrRegion, ErrUnsupportedSymbol, ...). Match
//	them with errors.Is; no function in this package panics on user input.
//
// Performance:
//
//   - At/Set/Symbol: O(1) and O(A) respectively, A = alphabet size
//   - Encode/Strings/Validate: O(N·A·L)
//   - Clone/Repeat: one allocation plus a flat copy
package seq
