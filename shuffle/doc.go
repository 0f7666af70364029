// Package shuffle generates randomized variants of one-hot sequence batches:
// composition-preserving permutations and background resampling.
//
// 🚀 What does it do?
//
//	Interpretability pipelines compare a model's response on observed
//	sequences against matched controls. Two classic controls live here:
//	  • Shuffle — permute the columns of a region uniformly at random;
//	    per-symbol composition is exactly preserved (missing columns
//	    travel with the permutation)
//	  • Randomize — redraw every region position i.i.d. from the alphabet,
//	    uniformly or from a supplied background distribution
//
// ✨ Key behaviors:
//   - results always carry a draw axis (seq.Draws), one variant by default,
//     n independent variants via WithDraws(n)
//   - positions outside the region are copied unchanged
//   - explicit seeding, never the wall clock: WithSeed(s); per-sequence and
//     per-draw substreams make results independent of processing order
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hotseq/shuffle"
//
//	d, err := shuffle.Shuffle(b,
//	    shuffle.WithRegion(10, 90),
//	    shuffle.WithDraws(16),
//	    shuffle.WithSeed(42))
//
// Errors:
//
//	seq.ErrRegion for bad windows, ErrDrawCount for n < 1, ErrBackground
//	for malformed background weights; all raised before any draw is made.
//
// Performance: O(N·R·(A·L + K)) for region width K — one decode per
// sequence, one permutation or K categorical draws per variant.
package shuffle
