package shuffle

import (
	"github.com/katalvlaran/hotseq/rng"
	"github.com/katalvlaran/hotseq/seq"
)

// Shuffle permutes the region's columns of every sequence uniformly at
// random, independently per sequence and per draw. Missing (all-zero)
// columns are permuted like any other, so the per-symbol composition of the
// region — missing included — is exactly preserved in every variant.
// Positions outside the region are copied unchanged.
//
// Each (sequence i, draw r) pair consumes its own derived stream,
// Derive(Derive(seed, i), r): results do not depend on traversal order, and
// identical inputs plus seed reproduce byte-identical output.
//
// Complexity: O(N·R·(A·L + K)) for region width K.
func Shuffle(b *seq.Batch, opts ...Option) (*seq.Draws, error) {
	o, err := build(b, opts)
	if err != nil {
		return nil, err
	}

	out, err := b.Repeat(o.draws)
	if err != nil {
		return nil, err
	}

	var (
		start = o.region.Start
		width = o.region.Len()
		syms  []int
		perm  []int
	)
	for i := 0; i < b.N(); i++ {
		if syms, err = b.Symbols(i); err != nil {
			return nil, err
		}

		stream := rng.Derive(o.seed, uint64(i))
		for r := 0; r < o.draws; r++ {
			if perm, err = rng.Perm(width, rng.Sub(stream, uint64(r))); err != nil {
				return nil, err
			}
			for j := 0; j < width; j++ {
				if err = out.SetSymbol(i, r, start+j, syms[start+perm[j]]); err != nil {
					return nil, err
				}
			}
		}
	}

	return out, nil
}
