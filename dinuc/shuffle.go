package dinuc

import (
	"github.com/katalvlaran/hotseq/rng"
	"github.com/katalvlaran/hotseq/seq"
)

// Shuffle returns, for every sequence, n independently drawn region
// permutations that preserve the exact adjacent-pair composition — missing
// columns included, as a symbol of their own — and keep the first and last
// region symbols fixed. Positions outside the region are copied unchanged.
//
// Each draw is uniform over the Eulerian paths of the region's transition
// multigraph (see the package documentation for the construction). Streams
// derive per sequence and per draw from the seed, so results are
// independent of processing order and byte-reproducible.
//
// With two or more draws, a sequence whose draws all come out identical
// raises ErrNoDiversity; single-position, two-position, and single-symbol
// regions always collapse this way. Interior positions that never vary are
// reported through the warn hook when WithVerbose is set.
//
// Complexity: O(N·(A·L + R·K)) for region width K and R draws.
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
		syms  []int
	)
	for i := 0; i < b.N(); i++ {
		if syms, err = b.Symbols(i); err != nil {
			return nil, err
		}

		var (
			g      = buildGraph(syms, b.Channels(), o.region)
			stream = rng.Derive(o.seed, uint64(i))
		)
		for r := 0; r < o.draws; r++ {
			path := g.eulerianPath(rng.Sub(stream, uint64(r)))
			for j, node := range path {
				if err = out.SetSymbol(i, r, start+j, symOf(node, b.Channels())); err != nil {
					return nil, err
				}
			}
		}

		if err = checkDiversity(out, i, o); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// checkDiversity audits sequence i after its draws are written: identical
// draws are an error, constant interior positions a verbose diagnostic.
// Vacuous for a single draw.
func checkDiversity(out *seq.Draws, i int, o Options) error {
	if o.draws < 2 {
		return nil
	}

	base, err := out.Symbols(i, 0)
	if err != nil {
		return err
	}

	var (
		// constant[j] tracks whether region offset j matched draw 0 so far.
		constant = make([]bool, o.region.Len())
		varied   bool
		cur      []int
	)
	for j := range constant {
		constant[j] = true
	}
	for r := 1; r < o.draws; r++ {
		if cur, err = out.Symbols(i, r); err != nil {
			return err
		}
		for j := range constant {
			if cur[o.region.Start+j] != base[o.region.Start+j] {
				constant[j] = false
				varied = true
			}
		}
	}

	if !varied {
		return ErrNoDiversity
	}

	if o.verbose {
		// Endpoints are fixed by construction; only interior constancy is
		// worth reporting.
		for j := 1; j < o.region.Len()-1; j++ {
			if constant[j] {
				o.warnf("dinuc: sequence %d position %d constant across %d draws",
					i, o.region.Start+j, o.draws)
			}
		}
	}

	return nil
}
