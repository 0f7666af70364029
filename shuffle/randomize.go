package shuffle

import (
	"github.com/katalvlaran/hotseq/rng"
	"github.com/katalvlaran/hotseq/seq"
)

// Randomize redraws every region position of every sequence i.i.d. from the
// alphabet — uniformly by default, or proportionally to WithBackground
// weights. Missing columns inside the region are overwritten like any other
// (this is the background-generation primitive); positions outside are
// copied unchanged.
//
// Zero-weight symbols never appear in the output. Streams are derived per
// sequence and per draw exactly as in Shuffle.
//
// Complexity: O(N·R·(A·L + K·log A)) for region width K.
func Randomize(b *seq.Batch, opts ...Option) (*seq.Draws, error) {
	o, err := build(b, opts)
	if err != nil {
		return nil, err
	}

	// Resolve the background: uniform unless weights were supplied.
	weights := o.weights
	if weights == nil {
		weights = make([]float64, b.Channels())
		for ch := range weights {
			weights[ch] = 1
		}
	} else if len(weights) != b.Channels() {
		return nil, ErrBackground
	}
	cum, err := rng.Cumulative(weights)
	if err != nil {
		return nil, ErrBackground
	}

	out, err := b.Repeat(o.draws)
	if err != nil {
		return nil, err
	}

	for i := 0; i < b.N(); i++ {
		stream := rng.Derive(o.seed, uint64(i))
		for r := 0; r < o.draws; r++ {
			gen := rng.Sub(stream, uint64(r))
			for pos := o.region.Start; pos < o.region.End; pos++ {
				if err = out.SetSymbol(i, r, pos, rng.Categorical(cum, gen)); err != nil {
					return nil, err
				}
			}
		}
	}

	return out, nil
}
