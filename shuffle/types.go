package shuffle

import (
	"errors"

	"github.com/katalvlaran/hotseq/seq"
)

// ErrDrawCount is returned when WithDraws requests fewer than one variant.
var ErrDrawCount = errors.New("shuffle: draw count must be >= 1")

// ErrBackground rejects a background distribution whose length differs from
// the alphabet size or whose weights are not finite, non-negative, with a
// positive sum.
var ErrBackground = errors.New("shuffle: invalid background distribution")

// Options configures the randomized operations. The zero value of each knob
// selects the documented default; construct via the With* options.
type Options struct {
	region    seq.Region
	hasRegion bool
	draws     int
	seed      int64
	weights   []float64
}

// Option mutates Options; pass any number to Shuffle or Randomize.
type Option func(*Options)

// WithRegion restricts the operation to the half-open window [start, end).
// Default: the whole sequence.
func WithRegion(start, end int) Option {
	return func(o *Options) {
		o.region = seq.Region{Start: start, End: end}
		o.hasRegion = true
	}
}

// WithDraws requests n independent variants per sequence. Default: 1.
func WithDraws(n int) Option {
	return func(o *Options) { o.draws = n }
}

// WithSeed fixes the random stream. Seed 0 (the default) selects a fixed
// default stream, never the wall clock.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithBackground supplies per-symbol weights (length = alphabet size) for
// Randomize; proportions matter, normalization does not. Shuffle does not
// consult the background. Default: uniform over the alphabet.
func WithBackground(weights []float64) Option {
	return func(o *Options) { o.weights = weights }
}

// DefaultOptions returns the defaults: whole sequence, one draw, seed 0,
// uniform background.
func DefaultOptions() Options { return Options{draws: 1} }

// build folds opts over the defaults and validates the draw count and the
// region against the batch. Shared by both entry points.
func build(b *seq.Batch, opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	if b == nil {
		return o, seq.ErrNilBatch
	}
	if o.draws < 1 {
		return o, ErrDrawCount
	}
	if !o.hasRegion {
		o.region = seq.FullRegion(b.Len())
	}
	if err := o.region.Validate(b.Len()); err != nil {
		return o, err
	}

	return o, nil
}
