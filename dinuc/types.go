package dinuc

import (
	"errors"
	"log"

	"github.com/katalvlaran/hotseq/seq"
)

// ErrDrawCount is returned when WithDraws requests fewer than one variant.
var ErrDrawCount = errors.New("dinuc: draw count must be >= 1")

// ErrNoDiversity signals that every draw of some sequence came out
// identical: the region admits (effectively) a single Eulerian path, so no
// dinucleotide-preserving variation exists. Raised only for two or more
// draws.
var ErrNoDiversity = errors.New("dinuc: all draws identical, region cannot diversify")

// WarnFunc receives printf-style degeneracy diagnostics when verbose mode
// is on. Implementations must be safe for the caller's goroutine only.
type WarnFunc func(format string, args ...any)

// Options configures Shuffle. Construct via the With* options; the zero
// draw count and seed select the documented defaults.
type Options struct {
	region    seq.Region
	hasRegion bool
	draws     int
	seed      int64
	verbose   bool
	warnf     WarnFunc
}

// Option mutates Options.
type Option func(*Options)

// WithRegion restricts shuffling to the half-open window [start, end).
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

// WithVerbose enables interior-degeneracy diagnostics through the warn
// hook. Off by default.
func WithVerbose() Option {
	return func(o *Options) { o.verbose = true }
}

// WithWarnf replaces the diagnostic sink. Default: log.Printf.
func WithWarnf(fn WarnFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.warnf = fn
		}
	}
}

// DefaultOptions returns the defaults: whole sequence, one draw, seed 0,
// quiet, log.Printf sink.
func DefaultOptions() Options {
	return Options{draws: 1, warnf: log.Printf}
}

// build folds opts over the defaults and validates the draw count and the
// region against the batch.
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
