package edit

import "errors"

// ErrMotifCount is returned when a motif batch holds neither exactly one
// sequence nor one sequence per target sequence, and by Multisubstitute for
// an empty motif list.
var ErrMotifCount = errors.New("edit: motif count must be 1 or match the batch")

// ErrSpacingArity is returned by Multisubstitute when the spacing vector has
// neither length 1 (broadcast) nor length len(motifs)-1.
var ErrSpacingArity = errors.New("edit: spacing length must be 1 or len(motifs)-1")

// ErrSpacing rejects negative gaps between consecutive motifs.
var ErrSpacing = errors.New("edit: spacing must be non-negative")

// Options configures the placement of Substitute and Insert.
// The zero value selects the default (centered) placement.
type Options struct {
	start    int
	hasStart bool
}

// Option mutates Options; pass any number to Substitute or Insert.
type Option func(*Options)

// WithStart places the motif at an explicit position instead of the default
// centering. For Substitute the motif occupies [pos, pos+W); for Insert the
// splice point is pos (pos == length appends).
func WithStart(pos int) Option {
	return func(o *Options) {
		o.start = pos
		o.hasStart = true
	}
}

// DefaultOptions returns the default configuration: centered placement.
func DefaultOptions() Options { return Options{} }

// apply folds a list of Option funcs over the defaults.
func apply(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
