package revcomp

import "github.com/katalvlaran/hotseq/seq"

// Options configures String.
type Options struct {
	allowUnknown bool
}

// Option mutates Options.
type Option func(*Options)

// WithAllowN maps characters outside the alphabet to the missing marker
// instead of failing.
func WithAllowN() Option {
	return func(o *Options) { o.allowUnknown = true }
}

// DefaultOptions returns the defaults: unknown characters are errors.
func DefaultOptions() Options { return Options{} }

// String returns the reverse complement of s under alpha: the text
// reversed, every character replaced by its complement, the missing marker
// by itself. Characters outside the alphabet yield
// seq.ErrUnsupportedSymbol unless WithAllowN is given.
//
// Applying String twice restores the input, up to characters WithAllowN
// collapsed into the missing marker.
func String(alpha *seq.Alphabet, s string, opts ...Option) (string, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	if alpha == nil {
		return "", seq.ErrBadShape
	}
	if !alpha.Complementable() {
		return "", seq.ErrNoComplement
	}

	var (
		out = make([]byte, len(s))
		ch  int
		c   byte
		err error
	)
	for i := 0; i < len(s); i++ {
		if ch, err = alpha.Index(s[i]); err != nil {
			if !o.allowUnknown {
				return "", err
			}
			ch = seq.Missing
		}
		if ch, err = alpha.Complement(ch); err != nil {
			return "", err
		}
		if c, err = alpha.Char(ch); err != nil {
			return "", err
		}
		out[len(s)-1-i] = c
	}

	return string(out), nil
}

// OneHot returns a new sequence with column order reversed and channels
// permuted through the complement table. The input view is never written.
//
// OneHot∘OneHot is the identity: complement tables are involutive by
// construction.
func OneHot(s seq.Sequence) (seq.Sequence, error) {
	alpha := s.Alphabet()
	if alpha == nil {
		return seq.Sequence{}, seq.ErrNilBatch
	}
	if !alpha.Complementable() {
		return seq.Sequence{}, seq.ErrNoComplement
	}

	out, err := seq.NewSequence(alpha, s.Len())
	if err != nil {
		return seq.Sequence{}, err
	}

	var (
		length = s.Len()
		comp   int
		v      float64
	)
	for ch := 0; ch < alpha.Len(); ch++ {
		if comp, err = alpha.Complement(ch); err != nil {
			return seq.Sequence{}, err
		}
		for pos := 0; pos < length; pos++ {
			if v, err = s.At(ch, pos); err != nil {
				return seq.Sequence{}, err
			}
			if v == 0 {
				continue // fresh slab is already zero
			}
			if err = out.Set(comp, length-1-pos, v); err != nil {
				return seq.Sequence{}, err
			}
		}
	}

	return out, nil
}
