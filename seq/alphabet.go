// SPDX-License-Identifier: MIT
// Package seq: Alphabet — the symbol table every container is built over.
// An Alphabet fixes the channel order of the one-hot axis, the marker
// character printed for all-zero columns, and (optionally) an involutive
// complement table used by reverse-complement operations.

package seq

// Alphabet maps characters to one-hot channels and back.
//
// Construction validates the table once; afterwards an Alphabet is immutable
// and safe to share across goroutines and containers. Lookup is O(1) via a
// 256-entry byte index.
type Alphabet struct {
	symbols []byte     // channel -> character, channel order defines the one-hot rows
	missing byte       // character printed/accepted for all-zero columns
	comp    []int      // channel -> complement channel; nil when not complementable
	index   [256]int16 // character -> channel, or -1 when absent
}

// Missing is the symbol index reported for an all-zero position column.
// It is never a valid channel.
const Missing = -1

// NewAlphabet builds an Alphabet from its symbol characters, an optional
// complement string, and the missing-symbol marker.
//
// symbols fixes the channel order: channel i encodes symbols[i]. complement,
// when non-empty, must have the same length and list the complement character
// of each symbol in the same order; the induced mapping must be an involution
// (complement of complement returns the original symbol). Pass "" for
// alphabets without a meaningful complement. missing must not collide with
// any symbol.
//
// Returns ErrAlphabetSymbols, ErrAlphabetMissing or ErrComplement on invalid
// tables.
func NewAlphabet(symbols, complement string, missing byte) (*Alphabet, error) {
	if len(symbols) == 0 {
		return nil, ErrAlphabetSymbols
	}

	a := &Alphabet{
		symbols: []byte(symbols),
		missing: missing,
	}
	for i := range a.index {
		a.index[i] = -1
	}

	// Stage 1: symbols must be pairwise distinct.
	var i int
	for i = 0; i < len(a.symbols); i++ {
		if a.index[a.symbols[i]] >= 0 {
			return nil, ErrAlphabetSymbols
		}
		a.index[a.symbols[i]] = int16(i)
	}

	// Stage 2: the missing marker lives outside the symbol set.
	if a.index[missing] >= 0 {
		return nil, ErrAlphabetMissing
	}

	// Stage 3: optional complement table, checked for involution.
	if complement != "" {
		if len(complement) != len(symbols) {
			return nil, ErrComplement
		}
		a.comp = make([]int, len(symbols))
		for i = 0; i < len(complement); i++ {
			ch := a.index[complement[i]]
			if ch < 0 {
				return nil, ErrComplement
			}
			a.comp[i] = int(ch)
		}
		for i = 0; i < len(a.comp); i++ {
			if a.comp[a.comp[i]] != i {
				return nil, ErrComplement
			}
		}
	}

	return a, nil
}

// mustAlphabet unwraps constructor results for the built-in tables below.
// Those literals are fixed at compile time, so failure is a programmer error.
func mustAlphabet(a *Alphabet, err error) *Alphabet {
	if err != nil {
		panic(err)
	}

	return a
}

// DNA returns the four-letter nucleotide alphabet ACGT with Watson-Crick
// complements and 'N' as the missing marker.
func DNA() *Alphabet { return mustAlphabet(NewAlphabet("ACGT", "TGCA", 'N')) }

// RNA returns the alphabet ACGU with A↔U, C↔G complements and 'N' as the
// missing marker.
func RNA() *Alphabet { return mustAlphabet(NewAlphabet("ACGU", "UGCA", 'N')) }

// Protein returns the twenty-letter amino-acid alphabet with 'X' as the
// missing marker and no complement table.
func Protein() *Alphabet { return mustAlphabet(NewAlphabet("ACDEFGHIKLMNPQRSTVWY", "", 'X')) }

// Len reports the number of symbols (one-hot channels).
func (a *Alphabet) Len() int { return len(a.symbols) }

// Missing reports the marker character used for all-zero columns.
func (a *Alphabet) Missing() byte { return a.missing }

// Symbols returns the channel characters in channel order.
func (a *Alphabet) Symbols() string { return string(a.symbols) }

// Complementable reports whether the alphabet carries a complement table.
func (a *Alphabet) Complementable() bool { return a.comp != nil }

// Char returns the character encoded by channel ch.
// ch == Missing yields the missing marker. Returns ErrOutOfRange otherwise
// when ch is not a valid channel.
func (a *Alphabet) Char(ch int) (byte, error) {
	if ch == Missing {
		return a.missing, nil
	}
	if ch < 0 || ch >= len(a.symbols) {
		return 0, ErrOutOfRange
	}

	return a.symbols[ch], nil
}

// Index returns the channel of character c, or Missing for the missing
// marker. Characters outside the table yield ErrUnsupportedSymbol.
func (a *Alphabet) Index(c byte) (int, error) {
	if ch := a.index[c]; ch >= 0 {
		return int(ch), nil
	}
	if c == a.missing {
		return Missing, nil
	}

	return 0, ErrUnsupportedSymbol
}

// Complement maps channel ch to its complement channel. The missing symbol
// complements to itself on every alphabet. Returns ErrNoComplement when the
// alphabet has no table and ErrOutOfRange for an invalid channel.
func (a *Alphabet) Complement(ch int) (int, error) {
	if ch == Missing {
		return Missing, nil
	}
	if a.comp == nil {
		return 0, ErrNoComplement
	}
	if ch < 0 || ch >= len(a.comp) {
		return 0, ErrOutOfRange
	}

	return a.comp[ch], nil
}

// Equal reports whether two alphabets define the same symbols, the same
// missing marker, and the same (possibly absent) complement table.
func (a *Alphabet) Equal(o *Alphabet) bool {
	if a == o {
		return true
	}
	if a == nil || o == nil {
		return false
	}
	if string(a.symbols) != string(o.symbols) || a.missing != o.missing {
		return false
	}
	if (a.comp == nil) != (o.comp == nil) {
		return false
	}
	for i := range a.comp {
		if a.comp[i] != o.comp[i] {
			return false
		}
	}

	return true
}
