// SPDX-License-Identifier: MIT
// Package seq: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the seq
// package (and re-used by the algorithm packages that operate on Batch).
// All operations MUST return these sentinels and tests MUST check them via
// errors.Is. Panics are reserved for programmer errors in private helpers.

package seq

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "seq: ..." so failures can be grepped across
// logs. Do not %w-wrap these sentinels when returning directly; wrap with
// fmt.Errorf("ctx: %w", ErrX) only at outer boundaries — errors.Is still
// matches through the wrap.

var (
	// ErrNilBatch indicates that a nil or zero-value container (receiver or
	// argument) was used: a nil *Batch, a nil *Draws, or a Sequence view that
	// was never initialized.
	ErrNilBatch = errors.New("seq: nil receiver")

	// ErrBadShape is returned when a requested shape is invalid
	// (n <= 0, length <= 0, or an alphabet with no symbols).
	ErrBadShape = errors.New("seq: invalid shape")

	// ErrDataSize indicates that a raw data buffer does not match the
	// n × channels × length shape it was declared with.
	ErrDataSize = errors.New("seq: data buffer does not match shape")

	// ErrOutOfRange indicates that an index (sequence, draw, channel or
	// position) is outside valid bounds. Public indexers return this, never panic.
	ErrOutOfRange = errors.New("seq: index out of range")

	// ErrRegion is returned for an empty, inverted, or out-of-bounds
	// half-open interval [start, end).
	ErrRegion = errors.New("seq: region out of bounds or empty")

	// ErrNotOneHot signals a position column whose activations are not a
	// valid one-hot encoding: a value outside {0, 1}, or more than one 1.
	ErrNotOneHot = errors.New("seq: column is not one-hot")

	// ErrUnsupportedSymbol is returned when a character or symbol index does
	// not belong to the alphabet (and is not its missing marker).
	ErrUnsupportedSymbol = errors.New("seq: symbol outside the alphabet")

	// ErrAlphabetSymbols rejects alphabet construction with zero symbols or
	// duplicate characters.
	ErrAlphabetSymbols = errors.New("seq: alphabet symbols must be unique and non-empty")

	// ErrAlphabetMissing rejects a missing-symbol marker that collides with
	// one of the alphabet symbols.
	ErrAlphabetMissing = errors.New("seq: missing marker collides with a symbol")

	// ErrComplement rejects a complement table that is not an involutive
	// permutation of the alphabet (comp(comp(x)) must equal x).
	ErrComplement = errors.New("seq: complement is not an involution over the alphabet")

	// ErrNoComplement signals that a complement-aware operation was invoked
	// on an alphabet constructed without a complement table.
	ErrNoComplement = errors.New("seq: alphabet has no complement table")

	// ErrAlphabetMismatch indicates that two containers that must share an
	// alphabet (e.g. a batch and a motif) were built over different ones.
	ErrAlphabetMismatch = errors.New("seq: alphabets differ")

	// ErrLengthMismatch is returned by Encode when input strings do not all
	// share one length, and by SetSymbols on a wrong-size symbol slice.
	ErrLengthMismatch = errors.New("seq: lengths differ")

	// ErrEmptyInput is returned by Encode when no sequences are given.
	ErrEmptyInput = errors.New("seq: at least one sequence required")
)
