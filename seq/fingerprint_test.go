// Package seq_test validates the CRC-64 content fingerprints backing the
// determinism assertions elsewhere in the module.
package seq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hotseq/seq"
)

// TestFingerprint_StableAndSensitive checks that equal content digests
// equal, and that any single-column change moves the digest.
func TestFingerprint_StableAndSensitive(t *testing.T) {
	b := mustEncode(t, seq.DNA(), "ACGTACGT", "NNGGCCAA")

	fp := b.Fingerprint()
	assert.Equal(t, fp, b.Fingerprint(), "repeated digests agree")
	assert.Equal(t, fp, b.Clone().Fingerprint(), "clones digest identically")

	mut := b.Clone()
	require.NoError(t, mut.SetSymbol(1, 0, 2))
	assert.NotEqual(t, fp, mut.Fingerprint(), "one flipped column must move the digest")

	cleared := b.Clone()
	require.NoError(t, cleared.SetSymbol(0, 7, seq.Missing))
	assert.NotEqual(t, fp, cleared.Fingerprint(), "clearing a column must move the digest")
}

// TestFingerprint_ShapeAndRank separates digests of same-slab content under
// different shapes and container ranks.
func TestFingerprint_ShapeAndRank(t *testing.T) {
	one := mustEncode(t, seq.DNA(), "ACGTACGT")
	two := mustEncode(t, seq.DNA(), "ACGT", "ACGT")
	assert.NotEqual(t, one.Fingerprint(), two.Fingerprint(), "shape is part of the digest")

	d, err := one.Repeat(1)
	require.NoError(t, err)
	assert.NotEqual(t, one.Fingerprint(), d.Fingerprint(), "rank-3 and rank-4 digests must differ")
	assert.Equal(t, d.Fingerprint(), d.Clone().Fingerprint(), "draws digest deterministically")
}
