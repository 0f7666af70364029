// Package dinuc_test validates the dinucleotide shuffler: exact pair
// preservation, fixed endpoints, uniform path frequencies, draw diversity,
// degeneracy reporting, and the seeding contract.
package dinuc_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hotseq/dinuc"
	"github.com/katalvlaran/hotseq/seq"
)

// Branching-rich fixtures: several distinct successors per symbol, so the
// transition graph admits a huge number of Eulerian paths and repeated
// draws cannot realistically collide.
const (
	richA = "ATGCGATCGTAGCTAGCATGCATGCGTACGATCGATCGTA"
	richB = "GCTAGCATCGGATACGTTAGCCGATAGCTTACGCATGGCA"
)

// enc builds a DNA batch or fails the test.
func enc(t *testing.T, strs ...string) *seq.Batch {
	t.Helper()
	b, err := seq.Encode(seq.DNA(), strs...)
	require.NoError(t, err, "fixture encode must succeed")

	return b
}

// pairCounts tallies adjacent pairs of one region of one extracted draw.
func pairCounts(t *testing.T, d *seq.Draws, i, r int, reg seq.Region) map[[2]int]int {
	t.Helper()
	ext, err := d.Extract(r)
	require.NoError(t, err)
	counts, err := ext.PairCounts(i, reg)
	require.NoError(t, err)

	return counts
}

// TestShuffle_PreservesPairComposition checks the core invariant: the exact
// multiset of adjacent pairs — missing-symbol pairs included — survives
// every draw, and the input batch itself is never touched.
func TestShuffle_PreservesPairComposition(t *testing.T) {
	var (
		b   = enc(t, richA, "ACGTNACGTNACGTNACGTNACGTNACGTNACGTNACGTN")
		reg = seq.FullRegion(40)
		fp  = b.Fingerprint()
	)

	for _, seed := range []int64{1, 2, 3} {
		d, err := dinuc.Shuffle(b, dinuc.WithSeed(seed))
		require.NoError(t, err)
		require.NoError(t, d.Validate(), "output must stay one-hot")
		assert.Equal(t, 2, d.N())
		assert.Equal(t, 1, d.DrawCount())
		assert.Equal(t, 40, d.Len())

		for i := 0; i < b.N(); i++ {
			want, cerr := b.PairCounts(i, reg)
			require.NoError(t, cerr)
			assert.Equal(t, want, pairCounts(t, d, i, 0, reg),
				"pair multiset must be identical, sequence %d seed %d", i, seed)
		}
	}

	assert.Equal(t, fp, b.Fingerprint(), "input batch must survive unchanged")
}

// TestShuffle_MissingIsASymbol shuffles around interior missing columns:
// they travel as a symbol of their own, so pairs into and out of them are
// conserved and no missing column is ever invented or repaired.
func TestShuffle_MissingIsASymbol(t *testing.T) {
	var (
		b   = enc(t, "ACNGANCGNA")
		reg = seq.FullRegion(10)
	)

	d, err := dinuc.Shuffle(b, dinuc.WithSeed(11))
	require.NoError(t, err)

	want, err := b.PairCounts(0, reg)
	require.NoError(t, err)
	got := pairCounts(t, d, 0, 0, reg)
	assert.Equal(t, want, got)
	assert.Equal(t, 1, got[[2]int{1, seq.Missing}], "C->missing pair conserved")
	assert.Equal(t, 1, got[[2]int{seq.Missing, 1}], "missing->C pair conserved")
}

// TestShuffle_FixedEndpoints keeps the region's first and last symbol in
// place across every draw and leaves positions outside the window alone.
func TestShuffle_FixedEndpoints(t *testing.T) {
	var (
		b   = enc(t, richA)
		reg = seq.Region{Start: 2, End: 38}
	)

	d, err := dinuc.Shuffle(b,
		dinuc.WithRegion(reg.Start, reg.End),
		dinuc.WithDraws(4),
		dinuc.WithSeed(9))
	require.NoError(t, err)

	src, err := b.Symbols(0)
	require.NoError(t, err)
	for r := 0; r < d.DrawCount(); r++ {
		got, serr := d.Symbols(0, r)
		require.NoError(t, serr)

		assert.Equal(t, src[reg.Start], got[reg.Start], "draw %d start anchor", r)
		assert.Equal(t, src[reg.End-1], got[reg.End-1], "draw %d end anchor", r)
		for pos := 0; pos < b.Len(); pos++ {
			if reg.Contains(pos) {
				continue
			}
			assert.Equal(t, src[pos], got[pos], "position %d is outside the region", pos)
		}

		want, cerr := b.PairCounts(0, reg)
		require.NoError(t, cerr)
		assert.Equal(t, want, pairCounts(t, d, 0, r, reg), "window pairs preserved, draw %d", r)
	}
}

// TestShuffle_DrawsDiffer confirms that independent draws of a
// branching-rich region land on distinct paths.
func TestShuffle_DrawsDiffer(t *testing.T) {
	b := enc(t, richA)

	d, err := dinuc.Shuffle(b, dinuc.WithDraws(3), dinuc.WithSeed(1))
	require.NoError(t, err)

	var variants [][]int
	for r := 0; r < d.DrawCount(); r++ {
		syms, serr := d.Symbols(0, r)
		require.NoError(t, serr)
		variants = append(variants, syms)
	}
	assert.NotEqual(t, variants[0], variants[1], "draws 0 and 1 must differ")
	assert.NotEqual(t, variants[1], variants[2], "draws 1 and 2 must differ")
	assert.NotEqual(t, variants[0], variants[2], "draws 0 and 2 must differ")
}

// TestShuffle_UniformOverPaths tallies many independent draws on a fixture
// whose rearrangement set is known exactly. AATTAA carries two A->A edges
// plus one each of A->T, T->T and T->A, so the contiguous TT block can sit
// in exactly three slots between the fixed A endpoints: AATTAA, AAATTA and
// ATTAAA. Each string is reached by exactly two of the six edge-labelled
// Eulerian paths (the parallel A->A edges permute), so a uniform path draw
// must land on every variant with frequency 1/3. A sampler that still
// emits valid paths but skews their frequencies fails here.
func TestShuffle_UniformOverPaths(t *testing.T) {
	const draws = 3000

	b := enc(t, "AATTAA")

	d, err := dinuc.Shuffle(b, dinuc.WithDraws(draws), dinuc.WithSeed(21))
	require.NoError(t, err)
	require.NoError(t, d.Validate(), "every draw must stay one-hot")

	tally := make(map[string]int)
	for r := 0; r < draws; r++ {
		v, serr := d.Sequence(0, r)
		require.NoError(t, serr)
		s, derr := v.Decode()
		require.NoError(t, derr)
		tally[s]++
	}

	// Exactly the three legal rearrangements, nothing else.
	require.Len(t, tally, 3, "all three rearrangements must be reached")
	for _, want := range []string{"AATTAA", "AAATTA", "ATTAAA"} {
		freq := float64(tally[want]) / draws
		// 0.04 is ~4.6 sigma for Binomial(3000, 1/3): far looser than a
		// healthy sampler drifts, far tighter than any skewed one lands.
		assert.InDelta(t, 1.0/3, freq, 0.04, "frequency of %s", want)
	}
}

// TestShuffle_Determinism pins the seeding contract: same seed reproduces
// byte-identically, different seeds diverge, and a sequence's draws do not
// depend on its batch neighbors.
func TestShuffle_Determinism(t *testing.T) {
	b := enc(t, richA, richB)

	d1, err := dinuc.Shuffle(b, dinuc.WithDraws(3), dinuc.WithSeed(42))
	require.NoError(t, err)
	d2, err := dinuc.Shuffle(b, dinuc.WithDraws(3), dinuc.WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, d1.Fingerprint(), d2.Fingerprint(), "same seed must reproduce exactly")
	assert.True(t, d1.Equal(d2))

	d3, err := dinuc.Shuffle(b, dinuc.WithDraws(3), dinuc.WithSeed(43))
	require.NoError(t, err)
	assert.NotEqual(t, d1.Fingerprint(), d3.Fingerprint(), "different seeds must diverge")

	solo := enc(t, richA)
	ds, err := dinuc.Shuffle(solo, dinuc.WithDraws(3), dinuc.WithSeed(42))
	require.NoError(t, err)
	for r := 0; r < 3; r++ {
		wantSyms, serr := d1.Symbols(0, r)
		require.NoError(t, serr)
		gotSyms, serr := ds.Symbols(0, r)
		require.NoError(t, serr)
		assert.Equal(t, wantSyms, gotSyms, "draw %d must not depend on batch neighbors", r)
	}
}

// TestShuffle_NoDiversity exercises the degenerate regions whose transition
// graph admits exactly one Eulerian path: with two or more draws they must
// surface ErrNoDiversity, with a single draw they pass silently.
func TestShuffle_NoDiversity(t *testing.T) {
	cases := []struct {
		name string
		s    string
		opts []dinuc.Option
	}{
		{"single symbol", "AAAAAAAA", []dinuc.Option{dinuc.WithDraws(2)}},
		{"width one", richA, []dinuc.Option{dinuc.WithRegion(5, 6), dinuc.WithDraws(3)}},
		{"width two", richA, []dinuc.Option{dinuc.WithRegion(5, 7), dinuc.WithDraws(2)}},
		// Block-sorted symbols force a unique path even over a wide window:
		// once a symbol is left it is never re-entered, so no reordering exists.
		{"forced chain", "AAAACCCCGGGGTTTTNNNN", []dinuc.Option{dinuc.WithDraws(2)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dinuc.Shuffle(enc(t, tc.s), tc.opts...)
			assert.ErrorIs(t, err, dinuc.ErrNoDiversity)
		})
	}

	// A single draw never audits diversity.
	d, err := dinuc.Shuffle(enc(t, "AAAAAAAA"))
	require.NoError(t, err)
	got, err := d.Symbols(0, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 0, 0, 0, 0, 0}, got)
}

// TestShuffle_VerboseWarnings pins the interior-degeneracy diagnostics on a
// region with a pinched graph: ATGTCTA admits exactly two paths (ATGTCTA
// and ATCTGTA), so positions 1, 3 and 5 stay T in every draw while 2 and 4
// swap. Verbose mode must report exactly the three pinched interiors, and
// only when asked.
func TestShuffle_VerboseWarnings(t *testing.T) {
	var (
		b    = enc(t, "ATGTCTA")
		logs []string
		sink = func(format string, args ...any) {
			logs = append(logs, fmt.Sprintf(format, args...))
		}
	)

	_, err := dinuc.Shuffle(b, dinuc.WithDraws(64), dinuc.WithSeed(5), dinuc.WithWarnf(sink))
	require.NoError(t, err)
	assert.Empty(t, logs, "hook must stay silent without verbose mode")

	_, err = dinuc.Shuffle(b,
		dinuc.WithDraws(64),
		dinuc.WithSeed(5),
		dinuc.WithVerbose(),
		dinuc.WithWarnf(sink))
	require.NoError(t, err)
	require.Len(t, logs, 3, "exactly the three pinched interior positions")
	assert.Contains(t, logs[0], "position 1")
	assert.Contains(t, logs[1], "position 3")
	assert.Contains(t, logs[2], "position 5")
	for _, line := range logs {
		assert.Contains(t, line, "sequence 0")
		assert.Contains(t, line, "64 draws")
	}
}

// TestShuffle_Errors walks the option validation sentinels.
func TestShuffle_Errors(t *testing.T) {
	b := enc(t, richA)

	_, err := dinuc.Shuffle(nil)
	assert.ErrorIs(t, err, seq.ErrNilBatch)

	_, err = dinuc.Shuffle(b, dinuc.WithDraws(0))
	assert.ErrorIs(t, err, dinuc.ErrDrawCount)

	_, err = dinuc.Shuffle(b, dinuc.WithRegion(7, 7))
	assert.ErrorIs(t, err, seq.ErrRegion, "empty region")

	_, err = dinuc.Shuffle(b, dinuc.WithRegion(30, 44))
	assert.ErrorIs(t, err, seq.ErrRegion, "region past the end")

	// The input batch survives an error path untouched.
	fp := b.Fingerprint()
	_, _ = dinuc.Shuffle(b, dinuc.WithDraws(-1))
	assert.Equal(t, fp, b.Fingerprint())
}
