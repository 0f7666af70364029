// Package rng - categorical draws over a cumulative weight vector.
// Weights are validated once by Cumulative; Categorical then samples in
// O(log A) per draw, which keeps per-position generation cheap.

package rng

import (
	"errors"
	"math"
	"math/rand"
	"sort"
)

// ErrWeights rejects weight vectors that are empty, carry a negative or
// non-finite entry, or sum to zero.
var ErrWeights = errors.New("rng: weights must be finite, non-negative, with positive sum")

// Cumulative turns a weight vector into its running sum for Categorical.
// Weights need not be normalized; only the proportions matter.
func Cumulative(weights []float64) ([]float64, error) {
	if len(weights) == 0 {
		return nil, ErrWeights
	}

	var (
		cum   = make([]float64, len(weights))
		total float64
	)
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, ErrWeights
		}
		total += w
		cum[i] = total
	}
	if total <= 0 || math.IsInf(total, 0) {
		return nil, ErrWeights
	}

	return cum, nil
}

// Categorical draws one class index with probability proportional to the
// weight encoded in the cumulative vector cum (as built by Cumulative).
// Zero-weight classes are never drawn. r==nil uses the default stream;
// an empty vector yields -1.
//
// Complexity: O(log n) per draw.
func Categorical(cum []float64, r *rand.Rand) int {
	if len(cum) == 0 {
		return -1
	}

	g := r
	if g == nil {
		g = New(0)
	}

	u := g.Float64() * cum[len(cum)-1]
	i := sort.Search(len(cum), func(k int) bool { return cum[k] > u })
	if i == len(cum) {
		// u reached the total through float rounding; back up to the last
		// positive-weight class.
		i--
		for i > 0 && cum[i] == cum[i-1] {
			i--
		}
	}

	return i
}
