// SPDX-License-Identifier: MIT
// Package rqa: Shannon entropy over a line-length histogram.

package rqa

import (
	"fmt"
	"math"
)

// Entropy computes the Shannon entropy of a line-length histogram and the
// remaining information relative to states distinguishable lengths
// (states = MaxPossible − minl + 1 in the statistics pipeline).
//
// Stage 1 (Validate): states must be ≥ 1; a nonpositive state count only
// arises when the minimum line length exceeds the maximum possible length,
// so it maps to ErrInvalidMinLength. A nil or zero-count histogram has no
// distribution to normalize and fails with ErrEmptyDistribution — the
// statistics pipeline never calls Entropy in that case and reports zeros
// instead.
//
// Stage 2 (Normalize & sum): probabilities p = count/total accumulate in
// ascending length order (deterministic float summation);
// shannon = −Σ p·log2 p, remaining = log2(states) − shannon.
//
// Complexity: O(k log k) time for k distinct lengths.
func Entropy(hist *LineHistogram, states int) (shannon, remaining float64, err error) {
	if states < 1 {
		return 0, 0, fmt.Errorf("rqa: %d distinguishable states: %w", states, ErrInvalidMinLength)
	}
	if hist == nil || hist.Count == 0 {
		return 0, 0, fmt.Errorf("rqa: empty line histogram: %w", ErrEmptyDistribution)
	}

	total := float64(hist.Count)
	for _, l := range hist.sortedLengths() {
		p := float64(hist.Counts[l]) / total
		shannon -= p * math.Log2(p)
	}

	return shannon, math.Log2(float64(states)) - shannon, nil
}
