// SPDX-License-Identifier: MIT
// Package rqa: line-length histogrammer.

package rqa

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// LineHistogram maps line length → frequency over lengths ≥ the minimum,
// with aggregate statistics of the filtered population. An empty histogram
// (no length qualified) carries zeroed statistics and is a valid result,
// not a failure.
type LineHistogram struct {
	// Counts holds the frequency of each qualifying length. Never nil.
	Counts map[int]int

	// Mean and Std are the mean and population standard deviation of the
	// qualifying lengths; 0 when nothing qualified.
	Mean float64
	Std  float64

	// Count is the number of qualifying lines (Σ of Counts values).
	Count int

	// MaxLine is the largest qualifying length; 0 when nothing qualified.
	MaxLine int
}

// sortedLengths returns the histogram keys in ascending order, so every
// float accumulation over the histogram is deterministic.
func (h *LineHistogram) sortedLengths() []int {
	keys := make([]int, 0, len(h.Counts))
	for l := range h.Counts {
		keys = append(keys, l)
	}
	sort.Ints(keys)

	return keys
}

// weightedSum is Σ length×count over the histogram: the number of recurrent
// points sitting on qualifying lines. Exact integer arithmetic, so iteration
// order does not matter.
func (h *LineHistogram) weightedSum() int {
	sum := 0
	for l, c := range h.Counts {
		sum += l * c
	}

	return sum
}

// Histogram bins lengths ≥ minl and computes their population statistics.
//
// Stage 1 (Validate): minl must be ≥ 1 (ErrInvalidMinLength).
//
// Stage 2 (Filter & bin): lengths below minl are dropped; the survivors
// feed Counts, Mean, Std (population form, ddof 0), Count, and MaxLine.
// No survivor at all yields an all-zero histogram and a nil error.
//
// Complexity: O(len(lengths)) time.
func Histogram(lengths []int, minl int) (*LineHistogram, error) {
	if minl < 1 {
		return nil, fmt.Errorf("rqa: minimum line length %d: %w", minl, ErrInvalidMinLength)
	}

	counts := make(map[int]int)
	filtered := make([]float64, 0, len(lengths))
	maxLine := 0

	for _, l := range lengths {
		if l < minl {
			continue
		}
		counts[l]++
		filtered = append(filtered, float64(l))
		if l > maxLine {
			maxLine = l
		}
	}

	h := &LineHistogram{
		Counts:  counts,
		Count:   len(filtered),
		MaxLine: maxLine,
	}
	if h.Count > 0 {
		h.Mean, h.Std = stat.PopMeanStdDev(filtered, nil)
	}

	return h, nil
}
