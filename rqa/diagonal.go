// SPDX-License-Identifier: MIT
// Package rqa: diagonal line extractor.
//
// Purpose:
//   - Walk every diagonal of a binary recurrence matrix, collect maximal
//     runs of recurrent points, and regress recurrence density against
//     diagonal offset to measure non-stationarity (trend).

package rqa

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// trendScale converts a raw density-per-offset slope into the conventional
// reported trend units (slope × 1000, density in percent).
const trendScale = 1000.0

// DiagonalLineSet is the output of DiagonalLines.
//
// Lengths holds every maximal diagonal run of 1s (any length ≥ 1) in
// deterministic order: offsets −(n−1)…(n−1), left to right within each
// diagonal. Σ Lengths therefore equals the number of recurrent points.
type DiagonalLineSet struct {
	// Lengths of all maximal diagonal line segments.
	Lengths []int

	// MaxPossible is the longest achievable line: n − exclude.
	MaxPossible int

	// EligiblePoints counts matrix cells outside the exclusion band,
	// the denominator of percent recurrence.
	EligiblePoints int

	// TrendLower and TrendUpper are 1000 × the OLS slope of percent
	// recurrence density against offset, toward the lower-left and
	// upper-right corners respectively.
	TrendLower float64
	TrendUpper float64
}

// DiagonalLines extracts diagonal line structure from a recurrence matrix.
//
// Stage 1 (Validate): r must be square and binary (ErrNonSquareMatrix,
// ErrNotBinaryMatrix); exclude must satisfy 0 ≤ exclude < n
// (ErrInvalidWindow) so that at least the pivot diagonal remains for the
// trend ranges. Pass the same exclude used when thresholding.
//
// Stage 2 (Scan): every diagonal offset −(n−1)…(n−1) is walked once; each
// maximal run of 1s contributes one length, and per-offset ones/length
// densities accumulate for the trend fit.
//
// Stage 3 (Trend): with the main diagonal as pivot, offsets exclude…n−1
// pair with the density at −offset (lower branch) and +offset (upper
// branch). Each branch fits an ordinary least-squares line of
// 100×density on offset; the reported trend is 1000 × slope. Branches
// with fewer than two points yield slope 0 (degenerate, not an error).
//
// Complexity: O(n²) time, O(n) memory beyond the collected lengths.
func DiagonalLines(r *mat.Dense, exclude int) (*DiagonalLineSet, error) {
	n, err := validateBinarySquare(r)
	if err != nil {
		return nil, err
	}
	if exclude < 0 || exclude >= n {
		return nil, fmt.Errorf("rqa: exclusion window %d on a %d×%d matrix: %w", exclude, n, n, ErrInvalidWindow)
	}

	rm := r.RawMatrix()

	// density[idx] is ones/length for offset idx−(n−1).
	density := make([]float64, 2*n-1)
	lengths := make([]int, 0, n)

	var idx, s int
	for idx = 0; idx < 2*n-1; idx++ {
		off := idx - (n - 1)

		// Top-left cell and length of this diagonal.
		row, col := 0, off
		if off < 0 {
			row, col = -off, 0
		}
		ld := n - off
		if off < 0 {
			ld = n + off
		}

		ones, run := 0, 0
		for s = 0; s < ld; s++ {
			if rm.Data[(row+s)*rm.Stride+(col+s)] == cellRecurrent {
				ones++
				run++

				continue
			}
			if run > 0 {
				lengths = append(lengths, run)
				run = 0
			}
		}
		if run > 0 {
			lengths = append(lengths, run) // run touching the matrix edge
		}

		density[idx] = float64(ones) / float64(ld)
	}

	// Offsets exclude…n−1 versus percent density on each branch.
	span := n - exclude
	x := make([]float64, span)
	lower := make([]float64, span)
	upper := make([]float64, span)

	var k int
	for k = 0; k < span; k++ {
		off := exclude + k
		x[k] = float64(off)
		lower[k] = 100 * density[(n-1)-off]
		upper[k] = 100 * density[(n-1)+off]
	}

	return &DiagonalLineSet{
		Lengths:        lengths,
		MaxPossible:    n - exclude,
		EligiblePoints: eligiblePoints(n, exclude),
		TrendLower:     trendSlope(x, lower),
		TrendUpper:     trendSlope(x, upper),
	}, nil
}

// trendSlope fits y = α + βx and reports trendScale × β; fewer than two
// points cannot define a slope and report 0.
func trendSlope(x, y []float64) float64 {
	if len(x) < 2 {
		return 0
	}

	_, beta := stat.LinearRegression(x, y, nil, false)

	return trendScale * beta
}

// eligiblePoints counts cells outside the exclusion band of half-width
// exclude: n² when exclude = 0, else n² − n − 2n(exclude−1) +
// exclude(exclude−1).
func eligiblePoints(n, exclude int) int {
	if exclude == 0 {
		return n * n
	}

	return n*n - n - 2*n*(exclude-1) + exclude*(exclude-1)
}
