// SPDX-License-Identifier: MIT
// Package rqa: statistics aggregator.
//
// Purpose:
//   - Drive the full pipeline Threshold → DiagonalLines → VerticalLines →
//     Histogram → Entropy over one distance matrix and fold the outputs
//     into a single immutable Result.
//
// Pipeline states: Init → Thresholded → LinesExtracted → Histogrammed →
// Aggregated, or Failed(code) from any state. Each stage validates its own
// inputs; the first failure aborts the run and surfaces its sentinel error
// unchanged (Code recovers the numeric stage code). Nothing is retried.

package rqa

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const percent = 100.0 // statistic scale factor

// Stats computes the complete RQA statistics record for a distance matrix.
//
// The exclusion window is a policy of the mode: ModeAuto applies
// p.Theiler (self-comparisons near the main diagonal are embedding
// artifacts), ModeCross forces 0 (two distinct series share no such
// artifact). Any other mode value cannot select a policy and fails with
// ErrInvalidWindow.
//
// Degenerate-but-valid outcomes never fail the pipeline: an empty diagonal
// histogram zeroes determinism, line statistics, and entropy; a matrix
// without vertical lines zeroes laminarity, trapping time, and divergence
// and sets NoVerticalLines.
//
// The caller's distance matrix is never mutated.
//
// Complexity: O(n²) time beyond the input, O(n²) memory for the
// recurrence matrix retained in the Result.
func Stats(d *mat.Dense, p Params, mode Mode) (*Result, error) {
	// Resolve the exclusion-window policy from the mode tag.
	var window int
	switch mode {
	case ModeAuto:
		window = p.Theiler
	case ModeCross:
		window = 0
	default:
		return nil, fmt.Errorf("rqa: mode %d selects no exclusion policy: %w", int(mode), ErrInvalidWindow)
	}

	// Init → Thresholded.
	rec, err := Threshold(d, p.Rescale, p.Radius, window)
	if err != nil {
		return nil, err
	}

	// Thresholded → LinesExtracted.
	diag, err := DiagonalLines(rec, window)
	if err != nil {
		return nil, err
	}
	vert, err := VerticalLines(rec)
	if err != nil {
		return nil, err
	}

	// LinesExtracted → Histogrammed.
	dhist, err := Histogram(diag.Lengths, p.MinLine)
	if err != nil {
		return nil, err
	}
	vhist, err := Histogram(vert.Lengths, p.MinLine)
	if err != nil {
		return nil, err
	}

	// Histogrammed → Aggregated.
	res := &Result{
		Recurrence:      rec,
		MaxLine:         dhist.MaxLine,
		MeanLine:        dhist.Mean,
		StdLine:         dhist.Std,
		LineCount:       dhist.Count,
		TrendLower:      diag.TrendLower,
		TrendUpper:      diag.TrendUpper,
		TrappingTime:    vhist.Mean,
		MaxVertical:     vert.MaxLine,
		Divergence:      vert.Divergence,
		NoVerticalLines: vert.NoLines,
	}

	// Σ of all diagonal (resp. vertical) run lengths is the recurrent point
	// count seen by that scan; both denominators below.
	recurDiag := sumInts(diag.Lengths)
	recurVert := sumInts(vert.Lengths)

	res.PercentRecurrence = percent * float64(recurDiag) / float64(diag.EligiblePoints)
	if recurDiag > 0 {
		res.PercentDeterminism = percent * float64(dhist.weightedSum()) / float64(recurDiag)
	}
	if recurVert > 0 {
		res.PercentLaminarity = percent * float64(vhist.weightedSum()) / float64(recurVert)
	}

	// Entropy only has a distribution to work with when lines qualified;
	// the empty histogram is a valid zero-entropy outcome.
	if dhist.Count > 0 {
		res.Entropy, res.Remaining, err = Entropy(dhist, diag.MaxPossible-p.MinLine+1)
		if err != nil {
			return nil, err
		}
	}

	return res, nil
}

// sumInts is Σ xs; exact, order-independent.
func sumInts(xs []int) int {
	sum := 0
	for _, x := range xs {
		sum += x
	}

	return sum
}
