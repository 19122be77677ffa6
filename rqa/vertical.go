// SPDX-License-Identifier: MIT
// Package rqa: vertical line extractor.
//
// Purpose:
//   - Walk every column of a binary recurrence matrix for maximal vertical
//     runs of recurrent points, feeding laminarity, trapping time, Vmax,
//     and divergence.

package rqa

import "gonum.org/v1/gonum/mat"

// VerticalLineSet is the output of VerticalLines.
//
// Lengths holds every maximal vertical run of 1s (any length ≥ 1) in
// deterministic order: columns left to right, top to bottom within each
// column. Σ Lengths equals the number of recurrent points.
type VerticalLineSet struct {
	// Lengths of all maximal vertical line segments.
	Lengths []int

	// MaxLine is the longest vertical run found (Vmax); 0 when the matrix
	// holds no recurrent point.
	MaxLine int

	// Divergence is 1/MaxLine, or 0 when MaxLine is 0.
	Divergence float64

	// NoLines flags the degenerate MaxLine == 0 case so callers can tell a
	// true zero divergence apart from "nothing to measure".
	NoLines bool
}

// VerticalLines extracts vertical line structure from a recurrence matrix.
//
// Stage 1 (Validate): r must be square and binary (ErrNonSquareMatrix,
// ErrNotBinaryMatrix).
//
// Stage 2 (Scan): each column is walked top to bottom; every maximal run
// of 1s contributes one length and the longest becomes MaxLine.
//
// A matrix with no recurrent points is degenerate but valid: Divergence is
// reported as 0 with NoLines set, never as an error.
//
// Complexity: O(n²) time, O(1) memory beyond the collected lengths.
func VerticalLines(r *mat.Dense) (*VerticalLineSet, error) {
	n, err := validateBinarySquare(r)
	if err != nil {
		return nil, err
	}

	rm := r.RawMatrix()
	lengths := make([]int, 0, n)
	maxLine := 0

	var i, j int
	for j = 0; j < n; j++ {
		run := 0
		for i = 0; i < n; i++ {
			if rm.Data[i*rm.Stride+j] == cellRecurrent {
				run++

				continue
			}
			if run > 0 {
				lengths = append(lengths, run)
				if run > maxLine {
					maxLine = run
				}
				run = 0
			}
		}
		if run > 0 {
			lengths = append(lengths, run) // run touching the bottom edge
			if run > maxLine {
				maxLine = run
			}
		}
	}

	set := &VerticalLineSet{
		Lengths: lengths,
		MaxLine: maxLine,
		NoLines: maxLine == 0,
	}
	if maxLine > 0 {
		set.Divergence = 1 / float64(maxLine)
	}

	return set, nil
}
