// SPDX-License-Identifier: MIT
// Package rqa: diagonal recurrence profile (DRP).
//
// Purpose:
//   - Express recurrence rate as a function of lag (diagonal offset),
//     independent of the line/histogram machinery. The profile peak of a
//     cross-recurrence run estimates the time shift between two series.

package rqa

import "gonum.org/v1/gonum/mat"

// DRP is a diagonal recurrence profile: Recurrence[k] is the percent
// recurrence on the diagonal at offset Lags[k], with Lags ascending.
type DRP struct {
	Lags       []int
	Recurrence []float64
}

// Profile computes the diagonal recurrence profile of a binary recurrence
// matrix.
//
// Stage 1 (Validate): r must be square and binary (ErrNonSquareMatrix,
// ErrNotBinaryMatrix).
//
// Stage 2 (Scan): for each offset d ∈ −(n−1)…(n−1), the profile value is
// 100 × ones(d) / length(d). maxLag > 0 keeps only |lag| ≤ maxLag;
// maxLag ≤ 0 keeps the full range.
//
// Complexity: O(n²) time, O(n) memory.
func Profile(r *mat.Dense, maxLag int) (*DRP, error) {
	n, err := validateBinarySquare(r)
	if err != nil {
		return nil, err
	}

	rm := r.RawMatrix()
	lags := make([]int, 0, 2*n-1)
	rec := make([]float64, 0, 2*n-1)

	var idx, s int
	for idx = 0; idx < 2*n-1; idx++ {
		off := idx - (n - 1)
		if maxLag > 0 && (off < -maxLag || off > maxLag) {
			continue
		}

		row, col := 0, off
		if off < 0 {
			row, col = -off, 0
		}
		ld := n - off
		if off < 0 {
			ld = n + off
		}

		ones := 0
		for s = 0; s < ld; s++ {
			if rm.Data[(row+s)*rm.Stride+(col+s)] == cellRecurrent {
				ones++
			}
		}

		lags = append(lags, off)
		rec = append(rec, percent*float64(ones)/float64(ld))
	}

	return &DRP{Lags: lags, Recurrence: rec}, nil
}

// Peak returns the lag with the maximum profile value; ties resolve to the
// first (most negative) lag. An empty profile reports (0, 0).
func (p *DRP) Peak() (lag int, value float64) {
	if len(p.Recurrence) == 0 {
		return 0, 0
	}

	best := 0
	for i := 1; i < len(p.Recurrence); i++ {
		if p.Recurrence[i] > p.Recurrence[best] {
			best = i
		}
	}

	return p.Lags[best], p.Recurrence[best]
}
