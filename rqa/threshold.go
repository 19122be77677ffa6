// SPDX-License-Identifier: MIT
// Package rqa: recurrence thresholder.
//
// Purpose:
//   - Rescale a distance matrix (none / mean / max), threshold it against a
//     radius, and zero the exclusion (Theiler) band around the main diagonal.
//   - The caller's matrix is never mutated; rescaling happens on the fly
//     against a precomputed divisor.

package rqa

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Binary matrix cell values. Named so scans and tests share one vocabulary.
const (
	cellEmpty     = 0.0 // no recurrence at (i,j)
	cellRecurrent = 1.0 // recurrence at (i,j)
)

// Threshold converts a distance matrix into a binary recurrence matrix.
//
// Stage 1 (Validate): d must be square (ErrNonSquareMatrix) with more than
// one element (ErrInsufficientData); radius must be a scalar > 0
// (ErrInvalidRadius); rescale must be a known mode (ErrInvalidRescaleMode);
// exclude must be ≥ 0 (ErrInvalidWindow).
//
// Stage 2 (Rescale): RescaleMean divides every entry by the mean distance,
// RescaleMax by the maximum, RescaleNone leaves entries untouched. The
// division is applied against a copy-free divisor, so d itself is never
// written. A zero divisor (identically-zero distances) disables rescaling
// instead of poisoning the matrix with NaNs.
//
// Stage 3 (Threshold): entry (i,j) = 1 iff rescaled distance ≤ radius.
//
// Stage 4 (Exclude): entries with |i−j| < exclude are zeroed on both sides
// of the main diagonal. Cross-recurrence pipelines pass exclude = 0; Stats
// enforces that policy via Mode.
//
// Complexity: O(n²) time, O(n²) memory for the result.
func Threshold(d *mat.Dense, rescale RescaleMode, radius float64, exclude int) (*mat.Dense, error) {
	rows, cols := d.Dims()
	if rows != cols {
		return nil, fmt.Errorf("rqa: distance matrix is %d×%d: %w", rows, cols, ErrNonSquareMatrix)
	}
	if rows*cols <= 1 {
		return nil, fmt.Errorf("rqa: distance matrix has %d element(s): %w", rows*cols, ErrInsufficientData)
	}
	if math.IsNaN(radius) || radius <= 0 {
		return nil, fmt.Errorf("rqa: radius %v: %w", radius, ErrInvalidRadius)
	}
	if rescale != RescaleNone && rescale != RescaleMean && rescale != RescaleMax {
		return nil, fmt.Errorf("rqa: rescale mode %d: %w", int(rescale), ErrInvalidRescaleMode)
	}
	if exclude < 0 {
		return nil, fmt.Errorf("rqa: exclusion window %d: %w", exclude, ErrInvalidWindow)
	}

	n := rows

	// Resolve the uniform divisor once; 1 means "no rescaling".
	divisor := 1.0
	switch rescale {
	case RescaleMean:
		divisor = mat.Sum(d) / float64(n*n)
	case RescaleMax:
		divisor = mat.Max(d)
	case RescaleNone:
		// keep divisor 1
	}
	if divisor == 0 {
		divisor = 1 // all distances are zero; rescaling is meaningless
	}

	// Stride-aware read of the input; flat write into the fresh result.
	rm := d.RawMatrix()
	out := make([]float64, n*n)

	var i, j int
	for i = 0; i < n; i++ {
		src := i * rm.Stride
		dst := i * n
		for j = 0; j < n; j++ {
			if rm.Data[src+j]/divisor <= radius {
				out[dst+j] = cellRecurrent
			}
		}
	}

	// Zero the Theiler band: diagonals 0 … exclude−1 on both sides.
	var off int
	for off = 0; off < exclude; off++ {
		if off >= n {
			break // window wider than the matrix; nothing left to zero
		}
		for i = 0; i+off < n; i++ {
			out[i*n+i+off] = cellEmpty   // upper side
			out[(i+off)*n+i] = cellEmpty // lower side
		}
	}

	return mat.NewDense(n, n, out), nil
}
