// SPDX-License-Identifier: MIT
// Package rqa: shared structural validation for recurrence matrices.
// No logging, no panics on user input - only sentinel errors.

package rqa

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// validateBinarySquare confirms r is a non-nil square matrix whose entries
// are exactly 0 or 1, and returns its order n. Line extractors and the DRP
// computer all funnel through this check.
//
// Complexity: O(n²) time, O(1) memory.
func validateBinarySquare(r *mat.Dense) (int, error) {
	if r == nil {
		return 0, fmt.Errorf("rqa: nil matrix: %w", ErrNonSquareMatrix)
	}

	rows, cols := r.Dims()
	if rows != cols {
		return 0, fmt.Errorf("rqa: matrix is %d×%d: %w", rows, cols, ErrNonSquareMatrix)
	}

	rm := r.RawMatrix()

	var i, j int
	for i = 0; i < rows; i++ {
		base := i * rm.Stride
		for j = 0; j < cols; j++ {
			if v := rm.Data[base+j]; v != cellEmpty && v != cellRecurrent {
				return 0, fmt.Errorf("rqa: entry (%d,%d) = %v: %w", i, j, v, ErrNotBinaryMatrix)
			}
		}
	}

	return rows, nil
}
