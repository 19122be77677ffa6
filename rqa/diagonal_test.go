// SPDX-License-Identifier: MIT
// Package rqa_test: diagonal line extractor tests.

package rqa_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/cartersale/Recurrence-Quantification-Analysis/rqa"
)

// TestDiagonalLines_RampBand walks the |i−j| ≤ 1 band of the ramp fixture:
// one main-diagonal line of 10 flanked by two lines of 9.
func TestDiagonalLines_RampBand(t *testing.T) {
	set, err := rqa.DiagonalLines(bandMatrix(t), 0)
	require.NoError(t, err)

	require.Equal(t, []int{9, 10, 9}, set.Lengths) // offsets −1, 0, +1 in order
	require.Equal(t, 10, set.MaxPossible)          // n − 0
	require.Equal(t, 100, set.EligiblePoints)      // full n²
}

// TestDiagonalLines_AllOnesFlatTrend checks the constant-series property:
// uniform density across offsets has exactly zero trend in both branches.
func TestDiagonalLines_AllOnesFlatTrend(t *testing.T) {
	data := make([]float64, 25)
	for i := range data {
		data[i] = 1
	}

	set, err := rqa.DiagonalLines(mat.NewDense(5, 5, data), 0)
	require.NoError(t, err)

	require.Equal(t, []int{1, 2, 3, 4, 5, 4, 3, 2, 1}, set.Lengths) // one full run per diagonal
	require.InDelta(t, 0.0, set.TrendLower, 1e-12)                  // flat density
	require.InDelta(t, 0.0, set.TrendUpper, 1e-12)
}

// TestDiagonalLines_LinearDensitySlope builds a 3×3 matrix whose density
// falls linearly with |offset| (1.0, 0.5, 0.0), giving an exact OLS slope
// of −50 percent per offset, reported as −50000 after the ×1000 scaling.
func TestDiagonalLines_LinearDensitySlope(t *testing.T) {
	r := mat.NewDense(3, 3, []float64{
		1, 1, 0,
		1, 1, 0,
		0, 0, 1,
	})

	set, err := rqa.DiagonalLines(r, 0)
	require.NoError(t, err)

	require.InDelta(t, -50000.0, set.TrendLower, 1e-9) // perfectly linear fit
	require.InDelta(t, -50000.0, set.TrendUpper, 1e-9) // symmetric construction
}

// TestDiagonalLines_ExcludeShiftsTrendPivot checks that the trend ranges
// start at the exclusion offset: on the ramp band with exclude = 1 the
// density series is [100, 0, …, 0] percent over offsets 1…9, whose OLS
// slope is −400/60 and reports as −20000/3 after scaling.
func TestDiagonalLines_ExcludeShiftsTrendPivot(t *testing.T) {
	set, err := rqa.DiagonalLines(bandMatrix(t), 1)
	require.NoError(t, err)

	require.Equal(t, 9, set.MaxPossible)     // n − exclude
	require.Equal(t, 90, set.EligiblePoints) // n² − n
	require.InDelta(t, -20000.0/3.0, set.TrendLower, 1e-6)
	require.InDelta(t, -20000.0/3.0, set.TrendUpper, 1e-6)
}

// TestDiagonalLines_EligiblePoints tabulates the exclusion-window cell
// count formula against hand-computed values on a 10×10 matrix.
func TestDiagonalLines_EligiblePoints(t *testing.T) {
	zeros := mat.NewDense(10, 10, make([]float64, 100))

	cases := []struct {
		exclude int
		want    int
	}{
		{exclude: 0, want: 100}, // n²
		{exclude: 1, want: 90},  // n² − n
		{exclude: 2, want: 72},  // n² − n − 2n + 2
		{exclude: 3, want: 56},  // n² − n − 4n + 6
	}
	for _, tc := range cases {
		set, err := rqa.DiagonalLines(zeros, tc.exclude)
		require.NoError(t, err)
		require.Equal(t, tc.want, set.EligiblePoints, "exclude=%d", tc.exclude)
	}
}

// TestDiagonalLines_DegenerateTrendRange checks that a pivot range with a
// single point (exclude = n−1) reports slope 0 instead of failing.
func TestDiagonalLines_DegenerateTrendRange(t *testing.T) {
	zeros := mat.NewDense(4, 4, make([]float64, 16))

	set, err := rqa.DiagonalLines(zeros, 3)
	require.NoError(t, err)
	require.Zero(t, set.TrendLower) // one point defines no slope
	require.Zero(t, set.TrendUpper)
}

// TestDiagonalLines_Validation checks the extractor's sentinel boundary.
func TestDiagonalLines_Validation(t *testing.T) {
	_, err := rqa.DiagonalLines(mat.NewDense(2, 3, make([]float64, 6)), 0)
	require.ErrorIs(t, err, rqa.ErrNonSquareMatrix)

	_, err = rqa.DiagonalLines(mat.NewDense(2, 2, []float64{0, 0.5, 0, 1}), 0)
	require.ErrorIs(t, err, rqa.ErrNotBinaryMatrix) // 0.5 is neither 0 nor 1

	zeros := mat.NewDense(4, 4, make([]float64, 16))

	_, err = rqa.DiagonalLines(zeros, -1)
	require.ErrorIs(t, err, rqa.ErrInvalidWindow)

	_, err = rqa.DiagonalLines(zeros, 4)
	require.ErrorIs(t, err, rqa.ErrInvalidWindow) // no pivot range remains

	_, err = rqa.DiagonalLines(nil, 0)
	require.ErrorIs(t, err, rqa.ErrNonSquareMatrix) // nil matrix, no panic
}
