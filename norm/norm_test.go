// SPDX-License-Identifier: MIT
// Package norm_test: scaling mode tests.

package norm_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cartersale/Recurrence-Quantification-Analysis/norm"
)

// TestSeries_None validates the passthrough mode: equal values on a fresh
// backing array.
func TestSeries_None(t *testing.T) {
	in := []float64{3, 1, 4}

	out, err := norm.Series(in, norm.None)
	require.NoError(t, err)
	require.Equal(t, in, out)

	out[0] = 99 // writing through the copy must not reach the input
	require.Equal(t, 3.0, in[0])
}

// TestSeries_MinMax validates the unit-interval mapping.
func TestSeries_MinMax(t *testing.T) {
	out, err := norm.Series([]float64{2, 4, 6}, norm.MinMax)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0.5, 1}, out)
}

// TestSeries_ZScore validates standardization against the population
// deviation of {1,2,3}.
func TestSeries_ZScore(t *testing.T) {
	out, err := norm.Series([]float64{1, 2, 3}, norm.ZScore)
	require.NoError(t, err)
	require.Len(t, out, 3)

	want := math.Sqrt(1.5) // 1/σ with σ² = 2/3
	require.InDelta(t, -want, out[0], 1e-12)
	require.InDelta(t, 0, out[1], 1e-12)
	require.InDelta(t, want, out[2], 1e-12)
}

// TestSeries_Center validates mean removal with the spread preserved.
func TestSeries_Center(t *testing.T) {
	out, err := norm.Series([]float64{1, 2, 3}, norm.Center)
	require.NoError(t, err)
	require.Equal(t, []float64{-1, 0, 1}, out)
}

// TestSeries_DoesNotMutateInput validates that scaling modes work on a
// copy only.
func TestSeries_DoesNotMutateInput(t *testing.T) {
	in := []float64{2, 4, 6}

	_, err := norm.Series(in, norm.MinMax)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 4, 6}, in)
}

// TestSeries_Validation validates the degenerate inputs: empty series,
// constant series under scaling modes, unknown mode.
func TestSeries_Validation(t *testing.T) {
	_, err := norm.Series(nil, norm.MinMax)
	require.ErrorIs(t, err, norm.ErrEmptySeries)

	_, err = norm.Series([]float64{5, 5, 5}, norm.MinMax)
	require.ErrorIs(t, err, norm.ErrZeroRange)

	_, err = norm.Series([]float64{5, 5, 5}, norm.ZScore)
	require.ErrorIs(t, err, norm.ErrZeroRange)

	out, err := norm.Series([]float64{5, 5, 5}, norm.Center) // centering is always defined
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 0}, out)

	_, err = norm.Series([]float64{1, 2}, norm.Mode(9))
	require.ErrorIs(t, err, norm.ErrUnknownMode)
}

// TestParseMode validates name and legacy-code parsing.
func TestParseMode(t *testing.T) {
	cases := []struct {
		in   string
		want norm.Mode
	}{
		{"none", norm.None},
		{"0", norm.None},
		{"minmax", norm.MinMax},
		{"1", norm.MinMax},
		{"ZScore", norm.ZScore},
		{"2", norm.ZScore},
		{" center ", norm.Center},
		{"3", norm.Center},
	}
	for _, c := range cases {
		got, err := norm.ParseMode(c.in)
		require.NoError(t, err, "input %q", c.in)
		require.Equal(t, c.want, got, "input %q", c.in)
	}

	_, err := norm.ParseMode("median")
	require.ErrorIs(t, err, norm.ErrUnknownMode)
}

// TestMode_String validates the canonical names round-trip through
// ParseMode.
func TestMode_String(t *testing.T) {
	for _, m := range []norm.Mode{norm.None, norm.MinMax, norm.ZScore, norm.Center} {
		back, err := norm.ParseMode(m.String())
		require.NoError(t, err)
		require.Equal(t, m, back)
	}
	assert.Equal(t, "unknown", norm.Mode(42).String())
}
