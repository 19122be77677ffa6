// SPDX-License-Identifier: MIT
// Package rqa_test: diagonal recurrence profile tests.

package rqa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cartersale/Recurrence-Quantification-Analysis/rqa"
)

// TestProfile_FullBand validates the unwindowed profile of the ramp band:
// saturated densities on lags −1, 0, +1 and zeros everywhere else.
func TestProfile_FullBand(t *testing.T) {
	p, err := rqa.Profile(bandMatrix(t), 0)
	require.NoError(t, err)

	require.Len(t, p.Lags, 19) // −9 … +9
	require.Len(t, p.Recurrence, 19)
	require.Equal(t, -9, p.Lags[0])
	require.Equal(t, 9, p.Lags[18])

	for i, lag := range p.Lags {
		if lag >= -1 && lag <= 1 {
			require.InDelta(t, 100.0, p.Recurrence[i], 1e-12, "lag %d", lag)
			continue
		}
		require.Zero(t, p.Recurrence[i], "lag %d", lag)
	}
}

// TestProfile_LagWindow validates windowing: a positive maximum lag trims
// the profile symmetrically without touching the retained densities.
func TestProfile_LagWindow(t *testing.T) {
	p, err := rqa.Profile(bandMatrix(t), 3)
	require.NoError(t, err)

	require.Equal(t, []int{-3, -2, -1, 0, 1, 2, 3}, p.Lags)
	require.Equal(t, []float64{0, 0, 100, 100, 100, 0, 0}, p.Recurrence)
}

// TestProfile_WindowWiderThanMatrix validates that an oversized window
// degrades to the full profile rather than inventing lags.
func TestProfile_WindowWiderThanMatrix(t *testing.T) {
	p, err := rqa.Profile(bandMatrix(t), 100)
	require.NoError(t, err)
	require.Len(t, p.Lags, 19)
}

// TestProfile_PeakFirstMaximum validates the tie-break: among equal
// maxima the most negative lag wins.
func TestProfile_PeakFirstMaximum(t *testing.T) {
	p, err := rqa.Profile(bandMatrix(t), 0)
	require.NoError(t, err)

	lag, value := p.Peak()
	require.Equal(t, -1, lag) // first of the three saturated lags
	require.InDelta(t, 100.0, value, 1e-12)
}

// TestProfile_DetectsLeadLag validates the headline use case: when one
// series leads another by two samples, the profile peaks at lag −2.
func TestProfile_DetectsLeadLag(t *testing.T) {
	a := ramp(10)
	b := make([]float64, 10)
	for i := range b {
		b[i] = float64(i + 2) // b leads a by two samples
	}

	d, err := rqa.Distance(a, b, 1, 1)
	require.NoError(t, err)
	r, err := rqa.Threshold(d, rqa.RescaleNone, 0.5, 0)
	require.NoError(t, err)

	p, err := rqa.Profile(r, 0)
	require.NoError(t, err)

	lag, value := p.Peak()
	require.Equal(t, -2, lag)
	require.InDelta(t, 100.0, value, 1e-12) // the whole surviving diagonal recurs

	// Every other lag is silent: recurrence concentrates on one stripe.
	for i, l := range p.Lags {
		if l == -2 {
			continue
		}
		assert.Zero(t, p.Recurrence[i], "lag %d", l)
	}
}

// TestProfile_EmptyPeak validates the degenerate accessor on a profile
// with no lags.
func TestProfile_EmptyPeak(t *testing.T) {
	var p rqa.DRP

	lag, value := p.Peak()
	require.Zero(t, lag)
	require.Zero(t, value)
}

// TestProfile_Validation validates the input checks shared with the line
// extractors.
func TestProfile_Validation(t *testing.T) {
	_, err := rqa.Profile(nil, 0)
	require.ErrorIs(t, err, rqa.ErrNonSquareMatrix)

	d, err := rqa.Distance(ramp(10), ramp(10), 1, 1)
	require.NoError(t, err)
	_, err = rqa.Profile(d, 0) // raw distances are not binary
	require.ErrorIs(t, err, rqa.ErrNotBinaryMatrix)
}
