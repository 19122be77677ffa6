// SPDX-License-Identifier: MIT
// Package rqa: embedding & distance builder.
//
// Purpose:
//   - Turn one or two 1-D series into an n2×n2 distance matrix using
//     time-delay embedding.
//   - Optionally fan row computation out across a bounded worker pool;
//     rows are disjoint, so the result is bit-identical for any pool size.

package rqa

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// DistanceOption tweaks how Distance runs without touching its contract.
type DistanceOption func(*distanceConfig)

// distanceConfig carries resolved Distance options.
type distanceConfig struct {
	workers int // row-parallelism; ≤ 1 means serial
}

// newDistanceConfig folds opts over the serial default.
func newDistanceConfig(opts ...DistanceOption) distanceConfig {
	cfg := distanceConfig{workers: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithWorkers requests up to n concurrent row workers. Values ≤ 1 keep the
// computation serial; values above the row count are clamped.
func WithWorkers(n int) DistanceOption {
	return func(cfg *distanceConfig) { cfg.workers = n }
}

// Distance builds the pairwise distance matrix between the delay embeddings
// of a and b. Pass the same slice twice for auto-recurrence.
//
// Stage 1 (Validate): dim ≥ 1, lag ≥ 1, and the embedded length
// n2 = min(len(a), len(b)) − lag·(dim−1) must be positive; otherwise
// ErrInsufficientData. The shorter series bounds n2 so the matrix is always
// square, even for unequal cross-recurrence inputs.
//
// Stage 2 (Embed & measure): entry (i,j) is the distance between delay
// vectors [x(i), x(i+lag), …, x(i+(dim−1)·lag)] of a and b. dim = 1 uses
// the absolute scalar difference, dim > 1 the Euclidean norm.
//
// Neither input slice is retained or modified.
//
// Complexity: O(n2²·dim) time, O(n2²) memory. Row-major loops, no
// per-element allocation. WithWorkers(n) splits rows across n goroutines.
func Distance(a, b []float64, dim, lag int, opts ...DistanceOption) (*mat.Dense, error) {
	// Validate embedding parameters before touching the data.
	if dim < 1 || lag < 1 {
		return nil, fmt.Errorf("rqa: dim=%d, lag=%d: %w", dim, lag, ErrInsufficientData)
	}

	// The shorter series bounds the usable sample count.
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	// Embedded length; every delay vector must fit inside both series.
	n2 := n - lag*(dim-1)
	if n2 <= 0 {
		return nil, fmt.Errorf("rqa: %d samples leave %d embedded points at dim=%d, lag=%d: %w",
			n, n2, dim, lag, ErrInsufficientData)
	}

	cfg := newDistanceConfig(opts...)

	// One flat row-major allocation for the whole matrix.
	out := make([]float64, n2*n2)

	workers := cfg.workers
	if workers > n2 {
		workers = n2 // more goroutines than rows would idle
	}
	if workers <= 1 {
		distanceRows(out, a, b, n2, dim, lag, 0, n2)

		return mat.NewDense(n2, n2, out), nil
	}

	// Fan rows out in contiguous chunks; each worker owns a disjoint range,
	// so no synchronization beyond the WaitGroup is needed.
	var wg sync.WaitGroup
	chunk := (n2 + workers - 1) / workers
	for lo := 0; lo < n2; lo += chunk {
		hi := lo + chunk
		if hi > n2 {
			hi = n2
		}

		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			distanceRows(out, a, b, n2, dim, lag, lo, hi)
		}(lo, hi)
	}
	wg.Wait()

	return mat.NewDense(n2, n2, out), nil
}

// distanceRows fills rows [lo, hi) of the flat row-major matrix out.
// The dim == 1 branch skips the inner embedding loop entirely.
func distanceRows(out, a, b []float64, n2, dim, lag, lo, hi int) {
	var i, j, k int

	if dim == 1 {
		for i = lo; i < hi; i++ {
			base := i * n2
			ai := a[i]
			for j = 0; j < n2; j++ {
				out[base+j] = math.Abs(ai - b[j])
			}
		}

		return
	}

	for i = lo; i < hi; i++ {
		base := i * n2
		for j = 0; j < n2; j++ {
			var sum float64
			for k = 0; k < dim; k++ {
				diff := a[i+k*lag] - b[j+k*lag]
				sum += diff * diff
			}
			out[base+j] = math.Sqrt(sum)
		}
	}
}
