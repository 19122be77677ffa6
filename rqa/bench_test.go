package rqa_test

import (
	"math"
	"testing"

	"github.com/cartersale/Recurrence-Quantification-Analysis/rqa"
)

// sineSeries builds a deterministic oscillating series of length n for
// benchmark inputs.
func sineSeries(n int) []float64 {
	s := make([]float64, n)
	for i := 0; i < n; i++ {
		s[i] = math.Sin(0.3 * float64(i))
	}

	return s
}

// benchmarkDistance runs the distance stage on an n-point series with the
// given embedding and worker count. It resets the timer before entering
// the loop and fails on unexpected errors.
func benchmarkDistance(b *testing.B, n, dim, workers int) {
	series := sineSeries(n)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		_, err := rqa.Distance(series, series, dim, 1, rqa.WithWorkers(workers))
		if err != nil {
			b.Fatalf("Distance failed: %v", err)
		}
	}
}

// BenchmarkDistance_ScalarSmall benchmarks the dim=1 fast path on a 100-point series.
func BenchmarkDistance_ScalarSmall(b *testing.B) {
	benchmarkDistance(b, 100, 1, 1)
}

// BenchmarkDistance_ScalarMedium benchmarks the dim=1 fast path on a 500-point series.
func BenchmarkDistance_ScalarMedium(b *testing.B) {
	benchmarkDistance(b, 500, 1, 1)
}

// BenchmarkDistance_EmbeddedMedium benchmarks a three-dimensional embedding on a 500-point series.
func BenchmarkDistance_EmbeddedMedium(b *testing.B) {
	benchmarkDistance(b, 500, 3, 1)
}

// BenchmarkDistance_EmbeddedParallel benchmarks the same embedding fanned out over four workers.
func BenchmarkDistance_EmbeddedParallel(b *testing.B) {
	benchmarkDistance(b, 500, 3, 4)
}

// BenchmarkStats benchmarks the full quantification pipeline on a 200-point series.
func BenchmarkStats(b *testing.B) {
	series := sineSeries(200)
	d, err := rqa.Distance(series, series, 1, 1)
	if err != nil {
		b.Fatalf("Distance failed: %v", err)
	}
	p := rqa.Params{Dim: 1, Lag: 1, Rescale: rqa.RescaleMean, Radius: 0.5, Theiler: 1, MinLine: 2}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = rqa.Stats(d, p, rqa.ModeAuto); err != nil {
			b.Fatalf("Stats failed: %v", err)
		}
	}
}

// BenchmarkProfile benchmarks diagonal profile extraction on a 200-point band matrix.
func BenchmarkProfile(b *testing.B) {
	series := sineSeries(200)
	d, err := rqa.Distance(series, series, 1, 1)
	if err != nil {
		b.Fatalf("Distance failed: %v", err)
	}
	r, err := rqa.Threshold(d, rqa.RescaleMean, 0.5, 0)
	if err != nil {
		b.Fatalf("Threshold failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = rqa.Profile(r, 0); err != nil {
			b.Fatalf("Profile failed: %v", err)
		}
	}
}
