// SPDX-License-Identifier: MIT
// Package synth: the signal generators.
//
// Purpose:
//   - Produce 1-D test signals with known recurrence structure.
//   - Optional linear trend and Gaussian noise on every generator.
//   - Strict determinism: same (n, seed, opts) → same samples.
//
// Contract:
//   - Every generator returns a slice of length n, or nil when n < 1 or a
//     resolved parameter is degenerate.
//   - O(n) time, O(n) memory. No panics. No global state.

package synth

import (
	"math"
)

// tau is the full circle constant 2π used by the phase accumulators.
const tau = 2.0 * math.Pi

// Sine returns a length-n sinusoid A·sin(τ·f·i) with optional trend and
// additive Gaussian noise.
func Sine(n int, seed int64, opts ...Option) []float64 {
	if n < 1 {
		return nil
	}

	cfg := newSynthConfig(opts...)
	if cfg.amplitude <= 0 || cfg.frequency <= 0 || cfg.sigma < 0 {
		return nil
	}

	rng := rngFrom(cfg, seed)
	out := make([]float64, n)

	var val float64
	for i := 0; i < n; i++ {
		val = cfg.amplitude * math.Sin(tau*cfg.frequency*float64(i))
		val += cfg.trend * float64(i)
		if cfg.sigma > 0 {
			val += cfg.sigma * rng.NormFloat64()
		}
		out[i] = val
	}

	return out
}

// Chirp returns a length-n linear chirp: the frequency sweeps from f to
// f1 over the signal.
// Model:
//   - fi   = f + (f1 − f)·i/(n−1)  (cycles/sample)
//   - θᵢ₊₁ = θᵢ + τ·fi             (phase accumulator)
//   - yᵢ   = A·sin(θᵢ) + trend·i + noise
func Chirp(n int, seed int64, opts ...Option) []float64 {
	if n < 1 {
		return nil
	}

	cfg := newSynthConfig(opts...)
	if cfg.amplitude <= 0 || cfg.frequency <= 0 || cfg.sweepTo <= 0 || cfg.sigma < 0 {
		return nil
	}

	rng := rngFrom(cfg, seed)
	out := make([]float64, n)

	// Phase accumulator (start at 0 for reproducibility).
	theta := 0.0

	var (
		t   float64 // normalized position in [0,1]
		fi  float64 // instantaneous frequency at sample i
		val float64 // sample value before store
	)
	for i := 0; i < n; i++ {
		if n > 1 {
			t = float64(i) / float64(n-1)
		} else {
			t = 0.0
		}

		fi = cfg.frequency + (cfg.sweepTo-cfg.frequency)*t
		theta += tau * fi

		val = cfg.amplitude * math.Sin(theta)
		val += cfg.trend * float64(i)
		if cfg.sigma > 0 {
			val += cfg.sigma * rng.NormFloat64()
		}
		out[i] = val
	}

	return out
}

// Noise returns length-n Gaussian white noise scaled by the amplitude,
// with optional trend. WithNoise has no effect here: the draws are the
// signal.
func Noise(n int, seed int64, opts ...Option) []float64 {
	if n < 1 {
		return nil
	}

	cfg := newSynthConfig(opts...)
	if cfg.amplitude <= 0 {
		return nil
	}

	rng := rngFrom(cfg, seed)
	out := make([]float64, n)

	for i := 0; i < n; i++ {
		out[i] = cfg.amplitude*rng.NormFloat64() + cfg.trend*float64(i)
	}

	return out
}

// AR1 returns a length-n first-order autoregression xᵢ = φ·xᵢ₋₁ + A·εᵢ
// starting from the initial state (0 unless WithInitial overrides it).
// |φ| < 1 keeps the series stationary; larger magnitudes are accepted and
// diverge, which has its uses in divergence demos.
func AR1(n int, seed int64, opts ...Option) []float64 {
	if n < 1 {
		return nil
	}

	cfg := newSynthConfig(opts...)
	if cfg.amplitude <= 0 {
		return nil
	}

	x0 := defAR1Initial
	if cfg.initialSet {
		x0 = cfg.initial
	}

	rng := rngFrom(cfg, seed)
	out := make([]float64, n)

	state := x0
	out[0] = state // drift is zero at the origin
	for i := 1; i < n; i++ {
		state = cfg.coeff*state + cfg.amplitude*rng.NormFloat64()
		out[i] = state + cfg.trend*float64(i)
	}

	return out
}

// Logistic returns a length-n orbit of the logistic map
// xᵢ₊₁ = r·xᵢ·(1−xᵢ), scaled by the amplitude, with optional trend and
// measurement noise. The start point must lie strictly inside (0, 1);
// anything else returns nil. The orbit itself is deterministic, so the
// seed only matters when noise is enabled.
func Logistic(n int, seed int64, opts ...Option) []float64 {
	if n < 1 {
		return nil
	}

	cfg := newSynthConfig(opts...)
	if cfg.amplitude <= 0 || cfg.growth <= 0 || cfg.growth > 4 || cfg.sigma < 0 {
		return nil
	}

	x0 := defLogisticInitial
	if cfg.initialSet {
		x0 = cfg.initial
	}
	if x0 <= 0 || x0 >= 1 {
		return nil
	}

	rng := rngFrom(cfg, seed)
	out := make([]float64, n)

	var val float64
	state := x0
	for i := 0; i < n; i++ {
		val = cfg.amplitude * state
		val += cfg.trend * float64(i)
		if cfg.sigma > 0 {
			val += cfg.sigma * rng.NormFloat64()
		}
		out[i] = val

		state = cfg.growth * state * (1 - state)
	}

	return out
}
