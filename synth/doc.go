// SPDX-License-Identifier: MIT

// Package synth generates deterministic test signals for recurrence
// analysis.
//
// Every constructor takes a length n, a seed and functional options, and
// returns a fresh []float64 of length n (or nil when n < 1 or a resolved
// parameter is degenerate). Determinism policy:
//
//   - WithRand(r) attaches a shared RNG stream and wins over the seed.
//   - Otherwise the constructor derives a local RNG from the seed, so the
//     same (n, seed, opts) always produces the same samples.
//
// Generators:
//
//   - Sine:     A·sin(τ·f·i), the plainest periodic signal.
//   - Chirp:    linear frequency sweep f → f1 via a phase accumulator.
//   - Noise:    A-scaled Gaussian white noise.
//   - AR1:      xᵢ = φ·xᵢ₋₁ + A·εᵢ, tunable short-range memory.
//   - Logistic: xᵢ₊₁ = r·xᵢ·(1−xᵢ), chaotic for r near 4.
//
// All generators accept WithTrend for a linear drift and the periodic
// ones accept WithNoise for additive measurement noise, which gives a
// compact palette for exercising recurrence statistics: periodic signals
// light up long diagonals, white noise scatters isolated points, and the
// logistic map sits in between.
package synth
