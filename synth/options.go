// SPDX-License-Identifier: MIT
// Package synth: functional options for the signal generators.
//
// Contract (strict):
//   - Options are functional (type Option func(*synthConfig)).
//   - Option constructors validate and panic on meaningless inputs; the
//     generators themselves never panic, they return nil.
//   - Determinism is explicit: seeding happens via the seed argument or
//     WithRand, never through hidden globals.

package synth

import (
	"math/rand"
)

// Option customizes a generator by mutating a synthConfig instance before
// synthesis begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*synthConfig)

// WithRand provides an explicit RNG stream shared across composed calls.
// It takes priority over the seed argument. Panics on nil.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("synth: WithRand(nil)")
	}

	return func(c *synthConfig) {
		c.rng = r
	}
}

// WithAmplitude sets the signal scale A (>0). For Noise and AR1 this is
// the scale of the Gaussian draws. Panics if A <= 0.
// Complexity: O(1) time, O(1) space.
func WithAmplitude(a float64) Option {
	if a <= 0 {
		panic("synth: WithAmplitude(A<=0)")
	}

	return func(c *synthConfig) {
		c.amplitude = a
	}
}

// WithFrequency sets the base frequency in cycles per sample (>0). For
// Chirp this is the start of the sweep. Panics if f <= 0.
// Complexity: O(1) time, O(1) space.
func WithFrequency(f float64) Option {
	if f <= 0 {
		panic("synth: WithFrequency(f<=0)")
	}

	return func(c *synthConfig) {
		c.frequency = f
	}
}

// WithSweep sets the chirp end frequency in cycles per sample (>0).
// Panics if f1 <= 0.
// Complexity: O(1) time, O(1) space.
func WithSweep(f1 float64) Option {
	if f1 <= 0 {
		panic("synth: WithSweep(f1<=0)")
	}

	return func(c *synthConfig) {
		c.sweepTo = f1
	}
}

// WithNoise sets the additive Gaussian noise deviation (>=0) for the
// periodic and recursive generators. Panics if sigma < 0.
// Complexity: O(1) time, O(1) space.
func WithNoise(sigma float64) Option {
	if sigma < 0 {
		panic("synth: WithNoise(sigma<0)")
	}

	return func(c *synthConfig) {
		c.sigma = sigma
	}
}

// WithTrend sets the linear drift per sample. Any real value is accepted,
// including 0.
// Complexity: O(1) time, O(1) space.
func WithTrend(k float64) Option {
	return func(c *synthConfig) {
		c.trend = k
	}
}

// WithCoefficient sets the AR(1) coefficient φ. Any real value is
// accepted; |φ| < 1 keeps the process stationary.
// Complexity: O(1) time, O(1) space.
func WithCoefficient(phi float64) Option {
	return func(c *synthConfig) {
		c.coeff = phi
	}
}

// WithGrowth sets the logistic growth rate r. The map stays bounded on
// (0, 4], so values outside that interval panic.
// Complexity: O(1) time, O(1) space.
func WithGrowth(r float64) Option {
	if r <= 0 || r > 4 {
		panic("synth: WithGrowth(r outside (0,4])")
	}

	return func(c *synthConfig) {
		c.growth = r
	}
}

// WithInitial sets the first sample of the recursive generators. AR1
// accepts any real; Logistic additionally requires a value in (0, 1) and
// returns nil otherwise.
// Complexity: O(1) time, O(1) space.
func WithInitial(x0 float64) Option {
	return func(c *synthConfig) {
		c.initial = x0
		c.initialSet = true
	}
}
