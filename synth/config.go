// SPDX-License-Identifier: MIT
// Package synth: internal configuration and deterministic defaults.
//
// Design:
//   - synthConfig is the single source of truth for all generator knobs.
//   - Defaults are deterministic and documented; no globals.
//   - newSynthConfig applies options in order (later overrides earlier).

package synth

import (
	"math/rand"
)

// synthConfig aggregates all knobs used by the generators.
// It is passed by value to constructors (immutable to callers).
type synthConfig struct {
	// RNG for stochastic draws; nil means "derive from the seed".
	rng *rand.Rand

	amplitude float64 // signal or innovation scale, > 0
	frequency float64 // base frequency in cycles per sample, > 0
	sweepTo   float64 // chirp end frequency in cycles per sample, > 0
	sigma     float64 // additive Gaussian noise deviation, >= 0
	trend     float64 // linear drift per sample, any real
	coeff     float64 // AR(1) coefficient, any real
	growth    float64 // logistic growth rate, in (0, 4]

	// First sample for the recursive generators. AR1 and Logistic resolve
	// different fallbacks, so an explicit flag separates "set to zero"
	// from "not set".
	initial    float64
	initialSet bool
}

// Deterministic defaults (named, no magic numbers).
const (
	defAmplitude       = 1.0  // generator scale
	defFrequency       = 0.05 // 20-sample period
	defSweepTo         = 0.25 // chirp end frequency
	defSigma           = 0.0  // noiseless unless asked
	defTrend           = 0.0  // no drift
	defCoeff           = 0.7  // stationary AR(1) memory
	defGrowth          = 3.99 // chaotic logistic regime
	defAR1Initial      = 0.0  // AR(1) start state
	defLogisticInitial = 0.5  // logistic seed point in (0, 1)
)

// newSynthConfig constructs a config with deterministic defaults and
// applies all options in order, last wins.
// Complexity: O(len(opts)) time, O(1) space.
func newSynthConfig(opts ...Option) synthConfig {
	cfg := synthConfig{
		rng:       nil,
		amplitude: defAmplitude,
		frequency: defFrequency,
		sweepTo:   defSweepTo,
		sigma:     defSigma,
		trend:     defTrend,
		coeff:     defCoeff,
		growth:    defGrowth,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// rngFrom returns cfg.rng if present (shared stream), else a local rand
// seeded by seed. This keeps determinism across composed calls.
func rngFrom(cfg synthConfig, seed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(seed))
}
