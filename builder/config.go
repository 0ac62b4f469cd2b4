// SPDX-License-Identifier: MIT
// Package: airnet/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • nameFn   = cityName   ("C0","C1",...)
//   • rng      = nil        (pure unless seeded)
//   • weightFn = constant (1h, $100)

package builder

import (
	"math/rand/v2"
	"strconv"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// City name strategy for synthetic networks: index -> name.
	nameFn func(int) string
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Leg (time, price) generator for synthetic networks.
	weightFn func(*rand.Rand) (float64, float64)
}

const (
	defaultLegTime  = 1.0
	defaultLegPrice = 100.0
)

// newBuilderConfig constructs a config with defaults and applies all
// options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		nameFn: cityName,
		weightFn: func(*rand.Rand) (float64, float64) {
			return defaultLegTime, defaultLegPrice
		},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// cityName renders an index as "C0", "C1", ...
func cityName(i int) string {
	return "C" + strconv.Itoa(i)
}

// IntegerWeights draws time in [1,9] hours and price in [1,9]×100 as whole
// numbers, so sums along paths are exact. Falls back to the defaults when
// r is nil.
func IntegerWeights(r *rand.Rand) (time, price float64) {
	if r == nil {
		return defaultLegTime, defaultLegPrice
	}

	return float64(1 + r.IntN(9)), float64(100 * (1 + r.IntN(9)))
}
