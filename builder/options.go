// SPDX-License-Identifier: MIT
// Package: airnet/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Seeding is explicit: WithSeed or WithRand.

package builder

import "math/rand/v2"

// BuilderOption customizes constructors by mutating a builderConfig before
// construction begins.
type BuilderOption func(*builderConfig)

// WithCityNames sets the generator of city names for synthetic networks
// (Star/Path/Complete/RandomSparse): idx -> name. Panics on nil.
func WithCityNames(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithCityNames(nil)")
	}
	return func(c *builderConfig) {
		c.nameFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a PCG-backed *rand.Rand with the given seed.
func WithSeed(seed uint64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithWeightFn overrides the (time, price) generator used by synthetic
// constructors. The function receives the (possibly nil) RNG. Panics on nil.
func WithWeightFn(fn func(*rand.Rand) (time, price float64)) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
