// SPDX-License-Identifier: MIT
// Package: airnet/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w; sentinels carry no parameters.

package builder

import "errors"

// ErrTooFewCities indicates that a size parameter is below the minimum of
// the requested constructor.
var ErrTooFewCities = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG (see WithSeed / WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a constructor could not complete, e.g. a nil
// constructor passed to BuildNetwork.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrBadNetworkSpec indicates an unreadable or inconsistent network spec.
var ErrBadNetworkSpec = errors.New("builder: bad network spec")
