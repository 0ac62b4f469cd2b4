// SPDX-License-Identifier: MIT
// Package: airnet/builder
//
// api.go - public entry-points for the builder package.

package builder

import (
	"fmt"

	"github.com/katalvlaran/airnet/core"
)

// Constructor applies a deterministic network mutation using the resolved
// builderConfig. Constructors validate parameters early, return sentinel
// errors and never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildNetwork creates a new core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order. Any constructor error
// is wrapped with the context "BuildNetwork: %w" and returned immediately.
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildNetwork(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildNetwork: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildNetwork: %w", err)
		}
	}

	return g, nil
}

// DefaultNetwork returns the Argentina network.
func DefaultNetwork() *core.Graph {
	g, err := BuildNetwork(nil, Argentina())
	if err != nil {
		// Static data; only a programming error can get here.
		panic(err)
	}

	return g
}
