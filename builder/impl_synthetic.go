// SPDX-License-Identifier: MIT
// Package: airnet/builder
//
// impl_synthetic.go - Star, Path and Complete constructors.
//
// Contract:
//   - Cities are named by cfg.nameFn in ascending index order.
//   - Leg weights come from cfg.weightFn(cfg.rng), drawn once per leg or
//     route in emission order.
//   - Return only sentinel errors; never panic at runtime.

package builder

import (
	"fmt"

	"github.com/katalvlaran/airnet/core"
)

const (
	methodStar     = "Star"
	methodPath     = "Path"
	methodComplete = "Complete"

	minStarCities     = 2
	minPathCities     = 2
	minCompleteCities = 1
)

// addCities inserts n cities named by cfg.nameFn and returns them.
func addCities(g *core.Graph, cfg builderConfig, n int) []core.City {
	out := make([]core.City, n)
	for i := range out {
		out[i] = core.NewCity(cfg.nameFn(i))
		g.AddCity(out[i])
	}

	return out
}

// Star returns a Constructor for a hub (index 0) with direct one-way legs
// to n-1 leaves, emitted in leaf order.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarCities {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarCities, ErrTooFewCities)
		}
		cs := addCities(g, cfg, n)
		for i := 1; i < n; i++ {
			t, p := cfg.weightFn(cfg.rng)
			if err := g.AddEdge(cs[0], cs[i], t, p, true); err != nil {
				return fmt.Errorf("%s: AddEdge(%s->%s): %w", methodStar, cs[0], cs[i], err)
			}
		}

		return nil
	}
}

// Path returns a Constructor for a chain of two-way routes 0-1-…-(n-1).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathCities {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathCities, ErrTooFewCities)
		}
		cs := addCities(g, cfg, n)
		for i := 0; i+1 < n; i++ {
			t, p := cfg.weightFn(cfg.rng)
			if err := g.AddBidirectionalEdge(cs[i], cs[i+1], t, p); err != nil {
				return fmt.Errorf("%s: AddBidirectionalEdge(%s,%s): %w", methodPath, cs[i], cs[i+1], err)
			}
		}

		return nil
	}
}

// Complete returns a Constructor with a two-way route between every pair
// {i,j}, i<j, emitted in (i asc, j asc) order.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteCities {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteCities, ErrTooFewCities)
		}
		cs := addCities(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				t, p := cfg.weightFn(cfg.rng)
				if err := g.AddBidirectionalEdge(cs[i], cs[j], t, p); err != nil {
					return fmt.Errorf("%s: AddBidirectionalEdge(%s,%s): %w", methodComplete, cs[i], cs[j], err)
				}
			}
		}

		return nil
	}
}
