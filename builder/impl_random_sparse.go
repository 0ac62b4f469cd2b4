// SPDX-License-Identifier: MIT
// Package: airnet/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p).
//
// Model: every ordered pair (i,j), i≠j, independently receives one
// non-direct leg with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewCities).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity: O(n²) Bernoulli trials.
//
// Determinism: trials run in (i asc, j asc) order, so a fixed seed yields
// the same network.

package builder

import (
	"fmt"

	"github.com/katalvlaran/airnet/core"
)

const (
	methodRandomSparse    = "RandomSparse"
	minRandomSparseCities = 1
	probMin               = 0.0
	probMax               = 1.0
)

// RandomSparse returns a Constructor that samples a directed network over
// n cities with independent leg probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early.
		if n < minRandomSparseCities {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseCities, ErrTooFewCities)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Cities in index order.
		cs := addCities(g, cfg, n)

		// 3) Bernoulli trial per ordered pair.
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				var keep bool
				switch {
				case cfg.rng == nil:
					keep = p == probMax
				default:
					keep = cfg.rng.Float64() < p || p == probMax
				}
				if !keep {
					continue
				}
				t, pr := cfg.weightFn(cfg.rng)
				if err := g.AddEdge(cs[i], cs[j], t, pr, false); err != nil {
					return fmt.Errorf("%s: AddEdge(%s->%s): %w", methodRandomSparse, cs[i], cs[j], err)
				}
			}
		}

		return nil
	}
}
