// SPDX-License-Identifier: MIT
//
// File: methods_legs.go
// Role: Leg lifecycle & queries: AddEdge/AddBidirectionalEdge/Legs/HasLeg/LegCount.
// Determinism:
//   - Legs(c) returns outgoing legs in insertion order.
// Concurrency:
//   - Mutations under g.mu write lock, queries under read lock.

package core

import (
	"fmt"
	"math"
)

// AddEdge appends a directed leg from→to to the origin's adjacency list.
//
// Steps:
//  1. Validate the endpoints and weights.
//  2. Lock g.mu and ensure both cities exist (implicit AddCity).
//  3. Append the leg, rewriting its endpoints to the stored cities so the
//     display spelling is consistent across the network.
//
// Parallel legs are kept: calling AddEdge twice with the same pair yields two legs.
//
// Errors:
//   - ErrEmptyCityName if either endpoint is the zero City.
//   - ErrNegativeWeight if time or price is negative or NaN.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to City, time, price float64, direct bool) error {
	// 1) Input validation
	if from.IsZero() || to.IsZero() {
		return ErrEmptyCityName
	}
	if err := checkWeight("time", time); err != nil {
		return fmt.Errorf("%w: leg %s→%s", err, from, to)
	}
	if err := checkWeight("price", price); err != nil {
		return fmt.Errorf("%w: leg %s→%s", err, from, to)
	}

	// 2) Insert under lock
	g.mu.Lock()
	defer g.mu.Unlock()

	src := g.addCityLocked(from)
	dst := g.addCityLocked(to)
	g.adjacency[src.key] = append(g.adjacency[src.key], Leg{
		From:   src,
		To:     dst,
		Time:   time,
		Price:  price,
		Direct: direct,
	})
	g.legCount++

	return nil
}

// AddBidirectionalEdge inserts a→b and b→a with identical time and price.
// Both legs are marked non-direct.
//
// Complexity: O(1) amortized.
func (g *Graph) AddBidirectionalEdge(a, b City, time, price float64) error {
	if err := g.AddEdge(a, b, time, price, false); err != nil {
		return err
	}

	return g.AddEdge(b, a, time, price, false)
}

// Legs returns a copy of the outgoing legs of c, in insertion order.
// Returns nil if c has no outgoing legs or is not in the network.
//
// Complexity: O(deg(c))
func (g *Graph) Legs(c City) []Leg {
	g.mu.RLock()
	defer g.mu.RUnlock()

	legs := g.adjacency[c.key]
	if len(legs) == 0 {
		return nil
	}
	out := make([]Leg, len(legs))
	copy(out, legs)

	return out
}

// HasLeg reports whether at least one leg from→to exists.
// Complexity: O(deg(from))
func (g *Graph) HasLeg(from, to City) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, l := range g.adjacency[from.key] {
		if l.To.key == to.key {
			return true
		}
	}

	return false
}

// LegCount returns |E|, counting parallel legs separately.
func (g *Graph) LegCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.legCount
}

// checkWeight rejects negative and NaN weights.
func checkWeight(name string, w float64) error {
	if math.IsNaN(w) || w < 0 {
		return fmt.Errorf("%w: %s=%g", ErrNegativeWeight, name, w)
	}

	return nil
}
