// SPDX-License-Identifier: MIT

// Package core provides the in-memory route network of the airline: cities,
// timed and priced legs between them, and the itineraries produced by search.
//
// The network G = (V,E) is a directed multigraph:
//
//   - Vertices are cities. A City is identified by its normalized name
//     (diacritics and case stripped), while the original spelling is kept
//     for display. "Córdoba", "cordoba" and " CORDOBA " are the same city.
//   - Edges are legs. A Leg carries a non-negative flight time, a
//     non-negative base price and a Direct flag. Parallel legs between the
//     same ordered pair are allowed.
//   - Adjacency is an ordered list per origin, so traversal order is the
//     insertion order of legs, and Cities() returns cities in the order they
//     were first added.
//
// Core methods:
//
//	// City lifecycle
//	AddCity(c City)                       // O(1), idempotent
//	HasCity(c City) bool                  // O(1)
//	Lookup(name string) (City, error)     // O(1), *CityNotFoundError on miss
//	Cities() []City                       // O(V), insertion order
//
//	// Leg lifecycle
//	AddEdge(from, to City, time, price float64, direct bool) error       // O(1)†
//	AddBidirectionalEdge(a, b City, time, price float64) error          // O(1)†
//	Legs(c City) []Leg                    // O(deg(c)), copy
//
// † amortized.
//
// Concurrency:
//
// All Graph methods are safe for concurrent use. Mutations take the write
// lock; queries take the read lock and return copies, so algorithms in the
// bfs, dfs and dijkstra packages never observe a half-applied mutation.
//
// Errors:
//
//	ErrEmptyCityName   - city name is empty after trimming.
//	ErrCityNotFound    - a city is not part of the network.
//	ErrNegativeWeight  - leg time or price is negative or NaN.
//	ErrBrokenItinerary - itinerary legs do not chain city i to city i+1.
package core
