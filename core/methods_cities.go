// SPDX-License-Identifier: MIT
//
// File: methods_cities.go
// Role: City lifecycle & queries.
//
// Determinism:
//   - Cities() returns cities in first-insertion order; connected components
//     and any "for every city" loop inherit this order.
//
// Concurrency:
//   - Mutations under g.mu write lock, queries under read lock.

package core

// AddCity inserts c if it is not already present (idempotent).
//
// Behavior highlights:
//   - The first spelling wins: adding "cordoba" after "Córdoba" keeps "Córdoba".
//   - A zero City (empty name) is ignored.
//
// Complexity: O(1) amortized.
func (g *Graph) AddCity(c City) {
	if c.IsZero() {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addCityLocked(c)
}

// addCityLocked registers c and its adjacency bucket. Caller holds g.mu.
// Returns the stored City, which may carry an earlier spelling.
func (g *Graph) addCityLocked(c City) City {
	if existing, ok := g.cities[c.key]; ok {
		return existing
	}
	g.cities[c.key] = c
	g.order = append(g.order, c.key)
	g.adjacency[c.key] = nil

	return c
}

// HasCity reports whether c is part of the network.
// Complexity: O(1)
func (g *Graph) HasCity(c City) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.cities[c.key]

	return ok
}

// Lookup resolves free-text input to a city of the network.
//
// The name is normalized (see Normalize) before comparison, so case,
// accents and surrounding whitespace do not matter. On a miss the returned
// error is a *CityNotFoundError listing the known display names.
//
// Errors:
//   - ErrEmptyCityName if name is blank.
//   - *CityNotFoundError (matches ErrCityNotFound) if the city is unknown.
//
// Complexity: O(len(name)) on hit, O(V log V) on miss.
func (g *Graph) Lookup(name string) (City, error) {
	key := Normalize(name)
	if key == "" {
		return City{}, ErrEmptyCityName
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if c, ok := g.cities[key]; ok {
		return c, nil
	}

	return City{}, &CityNotFoundError{Name: name, Known: g.knownNamesLocked()}
}

// Cities returns every city in first-insertion order.
// Complexity: O(V)
func (g *Graph) Cities() []City {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]City, 0, len(g.order))
	for _, k := range g.order {
		out = append(out, g.cities[k])
	}

	return out
}

// CityNames returns the display names of all cities, sorted.
// Complexity: O(V log V)
func (g *Graph) CityNames() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.knownNamesLocked()
}

// CityCount returns |V|.
func (g *Graph) CityCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}
