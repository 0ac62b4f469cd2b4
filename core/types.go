// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: City, Leg, Graph declarations, sentinel errors and the NewGraph constructor.
// Concurrency:
//   - Graph.mu guards cities, order and adjacency.

package core

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Sentinel errors for route network operations.
var (
	// ErrEmptyCityName indicates that a city name is empty after trimming.
	ErrEmptyCityName = errors.New("core: city name is empty")

	// ErrCityNotFound indicates an operation referenced a city outside the network.
	ErrCityNotFound = errors.New("core: city not found")

	// ErrNegativeWeight indicates a leg time or price below zero (or NaN).
	ErrNegativeWeight = errors.New("core: negative leg weight")

	// ErrBrokenItinerary indicates that itinerary legs are not contiguous.
	ErrBrokenItinerary = errors.New("core: itinerary legs are not contiguous")
)

// CityNotFoundError reports an unresolved city name together with the
// display names the network does know, so a front end can offer them.
// It matches ErrCityNotFound under errors.Is.
type CityNotFoundError struct {
	// Name is the name as supplied by the caller.
	Name string

	// Known lists the display names of all cities, sorted.
	Known []string
}

// Error implements error.
func (e *CityNotFoundError) Error() string {
	return fmt.Sprintf("core: city not found: %q (known: %s)", e.Name, strings.Join(e.Known, ", "))
}

// Is reports whether target is ErrCityNotFound.
func (e *CityNotFoundError) Is(target error) bool { return target == ErrCityNotFound }

// City is a vertex of the route network.
//
// Two cities are the same city when their keys are equal; the display name
// is whatever spelling was used when the city was first created.
type City struct {
	name string
	key  string
}

// NewCity builds a City from a display name. The key is Normalize(name).
func NewCity(name string) City {
	trimmed := strings.TrimSpace(name)

	return City{name: trimmed, key: Normalize(trimmed)}
}

// Name returns the display name.
func (c City) Name() string { return c.name }

// Key returns the normalized identity used for lookups and equality.
func (c City) Key() string { return c.key }

// IsZero reports whether c is the zero City.
func (c City) IsZero() bool { return c.key == "" }

// Equal reports whether c and o denote the same city.
func (c City) Equal(o City) bool { return c.key == o.key }

// String returns the display name.
func (c City) String() string { return c.name }

// Leg is a directed, weighted edge between two cities.
type Leg struct {
	// From is the origin city.
	From City

	// To is the destination city.
	To City

	// Time is the flight time in hours (≥ 0).
	Time float64

	// Price is the base price of a seat on this leg (≥ 0).
	Price float64

	// Direct marks a leg offered as a non-stop route of its own.
	Direct bool
}

// String renders the leg the way receipts and route listings show it.
func (l Leg) String() string {
	return fmt.Sprintf("%s -> %s (%.1fh, $%.2f)", l.From, l.To, l.Time, l.Price)
}

// Graph is the route network: a directed multigraph of cities and legs.
//
// cities maps a city key to its City; order keeps first-insertion order of
// keys; adjacency maps an origin key to its outgoing legs in insertion order.
type Graph struct {
	mu sync.RWMutex

	cities    map[string]City
	order     []string
	adjacency map[string][]Leg
	legCount  int
}

// NewGraph creates an empty route network.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		cities:    make(map[string]City),
		adjacency: make(map[string][]Leg),
	}
}

// knownNamesLocked returns all display names sorted. Caller holds g.mu.
func (g *Graph) knownNamesLocked() []string {
	names := make([]string, 0, len(g.order))
	for _, k := range g.order {
		names = append(names, g.cities[k].name)
	}
	sort.Strings(names)

	return names
}
