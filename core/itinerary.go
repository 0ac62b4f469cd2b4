// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"strings"
)

// Itinerary is an immutable path through the network: cities c0..cn and
// legs l0..l(n-1) where leg i goes from city i to city i+1.
//
// A single-city itinerary (origin == destination) has no legs. An itinerary
// is direct iff it has exactly one leg.
type Itinerary struct {
	cities []City
	legs   []Leg
	time   float64
	price  float64
}

// NewItinerary validates contiguity and computes the aggregate time and price.
//
// Errors:
//   - ErrBrokenItinerary if cities is empty, len(legs) != len(cities)-1, or
//     some leg does not connect city i to city i+1.
func NewItinerary(cities []City, legs []Leg) (*Itinerary, error) {
	if len(cities) == 0 {
		return nil, fmt.Errorf("%w: no cities", ErrBrokenItinerary)
	}
	if len(legs) != len(cities)-1 {
		return nil, fmt.Errorf("%w: %d cities but %d legs", ErrBrokenItinerary, len(cities), len(legs))
	}

	it := &Itinerary{
		cities: make([]City, len(cities)),
		legs:   make([]Leg, len(legs)),
	}
	copy(it.cities, cities)
	copy(it.legs, legs)

	for i, l := range legs {
		if !l.From.Equal(cities[i]) || !l.To.Equal(cities[i+1]) {
			return nil, fmt.Errorf("%w: leg %d is %s→%s, want %s→%s",
				ErrBrokenItinerary, i, l.From, l.To, cities[i], cities[i+1])
		}
		it.time += l.Time
		it.price += l.Price
	}

	return it, nil
}

// Cities returns a copy of the ordered cities.
func (it *Itinerary) Cities() []City {
	out := make([]City, len(it.cities))
	copy(out, it.cities)

	return out
}

// Legs returns a copy of the ordered legs.
func (it *Itinerary) Legs() []Leg {
	out := make([]Leg, len(it.legs))
	copy(out, it.legs)

	return out
}

// Origin returns the first city.
func (it *Itinerary) Origin() City { return it.cities[0] }

// Destination returns the last city.
func (it *Itinerary) Destination() City { return it.cities[len(it.cities)-1] }

// TotalTime is the sum of leg times.
func (it *Itinerary) TotalTime() float64 { return it.time }

// TotalPrice is the sum of leg base prices.
func (it *Itinerary) TotalPrice() float64 { return it.price }

// IsDirect reports whether the itinerary is exactly one leg.
func (it *Itinerary) IsDirect() bool { return len(it.legs) == 1 }

// String renders "A -> B (1.0h, $100.00) -> C (...)".
func (it *Itinerary) String() string {
	var sb strings.Builder
	sb.WriteString(it.cities[0].String())
	for _, l := range it.legs {
		fmt.Fprintf(&sb, " -> %s (%.1fh, $%.2f)", l.To, l.Time, l.Price)
	}

	return sb.String()
}
