package airline

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/airnet/core"
	"github.com/katalvlaran/airnet/dijkstra"
	"github.com/katalvlaran/airnet/flight"
)

// Route returns the fastest itinerary between two cities named in free
// text, breaking ties on price.
//
// Errors:
//   - core.ErrCityNotFound (as *core.CityNotFoundError) for an unknown name.
//   - ErrNoRouteExists if the destination is unreachable.
func (r *Registry) Route(origin, destination string) (*core.Itinerary, error) {
	from, to, err := r.resolve(origin, destination)
	if err != nil {
		return nil, err
	}

	return r.search(from, to)
}

func (r *Registry) search(from, to core.City) (*core.Itinerary, error) {
	it, err := dijkstra.ShortestItinerary(r.graph, from, to)
	if errors.Is(err, dijkstra.ErrNoPath) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrNoRouteExists, from, to)
	}

	return it, err
}

// RegisterRoute creates one new flight per leg of it, even for legs that
// already have flights, unless every leg is already covered, in which case
// it returns ErrRouteAlreadyRegistered and creates nothing.
func (r *Registry) RegisterRoute(it *core.Itinerary) ([]*flight.Flight, error) {
	if it == nil || len(it.Legs()) == 0 {
		return nil, ErrEmptyItinerary
	}
	legs := it.Legs()

	r.mu.Lock()
	defer r.mu.Unlock()

	covered := true
	for _, leg := range legs {
		if len(r.byLeg[keyOf(leg.From, leg.To)]) == 0 {
			covered = false
			break
		}
	}
	if covered {
		r.logger.Warn("route registration rejected",
			slog.String("origin", it.Origin().Name()),
			slog.String("destination", it.Destination().Name()),
		)
		return nil, fmt.Errorf("%w: %s -> %s", ErrRouteAlreadyRegistered, it.Origin(), it.Destination())
	}

	created := make([]*flight.Flight, 0, len(legs))
	for _, leg := range legs {
		created = append(created, r.createFlightLocked(leg))
	}

	return created, nil
}

// RegisterRouteBetween finds the fastest itinerary between two cities and
// registers it with RegisterRoute.
func (r *Registry) RegisterRouteBetween(origin, destination string) ([]*flight.Flight, error) {
	it, err := r.Route(origin, destination)
	if err != nil {
		return nil, err
	}

	return r.RegisterRoute(it)
}
