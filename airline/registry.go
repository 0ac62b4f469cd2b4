// SPDX-License-Identifier: MIT
//
// File: registry.go
// Role: Registry construction, flight lookups and the locked helpers shared
// by booking and route registration.
// Concurrency:
//   - Registry.mu guards flights, order, byLeg and both code counters.

package airline

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/katalvlaran/airnet/core"
	"github.com/katalvlaran/airnet/flight"
	"github.com/katalvlaran/airnet/seating"
)

// Registry owns the route network, its flights and their reservations.
type Registry struct {
	mu sync.Mutex

	graph   *core.Graph
	flights map[string]*flight.Flight // code → flight
	order   []*flight.Flight          // creation order
	byLeg   map[legKey][]*flight.Flight

	nextFlight      int
	nextReservation int

	seating []seating.Option
	logger  *slog.Logger
	metrics *Metrics
}

// NewRegistry creates a registry over g with no flights.
// Returns ErrNilGraph if g is nil. Panics if the metrics collectors cannot
// be registered (see NewMetrics).
func NewRegistry(g *core.Graph, opts ...Option) (*Registry, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Registry{
		graph:           g,
		flights:         make(map[string]*flight.Flight),
		byLeg:           make(map[legKey][]*flight.Flight),
		nextFlight:      1,
		nextReservation: 1,
		seating:         o.seating,
		logger:          o.logger,
		metrics:         NewMetrics(o.registry),
	}, nil
}

// Graph returns the route network.
func (r *Registry) Graph() *core.Graph { return r.graph }

// Metrics returns the registry's collectors.
func (r *Registry) Metrics() *Metrics { return r.metrics }

// Flight returns the flight with the given code. The code is trimmed and
// upper-cased first.
func (r *Registry) Flight(code string) (*flight.Flight, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.flights[flight.NormalizeCode(code)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFlightNotFound, code)
	}

	return f, nil
}

// Flights returns every flight sorted by code.
func (r *Registry) Flights() []*flight.Flight {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := slices.Clone(r.order)
	slices.SortFunc(out, func(a, b *flight.Flight) int { return cmp.Compare(a.Code(), b.Code()) })

	return out
}

// FlightsFor returns the flights registered for the ordered pair
// origin → destination, oldest first.
func (r *Registry) FlightsFor(origin, destination string) ([]*flight.Flight, error) {
	from, to, err := r.resolve(origin, destination)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.byLeg[keyOf(from, to)]), nil
}

// Reservation finds a live reservation by code on any flight.
func (r *Registry) Reservation(code string) (*flight.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, res := r.findLocked(flight.NormalizeCode(code))
	if res == nil {
		return nil, fmt.Errorf("%w: %q", ErrReservationNotFound, code)
	}

	return res, nil
}

// resolve maps free-text city names to stored cities.
func (r *Registry) resolve(origin, destination string) (core.City, core.City, error) {
	from, err := r.graph.Lookup(origin)
	if err != nil {
		return core.City{}, core.City{}, fmt.Errorf("airline: origin: %w", err)
	}
	to, err := r.graph.Lookup(destination)
	if err != nil {
		return core.City{}, core.City{}, fmt.Errorf("airline: destination: %w", err)
	}

	return from, to, nil
}

// createFlightLocked registers a new flight for leg.
func (r *Registry) createFlightLocked(leg core.Leg) *flight.Flight {
	f := flight.New(flight.FormatCode(r.nextFlight), leg, r.seating...)
	r.nextFlight++

	r.flights[f.Code()] = f
	r.order = append(r.order, f)
	k := keyOf(leg.From, leg.To)
	r.byLeg[k] = append(r.byLeg[k], f)

	r.metrics.FlightsCreatedTotal.Inc()
	r.logger.Info("flight created",
		slog.String("code", f.Code()),
		slog.String("origin", leg.From.Name()),
		slog.String("destination", leg.To.Name()),
	)

	return f
}

// flightForLocked returns the first flight for leg's ordered pair,
// creating one if none exists.
func (r *Registry) flightForLocked(leg core.Leg) *flight.Flight {
	if fs := r.byLeg[keyOf(leg.From, leg.To)]; len(fs) > 0 {
		return fs[0]
	}

	return r.createFlightLocked(leg)
}

// findLocked scans flights in creation order for a reservation code.
func (r *Registry) findLocked(code string) (*flight.Flight, *flight.Reservation) {
	for _, f := range r.order {
		if res, ok := f.Reservation(code); ok {
			return f, res
		}
	}

	return nil, nil
}
