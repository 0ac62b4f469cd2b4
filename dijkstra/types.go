package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by ShortestItinerary.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrCityNotFound indicates that origin or destination is not in the graph.
	ErrCityNotFound = errors.New("dijkstra: city not found in graph")

	// ErrNoPath indicates that the destination cannot be reached from the origin.
	ErrNoPath = errors.New("dijkstra: no path between cities")

	// ErrBadMaxTime indicates that MaxTime was set to a negative value.
	ErrBadMaxTime = errors.New("dijkstra: MaxTime must be non-negative")
)

// Options configures the search.
//
// MaxTime is the cumulative flight time beyond which labels are not created.
//
//	Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	MaxTime float64
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// WithMaxTime caps the cumulative time of any itinerary considered.
// Panics on a negative or NaN value.
func WithMaxTime(h float64) Option {
	if h < 0 || math.IsNaN(h) {
		panic(ErrBadMaxTime.Error())
	}

	return func(o *Options) {
		o.MaxTime = h
	}
}

// DefaultOptions returns Options with no time cap.
func DefaultOptions() Options {
	return Options{MaxTime: math.Inf(1)}
}
