package airline

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "airnet"

// Booking outcomes used as the "outcome" label.
const (
	outcomeBooked  = "booked"
	outcomeNoRoute = "no_route"
	outcomeNoSeat  = "no_seat"
	outcomeInvalid = "invalid"
)

// Metrics holds the Prometheus collectors of a Registry.
type Metrics struct {
	// BookingsTotal counts Book calls.
	// Labels: outcome (booked, no_route, no_seat, invalid)
	BookingsTotal *prometheus.CounterVec

	// RollbacksTotal counts bookings undone after a seat or pricing failure.
	RollbacksTotal prometheus.Counter

	// CompensatedTotal counts reservations cancelled by rollbacks.
	CompensatedTotal prometheus.Counter

	// CancellationsTotal counts Cancel calls.
	// Labels: outcome (cancelled, not_found)
	CancellationsTotal *prometheus.CounterVec

	// FlightsCreatedTotal counts flights created by Book and RegisterRoute.
	FlightsCreatedTotal prometheus.Counter

	// SeatsOccupied is the number of occupied seats across all flights.
	SeatsOccupied prometheus.Gauge

	// SurchargesTotal counts applied surcharges.
	// Labels: kind (occupancy, direct)
	SurchargesTotal *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
// Panics if reg already holds collectors with the same names.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		BookingsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "bookings_total",
			Help:      "Booking attempts by outcome",
		}, []string{"outcome"}),
		RollbacksTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "booking_rollbacks_total",
			Help:      "Bookings rolled back after a seat failure",
		}),
		CompensatedTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "compensated_reservations_total",
			Help:      "Reservations cancelled by booking rollbacks",
		}),
		CancellationsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "cancellations_total",
			Help:      "Cancellation requests by outcome",
		}, []string{"outcome"}),
		FlightsCreatedTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "flights_created_total",
			Help:      "Flights created",
		}),
		SeatsOccupied: f.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "seats_occupied",
			Help:      "Occupied seats across all flights",
		}),
		SurchargesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "surcharges_total",
			Help:      "Surcharges applied by kind",
		}, []string{"kind"}),
	}
}
