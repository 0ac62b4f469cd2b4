package airline

import (
	"errors"

	"github.com/katalvlaran/airnet/core"
	"github.com/katalvlaran/airnet/flight"
)

// Pricing factors.
const (
	// OccupancySurcharge multiplies a leg's base price when its flight was
	// at or above flight.SurchargeThreshold before the seat was assigned.
	OccupancySurcharge = 1.10

	// DirectSurcharge multiplies the reservation of a single-leg itinerary.
	DirectSurcharge = 1.20
)

// Sentinel errors.
var (
	// ErrNilGraph is returned by NewRegistry for a nil graph.
	ErrNilGraph = errors.New("airline: graph is nil")

	// ErrNoRouteExists is returned when no itinerary connects two cities.
	ErrNoRouteExists = errors.New("airline: no route exists")

	// ErrEmptyItinerary is returned for an itinerary without legs, such as
	// one whose origin and destination coincide.
	ErrEmptyItinerary = errors.New("airline: itinerary has no legs")

	// ErrRouteAlreadyRegistered is returned by RegisterRoute when every leg
	// of the itinerary already has a flight.
	ErrRouteAlreadyRegistered = errors.New("airline: route already fully registered")

	// ErrNoSeatAvailable is returned when a leg of a booking has no free seat.
	ErrNoSeatAvailable = errors.New("airline: no seat available")

	// ErrReservationNotFound is returned by Cancel for an unknown code.
	ErrReservationNotFound = errors.New("airline: reservation not found")

	// ErrFlightNotFound is returned by Flight for an unknown code.
	ErrFlightNotFound = errors.New("airline: flight not found")
)

// LegReceipt describes one reservation of a booking.
type LegReceipt struct {
	Reservation *flight.Reservation
	// OccupancyBefore is the flight's occupancy percent read before the
	// seat was assigned.
	OccupancyBefore float64
	// OccupancySurcharge reports whether the ×1.10 factor was applied.
	OccupancySurcharge bool
}

// Booking is the receipt of a successful Book call.
type Booking struct {
	Itinerary *core.Itinerary
	Legs      []LegReceipt
	// DirectSurcharge reports whether the ×1.20 factor was applied.
	DirectSurcharge bool
}

// Reservations returns the reservations in leg order.
func (b *Booking) Reservations() []*flight.Reservation {
	out := make([]*flight.Reservation, len(b.Legs))
	for i, l := range b.Legs {
		out[i] = l.Reservation
	}

	return out
}

// Codes returns the reservation codes in leg order.
func (b *Booking) Codes() []string {
	out := make([]string, len(b.Legs))
	for i, l := range b.Legs {
		out[i] = l.Reservation.Code()
	}

	return out
}

// Total returns the sum of final prices.
func (b *Booking) Total() float64 {
	var sum float64
	for _, l := range b.Legs {
		sum += l.Reservation.Price()
	}

	return sum
}

// QuoteLeg is the price of one leg in a Quote.
type QuoteLeg struct {
	Leg core.Leg
	// Flight is the code of the flight that would serve the leg, or ""
	// if a new flight would be created.
	Flight             string
	Price              float64
	OccupancySurcharge bool
}

// Quote prices an itinerary without booking it.
type Quote struct {
	Itinerary       *core.Itinerary
	Legs            []QuoteLeg
	DirectSurcharge bool
	Total           float64
}

// legKey identifies an ordered city pair.
type legKey struct {
	from, to string
}

func keyOf(from, to core.City) legKey {
	return legKey{from: from.Key(), to: to.Key()}
}
