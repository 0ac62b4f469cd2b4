package airline

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/airnet/flight"
	"github.com/katalvlaran/airnet/seating"
)

// Book reserves one seat on every leg of the fastest itinerary between
// two cities and returns the priced receipt. The booking is all or
// nothing: on ErrNoSeatAvailable no reservation made by this call
// survives and every touched flight is back to its prior occupancy.
// Flights created while resolving legs are kept.
//
// Errors:
//   - core.ErrCityNotFound for an unknown city name.
//   - ErrNoRouteExists if no itinerary exists.
//   - ErrEmptyItinerary if origin and destination are the same city.
//   - ErrNoSeatAvailable if some leg's flight is full.
func (r *Registry) Book(origin, destination string) (*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, err := r.bookLocked(origin, destination)
	r.metrics.BookingsTotal.WithLabelValues(outcomeOf(err)).Inc()
	if err != nil {
		r.logger.Info("booking failed",
			slog.String("origin", origin),
			slog.String("destination", destination),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	r.logger.Info("booking completed",
		slog.Any("reservations", b.Codes()),
		slog.Float64("total", b.Total()),
	)

	return b, nil
}

func (r *Registry) bookLocked(origin, destination string) (*Booking, error) {
	// 1. Itinerary
	from, to, err := r.resolve(origin, destination)
	if err != nil {
		return nil, err
	}
	it, err := r.search(from, to)
	if err != nil {
		return nil, err
	}
	legs := it.Legs()
	if len(legs) == 0 {
		return nil, fmt.Errorf("%w: %s -> %s", ErrEmptyItinerary, from, to)
	}

	// 2. One flight per leg
	flights := make([]*flight.Flight, len(legs))
	for i, leg := range legs {
		flights[i] = r.flightForLocked(leg)
	}

	// 3-4. Seats and prices, leg by leg
	b := &Booking{Itinerary: it, Legs: make([]LegReceipt, 0, len(flights))}
	for _, f := range flights {
		before := f.OccupancyPercent()
		surcharge := before >= flight.SurchargeThreshold
		price := f.BasePrice()
		if surcharge {
			price *= OccupancySurcharge
		}

		res, err := f.Reserve(flight.FormatReservationCode(r.nextReservation), price)
		if err != nil {
			r.rollbackLocked(b, "no seat available")
			if errors.Is(err, seating.ErrNoSeatAvailable) {
				return nil, fmt.Errorf("%w: %w", ErrNoSeatAvailable, err)
			}
			return nil, err
		}
		r.nextReservation++
		r.metrics.SeatsOccupied.Inc()

		b.Legs = append(b.Legs, LegReceipt{
			Reservation:        res,
			OccupancyBefore:    before,
			OccupancySurcharge: surcharge,
		})
	}

	// 5. Direct premium, after the occupancy factor
	if it.IsDirect() {
		if err := r.applyDirectLocked(b, DirectSurcharge); err != nil {
			return nil, err
		}
	}
	r.countSurcharges(b)

	return b, nil
}

// applyDirectLocked scales the only leg of a direct booking by factor.
// A failed adjustment rolls the booking back.
func (r *Registry) applyDirectLocked(b *Booking, factor float64) error {
	if err := b.Legs[0].Reservation.AdjustPrice(factor); err != nil {
		r.rollbackLocked(b, "price adjustment failed")
		return err
	}
	b.DirectSurcharge = true

	return nil
}

// rollbackLocked cancels every reservation already made for b.
func (r *Registry) rollbackLocked(b *Booking, reason string) {
	for _, l := range b.Legs {
		f := r.flights[l.Reservation.FlightCode()]
		if _, err := f.Cancel(l.Reservation.Code()); err == nil {
			r.metrics.SeatsOccupied.Dec()
		}
	}
	r.metrics.RollbacksTotal.Inc()
	r.metrics.CompensatedTotal.Add(float64(len(b.Legs)))
	r.logger.Warn("booking rolled back",
		slog.String("reason", reason),
		slog.Int("compensated", len(b.Legs)),
	)
}

func (r *Registry) countSurcharges(b *Booking) {
	for _, l := range b.Legs {
		if l.OccupancySurcharge {
			r.metrics.SurchargesTotal.WithLabelValues("occupancy").Inc()
		}
	}
	if b.DirectSurcharge {
		r.metrics.SurchargesTotal.WithLabelValues("direct").Inc()
	}
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeBooked
	case errors.Is(err, ErrNoRouteExists):
		return outcomeNoRoute
	case errors.Is(err, ErrNoSeatAvailable):
		return outcomeNoSeat
	default:
		return outcomeInvalid
	}
}

// Cancel removes the reservation with the given code from whichever flight
// holds it and frees its seat. The code is trimmed and upper-cased first.
func (r *Registry) Cancel(code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, res := r.findLocked(flight.NormalizeCode(code))
	if res == nil {
		r.metrics.CancellationsTotal.WithLabelValues("not_found").Inc()
		return fmt.Errorf("%w: %q", ErrReservationNotFound, code)
	}
	if _, err := f.Cancel(res.Code()); err != nil {
		return err
	}

	r.metrics.CancellationsTotal.WithLabelValues("cancelled").Inc()
	r.metrics.SeatsOccupied.Dec()
	r.logger.Info("reservation cancelled",
		slog.String("code", res.Code()),
		slog.String("flight", f.Code()),
		slog.String("seat", res.Seat()),
	)

	return nil
}

// Quote prices the fastest itinerary between two cities as Book would
// price it now, without reserving seats or creating flights. Legs without
// a flight quote the leg's base price.
func (r *Registry) Quote(origin, destination string) (*Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	from, to, err := r.resolve(origin, destination)
	if err != nil {
		return nil, err
	}
	it, err := r.search(from, to)
	if err != nil {
		return nil, err
	}

	q := &Quote{Itinerary: it, DirectSurcharge: it.IsDirect()}
	for _, leg := range it.Legs() {
		ql := QuoteLeg{Leg: leg, Price: leg.Price}
		if fs := r.byLeg[keyOf(leg.From, leg.To)]; len(fs) > 0 {
			f := fs[0]
			ql.Flight = f.Code()
			ql.Price = f.BasePrice()
			if f.SurchargeApplies() {
				ql.OccupancySurcharge = true
				ql.Price *= OccupancySurcharge
			}
		}
		q.Legs = append(q.Legs, ql)
		q.Total += ql.Price
	}
	if q.DirectSurcharge {
		q.Total *= DirectSurcharge
	}

	return q, nil
}

