package flight

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/airnet/avl"
	"github.com/katalvlaran/airnet/core"
	"github.com/katalvlaran/airnet/seating"
)

// Flight is a registered, bookable instance of a leg.
type Flight struct {
	code         string
	leg          core.Leg
	aircraft     *seating.Aircraft
	reservations *avl.Tree[string, *Reservation]
}

// New creates an empty flight for leg. Origin, destination, base price,
// time and directness are copied from the leg; opts configure its aircraft.
func New(code string, leg core.Leg, opts ...seating.Option) *Flight {
	return &Flight{
		code:         NormalizeCode(code),
		leg:          leg,
		aircraft:     seating.NewAircraft(opts...),
		reservations: avl.New[string, *Reservation](),
	}
}

// Code returns the flight code.
func (f *Flight) Code() string { return f.code }

// Origin returns the departure city.
func (f *Flight) Origin() core.City { return f.leg.From }

// Destination returns the arrival city.
func (f *Flight) Destination() core.City { return f.leg.To }

// BasePrice returns the leg's base price.
func (f *Flight) BasePrice() float64 { return f.leg.Price }

// Time returns the leg's flight time in hours.
func (f *Flight) Time() float64 { return f.leg.Time }

// IsDirect reports whether the leg was registered as a direct route.
func (f *Flight) IsDirect() bool { return f.leg.Direct }

// Leg returns the leg the flight was created for.
func (f *Flight) Leg() core.Leg { return f.leg }

// Reserve assigns a seat and indexes a reservation under code at price.
//
// Errors:
//   - ErrDuplicateReservation if code is already indexed (no seat is taken).
//   - seating.ErrNoSeatAvailable if the aircraft is full.
func (f *Flight) Reserve(code string, price float64) (*Reservation, error) {
	if f.reservations.Contains(code) {
		return nil, fmt.Errorf("%w: %s on %s", ErrDuplicateReservation, code, f.code)
	}
	seat, err := f.aircraft.AssignSeat()
	if err != nil {
		return nil, fmt.Errorf("flight %s: %w", f.code, err)
	}

	r := &Reservation{
		code:        code,
		flightCode:  f.code,
		seat:        seat.Label(),
		origin:      f.leg.From,
		destination: f.leg.To,
		price:       price,
	}
	f.reservations.Insert(code, r)

	return r, nil
}

// Cancel removes the reservation and frees its seat.
func (f *Flight) Cancel(code string) (*Reservation, error) {
	r, ok := f.reservations.Get(code)
	if !ok {
		return nil, fmt.Errorf("%w: %s on %s", ErrReservationNotFound, code, f.code)
	}
	f.reservations.Delete(code)
	f.aircraft.ReleaseSeat(r.seat)

	return r, nil
}

// Reservation returns the reservation indexed under code.
func (f *Flight) Reservation(code string) (*Reservation, bool) {
	return f.reservations.Get(code)
}

// Reservations iterates live reservations in ascending code order.
func (f *Flight) Reservations() iter.Seq[*Reservation] {
	return func(yield func(*Reservation) bool) {
		for _, r := range f.reservations.All() {
			if !yield(r) {
				return
			}
		}
	}
}

// ReservationCount returns the number of live reservations.
func (f *Flight) ReservationCount() int { return f.reservations.Len() }

// OccupancyPercent returns the occupied share of seats, 0..100.
func (f *Flight) OccupancyPercent() float64 { return f.aircraft.OccupancyPercent() }

// SurchargeApplies reports whether occupancy has reached SurchargeThreshold.
func (f *Flight) SurchargeApplies() bool {
	return f.aircraft.OccupancyPercent() >= SurchargeThreshold
}

// IsSeatOccupied reports whether the seat labeled label is taken.
func (f *Flight) IsSeatOccupied(label string) bool { return f.aircraft.IsSeatOccupied(label) }

// IsFull reports whether every seat is taken.
func (f *Flight) IsFull() bool { return f.aircraft.IsFull() }

// Occupancy returns a snapshot of seat usage.
func (f *Flight) Occupancy() Occupancy {
	return Occupancy{
		Percent:          f.aircraft.OccupancyPercent(),
		Occupied:         f.aircraft.TotalOccupied(),
		Capacity:         f.aircraft.TotalCapacity(),
		Sections:         f.aircraft.OccupancyBySection(),
		SurchargeApplies: f.SurchargeApplies(),
	}
}

// String renders "VUELO-0001: A -> B (1.2h, $120000)".
func (f *Flight) String() string {
	return fmt.Sprintf("%s: %s -> %s (%.1fh, $%.0f)",
		f.code, f.leg.From, f.leg.To, f.leg.Time, f.leg.Price)
}
