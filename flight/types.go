package flight

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/airnet/core"
	"github.com/katalvlaran/airnet/seating"
)

// Identifier formats.
const (
	codeFormat            = "VUELO-%04d"
	reservationCodeFormat = "RES-%06d"
)

// SurchargeThreshold is the occupancy percent at or above which a flight
// charges the occupancy surcharge.
const SurchargeThreshold = 95.0

// Sentinel errors.
var (
	// ErrDuplicateReservation is returned when a reservation code is already indexed.
	ErrDuplicateReservation = errors.New("flight: duplicate reservation code")

	// ErrReservationNotFound is returned when no reservation has the given code.
	ErrReservationNotFound = errors.New("flight: reservation not found")

	// ErrAlreadyAdjusted is returned on a second price adjustment.
	ErrAlreadyAdjusted = errors.New("flight: reservation price already adjusted")

	// ErrBadFactor is returned for a negative or NaN price factor.
	ErrBadFactor = errors.New("flight: price factor must be non-negative")
)

// FormatCode renders the n-th flight code, e.g. "VUELO-0007".
func FormatCode(n int) string { return fmt.Sprintf(codeFormat, n) }

// FormatReservationCode renders the n-th reservation code, e.g. "RES-000042".
func FormatReservationCode(n int) string { return fmt.Sprintf(reservationCodeFormat, n) }

// NormalizeCode trims surrounding space and upper-cases a flight or
// reservation code typed by a user.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Occupancy is a point-in-time report of a flight's seats.
type Occupancy struct {
	Percent          float64
	Occupied         int
	Capacity         int
	Sections         []seating.SectionOccupancy
	SurchargeApplies bool
}

// Reservation is one booked seat on one flight.
type Reservation struct {
	code        string
	flightCode  string
	seat        string
	origin      core.City
	destination core.City
	price       float64
	adjusted    bool
}

// Code returns the reservation code.
func (r *Reservation) Code() string { return r.code }

// FlightCode returns the code of the owning flight.
func (r *Reservation) FlightCode() string { return r.flightCode }

// Seat returns the seat label, e.g. "A7".
func (r *Reservation) Seat() string { return r.seat }

// Origin returns the departure city.
func (r *Reservation) Origin() core.City { return r.origin }

// Destination returns the arrival city.
func (r *Reservation) Destination() core.City { return r.destination }

// Price returns the final price.
func (r *Reservation) Price() float64 { return r.price }

// Adjusted reports whether AdjustPrice has been applied.
func (r *Reservation) Adjusted() bool { return r.adjusted }

// AdjustPrice multiplies the final price by factor. It may succeed at most
// once per reservation.
func (r *Reservation) AdjustPrice(factor float64) error {
	if factor < 0 || math.IsNaN(factor) {
		return fmt.Errorf("%w: %v", ErrBadFactor, factor)
	}
	if r.adjusted {
		return fmt.Errorf("%w: %s", ErrAlreadyAdjusted, r.code)
	}
	r.price *= factor
	r.adjusted = true

	return nil
}

// String renders a one-line receipt.
func (r *Reservation) String() string {
	return fmt.Sprintf("Reservation %s - Flight: %s - Seat: %s - %s -> %s - Price: $%.2f",
		r.code, r.flightCode, r.seat, r.origin, r.destination, r.price)
}
