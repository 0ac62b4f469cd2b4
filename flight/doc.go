// Package flight models a bookable flight: one leg of the route network
// materialized with its own aircraft (seating.Aircraft) and its own
// reservation index (avl.Tree keyed by reservation code).
//
// A Flight keeps two structures in step:
//
//   - the number of occupied seats equals the number of indexed reservations;
//   - a seat is occupied iff a live reservation on this flight holds its label.
//
// Reserve assigns the seat before indexing and Cancel releases the seat
// after removing the entry, so neither side ever leads the other across a
// returned call.
//
// Flight and Reservation are not safe for concurrent use; airline.Registry
// serializes every access.
package flight
