// Package airline orchestrates the route network, flights and reservations.
//
// A Registry owns a core.Graph and every flight created on it. It turns
// itineraries found by dijkstra.ShortestItinerary into flights (one per
// leg, reused per ordered city pair), books seats across all legs of an
// itinerary, prices the reservations and cancels them.
//
// Booking workflow (Book):
//
//  1. Find the fastest itinerary; fail with ErrNoRouteExists if none.
//  2. Resolve one flight per leg: the first flight registered for that
//     ordered pair, or a new one.
//  3. For each flight in leg order, read occupancy, then reserve a seat.
//     If any leg has no free seat, every reservation made earlier in the
//     same call is cancelled and ErrNoSeatAvailable is returned.
//  4. Price each reservation at the flight's base price, ×1.10 when the
//     occupancy read in step 3 was already ≥ 95%.
//  5. A single-leg itinerary gets a further ×1.20 on its reservation.
//
// Identifiers come from two counters owned by the Registry: flight codes
// "VUELO-0001"… and reservation codes "RES-000001"…. Neither is ever
// reused, including codes of reservations that were rolled back or
// cancelled.
//
// Concurrency: every method that reads or changes flights takes the
// registry lock, so a booking's occupancy reads, seat assignments and any
// rollback form one critical section.
//
// Observability: events are logged through log/slog (silent by default,
// see WithLogger) and counted in Prometheus collectors (see WithMetrics).
package airline
