// Package dijkstra finds the fastest itinerary between two cities of a
// core.Graph, breaking ties on total price.
//
// The search is label-setting Dijkstra over a composite key
// (cumulativeTime, cumulativePrice) compared lexicographically. Every city
// holds at most one best label, kept in a map indexed by city key, and a
// label records its predecessor city and the exact leg used to reach it,
// so parallel legs between the same pair of cities are told apart.
//
// Relaxation rule:
//
//	replace label(v) with (t, p) iff t < label(v).time
//	                              || (t == label(v).time && p < label(v).price)
//
// The frontier is a container/heap min-heap using the "lazy decrease-key"
// pattern: improved labels are pushed as new entries and stale entries are
// skipped when popped, once their city is settled. A city is settled on its
// first pop; the search stops as soon as the destination is settled.
// Entries equal on (time, price) pop in city-key order so results are
// reproducible.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the heap may hold one entry per relaxation.
//
// Options:
//
//   - WithMaxTime(h): legs that would push cumulative time past h are not
//     relaxed (h ≥ 0, panics otherwise).
//
// Errors (sentinel):
//
//   - ErrNilGraph      if the graph pointer is nil.
//   - ErrCityNotFound  if origin or destination is not in the graph
//     (also matches core.ErrCityNotFound).
//   - ErrNoPath        if the destination is unreachable.
//
// Example usage:
//
//	it, err := dijkstra.ShortestItinerary(g, core.NewCity("Buenos Aires"), core.NewCity("Santa Cruz"))
//	if errors.Is(err, dijkstra.ErrNoPath) {
//	    // no route
//	}
//	fmt.Println(it.TotalTime(), it.TotalPrice())
package dijkstra
