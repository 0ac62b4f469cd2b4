// Package airnet models an airline's route network and its reservation
// bookkeeping, all in memory.
//
// What is in here?
//
//	• core/      - cities, legs, itineraries and the route graph
//	• bfs/, dfs/ - reachability and connected components
//	• dijkstra/  - fastest itinerary, ties broken on price
//	• avl/       - generic height-balanced tree, the per-flight reservation index
//	• seating/   - 3 × 10 seat aircraft with load-balanced random allocation
//	• flight/    - flights and reservations
//	• airline/   - the registry: booking with rollback, cancellation,
//	               route registration, surcharges and metrics
//	• builder/   - the default network, YAML networks and synthetic networks
//	• cmd/airnet - command line and interactive shell
//
// Quick example:
//
//	reg, _ := airline.NewRegistry(builder.DefaultNetwork())
//	b, err := reg.Book("Buenos Aires", "Santa Cruz")
//	if errors.Is(err, airline.ErrNoSeatAvailable) {
//		// nothing was reserved
//	}
//	fmt.Println(b.Codes(), b.Total())
//
// Pricing: a leg costs its base price, ×1.10 if its flight was at 95%
// occupancy or more before the seat was taken; a single-leg itinerary is
// then charged ×1.20.
//
//	go get github.com/katalvlaran/airnet
package airnet
