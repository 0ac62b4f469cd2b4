package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/airnet/core"
	"github.com/katalvlaran/airnet/dijkstra"
)

// ExampleShortestItinerary picks the fastest connection to Santa Cruz.
func ExampleShortestItinerary() {
	g := core.NewGraph()
	ba, mdz, brc, sc := core.NewCity("Buenos Aires"), core.NewCity("Mendoza"),
		core.NewCity("Bariloche"), core.NewCity("Santa Cruz")
	_ = g.AddEdge(ba, mdz, 1.7, 150000, true)
	_ = g.AddEdge(ba, brc, 2.2, 220000, true)
	_ = g.AddBidirectionalEdge(mdz, sc, 2.6, 170000)
	_ = g.AddBidirectionalEdge(brc, sc, 2.0, 160000)

	it, _ := dijkstra.ShortestItinerary(g, ba, core.NewCity("santa cruz"))
	fmt.Println(it)
	fmt.Printf("%.1fh $%.2f\n", it.TotalTime(), it.TotalPrice())

	// Output:
	// Buenos Aires -> Bariloche (2.2h, $220000.00) -> Santa Cruz (2.0h, $160000.00)
	// 4.2h $380000.00
}
