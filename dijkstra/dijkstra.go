package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/airnet/core"
)

// ShortestItinerary returns the minimum-time itinerary from origin to
// destination, breaking ties on minimum total price. If origin and
// destination are the same city the result is the single-city itinerary
// with zero legs.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain origin and destination (ErrCityNotFound).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestItinerary(g *core.Graph, origin, destination core.City, opts ...Option) (*core.Itinerary, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph and endpoints, switching to stored spellings
	if g == nil {
		return nil, ErrNilGraph
	}
	from, err := g.Lookup(origin.Name())
	if err != nil {
		return nil, fmt.Errorf("%w: origin: %w", ErrCityNotFound, err)
	}
	to, err := g.Lookup(destination.Name())
	if err != nil {
		return nil, fmt.Errorf("%w: destination: %w", ErrCityNotFound, err)
	}

	// 3) Trivial itinerary
	if from.Equal(to) {
		return core.NewItinerary([]core.City{from}, nil)
	}

	// 4) Run the search
	r := &runner{
		g:       g,
		options: cfg,
		target:  to.Key(),
		labels:  make(map[string]label, g.CityCount()),
		settled: make(map[string]bool, g.CityCount()),
	}
	r.init(from)
	if !r.process() {
		return nil, fmt.Errorf("%w: %s -> %s", ErrNoPath, from, to)
	}

	// 5) Rebuild the path from predecessor links
	return r.itinerary(from)
}

// label is the best-known (time, price) for a city and how it was reached.
type label struct {
	city    core.City
	time    float64
	price   float64
	via     core.Leg // leg that reached city; zero for the origin
	prev    string   // key of the predecessor city
	hasPrev bool
}

// better reports whether (t, p) beats l under lexicographic order.
func (l label) better(t, p float64) bool {
	return t < l.time || (t == l.time && p < l.price)
}

// runner holds the mutable state for a single search.
type runner struct {
	g       *core.Graph
	options Options
	target  string
	labels  map[string]label // city key → best label
	settled map[string]bool  // city key → finalized
	pq      labelPQ
}

// init seeds the origin with a (0, 0) label.
func (r *runner) init(origin core.City) {
	r.labels[origin.Key()] = label{city: origin}
	heap.Init(&r.pq)
	heap.Push(&r.pq, &pqItem{key: origin.Key()})
}

// process pops labels in (time, price, key) order until the target is
// settled or the heap drains. Reports whether the target was settled.
func (r *runner) process() bool {
	for r.pq.Len() > 0 {
		// 1) Pop the best entry.
		item := heap.Pop(&r.pq).(*pqItem)

		// 2) Skip stale entries.
		if r.settled[item.key] {
			continue
		}
		cur := r.labels[item.key]
		if item.time != cur.time || item.price != cur.price {
			continue
		}

		// 3) Settle; stop early on the target.
		r.settled[item.key] = true
		if item.key == r.target {
			return true
		}

		// 4) Relax outgoing legs.
		r.relax(cur)
	}

	return false
}

// relax tries every outgoing leg of u and pushes improved labels.
func (r *runner) relax(u label) {
	for _, leg := range r.g.Legs(u.city) {
		v := leg.To.Key()
		if r.settled[v] {
			continue
		}

		t, p := u.time+leg.Time, u.price+leg.Price
		if t > r.options.MaxTime {
			continue
		}

		if cur, ok := r.labels[v]; ok && !cur.better(t, p) {
			continue
		}
		r.labels[v] = label{
			city:    leg.To,
			time:    t,
			price:   p,
			via:     leg,
			prev:    u.city.Key(),
			hasPrev: true,
		}
		heap.Push(&r.pq, &pqItem{key: v, time: t, price: p})
	}
}

// itinerary walks predecessor links back from the target and reverses them.
func (r *runner) itinerary(origin core.City) (*core.Itinerary, error) {
	var (
		cities []core.City
		legs   []core.Leg
	)
	for key := r.target; ; {
		l := r.labels[key]
		cities = append(cities, l.city)
		if !l.hasPrev {
			break
		}
		legs = append(legs, l.via)
		key = l.prev
	}
	for i, j := 0, len(cities)-1; i < j; i, j = i+1, j-1 {
		cities[i], cities[j] = cities[j], cities[i]
	}
	for i, j := 0, len(legs)-1; i < j; i, j = i+1, j-1 {
		legs[i], legs[j] = legs[j], legs[i]
	}
	if !cities[0].Equal(origin) {
		return nil, fmt.Errorf("dijkstra: predecessor chain does not reach %s", origin)
	}

	return core.NewItinerary(cities, legs)
}

// pqItem is a heap entry; it may go stale when a better label is pushed.
type pqItem struct {
	key   string
	time  float64
	price float64
}

// labelPQ is a min-heap of *pqItem ordered by (time, price, key).
type labelPQ []*pqItem

// Len returns the number of items in the heap.
func (pq labelPQ) Len() int { return len(pq) }

// Less orders by time, then price, then city key.
func (pq labelPQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.time != b.time {
		return a.time < b.time
	}
	if a.price != b.price {
		return a.price < b.price
	}

	return a.key < b.key
}

// Swap swaps two elements in the heap.
func (pq labelPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *labelPQ) Push(x any) { *pq = append(*pq, x.(*pqItem)) }

// Pop removes and returns the last element of the backing slice.
func (pq *labelPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
