// Package bfs provides breadth-first search over a core.Graph,
// returning leg-count distances, parent links, and visit order.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/airnet/core"
)

// queueItem pairs a city with its BFS depth.
type queueItem struct {
	city  core.City
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// Reachable runs breadth-first search on g starting from origin and returns
// every reachable city in level order, origin first.
// Returns ErrGraphNil or ErrStartCityNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func Reachable(g *core.Graph, origin core.City, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate origin and switch to its stored spelling
	stored, err := g.Lookup(origin.Name())
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrStartCityNotFound, origin.Name())
	}

	// Prepare walker
	n := g.CityCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]core.City, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	// Seed queue with the origin (no parent)
	w.enqueue(stored, 0, "")

	return w.res, w.loop()
}

// enqueue marks c visited at depth d, records its parent, calls OnEnqueue,
// and adds it to the queue.
func (w *walker) enqueue(c core.City, d int, parent string) {
	w.visited[c.Key()] = true
	w.res.Depth[c.Key()] = d
	if parent != "" {
		w.res.Parent[c.Key()] = parent
	}
	w.opts.OnEnqueue(c, d)
	w.queue = append(w.queue, queueItem{city: c, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// visit records the city in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.city)
	if err := w.opts.OnVisit(item.city, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.city.Name(), err)
	}

	return nil
}

// enqueueNeighbors applies MaxDepth and enqueues each unseen destination
// of item's outgoing legs.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, leg := range w.graph.Legs(item.city) {
		// first time seen?
		if !w.visited[leg.To.Key()] {
			w.enqueue(leg.To, nextDepth, item.city.Key())
		}
	}
}
