package dfs

import (
	"fmt"

	"github.com/katalvlaran/airnet/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph // underlying network
	opts  DFSOptions  // traversal options
	res   *DFSResult  // result collector
}

// Reachable performs depth-first search on g from origin and returns every
// reachable city in pre-order. The origin is always first and every city
// appears exactly once, even when the network has cycles.
func Reachable(g *core.Graph, origin core.City, opts ...Option) (*DFSResult, error) {
	// 1. Validate input
	if g == nil {
		return nil, ErrGraphNil
	}
	start, err := g.Lookup(origin.Name())
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrStartCityNotFound, origin.Name())
	}

	// 2. Traverse a single tree
	w := newWalker(g, opts)
	if err = w.traverse(start, 0); err != nil {
		return w.res, err
	}

	return w.res, nil
}

// Components partitions g into DFS trees. A fresh traversal starts from
// every still-unvisited city, taken in insertion order, and each tree
// becomes one group in pre-order. On a directed network a group holds the
// cities reachable from its root that no earlier root reached.
func Components(g *core.Graph, opts ...Option) ([][]core.City, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	w := newWalker(g, opts)
	var groups [][]core.City
	for _, c := range g.Cities() {
		if w.res.Visited[c.Key()] {
			continue
		}
		mark := len(w.res.Order)
		if err := w.traverse(c, 0); err != nil {
			return groups, err
		}
		group := make([]core.City, len(w.res.Order)-mark)
		copy(group, w.res.Order[mark:])
		groups = append(groups, group)
	}

	return groups, nil
}

func newWalker(g *core.Graph, opts []Option) *dfsWalker {
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	n := g.CityCount()

	return &dfsWalker{
		graph: g,
		opts:  dopts,
		res: &DFSResult{
			Order:     make([]core.City, 0, n),
			PostOrder: make([]core.City, 0, n),
			Depth:     make(map[string]int, n),
			Parent:    make(map[string]string, n),
			Visited:   make(map[string]bool, n),
		},
	}
}

// traverse visits city c at given depth, recursing to unvisited destinations.
func (w *dfsWalker) traverse(c core.City, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Depth limit: stop if exceeded
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	// 3. Mark visited and record pre-order position
	key := c.Key()
	w.res.Visited[key] = true
	w.res.Depth[key] = depth
	w.res.Order = append(w.res.Order, c)

	// 4. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(c); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", c.Name(), err)
		}
	}

	// 5. Explore each outgoing leg
	for _, leg := range w.graph.Legs(c) {
		next := leg.To.Key()
		if w.res.Visited[next] {
			continue
		}
		if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
			continue
		}
		w.res.Parent[next] = key
		if err := w.traverse(leg.To, depth+1); err != nil {
			return err
		}
	}

	// 6. Post-order hook
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(c); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %q: %w", c.Name(), err)
		}
	}

	// 7. Record finish order
	w.res.PostOrder = append(w.res.PostOrder, c)

	return nil
}
