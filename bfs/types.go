// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/airnet/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartCityNotFound is returned when the origin city is absent.
	ErrStartCityNotFound = errors.New("bfs: start city not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation when Reachable is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a city is enqueued, before visiting.
	// Receives the city and its depth from the origin.
	OnEnqueue func(c core.City, depth int)

	// OnVisit is called when visiting a city. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(c core.City, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op hooks (OnEnqueue, OnVisit)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:       context.Background(),
		OnEnqueue: func(core.City, int) {},
		OnVisit:   func(core.City, int) error { return nil },
		MaxDepth:  0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(c core.City, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(c core.City, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: cities visited, in visit sequence.
//   - Depth: map from city key to its distance (in legs) from the origin.
//   - Parent: map from city key to the key of its predecessor in the BFS tree.
type Result struct {
	Order  []core.City
	Depth  map[string]int
	Parent map[string]string
}

// Names returns the display names of Order.
func (r *Result) Names() []string {
	out := make([]string, len(r.Order))
	for i, c := range r.Order {
		out[i] = c.Name()
	}

	return out
}

// PathTo reconstructs the fewest-legs path from the origin to dest as city keys.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest core.City) ([]string, error) {
	if _, ok := r.Depth[dest.Key()]; !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest.Name())
	}
	// build reversed path
	path := []string{}
	for cur := dest.Key(); ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get origin → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
