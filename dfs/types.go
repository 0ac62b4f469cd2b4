package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/airnet/core"
)

// Sentinel errors for DFS.
var (
	// ErrGraphNil indicates a nil graph was passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartCityNotFound indicates the origin city is absent.
	ErrStartCityNotFound = errors.New("dfs: start city not found")
)

// DFSOptions configures depth-first traversal.
type DFSOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit is called in pre-order, when a city is first discovered.
	OnVisit func(c core.City) error

	// OnExit is called in post-order, after all descendants are explored.
	OnExit func(c core.City) error

	// MaxDepth limits recursion depth; -1 means unlimited.
	MaxDepth int
}

// Option configures DFSOptions.
type Option func(*DFSOptions)

// DefaultOptions returns DFSOptions with sensible defaults.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets a cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a pre-order hook.
func WithOnVisit(fn func(c core.City) error) Option {
	return func(o *DFSOptions) { o.OnVisit = fn }
}

// WithOnExit registers a post-order hook.
func WithOnExit(fn func(c core.City) error) Option {
	return func(o *DFSOptions) { o.OnExit = fn }
}

// WithMaxDepth limits the recursion depth. Panics on a negative limit.
func WithMaxDepth(limit int) Option {
	if limit < 0 {
		panic("dfs: WithMaxDepth requires limit >= 0")
	}

	return func(o *DFSOptions) { o.MaxDepth = limit }
}

// DFSResult holds the outcome of a traversal.
//
//	Order     - cities in pre-order (discovery order), origin first.
//	PostOrder - cities in finish order.
//	Depth     - city key → depth in the DFS tree.
//	Parent    - city key → parent key in the DFS tree.
//	Visited   - city key → visited flag.
type DFSResult struct {
	Order     []core.City
	PostOrder []core.City
	Depth     map[string]int
	Parent    map[string]string
	Visited   map[string]bool
}

// Names returns the display names of Order.
func (r *DFSResult) Names() []string {
	out := make([]string, len(r.Order))
	for i, c := range r.Order {
		out[i] = c.Name()
	}

	return out
}
