// Package bfs provides breadth-first reachability over the route network.
//
// What
//
//   - Explore cities in non-decreasing leg count from an origin city.
//   - Returns a Result containing:
//   - Order:  visit sequence (level order), origin first
//   - Depth:  map from city key → number of legs from the origin
//   - Parent: map from city key → its predecessor in the BFS tree
//   - Supports hooks:
//   - OnEnqueue (when a city is discovered and queued)
//   - OnVisit   (when a city is dequeued; may abort with an error)
//   - Honors a MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	core.Graph.Legs returns outgoing legs in insertion order and the frontier
//	is a FIFO queue, so the visit sequence is fully reproducible for a fixed
//	insertion order. The origin is marked visited before it is enqueued, so
//	it appears exactly once, first.
//
// Parallel legs
//
//	A city reached through several parallel legs is enqueued once; the
//	visited set is checked on discovery, not on dequeue.
//
// Complexity (V = |cities|, E = |legs|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil              if the graph is nil.
//   - ErrStartCityNotFound   if the origin is not in the graph.
//   - ErrOptionViolation       for a negative MaxDepth.
//   - context errors           if the context is cancelled.
//   - any error returned by OnVisit (wrapped).
package bfs
