// Package dfs implements depth-first reachability and component discovery
// over the route network (core.Graph).
//
// Key features:
//   - Reachable(g, origin, opts...): every city reachable from origin, in
//     pre-order (origin first).
//   - Components(g, opts...): forest walk: repeated DFS from
//     each still-unvisited city in insertion order, one group per tree.
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts.
//   - Limits: MaxDepth.
//   - Cancellation via context.Context.
//
// Complexity:
//
//   - Time:   O(V + E) for traversal, plus overhead of hooks.
//   - Memory: O(V) for recursion stack and metadata maps.
//
// Options:
//
//   - WithContext(ctx)      allows cancellation via context.Context.
//   - WithOnVisit(fn)       pre-order hook on city discovery; error aborts traversal.
//   - WithOnExit(fn)        post-order hook after exploring descendants.
//   - WithMaxDepth(limit)   stops recursion beyond given depth (>=0).
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartCityNotFound    if origin is missing.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs
