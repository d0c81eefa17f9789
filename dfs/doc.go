// Package dfs implements depth-first traversal, connected-component
// extraction, and a connectivity probe on a core.Store.
//
// What:
//
//   - DFS (Depth-First Search): explores as far as possible along each
//     branch before backtracking. Supports:
//   - Pre-order collection (Order) and post-order collection (PostOrder)
//   - Pre-order "report" hook (WithOnVisit) and post-order hook (WithOnExit)
//   - Cancellation via context.Context
//   - Depth limiting and neighbor filtering
//   - Forest traversal over every active vertex (WithFullTraversal)
//   - Component: the vertices reachable from a start, in pre-order.
//   - Components: every connected component, seeded at ascending handles.
//   - Connected: an iterative probe with an explicit stack; vertices are
//     marked when pushed and the probe stops as soon as the target is popped.
//
// Determinism:
//
//	Neighbors are explored in adjacency-list order (most recent connection
//	first), and forest roots are taken in ascending handle order, so results
//	are reproducible for a given insertion history.
//
// Key Types:
//
//   - Option: functional options for DFS behavior
//   - DFSOptions: holds Context, hooks, MaxDepth, FilterNeighbor
//   - DFSResult: collects Order, PostOrder, Depth, Parent, Visited
//
// Complexity:
//
//   - DFS, Component, Components, Connected: O(V + E) time.
//   - Memory: O(V) for recursion depth and result maps.
//
// Errors:
//
//   - ErrGraphNil: nil store.
//   - core.ErrInvalidVertex (wrapped): a start or probe handle is not active.
//   - context errors and hook errors abort DFS and are returned as-is or wrapped.
package dfs
