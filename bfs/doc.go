// Package bfs provides breadth-first search over a core.Store,
// returning hop levels, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: handle → level (edges) from start
//   - Parent: handle → predecessor in the BFS tree
//   - Levels() pairs each visited vertex with its level, in visit order.
//   - Supports functional hooks at three stages:
//   - OnEnqueue (on discovery)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Determinism
//
//	A vertex is marked and its level fixed when first discovered. Neighbors
//	are examined in adjacency-list order (most recent connection first), so
//	the visit sequence is fully reproducible for a given insertion history.
//
// Restrictions
//
//	BFS rejects weighted stores with ErrWeightedGraph; hop levels are only
//	meaningful on the unweighted variant. Use dijkstra for route maps.
//
// Complexity (V = active vertices, E = edge records, C = capacity)
//
//   - Time:   O(V + E)
//   - Memory: O(C) for the visited array, O(V) for the queue and result maps.
//
// Errors
//
//   - ErrGraphNil: nil store.
//   - core.ErrInvalidVertex (wrapped): start is out of range or inactive.
//   - ErrWeightedGraph: store is weighted.
//   - ErrOptionViolation: negative MaxDepth.
//   - ErrNoPath: PathTo on a vertex that was not reached.
//   - context errors when Ctx is cancelled.
package bfs
