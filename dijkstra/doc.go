// Package dijkstra computes weighted shortest paths over a slot-based
// core.Store with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra runs from one source and reports, per slot, the best distance
//     and the predecessor on one shortest path, plus the settle order.
//   - ShortestPath runs the same loop but stops once the destination is
//     settled, then rebuilds the path by walking predecessors.
//   - Selection is an array scan over active, unsettled slots with a finite
//     distance. At most ActiveCount-1 rounds run, and a round in which
//     nothing is selectable ends the run.
//
// Determinism:
//
//   - Edges are relaxed in adjacency-list order (most recent route first).
//   - TieBreakFirst (default) settles the lowest handle among equal minima.
//   - TieBreakLast settles the highest handle among equal minima.
//   - Relaxation is strict in both modes: the first predecessor found for an
//     equal-cost path stays. WithReplaceEqualCost lets a later tie take over.
//
// Key features:
//
//   - WithTarget: early stop once a vertex is settled.
//   - WithMaxDistance: distances above a cap are never recorded.
//   - WithInfEdgeThreshold: edges with weight ≥ threshold are impassable.
//
// Performance and complexity:
//
//   - Time:  O(V·C + E), where C is the store capacity.
//   - Space: O(C) for the distance, predecessor and settled arrays.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph: the store pointer is nil.
//   - ErrUnweightedGraph: the store was not built with core.WithWeighted().
//   - core.ErrInvalidVertex (wrapped): source or destination is not active.
//   - ErrUnreachable: no path exists; a terminal result, not a failure.
//   - ErrBadMaxDistance / ErrBadInfThreshold: raised via panic by the options.
//
// Thread safety:
//
//   - Each call reads the store through its shared lock; results are independent copies.
package dijkstra
