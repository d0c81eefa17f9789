// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborHandles, Degree).
// Determinism:
//   - All results follow adjacency-list order: most recently inserted first.
//   - Traversal order in bfs, dfs and suggest depends on this; it is part of the contract.
// Concurrency:
//   - Shared lock for the duration of one call; results are independent copies.

package core

// Neighbors returns the outgoing edges of h in adjacency-list order.
//
// Neighborhood policy:
//   - Directed stores: the one-way edges inserted with h as source.
//   - Undirected stores: every connection of h, each appearing once
//     (the mirrored record stored in h's own list).
//   - Parallel edges on multi-edge stores appear once per insertion.
//
// Errors:
//   - ErrInvalidVertex: h out of range or inactive.
//
// Complexity:
//   - Time O(deg(h)), Space O(deg(h)).
func (s *Store) Neighbors(h Handle) ([]Edge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.active(h) {
		return nil, invalidVertex(h)
	}

	var out []Edge
	var e int
	for e = s.vertices[h].head; e != noEdge; e = s.edges[e].next {
		out = append(out, s.edges[e].Edge)
	}

	return out, nil
}

// NeighborHandles returns the destination handles of Neighbors(h), in the same
// order. Parallel edges yield repeated handles.
// Errors: ErrInvalidVertex.
func (s *Store) NeighborHandles(h Handle) ([]Handle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.active(h) {
		return nil, invalidVertex(h)
	}

	var out []Handle
	var e int
	for e = s.vertices[h].head; e != noEdge; e = s.edges[e].next {
		out = append(out, s.edges[e].To)
	}

	return out, nil
}

// Degree returns the length of h's adjacency list (out-degree on directed
// stores, degree on undirected ones).
// Errors: ErrInvalidVertex.
func (s *Store) Degree(h Handle) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.active(h) {
		return 0, invalidVertex(h)
	}

	n := 0
	var e int
	for e = s.vertices[h].head; e != noEdge; e = s.edges[e].next {
		n++
	}

	return n, nil
}
