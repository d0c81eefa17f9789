// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge insertion & edge queries: AddEdge/HasEdge/Edges/EdgeCount.
// Determinism:
//   - Each adjacency list iterates most-recently-inserted first (prepend).
//   - Edges() groups by ascending source handle, list order inside a group.
// Concurrency:
//   - AddEdge under the exclusive lock; queries under the shared lock.

package core

import "fmt"

// AddEdge connects from → to.
//
// Steps:
//  1. Validate both handles (ErrInvalidVertex).
//  2. Validate weight: negative on a weighted store → ErrInvalidWeight;
//     non-zero on an unweighted store → ErrBadWeight.
//  3. Reject from == to when loops are disabled (ErrSelfLoop).
//  4. Prepend the edge to from's list. Without multi-edges, an existing
//     from → to edge makes this step a no-op.
//  5. On an undirected store, repeat step 4 for to → from.
//
// All validation happens before the first insertion, so a failed call leaves
// the store unchanged.
//
// Complexity: O(1) with multi-edges, O(deg(from)+deg(to)) otherwise.
func (s *Store) AddEdge(from, to Handle, weight int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// 1) Endpoint validation
	if !s.active(from) {
		return invalidVertex(from)
	}
	if !s.active(to) {
		return invalidVertex(to)
	}

	// 2) Weight constraint
	if s.weighted {
		if weight < 0 {
			return fmt.Errorf("%w: %d", ErrInvalidWeight, weight)
		}
	} else if weight != 0 {
		return fmt.Errorf("%w: %d", ErrBadWeight, weight)
	}

	// 3) Loop constraint
	if from == to && !s.allowLoops {
		return fmt.Errorf("%w: handle %d", ErrSelfLoop, from)
	}

	// 4) Link, and 5) mirror for undirected stores
	s.link(from, to, weight)
	if !s.directed && from != to {
		s.link(to, from, weight)
	}

	return nil
}

// HasEdge reports whether at least one from → to edge exists.
// Inactive or out-of-range handles yield false.
// Complexity: O(deg(from)).
func (s *Store) HasEdge(from, to Handle) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.active(from) {
		return false
	}

	return s.contains(from, to)
}

// Edges returns every edge record grouped by ascending source handle. Within
// a group the order is adjacency-list order. On undirected stores each
// connection appears twice, once per endpoint.
// Complexity: O(capacity + E).
func (s *Store) Edges() []Edge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Edge, 0, len(s.edges))
	var i, e int
	for i = range s.vertices {
		if !s.vertices[i].Active {
			continue
		}
		for e = s.vertices[i].head; e != noEdge; e = s.edges[e].next {
			out = append(out, s.edges[e].Edge)
		}
	}

	return out
}

// EdgeCount returns the number of edge records. An undirected connection
// between two distinct vertices counts twice.
// Complexity: O(1).
func (s *Store) EdgeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.edges)
}

// link prepends from → to unless duplicates are suppressed and one exists.
// Caller holds the exclusive lock.
func (s *Store) link(from, to Handle, weight int64) {
	if !s.allowMulti && s.contains(from, to) {
		return
	}
	s.edges = append(s.edges, edgeNode{
		Edge: Edge{From: from, To: to, Weight: weight},
		next: s.vertices[from].head,
	})
	s.vertices[from].head = len(s.edges) - 1
}

// contains scans from's list for an edge to to. Caller holds mu.
func (s *Store) contains(from, to Handle) bool {
	var e int
	for e = s.vertices[from].head; e != noEdge; e = s.edges[e].next {
		if s.edges[e].To == to {
			return true
		}
	}

	return false
}
