// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Whole-store copies and teardown.
// Concurrency:
//   - Clone holds the shared lock on the source; Reset holds the exclusive lock.

package core

// Clone returns a deep copy of the store: same flags, same slots, same edge
// arena. Handles and adjacency order are preserved exactly, and mutating the
// copy never affects the original.
//
// Complexity: O(capacity + E).
func (s *Store) Clone() *Store {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := &Store{
		directed:    s.directed,
		weighted:    s.weighted,
		allowMulti:  s.allowMulti,
		allowLoops:  s.allowLoops,
		capacity:    s.capacity,
		labelLimit:  s.labelLimit,
		vertices:    make([]Vertex, len(s.vertices)),
		edges:       make([]edgeNode, len(s.edges)),
		activeCount: s.activeCount,
	}
	copy(out.vertices, s.vertices)
	copy(out.edges, s.edges)

	return out
}

// Reset releases every edge record and deactivates every slot, returning the
// store to the state NewStore produced. Flags and capacity are kept.
//
// Complexity: O(capacity).
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initSlots()
}
