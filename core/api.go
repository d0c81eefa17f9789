// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters for configuration flags and catalog sizes.
// Policy:
//   - No algorithms or hidden state here.
//   - Every getter takes the shared lock; flags are immutable after NewStore.

package core

// GraphStats is a point-in-time summary of a Store.
type GraphStats struct {
	Capacity    int
	ActiveCount int
	EdgeCount   int
	Directed    bool
	Weighted    bool
	AllowsMulti bool
	AllowsLoops bool
	LabelLimit  int
}

// Weighted reports whether the store accepts non-zero weights.
// If false, AddEdge rejects non-zero weights with ErrBadWeight.
func (s *Store) Weighted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.weighted
}

// Directed reports whether AddEdge inserts a one-way edge (true) or mirrors
// the connection into both endpoint lists (false).
func (s *Store) Directed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.directed
}

// Looped reports whether self-loops are accepted.
func (s *Store) Looped() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.allowLoops
}

// Multigraph reports whether parallel edges accumulate. If false, adding an
// edge that already exists is a no-op.
func (s *Store) Multigraph() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.allowMulti
}

// Capacity returns the fixed number of vertex slots.
// Complexity: O(1).
func (s *Store) Capacity() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.capacity
}

// ActiveCount returns the number of active slots. It never exceeds Capacity.
// Complexity: O(1).
func (s *Store) ActiveCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.activeCount
}

// LabelLimit returns the label byte limit applied by Register.
func (s *Store) LabelLimit() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.labelLimit
}

// Stats produces a read-only snapshot of configuration flags and sizes.
//
// Implementation:
//   - Stage 1: Acquire the shared lock once.
//   - Stage 2: Copy flags and counters into a fresh GraphStats.
//
// Complexity:
//   - Time O(1), Space O(1).
func (s *Store) Stats() *GraphStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return &GraphStats{
		Capacity:    s.capacity,
		ActiveCount: s.activeCount,
		EdgeCount:   len(s.edges),
		Directed:    s.directed,
		Weighted:    s.weighted,
		AllowsMulti: s.allowMulti,
		AllowsLoops: s.allowLoops,
		LabelLimit:  s.labelLimit,
	}
}
