// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex slot lifecycle & queries.
//
// Determinism:
//   - Register always picks the lowest inactive slot index.
//   - Vertices() and Handles() enumerate active slots by ascending handle.
//
// Concurrency:
//   - Register takes the exclusive lock; queries take the shared lock.
package core

import (
	"fmt"
	"unicode/utf8"
)

// Register activates the first inactive slot, labels it, and returns its handle.
//
// Implementation:
//   - Stage 1: Under the exclusive lock, fail fast with ErrCapacityExceeded when activeCount == capacity.
//   - Stage 2: Scan slots in index order for the first inactive one.
//   - Stage 3: Activate it, store the truncated label, clear its adjacency head, bump activeCount.
//
// Behavior highlights:
//   - Labels longer than the label limit are truncated at a UTF-8 rune boundary, never rejected.
//   - Labels need not be unique; the handle is the identity.
//   - Handles are the lowest free index, not monotonically increasing.
//
// Returns:
//   - Handle: the new vertex handle, or NoHandle on failure.
//   - error: nil or ErrCapacityExceeded.
//
// Complexity:
//   - Time O(capacity) for the slot scan, Space O(1).
func (s *Store) Register(label string) (Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.activeCount >= s.capacity {
		return NoHandle, fmt.Errorf("%w: %d of %d slots in use", ErrCapacityExceeded, s.activeCount, s.capacity)
	}

	var i int
	for i = range s.vertices {
		if s.vertices[i].Active {
			continue
		}
		s.vertices[i] = Vertex{
			ID:     Handle(i),
			Label:  truncateLabel(label, s.labelLimit),
			Active: true,
			head:   noEdge,
		}
		s.activeCount++

		return Handle(i), nil
	}

	// activeCount < capacity guarantees a free slot; reaching here means the
	// counter drifted from the slot table.
	return NoHandle, ErrCapacityExceeded
}

// IsActive reports whether h is in range and refers to an active slot.
// Complexity: O(1).
func (s *Store) IsActive(h Handle) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.active(h)
}

// Vertex returns a copy of the slot record for an active handle.
// Errors: ErrInvalidVertex.
func (s *Store) Vertex(h Handle) (Vertex, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.active(h) {
		return Vertex{}, invalidVertex(h)
	}

	return s.vertices[h], nil
}

// Label returns the label of an active handle.
// Errors: ErrInvalidVertex.
func (s *Store) Label(h Handle) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.active(h) {
		return "", invalidVertex(h)
	}

	return s.vertices[h].Label, nil
}

// Vertices returns copies of all active slots ordered by ascending handle.
// Complexity: O(capacity).
func (s *Store) Vertices() []Vertex {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Vertex, 0, s.activeCount)
	var v Vertex
	for _, v = range s.vertices {
		if v.Active {
			out = append(out, v)
		}
	}

	return out
}

// Handles returns the handles of all active slots in ascending order.
// Complexity: O(capacity).
func (s *Store) Handles() []Handle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Handle, 0, s.activeCount)
	var i int
	for i = range s.vertices {
		if s.vertices[i].Active {
			out = append(out, Handle(i))
		}
	}

	return out
}

// active reports whether h is in range and active. Caller holds mu.
func (s *Store) active(h Handle) bool {
	return h >= 0 && int(h) < len(s.vertices) && s.vertices[h].Active
}

// invalidVertex wraps ErrInvalidVertex with the offending handle.
func invalidVertex(h Handle) error {
	return fmt.Errorf("%w: handle %d", ErrInvalidVertex, h)
}

// truncateLabel cuts label to at most limit bytes without splitting a rune.
func truncateLabel(label string, limit int) string {
	if len(label) <= limit {
		return label
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(label[cut]) {
		cut--
	}

	return label[:cut]
}
