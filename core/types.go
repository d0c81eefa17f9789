// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Store, Vertex and Edge records, sentinel errors, functional options.
//
// A Store is a fixed-capacity table of vertex slots. Each active slot owns a
// singly linked adjacency list whose nodes live in a shared edge arena and are
// chained by index. New edges are prepended, so iteration always yields the
// most recently inserted edge first.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core store operations.
var (
	// ErrCapacityExceeded indicates that registration found no free slot.
	ErrCapacityExceeded = errors.New("core: vertex capacity exceeded")

	// ErrInvalidVertex indicates a handle outside [0, capacity) or an inactive slot.
	ErrInvalidVertex = errors.New("core: invalid vertex")

	// ErrInvalidWeight indicates a negative weight on a weighted store.
	ErrInvalidWeight = errors.New("core: edge weight must be non-negative")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted store.
	ErrBadWeight = errors.New("core: bad weight for unweighted store")

	// ErrSelfLoop indicates a self-loop was attempted when loops are disabled.
	ErrSelfLoop = errors.New("core: self-loop not allowed")
)

// Handle identifies a vertex slot. It is the slot index.
type Handle int

// NoHandle is returned together with an error when no vertex was created.
const NoHandle Handle = -1

// Capacity and label defaults.
const (
	// DefaultCapacity is the slot count of a Store built without WithCapacity.
	DefaultCapacity = 50

	// RouteCapacity is the slot count used by NewRouteMap.
	RouteCapacity = 50

	// SocialCapacity is the slot count used by NewSocialNetwork.
	SocialCapacity = 100

	// DefaultLabelLimit is the maximum label length in bytes; longer labels are truncated.
	DefaultLabelLimit = 49
)

// noEdge marks the end of an adjacency list.
const noEdge = -1

// Vertex is a snapshot of one slot of the Store.
type Vertex struct {
	// ID is the slot index of this vertex.
	ID Handle

	// Label is the display name, truncated to the store's label limit.
	Label string

	// Active reports whether the slot is in use.
	Active bool

	head int // first edge in the arena, noEdge when the list is empty
}

// Edge is a directed connection From → To. Weight is always 0 on unweighted stores.
type Edge struct {
	From   Handle
	To     Handle
	Weight int64
}

// edgeNode is an arena record: the edge plus the index of the next node in
// the same adjacency list.
type edgeNode struct {
	Edge
	next int
}

// GraphOption configures a Store before creation.
type GraphOption func(s *Store)

// WithCapacity sets the number of vertex slots. Values below 1 are ignored.
func WithCapacity(n int) GraphOption {
	return func(s *Store) {
		if n > 0 {
			s.capacity = n
		}
	}
}

// WithDirected sets whether edges are one-way (true) or mirrored into both
// endpoint lists (false).
func WithDirected(directed bool) GraphOption {
	return func(s *Store) { s.directed = directed }
}

// WithWeighted allows non-zero, non-negative edge weights.
func WithWeighted() GraphOption {
	return func(s *Store) { s.weighted = true }
}

// WithMultiEdges lets parallel edges accumulate instead of being suppressed.
func WithMultiEdges() GraphOption {
	return func(s *Store) { s.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(s *Store) { s.allowLoops = true }
}

// WithLabelLimit sets the label byte limit. Values below 1 are ignored.
func WithLabelLimit(n int) GraphOption {
	return func(s *Store) {
		if n > 0 {
			s.labelLimit = n
		}
	}
}

// Store is the bounded slot table plus the edge arena.
//
// mu guards every field below it. Writers (Register, AddEdge, Reset) take the
// exclusive lock and readers take the shared lock, so a Store can be queried
// from several goroutines while no writer is active.
type Store struct {
	mu sync.RWMutex

	// Configuration flags, immutable after NewStore.
	directed   bool
	weighted   bool
	allowMulti bool
	allowLoops bool
	capacity   int
	labelLimit int

	// Storage
	vertices    []Vertex
	edges       []edgeNode
	activeCount int
}

// NewStore creates a Store with every slot inactive and no edges.
// By default the Store is undirected, unweighted, suppresses duplicate edges,
// rejects self-loops, and has DefaultCapacity slots.
// Complexity: O(capacity).
func NewStore(opts ...GraphOption) *Store {
	s := &Store{
		capacity:   DefaultCapacity,
		labelLimit: DefaultLabelLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.vertices = make([]Vertex, s.capacity)
	s.initSlots()

	return s
}

// NewRouteMap creates the weighted, directed variant: parallel routes and
// self-loops are accepted, and each AddEdge inserts a single one-way route.
// Caller options are applied last and may override the preset.
func NewRouteMap(opts ...GraphOption) *Store {
	preset := make([]GraphOption, 0, len(opts)+5)
	preset = append(preset,
		WithCapacity(RouteCapacity),
		WithDirected(true),
		WithWeighted(),
		WithMultiEdges(),
		WithLoops(),
	)
	preset = append(preset, opts...)

	return NewStore(preset...)
}

// NewSocialNetwork creates the unweighted, undirected variant: each AddEdge
// creates a symmetric, idempotent connection and self-loops are rejected.
func NewSocialNetwork(opts ...GraphOption) *Store {
	preset := make([]GraphOption, 0, len(opts)+1)
	preset = append(preset, WithCapacity(SocialCapacity))
	preset = append(preset, opts...)

	return NewStore(preset...)
}

// initSlots resets every slot to its inactive state. Caller holds mu or owns s.
func (s *Store) initSlots() {
	var i int
	for i = range s.vertices {
		s.vertices[i] = Vertex{ID: Handle(i), head: noEdge}
	}
	s.edges = nil
	s.activeCount = 0
}
