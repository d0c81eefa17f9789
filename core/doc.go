// Package core provides a bounded, slot-based in-memory graph store with a
// minimal, composable API surface.
//
// A Store G = (V,E) holds a fixed number of vertex slots chosen at creation.
// Registering a vertex activates the lowest-indexed free slot; the slot index
// is the vertex Handle. Each active slot owns a singly linked adjacency list
// whose records live in a shared edge arena and are chained by index. New
// edges are prepended, so every neighborhood iterates most-recent-first.
// Traversal order in the algorithm packages (bfs, dfs, dijkstra, suggest)
// follows this list order, which makes every result deterministic.
//
// Behavior is selected with functional options:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges (WithMultiEdges); otherwise a repeated AddEdge is a no-op
//   - Self-loops (WithLoops)
//   - Slot count and label byte limit (WithCapacity, WithLabelLimit)
//
// Two presets cover the common shapes:
//
//	NewRouteMap()        // 50 slots, directed, weighted, parallel routes, loops
//	NewSocialNetwork()   // 100 slots, undirected, unweighted, idempotent, no loops
//
// Core Methods:
//
//	// Vertex lifecycle
//	Register(label string) (Handle, error)  // O(capacity)
//	IsActive(h Handle) bool                 // O(1)
//	Vertex(h) / Label(h)                    // O(1)
//	Vertices() []Vertex / Handles()         // O(capacity), ascending handle
//
//	// Edges
//	AddEdge(from, to Handle, weight int64) error // O(1) multi, O(deg) otherwise
//	HasEdge(from, to Handle) bool                // O(deg(from))
//	Edges() []Edge                               // O(capacity+E)
//	EdgeCount() int                              // O(1), mirrored records count twice
//
//	// Neighborhoods
//	Neighbors(h) ([]Edge, error)            // list order
//	NeighborHandles(h) ([]Handle, error)    // list order
//	Degree(h) (int, error)
//
//	// Maintenance
//	Clone() *Store                          // deep copy, same handles and order
//	Reset()                                 // deactivate all slots, drop all edges
//
// Errors:
//
//	ErrCapacityExceeded - Register on a full store
//	ErrInvalidVertex    - handle out of range or inactive
//	ErrInvalidWeight    - negative weight on a weighted store
//	ErrBadWeight        - non-zero weight on an unweighted store
//	ErrSelfLoop         - from == to while loops are disabled
//
// No failed call mutates the store. Vertices and edges are never removed
// individually; Reset is the only teardown.
package core
