// SPDX-License-Identifier: MIT
// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order hooks, depth limiting, neighbor filtering,
// full-store (forest) traversal, and basic diagnostics.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/slotgraph/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Store is passed to DFS,
	// Component, Components, or Connected.
	ErrGraphNil = errors.New("dfs: graph is nil")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// It controls hooks, limits, filtering, full-store mode, and diagnostics.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context will abort DFS early.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked immediately upon discovering a vertex (pre-order).
	// This is the "report" mode of the traversal. Returning an error aborts traversal.
	OnVisit func(h core.Handle) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex
	// have been explored (post-order), before appending to result.PostOrder.
	OnExit func(h core.Handle) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor before recursing.
	// Return true to traverse into that neighbor, false to skip it.
	FilterNeighbor func(h core.Handle) bool

	// FullTraversal, if true, runs DFS from every unvisited active vertex in
	// ascending handle order, covering disconnected components.
	FullTraversal bool

	// SkippedNeighbors tracks how many neighbors were skipped
	// due to FilterNeighbor returning false.
	SkippedNeighbors int
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
//   - Single-source traversal (FullTraversal = false)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:              context.Background(),
		OnVisit:          nil,
		OnExit:           nil,
		MaxDepth:         -1,
		FilterNeighbor:   nil,
		FullTraversal:    false,
		SkippedNeighbors: 0,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
// The hook is called when a vertex is first discovered.
func WithOnVisit(fn func(h core.Handle) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
// The hook is called after a vertex's descendants have been fully explored.
func WithOnExit(fn func(h core.Handle) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start vertex is visited.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters neighbors.
// If fn(h) == false, that neighbor is skipped and counted in SkippedNeighbors.
func WithFilterNeighbor(fn func(h core.Handle) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal returns an Option that enables full-store traversal.
// When set, DFS restarts from each unvisited vertex and ignores start.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records vertices in the sequence they were discovered (pre-order).
	Order []core.Handle

	// PostOrder records vertices in the sequence they finished.
	PostOrder []core.Handle

	// Depth maps each handle to its tree depth (#edges) from its root.
	Depth map[core.Handle]int

	// Parent maps each handle to the vertex from which it was first discovered.
	// Roots do not appear in this map.
	Parent map[core.Handle]core.Handle

	// Visited flags which vertices were reached during the traversal.
	Visited map[core.Handle]bool

	// SkippedNeighbors reports how many neighbors were skipped
	// due to FilterNeighbor returning false, aggregated across all trees.
	SkippedNeighbors int
}
