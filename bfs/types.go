// SPDX-License-Identifier: MIT
// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Store.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/slotgraph/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil store pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo when the destination was not reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a vertex is discovered, before visiting.
	// Receives the handle and its level from the start.
	OnEnqueue func(h core.Handle, depth int)

	// OnDequeue is called immediately before visiting a vertex.
	OnDequeue func(h core.Handle, depth int)

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(h core.Handle, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor core.Handle) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbors allowed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnEnqueue:      func(core.Handle, int) {},
		OnDequeue:      func(core.Handle, int) {},
		OnVisit:        func(core.Handle, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ core.Handle) bool { return true },
		err:            nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on discovery.
func WithOnEnqueue(fn func(h core.Handle, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(h core.Handle, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(h core.Handle, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor core.Handle) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Visit is one entry of the level report: a vertex and its hop distance.
type Visit struct {
	Vertex core.Handle
	Level  int
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: handle → distance (in edges) from the start, fixed at discovery.
//   - Parent: handle → predecessor in the BFS tree (absent for the start).
type BFSResult struct {
	Start  core.Handle
	Order  []core.Handle
	Depth  map[core.Handle]int
	Parent map[core.Handle]core.Handle
}

// Levels returns (vertex, level) pairs in visit order.
func (r *BFSResult) Levels() []Visit {
	out := make([]Visit, len(r.Order))
	var i int
	var h core.Handle
	for i, h = range r.Order {
		out[i] = Visit{Vertex: h, Level: r.Depth[h]}
	}

	return out
}

// PathTo reconstructs the path from the start vertex to dest.
// Returns ErrNoPath if dest was not reached.
func (r *BFSResult) PathTo(dest core.Handle) ([]core.Handle, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: to %d", ErrNoPath, dest)
	}
	// build reversed path
	path := []core.Handle{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
