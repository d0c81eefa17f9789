// SPDX-License-Identifier: MIT
// Package bfs provides breadth-first search over a core.Store,
// returning hop levels, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/slotgraph/core"
)

// ErrWeightedGraph is returned when BFS is run on a weighted store.
var ErrWeightedGraph = errors.New("bfs: weighted graphs not supported")

// ErrNeighbors is returned when fetching neighbors from the store fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// queueItem pairs a handle with its BFS level and its parent.
type queueItem struct {
	id     core.Handle
	depth  int
	parent core.Handle // core.NoHandle for root
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Store
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited []bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
//
// A vertex is marked visited and its level fixed when it is discovered,
// never when it is dequeued. Neighbors are examined in adjacency-list order
// and inactive neighbors are skipped.
//
// Returns ErrGraphNil or core.ErrInvalidVertex (wrapped) for invalid input,
// ErrWeightedGraph for weighted stores, ErrOptionViolation for bad options,
// ErrNeighbors for store failures, or any user-supplied hook error.
func BFS(g *core.Store, start core.Handle, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex
	if !g.IsActive(start) {
		return nil, fmt.Errorf("%w: start %d", core.ErrInvalidVertex, start)
	}
	// Disallow weighted stores
	if g.Weighted() {
		return nil, ErrWeightedGraph
	}

	// Prepare walker
	n := g.ActiveCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, g.Capacity()),
		res: &BFSResult{
			Start:  start,
			Order:  make([]core.Handle, 0, n),
			Depth:  make(map[core.Handle]int, n),
			Parent: make(map[core.Handle]core.Handle, n),
		},
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(start, 0, core.NoHandle)
	// Main loop
	return w.res, w.loop()
}

// enqueue marks id visited at depth d, calls OnEnqueue, records its parent,
// and adds it to the queue.
func (w *walker) enqueue(id core.Handle, d int, parent core.Handle) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != core.NoHandle {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d, parent: parent})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)

	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors walks the adjacency list, applies filtering and MaxDepth,
// and enqueues each unseen active neighbor. Returns ErrNeighbors on lookup failure.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.NeighborHandles(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %d: %v", ErrNeighbors, item.id, err)
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range neighbors {
		if !w.graph.IsActive(nbr) || w.visited[nbr] {
			continue
		}
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.id)
	}

	return nil
}
