// SPDX-License-Identifier: MIT
// Package dfs implements depth-first search (single-source and forest) on core.Store,
// plus connectivity probing and connected-component extraction.
//
// Complexity:
//
//   - Time:   O(V + E) for traversal, plus overhead of hooks and filters.
//   - Memory: O(V) for recursion stack and metadata maps.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - core.ErrInvalidVertex     (wrapped) if start is not active.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/slotgraph/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Store // underlying store
	opts  DFSOptions  // traversal options
	res   *DFSResult  // result collector
}

// DFS performs depth-first search on g. If opts include WithFullTraversal,
// it covers all disconnected components; otherwise, it starts only from start.
// Neighbors are explored in adjacency-list order; inactive neighbors are skipped.
// Returns DFSResult or error if aborted by context or hook.
func DFS(g *core.Store, start core.Handle, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}

	// 3. Single-source mode: verify start
	if !dopts.FullTraversal && !g.IsActive(start) {
		return nil, fmt.Errorf("%w: start %d", core.ErrInvalidVertex, start)
	}

	walker := newWalker(g, dopts)
	res := walker.res

	// 4. Traverse: forest or single tree
	if dopts.FullTraversal {
		var v core.Handle
		for _, v = range g.Handles() {
			if !res.Visited[v] {
				if err := walker.traverse(v, 0); err != nil {
					return res, err
				}
			}
		}
	} else {
		if err := walker.traverse(start, 0); err != nil {
			return res, err
		}
	}

	// 5. Expose diagnostics
	res.SkippedNeighbors = walker.opts.SkippedNeighbors

	return res, nil
}

// newWalker allocates a result sized for the active vertices of g.
func newWalker(g *core.Store, opts DFSOptions) *dfsWalker {
	n := g.ActiveCount()

	return &dfsWalker{
		graph: g,
		opts:  opts,
		res: &DFSResult{
			Order:     make([]core.Handle, 0, n),
			PostOrder: make([]core.Handle, 0, n),
			Depth:     make(map[core.Handle]int, n),
			Parent:    make(map[core.Handle]core.Handle, n),
			Visited:   make(map[core.Handle]bool, n),
		},
	}
}

// traverse visits vertex h at given depth, recursing to neighbors.
// It honors context cancellation, depth limit, hooks, and filtering.
func (w *dfsWalker) traverse(h core.Handle, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Depth limit: stop if exceeded
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	// 3. Mark visited, record depth and pre-order position
	w.res.Visited[h] = true
	w.res.Depth[h] = depth
	w.res.Order = append(w.res.Order, h)

	// 4. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(h); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", h, err)
		}
	}

	// 5. Fetch neighbors once
	nbs, err := w.graph.NeighborHandles(h)
	if err != nil {
		return fmt.Errorf("dfs: Neighbors(%d): %w", h, err)
	}

	// 6. Explore each neighbor
	var nid core.Handle
	for _, nid = range nbs {
		if nid == h || !w.graph.IsActive(nid) {
			continue
		}

		// Neighbor filtering
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
			w.opts.SkippedNeighbors++
			continue
		}

		// Recurse on unvisited
		if !w.res.Visited[nid] {
			if err = w.traverse(nid, depth+1); err != nil {
				return err
			}
			// A neighbor past MaxDepth stays unvisited and gets no parent.
			if w.res.Visited[nid] {
				w.res.Parent[nid] = h
			}
		}
	}

	// 7. Post-order hook
	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(h); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %d: %w", h, err)
		}
	}

	// 8. Record finish order
	w.res.PostOrder = append(w.res.PostOrder, h)

	return nil
}
