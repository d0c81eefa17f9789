// SPDX-License-Identifier: MIT
//
// File: connectivity.go
// Role: Connected-component extraction and the iterative connectivity probe.
// Determinism:
//   - Component order equals DFS pre-order from the seed.
//   - Components are seeded at the lowest unvisited handle.
//   - Connected pushes neighbors in adjacency-list order onto a LIFO stack.

package dfs

import (
	"fmt"

	"github.com/katalvlaran/slotgraph/core"
)

// Component returns every vertex reachable from start, in DFS pre-order.
// On an undirected store this is the connected component of start.
//
// Errors: ErrGraphNil, core.ErrInvalidVertex (wrapped).
func Component(g *core.Store, start core.Handle) ([]core.Handle, error) {
	res, err := DFS(g, start)
	if err != nil {
		return nil, err
	}

	return res.Order, nil
}

// Components partitions the active vertices into groups. Each group is
// seeded at the lowest handle not yet visited and lists its members in DFS
// pre-order. Groups appear in ascending order of their seed.
//
// On a directed store the groups are the trees of a DFS forest rather than
// strongly connected components.
//
// Complexity: O(V + E).
func Components(g *core.Store) ([][]core.Handle, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	w := newWalker(g, DefaultOptions())
	var groups [][]core.Handle
	var v core.Handle
	var mark int
	for _, v = range g.Handles() {
		if w.res.Visited[v] {
			continue
		}
		mark = len(w.res.Order)
		if err := w.traverse(v, 0); err != nil {
			return nil, err
		}
		group := make([]core.Handle, len(w.res.Order)-mark)
		copy(group, w.res.Order[mark:])
		groups = append(groups, group)
	}

	return groups, nil
}

// Connected reports whether b is reachable from a.
//
// Implementation:
//   - Stage 1: Validate both handles.
//   - Stage 2: a == b is trivially connected.
//   - Stage 3: Iterative DFS with an explicit LIFO stack; a vertex is marked
//     when pushed, so it is pushed at most once.
//   - Stage 4: Report true when b is popped, false when the stack drains.
//
// Errors: ErrGraphNil, core.ErrInvalidVertex (wrapped).
// Complexity: O(V + E) time, O(C) space for the visited array.
func Connected(g *core.Store, a, b core.Handle) (bool, error) {
	// 1) Validate
	if g == nil {
		return false, ErrGraphNil
	}
	if !g.IsActive(a) {
		return false, fmt.Errorf("%w: handle %d", core.ErrInvalidVertex, a)
	}
	if !g.IsActive(b) {
		return false, fmt.Errorf("%w: handle %d", core.ErrInvalidVertex, b)
	}

	// 2) Trivial case
	if a == b {
		return true, nil
	}

	// 3) Explicit stack, mark on push
	visited := make([]bool, g.Capacity())
	stack := make([]core.Handle, 0, g.ActiveCount())
	stack = append(stack, a)
	visited[a] = true

	var u, v core.Handle
	for len(stack) > 0 {
		u = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if u == b {
			return true, nil
		}

		nbs, err := g.NeighborHandles(u)
		if err != nil {
			return false, fmt.Errorf("dfs: Neighbors(%d): %w", u, err)
		}
		for _, v = range nbs {
			if visited[v] || !g.IsActive(v) {
				continue
			}
			visited[v] = true
			stack = append(stack, v)
		}
	}

	// 4) Drained
	return false, nil
}
