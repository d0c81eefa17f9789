// SPDX-License-Identifier: MIT
//
// File: dijkstra.go
// Role: Array-scan Dijkstra over the active slots of a core.Store.
//
// Notes on implementation choices:
//
//   - Selection is a linear scan over slots in handle order; equal minima
//     resolve by Options.TieBreak.
//   - At most ActiveCount-1 rounds run; a round with nothing selectable ends the run.
//   - Only active, unsettled targets are relaxed.
//   - A candidate whose sum would overflow int64 is treated as no improvement.

package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/slotgraph/core"
)

// Dijkstra computes shortest distances from source to every vertex reachable
// in the weighted store g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must be weighted (ErrUnweightedGraph).
//  3. source must be active (core.ErrInvalidVertex, wrapped).
//
// Options customization:
//
//   - WithTarget(h): stop once h is settled.
//   - WithTieBreak(tb): equal-distance policy.
//   - WithMaxDistance(x): candidate distances > x are ignored (x ≥ 0).
//   - WithInfEdgeThreshold(t): edges with weight ≥ t are skipped (t > 0).
//
// Complexity:
//
//   - Time:  O(V·C + E), C = capacity, V = active vertices
//   - Space: O(C)
func Dijkstra(g *core.Store, source core.Handle, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if err := validate(g, source); err != nil {
		return nil, err
	}

	// 3) Run
	r := newRunner(g, source, cfg)
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Result{
		Source: source,
		Dist:   r.dist,
		Prev:   r.prev,
		Order:  r.order,
	}, nil
}

// ShortestPath computes the cheapest path from source to dest, stopping as
// soon as dest is settled.
//
// Errors:
//   - ErrNilGraph, ErrUnweightedGraph.
//   - core.ErrInvalidVertex (wrapped) if source or dest is not active.
//   - ErrUnreachable if dest cannot be reached from source.
//
// source == dest yields Distance 0 and Vertices [source].
func ShortestPath(g *core.Store, source, dest core.Handle, opts ...Option) (*Path, error) {
	if err := validate(g, source); err != nil {
		return nil, err
	}
	if !g.IsActive(dest) {
		return nil, fmt.Errorf("%w: destination %d", core.ErrInvalidVertex, dest)
	}

	all := make([]Option, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, WithTarget(dest))

	res, err := Dijkstra(g, source, all...)
	if err != nil {
		return nil, err
	}

	return res.PathTo(dest)
}

// validate checks the store and the source handle, in that order.
func validate(g *core.Store, source core.Handle) error {
	if g == nil {
		return ErrNilGraph
	}
	if !g.Weighted() {
		return ErrUnweightedGraph
	}
	if !g.IsActive(source) {
		return fmt.Errorf("%w: source %d", core.ErrInvalidVertex, source)
	}

	return nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Store   // read-only within the run
	options Options       // Target, TieBreak, thresholds
	source  core.Handle   // start vertex
	dist    []int64       // handle → best known distance
	prev    []core.Handle // handle → predecessor on the best path
	settled []bool        // handle → distance is final
	order   []core.Handle // settle order
}

// newRunner sets dist[v] = Infinity and prev[v] = NoHandle for every slot,
// then dist[source] = 0.
func newRunner(g *core.Store, source core.Handle, cfg Options) *runner {
	n := g.Capacity()
	r := &runner{
		g:       g,
		options: cfg,
		source:  source,
		dist:    make([]int64, n),
		prev:    make([]core.Handle, n),
		settled: make([]bool, n),
	}
	var i int
	for i = range r.dist {
		r.dist[i] = Infinity
		r.prev[i] = core.NoHandle
	}
	r.dist[source] = 0

	return r
}

// process runs at most ActiveCount-1 rounds of select-settle-relax.
//
// Loop termination conditions:
//
//   - No active, unsettled vertex has a finite distance.
//   - The target was just settled.
//   - The round budget is spent.
func (r *runner) process() error {
	rounds := r.g.ActiveCount() - 1
	if rounds < 1 {
		// A lone source still settles itself.
		rounds = 1
	}

	var round int
	var u core.Handle
	for round = 0; round < rounds; round++ {
		// 1) Select the closest unsettled vertex.
		u = r.selectMin()
		if u == core.NoHandle {
			break
		}

		// 2) Settle it.
		r.settled[u] = true
		r.order = append(r.order, u)

		// 3) Early stop on target.
		if u == r.options.Target {
			break
		}

		// 4) Relax outgoing edges.
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// selectMin scans active, unsettled slots with finite distance for the
// minimum. TieBreakFirst keeps the first minimum, TieBreakLast the last.
func (r *runner) selectMin() core.Handle {
	best := core.NoHandle
	bestDist := Infinity
	last := r.options.TieBreak == TieBreakLast

	var i int
	var d int64
	for i = range r.dist {
		d = r.dist[i]
		if r.settled[i] || d == Infinity || !r.g.IsActive(core.Handle(i)) {
			continue
		}
		if d < bestDist || (last && d == bestDist) {
			best = core.Handle(i)
			bestDist = d
		}
	}

	return best
}

// relax examines each edge outgoing from u in adjacency-list order and
// records any improvement. Assumes dist[u] is final.
func (r *runner) relax(u core.Handle) error {
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %d: %w", u, err)
	}

	replace := r.options.ReplaceEqualCost
	var e core.Edge
	var v core.Handle
	var newDist int64
	for _, e = range edges {
		v = e.To
		if r.settled[v] || !r.g.IsActive(v) {
			continue
		}

		// Impassable edge.
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}

		// Overflow guard: the sum must stay below Infinity.
		if e.Weight >= Infinity-r.dist[u] {
			continue
		}
		newDist = r.dist[u] + e.Weight
		if newDist > r.options.MaxDistance {
			continue
		}

		if newDist < r.dist[v] || (replace && newDist == r.dist[v]) {
			r.dist[v] = newDist
			r.prev[v] = u
		}
	}

	return nil
}
