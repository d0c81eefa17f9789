// SPDX-License-Identifier: MIT
//
// File: gonum.go
// Role: core.Store ⇄ gonum simple graphs.

package converters

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/slotgraph/core"
)

// Sentinel errors for conversions.
var (
	// ErrNilGraph is returned when a nil source graph is passed.
	ErrNilGraph = errors.New("converters: graph is nil")

	// ErrUnweightedGraph is returned when a weighted export is requested from an unweighted store.
	ErrUnweightedGraph = errors.New("converters: graph must be weighted")

	// ErrNonIntegralWeight is returned when an imported weight is negative,
	// fractional, or not finite.
	ErrNonIntegralWeight = errors.New("converters: weight must be a non-negative integer")
)

// ToGonumWeighted exports a weighted store. Every active vertex becomes
// simple.Node(handle). For each ordered pair the cheapest edge is kept;
// self-loops are dropped. Missing edges weigh +Inf.
//
// Errors: ErrNilGraph, ErrUnweightedGraph.
// Complexity: O(C + E).
func ToGonumWeighted(s *core.Store) (*simple.WeightedDirectedGraph, error) {
	if s == nil {
		return nil, ErrNilGraph
	}
	if !s.Weighted() {
		return nil, ErrUnweightedGraph
	}

	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	var h core.Handle
	for _, h = range s.Handles() {
		g.AddNode(simple.Node(h))
	}

	var e core.Edge
	var w float64
	for _, e = range s.Edges() {
		if e.From == e.To {
			continue
		}
		w = float64(e.Weight)
		if prev := g.WeightedEdge(int64(e.From), int64(e.To)); prev != nil && prev.Weight() <= w {
			continue
		}
		g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(e.From), simple.Node(e.To), w))
	}

	return g, nil
}

// ToGonumUndirected exports the connectivity of any store, ignoring edge
// direction and weight. Self-loops are dropped.
//
// Errors: ErrNilGraph.
// Complexity: O(C + E).
func ToGonumUndirected(s *core.Store) (*simple.UndirectedGraph, error) {
	if s == nil {
		return nil, ErrNilGraph
	}

	g := simple.NewUndirectedGraph()
	var h core.Handle
	for _, h = range s.Handles() {
		g.AddNode(simple.Node(h))
	}

	var e core.Edge
	for _, e = range s.Edges() {
		if e.From == e.To || g.HasEdgeBetween(int64(e.From), int64(e.To)) {
			continue
		}
		g.SetEdge(g.NewEdge(simple.Node(e.From), simple.Node(e.To)))
	}

	return g, nil
}

// FromGonumWeighted imports a weighted directed gonum graph into a new
// route map sized to its node count. label names each node; a nil label
// uses the decimal node ID. The returned map translates gonum IDs to handles.
//
// Errors: ErrNilGraph, ErrNonIntegralWeight. On error no store is returned.
// Complexity: O(V log V + E log E).
func FromGonumWeighted(g graph.WeightedDirected, label func(id int64) string, opts ...core.GraphOption) (*core.Store, map[int64]core.Handle, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if label == nil {
		label = func(id int64) string { return fmt.Sprintf("%d", id) }
	}

	// 1) Collect node IDs in ascending order
	ids := sortedIDs(g.Nodes())

	// 2) Register
	all := make([]core.GraphOption, 0, len(opts)+1)
	all = append(all, core.WithCapacity(len(ids)))
	all = append(all, opts...)
	s := core.NewRouteMap(all...)
	handles := make(map[int64]core.Handle, len(ids))
	var id int64
	for _, id = range ids {
		h, err := s.Register(label(id))
		if err != nil {
			return nil, nil, fmt.Errorf("converters: node %d: %w", id, err)
		}
		handles[id] = h
	}

	// 3) Edges per source, ascending target
	var to int64
	for _, id = range ids {
		for _, to = range sortedIDs(g.From(id)) {
			w := g.WeightedEdge(id, to).Weight()
			if w < 0 || math.IsInf(w, 0) || math.IsNaN(w) || w != math.Trunc(w) || w >= math.MaxInt64 {
				return nil, nil, fmt.Errorf("%w: %d→%d weight %v", ErrNonIntegralWeight, id, to, w)
			}
			if err := s.AddEdge(handles[id], handles[to], int64(w)); err != nil {
				return nil, nil, fmt.Errorf("converters: edge %d→%d: %w", id, to, err)
			}
		}
	}

	return s, handles, nil
}

// sortedIDs drains a node iterator into ascending IDs.
func sortedIDs(it graph.Nodes) []int64 {
	var ids []int64
	for it.Next() {
		ids = append(ids, it.Node().ID())
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}
