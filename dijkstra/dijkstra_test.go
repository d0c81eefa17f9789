// SPDX-License-Identifier: MIT
// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate input checks, the demo route map under both tie-break
// policies, settle order, early stop, thresholds and unreachable targets.
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/slotgraph/core"
	"github.com/katalvlaran/slotgraph/dijkstra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Demo handles, in registration order.
const (
	A core.Handle = iota
	B
	C
	D
	E
)

// demoRoutes builds the A..E route map: A→B 4, A→C 2, B→C 5, B→D 10,
// C→D 3, C→E 7, D→E 4, B→A 6.
func demoRoutes(t *testing.T) *core.Store {
	t.Helper()

	g := core.NewRouteMap()
	for _, label := range []string{"A", "B", "C", "D", "E"} {
		_, err := g.Register(label)
		require.NoError(t, err)
	}
	edges := []core.Edge{
		{From: A, To: B, Weight: 4},
		{From: A, To: C, Weight: 2},
		{From: B, To: C, Weight: 5},
		{From: B, To: D, Weight: 10},
		{From: C, To: D, Weight: 3},
		{From: C, To: E, Weight: 7},
		{From: D, To: E, Weight: 4},
		{From: B, To: A, Weight: 6},
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.From, e.To, e.Weight))
	}

	return g
}

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_NilGraph(t *testing.T) {
	_, err := dijkstra.Dijkstra(nil, A)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = dijkstra.ShortestPath(nil, A, B)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_UnweightedGraph(t *testing.T) {
	g := core.NewSocialNetwork()
	h, err := g.Register("Alice")
	require.NoError(t, err)

	_, err = dijkstra.Dijkstra(g, h)
	assert.ErrorIs(t, err, dijkstra.ErrUnweightedGraph)
}

func TestDijkstra_InvalidEndpoints(t *testing.T) {
	g := demoRoutes(t)

	_, err := dijkstra.Dijkstra(g, 17)
	assert.ErrorIs(t, err, core.ErrInvalidVertex)

	_, err = dijkstra.ShortestPath(g, -1, E)
	assert.ErrorIs(t, err, core.ErrInvalidVertex)

	_, err = dijkstra.ShortestPath(g, A, core.RouteCapacity)
	assert.ErrorIs(t, err, core.ErrInvalidVertex)
}

func TestDijkstra_OptionPanics(t *testing.T) {
	// Options are applied before any input validation.
	assert.Panics(t, func() { _, _ = dijkstra.Dijkstra(nil, A, dijkstra.WithMaxDistance(-1)) })
	assert.Panics(t, func() { _, _ = dijkstra.Dijkstra(nil, A, dijkstra.WithInfEdgeThreshold(0)) })
}

// ------------------------------------------------------------------------
// 2. Demo route map: distances, settle order and both tie-break policies.
// ------------------------------------------------------------------------

func TestDijkstra_DemoDistances(t *testing.T) {
	g := demoRoutes(t)

	res, err := dijkstra.Dijkstra(g, A)
	require.NoError(t, err)

	assert.Equal(t, int64(0), res.Dist[A])
	assert.Equal(t, int64(4), res.Dist[B])
	assert.Equal(t, int64(2), res.Dist[C])
	assert.Equal(t, int64(5), res.Dist[D])
	assert.Equal(t, int64(9), res.Dist[E])
	assert.Equal(t, dijkstra.Infinity, res.Dist[E+1], "inactive slots stay at Infinity")

	// ActiveCount-1 rounds: E is never settled, only relaxed.
	assert.Equal(t, []core.Handle{A, C, B, D}, res.Order)

	// Distances along the settle order are non-decreasing.
	for i := 1; i < len(res.Order); i++ {
		assert.LessOrEqual(t, res.Dist[res.Order[i-1]], res.Dist[res.Order[i]])
	}
	assert.Equal(t, core.NoHandle, res.Prev[A])
}

func TestShortestPath_DefaultTieBreak(t *testing.T) {
	g := demoRoutes(t)

	p, err := dijkstra.ShortestPath(g, A, E)
	require.NoError(t, err)
	assert.Equal(t, int64(9), p.Distance)
	// C→E (7) is found before D→E (4) ties it at 9; the first predecessor stays.
	assert.Equal(t, []core.Handle{A, C, E}, p.Vertices)
}

func TestShortestPath_TieBreakLast(t *testing.T) {
	g := demoRoutes(t)

	// Selection order changes nothing here: D→E only ties C→E at 9.
	p, err := dijkstra.ShortestPath(g, A, E, dijkstra.WithTieBreak(dijkstra.TieBreakLast))
	require.NoError(t, err)
	assert.Equal(t, int64(9), p.Distance)
	assert.Equal(t, []core.Handle{A, C, E}, p.Vertices)
}

func TestShortestPath_ReplaceEqualCost(t *testing.T) {
	g := demoRoutes(t)

	p, err := dijkstra.ShortestPath(g, A, E, dijkstra.WithReplaceEqualCost())
	require.NoError(t, err)
	assert.Equal(t, int64(9), p.Distance)
	assert.Equal(t, []core.Handle{A, C, D, E}, p.Vertices)
}

// diamond builds A→B 1, A→C 1, B→D 1, C→D 1: two equal-cost routes to D.
func diamond(t *testing.T) *core.Store {
	t.Helper()

	g := core.NewRouteMap()
	for _, label := range []string{"A", "B", "C", "D"} {
		_, err := g.Register(label)
		require.NoError(t, err)
	}
	for _, e := range []core.Edge{
		{From: A, To: B, Weight: 1},
		{From: A, To: C, Weight: 1},
		{From: B, To: D, Weight: 1},
		{From: C, To: D, Weight: 1},
	} {
		require.NoError(t, g.AddEdge(e.From, e.To, e.Weight))
	}

	return g
}

func TestDijkstra_TieBreakOnlyAffectsSelection(t *testing.T) {
	cases := []struct {
		name      string
		opts      []dijkstra.Option
		wantOrder []core.Handle
		wantPrevD core.Handle
	}{
		{"first", nil, []core.Handle{A, B, C}, B},
		{"last", []dijkstra.Option{dijkstra.WithTieBreak(dijkstra.TieBreakLast)}, []core.Handle{A, C, B}, C},
		{"last+replace", []dijkstra.Option{
			dijkstra.WithTieBreak(dijkstra.TieBreakLast),
			dijkstra.WithReplaceEqualCost(),
		}, []core.Handle{A, C, B}, B},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := dijkstra.Dijkstra(diamond(t), A, tc.opts...)
			require.NoError(t, err)
			assert.Equal(t, tc.wantOrder, res.Order)
			assert.Equal(t, int64(2), res.Dist[D])
			assert.Equal(t, tc.wantPrevD, res.Prev[D], "first settled predecessor stays unless replacement is enabled")
		})
	}
}

func TestShortestPath_FromB(t *testing.T) {
	g := demoRoutes(t)

	p, err := dijkstra.ShortestPath(g, B, E)
	require.NoError(t, err)
	assert.Equal(t, int64(12), p.Distance)
	assert.Equal(t, []core.Handle{B, C, E}, p.Vertices)

	// B→C→D (8) undercuts the direct B→D route (10).
	p, err = dijkstra.ShortestPath(g, B, D)
	require.NoError(t, err)
	assert.Equal(t, int64(8), p.Distance)
	assert.Equal(t, []core.Handle{B, C, D}, p.Vertices)
}

func TestShortestPath_SameVertex(t *testing.T) {
	g := demoRoutes(t)

	p, err := dijkstra.ShortestPath(g, C, C)
	require.NoError(t, err)
	assert.Equal(t, int64(0), p.Distance)
	assert.Equal(t, []core.Handle{C}, p.Vertices)
}

func TestShortestPath_Unreachable(t *testing.T) {
	g := demoRoutes(t)

	// E has no outgoing routes.
	_, err := dijkstra.ShortestPath(g, E, A)
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)

	res, err := dijkstra.Dijkstra(g, E)
	require.NoError(t, err)
	assert.Equal(t, []core.Handle{E}, res.Order)
	assert.False(t, res.Reachable(A))
	assert.True(t, res.Reachable(E))
}

// ------------------------------------------------------------------------
// 3. Options and edge cases.
// ------------------------------------------------------------------------

func TestDijkstra_EarlyStop(t *testing.T) {
	g := demoRoutes(t)

	res, err := dijkstra.Dijkstra(g, A, dijkstra.WithTarget(C))
	require.NoError(t, err)
	assert.Equal(t, []core.Handle{A, C}, res.Order)
	// D was not relaxed from C yet.
	assert.Equal(t, dijkstra.Infinity, res.Dist[D])
}

func TestDijkstra_MaxDistance(t *testing.T) {
	g := demoRoutes(t)

	res, err := dijkstra.Dijkstra(g, A, dijkstra.WithMaxDistance(4))
	require.NoError(t, err)
	assert.True(t, res.Reachable(B))
	assert.True(t, res.Reachable(C))
	assert.False(t, res.Reachable(D))
	assert.False(t, res.Reachable(E))
}

func TestDijkstra_InfEdgeThreshold(t *testing.T) {
	g := demoRoutes(t)

	// Walls on every route of weight ≥ 7: C→E and B→D are closed.
	p, err := dijkstra.ShortestPath(g, A, E, dijkstra.WithInfEdgeThreshold(7))
	require.NoError(t, err)
	assert.Equal(t, int64(9), p.Distance)
	assert.Equal(t, []core.Handle{A, C, D, E}, p.Vertices)
}

func TestDijkstra_ParallelRoutesAndLoops(t *testing.T) {
	g := core.NewRouteMap()
	x, _ := g.Register("X")
	y, _ := g.Register("Y")
	require.NoError(t, g.AddEdge(x, x, 1))
	require.NoError(t, g.AddEdge(x, y, 8))
	require.NoError(t, g.AddEdge(x, y, 3))

	p, err := dijkstra.ShortestPath(g, x, y)
	require.NoError(t, err)
	assert.Equal(t, int64(3), p.Distance, "cheapest parallel route wins")
}

func TestDijkstra_OverflowIsNoImprovement(t *testing.T) {
	g := core.NewRouteMap()
	x, _ := g.Register("X")
	y, _ := g.Register("Y")
	z, _ := g.Register("Z")
	require.NoError(t, g.AddEdge(x, y, math.MaxInt64-1))
	require.NoError(t, g.AddEdge(y, z, 5))

	res, err := dijkstra.Dijkstra(g, x)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64-1), res.Dist[y])
	assert.False(t, res.Reachable(z))
}

func TestResult_PathToOutOfRange(t *testing.T) {
	g := demoRoutes(t)
	res, err := dijkstra.Dijkstra(g, A)
	require.NoError(t, err)

	_, err = res.PathTo(-3)
	assert.ErrorIs(t, err, core.ErrInvalidVertex)
	_, err = res.PathTo(E + 1)
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)
}
