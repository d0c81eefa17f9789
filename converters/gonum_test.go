// SPDX-License-Identifier: MIT
package converters_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/slotgraph/builder"
	"github.com/katalvlaran/slotgraph/converters"
	"github.com/katalvlaran/slotgraph/core"
	"github.com/katalvlaran/slotgraph/dfs"
	"github.com/katalvlaran/slotgraph/dijkstra"
)

// randomRoutes builds a route map with n cities and m random routes,
// including parallel routes and self-loops.
func randomRoutes(t *testing.T, seed int64, n, m int) *core.Store {
	t.Helper()

	rng := rand.New(rand.NewSource(seed))
	s := core.NewRouteMap(core.WithCapacity(n))
	for i := 0; i < n; i++ {
		_, err := s.Register("city")
		require.NoError(t, err)
	}
	for i := 0; i < m; i++ {
		from := core.Handle(rng.Intn(n))
		to := core.Handle(rng.Intn(n))
		require.NoError(t, s.AddEdge(from, to, int64(rng.Intn(20))))
	}

	return s
}

func TestToGonumWeighted_Errors(t *testing.T) {
	_, err := converters.ToGonumWeighted(nil)
	assert.ErrorIs(t, err, converters.ErrNilGraph)

	_, err = converters.ToGonumWeighted(core.NewSocialNetwork())
	assert.ErrorIs(t, err, converters.ErrUnweightedGraph)
}

func TestToGonumWeighted_CollapsesParallelRoutes(t *testing.T) {
	s := core.NewRouteMap()
	a, _ := s.Register("A")
	b, _ := s.Register("B")
	require.NoError(t, s.AddEdge(a, b, 9))
	require.NoError(t, s.AddEdge(a, b, 2))
	require.NoError(t, s.AddEdge(a, b, 5))
	require.NoError(t, s.AddEdge(a, a, 1))

	g, err := converters.ToGonumWeighted(s)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Nodes().Len())
	w, ok := g.Weight(int64(a), int64(b))
	require.True(t, ok)
	assert.Equal(t, 2.0, w)
	assert.Nil(t, g.WeightedEdge(int64(a), int64(a)), "self-loops are dropped")
	assert.False(t, g.HasEdgeFromTo(int64(b), int64(a)))
}

// TestDijkstra_MatchesGonum cross-checks every distance against gonum's Dijkstra.
func TestDijkstra_MatchesGonum(t *testing.T) {
	for _, seed := range []int64{1, 7, 42, 1234} {
		s := randomRoutes(t, seed, 25, 70)
		g, err := converters.ToGonumWeighted(s)
		require.NoError(t, err)

		for _, src := range s.Handles() {
			ours, err := dijkstra.Dijkstra(s, src)
			require.NoError(t, err)
			theirs := path.DijkstraFrom(simple.Node(src), g)

			for _, dst := range s.Handles() {
				_, want := theirs.To(int64(dst))
				if math.IsInf(want, 1) {
					assert.False(t, ours.Reachable(dst), "seed %d: %d→%d", seed, src, dst)
					continue
				}
				assert.Equal(t, int64(want), ours.Dist[dst], "seed %d: %d→%d", seed, src, dst)

				// The reconstructed path sums to the reported distance.
				p, err := ours.PathTo(dst)
				require.NoError(t, err)
				var sum float64
				for i := 1; i < len(p.Vertices); i++ {
					w, ok := g.Weight(int64(p.Vertices[i-1]), int64(p.Vertices[i]))
					require.True(t, ok)
					sum += w
				}
				assert.Equal(t, want, sum)
			}
		}
	}
}

// TestComponents_MatchGonum compares component partitions with gonum's topo package.
func TestComponents_MatchGonum(t *testing.T) {
	s, err := builder.BuildStore(
		[]core.GraphOption{core.WithCapacity(40)},
		[]builder.BuilderOption{builder.WithSeed(3)},
		builder.RandomSparse(40, 0.04),
	)
	require.NoError(t, err)

	g, err := converters.ToGonumUndirected(s)
	require.NoError(t, err)

	ours, err := dfs.Components(s)
	require.NoError(t, err)

	var want [][]int64
	for _, cc := range topo.ConnectedComponents(g) {
		ids := make([]int64, 0, len(cc))
		for _, n := range cc {
			ids = append(ids, n.ID())
		}
		want = append(want, ids)
	}
	var got [][]int64
	for _, grp := range ours {
		ids := make([]int64, 0, len(grp))
		for _, h := range grp {
			ids = append(ids, int64(h))
		}
		got = append(got, ids)
	}

	assert.Equal(t, canonical(want), canonical(got))
}

func TestFromGonumWeighted(t *testing.T) {
	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(10), simple.Node(30), 4))
	g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(10), simple.Node(20), 1))
	g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(20), simple.Node(30), 2))

	s, handles, err := converters.FromGonumWeighted(g, nil)
	require.NoError(t, err)
	assert.Equal(t, map[int64]core.Handle{10: 0, 20: 1, 30: 2}, handles)
	assert.Equal(t, 3, s.Capacity())

	label, err := s.Label(handles[20])
	require.NoError(t, err)
	assert.Equal(t, "20", label)

	// Targets are added in ascending order, so the list reads highest first.
	nbs, err := s.NeighborHandles(handles[10])
	require.NoError(t, err)
	assert.Equal(t, []core.Handle{handles[30], handles[20]}, nbs)

	p, err := dijkstra.ShortestPath(s, handles[10], handles[30])
	require.NoError(t, err)
	assert.Equal(t, int64(3), p.Distance)
}

func TestFromGonumWeighted_BadWeight(t *testing.T) {
	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(1), simple.Node(2), 1.5))

	_, _, err := converters.FromGonumWeighted(g, nil)
	assert.ErrorIs(t, err, converters.ErrNonIntegralWeight)

	_, _, err = converters.FromGonumWeighted(nil, nil)
	assert.ErrorIs(t, err, converters.ErrNilGraph)
}

func TestRoundTrip(t *testing.T) {
	s := randomRoutes(t, 99, 12, 30)
	g, err := converters.ToGonumWeighted(s)
	require.NoError(t, err)

	back, _, err := converters.FromGonumWeighted(g, nil)
	require.NoError(t, err)
	g2, err := converters.ToGonumWeighted(back)
	require.NoError(t, err)

	for _, u := range s.Handles() {
		for _, v := range s.Handles() {
			w1, ok1 := g.Weight(int64(u), int64(v))
			w2, ok2 := g2.Weight(int64(u), int64(v))
			assert.Equal(t, ok1, ok2)
			assert.Equal(t, w1, w2)
		}
	}
}

// canonical sorts each group and then the groups by first element.
func canonical(groups [][]int64) [][]int64 {
	for _, g := range groups {
		sort.Slice(g, func(i, j int) bool { return g[i] < g[j] })
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i][0] < groups[j][0] })

	return groups
}
