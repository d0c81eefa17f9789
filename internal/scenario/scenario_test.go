// SPDX-License-Identifier: MIT
package scenario_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/slotgraph/core"
	"github.com/katalvlaran/slotgraph/dijkstra"
	"github.com/katalvlaran/slotgraph/internal/scenario"
)

func TestBuiltin_Routes(t *testing.T) {
	def, err := scenario.Builtin(scenario.KindRoutes)
	require.NoError(t, err)
	assert.Equal(t, "cities", def.Name)
	assert.Len(t, def.Vertices, 5)
	assert.Len(t, def.Edges, 8)

	b, err := def.Build()
	require.NoError(t, err)
	assert.True(t, b.Store.Directed())
	assert.True(t, b.Store.Weighted())
	assert.Equal(t, core.RouteCapacity, b.Store.Capacity())
	assert.Equal(t, 8, b.Store.EdgeCount())

	p, err := dijkstra.ShortestPath(b.Store, b.Handles["A"], b.Handles["E"])
	require.NoError(t, err)
	assert.Equal(t, int64(9), p.Distance)
}

func TestBuiltin_Social(t *testing.T) {
	def, err := scenario.Builtin(scenario.KindSocial)
	require.NoError(t, err)

	b, err := def.Build()
	require.NoError(t, err)
	assert.False(t, b.Store.Directed())
	assert.Equal(t, 6, b.Store.ActiveCount())
	// Five friendships, each stored in both lists.
	assert.Equal(t, 10, b.Store.EdgeCount())
	assert.True(t, b.Store.HasEdge(b.Handles["Eve"], b.Handles["David"]))

	deg, err := b.Store.Degree(b.Handles["Frank"])
	require.NoError(t, err)
	assert.Zero(t, deg)
}

func TestBuiltin_UnknownKind(t *testing.T) {
	_, err := scenario.Builtin("trains")
	assert.ErrorIs(t, err, scenario.ErrUnknownKind)
}

func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name    string
		doc     string
		wantErr error
		wantMsg string
	}{
		{
			name:    "unknown kind",
			doc:     "kind: trains\nvertices: [A]\n",
			wantErr: scenario.ErrUnknownKind,
		},
		{
			name:    "duplicate vertex",
			doc:     "kind: social\nvertices: [A, B, A]\n",
			wantErr: scenario.ErrDuplicateVertex,
		},
		{
			name:    "unknown endpoint",
			doc:     "kind: routes\nvertices: [A]\nedges:\n  - {from: A, to: Z, weight: 1}\n",
			wantErr: scenario.ErrUnknownVertex,
		},
		{
			name:    "unknown field",
			doc:     "kind: routes\ncolour: red\n",
			wantMsg: "field colour not found",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			def, err := scenario.Decode(strings.NewReader(tc.doc))
			assert.Nil(t, def)
			require.Error(t, err)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			}
			if tc.wantMsg != "" {
				assert.ErrorContains(t, err, tc.wantMsg)
			}
		})
	}
}

func TestBuild_StoreErrors(t *testing.T) {
	def := &scenario.Definition{
		Kind:     scenario.KindSocial,
		Vertices: []string{"A", "B"},
		Edges:    []scenario.EdgeDef{{From: "A", To: "B", Weight: 3}},
	}
	_, err := def.Build()
	assert.ErrorIs(t, err, core.ErrBadWeight)

	def = &scenario.Definition{
		Kind:     scenario.KindRoutes,
		Capacity: 2,
		Vertices: []string{"A", "B", "C"},
	}
	_, err = def.Build()
	assert.ErrorIs(t, err, core.ErrCapacityExceeded)
}

func TestBuild_CapacityOverridesOptions(t *testing.T) {
	def := &scenario.Definition{Kind: scenario.KindRoutes, Capacity: 7, Vertices: []string{"A"}}
	b, err := def.Build(core.WithCapacity(3))
	require.NoError(t, err)
	assert.Equal(t, 7, b.Store.Capacity())

	def.Capacity = 0
	b, err = def.Build(core.WithCapacity(3))
	require.NoError(t, err)
	assert.Equal(t, 3, b.Store.Capacity())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.yaml")
	doc := "kind: routes\nvertices: [X, Y]\nedges:\n  - {from: X, to: Y, weight: 11}\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	def, err := scenario.Load(path)
	require.NoError(t, err)
	b, err := def.Build()
	require.NoError(t, err)
	edges, err := b.Store.Neighbors(b.Handles["X"])
	require.NoError(t, err)
	require.Len(t, edges, 1)
	assert.Equal(t, int64(11), edges[0].Weight)

	_, err = scenario.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFromStore_RoundTrip(t *testing.T) {
	for _, kind := range []scenario.Kind{scenario.KindRoutes, scenario.KindSocial} {
		t.Run(string(kind), func(t *testing.T) {
			def, err := scenario.Builtin(kind)
			require.NoError(t, err)
			b, err := def.Build()
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, scenario.FromStore(kind, b.Store).Encode(&buf))

			again, err := scenario.Decode(&buf)
			require.NoError(t, err)
			assert.Equal(t, def.Vertices, again.Vertices)
			assert.Len(t, again.Edges, len(def.Edges))

			rebuilt, err := again.Build()
			require.NoError(t, err)
			assert.Equal(t, b.Store.EdgeCount(), rebuilt.Store.EdgeCount())
			for _, e := range def.Edges {
				assert.True(t, rebuilt.Store.HasEdge(rebuilt.Handles[e.From], rebuilt.Handles[e.To]),
					"%s->%s", e.From, e.To)
			}
		})
	}
}
