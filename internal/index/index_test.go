// SPDX-License-Identifier: MIT
package index_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/slotgraph/core"
	"github.com/katalvlaran/slotgraph/internal/index"
)

func TestLabels_FromStore(t *testing.T) {
	g := core.NewSocialNetwork()
	for _, name := range []string{"Alice", "Bob", "Charlie"} {
		_, err := g.Register(name)
		require.NoError(t, err)
	}

	idx := index.FromStore(g)
	assert.Equal(t, 3, idx.Len())
	assert.Equal(t, []core.Handle{1}, idx.Lookup("bob"))
	assert.Equal(t, []core.Handle{2}, idx.Lookup("  CHARLIE "))
	assert.Nil(t, idx.Lookup("Dave"))
}

func TestLabels_Resolve(t *testing.T) {
	idx := index.New()
	idx.Add("Alice", 0)
	idx.Add("Bob", 1)
	idx.Add("bob", 4)

	cases := []struct {
		name    string
		ref     string
		want    core.Handle
		wantErr error
	}{
		{"exact", "Alice", 0, nil},
		{"folded", "aLiCe", 0, nil},
		{"by id", "#4", 4, nil},
		{"by id not indexed", "#9", 9, nil},
		{"unknown", "Zed", core.NoHandle, index.ErrUnknownLabel},
		{"ambiguous", "BOB", core.NoHandle, index.ErrAmbiguousLabel},
		{"bad id", "#x", core.NoHandle, core.ErrInvalidVertex},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := idx.Resolve(tc.ref)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLabels_AddIdempotent(t *testing.T) {
	idx := index.New()
	idx.Add("A", 0)
	idx.Add("A", 0)
	assert.Equal(t, 1, idx.Len())
}

func TestLabels_OrderAndPrefix(t *testing.T) {
	idx := index.New()
	idx.Add("Charlie", 2)
	idx.Add("alice", 0)
	idx.Add("Alfred", 5)
	idx.Add("Bob", 1)

	var labels []string
	idx.Each(func(label string, _ core.Handle) bool {
		labels = append(labels, label)

		return true
	})
	assert.Equal(t, []string{"Alfred", "alice", "Bob", "Charlie"}, labels)

	assert.Equal(t, []core.Handle{5, 0}, idx.WithPrefix("AL"))
	assert.Nil(t, idx.WithPrefix("d"))

	var first []string
	idx.Each(func(label string, _ core.Handle) bool {
		first = append(first, label)

		return len(first) < 2
	})
	assert.Len(t, first, 2)
}
