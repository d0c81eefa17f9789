// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.
//
// Purpose:
//   - Provide small, deterministic fixtures for the two store presets.
//   - Keep handle bookkeeping out of test bodies.

package core_test

import (
	"testing"

	"github.com/katalvlaran/slotgraph/core"
	"github.com/stretchr/testify/require"
)

// Labels used across core tests.
const (
	CityA = "A"
	CityB = "B"
	CityC = "C"
	CityD = "D"
	CityE = "E"

	UserAlice   = "Alice"
	UserBob     = "Bob"
	UserCharlie = "Charlie"
	UserDavid   = "David"
	UserEve     = "Eve"
	UserFrank   = "Frank"
)

// Concurrency sizes (avoid magic numbers in test bodies).
const (
	NReaders = 50
	NRounds  = 100
)

// route is one weighted directed edge of the demo route map.
type route struct {
	from, to string
	weight   int64
}

// demoRoutes is the A..E route map in insertion order.
var demoRoutes = []route{
	{CityA, CityB, 4},
	{CityA, CityC, 2},
	{CityB, CityC, 5},
	{CityB, CityD, 10},
	{CityC, CityD, 3},
	{CityC, CityE, 7},
	{CityD, CityE, 4},
	{CityB, CityA, 6},
}

// demoFriendships is the Alice..Eve network in insertion order; Frank stays isolated.
var demoFriendships = [][2]string{
	{UserAlice, UserBob},
	{UserAlice, UserCharlie},
	{UserBob, UserDavid},
	{UserCharlie, UserDavid},
	{UserDavid, UserEve},
}

// registerAll registers labels in order and returns label → handle.
func registerAll(t *testing.T, s *core.Store, labels ...string) map[string]core.Handle {
	t.Helper()

	ids := make(map[string]core.Handle, len(labels))
	var label string
	for _, label = range labels {
		h, err := s.Register(label)
		require.NoError(t, err, "Register(%q)", label)
		ids[label] = h
	}

	return ids
}

// NewDemoRoutes builds the A..E route map and returns it with its handles.
func NewDemoRoutes(t *testing.T) (*core.Store, map[string]core.Handle) {
	t.Helper()

	s := core.NewRouteMap()
	ids := registerAll(t, s, CityA, CityB, CityC, CityD, CityE)
	var r route
	for _, r = range demoRoutes {
		require.NoError(t, s.AddEdge(ids[r.from], ids[r.to], r.weight))
	}

	return s, ids
}

// NewDemoSocial builds the Alice..Frank network and returns it with its handles.
func NewDemoSocial(t *testing.T) (*core.Store, map[string]core.Handle) {
	t.Helper()

	s := core.NewSocialNetwork()
	ids := registerAll(t, s, UserAlice, UserBob, UserCharlie, UserDavid, UserEve, UserFrank)
	var f [2]string
	for _, f = range demoFriendships {
		require.NoError(t, s.AddEdge(ids[f[0]], ids[f[1]], 0))
	}

	return s, ids
}

// targets projects edges onto their destination handles.
func targets(edges []core.Edge) []core.Handle {
	var out []core.Handle
	for i := range edges {
		out = append(out, edges[i].To)
	}

	return out
}
