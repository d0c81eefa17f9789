// SPDX-License-Identifier: MIT
// Package suggest computes second-degree connection suggestions on a
// core.Store: vertices that are neither the user nor a direct neighbor, but
// are a neighbor of one of the user's direct neighbors.
//
// Policy:
//
//   - The user and every direct neighbor start out excluded.
//   - Direct neighbors are walked in adjacency-list order, and each one's
//     neighbors in their own list order.
//   - Every vertex found that is not excluded is emitted and immediately
//     excluded, so a candidate reachable through several friends is
//     suggested once, attributed to the first friend that reached it.
//
// Complexity: O(sum of the degrees of the user's neighbors), O(C) space.
package suggest

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/slotgraph/core"
)

// ErrGraphNil is returned when a nil store is passed.
var ErrGraphNil = errors.New("suggest: graph is nil")

// Suggestion is one second-degree candidate.
type Suggestion struct {
	// Vertex is the suggested vertex.
	Vertex core.Handle

	// Via is the direct neighbor of the user through which Vertex was found.
	Via core.Handle
}

// Suggest returns the second-degree suggestions for user in emission order.
// An isolated user, or one whose friends have no other friends, yields an
// empty, non-nil slice.
//
// Errors: ErrGraphNil, core.ErrInvalidVertex (wrapped).
func Suggest(g *core.Store, user core.Handle) ([]Suggestion, error) {
	// 1) Validate
	if g == nil {
		return nil, ErrGraphNil
	}
	friends, err := g.NeighborHandles(user)
	if err != nil {
		return nil, fmt.Errorf("suggest: user: %w", err)
	}

	// 2) Exclude the user and every direct neighbor
	excluded := make([]bool, g.Capacity())
	excluded[user] = true
	var f core.Handle
	for _, f = range friends {
		excluded[f] = true
	}

	// 3) Walk neighbors of neighbors
	out := make([]Suggestion, 0)
	var fof []core.Handle
	var c core.Handle
	for _, f = range friends {
		if f == user || !g.IsActive(f) {
			continue
		}
		if fof, err = g.NeighborHandles(f); err != nil {
			return nil, fmt.Errorf("suggest: neighbors of %d: %w", f, err)
		}
		for _, c = range fof {
			if excluded[c] || !g.IsActive(c) {
				continue
			}
			excluded[c] = true
			out = append(out, Suggestion{Vertex: c, Via: f})
		}
	}

	return out, nil
}

// Handles projects suggestions onto their vertices, preserving order.
func Handles(s []Suggestion) []core.Handle {
	out := make([]core.Handle, len(s))
	var i int
	for i = range s {
		out[i] = s[i].Vertex
	}

	return out
}
