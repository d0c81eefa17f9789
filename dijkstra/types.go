// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors, Options, Result/Path records and path reconstruction.

package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/slotgraph/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Store was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates that the store was not built weighted.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrUnreachable indicates that no path exists from the source to the destination.
	// It is a terminal result, not an algorithm failure.
	ErrUnreachable = errors.New("dijkstra: destination unreachable")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Infinity is the distance of a vertex that has not been reached.
const Infinity int64 = math.MaxInt64

// TieBreak selects which vertex is settled among equal minima.
type TieBreak int

const (
	// TieBreakFirst settles the lowest-handle vertex among equal minima and
	// keeps the first predecessor found for equal-cost paths.
	TieBreakFirst TieBreak = iota

	// TieBreakLast settles the highest-handle vertex among equal minima.
	// Relaxation stays strict; see WithReplaceEqualCost for predecessors.
	TieBreakLast
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Target           - settle-and-stop vertex; core.NoHandle runs to exhaustion.
// TieBreak         - selection policy among equal minima, see TieBreakFirst/TieBreakLast.
// ReplaceEqualCost - an equal-cost relaxation replaces the predecessor.
//
//	Default false: relaxation is strict and the first predecessor stays.
//
// MaxDistance      - candidate distances above this cap are not recorded.
//
//	Must be ≥ 0. Default is Infinity (no cap).
//
// InfEdgeThreshold - edges with weight ≥ this threshold are impassable.
//
//	Must be > 0. Default is Infinity (no obstacles).
type Options struct {
	Target           core.Handle
	TieBreak         TieBreak
	ReplaceEqualCost bool
	MaxDistance      int64
	InfEdgeThreshold int64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithTarget stops the run as soon as h is settled.
func WithTarget(h core.Handle) Option {
	return func(o *Options) {
		o.Target = h
	}
}

// WithTieBreak sets which vertex is settled among equal minima.
func WithTieBreak(tb TieBreak) Option {
	return func(o *Options) {
		o.TieBreak = tb
	}
}

// WithReplaceEqualCost lets a later relaxation that ties the recorded
// distance take over the predecessor. Distances are unaffected.
func WithReplaceEqualCost() Option {
	return func(o *Options) {
		o.ReplaceEqualCost = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value stay unreached.
// Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as impassable.
// Zero or negative values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns the defaults: no target, TieBreakFirst, no distance
// cap, no impassable edges.
func DefaultOptions() Options {
	return Options{
		Target:           core.NoHandle,
		TieBreak:         TieBreakFirst,
		MaxDistance:      Infinity,
		InfEdgeThreshold: Infinity,
	}
}

// Result holds the outcome of a single-source run.
//
// Dist and Prev are indexed by handle and sized to the store capacity.
// Dist[v] == Infinity for unreached or inactive slots; Prev[v] == core.NoHandle
// for the source and for unreached slots. Order lists settled vertices in the
// order they were finalized, so Dist along Order is non-decreasing.
type Result struct {
	Source core.Handle
	Dist   []int64
	Prev   []core.Handle
	Order  []core.Handle
}

// Path is a reconstructed shortest path.
type Path struct {
	Source      core.Handle
	Destination core.Handle
	Distance    int64
	Vertices    []core.Handle // Source first, Destination last
}

// Reachable reports whether dest received a finite distance.
func (r *Result) Reachable(dest core.Handle) bool {
	return dest >= 0 && int(dest) < len(r.Dist) && r.Dist[dest] != Infinity
}

// PathTo rebuilds the path from the source to dest by walking Prev backwards.
//
// Errors:
//   - core.ErrInvalidVertex (wrapped) if dest is out of range.
//   - ErrUnreachable if dest has no finite distance.
//
// Complexity: O(path length).
func (r *Result) PathTo(dest core.Handle) (*Path, error) {
	if dest < 0 || int(dest) >= len(r.Dist) {
		return nil, fmt.Errorf("%w: handle %d", core.ErrInvalidVertex, dest)
	}
	if r.Dist[dest] == Infinity {
		return nil, fmt.Errorf("%w: %d from %d", ErrUnreachable, dest, r.Source)
	}

	// 1) Walk predecessors; at most len(Prev) hops.
	var rev []core.Handle
	cur := dest
	for steps := 0; cur != core.NoHandle && steps <= len(r.Prev); steps++ {
		rev = append(rev, cur)
		if cur == r.Source {
			break
		}
		cur = r.Prev[cur]
	}

	// 2) Reverse into source-first order.
	n := len(rev)
	vertices := make([]core.Handle, n)
	var i int
	for i = range rev {
		vertices[n-1-i] = rev[i]
	}

	return &Path{
		Source:      r.Source,
		Destination: dest,
		Distance:    r.Dist[dest],
		Vertices:    vertices,
	}, nil
}
