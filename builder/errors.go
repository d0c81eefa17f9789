// SPDX-License-Identifier: MIT
// Package: slotgraph/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Constructors attach context with %w; option constructors panic instead.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed
// or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a store that rejected
// a vertex or an edge (for example when capacity runs out).
var ErrConstructFailed = errors.New("builder: construction failed")
