// SPDX-License-Identifier: MIT
// Package: slotgraph/builder
//
// impl_path.go: Path and Cycle constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/slotgraph/core"
)

const (
	methodPath  = "Path"
	methodCycle = "Cycle"
)

// Path returns a Constructor that registers n vertices and links them
// v0 → v1 → … → v(n-1). On undirected stores each link is symmetric.
// Requires n ≥ 2.
//
// Complexity: O(n) vertices and O(n) edges.
func Path(n int) Constructor {
	return func(s *core.Store, cfg builderConfig) error {
		if n < 2 {
			return fmt.Errorf("%s: n=%d < 2: %w", methodPath, n, ErrTooFewVertices)
		}

		return chain(s, cfg, methodPath, n, false)
	}
}

// Cycle is Path plus the closing edge v(n-1) → v0. Requires n ≥ 3.
//
// Complexity: O(n) vertices and O(n) edges.
func Cycle(n int) Constructor {
	return func(s *core.Store, cfg builderConfig) error {
		if n < 3 {
			return fmt.Errorf("%s: n=%d < 3: %w", methodCycle, n, ErrTooFewVertices)
		}

		return chain(s, cfg, methodCycle, n, true)
	}
}

func chain(s *core.Store, cfg builderConfig, method string, n int, closed bool) error {
	// 1) Register vertices
	hs, err := cfg.register(s, method, n)
	if err != nil {
		return err
	}

	// 2) Link consecutive vertices
	var i int
	for i = 0; i+1 < n; i++ {
		if err = cfg.connect(s, method, hs[i], hs[i+1]); err != nil {
			return err
		}
	}

	// 3) Optionally close the ring
	if closed {
		return cfg.connect(s, method, hs[n-1], hs[0])
	}

	return nil
}
