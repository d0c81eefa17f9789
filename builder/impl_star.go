// SPDX-License-Identifier: MIT
// Package: slotgraph/builder
//
// impl_star.go: Star and Complete constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/slotgraph/core"
)

const (
	methodStar     = "Star"
	methodComplete = "Complete"
)

// Star returns a Constructor for a hub with n-1 spokes. The hub is the first
// registered vertex and every spoke edge points hub → leaf. Requires n ≥ 2.
//
// Complexity: O(n) vertices and O(n) edges.
func Star(n int) Constructor {
	return func(s *core.Store, cfg builderConfig) error {
		if n < 2 {
			return fmt.Errorf("%s: n=%d < 2: %w", methodStar, n, ErrTooFewVertices)
		}
		hs, err := cfg.register(s, methodStar, n)
		if err != nil {
			return err
		}
		var i int
		for i = 1; i < n; i++ {
			if err = cfg.connect(s, methodStar, hs[0], hs[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor for K_n. Directed stores receive both
// i → j and j → i; undirected stores receive one symmetric edge per pair.
// Requires n ≥ 1.
//
// Complexity: O(n) vertices and O(n²) edges.
func Complete(n int) Constructor {
	return func(s *core.Store, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < 1: %w", methodComplete, n, ErrTooFewVertices)
		}
		hs, err := cfg.register(s, methodComplete, n)
		if err != nil {
			return err
		}
		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if err = cfg.connect(s, methodComplete, hs[i], hs[j]); err != nil {
					return err
				}
				if !s.Directed() {
					continue
				}
				if err = cfg.connect(s, methodComplete, hs[j], hs[i]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
