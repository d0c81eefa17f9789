// SPDX-License-Identifier: MIT
// Package: slotgraph/builder
//
// impl_random_sparse.go: Erdős–Rényi G(n, p) constructor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/slotgraph/core"
)

const methodRandomSparse = "RandomSparse"

// RandomSparse returns a Constructor for G(n, p): every candidate edge is
// kept independently with probability p. Undirected stores consider each
// unordered pair once; directed stores consider every ordered pair i ≠ j.
// Requires n ≥ 1, p in [0,1] and an RNG (WithSeed or WithRand).
//
// Complexity: O(n²) coin flips.
func RandomSparse(n int, p float64) Constructor {
	return func(s *core.Store, cfg builderConfig) error {
		// 1) Validate
		if n < 1 {
			return fmt.Errorf("%s: n=%d < 1: %w", methodRandomSparse, n, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.4f: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Register vertices
		hs, err := cfg.register(s, methodRandomSparse, n)
		if err != nil {
			return err
		}

		// 3) Flip a coin per candidate edge, in fixed order for determinism
		var i, j int
		for i = 0; i < n; i++ {
			j = 0
			if !s.Directed() {
				j = i + 1
			}
			for ; j < n; j++ {
				if i == j || cfg.rng.Float64() >= p {
					continue
				}
				if err = cfg.connect(s, methodRandomSparse, hs[i], hs[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
