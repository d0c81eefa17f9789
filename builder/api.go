// SPDX-License-Identifier: MIT
// Package: slotgraph/builder
//
// api.go: thin public entry point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildStore(gopts, bopts, cons...). Creates the store,
//     resolves cfg, runs cons in order.
//   - Determinism: same inputs, options, seed and constructor order give
//     identical stores.

package builder

import (
	"fmt"

	"github.com/katalvlaran/slotgraph/core"
)

// Constructor applies a deterministic mutation to s using the resolved
// builderConfig. Constructors validate parameters before touching s and
// return sentinel errors.
type Constructor func(s *core.Store, cfg builderConfig) error

// BuildStore creates a core.Store with gopts, resolves the builder
// configuration from bopts, and applies every constructor in order.
// Any constructor error is wrapped with "BuildStore: %w" and returned
// immediately.
//
// Complexity: O(capacity) for the store plus the cost of each constructor.
func BuildStore(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Store, error) {
	s := core.NewStore(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildStore: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("BuildStore: %w", err)
		}
	}

	return s, nil
}
