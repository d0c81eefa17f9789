// SPDX-License-Identifier: MIT
// Package: slotgraph/builder
//
// config.go: resolved builder configuration and edge emission helpers.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/slotgraph/core"
)

// builderConfig is resolved once per BuildStore call and passed by value.
type builderConfig struct {
	// Label strategy: index -> label.
	idFn IDFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator; used only for weighted stores.
	weightFn WeightFn
}

// defaultConstWeight is the weight of every edge on a weighted store unless
// WithWeightFn says otherwise.
const defaultConstWeight int64 = 1

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: ConstantWeightFn(defaultConstWeight),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// register adds n vertices labeled idFn(0..n-1) and returns their handles.
func (cfg builderConfig) register(s *core.Store, method string, n int) ([]core.Handle, error) {
	hs := make([]core.Handle, n)
	var i int
	for i = 0; i < n; i++ {
		h, err := s.Register(cfg.idFn(i))
		if err != nil {
			return nil, fmt.Errorf("%s: Register(%s): %v: %w", method, cfg.idFn(i), err, ErrConstructFailed)
		}
		hs[i] = h
	}

	return hs, nil
}

// connect adds u → v with a weight drawn from the policy.
func (cfg builderConfig) connect(s *core.Store, method string, u, v core.Handle) error {
	var w int64
	if s.Weighted() {
		w = cfg.weightFn(cfg.rng)
	}
	if err := s.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %v: %w", method, u, v, w, err, ErrConstructFailed)
	}

	return nil
}
