// SPDX-License-Identifier: MIT
// Package: slotgraph/builder
//
// weight_fn.go: edge weight generators for weighted stores.

package builder

import (
	"fmt"
	"math/rand"
)

// WeightFn draws one edge weight. rng may be nil when no seed was given.
type WeightFn func(rng *rand.Rand) int64

// ConstantWeightFn always returns w. Panics if w < 0.
func ConstantWeightFn(w int64) WeightFn {
	if w < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: negative weight %d", w))
	}

	return func(*rand.Rand) int64 { return w }
}

// UniformWeightFn draws uniformly from [min, max]. Without an RNG it
// returns min. Panics if min < 0 or max < min.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: bad range [%d,%d]", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}
