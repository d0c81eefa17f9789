// Package builder assembles deterministic core.Store fixtures from
// functional-option building blocks.
//
// The package offers:
//
//   - BuildStore: create a store and run constructors against it in order.
//   - Constructors: Path, Cycle, Star, Complete, Grid, RandomSparse.
//     Each registers its own vertices, so composing constructors yields a
//     disjoint union.
//   - Label schemes (IDFn): DefaultIDFn ("0","1",…), SymbolIDFn ("A".."Z"),
//     ExcelColumnIDFn ("A","Z","AA",…).
//   - Weight generators (WeightFn): ConstantWeightFn, UniformWeightFn.
//
// Guarantees:
//
//   - Same options, seed and constructor order give the same store, handle
//     for handle and edge for edge.
//   - Option constructors panic on meaningless input; constructors return
//     sentinel errors and never panic.
//   - Weights are drawn only when the store is weighted; unweighted stores
//     always receive weight 0.
//
// Complexity is documented per constructor.
package builder
