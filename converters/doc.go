// Package converters provides two-way adapters between core.Store and
// gonum graphs (gonum.org/v1/gonum/graph/simple).
//
// Export:
//
//   - ToGonumWeighted: route map → simple.WeightedDirectedGraph. Node IDs are
//     handles. Parallel routes collapse to the cheapest one and self-loops are
//     dropped, since gonum simple graphs hold one edge per ordered pair.
//   - ToGonumUndirected: any store → simple.UndirectedGraph, ignoring direction
//     and weight.
//
// Import:
//
//   - FromGonumWeighted: graph.WeightedDirected → route map. Nodes are
//     registered in ascending ID order, and edges are added per source in
//     ascending target order. Weights must be non-negative integers.
//
// Exported graphs let gonum algorithms (path.DijkstraFrom,
// topo.ConnectedComponents, ...) cross-check results computed on a Store.
package converters
