// Package slotgraph is a bounded, slot-based graph engine with two faces:
// a weighted directed route map answering cheapest-route questions, and an
// unweighted undirected social network answering reachability questions.
//
// What is in the box?
//
//	One store, one rule set per face:
//		• Slots: a fixed vertex universe; handles are slot indices, lowest free first
//		• Adjacency: per-vertex singly linked lists, most recent edge first
//		• Routes: one-way, non-negative weights, parallel routes kept
//		• Friendships: symmetric, idempotent, no self-friendship
//
// Queries never mutate the store:
//
//	core/      : Store, Vertex, Edge; Register, AddEdge, Neighbors, Clone, Reset
//	dijkstra/  : array-scan Dijkstra, predecessor paths, tie-break policy
//	bfs/       : hop levels from a start vertex
//	dfs/       : pre/post-order walks, Component(s), Connected
//	suggest/   : friends of friends, annotated with the friend in between
//	converters/: export to and import from gonum graphs
//
// Application plumbing lives under internal/ (label index, YAML scenarios,
// metrics, tracing, config, rendering, the label-addressed service) and the
// slotgraph command under cmd/.
//
// Quick example (the builtin route map):
//
//	A→B 4   A→C 2   B→C 5   B→D 10
//	C→D 3   C→E 7   D→E 4   B→A 6
//
// The cheapest A → E costs 9.
//
//	go install github.com/katalvlaran/slotgraph/cmd/slotgraph@latest
//	slotgraph routes path A E
package slotgraph
