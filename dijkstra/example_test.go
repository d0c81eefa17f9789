// SPDX-License-Identifier: MIT
// Package dijkstra_test provides examples demonstrating the shortest-path API.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/slotgraph/core"
	"github.com/katalvlaran/slotgraph/dijkstra"
)

// ExampleShortestPath demonstrates path reconstruction on a small route map.
func ExampleShortestPath() {
	// 1) Build a directed, weighted route map.
	g := core.NewRouteMap()
	a, _ := g.Register("A")
	b, _ := g.Register("B")
	c, _ := g.Register("C")
	d, _ := g.Register("D")

	// 2) Add one-way routes.
	_ = g.AddEdge(a, b, 2)
	_ = g.AddEdge(a, c, 1)
	_ = g.AddEdge(c, b, 1)
	_ = g.AddEdge(b, d, 3)
	_ = g.AddEdge(c, d, 5)

	// 3) Ask for the cheapest A → D path.
	p, err := dijkstra.ShortestPath(g, a, d)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i, h := range p.Vertices {
		label, _ := g.Label(h)
		if i > 0 {
			fmt.Print(" -> ")
		}
		fmt.Print(label)
	}
	fmt.Printf(" (%d)\n", p.Distance)

	// Output: A -> B -> D (5)
}

// ExampleDijkstra shows single-source distances and unreachable slots.
func ExampleDijkstra() {
	g := core.NewRouteMap()
	a, _ := g.Register("A")
	b, _ := g.Register("B")
	c, _ := g.Register("C")
	_ = g.AddEdge(a, b, 7)

	res, _ := dijkstra.Dijkstra(g, a)
	fmt.Println(res.Dist[b], res.Reachable(c))

	_, err := res.PathTo(c)
	fmt.Println(err)

	// Output:
	// 7 false
	// dijkstra: destination unreachable: 2 from 0
}
