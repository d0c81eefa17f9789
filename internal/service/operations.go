// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/slotgraph/bfs"
	"github.com/katalvlaran/slotgraph/core"
	"github.com/katalvlaran/slotgraph/dfs"
	"github.com/katalvlaran/slotgraph/dijkstra"
	"github.com/katalvlaran/slotgraph/suggest"
)

// Register adds a vertex and indexes its stored (possibly truncated) label.
func (n *Network) Register(ctx context.Context, label string) (core.Handle, error) {
	h := core.NoHandle
	err := n.run(ctx, "register", []attribute.KeyValue{attribute.String("label", label)},
		func(_ context.Context, span trace.Span) error {
			var err error
			if h, err = n.store.Register(label); err != nil {
				return err
			}
			n.labels.Add(n.Label(h), h)
			span.SetAttributes(attribute.Int("vertex", int(h)))
			n.publishSize()

			return nil
		})

	return h, err
}

// Connect adds an edge between two references. Social networks take weight 0.
func (n *Network) Connect(ctx context.Context, from, to string, weight int64) error {
	return n.run(ctx, "connect", []attribute.KeyValue{attribute.Int64("weight", weight)},
		func(_ context.Context, span trace.Span) error {
			u, err := n.resolve(span, "from", from)
			if err != nil {
				return err
			}
			v, err := n.resolve(span, "to", to)
			if err != nil {
				return err
			}
			if err = n.store.AddEdge(u, v, weight); err != nil {
				return err
			}
			n.publishSize()

			return nil
		})
}

// Neighbors returns the edges leaving ref, most recent first.
func (n *Network) Neighbors(ctx context.Context, ref string) ([]core.Edge, error) {
	var out []core.Edge
	err := n.run(ctx, "neighbors", nil, func(_ context.Context, span trace.Span) error {
		h, err := n.resolve(span, "vertex", ref)
		if err != nil {
			return err
		}
		out, err = n.store.Neighbors(h)

		return err
	})

	return out, err
}

// ShortestPath returns the cheapest route between two references.
func (n *Network) ShortestPath(ctx context.Context, from, to string, opts ...dijkstra.Option) (*dijkstra.Path, error) {
	var p *dijkstra.Path
	err := n.run(ctx, "path", nil, func(_ context.Context, span trace.Span) error {
		src, err := n.resolve(span, "from", from)
		if err != nil {
			return err
		}
		dst, err := n.resolve(span, "to", to)
		if err != nil {
			return err
		}
		if p, err = dijkstra.ShortestPath(n.store, src, dst, opts...); err != nil {
			return err
		}
		span.SetAttributes(attribute.Int64("distance", p.Distance), attribute.Int("hops", len(p.Vertices)-1))
		n.metrics.Visited("path", len(p.Vertices))

		return nil
	})

	return p, err
}

// Distances runs a full single-source search from ref.
func (n *Network) Distances(ctx context.Context, from string, opts ...dijkstra.Option) (*dijkstra.Result, error) {
	var res *dijkstra.Result
	err := n.run(ctx, "distances", nil, func(_ context.Context, span trace.Span) error {
		src, err := n.resolve(span, "from", from)
		if err != nil {
			return err
		}
		if res, err = dijkstra.Dijkstra(n.store, src, opts...); err != nil {
			return err
		}
		n.metrics.Visited("distances", len(res.Order))

		return nil
	})

	return res, err
}

// BFS reports every vertex reachable from ref with its hop level.
func (n *Network) BFS(ctx context.Context, from string, opts ...bfs.Option) (*bfs.BFSResult, error) {
	var res *bfs.BFSResult
	err := n.run(ctx, "bfs", nil, func(ctx context.Context, span trace.Span) error {
		start, err := n.resolve(span, "start", from)
		if err != nil {
			return err
		}
		opts = append([]bfs.Option{bfs.WithContext(ctx)}, opts...)
		if res, err = bfs.BFS(n.store, start, opts...); err != nil {
			return err
		}
		span.SetAttributes(attribute.Int("visited", len(res.Order)))
		n.metrics.Visited("bfs", len(res.Order))

		return nil
	})

	return res, err
}

// DFS walks depth-first from ref.
func (n *Network) DFS(ctx context.Context, from string, opts ...dfs.Option) (*dfs.DFSResult, error) {
	var res *dfs.DFSResult
	err := n.run(ctx, "dfs", nil, func(ctx context.Context, span trace.Span) error {
		start, err := n.resolve(span, "start", from)
		if err != nil {
			return err
		}
		opts = append([]dfs.Option{dfs.WithContext(ctx)}, opts...)
		if res, err = dfs.DFS(n.store, start, opts...); err != nil {
			return err
		}
		span.SetAttributes(attribute.Int("visited", len(res.Order)))
		n.metrics.Visited("dfs", len(res.Order))

		return nil
	})

	return res, err
}

// Component lists the group reachable from ref in DFS pre-order.
func (n *Network) Component(ctx context.Context, ref string) ([]core.Handle, error) {
	var group []core.Handle
	err := n.run(ctx, "component", nil, func(_ context.Context, span trace.Span) error {
		start, err := n.resolve(span, "start", ref)
		if err != nil {
			return err
		}
		if group, err = dfs.Component(n.store, start); err != nil {
			return err
		}
		span.SetAttributes(attribute.Int("size", len(group)))

		return nil
	})

	return group, err
}

// Components partitions every active vertex into groups.
func (n *Network) Components(ctx context.Context) ([][]core.Handle, error) {
	var groups [][]core.Handle
	err := n.run(ctx, "components", nil, func(_ context.Context, span trace.Span) error {
		var err error
		if groups, err = dfs.Components(n.store); err != nil {
			return err
		}
		span.SetAttributes(attribute.Int("groups", len(groups)))

		return nil
	})

	return groups, err
}

// Connected reports whether b is reachable from a.
func (n *Network) Connected(ctx context.Context, a, b string) (bool, error) {
	var ok bool
	err := n.run(ctx, "connected", nil, func(_ context.Context, span trace.Span) error {
		u, err := n.resolve(span, "from", a)
		if err != nil {
			return err
		}
		v, err := n.resolve(span, "to", b)
		if err != nil {
			return err
		}
		if ok, err = dfs.Connected(n.store, u, v); err != nil {
			return err
		}
		span.SetAttributes(attribute.Bool("connected", ok))

		return nil
	})

	return ok, err
}

// Suggest lists friends of friends of ref that are not yet connected to it.
func (n *Network) Suggest(ctx context.Context, ref string) ([]suggest.Suggestion, error) {
	var out []suggest.Suggestion
	err := n.run(ctx, "suggest", nil, func(_ context.Context, span trace.Span) error {
		user, err := n.resolve(span, "user", ref)
		if err != nil {
			return err
		}
		if out, err = suggest.Suggest(n.store, user); err != nil {
			return fmt.Errorf("service: suggest for %q: %w", ref, err)
		}
		span.SetAttributes(attribute.Int("suggestions", len(out)))

		return nil
	})

	return out, err
}
