// SPDX-License-Identifier: MIT

// Package service exposes a core.Store through labels instead of handles.
// Every operation is traced, counted, and logged; the algorithms underneath
// stay free of any of that.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/slotgraph/core"
	"github.com/katalvlaran/slotgraph/dijkstra"
	"github.com/katalvlaran/slotgraph/internal/index"
	"github.com/katalvlaran/slotgraph/internal/metrics"
	"github.com/katalvlaran/slotgraph/internal/scenario"
)

// TracerName is the instrumentation scope of the service spans.
const TracerName = "slotgraph/service"

// Re-exported resolution errors.
var (
	ErrUnknownLabel   = index.ErrUnknownLabel
	ErrAmbiguousLabel = index.ErrAmbiguousLabel
)

// Network is a label-addressed graph. It is not safe for concurrent mutation.
type Network struct {
	id      uuid.UUID
	kind    scenario.Kind
	store   *core.Store
	labels  *index.Labels
	logger  *slog.Logger
	tracer  trace.Tracer
	metrics *metrics.Collector
}

// Option configures a Network.
type Option func(*Network)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(n *Network) {
		if l != nil {
			n.logger = l
		}
	}
}

// WithTracerProvider sets the provider spans are started from. The default
// is the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(n *Network) {
		if tp != nil {
			n.tracer = tp.Tracer(TracerName)
		}
	}
}

// WithMetrics sets the collector. The default is a private collector
// without runtime metrics.
func WithMetrics(c *metrics.Collector) Option {
	return func(n *Network) {
		if c != nil {
			n.metrics = c
		}
	}
}

// New wraps store. Vertices already registered are indexed by label.
func New(kind scenario.Kind, store *core.Store, opts ...Option) *Network {
	n := &Network{
		id:     uuid.New(),
		kind:   kind,
		store:  store,
		labels: index.FromStore(store),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		tracer: otel.Tracer(TracerName),
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.metrics == nil {
		n.metrics = metrics.New(false)
	}
	n.logger = n.logger.With(
		slog.String("network", n.id.String()),
		slog.String("kind", string(kind)),
	)
	n.publishSize()

	return n
}

// Open builds the store described by def and wraps it.
func Open(def *scenario.Definition, storeOpts []core.GraphOption, opts ...Option) (*Network, error) {
	built, err := def.Build(storeOpts...)
	if err != nil {
		return nil, err
	}

	return New(def.Kind, built.Store, opts...), nil
}

// ID identifies this network in logs and spans.
func (n *Network) ID() uuid.UUID { return n.id }

// Kind reports the store preset.
func (n *Network) Kind() scenario.Kind { return n.kind }

// Store returns the underlying store.
func (n *Network) Store() *core.Store { return n.store }

// Metrics returns the collector the network records into.
func (n *Network) Metrics() *metrics.Collector { return n.metrics }

// Resolve maps a label or "#id" reference to an active handle.
func (n *Network) Resolve(ref string) (core.Handle, error) {
	h, err := n.labels.Resolve(ref)
	if err != nil {
		return core.NoHandle, err
	}
	if !n.store.IsActive(h) {
		return core.NoHandle, fmt.Errorf("%w: handle %d", core.ErrInvalidVertex, h)
	}

	return h, nil
}

// Label returns the stored label of h, or "#h" when h is not active.
func (n *Network) Label(h core.Handle) string {
	label, err := n.store.Label(h)
	if err != nil {
		return fmt.Sprintf("%s%d", index.RefPrefix, h)
	}

	return label
}

// Labels maps handles to labels, preserving order.
func (n *Network) Labels(hs []core.Handle) []string {
	out := make([]string, len(hs))
	var i int
	for i = range hs {
		out[i] = n.Label(hs[i])
	}

	return out
}

// Vertices lists the active vertices in ascending handle order.
func (n *Network) Vertices() []core.Vertex {
	return n.store.Vertices()
}

// Edges lists every edge record grouped by source.
func (n *Network) Edges() []core.Edge {
	return n.store.Edges()
}

// Reset deactivates every vertex and drops every edge.
func (n *Network) Reset(ctx context.Context) {
	_ = n.run(ctx, "reset", nil, func(context.Context, trace.Span) error {
		n.store.Reset()
		n.labels = index.New()
		n.publishSize()

		return nil
	})
}

// run executes fn inside a span, then records metrics and a log line.
func (n *Network) run(ctx context.Context, op string, attrs []attribute.KeyValue, fn func(context.Context, trace.Span) error) error {
	ctx, span := n.tracer.Start(ctx, "Network."+op, trace.WithAttributes(
		attribute.String("network.id", n.id.String()),
		attribute.String("graph.kind", string(n.kind)),
	))
	defer span.End()
	span.SetAttributes(attrs...)

	start := time.Now()
	err := fn(ctx, span)

	// No route is a valid answer, not a failure.
	if errors.Is(err, dijkstra.ErrUnreachable) {
		n.metrics.ObserveResult(op, start, metrics.ResultUnreachable)
		span.SetAttributes(attribute.Bool("reachable", false))
		n.logger.DebugContext(ctx, "operation done",
			slog.String("op", op),
			slog.Bool("reachable", false),
			slog.Duration("elapsed", time.Since(start)),
		)

		return err
	}
	n.metrics.Observe(op, start, err)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		n.logger.WarnContext(ctx, "operation failed", slog.String("op", op), slog.Any("error", err))

		return err
	}
	n.logger.DebugContext(ctx, "operation done",
		slog.String("op", op),
		slog.Duration("elapsed", time.Since(start)),
	)

	return nil
}

// resolve resolves ref and tags span with it.
func (n *Network) resolve(span trace.Span, key, ref string) (core.Handle, error) {
	h, err := n.Resolve(ref)
	if err != nil {
		return core.NoHandle, err
	}
	span.SetAttributes(attribute.Int(key, int(h)))

	return h, nil
}

func (n *Network) publishSize() {
	n.metrics.SetSize(string(n.kind), n.store.ActiveCount(), n.store.EdgeCount())
}
