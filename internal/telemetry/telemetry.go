// SPDX-License-Identifier: MIT

// Package telemetry configures OpenTelemetry tracing for the CLI.
package telemetry

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// ServiceName is reported as service.name on every span.
const ServiceName = "slotgraph"

// Shutdown flushes and stops a provider.
type Shutdown func(context.Context) error

// Init returns a tracer provider. When enabled is false the provider is a
// no-op; otherwise finished spans are written to w as JSON, one per line.
// The provider is also installed as the global one.
func Init(w io.Writer, enabled bool, version string) (trace.TracerProvider, Shutdown, error) {
	if !enabled {
		tp := noop.NewTracerProvider()
		otel.SetTracerProvider(tp)

		return tp, func(context.Context) error { return nil }, nil
	}

	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return nil, nil, fmt.Errorf("telemetry: stdout exporter: %w", err)
	}

	res := resource.NewSchemaless(
		semconv.ServiceName(ServiceName),
		semconv.ServiceVersion(version),
	)

	// Syncer exports each span as it ends; CLI runs are short.
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	return tp, tp.Shutdown, nil
}
