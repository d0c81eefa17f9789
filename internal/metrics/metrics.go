// SPDX-License-Identifier: MIT

// Package metrics holds the Prometheus collectors recorded by the service
// layer. Each Collector owns its registry so several networks can live in one
// process, and tests stay isolated.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace prefixes every metric name.
const Namespace = "slotgraph"

// Result label values.
const (
	ResultOK          = "ok"
	ResultError       = "error"
	ResultUnreachable = "unreachable"
)

// Collector groups the metrics of one network.
type Collector struct {
	Registry *prometheus.Registry

	// 1. Operations Total (Counter), labeled by operation and result.
	OperationsTotal *prometheus.CounterVec

	// 2. Operation Duration (Histogram), labeled by operation.
	OperationDuration *prometheus.HistogramVec

	// 3. Active vertices (Gauge), labeled by graph kind.
	ActiveVertices *prometheus.GaugeVec

	// 4. Edge records (Gauge), labeled by graph kind.
	EdgeRecords *prometheus.GaugeVec

	// 5. Vertices settled or visited per query (Histogram).
	VisitedVertices *prometheus.HistogramVec
}

// New creates a Collector on a fresh registry. When withRuntime is true the
// Go and process collectors are registered as well.
func New(withRuntime bool) *Collector {
	reg := prometheus.NewRegistry()
	if withRuntime {
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	auto := promauto.With(reg)

	return &Collector{
		Registry: reg,
		OperationsTotal: auto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "operations_total",
				Help:      "Total number of graph operations, by operation and result.",
			},
			[]string{"op", "result"},
		),
		OperationDuration: auto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "operation_duration_seconds",
				Help:      "Duration of graph operations in seconds.",
				// Slot tables are small; most calls finish in microseconds.
				Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
			},
			[]string{"op"},
		),
		ActiveVertices: auto.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Name:      "active_vertices",
				Help:      "Number of active vertex slots.",
			},
			[]string{"kind"},
		),
		EdgeRecords: auto.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Name:      "edge_records",
				Help:      "Number of stored edge records; undirected connections count twice.",
			},
			[]string{"kind"},
		),
		VisitedVertices: auto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "visited_vertices",
				Help:      "Vertices settled or visited by one query.",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
			},
			[]string{"op"},
		),
	}
}

// Observe records one finished operation.
func (c *Collector) Observe(op string, start time.Time, err error) {
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	c.ObserveResult(op, start, result)
}

// ObserveResult counts one call of op under an explicit result label and
// records its duration.
func (c *Collector) ObserveResult(op string, start time.Time, result string) {
	c.OperationsTotal.WithLabelValues(op, result).Inc()
	c.OperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// Visited records how many vertices a query touched.
func (c *Collector) Visited(op string, n int) {
	c.VisitedVertices.WithLabelValues(op).Observe(float64(n))
}

// SetSize publishes the current size of a graph.
func (c *Collector) SetSize(kind string, vertices, edges int) {
	c.ActiveVertices.WithLabelValues(kind).Set(float64(vertices))
	c.EdgeRecords.WithLabelValues(kind).Set(float64(edges))
}

// WriteFile dumps the registry in the text exposition format.
func (c *Collector) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.Registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
