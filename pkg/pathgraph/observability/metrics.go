package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records pathgraph search metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordSearch records a search completion with its outcome and
	// duration. kind is "paths" or "loops".
	RecordSearch(ctx context.Context, kind string, success bool, duration time.Duration)

	// RecordResults records the result count of a completed search.
	RecordResults(ctx context.Context, kind string, count int)

	// RecordCancellation records a search stopped by cancellation.
	RecordCancellation(ctx context.Context, kind string)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	searches      metric.Int64Counter
	searchLatency metric.Float64Histogram
	resultCounts  metric.Int64Histogram
	cancellations metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("pathgraph")

	searches, err := meter.Int64Counter("pathgraph.searches",
		metric.WithDescription("Number of searches run"),
	)
	if err != nil {
		return nil, err
	}

	searchLatency, err := meter.Float64Histogram("pathgraph.search.latency_ms",
		metric.WithDescription("Search latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	resultCounts, err := meter.Int64Histogram("pathgraph.search.results",
		metric.WithDescription("Results returned per completed search"),
	)
	if err != nil {
		return nil, err
	}

	cancellations, err := meter.Int64Counter("pathgraph.search.cancellations",
		metric.WithDescription("Number of searches stopped by cancellation"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		searches:      searches,
		searchLatency: searchLatency,
		resultCounts:  resultCounts,
		cancellations: cancellations,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordSearch implements MetricsRecorder.
func (m *otelMetrics) RecordSearch(ctx context.Context, kind string, success bool, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.Bool("success", success),
	)
	m.searches.Add(ctx, 1, attrs)
	m.searchLatency.Record(ctx, float64(duration.Milliseconds()), attrs)
}

// RecordResults implements MetricsRecorder.
func (m *otelMetrics) RecordResults(ctx context.Context, kind string, count int) {
	m.resultCounts.Record(ctx, int64(count), metric.WithAttributes(
		attribute.String("kind", kind),
	))
}

// RecordCancellation implements MetricsRecorder.
func (m *otelMetrics) RecordCancellation(ctx context.Context, kind string) {
	m.cancellations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
	))
}
