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

// MetricsRecorder records template expansion metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordPlaceholder records one placeholder lookup for a template namespace.
	RecordPlaceholder(ctx context.Context, namespace string, resolved bool)

	// RecordRefStripped records removal of a highlights_ref marker.
	RecordRefStripped(ctx context.Context)

	// RecordDocument records a completed document expansion.
	RecordDocument(ctx context.Context, duration time.Duration, unresolved int)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	placeholders metric.Int64Counter
	unresolved   metric.Int64Counter
	refsStripped metric.Int64Counter
	documents    metric.Int64Counter
	latency      metric.Float64Histogram
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
	meter := otel.Meter("locktext")

	placeholders, err := meter.Int64Counter("locktext.placeholder.lookups",
		metric.WithDescription("Number of placeholder lookups"),
	)
	if err != nil {
		return nil, err
	}

	unresolved, err := meter.Int64Counter("locktext.placeholder.unresolved",
		metric.WithDescription("Number of placeholders whose key was not found"),
	)
	if err != nil {
		return nil, err
	}

	refsStripped, err := meter.Int64Counter("locktext.highlights_ref.stripped",
		metric.WithDescription("Number of highlights_ref markers removed"),
	)
	if err != nil {
		return nil, err
	}

	documents, err := meter.Int64Counter("locktext.document.expansions",
		metric.WithDescription("Number of documents expanded"),
	)
	if err != nil {
		return nil, err
	}

	latency, err := meter.Float64Histogram("locktext.document.latency_ms",
		metric.WithDescription("Document expansion latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		placeholders: placeholders,
		unresolved:   unresolved,
		refsStripped: refsStripped,
		documents:    documents,
		latency:      latency,
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

// RecordPlaceholder records a placeholder lookup.
func (m *otelMetrics) RecordPlaceholder(ctx context.Context, namespace string, resolved bool) {
	attrs := metric.WithAttributes(
		attribute.String("namespace", namespace),
		attribute.Bool("resolved", resolved),
	)
	m.placeholders.Add(ctx, 1, attrs)
	if !resolved {
		m.unresolved.Add(ctx, 1, metric.WithAttributes(attribute.String("namespace", namespace)))
	}
}

// RecordRefStripped records a removed highlights_ref.
func (m *otelMetrics) RecordRefStripped(ctx context.Context) {
	m.refsStripped.Add(ctx, 1)
}

// RecordDocument records a document expansion.
func (m *otelMetrics) RecordDocument(ctx context.Context, duration time.Duration, unresolved int) {
	attrs := metric.WithAttributes(attribute.Bool("complete", unresolved == 0))
	m.documents.Add(ctx, 1, attrs)
	m.latency.Record(ctx, float64(duration.Microseconds())/1000, attrs)
}
