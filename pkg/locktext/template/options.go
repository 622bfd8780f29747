package template

import (
	"log/slog"

	"github.com/randalmurphal/locktext/pkg/locktext/observability"
	"github.com/randalmurphal/locktext/pkg/locktext/registry"
)

// Option configures an Expander.
type Option func(*Expander)

// WithRegistry sets the table placeholders resolve against.
//
// Default: locked.Builtin()
//
// Example:
//
//	r, err := locked.FromFile("templates.yaml")
//	if err != nil {
//	    return err
//	}
//	exp := NewExpander(WithRegistry(r))
func WithRegistry(r *registry.Registry[string, string]) Option {
	return func(e *Expander) {
		if r != nil {
			e.registry = r
		}
	}
}

// WithLogger sets the logger used for unresolved-key warnings.
//
// Default: slog.Default(), looked up on every call
func WithLogger(logger *slog.Logger) Option {
	return func(e *Expander) {
		e.logger = logger
	}
}

// WithMetrics sets the metrics recorder.
//
// Default: observability.NoopMetrics{}
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(e *Expander) {
		if m != nil {
			e.metrics = m
		}
	}
}

// WithSpans sets the span manager.
//
// Default: observability.NoopSpanManager{}
func WithSpans(s observability.SpanManager) Option {
	return func(e *Expander) {
		if s != nil {
			e.spans = s
		}
	}
}
