package template

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/randalmurphal/locktext/pkg/locktext/document"
	"github.com/randalmurphal/locktext/pkg/locktext/locked"
	"github.com/randalmurphal/locktext/pkg/locktext/observability"
	"github.com/randalmurphal/locktext/pkg/locktext/registry"
)

// placeholderPattern matches a whole string of the form {{key}}.
// The key is captured non-greedily; anything else in the string disqualifies it.
var placeholderPattern = regexp.MustCompile(`^\{\{(.+?)\}\}$`)

// IsPlaceholder reports whether s is exactly a placeholder and returns its key.
func IsPlaceholder(s string) (key string, ok bool) {
	m := placeholderPattern.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Expander replaces placeholder highlights with locked text.
//
// Create with NewExpander() and configure with Option functions.
// Expander is safe for concurrent use after construction.
type Expander struct {
	registry *registry.Registry[string, string]
	logger   *slog.Logger
	metrics  observability.MetricsRecorder
	spans    observability.SpanManager
}

// NewExpander creates a new Expander with the given options.
//
// Default configuration:
//   - Registry: locked.Builtin()
//   - Logger: slog.Default() at call time
//   - Metrics and spans: no-op
func NewExpander(opts ...Option) *Expander {
	e := &Expander{
		registry: locked.Builtin(),
		metrics:  observability.NoopMetrics{},
		spans:    observability.NoopSpanManager{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Stats summarises one expansion.
type Stats struct {
	// Jobs is the number of object entries visited in work.
	Jobs int
	// Highlights is the number of highlight strings inspected.
	Highlights int
	// Expanded is the number of placeholders replaced.
	Expanded int
	// RefsStripped is the number of highlights_ref fields removed.
	RefsStripped int
	// Unresolved lists keys left in place, in document order.
	Unresolved []string
}

// Expand returns a copy of doc with every resolvable placeholder highlight
// replaced by its locked text. doc is never modified.
//
// Example:
//
//	exp := NewExpander()
//	out := exp.Expand(document.Document{
//	    "work": []any{map[string]any{"highlights": []any{"{{york.0}}"}}},
//	})
func (e *Expander) Expand(doc document.Document) document.Document {
	out, _ := e.ExpandContext(context.Background(), doc)
	return out
}

// ExpandContext is Expand with metrics and tracing bound to ctx.
// It also returns what the expansion did.
func (e *Expander) ExpandContext(ctx context.Context, doc document.Document) (document.Document, Stats) {
	done := observability.TimedOperation()
	ctx, span := e.spans.StartExpandSpan(ctx, "expand")
	logger := e.log()

	out := doc.Clone()
	stats := Stats{Unresolved: []string{}}

	out.EachJob(func(i int, job map[string]any) {
		stats.Jobs++

		if ref, ok := job[document.FieldHighlightsRef]; ok {
			delete(job, document.FieldHighlightsRef)
			stats.RefsStripped++
			e.metrics.RecordRefStripped(ctx)
			observability.LogRefStripped(logger, i, ref)
		}

		resolve := func(j int, s string) string {
			stats.Highlights++
			key, ok := IsPlaceholder(s)
			if !ok {
				return s
			}
			text, found := e.registry.Get(key)
			e.metrics.RecordPlaceholder(ctx, locked.Namespace(key), found)
			if !found {
				stats.Unresolved = append(stats.Unresolved, key)
				observability.LogUnresolvedKey(logger, key, i, j)
				e.spans.AddSpanEvent(ctx, "template_unresolved", attribute.String("key", key))
				return s
			}
			stats.Expanded++
			return text
		}

		switch highlights := job[document.FieldHighlights].(type) {
		case []any:
			for j, h := range highlights {
				if s, ok := h.(string); ok {
					highlights[j] = resolve(j, s)
				}
			}
		case []string:
			for j, s := range highlights {
				highlights[j] = resolve(j, s)
			}
		}
	})

	elapsed := done()
	e.metrics.RecordDocument(ctx, time.Duration(elapsed*float64(time.Millisecond)), len(stats.Unresolved))
	observability.LogExpandComplete(logger, elapsed, stats.Expanded, len(stats.Unresolved))
	e.spans.EndSpanWithError(span, nil)

	return out, stats
}

// FindUnexpanded returns the key of every placeholder highlight whose key is
// not in the registry, in document order. Repeated keys are reported each
// time they occur. doc is not modified.
func (e *Expander) FindUnexpanded(doc document.Document) []string {
	unexpanded := []string{}
	doc.EachJob(func(_ int, job map[string]any) {
		check := func(s string) {
			if key, ok := IsPlaceholder(s); ok && !e.registry.Has(key) {
				unexpanded = append(unexpanded, key)
			}
		}
		switch highlights := job[document.FieldHighlights].(type) {
		case []any:
			for _, h := range highlights {
				if s, ok := h.(string); ok {
					check(s)
				}
			}
		case []string:
			for _, s := range highlights {
				check(s)
			}
		}
	})
	return unexpanded
}

// Validate returns an *UnresolvedError when doc holds placeholders the
// registry cannot resolve, and nil otherwise.
func (e *Expander) Validate(doc document.Document) error {
	if keys := e.FindUnexpanded(doc); len(keys) > 0 {
		return &UnresolvedError{Keys: keys}
	}
	return nil
}

// Keys returns every key the expander can resolve, in ascending order.
func (e *Expander) Keys() []string {
	return e.registry.Keys()
}

// Lookup returns the locked text for key.
func (e *Expander) Lookup(key string) (string, bool) {
	return e.registry.Get(key)
}

func (e *Expander) log() *slog.Logger {
	if e.logger != nil {
		return e.logger
	}
	return slog.Default()
}

// UnresolvedError is returned by Validate when one or more placeholder
// keys are missing from the registry.
type UnresolvedError struct {
	// Keys lists the unresolved keys in document order.
	Keys []string
}

// Error implements the error interface.
func (e *UnresolvedError) Error() string {
	if len(e.Keys) == 1 {
		return fmt.Sprintf("unresolved template key: %s", e.Keys[0])
	}
	return fmt.Sprintf("unresolved template keys: %s", strings.Join(e.Keys, ", "))
}

// defaultExpander is the package-level expander over the builtin registry.
var defaultExpander = NewExpander()

// Expand expands placeholders in doc using the builtin registry.
func Expand(doc document.Document) document.Document {
	return defaultExpander.Expand(doc)
}

// FindUnexpanded reports placeholders in doc that the builtin registry
// cannot resolve.
func FindUnexpanded(doc document.Document) []string {
	return defaultExpander.FindUnexpanded(doc)
}

// Validate checks doc against the builtin registry.
func Validate(doc document.Document) error {
	return defaultExpander.Validate(doc)
}

// AvailableKeys returns every builtin template key, in ascending order.
func AvailableKeys() []string {
	return defaultExpander.Keys()
}
