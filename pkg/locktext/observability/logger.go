// Package observability provides structured logging, metrics, and tracing
// for locktext.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

// Log output formats accepted by NewLogger.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ParseLevel converts a level name (debug, info, warn, error) to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
	return level, nil
}

// NewLogger returns a logger writing to w in the given format.
// Unknown formats fall back to text.
func NewLogger(w io.Writer, level slog.Level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// EnrichLogger adds a run identifier to a logger.
//
// Example:
//
//	enriched := EnrichLogger(logger, "run-123")
//	enriched.Info("expanding") // includes run_id
func EnrichLogger(logger *slog.Logger, runID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("run_id", runID))
}

// LogRunStart logs the start of a CLI run.
func LogRunStart(logger *slog.Logger, command string) {
	if logger == nil {
		return
	}
	logger.Debug("run starting",
		slog.String("command", command),
	)
}

// LogRunError logs a failed CLI run.
func LogRunError(logger *slog.Logger, command string, err error, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Error("run failed",
		slog.String("command", command),
		slog.String("error", err.Error()),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogUnresolvedKey logs a placeholder whose key is not in the registry.
// job and highlight are positions within the document.
func LogUnresolvedKey(logger *slog.Logger, key string, job, highlight int) {
	if logger == nil {
		return
	}
	logger.Warn("template key not found",
		slog.String("key", key),
		slog.Int("job", job),
		slog.Int("highlight", highlight),
	)
}

// LogRefStripped logs removal of a highlights_ref marker.
func LogRefStripped(logger *slog.Logger, job int, ref any) {
	if logger == nil {
		return
	}
	logger.Debug("highlights_ref removed",
		slog.Int("job", job),
		slog.Any("ref", ref),
	)
}

// LogExpandComplete logs the outcome of a document expansion.
func LogExpandComplete(logger *slog.Logger, durationMs float64, expanded, unresolved int) {
	if logger == nil {
		return
	}
	logger.Debug("expansion completed",
		slog.Float64("duration_ms", durationMs),
		slog.Int("expanded", expanded),
		slog.Int("unresolved", unresolved),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Microseconds()) / 1000
	}
}
