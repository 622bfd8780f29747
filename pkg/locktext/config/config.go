package config

import (
	"fmt"
	"log/slog"

	"github.com/randalmurphal/locktext/pkg/locktext/observability"
)

// Settings holds the locktext command settings.
type Settings struct {
	// TemplatesFile replaces the builtin locked table when set (.yaml, .yml, .json).
	TemplatesFile string `mapstructure:"templates_file"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`

	// LogFormat is "text" or "json".
	LogFormat string `mapstructure:"log_format"`

	// Strict makes expand fail when placeholders remain unresolved.
	Strict bool `mapstructure:"strict"`

	// Tracing writes spans to stderr.
	Tracing bool `mapstructure:"tracing"`

	// Indent is the JSON output indent; empty writes compact JSON.
	Indent string `mapstructure:"indent"`
}

// Defaults returns Settings with default values.
func Defaults() Settings {
	return Settings{
		LogLevel:  "warn",
		LogFormat: observability.FormatText,
		Indent:    "  ",
	}
}

// Validate checks settings for errors.
func (s Settings) Validate() error {
	if _, err := observability.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	switch s.LogFormat {
	case observability.FormatText, observability.FormatJSON:
	default:
		return fmt.Errorf("log_format must be %q or %q, got %q",
			observability.FormatText, observability.FormatJSON, s.LogFormat)
	}
	for _, r := range s.Indent {
		if r != ' ' && r != '\t' {
			return fmt.Errorf("indent must contain only spaces or tabs, got %q", s.Indent)
		}
	}
	return nil
}

// Level returns the parsed log level, or info when LogLevel is invalid.
func (s Settings) Level() slog.Level {
	level, _ := observability.ParseLevel(s.LogLevel)
	return level
}
