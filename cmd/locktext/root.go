package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/trace"

	"github.com/randalmurphal/locktext/pkg/locktext/config"
	"github.com/randalmurphal/locktext/pkg/locktext/locked"
	"github.com/randalmurphal/locktext/pkg/locktext/observability"
	"github.com/randalmurphal/locktext/pkg/locktext/registry"
	"github.com/randalmurphal/locktext/pkg/locktext/template"
)

// defaultConfigFile is read from the working directory when --config is not given.
const defaultConfigFile = "locktext.yaml"

type streams struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

// app is the state shared by every subcommand of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string

	settings config.Settings
	runID    string
	logger   *slog.Logger
	registry *registry.Registry[string, string]
	spans    observability.SpanManager

	runSpan  trace.Span
	shutdown func(context.Context) error
}

func newApp() *app {
	return &app{
		v:     viper.New(),
		spans: observability.NoopSpanManager{},
	}
}

func newRootCmd(a *app, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "locktext",
		Short: "Expand locked-content placeholders in resume documents",
		Long: `locktext replaces highlight placeholders of the form {{namespace.segment}}
in a resume document with fixed, verbatim text from a locked template table.

Only whole-string placeholders inside work[].highlights are expanded.
Unknown keys are left in place and reported.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	defaults := config.Defaults()
	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "",
		"config file (default: ./"+defaultConfigFile+" if present)")
	flags.String("templates", "",
		"template table file (.yaml, .yml, .json) replacing the builtin table")
	flags.String("log-level", defaults.LogLevel, "log level: debug, info, warn, error")
	flags.String("log-format", defaults.LogFormat, "log format: text or json")
	flags.Bool("trace", false, "write trace spans to stderr")

	// Bind flags to viper
	_ = a.v.BindPFlag("templates_file", flags.Lookup("templates"))
	_ = a.v.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("log_format", flags.Lookup("log-format"))
	_ = a.v.BindPFlag("tracing", flags.Lookup("trace"))

	root.AddCommand(
		newExpandCmd(a),
		newCheckCmd(a),
		newKeysCmd(a),
	)
	return root
}

// init resolves settings and builds the logger, tracing and registry for
// the command about to run.
func (a *app) init(cmd *cobra.Command) error {
	if err := a.loadSettings(); err != nil {
		return err
	}

	a.runID = uuid.NewString()
	logger := observability.NewLogger(cmd.ErrOrStderr(), a.settings.Level(), a.settings.LogFormat)
	a.logger = observability.EnrichLogger(logger, a.runID)

	if a.settings.Tracing {
		shutdown, err := observability.InstallStdoutTracing(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		a.shutdown = shutdown
		a.spans = observability.NewSpanManager()
	}

	ctx, span := a.spans.StartRunSpan(cmd.Context(), cmd.Name(), a.runID)
	a.runSpan = span
	cmd.SetContext(ctx)
	observability.LogRunStart(a.logger, cmd.Name())

	reg, err := a.loadRegistry()
	if err != nil {
		return err
	}
	a.registry = reg
	return nil
}

// loadSettings layers defaults, config file, LOCKTEXT_* environment and
// flags into a.settings.
func (a *app) loadSettings() error {
	defaults := config.Defaults()
	a.v.SetDefault("templates_file", defaults.TemplatesFile)
	a.v.SetDefault("log_level", defaults.LogLevel)
	a.v.SetDefault("log_format", defaults.LogFormat)
	a.v.SetDefault("strict", defaults.Strict)
	a.v.SetDefault("tracing", defaults.Tracing)
	a.v.SetDefault("indent", defaults.Indent)

	a.v.SetEnvPrefix("LOCKTEXT")
	a.v.AutomaticEnv()

	switch {
	case a.cfgFile != "":
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
	default:
		if _, err := os.Stat(defaultConfigFile); err == nil {
			a.v.SetConfigFile(defaultConfigFile)
			if err := a.v.ReadInConfig(); err != nil {
				return fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var s config.Settings
	if err := a.v.Unmarshal(&s); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.settings = s
	return nil
}

func (a *app) loadRegistry() (*registry.Registry[string, string], error) {
	if a.settings.TemplatesFile == "" {
		return locked.Builtin(), nil
	}
	reg, err := locked.FromFile(a.settings.TemplatesFile)
	if err != nil {
		return nil, fmt.Errorf("loading templates: %w", err)
	}
	a.logger.Info("templates loaded",
		slog.String("path", a.settings.TemplatesFile),
		slog.Int("keys", reg.Len()),
	)
	return reg, nil
}

// expander builds an expander over the loaded registry.
func (a *app) expander() *template.Expander {
	return template.NewExpander(
		template.WithRegistry(a.registry),
		template.WithLogger(a.logger),
		template.WithMetrics(observability.NewMetricsRecorder()),
		template.WithSpans(a.spans),
	)
}

// finish ends the run span, logs a failure and flushes tracing.
func (a *app) finish(ctx context.Context, command string, err error, durationMs float64) error {
	if err != nil {
		observability.LogRunError(a.logger, command, err, durationMs)
	}
	if a.runSpan != nil {
		a.spans.EndSpanWithError(a.runSpan, err)
	}
	if a.shutdown != nil {
		if shutdownErr := a.shutdown(ctx); shutdownErr != nil {
			return errors.Join(err, fmt.Errorf("flushing traces: %w", shutdownErr))
		}
	}
	return err
}

// run executes the locktext command tree with args and reports any error
// on s.err.
func run(ctx context.Context, args []string, s streams, version string) error {
	done := observability.TimedOperation()
	a := newApp()
	root := newRootCmd(a, version)
	root.SetArgs(args)
	root.SetIn(s.in)
	root.SetOut(s.out)
	root.SetErr(s.err)

	cmd, err := root.ExecuteContextC(ctx)
	name := root.Name()
	if cmd != nil {
		name = cmd.Name()
	}
	err = a.finish(ctx, name, err, done())
	if err != nil {
		fmt.Fprintln(s.err, "Error:", err)
	}
	return err
}
