// Package cli implements fieldtrace, the headless front end that runs
// navigator scenarios and exports their trajectories.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tensor-field/internal/logging"
)

// Version is set at build time.
var Version = "dev"

// App represents the CLI application.
type App struct {
	root   *cobra.Command
	stdout io.Writer
	stderr io.Writer

	logLevel  string
	logFormat string
}

// New creates the CLI application.
func New() *App {
	app := &App{
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		logLevel:  "info",
		logFormat: "console",
	}

	app.root = &cobra.Command{
		Use:   "fieldtrace",
		Short: "Run a navigator across a scalar field without a window",
		Long: `fieldtrace loads a YAML scenario describing a field, a start point and a
point fixing the initial heading, then steps the agent for the configured
number of ticks and reports where it went.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg := logging.DefaultConfig()
			cfg.Level = app.logLevel
			cfg.Format = app.logFormat
			cfg.Output = app.stderr
			logging.Init(cfg)
		},
	}
	app.root.PersistentFlags().StringVar(&app.logLevel, "log-level", app.logLevel, "Log level (trace, debug, info, warn, error)")
	app.root.PersistentFlags().StringVar(&app.logFormat, "log-format", app.logFormat, "Log format (console or json)")

	app.root.AddCommand(
		app.newVersionCmd(),
		app.newRunCmd(),
		app.newValidateCmd(),
		app.newPresetsCmd(),
	)
	return app
}

// WithOutput sets custom output writers.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)
	return a
}

// Execute runs the CLI application.
func (a *App) Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return a.root.ExecuteContext(ctx)
}

// ExecuteWithArgs runs the CLI with specific arguments.
func (a *App) ExecuteWithArgs(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.Execute(ctx)
}

func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "fieldtrace version %s\n", Version)
		},
	}
}
