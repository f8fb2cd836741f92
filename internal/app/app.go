// Package app wires configuration, logging, theming and the mode
// implementations into a runnable application. main stays a thin shell
// around New and Run so the whole lifecycle is testable in process.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/loriab/libcerf/internal/cli"
	"github.com/loriab/libcerf/internal/config"
	apperrors "github.com/loriab/libcerf/internal/errors"
	"github.com/loriab/libcerf/internal/logging"
	"github.com/loriab/libcerf/internal/server"
	"github.com/loriab/libcerf/internal/sweep"
	"github.com/loriab/libcerf/internal/tui"
	"github.com/loriab/libcerf/internal/ui"
)

// Application represents the cerf application instance.
type Application struct {
	Config    config.AppConfig
	Logger    logging.Logger
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger sets a custom logger for the application.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
//
// Parameters:
//   - args: The full command line, including the program name.
//   - errWriter: The writer for diagnostics and usage output.
//   - opts: Optional construction overrides.
//
// Returns:
//   - *Application: The configured application.
//   - error: A ConfigError on invalid flags, or flag.ErrHelp for -h.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	var cmdArgs []string
	if len(args) > 0 {
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	cfg = config.ApplyAdaptiveWorkers(cfg)

	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode and returns
// the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	mode := a.Config.Mode()

	// Script-generating modes must not pick up theming or log records.
	switch mode {
	case config.ModeVersion:
		PrintVersion(out)
		return apperrors.ExitSuccess
	case config.ModeCompletion:
		return a.runCompletion(out)
	}

	zerolog.SetGlobalLevel(a.logLevel())
	ui.InitTheme(false)
	if a.Logger == nil {
		a.Logger = a.newLogger()
	}
	if a.Config.Debug {
		a.Logger.Debug("configuration resolved", logging.String("config", a.Config.String()))
	}

	switch mode {
	case config.ModeREPL:
		return a.runREPL(out)
	case config.ModeExplore:
		return a.runExplore(ctx)
	}

	var err error
	switch mode {
	case config.ModeEval:
		err = a.runEval(out)
	case config.ModeTable:
		err = a.runTable(ctx, out)
	case config.ModeSelfTest:
		err = a.runSelfTest(ctx, out)
	case config.ModeBench:
		err = a.runBench(ctx, out)
	case config.ModeServe:
		err = a.runServe(ctx)
	}
	return a.HandleRunError(err)
}

// logLevel maps the verbosity flags onto a zerolog level.
func (a *Application) logLevel() zerolog.Level {
	switch {
	case a.Config.Debug:
		return zerolog.DebugLevel
	case a.Config.Verbose:
		return zerolog.InfoLevel
	default:
		return zerolog.WarnLevel
	}
}

// newLogger builds the application logger from the configured format.
func (a *Application) newLogger() logging.Logger {
	if a.Config.LogFormat == "json" {
		return logging.NewLogger(a.ErrWriter, "cerf")
	}
	return logging.NewZerologAdapter(
		zerolog.New(zerolog.ConsoleWriter{Out: a.ErrWriter}).With().Timestamp().Logger())
}

// lifecycleContext bounds ctx by the configured timeout and by SIGINT
// and SIGTERM. The returned stop function releases both.
func (a *Application) lifecycleContext(ctx context.Context) (context.Context, context.CancelFunc) {
	cancelTimeout := context.CancelFunc(func() {})
	if a.Config.Timeout > 0 {
		ctx, cancelTimeout = context.WithTimeout(ctx, a.Config.Timeout)
	}
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)

	return ctx, func() {
		stopSignals()
		cancelTimeout()
	}
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, config.Functions); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runEval evaluates the configured function at the -z point.
func (a *Application) runEval(out io.Writer) error {
	f, err := sweep.Resolve(a.Config.Function)
	if err != nil {
		return apperrors.NewConfigError("%v", err)
	}
	z, err := parsePoint(a.Config.Z)
	if err != nil {
		return err
	}

	start := time.Now()
	value := f(z)
	cli.DisplayEvaluation(out, a.Config.Function, z, value, time.Since(start))
	return nil
}

// parsePoint parses the -z value "re,im" (or just "re") into a point.
// An empty value evaluates at the origin.
func parsePoint(s string) (complex128, error) {
	if s == "" {
		return 0, nil
	}
	parts := strings.SplitN(s, ",", 3)
	if len(parts) > 2 {
		return 0, apperrors.NewConfigError("invalid point %q (expected re,im)", s)
	}

	re, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, apperrors.NewConfigError("invalid real part %q", parts[0])
	}
	im := 0.0
	if len(parts) == 2 {
		if im, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err != nil {
			return 0, apperrors.NewConfigError("invalid imaginary part %q", parts[1])
		}
	}
	return complex(re, im), nil
}

// runTable tabulates the configured function over the grid, showing a
// progress bar on the error stream while the sweep runs.
func (a *Application) runTable(ctx context.Context, out io.Writer) error {
	ctx, stop := a.lifecycleContext(ctx)
	defer stop()

	progressOut := io.Writer(a.ErrWriter)
	if a.Config.Output != "" {
		// Keep file-bound runs quiet enough for scripting.
		progressOut = io.Discard
	}

	fractions := make(chan float64, 1)
	var wg sync.WaitGroup
	wg.Add(1)
	go cli.DisplayProgress(&wg, fractions, progressOut)

	res, err := sweep.Run(ctx, a.Config, func(f float64) {
		select {
		case fractions <- f:
		default:
		}
	})
	close(fractions)
	wg.Wait()
	if err != nil {
		return err
	}

	if a.Config.Output != "" {
		if err := cli.WriteTableToFile(a.Config.Output, res); err != nil {
			return err
		}
		a.Logger.Info("table written",
			logging.String("path", a.Config.Output),
			logging.Int("points", len(res.Rows)))
		return nil
	}

	cli.DisplayTable(out, res)
	return nil
}

// runSelfTest checks every function against the built-in reference
// vectors.
func (a *Application) runSelfTest(ctx context.Context, out io.Writer) error {
	ctx, stop := a.lifecycleContext(ctx)
	defer stop()

	s, err := sweep.RunSelfTest(ctx)
	var mismatch apperrors.MismatchError
	if err != nil && !errors.As(err, &mismatch) {
		return err
	}
	cli.DisplaySelfTest(out, s)
	return err
}

// runBench times the configured number of evaluations.
func (a *Application) runBench(ctx context.Context, out io.Writer) error {
	ctx, stop := a.lifecycleContext(ctx)
	defer stop()

	res, err := sweep.RunBench(ctx, a.Config.BenchN)
	if err != nil {
		return err
	}
	cli.DisplayBench(out, res)
	return nil
}

// runREPL starts the interactive read-eval loop.
func (a *Application) runREPL(out io.Writer) int {
	r := cli.NewREPL(a.Config)
	r.SetOutput(out)
	r.Start()
	return apperrors.ExitSuccess
}

// runServe starts the HTTP evaluation service and blocks until the
// context is canceled.
func (a *Application) runServe(ctx context.Context) error {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	return server.NewServer(a.Config, a.Logger).Run(ctx)
}

// runExplore launches the complex-plane explorer TUI.
func (a *Application) runExplore(ctx context.Context) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	return tui.Run(ctx, a.Config)
}

// HandleRunError maps a mode error onto the process exit code and
// reports it on the error stream.
//
// Parameters:
//   - err: The error returned by a mode, or nil.
//
// Returns:
//   - int: The exit code for main.
func (a *Application) HandleRunError(err error) int {
	if err == nil {
		return apperrors.ExitSuccess
	}

	var mismatch apperrors.MismatchError
	var cfgErr apperrors.ConfigError
	var timeoutErr apperrors.TimeoutError
	switch {
	case errors.As(err, &mismatch):
		// DisplaySelfTest already reported the failing vectors.
		return apperrors.ExitErrorMismatch
	case errors.As(err, &cfgErr):
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorConfig
	case errors.As(err, &timeoutErr), errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintf(a.ErrWriter, "Error: operation timed out after %s\n", a.Config.Timeout)
		return apperrors.ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(a.ErrWriter, "Canceled.")
		return apperrors.ExitErrorCanceled
	default:
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
