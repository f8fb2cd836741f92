// Package config defines the application configuration and its
// resolution chain: CLI flags > CERF_-prefixed environment variables >
// defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	apperrors "github.com/loriab/libcerf/internal/errors"
)

// EnvPrefix is the prefix for all environment variable overrides.
const EnvPrefix = "CERF_"

// Functions lists the evaluable function names accepted by -f.
var Functions = []string{"w", "erf", "erfc", "erfcx", "erfi", "dawson", "voigt"}

// CompletionShells lists the shells supported by -completion.
var CompletionShells = []string{"bash", "zsh", "fish", "powershell"}

// AppConfig holds the resolved application configuration.
type AppConfig struct {
	// Function is the function name evaluated by eval, table, serve and
	// explore modes (-f).
	Function string
	// Z is the evaluation point as "re,im" (-z); empty selects no
	// single-point evaluation.
	Z string

	// Table enables grid tabulation mode (-table).
	Table bool
	// SelfTest enables the in-process golden-vector suite (-selftest).
	SelfTest bool
	// Bench enables the timing loop (-bench).
	Bench bool
	// REPL enables the interactive read-eval loop (-repl).
	REPL bool
	// Serve enables the HTTP evaluation service (-serve).
	Serve bool
	// Explore enables the complex-plane explorer TUI (-explore).
	Explore bool
	// Completion selects a shell completion script to print (-completion).
	Completion string
	// ShowVersion prints the version and exits (-version).
	ShowVersion bool

	// From and To are the decade exponents bounding the tabulation grid.
	From float64
	To   float64
	// Points is the number of grid points per sign.
	Points int
	// Negative mirrors the grid onto the negative axis.
	Negative bool
	// R6 subdivides each decade at the six Renard points instead of
	// uniform logarithmic spacing.
	R6 bool
	// Workers is the sweep worker count; 0 selects the NumCPU heuristic.
	Workers int
	// BenchN is the number of evaluations in bench mode.
	BenchN int

	// HTTPAddr is the listen address for serve mode (-http).
	HTTPAddr string
	// Output is the file path for table output; empty writes to stdout.
	Output string
	// Timeout bounds table, selftest and bench runs; 0 means none.
	Timeout time.Duration

	// Verbose enables info-level logging (-v); Debug enables debug-level
	// logging (-vv).
	Verbose bool
	Debug   bool
	// LogFormat selects "console" or "json" log output.
	LogFormat string
}

// ParseConfig parses the command line into an AppConfig, applies
// environment overrides for flags not explicitly set, and validates the
// result. Usage and flag errors are written to w.
//
// Parameters:
//   - args: The command line arguments, excluding the program name.
//   - w: The writer for flag parse diagnostics.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: A ConfigError if parsing or validation failed, or
//     flag.ErrHelp when -h was requested.
func ParseConfig(args []string, w io.Writer) (AppConfig, error) {
	cfg := AppConfig{}
	fs := flag.NewFlagSet("cerf", flag.ContinueOnError)
	fs.SetOutput(w)

	fs.StringVar(&cfg.Function, "f", "w", "function to evaluate: w|erf|erfc|erfcx|erfi|dawson|voigt")
	fs.StringVar(&cfg.Z, "z", "", "evaluation point as re,im")

	fs.BoolVar(&cfg.Table, "table", false, "tabulate the function over a logarithmic grid")
	fs.BoolVar(&cfg.SelfTest, "selftest", false, "run the built-in reference vector suite")
	fs.BoolVar(&cfg.Bench, "bench", false, "run the evaluation timing loop")
	fs.BoolVar(&cfg.REPL, "repl", false, "start an interactive read-eval loop")
	fs.BoolVar(&cfg.Serve, "serve", false, "start the HTTP evaluation service")
	fs.BoolVar(&cfg.Explore, "explore", false, "start the complex-plane explorer")
	fs.StringVar(&cfg.Completion, "completion", "", "print a completion script: bash|zsh|fish|powershell")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "print version and exit")

	fs.Float64Var(&cfg.From, "from", -15, "grid start as a decade exponent")
	fs.Float64Var(&cfg.To, "to", 15, "grid end as a decade exponent")
	fs.IntVar(&cfg.Points, "points", 61, "number of grid points per sign")
	fs.BoolVar(&cfg.Negative, "negative", false, "mirror the grid onto the negative axis")
	fs.BoolVar(&cfg.R6, "r6", false, "subdivide decades at the Renard R6 points")
	fs.IntVar(&cfg.Workers, "workers", 0, "sweep worker count (0 = automatic)")
	fs.IntVar(&cfg.BenchN, "bench-n", 10_000_000, "evaluations per bench run")

	fs.StringVar(&cfg.HTTPAddr, "http", ":8080", "listen address for -serve")
	fs.StringVar(&cfg.Output, "output", "", "write table output to this file instead of stdout")
	fs.DurationVar(&cfg.Timeout, "timeout", 0, "abort table/selftest/bench after this duration (0 = none)")

	fs.BoolVar(&cfg.Verbose, "v", false, "info-level logging")
	fs.BoolVar(&cfg.Debug, "vv", false, "debug-level logging")
	fs.StringVar(&cfg.LogFormat, "log-format", "console", "log output format: console|json")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return cfg, err
		}
		return cfg, apperrors.NewConfigError("%v", err)
	}

	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Mode names returned by Mode.
const (
	ModeEval       = "eval"
	ModeTable      = "table"
	ModeSelfTest   = "selftest"
	ModeBench      = "bench"
	ModeREPL       = "repl"
	ModeServe      = "serve"
	ModeExplore    = "explore"
	ModeCompletion = "completion"
	ModeVersion    = "version"
)

// Mode resolves the operating mode from the mode flags. Validate
// guarantees at most one is set; with none set the default is
// single-point evaluation.
func (c AppConfig) Mode() string {
	switch {
	case c.ShowVersion:
		return ModeVersion
	case c.Completion != "":
		return ModeCompletion
	case c.Table:
		return ModeTable
	case c.SelfTest:
		return ModeSelfTest
	case c.Bench:
		return ModeBench
	case c.REPL:
		return ModeREPL
	case c.Serve:
		return ModeServe
	case c.Explore:
		return ModeExplore
	default:
		return ModeEval
	}
}

// Validate checks the configuration for contradictions and out-of-range
// values.
//
// Returns:
//   - error: A ConfigError describing the first problem found, or nil.
func (c AppConfig) Validate() error {
	modes := 0
	for _, set := range []bool{c.Table, c.SelfTest, c.Bench, c.REPL, c.Serve, c.Explore, c.Completion != ""} {
		if set {
			modes++
		}
	}
	if modes > 1 {
		return apperrors.NewConfigError("at most one of -table, -selftest, -bench, -repl, -serve, -explore, -completion may be given")
	}

	if !contains(Functions, c.Function) {
		return apperrors.NewConfigError("unknown function %q (expected one of %s)",
			c.Function, strings.Join(Functions, ", "))
	}
	if c.Completion != "" && !contains(CompletionShells, c.Completion) {
		return apperrors.NewConfigError("unsupported completion shell %q (expected one of %s)",
			c.Completion, strings.Join(CompletionShells, ", "))
	}
	if c.Points <= 0 {
		return apperrors.NewConfigError("-points must be positive, got %d", c.Points)
	}
	if c.From >= c.To {
		return apperrors.NewConfigError("-from (%g) must be below -to (%g)", c.From, c.To)
	}
	if c.From < -300 || c.To > 300 {
		return apperrors.NewConfigError("grid exponents must stay within [-300, 300]")
	}
	if c.Workers < 0 {
		return apperrors.NewConfigError("-workers must not be negative, got %d", c.Workers)
	}
	if c.BenchN <= 0 {
		return apperrors.NewConfigError("-bench-n must be positive, got %d", c.BenchN)
	}
	if c.Timeout < 0 {
		return apperrors.NewConfigError("-timeout must not be negative, got %s", c.Timeout)
	}
	if c.LogFormat != "console" && c.LogFormat != "json" {
		return apperrors.NewConfigError("unknown log format %q (expected console or json)", c.LogFormat)
	}
	return nil
}

// String renders the configuration for -vv diagnostics.
func (c AppConfig) String() string {
	return fmt.Sprintf(
		"mode=%s function=%s z=%q grid=[1e%g,1e%g]x%d negative=%t r6=%t workers=%d http=%s output=%q timeout=%s",
		c.Mode(), c.Function, c.Z, c.From, c.To, c.Points, c.Negative, c.R6,
		c.Workers, c.HTTPAddr, c.Output, c.Timeout)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
