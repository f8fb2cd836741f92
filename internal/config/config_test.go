package config

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	apperrors "github.com/loriab/libcerf/internal/errors"
)

func parse(t *testing.T, args ...string) (AppConfig, error) {
	t.Helper()
	return ParseConfig(args, io.Discard)
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parse(t)
	if err != nil {
		t.Fatalf("ParseConfig() error: %v", err)
	}
	if cfg.Function != "w" {
		t.Errorf("default Function = %q, want w", cfg.Function)
	}
	if cfg.Mode() != ModeEval {
		t.Errorf("default Mode = %q, want %q", cfg.Mode(), ModeEval)
	}
	if cfg.Points != 61 || cfg.From != -15 || cfg.To != 15 {
		t.Errorf("default grid = [1e%g, 1e%g] x %d", cfg.From, cfg.To, cfg.Points)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("default HTTPAddr = %q", cfg.HTTPAddr)
	}
}

func TestParseConfigModes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		mode string
	}{
		{"eval point", []string{"-z", "1,2", "-f", "erf"}, ModeEval},
		{"table", []string{"-table"}, ModeTable},
		{"selftest", []string{"-selftest"}, ModeSelfTest},
		{"bench", []string{"-bench"}, ModeBench},
		{"repl", []string{"-repl"}, ModeREPL},
		{"serve", []string{"-serve", "-http", ":9090"}, ModeServe},
		{"explore", []string{"-explore"}, ModeExplore},
		{"completion", []string{"-completion", "zsh"}, ModeCompletion},
		{"version", []string{"-version"}, ModeVersion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parse(t, tt.args...)
			if err != nil {
				t.Fatalf("ParseConfig(%v) error: %v", tt.args, err)
			}
			if cfg.Mode() != tt.mode {
				t.Errorf("Mode = %q, want %q", cfg.Mode(), tt.mode)
			}
		})
	}
}

func TestParseConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"two modes", []string{"-table", "-serve"}},
		{"unknown function", []string{"-f", "zeta"}},
		{"unknown shell", []string{"-completion", "csh"}},
		{"zero points", []string{"-table", "-points", "0"}},
		{"inverted range", []string{"-table", "-from", "5", "-to", "-5"}},
		{"range too wide", []string{"-table", "-from", "-400"}},
		{"negative workers", []string{"-workers", "-2"}},
		{"bad log format", []string{"-log-format", "xml"}},
		{"negative timeout", []string{"-timeout", "-3s"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(t, tt.args...)
			var configErr apperrors.ConfigError
			if !errors.As(err, &configErr) {
				t.Errorf("ParseConfig(%v) = %v, want ConfigError", tt.args, err)
			}
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CERF_FUNCTION", "dawson")
	t.Setenv("CERF_POINTS", "100")
	t.Setenv("CERF_TIMEOUT", "90s")
	t.Setenv("CERF_NEGATIVE", "yes")

	cfg, err := parse(t, "-table")
	if err != nil {
		t.Fatalf("ParseConfig error: %v", err)
	}
	if cfg.Function != "dawson" {
		t.Errorf("Function = %q, want dawson from env", cfg.Function)
	}
	if cfg.Points != 100 {
		t.Errorf("Points = %d, want 100 from env", cfg.Points)
	}
	if cfg.Timeout != 90*time.Second {
		t.Errorf("Timeout = %s, want 90s from env", cfg.Timeout)
	}
	if !cfg.Negative {
		t.Error("Negative should be true from env")
	}
}

func TestEnvDoesNotOverrideExplicitFlag(t *testing.T) {
	t.Setenv("CERF_FUNCTION", "dawson")

	cfg, err := parse(t, "-f", "erfc")
	if err != nil {
		t.Fatalf("ParseConfig error: %v", err)
	}
	if cfg.Function != "erfc" {
		t.Errorf("Function = %q; explicit flag must win over env", cfg.Function)
	}
}

func TestEnvInvalidValuesIgnored(t *testing.T) {
	t.Setenv("CERF_POINTS", "many")
	t.Setenv("CERF_TIMEOUT", "soon")

	cfg, err := parse(t)
	if err != nil {
		t.Fatalf("ParseConfig error: %v", err)
	}
	if cfg.Points != 61 {
		t.Errorf("Points = %d, want default 61 for unparsable env", cfg.Points)
	}
	if cfg.Timeout != 0 {
		t.Errorf("Timeout = %s, want default 0 for unparsable env", cfg.Timeout)
	}
}

func TestApplyAdaptiveWorkers(t *testing.T) {
	cfg := ApplyAdaptiveWorkers(AppConfig{})
	if cfg.Workers <= 0 {
		t.Errorf("Workers = %d, want positive heuristic", cfg.Workers)
	}

	cfg = ApplyAdaptiveWorkers(AppConfig{Workers: 3})
	if cfg.Workers != 3 {
		t.Errorf("Workers = %d, explicit value must be preserved", cfg.Workers)
	}
}

func TestConfigString(t *testing.T) {
	cfg, err := parse(t, "-table", "-f", "erf", "-points", "10")
	if err != nil {
		t.Fatalf("ParseConfig error: %v", err)
	}
	s := cfg.String()
	for _, want := range []string{"mode=table", "function=erf", "x10"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, should contain %q", s, want)
		}
	}
}
