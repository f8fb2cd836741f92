package logging

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestFieldHelpers(t *testing.T) {
	evalErr := errors.New("grid exhausted")

	tests := []struct {
		name      string
		field     Field
		wantKey   string
		wantValue any
	}{
		{"String", String("function", "erfcx"), "function", "erfcx"},
		{"Int", Int("points", 61), "points", 61},
		{"Uint64", Uint64("evals", 10_000_000), "evals", uint64(10_000_000)},
		{"Float64", Float64("relerr", 1e-13), "relerr", 1e-13},
		{"Err", Err(evalErr), "error", evalErr},
		{"ErrNil", Err(nil), "error", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.field.Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", tt.field.Key, tt.wantKey)
			}
			if tt.field.Value != tt.wantValue {
				t.Errorf("Value = %v, want %v", tt.field.Value, tt.wantValue)
			}
		})
	}
}

func TestNewLoggerTagsComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "sweep")

	logger.Info("sweep complete", Int("points", 122))

	out := buf.String()
	for _, want := range []string{"sweep", "sweep complete", "122"} {
		if !strings.Contains(out, want) {
			t.Errorf("record should contain %q, got: %s", want, out)
		}
	}
}

func TestNewZerologAdapter(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewZerologAdapter(zerolog.New(&buf))

	adapter.Info("listening")
	if !strings.Contains(buf.String(), "listening") {
		t.Errorf("adapter dropped the message, output: %s", buf.String())
	}
}

func TestNewDefaultLogger(t *testing.T) {
	if NewDefaultLogger() == nil {
		t.Fatal("NewDefaultLogger returned nil")
	}
}

func TestZerologAdapterLevels(t *testing.T) {
	tests := []struct {
		name     string
		log      func(Logger)
		contains []string
	}{
		{
			name:     "info with fields",
			log:      func(l Logger) { l.Info("table written", String("path", "out.csv"), Int("points", 61)) },
			contains: []string{"info", "table written", "out.csv", "61"},
		},
		{
			name:     "info without fields",
			log:      func(l Logger) { l.Info("shutting down") },
			contains: []string{"info", "shutting down"},
		},
		{
			name: "error with cause",
			log: func(l Logger) {
				l.Error("evaluation failed", errors.New("listen tcp: address in use"), String("addr", ":8080"))
			},
			contains: []string{"error", "evaluation failed", "address in use", ":8080"},
		},
		{
			name:     "error with nil cause",
			log:      func(l Logger) { l.Error("shutdown deadline passed", nil) },
			contains: []string{"error", "shutdown deadline passed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(NewLogger(&buf, "server"))
			out := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("record should contain %q, got: %s", want, out)
				}
			}
		})
	}
}

func TestZerologAdapterDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologAdapter(zerolog.New(&buf).Level(zerolog.DebugLevel))

	logger.Debug("request", String("method", "GET"), String("path", "/eval"))

	out := buf.String()
	for _, want := range []string{"debug", "GET", "/eval"} {
		if !strings.Contains(out, want) {
			t.Errorf("record should contain %q, got: %s", want, out)
		}
	}
}

func TestZerologAdapterPrintf(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "cerf")

	logger.Printf("%d of %d checks passed", 44, 44)
	if !strings.Contains(buf.String(), "44 of 44 checks passed") {
		t.Errorf("Printf output: %s", buf.String())
	}

	buf.Reset()
	logger.Println("selftest", "done")
	if !strings.Contains(buf.String(), "selftest") || !strings.Contains(buf.String(), "done") {
		t.Errorf("Println output: %s", buf.String())
	}
}

// Field values reach zerolog through a type switch; every branch must
// end up in the record, including the fallback for arbitrary values.
func TestZerologAdapterFieldTypes(t *testing.T) {
	tests := []struct {
		name     string
		field    Field
		contains string
	}{
		{"string", Field{Key: "fn", Value: "voigt"}, "voigt"},
		{"int", Field{Key: "workers", Value: 8}, "8"},
		{"int64", Field{Key: "ns", Value: int64(1<<62 + 1)}, "4611686018427387905"},
		{"uint64", Field{Key: "evals", Value: uint64(1) << 63}, "9223372036854775808"},
		{"float64", Field{Key: "rate", Value: 2.5e6}, "2500000"},
		{"error", Field{Key: "cause", Value: errors.New("tolerance exceeded")}, "tolerance exceeded"},
		{"bool", Field{Key: "mirrored", Value: true}, "true"},
		{"fallback", Field{Key: "grid", Value: struct{ N int }{N: 61}}, "61"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, "test")
			logger.Info("fields", tt.field)
			if !strings.Contains(buf.String(), tt.contains) {
				t.Errorf("%s field missing from record: %s", tt.name, buf.String())
			}
		})
	}
}

func TestStdLoggerAdapter(t *testing.T) {
	newStd := func(buf *bytes.Buffer) Logger {
		return NewStdLoggerAdapter(log.New(buf, "", 0))
	}

	t.Run("info", func(t *testing.T) {
		var buf bytes.Buffer
		newStd(&buf).Info("sweep complete", Int("points", 61))
		out := buf.String()
		for _, want := range []string{"[INFO]", "sweep complete", "points", "61"} {
			if !strings.Contains(out, want) {
				t.Errorf("output should contain %q, got: %s", want, out)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		var buf bytes.Buffer
		newStd(&buf).Error("write failed", errors.New("disk full"), String("path", "w.csv"))
		out := buf.String()
		for _, want := range []string{"[ERROR]", "write failed", "disk full", "w.csv"} {
			if !strings.Contains(out, want) {
				t.Errorf("output should contain %q, got: %s", want, out)
			}
		}
	})

	t.Run("debug", func(t *testing.T) {
		var buf bytes.Buffer
		newStd(&buf).Debug("classifier", String("regime", "asymptotic"))
		out := buf.String()
		if !strings.Contains(out, "[DEBUG]") || !strings.Contains(out, "asymptotic") {
			t.Errorf("output: %s", out)
		}
	})

	t.Run("printf and println", func(t *testing.T) {
		var buf bytes.Buffer
		l := newStd(&buf)
		l.Printf("rate %d eval/s", 2_000_000)
		l.Println("bench", "done")
		out := buf.String()
		if !strings.Contains(out, "rate 2000000 eval/s") {
			t.Errorf("Printf output: %s", out)
		}
		if !strings.Contains(out, "bench") || !strings.Contains(out, "done") {
			t.Errorf("Println output: %s", out)
		}
	})
}

func TestAdaptersSatisfyLogger(t *testing.T) {
	var buf bytes.Buffer
	var _ Logger = NewLogger(&buf, "cerf")
	var _ Logger = NewStdLoggerAdapter(log.New(&buf, "", 0))
}
