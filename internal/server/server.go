// Package server implements the HTTP evaluation service: a JSON /eval
// endpoint over the function registry, Prometheus /metrics, and a
// /healthz probe, with security headers and graceful shutdown.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/loriab/libcerf/internal/config"
	"github.com/loriab/libcerf/internal/logging"
	"github.com/loriab/libcerf/internal/sweep"
)

// shutdownGrace bounds the graceful-shutdown window after the context
// is canceled.
const shutdownGrace = 5 * time.Second

// Server is the HTTP evaluation service.
type Server struct {
	cfg      config.AppConfig
	logger   logging.Logger
	metrics  *Metrics
	security SecurityConfig
	tracer   trace.Tracer
	http     *http.Server
}

// NewServer creates a server listening on the configured address.
//
// Parameters:
//   - cfg: The application configuration (HTTPAddr, default function).
//   - logger: The event logger.
//
// Returns:
//   - *Server: The initialized server; call Run to serve.
func NewServer(cfg config.AppConfig, logger logging.Logger) *Server {
	s := &Server{
		cfg:      cfg,
		logger:   logger,
		metrics:  NewMetrics(),
		security: DefaultSecurityConfig(),
		tracer:   otel.Tracer("cerf/server"),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/eval", s.wrap(s.handleEval))
	mux.HandleFunc("/metrics", s.wrap(s.handleMetrics))
	mux.HandleFunc("/healthz", s.wrap(s.handleHealthz))

	s.http = &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// wrap applies the standard middleware chain to a handler.
func (s *Server) wrap(h http.HandlerFunc) http.HandlerFunc {
	return SecurityMiddleware(s.security, s.loggingMiddleware(s.metricsMiddleware(h)))
}

// Run serves until the context is canceled, then shuts down gracefully.
//
// Parameters:
//   - ctx: The context bounding the server lifetime.
//
// Returns:
//   - error: A listen failure, or nil after a clean shutdown.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", logging.String("addr", s.http.Addr))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	s.logger.Info("http server stopped")
	return <-errCh
}

// statusRecorder captures the response status for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// loggingMiddleware logs one line per request with method, path, status
// and duration.
func (s *Server) loggingMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)
		s.logger.Debug("request",
			logging.String("method", r.Method),
			logging.String("path", r.URL.Path),
			logging.Int("status", rec.status),
			logging.String("duration", time.Since(start).String()),
		)
	}
}

// metricsMiddleware tracks in-flight and total request counts.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		s.metrics.CountRequest()
		defer s.metrics.DecrementActiveRequests()
		next(w, r)
	}
}

// component carries one float64 through JSON. Non-finite values have no
// JSON number representation and are emitted as the strings "nan",
// "inf" and "-inf" instead.
type component float64

func (c component) MarshalJSON() ([]byte, error) {
	v := float64(c)
	switch {
	case math.IsNaN(v):
		return []byte(`"nan"`), nil
	case math.IsInf(v, 1):
		return []byte(`"inf"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-inf"`), nil
	}
	return []byte(strconv.FormatFloat(v, 'g', 17, 64)), nil
}

// complexJSON is the wire shape of a complex128.
type complexJSON struct {
	Re component `json:"re"`
	Im component `json:"im"`
}

// evalResponse is the /eval response body.
type evalResponse struct {
	F     string      `json:"f"`
	Z     complexJSON `json:"z"`
	Value complexJSON `json:"value"`
	NS    int64       `json:"ns"`
}

// errorResponse is the JSON error body.
type errorResponse struct {
	Error string `json:"error"`
}

// handleEval serves GET /eval?f=<name>&re=<x>&im=<y>.
func (s *Server) handleEval(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "only GET is supported")
		return
	}

	q := r.URL.Query()
	fn := q.Get("f")
	if fn == "" {
		fn = s.cfg.Function
	}
	if fn == "" {
		fn = "w"
	}

	f, err := sweep.Resolve(fn)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	re, err := parseComponent(q.Get("re"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid re: %v", err))
		return
	}
	im, err := parseComponent(q.Get("im"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid im: %v", err))
		return
	}
	z := complex(re, im)

	_, span := s.tracer.Start(r.Context(), "evaluate",
		trace.WithAttributes(attribute.String("function", fn)))
	start := time.Now()
	value := f(z)
	elapsed := time.Since(start)
	span.End()

	s.metrics.ObserveEvaluation(fn, elapsed)

	s.writeJSON(w, http.StatusOK, evalResponse{
		F:     fn,
		Z:     complexJSON{component(re), component(im)},
		Value: complexJSON{component(real(value)), component(imag(value))},
		NS:    elapsed.Nanoseconds(),
	})
}

// parseComponent parses a coordinate query parameter; empty means zero.
func parseComponent(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

// handleMetrics serves GET /metrics in the Prometheus text format.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "only GET is supported")
		return
	}
	s.metrics.WritePrometheus(w, r)
}

// handleHealthz serves the liveness probe.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON writes a JSON response with the given status.
func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("response encoding failed", err)
	}
}

// writeError writes a JSON error body with the given status.
func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}
