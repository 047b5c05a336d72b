// Package http exposes the transformation pipeline over HTTP for editor
// plugins and build servers that prefer a daemon over shelling out.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/espalier-ui/espalier/internal/observability"
	"github.com/espalier-ui/espalier/pkg/diag"
	"github.com/espalier-ui/espalier/pkg/ports"
	"github.com/espalier-ui/espalier/pkg/transform"
)

// MaxBodyBytes caps request bodies; markup documents past this size are
// rejected rather than buffered.
const MaxBodyBytes = 4 << 20

// Server wires the codec, the engine configuration and the optional cache
// behind an HTTP API.
type Server struct {
	parser     ports.Parser
	serializer ports.Serializer
	cfg        transform.Config
	cache      ports.TransformCache
	metrics    *observability.Metrics
	registry   *prometheus.Registry
	version    string
	logger     *slog.Logger
}

type Option func(*Server)

// WithCache enables response caching keyed by a digest of the input markup.
func WithCache(cache ports.TransformCache) Option {
	return func(s *Server) {
		s.cache = cache
	}
}

// WithVersion sets the version reported by GET /info.
func WithVersion(version string) Option {
	return func(s *Server) {
		s.version = version
	}
}

// WithLogger overrides the default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a server around codec and cfg. Metrics are registered on
// a private registry exposed at /metrics.
func NewServer(parser ports.Parser, serializer ports.Serializer, cfg transform.Config, opts ...Option) *Server {
	registry := prometheus.NewRegistry()
	s := &Server{
		parser:     parser,
		serializer: serializer,
		cfg:        cfg,
		metrics:    observability.NewMetrics(registry),
		registry:   registry,
		version:    "dev",
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Post("/transform", s.Transform)
	r.Post("/lint", s.Lint)
	r.Get("/healthz", s.Health)
	r.Get("/info", s.Info)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	return r
}

// TransformRequest is the body of POST /transform and POST /lint.
type TransformRequest struct {
	Markup string `json:"markup"`
}

// WarningDTO is one deprecation warning in a response.
type WarningDTO struct {
	Context string `json:"context"`
	Old     string `json:"old"`
	New     string `json:"new"`
	Slot    bool   `json:"slot,omitempty"`
	Message string `json:"message"`
}

// TransformResponse is the body of a successful POST /transform.
type TransformResponse struct {
	Markup   string         `json:"markup"`
	Warnings []WarningDTO   `json:"warnings"`
	Counts   map[string]int `json:"counts"`
}

// LintResponse is the body of a successful POST /lint.
type LintResponse struct {
	Warnings []WarningDTO   `json:"warnings"`
	Counts   map[string]int `json:"counts"`
}

// Transform handles POST /transform: parse, rewrite, serialize.
func (s *Server) Transform(w http.ResponseWriter, r *http.Request) {
	input, ok := s.readMarkup(w, r)
	if !ok {
		return
	}

	if body, hit := s.cacheGet(r.Context(), input); hit {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
		return
	}

	resp, err := s.transform(input)
	if err != nil {
		http.Error(w, fmt.Sprintf("Transform error: %v", err), http.StatusUnprocessableEntity)
		s.logger.Warn("Transform failed", "error", err)
		return
	}

	body, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, "Response encode failed", http.StatusInternalServerError)
		s.logger.Error("Transform response encode failed", "error", err)
		return
	}

	s.cacheSet(r.Context(), input, string(body))

	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

// Lint handles POST /lint: report deprecations without returning rewritten
// markup.
func (s *Server) Lint(w http.ResponseWriter, r *http.Request) {
	input, ok := s.readMarkup(w, r)
	if !ok {
		return
	}

	resp, err := s.transform(input)
	if err != nil {
		http.Error(w, fmt.Sprintf("Lint error: %v", err), http.StatusUnprocessableEntity)
		s.logger.Warn("Lint failed", "error", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(LintResponse{Warnings: resp.Warnings, Counts: resp.Counts}); err != nil {
		s.logger.Error("Lint response encode failed", "error", err)
	}
}

// Health handles GET /healthz.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// Info handles GET /info.
func (s *Server) Info(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{
		"app":     "espalier-http",
		"version": strings.TrimSpace(s.version),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (s *Server) readMarkup(w http.ResponseWriter, r *http.Request) (string, bool) {
	var body TransformRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, MaxBodyBytes))
	if err := dec.Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("Invalid request body", "error", err)
		return "", false
	}
	if body.Markup == "" {
		http.Error(w, "Missing markup", http.StatusBadRequest)
		return "", false
	}
	return body.Markup, true
}

func (s *Server) transform(input string) (*TransformResponse, error) {
	root, err := s.parser.Parse(strings.NewReader(input))
	if err != nil {
		return nil, fmt.Errorf("parse markup: %w", err)
	}

	collector := diag.NewCollector()
	eng := transform.New(s.cfg, diag.Tee(collector, s.metrics.Sink()))
	counts := eng.Walk(root)
	s.metrics.ObserveWalk(counts)

	var out strings.Builder
	if err := s.serializer.Serialize(&out, root); err != nil {
		return nil, fmt.Errorf("serialize markup: %w", err)
	}

	resp := &TransformResponse{
		Markup:   out.String(),
		Warnings: make([]WarningDTO, 0, len(collector.Warnings())),
		Counts:   make(map[string]int, len(counts)),
	}
	for _, warn := range collector.Warnings() {
		resp.Warnings = append(resp.Warnings, WarningDTO{
			Context: warn.Context,
			Old:     warn.Old,
			New:     warn.New,
			Slot:    warn.Slot,
			Message: warn.String(),
		})
	}
	for kind, n := range counts {
		resp.Counts[kind.String()] = n
	}
	return resp, nil
}

func (s *Server) cacheGet(ctx context.Context, input string) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	body, err := s.cache.Get(ctx, ports.CacheKey(input))
	if err != nil {
		if !errors.Is(err, ports.ErrCacheMiss) {
			s.logger.Warn("Cache read failed", "error", err)
		}
		s.metrics.CacheMisses.Inc()
		return "", false
	}
	s.metrics.CacheHits.Inc()
	return body, true
}

func (s *Server) cacheSet(ctx context.Context, input, body string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, ports.CacheKey(input), body); err != nil {
		s.logger.Warn("Cache write failed", "error", err)
	}
}
