package playground

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"

	"github.com/vango-dev/jsx/internal/config"
	"github.com/vango-dev/jsx/internal/errors"
	"github.com/vango-dev/jsx/pkg/middleware"
	"github.com/vango-dev/jsx/pkg/tree"
	"github.com/vango-dev/jsx/pkg/vnode"
	"github.com/vango-dev/jsx/pkg/wire"
)

// Server handles playground requests.
type Server struct {
	cfg      *config.Config
	logger   *slog.Logger
	builder  *tree.Builder
	registry *prometheus.Registry
	metrics  *middleware.Metrics
	tracing  []middleware.OTelOption
}

// Option configures a Server.
type Option func(*Server)

// WithComponents registers function components by tag name.
func WithComponents(components map[string]any) Option {
	return func(s *Server) {
		s.builder.Components = components
	}
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithTracing passes options to the tracing middleware.
func WithTracing(opts ...middleware.OTelOption) Option {
	return func(s *Server) {
		s.tracing = append(s.tracing, opts...)
	}
}

// New creates a Server. Metrics go to a private registry exposed on
// /metrics, so several servers can coexist in one process.
func New(cfg *config.Config, opts ...Option) *Server {
	if cfg == nil {
		cfg = config.New()
	}
	s := &Server{
		cfg:     cfg,
		logger:  slog.Default(),
		builder: &tree.Builder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "playground")

	if cfg.Metrics.Enabled {
		s.registry = prometheus.NewRegistry()
		s.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		s.metrics = middleware.NewMetrics(
			middleware.WithRegistry(s.registry),
			middleware.WithNamespace(cfg.Metrics.Namespace),
		)
	}
	return s
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(s.logRequests)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Tracing(s.tracing...))
	r.Use(s.metrics.Handler)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if s.registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}

	r.Route("/v1", func(r chi.Router) {
		r.Get("/formats", s.formats)
		r.Post("/transform", s.transform)
		r.Post("/lint", s.lint)
	})
	return r
}

func (s *Server) formats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"formats": wire.Formats(),
		"default": s.cfg.Output.Format,
	})
}

func (s *Server) transform(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	format := r.URL.Query().Get("format")
	if format == "" {
		format = s.cfg.Output.Format
	}
	codec, err := wire.Lookup(format)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	indent := s.cfg.Output.Indent || r.URL.Query().Get("indent") == "1"
	if indent {
		codec = wire.WithIndent(codec, "  ")
	}

	body, err := s.readBody(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	_, span := middleware.StartSpan(ctx, "build",
		attribute.Int("jsx.body_bytes", len(body)))
	node, err := s.decode(r, body)
	middleware.RecordError(span, err)
	span.End()
	if err != nil {
		s.fail(w, r, err)
		return
	}

	_, span = middleware.StartSpan(ctx, "encode",
		attribute.String("jsx.format", codec.Format()))
	out, err := wire.Encode(codec, node)
	middleware.RecordError(span, err)
	span.End()
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.metrics.ObserveTransform(codec.Format(), countNodes(node), len(out))
	w.Header().Set("Content-Type", codec.ContentType())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

func (s *Server) lint(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	doc, err := tree.Parse(body, tree.FormatForContentType(r.Header.Get("Content-Type")))
	if err != nil {
		s.fail(w, r, err)
		return
	}

	findings := []finding{}
	for _, f := range tree.Lint(doc) {
		if s.cfg.Lint.Ignored(f.Key) {
			continue
		}
		findings = append(findings, finding{Path: f.Path, Tag: f.Tag, Key: f.Key, Use: f.Use})
	}
	writeJSON(w, http.StatusOK, map[string]any{"findings": findings})
}

type finding struct {
	Path string `json:"path"`
	Tag  string `json:"tag"`
	Key  string `json:"key"`
	Use  string `json:"use"`
}

func (s *Server) decode(r *http.Request, body []byte) (*vnode.VNode, error) {
	doc, err := tree.Parse(body, tree.FormatForContentType(r.Header.Get("Content-Type")))
	if err != nil {
		return nil, err
	}
	return s.builder.Build(doc)
}

// readBody reads at most Serve.MaxBodyBytes.
func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Serve.MaxBodyBytes)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return nil, errors.New("E124").
				WithDetailf("request body exceeds %d bytes", tooLarge.Limit).
				Wrap(err)
		}
		return nil, errors.New("E101").WithDetail(err.Error()).Wrap(err)
	}
	return body, nil
}

// fail writes err as JSON. Coded errors keep their code; anything else is
// reported as an internal error without detail.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	s.metrics.RecordError(err)

	var e *errors.Error
	if !stderrors.As(err, &e) {
		s.logger.Error("transform failed", "error", err, "request_id", chimw.GetReqID(r.Context()))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "internal error"})
		return
	}

	status := statusFor(e.Code)
	s.logger.Debug("request rejected", "code", e.Code, "status", status, "detail", e.Detail)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, e.FormatJSON()+"\n")
}

// statusFor maps an error code to an HTTP status.
func statusFor(code string) int {
	switch {
	case code == "E124":
		return http.StatusRequestEntityTooLarge
	case code == "E123":
		return http.StatusBadRequest
	case code >= "E100" && code < "E120":
		return http.StatusBadRequest
	case code >= "E160" && code < "E180":
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", chimw.GetReqID(r.Context()),
		)
	})
}

func countNodes(v *vnode.VNode) int {
	n := 0
	v.Walk(func(*vnode.VNode) bool {
		n++
		return true
	})
	return n
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode failed", slog.String("error", err.Error()))
	}
}
