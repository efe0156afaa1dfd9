// Package chi exposes the analyzer over HTTP using the go-chi router.
package chi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/readingassistant/digest"
)

// DefaultShutdownTimeout bounds how long in-flight requests may run after
// the server is asked to stop.
const DefaultShutdownTimeout = 10 * time.Second

// Server serves analyses over HTTP.
//
// The history endpoints are only mounted when an AnalysisService is
// configured, and the PDF endpoint only when a PDFRenderer is.
type Server struct {
	analyzer digest.Analyzer
	analyses digest.AnalysisService
	pdf      digest.PDFRenderer
	logger   *slog.Logger

	rateLimit float64
	burst     int

	router chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithAnalyses enables the history endpoints.
func WithAnalyses(s digest.AnalysisService) Option {
	return func(srv *Server) {
		srv.analyses = s
	}
}

// WithPDFRenderer enables GET /api/analyze/pdf.
func WithPDFRenderer(r digest.PDFRenderer) Option {
	return func(srv *Server) {
		srv.pdf = r
	}
}

// WithLogger sets the logger for request logs. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(srv *Server) {
		srv.logger = l
	}
}

// WithRateLimit limits each client IP to rps requests per second with the
// given burst. A zero rps disables limiting.
func WithRateLimit(rps float64, burst int) Option {
	return func(srv *Server) {
		srv.rateLimit = rps
		srv.burst = burst
	}
}

// NewServer creates a Server with its routes mounted.
func NewServer(analyzer digest.Analyzer, opts ...Option) *Server {
	s := &Server{
		analyzer: analyzer,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	// CORS must run before anything that can reject a preflight.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	if s.rateLimit > 0 {
		r.Use(newClientLimiter(s.rateLimit, s.burst).middleware)
	}

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/analyze", s.handleAnalyze)
		r.Get("/analyze/text", s.handleAnalyzeText)
		if s.pdf != nil {
			r.Get("/analyze/pdf", s.handleAnalyzePDF)
		}
		if s.analyses != nil {
			r.Get("/analyses", s.handleListAnalyses)
			r.Get("/analyses/{id}", s.handleGetAnalysis)
			r.Delete("/analyses/{id}", s.handleDeleteAnalysis)
		}
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, digest.Errorf(digest.ENOTFOUND, "no route for %s", r.URL.Path))
	})

	return r
}

// ListenAndServe serves on addr until ctx is done, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		defer func(begin time.Time) {
			s.logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"remote", r.RemoteAddr,
				"duration", time.Since(begin),
			)
		}(time.Now())
		next.ServeHTTP(ww, r)
	})
}
