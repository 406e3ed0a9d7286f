// Package playground implements an interactive front-end exploration
// server: a stateless HTTP+WebSocket wrapper around one Environment
// per request, for keystroke-driven tokenize/parse demos. It never
// evaluates anything and holds no persisted state.
package playground

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Server wraps a chi router configured with the playground's one
// HTTP endpoint and one WebSocket endpoint.
type Server struct {
	router   chi.Router
	http     *http.Server
	logger   *zap.Logger
	maxBytes int
}

// Option configures a new Server.
type Option func(*Server)

// WithLogger installs a structured logger for request-scoped logging.
// A nil logger (the default) discards log output.
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) {
		if l == nil {
			l = zap.NewNop()
		}
		s.logger = l
	}
}

// WithMaxSourceBytes caps the size of a request body accepted by
// /api/v1/parse and the per-message size on the WebSocket stream.
func WithMaxSourceBytes(n int) Option {
	return func(s *Server) { s.maxBytes = n }
}

// New builds a Server listening at addr once ListenAndServe is called.
func New(addr string, opts ...Option) *Server {
	s := &Server{logger: zap.NewNop(), maxBytes: 1 << 20}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(s.logRequests)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/parse", s.handleParse)
		r.Get("/stream", s.handleStream)
	})

	s.router = r
	s.http = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// ServeHTTP lets Server satisfy http.Handler, mainly for tests that
// exercise it with httptest without binding a real listener.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server and blocks until it exits.
func (s *Server) ListenAndServe() error {
	return s.http.ListenAndServe()
}

// logRequests is a thin chi middleware logging method, path, status,
// duration, and the chi-assigned request ID at info level.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", chimw.GetReqID(r.Context())),
		)
	})
}
