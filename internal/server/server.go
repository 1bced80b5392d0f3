// Package server exposes the dashboard as a JSON API for the mobile PWA.
package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/oceandata/fisherman-cli/internal/dashboard"
	"github.com/oceandata/fisherman-cli/internal/metrics"
	"github.com/oceandata/fisherman-cli/pkg/oceanapi"
)

// requestTimeout bounds one handler. Each action makes at most two
// sequential backend calls with their own 30s timeouts.
const requestTimeout = 75 * time.Second

// Server routes HTTP requests to a dashboard.Service.
type Server struct {
	svc          dashboard.Service
	metrics      *metrics.Metrics
	origins      []string
	defaultToken string
	router       chi.Router
}

// Option configures the server.
type Option func(*Server)

// WithMetrics serves m on /metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// WithAllowedOrigins sets the CORS origins. Default: any.
func WithAllowedOrigins(origins []string) Option {
	return func(s *Server) {
		s.origins = origins
	}
}

// WithDefaultToken is used for requests without an Authorization header.
func WithDefaultToken(token string) Option {
	return func(s *Server) {
		s.defaultToken = token
	}
}

// New builds the router.
func New(svc dashboard.Service, opts ...Option) *Server {
	s := &Server{svc: svc, origins: []string{"*"}}
	for _, o := range opts {
		o(s)
	}
	s.router = s.routes()
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if s.metrics != nil {
		r.Handle("/metrics", s.metrics.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Timeout(requestTimeout))

		r.Post("/login", s.handleLogin)
		r.Post("/catch-reports", s.handleCatchReport)
		r.Post("/predictions", s.handlePredict)
		r.Post("/edna", s.handleEDNA)
		r.Get("/weather", s.handleWeather)
		r.Get("/zones", s.handleZones)
		r.Get("/zones/locate", s.handleLocate)
		r.Get("/analytics", s.handleAnalytics)
	})

	return r
}

// session takes the bearer token from the request, falling back to the
// configured default.
func (s *Server) session(r *http.Request) oceanapi.Session {
	h := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(h, "Bearer "); ok && strings.TrimSpace(token) != "" {
		return oceanapi.Session{Token: strings.TrimSpace(token)}
	}
	return oceanapi.Session{Token: s.defaultToken}
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		zap.L().Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
