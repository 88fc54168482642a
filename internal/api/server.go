package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/beamx-labs/validator-engine/internal/analytics"
	"github.com/beamx-labs/validator-engine/internal/catalog"
	"github.com/beamx-labs/validator-engine/internal/config"
	"github.com/beamx-labs/validator-engine/internal/email"
	"github.com/beamx-labs/validator-engine/internal/recommend"
	"github.com/beamx-labs/validator-engine/internal/report"
	"github.com/beamx-labs/validator-engine/internal/session"
	"github.com/beamx-labs/validator-engine/internal/storage"
)

// Server represents the HTTP API server
type Server struct {
	config         config.ServerConfig
	router         *chi.Mux
	catalog        *catalog.Catalog
	sessions       *session.Store
	repo           storage.Repository
	recommender    *recommend.Service
	renderer       *report.EmailRenderer
	mailer         *email.Mailer
	tracker        *analytics.Tracker
	authMiddleware *AuthMiddleware
}

// NewServer creates a new API server
func NewServer(
	cfg config.ServerConfig,
	cat *catalog.Catalog,
	sessions *session.Store,
	repo storage.Repository,
	recommender *recommend.Service,
	renderer *report.EmailRenderer,
	mailer *email.Mailer,
	tracker *analytics.Tracker,
) *Server {
	s := &Server{
		config:         cfg,
		catalog:        cat,
		sessions:       sessions,
		repo:           repo,
		recommender:    recommender,
		renderer:       renderer,
		mailer:         mailer,
		tracker:        tracker,
		authMiddleware: NewAuthMiddleware(repo),
	}
	s.setupRouter()
	return s
}

// Router returns the configured router
func (s *Server) Router() http.Handler {
	return s.router
}

// setupRouter configures all routes and middleware
func (s *Server) setupRouter() {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(150 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check (outside versioned API - public)
	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Question catalog
		r.Route("/questions", func(r chi.Router) {
			r.Get("/", s.handleListQuestions)
			r.Get("/{id}", s.handleGetQuestion)
		})

		// Assessment sessions (session token = auth)
		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", s.handleStartSession)

			r.Route("/{token}", func(r chi.Router) {
				r.Get("/", s.handleGetSession)
				r.Post("/answers", s.handleAnswer)
				r.Post("/back", s.handleBack)
				r.Post("/submit", s.handleSubmit)
			})
		})

		// Completed results (unguessable UUID = auth)
		r.Route("/results/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetResult)
			r.Post("/recommendation", s.handleRecommendation)
			r.Get("/share", s.handleShare)
			r.Get("/report.pdf", s.handleReportPDF)
			r.Post("/email", s.handleEmail)
		})

		// Client-side analytics ingestion
		r.Post("/events", s.handleTrackEvent)

		// Admin routes (protected by API key authentication)
		r.Route("/admin", func(r chi.Router) {
			r.Use(s.authMiddleware.Authenticate)

			r.With(s.authMiddleware.RequirePermission("results:read")).Get("/results", s.handleListResults)
			r.With(s.authMiddleware.RequirePermission("results:write")).Delete("/results/{id}", s.handleDeleteResult)
			r.With(s.authMiddleware.RequirePermission("analytics:read")).Get("/analytics", s.handleAnalytics)
		})
	})

	s.router = r
}

// loggingMiddleware logs HTTP requests using slog
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			slog.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", middleware.GetReqID(r.Context()),
				"remote_addr", r.RemoteAddr,
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
