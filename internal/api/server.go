// Package api exposes the study coach over HTTP: quiz generation and
// scoring, the gated tutor chat, style and context analysis, and read-only
// catalog listings.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/realnamesareboring/certifai/internal/analysis"
	"github.com/realnamesareboring/certifai/internal/chat"
	"github.com/realnamesareboring/certifai/internal/config"
	"github.com/realnamesareboring/certifai/internal/quizgen"
	"github.com/realnamesareboring/certifai/internal/store"
)

// Server is the HTTP API server.
type Server struct {
	config    config.ServerConfig
	router    *chi.Mux
	generator *quizgen.Generator
	chat      *chat.Service
	analysis  *analysis.Service
	events    store.EventRepo
}

// NewServer creates an API server. events may be nil when the audit store
// is disabled.
func NewServer(
	cfg config.ServerConfig,
	corsCfg config.CORSConfig,
	generator *quizgen.Generator,
	chatSvc *chat.Service,
	analysisSvc *analysis.Service,
	events store.EventRepo,
) *Server {
	s := &Server{
		config:    cfg,
		generator: generator,
		chat:      chatSvc,
		analysis:  analysisSvc,
		events:    events,
	}
	s.setupRouter(corsCfg)
	return s
}

// Router returns the configured router.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) setupRouter(corsCfg config.CORSConfig) {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsCfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/quiz", func(r chi.Router) {
			r.Post("/generate", s.handleGenerateQuiz)
			r.Post("/score", s.handleScoreQuiz)
		})

		r.Post("/chat", s.handleChat)

		r.Route("/analysis", func(r chi.Router) {
			r.Post("/style", s.handleStyleAnalysis)
			r.Post("/context", s.handleContextAnalysis)
		})

		r.Route("/certifications", func(r chi.Router) {
			r.Get("/", s.handleListCertifications)
			r.Get("/{id}", s.handleGetCertification)
		})
	})

	s.router = r
}

// loggingMiddleware logs HTTP requests using slog.
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
