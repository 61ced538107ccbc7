package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	// Request bodies carry base64 payloads, capped at UPLOAD_MAX_SIZE
	r.Use(middleware.RequestSize(s.config.UploadMaxSize))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/", s.handleStatus)

	// Operator-facing oauth consent flow
	r.Get("/auth", s.handleAuth)
	r.Get("/oauth2callback", s.handleOAuthCallback)

	// Upload routes
	r.Post("/upload", s.uploadHandler.HandleUpload)
	r.Post("/upload-batch", s.uploadHandler.HandleBatchUpload)

	return r
}
