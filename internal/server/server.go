package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"

	"stlrelay-go/internal/config"
	"stlrelay-go/internal/drive"
	"stlrelay-go/internal/uploader"
)

const serviceName = "stl-relay"

// Server represents the HTTP server and its dependencies
type Server struct {
	config        *config.Config
	drive         *drive.Client
	uploadHandler *uploader.Handler
}

// NewServer creates a new server instance
func NewServer(config *config.Config, driveClient *drive.Client) *Server {
	uploadService := uploader.NewService(driveClient, config)

	return &Server{
		config:        config,
		drive:         driveClient,
		uploadHandler: uploader.NewHandler(uploadService),
	}
}

// Start initializes and starts the HTTP server
func (s *Server) Start() (*http.Server, error) {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * time.Minute,
	}

	log.Info().
		Int("port", s.config.Port).
		Str("env", s.config.Env).
		Msg("starting server")

	return srv, nil
}

// sendJSON sends a JSON response with consistent formatting
func (s *Server) sendJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("error encoding JSON response")
	}
}
