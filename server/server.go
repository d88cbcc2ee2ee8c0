package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/healthedi/x12/engine"
)

// Server wraps an engine.Engine behind an HTTP router.
type Server struct {
	engine engine.Engine
	log    zerolog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger overrides the zerolog.Logger used for request logging.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Server) { s.log = log }
}

// New creates a Server fronting e.
func New(e engine.Engine, opts ...Option) *Server {
	s := &Server{engine: e, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Router builds the chi.Router exposing POST /x12.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", outputModeHeader},
	}))
	r.Post("/x12", s.handleX12)
	return r
}
