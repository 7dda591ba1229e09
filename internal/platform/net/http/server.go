package http

import (
	"context"
	"errors"
	stdhttp "net/http"
	"time"

	"readathon/internal/platform/config"
	"readathon/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Server wraps a chi mux and the stdlib http.Server that drives it
type Server struct {
	listen string
	chiMux *chi.Mux
	inner  *stdhttp.Server
}

// NewServer builds the API server. Listen address comes from API_PORT.
// tweaks receive the raw mux for callers that need chi directly
func NewServer(cfg config.Conf, tweaks ...func(*chi.Mux)) *Server {
	s := &Server{
		listen: cfg.MayString("API_PORT", ":4000"),
		chiMux: chi.NewRouter(),
	}
	for _, tweak := range tweaks {
		tweak(s.chiMux)
	}

	s.inner = &stdhttp.Server{
		Addr:              s.listen,
		Handler:           s.chiMux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Router returns the routing seam modules mount onto
func (s *Server) Router() Router {
	return AdaptChi(s.chiMux)
}

// Addr returns the listening address
func (s *Server) Addr() string { return s.listen }

// Run serves until Shutdown; a clean close returns nil
func (s *Server) Run(ctx context.Context) error {
	logger.Named("http").Info().Str("addr", s.listen).Msg("http listening")

	if err := s.inner.ListenAndServe(); !errors.Is(err, stdhttp.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests then stops the listener
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
