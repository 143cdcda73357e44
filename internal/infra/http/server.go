package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Server exposes the operational HTTP surface: health, metrics, and the
// Telegram webhook route when webhook delivery is enabled.
type Server struct {
	server *http.Server
	log    *zerolog.Logger
}

// NewServer builds the router. webhook may be nil in polling mode; the
// webhook route is simply not mounted then.
func NewServer(port int, webhookPath string, webhook http.HandlerFunc, logger *zerolog.Logger) *Server {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())
	if webhook != nil {
		// All methods land on the handler; it answers non-POST itself.
		r.HandleFunc(webhookPath, webhook)
	}

	return &Server{
		server: &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: r},
		log:    logger,
	}
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler { return s.server.Handler }

func (s *Server) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("http server listening")
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
