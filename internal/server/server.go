// Package server exposes the eulertour pipeline over HTTP.
//
// Routes:
//
//	GET  /healthz                     build info and liveness
//	POST /v1/circuits                 JSON pipeline.Options → JSON result
//	GET  /v1/circuits                 same, options from the query string
//	GET  /v1/circuits/artifact/{fmt}  raw artifact bytes for one format
//
// Every response carries an X-Request-ID header; a client-supplied ID is
// echoed back, otherwise a UUID is assigned.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/eulertour/pkg/pipeline"
)

const (
	// MaxVertices and MaxEdges cap request size. The CLI is bounded only by
	// the generator limits.
	MaxVertices = 100_000
	MaxEdges    = 1_000_000

	maxBodyBytes      = 1 << 20
	readHeaderTimeout = 5 * time.Second
)

// Server routes HTTP requests to a pipeline runner.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// New builds a server around runner. A nil logger selects log.Default().
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{runner: runner, logger: logger}
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)
	r.Use(serverHeader)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1/circuits", func(r chi.Router) {
		r.Post("/", s.handleCreate)
		r.Get("/", s.handleQuery)
		r.Get("/artifact/{format}", s.handleArtifact)
	})
	return r
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down,
// waiting at most shutdownTimeout for in-flight requests.
func (s *Server) ListenAndServe(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln, shutdownTimeout)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", ln.Addr().String())
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", "timeout", shutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
