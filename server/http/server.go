// Package http wires the assistant, the tool registry, and the store into
// one HTTP surface: tool routes synthesized by the binder plus the
// application's own CRUD and upload endpoints.
package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/atharvakapadnis/agentic-tasks/internal/service/assistant"
	"github.com/atharvakapadnis/agentic-tasks/store"
	"github.com/atharvakapadnis/agentic-tasks/toolkit"
	"github.com/gorilla/mux"
)

type Server struct {
	options   Options
	assistant *assistant.Service
	registry  *toolkit.Registry
	store     store.Store
	router    *mux.Router
	srv       *http.Server
}

func NewServer(a *assistant.Service, registry *toolkit.Registry, st store.Store, opts ...Option) *Server {
	s := &Server{
		options:   NewOptions(opts...),
		assistant: a,
		registry:  registry,
		store:     st,
	}

	router := mux.NewRouter()
	router.Use(requestLogger)

	binder := toolkit.NewBinder(registry, toolkit.WithPrefix(s.options.ToolPrefix))
	binder.Routes(router)

	s.routes(router)
	s.router = router

	s.srv = &http.Server{
		Addr:         s.options.Address,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
	}

	return s
}

// Handler exposes the composed router, used by tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		slog.Info("http server listening", "address", s.options.Address)
		errCh <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	return s.srv.Shutdown(shutdownCtx)
}
