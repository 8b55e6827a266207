package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/klokku/eventboard/internal/config"
	log "github.com/sirupsen/logrus"
)

// Application wires configuration, router, and server lifecycle.
type Application struct {
	cfg    config.Application
	router *mux.Router
	srv    *http.Server
}

// NewApplication constructs the full HTTP application, ready to Run().
func NewApplication(cfg config.Application) (*Application, error) {
	r := mux.NewRouter()

	// Build dependencies (client, sessions, handlers...)
	deps := BuildDependencies(cfg)

	// Middleware chain
	SetupMiddleware(r, deps, cfg)

	// Routes
	RegisterRoutes(r, deps, cfg)

	srv := &http.Server{
		Handler:      r,
		Addr:         cfg.Listen,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Application{cfg: cfg, router: r, srv: srv}, nil
}

// Handler exposes the routed handler, mainly for tests.
func (a *Application) Handler() http.Handler {
	return a.router
}

// Run starts the HTTP server and blocks until ctx is done.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting server on %s (Event Service at %s)", a.srv.Addr, a.cfg.EventService.BaseURL)
		if err := a.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return a.srv.Shutdown(shutdownCtx)
}
