package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const shutdownTimeout = 5 * time.Second

// NewRouter wires the REST routes. ws, when not nil, is served at /ws; checks back /ping.
func NewRouter(logger *slog.Logger, uGame gameUseCase, ws http.Handler, checks ...func(ctx context.Context) error) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)

	ping := NewPingHandler(checks...)
	games := NewGameHandler(logger, uGame)

	router.Get("/ping", ping.PingHandler)

	router.Post("/games", games.CreateGame)
	router.Route("/games/{id}", func(r chi.Router) {
		r.Get("/", games.GetGame)
		r.Delete("/", games.EndGame)
		r.Post("/moves", games.MakeTurn)
		r.Post("/computer-moves", games.PlayComputerTurns)
		r.Get("/proposal", games.ProposeMove)
	})

	if ws != nil {
		router.Handle("/ws", ws)
	}

	return router
}

// Start serves handler on port until ctx is cancelled, then shuts down gracefully.
func Start(ctx context.Context, port string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	return nil
}
