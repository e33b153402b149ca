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

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type uGame interface {
	NewGame(ctx context.Context, botMode bool) (*entity.GameView, error)
	GetGame(ctx context.Context, id string) (*entity.GameView, error)
	MakeTurn(ctx context.Context, id string, row, col int) (*entity.GameView, error)
	Reset(ctx context.Context, id string) (*entity.GameView, error)
	SetBotMode(ctx context.Context, id string, enabled bool) (*entity.GameView, error)
	DeleteGame(ctx context.Context, id string) error
}

type Server struct {
	logger *slog.Logger
	uGame  uGame
}

func New(logger *slog.Logger, uGame uGame) *Server {
	return &Server{
		logger: logger.With("component", "rest"),
		uGame:  uGame,
	}
}

// Handler - routes of the game API.
func (that *Server) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Get("/ping", pingHandler)

	router.Route("/games", func(r chi.Router) {
		r.Post("/", that.handleNewGame)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", that.handleGetGame)
			r.Delete("/", that.handleDeleteGame)
			r.Post("/moves", that.handleMakeTurn)
			r.Post("/reset", that.handleReset)
			r.Put("/mode", that.handleSetMode)
		})
	})

	return router
}

// Start - serves the API until ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
