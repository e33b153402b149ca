package websocket

import (
	"context"
	"errors"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
)

var (
	errGameIDRequired   = errors.New("game_id is required")
	errPositionRequired = errors.New("row and col are required")
)

func (that *Server) handleNewGame(ctx context.Context, payload *Payload) (*entity.GameView, error) {
	return that.uGame.NewGame(ctx, payload.BotMode)
}

func (that *Server) handleGetGame(ctx context.Context, payload *Payload) (*entity.GameView, error) {
	if payload.GameID == "" {
		return nil, errGameIDRequired
	}

	return that.uGame.GetGame(ctx, payload.GameID)
}

func (that *Server) handleGameTurn(ctx context.Context, payload *Payload) (*entity.GameView, error) {
	if payload.GameID == "" {
		return nil, errGameIDRequired
	}

	if payload.Row == nil || payload.Col == nil {
		return nil, errPositionRequired
	}

	return that.uGame.MakeTurn(ctx, payload.GameID, *payload.Row, *payload.Col)
}

func (that *Server) handleReset(ctx context.Context, payload *Payload) (*entity.GameView, error) {
	if payload.GameID == "" {
		return nil, errGameIDRequired
	}

	return that.uGame.Reset(ctx, payload.GameID)
}

func (that *Server) handleMode(ctx context.Context, payload *Payload) (*entity.GameView, error) {
	if payload.GameID == "" {
		return nil, errGameIDRequired
	}

	return that.uGame.SetBotMode(ctx, payload.GameID, payload.BotMode)
}

// errorMessage - the client facing text of an error; internal failures are not exposed.
func errorMessage(err error) string {
	for _, known := range []error{
		repository.ErrGameNotFound,
		apperror.ErrGameFinished,
		apperror.ErrNotYourTurn,
		apperror.ErrInvalidMove,
		errGameIDRequired,
		errPositionRequired,
	} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}

	return "internal server error"
}
