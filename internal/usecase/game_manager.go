package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager runs board sessions: it restores a board from the repository,
// drives one turn (and the bot's answer) and stores it back. Requests for the
// same game are serialized from load to save.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
	options  tictactoe.Options
	sessions *sessionLocks
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, options tictactoe.Options) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		gameRepo: gameRepo,
		options:  options,
		sessions: newSessionLocks(),
	}
}

// NewGame - creates a session. In bot mode the bot opens when it holds the first mark.
func (that *GameManager) NewGame(ctx context.Context, botMode bool) (*entity.GameView, error) {
	gameID := uuid.NewString()

	board := tictactoe.New(that.options)
	board.SetBotMode(botMode)
	board.Reset()

	if err := that.playBot(board); err != nil {
		return nil, fmt.Errorf("failed to play bot opening: %w", err)
	}

	if err := that.saveGame(ctx, gameID, board); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Debug("game created", "gameID", gameID, "botMode", botMode)

	return board.View(gameID), nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.GameView, error) {
	board, err := that.getBoard(ctx, id)
	if err != nil {
		return nil, err
	}

	return board.View(id), nil
}

// MakeTurn - plays (row, col) for the active player and, in bot mode, the bot's answer.
func (that *GameManager) MakeTurn(ctx context.Context, id string, row, col int) (*entity.GameView, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", id)

	unlock := that.sessions.lock(id)
	defer unlock()

	board, err := that.getBoard(ctx, id)
	if err != nil {
		return nil, err
	}

	if board.IsTerminal() {
		return board.View(id), apperror.ErrGameFinished
	}

	if board.IsBotTurn() {
		return board.View(id), apperror.ErrNotYourTurn
	}

	if !board.Play(row, col) {
		return board.View(id), fmt.Errorf("%w: row %d, col %d", apperror.ErrInvalidMove, row, col)
	}

	if err = that.playBot(board); err != nil {
		return nil, fmt.Errorf("failed to play bot turn: %w", err)
	}

	if err = that.saveGame(ctx, id, board); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if board.IsTerminal() {
		log.Info("game finished", "winner", board.WinnerName(), "moves", board.MovesMade())
	}

	return board.View(id), nil
}

// Reset - starts the session over in its current mode.
func (that *GameManager) Reset(ctx context.Context, id string) (*entity.GameView, error) {
	unlock := that.sessions.lock(id)
	defer unlock()

	board, err := that.getBoard(ctx, id)
	if err != nil {
		return nil, err
	}

	return that.restart(ctx, id, board)
}

// SetBotMode - switches the mode and starts the session over.
func (that *GameManager) SetBotMode(ctx context.Context, id string, enabled bool) (*entity.GameView, error) {
	unlock := that.sessions.lock(id)
	defer unlock()

	board, err := that.getBoard(ctx, id)
	if err != nil {
		return nil, err
	}

	board.SetBotMode(enabled)

	return that.restart(ctx, id, board)
}

func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	unlock := that.sessions.lock(id)
	defer unlock()

	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Debug("game deleted", "gameID", id)

	return nil
}

func (that *GameManager) restart(ctx context.Context, id string, board *tictactoe.Board) (*entity.GameView, error) {
	board.Reset()

	if err := that.playBot(board); err != nil {
		return nil, fmt.Errorf("failed to play bot opening: %w", err)
	}

	if err := that.saveGame(ctx, id, board); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return board.View(id), nil
}

// playBot - lets the bot move when it is its turn. No-op otherwise.
func (that *GameManager) playBot(board *tictactoe.Board) error {
	if !board.IsBotTurn() || board.IsTerminal() {
		return nil
	}

	if _, ok := board.BotTurn(); !ok {
		return apperror.ErrNoBotMove
	}

	return nil
}

func (that *GameManager) getBoard(ctx context.Context, id string) (*tictactoe.Board, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return tictactoe.Restore(game, that.options), nil
}

func (that *GameManager) saveGame(ctx context.Context, id string, board *tictactoe.Board) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, board.Snapshot(id)); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}
