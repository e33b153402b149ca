package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/bot"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Snapshot - captures the board as a persistable game.
func (that *Board) Snapshot(id string) *entity.Game {
	return &entity.Game{
		ID:           id,
		Grid:         that.grid,
		MovesMade:    that.movesMade,
		Completed:    that.completed,
		Winner:       that.winner,
		LastMove:     that.lastMove,
		ActiveMark:   that.ActivePlayer().Mark,
		BotMode:      that.botMode,
		BotMark:      that.opts.Bot.Mark,
		BotFirstTurn: that.bot.FirstTurn(),
	}
}

// Restore - rebuilds a board from a snapshot. The bot keeps the mark it was
// seated with, even if opts now name another one.
func Restore(game *entity.Game, opts Options) *Board {
	if game.BotMark != entity.Empty {
		opts.Bot.Mark = game.BotMark
	}

	board := &Board{
		opts:      opts,
		grid:      game.Grid,
		movesMade: game.MovesMade,
		completed: game.Completed,
		winner:    game.Winner,
		lastMove:  game.LastMove,
		botMode:   game.BotMode,
		bot:       bot.Restore(opts.Bot, opts.Random, game.BotFirstTurn),
	}

	board.players = board.seat()
	board.active = board.firstToMove()
	if board.players[board.active].Mark != game.ActiveMark {
		board.SwitchActivePlayer()
	}

	return board
}

// View - describes the board for a presentation layer.
func (that *Board) View(id string) *entity.GameView {
	view := &entity.GameView{
		ID:      id,
		Board:   that.grid,
		Status:  entity.StatusOngoing,
		BotMode: that.botMode,
		Message: that.Message(),
	}

	if !that.lastMove.IsNoMove() {
		lastMove := that.lastMove
		view.LastMove = &lastMove
	}

	switch {
	case that.winner != entity.Empty:
		view.Status = entity.StatusFinished
		view.Winner = that.WinnerName()
	case that.IsTerminal():
		view.Status = entity.StatusFinished
		view.Winner = entity.PlayerTie
	default:
		active := that.ActivePlayer()
		view.Turn = &active
	}

	return view
}

// Message - the status line shown to the players.
func (that *Board) Message() string {
	switch {
	case that.winner != entity.Empty:
		return that.WinnerName() + " is victorious! Reset to play again."
	case that.IsTerminal():
		return "Draw! Reset to play again."
	case that.botMode && that.movesMade <= 1:
		human := that.players[0]
		if human.Mark == that.opts.Bot.Mark {
			human = that.players[1]
		}

		return fmt.Sprintf("Bot mode. You are '%s' and the bot is '%s'", human.Mark, that.opts.Bot.Mark)
	default:
		return that.ActivePlayer().Name + "'s turn"
	}
}
