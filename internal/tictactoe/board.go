package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-engine/internal/bot"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// minMovesForWinner short-circuits HasWinner. A line needs at least 5 moves;
// the threshold is kept at 4 on purpose.
const minMovesForWinner = 4

// Options configure the players of a board.
type Options struct {
	Player1 entity.Player
	Player2 entity.Player
	Bot     entity.Player
	Random  bot.Random
}

// DefaultOptions - "Player 1" with X, "Player 2" with O and "Bot" with X.
func DefaultOptions() Options {
	return Options{
		Player1: entity.Player{Name: "Player 1", Mark: entity.PlayerX},
		Player2: entity.Player{Name: "Player 2", Mark: entity.PlayerO},
		Bot:     entity.Player{Name: "Bot", Mark: entity.PlayerX},
		Random:  bot.DefaultRandom(),
	}
}

// Board owns the grid of one game and is mutated only through ApplyMove.
// It is not safe for concurrent use.
type Board struct {
	opts Options

	grid      entity.Grid
	movesMade int
	completed bool
	winner    entity.Mark
	lastMove  entity.Position

	players [2]entity.Player
	active  int

	botMode bool
	bot     *bot.Bot
}

func New(opts Options) *Board {
	board := &Board{opts: opts}
	board.Reset()

	return board
}

// ApplyMove - places mark at (row, col). It reports false and leaves the board
// untouched when the cell is out of range or taken, the mark is not the active
// player's, or the game is over.
func (that *Board) ApplyMove(row, col int, mark entity.Mark) bool {
	pos := entity.Position{Row: row, Col: col}

	if that.IsTerminal() || !that.grid.InBounds(pos) {
		return false
	}

	if that.grid.At(pos) != entity.Empty || mark == entity.Empty || mark != that.ActivePlayer().Mark {
		return false
	}

	that.grid.Set(pos, mark)
	that.lastMove = pos
	that.movesMade++

	return true
}

func (that *Board) SwitchActivePlayer() {
	that.active = 1 - that.active
}

// IsTerminal reports a latched win or a full board.
func (that *Board) IsTerminal() bool {
	return that.completed || that.movesMade >= entity.Size*entity.Size
}

// HasWinner - checks the grid for a completed line and latches the terminal flag.
// It always reports false before the fourth move.
func (that *Board) HasWinner() bool {
	if that.movesMade < minMovesForWinner {
		return false
	}

	if winner := that.grid.Winner(); winner != entity.Empty {
		that.winner = winner
		that.completed = true

		return true
	}

	return false
}

// WinnerMark returns the mark owning the detected line. Callers must call
// HasWinner first; before that it returns entity.Empty.
func (that *Board) WinnerMark() entity.Mark {
	return that.winner
}

// WinnerName - name of the winning player, or "" when there is none.
func (that *Board) WinnerName() string {
	if that.winner == entity.Empty {
		return ""
	}

	for _, player := range that.players {
		if player.Mark == that.winner {
			return player.Name
		}
	}

	return ""
}

// IsDraw reports a full board without a line.
func (that *Board) IsDraw() bool {
	return that.IsTerminal() && that.winner == entity.Empty
}

// Reset - clears the grid and counters, recreates the bot and makes the X holder active.
func (that *Board) Reset() {
	that.grid = entity.Grid{}
	that.movesMade = 0
	that.completed = false
	that.winner = entity.Empty
	that.lastMove = entity.NoMove

	that.bot = bot.New(that.opts.Bot, that.opts.Random)
	that.players = that.seat()
	that.active = that.firstToMove()
}

// SetBotMode only switches the seats; call Reset to start a game in the new mode.
func (that *Board) SetBotMode(enabled bool) {
	that.botMode = enabled
	that.players = that.seat()
}

func (that *Board) BotMode() bool {
	return that.botMode
}

// IsBotTurn reports whether the bot holds the active mark.
func (that *Board) IsBotTurn() bool {
	return that.botMode && that.ActivePlayer().Mark == that.opts.Bot.Mark
}

// BotTurn - asks the bot for a move on a snapshot and commits it. It reports
// false when it is not the bot's turn, the game is over or the bot has no move.
func (that *Board) BotTurn() (entity.Position, bool) {
	if !that.IsBotTurn() || that.IsTerminal() {
		return entity.NoMove, false
	}

	mark := that.opts.Bot.Mark

	move := that.bot.MakeMove(that.grid, mark.Opponent())
	if move.IsNoMove() {
		return entity.NoMove, false
	}

	if !that.ApplyMove(move.Row, move.Col, mark) {
		return entity.NoMove, false
	}

	that.finishTurn()

	return move, true
}

// Play - applies a move for the active player, checks for a winner and passes the turn.
func (that *Board) Play(row, col int) bool {
	if !that.ApplyMove(row, col, that.ActivePlayer().Mark) {
		return false
	}

	that.finishTurn()

	return true
}

func (that *Board) finishTurn() {
	that.HasWinner()

	if !that.IsTerminal() {
		that.SwitchActivePlayer()
	}
}

// Grid returns a copy of the grid.
func (that *Board) Grid() entity.Grid {
	return that.grid
}

func (that *Board) MovesMade() int {
	return that.movesMade
}

// LastMove returns entity.NoMove before the first move.
func (that *Board) LastMove() entity.Position {
	return that.lastMove
}

func (that *Board) ActivePlayer() entity.Player {
	return that.players[that.active]
}

func (that *Board) Players() [2]entity.Player {
	return that.players
}

// seat - the two competitors, X holder first. In bot mode the human takes the bot's opposite mark.
func (that *Board) seat() [2]entity.Player {
	if !that.botMode {
		return orderByMark(that.opts.Player1, that.opts.Player2)
	}

	human := that.opts.Player1
	if human.Mark == that.opts.Bot.Mark {
		human = that.opts.Player2
	}
	human.Mark = that.opts.Bot.Mark.Opponent()

	return orderByMark(that.opts.Bot, human)
}

func (that *Board) firstToMove() int {
	if that.players[0].Mark == entity.PlayerX {
		return 0
	}

	return 1
}

func orderByMark(a, b entity.Player) [2]entity.Player {
	if b.Mark == entity.PlayerX {
		return [2]entity.Player{b, a}
	}

	return [2]entity.Player{a, b}
}
