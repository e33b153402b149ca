// Package bot implements the computer opponent: an exhaustive minimax search
// that occasionally sabotages itself so a human has a chance to win.
package bot

import (
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	// sabotage triggers when a roll in [0, sabotageRange) is <= sabotageThreshold, 11 of 50 outcomes.
	sabotageRange     = 50
	sabotageThreshold = 10
)

// Random is the source of the sabotage roll.
type Random interface {
	IntN(n int) int
}

type globalRandom struct{}

func (globalRandom) IntN(n int) int {
	return rand.IntN(n) //nolint: gosec // it's ok
}

// DefaultRandom - returns the process-wide pseudo random source.
func DefaultRandom() Random {
	return globalRandom{}
}

// Bot chooses moves for one player. It keeps no state between moves except the
// first turn flag and never mutates the grid it is given.
type Bot struct {
	player    entity.Player
	random    Random
	firstTurn bool
}

func New(player entity.Player, random Random) *Bot {
	return Restore(player, random, true)
}

// Restore - recreates a bot from a persisted first turn flag.
func Restore(player entity.Player, random Random, firstTurn bool) *Bot {
	if random == nil {
		random = DefaultRandom()
	}

	return &Bot{
		player:    player,
		random:    random,
		firstTurn: firstTurn,
	}
}

func (that *Bot) Player() entity.Player {
	return that.player
}

func (that *Bot) FirstTurn() bool {
	return that.firstTurn
}

// MakeMove - picks the next cell for the bot, or entity.NoMove when the grid is full.
func (that *Bot) MakeMove(grid entity.Grid, opponent entity.Mark) entity.Position {
	if grid.IsFull() {
		return entity.NoMove
	}

	if that.random.IntN(sabotageRange) <= sabotageThreshold {
		return grid.FirstEmpty()
	}

	if that.firstTurn {
		that.firstTurn = false

		opening := that.openingMove()
		if grid.At(opening) == entity.Empty {
			return opening
		}
	}

	return BestMove(grid, that.player.Mark, opponent)
}

// openingMove - the corner for the first mark, the center for the second.
func (that *Bot) openingMove() entity.Position {
	if that.player.Mark == entity.PlayerX {
		return entity.Position{Row: 0, Col: 0}
	}

	return entity.Position{Row: 1, Col: 1}
}
