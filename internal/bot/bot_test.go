package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	X = entity.PlayerX
	O = entity.PlayerO
	E = entity.Empty
)

// fixedRandom always rolls the same value.
type fixedRandom int

func (that fixedRandom) IntN(n int) int {
	return int(that) % n
}

const (
	alwaysSabotage = fixedRandom(0)
	neverSabotage  = fixedRandom(sabotageRange - 1)
)

var (
	botX = entity.Player{Name: "Bot", Mark: X}
	botO = entity.Player{Name: "Bot", Mark: O}
)

func TestBot_Sabotage(t *testing.T) {
	t.Run("Takes the first empty cell when the roll hits", func(t *testing.T) {
		// Given: a bot that always sabotages and a position with a winning move
		bot := Restore(botX, alwaysSabotage, false)
		grid := entity.Grid{
			{O, X, O},
			{E, X, E},
			{E, E, E},
		}

		// When: the bot moves
		move := bot.MakeMove(grid, O)

		// Then: it ignores the win at (2,1) and plays the first empty cell
		assert.Equal(t, entity.Position{Row: 1, Col: 0}, move)
	})

	t.Run("Threshold covers rolls 0 through 10 only", func(t *testing.T) {
		grid := entity.Grid{
			{E, E, E},
			{E, O, E},
			{E, E, E},
		}

		for roll := range sabotageRange {
			// Given: a bot on its first turn with a fixed roll
			bot := New(botX, fixedRandom(roll))

			// When: the bot moves
			move := bot.MakeMove(grid, O)

			// Then: sabotage plays (0,0) too, but leaves the first turn flag untouched
			assert.Equal(t, entity.Position{Row: 0, Col: 0}, move)
			assert.Equal(t, roll <= sabotageThreshold, bot.FirstTurn(), "roll %d", roll)
		}
	})
}

func TestBot_Opening(t *testing.T) {
	t.Run("First mark opens in the corner", func(t *testing.T) {
		// Given: a fresh bot holding X and an empty grid
		bot := New(botX, neverSabotage)

		// When: the bot moves
		move := bot.MakeMove(entity.Grid{}, O)

		// Then: it opens at (0,0) and clears the first turn flag
		assert.Equal(t, entity.Position{Row: 0, Col: 0}, move)
		assert.False(t, bot.FirstTurn())
	})

	t.Run("Second mark opens in the center", func(t *testing.T) {
		bot := New(botO, neverSabotage)
		grid := entity.Grid{
			{E, E, E},
			{E, E, E},
			{E, E, X},
		}

		move := bot.MakeMove(grid, X)

		assert.Equal(t, entity.Position{Row: 1, Col: 1}, move)
		assert.False(t, bot.FirstTurn())
	})

	t.Run("Occupied opening cell falls back to search", func(t *testing.T) {
		// Given: the opponent already took the center
		bot := New(botO, neverSabotage)
		grid := entity.Grid{
			{E, E, E},
			{E, X, E},
			{E, E, E},
		}

		// When: the bot moves
		move := bot.MakeMove(grid, X)

		// Then: it answers with a corner, the only non-losing reply
		assert.Contains(t, []entity.Position{{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 2, Col: 0}, {Row: 2, Col: 2}}, move)
		assert.False(t, bot.FirstTurn())
	})

	t.Run("Opening is the same on every fresh bot", func(t *testing.T) {
		for range 5 {
			assert.Equal(t, entity.Position{Row: 0, Col: 0}, New(botX, neverSabotage).MakeMove(entity.Grid{}, O))
		}
	})
}

func TestBot_NoMove(t *testing.T) {
	// Given: a full grid
	grid := entity.Grid{
		{X, O, X},
		{X, O, O},
		{O, X, X},
	}

	for _, random := range []Random{alwaysSabotage, neverSabotage} {
		// When: the bot is asked to move
		move := Restore(botX, random, false).MakeMove(grid, O)

		// Then: the no move sentinel is returned
		assert.True(t, move.IsNoMove())
		assert.Equal(t, -1, move.Row)
	}
}

func TestBestMove(t *testing.T) {
	t.Run("Completes its own line", func(t *testing.T) {
		grid := entity.Grid{
			{X, X, E},
			{O, O, E},
			{E, E, E},
		}

		assert.Equal(t, entity.Position{Row: 0, Col: 2}, BestMove(grid, X, O))
	})

	t.Run("Blocks the opponent's two in a row", func(t *testing.T) {
		grid := entity.Grid{
			{X, X, E},
			{E, O, E},
			{E, E, E},
		}

		assert.Equal(t, entity.Position{Row: 0, Col: 2}, BestMove(grid, O, X))
	})

	t.Run("Prefers winning over blocking", func(t *testing.T) {
		// Given: both sides threaten, X to move
		grid := entity.Grid{
			{O, O, E},
			{X, X, E},
			{E, E, E},
		}

		// Then: X wins at (1,2) rather than blocking at (0,2)
		assert.Equal(t, entity.Position{Row: 1, Col: 2}, BestMove(grid, X, O))
	})

	t.Run("Avoids the opposite corners fork", func(t *testing.T) {
		// Given: X holds opposite corners and O the center
		grid := entity.Grid{
			{X, E, E},
			{E, O, E},
			{E, E, X},
		}

		// When: O searches
		move := BestMove(grid, O, X)

		// Then: it plays an edge, since a corner lets X fork
		assert.Contains(t, []entity.Position{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 2}, {Row: 2, Col: 1}}, move)
	})

	t.Run("Leaves the caller's grid untouched", func(t *testing.T) {
		grid := entity.Grid{
			{X, E, E},
			{E, O, E},
			{E, E, E},
		}
		before := grid

		BestMove(grid, X, O)

		assert.Equal(t, before, grid)
	})

	t.Run("Returns NoMove on a full grid", func(t *testing.T) {
		grid := entity.Grid{
			{X, O, X},
			{X, O, O},
			{O, X, X},
		}

		assert.Equal(t, entity.NoMove, BestMove(grid, X, O))
	})
}

// playEveryLine walks every reply the opponent can make and fails if the bot ever loses.
func playEveryLine(t *testing.T, grid entity.Grid, player entity.Player, firstTurn, botToMove bool) {
	t.Helper()

	opponent := player.Mark.Opponent()

	if winner := grid.Winner(); winner != E {
		require.NotEqual(t, opponent, winner, "bot lost on %v", grid)
		return
	}

	if grid.IsFull() {
		return
	}

	if botToMove {
		bot := Restore(player, neverSabotage, firstTurn)
		move := bot.MakeMove(grid, opponent)
		require.False(t, move.IsNoMove())
		require.Equal(t, E, grid.At(move))

		grid.Set(move, player.Mark)
		playEveryLine(t, grid, player, bot.FirstTurn(), false)

		return
	}

	for _, cell := range grid.EmptyCells() {
		next := grid
		next.Set(cell, opponent)
		playEveryLine(t, next, player, firstTurn, true)
	}
}

func TestBot_NeverLoses(t *testing.T) {
	t.Run("Bot moving first with X", func(t *testing.T) {
		playEveryLine(t, entity.Grid{}, botX, true, true)
	})

	t.Run("Bot moving second with O", func(t *testing.T) {
		playEveryLine(t, entity.Grid{}, botO, true, false)
	})
}
