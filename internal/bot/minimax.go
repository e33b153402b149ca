package bot

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

const (
	winScore  = 10
	lossScore = -10
	drawScore = 0

	bestInitial = 1000
)

// BestMove - searches the whole game tree and returns the empty cell with the
// strictly greatest value. Ties go to the first cell in row-major order.
func BestMove(grid entity.Grid, mark, opponent entity.Mark) entity.Position {
	search := searcher{mark: mark, opponent: opponent}

	bestVal := -bestInitial
	bestMove := entity.NoMove

	for _, cell := range grid.EmptyCells() {
		grid.Set(cell, mark)
		moveVal := search.minimax(&grid, 0, false)
		grid.Set(cell, entity.Empty)

		if moveVal > bestVal {
			bestMove = cell
			bestVal = moveVal
		}
	}

	return bestMove
}

type searcher struct {
	mark     entity.Mark
	opponent entity.Mark
}

// evaluate - scores a position from the bot's point of view.
func (that searcher) evaluate(grid *entity.Grid) int {
	switch grid.Winner() {
	case that.mark:
		return winScore
	case that.opponent:
		return lossScore
	default:
		return drawScore
	}
}

// minimax works on a private grid: every placed mark is reverted before the
// loop continues, so the caller's grid is unchanged on return.
func (that searcher) minimax(grid *entity.Grid, depth int, isMax bool) int {
	score := that.evaluate(grid)
	if score == winScore || score == lossScore {
		return score
	}

	if grid.IsFull() {
		return drawScore
	}

	if isMax {
		best := -bestInitial
		for _, cell := range grid.EmptyCells() {
			grid.Set(cell, that.mark)
			best = max(best, that.minimax(grid, depth+1, false))
			grid.Set(cell, entity.Empty)
		}

		return best - depth
	}

	best := bestInitial
	for _, cell := range grid.EmptyCells() {
		grid.Set(cell, that.opponent)
		best = min(best, that.minimax(grid, depth+1, true))
		grid.Set(cell, entity.Empty)
	}

	return best + depth
}
