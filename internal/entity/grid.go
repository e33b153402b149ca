package entity

// Size is the side length of the classic grid.
const Size = 3

// Position addresses a grid cell by row and column.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NoMove is returned by the bot when the grid has no empty cell.
var NoMove = Position{Row: -1, Col: -1}

func (that Position) IsNoMove() bool {
	return that.Row < 0 || that.Col < 0
}

// Grid is the 3x3 board, row-major. It is a value type so copying it
// produces an independent snapshot.
type Grid [Size][Size]Mark

func (that Grid) InBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < Size && pos.Col >= 0 && pos.Col < Size
}

func (that Grid) At(pos Position) Mark {
	return that[pos.Row][pos.Col]
}

func (that *Grid) Set(pos Position, mark Mark) {
	that[pos.Row][pos.Col] = mark
}

// EmptyCells - lists the empty cells in row-major order.
func (that Grid) EmptyCells() []Position {
	cells := make([]Position, 0, Size*Size)
	for row := range Size {
		for col := range Size {
			if that[row][col] == Empty {
				cells = append(cells, Position{Row: row, Col: col})
			}
		}
	}

	return cells
}

// FirstEmpty - returns the first empty cell in row-major order or NoMove.
func (that Grid) FirstEmpty() Position {
	for row := range Size {
		for col := range Size {
			if that[row][col] == Empty {
				return Position{Row: row, Col: col}
			}
		}
	}

	return NoMove
}

func (that Grid) IsFull() bool {
	return that.FirstEmpty().IsNoMove()
}

// Count - returns how many cells hold the mark.
func (that Grid) Count(mark Mark) int {
	count := 0
	for row := range Size {
		for col := range Size {
			if that[row][col] == mark {
				count++
			}
		}
	}

	return count
}

// Winner - returns the mark completing a line, or Empty.
func (that Grid) Winner() Mark {
	return classic.Winner(that.At)
}

// HasLine reports whether any row, column or diagonal is complete.
func (that Grid) HasLine() bool {
	return that.Winner() != Empty
}
