package entity

// Line is an ordered run of cell positions that wins when all hold the same mark.
type Line []Position

// directions scanned from every start cell: row, column, diagonal, anti-diagonal.
var directions = [...]Position{
	{Row: 0, Col: 1},
	{Row: 1, Col: 0},
	{Row: 1, Col: 1},
	{Row: 1, Col: -1},
}

// classic is the detector for the 3x3 grid: 3 rows, 3 columns, 2 diagonals.
var classic = NewDetector(Size, Size)

// Detector finds length-in-a-row on a size x size grid.
type Detector struct {
	lines []Line
}

func NewDetector(size, length int) *Detector {
	return &Detector{lines: Lines(size, length)}
}

// Lines - enumerates every winning line of the given length on a size x size grid.
func Lines(size, length int) []Line {
	if length <= 0 || length > size {
		return nil
	}

	var lines []Line
	for row := range size {
		for col := range size {
			for _, dir := range directions {
				endRow := row + dir.Row*(length-1)
				endCol := col + dir.Col*(length-1)
				if endRow < 0 || endRow >= size || endCol < 0 || endCol >= size {
					continue
				}

				line := make(Line, length)
				for i := range length {
					line[i] = Position{Row: row + dir.Row*i, Col: col + dir.Col*i}
				}
				lines = append(lines, line)
			}
		}
	}

	return lines
}

func (that *Detector) Lines() []Line {
	return that.lines
}

// Winner - scans every line and returns the mark of the first complete one, or Empty.
func (that *Detector) Winner(at func(Position) Mark) Mark {
	for _, line := range that.lines {
		if mark := scanLine(line, at); mark != Empty {
			return mark
		}
	}

	return Empty
}

// scanLine - returns the mark shared by every cell of the line, or Empty.
func scanLine(line Line, at func(Position) Mark) Mark {
	if len(line) == 0 {
		return Empty
	}

	first := at(line[0])
	if first == Empty {
		return Empty
	}

	for _, pos := range line[1:] {
		if at(pos) != first {
			return Empty
		}
	}

	return first
}
