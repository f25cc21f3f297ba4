package domain

// Position addresses a single cell, row 0 being the bottom.
type Position struct {
	Column int
	Row    int
}

type direction struct {
	dCol, dRow          int
	maxStartCol         int
	minStartRow, maxRow int
}

// start points are bounded so that all ToWin cells stay on the grid
var directions = []direction{
	// vertical |
	{dCol: 0, dRow: 1, maxStartCol: Columns - 1, minStartRow: 0, maxRow: Rows - ToWin},
	// horizontal -
	{dCol: 1, dRow: 0, maxStartCol: Columns - ToWin, minStartRow: 0, maxRow: Rows - 1},
	// rising diagonal /
	{dCol: 1, dRow: 1, maxStartCol: Columns - ToWin, minStartRow: 0, maxRow: Rows - ToWin},
	// falling diagonal \
	{dCol: 1, dRow: -1, maxStartCol: Columns - ToWin, minStartRow: ToWin - 1, maxRow: Rows - 1},
}

// CheckWin reports whether marker has ToWin or more in a row anywhere on the board.
func CheckWin(board *Board, marker PlayerID) bool {
	return WinningLine(board, marker) != nil
}

// WinningLine returns the first ToWin cells of marker found in a line,
// or nil when marker has not won.
func WinningLine(board *Board, marker PlayerID) []Position {
	if marker == Empty {
		return nil
	}

	for _, d := range directions {
		for col := 0; col <= d.maxStartCol; col++ {
			for row := d.minStartRow; row <= d.maxRow; row++ {
				if lineOf(board, marker, col, row, d) {
					line := make([]Position, ToWin)
					for i := range line {
						line[i] = Position{Column: col + i*d.dCol, Row: row + i*d.dRow}
					}
					return line
				}
			}
		}
	}

	return nil
}

func lineOf(board *Board, marker PlayerID, col, row int, d direction) bool {
	for i := 0; i < ToWin; i++ {
		if board.cells[col+i*d.dCol][row+i*d.dRow] != marker {
			return false
		}
	}
	return true
}
