package domain

import "strings"

// Board stores each column bottom to top: cells[col][0] is the bottom cell.
// Filled cells of a column are always contiguous from row 0.
type Board struct {
	cells [Columns][Rows]PlayerID
}

func NewBoard() *Board {
	return &Board{}
}

func IsValidColumn(column int) bool {
	return column >= 0 && column < Columns
}

// Cell returns the occupant of (column, row), row 0 being the bottom.
// Out of range coordinates read as Empty.
func (b *Board) Cell(column, row int) PlayerID {
	if !IsValidColumn(column) || row < 0 || row >= Rows {
		return Empty
	}
	return b.cells[column][row]
}

// Height returns how many markers are stacked in column.
func (b *Board) Height(column int) int {
	if !IsValidColumn(column) {
		return 0
	}
	for row := 0; row < Rows; row++ {
		if b.cells[column][row] == Empty {
			return row
		}
	}
	return Rows
}

// IsColumnFull reports whether column can take no more markers.
// A column off the board is never playable and reads as full.
func (b *Board) IsColumnFull(column int) bool {
	if !IsValidColumn(column) {
		return true
	}
	return b.cells[column][Rows-1] != Empty
}

// LegalColumns lists the columns that can still take a marker, ascending.
func (b *Board) LegalColumns() []int {
	legal := make([]int, 0, Columns)
	for col := 0; col < Columns; col++ {
		if !b.IsColumnFull(col) {
			legal = append(legal, col)
		}
	}
	return legal
}

// PlaceMarker drops marker into column and returns the row it landed on.
func (b *Board) PlaceMarker(column int, marker PlayerID) (int, error) {
	if !IsValidColumn(column) {
		return -1, ErrColumnOutOfRange
	}

	// scanning bottom-up for the first free cell
	for row := 0; row < Rows; row++ {
		if b.cells[column][row] == Empty {
			b.cells[column][row] = marker
			return row, nil
		}
	}

	return -1, ErrColumnFull
}

func (b *Board) IsFull() bool {
	return len(b.LegalColumns()) == 0
}

// String draws the board top row first, using '.' for empty cells,
// 'H' for the human and 'C' for the computer. Meant for logs and tests.
func (b *Board) String() string {
	var sb strings.Builder
	for row := Rows - 1; row >= 0; row-- {
		for col := 0; col < Columns; col++ {
			switch b.cells[col][row] {
			case Human:
				sb.WriteByte('H')
			case Computer:
				sb.WriteByte('C')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
