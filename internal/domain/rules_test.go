package domain

import "testing"

func boardWith(marker PlayerID, cells ...Position) *Board {
	board := NewBoard()
	for _, p := range cells {
		board.cells[p.Column][p.Row] = marker
	}
	return board
}

func line(col, row, dCol, dRow int) []Position {
	cells := make([]Position, ToWin)
	for i := range cells {
		cells[i] = Position{Column: col + i*dCol, Row: row + i*dRow}
	}
	return cells
}

func TestCheckWinVerticalScenario(t *testing.T) {
	board := NewBoard()
	for i := 0; i < 4; i++ {
		if CheckWin(board, Human) {
			t.Fatalf("win reported after only %d markers", i)
		}
		board.PlaceMarker(3, Human)
	}
	if !CheckWin(board, Human) {
		t.Error("vertical four in column 3 not detected")
	}
	if CheckWin(board, Computer) {
		t.Error("human line reported as a computer win")
	}
}

func TestCheckWinHorizontalScenario(t *testing.T) {
	board := NewBoard()
	for col := 0; col < 4; col++ {
		board.PlaceMarker(col, Human)
	}
	if !CheckWin(board, Human) {
		t.Error("horizontal four on row 0 not detected")
	}
}

func TestCheckWinDiagonalScenarios(t *testing.T) {
	tests := []struct {
		name  string
		cells []Position
	}{
		{"rising", []Position{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"falling", []Position{{0, 3}, {1, 2}, {2, 1}, {3, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := boardWith(Human, tt.cells...)
			if !CheckWin(board, Human) {
				t.Errorf("%s diagonal not detected:\n%s", tt.name, board)
			}
			if CheckWin(board, Computer) {
				t.Errorf("%s diagonal reported for the wrong player", tt.name)
			}
		})
	}
}

func TestCheckWinEveryPlacement(t *testing.T) {
	type dir struct {
		name       string
		dCol, dRow int
	}
	dirs := []dir{
		{"vertical", 0, 1},
		{"horizontal", 1, 0},
		{"rising", 1, 1},
		{"falling", 1, -1},
	}

	for _, d := range dirs {
		for col := 0; col < Columns; col++ {
			for row := 0; row < Rows; row++ {
				endCol := col + (ToWin-1)*d.dCol
				endRow := row + (ToWin-1)*d.dRow
				if endCol < 0 || endCol >= Columns || endRow < 0 || endRow >= Rows {
					continue
				}
				for _, marker := range []PlayerID{Human, Computer} {
					board := boardWith(marker, line(col, row, d.dCol, d.dRow)...)
					if !CheckWin(board, marker) {
						t.Errorf("%s line from (%d,%d) not detected for %v", d.name, col, row, marker)
					}
					if CheckWin(board, marker.Opponent()) {
						t.Errorf("%s line from (%d,%d) of %v reported for %v", d.name, col, row, marker, marker.Opponent())
					}
				}
			}
		}
	}
}

func TestCheckWinHorizontalEdges(t *testing.T) {
	for row := 0; row < Rows; row++ {
		for _, start := range []int{0, Columns - ToWin} {
			board := boardWith(Computer, line(start, row, 1, 0)...)
			if !CheckWin(board, Computer) {
				t.Errorf("row %d columns %d-%d not detected", row, start, start+ToWin-1)
			}
		}
	}
}

func TestCheckWinNoFalsePositives(t *testing.T) {
	tests := []struct {
		name  string
		cells []Position
	}{
		{"empty", nil},
		{"three vertical", []Position{{6, 3}, {6, 4}, {6, 5}}},
		{"three horizontal at right edge", []Position{{4, 5}, {5, 5}, {6, 5}}},
		{"row wrap", []Position{{4, 0}, {5, 0}, {6, 0}, {0, 1}}},
		{"column wrap", []Position{{0, 3}, {0, 4}, {0, 5}, {1, 0}}},
		{"gap in row", []Position{{0, 2}, {1, 2}, {3, 2}, {4, 2}}},
		{"bent diagonal", []Position{{0, 0}, {1, 1}, {2, 2}, {3, 1}}},
		{"three falling at top edge", []Position{{4, 5}, {5, 4}, {6, 3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := boardWith(Human, tt.cells...)
			if CheckWin(board, Human) {
				t.Errorf("false win detected:\n%s", board)
			}
		})
	}
}

func TestCheckWinEmptyNeverWins(t *testing.T) {
	if CheckWin(NewBoard(), Empty) {
		t.Error("Empty reported as winner on an empty board")
	}
}

func TestCheckWinLongerThanFour(t *testing.T) {
	board := boardWith(Human, Position{1, 2}, Position{2, 2}, Position{3, 2}, Position{4, 2}, Position{5, 2})
	if !CheckWin(board, Human) {
		t.Error("five in a row not detected")
	}
}

func TestWinningLine(t *testing.T) {
	want := line(3, 5, 1, -1)
	board := boardWith(Computer, want...)

	got := WinningLine(board, Computer)
	if len(got) != ToWin {
		t.Fatalf("WinningLine returned %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("WinningLine returned %v, want %v", got, want)
		}
	}

	if WinningLine(board, Human) != nil {
		t.Error("WinningLine returned a line for the player without one")
	}
}
