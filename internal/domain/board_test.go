package domain

import (
	"errors"
	"testing"
)

func TestPlaceMarkerFillsLowestEmptyCell(t *testing.T) {
	board := NewBoard()

	for want := 0; want < Rows; want++ {
		marker := Human
		if want%2 == 1 {
			marker = Computer
		}
		row, err := board.PlaceMarker(3, marker)
		if err != nil {
			t.Fatalf("PlaceMarker #%d: unexpected error: %v", want, err)
		}
		if row != want {
			t.Errorf("PlaceMarker #%d landed on row %d, want %d", want, row, want)
		}
		if got := board.Cell(3, row); got != marker {
			t.Errorf("Cell(3, %d) = %v, want %v", row, got, marker)
		}
		if got := board.Height(3); got != want+1 {
			t.Errorf("Height(3) = %d, want %d", got, want+1)
		}
	}

	for col := 0; col < Columns; col++ {
		if col == 3 {
			continue
		}
		if h := board.Height(col); h != 0 {
			t.Errorf("column %d has height %d, want 0", col, h)
		}
	}
}

func TestPlaceMarkerFullColumn(t *testing.T) {
	board := NewBoard()
	for i := 0; i < Rows; i++ {
		if _, err := board.PlaceMarker(0, Human); err != nil {
			t.Fatalf("filling column: %v", err)
		}
	}
	before := *board

	row, err := board.PlaceMarker(0, Computer)
	if !errors.Is(err, ErrColumnFull) {
		t.Fatalf("expected ErrColumnFull, got %v", err)
	}
	if row != -1 {
		t.Errorf("row = %d, want -1", row)
	}
	if *board != before {
		t.Errorf("board mutated by rejected move:\n%s", board)
	}
}

func TestPlaceMarkerOutOfRange(t *testing.T) {
	board := NewBoard()
	for _, col := range []int{-1, Columns, 100} {
		if _, err := board.PlaceMarker(col, Human); !errors.Is(err, ErrColumnOutOfRange) {
			t.Errorf("PlaceMarker(%d): expected ErrColumnOutOfRange, got %v", col, err)
		}
	}
	if got := len(board.LegalColumns()); got != Columns {
		t.Errorf("LegalColumns() has %d entries, want %d", got, Columns)
	}
}

func TestLegalColumnsAndIsFull(t *testing.T) {
	board := NewBoard()
	if board.IsFull() {
		t.Fatal("empty board reported full")
	}

	for i := 0; i < Rows; i++ {
		board.PlaceMarker(2, Human)
		board.PlaceMarker(5, Computer)
	}
	want := []int{0, 1, 3, 4, 6}
	got := board.LegalColumns()
	if len(got) != len(want) {
		t.Fatalf("LegalColumns() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("LegalColumns() = %v, want %v", got, want)
		}
	}

	for col := 0; col < Columns; col++ {
		for board.Height(col) < Rows {
			board.PlaceMarker(col, Human)
		}
	}
	if !board.IsFull() {
		t.Error("filled board not reported full")
	}
	if got := board.LegalColumns(); len(got) != 0 {
		t.Errorf("LegalColumns() on full board = %v, want empty", got)
	}
}

func TestIsColumnFull(t *testing.T) {
	board := NewBoard()
	for _, col := range []int{-1, Columns, Columns + 5} {
		if !board.IsColumnFull(col) {
			t.Errorf("IsColumnFull(%d) = false for a column off the board", col)
		}
	}

	for i := 0; i < Rows; i++ {
		if board.IsColumnFull(6) {
			t.Fatalf("column 6 full after %d markers", i)
		}
		board.PlaceMarker(6, Computer)
	}
	if !board.IsColumnFull(6) {
		t.Error("column 6 not full after six markers")
	}
}

func TestBoardString(t *testing.T) {
	board := NewBoard()
	board.PlaceMarker(0, Human)
	board.PlaceMarker(6, Computer)
	board.PlaceMarker(6, Human)

	want := ".......\n" +
		".......\n" +
		".......\n" +
		".......\n" +
		"......H\n" +
		"H.....C\n"
	if got := board.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}
