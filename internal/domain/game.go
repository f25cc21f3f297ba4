package domain

type Game struct {
	Board         *Board
	CurrentPlayer PlayerID
	Status        GameStatus
	Winner        PlayerID
	// Turn starts at 1 and advances once per accepted move.
	Turn     int
	LastMove Position
}

func NewGame() *Game {
	return &Game{
		Board:         NewBoard(),
		CurrentPlayer: Human,
		Status:        StatusActive,
		Winner:        Empty,
		Turn:          1,
		LastMove:      Position{Column: -1, Row: -1},
	}
}

// MakeMove places the current player's marker in column and settles the game state.
// A rejected move leaves the game untouched.
func (g *Game) MakeMove(column int) (int, error) {
	if g.IsFinished() {
		return -1, ErrGameOver
	}

	mover := g.CurrentPlayer
	row, err := g.Board.PlaceMarker(column, mover)
	if err != nil {
		return -1, err
	}

	g.Turn++
	g.LastMove = Position{Column: column, Row: row}

	if CheckWin(g.Board, mover) {
		g.Status = StatusWon
		g.Winner = mover
		return row, nil
	}

	if g.Turn > Cells {
		g.Status = StatusDraw
		return row, nil
	}

	g.CurrentPlayer = mover.Opponent()

	return row, nil
}

func (g *Game) IsFinished() bool {
	return g.Status == StatusWon || g.Status == StatusDraw
}
