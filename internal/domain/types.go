package domain

type PlayerID int

const (
	Empty    PlayerID = 0
	Human    PlayerID = 1
	Computer PlayerID = 2
)

func (p PlayerID) String() string {
	switch p {
	case Human:
		return "human"
	case Computer:
		return "computer"
	default:
		return "empty"
	}
}

// Opponent returns the other player; Empty has no opponent.
func (p PlayerID) Opponent() PlayerID {
	switch p {
	case Human:
		return Computer
	case Computer:
		return Human
	default:
		return Empty
	}
}

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
	Cells   = Rows * Columns
)

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidInput     Error = "input must be an integer"
	ErrColumnOutOfRange Error = "column out of range"
	ErrColumnFull       Error = "column is full"
	ErrGameOver         Error = "game is over"
	ErrNotYourTurn      Error = "not your turn"
)
