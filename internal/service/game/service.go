package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
	"github.com/iamasit07/4-in-a-row/console/internal/service/bot"
)

// MoveReader supplies the human's moves. Columns are 1-based.
type MoveReader interface {
	ReadMove(ctx context.Context) (int, error)
}

// Renderer shows the game to the human.
type Renderer interface {
	RenderBoard(board *domain.Board, highlight []domain.Position)
	ReportError(err error)
	AnnounceResult(outcome Outcome)
}

type Phase int

const (
	AwaitingMove Phase = iota
	GameOver
)

// Outcome is the result of a finished game. Winner is Empty on a draw.
type Outcome struct {
	Status domain.GameStatus
	Winner domain.PlayerID
	Turns  int
}

// State is AwaitingMove(Player) while the game runs and GameOver(Outcome) after.
type State struct {
	Phase   Phase
	Player  domain.PlayerID
	Outcome Outcome
}

type GameSession struct {
	GameID string
	Game   *domain.Game
	input  MoveReader
	engine bot.Engine
	view   Renderer
	log    *slog.Logger
}

func NewGameSession(gameID string, input MoveReader, engine bot.Engine, view Renderer) *GameSession {
	return &GameSession{
		GameID: gameID,
		Game:   domain.NewGame(),
		input:  input,
		engine: engine,
		view:   view,
		log:    slog.With(slog.String("component", "game"), slog.String("game_id", gameID)),
	}
}

func (gs *GameSession) State() State {
	if gs.Game.IsFinished() {
		return State{Phase: GameOver, Outcome: gs.Outcome()}
	}
	return State{Phase: AwaitingMove, Player: gs.Game.CurrentPlayer}
}

func (gs *GameSession) Outcome() Outcome {
	return Outcome{
		Status: gs.Game.Status,
		Winner: gs.Game.Winner,
		Turns:  gs.Game.Turn - 1,
	}
}

// IsRecoverable reports whether err is a bad move the human can retry.
func IsRecoverable(err error) bool {
	return errors.Is(err, domain.ErrInvalidInput) ||
		errors.Is(err, domain.ErrColumnOutOfRange) ||
		errors.Is(err, domain.ErrColumnFull)
}

// HandleMove plays the human's 1-based column. A rejected move leaves the
// board and the turn number as they were.
func (gs *GameSession) HandleMove(column int) error {
	if gs.Game.IsFinished() {
		return domain.ErrGameOver
	}
	if gs.Game.CurrentPlayer != domain.Human {
		return domain.ErrNotYourTurn
	}
	if column < 1 || column > domain.Columns {
		return domain.ErrColumnOutOfRange
	}

	return gs.play(column - 1)
}

// HandleBotMove lets the computer drop a marker in a random legal column.
func (gs *GameSession) HandleBotMove() (int, error) {
	if gs.Game.IsFinished() {
		return -1, domain.ErrGameOver
	}
	if gs.Game.CurrentPlayer != domain.Computer {
		return -1, domain.ErrNotYourTurn
	}

	col := gs.engine.ChooseColumn(gs.Game.Board)
	if col < 0 {
		return -1, fmt.Errorf("bot found no legal column on turn %d", gs.Game.Turn)
	}
	if err := gs.play(col); err != nil {
		return -1, fmt.Errorf("bot move in column %d: %w", col+1, err)
	}
	return col, nil
}

func (gs *GameSession) play(col int) error {
	mover := gs.Game.CurrentPlayer
	turn := gs.Game.Turn

	row, err := gs.Game.MakeMove(col)
	if err != nil {
		return err
	}

	gs.log.Debug("move played",
		slog.Int("turn", turn),
		slog.String("player", mover.String()),
		slog.Int("column", col+1),
		slog.Int("row", row))

	switch gs.Game.Status {
	case domain.StatusWon:
		gs.log.Info(fmt.Sprintf("%s won on turn %d", mover, turn))
	case domain.StatusDraw:
		gs.log.Info(fmt.Sprintf("draw after %d moves", turn))
	}
	return nil
}

// Step performs one transition out of AwaitingMove. For the human it keeps
// reading until a move is accepted, reporting every rejected input.
func (gs *GameSession) Step(ctx context.Context) error {
	switch gs.Game.CurrentPlayer {
	case domain.Human:
		for {
			if err := ctx.Err(); err != nil {
				return err
			}

			column, err := gs.input.ReadMove(ctx)
			if err == nil {
				err = gs.HandleMove(column)
			}
			if err == nil {
				return nil
			}
			if !IsRecoverable(err) {
				return fmt.Errorf("read move: %w", err)
			}

			gs.log.Debug("move rejected", slog.String("reason", err.Error()))
			gs.view.ReportError(err)
		}
	case domain.Computer:
		_, err := gs.HandleBotMove()
		return err
	default:
		return fmt.Errorf("no player to move")
	}
}

// Run plays the game to the end, drawing the board before every turn.
func (gs *GameSession) Run(ctx context.Context) (Outcome, error) {
	gs.log.Info("game started")

	for !gs.Game.IsFinished() {
		if err := ctx.Err(); err != nil {
			return gs.Outcome(), err
		}

		gs.view.RenderBoard(gs.Game.Board, nil)
		if err := gs.Step(ctx); err != nil {
			return gs.Outcome(), err
		}
	}

	outcome := gs.Outcome()
	gs.view.RenderBoard(gs.Game.Board, domain.WinningLine(gs.Game.Board, outcome.Winner))
	gs.view.AnnounceResult(outcome)

	return outcome, nil
}
