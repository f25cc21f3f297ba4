package console

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
	"github.com/iamasit07/4-in-a-row/console/internal/service/game"
)

type Renderer struct {
	out   io.Writer
	theme *Theme
}

func NewRenderer(out io.Writer, theme *Theme) *Renderer {
	return &Renderer{out: out, theme: theme}
}

// RenderBoard prints the column numbers and then the rows from the top down.
// Cells listed in highlight are drawn in the highlight color.
func (r *Renderer) RenderBoard(board *domain.Board, highlight []domain.Position) {
	marked := make(map[domain.Position]bool, len(highlight))
	for _, p := range highlight {
		marked[p] = true
	}

	var sb strings.Builder
	sb.WriteByte('\n')
	for col := 0; col < domain.Columns; col++ {
		if col > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(r.theme.headerColor.Sprint(strconv.Itoa(col + 1)))
	}
	sb.WriteByte('\n')

	for row := domain.Rows - 1; row >= 0; row-- {
		for col := 0; col < domain.Columns; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(r.cell(board.Cell(col, row), marked[domain.Position{Column: col, Row: row}]))
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')

	fmt.Fprint(r.out, sb.String())
}

func (r *Renderer) cell(p domain.PlayerID, highlighted bool) string {
	switch p {
	case domain.Human:
		if highlighted {
			return r.theme.highlight.Sprint(r.theme.HumanMarker)
		}
		return r.theme.humanColor.Sprint(r.theme.HumanMarker)
	case domain.Computer:
		if highlighted {
			return r.theme.highlight.Sprint(r.theme.ComputerMarker)
		}
		return r.theme.computerColor.Sprint(r.theme.ComputerMarker)
	default:
		return r.theme.fillerColor.Sprint(Filler)
	}
}

func (r *Renderer) ReportError(err error) {
	r.theme.errorColor.Fprintln(r.out, ErrorMessage(err))
}

func (r *Renderer) AnnounceResult(outcome game.Outcome) {
	switch {
	case outcome.Status == domain.StatusWon && outcome.Winner == domain.Human:
		r.theme.winColor.Fprintln(r.out, MsgHumanWins)
	case outcome.Status == domain.StatusWon && outcome.Winner == domain.Computer:
		r.theme.loseColor.Fprintln(r.out, MsgComputerWins)
	default:
		r.theme.tieColor.Fprintln(r.out, MsgTie)
	}
}

// ErrorMessage maps a rejected move to the line shown to the player.
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return MsgNotInteger
	case errors.Is(err, domain.ErrColumnOutOfRange):
		return MsgOutOfBounds
	case errors.Is(err, domain.ErrColumnFull):
		return MsgColumnFull
	default:
		return "ERROR: " + strings.ToUpper(err.Error())
	}
}
