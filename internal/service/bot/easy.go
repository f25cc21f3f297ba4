package bot

import (
	"log/slog"
	"math/rand"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
)

// RandomBot plays a uniformly random legal column.
type RandomBot struct {
	rng *rand.Rand
}

func NewRandomBot(src rand.Source) *RandomBot {
	return &RandomBot{rng: rand.New(src)}
}

func (b *RandomBot) ChooseColumn(board *domain.Board) int {
	validColumns := board.LegalColumns()
	if len(validColumns) == 0 {
		return -1
	}

	col := validColumns[b.rng.Intn(len(validColumns))]
	slog.Debug("picked column", slog.String("component", "bot"), slog.Int("column", col+1), slog.Int("choices", len(validColumns)))
	return col
}
