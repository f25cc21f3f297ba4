package bot

import (
	"math/rand"
	"time"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
)

// Engine picks the column the computer plays next. It returns -1 when
// the board has no legal column left.
type Engine interface {
	ChooseColumn(board *domain.Board) int
}

// NewEngine returns the computer player for a game. A zero seed draws
// one from the clock.
func NewEngine(seed int64) Engine {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewRandomBot(rand.NewSource(seed))
}
