package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
)

// Reader prompts for a column and reads one line per move.
type Reader struct {
	in    *bufio.Reader
	out   io.Writer
	theme *Theme
}

func NewReader(in io.Reader, out io.Writer, theme *Theme) *Reader {
	return &Reader{
		in:    bufio.NewReader(in),
		out:   out,
		theme: theme,
	}
}

// ReadMove returns the 1-based column typed by the player. Range checks are
// left to the game; a line that is not an integer, however long, yields
// domain.ErrInvalidInput.
// The read itself blocks and is not interrupted by ctx.
func (r *Reader) ReadMove(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.theme.promptColor.Fprint(r.out, prompt(domain.Columns))

	line, err := r.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("read stdin: %w", err)
		}
		// a last line without a newline still counts
		if line == "" {
			return 0, io.EOF
		}
	}

	text := strings.TrimSpace(line)
	column, err := strconv.Atoi(text)
	if err != nil {
		if len(text) > 16 {
			text = text[:16] + "..."
		}
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidInput, text)
	}
	return column, nil
}
