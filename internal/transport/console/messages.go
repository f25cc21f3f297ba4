package console

import "fmt"

const (
	Filler = "#"

	MsgPrompt       = "Enter a column number [1-%d]: "
	MsgNotInteger   = "ERROR: INPUT MUST BE AN INTEGER"
	MsgOutOfBounds  = "ERROR: INPUT OUT OF BOUNDS"
	MsgColumnFull   = "ERROR: COLUMN IS FULL"
	MsgHumanWins    = "YOU WIN! CONGRATULATIONS!"
	MsgComputerWins = "AI WINS! BETTER LUCK NEXT TIME!"
	MsgTie          = "IT'S A TIE! NO ONE WINS!"
)

func prompt(columns int) string {
	return fmt.Sprintf(MsgPrompt, columns)
}
