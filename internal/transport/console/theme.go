package console

import "github.com/fatih/color"

// Theme holds the glyphs and colors used on the terminal.
type Theme struct {
	HumanMarker    string
	ComputerMarker string

	humanColor    *color.Color
	computerColor *color.Color
	fillerColor   *color.Color
	headerColor   *color.Color
	highlight     *color.Color
	promptColor   *color.Color
	errorColor    *color.Color
	winColor      *color.Color
	loseColor     *color.Color
	tieColor      *color.Color
}

// NewTheme builds a theme. With colored unset every color is disabled,
// otherwise color output follows the terminal detection of fatih/color.
func NewTheme(humanMarker, computerMarker string, colored bool) *Theme {
	t := &Theme{
		HumanMarker:    humanMarker,
		ComputerMarker: computerMarker,
		humanColor:     color.New(color.FgHiRed, color.Bold),
		computerColor:  color.New(color.FgHiYellow, color.Bold),
		fillerColor:    color.New(color.FgHiBlack),
		headerColor:    color.New(color.FgHiCyan),
		highlight:      color.New(color.FgHiGreen, color.Bold, color.Underline),
		promptColor:    color.New(color.FgHiWhite),
		errorColor:     color.New(color.FgHiRed),
		winColor:       color.New(color.FgHiGreen, color.Bold),
		loseColor:      color.New(color.FgHiRed, color.Bold),
		tieColor:       color.New(color.FgHiYellow, color.Bold),
	}

	if !colored {
		for _, c := range t.colors() {
			c.DisableColor()
		}
	}
	return t
}

func (t *Theme) colors() []*color.Color {
	return []*color.Color{
		t.humanColor, t.computerColor, t.fillerColor, t.headerColor, t.highlight,
		t.promptColor, t.errorColor, t.winColor, t.loseColor, t.tieColor,
	}
}
