package cli

import (
	"os"

	"golang.org/x/term"

	"github.com/vijay-prabhu/disha/internal/scholarship"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorGray   = "\033[90m"
)

// Terminal provides terminal-aware output utilities
type Terminal struct {
	IsTerminal bool
	UseColor   bool
}

// NewTerminal creates a new Terminal instance
func NewTerminal() *Terminal {
	isTerminal := term.IsTerminal(int(os.Stdout.Fd()))
	_, noColor := os.LookupEnv("NO_COLOR")
	return &Terminal{
		IsTerminal: isTerminal,
		UseColor:   isTerminal && !noColor,
	}
}

// Color wraps text in ANSI color codes (terminal only)
func (t *Terminal) Color(color, text string) string {
	if !t.UseColor {
		return text
	}
	return color + text + ColorReset
}

// Badge colors a scholarship status label by state
func (t *Terminal) Badge(state scholarship.State, label string) string {
	return t.Color(StateColor(state), label)
}

// StateColor returns the color for a deadline state
func StateColor(state scholarship.State) string {
	switch state {
	case scholarship.StateOpen:
		return ColorGreen
	case scholarship.StateClosingSoon:
		return ColorYellow
	case scholarship.StateClosed:
		return ColorRed
	case scholarship.StateOpeningSoon:
		return ColorBlue
	default:
		return ColorGray
	}
}
