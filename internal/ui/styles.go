// Package ui renders search results for terminal output.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Color palette.
const (
	colorCyan   = "86"  // document refs
	colorGray   = "245" // scores, secondary text
	colorYellow = "220" // matched query highlight
)

// Styles holds the terminal styles for result rendering.
type Styles struct {
	Ref   lipgloss.Style
	Score lipgloss.Style
	Line  lipgloss.Style
	Match lipgloss.Style
}

// DefaultStyles returns the styled palette for TTY output.
func DefaultStyles() Styles {
	return Styles{
		Ref:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorCyan)),
		Score: lipgloss.NewStyle().Foreground(lipgloss.Color(colorGray)),
		Line:  lipgloss.NewStyle(),
		Match: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorYellow)),
	}
}

// PlainStyles returns unstyled output for pipes and CI.
func PlainStyles() Styles {
	return Styles{
		Ref:   lipgloss.NewStyle(),
		Score: lipgloss.NewStyle(),
		Line:  lipgloss.NewStyle(),
		Match: lipgloss.NewStyle(),
	}
}

// AutoStyles picks styled or plain output based on whether stdout is a TTY.
func AutoStyles() Styles {
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return DefaultStyles()
	}
	return PlainStyles()
}
