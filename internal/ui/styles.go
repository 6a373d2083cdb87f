package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette for CLI output
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - headers, app names
	SuccessColor = lipgloss.Color("#43BF6D") // Green - resolved paths
	ErrorColor   = lipgloss.Color("#FF5555") // Red - errors
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
)

// Shared styles for CLI output
var (
	// HeaderStyle is for section headers (application display names)
	HeaderStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// KeyStyle is for application keys in listings
	KeyStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	// PathStyle is for resolved filesystem paths
	PathStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// MutedStyle is for descriptions, counts and other secondary info
	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// ErrorStyle is for error lines
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)
)

// styled reports whether stdout is a terminal. Piped output stays plain so
// the CLI composes with grep and friends.
var styled = term.IsTerminal(int(os.Stdout.Fd()))

// Render applies a style only when stdout is a terminal.
func Render(style lipgloss.Style, s string) string {
	if !styled {
		return s
	}
	return style.Render(s)
}
