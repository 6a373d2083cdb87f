// Package ui provides shared lipgloss styles for confspect's CLI output.
// Styling is automatically disabled when stdout is not a terminal.
package ui
