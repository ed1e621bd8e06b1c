package ui

import "github.com/charmbracelet/lipgloss"

// Shared lipgloss styles for CLI and TUI output.
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(true).
			Padding(0, 2).
			MarginBottom(1)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("75"))

	// DryRunStyle marks simulated actions so they cannot be mistaken
	// for real moves.
	DryRunStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true).
			Italic(true)

	// CategoryStyle renders destination folder names.
	CategoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("213")).
			Bold(true)
)
