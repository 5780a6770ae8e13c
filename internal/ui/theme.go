// Package ui renders the seeding run: a live progress view for
// interactive terminals and plain line output for scripts and CI.
package ui

import (
	"charm.land/lipgloss/v2"
)

// Color palette, muted dashboard tones.
var (
	Primary = lipgloss.Color("#8B5CF6") // Violet
	Success = lipgloss.Color("#22C55E") // Green
	Warning = lipgloss.Color("#F97316") // Orange
	Danger  = lipgloss.Color("#F43F5E") // Rose
	Text    = lipgloss.Color("#F8FAFC") // White
	TextDim = lipgloss.Color("#94A3B8") // Slate
	Border  = lipgloss.Color("#334155") // Slate
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	PhaseStyle = lipgloss.NewStyle().
			Foreground(TextDim)

	DoneStyle = lipgloss.NewStyle().
			Foreground(Success)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)

	CellStyle = lipgloss.NewStyle().
			Foreground(Text).
			Padding(0, 1)

	HeaderCellStyle = lipgloss.NewStyle().
			Foreground(TextDim).
			Bold(true).
			Padding(0, 1)
)
