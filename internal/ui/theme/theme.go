// Package theme holds the drill color palette. Screens build their own
// lipgloss styles from these colors so the palette stays in one place.
package theme

import (
	"charm.land/lipgloss/v2"
)

var (
	Primary   = lipgloss.Color("#6366F1") // Indigo, headings and selection
	Secondary = lipgloss.Color("#06B6D4") // Cyan, progress and countdowns
	Accent    = lipgloss.Color("#EAB308") // Amber, marked questions and hints
	Success   = lipgloss.Color("#34D399") // Emerald, correct answers
	Error     = lipgloss.Color("#EF4444") // Red, wrong answers and warnings
	Text      = lipgloss.Color("#E2E8F0") // Near-white body text
	TextDim   = lipgloss.Color("#64748B") // Muted labels and key hints
	BgCard    = lipgloss.Color("#1E1B2E") // Card and chrome background
	Border    = lipgloss.Color("#3F3B54") // Card borders
)

// Button styles are shared so every screen's confirm/cancel row looks
// the same.
var (
	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
