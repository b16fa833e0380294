// Package shared provides shared utilities for all lilhook commands.
package shared

import (
	"github.com/charmbracelet/lipgloss"
)

// Standard color definitions.
var (
	Red    = lipgloss.Color("#f38ba8")
	Green  = lipgloss.Color("#a6e3a1")
	Yellow = lipgloss.Color("#f9e2af")
	Sky    = lipgloss.Color("#89dceb")
	Mauve  = lipgloss.Color("#cba6f7")
	Text   = lipgloss.Color("#cdd6f4")
	Subtle = lipgloss.Color("#6c7086")
)

// Styles for common output.
var (
	ErrorStyle   = lipgloss.NewStyle().Foreground(Red)
	SuccessStyle = lipgloss.NewStyle().Foreground(Green)
	WarningStyle = lipgloss.NewStyle().Foreground(Yellow)
)

// Styles for listings.
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(Mauve)
	ItemStyle   = lipgloss.NewStyle().Foreground(Text)
	BulletStyle = lipgloss.NewStyle().Foreground(Sky)
	SubtleStyle = lipgloss.NewStyle().Foreground(Subtle)
)
