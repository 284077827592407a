package tui

import "github.com/charmbracelet/lipgloss"

// Styles contains all lipgloss styles for the watch TUI
type Styles struct {
	Title  lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Fresh  lipgloss.Style
	Stale  lipgloss.Style
	Danger lipgloss.Style
	Footer lipgloss.Style
}

// DefaultStyles returns the default watch TUI styles
func DefaultStyles() Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Label:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Value:  lipgloss.NewStyle().Bold(true),
		Fresh:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Stale:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Danger: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Footer: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).MarginTop(1),
	}
}

// Icons used in the watch TUI
const (
	IconActive   = "●"
	IconComplete = "✓"
	IconStale    = "✗"
)
