package tui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles used by the chat panel.
type Styles struct {
	Title     lipgloss.Style
	Collapsed lipgloss.Style
	Outgoing  lipgloss.Style
	Incoming  lipgloss.Style
	Error     lipgloss.Style
	Help      lipgloss.Style
}

// DefaultStyles returns the default color scheme.
func DefaultStyles() Styles {
	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Padding(0, 1),
		Collapsed: lipgloss.NewStyle().Faint(true).Padding(0, 1),
		Outgoing:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Incoming:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Help:      lipgloss.NewStyle().Faint(true),
	}
}
