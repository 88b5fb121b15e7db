package tui

import "github.com/charmbracelet/lipgloss"

type theme struct {
	header       lipgloss.Style
	status       lipgloss.Style
	footer       lipgloss.Style
	marker       lipgloss.Style
	activeMarker lipgloss.Style
	ours         lipgloss.Style
	theirs       lipgloss.Style
	applied      lipgloss.Style
}

func defaultTheme() theme {
	return theme{
		header:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4")).Padding(0, 1),
		status:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		footer:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		marker:       lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		activeMarker: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		ours:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		theirs:       lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		applied:      lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	}
}
