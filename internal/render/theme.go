package render

import "github.com/charmbracelet/lipgloss"

// Style aliases lipgloss.Style so callers outside the package can hold
// themes without importing lipgloss themselves.
type Style = lipgloss.Style

// Theme is the style set for rendered streams.
type Theme struct {
	Insert Style
	Delete Style
	Ours   Style
	Theirs Style
	Marker Style
}

// DefaultTheme styles insertions green, deletions red struck through, and
// conflict sides in the same pair of hues.
func DefaultTheme() Theme {
	return Theme{
		Insert: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Delete: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Strikethrough(true),
		Ours:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Theirs: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Marker: lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
	}
}

// PlainTheme renders everything unstyled.
func PlainTheme() Theme {
	return Theme{
		Insert: lipgloss.NewStyle(),
		Delete: lipgloss.NewStyle(),
		Ours:   lipgloss.NewStyle(),
		Theirs: lipgloss.NewStyle(),
		Marker: lipgloss.NewStyle(),
	}
}
