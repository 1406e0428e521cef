package ui

import "github.com/charmbracelet/lipgloss"

// Semantic styles for terminal output. Colors are adaptive so the same
// styling works on light and dark themes.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#3b3b9c", Dark: "#9d9dff"})

	execStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#00695c", Dark: "#4dd0a7"})

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#767676", Dark: "#8a8a8a"})

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#b00020", Dark: "#ff6b6b"})

	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#b2b2b2", Dark: "#585858"})
)
