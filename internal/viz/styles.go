package viz

import "github.com/charmbracelet/lipgloss"

var (
	// Frame around the ripple line
	waveStyle = lipgloss.NewStyle().Padding(1, 2)

	// Status indicators
	statusRunning = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ff88"))

	statusPaused = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffaa00"))

	// Key hint style
	keyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)
)
