package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "235", Dark: "252"})

	tabMarkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "33", Dark: "75"}).
			Bold(true)

	cursorStyle = lipgloss.NewStyle().Reverse(true)

	previewStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "245", Dark: "240"}).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().Faint(true)

	helpStyle = lipgloss.NewStyle().Faint(true)
)
