package tui

import "github.com/charmbracelet/lipgloss"

const displayWidth = 30

var (
	expressionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555")).
			Width(displayWidth).
			Align(lipgloss.Right)

	displayStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#202020")).
			Background(lipgloss.Color("#ffffff")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Width(displayWidth - 2).
			Padding(0, 1).
			Align(lipgloss.Right)

	errorDisplayStyle = displayStyle.
				Foreground(lipgloss.Color("#c53030"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c53030")).
			Width(displayWidth).
			Align(lipgloss.Right)

	buttonStyle = lipgloss.NewStyle().
			Width(6).
			Align(lipgloss.Center).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	activeButtonStyle = buttonStyle.
				Reverse(true).
				BorderForeground(lipgloss.Color("62"))

	equalsButtonStyle = buttonStyle.
				Width(displayWidth - 2).
				Foreground(lipgloss.Color("62")).
				Bold(true)
)
