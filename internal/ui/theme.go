package ui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Border  lipgloss.Style
	Hint    lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Accent  lipgloss.Style
}

var DarkTheme = Theme{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
	Label:   lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#89B4FA")),
	Value:   lipgloss.NewStyle().Foreground(lipgloss.Color("#F2CDCD")),
	Border:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1),
	Hint:    lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#CBA6F7")),
	Error:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F38BA8")),
	Success: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
	Accent:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F9E2AF")),
}

var LightTheme = Theme{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#40A02B")),
	Label:   lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#1E66F5")),
	Value:   lipgloss.NewStyle().Foreground(lipgloss.Color("#8839EF")),
	Border:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1),
	Hint:    lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#7287FD")),
	Error:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#D20F39")),
	Success: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#40A02B")),
	Accent:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#DF8E1D")),
}

// ThemeFor picks the style set matching the persisted theme field.
func ThemeFor(name string) Theme {
	if name == "light" {
		return LightTheme
	}
	return DarkTheme
}
