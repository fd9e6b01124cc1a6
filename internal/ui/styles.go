package ui

import "github.com/charmbracelet/lipgloss"

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("212"))

	Path = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	Location = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	Field = lipgloss.NewStyle().
		Foreground(lipgloss.Color("110"))

	Dim = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240"))
)
