package tui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("99")
	mutedColor   = lipgloss.Color("245")
	errorColor   = lipgloss.Color("196")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor).PaddingLeft(1).PaddingRight(1)
	badgeStyle = lipgloss.NewStyle().Foreground(mutedColor).PaddingLeft(1)
	errorStyle = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
	bodyStyle  = lipgloss.NewStyle().MarginTop(1).MarginBottom(1)
)
