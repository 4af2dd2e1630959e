package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout joins the dial and chart panels horizontally,
// with menu bar on top and status bar on bottom.
func ComposeLayout(menuBar, dialPanel, chartPanel, statusBar string) string {
	middle := lipgloss.JoinHorizontal(lipgloss.Top, dialPanel, chartPanel)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar)
}
