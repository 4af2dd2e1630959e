package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderPanel wraps content with a titled border of exactly width x height
// cells. The actual plot rendering is done externally to avoid import cycles.
func RenderPanel(width, height int, title, content, footer string) string {
	innerW := width - 2
	innerH := height - 2
	if innerW < 1 {
		innerW = 1
	}
	if innerH < 1 {
		innerH = 1
	}

	lines := []string{StylePanelTitle.Render(title)}
	if content != "" {
		lines = append(lines, strings.Split(content, "\n")...)
	}
	if footer != "" {
		lines = append(lines, footer)
	}

	// lipgloss Height() only sets a minimum; clamp overflow ourselves.
	if len(lines) > innerH {
		lines = lines[:innerH]
	}

	return StylePanelBorder.
		Width(innerW).
		Height(innerH).
		MaxWidth(width).
		Render(strings.Join(lines, "\n"))
}

// CenterLine pads s so it sits in the middle of width cells.
func CenterLine(s string, width int) string {
	pad := (width - lipgloss.Width(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + s
}
