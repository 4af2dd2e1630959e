package ui

import (
	"fmt"
	"strings"

	"angle-gauge.klederson.com/internal/config"
	"github.com/charmbracelet/lipgloss"
)

// RenderMenuBar renders the top menu bar.
func RenderMenuBar(width int, port string, baud int, paused bool) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct{ key, label string }{
		{"P", "ause"},
		{"C", "lear"},
		{"Q", "uit"},
	}

	menu := ""
	for _, k := range keys {
		menu += "  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label)
	}

	status := StyleStatusLive.Render("LIVE")
	if paused {
		status = StyleStatusPaused.Render("PAUSED")
	}

	link := StyleMenuLabel.Render(fmt.Sprintf("Port: %s @ %d", port, baud))

	left := StyleMenuKey.Render(title) + menu
	right := status + "  " + link + " "

	// Two cells go to the bar's horizontal padding.
	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 0 {
		gap = 0
	}

	return StyleMenuBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
