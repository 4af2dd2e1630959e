package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Status is what the bottom bar reports.
type Status struct {
	LinkLost    bool
	Paused      bool
	Samples     uint64
	ParseErrors uint64
	Buffered    int
	Dropped     uint64 // samples discarded while paused
	LastLog     string
}

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, st Status) string {
	var state string
	switch {
	case st.LinkLost:
		state = StyleStatusLost.Render("[LINK LOST]")
	case st.Paused:
		state = StyleStatusPaused.Render("[PAUSED]")
	default:
		state = StyleStatusLive.Render("[RECEIVING]")
	}

	info := fmt.Sprintf(" Samples: %d  Bad lines: %d  Buffer: %d ",
		st.Samples, st.ParseErrors, st.Buffered)
	if st.Dropped > 0 {
		info += fmt.Sprintf(" Dropped: %d ", st.Dropped)
	}
	content := state + StyleStatusBar.Padding(0).Render(info)

	// Last log line fills whatever is left.
	room := width - lipgloss.Width(content) - 3
	if room > 8 && st.LastLog != "" {
		msg := st.LastLog
		if len(msg) > room {
			msg = msg[:room-1] + "~"
		}
		content += " " + StyleLogLine.Render(msg)
	}

	gap := width - lipgloss.Width(content) - 2
	if gap < 0 {
		gap = 0
	}

	return StyleStatusBar.Width(width).Render(content + strings.Repeat(" ", gap))
}
