package ui

import "github.com/charmbracelet/lipgloss"

// Matrix color palette
var (
	ColorMatrixGreen  = lipgloss.Color("#00FF41")
	ColorGreen        = lipgloss.Color("#00CC33")
	ColorMidGreen     = lipgloss.Color("#008F11")
	ColorDimGreen     = lipgloss.Color("#004A0A")
	ColorNeedle       = lipgloss.Color("#FFCC00")
	ColorBorderBright = lipgloss.Color("#00FF41")
	ColorBorderNorm   = lipgloss.Color("#00AA22")
	ColorError        = lipgloss.Color("#FF3300")
	ColorWarning      = lipgloss.Color("#FFAA00")
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#002200")).
			Foreground(ColorMatrixGreen).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorMatrixGreen).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorGreen)

	StyleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#002200")).
			Foreground(ColorGreen).
			Padding(0, 1)

	StyleStatusLive = lipgloss.NewStyle().
			Foreground(ColorMatrixGreen).
			Bold(true)

	StyleStatusPaused = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)

	StyleStatusLost = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderNorm)

	StylePanelTitle = lipgloss.NewStyle().
			Foreground(ColorMatrixGreen).
			Bold(true).
			Padding(0, 1)

	StyleAngleLabel = lipgloss.NewStyle().
			Foreground(ColorNeedle).
			Bold(true)

	StyleLogLine = lipgloss.NewStyle().
			Foreground(ColorMidGreen)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorDimGreen)
)
