package config

import (
	"runtime"
	"time"
)

const (
	// Serial link
	DefaultBaud  = 115200          // Firmware prints at 115200 8N1
	ReadTimeout  = 1 * time.Second // Upper bound on a single blocking read
	PollDelay    = 10 * time.Millisecond
	SettleDelay  = 2 * time.Second // Boards auto-reset when the port opens
	Marker       = "Degrees:"      // Lines without it carry no angle
	QueueSize    = 4096            // Reader -> presenter handoff buffer
	ReadChunk    = 256             // Bytes per serial read
	MaxLineBytes = 1024            // Longer partial lines are discarded

	// Display
	HistorySize    = 100                   // Samples kept for the time-series chart
	RedrawInterval = 50 * time.Millisecond // Presenter tick
	TargetFPS      = 30
	ChartMinDeg    = -10.0
	ChartMaxDeg    = 370.0
	DialTickDeg    = 30   // Tick marks around the dial
	AspectRatio    = 0.5  // Terminal char aspect correction (chars are ~2:1 tall)
	NeedleFrac     = 0.85 // Needle length relative to dial radius

	// Demo mode
	DemoInterval = 100 * time.Millisecond // Firmware loop delay
	DemoRawSteps = 4096                   // AS5600 is 12-bit
	DemoErrorPct = 0.02                   // Chance of an "Error reading sensor" line

	// App
	AppName    = "ANGLE-GAUGE"
	AppVersion = "1.0"
)

// DefaultPort returns the port used when the user leaves the prompt blank.
func DefaultPort() string {
	if runtime.GOOS == "windows" {
		return "COM4"
	}
	return "/dev/ttyUSB0"
}
