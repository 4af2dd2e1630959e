package gauge

import (
	"fmt"
	"math"
)

// Point is one vertex of the time-series: X is the index within the
// window, Y the angle in degrees.
type Point struct {
	X int
	Y float64
}

// AngleLabel is the text shown next to the chart for the latest sample.
func AngleLabel(deg float64) string {
	return fmt.Sprintf("Current angle: %.1f°", deg)
}

// NormalizeAngle wraps an angle to [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// sector returns the 45° sector [0, 8) an angle falls in. 0=north, clockwise.
func sector(a float64) int {
	return int(math.Round(NormalizeAngle(a)/(math.Pi/4))) % 8
}

// ringChar returns the character for the dial outline at the given angle.
func ringChar(a float64) byte {
	switch sector(a) {
	case 0, 4:
		return '-'
	case 1, 5:
		return '\\'
	case 2, 6:
		return '|'
	default:
		return '/'
	}
}

// needleChar returns the line character for a needle pointing along a.
func needleChar(a float64) byte {
	switch sector(a) {
	case 0, 4: // N, S
		return '|'
	case 2, 6: // E, W
		return '-'
	case 1, 5: // NE, SW
		return '/'
	default: // SE, NW
		return '\\'
	}
}

// needleTip returns the arrowhead character for a needle pointing along a.
func needleTip(a float64) byte {
	switch sector(a) {
	case 0:
		return '^'
	case 1:
		return '/'
	case 2:
		return '>'
	case 3:
		return '\\'
	case 4:
		return 'v'
	case 5:
		return '/'
	case 6:
		return '<'
	default:
		return '\\'
	}
}
