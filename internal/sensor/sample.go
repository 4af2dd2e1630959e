package sensor

import (
	"math"
	"time"
)

// Sample is a single angle reading as reported by the sensor.
type Sample struct {
	Degrees float64 // Not validated; values outside [0, 360) pass through
	At      time.Time
}

// Radians returns the sample angle in radians.
func (s Sample) Radians() float64 {
	return DegreesToRadians(s.Degrees)
}

// DegreesToRadians converts an angle in degrees to radians.
func DegreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// RawToDegrees converts a 12-bit raw encoder count to degrees.
// Formula: deg = raw * 360 / steps
func RawToDegrees(raw, steps int) float64 {
	if steps <= 0 {
		return 0
	}
	return float64(raw) * 360.0 / float64(steps)
}
