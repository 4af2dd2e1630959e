package sensor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"angle-gauge.klederson.com/internal/config"
)

// ErrMalformedLine is returned when a line carries the marker but no usable value.
var ErrMalformedLine = errors.New("malformed angle line")

// ParseLine extracts the angle from a line of sensor output.
// Format: "... Degrees: <float> ..."; the value runs up to the next
// whitespace or the end of the line.
// ok is false when the line has no marker at all.
func ParseLine(line string) (deg float64, ok bool, err error) {
	idx := strings.Index(line, config.Marker)
	if idx < 0 {
		return 0, false, nil
	}

	fields := strings.Fields(line[idx+len(config.Marker):])
	if len(fields) == 0 {
		return 0, true, fmt.Errorf("%w: no value after %q", ErrMalformedLine, config.Marker)
	}

	v, perr := strconv.ParseFloat(fields[0], 64)
	if perr != nil {
		return 0, true, fmt.Errorf("%w: %v", ErrMalformedLine, perr)
	}
	return v, true, nil
}
