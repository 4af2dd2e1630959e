package sensor

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.bug.st/serial"

	"angle-gauge.klederson.com/internal/config"
)

// Port is the byte stream the reader consumes. Read may return (0, nil)
// when its timeout elapses without data.
type Port interface {
	io.ReadCloser
}

// OpenSerial opens a serial port at the given baud rate (8N1) with the fixed
// read timeout, then waits settle for the board to come out of reset.
func OpenSerial(ctx context.Context, name string, baud int, settle time.Duration) (Port, error) {
	mode := &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	p, err := serial.Open(name, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", name, err)
	}

	if err := p.SetReadTimeout(config.ReadTimeout); err != nil {
		_ = p.Close()
		return nil, fmt.Errorf("failed to set read timeout on %s: %w", name, err)
	}

	if settle > 0 {
		select {
		case <-ctx.Done():
			_ = p.Close()
			return nil, ctx.Err()
		case <-time.After(settle):
		}
	}

	// Drop whatever the bootloader printed while the board was resetting.
	_ = p.ResetInputBuffer()

	return p, nil
}
