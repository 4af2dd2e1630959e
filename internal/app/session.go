package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"angle-gauge.klederson.com/internal/config"
	"angle-gauge.klederson.com/internal/sensor"
)

// ErrNotConnected is returned when the reader is started before Connect.
var ErrNotConnected = errors.New("serial port not connected")

// Opener acquires the sensor connection.
type Opener func(ctx context.Context) (sensor.Port, error)

// Session owns the resources of one run: the port, the reader goroutine and
// the redraw timer. Every method is safe from any goroutine.
type Session struct {
	open Opener

	mu         sync.Mutex
	port       sensor.Port
	portClosed bool
	reader     *sensor.Reader
	cancel     context.CancelFunc
	timerOn    bool
	shutdown   bool
}

// NewSession creates a session that connects through open.
func NewSession(open Opener) *Session {
	return &Session{open: open}
}

// Connect opens the sensor connection.
func (s *Session) Connect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.shutdown {
		return fmt.Errorf("connect after shutdown: %w", context.Canceled)
	}
	if s.port != nil {
		return nil
	}

	port, err := s.open(ctx)
	if err != nil {
		slog.Error("Connection failed", "error", err)
		return err
	}
	s.port = port
	slog.Info("Connection established")
	return nil
}

// StartReader launches the reader goroutine on the open connection.
func (s *Session) StartReader(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.port == nil || s.shutdown {
		return ErrNotConnected
	}
	if s.reader != nil {
		return nil
	}

	rctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.reader = sensor.NewReader(s.port, config.QueueSize)
	s.reader.Start(rctx)
	return nil
}

// Queue returns the sample queue, or nil before the reader starts.
func (s *Session) Queue() <-chan sensor.Sample {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.reader == nil {
		return nil
	}
	return s.reader.Queue()
}

// Reader returns the running reader, if any.
func (s *Session) Reader() *sensor.Reader {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reader
}

// LinkErr reports the I/O error that stopped the reader, if it has stopped.
func (s *Session) LinkErr() error {
	r := s.Reader()
	if r == nil {
		return nil
	}
	select {
	case <-r.Done():
		return r.Err()
	default:
		return nil
	}
}

// StartTimer marks the redraw timer as running. Returns false after shutdown.
func (s *Session) StartTimer() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.shutdown {
		return false
	}
	s.timerOn = true
	return true
}

// TimerActive reports whether redraw ticks should keep being scheduled.
func (s *Session) TimerActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timerOn
}

// Shutdown stops the reader, closes the port and stops the redraw timer.
// Each resource is released only if it was acquired; calling it again is a
// no-op.
func (s *Session) Shutdown() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.shutdown {
		return nil
	}
	s.shutdown = true

	if s.cancel != nil {
		s.cancel()
	}

	var err error
	if s.port != nil && !s.portClosed {
		s.portClosed = true
		if cerr := s.port.Close(); cerr != nil {
			slog.Warn("Closing serial port failed", "error", cerr)
			err = fmt.Errorf("close port: %w", cerr)
		} else {
			slog.Info("Serial port closed")
		}
	}

	s.timerOn = false
	return err
}

// Closed reports whether Shutdown has run.
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shutdown
}
