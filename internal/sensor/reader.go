package sensor

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"angle-gauge.klederson.com/internal/config"
)

// Stats holds reader counters.
type Stats struct {
	Lines       uint64
	Samples     uint64
	ParseErrors uint64
}

// Reader turns the line-oriented sensor output into Samples on a channel.
type Reader struct {
	port Port
	out  chan Sample
	done chan struct{}

	mu  sync.Mutex
	err error

	lines       atomic.Uint64
	samples     atomic.Uint64
	parseErrors atomic.Uint64

	pending    []byte
	discarding bool // skipping the tail of an oversized line
}

// NewReader creates a reader over port whose queue holds up to queueSize samples.
func NewReader(port Port, queueSize int) *Reader {
	if queueSize <= 0 {
		queueSize = config.QueueSize
	}
	return &Reader{
		port: port,
		out:  make(chan Sample, queueSize),
		done: make(chan struct{}),
	}
}

// Queue returns the channel samples are delivered on.
func (r *Reader) Queue() <-chan Sample {
	return r.out
}

// Start runs the read loop in a goroutine until ctx is cancelled or the
// port fails.
func (r *Reader) Start(ctx context.Context) {
	go func() {
		_ = r.Run(ctx)
	}()
}

// Run is the blocking read loop. It returns nil when ctx is cancelled and the
// read error when the connection dies. It must be called at most once.
func (r *Reader) Run(ctx context.Context) error {
	defer close(r.done)

	slog.Info("Serial reader started")
	buf := make([]byte, config.ReadChunk)
	for {
		if ctx.Err() != nil {
			r.logStopped()
			return nil
		}

		n, err := r.port.Read(buf)
		if n > 0 && !r.feed(ctx, buf[:n]) {
			r.logStopped()
			return nil
		}
		if err != nil {
			if ctx.Err() != nil {
				// Port was closed underneath us during shutdown.
				r.logStopped()
				return nil
			}
			slog.Error("Serial read failed, reader stopping", "error", err)
			r.mu.Lock()
			r.err = err
			r.mu.Unlock()
			return err
		}

		select {
		case <-ctx.Done():
		case <-time.After(config.PollDelay):
		}
	}
}

// Done is closed once the read loop has exited.
func (r *Reader) Done() <-chan struct{} {
	return r.done
}

// Err returns the I/O error that ended the loop, if any.
func (r *Reader) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// Stats returns a snapshot of the reader counters. Safe from any goroutine.
func (r *Reader) Stats() Stats {
	return Stats{
		Lines:       r.lines.Load(),
		Samples:     r.samples.Load(),
		ParseErrors: r.parseErrors.Load(),
	}
}

// feed appends raw bytes and handles every complete line. It returns false
// if ctx was cancelled while waiting on a full queue.
func (r *Reader) feed(ctx context.Context, data []byte) bool {
	r.pending = append(r.pending, data...)
	for {
		i := bytes.IndexByte(r.pending, '\n')
		if i < 0 {
			break
		}
		raw := r.pending[:i]
		r.pending = r.pending[i+1:]
		if r.discarding {
			r.discarding = false
			continue
		}
		if len(raw) > config.MaxLineBytes {
			slog.Warn("Discarding oversized line", "bytes", len(raw))
			continue
		}
		line := string(bytes.TrimRight(raw, "\r"))
		if !r.handleLine(ctx, line) {
			return false
		}
	}

	if len(r.pending) > config.MaxLineBytes {
		slog.Warn("Discarding oversized partial line", "bytes", len(r.pending))
		r.pending = r.pending[:0]
		r.discarding = true
	}
	// Compact so the backing array does not grow without bound.
	r.pending = append([]byte(nil), r.pending...)
	return true
}

func (r *Reader) handleLine(ctx context.Context, line string) bool {
	r.lines.Add(1)

	deg, ok, err := ParseLine(line)
	if !ok {
		slog.Debug("Ignoring line without marker", "line", line)
		return true
	}
	if err != nil {
		r.parseErrors.Add(1)
		slog.Warn("Skipping malformed line", "line", line, "error", err)
		return true
	}

	select {
	case r.out <- Sample{Degrees: deg, At: time.Now()}:
		r.samples.Add(1)
		return true
	case <-ctx.Done():
		return false
	}
}

func (r *Reader) logStopped() {
	st := r.Stats()
	slog.Info("Serial reader stopped",
		"lines", st.Lines, "samples", st.Samples, "parse_errors", st.ParseErrors)
}
