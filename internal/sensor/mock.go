package sensor

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/rand"
	"sync"
	"time"

	"angle-gauge.klederson.com/internal/config"
)

// MockPort simulates the sensor board for demo mode. It emits the same
// lines the firmware prints, at the firmware's pace.
type MockPort struct {
	pr       *io.PipeReader
	pw       *io.PipeWriter
	cancel   context.CancelFunc
	interval time.Duration
	once     sync.Once

	// knob motion
	pos   float64 // raw counts, unwrapped
	speed float64 // counts per tick
	phase float64
}

// NewMockPort starts a simulated sensor emitting one reading per interval.
func NewMockPort(interval time.Duration) *MockPort {
	if interval <= 0 {
		interval = config.DemoInterval
	}
	pr, pw := io.Pipe()
	ctx, cancel := context.WithCancel(context.Background())

	m := &MockPort{
		pr:       pr,
		pw:       pw,
		cancel:   cancel,
		interval: interval,
		pos:      rand.Float64() * config.DemoRawSteps,
		speed:    20 + rand.Float64()*40,
		phase:    rand.Float64() * 2 * math.Pi,
	}
	go m.loop(ctx)
	return m
}

func (m *MockPort) loop(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	t := 0.0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t += m.interval.Seconds()
			if _, err := io.WriteString(m.pw, m.nextLine(t)); err != nil {
				return
			}
		}
	}
}

func (m *MockPort) nextLine(t float64) string {
	if rand.Float64() < config.DemoErrorPct {
		return "Error reading sensor\r\n"
	}

	// Hand turning the knob: drifts one way, slows and reverses now and then.
	m.pos += m.speed * math.Sin(t*0.25+m.phase)
	m.pos += (rand.Float64() - 0.5) * 4

	raw := int(math.Mod(m.pos, config.DemoRawSteps))
	if raw < 0 {
		raw += config.DemoRawSteps
	}
	return FormatLine(raw, RawToDegrees(raw, config.DemoRawSteps))
}

// FormatLine renders a reading the way the sensor firmware prints it.
func FormatLine(raw int, deg float64) string {
	return fmt.Sprintf("Raw angle: %d Degrees: %.2f\r\n", raw, deg)
}

// Read implements Port.
func (m *MockPort) Read(p []byte) (int, error) {
	return m.pr.Read(p)
}

// Close stops the simulation. Safe to call more than once.
func (m *MockPort) Close() error {
	m.once.Do(func() {
		m.cancel()
		_ = m.pw.Close()
		_ = m.pr.Close()
	})
	return nil
}
