package app

import (
	"time"

	"angle-gauge.klederson.com/internal/gauge"
	"angle-gauge.klederson.com/internal/sensor"
)

const noAngleLabel = "Current angle: --"

// Presenter owns the display state derived from the sample queue. It is
// only touched from the UI event loop.
type Presenter struct {
	window *gauge.Window

	angle    float64 // latest sample, degrees
	needle   float64 // latest sample, radians
	series   []gauge.Point
	label    string
	hasValue bool
	lastAt   time.Time

	paused  bool
	dropped uint64
}

// NewPresenter creates a presenter keeping a window of capacity samples.
func NewPresenter(capacity int) *Presenter {
	return &Presenter{
		window: gauge.NewWindow(capacity),
		label:  noAngleLabel,
	}
}

// Drain consumes every sample currently queued without waiting for more
// and returns how many it took. An empty or nil queue is a no-op.
func (p *Presenter) Drain(queue <-chan sensor.Sample) int {
	n := 0
	for {
		select {
		case s, ok := <-queue:
			if !ok {
				return n
			}
			n++
			p.apply(s)
		default:
			return n
		}
	}
}

func (p *Presenter) apply(s sensor.Sample) {
	if p.paused {
		p.dropped++
		return
	}

	p.window.Push(s.Degrees)
	p.angle = s.Degrees
	p.needle = s.Radians()
	p.series = p.window.Points()
	p.label = gauge.AngleLabel(s.Degrees)
	p.hasValue = true
	p.lastAt = s.At
}

// History returns the buffered samples, oldest first.
func (p *Presenter) History() []float64 {
	return p.window.Values()
}

// Capacity returns the history size.
func (p *Presenter) Capacity() int {
	return p.window.Size()
}

// Angle returns the latest angle in degrees and whether one was received.
func (p *Presenter) Angle() (float64, bool) {
	return p.angle, p.hasValue
}

// Needle returns the needle angle in radians.
func (p *Presenter) Needle() float64 {
	return p.needle
}

// Series returns the chart coordinates for the current history.
func (p *Presenter) Series() []gauge.Point {
	return p.series
}

// Label returns the current-angle text.
func (p *Presenter) Label() string {
	return p.label
}

// LastSampleAt returns the arrival time of the latest applied sample.
func (p *Presenter) LastSampleAt() time.Time {
	return p.lastAt
}

// SetPaused freezes the display. Paused drains still empty the queue but
// discard what they take.
func (p *Presenter) SetPaused(paused bool) {
	p.paused = paused
}

// Paused reports whether the display is frozen.
func (p *Presenter) Paused() bool {
	return p.paused
}

// Dropped returns how many samples were discarded while paused.
func (p *Presenter) Dropped() uint64 {
	return p.dropped
}

// Clear empties the history. The needle and label keep the latest value.
func (p *Presenter) Clear() {
	p.window.Reset()
	p.series = nil
}
