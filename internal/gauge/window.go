package gauge

// Window is the sliding range of samples the time-series chart shows.
// Samples are kept oldest first; pushing onto a full window drops the
// oldest one.
type Window struct {
	size    int
	samples []float64
}

// NewWindow creates a window showing at most size samples.
func NewWindow(size int) *Window {
	if size < 1 {
		size = 1
	}
	return &Window{
		size:    size,
		samples: make([]float64, 0, size),
	}
}

// Push appends deg, sliding the window forward once it is full.
func (w *Window) Push(deg float64) {
	if len(w.samples) == w.size {
		copy(w.samples, w.samples[1:])
		w.samples[w.size-1] = deg
		return
	}
	w.samples = append(w.samples, deg)
}

// Values returns a copy of the samples, oldest first, or nil when empty.
func (w *Window) Values() []float64 {
	if len(w.samples) == 0 {
		return nil
	}
	out := make([]float64, len(w.samples))
	copy(out, w.samples)
	return out
}

// Points returns the chart coordinates of the window: X is the position
// within the window, Y the angle in degrees. Nil when empty.
func (w *Window) Points() []Point {
	if len(w.samples) == 0 {
		return nil
	}
	pts := make([]Point, len(w.samples))
	for i, v := range w.samples {
		pts[i] = Point{X: i, Y: v}
	}
	return pts
}

// Size returns the maximum number of samples shown.
func (w *Window) Size() int {
	return w.size
}

// Reset empties the window.
func (w *Window) Reset() {
	w.samples = w.samples[:0]
}
