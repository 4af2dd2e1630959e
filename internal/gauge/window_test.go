package gauge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindow_Slides(t *testing.T) {
	w := NewWindow(3)
	assert.Nil(t, w.Values())
	assert.Nil(t, w.Points())
	assert.Equal(t, 3, w.Size())

	w.Push(1)
	w.Push(2)
	assert.Equal(t, []float64{1, 2}, w.Values())

	w.Push(3)
	w.Push(4)
	assert.Equal(t, []float64{2, 3, 4}, w.Values())
	assert.Equal(t, []Point{{X: 0, Y: 2}, {X: 1, Y: 3}, {X: 2, Y: 4}}, w.Points())

	w.Reset()
	assert.Nil(t, w.Values())
	w.Push(9)
	assert.Equal(t, []float64{9}, w.Values())
}

func TestWindow_KeepsLastN(t *testing.T) {
	for _, count := range []int{0, 1, 99, 100, 101, 150, 1000} {
		w := NewWindow(100)
		for i := 0; i < count; i++ {
			w.Push(float64(i))
		}

		want := min(100, count)
		got := w.Values()
		assert.Len(t, got, want, "count=%d", count)
		for i, v := range got {
			assert.Equal(t, float64(count-want+i), v, "count=%d idx=%d", count, i)
		}
	}
}

func TestWindow_150Samples(t *testing.T) {
	w := NewWindow(100)
	for i := 0; i < 150; i++ {
		w.Push(float64(i))
	}

	pts := w.Points()
	assert.Len(t, pts, 100)
	assert.Equal(t, Point{X: 0, Y: 50}, pts[0])
	assert.Equal(t, Point{X: 99, Y: 149}, pts[99])
}

func TestWindow_ValuesIsACopy(t *testing.T) {
	w := NewWindow(2)
	w.Push(1)
	v := w.Values()
	v[0] = 42
	assert.Equal(t, []float64{1}, w.Values())
}

func TestWindow_ZeroSize(t *testing.T) {
	w := NewWindow(0)
	w.Push(5)
	w.Push(6)
	assert.Equal(t, []float64{6}, w.Values())
}
