package sensor

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chunkedPort hands out its data a few bytes at a time, then fails with err.
type chunkedPort struct {
	data   []byte
	chunk  int
	err    error
	closed bool
}

func (p *chunkedPort) Read(b []byte) (int, error) {
	if len(p.data) == 0 {
		return 0, p.err
	}
	n := p.chunk
	if n > len(p.data) {
		n = len(p.data)
	}
	if n > len(b) {
		n = len(b)
	}
	copy(b, p.data[:n])
	p.data = p.data[n:]
	return n, nil
}

func (p *chunkedPort) Close() error {
	p.closed = true
	return nil
}

func drain(q <-chan Sample) []float64 {
	var out []float64
	for {
		select {
		case s := <-q:
			out = append(out, s.Degrees)
		default:
			return out
		}
	}
}

func TestReader_ParsesLinesAcrossReads(t *testing.T) {
	port := &chunkedPort{
		data:  []byte("Degrees: 10.0\r\nDegrees: 20.5\nnoise\nDegrees: abc\nDegrees: 370.0\n"),
		chunk: 7,
		err:   io.EOF,
	}
	r := NewReader(port, 16)

	err := r.Run(context.Background())
	assert.ErrorIs(t, err, io.EOF, "a dead port ends the loop with its error")
	assert.ErrorIs(t, r.Err(), io.EOF)

	assert.Equal(t, []float64{10.0, 20.5, 370.0}, drain(r.Queue()))

	st := r.Stats()
	assert.Equal(t, uint64(5), st.Lines)
	assert.Equal(t, uint64(3), st.Samples)
	assert.Equal(t, uint64(1), st.ParseErrors)

	select {
	case <-r.Done():
	default:
		t.Fatal("Done should be closed after Run returns")
	}
}

func TestReader_NoMarkerNeverQueues(t *testing.T) {
	port := &chunkedPort{
		data:  []byte("Raw angle: 12\nError reading sensor\n\n  \nDEGREES: 4\n"),
		chunk: 64,
		err:   io.ErrUnexpectedEOF,
	}
	r := NewReader(port, 16)

	_ = r.Run(context.Background())
	assert.Empty(t, drain(r.Queue()))
	assert.Equal(t, uint64(0), r.Stats().ParseErrors)
}

func TestReader_PartialLineWaitsForNewline(t *testing.T) {
	port := &chunkedPort{
		data:  []byte("Degrees: 1\nDegrees: 2"),
		chunk: 64,
		err:   errors.New("unplugged"),
	}
	r := NewReader(port, 16)

	_ = r.Run(context.Background())
	assert.Equal(t, []float64{1}, drain(r.Queue()))
}

func TestReader_OversizedLineIsDroppedWhole(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"complete line over the limit", strings.Repeat("x", 1020) + "Degrees: 5\nDegrees: 7\n"},
		{"partial line flushed mid-stream", strings.Repeat("x", 2000) + "Degrees: 5\nDegrees: 7\n"},
		{"tail spans several flushes", strings.Repeat("x", 5000) + "Degrees: 5\nDegrees: 7\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			port := &chunkedPort{data: []byte(tt.data), chunk: 256, err: io.EOF}
			r := NewReader(port, 16)

			_ = r.Run(context.Background())
			assert.Equal(t, []float64{7}, drain(r.Queue()))
			assert.Equal(t, uint64(0), r.Stats().ParseErrors)
		})
	}
}

func TestReader_StopsOnCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	r := NewReader(pr, 16)
	ctx, cancel := context.WithCancel(context.Background())
	r.Start(ctx)

	_, err := io.WriteString(pw, "Degrees: 45\n")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return r.Stats().Samples == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	_ = pr.Close() // unblock the pending read, as shutdown does

	select {
	case <-r.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("reader did not stop after cancel")
	}
	assert.NoError(t, r.Err(), "shutdown is not an I/O failure")
	assert.Equal(t, []float64{45}, drain(r.Queue()))
}

func TestReader_FullQueueDoesNotBlockShutdown(t *testing.T) {
	port := &chunkedPort{
		data:  []byte(strings.Repeat("Degrees: 1\n", 5)),
		chunk: 256,
		err:   io.EOF,
	}
	r := NewReader(port, 1)

	ctx, cancel := context.WithCancel(context.Background())
	r.Start(ctx)

	require.Eventually(t, func() bool {
		return r.Stats().Samples == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-r.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("reader blocked on a full queue after cancel")
	}
	assert.NoError(t, r.Err())
}

func TestMockPort_EmitsFirmwareLines(t *testing.T) {
	m := NewMockPort(5 * time.Millisecond)
	r := NewReader(m, 64)

	ctx, cancel := context.WithCancel(context.Background())
	r.Start(ctx)

	require.Eventually(t, func() bool {
		return r.Stats().Samples >= 3
	}, 2*time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, m.Close())
	require.NoError(t, m.Close(), "Close is idempotent")

	<-r.Done()
	for _, deg := range drain(r.Queue()) {
		assert.GreaterOrEqual(t, deg, 0.0)
		assert.Less(t, deg, 360.0)
	}
}
