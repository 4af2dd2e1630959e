package app

import (
	"context"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startedModel(t *testing.T) (AppModel, *pipePort) {
	t.Helper()
	port := newPipePort()
	s := NewSession(openerFor(port, nil))
	require.NoError(t, s.Connect(context.Background()))
	require.NoError(t, s.StartReader(context.Background()))
	t.Cleanup(func() { _ = s.Shutdown() })

	m := New(s, "COM4", 115200)
	require.NotNil(t, m.Init(), "timer scheduled")
	return m, port
}

func TestModel_TickDrainsQueue(t *testing.T) {
	m, port := startedModel(t)

	go func() {
		_, _ = io.WriteString(port.w, "Degrees: 10.0\nDegrees: 20.5\nnoise\nDegrees: 370.0\n")
	}()

	require.Eventually(t, func() bool {
		return m.shared.session.Reader().Stats().Samples == 3
	}, 2*time.Second, 5*time.Millisecond)

	next, cmd := m.Update(TickMsg(time.Now()))
	assert.NotNil(t, cmd, "tick reschedules itself")

	p := next.(AppModel).Presenter()
	assert.Equal(t, []float64{10.0, 20.5, 370.0}, p.History())
	assert.Equal(t, "Current angle: 370.0°", p.Label())
}

func TestModel_QuitShutsDown(t *testing.T) {
	m, port := startedModel(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.shared.session.Closed())
	assert.Equal(t, 1, port.closeCount())

	// Ticks already in flight stop the timer instead of rescheduling.
	_, cmd = next.Update(TickMsg(time.Now()))
	assert.Nil(t, cmd)
}

func TestModel_PauseAndClearKeys(t *testing.T) {
	m, _ := startedModel(t)
	p := m.Presenter()
	p.Drain(queueOf(1, 2))

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	assert.True(t, p.Paused())
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	assert.False(t, p.Paused())

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	assert.Empty(t, p.History())
}

func TestModel_LinkLoss(t *testing.T) {
	m, port := startedModel(t)
	_ = port.w.CloseWithError(io.ErrUnexpectedEOF)

	require.Eventually(t, func() bool {
		return m.shared.session.LinkErr() != nil
	}, 2*time.Second, 5*time.Millisecond)

	next, cmd := m.Update(TickMsg(time.Now()))
	assert.NotNil(t, cmd, "display keeps running without a reader")
	assert.True(t, next.(AppModel).linkLost)
}

func TestModel_View(t *testing.T) {
	m, _ := startedModel(t)
	assert.Equal(t, "Initializing angle gauge...", m.View())

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	m = next.(AppModel)
	m.Presenter().Drain(queueOf(42))

	out := m.View()
	assert.Contains(t, out, "ANGLE DIAL")
	assert.Contains(t, out, "ANGLE TIME SERIES")
	assert.Contains(t, out, "Current angle: 42.0°")
	assert.Contains(t, out, "Port: COM4 @ 115200")
}

func TestModel_ViewDrawsPresenterState(t *testing.T) {
	m, _ := startedModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	m = next.(AppModel)

	p := m.Presenter()
	p.Drain(queueOf(10, 200, 90))
	before := m.View()

	// The dial and chart must be drawn from the needle and series alone.
	p.series = nil
	p.needle = 12345
	after := m.View()

	assert.NotEqual(t, before, after)
}

func TestModel_ViewShowsDroppedWhilePaused(t *testing.T) {
	m, _ := startedModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 140, Height: 30})
	m = next.(AppModel)

	p := m.Presenter()
	p.SetPaused(true)
	p.Drain(queueOf(1, 2))

	assert.Contains(t, m.View(), "Dropped: 2")
}
