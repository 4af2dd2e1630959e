package app

import (
	"fmt"
	"time"

	"angle-gauge.klederson.com/internal/config"
	"angle-gauge.klederson.com/internal/gauge"
	"angle-gauge.klederson.com/internal/logging"
	"angle-gauge.klederson.com/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// shared holds state shared between the Bubble Tea model copies and main.go.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type shared struct {
	session   *Session
	presenter *Presenter
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	width  int
	height int

	port     string
	baud     int
	linkLost bool

	shared *shared
}

// New creates the model for a connected session.
func New(session *Session, port string, baud int) AppModel {
	return AppModel{
		port: port,
		baud: baud,
		shared: &shared{
			session:   session,
			presenter: NewPresenter(config.HistorySize),
		},
	}
}

// Presenter exposes the display state, mainly for tests.
func (m AppModel) Presenter() *Presenter {
	return m.shared.presenter
}

func (m AppModel) Init() tea.Cmd {
	if !m.shared.session.StartTimer() {
		return nil
	}
	return tickCmd()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		if !m.shared.session.TimerActive() {
			return m, nil
		}
		m.shared.presenter.Drain(m.shared.session.Queue())
		if !m.linkLost && m.shared.session.LinkErr() != nil {
			m.linkLost = true
		}
		return m, tickCmd()
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "Q", "ctrl+c":
		_ = m.shared.session.Shutdown()
		return m, tea.Quit

	case "p", "P":
		p := m.shared.presenter
		p.SetPaused(!p.Paused())

	case "c", "C":
		m.shared.presenter.Clear()
	}

	return m, nil
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing angle gauge..."
	}

	p := m.shared.presenter

	menuH := 1
	statusH := 1
	bodyH := m.height - menuH - statusH
	if bodyH < 8 {
		bodyH = 8
	}

	dialW := m.width * 2 / 5
	if dialW < 24 {
		dialW = 24
	}
	chartW := m.width - dialW
	if chartW < 24 {
		chartW = 24
	}

	menuBar := ui.RenderMenuBar(m.width, m.port, m.baud, p.Paused())

	// Border (2) plus title and footer rows.
	innerH := bodyH - 4
	_, ok := p.Angle()

	dial := gauge.RenderDial(dialW-4, innerH, p.Needle(), ok)
	dialFooter := ui.CenterLine(ui.StyleHelp.Render(m.lastSeen()), dialW-4)
	dialPanel := ui.RenderPanel(dialW, bodyH, "ANGLE DIAL", dial, dialFooter)

	chart := gauge.RenderChart(chartW-4, innerH, p.Series(), p.Capacity(),
		config.ChartMinDeg, config.ChartMaxDeg)
	chartPanel := ui.RenderPanel(chartW, bodyH, "ANGLE TIME SERIES", chart,
		" "+ui.StyleAngleLabel.Render(p.Label()))

	st := ui.Status{
		LinkLost: m.linkLost,
		Paused:   p.Paused(),
		Dropped:  p.Dropped(),
		LastLog:  logging.Capture.LastLine(),
	}
	if r := m.shared.session.Reader(); r != nil {
		stats := r.Stats()
		st.Samples = stats.Samples
		st.ParseErrors = stats.ParseErrors
		st.Buffered = len(r.Queue())
	}
	statusBar := ui.RenderStatusBar(m.width, st)

	return ui.ComposeLayout(menuBar, dialPanel, chartPanel, statusBar)
}

func (m AppModel) lastSeen() string {
	at := m.shared.presenter.LastSampleAt()
	if at.IsZero() {
		return "waiting for data"
	}
	d := time.Since(at)
	if d < time.Second {
		return "updated now"
	}
	if d < time.Minute {
		return fmt.Sprintf("updated %ds ago", int(d.Seconds()))
	}
	return fmt.Sprintf("updated %dm ago", int(d.Minutes()))
}

func tickCmd() tea.Cmd {
	return tea.Tick(config.RedrawInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
