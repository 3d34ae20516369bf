package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/SergeyF11/espGeoLocation/internal/geoloc"
)

// pollInterval is the cadence at which the watch model drives the client's
// cooperative loop.
const pollInterval = 25 * time.Millisecond

type tickMsg time.Time

// WatchModel is a Bubble Tea model that drives a geolocation request and
// shows a live progress bar for the state machine.
type WatchModel struct {
	client *geoloc.Client
	opts   geoloc.Options
	bar    progress.Model
	width  int
	done   bool
	failed bool
}

// NewWatchModel builds the model. The request is started by Init.
func NewWatchModel(client *geoloc.Client, opts geoloc.Options) WatchModel {
	bar := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
	)
	return WatchModel{
		client: client,
		opts:   opts,
		bar:    bar,
		width:  GetTerminalWidth(),
	}
}

// Init implements tea.Model
func (m WatchModel) Init() tea.Cmd {
	// A Begin failure settles the request immediately; the first tick
	// observes it, renders the error and quits.
	m.client.Begin(m.opts)
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model
func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		barWidth := m.width - 20
		if barWidth < 20 {
			barWidth = 20
		}
		m.bar.Width = barWidth
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.client.Stop()
			return m, tea.Quit
		}
		return m, nil

	case tickMsg:
		m.client.Process()
		if m.client.IsRunning() {
			return m, tick()
		}
		m.done = true
		m.failed = m.client.State() != geoloc.StateCompleted
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model
func (m WatchModel) View() string {
	if m.done {
		if m.failed {
			return RenderFailure(m.client.Err()) + "\n"
		}
		return RenderResult(m.client.Result(), m.client.LastExecutionTime().Round(time.Millisecond).String()) + "\n"
	}

	header := HeaderTitleStyle.Render("IP GEOLOCATION")
	state := StateLabelStyle.Render(m.client.State().String())
	bar := m.bar.ViewAs(float64(m.client.Progress()) / 100.0)
	return fmt.Sprintf("%s\n\n  %s %3d%%\n\n%s\n", header, bar, m.client.Progress(), state)
}

// Failed reports whether the watched request ended in error. Valid after the
// program has quit.
func (m WatchModel) Failed() bool { return m.failed }
