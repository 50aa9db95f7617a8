// Package ui renders the dashboard and runs the consumer side of the event
// loop: one Bubble Tea model that owns the application state, applies each
// incoming event, and redraws.
package ui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"procview/internal/app"
	"procview/internal/event"
	"procview/internal/telemetry"
)

const (
	titleText   = "Process Overview"
	headingText = "Background Processes"
	exitNotice  = "Exiting application..."

	minGaugeWidth    = 20
	maxGaugeWidth    = 64
	defaultViewWidth = 80
)

// Model is the Bubble Tea model for the dashboard. It is the sole writer of
// the application state; producers only ever reach it through messages.
type Model struct {
	state   app.State
	styles  Styles
	session *telemetry.Session

	width  int
	height int

	err error
}

// Compile-time interface compliance check
var _ tea.Model = Model{}

// New creates the dashboard model. session may be nil (telemetry disabled).
func New(session *telemetry.Session) Model {
	return Model{
		state:   app.New(),
		styles:  DefaultStyles(),
		session: session,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Key presses from the terminal reader and
// progress updates from the ticker take the same path: convert to an event,
// apply it to the state, quit once the state machine says so.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.apply(event.KeyPress{Code: msg.String()})
	case event.KeyPress:
		return m.apply(msg)
	case event.ProgressUpdate:
		return m.apply(msg)
	case FeedClosedMsg:
		m.err = msg.Err
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// apply runs one event through the state machine and records the
// transitions telemetry cares about.
func (m Model) apply(ev event.Event) (tea.Model, tea.Cmd) {
	prev := m.state
	m.state = m.state.Apply(ev)

	if m.state.Color != prev.Color {
		m.session.RecordColorToggle(m.state.Color.String())
	}
	if prev.Progress < 1.0 && m.state.Progress >= 1.0 {
		m.session.RecordComplete()
	}
	if m.state.Exiting {
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	width := m.width
	if width == 0 {
		width = defaultViewWidth
	}

	barWidth := width - 10
	if barWidth < minGaugeWidth {
		barWidth = minGaugeWidth
	}
	if barWidth > maxGaugeWidth {
		barWidth = maxGaugeWidth
	}

	pct := int(math.Round(m.state.Progress * 100))
	label := m.styles.Label.Render(fmt.Sprintf("Process 1: %d%%", pct))
	bar := renderGauge(m.state.Progress, barWidth, m.styles.GaugeFill(m.state.Color), m.styles.Track)

	var content strings.Builder
	content.WriteString(m.styles.Heading.Render(headingText))
	content.WriteString("\n\n")
	content.WriteString(label)
	content.WriteString("\n")
	content.WriteString(bar)
	content.WriteString("\n\n")
	content.WriteString(keys.caption(m.styles))

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(titleText))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Panel.Render(content.String()))
	b.WriteString("\n")
	return b.String()
}

// Err returns the fatal error the model quit on, if any.
func (m Model) Err() error {
	return m.err
}

// Exited reports whether the user quit via the quit key.
func (m Model) Exited() bool {
	return m.state.Exiting
}

// ExitNotice returns the styled notice printed after the program returns;
// printing it inside the alt screen would be lost on restore.
func (m Model) ExitNotice() string {
	return m.styles.Notice.Render(exitNotice)
}

// Progress exposes the current progress value for tests.
func (m Model) Progress() float64 {
	return m.state.Progress
}

// Color exposes the current gauge color for tests.
func (m Model) Color() app.GaugeColor {
	return m.state.Color
}
