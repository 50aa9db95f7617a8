// Package app holds the dashboard's state machine. State has a single
// writer: the consumer loop applies events one at a time, so no locking is
// needed around it.
package app

import "procview/internal/event"

// Key bindings consumed by the state machine.
const (
	KeyQuit        = "q"
	KeyToggleColor = "c"
)

// GaugeColor selects which of the two gauge fill colors is active.
type GaugeColor int

const (
	ColorPrimary GaugeColor = iota
	ColorSecondary
)

// Toggle flips between the two colors. It is its own inverse.
func (c GaugeColor) Toggle() GaugeColor {
	if c == ColorPrimary {
		return ColorSecondary
	}
	return ColorPrimary
}

func (c GaugeColor) String() string {
	if c == ColorSecondary {
		return "secondary"
	}
	return "primary"
}

// State is the complete UI state. Progress stays in [0, 1]; once Exiting is
// set no transition leaves it.
type State struct {
	Exiting  bool
	Color    GaugeColor
	Progress float64
}

// New returns the startup state: running, primary color, zero progress.
func New() State {
	return State{}
}

// Apply returns the state after handling one event. Key presses that match
// no binding are ignored; progress updates are last-write-wins.
func (s State) Apply(ev event.Event) State {
	if s.Exiting {
		return s
	}
	switch ev := ev.(type) {
	case event.KeyPress:
		switch ev.Code {
		case KeyQuit, "ctrl+c":
			s.Exiting = true
		case KeyToggleColor:
			s.Color = s.Color.Toggle()
		}
	case event.ProgressUpdate:
		s.Progress = ev.Value
	}
	return s
}
