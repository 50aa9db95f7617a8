// Package event defines the notifications exchanged between the input and
// ticker producers and the dashboard's consumer loop, plus the ordered queue
// that merges them.
package event

// Event is a discrete notification from a producer. It is created once,
// consumed exactly once, and then discarded.
type Event interface {
	isEvent()
}

// KeyPress is a single key-down occurrence from the terminal.
// Code uses Bubble Tea's key string format ("q", "c", "ctrl+c", ...).
type KeyPress struct {
	Code string
}

// ProgressUpdate carries the current progress value in [0, 1].
type ProgressUpdate struct {
	Value float64
}

func (KeyPress) isEvent()       {}
func (ProgressUpdate) isEvent() {}
