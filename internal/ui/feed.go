package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"procview/internal/event"
)

// Target abstracts tea.Program.Send for testing.
type Target interface {
	Send(msg tea.Msg)
}

// Forward drains the event queue into the program's message loop,
// preserving arrival order. Runs until the queue closes, then delivers a
// FeedClosedMsg and returns.
func Forward(target Target, q *event.Queue) {
	for {
		ev, err := q.Receive()
		if err != nil {
			target.Send(FeedClosedMsg{Err: err})
			return
		}
		target.Send(ev)
	}
}
