package ui

// FeedClosedMsg is sent by the forward loop when the event queue closes
// underneath it. The model treats it as fatal: it means every producer
// terminated while the dashboard was still running.
type FeedClosedMsg struct {
	Err error
}
