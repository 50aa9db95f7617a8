package event

import (
	"errors"
	"sync"
)

// ErrClosed is returned by Send and Receive once the queue is closed and
// drained. The consumer treats it as unrecoverable.
var ErrClosed = errors.New("event queue closed")

// Queue is a multi-producer, single-consumer ordered queue. Send never
// blocks and never drops; Receive blocks until an event is available.
// Events arrive in send-completion order, so each producer's own events
// stay in order regardless of how producers interleave.
type Queue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	events []Event
	closed bool
}

// NewQueue creates an open, empty queue.
func NewQueue() *Queue {
	q := &Queue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Send enqueues an event. Safe for concurrent use by multiple producers.
// Returns ErrClosed if the queue has been closed.
func (q *Queue) Send(ev Event) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return ErrClosed
	}
	q.events = append(q.events, ev)
	q.cond.Signal()
	return nil
}

// Receive blocks until an event is available and returns it. Pending events
// are still delivered after Close; once the queue is closed and empty,
// Receive returns ErrClosed.
func (q *Queue) Receive() (Event, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.events) == 0 && !q.closed {
		q.cond.Wait()
	}
	if len(q.events) == 0 {
		return nil, ErrClosed
	}
	ev := q.events[0]
	q.events = q.events[1:]
	return ev, nil
}

// Close marks the queue closed and wakes any blocked Receive. Idempotent.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	q.cond.Broadcast()
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
