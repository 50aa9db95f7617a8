// Package progress simulates a background task's progress feed. The ticker
// stands in for a real progress source; anything that emits
// event.ProgressUpdate through the same queue can replace it without
// touching the consumer.
package progress

import (
	"context"
	"time"

	"procview/internal/event"
)

const (
	// DefaultInterval is how often the ticker advances.
	DefaultInterval = 100 * time.Millisecond
	// DefaultStep is the per-tick increment.
	DefaultStep = 0.01
)

// Ticker advances a progress value by Step every Interval, clamped to 1.0,
// and forwards each value to the event queue. Once at 1.0 it keeps emitting
// 1.0 every interval; it never signals "done".
type Ticker struct {
	Interval time.Duration
	Step     float64
}

// NewTicker returns a ticker with the default interval and step.
func NewTicker() *Ticker {
	return &Ticker{
		Interval: DefaultInterval,
		Step:     DefaultStep,
	}
}

// Run emits ProgressUpdate events until ctx is cancelled or the queue is
// closed. It owns its value; the consumer only ever sees the emitted events.
func (t *Ticker) Run(ctx context.Context, q *event.Queue) {
	interval := t.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	step := t.Step
	if step <= 0 {
		step = DefaultStep
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	value := 0.0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			value = Next(value, step)
			if err := q.Send(event.ProgressUpdate{Value: value}); err != nil {
				// Queue closed; the consumer is gone.
				return
			}
		}
	}
}

// Next returns the value after one tick: advanced by step and clamped to 1.0.
func Next(value, step float64) float64 {
	value += step
	if value > 1.0 {
		return 1.0
	}
	return value
}
