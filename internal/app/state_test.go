package app

import (
	"testing"

	"procview/internal/event"
)

func TestNew_InitialState(t *testing.T) {
	s := New()
	if s.Exiting {
		t.Error("new state should not be exiting")
	}
	if s.Color != ColorPrimary {
		t.Errorf("Color = %v, want ColorPrimary", s.Color)
	}
	if s.Progress != 0.0 {
		t.Errorf("Progress = %v, want 0.0", s.Progress)
	}
}

func TestApply_ToggleIsInvolution(t *testing.T) {
	for _, start := range []GaugeColor{ColorPrimary, ColorSecondary} {
		s := State{Color: start}
		s = s.Apply(event.KeyPress{Code: KeyToggleColor})
		if s.Color == start {
			t.Errorf("one toggle from %v did not change color", start)
		}
		s = s.Apply(event.KeyPress{Code: KeyToggleColor})
		if s.Color != start {
			t.Errorf("two toggles from %v = %v, want %v", start, s.Color, start)
		}
	}
}

func TestApply_ToggleDoesNotTouchProgress(t *testing.T) {
	s := State{Progress: 0.42}
	s = s.Apply(event.KeyPress{Code: KeyToggleColor})
	if s.Progress != 0.42 {
		t.Errorf("Progress = %v after toggle, want 0.42", s.Progress)
	}
}

func TestApply_ProgressLastWriteWins(t *testing.T) {
	s := New()
	for _, v := range []float64{0.1, 0.25, 0.25, 0.8} {
		s = s.Apply(event.ProgressUpdate{Value: v})
	}
	if s.Progress != 0.8 {
		t.Errorf("Progress = %v, want 0.8 (last value sent)", s.Progress)
	}
}

func TestApply_QuitFromAnyState(t *testing.T) {
	states := []State{
		{},
		{Color: ColorSecondary, Progress: 0.5},
		{Color: ColorPrimary, Progress: 1.0},
	}
	for _, s := range states {
		got := s.Apply(event.KeyPress{Code: KeyQuit})
		if !got.Exiting {
			t.Errorf("quit from %+v did not set Exiting", s)
		}
		if got.Color != s.Color || got.Progress != s.Progress {
			t.Errorf("quit from %+v changed other fields: %+v", s, got)
		}
	}
}

func TestApply_CtrlCQuits(t *testing.T) {
	s := New().Apply(event.KeyPress{Code: "ctrl+c"})
	if !s.Exiting {
		t.Error("ctrl+c did not set Exiting")
	}
}

func TestApply_UnknownKeysIgnored(t *testing.T) {
	s := State{Color: ColorSecondary, Progress: 0.3}
	for _, code := range []string{"x", "enter", "esc", "up", "Q", "C"} {
		got := s.Apply(event.KeyPress{Code: code})
		if got != s {
			t.Errorf("key %q changed state: %+v -> %+v", code, s, got)
		}
	}
}

func TestApply_NoTransitionLeavesExiting(t *testing.T) {
	s := State{Exiting: true, Progress: 0.35}
	for _, ev := range []event.Event{
		event.ProgressUpdate{Value: 0.9},
		event.KeyPress{Code: KeyToggleColor},
		event.KeyPress{Code: KeyQuit},
	} {
		got := s.Apply(ev)
		if got != s {
			t.Errorf("event %#v mutated exited state: %+v", ev, got)
		}
	}
}

func TestApply_Scenario(t *testing.T) {
	s := New()

	s = s.Apply(event.ProgressUpdate{Value: 0.35})
	want := State{Exiting: false, Color: ColorPrimary, Progress: 0.35}
	if s != want {
		t.Fatalf("after progress 0.35: %+v, want %+v", s, want)
	}

	s = s.Apply(event.KeyPress{Code: KeyToggleColor})
	want = State{Exiting: false, Color: ColorSecondary, Progress: 0.35}
	if s != want {
		t.Fatalf("after toggle: %+v, want %+v", s, want)
	}

	s = s.Apply(event.KeyPress{Code: KeyQuit})
	want = State{Exiting: true, Color: ColorSecondary, Progress: 0.35}
	if s != want {
		t.Fatalf("after quit: %+v, want %+v", s, want)
	}
}
