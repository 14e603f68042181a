package state

import "testing"

func TestToggleDiff(t *testing.T) {
	s := NewUIState()
	if !s.ShowDiff {
		t.Fatalf("diff should start on")
	}
	s = ToggleDiff(s)
	if s.ShowDiff || s.Notice != "Diff: off" {
		t.Fatalf("state after toggle: %+v", s)
	}
	s = ToggleDiff(s)
	if !s.ShowDiff || s.Notice != "Diff: on" {
		t.Fatalf("state after second toggle: %+v", s)
	}
}

func TestResizeAndNarrow(t *testing.T) {
	s := NewUIState()
	if s.Narrow() {
		t.Fatalf("unsized state must not report narrow")
	}
	s = Resize(s, 40, 20)
	if s.Width != 40 || s.Height != 20 {
		t.Fatalf("size not recorded: %+v", s)
	}
	if !s.Narrow() {
		t.Fatalf("40 cols should be narrow (min %d)", s.MinWidth)
	}
	s = Resize(s, 100, 20)
	if s.Narrow() {
		t.Fatalf("100 cols should not be narrow")
	}
}

func TestNotify(t *testing.T) {
	s := Notify(NewUIState(), "Copied")
	if s.Notice != "Copied" {
		t.Fatalf("notice: %q", s.Notice)
	}
	s = ClearNotice(s)
	if s.Notice != "" {
		t.Fatalf("notice not cleared: %q", s.Notice)
	}
}
