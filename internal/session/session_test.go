package session

import (
	"strings"
	"testing"

	"tagpad/internal/markup"
)

func typeString(s *Session, text string) {
	for _, r := range text {
		s.Insert(string(r))
	}
}

func TestInsertReparses(t *testing.T) {
	s := New()
	typeString(s, "moin")
	if s.Compact() != "<moin>\n\n</moin>" {
		t.Fatalf("compact: %q", s.Compact())
	}
	s.InsertTab()
	typeString(s, "from")
	s.InsertTab()
	typeString(s, "blah blah")
	if s.Compact() != `<moin from="blah blah">`+"\n\n</moin>" {
		t.Fatalf("compact: %q", s.Compact())
	}
}

func TestEmptySessionRendersPlaceholder(t *testing.T) {
	s := New()
	if s.Compact() != markup.Placeholder {
		t.Fatalf("compact: %q", s.Compact())
	}
}

func TestBackspace(t *testing.T) {
	s := New()
	typeString(s, "dive")
	s.Backspace()
	if s.String() != "div" {
		t.Fatalf("buffer: %q", s.String())
	}
}

func TestBackspaceOnEmptyIsNoop(t *testing.T) {
	s := New()
	before := s.UndoDepth()
	s.Backspace()
	if s.UndoDepth() != before {
		t.Fatalf("no-op backspace recorded history")
	}
}

func TestUndoRedoSymmetry(t *testing.T) {
	s := New()
	typeString(s, "div")
	s.InsertTab()
	typeString(s, "id")
	want := s.String()

	// undo everything, then redo the same number of times
	n := 0
	for s.Undo() {
		n++
	}
	if s.String() != "" {
		t.Fatalf("fully undone buffer not empty: %q", s.String())
	}
	for i := 0; i < n; i++ {
		if !s.Redo() {
			t.Fatalf("redo %d/%d failed", i+1, n)
		}
	}
	if s.String() != want {
		t.Fatalf("after redo: got %q want %q", s.String(), want)
	}
}

func TestEditAfterUndoClearsRedo(t *testing.T) {
	s := New()
	typeString(s, "ab")
	s.Undo()
	if s.RedoDepth() == 0 {
		t.Fatalf("undo should have fed redo")
	}
	s.Insert("c") // fresh branch of history
	if s.RedoDepth() != 0 {
		t.Fatalf("edit did not clear redo")
	}
	if s.Redo() {
		t.Fatalf("redo after edit should be a no-op")
	}
}

func TestPasteIsOneUndoStep(t *testing.T) {
	s := New()
	s.Insert("div\tclass\tbox") // paste arrives as a single insert
	if s.Compact() != `<div class="box">`+"\n\n</div>" {
		t.Fatalf("compact: %q", s.Compact())
	}
	s.Undo()
	if s.String() != "" {
		t.Fatalf("one undo should remove the whole paste, got %q", s.String())
	}
}

func TestToggleMode(t *testing.T) {
	s := New()
	s.Insert("div\tclass\tcontainer")
	if got := s.ToggleMode(); got != markup.SelfClosing {
		t.Fatalf("mode: %v", got)
	}
	if s.Compact() != `<div class="container" />`+"\n" {
		t.Fatalf("compact: %q", s.Compact())
	}
	s.ToggleMode()
	if s.Compact() != `<div class="container">`+"\n\n</div>" {
		t.Fatalf("compact: %q", s.Compact())
	}
}

func TestModeSurvivesEdits(t *testing.T) {
	s := New()
	s.SetMode(markup.SelfClosing)
	s.Insert("br")
	if s.Mode() != markup.SelfClosing {
		t.Fatalf("mode reset by edit")
	}
	if s.Compact() != "<br />\n" {
		t.Fatalf("compact: %q", s.Compact())
	}
}

func TestInsertTruncatesAtCapacity(t *testing.T) {
	s := New()
	s.Insert(strings.Repeat("x", markup.MaxInput+500))
	if s.Len() != markup.MaxInput {
		t.Fatalf("buffer length: %d", s.Len())
	}
	// a further insert is silently discarded
	s.Insert("y")
	if s.Len() != markup.MaxInput {
		t.Fatalf("overflowing insert grew the buffer: %d", s.Len())
	}
}

func TestHistoryDepthBounded(t *testing.T) {
	s := New()
	for i := 0; i < 80; i++ {
		s.Insert("x")
	}
	if s.UndoDepth() != 50 {
		t.Fatalf("undo depth: %d", s.UndoDepth())
	}
	// fully undoing lands on an evicted-history state, not a panic
	for s.Undo() {
	}
	if got := s.Len(); got == 0 {
		t.Fatalf("oldest snapshots were evicted; expected a non-empty floor, got empty")
	}
}

func TestLastSavedTracksPreEditState(t *testing.T) {
	s := New()
	s.Insert("div")
	before, ok := s.LastSaved()
	if !ok || before != "" {
		t.Fatalf("last saved: %q ok=%v", before, ok)
	}
	s.Insert("x")
	before, _ = s.LastSaved()
	if before != "div" {
		t.Fatalf("last saved: %q", before)
	}
}
