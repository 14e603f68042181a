// Package session owns the single live editing session: the raw
// input buffer, the render mode, the undo/redo history, and the two
// output strings regenerated after every mutation.
package session

import (
	"tagpad/internal/history"
	"tagpad/internal/markup"
)

// Session is the one mutable tuple the OS-binding collaborators talk
// to. It is single-caller by contract: every operation runs to
// completion before the next is accepted, so no locking is needed.
type Session struct {
	buf  []byte
	mode markup.RenderMode
	hist *history.Stacks
	out  markup.Output
}

// New starts a session with an empty buffer in Regular mode. The
// initial buffer state is seeded onto the undo stack.
func New() *Session {
	s := &Session{hist: history.New(history.MaxDepth)}
	s.hist.PushUndo(history.Capture(s.buf))
	s.reparse()
	return s
}

// Insert appends text to the buffer. Bytes that would exceed the
// buffer capacity are silently discarded. Character input, tab
// separators, and pasted content all arrive here.
func (s *Session) Insert(text string) {
	if text == "" {
		return
	}
	s.beginEdit()
	room := markup.MaxInput - len(s.buf)
	if room <= 0 {
		s.reparse()
		return
	}
	if len(text) > room {
		text = text[:room]
	}
	s.buf = append(s.buf, text...)
	s.reparse()
}

// InsertTab appends the token delimiter.
func (s *Session) InsertTab() { s.Insert(string(rune(markup.Delim))) }

// Backspace removes the last byte. An empty buffer is a no-op and
// records no history.
func (s *Session) Backspace() {
	if len(s.buf) == 0 {
		return
	}
	s.beginEdit()
	s.buf = s.buf[:len(s.buf)-1]
	s.reparse()
}

// Undo restores the most recent pre-edit snapshot, pushing the
// current state onto the redo stack. Reports false when there is
// nothing to undo.
func (s *Session) Undo() bool {
	snap, ok := s.hist.Undo(history.Capture(s.buf))
	if !ok {
		return false
	}
	s.buf = snap.Bytes()
	s.reparse()
	return true
}

// Redo restores the most recently undone state. Reports false when
// the redo stack is empty.
func (s *Session) Redo() bool {
	snap, ok := s.hist.Redo(history.Capture(s.buf))
	if !ok {
		return false
	}
	s.buf = snap.Bytes()
	s.reparse()
	return true
}

// ToggleMode flips between Regular and SelfClosing and reparses.
func (s *Session) ToggleMode() markup.RenderMode {
	if s.mode == markup.Regular {
		s.mode = markup.SelfClosing
	} else {
		s.mode = markup.Regular
	}
	s.reparse()
	return s.mode
}

// SetMode sets the render mode directly.
func (s *Session) SetMode(m markup.RenderMode) {
	s.mode = m
	s.reparse()
}

// Mode reports the current render mode.
func (s *Session) Mode() markup.RenderMode { return s.mode }

// Compact returns the verbatim output form.
func (s *Session) Compact() string { return s.out.Compact }

// Display returns the word-wrapped output form.
func (s *Session) Display() string { return s.out.Display }

// Buffer returns a copy of the raw input bytes.
func (s *Session) Buffer() []byte { return append([]byte(nil), s.buf...) }

// String returns the raw input as a string.
func (s *Session) String() string { return string(s.buf) }

// Len reports the raw buffer length in bytes.
func (s *Session) Len() int { return len(s.buf) }

// UndoDepth reports the undo stack depth.
func (s *Session) UndoDepth() int { return s.hist.UndoDepth() }

// RedoDepth reports the redo stack depth.
func (s *Session) RedoDepth() int { return s.hist.RedoDepth() }

// LastSaved returns the buffer state Undo would restore, if any.
// The TUI uses it to show what the latest edit changed.
func (s *Session) LastSaved() (string, bool) {
	snap, ok := s.hist.PeekUndo()
	if !ok {
		return "", false
	}
	return string(snap.Bytes()), true
}

// beginEdit captures the pre-edit state and invalidates the redone
// future. Every destructive edit — insert, backspace, tab, paste —
// goes through here; undo/redo do not.
func (s *Session) beginEdit() {
	s.hist.PushUndo(history.Capture(s.buf))
	s.hist.ClearRedo()
}

func (s *Session) reparse() {
	s.out = markup.Compile(s.buf, s.mode)
}
