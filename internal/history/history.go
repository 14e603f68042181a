// Package history tracks editing history as bounded undo/redo stacks
// of full-buffer snapshots.
package history

// MaxDepth is the capacity of each stack. Pushing onto a full stack
// evicts the oldest entry rather than rejecting the push.
const MaxDepth = 50

// Snapshot is an immutable point-in-time copy of the editable buffer.
// It never aliases the live buffer.
type Snapshot struct {
	data []byte
}

// Capture copies buf into a new Snapshot.
func Capture(buf []byte) Snapshot {
	return Snapshot{data: append([]byte(nil), buf...)}
}

// Bytes returns a fresh copy of the snapshot's content.
func (s Snapshot) Bytes() []byte {
	return append([]byte(nil), s.data...)
}

// Len reports the snapshot's byte length.
func (s Snapshot) Len() int { return len(s.data) }

// Stacks holds the undo and redo stacks for one editing session.
// The zero value is not usable; construct with New.
type Stacks struct {
	undo     []Snapshot
	redo     []Snapshot
	maxDepth int
}

// New returns empty stacks with the given capacity per stack.
// A non-positive depth falls back to MaxDepth.
func New(maxDepth int) *Stacks {
	if maxDepth <= 0 {
		maxDepth = MaxDepth
	}
	return &Stacks{maxDepth: maxDepth}
}

// PushUndo records the pre-edit buffer state. Callers invoke this
// immediately before applying a destructive edit. It does not touch
// the redo stack; clearing redo is the edit commit's business.
func (s *Stacks) PushUndo(snap Snapshot) {
	s.undo = push(s.undo, snap, s.maxDepth)
}

// Undo pops the most recent undo snapshot, pushing current onto the
// redo stack first. Reports false (no-op) when there is nothing to
// undo.
func (s *Stacks) Undo(current Snapshot) (Snapshot, bool) {
	if len(s.undo) == 0 {
		return Snapshot{}, false
	}
	top := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	s.redo = push(s.redo, current, s.maxDepth)
	return top, true
}

// Redo is the symmetric inverse of Undo.
func (s *Stacks) Redo(current Snapshot) (Snapshot, bool) {
	if len(s.redo) == 0 {
		return Snapshot{}, false
	}
	top := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]
	s.undo = push(s.undo, current, s.maxDepth)
	return top, true
}

// ClearRedo drops the redone future. Any edit that is not itself an
// undo/redo calls this before committing.
func (s *Stacks) ClearRedo() { s.redo = nil }

// UndoDepth reports how many snapshots the undo stack holds.
func (s *Stacks) UndoDepth() int { return len(s.undo) }

// RedoDepth reports how many snapshots the redo stack holds.
func (s *Stacks) RedoDepth() int { return len(s.redo) }

// PeekUndo returns the snapshot Undo would restore, without popping.
func (s *Stacks) PeekUndo() (Snapshot, bool) {
	if len(s.undo) == 0 {
		return Snapshot{}, false
	}
	return s.undo[len(s.undo)-1], true
}

// push appends with shift-based eviction of the oldest entry at
// capacity.
func push(stack []Snapshot, snap Snapshot, maxDepth int) []Snapshot {
	stack = append(stack, snap)
	if len(stack) > maxDepth {
		stack = stack[len(stack)-maxDepth:]
	}
	return stack
}
