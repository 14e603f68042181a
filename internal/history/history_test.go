package history

import (
	"fmt"
	"testing"
)

func snap(s string) Snapshot { return Capture([]byte(s)) }

func TestSnapshotIsValueCopy(t *testing.T) {
	buf := []byte("live")
	s := Capture(buf)
	buf[0] = 'X'
	if string(s.Bytes()) != "live" {
		t.Fatalf("snapshot aliases the live buffer: %q", s.Bytes())
	}
	b := s.Bytes()
	b[0] = 'Y'
	if string(s.Bytes()) != "live" {
		t.Fatalf("Bytes returned aliased storage")
	}
}

func TestUndoEmptyIsNoop(t *testing.T) {
	st := New(MaxDepth)
	if _, ok := st.Undo(snap("now")); ok {
		t.Fatalf("undo on empty stack should report false")
	}
	if st.RedoDepth() != 0 {
		t.Fatalf("no-op undo must not touch redo")
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	st := New(MaxDepth)
	st.PushUndo(snap("one"))
	st.PushUndo(snap("two"))

	got, ok := st.Undo(snap("three"))
	if !ok || string(got.Bytes()) != "two" {
		t.Fatalf("undo: %q ok=%v", got.Bytes(), ok)
	}
	got, ok = st.Redo(snap("two"))
	if !ok || string(got.Bytes()) != "three" {
		t.Fatalf("redo: %q ok=%v", got.Bytes(), ok)
	}
	if st.UndoDepth() != 2 || st.RedoDepth() != 0 {
		t.Fatalf("depths: undo=%d redo=%d", st.UndoDepth(), st.RedoDepth())
	}
}

func TestPushEvictsOldestAtCapacity(t *testing.T) {
	st := New(3)
	for i := 0; i < 5; i++ {
		st.PushUndo(snap(fmt.Sprintf("s%d", i)))
	}
	if st.UndoDepth() != 3 {
		t.Fatalf("depth: %d", st.UndoDepth())
	}
	// newest first on pop; the two oldest were evicted
	for _, want := range []string{"s4", "s3", "s2"} {
		got, ok := st.Undo(snap("cur"))
		if !ok || string(got.Bytes()) != want {
			t.Fatalf("pop: got %q want %q", got.Bytes(), want)
		}
	}
	if _, ok := st.Undo(snap("cur")); ok {
		t.Fatalf("stack should be drained")
	}
}

func TestRedoStackAlsoBounded(t *testing.T) {
	st := New(2)
	for i := 0; i < 4; i++ {
		st.PushUndo(snap(fmt.Sprintf("u%d", i)))
	}
	// two undos fill redo to its cap of 2; more would evict
	st.Undo(snap("c0"))
	st.Undo(snap("c1"))
	if st.RedoDepth() != 2 {
		t.Fatalf("redo depth: %d", st.RedoDepth())
	}
}

func TestClearRedo(t *testing.T) {
	st := New(MaxDepth)
	st.PushUndo(snap("a"))
	st.Undo(snap("b"))
	if st.RedoDepth() != 1 {
		t.Fatalf("redo depth: %d", st.RedoDepth())
	}
	st.ClearRedo()
	if st.RedoDepth() != 0 {
		t.Fatalf("redo not cleared")
	}
	if _, ok := st.Redo(snap("b")); ok {
		t.Fatalf("redo after clear should be a no-op")
	}
}

func TestPeekUndoDoesNotPop(t *testing.T) {
	st := New(MaxDepth)
	st.PushUndo(snap("keep"))
	got, ok := st.PeekUndo()
	if !ok || string(got.Bytes()) != "keep" {
		t.Fatalf("peek: %q ok=%v", got.Bytes(), ok)
	}
	if st.UndoDepth() != 1 {
		t.Fatalf("peek must not pop")
	}
}
