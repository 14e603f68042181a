package statusbar

import (
	"fmt"
	"strings"

	"tagpad/internal/markup"
	"tagpad/internal/tui/state"
)

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// View composes a concise status line reflecting the session and UI
// state.
func (StatusBar) View(s state.UIState, mode markup.RenderMode, undoDepth, redoDepth, bufLen int) string {
	m := "[REGULAR]"
	if mode == markup.SelfClosing {
		m = "[SELF-CLOSING]"
	}
	hist := fmt.Sprintf("Undo:%d Redo:%d", undoDepth, redoDepth)
	size := fmt.Sprintf("%d/%dB", bufLen, markup.MaxInput)

	parts := []string{m, hist, size}
	if s.Notice != "" {
		parts = append(parts, s.Notice)
	}
	return strings.Join(parts, "  ")
}
