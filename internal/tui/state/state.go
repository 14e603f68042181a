package state

// UIState carries the presentation-only state of the TUI. The editing
// session itself lives outside; reducers here never touch it.
type UIState struct {
	Width    int
	Height   int
	ShowDiff bool   // show the last-change line under the preview
	Notice   string // transient status message
	MinWidth int    // below this the preview border is dropped
}

// NewUIState returns the initial presentation state.
func NewUIState() UIState {
	return UIState{ShowDiff: true, MinWidth: 46}
}
