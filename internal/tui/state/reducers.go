package state

// ToggleDiff flips the last-change line and returns a new state copy.
func ToggleDiff(s UIState) UIState {
	s.ShowDiff = !s.ShowDiff
	if s.ShowDiff {
		s.Notice = "Diff: on"
	} else {
		s.Notice = "Diff: off"
	}
	return s
}

// Resize records the new terminal size.
func Resize(s UIState, width, height int) UIState {
	s.Width = width
	s.Height = height
	return s
}

// Notify sets a transient status message.
func Notify(s UIState, msg string) UIState {
	s.Notice = msg
	return s
}

// ClearNotice drops the current status message.
func ClearNotice(s UIState) UIState {
	s.Notice = ""
	return s
}

// Narrow reports whether the terminal is too narrow for the bordered
// preview.
func (s UIState) Narrow() bool {
	return s.Width > 0 && s.Width < s.MinWidth
}
