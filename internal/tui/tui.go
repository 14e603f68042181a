// Package tui is the interactive front end for the tag compiler. It
// is glue: every keystroke is handed to the editing session, and the
// freshly generated output strings are drawn back.
package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tagpad/internal/markup"
	"tagpad/internal/session"
	"tagpad/internal/tui/state"
	"tagpad/internal/tui/widgets/statusbar"
)

// Result reports what the TUI produced when it exited.
type Result struct {
	Compact string // compact form at exit
	Copied  bool   // true when Enter placed it on the clipboard
}

// Run drives the editor until the user copies (Enter) or quits (Esc).
func Run(mode markup.RenderMode) (Result, error) {
	m := newModel(mode)
	p := tea.NewProgram(&m)
	out, err := p.Run()
	if err != nil {
		return Result{}, err
	}
	fin, ok := out.(*model)
	if !ok {
		fin = &m
	}
	return Result{Compact: fin.sess.Compact(), Copied: fin.copied}, nil
}

type model struct {
	sess   *session.Session
	ui     state.UIState
	keys   keyMap
	status statusbar.StatusBar
	copied bool
}

func newModel(mode markup.RenderMode) model {
	sess := session.New()
	if mode != markup.Regular {
		sess.SetMode(mode)
	}
	return model{
		sess:   sess,
		ui:     state.NewUIState(),
		keys:   defaultKeyMap(),
		status: statusbar.NewStatusBar(),
	}
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui = state.Resize(m.ui, msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		m.ui = state.ClearNotice(m.ui)

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Copy):
			if err := clipboard.WriteAll(m.sess.Compact()); err != nil {
				m.ui = state.Notify(m.ui, "clipboard: "+err.Error())
				return m, nil
			}
			m.copied = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Undo):
			if !m.sess.Undo() {
				m.ui = state.Notify(m.ui, "Nothing to undo")
			}
			return m, nil

		case key.Matches(msg, m.keys.Redo):
			if !m.sess.Redo() {
				m.ui = state.Notify(m.ui, "Nothing to redo")
			}
			return m, nil

		case key.Matches(msg, m.keys.ToggleMode):
			mode := m.sess.ToggleMode()
			m.ui = state.Notify(m.ui, "Mode: "+mode.String())
			return m, nil

		case key.Matches(msg, m.keys.ToggleDiff):
			m.ui = state.ToggleDiff(m.ui)
			return m, nil

		case key.Matches(msg, m.keys.Paste):
			text, err := clipboard.ReadAll()
			if err != nil {
				m.ui = state.Notify(m.ui, "clipboard: "+err.Error())
				return m, nil
			}
			m.sess.Insert(text)
			return m, nil

		case key.Matches(msg, m.keys.Separator):
			m.sess.InsertTab()
			return m, nil

		case key.Matches(msg, m.keys.Backspace):
			m.sess.Backspace()
			return m, nil
		}

		switch msg.Type {
		case tea.KeyRunes:
			m.sess.Insert(string(msg.Runes))
		case tea.KeySpace:
			m.sess.Insert(" ")
		}
		return m, nil
	}
	return m, nil
}

func (m *model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("tagpad"))
	sb.WriteString("\n\n")

	sb.WriteString(renderInputLine(m.sess.String()))
	sb.WriteString("\n\n")

	preview := m.sess.Display()
	if m.ui.Narrow() {
		sb.WriteString(preview)
	} else {
		sb.WriteString(previewStyle.Render(preview))
	}
	sb.WriteString("\n")

	if m.ui.ShowDiff {
		if before, ok := m.sess.LastSaved(); ok {
			sb.WriteString(renderChangeLine(before, m.sess.String()))
			sb.WriteString("\n")
		}
	}

	line := m.status.View(m.ui, m.sess.Mode(), m.sess.UndoDepth(), m.sess.RedoDepth(), m.sess.Len())
	sb.WriteString(statusStyle.Render(line))
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render(m.keys.helpLine()))
	sb.WriteString("\n")
	return sb.String()
}

// renderInputLine shows the raw buffer with tab delimiters made
// visible and a block cursor at the end.
func renderInputLine(raw string) string {
	fields := strings.Split(raw, "\t")
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = inputStyle.Render(f)
	}
	line := strings.Join(parts, tabMarkStyle.Render(" ⇥ "))
	return lipgloss.JoinHorizontal(lipgloss.Top, "> ", line, cursorStyle.Render(" "))
}
