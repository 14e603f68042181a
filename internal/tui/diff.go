package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	dmp "github.com/sergi/go-diff/diffmatchpatch"
)

var (
	diffDelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"}).
			Strikethrough(true)
	diffAddStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"}).
			Underline(true)
	diffEqStyle = lipgloss.NewStyle().Faint(true)
)

// renderChangeLine shows, char by char, what the latest edit changed
// relative to the state undo would restore. Tabs are made visible so
// delimiter edits don't vanish.
func renderChangeLine(before, after string) string {
	if before == after {
		return diffEqStyle.Render("no pending change")
	}
	d := dmp.New()
	diffs := d.DiffMain(visibleTabs(before), visibleTabs(after), false)
	d.DiffCleanupSemantic(diffs)

	var sb strings.Builder
	for _, df := range diffs {
		switch df.Type {
		case dmp.DiffDelete:
			sb.WriteString(diffDelStyle.Render(df.Text))
		case dmp.DiffInsert:
			sb.WriteString(diffAddStyle.Render(df.Text))
		case dmp.DiffEqual:
			sb.WriteString(diffEqStyle.Render(df.Text))
		}
	}
	return sb.String()
}

func visibleTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "⇥")
}
