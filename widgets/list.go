package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type ListRow struct {
	Label       string
	Highlighted bool
}

// ListView renders listbox rows, scrolled so Cursor stays visible. The
// cursor is only drawn when Focused.
type ListView struct {
	Rows    []ListRow
	Cursor  int
	Focused bool
	Empty   string
}

func (l ListView) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(l.Rows) == 0 {
		return lipgloss.NewStyle().Foreground(colorMuted).Italic(true).Render(l.Empty)
	}
	start := ScrollStart(l.Cursor, len(l.Rows), height)
	end := min(len(l.Rows), start+height)

	cursorStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	markStyle := lipgloss.NewStyle().Foreground(colorFocus).Bold(true)

	out := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		row := l.Rows[i]
		pointer := "  "
		if l.Focused && i == l.Cursor {
			pointer = cursorStyle.Render("› ")
		}
		mark := "[ ] "
		label := row.Label
		if row.Highlighted {
			mark = markStyle.Render("[x] ")
			label = markStyle.Render(label)
		}
		out = append(out, padRight(pointer+mark+label, width))
	}
	return strings.Join(out, "\n")
}

// ScrollStart returns the first visible row index for a window of height
// rows that keeps cursor on screen.
func ScrollStart(cursor, total, height int) int {
	if height <= 0 || total <= height {
		return 0
	}
	cursor = max(0, min(cursor, total-1))
	start := cursor - height + 1
	if start < 0 {
		start = 0
	}
	if start > total-height {
		start = total - height
	}
	return start
}
