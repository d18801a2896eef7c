package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderPopup centers a bordered card over base. Only the card's own
// columns replace base, so the screen stays visible around it.
func RenderPopup(base, title, body string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	content := body
	if t := strings.TrimSpace(title); t != "" {
		content = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render(t) + "\n\n" + body
	}
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(1, 2).
		Render(content)
	overlay := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)

	baseLines := fitLines(base, width, height)
	overLines := fitLines(overlay, width, height)
	out := make([]string, height)
	for i := range out {
		start, end, ok := opaqueSpan(overLines[i], width)
		if !ok {
			out[i] = baseLines[i]
			continue
		}
		left := ansi.Truncate(baseLines[i], start, "")
		mid := ansi.Truncate(dropColumns(overLines[i], start), end-start, "")
		right := dropColumns(baseLines[i], end)
		out[i] = padRight(left+mid+right, width)
	}
	return strings.Join(out, "\n")
}

func opaqueSpan(line string, width int) (start, end int, ok bool) {
	plain := ansi.Strip(ansi.Truncate(line, width, ""))
	trimmed := strings.TrimRight(plain, " ")
	if trimmed == "" {
		return 0, 0, false
	}
	start = len(plain) - len(strings.TrimLeft(plain, " "))
	end = ansi.StringWidth(trimmed)
	return start, end, start < end
}

func fitLines(s string, width, height int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = padRight(lines[i], width)
	}
	return lines
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	return strings.TrimPrefix(s, ansi.Truncate(s, cols, ""))
}
