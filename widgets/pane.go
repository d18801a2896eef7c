package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Pane draws a rounded border whose top edge carries the title. The title
// sits on a HeaderColor background when one is set; Caption is drawn into
// the bottom edge.
type Pane struct {
	Title       string
	Caption     string
	Content     string
	HeaderColor string
	Focused     bool
}

func (p Pane) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	width = max(width, 4)
	h := max(height, 3)

	border := colorBorder
	if p.Focused {
		border = colorFocus
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(colorText).Bold(true)
	if c := strings.TrimSpace(p.HeaderColor); c != "" {
		titleStyle = titleStyle.Background(lipgloss.Color(c)).Foreground(HeaderForeground(c))
	}
	captionStyle := lipgloss.NewStyle().Foreground(colorMuted)

	innerWidth := width - 2
	contentWidth := max(1, innerWidth-2)

	prefix := "  "
	if p.Focused {
		prefix = "● "
	}
	v := borderStyle.Render("│")
	lines := strings.Split(p.Content, "\n")
	rows := make([]string, 0, h)
	rows = append(rows, borderStyle.Render("╭")+edge(borderStyle, titleStyle, prefix+strings.TrimSpace(p.Title), innerWidth)+borderStyle.Render("╮"))
	for i := 0; i < h-2; i++ {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		rows = append(rows, v+" "+padRight(line, contentWidth)+" "+v)
	}
	rows = append(rows, borderStyle.Render("╰")+edge(borderStyle, captionStyle, strings.TrimSpace(p.Caption), innerWidth)+borderStyle.Render("╯"))
	return strings.Join(rows, "\n")
}

// edge renders one horizontal border segment with text inset after a
// single dash.
func edge(border, label lipgloss.Style, text string, width int) string {
	text = strings.TrimRight(text, " ")
	if strings.TrimSpace(text) == "" {
		return border.Render(strings.Repeat("─", width))
	}
	chunk := " " + text + " "
	if ansi.StringWidth(chunk) > width-1 {
		chunk = " " + ansi.Truncate(text, max(1, width-3), "") + " "
	}
	rest := max(0, width-1-ansi.StringWidth(chunk))
	return border.Render("─") + label.Render(chunk) + border.Render(strings.Repeat("─", rest))
}
