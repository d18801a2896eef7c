package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	colorText   lipgloss.Color = "#cdd6f4"
	colorMuted  lipgloss.Color = "#a6adc8"
	colorBorder lipgloss.Color = "#6c7086"
	colorFocus  lipgloss.Color = "#a6e3a1"
	colorAccent lipgloss.Color = "#89b4fa"
	colorDark   lipgloss.Color = "#1e1e2e"
	colorLight  lipgloss.Color = "#ffffff"
)

// ParseHexColor accepts #rgb and #rrggbb.
func ParseHexColor(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") || (len(s) != 4 && len(s) != 7) {
		return colorful.Color{}, fmt.Errorf("color %q: want #rgb or #rrggbb", s)
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return colorful.Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return c, nil
}

// HeaderForeground picks white text on dark headers and dark text on light
// ones. Unparseable colors get white.
func HeaderForeground(hex string) lipgloss.Color {
	c, err := ParseHexColor(hex)
	if err != nil {
		return colorLight
	}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return colorDark
	}
	return colorLight
}
