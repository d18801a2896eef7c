package widgets

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// StyleRegistry holds lipgloss styles under fixed identifiers. Apply and
// Remove are idempotent, so screens can re-apply on every property change.
type StyleRegistry struct {
	styles map[string]lipgloss.Style
}

func NewStyleRegistry() *StyleRegistry {
	return &StyleRegistry{styles: make(map[string]lipgloss.Style)}
}

// Apply installs style under name, replacing any earlier one. It reports
// whether the registry changed.
func (r *StyleRegistry) Apply(name string, style lipgloss.Style) bool {
	if old, ok := r.styles[name]; ok && sameProps(old, style) {
		return false
	}
	r.styles[name] = style
	return true
}

// Remove drops name. Removing an unknown name is a no-op.
func (r *StyleRegistry) Remove(name string) bool {
	if _, ok := r.styles[name]; !ok {
		return false
	}
	delete(r.styles, name)
	return true
}

// Style returns the style for name, or a blank style when it is not
// applied.
func (r *StyleRegistry) Style(name string) (lipgloss.Style, bool) {
	s, ok := r.styles[name]
	if !ok {
		return lipgloss.NewStyle(), false
	}
	return s, true
}

func (r *StyleRegistry) Names() []string {
	out := make([]string, 0, len(r.styles))
	for name := range r.styles {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func sameProps(a, b lipgloss.Style) bool {
	return a.GetForeground() == b.GetForeground() &&
		a.GetBackground() == b.GetBackground() &&
		a.GetBold() == b.GetBold() &&
		a.GetItalic() == b.GetItalic()
}
