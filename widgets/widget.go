package widgets

// Widget renders itself into a width x height cell block.
type Widget interface {
	Render(width, height int) string
}

// Text renders a fixed string, clipped by the parent layout.
type Text string

func (t Text) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	return string(t)
}
