package widgets

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// VStack stacks widgets top to bottom. Fixed pins a row height when the
// entry is > 0; the remaining height is shared by Ratios (or evenly).
type VStack struct {
	Widgets []Widget
	Spacing int
	Ratios  []float64
	Fixed   []int
}

func (v VStack) Render(width, height int) string {
	if len(v.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	spacingTotal := max(0, v.Spacing*(len(v.Widgets)-1))
	heights := v.heights(max(1, height-spacingTotal))
	lines := make([]string, 0, height)
	for i, w := range v.Widgets {
		block := strings.Split(w.Render(width, heights[i]), "\n")
		for len(block) < heights[i] {
			block = append(block, "")
		}
		lines = append(lines, block[:heights[i]]...)
		if i < len(v.Widgets)-1 {
			for s := 0; s < v.Spacing; s++ {
				lines = append(lines, "")
			}
		}
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func (v VStack) heights(usable int) []int {
	n := len(v.Widgets)
	out := make([]int, n)
	flex := make([]int, 0, n)
	used := 0
	for i := range out {
		if i < len(v.Fixed) && v.Fixed[i] > 0 {
			out[i] = v.Fixed[i]
			used += v.Fixed[i]
			continue
		}
		flex = append(flex, i)
	}
	if len(flex) == 0 {
		return out
	}
	var ratios []float64
	if len(v.Ratios) == n {
		for _, i := range flex {
			ratios = append(ratios, v.Ratios[i])
		}
	}
	shares := splitWidths(max(len(flex), usable-used), len(flex), ratios)
	for j, i := range flex {
		out[i] = max(1, shares[j])
	}
	return out
}

// HStack places widgets side by side, Gap columns apart.
type HStack struct {
	Widgets []Widget
	Ratios  []float64
	Gap     int
}

func (h HStack) Render(width, height int) string {
	if len(h.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	gapTotal := max(0, h.Gap*(len(h.Widgets)-1))
	widths := splitWidths(max(1, width-gapTotal), len(h.Widgets), h.Ratios)
	rendered := make([][]string, len(h.Widgets))
	maxLines := 0
	for i, w := range h.Widgets {
		part := strings.Split(w.Render(max(1, widths[i]), height), "\n")
		rendered[i] = part
		maxLines = max(maxLines, len(part))
	}
	gap := strings.Repeat(" ", h.Gap)
	out := make([]string, 0, maxLines)
	for line := 0; line < maxLines; line++ {
		cols := make([]string, len(rendered))
		for i := range rendered {
			if line < len(rendered[i]) {
				cols[i] = padRight(rendered[i][line], widths[i])
			} else {
				cols[i] = strings.Repeat(" ", widths[i])
			}
		}
		out = append(out, strings.Join(cols, gap))
	}
	return strings.Join(out, "\n")
}

func splitWidths(total, n int, ratios []float64) []int {
	if n <= 0 {
		return nil
	}
	out := make([]int, n)
	if len(ratios) != n {
		for i := range out {
			out[i] = total / n
		}
		for i := 0; i < total%n; i++ {
			out[i]++
		}
		return out
	}
	sum := 0.0
	for _, r := range ratios {
		sum += positive(r)
	}
	used := 0
	for i := range out {
		out[i] = int(math.Floor((positive(ratios[i]) / sum) * float64(total)))
		used += out[i]
	}
	for i := 0; used < total; i = (i + 1) % n {
		out[i]++
		used++
	}
	return out
}

func positive(r float64) float64 {
	if r <= 0 {
		return 1
	}
	return r
}

func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
