package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestPaneRendersTitleAndCaption(t *testing.T) {
	p := Pane{Title: "Available", Caption: "3 items", Content: "A\nB", HeaderColor: "#eb4034", Focused: true}
	out := ansi.Strip(p.Render(24, 5))
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("lines = %d, want 5", len(lines))
	}
	if !strings.Contains(lines[0], "● Available") {
		t.Fatalf("title row = %q", lines[0])
	}
	if !strings.Contains(lines[4], "3 items") {
		t.Fatalf("caption row = %q", lines[4])
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 24 {
			t.Fatalf("row %d width = %d, want 24", i, w)
		}
	}
}

func TestHeaderForegroundContrast(t *testing.T) {
	if HeaderForeground("#f0f0f0") != colorDark {
		t.Fatalf("light header should get dark text")
	}
	if HeaderForeground("#1a1a80") != colorLight {
		t.Fatalf("dark header should get light text")
	}
	if HeaderForeground("bogus") != colorLight {
		t.Fatalf("invalid color should fall back to light text")
	}
}

func TestParseHexColor(t *testing.T) {
	for _, ok := range []string{"#fff", "#eb4034", " #EB4034 "} {
		if _, err := ParseHexColor(ok); err != nil {
			t.Fatalf("ParseHexColor(%q): %v", ok, err)
		}
	}
	for _, bad := range []string{"", "fff", "#ffff", "#gggggg", "red"} {
		if _, err := ParseHexColor(bad); err == nil {
			t.Fatalf("ParseHexColor(%q) should fail", bad)
		}
	}
}
