package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestListViewMarksHighlightAndCursor(t *testing.T) {
	l := ListView{
		Rows:    []ListRow{{Label: "A"}, {Label: "B", Highlighted: true}},
		Cursor:  1,
		Focused: true,
	}
	lines := strings.Split(ansi.Strip(l.Render(20, 5)), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if !strings.HasPrefix(lines[0], "  [ ] A") {
		t.Fatalf("row 0 = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "› [x] B") {
		t.Fatalf("row 1 = %q", lines[1])
	}
}

func TestListViewEmpty(t *testing.T) {
	l := ListView{Empty: "nothing here"}
	if got := ansi.Strip(l.Render(20, 3)); got != "nothing here" {
		t.Fatalf("empty render = %q", got)
	}
}

func TestScrollStartKeepsCursorVisible(t *testing.T) {
	cases := []struct {
		cursor, total, height, want int
	}{
		{0, 3, 5, 0},
		{4, 10, 3, 2},
		{9, 10, 3, 7},
		{12, 10, 3, 7},
		{1, 10, 3, 0},
	}
	for _, c := range cases {
		if got := ScrollStart(c.cursor, c.total, c.height); got != c.want {
			t.Fatalf("ScrollStart(%d,%d,%d) = %d, want %d", c.cursor, c.total, c.height, got, c.want)
		}
	}
}
