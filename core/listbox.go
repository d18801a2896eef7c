package core

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

type ListboxAction int

const (
	ListboxActionNone ListboxAction = iota
	ListboxActionMoved
	ListboxActionToggled
	ListboxActionFiltered
)

// Listbox is the interaction state of one side of the dual listbox: the
// labels it shows, a cursor, the highlight set and a filter query. It never
// reorders labels; filtering only hides rows.
type Listbox struct {
	title       string
	items       []string
	visible     []int
	highlighted map[string]bool
	query       string
	cursor      int
}

func NewListbox(title string, items []string) *Listbox {
	l := &Listbox{title: strings.TrimSpace(title), highlighted: map[string]bool{}}
	l.SetItems(items)
	return l
}

func (l *Listbox) Title() string {
	if l == nil {
		return ""
	}
	return l.title
}

func (l *Listbox) SetTitle(title string) {
	if l == nil {
		return
	}
	l.title = strings.TrimSpace(title)
}

func (l *Listbox) Query() string {
	if l == nil {
		return ""
	}
	return l.query
}

func (l *Listbox) Cursor() int {
	if l == nil {
		return 0
	}
	return l.cursor
}

// SetItems replaces the labels, dropping highlights for labels that are
// gone.
func (l *Listbox) SetItems(items []string) {
	if l == nil {
		return
	}
	l.items = append([]string(nil), items...)
	present := make(map[string]bool, len(items))
	for _, it := range items {
		present[it] = true
	}
	for label := range l.highlighted {
		if !present[label] {
			delete(l.highlighted, label)
		}
	}
	l.rebuildVisible()
}

func (l *Listbox) SetQuery(q string) {
	if l == nil {
		return
	}
	l.query = q
	l.rebuildVisible()
}

// Len is the number of labels, filtered or not.
func (l *Listbox) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// Visible returns the labels that pass the filter, in list order.
func (l *Listbox) Visible() []string {
	if l == nil {
		return nil
	}
	out := make([]string, 0, len(l.visible))
	for _, idx := range l.visible {
		out = append(out, l.items[idx])
	}
	return out
}

func (l *Listbox) IsHighlighted(label string) bool {
	if l == nil {
		return false
	}
	return l.highlighted[label]
}

// Highlighted returns highlighted labels in list order, one entry per
// distinct label.
func (l *Listbox) Highlighted() []string {
	if l == nil {
		return nil
	}
	out := make([]string, 0, len(l.highlighted))
	seen := make(map[string]bool, len(l.highlighted))
	for _, it := range l.items {
		if l.highlighted[it] && !seen[it] {
			seen[it] = true
			out = append(out, it)
		}
	}
	return out
}

// Targets is what a "move selected" acts on: the highlighted labels that
// pass the filter, or the cursor row when none of them do. Highlights hidden
// by the filter are never moved.
func (l *Listbox) Targets() []string {
	if hl := l.VisibleHighlighted(); len(hl) > 0 {
		return hl
	}
	if cur, ok := l.CurrentItem(); ok {
		return []string{cur}
	}
	return nil
}

// VisibleHighlighted is Highlighted restricted to rows the filter shows.
func (l *Listbox) VisibleHighlighted() []string {
	if l == nil {
		return nil
	}
	var out []string
	seen := make(map[string]bool, len(l.highlighted))
	for _, idx := range l.visible {
		it := l.items[idx]
		if l.highlighted[it] && !seen[it] {
			seen[it] = true
			out = append(out, it)
		}
	}
	return out
}

func (l *Listbox) CurrentItem() (string, bool) {
	if l == nil || len(l.visible) == 0 {
		return "", false
	}
	idx := min(max(l.cursor, 0), len(l.visible)-1)
	return l.items[l.visible[idx]], true
}

func (l *Listbox) ClearHighlights() {
	if l == nil {
		return
	}
	clear(l.highlighted)
}

func (l *Listbox) Toggle() bool {
	cur, ok := l.CurrentItem()
	if !ok {
		return false
	}
	if l.highlighted == nil {
		l.highlighted = map[string]bool{}
	}
	if l.highlighted[cur] {
		delete(l.highlighted, cur)
	} else {
		l.highlighted[cur] = true
	}
	return true
}

func (l *Listbox) CursorUp() {
	if l == nil {
		return
	}
	if l.cursor > 0 {
		l.cursor--
	}
}

func (l *Listbox) CursorDown() {
	if l == nil {
		return
	}
	maxIdx := len(l.visible) - 1
	if maxIdx < 0 {
		l.cursor = 0
		return
	}
	if l.cursor < maxIdx {
		l.cursor++
	}
}

// HandleKey covers the keys every listbox understands. Anything else is left
// to the caller.
func (l *Listbox) HandleKey(keyName string) ListboxAction {
	if l == nil {
		return ListboxActionNone
	}
	before := l.cursor
	switch keyName {
	case "k", "up":
		l.CursorUp()
	case "j", "down":
		l.CursorDown()
	case "home", "g":
		l.cursor = 0
	case "end", "G":
		l.cursor = max(0, len(l.visible)-1)
	case " ", "space":
		if l.Toggle() {
			return ListboxActionToggled
		}
		return ListboxActionNone
	default:
		return ListboxActionNone
	}
	if l.cursor != before {
		return ListboxActionMoved
	}
	return ListboxActionNone
}

// HandleQueryKey edits the filter query.
func (l *Listbox) HandleQueryKey(keyName string) ListboxAction {
	if l == nil {
		return ListboxActionNone
	}
	switch {
	case keyName == "backspace":
		if l.query == "" {
			return ListboxActionNone
		}
		_, size := utf8.DecodeLastRuneInString(l.query)
		l.SetQuery(l.query[:len(l.query)-size])
	case keyName == "space":
		l.SetQuery(l.query + " ")
	case isPrintableKey(keyName):
		l.SetQuery(l.query + keyName)
	default:
		return ListboxActionNone
	}
	return ListboxActionFiltered
}

func (l *Listbox) rebuildVisible() {
	q := strings.TrimSpace(l.query)
	l.visible = l.visible[:0]
	for idx, it := range l.items {
		if MatchLabel(it, q) {
			l.visible = append(l.visible, idx)
		}
	}
	maxIdx := len(l.visible) - 1
	if maxIdx < 0 {
		l.cursor = 0
	} else if l.cursor > maxIdx {
		l.cursor = maxIdx
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
}

// MatchLabel reports whether label passes the filter query: a
// case-insensitive subsequence match, or for queries of three or more
// runes, a label (or label word) one edit away from the query.
func MatchLabel(label, query string) bool {
	if query == "" {
		return true
	}
	labelLower := strings.ToLower(label)
	queryLower := strings.ToLower(query)
	if isSubsequence(labelLower, queryLower) {
		return true
	}
	if utf8.RuneCountInString(queryLower) < 3 {
		return false
	}
	if levenshtein.ComputeDistance(labelLower, queryLower) <= 1 {
		return true
	}
	for _, word := range strings.Fields(labelLower) {
		if levenshtein.ComputeDistance(word, queryLower) <= 1 {
			return true
		}
	}
	return false
}

func isSubsequence(s, sub string) bool {
	rs := []rune(s)
	i := 0
	for _, r := range sub {
		for i < len(rs) && rs[i] != r {
			i++
		}
		if i == len(rs) {
			return false
		}
		i++
	}
	return true
}

func isPrintableKey(keyName string) bool {
	if utf8.RuneCountInString(keyName) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(keyName)
	return r >= 32 && r != 127
}
