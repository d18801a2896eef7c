package core

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Scopes a binding can be limited to.
const (
	ScopeListbox = "listbox"
	ScopeFilter  = "filter"
	ScopeHelp    = "help"
)

// Actions understood by the dual listbox screen.
const (
	ActionQuit           = "quit"
	ActionFocusNext      = "focus-next"
	ActionFocusLeft      = "focus-left"
	ActionFocusRight     = "focus-right"
	ActionHighlight      = "highlight"
	ActionMoveSelected   = "move-selected"
	ActionMoveRight      = "move-right"
	ActionMoveLeft       = "move-left"
	ActionMoveAll        = "move-all"
	ActionClearHL        = "clear-highlights"
	ActionFilter         = "filter"
	ActionFilterApply    = "filter-apply"
	ActionFilterCancel   = "filter-cancel"
	ActionToggleHelp     = "help"
	ActionToggleReadOnly = "toggle-read-only"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
	Hidden      bool
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	got, ok := r.Action(msg, scope)
	return ok && got == action
}

// Action resolves a key press to the first binding registered for scope.
func (r *KeyRegistry) Action(msg tea.KeyMsg, scope string) (string, bool) {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return b.Action, true
			}
		}
	}
	return "", false
}

func normalizeKey(k string) string {
	if k == " " {
		return "space"
	}
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}

func DefaultKeyBindings() []KeyBinding {
	list := []string{ScopeListbox}
	return []KeyBinding{
		{Keys: []string{"ctrl+c"}, Action: ActionQuit, Description: "quit", Scopes: []string{"*"}, Hidden: true},
		{Keys: []string{"q"}, Action: ActionQuit, Description: "quit", Scopes: []string{ScopeListbox, ScopeHelp}},
		{Keys: []string{"esc"}, Action: ActionFilterCancel, Description: "cancel", Scopes: []string{ScopeFilter}},
		{Keys: []string{"enter"}, Action: ActionFilterApply, Description: "apply filter", Scopes: []string{ScopeFilter}},
		{Keys: []string{"?", "esc"}, Action: ActionToggleHelp, Description: "close", Scopes: []string{ScopeHelp}},
		{Keys: []string{"tab", "shift+tab"}, Action: ActionFocusNext, Description: "switch list", Scopes: list},
		{Keys: []string{"h", "left"}, Action: ActionFocusLeft, Description: "left list", Scopes: list, Hidden: true},
		{Keys: []string{"l", "right"}, Action: ActionFocusRight, Description: "right list", Scopes: list, Hidden: true},
		{Keys: []string{"space"}, Action: ActionHighlight, Description: "highlight", Scopes: list},
		{Keys: []string{"enter"}, Action: ActionMoveSelected, Description: "move", Scopes: list},
		{Keys: []string{">"}, Action: ActionMoveRight, Description: "move right", Scopes: list, Hidden: true},
		{Keys: []string{"<"}, Action: ActionMoveLeft, Description: "move left", Scopes: list, Hidden: true},
		{Keys: []string{"a"}, Action: ActionMoveAll, Description: "move all", Scopes: list},
		{Keys: []string{"x"}, Action: ActionClearHL, Description: "clear", Scopes: list, Hidden: true},
		{Keys: []string{"/"}, Action: ActionFilter, Description: "filter", Scopes: list},
		{Keys: []string{"esc"}, Action: ActionFilterCancel, Description: "clear filter", Scopes: list, Hidden: true},
		{Keys: []string{"ctrl+r"}, Action: ActionToggleReadOnly, Description: "read-only", Scopes: list, Hidden: true},
		{Keys: []string{"?"}, Action: ActionToggleHelp, Description: "help", Scopes: list},
	}
}
