package core

import tea "github.com/charmbracelet/bubbletea"

type StatusMsg struct {
	Text  string
	IsErr bool
}

// ValueChangedMsg carries a control's output after a committed change.
type ValueChangedMsg struct {
	ControlID string
	Seq       uint64
	Value     string
}

// PropertyMsg delivers a host property change to a control screen.
type PropertyMsg struct {
	Name  string
	Value string
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{Text: "", IsErr: false}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}
