package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"

	"github.com/jask/formcontrols/core"
	"github.com/jask/formcontrols/core/duallist"
	"github.com/jask/formcontrols/internal/bridge"
	"github.com/jask/formcontrols/widgets"
)

const headerStyleName = "duallist.header"

// DualList is the interactive rendition of one dual listbox control. The
// control owns the partition; the screen only keeps cursor, highlight and
// filter state for each side.
type DualList struct {
	control   *bridge.Control
	keys      *core.KeyRegistry
	styles    *widgets.StyleRegistry
	logger    *zap.Logger
	lists     [2]*core.Listbox
	focus     duallist.Side
	filtering bool
	showHelp  bool
	status    string
	statusErr bool
	width     int
	height    int
	quitting  bool
	events    *[]bridge.Event
	cancel    func()
}

func NewDualList(control *bridge.Control, keys *core.KeyRegistry, logger *zap.Logger) DualList {
	if keys == nil {
		keys = core.NewKeyRegistry(core.DefaultKeyBindings())
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	p := control.Presentation()
	eng := control.Engine()
	m := DualList{
		control: control,
		keys:    keys,
		styles:  widgets.NewStyleRegistry(),
		logger:  logger.With(zap.String("screen", "duallist")),
		lists: [2]*core.Listbox{
			core.NewListbox(p.LeftTitle, eng.Labels(duallist.Available)),
			core.NewListbox(p.RightTitle, eng.Labels(duallist.Selected)),
		},
		focus:  duallist.Available,
		status: "Ready",
		width:  80,
		height: 24,
		events: &[]bridge.Event{},
	}
	events := m.events
	m.cancel = control.OnEvent(func(e bridge.Event) { *events = append(*events, e) })
	m.applyPresentation()
	return m
}

func (m DualList) Init() tea.Cmd {
	return nil
}

// Close detaches the screen from its control.
func (m DualList) Close() {
	if m.cancel != nil {
		m.cancel()
	}
}

func (m DualList) Control() *bridge.Control { return m.control }
func (m DualList) Value() string            { return m.control.Value() }
func (m DualList) Focus() duallist.Side     { return m.focus }

func (m DualList) List(side duallist.Side) *core.Listbox {
	if !side.Valid() {
		return nil
	}
	return m.lists[side]
}

func (m DualList) Status() (string, bool) {
	return m.status, m.statusErr
}

func (m DualList) Scope() string {
	switch {
	case m.showHelp:
		return core.ScopeHelp
	case m.filtering:
		return core.ScopeFilter
	default:
		return core.ScopeListbox
	}
}

func (m DualList) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case core.StatusMsg:
		m.status, m.statusErr = msg.Text, msg.IsErr
		return m, nil
	case core.PropertyMsg:
		if err := m.control.SetProperty(msg.Name, msg.Value); err != nil {
			return m, core.ErrorCmd(err)
		}
		m.applyPresentation()
		m.sync()
		return m, m.drain()
	case core.ValueChangedMsg:
		if msg.ControlID != m.control.ID() {
			return m, nil
		}
		m.setStatus(valueStatus(msg.Value))
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m DualList) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	scope := m.Scope()
	action, _ := m.keys.Action(msg, scope)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	switch scope {
	case core.ScopeHelp:
		if action == core.ActionToggleHelp {
			m.showHelp = false
		}
		return m, nil
	case core.ScopeFilter:
		return m.handleFilterKey(msg, action)
	}

	list := m.lists[m.focus]
	switch action {
	case core.ActionToggleHelp:
		m.showHelp = true
	case core.ActionFocusNext:
		m.focus = m.focus.Other()
	case core.ActionFocusLeft:
		m.focus = duallist.Available
	case core.ActionFocusRight:
		m.focus = duallist.Selected
	case core.ActionHighlight:
		list.Toggle()
	case core.ActionClearHL:
		list.ClearHighlights()
	case core.ActionFilter:
		m.filtering = true
	case core.ActionFilterCancel:
		list.SetQuery("")
	case core.ActionToggleReadOnly:
		m.control.SetReadOnly(!m.control.ReadOnly())
		if m.control.ReadOnly() {
			return m, core.StatusCmd("Read-only")
		}
		return m, core.StatusCmd("Editable")
	case core.ActionMoveSelected:
		return m.moveSelected(m.focus)
	case core.ActionMoveRight:
		return m.moveSelected(duallist.Available)
	case core.ActionMoveLeft:
		return m.moveSelected(duallist.Selected)
	case core.ActionMoveAll:
		moved, err := m.control.MoveAll(m.focus)
		return m.afterMove(moved, err)
	default:
		list.HandleKey(msg.String())
	}
	return m, nil
}

func (m DualList) handleFilterKey(msg tea.KeyMsg, action string) (tea.Model, tea.Cmd) {
	list := m.lists[m.focus]
	switch action {
	case core.ActionFilterApply:
		m.filtering = false
		return m, core.StatusCmd(fmt.Sprintf("Filter %q: %d of %d", list.Query(), len(list.Visible()), list.Len()))
	case core.ActionFilterCancel:
		m.filtering = false
		list.SetQuery("")
	default:
		list.HandleQueryKey(msg.String())
	}
	return m, nil
}

// moveSelected moves side's highlighted labels, or its cursor row when
// nothing is highlighted.
func (m DualList) moveSelected(side duallist.Side) (tea.Model, tea.Cmd) {
	moved, err := m.control.MoveSelected(side, m.lists[side].Targets())
	return m.afterMove(moved, err)
}

func (m DualList) afterMove(moved bool, err error) (tea.Model, tea.Cmd) {
	if err != nil {
		m.logger.Warn("move rejected", zap.Error(err))
		return m, core.ErrorCmd(err)
	}
	if !moved {
		return m, core.StatusCmd("Nothing to move")
	}
	m.sync()
	return m, m.drain()
}

func (m *DualList) sync() {
	eng := m.control.Engine()
	m.lists[duallist.Available].SetItems(eng.Labels(duallist.Available))
	m.lists[duallist.Selected].SetItems(eng.Labels(duallist.Selected))
}

// drain turns queued control events into a message for the latest one. At
// most one engine operation runs per update, so nothing is skipped in
// practice.
func (m *DualList) drain() tea.Cmd {
	events := *m.events
	if len(events) == 0 {
		return nil
	}
	last := events[len(events)-1]
	*m.events = events[:0]
	m.logger.Debug("value changed", zap.Uint64("seq", last.Seq), zap.Int("queued", len(events)))
	return func() tea.Msg {
		return core.ValueChangedMsg{ControlID: last.ControlID, Seq: last.Seq, Value: last.Detail}
	}
}

func (m *DualList) applyPresentation() {
	p := m.control.Presentation()
	m.lists[duallist.Available].SetTitle(p.LeftTitle)
	m.lists[duallist.Selected].SetTitle(p.RightTitle)
	if strings.TrimSpace(p.HeaderColor) == "" {
		m.styles.Remove(headerStyleName)
		return
	}
	style := lipgloss.NewStyle().
		Bold(true).
		Background(lipgloss.Color(p.HeaderColor)).
		Foreground(widgets.HeaderForeground(p.HeaderColor))
	if m.styles.Apply(headerStyleName, style) {
		m.logger.Debug("header style applied", zap.String("color", p.HeaderColor))
	}
}

func (m *DualList) setStatus(text string) {
	m.status = text
	m.statusErr = false
}

func valueStatus(value string) string {
	if value == "" {
		return "Value: (empty)"
	}
	return "Value: " + value
}

func (m DualList) View() string {
	if m.quitting {
		return ""
	}
	width, height := max(1, m.width), max(1, m.height)
	body := widgets.HStack{
		Widgets: []widgets.Widget{m.pane(duallist.Available), m.pane(duallist.Selected)},
		Gap:     1,
	}
	view := widgets.VStack{
		Widgets: []widgets.Widget{
			widgets.Text(m.renderHeader(width)),
			body,
			widgets.Text(core.RenderStatusBar(m.status, m.statusErr, width)),
			widgets.Text(core.RenderFooter(m.keys, m.Scope(), width)),
		},
		Fixed: []int{1, 0, 1, 1},
	}.Render(width, height)
	if m.showHelp {
		view = widgets.RenderPopup(view, "Keys", m.helpBody(), width, height)
	}
	return view
}

func (m DualList) renderHeader(width int) string {
	style, ok := m.styles.Style(headerStyleName)
	if !ok {
		style = lipgloss.NewStyle().Bold(true)
	}
	title := " " + m.control.Meta().ControlName
	if m.control.ReadOnly() {
		title += " · read-only"
	}
	title = ansi.Truncate(title, width, "")
	return style.Width(width).MaxWidth(width).Render(title)
}

func (m DualList) pane(side duallist.Side) widgets.Widget {
	list := m.lists[side]
	visible := list.Visible()
	rows := make([]widgets.ListRow, 0, len(visible))
	for _, label := range visible {
		rows = append(rows, widgets.ListRow{Label: label, Highlighted: list.IsHighlighted(label)})
	}
	focused := m.focus == side && !m.showHelp

	empty := "No options"
	if side == duallist.Selected {
		empty = "Nothing selected"
	}
	caption := fmt.Sprintf("%d", list.Len())
	if q := list.Query(); q != "" || (focused && m.filtering) {
		caption = fmt.Sprintf("/%s %d/%d", q, len(visible), list.Len())
		empty = "No matches"
	}
	return sidePane{
		pane: widgets.Pane{
			Title:       list.Title(),
			Caption:     caption,
			HeaderColor: m.control.Presentation().HeaderColor,
			Focused:     focused,
		},
		list: widgets.ListView{Rows: rows, Cursor: list.Cursor(), Focused: focused, Empty: empty},
	}
}

func (m DualList) helpBody() string {
	entries := core.HelpEntries(m.keys, core.ScopeListbox, true)
	keyWidth := 0
	for _, h := range entries {
		keyWidth = max(keyWidth, ansi.StringWidth(h.Key))
	}
	lines := make([]string, 0, len(entries))
	for _, h := range entries {
		lines = append(lines, h.Key+strings.Repeat(" ", keyWidth-ansi.StringWidth(h.Key)+2)+h.Desc)
	}
	return strings.Join(lines, "\n")
}

// sidePane sizes the list to the pane's inner box.
type sidePane struct {
	pane widgets.Pane
	list widgets.ListView
}

func (p sidePane) Render(width, height int) string {
	p.pane.Content = p.list.Render(max(1, width-4), max(1, height-2))
	return p.pane.Render(width, height)
}
