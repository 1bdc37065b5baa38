package core

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		return m, cmd
	case StatusMsg:
		m.status = msg
		return m, nil
	case DispatchMsg:
		m.dispatch(msg)
		return m, nil
	case PushScreenMsg:
		m.screens.push(msg.Screen)
		return m, nil
	case CommandExecuteMsg:
		cmd := m.commands.Execute(msg.CommandID, &m)
		return m, cmd
	case JumpTargetSelectedMsg:
		cmd := m.jumpTo(msg.Key)
		return m, cmd
	}
	var cmd tea.Cmd
	if m.screens.top() != nil {
		cmd = m.screens.update(msg)
	} else {
		cmd = m.updateTab(msg)
	}
	return m, cmd
}

func (m *Model) dispatch(msg DispatchMsg) {
	if m.Store == nil || msg.Action == nil {
		return
	}
	m.Store.Dispatch(msg.Action)
	if msg.Status != "" {
		m.SetStatus(msg.Status)
	}
}

func (m *Model) updateTab(msg tea.Msg) tea.Cmd {
	if tab := m.currentTab(); tab != nil {
		return tab.Update(m, msg)
	}
	return nil
}

// handleKey routes a key: ctrl+c always quits, an open screen takes
// everything else, and a pane taking text input takes everything else after
// that. Otherwise global bindings and pane navigation get their turn before
// the tab sees the key.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return tea.Quit
	}
	if m.screens.top() != nil {
		return m.screens.update(msg)
	}
	if m.capturesInput() {
		return m.updateTab(msg)
	}

	scope := m.ActiveScope()
	switch {
	case m.keys.IsAction(msg, "quit", scope):
		m.quitting = true
		return tea.Quit
	case m.keys.IsAction(msg, "jump", scope):
		m.openJumpPicker()
		return nil
	}
	if h, ok := m.currentTab().(PaneKeyHandler); ok {
		if used, cmd := h.HandlePaneKey(m, msg); used {
			return cmd
		}
	}
	if m.OpenCommandModal != nil && m.keys.IsAction(msg, "open-command-palette", scope) {
		m.screens.push(m.OpenCommandModal(m, scope))
		return nil
	}
	for i := range m.tabs {
		if m.keys.IsAction(msg, "switch-tab-"+strconv.Itoa(i+1), scope) {
			m.SwitchTab(i)
			return nil
		}
	}
	return m.updateTab(msg)
}
