package core

import tea "github.com/charmbracelet/bubbletea"

// JumpTarget is a pane that jump mode can focus with a single key.
type JumpTarget struct {
	Key   string
	Label string
}

type JumpTargetProvider interface {
	JumpTargets() []JumpTarget
	JumpToTarget(m *Model, key string) (bool, tea.Cmd)
}

// JumpTargetSelectedMsg is sent by the jump picker when a target is chosen.
type JumpTargetSelectedMsg struct {
	Key string
}

func (m *Model) openJumpPicker() {
	provider, ok := m.currentTab().(JumpTargetProvider)
	if !ok || m.OpenJumpPickerModal == nil {
		return
	}
	targets := provider.JumpTargets()
	if len(targets) == 0 {
		m.SetStatus("Nothing to jump to on " + m.currentTab().Title())
		return
	}
	m.screens.push(m.OpenJumpPickerModal(m, targets))
}

func (m *Model) jumpTo(key string) tea.Cmd {
	provider, ok := m.currentTab().(JumpTargetProvider)
	if !ok {
		return nil
	}
	if found, cmd := provider.JumpToTarget(m, key); found {
		return cmd
	}
	m.SetStatus("No pane on key " + key)
	return nil
}
