package core

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/proportion/internal/store"
	"github.com/jask/proportion/widgets"
)

// Tab is one page of the shell, picked with the number keys.
type Tab interface {
	ID() string
	Title() string
	Scope() string
	Update(m *Model, msg tea.Msg) tea.Cmd
	Build(m *Model) widgets.Widget
}

// PaneKeyHandler tabs get keys before the global bindings so they can run
// pane navigation.
type PaneKeyHandler interface {
	HandlePaneKey(m *Model, msg tea.KeyMsg) (bool, tea.Cmd)
}

// InputCapturer is implemented by tabs and panes that are taking text input.
// While CapturesInput reports true, only ctrl+c bypasses them.
type InputCapturer interface {
	CapturesInput() bool
}

// Model is the root tea.Model. It owns the tabs, the popup stack and the
// status line, and dispatches store actions requested by screens.
type Model struct {
	AppName string
	Store   *store.Store

	// OpenCommandModal and OpenJumpPickerModal build the popups for the
	// command palette and jump mode. Nil disables the feature.
	OpenCommandModal    func(m *Model, scope string) Screen
	OpenJumpPickerModal func(m *Model, targets []JumpTarget) Screen

	tabs      []Tab
	activeTab int
	screens   screenStack
	keys      *KeyRegistry
	commands  *CommandRegistry

	width, height int
	status        StatusMsg
	quitting      bool
}

func NewModel(tabs []Tab, keys *KeyRegistry, commands *CommandRegistry, st *store.Store) Model {
	if keys == nil {
		keys = NewKeyRegistry(nil)
	}
	if commands == nil {
		commands = NewCommandRegistry(nil)
	}
	return Model{
		AppName:  "Proportion",
		Store:    st,
		tabs:     tabs,
		keys:     keys,
		commands: commands,
		width:    100,
		height:   32,
		status:   StatusMsg{Text: "Ready"},
	}
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.AppName)
}

func (m *Model) SetStatus(text string) {
	m.status = StatusMsg{Text: text}
}

// Status returns the status line text and whether it reports an error.
func (m Model) Status() (string, bool) {
	return m.status.Text, m.status.IsErr
}

func (m Model) currentTab() Tab {
	if len(m.tabs) == 0 {
		return nil
	}
	return m.tabs[m.activeTab]
}

// ActiveScope is the scope key bindings resolve in: the top screen if one
// is open, else the active tab's.
func (m Model) ActiveScope() string {
	if top := m.screens.top(); top != nil {
		return top.Scope()
	}
	if tab := m.currentTab(); tab != nil {
		return tab.Scope()
	}
	return "app"
}

func (m Model) ActiveTab() int   { return m.activeTab }
func (m Model) Tabs() []Tab      { return append([]Tab(nil), m.tabs...) }
func (m Model) ScreenDepth() int { return len(m.screens) }

func (m *Model) CommandRegistry() *CommandRegistry { return m.commands }

func (m *Model) SwitchTab(index int) {
	if index >= 0 && index < len(m.tabs) {
		m.activeTab = index
	}
}

// SwitchTabByID activates the tab with the given id and reports whether it
// exists.
func (m *Model) SwitchTabByID(id string) bool {
	for i, t := range m.tabs {
		if t.ID() == id {
			m.activeTab = i
			return true
		}
	}
	return false
}

func (m Model) capturesInput() bool {
	c, ok := m.currentTab().(InputCapturer)
	return ok && c.CapturesInput()
}
