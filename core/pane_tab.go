package core

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/proportion/widgets"
)

// LayoutBuilder arranges a tab's panes. Use host.Render to place each one.
type LayoutBuilder func(host *PaneHost) widgets.Widget

// PaneTab is a tab made of panes under a PaneHost.
type PaneTab struct {
	id     string
	title  string
	host   *PaneHost
	layout LayoutBuilder
}

// NewPaneTab builds a tab over panes. A nil layout stacks them evenly.
func NewPaneTab(id, title string, layout LayoutBuilder, panes ...Pane) *PaneTab {
	return &PaneTab{id: id, title: title, host: NewPaneHost(panes...), layout: layout}
}

func (t *PaneTab) ID() string          { return t.id }
func (t *PaneTab) Title() string       { return t.title }
func (t *PaneTab) Scope() string       { return t.host.Scope() }
func (t *PaneTab) Host() *PaneHost     { return t.host }
func (t *PaneTab) Panes() []Pane       { return t.host.Panes() }
func (t *PaneTab) CapturesInput() bool { return t.host.CapturesInput() }

func (t *PaneTab) JumpTargets() []JumpTarget { return t.host.JumpTargets() }

func (t *PaneTab) JumpToTarget(m *Model, key string) (bool, tea.Cmd) {
	return t.host.JumpTo(m, key)
}

func (t *PaneTab) HandlePaneKey(m *Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	return t.host.HandleKey(m, msg)
}

func (t *PaneTab) Update(_ *Model, msg tea.Msg) tea.Cmd { return t.host.Update(msg) }

func (t *PaneTab) Build(_ *Model) widgets.Widget {
	if t.layout != nil {
		return t.layout(t.host)
	}
	parts := make([]widgets.Widget, 0, len(t.host.panes))
	for _, p := range t.host.panes {
		parts = append(parts, t.host.Render(p.ID()))
	}
	return widgets.Split{Parts: parts}
}
