package core

import (
	"fmt"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/proportion/widgets"
)

// Pane is one boxed region of a tab. Panes draw their own chrome so they can
// size their content to it.
type Pane interface {
	ID() string
	Title() string
	Scope() string
	JumpKey() rune
	Update(msg tea.Msg) tea.Cmd
	View(width, height int, selected, focused bool) string
}

// FocusAware panes are told when they gain and lose focus.
type FocusAware interface {
	OnFocus() tea.Cmd
	OnBlur() tea.Cmd
}

// PaneMeta is the fixed identity of a pane. Embedding it provides the
// accessors of Pane.
type PaneMeta struct {
	id    string
	title string
	scope string
	jump  rune
}

func NewPaneMeta(id, title, scope string, jump rune) PaneMeta {
	return PaneMeta{id: id, title: title, scope: scope, jump: jump}
}

func (p PaneMeta) ID() string    { return p.id }
func (p PaneMeta) Title() string { return p.title }
func (p PaneMeta) Scope() string { return p.scope }
func (p PaneMeta) JumpKey() rune { return p.jump }

// PaneHost owns the panes of a tab. One pane is selected at a time; enter
// focuses it and esc gives focus back. Arrow keys move the selection only
// while nothing is focused.
type PaneHost struct {
	panes    []Pane
	selected int
	focused  bool
}

// NewPaneHost panics when two panes share a jump key or one lacks a letter
// or digit key. Both are wiring mistakes.
func NewPaneHost(panes ...Pane) *PaneHost {
	owner := make(map[rune]string, len(panes))
	for _, p := range panes {
		k := jumpRune(p.JumpKey())
		if k == 0 {
			panic(fmt.Sprintf("pane %q needs a letter or digit jump key", p.ID()))
		}
		if other, dup := owner[k]; dup {
			panic(fmt.Sprintf("panes %q and %q share jump key %q", other, p.ID(), k))
		}
		owner[k] = p.ID()
	}
	return &PaneHost{panes: panes}
}

func jumpRune(r rune) rune {
	if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
		return 0
	}
	return unicode.ToLower(r)
}

func (h *PaneHost) Panes() []Pane { return append([]Pane(nil), h.panes...) }

func (h *PaneHost) active() Pane {
	if len(h.panes) == 0 {
		return nil
	}
	return h.panes[h.selected]
}

// Selected returns the selected pane and whether it has focus.
func (h *PaneHost) Selected() (Pane, bool) { return h.active(), h.focused }

func (h *PaneHost) Scope() string {
	if p := h.active(); p != nil {
		return p.Scope()
	}
	return ""
}

// CapturesInput reports whether the focused pane is taking text input.
func (h *PaneHost) CapturesInput() bool {
	if !h.focused {
		return false
	}
	c, ok := h.active().(InputCapturer)
	return ok && c.CapturesInput()
}

func (h *PaneHost) Update(msg tea.Msg) tea.Cmd {
	if p := h.active(); p != nil {
		return p.Update(msg)
	}
	return nil
}

// HandleKey applies pane navigation and reports whether it used the key.
func (h *PaneHost) HandleKey(m *Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	if len(h.panes) == 0 {
		return false, nil
	}
	if h.focused {
		if h.CapturesInput() || msg.Type != tea.KeyEsc {
			return false, nil
		}
		cmd := h.blur()
		m.SetStatus("Left pane: " + h.active().Title())
		return true, cmd
	}
	switch msg.Type {
	case tea.KeyLeft, tea.KeyUp:
		return true, h.selectPane(m, (h.selected+len(h.panes)-1)%len(h.panes))
	case tea.KeyRight, tea.KeyDown:
		return true, h.selectPane(m, (h.selected+1)%len(h.panes))
	case tea.KeyEnter:
		return true, h.focus(m)
	}
	return false, nil
}

func (h *PaneHost) selectPane(m *Model, idx int) tea.Cmd {
	if idx == h.selected {
		return nil
	}
	cmd := h.blur()
	h.selected = idx
	m.SetStatus("Selected pane: " + h.panes[idx].Title())
	return cmd
}

func (h *PaneHost) focus(m *Model) tea.Cmd {
	m.SetStatus("Focused pane: " + h.active().Title())
	if h.focused {
		return nil
	}
	h.focused = true
	if f, ok := h.active().(FocusAware); ok {
		return f.OnFocus()
	}
	return nil
}

func (h *PaneHost) blur() tea.Cmd {
	if !h.focused {
		return nil
	}
	h.focused = false
	if f, ok := h.active().(FocusAware); ok {
		return f.OnBlur()
	}
	return nil
}

// Render returns the widget for the pane with the given id.
func (h *PaneHost) Render(id string) widgets.Widget {
	for i, p := range h.panes {
		if p.ID() == id {
			selected, focused := i == h.selected, i == h.selected && h.focused
			return widgets.Func(func(w, ht int) string { return p.View(w, ht, selected, focused) })
		}
	}
	return widgets.Pane{Title: "?" + id}
}

func (h *PaneHost) JumpTargets() []JumpTarget {
	out := make([]JumpTarget, 0, len(h.panes))
	for _, p := range h.panes {
		out = append(out, JumpTarget{Key: string(jumpRune(p.JumpKey())), Label: p.Title()})
	}
	return out
}

// JumpTo selects and focuses the pane bound to key.
func (h *PaneHost) JumpTo(m *Model, key string) (bool, tea.Cmd) {
	r := []rune(key)
	if len(r) != 1 {
		return false, nil
	}
	for i, p := range h.panes {
		if jumpRune(p.JumpKey()) != jumpRune(r[0]) {
			continue
		}
		var cmds []tea.Cmd
		if i != h.selected {
			cmds = append(cmds, h.blur())
			h.selected = i
		}
		cmds = append(cmds, h.focus(m))
		return true, tea.Batch(cmds...)
	}
	return false, nil
}
