package screens

import (
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/proportion/core"
	"github.com/jask/proportion/widgets"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
)

// PickerScreen is a filterable list in a popup. With shortcuts on, typing an
// item's one-rune ID picks it immediately instead of filtering.
type PickerScreen struct {
	title     string
	scope     string
	picker    *core.Picker
	items     []core.PickerItem
	shortcuts bool
	onSelect  func(core.PickerItem) tea.Msg
}

func NewPickerScreen(title, scope string, items []core.PickerItem, onSelect func(core.PickerItem) tea.Msg) *PickerScreen {
	return &PickerScreen{
		title:    title,
		scope:    scope,
		picker:   core.NewPicker(items),
		items:    items,
		onSelect: onSelect,
	}
}

// NewJumpPicker offers the panes of the active tab by jump key.
func NewJumpPicker(targets []core.JumpTarget) *PickerScreen {
	items := make([]core.PickerItem, 0, len(targets))
	for _, t := range targets {
		items = append(items, core.PickerItem{
			ID:     t.Key,
			Label:  "[" + t.Key + "] " + t.Label,
			Search: t.Label,
		})
	}
	s := NewPickerScreen("Jump to pane", core.ScopeJumpScreen, items, func(it core.PickerItem) tea.Msg {
		return core.JumpTargetSelectedMsg{Key: it.ID}
	})
	s.shortcuts = true
	return s
}

func (s *PickerScreen) Title() string { return s.title }
func (s *PickerScreen) Scope() string { return s.scope }

func (s *PickerScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	if it, hit := s.shortcut(k); hit {
		return s, s.selected(it), true
	}
	res := s.picker.HandleKey(k)
	switch res.Action {
	case core.PickerActionCancelled:
		return s, nil, true
	case core.PickerActionSelected:
		return s, s.selected(res.Item), true
	}
	return s, nil, false
}

func (s *PickerScreen) shortcut(k tea.KeyMsg) (core.PickerItem, bool) {
	if !s.shortcuts || k.Type != tea.KeyRunes || len(k.Runes) != 1 {
		return core.PickerItem{}, false
	}
	id := string(unicode.ToLower(k.Runes[0]))
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return core.PickerItem{}, false
}

func (s *PickerScreen) selected(it core.PickerItem) tea.Cmd {
	if s.onSelect == nil {
		return nil
	}
	return func() tea.Msg { return s.onSelect(it) }
}

func (s *PickerScreen) View(width, height int) string {
	query := s.picker.Query()
	if query == "" {
		query = dimStyle.Render("type to filter")
	}
	shown := s.picker.Items()
	rows := make([]string, 0, len(shown))
	for _, it := range shown {
		row := it.Label
		if it.Meta != "" {
			row += "  " + dimStyle.Render(it.Meta)
		}
		rows = append(rows, row)
	}
	list := widgets.List{
		Items:  rows,
		Cursor: s.picker.Cursor(),
		Marker: true,
		Empty:  "No matches",
	}.Render(width, max(1, height-2))
	return widgets.Clip(promptStyle.Render("› ")+query+"\n\n"+list, width, height)
}

// Query is the current filter text.
func (s *PickerScreen) Query() string { return strings.TrimSpace(s.picker.Query()) }
