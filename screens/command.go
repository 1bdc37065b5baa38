package screens

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/proportion/core"
)

// CommandOption is one palette row. Keys is the key hint for the command in
// the scope the palette was opened from.
type CommandOption struct {
	ID       string
	Name     string
	Desc     string
	Keys     string
	Disabled bool
	Reason   string
}

func (o CommandOption) FilterValue() string { return o.Name }

var (
	commandNameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))
	commandOnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	commandKeyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f9e2af"))
	commandOffStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086")).Strikethrough(true)
)

// commandDelegate draws one option per line: name, key hint, then the
// description or, for disabled commands, why.
type commandDelegate struct{}

func (commandDelegate) Height() int                         { return 1 }
func (commandDelegate) Spacing() int                        { return 0 }
func (commandDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (commandDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	o, ok := item.(CommandOption)
	if !ok {
		return
	}
	marker, name := "  ", commandNameStyle
	if index == m.Index() {
		marker, name = "› ", commandOnStyle
	}
	if o.Disabled {
		name = commandOffStyle
	}
	line := marker + name.Render(o.Name)
	if o.Keys != "" {
		line += " " + commandKeyStyle.Render(o.Keys)
	}
	switch {
	case o.Disabled && o.Reason != "":
		line += "  " + dimStyle.Render(o.Reason)
	case o.Desc != "":
		line += "  " + dimStyle.Render(o.Desc)
	}
	fmt.Fprint(w, ansi.Truncate(line, m.Width(), "…"))
}

// CommandScreen is the command palette. search runs on every edit of the
// query; onSelect turns the chosen command id into a message.
type CommandScreen struct {
	scope    string
	search   func(query string) []CommandOption
	onSelect func(id string) tea.Msg
	input    textinput.Model
	list     list.Model
}

func NewCommandScreen(scope string, search func(query string) []CommandOption, onSelect func(id string) tea.Msg) *CommandScreen {
	in := textinput.New()
	in.Prompt = "› "
	in.PromptStyle = promptStyle
	in.Placeholder = "search commands"
	in.Focus()
	l := list.New(nil, commandDelegate{}, 60, 10)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(false)
	s := &CommandScreen{scope: scope, search: search, onSelect: onSelect, input: in, list: l}
	s.refresh()
	return s
}

func (s *CommandScreen) Title() string { return "Commands" }
func (s *CommandScreen) Scope() string { return core.ScopeCommandScreen }

// Options returns the rows currently listed.
func (s *CommandScreen) Options() []CommandOption {
	items := s.list.Items()
	out := make([]CommandOption, 0, len(items))
	for _, it := range items {
		out = append(out, it.(CommandOption))
	}
	return out
}

func (s *CommandScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	switch k.Type {
	case tea.KeyEsc:
		return s, nil, true
	case tea.KeyUp, tea.KeyCtrlP:
		s.list.CursorUp()
		return s, nil, false
	case tea.KeyDown, tea.KeyCtrlN:
		s.list.CursorDown()
		return s, nil, false
	case tea.KeyEnter:
		o, ok := s.list.SelectedItem().(CommandOption)
		switch {
		case !ok:
			return s, nil, false
		case o.Disabled:
			reason := o.Reason
			if reason == "" {
				reason = o.Name + " is not available"
			}
			return s, core.CodedStatusCmd("", reason, true), true
		case s.onSelect == nil:
			return s, nil, true
		}
		return s, func() tea.Msg { return s.onSelect(o.ID) }, true
	}
	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(k)
	if s.input.Value() != before {
		s.refresh()
	}
	return s, cmd, false
}

func (s *CommandScreen) refresh() {
	found := s.search(s.input.Value())
	items := make([]list.Item, len(found))
	for i, o := range found {
		items[i] = o
	}
	s.list.SetItems(items)
	s.list.Select(0)
}

func (s *CommandScreen) View(width, height int) string {
	s.input.Width = max(1, width-4)
	s.list.SetSize(width, max(1, height-2))
	body := s.list.View()
	if len(s.list.Items()) == 0 {
		body = dimStyle.Render("No matching commands")
	}
	return s.input.View() + "\n\n" + body
}
