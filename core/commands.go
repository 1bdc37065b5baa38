package core

import (
	"errors"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Command is a palette entry. Action, when set, names the key binding that
// runs the same thing so the palette can show its keys.
type Command struct {
	ID          string
	Name        string
	Description string
	Action      string
	Scopes      []string
	Execute     func(m *Model) tea.Cmd
	Disabled    func(m *Model) (bool, string)
}

type CommandResult struct {
	CommandID string
	Name      string
	Desc      string
	Keys      string
	Disabled  bool
	Reason    string
}

// CommandRegistry keeps commands in registration order, which is also the
// palette order among equally good matches.
type CommandRegistry struct {
	commands []Command
	index    map[string]int
}

func NewCommandRegistry(cmds []Command) *CommandRegistry {
	reg := &CommandRegistry{index: map[string]int{}}
	for _, c := range cmds {
		reg.Register(c)
	}
	return reg
}

// Register adds c, replacing any command with the same ID in place.
func (r *CommandRegistry) Register(c Command) {
	if c.ID == "" {
		return
	}
	if i, ok := r.index[c.ID]; ok {
		r.commands[i] = c
		return
	}
	r.index[c.ID] = len(r.commands)
	r.commands = append(r.commands, c)
}

// Search returns the commands available in scope that match query. Enabled
// commands come first, then better matches.
func (r *CommandRegistry) Search(query, scope string, m *Model) []CommandResult {
	type ranked struct {
		CommandResult
		score int
	}
	var found []ranked
	for _, c := range r.commands {
		if !(KeyBinding{Scopes: c.Scopes}).appliesTo(scope) {
			continue
		}
		score, ok := matchScore(c.Name, query)
		if !ok {
			score, ok = matchScore(c.Description+" "+c.ID, query)
			score--
		}
		if !ok {
			continue
		}
		res := CommandResult{CommandID: c.ID, Name: c.Name, Desc: c.Description}
		if c.Disabled != nil {
			res.Disabled, res.Reason = c.Disabled(m)
		}
		if m != nil && m.keys != nil && c.Action != "" {
			res.Keys = strings.Join(m.keys.KeysFor(c.Action, scope), "/")
		}
		found = append(found, ranked{res, score})
	}
	slices.SortStableFunc(found, func(a, b ranked) int {
		if a.Disabled != b.Disabled {
			if a.Disabled {
				return 1
			}
			return -1
		}
		return b.score - a.score
	})
	out := make([]CommandResult, len(found))
	for i, f := range found {
		out[i] = f.CommandResult
	}
	return out
}

func (r *CommandRegistry) Execute(id string, m *Model) tea.Cmd {
	i, ok := r.index[id]
	if !ok {
		return StatusCmd("Unknown command: " + id)
	}
	c := r.commands[i]
	if c.Disabled != nil {
		if off, reason := c.Disabled(m); off {
			if reason == "" {
				reason = c.Name + " is not available"
			}
			return ErrorCmd(errors.New(reason))
		}
	}
	if c.Execute == nil {
		return nil
	}
	return c.Execute(m)
}
