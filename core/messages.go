package core

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/proportion/internal/store"
)

// StatusMsg replaces the status line. Code, when set, is shown as a
// bracketed prefix.
type StatusMsg struct {
	Text  string
	Code  string
	IsErr bool
}

type PushScreenMsg struct {
	Screen Screen
}

// CommandExecuteMsg runs a registered command by id.
type CommandExecuteMsg struct {
	CommandID string
}

// DispatchMsg asks the model to dispatch Action on its store. Screens and
// commands return it instead of touching the store from a tea.Cmd.
type DispatchMsg struct {
	Action store.Action
	Status string
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func CodedStatusCmd(code, text string, isErr bool) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text, Code: code, IsErr: isErr} }
}

// ErrorCmd reports err on the status line. A nil err clears it.
func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}

func DispatchCmd(a store.Action, status string) tea.Cmd {
	return func() tea.Msg { return DispatchMsg{Action: a, Status: status} }
}

func PushScreenCmd(s Screen) tea.Cmd {
	return func() tea.Msg { return PushScreenMsg{Screen: s} }
}
