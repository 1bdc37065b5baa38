package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestSearchRanksAndScopes(t *testing.T) {
	reg := NewCommandRegistry([]Command{
		{ID: "switch-bank", Name: "Switch to bank", Scopes: []string{"*"}},
		{ID: "bankrupt", Name: "Bankrupt", Action: "bankrupt", Scopes: []string{"*"},
			Disabled: func(m *Model) (bool, string) { return m.Store == nil, "no store" }},
		{ID: "deposit", Name: "Deposit", Action: "deposit", Scopes: []string{"*"}},
		{ID: "add-tag", Name: "Add tag", Description: "new column", Scopes: []string{ScopeTags}},
	})
	m := NewModel(nil, NewKeyRegistry(DefaultKeyBindings()), reg, nil)

	res := reg.Search("bank", ScopeBankPanel, &m)
	if len(res) != 2 || res[0].CommandID != "switch-bank" || res[1].CommandID != "bankrupt" {
		t.Fatalf("disabled commands sort last: %+v", res)
	}
	if !res[1].Disabled || res[1].Reason != "no store" || res[1].Keys != "b" {
		t.Fatalf("unexpected bankrupt result: %+v", res[1])
	}

	if res := reg.Search("dp", ScopeBankPanel, &m); len(res) != 1 || res[0].CommandID != "deposit" || res[0].Keys != "d" {
		t.Fatalf("scattered match should find deposit: %+v", res)
	}
	if res := reg.Search("", ScopeTable, &m); len(res) != 3 || res[1].CommandID != "deposit" || res[2].CommandID != "bankrupt" {
		t.Fatalf("table scope should not see add-tag: %+v", res)
	}
	if res := reg.Search("column", ScopeTags, &m); len(res) != 1 || res[0].CommandID != "add-tag" {
		t.Fatalf("description should be searched: %+v", res)
	}
}

func TestRegisterReplacesInPlace(t *testing.T) {
	reg := NewCommandRegistry([]Command{{ID: "a", Name: "Alpha"}, {ID: "b", Name: "Beta"}})
	reg.Register(Command{ID: "a", Name: "Again"})
	reg.Register(Command{Name: "no id"})
	res := reg.Search("", "x", nil)
	if len(res) != 2 || res[0].Name != "Again" || res[1].Name != "Beta" {
		t.Fatalf("unexpected order: %+v", res)
	}
}

func TestExecuteUnknownAndDisabled(t *testing.T) {
	ran := false
	reg := NewCommandRegistry([]Command{
		{ID: "off", Name: "Bankrupt", Disabled: func(*Model) (bool, string) { return true, "" }},
		{ID: "noop", Name: "Noop"},
		{ID: "run", Name: "Run", Execute: func(*Model) tea.Cmd { ran = true; return nil }},
	})
	m := NewModel(nil, NewKeyRegistry(nil), reg, nil)
	if msg, ok := reg.Execute("missing", &m)().(StatusMsg); !ok || msg.Text != "Unknown command: missing" {
		t.Fatalf("unexpected unknown command result: %+v", msg)
	}
	if msg, ok := reg.Execute("off", &m)().(StatusMsg); !ok || !msg.IsErr || msg.Text != "Bankrupt is not available" {
		t.Fatalf("unexpected disabled result: %+v", msg)
	}
	if cmd := reg.Execute("noop", &m); cmd != nil {
		t.Fatalf("expected nil cmd for command without Execute")
	}
	reg.Execute("run", &m)
	if !ran {
		t.Fatalf("run should execute")
	}
}
