package screens

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/proportion/core"
)

type submitted struct{ values map[string]string }

func typeInto(s core.Screen, text string) {
	for _, r := range text {
		s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestEditorValidationKeepsScreenOpen(t *testing.T) {
	fields := []EditorField{{
		Key:   "tag",
		Label: "Tag",
		Validate: func(v string) error {
			if strings.TrimSpace(v) == "" {
				return errors.New("tag is required")
			}
			if v == "温度" {
				return fmt.Errorf("tag %q already exists", v)
			}
			return nil
		},
	}}
	s := NewEditorScreen("Add tag", fields, func(v map[string]string) tea.Msg { return submitted{v} })
	if s.Scope() != core.ScopeEditorScreen || s.Title() != "Add tag" {
		t.Fatalf("scope = %s title = %s", s.Scope(), s.Title())
	}

	_, cmd, done := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if done || cmd != nil {
		t.Fatalf("invalid submit must keep the editor open")
	}
	if s.Err() != "Tag is required." || !strings.Contains(ansi.Strip(s.View(60, 12)), "Tag is required.") {
		t.Fatalf("expected validation message, got %q", s.Err())
	}

	typeInto(s, "温度")
	s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if s.Err() != `Tag "温度" already exists.` {
		t.Fatalf("duplicate message = %q", s.Err())
	}

	s.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	s.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	typeInto(s, "风速")
	_, cmd, done = s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !done || cmd == nil {
		t.Fatalf("valid submit should close the editor")
	}
	msg, ok := cmd().(submitted)
	if !ok || msg.values["tag"] != "风速" {
		t.Fatalf("unexpected submit msg: %+v", msg)
	}
}

func TestSentence(t *testing.T) {
	for in, want := range map[string]string{
		"amount must not be negative": "Amount must not be negative.",
		"Already done.":               "Already done.",
		"  why?  ":                    "Why?",
		"温度 is required":              "温度 is required.",
		"":                            "",
	} {
		if got := sentence(in); got != want {
			t.Fatalf("sentence(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEditorTabCyclesAndEscCancels(t *testing.T) {
	called := false
	s := NewEditorScreen("Range", []EditorField{{Key: "from", Label: "From"}, {Key: "to", Label: "To"}}, func(map[string]string) tea.Msg {
		called = true
		return nil
	})
	s.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeInto(s, "9")
	s.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	typeInto(s, "1")
	_, cmd, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := cmd(); got != nil || !called {
		t.Fatalf("enter should submit")
	}
	if v := s.inputs[0].Value() + s.inputs[1].Value(); v != "19" {
		t.Fatalf("fields = %q", v)
	}

	called = false
	_, cmd, done := s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !done || cmd != nil || called {
		t.Fatalf("esc should close without submitting")
	}
}

func TestJumpPickerShortcutsAndFilter(t *testing.T) {
	s := NewJumpPicker([]core.JumpTarget{{Key: "t", Label: "Proportion"}, {Key: "g", Label: "Tags"}})
	if view := ansi.Strip(s.View(40, 10)); !strings.Contains(view, "[t] Proportion") || !strings.Contains(view, "[g] Tags") {
		t.Fatalf("targets missing from view:\n%s", view)
	}
	_, cmd, done := s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
	if !done || cmd == nil {
		t.Fatalf("a target key should jump at once")
	}
	if msg, ok := cmd().(core.JumpTargetSelectedMsg); !ok || msg.Key != "g" {
		t.Fatalf("unexpected msg %+v", msg)
	}

	s = NewJumpPicker([]core.JumpTarget{{Key: "t", Label: "Proportion"}, {Key: "g", Label: "Tags"}})
	if _, _, done := s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}); done {
		t.Fatalf("other runes should filter")
	}
	if s.Query() != "p" || !strings.Contains(ansi.Strip(s.View(40, 10)), "Proportion") {
		t.Fatalf("query = %q", s.Query())
	}
	_, cmd, _ = s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if msg, ok := cmd().(core.JumpTargetSelectedMsg); !ok || msg.Key != "t" {
		t.Fatalf("enter should pick the filtered target, got %+v", msg)
	}
}

func TestRowPickerFiltersCJKRows(t *testing.T) {
	items := []core.PickerItem{{ID: "温度", Label: "温度", Meta: "row 1"}, {ID: "湿度", Label: "湿度", Meta: "row 2"}, {ID: "风速", Label: "风速", Meta: "row 3"}}
	s := NewPickerScreen("Go to row", core.ScopePickerScreen, items, func(it core.PickerItem) tea.Msg { return it })
	typeInto(s, "风")
	view := ansi.Strip(s.View(40, 10))
	if !strings.Contains(view, "› 风") || !strings.Contains(view, "风速  row 3") || strings.Contains(view, "温度") {
		t.Fatalf("unexpected view:\n%s", view)
	}
	_, cmd, done := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !done {
		t.Fatalf("expected selection")
	}
	if it, ok := cmd().(core.PickerItem); !ok || it.ID != "风速" {
		t.Fatalf("unexpected item %+v", it)
	}

	s = NewPickerScreen("Go to row", core.ScopePickerScreen, items, nil)
	typeInto(s, "x")
	if !strings.Contains(ansi.Strip(s.View(40, 10)), "No matches") {
		t.Fatalf("empty filter should say so")
	}
	if _, _, done := s.Update(tea.KeyMsg{Type: tea.KeyEsc}); !done {
		t.Fatalf("esc should close")
	}
}

func TestCommandScreenRunsSelection(t *testing.T) {
	var queries []string
	search := func(q string) []CommandOption {
		queries = append(queries, q)
		all := []CommandOption{
			{ID: "deposit", Name: "Deposit", Keys: "d", Desc: "add 100"},
			{ID: "bankrupt", Name: "Bankrupt", Keys: "b", Disabled: true, Reason: "bank is already empty"},
			{ID: "switch-bank", Name: "Switch to bank"},
		}
		var out []CommandOption
		for _, o := range all {
			if strings.Contains(strings.ToLower(o.Name), strings.ToLower(q)) {
				out = append(out, o)
			}
		}
		return out
	}
	s := NewCommandScreen(core.ScopeBankPanel, search, func(id string) tea.Msg { return core.CommandExecuteMsg{CommandID: id} })
	view := ansi.Strip(s.View(60, 10))
	if !strings.Contains(view, "› Deposit d  add 100") || !strings.Contains(view, "Bankrupt b  bank is already empty") {
		t.Fatalf("unexpected palette:\n%s", view)
	}

	typeInto(s, "bank")
	if len(s.Options()) != 2 || queries[len(queries)-1] != "bank" {
		t.Fatalf("options = %+v", s.Options())
	}
	_, cmd, done := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !done {
		t.Fatalf("disabled command should close the palette")
	}
	if msg, ok := cmd().(core.StatusMsg); !ok || !msg.IsErr || msg.Text != "bank is already empty" {
		t.Fatalf("expected the disabled reason, got %+v", msg)
	}

	s = NewCommandScreen(core.ScopeBankPanel, search, func(id string) tea.Msg { return core.CommandExecuteMsg{CommandID: id} })
	typeInto(s, "bank")
	s.Update(tea.KeyMsg{Type: tea.KeyDown})
	s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	if len(s.Options()) != 0 {
		t.Fatalf("j is typed into the query, not used to move")
	}
	s.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	s.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd, _ = s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if msg, ok := cmd().(core.CommandExecuteMsg); !ok || msg.CommandID != "switch-bank" {
		t.Fatalf("unexpected msg %+v", msg)
	}
}
