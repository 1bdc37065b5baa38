package core

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeInto(c *EditableCell, s string) {
	for _, r := range s {
		c.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func clearCell(c *EditableCell) {
	for range len([]rune(c.Value())) {
		c.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	}
}

func TestEditableCellConfirmCommits(t *testing.T) {
	var got []CellEdit
	c := NewEditableCell("温度", "0", "温度", func(e CellEdit) { got = append(got, e) })
	if c.Mode() != CellView {
		t.Fatalf("cell should start in view mode")
	}
	if c.View("") != "" {
		t.Fatalf("view mode should render the given content")
	}
	c.Activate("")
	if !c.Editing() || c.Mode() != CellEditing || c.Mode().String() != "edit" {
		t.Fatalf("activate should enter edit mode")
	}
	typeInto(c, "25")
	if !c.Confirm() {
		t.Fatalf("confirm should succeed: %s", c.Err())
	}
	if c.Editing() || c.Mode() != CellView || c.Mode().String() != "view" {
		t.Fatalf("cell should return to view mode")
	}
	if len(got) != 1 || got[0] != (CellEdit{RowKey: "温度", Field: "0", Value: "25"}) {
		t.Fatalf("unexpected commits: %+v", got)
	}
}

func TestEditableCellRequiredKeepsEditing(t *testing.T) {
	commits := 0
	c := NewEditableCell("温度", "0", "温度", func(CellEdit) { commits++ })
	c.Activate("   ")
	if c.Confirm() {
		t.Fatalf("blank value must not confirm")
	}
	if !c.Editing() {
		t.Fatalf("cell should stay in edit mode")
	}
	if c.Err() != "温度 is required." {
		t.Fatalf("unexpected message: %q", c.Err())
	}
	if c.Blur() {
		t.Fatalf("blur with blank value must not commit")
	}
	if commits != 0 {
		t.Fatalf("expected no commits, got %d", commits)
	}

	clearCell(c)
	typeInto(c, "1")
	if !c.Blur() {
		t.Fatalf("blur with a value should commit: %s", c.Err())
	}
	if commits != 1 || c.Err() != "" {
		t.Fatalf("commit count = %d err = %q", commits, c.Err())
	}
}

func TestEditableCellActivateSeedsCurrentValue(t *testing.T) {
	var got CellEdit
	c := NewEditableCell("湿度", "1", "湿度", func(e CellEdit) { got = e })
	c.Activate("60")
	if c.Value() != "60" {
		t.Fatalf("value = %q, want 60", c.Value())
	}
	c.Activate("ignored")
	if c.Value() != "60" {
		t.Fatalf("re-activating must keep the typed value")
	}
	typeInto(c, "5")
	c.Confirm()
	if got.Value != "605" {
		t.Fatalf("committed %q, want 605", got.Value)
	}
	if !c.Blur() {
		t.Fatalf("blur in view mode is a no-op")
	}
}

func TestEditableCellKeepsLongValues(t *testing.T) {
	var got CellEdit
	c := NewEditableCell("温度", "0", "温度", func(e CellEdit) { got = e })
	long := strings.Repeat("9", 200)
	c.Activate("")
	typeInto(c, long)
	if !c.Confirm() {
		t.Fatalf("confirm failed: %s", c.Err())
	}
	if got.Value != long {
		t.Fatalf("committed %d chars, want %d", len(got.Value), len(long))
	}
}
