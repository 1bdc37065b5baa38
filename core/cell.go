package core

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// CellMode is the state of an EditableCell.
type CellMode int

const (
	CellView CellMode = iota
	CellEditing
)

func (m CellMode) String() string {
	if m == CellEditing {
		return "edit"
	}
	return "view"
}

// CellEdit is what an EditableCell hands to its commit callback.
type CellEdit struct {
	RowKey string
	Field  string
	Value  string
}

// EditableCell is the VIEW/EDIT state machine behind one table cell. It
// validates that the value is not blank and only then commits. There is no
// cancel: leaving the cell validates and commits like enter does.
type EditableCell struct {
	rowKey string
	field  string
	title  string
	commit func(CellEdit)
	mode   CellMode
	input  textinput.Model
	err    string
}

func NewEditableCell(rowKey, field, title string, commit func(CellEdit)) *EditableCell {
	in := textinput.New()
	in.Prompt = ""
	return &EditableCell{rowKey: rowKey, field: field, title: title, commit: commit, input: in}
}

func (c *EditableCell) RowKey() string { return c.rowKey }
func (c *EditableCell) Field() string  { return c.field }
func (c *EditableCell) Mode() CellMode { return c.mode }
func (c *EditableCell) Editing() bool  { return c.mode == CellEditing }
func (c *EditableCell) Err() string    { return c.err }
func (c *EditableCell) Value() string  { return c.input.Value() }

// Activate switches to EDIT seeded with current. Activating a cell that is
// already editing keeps the typed value.
func (c *EditableCell) Activate(current string) tea.Cmd {
	if c.mode == CellEditing {
		return nil
	}
	c.mode = CellEditing
	c.err = ""
	c.input.SetValue(current)
	c.input.CursorEnd()
	return c.input.Focus()
}

// Confirm validates and commits. It reports whether the cell left EDIT.
func (c *EditableCell) Confirm() bool {
	return c.finish()
}

// Blur is the loss-of-focus transition. It behaves like Confirm.
func (c *EditableCell) Blur() bool {
	return c.finish()
}

func (c *EditableCell) finish() bool {
	if c.mode != CellEditing {
		return true
	}
	value := c.input.Value()
	if strings.TrimSpace(value) == "" {
		c.err = c.title + " is required."
		return false
	}
	c.err = ""
	c.mode = CellView
	c.input.Blur()
	if c.commit != nil {
		c.commit(CellEdit{RowKey: c.rowKey, Field: c.field, Value: value})
	}
	return true
}

// Update feeds key input to the text field while editing.
func (c *EditableCell) Update(msg tea.Msg) tea.Cmd {
	if c.mode != CellEditing {
		return nil
	}
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd
}

// View renders the input while editing and content otherwise.
func (c *EditableCell) View(content string) string {
	if c.mode == CellEditing {
		return c.input.View()
	}
	return content
}
