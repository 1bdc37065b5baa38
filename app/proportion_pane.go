package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/proportion/core"
	"github.com/jask/proportion/internal/journal"
	"github.com/jask/proportion/internal/proportion"
	"github.com/jask/proportion/internal/store"
	"github.com/jask/proportion/screens"
	"github.com/jask/proportion/widgets"
)

// ProportionPane is the editable factor table. Its columns follow the store's
// tag list; committed cells live only in the pane's table.
type ProportionPane struct {
	core.PaneMeta
	ctx     context.Context
	table   *proportion.Table
	store   *store.Store
	journal *journal.Journal
	keys    *core.KeyRegistry
	logger  *slog.Logger

	row, col int
	top      int
	cell     *core.EditableCell
	// journalErr is set by the commit callback and surfaced on the next
	// returned command.
	journalErr error
}

type gotoRowMsg struct{ key string }

func NewProportionPane(meta core.PaneMeta, d Deps) *ProportionPane {
	d = d.withDefaults()
	p := &ProportionPane{
		PaneMeta: meta,
		ctx:      d.Ctx,
		table:    proportion.NewTable(d.Config.Table.FixedTitle, d.Store.Snapshot().Tags),
		store:    d.Store,
		journal:  d.Journal,
		keys:     d.Keys,
		logger:   d.Logger,
	}
	p.col = p.firstEditableCol()
	d.Store.Subscribe(p.onChange)
	return p
}

// Scope switches to the editing scope while a cell takes input.
func (p *ProportionPane) Scope() string {
	if p.CapturesInput() {
		return core.ScopeTableEditing
	}
	return p.PaneMeta.Scope()
}

func (p *ProportionPane) OnFocus() tea.Cmd { return nil }

// OnBlur is a loss of focus for the active cell too.
func (p *ProportionPane) OnBlur() tea.Cmd {
	if p.cell == nil {
		return nil
	}
	if p.cell.Blur() {
		p.cell = nil
	}
	return p.takeJournalErr()
}

func (p *ProportionPane) CapturesInput() bool {
	return p.cell != nil && p.cell.Editing()
}

// Table exposes the dataset for read access.
func (p *ProportionPane) Table() *proportion.Table { return p.table }

// Cursor returns the row and column under the cell cursor.
func (p *ProportionPane) Cursor() (row, col int) { return p.row, p.col }

// Cell returns the active editable cell, if any.
func (p *ProportionPane) Cell() *core.EditableCell { return p.cell }

func (p *ProportionPane) onChange(c store.Change) {
	if !c.TagsChanged() {
		return
	}
	p.table.Rebuild(c.Next.Tags)
	p.cell = nil
	p.row = min(p.row, max(0, p.table.Len()-1))
	p.col = min(max(p.col, p.firstEditableCol()), len(p.table.Columns())-1)
	p.logger.Debug("table rebuilt", "tags", len(c.Next.Tags))
}

func (p *ProportionPane) firstEditableCol() int {
	if len(p.table.Columns()) > 1 {
		return 1
	}
	return 0
}

func (p *ProportionPane) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case gotoRowMsg:
		for i, r := range p.table.Rows() {
			if r.Key == msg.key {
				p.row = i
				return core.StatusCmd("Row: " + r.Key)
			}
		}
		return nil
	case tea.KeyMsg:
		if p.CapturesInput() {
			return p.updateEditing(msg)
		}
		return p.updateNavigating(msg)
	}
	if p.CapturesInput() {
		return p.cell.Update(msg)
	}
	return nil
}

func (p *ProportionPane) updateEditing(msg tea.KeyMsg) tea.Cmd {
	switch {
	case p.keys.IsAction(msg, "cell-confirm", core.ScopeTableEditing):
		if !p.cell.Confirm() {
			p.logger.Info("cell validation failed", "row", p.cell.RowKey(), "error", p.cell.Err())
			return nil
		}
		p.cell = nil
		return p.takeJournalErr()
	case p.keys.IsAction(msg, "cell-blur", core.ScopeTableEditing):
		if !p.cell.Blur() {
			p.logger.Info("cell validation failed", "row", p.cell.RowKey(), "error", p.cell.Err())
			return nil
		}
		p.cell = nil
		switch msg.String() {
		case "tab":
			p.moveCol(1)
		case "shift+tab":
			p.moveCol(-1)
		}
		return p.takeJournalErr()
	}
	return p.cell.Update(msg)
}

func (p *ProportionPane) updateNavigating(msg tea.KeyMsg) tea.Cmd {
	scope := p.PaneMeta.Scope()
	switch {
	case p.keys.IsAction(msg, "row-down", scope):
		if p.row < p.table.Len()-1 {
			p.row++
		}
	case p.keys.IsAction(msg, "row-up", scope):
		if p.row > 0 {
			p.row--
		}
	case p.keys.IsAction(msg, "cell-right", scope):
		p.moveCol(1)
	case p.keys.IsAction(msg, "cell-left", scope):
		p.moveCol(-1)
	case p.keys.IsAction(msg, "cell-edit", scope):
		return p.activate()
	case p.keys.IsAction(msg, "goto-row", scope):
		return p.openRowPicker()
	}
	return nil
}

func (p *ProportionPane) moveCol(delta int) {
	n := len(p.table.Columns())
	if n == 0 {
		return
	}
	p.col = min(max(p.col+delta, 0), n-1)
}

// activate opens an editable cell under the cursor. The fixed column is read
// only and never gets one.
func (p *ProportionPane) activate() tea.Cmd {
	columns := p.table.Columns()
	rows := p.table.Rows()
	if p.row < 0 || p.row >= len(rows) || p.col < 0 || p.col >= len(columns) {
		return nil
	}
	column := columns[p.col]
	if !column.Editable {
		return core.StatusCmd(column.Title + " is read only")
	}
	row := rows[p.row]
	p.cell = core.NewEditableCell(row.Key, string(column.Field), column.Title, p.commit)
	return p.cell.Activate(row.Value(column.Field))
}

func (p *ProportionPane) commit(e core.CellEdit) {
	matched := p.table.Commit(proportion.Row{
		Key:    e.RowKey,
		Values: map[proportion.Field]string{proportion.Field(e.Field): e.Value},
	})
	p.logger.Info("cell committed", "row", e.RowKey, "field", e.Field, "value", e.Value, "matched", matched)
	if p.journal == nil {
		return
	}
	title := e.Field
	for _, c := range p.table.Columns() {
		if string(c.Field) == e.Field {
			title = c.Title
			break
		}
	}
	if _, err := p.journal.Record(p.ctx, journal.EditEntry(e.RowKey, title, e.Value)); err != nil {
		p.logger.Warn("journal edit", "row", e.RowKey, "error", err)
		p.journalErr = err
	}
}

func (p *ProportionPane) takeJournalErr() tea.Cmd {
	if p.journalErr == nil {
		return nil
	}
	err := p.journalErr
	p.journalErr = nil
	return core.CodedStatusCmd("JOURNAL", err.Error(), true)
}

func (p *ProportionPane) openRowPicker() tea.Cmd {
	rows := p.table.Rows()
	if len(rows) == 0 {
		return nil
	}
	items := make([]core.PickerItem, 0, len(rows))
	for i, r := range rows {
		items = append(items, core.PickerItem{ID: r.Key, Label: r.Key, Meta: fmt.Sprintf("row %d", i+1)})
	}
	return core.PushScreenCmd(screens.NewPickerScreen("Go to row", core.ScopePickerScreen, items, func(it core.PickerItem) tea.Msg {
		return gotoRowMsg{key: it.ID}
	}))
}

func (p *ProportionPane) hint() string {
	if p.CapturesInput() {
		leave := strings.Join(p.keys.KeysFor("cell-blur", core.ScopeTableEditing), "/")
		return hintLine(keyHint(p.keys, core.ScopeTableEditing, "confirm", "cell-confirm"), leave+" leave cell")
	}
	scope := p.PaneMeta.Scope()
	return hintLine(
		keyHint(p.keys, scope, "edit", "cell-edit"),
		keyHint(p.keys, scope, "move", "cell-left", "row-down", "row-up", "cell-right"),
		keyHint(p.keys, scope, "go to row", "goto-row"),
	)
}

func (p *ProportionPane) View(width, height int, selected, focused bool) string {
	contentWidth, innerHeight := widgets.InnerSize(width, height)

	columns := p.table.Columns()
	rows := p.table.Rows()
	grid := widgets.Grid{
		Columns:    make([]widgets.GridColumn, 0, len(columns)),
		Rows:       make([][]string, 0, len(rows)),
		CursorRow:  p.row,
		CursorCol:  p.col,
		ShowCursor: focused || p.cell != nil,
		Top:        p.top,
		Empty:      "No tags. Add one in the Tags pane.",
	}
	for _, c := range columns {
		grid.Columns = append(grid.Columns, widgets.GridColumn{Title: c.Title, Muted: !c.Editable})
	}
	for _, r := range rows {
		cells := make([]string, len(columns))
		for i, c := range columns {
			cells[i] = r.Value(c.Field)
		}
		grid.Rows = append(grid.Rows, cells)
	}
	if p.CapturesInput() {
		grid.Editing = p.cell.View("")
		grid.Invalid = p.cell.Err() != ""
	}

	footer := []string{}
	if p.cell != nil && p.cell.Err() != "" {
		footer = append(footer, lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8")).Render(p.cell.Err()))
	}
	footer = append(footer, p.hint())

	gridHeight := max(1, innerHeight-len(footer)-1)
	p.top = widgets.ClampWindow(p.top, p.row, len(rows), gridHeight-1)
	grid.Top = p.top
	content := grid.Render(contentWidth, gridHeight) + "\n\n" + strings.Join(footer, "\n")
	return widgets.Pane{
		Title:    p.Title(),
		Content:  content,
		Selected: selected,
		Focused:  focused,
	}.Render(width, height)
}
