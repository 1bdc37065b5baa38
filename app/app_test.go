package app

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/proportion/core"
	"github.com/jask/proportion/internal/journal"
	"github.com/jask/proportion/internal/proportion"
	"github.com/jask/proportion/internal/store"
)

func key(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+k":
		return tea.KeyMsg{Type: tea.KeyCtrlK}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// press feeds keys to m and returns the model and the last command.
func press(m core.Model, keys ...string) (core.Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(key(k))
		m = next.(core.Model)
	}
	return m, cmd
}

func typeText(m core.Model, s string) core.Model {
	for _, r := range s {
		m, _ = press(m, string(r))
	}
	return m
}

// deliver runs cmd and feeds its message back into m.
func deliver(t *testing.T, m core.Model, cmd tea.Cmd) core.Model {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	next, _ := m.Update(cmd())
	return next.(core.Model)
}

type fixture struct {
	store   *store.Store
	journal *journal.Journal
	model   core.Model
}

func newFixture(t *testing.T, tags ...string) *fixture {
	t.Helper()
	j, err := journal.Open(journal.MemoryPath)
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	t.Cleanup(func() { _ = j.Close() })
	st := store.New(store.State{Tags: tags})
	st.Subscribe(j.StoreListener(context.Background(), nil))
	m := NewModel(Deps{Store: st, Journal: j})
	return &fixture{store: st, journal: j, model: m}
}

func (f *fixture) proportionPane(t *testing.T) *ProportionPane {
	t.Helper()
	return findPane[*ProportionPane](t, f.model)
}

func findPane[T core.Pane](t *testing.T, m core.Model) T {
	t.Helper()
	for _, tab := range m.Tabs() {
		host, ok := tab.(interface{ Panes() []core.Pane })
		if !ok {
			continue
		}
		for _, p := range host.Panes() {
			if found, ok := p.(T); ok {
				return found
			}
		}
	}
	var zero T
	t.Fatalf("pane %T not found", zero)
	return zero
}

func TestBankButtons(t *testing.T) {
	f := newFixture(t)
	m, _ := press(f.model, "d")
	if got := f.store.Snapshot().Bank; got != 100 {
		t.Fatalf("after deposit bank = %v, want 100", got)
	}
	if !strings.Contains(m.View(), "Bank: 100") {
		t.Fatalf("panel should show 100")
	}

	m, _ = press(m, "w")
	if got := f.store.Snapshot().Bank; got != 90 {
		t.Fatalf("after withdraw bank = %v, want 90", got)
	}
	m, _ = press(m, "b")
	if got := f.store.Snapshot().Bank; got != 0 {
		t.Fatalf("after bankrupt bank = %v, want 0", got)
	}
	if !strings.Contains(m.View(), "Bank: 0") {
		t.Fatalf("panel should show 0")
	}

	entries, err := f.journal.Recent(context.Background(), 10)
	if err != nil || len(entries) != 3 {
		t.Fatalf("journal entries = %d err=%v, want 3", len(entries), err)
	}
	if entries[0].Name != "bankrupt" || entries[2].Name != "deposit" {
		t.Fatalf("unexpected journal order: %s, %s", entries[0].Name, entries[2].Name)
	}
}

func TestBankButtonCursor(t *testing.T) {
	f := newFixture(t)
	m, _ := press(f.model, "enter")
	m, _ = press(m, "right", "enter")
	if got := f.store.Snapshot().Bank; got != -10 {
		t.Fatalf("withdraw on empty bank = %v, want -10", got)
	}
	m, _ = press(m, "left", "enter")
	if got := f.store.Snapshot().Bank; got != 90 {
		t.Fatalf("deposit = %v, want 90", got)
	}
	_ = m
}

func TestCustomAmountEditor(t *testing.T) {
	f := newFixture(t)
	m, cmd := press(f.model, "+")
	m = deliver(t, m, cmd)
	if m.ScreenDepth() != 1 {
		t.Fatalf("expected amount editor to open")
	}

	m = typeText(m, "5-10")
	m, cmd = press(m, "enter")
	if m.ScreenDepth() != 1 || cmd != nil {
		t.Fatalf("negative amount must keep the editor open")
	}
	if !strings.Contains(m.View(), "Amount must not be negative.") {
		t.Fatalf("editor should show the validation message")
	}
	m, _ = press(m, "backspace", "backspace", "backspace", "backspace")
	m = typeText(m, "100*3")
	m, cmd = press(m, "enter")
	if m.ScreenDepth() != 0 {
		t.Fatalf("valid amount should close the editor")
	}
	m = deliver(t, m, cmd)
	if got := f.store.Snapshot().Bank; got != 300 {
		t.Fatalf("bank = %v, want 300", got)
	}
	if text, _ := m.Status(); !strings.Contains(text, "300") {
		t.Fatalf("status = %q", text)
	}
}

func TestEditCellThroughKeys(t *testing.T) {
	f := newFixture(t, "温度", "湿度")
	m, _ := press(f.model, "2")
	if m.ActiveTab() != 1 {
		t.Fatalf("expected proportion tab")
	}
	m, _ = press(m, "enter", "enter")
	pane := f.proportionPane(t)
	if pane.Cell() == nil || !pane.Cell().Editing() {
		t.Fatalf("enter on a tag cell should start editing")
	}

	m = typeText(m, "25")
	m, _ = press(m, "enter")
	if pane.CapturesInput() {
		t.Fatalf("confirm should leave edit mode")
	}
	rows := pane.Table().Rows()
	if rows[0].Value(proportion.IndexField(0)) != "25" {
		t.Fatalf("row 温度 = %+v", rows[0])
	}
	if rows[1].Value(proportion.IndexField(0)) != "" || rows[1].Value(proportion.FactorField) != "湿度" {
		t.Fatalf("row 湿度 should be untouched: %+v", rows[1])
	}
	if !strings.Contains(m.View(), "25") {
		t.Fatalf("table should render the committed value")
	}

	entries, err := f.journal.Recent(context.Background(), 1)
	if err != nil || len(entries) != 1 || entries[0].Kind != journal.KindEdit {
		t.Fatalf("expected an edit entry, got %+v err=%v", entries, err)
	}
	if entries[0].Detail != `温度 / 温度 = "25"` {
		t.Fatalf("detail = %q", entries[0].Detail)
	}
}

func TestEmptyValueStaysInEdit(t *testing.T) {
	f := newFixture(t, "温度", "湿度")
	m, _ := press(f.model, "2", "enter", "j", "enter")
	pane := f.proportionPane(t)
	before := pane.Table().Rows()

	m, _ = press(m, "enter")
	if !pane.CapturesInput() {
		t.Fatalf("blank value must keep the cell editing")
	}
	if !strings.Contains(m.View(), "温度 is required.") {
		t.Fatalf("expected required message in view")
	}
	m, _ = press(m, "esc")
	if !pane.CapturesInput() {
		t.Fatalf("esc with a blank value must not leave the cell")
	}
	after := pane.Table().Rows()
	for i := range before {
		if before[i].Value(proportion.IndexField(0)) != after[i].Value(proportion.IndexField(0)) {
			t.Fatalf("rows changed on failed commit")
		}
	}

	m, _ = press(m, "q", "1")
	if m.ActiveTab() != 1 {
		t.Fatalf("global keys must not fire while editing")
	}
	if pane.Cell().Value() != "q1" {
		t.Fatalf("typed value = %q", pane.Cell().Value())
	}
	m, _ = press(m, "tab")
	if pane.CapturesInput() {
		t.Fatalf("tab should commit and leave the cell")
	}
	if got := pane.Table().Rows()[1].Value(proportion.IndexField(0)); got != "q1" {
		t.Fatalf("湿度/温度 = %q, want q1", got)
	}
	if _, col := pane.Cursor(); col != 2 {
		t.Fatalf("tab should move to the next column, got %d", col)
	}
}

func TestFixedColumnIsReadOnly(t *testing.T) {
	f := newFixture(t, "温度")
	m, _ := press(f.model, "2", "enter", "h", "enter")
	pane := f.proportionPane(t)
	if pane.Cell() != nil {
		t.Fatalf("fixed column must not open an editable cell")
	}
	_ = m
}

func TestTagChangeRebuildsTable(t *testing.T) {
	f := newFixture(t, "温度", "湿度")
	m, _ := press(f.model, "2", "enter", "enter")
	m = typeText(m, "25")
	pane := f.proportionPane(t)

	f.store.Dispatch(store.AddTag{Tag: "风速"})
	if pane.Cell() != nil {
		t.Fatalf("rebuild should drop the active cell")
	}
	cols := pane.Table().Columns()
	if len(cols) != 4 || cols[3].Title != "风速" {
		t.Fatalf("columns = %+v", cols)
	}
	for _, r := range pane.Table().Rows() {
		if r.Value(proportion.IndexField(0)) != "" {
			t.Fatalf("rebuild should discard edits: %+v", r)
		}
	}
	if m.ScreenDepth() != 0 {
		t.Fatalf("no screen expected")
	}

	f.store.Dispatch(store.SetTags{Tags: nil})
	if pane.Table().Len() != 0 || len(pane.Table().Columns()) != 1 {
		t.Fatalf("empty tags should leave only the fixed column")
	}
	if !strings.Contains(m.View(), "No tags") {
		t.Fatalf("expected empty table hint")
	}
}

func TestTagsPaneEditsStore(t *testing.T) {
	f := newFixture(t, "温度", "湿度")
	m, _ := press(f.model, "2", "right")
	m, cmd := press(m, "a")
	m = deliver(t, m, cmd)
	if m.ScreenDepth() != 1 {
		t.Fatalf("expected add tag editor")
	}
	m = typeText(m, "温度")
	m, cmd = press(m, "enter")
	if m.ScreenDepth() != 1 || cmd != nil {
		t.Fatalf("duplicate tag must be rejected")
	}
	if !strings.Contains(m.View(), `Tag "温度" already exists.`) {
		t.Fatalf("editor should show the duplicate message")
	}
	m, _ = press(m, "backspace", "backspace")
	m = typeText(m, "风速")
	m, cmd = press(m, "enter")
	m = deliver(t, m, cmd)
	if got := f.store.Snapshot().Tags; strings.Join(got, ",") != "温度,湿度,风速" {
		t.Fatalf("tags = %v", got)
	}

	m, _ = press(m, "j", "J")
	if got := f.store.Snapshot().Tags; strings.Join(got, ",") != "温度,风速,湿度" {
		t.Fatalf("after move down tags = %v", got)
	}
	m, _ = press(m, "K")
	if got := f.store.Snapshot().Tags; strings.Join(got, ",") != "温度,湿度,风速" {
		t.Fatalf("after move up tags = %v", got)
	}
	m, _ = press(m, "x")
	if got := f.store.Snapshot().Tags; strings.Join(got, ",") != "温度,风速" {
		t.Fatalf("after remove tags = %v", got)
	}
	if len(f.proportionPane(t).Table().Columns()) != 3 {
		t.Fatalf("table should follow the tag list")
	}
}

func TestNearDuplicateTagWarns(t *testing.T) {
	f := newFixture(t, "humidity")
	m, cmd := press(f.model, "2", "right", "a")
	m = deliver(t, m, cmd)
	m = typeText(m, "humidty")
	m, cmd = press(m, "enter")
	m = deliver(t, m, cmd)
	text, _ := m.Status()
	if !strings.Contains(text, "similar to humidity") {
		t.Fatalf("status = %q", text)
	}
	if len(f.store.Snapshot().Tags) != 2 {
		t.Fatalf("near duplicate should still be added")
	}
}

func TestActivityPaneFollowsJournal(t *testing.T) {
	f := newFixture(t)
	pane := findPane[*ActivityPane](t, f.model)
	if len(pane.Entries()) != 0 {
		t.Fatalf("expected no activity")
	}
	m, _ := press(f.model, "d")
	entries := pane.Entries()
	if len(entries) != 1 || entries[0].Name != "deposit" {
		t.Fatalf("entries = %+v", entries)
	}
	if !strings.Contains(m.View(), "deposit 100") {
		t.Fatalf("activity should be rendered")
	}
}

func TestGotoRowPicker(t *testing.T) {
	f := newFixture(t, "温度", "湿度", "风速")
	m, cmd := press(f.model, "2", "enter", "g")
	m = deliver(t, m, cmd)
	if m.ScreenDepth() != 1 {
		t.Fatalf("expected row picker")
	}
	m, _ = press(m, "down", "down")
	m, cmd = press(m, "enter")
	m = deliver(t, m, cmd)
	if row, _ := f.proportionPane(t).Cursor(); row != 2 {
		t.Fatalf("row = %d, want 2", row)
	}
	if m.ScreenDepth() != 0 {
		t.Fatalf("picker should close on select")
	}
}

func TestValidateNewTagErrors(t *testing.T) {
	st := store.New(store.State{Tags: []string{"温度"}})
	if err := validateNewTag(st, "   "); err == nil || err.Error() != "tag is required" {
		t.Fatalf("blank tag err = %v", err)
	}
	if err := validateNewTag(st, " 温度 "); err == nil || err.Error() != `tag "温度" already exists` {
		t.Fatalf("duplicate tag err = %v", err)
	}
	if err := validateNewTag(st, "风速"); err != nil {
		t.Fatalf("new tag err = %v", err)
	}
}

func TestPaletteShowsKeysOfSelectedPane(t *testing.T) {
	f := newFixture(t)
	m, _ := press(f.model, "ctrl+k")
	if m.ScreenDepth() != 1 || m.ActiveScope() != core.ScopeCommandScreen {
		t.Fatalf("ctrl+k should open the palette")
	}
	view := m.View()
	for _, want := range []string{"Deposit d", "Withdraw w", "Add tag"} {
		if !strings.Contains(view, want) {
			t.Fatalf("palette missing %q:\n%s", want, view)
		}
	}

	m = typeText(m, "bankrupt")
	m, cmd := press(m, "enter")
	m = deliver(t, m, cmd)
	if text, isErr := m.Status(); text != "bank is already empty" || !isErr {
		t.Fatalf("status = %q err=%v", text, isErr)
	}

	m, _ = press(m, "ctrl+k")
	m = typeText(m, "add tag")
	m, cmd = press(m, "enter")
	next, cmd := m.Update(cmd())
	m = deliver(t, next.(core.Model), cmd)
	if m.ScreenDepth() != 1 || m.ActiveScope() != core.ScopeEditorScreen {
		t.Fatalf("add tag should open the tag editor, scope %s", m.ActiveScope())
	}
}

func TestJumpPickerFocusesTags(t *testing.T) {
	f := newFixture(t, "温度")
	m, _ := press(f.model, "2", "v")
	if m.ActiveScope() != core.ScopeJumpScreen {
		t.Fatalf("v should open the jump picker, scope %s", m.ActiveScope())
	}
	if view := m.View(); !strings.Contains(view, "[t] Proportion") || !strings.Contains(view, "[g] Tags") {
		t.Fatalf("jump targets missing:\n%s", view)
	}
	m, cmd := press(m, "g")
	m = deliver(t, m, cmd)
	if m.ScreenDepth() != 0 || m.ActiveScope() != core.ScopeTags {
		t.Fatalf("jump should land on tags, scope %s", m.ActiveScope())
	}
	m, _ = press(m, "x")
	if len(f.store.Snapshot().Tags) != 0 {
		t.Fatalf("x in the tags pane should remove the tag")
	}
}

func TestBankHistoryFeedsSparkline(t *testing.T) {
	f := newFixture(t)
	pane := findPane[*BankPane](t, f.model)
	m, _ := press(f.model, "d", "d", "w")
	f.store.Dispatch(store.AddTag{Tag: "温度"})
	if got := pane.History(); len(got) != 4 || got[3] != 190 {
		t.Fatalf("history = %v, want four points ending at 190", got)
	}
	if view := m.View(); !strings.ContainsAny(view, "▁▂▃▄▅▆▇█") {
		t.Fatalf("bank panel should draw the history")
	}
}
