package app

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/proportion/core"
	"github.com/jask/proportion/internal/journal"
	"github.com/jask/proportion/internal/store"
	"github.com/jask/proportion/widgets"
)

const activityLimit = 50

// ActivityPane lists the most recent journal entries of this session. It
// reloads only when the journal version moves.
type ActivityPane struct {
	core.PaneMeta
	ctx     context.Context
	journal *journal.Journal
	keys    *core.KeyRegistry
	logger  *slog.Logger
	loaded  uint64
	ready   bool
	entries []journal.Entry
	loadErr error
	cursor  int
}

func NewActivityPane(meta core.PaneMeta, d Deps) *ActivityPane {
	d = d.withDefaults()
	return &ActivityPane{
		PaneMeta: meta,
		ctx:      d.Ctx, journal: d.Journal, keys: d.Keys, logger: d.Logger,
	}
}

func (p *ActivityPane) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	p.refresh()
	switch {
	case p.keys.IsAction(keyMsg, "row-down", p.Scope()):
		if p.cursor < len(p.entries)-1 {
			p.cursor++
		}
	case p.keys.IsAction(keyMsg, "row-up", p.Scope()):
		if p.cursor > 0 {
			p.cursor--
		}
	}
	return nil
}

// Entries returns the cached entries, newest first.
func (p *ActivityPane) Entries() []journal.Entry {
	p.refresh()
	return append([]journal.Entry(nil), p.entries...)
}

func (p *ActivityPane) refresh() {
	if p.journal == nil {
		return
	}
	v := p.journal.Version()
	if p.ready && v == p.loaded {
		return
	}
	entries, err := p.journal.Recent(p.ctx, activityLimit)
	if err != nil {
		p.loadErr = err
		p.logger.Warn("load activity", "error", err)
		return
	}
	p.loadErr = nil
	p.entries = entries
	p.loaded = v
	p.ready = true
	if p.cursor >= len(p.entries) {
		p.cursor = max(0, len(p.entries)-1)
	}
}

func (p *ActivityPane) View(width, height int, selected, focused bool) string {
	p.refresh()
	contentWidth, innerHeight := widgets.InnerSize(width, height)

	var content string
	switch {
	case p.journal == nil:
		content = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c")).Render("Journal disabled.")
	case p.loadErr != nil:
		content = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8")).Render("Failed to load activity: " + p.loadErr.Error())
	default:
		items := make([]string, 0, len(p.entries))
		for _, e := range p.entries {
			items = append(items, formatActivity(e))
		}
		content = widgets.List{
			Items:  items,
			Cursor: p.cursor,
			Marker: focused,
			Empty:  "No activity yet.",
		}.Render(contentWidth, innerHeight)
	}
	return widgets.Pane{
		Title:    p.Title(),
		Content:  content,
		Selected: selected,
		Focused:  focused,
	}.Render(width, height)
}

func formatActivity(e journal.Entry) string {
	line := fmt.Sprintf("%s #%d %-6s %s", e.CreatedAt.Local().Format("15:04:05"), e.Seq, e.Kind, e.Detail)
	if e.Bank != nil {
		line += " → " + store.FormatAmount(*e.Bank)
	}
	return line
}
