package app

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/proportion/core"
	"github.com/jask/proportion/internal/store"
	"github.com/jask/proportion/screens"
	"github.com/jask/proportion/widgets"
)

// similarTagDistance is the edit distance under which a new tag is reported
// as a likely typo of an existing one.
const similarTagDistance = 1

// TagsPane edits the store's tag list. Every change is a store action; the
// table follows through its own subscription.
type TagsPane struct {
	core.PaneMeta
	cursor int
	store  *store.Store
	keys   *core.KeyRegistry
}

func NewTagsPane(meta core.PaneMeta, d Deps) *TagsPane {
	d = d.withDefaults()
	return &TagsPane{PaneMeta: meta, store: d.Store, keys: d.Keys}
}

func (p *TagsPane) Cursor() int { return p.cursor }

func (p *TagsPane) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	tags := p.store.Snapshot().Tags
	p.cursor = min(p.cursor, max(0, len(tags)-1))
	switch {
	case p.keys.IsAction(keyMsg, "row-down", p.Scope()):
		if p.cursor < len(tags)-1 {
			p.cursor++
		}
	case p.keys.IsAction(keyMsg, "row-up", p.Scope()):
		if p.cursor > 0 {
			p.cursor--
		}
	case p.keys.IsAction(keyMsg, "add-tag", p.Scope()):
		return core.PushScreenCmd(newAddTagScreen(p.store))
	case p.keys.IsAction(keyMsg, "remove-tag", p.Scope()):
		if len(tags) == 0 {
			return nil
		}
		removed := tags[p.cursor]
		p.store.Dispatch(store.RemoveTag{Index: p.cursor})
		p.cursor = min(p.cursor, max(0, len(tags)-2))
		return core.StatusCmd("Removed tag " + removed)
	case p.keys.IsAction(keyMsg, "move-tag-up", p.Scope()):
		if p.cursor == 0 {
			return nil
		}
		p.store.Dispatch(store.MoveTag{From: p.cursor, To: p.cursor - 1})
		p.cursor--
	case p.keys.IsAction(keyMsg, "move-tag-down", p.Scope()):
		if p.cursor >= len(tags)-1 {
			return nil
		}
		p.store.Dispatch(store.MoveTag{From: p.cursor, To: p.cursor + 1})
		p.cursor++
	}
	return nil
}

func (p *TagsPane) View(width, height int, selected, focused bool) string {
	tags := p.store.Snapshot().Tags
	cw, ch := widgets.InnerSize(width, height)
	items := make([]string, 0, len(tags))
	for i, t := range tags {
		items = append(items, fmt.Sprintf("%d. %s", i+1, t))
	}
	list := widgets.List{
		Items:  items,
		Cursor: min(p.cursor, max(0, len(tags)-1)),
		Marker: focused,
		Empty:  "No tags yet.",
	}.Render(cw, max(1, ch-2))
	hint := hintLine(
		keyHint(p.keys, p.Scope(), "add", "add-tag"),
		keyHint(p.keys, p.Scope(), "remove", "remove-tag"),
		keyHint(p.keys, p.Scope(), "move", "move-tag-up", "move-tag-down"),
	)
	return widgets.Pane{
		Title:    p.Title(),
		Content:  list + "\n\n" + hint,
		Selected: selected,
		Focused:  focused,
	}.Render(width, height)
}

func validateNewTag(st *store.Store, v string) error {
	tag := store.NormalizeTag(v)
	if tag == "" {
		return errors.New("tag is required")
	}
	if store.ContainsTag(st.Snapshot().Tags, tag) {
		return fmt.Errorf("tag %q already exists", tag)
	}
	return nil
}

// newAddTagScreen asks for a tag name. Exact duplicates are rejected; near
// duplicates are added with a warning.
func newAddTagScreen(st *store.Store) core.Screen {
	field := screens.EditorField{
		Key:      "tag",
		Label:    "Tag",
		Validate: func(v string) error { return validateNewTag(st, v) },
	}
	return screens.NewEditorScreen("Add tag", []screens.EditorField{field}, func(values map[string]string) tea.Msg {
		tag := store.NormalizeTag(values["tag"])
		status := "Added tag " + tag
		if similar := store.SimilarTags(st.Snapshot().Tags, tag, similarTagDistance); len(similar) > 0 {
			status += " (similar to " + strings.Join(similar, ", ") + ")"
		}
		return core.DispatchMsg{Action: store.AddTag{Tag: tag}, Status: status}
	})
}

func joinTags(tags []string) string {
	if len(tags) == 0 {
		return "(none)"
	}
	return strings.Join(tags, ", ")
}
