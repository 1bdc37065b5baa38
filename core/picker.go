package core

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"
)

// PickerItem is one choice. Search, when set, is matched instead of Label.
type PickerItem struct {
	ID     string
	Label  string
	Meta   string
	Search string
}

func (it PickerItem) haystack() string {
	if it.Search != "" {
		return it.Search
	}
	return it.Label
}

type PickerAction int

const (
	PickerActionNone PickerAction = iota
	PickerActionMoved
	PickerActionFiltered
	PickerActionSelected
	PickerActionCancelled
)

type PickerResult struct {
	Action PickerAction
	Item   PickerItem
}

// Picker narrows a fixed list as the user types. Every printable rune,
// including CJK and pasted text, goes to the query; arrows and ctrl+n/p move
// the cursor.
type Picker struct {
	items  []PickerItem
	shown  []PickerItem
	query  []rune
	cursor int
}

func NewPicker(items []PickerItem) *Picker {
	p := &Picker{items: slices.Clone(items)}
	p.filter()
	return p
}

func (p *Picker) Query() string       { return string(p.query) }
func (p *Picker) Items() []PickerItem { return p.shown }
func (p *Picker) Cursor() int         { return p.cursor }

func (p *Picker) HandleKey(msg tea.KeyMsg) PickerResult {
	switch msg.Type {
	case tea.KeyEsc:
		return PickerResult{Action: PickerActionCancelled}
	case tea.KeyEnter:
		if len(p.shown) == 0 {
			return PickerResult{}
		}
		return PickerResult{Action: PickerActionSelected, Item: p.shown[p.cursor]}
	case tea.KeyUp, tea.KeyCtrlP:
		return p.move(-1)
	case tea.KeyDown, tea.KeyCtrlN:
		return p.move(1)
	case tea.KeyBackspace:
		if len(p.query) == 0 {
			return PickerResult{}
		}
		p.query = p.query[:len(p.query)-1]
	case tea.KeyCtrlU:
		if len(p.query) == 0 {
			return PickerResult{}
		}
		p.query = nil
	case tea.KeySpace:
		p.query = append(p.query, ' ')
	case tea.KeyRunes:
		p.query = append(p.query, msg.Runes...)
	default:
		return PickerResult{}
	}
	p.filter()
	return PickerResult{Action: PickerActionFiltered}
}

func (p *Picker) move(delta int) PickerResult {
	next := min(max(p.cursor+delta, 0), max(0, len(p.shown)-1))
	if next == p.cursor {
		return PickerResult{}
	}
	p.cursor = next
	return PickerResult{Action: PickerActionMoved, Item: p.shown[next]}
}

// filter keeps the items matching the query, best match first and list
// order among equals. The cursor returns to the top.
func (p *Picker) filter() {
	type scored struct {
		item  PickerItem
		score int
	}
	var hits []scored
	for _, it := range p.items {
		if score, ok := matchScore(it.haystack(), string(p.query)); ok {
			hits = append(hits, scored{it, score})
		}
	}
	slices.SortStableFunc(hits, func(a, b scored) int { return b.score - a.score })
	p.shown = make([]PickerItem, len(hits))
	for i, h := range hits {
		p.shown[i] = h.item
	}
	p.cursor = 0
}
