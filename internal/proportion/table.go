package proportion

import (
	"maps"
	"slices"
)

// Table owns the row dataset for one session. Rows change only through
// Rebuild and Commit.
type Table struct {
	fixedTitle string
	tags       []string
	columns    []Column
	rows       []Row
}

func NewTable(fixedTitle string, tags []string) *Table {
	t := &Table{fixedTitle: fixedTitle}
	t.Rebuild(tags)
	return t
}

// Rebuild regenerates columns and rows from tags, discarding every committed
// value.
func (t *Table) Rebuild(tags []string) {
	t.tags = slices.Clone(tags)
	t.columns, t.rows = Build(t.tags, t.fixedTitle)
}

// Commit merges update into the first row with the same key. Fields present
// in update override the row's values; other fields are kept. It reports
// whether a row matched.
func (t *Table) Commit(update Row) bool {
	idx := slices.IndexFunc(t.rows, func(r Row) bool { return r.Key == update.Key })
	if idx < 0 {
		return false
	}
	merged := t.rows[idx].Clone()
	if merged.Values == nil {
		merged.Values = make(map[Field]string, len(update.Values))
	}
	maps.Copy(merged.Values, update.Values)
	t.rows[idx] = merged
	return true
}

func (t *Table) Tags() []string {
	return slices.Clone(t.tags)
}

func (t *Table) Columns() []Column {
	return slices.Clone(t.columns)
}

// Rows returns a deep copy of the dataset.
func (t *Table) Rows() []Row {
	out := make([]Row, len(t.rows))
	for i, r := range t.rows {
		out[i] = r.Clone()
	}
	return out
}

func (t *Table) Row(key string) (Row, bool) {
	for _, r := range t.rows {
		if r.Key == key {
			return r.Clone(), true
		}
	}
	return Row{}, false
}

func (t *Table) Len() int { return len(t.rows) }
