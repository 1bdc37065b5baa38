// Package proportion builds the factor table: one fixed "factor" column plus
// one editable column per tag, and one row per tag.
package proportion

import (
	"maps"
	"strconv"
	"strings"
)

// Field identifies a column inside a Row.
type Field string

const (
	// FactorField is the field of the fixed, non-editable column.
	FactorField Field = "yinsu"

	DefaultFixedTitle = "因素"
)

// IndexField is the field of the editable column built from the tag at
// position i.
func IndexField(i int) Field {
	return Field(strconv.Itoa(i))
}

type Column struct {
	Field    Field
	Title    string
	Editable bool
}

type Row struct {
	Key    string
	Values map[Field]string
}

// Value returns the cell value for f, or "" when the cell is empty.
func (r Row) Value(f Field) string {
	return r.Values[f]
}

func (r Row) Clone() Row {
	return Row{Key: r.Key, Values: maps.Clone(r.Values)}
}

// Build maps tags to the column and row layout. The fixed column is always
// first; tag columns follow in tag order, keyed by index and titled with the
// tag text. Each tag seeds one row whose key and factor value are the tag.
func Build(tags []string, fixedTitle string) ([]Column, []Row) {
	if strings.TrimSpace(fixedTitle) == "" {
		fixedTitle = DefaultFixedTitle
	}
	columns := make([]Column, 0, len(tags)+1)
	columns = append(columns, Column{Field: FactorField, Title: fixedTitle})
	rows := make([]Row, 0, len(tags))
	for i, tag := range tags {
		columns = append(columns, Column{Field: IndexField(i), Title: tag, Editable: true})
		rows = append(rows, Row{
			Key:    tag,
			Values: map[Field]string{FactorField: tag},
		})
	}
	return columns, rows
}
