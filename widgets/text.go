package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// InnerSize is the content area of a Pane drawn at width x height: one
// border row top and bottom, a border and a space of padding either side.
func InnerSize(width, height int) (int, int) {
	return max(1, width-4), max(1, height-2)
}

// Clip cuts s to height lines of at most width cells.
func Clip(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	rows := splitRows(s)
	if len(rows) > height {
		rows = rows[:height]
	}
	for i, r := range rows {
		rows[i] = ansi.Truncate(r, width, "")
	}
	return strings.Join(rows, "\n")
}

func splitRows(s string) []string {
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}

// fitRows pads or cuts rows to exactly n entries.
func fitRows(rows []string, n int) []string {
	if len(rows) >= n {
		return rows[:n]
	}
	out := make([]string, n)
	copy(out, rows)
	return out
}

func widest(rows []string) int {
	w := 0
	for _, r := range rows {
		w = max(w, ansi.StringWidth(r))
	}
	return w
}

// padRight truncates or space-fills s to exactly width display cells.
func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	if gap := width - ansi.StringWidth(s); gap > 0 {
		s += strings.Repeat(" ", gap)
	}
	return s
}
