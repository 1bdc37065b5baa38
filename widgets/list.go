package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// List renders one line per item with an optional cursor marker. Items past
// the height are dropped from the end.
type List struct {
	Items  []string
	Cursor int
	Marker bool
	Empty  string
}

func (l List) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(l.Items) == 0 {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c")).Render(l.Empty)
	}
	start := 0
	if l.Marker && l.Cursor >= height {
		start = l.Cursor - height + 1
	}
	rows := make([]string, 0, height)
	for i := start; i < len(l.Items) && len(rows) < height; i++ {
		line := l.Items[i]
		if l.Marker {
			if i == l.Cursor {
				line = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true).Render("> " + line)
			} else {
				line = "  " + line
			}
		}
		rows = append(rows, padRight(line, width))
	}
	return strings.Join(rows, "\n")
}
