package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// GridColumn is one header of a Grid. Muted columns render dimmed, which is
// how read-only columns are shown.
type GridColumn struct {
	Title string
	Muted bool
}

// Grid renders a header row and a window of data rows with a cell cursor.
// Widths are display widths, so CJK text lines up.
type Grid struct {
	Columns   []GridColumn
	Rows      [][]string
	CursorRow int
	CursorCol int
	// ShowCursor highlights the cursor cell.
	ShowCursor bool
	// Editing replaces the cursor cell with an already rendered editor.
	Editing string
	// Invalid marks the cursor cell as failing validation.
	Invalid bool
	Top     int
	Empty   string
}

var (
	gridHeaderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8")).Bold(true)
	gridMutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
	gridCursorStyle  = lipgloss.NewStyle().Background(lipgloss.Color("#585b70")).Bold(true)
	gridEditStyle    = lipgloss.NewStyle().Background(lipgloss.Color("#313244"))
	gridInvalidStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8")).Background(lipgloss.Color("#313244"))
)

const gridSep = " │ "

func (g Grid) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(g.Columns) == 0 {
		return gridMutedStyle.Render(g.Empty)
	}
	widths := g.columnWidths(width)

	header := make([]string, len(g.Columns))
	for i, c := range g.Columns {
		style := gridHeaderStyle
		if c.Muted {
			style = style.Foreground(lipgloss.Color("#7f849c"))
		}
		header[i] = style.Render(padRight(c.Title, widths[i]))
	}
	lines := []string{ansi.Truncate(strings.Join(header, gridSep), width, "")}
	if height == 1 {
		return lines[0]
	}

	if len(g.Rows) == 0 {
		lines = append(lines, gridMutedStyle.Render(g.Empty))
		return strings.Join(lines, "\n")
	}

	visible := height - 1
	top := ClampWindow(g.Top, g.CursorRow, len(g.Rows), visible)
	end := min(len(g.Rows), top+visible)
	for r := top; r < end; r++ {
		cells := make([]string, len(g.Columns))
		for c := range g.Columns {
			value := ""
			if c < len(g.Rows[r]) {
				value = g.Rows[r][c]
			}
			cell := padRight(value, widths[c])
			isCursor := g.ShowCursor && r == g.CursorRow && c == g.CursorCol
			switch {
			case isCursor && g.Editing != "":
				style := gridEditStyle
				if g.Invalid {
					style = gridInvalidStyle
				}
				cell = style.Render(padRight(g.Editing, widths[c]))
			case isCursor:
				cell = gridCursorStyle.Render(cell)
			case g.Columns[c].Muted:
				cell = gridMutedStyle.Render(cell)
			}
			cells[c] = cell
		}
		lines = append(lines, ansi.Truncate(strings.Join(cells, gridSep), width, ""))
	}
	return strings.Join(lines, "\n")
}

// columnWidths gives every column its natural width and shrinks the widest
// ones until the row fits.
func (g Grid) columnWidths(width int) []int {
	widths := make([]int, len(g.Columns))
	for i, c := range g.Columns {
		widths[i] = max(4, ansi.StringWidth(c.Title))
	}
	for _, row := range g.Rows {
		for i := range widths {
			if i < len(row) {
				widths[i] = max(widths[i], ansi.StringWidth(row[i]))
			}
		}
	}
	avail := width - ansi.StringWidth(gridSep)*(len(widths)-1)
	for sum(widths) > avail {
		widest := 0
		for i := range widths {
			if widths[i] > widths[widest] {
				widest = i
			}
		}
		if widths[widest] <= 4 {
			break
		}
		widths[widest]--
	}
	return widths
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

// ClampWindow returns the first visible row so that cursor stays inside a
// window of visible rows.
func ClampWindow(top, cursor, total, visible int) int {
	if total <= 0 || visible <= 0 {
		return 0
	}
	cursor = min(max(cursor, 0), total-1)
	top = min(max(top, 0), max(0, total-visible))
	if cursor < top {
		top = cursor
	}
	if cursor >= top+visible {
		top = cursor - visible + 1
	}
	return top
}
