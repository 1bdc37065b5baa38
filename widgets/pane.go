package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Pane is a rounded box with its title set into the top border. Selected
// panes get an accent border; the focused pane is also marked with a dot.
type Pane struct {
	Title    string
	Content  string
	Selected bool
	Focused  bool
}

var (
	paneIdleColor     = lipgloss.Color("#6c7086")
	paneSelectedColor = lipgloss.Color("#89b4fa")
	paneFocusedColor  = lipgloss.Color("#a6e3a1")
	paneTitleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Bold(true)
	paneBodyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))
)

func (p Pane) Render(width, height int) string {
	width, height = max(width, 6), max(height, 3)
	cw, ch := InnerSize(width, height)
	content := splitRows(p.Content)
	body := make([]string, ch)
	for i := range body {
		line := ""
		if i < len(content) {
			line = paneBodyStyle.Render(ansi.Truncate(content[i], cw, ""))
		}
		body[i] = padRight(line, cw)
	}
	color := p.borderColor()
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1).
		Render(strings.Join(body, "\n"))
	rows := strings.Split(box, "\n")
	rows[0] = p.titleBorder(width, color)
	return strings.Join(rows, "\n")
}

func (p Pane) borderColor() lipgloss.Color {
	switch {
	case p.Focused:
		return paneFocusedColor
	case p.Selected:
		return paneSelectedColor
	}
	return paneIdleColor
}

func (p Pane) titleBorder(width int, color lipgloss.Color) string {
	edge := lipgloss.NewStyle().Foreground(color)
	title := strings.TrimSpace(p.Title)
	if p.Focused && title != "" {
		title = "● " + title
	}
	label := ""
	if room := width - 6; title != "" && room > 0 {
		label = " " + ansi.Truncate(title, room, "…") + " "
	}
	fill := max(0, width-3-ansi.StringWidth(label))
	return edge.Render("╭─") + paneTitleStyle.Render(label) + edge.Render(strings.Repeat("─", fill)+"╮")
}
