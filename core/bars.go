package core

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderFooter lists the bindings of the active scope. Consecutive bindings
// of one action share an entry, so "left/right select pane" reads as one
// hint. While a screen or a text input holds the keys, global bindings are
// left out since they cannot fire.
func RenderFooter(m Model) string {
	scope := m.ActiveScope()
	exclusive := m.screens.top() != nil || m.capturesInput()
	var hints []key.Binding
	var last string
	for _, b := range m.keys.BindingsForScope(scope) {
		if len(b.Keys) == 0 || b.Description == "" {
			continue
		}
		if exclusive && !slices.Contains(b.Scopes, scope) {
			continue
		}
		if b.Action == last && len(hints) > 0 {
			prev := hints[len(hints)-1]
			keys := slices.Concat(prev.Keys(), b.Keys)
			hints[len(hints)-1] = key.NewBinding(key.WithKeys(keys...), key.WithHelp(strings.Join(keys, "/"), prev.Help().Desc))
			continue
		}
		last = b.Action
		hints = append(hints, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(strings.Join(b.Keys, "/"), b.Description)))
	}
	h := help.New()
	h.Width = max(1, m.width)
	h.ShortSeparator = "  "
	h.Styles.ShortKey = hintKeyStyle
	h.Styles.ShortDesc = hintDescStyle
	h.Styles.ShortSeparator = barStyle
	h.Styles.Ellipsis = hintDescStyle
	line := h.ShortHelpView(hints)
	if line == "" {
		line = hintDescStyle.Render("no shortcuts here")
	}
	return fillBar(barStyle, line, m.width)
}

// RenderStatusBar shows the last status, prefixed with its code.
func RenderStatusBar(m Model) string {
	style := statusStyle
	if m.status.IsErr {
		style = statusErrStyle
	}
	text := strings.TrimSpace(m.status.Text)
	if text == "" {
		text = "Ready"
	}
	line := style.Render(text)
	if code := strings.TrimSpace(m.status.Code); code != "" {
		line = statusCodeStyle.Render("["+code+"]") + style.Render(" "+text)
	}
	return fillBar(style, line, m.width)
}

// fillBar flattens line to one row of exactly width cells on the bar's
// background.
func fillBar(style lipgloss.Style, line string, width int) string {
	width = max(1, width)
	line = ansi.Truncate(strings.ReplaceAll(line, "\n", " "), width, "")
	if gap := width - ansi.StringWidth(line); gap > 0 {
		line += style.Render(strings.Repeat(" ", gap))
	}
	return line
}
