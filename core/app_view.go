package core

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/jask/proportion/internal/store"
	"github.com/jask/proportion/widgets"
)

// popupMaxWidth bounds the popup card on wide terminals.
const popupMaxWidth = 76

// View stacks the header, the active tab, the status line and the key hints.
// The result is always exactly width x height.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	width, height := max(1, m.width), max(1, m.height)
	rows := []string{m.renderHeader(width)}
	if bodyHeight := height - 3; bodyHeight > 0 {
		rows = append(rows, m.renderBody(width, bodyHeight))
	}
	rows = append(rows, RenderStatusBar(m), RenderFooter(m))
	lines := strings.Split(strings.Join(rows, "\n"), "\n")
	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderBody(width, height int) string {
	var body string
	if tab := m.currentTab(); tab != nil {
		body = tab.Build(&m).Render(width, height)
	}
	if top := m.screens.top(); top != nil {
		w, h := min(popupMaxWidth, width-4), max(3, height-2)
		innerW, innerH := widgets.InnerSize(w, h)
		card := widgets.Popup{Title: top.Title(), Body: top.View(innerW, innerH)}.Render(w, h)
		body = widgets.Overlay(body, card, width, height)
	}
	lines := strings.Split(body, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines[:height], "\n")
}

// renderHeader puts the app name and tabs on the left and a summary of the
// store on the right.
func (m Model) renderHeader(width int) string {
	left := brandStyle.Render(" " + m.AppName + " ")
	for i, t := range m.tabs {
		style := tabStyle
		if i == m.activeTab {
			style = tabOnStyle
		}
		left += style.Render(fmt.Sprintf("%d %s", i+1, t.Title()))
	}
	right := ""
	if m.Store != nil {
		s := m.Store.Snapshot()
		bank := summaryStyle.Render("bank ")
		if s.Bank < 0 {
			bank += negativeStyle.Render(store.FormatAmount(s.Bank))
		} else {
			bank += summaryStyle.Render(store.FormatAmount(s.Bank))
		}
		right = bank + summaryStyle.Render(fmt.Sprintf(" · %d tags ", len(s.Tags)))
	}
	gap := width - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		return fillBar(barStyle, left, width)
	}
	return left + barStyle.Render(strings.Repeat(" ", gap)) + right
}
