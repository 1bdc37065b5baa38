package widgets

import (
	"slices"
	"strings"

	"github.com/NimbleMarkets/ntcharts/sparkline"
	"github.com/charmbracelet/lipgloss"
)

// Sparkline draws the most recent values that fit the width. Values below
// zero are drawn as zero; an all-zero series is a flat baseline.
type Sparkline struct {
	Values []float64
	Color  lipgloss.Color
}

func (s Sparkline) Render(width, height int) string {
	if width <= 0 || height <= 0 || len(s.Values) == 0 {
		return ""
	}
	values := s.Values
	if len(values) > width {
		values = values[len(values)-width:]
	}
	style := lipgloss.NewStyle()
	if s.Color != "" {
		style = style.Foreground(s.Color)
	}
	if slices.Max(values) <= 0 {
		return style.Render(strings.Repeat("▁", len(values)))
	}
	chart := sparkline.New(width, height, sparkline.WithStyle(style))
	for _, v := range values {
		chart.Push(max(v, 0))
	}
	chart.Draw()
	return chart.View()
}
