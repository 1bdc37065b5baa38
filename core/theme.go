package core

import "github.com/charmbracelet/lipgloss"

// Shell palette. Panes and widgets pick their own colours from the same set.
const (
	colorText   = lipgloss.Color("#cdd6f4")
	colorMuted  = lipgloss.Color("#a6adc8")
	colorDim    = lipgloss.Color("#7f849c")
	colorAccent = lipgloss.Color("#89b4fa")
	colorOK     = lipgloss.Color("#a6e3a1")
	colorWarn   = lipgloss.Color("#f9e2af")
	colorError  = lipgloss.Color("#f38ba8")
	colorBar    = lipgloss.Color("#181825")
	colorRaised = lipgloss.Color("#313244")
)

var (
	barStyle      = lipgloss.NewStyle().Background(colorBar).Foreground(colorText)
	brandStyle    = barStyle.Foreground(colorAccent).Bold(true)
	tabStyle      = barStyle.Foreground(colorDim).Padding(0, 1)
	tabOnStyle    = tabStyle.Background(colorRaised).Foreground(colorAccent).Bold(true)
	summaryStyle  = barStyle.Foreground(colorMuted)
	negativeStyle = barStyle.Foreground(colorError).Bold(true)

	statusStyle     = lipgloss.NewStyle().Background(colorRaised).Foreground(colorOK)
	statusErrStyle  = statusStyle.Foreground(colorError)
	statusCodeStyle = statusStyle.Foreground(colorWarn).Bold(true)

	hintKeyStyle  = barStyle.Foreground(colorAccent).Bold(true)
	hintDescStyle = barStyle.Foreground(colorDim)
)
