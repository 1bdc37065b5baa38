package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/proportion/core"
)

var hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))

// keyHint labels the first key bound to each action in scope, joined by "/".
// It is empty when none of the actions is bound.
func keyHint(keys *core.KeyRegistry, scope, label string, actions ...string) string {
	var bound []string
	for _, a := range actions {
		if ks := keys.KeysFor(a, scope); len(ks) > 0 {
			bound = append(bound, ks[0])
		}
	}
	if len(bound) == 0 {
		return ""
	}
	return strings.Join(bound, "/") + " " + label
}

func hintLine(parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return hintStyle.Render(strings.Join(kept, "  "))
}
