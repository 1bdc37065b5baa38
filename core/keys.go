package core

import (
	"slices"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyBinding maps keys to an action inside some scopes. No scopes, or "*",
// means everywhere.
type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

func (b KeyBinding) appliesTo(scope string) bool {
	return len(b.Scopes) == 0 || slices.Contains(b.Scopes, "*") || slices.Contains(b.Scopes, scope)
}

// KeyRegistry answers "is this key that action here" for panes and screens.
type KeyRegistry struct {
	bindings []KeyBinding
	byAction map[string][]int
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	r := &KeyRegistry{
		bindings: slices.Clone(bindings),
		byAction: make(map[string][]int, len(bindings)),
	}
	for i, b := range r.bindings {
		r.byAction[b.Action] = append(r.byAction[b.Action], i)
	}
	return r
}

// BindingsForScope lists the bindings active in scope in declaration order.
func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.appliesTo(scope) {
			out = append(out, b)
		}
	}
	return out
}

// KeysFor returns the keys bound to action in scope.
func (r *KeyRegistry) KeysFor(action, scope string) []string {
	var out []string
	for _, i := range r.byAction[action] {
		if b := r.bindings[i]; b.appliesTo(scope) {
			out = append(out, b.Keys...)
		}
	}
	return out
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	pressed := normalizeKey(msg.String())
	for _, k := range r.KeysFor(action, scope) {
		if normalizeKey(k) == pressed {
			return true
		}
	}
	return false
}

// normalizeKey folds case for named keys ("Ctrl+K") but keeps single
// characters as typed, so "K" and "k" stay distinct.
func normalizeKey(k string) string {
	k = strings.TrimSpace(k)
	if utf8.RuneCountInString(k) == 1 {
		return k
	}
	return strings.ToLower(k)
}
