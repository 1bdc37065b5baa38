package core

import "strings"

// Scopes used by the default bindings.
const (
	ScopeBankPanel     = "pane:bank:panel"
	ScopeBankActivity  = "pane:bank:activity"
	ScopeTable         = "pane:proportion:table"
	ScopeTableEditing  = "pane:proportion:table:edit"
	ScopeTags          = "pane:proportion:tags"
	ScopeCommandScreen = "screen:command"
	ScopeEditorScreen  = "screen:editor"
	ScopeJumpScreen    = "screen:jump-picker"
	ScopePickerScreen  = "screen:picker"
)

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: []string{"*"}},
		{Keys: []string{"v"}, Action: "jump", Description: "jump mode", Scopes: []string{"*"}},
		{Keys: []string{"left"}, Action: "pane-nav", Description: "select pane", Scopes: []string{"*"}},
		{Keys: []string{"right"}, Action: "pane-nav", Description: "select pane", Scopes: []string{"*"}},
		{Keys: []string{"enter"}, Action: "pane-focus", Description: "focus pane", Scopes: []string{"*"}},
		{Keys: []string{"d"}, Action: "deposit", Description: "deposit", Scopes: []string{ScopeBankPanel}},
		{Keys: []string{"w"}, Action: "withdraw", Description: "withdraw", Scopes: []string{ScopeBankPanel}},
		{Keys: []string{"b"}, Action: "bankrupt", Description: "bankrupt", Scopes: []string{ScopeBankPanel}},
		{Keys: []string{"+"}, Action: "deposit-custom", Description: "deposit amount", Scopes: []string{ScopeBankPanel}},
		{Keys: []string{"-"}, Action: "withdraw-custom", Description: "withdraw amount", Scopes: []string{ScopeBankPanel}},
		{Keys: []string{"j", "down"}, Action: "row-down", Description: "row down", Scopes: []string{ScopeTable, ScopeTags, ScopeBankActivity}},
		{Keys: []string{"k", "up"}, Action: "row-up", Description: "row up", Scopes: []string{ScopeTable, ScopeTags, ScopeBankActivity}},
		{Keys: []string{"h", "left"}, Action: "cell-left", Description: "cell left", Scopes: []string{ScopeTable}},
		{Keys: []string{"l", "right"}, Action: "cell-right", Description: "cell right", Scopes: []string{ScopeTable}},
		{Keys: []string{"enter"}, Action: "cell-edit", Description: "edit cell", Scopes: []string{ScopeTable}},
		{Keys: []string{"g"}, Action: "goto-row", Description: "go to row", Scopes: []string{ScopeTable}},
		{Keys: []string{"enter"}, Action: "cell-confirm", Description: "confirm", Scopes: []string{ScopeTableEditing}},
		{Keys: []string{"tab", "shift+tab", "esc"}, Action: "cell-blur", Description: "leave cell", Scopes: []string{ScopeTableEditing}},
		{Keys: []string{"a"}, Action: "add-tag", Description: "add tag", Scopes: []string{ScopeTags}},
		{Keys: []string{"x"}, Action: "remove-tag", Description: "remove tag", Scopes: []string{ScopeTags}},
		{Keys: []string{"K"}, Action: "move-tag-up", Description: "move up", Scopes: []string{ScopeTags}},
		{Keys: []string{"J"}, Action: "move-tag-down", Description: "move down", Scopes: []string{ScopeTags}},
		{Keys: []string{"ctrl+k"}, Action: "open-command-palette", Description: "commands", Scopes: []string{"*"}},
		{Keys: []string{"1"}, Action: "switch-tab-1", Description: "bank", Scopes: []string{"*"}},
		{Keys: []string{"2"}, Action: "switch-tab-2", Description: "proportion", Scopes: []string{"*"}},
		{Keys: []string{"esc"}, Action: "close", Description: "close", Scopes: []string{ScopePickerScreen, ScopeCommandScreen, ScopeEditorScreen, ScopeJumpScreen}},
		{Keys: []string{"enter"}, Action: "select", Description: "select", Scopes: []string{ScopePickerScreen, ScopeCommandScreen, ScopeJumpScreen, ScopeEditorScreen}},
	}
}

func DefaultKeybindingsByAction(bindings []KeyBinding) map[string][]string {
	out := make(map[string][]string, len(bindings))
	for _, b := range bindings {
		if strings.TrimSpace(b.Action) == "" || len(b.Keys) == 0 {
			continue
		}
		if _, exists := out[b.Action]; exists {
			continue
		}
		out[b.Action] = append([]string(nil), b.Keys...)
	}
	return out
}

func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}
