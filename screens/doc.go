// Package screens holds the popups that open over a tab: the command
// palette, the pickers used for rows and jump mode, and the small editor
// forms for amounts and tags. Each satisfies core.Screen.
package screens
