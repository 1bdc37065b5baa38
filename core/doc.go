// Package core is the shell around the proportion panes: the root model and
// its key routing, tabs and pane hosts, the popup stack, key bindings, the
// command registry, the picker state machine and the editable cell.
//
// Rendering primitives live in widgets and concrete popups in screens.
package core
