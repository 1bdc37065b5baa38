// Package widgets draws the pieces every view is assembled from: pane
// chrome, splits, the factor grid, lists, the bank sparkline and popup
// cards. Widgets hold no state between renders and never see key events.
package widgets
