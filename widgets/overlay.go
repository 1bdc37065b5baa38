package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Popup is the card a screen is drawn in. It sizes itself to its body within
// the bounds it is given.
type Popup struct {
	Title string
	Body  string
}

const popupMinWidth = 24

func (p Popup) Render(width, height int) string {
	rows := splitRows(p.Body)
	w := max(widest(rows)+4, ansi.StringWidth(p.Title)+8, popupMinWidth)
	w = min(w, width)
	h := min(len(rows)+2, height)
	return Pane{Title: p.Title, Content: p.Body, Selected: true}.Render(w, h)
}

// Overlay draws card centred over base. base is cut or padded to height rows;
// rows the card does not cover are left as they are.
func Overlay(base, card string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	canvas := fitRows(splitRows(base), height)
	top := splitRows(card)
	cw := min(widest(top), width)
	x := max(0, (width-cw)/2)
	y := max(0, (height-len(top))/2)
	for i, line := range top {
		row := y + i
		if row >= height {
			break
		}
		under := padRight(canvas[row], width)
		left := ansi.Truncate(under, x, "")
		right := ansi.TruncateLeft(under, x+cw, "")
		canvas[row] = padRight(left+padRight(line, cw)+right, width)
	}
	return strings.Join(canvas, "\n")
}
