package core

import tea "github.com/charmbracelet/bubbletea"

// Screen is a popup drawn over the active tab. While any screen is open the
// top one receives every key.
type Screen interface {
	Update(msg tea.Msg) (next Screen, cmd tea.Cmd, done bool)
	View(width, height int) string
	Scope() string
	Title() string
}

type screenStack []Screen

func (s *screenStack) push(sc Screen) {
	if sc != nil {
		*s = append(*s, sc)
	}
}

func (s *screenStack) pop() {
	if n := len(*s); n > 0 {
		(*s)[n-1] = nil
		*s = (*s)[:n-1]
	}
}

func (s screenStack) top() Screen {
	if len(s) == 0 {
		return nil
	}
	return s[len(s)-1]
}

// update hands msg to the top screen and applies its answer: done pops it,
// a new screen replaces it.
func (s *screenStack) update(msg tea.Msg) tea.Cmd {
	top := s.top()
	if top == nil {
		return nil
	}
	next, cmd, done := top.Update(msg)
	switch {
	case done:
		s.pop()
	case next != nil:
		(*s)[len(*s)-1] = next
	}
	return cmd
}
