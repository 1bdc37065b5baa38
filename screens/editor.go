package screens

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/proportion/core"
	"github.com/jask/proportion/widgets"
)

type EditorField struct {
	Key         string
	Label       string
	Value       string
	Placeholder string
	// Validate runs on submit. A non-nil error keeps the editor open and is
	// shown under the fields.
	Validate func(value string) error
}

// EditorScreen is a small form. Enter validates every field and submits;
// esc closes without submitting.
type EditorScreen struct {
	title    string
	fields   []EditorField
	inputs   []textinput.Model
	focus    int
	err      string
	onSubmit func(values map[string]string) tea.Msg
}

var editorErrStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))

func NewEditorScreen(title string, fields []EditorField, onSubmit func(values map[string]string) tea.Msg) *EditorScreen {
	s := &EditorScreen{title: title, fields: fields, onSubmit: onSubmit}
	for _, f := range fields {
		in := textinput.New()
		in.Prompt = f.Label + ": "
		in.PromptStyle = promptStyle
		in.Placeholder = f.Placeholder
		in.SetValue(f.Value)
		s.inputs = append(s.inputs, in)
	}
	if len(s.inputs) > 0 {
		s.inputs[0].Focus()
	}
	return s
}

func (s *EditorScreen) Title() string { return s.title }
func (s *EditorScreen) Scope() string { return core.ScopeEditorScreen }

// Err is the validation message on display, if any.
func (s *EditorScreen) Err() string { return s.err }

func (s *EditorScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	if len(s.inputs) == 0 {
		return s, nil, true
	}
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.Type {
		case tea.KeyEsc:
			return s, nil, true
		case tea.KeyTab:
			s.focusField(s.focus + 1)
			return s, nil, false
		case tea.KeyShiftTab:
			s.focusField(s.focus - 1)
			return s, nil, false
		case tea.KeyEnter:
			return s.submit()
		}
	}
	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return s, cmd, false
}

func (s *EditorScreen) focusField(i int) {
	s.inputs[s.focus].Blur()
	s.focus = (i + len(s.inputs)) % len(s.inputs)
	s.inputs[s.focus].Focus()
}

func (s *EditorScreen) submit() (core.Screen, tea.Cmd, bool) {
	values := make(map[string]string, len(s.fields))
	for i, f := range s.fields {
		v := s.inputs[i].Value()
		if f.Validate != nil {
			if err := f.Validate(v); err != nil {
				s.err = sentence(err.Error())
				s.focusField(i)
				return s, nil, false
			}
		}
		values[f.Key] = v
	}
	s.err = ""
	if s.onSubmit == nil {
		return s, nil, true
	}
	return s, func() tea.Msg { return s.onSubmit(values) }, true
}

// sentence capitalises msg and ends it with a full stop for display.
func sentence(msg string) string {
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return msg
	}
	r, n := utf8.DecodeRuneInString(msg)
	msg = string(unicode.ToUpper(r)) + msg[n:]
	if !strings.HasSuffix(msg, ".") && !strings.HasSuffix(msg, "?") && !strings.HasSuffix(msg, "!") {
		msg += "."
	}
	return msg
}

func (s *EditorScreen) View(width, height int) string {
	rows := make([]string, 0, len(s.inputs)+3)
	for i := range s.inputs {
		s.inputs[i].Width = max(8, width-len(s.inputs[i].Prompt)-1)
		rows = append(rows, s.inputs[i].View())
	}
	if s.err != "" {
		rows = append(rows, "", editorErrStyle.Render(s.err))
	}
	if len(s.inputs) > 1 {
		rows = append(rows, "", dimStyle.Render("tab next field"))
	}
	return widgets.Clip(strings.Join(rows, "\n"), width, height)
}
