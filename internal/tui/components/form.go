package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/projmeta/internal/tui"
)

// Form collects a fixed sequence of text fields.
// Enter advances to the next field; on the last field it submits when every field is valid.
type Form struct {
	title     string
	fields    []TextField
	focusIdx  int
	submitted bool
	cancelled bool
	keys      formKeyMap
}

type formKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Cancel key.Binding
}

func defaultFormKeyMap() formKeyMap {
	return formKeyMap{
		Next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
	}
}

// NewForm creates a new form with the given title and fields.
func NewForm(title string, fields ...TextField) Form {
	return Form{
		title:  title,
		fields: fields,
		keys:   defaultFormKeyMap(),
	}
}

// Init implements tea.Model.
func (f Form) Init() tea.Cmd {
	if len(f.fields) > 0 {
		return f.fields[0].Focus()
	}
	return nil
}

// Update implements tea.Model.
func (f Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, f.keys.Cancel):
			f.cancelled = true
			return f, tea.Quit
		case key.Matches(msg, f.keys.Next):
			return f.move(1)
		case key.Matches(msg, f.keys.Prev):
			return f.move(-1)
		case key.Matches(msg, f.keys.Submit):
			if f.focusIdx < len(f.fields)-1 {
				return f.move(1)
			}
			if f.validateAll() {
				f.submitted = true
				return f, tea.Quit
			}
			return f, nil
		}
	}

	if f.focusIdx < len(f.fields) {
		var cmd tea.Cmd
		f.fields[f.focusIdx], cmd = f.fields[f.focusIdx].Update(msg)
		return f, cmd
	}
	return f, nil
}

// move shifts focus by delta. Moving forward requires the current field to be valid.
func (f Form) move(delta int) (tea.Model, tea.Cmd) {
	target := f.focusIdx + delta
	if target < 0 || target >= len(f.fields) {
		return f, nil
	}
	if delta > 0 {
		if err := f.fields[f.focusIdx].Validate(); err != nil {
			return f, nil
		}
	}

	f.fields[f.focusIdx].Blur()
	f.focusIdx = target
	return f, f.fields[f.focusIdx].Focus()
}

func (f *Form) validateAll() bool {
	valid := true
	for i := range f.fields {
		if err := f.fields[i].Validate(); err != nil {
			valid = false
		}
	}
	return valid
}

// View implements tea.Model.
func (f Form) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render(f.title))
	b.WriteString("\n\n")

	for i, field := range f.fields {
		b.WriteString(field.View())
		if i < len(f.fields)-1 {
			b.WriteString("\n\n")
		}
	}

	b.WriteString(tui.HelpStyle.Render("\ntab next • shift+tab prev • enter submit • esc cancel"))

	return b.String()
}

// Submitted returns true if the form was submitted.
func (f Form) Submitted() bool {
	return f.submitted
}

// Cancelled returns true if the form was cancelled.
func (f Form) Cancelled() bool {
	return f.cancelled
}

// FocusIndex returns the index of the focused field.
func (f Form) FocusIndex() int {
	return f.focusIdx
}

// FieldValue returns the value of a field by index.
func (f Form) FieldValue(idx int) string {
	if idx >= 0 && idx < len(f.fields) {
		return f.fields[idx].Value()
	}
	return ""
}
