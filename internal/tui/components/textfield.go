package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vvka-141/projmeta/internal/tui"
)

// TextField is a labeled single-line input with optional validation.
type TextField struct {
	label     string
	input     textinput.Model
	focused   bool
	required  bool
	validator func(string) error
	err       error
}

var (
	focusedInputStyle = lipgloss.NewStyle().Foreground(tui.ColorPrimary)
	blurredInputStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	requiredMarker    = tui.ErrorStyle.Render(" *")
)

// NewTextField creates a new text field.
func NewTextField(label, placeholder string) TextField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	ti.Width = 46

	return TextField{
		label: label,
		input: ti,
	}
}

// WithRequired marks the field as required.
func (t TextField) WithRequired(required bool) TextField {
	t.required = required
	return t
}

// WithValidator sets a validation function run on every edit.
func (t TextField) WithValidator(fn func(string) error) TextField {
	t.validator = fn
	return t
}

// WithValue sets the initial value.
func (t TextField) WithValue(value string) TextField {
	t.input.SetValue(value)
	return t
}

// Focus focuses the text field.
func (t *TextField) Focus() tea.Cmd {
	t.focused = true
	return t.input.Focus()
}

// Blur removes focus from the text field.
func (t *TextField) Blur() {
	t.focused = false
	t.input.Blur()
}

// Update forwards msg to the underlying input and revalidates.
func (t TextField) Update(msg tea.Msg) (TextField, tea.Cmd) {
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)

	if t.validator != nil {
		t.err = t.validator(t.input.Value())
	}

	return t, cmd
}

// View renders the label, input and any validation error.
func (t TextField) View() string {
	var b strings.Builder

	b.WriteString(tui.LabelStyle.Render(t.label))
	if t.required {
		b.WriteString(requiredMarker)
	}
	b.WriteString("\n")

	style := blurredInputStyle
	if t.focused {
		style = focusedInputStyle
	}
	b.WriteString(style.Render(t.input.View()))

	if t.err != nil {
		b.WriteString("\n")
		b.WriteString(tui.ErrorStyle.Render(tui.SymbolCross + " " + t.err.Error()))
	}

	return b.String()
}

// Label returns the field label.
func (t TextField) Label() string {
	return t.label
}

// Value returns the current value.
func (t TextField) Value() string {
	return t.input.Value()
}

// Error returns the current validation error.
func (t TextField) Error() error {
	return t.err
}

// Validate runs validation and returns any error.
func (t *TextField) Validate() error {
	if t.required && strings.TrimSpace(t.input.Value()) == "" {
		t.err = ErrFieldRequired
		return t.err
	}
	if t.validator != nil {
		t.err = t.validator(t.input.Value())
		return t.err
	}
	t.err = nil
	return nil
}

// ErrFieldRequired is returned when a required field is empty.
var ErrFieldRequired = fieldError("this field is required")

type fieldError string

func (e fieldError) Error() string { return string(e) }
