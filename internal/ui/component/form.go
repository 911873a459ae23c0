package component

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rovshanmuradov/coinfolio/internal/ui/style"
)

// FieldType represents the type of form field
type FieldType int

const (
	FieldTypeText FieldType = iota
	FieldTypeNumber
	FieldTypePassword
)

// FormField represents a single form field
type FormField struct {
	Name       string
	Label      string
	Type       FieldType
	Required   bool
	Validation func(string) error
	Error      string

	input textinput.Model
}

// Value returns the current input.
func (f FormField) Value() string {
	return f.input.Value()
}

// Form is a vertical list of text inputs. Tab and shift+tab move focus;
// enter on the last field submits.
type Form struct {
	fields     []FormField
	focusIndex int
	width      int
	submitted  bool
	styles     style.Styles
}

// NewForm creates a new form component
func NewForm(styles style.Styles) *Form {
	return &Form{styles: styles}
}

// SetStyles replaces the styles, used on theme change.
func (f *Form) SetStyles(styles style.Styles) *Form {
	f.styles = styles
	return f
}

// AddField adds a field to the form
func (f *Form) AddField(name string, fieldType FieldType, label string, required bool, placeholder string) *Form {
	ti := textinput.New()
	ti.Width = 40
	ti.Placeholder = placeholder
	ti.Prompt = ""

	switch fieldType {
	case FieldTypePassword:
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	case FieldTypeNumber:
		ti.Validate = numeric
		if placeholder == "" {
			ti.Placeholder = "0"
		}
	}

	f.fields = append(f.fields, FormField{
		Name:     name,
		Label:    label,
		Type:     fieldType,
		Required: required,
		input:    ti,
	})
	if len(f.fields) == 1 {
		f.fields[0].input.Focus()
	}
	return f
}

// numeric rejects input that could never become a number.
func numeric(s string) error {
	for _, r := range s {
		if (r < '0' || r > '9') && r != '.' && r != '-' && r != 'e' && r != 'E' && r != '+' {
			return errNotNumeric
		}
	}
	return nil
}

var errNotNumeric = errors.New("not a number")

// SetFieldValue sets the value of a field
func (f *Form) SetFieldValue(name, value string) *Form {
	if field := f.field(name); field != nil {
		field.input.SetValue(value)
		field.input.CursorEnd()
	}
	return f
}

// SetFieldValidation sets a validation function for a field
func (f *Form) SetFieldValidation(name string, validation func(string) error) *Form {
	if field := f.field(name); field != nil {
		field.Validation = validation
	}
	return f
}

// SetWidth sets the form width
func (f *Form) SetWidth(width int) *Form {
	f.width = width
	if inputWidth := width - 4; inputWidth > 10 {
		for i := range f.fields {
			f.fields[i].input.Width = inputWidth
		}
	}
	return f
}

func (f *Form) field(name string) *FormField {
	for i := range f.fields {
		if f.fields[i].Name == name {
			return &f.fields[i]
		}
	}
	return nil
}

// GetValue returns the value of a specific field
func (f *Form) GetValue(name string) string {
	if field := f.field(name); field != nil {
		return field.Value()
	}
	return ""
}

// GetValues returns all form field values as a map
func (f *Form) GetValues() map[string]string {
	values := make(map[string]string, len(f.fields))
	for _, field := range f.fields {
		values[field.Name] = field.Value()
	}
	return values
}

// Submitted reports, once, that enter was pressed on the last field.
func (f *Form) Submitted() bool {
	s := f.submitted
	f.submitted = false
	return s
}

// FocusIndex returns the focused field.
func (f *Form) FocusIndex() int {
	return f.focusIndex
}

// Update handles form input and updates
func (f *Form) Update(msg tea.Msg) (*Form, tea.Cmd) {
	if len(f.fields) == 0 {
		return f, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab", "down":
			f.focus(f.focusIndex + 1)
			return f, textinput.Blink
		case "shift+tab", "up":
			f.focus(f.focusIndex - 1)
			return f, textinput.Blink
		case "enter":
			if f.focusIndex == len(f.fields)-1 {
				f.submitted = true
				return f, nil
			}
			f.focus(f.focusIndex + 1)
			return f, textinput.Blink
		}
	}

	field := &f.fields[f.focusIndex]
	var cmd tea.Cmd
	field.input, cmd = field.input.Update(msg)
	field.Error = ""
	return f, cmd
}

func (f *Form) focus(i int) {
	f.fields[f.focusIndex].input.Blur()
	n := len(f.fields)
	f.focusIndex = ((i % n) + n) % n
	f.fields[f.focusIndex].input.Focus()
}

// Validate runs required and custom checks, recording errors on fields.
func (f *Form) Validate() bool {
	valid := true
	for i := range f.fields {
		field := &f.fields[i]
		field.Error = ""

		if field.Required && strings.TrimSpace(field.Value()) == "" {
			field.Error = "This field is required"
			valid = false
			continue
		}
		if field.Validation != nil {
			if err := field.Validation(field.Value()); err != nil {
				field.Error = err.Error()
				valid = false
			}
		}
	}
	return valid
}

// Reset clears all form fields
func (f *Form) Reset() *Form {
	for i := range f.fields {
		f.fields[i].Error = ""
		f.fields[i].input.SetValue("")
		f.fields[i].input.Blur()
	}
	f.focusIndex = 0
	f.submitted = false
	if len(f.fields) > 0 {
		f.fields[0].input.Focus()
	}
	return f
}

// View renders the form
func (f *Form) View() string {
	var content strings.Builder

	for i, field := range f.fields {
		label := field.Label
		if field.Required {
			label += " *"
		}
		content.WriteString(f.styles.FormLabel.Render(label))
		content.WriteString("\n")

		fieldStyle := f.styles.FormInput
		if i == f.focusIndex {
			fieldStyle = f.styles.FormInputFocused
		}
		content.WriteString(fieldStyle.Render(field.input.View()))

		if field.Error != "" {
			content.WriteString("\n")
			content.WriteString(f.styles.FormError.Render("⚠ " + field.Error))
		}
		if i < len(f.fields)-1 {
			content.WriteString("\n\n")
		}
	}
	return content.String()
}
