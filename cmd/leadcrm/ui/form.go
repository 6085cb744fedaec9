package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Form is a vertical stack of labeled text inputs. Tab and shift+tab
// move focus, enter on the last field submits.
type Form struct {
	Title  string
	Fields []FormField
	focus  int
}

// FormField is one labeled input in a form.
type FormField struct {
	Label string
	Input textinput.Model
}

// NewFormField builds a field with the given label and initial value.
func NewFormField(label, value, placeholder string) FormField {
	in := textinput.New()
	in.Placeholder = placeholder
	in.SetValue(value)
	in.CharLimit = 120
	in.Width = 40
	return FormField{Label: label, Input: in}
}

// NewForm builds a form and focuses its first field.
func NewForm(title string, fields ...FormField) *Form {
	f := &Form{Title: title, Fields: fields}
	if len(f.Fields) > 0 {
		f.Fields[0].Input.Focus()
	}
	return f
}

// Value returns the trimmed value of the field at index i.
func (f *Form) Value(i int) string {
	if i < 0 || i >= len(f.Fields) {
		return ""
	}
	return strings.TrimSpace(f.Fields[i].Input.Value())
}

// Update routes key events. submitted is true when the user pressed
// enter on the last field.
func (f *Form) Update(msg tea.Msg) (submitted bool, cmd tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyTab, tea.KeyDown:
			f.setFocus(f.focus + 1)
			return false, nil
		case tea.KeyShiftTab, tea.KeyUp:
			f.setFocus(f.focus - 1)
			return false, nil
		case tea.KeyEnter:
			if f.focus == len(f.Fields)-1 {
				return true, nil
			}
			f.setFocus(f.focus + 1)
			return false, nil
		}
	}

	if f.focus >= 0 && f.focus < len(f.Fields) {
		f.Fields[f.focus].Input, cmd = f.Fields[f.focus].Input.Update(msg)
	}
	return false, cmd
}

func (f *Form) setFocus(i int) {
	if len(f.Fields) == 0 {
		return
	}
	if i < 0 {
		i = len(f.Fields) - 1
	}
	if i >= len(f.Fields) {
		i = 0
	}
	f.Fields[f.focus].Input.Blur()
	f.focus = i
	f.Fields[f.focus].Input.Focus()
}

// View renders the form.
func (f *Form) View(styles Styles) string {
	var sb strings.Builder
	if f.Title != "" {
		sb.WriteString(styles.Title.Render(f.Title))
		sb.WriteString("\n")
	}
	for i, field := range f.Fields {
		label := styles.FormLabel.Render(field.Label)
		if i == f.focus {
			label = styles.FormFocus.Width(16).Render(field.Label)
		}
		sb.WriteString(label)
		sb.WriteString(field.Input.View())
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(styles.Muted.Render("tab: next field · enter: submit · esc: cancel"))
	return sb.String()
}
