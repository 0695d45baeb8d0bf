package ui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"techsphere/internal/site"
)

const (
	formWidth     = 48
	messageHeight = 4
)

// ContactForm holds the contact page inputs. It has no submit handler:
// the send button exists but does nothing.
type ContactForm struct {
	layout  site.ContactForm
	inputs  map[string]*textinput.Model
	message textarea.Model
	focused string // field name being edited, "" when none
}

// Ensure ContactForm implements View.
var _ View = (*ContactForm)(nil)

// NewContactForm creates empty inputs for the fields described by layout.
func NewContactForm(layout site.ContactForm) *ContactForm {
	f := &ContactForm{
		layout: layout,
		inputs: make(map[string]*textinput.Model),
	}
	for _, field := range layout.Fields {
		if field.Multiline {
			ta := textarea.New()
			ta.Placeholder = field.Placeholder
			ta.ShowLineNumbers = false
			ta.Prompt = ""
			ta.SetWidth(formWidth - 4)
			ta.SetHeight(messageHeight)
			ta.Blur()
			f.message = ta
			continue
		}
		ti := textinput.New()
		ti.Placeholder = field.Placeholder
		ti.Prompt = ""
		ti.Width = formWidth - 5
		ti.Blur()
		f.inputs[field.Name] = &ti
	}
	return f
}

// Fields returns the form's field descriptions in order.
func (f *ContactForm) Fields() []site.FormField {
	return f.layout.Fields
}

// Submit returns the submit button label.
func (f *ContactForm) Submit() string {
	return f.layout.Submit
}

// Editing reports whether a field has keyboard focus.
func (f *ContactForm) Editing() bool {
	return f.focused != ""
}

// Focused returns the name of the field being edited.
func (f *ContactForm) Focused() string {
	return f.focused
}

// Focus starts editing the named field. Unknown names blur the form.
func (f *ContactForm) Focus(name string) tea.Cmd {
	f.Blur()
	if ti, ok := f.inputs[name]; ok {
		f.focused = name
		return ti.Focus()
	}
	if f.isMultiline(name) {
		f.focused = name
		return f.message.Focus()
	}
	return nil
}

// Blur stops editing.
func (f *ContactForm) Blur() {
	for _, ti := range f.inputs {
		ti.Blur()
	}
	f.message.Blur()
	f.focused = ""
}

// Multiline reports whether the field being edited accepts newlines.
func (f *ContactForm) Multiline() bool {
	return f.isMultiline(f.focused)
}

// Value returns the current text of the named field.
func (f *ContactForm) Value(name string) string {
	if ti, ok := f.inputs[name]; ok {
		return ti.Value()
	}
	if f.isMultiline(name) {
		return f.message.Value()
	}
	return ""
}

// FieldView renders the input of the named field without its frame.
func (f *ContactForm) FieldView(name string) string {
	if ti, ok := f.inputs[name]; ok {
		return ti.View()
	}
	if f.isMultiline(name) {
		return f.message.View()
	}
	return ""
}

func (f *ContactForm) isMultiline(name string) bool {
	if name == "" {
		return false
	}
	for _, field := range f.layout.Fields {
		if field.Name == name {
			return field.Multiline
		}
	}
	return false
}

// Init implements View.
func (f *ContactForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View. Messages go to the field being edited.
func (f *ContactForm) Update(msg tea.Msg) (View, tea.Cmd) {
	if f.focused == "" {
		return f, nil
	}
	var cmd tea.Cmd
	if ti, ok := f.inputs[f.focused]; ok {
		*ti, cmd = ti.Update(msg)
		return f, cmd
	}
	f.message, cmd = f.message.Update(msg)
	return f, cmd
}

// View implements View. The app draws the form field by field so it can
// record click zones; this is the plain stacked rendering.
func (f *ContactForm) View() string {
	var out string
	for _, field := range f.layout.Fields {
		style := Styles.Input
		if field.Name == f.focused {
			style = Styles.InputFocused
		}
		out += style.Width(formWidth-2).Render(f.FieldView(field.Name)) + "\n"
	}
	return out + Styles.Button.Width(formWidth).Align(lipgloss.Center).Render(f.layout.Submit)
}
