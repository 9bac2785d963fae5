package components

import (
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// TextArea wraps bubbles/textarea for long-form written answers.
type TextArea struct {
	Model textarea.Model
}

// NewTextArea creates a new multi-line answer box.
func NewTextArea(placeholder string, width, height int) TextArea {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	if width > 0 {
		ta.SetWidth(width)
	}
	if height > 0 {
		ta.SetHeight(height)
	}
	return TextArea{Model: ta}
}

// Init returns the initial command.
func (t TextArea) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextArea) Update(msg tea.Msg) (TextArea, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the answer box.
func (t TextArea) View() string {
	return t.Model.View()
}

// Value returns the current text with surrounding whitespace removed.
func (t TextArea) Value() string {
	return strings.TrimSpace(t.Model.Value())
}

// Reset clears the text.
func (t *TextArea) Reset() {
	t.Model.Reset()
}

// Focus gives the box keyboard focus.
func (t *TextArea) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes keyboard focus.
func (t *TextArea) Blur() {
	t.Model.Blur()
}

// SetSize resizes the box.
func (t *TextArea) SetSize(width, height int) {
	t.Model.SetWidth(width)
	t.Model.SetHeight(height)
}
