package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/skand/proctor/internal/ui/theme"
)

// ChoiceList is a selector over a fixed set of answer options.
// Correctness is not known at selection time; after the answer has
// been graded the owner calls Reveal to color the chosen line.
type ChoiceList struct {
	Options  []string
	Selected int
	locked   bool
	revealed bool
	correct  bool
}

var choiceLabels = []string{"A", "B", "C", "D", "E", "F"}

// NewChoiceList creates a choice list over the given options.
func NewChoiceList(options []string) ChoiceList {
	return ChoiceList{Options: options}
}

// Init returns nil.
func (c ChoiceList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation. Selection stops once locked.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	if c.locked {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	}

	return c, nil
}

// Lock freezes the selection while grading is in flight.
func (c *ChoiceList) Lock() {
	c.locked = true
}

// Unlock re-enables navigation, clearing any reveal.
func (c *ChoiceList) Unlock() {
	c.locked = false
	c.revealed = false
}

// Reveal colors the chosen option by the grading verdict.
func (c *ChoiceList) Reveal(correct bool) {
	c.locked = true
	c.revealed = true
	c.correct = correct
}

// Value returns the text of the currently selected option.
func (c ChoiceList) Value() string {
	if c.Selected < 0 || c.Selected >= len(c.Options) {
		return ""
	}
	return c.Options[c.Selected]
}

// View renders the option list.
func (c ChoiceList) View() string {
	var s string
	for i, opt := range c.Options {
		label := "?"
		if i < len(choiceLabels) {
			label = choiceLabels[i]
		}

		prefix := "  "
		if i == c.Selected && !c.locked {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		switch {
		case c.revealed && i == c.Selected && c.correct:
			s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
		case c.revealed && i == c.Selected:
			s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
		case c.locked:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == c.Selected:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
