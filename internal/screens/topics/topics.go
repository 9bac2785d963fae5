package topics

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/skand/proctor/internal/exam"
	"github.com/skand/proctor/internal/router"
	"github.com/skand/proctor/internal/screen"
	"github.com/skand/proctor/internal/screens/playground"
	"github.com/skand/proctor/internal/topic"
	"github.com/skand/proctor/internal/ui/components"
	"github.com/skand/proctor/internal/ui/layout"
	"github.com/skand/proctor/internal/ui/theme"
)

const (
	focusCustomName = iota
	focusCustomSubs
)

// TopicsScreen selects the test topic: a catalog entry or a custom one.
type TopicsScreen struct {
	deps    playground.Deps
	student exam.StudentInfo

	menu components.Menu

	custom     bool
	customName components.TextInput
	customSubs components.TextInput
	focus      int
	errMsg     string
}

var _ screen.Screen = (*TopicsScreen)(nil)
var _ screen.KeyHintProvider = (*TopicsScreen)(nil)
var _ screen.EscapeGuard = (*TopicsScreen)(nil)

// New creates the topic selection screen for the given student.
func New(deps playground.Deps, student exam.StudentInfo) *TopicsScreen {
	s := &TopicsScreen{
		deps:    deps,
		student: student,
	}

	items := make([]components.MenuItem, 0, len(topic.Catalog())+1)
	for _, t := range topic.Catalog() {
		t := t
		detail := strings.Join(t.Subtopics, ", ")
		items = append(items, components.MenuItem{
			Label:  t.Name,
			Detail: detail,
			Action: func() tea.Cmd { return s.begin(t) },
		})
	}
	items = append(items, components.MenuItem{
		Label: "Create your own topic...",
		Action: func() tea.Cmd {
			s.enterCustom()
			return s.customName.Focus()
		},
	})

	s.menu = components.NewMenu(items)
	return s
}

func (s *TopicsScreen) Init() tea.Cmd {
	return nil
}

func (s *TopicsScreen) Title() string {
	return "Choose a Topic"
}

// BlocksEscape keeps escape inside the screen while the custom topic
// form is open, so it closes the form instead of popping the screen.
func (s *TopicsScreen) BlocksEscape() bool {
	return s.custom
}

func (s *TopicsScreen) KeyHints() []layout.KeyHint {
	if s.custom {
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Start test"},
			{Key: "Esc", Description: "Back to catalog"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start test"},
		{Key: "Esc", Description: "Back"},
	}
}

// begin launches the exam for the chosen topic.
func (s *TopicsScreen) begin(t topic.Topic) tea.Cmd {
	deps := s.deps
	student := s.student
	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: playground.New(deps, student, t),
		}
	}
}

func (s *TopicsScreen) enterCustom() {
	s.custom = true
	s.focus = focusCustomName
	s.errMsg = ""
	s.customName = components.NewTextInput("Topic name, e.g. Distributed Systems", 60)
	s.customSubs = components.NewTextInput("Focus areas, comma separated (optional)", 120)
}

func (s *TopicsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s.forwardCustom(msg)
	}

	if !s.custom {
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}

	switch kmsg.String() {
	case "esc":
		s.custom = false
		s.errMsg = ""
		return s, nil
	case "tab", "down":
		return s, s.setFocus((s.focus + 1) % 2)
	case "shift+tab", "up":
		return s, s.setFocus((s.focus + 1) % 2)
	case "enter":
		if s.focus == focusCustomName {
			return s, s.setFocus(focusCustomSubs)
		}
		return s.submitCustom()
	}

	return s.forwardCustom(msg)
}

func (s *TopicsScreen) forwardCustom(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if !s.custom {
		return s, nil
	}
	var cmd tea.Cmd
	if s.focus == focusCustomName {
		s.customName, cmd = s.customName.Update(msg)
	} else {
		s.customSubs, cmd = s.customSubs.Update(msg)
	}
	return s, cmd
}

func (s *TopicsScreen) setFocus(f int) tea.Cmd {
	s.focus = f
	if f == focusCustomName {
		s.customSubs.Blur()
		return s.customName.Focus()
	}
	s.customName.Blur()
	return s.customSubs.Focus()
}

func (s *TopicsScreen) submitCustom() (screen.Screen, tea.Cmd) {
	t, ok := topic.NewCustom(s.customName.Value(), s.customSubs.Value())
	if !ok {
		s.errMsg = "Give your topic a name first."
		s.customName.Submit(false)
		return s, s.setFocus(focusCustomName)
	}
	s.errMsg = ""
	return s, s.begin(t)
}

func (s *TopicsScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).Bold(true).
		Render("What would you like to be tested on, "+s.student.Name+"?"))
	b.WriteString("\n\n")

	if s.custom {
		label := func(text string, active bool) string {
			st := lipgloss.NewStyle().Foreground(theme.TextDim)
			if active {
				st = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
			}
			return st.Render(text)
		}

		form := label("Topic", s.focus == focusCustomName) + "\n" +
			s.customName.View() + "\n\n" +
			label("Focus areas", s.focus == focusCustomSubs) + "\n" +
			s.customSubs.View()

		card := theme.Card.Width(min(width-8, 64)).Render(form)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
		b.WriteString("\n\n")

		if s.errMsg != "" {
			b.WriteString(lipgloss.NewStyle().
				Width(width).Align(lipgloss.Center).Foreground(theme.Error).
				Render(s.errMsg))
			b.WriteString("\n")
		}
		return b.String()
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View()))
	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
