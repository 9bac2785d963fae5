package welcome

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/skand/proctor/internal/exam"
	"github.com/skand/proctor/internal/router"
	"github.com/skand/proctor/internal/screen"
	"github.com/skand/proctor/internal/screens/history"
	"github.com/skand/proctor/internal/screens/playground"
	"github.com/skand/proctor/internal/screens/topics"
	"github.com/skand/proctor/internal/store"
	"github.com/skand/proctor/internal/ui/components"
	"github.com/skand/proctor/internal/ui/layout"
	"github.com/skand/proctor/internal/ui/theme"
)

const (
	focusName = iota
	focusPRN
)

// prefillMsg carries the last stored student identity, if any.
type prefillMsg struct {
	Student *store.StudentData
}

// WelcomeScreen captures the student identity before topic selection.
type WelcomeScreen struct {
	deps playground.Deps

	name components.TextInput
	prn  components.TextInput

	focus  int
	errMsg string
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates the identity capture screen.
func New(deps playground.Deps) *WelcomeScreen {
	w := &WelcomeScreen{
		deps: deps,
		name: components.NewTextInput("Your full name", 60),
		prn:  components.NewTextInput("Registration number (PRN)", 30),
	}
	return w
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tea.Batch(w.loadPrefill(), w.name.Focus())
}

func (w *WelcomeScreen) Title() string {
	return "Welcome"
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Continue"},
		{Key: "F2", Description: "Past tests"},
	}
}

// loadPrefill reads the last student from the latest snapshot.
func (w *WelcomeScreen) loadPrefill() tea.Cmd {
	snaps := w.deps.Snapshots
	return func() tea.Msg {
		if snaps == nil {
			return prefillMsg{}
		}
		snap, err := snaps.Latest(context.Background())
		if err != nil || snap == nil {
			return prefillMsg{}
		}
		return prefillMsg{Student: snap.Data.LastStudent}
	}
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case prefillMsg:
		if msg.Student != nil {
			w.name.SetValue(msg.Student.Name)
			w.prn.SetValue(msg.Student.PRN)
		}
		return w, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			return w, w.setFocus((w.focus + 1) % 2)
		case "shift+tab", "up":
			return w, w.setFocus((w.focus + 1) % 2)
		case "enter":
			if w.focus == focusName {
				return w, w.setFocus(focusPRN)
			}
			return w.submit()
		case "f2":
			return w, func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(w.deps.Events)}
			}
		}
	}

	var cmd tea.Cmd
	if w.focus == focusName {
		w.name, cmd = w.name.Update(msg)
	} else {
		w.prn, cmd = w.prn.Update(msg)
	}
	return w, cmd
}

func (w *WelcomeScreen) setFocus(f int) tea.Cmd {
	w.focus = f
	if f == focusName {
		w.prn.Blur()
		return w.name.Focus()
	}
	w.name.Blur()
	return w.prn.Focus()
}

// submit validates both fields and moves on to topic selection.
func (w *WelcomeScreen) submit() (screen.Screen, tea.Cmd) {
	name := w.name.Value()
	prn := w.prn.Value()

	nameOK := name != ""
	prnOK := prn != ""
	w.name.Submit(nameOK)
	w.prn.Submit(prnOK)

	if !nameOK || !prnOK {
		w.errMsg = "Both name and PRN are required."
		if !nameOK {
			return w, w.setFocus(focusName)
		}
		return w, w.setFocus(focusPRN)
	}
	w.errMsg = ""

	student := exam.StudentInfo{Name: name, PRN: prn}
	return w, tea.Batch(
		w.persistStudent(name, prn),
		func() tea.Msg {
			return router.PushScreenMsg{Screen: topics.New(w.deps, student)}
		},
	)
}

// persistStudent stores the identity so the next run prefills the form.
func (w *WelcomeScreen) persistStudent(name, prn string) tea.Cmd {
	snaps := w.deps.Snapshots
	return func() tea.Msg {
		if snaps == nil {
			return nil
		}
		ctx := context.Background()
		_ = snaps.Save(ctx, &store.Snapshot{
			Timestamp: time.Now(),
			Data: store.SnapshotData{
				Version:     1,
				LastStudent: &store.StudentData{Name: name, PRN: prn},
			},
		})
		_ = snaps.Prune(ctx, 5)
		return nil
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, RenderBanner(width)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
		Render("AI-proctored topic tests with adaptive difficulty"))
	b.WriteString("\n\n\n")

	label := func(text string, active bool) string {
		st := lipgloss.NewStyle().Foreground(theme.TextDim)
		if active {
			st = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		return st.Render(text)
	}

	form := label("Name", w.focus == focusName) + "\n" +
		w.name.View() + "\n\n" +
		label("PRN", w.focus == focusPRN) + "\n" +
		w.prn.View()

	card := theme.Card.Width(min(width-8, 56)).Render(form)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n\n")

	if w.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(w.errMsg))
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
		Render("Press Enter to choose your topic"))

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
