package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/skand/proctor/internal/exam"
	"github.com/skand/proctor/internal/insights"
	"github.com/skand/proctor/internal/quizgen"
	"github.com/skand/proctor/internal/report"
	"github.com/skand/proctor/internal/router"
	"github.com/skand/proctor/internal/screen"
	"github.com/skand/proctor/internal/screens/playground"
	"github.com/skand/proctor/internal/screens/welcome"
	"github.com/skand/proctor/internal/store"
	"github.com/skand/proctor/internal/ui/layout"
)

// Options carries the dependencies the TUI needs.
type Options struct {
	EventRepo    store.EventRepo
	SnapshotRepo store.SnapshotRepo
	Generator    quizgen.Generator
	Insights     insights.Generator
	Exporter     report.Exporter
	ExamConfig   exam.Config
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel builds the screen dependency bundle and starts at the
// identity capture screen.
func newAppModel(opts Options) AppModel {
	cfg := opts.ExamConfig
	if cfg.Duration == 0 {
		cfg = exam.DefaultConfig()
	}

	deps := playground.Deps{
		Generator: opts.Generator,
		Insights:  opts.Insights,
		Events:    opts.EventRepo,
		Snapshots: opts.SnapshotRepo,
		Exporter:  opts.Exporter,
		Config:    cfg,
	}
	deps.Restart = func() screen.Screen {
		return welcome.New(deps)
	}

	return AppModel{
		router: router.New(welcome.New(deps)),
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Screens that run their own escape handling (the exam's
			// quit confirmation, the custom topic form) get the key.
			if guard, ok := m.router.Active().(screen.EscapeGuard); ok && guard.BlocksEscape() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	status := ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.HeaderStatus()
		}
	}

	header := layout.RenderHeader(title, status, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = append(hints, footerHints...)
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
