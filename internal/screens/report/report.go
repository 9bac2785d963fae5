package report

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	rpt "github.com/skand/proctor/internal/report"
	"github.com/skand/proctor/internal/router"
	"github.com/skand/proctor/internal/screen"
	"github.com/skand/proctor/internal/ui/components"
	"github.com/skand/proctor/internal/ui/layout"
	"github.com/skand/proctor/internal/ui/theme"
)

// exportedMsg is sent when the HTML export attempt finishes.
type exportedMsg struct {
	Path string
	Err  error
}

// ReportScreen displays the scored report with AI insights.
type ReportScreen struct {
	model    *rpt.Model
	exporter rpt.Exporter
	restart  func() screen.Screen

	scroll     int
	exportNote string
}

var _ screen.Screen = (*ReportScreen)(nil)
var _ screen.KeyHintProvider = (*ReportScreen)(nil)

// New creates a report screen over an assembled report model.
func New(model *rpt.Model, exporter rpt.Exporter, restart func() screen.Screen) *ReportScreen {
	return &ReportScreen{
		model:    model,
		exporter: exporter,
		restart:  restart,
	}
}

func (s *ReportScreen) Init() tea.Cmd {
	return nil
}

func (s *ReportScreen) Title() string {
	return "Test Report"
}

func (s *ReportScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "E", Description: "Export HTML"},
		{Key: "R", Description: "New test"},
	}
}

func (s *ReportScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case exportedMsg:
		if msg.Err != nil {
			s.exportNote = "Export failed: " + msg.Err.Error()
		} else {
			s.exportNote = "Saved to " + msg.Path
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.scroll > 0 {
				s.scroll--
			}
		case "down", "j":
			s.scroll++
		case "e", "E":
			return s, s.export()
		case "r", "R":
			if s.restart != nil {
				fresh := s.restart()
				return s, func() tea.Msg {
					return router.ResetStackMsg{Screen: fresh}
				}
			}
		}
	}
	return s, nil
}

func (s *ReportScreen) export() tea.Cmd {
	if s.exporter == nil {
		return func() tea.Msg {
			return exportedMsg{Err: fmt.Errorf("no exporter configured")}
		}
	}
	exporter := s.exporter
	model := s.model
	return func() tea.Msg {
		path, err := exporter.Export(model)
		return exportedMsg{Path: path, Err: err}
	}
}

func (s *ReportScreen) View(width, height int) string {
	m := s.model
	if m == nil {
		return ""
	}

	var b strings.Builder

	// Grade hero.
	grade := lipgloss.NewStyle().
		Foreground(theme.Primary).Bold(true).
		Render(fmt.Sprintf("  Grade: %s  ", m.Insights.Grade))
	hero := theme.Card.Width(min(width-8, 60)).Align(lipgloss.Center).Render(
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
			Render(m.StudentName+"  ·  "+m.TopicName) + "\n\n" +
			grade + "\n\n" +
			lipgloss.NewStyle().Foreground(theme.Text).
				Render(fmt.Sprintf("%d/%d points  ·  %d%%", m.Score, m.MaxScore, m.Percentage)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, hero))
	b.WriteString("\n\n")

	// Stats line.
	stats := fmt.Sprintf("Questions: %d     Correct: %d     Avg time: %ds     Time used: %s",
		m.QuestionCount, m.CorrectCount, m.AvgTimeSecs, formatClock(m.TimeUsedSecs))
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
		Render(stats))
	b.WriteString("\n\n")

	if m.FallbackUsed {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Warning).Italic(true).
			Render("AI insights were unavailable; showing a basic summary."))
		b.WriteString("\n\n")
	}

	b.WriteString(s.renderList(width, "Strengths", m.Insights.Strengths, theme.Success))
	b.WriteString(s.renderList(width, "Areas to improve", m.Insights.Weaknesses, theme.Error))
	b.WriteString(s.renderList(width, "Recommendations", m.Insights.Recommendations, theme.Secondary))

	if m.Insights.StudyPlan != "" {
		b.WriteString(sectionHeader(width, "Study plan"))
		plan := lipgloss.NewStyle().
			Width(min(width-12, 70)).Foreground(theme.Text).
			Render(m.Insights.StudyPlan)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, plan))
		b.WriteString("\n\n")
	}

	if len(m.Insights.TopicMastery) > 0 {
		b.WriteString(sectionHeader(width, "Topic mastery"))
		barWidth := min(width-20, 50)
		for _, concept := range sortedConcepts(m.Insights.TopicMastery) {
			pct := m.Insights.TopicMastery[concept]
			bar := components.NewProgressBar(padConcept(concept), float64(pct)/100, true, barWidth)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(m.Answers) > 0 {
		b.WriteString(sectionHeader(width, "Question review"))
		lineWidth := min(width-12, 70)
		for _, a := range m.Answers {
			mark := lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
			if !a.Correct {
				mark = lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
			}
			head := fmt.Sprintf("Q%d  %s  %d/%d pts  %ds",
				a.QuestionNumber, mark, a.PointsAwarded, a.MaxPoints, a.TimeSpentSecs)
			if a.HintUsed {
				head += "  (hint)"
			}
			row := lipgloss.NewStyle().Foreground(theme.Text).Render(head) + "\n" +
				lipgloss.NewStyle().Foreground(theme.TextDim).
					Render("  "+truncate(a.QuestionText, lineWidth-2))
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Width(lineWidth).Render(row)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if m.Insights.Encouragement != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Accent).Italic(true).
			Render(m.Insights.Encouragement))
		b.WriteString("\n\n")
	}

	if s.exportNote != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Secondary).
			Render(s.exportNote))
		b.WriteString("\n")
	}

	// Crude scroll: drop leading lines.
	lines := strings.Split(b.String(), "\n")
	maxScroll := len(lines) - height
	if maxScroll < 0 {
		maxScroll = 0
	}
	if s.scroll > maxScroll {
		s.scroll = maxScroll
	}
	return strings.Join(lines[s.scroll:], "\n")
}

func (s *ReportScreen) renderList(width int, title string, items []string, accent color.Color) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(sectionHeader(width, title))
	for _, item := range items {
		line := lipgloss.NewStyle().Foreground(accent).Render("  • ") +
			lipgloss.NewStyle().Foreground(theme.Text).Render(item)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Width(min(width-12, 70)).Render(line)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

func sectionHeader(width int, title string) string {
	divider := lipgloss.NewStyle().Foreground(theme.Border).
		Render(strings.Repeat("─", min(width-8, 60)))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(title)) + "\n" +
		lipgloss.PlaceHorizontal(width, lipgloss.Center, divider) + "\n\n"
}

func sortedConcepts(m map[string]int) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func padConcept(s string) string {
	const w = 18
	if len(s) > w {
		return s[:w-1] + "…"
	}
	return s + strings.Repeat(" ", w-len(s))
}

func truncate(s string, w int) string {
	if w < 4 || len(s) <= w {
		return s
	}
	return s[:w-1] + "…"
}

func formatClock(secs int) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
