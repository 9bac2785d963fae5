package playground

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/skand/proctor/internal/exam"
	"github.com/skand/proctor/internal/quizgen"
	"github.com/skand/proctor/internal/ui/theme"
)

// lowTimeWarnSecs is where the header clock turns red.
const lowTimeWarnSecs = 120

func (s *PlaygroundScreen) View(width, height int) string {
	s.width = width

	if s.confirmQuit {
		return renderQuitConfirm(width)
	}
	if s.completing || s.state.Phase == exam.PhaseComplete {
		return centerDim(width, "\n\n\n  Scoring your test and preparing the report...")
	}

	switch s.state.Phase {
	case exam.PhaseAwaitingFirst:
		return centerDim(width, "\n\n\n  Preparing your first question...\n\n  The clock starts when it arrives.")
	case exam.PhaseEvaluating:
		return s.renderQuestion(width) + "\n" +
			centerDim(width, "Evaluating your answer...")
	case exam.PhaseResult:
		return s.renderResult(width)
	case exam.PhaseActive:
		if s.state.Current == nil {
			return s.renderLoadError(width)
		}
		return s.renderQuestion(width)
	}

	return ""
}

// HeaderStatus shows question progress, score, and the countdown.
func (s *PlaygroundScreen) HeaderStatus() string {
	st := s.state

	clockStyle := lipgloss.NewStyle().Foreground(theme.Accent)
	if st.RemainingSecs <= lowTimeWarnSecs {
		clockStyle = theme.TimerLow
	}

	qNum := st.QuestionIndex
	if qNum < 1 {
		qNum = 1
	}

	return lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d  ", qNum)) +
		lipgloss.NewStyle().Foreground(theme.Secondary).
			Render(fmt.Sprintf("%d/%d pts  ", st.Score, st.MaxScore)) +
		clockStyle.Render(formatClock(st.RemainingSecs))
}

func (s *PlaygroundScreen) renderQuestion(width int) string {
	st := s.state
	q := st.Current
	if q == nil {
		return ""
	}

	var b strings.Builder

	// Question meta line.
	meta := fmt.Sprintf("  Question %d  ·  %s  ·  %s  ·  %d points",
		q.Number, kindLabel(q.Kind), titleCase(string(q.Difficulty)), q.Points)
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(meta))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 1))))
	b.WriteString("\n\n")

	// Question text.
	prompt := lipgloss.NewStyle().
		Width(min(width-8, 76)).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, prompt))
	b.WriteString("\n\n")

	// Hint box.
	if st.HintShown && q.Hint != "" {
		hint := theme.Card.
			BorderForeground(theme.Warning).
			Width(min(width-12, 70)).
			Render(lipgloss.NewStyle().Foreground(theme.Warning).Render("Hint: ") +
				lipgloss.NewStyle().Foreground(theme.Text).Render(q.Hint))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, hint))
		b.WriteString("\n\n")
	}

	// Answer area.
	if q.Kind.HasOptions() {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.answer.View()))
	}

	return b.String()
}

func (s *PlaygroundScreen) renderResult(width int) string {
	st := s.state
	ev := st.LastEvaluation
	if ev == nil {
		// Evaluator failed; next question is on its way.
		msg := "\n\n\n  " + st.LastError + "\n\n  Moving on to the next question..."
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Warning).
			Render(msg)
	}

	var b strings.Builder
	b.WriteString("\n\n")

	if ev.Correct {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).
			Foreground(theme.Success).Bold(true).
			Render(fmt.Sprintf("Correct!  +%d points", ev.PointsAwarded)))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).
			Foreground(theme.Error).Bold(true).
			Render(fmt.Sprintf("Not quite  ·  %d points", ev.PointsAwarded)))
	}
	b.WriteString("\n\n")

	if ev.Feedback != "" {
		fb := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(ev.Feedback)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, fb))
		b.WriteString("\n\n")
	}

	if !ev.Correct && ev.ReferenceAnswer != "" {
		ref := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.TextDim).
			Render("Correct answer: " + ev.ReferenceAnswer)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, ref))
		b.WriteString("\n\n")
	}

	b.WriteString(centerDim(width, "Next question coming up..."))
	return b.String()
}

func (s *PlaygroundScreen) renderLoadError(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(s.state.LastError))
	b.WriteString("\n\n")
	b.WriteString(centerDim(width, "The clock is still running. Press R to retry."))
	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Text).Bold(true).
		Render("End the test early?"))
	b.WriteString("\n")
	b.WriteString(centerDim(width, "Answers scored so far will go into your report."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end the test"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))
	return b.String()
}

func centerDim(width int, text string) string {
	return lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(text)
}

func kindLabel(k quizgen.Kind) string {
	switch k {
	case quizgen.KindMCQ:
		return "Multiple Choice"
	case quizgen.KindTrueFalse:
		return "True / False"
	case quizgen.KindDescriptive:
		return "Descriptive"
	case quizgen.KindScenario:
		return "Scenario"
	default:
		return string(k)
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
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

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
