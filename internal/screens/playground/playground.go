package playground

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/skand/proctor/internal/exam"
	"github.com/skand/proctor/internal/insights"
	"github.com/skand/proctor/internal/quizgen"
	"github.com/skand/proctor/internal/report"
	"github.com/skand/proctor/internal/router"
	"github.com/skand/proctor/internal/screen"
	rptscreen "github.com/skand/proctor/internal/screens/report"
	"github.com/skand/proctor/internal/store"
	"github.com/skand/proctor/internal/topic"
	"github.com/skand/proctor/internal/ui/components"
	"github.com/skand/proctor/internal/ui/layout"
)

// Deps bundles everything the exam flow needs. Built once in the app
// layer and handed down through the welcome and topic screens.
type Deps struct {
	Generator quizgen.Generator
	Insights  insights.Generator
	Events    store.EventRepo
	Snapshots store.SnapshotRepo
	Exporter  report.Exporter
	Config    exam.Config

	// Restart builds a fresh identity screen for the restart flow.
	Restart func() screen.Screen
}

// PlaygroundScreen runs one timed test session.
type PlaygroundScreen struct {
	deps      Deps
	state     *exam.State
	sessionID string

	choice components.ChoiceList
	answer components.TextArea

	confirmQuit bool
	completing  bool

	width int
}

var _ screen.Screen = (*PlaygroundScreen)(nil)
var _ screen.KeyHintProvider = (*PlaygroundScreen)(nil)
var _ screen.StatusProvider = (*PlaygroundScreen)(nil)
var _ screen.EscapeGuard = (*PlaygroundScreen)(nil)

// New creates a session screen for the given student and topic.
func New(deps Deps, student exam.StudentInfo, tp topic.Topic) *PlaygroundScreen {
	return &PlaygroundScreen{
		deps:      deps,
		state:     exam.Start(student, tp, deps.Config),
		sessionID: uuid.New().String(),
		width:     layout.MinWidth,
	}
}

func (s *PlaygroundScreen) Init() tea.Cmd {
	return tea.Batch(s.logStart(), s.fetchFirst(), tickCmd())
}

func (s *PlaygroundScreen) Title() string {
	return s.state.Topic.Name
}

// BlocksEscape keeps the app from popping the screen: quitting an exam
// goes through the confirmation overlay instead.
func (s *PlaygroundScreen) BlocksEscape() bool {
	return true
}

func (s *PlaygroundScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "End test"},
			{Key: "N", Description: "Keep going"},
		}
	}

	st := s.state
	switch st.Phase {
	case exam.PhaseActive:
		if st.Current == nil {
			return []layout.KeyHint{
				{Key: "R", Description: "Retry"},
				{Key: "Esc", Description: "End test"},
			}
		}
		hints := []layout.KeyHint{}
		if st.Current.Kind.HasOptions() {
			hints = append(hints,
				layout.KeyHint{Key: "↑↓", Description: "Select"},
				layout.KeyHint{Key: "Enter", Description: "Submit"},
			)
		} else {
			hints = append(hints, layout.KeyHint{Key: "Ctrl+S", Description: "Submit"})
		}
		if st.Current.Hint != "" && !st.HintShown {
			hints = append(hints, layout.KeyHint{Key: "Ctrl+E", Description: "Hint"})
		}
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "End test"})
		return hints
	default:
		return []layout.KeyHint{
			{Key: "Esc", Description: "End test"},
		}
	}
}

func (s *PlaygroundScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionMsg:
		return s.handleQuestion(msg)

	case evaluationMsg:
		return s.handleEvaluation(msg)

	case timerTickMsg:
		return s.handleTick()

	case resultElapsedMsg:
		return s, s.perform(exam.ResultElapsed(s.state, msg.Gen, s.deps.Config))

	case reportReadyMsg:
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{
				Screen: rptscreen.New(msg.Model, s.deps.Exporter, s.deps.Restart),
			}
		}

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Forward everything else (paste, blink) to the answer box.
	if s.textEntryActive() {
		var cmd tea.Cmd
		s.answer, cmd = s.answer.Update(msg)
		return s, cmd
	}

	return s, nil
}

// textEntryActive reports whether the free-text answer box has focus.
func (s *PlaygroundScreen) textEntryActive() bool {
	return !s.confirmQuit &&
		s.state.Phase == exam.PhaseActive &&
		s.state.Current != nil &&
		!s.state.Current.Kind.HasOptions()
}

func (s *PlaygroundScreen) handleQuestion(msg questionMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		exam.QuestionFailed(s.state, "Could not load the question. "+msg.Err.Error())
		return s, nil
	}

	exam.ApplyQuestion(s.state, msg.Question)

	if msg.Question.Kind.HasOptions() {
		s.choice = components.NewChoiceList(msg.Question.Options)
		return s, nil
	}

	s.answer = components.NewTextArea("Type your answer...", s.answerWidth(), 5)
	return s, s.answer.Init()
}

func (s *PlaygroundScreen) handleEvaluation(msg evaluationMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		eff := exam.EvaluationFailed(s.state, "Could not score the answer. "+msg.Err.Error(), s.deps.Config)
		return s, s.perform(eff)
	}

	eff := exam.ApplyEvaluation(s.state, msg.Question, msg.Answer, msg.Eval)
	if eff == exam.EffectNone {
		// Late verdict after forced completion.
		return s, nil
	}

	if msg.Question.Kind.HasOptions() {
		s.choice.Reveal(msg.Eval.Correct)
	}

	var cmds []tea.Cmd
	if n := len(s.state.Answers); n > 0 {
		cmds = append(cmds, s.logAnswer(s.state.Answers[n-1]))
	}
	cmds = append(cmds, s.perform(eff))
	return s, tea.Batch(cmds...)
}

func (s *PlaygroundScreen) handleTick() (screen.Screen, tea.Cmd) {
	if s.state.Phase == exam.PhaseComplete {
		return s, nil
	}

	eff := exam.Tick(s.state, s.deps.Config)
	if eff == exam.EffectComplete {
		return s, s.perform(eff)
	}
	return s, tickCmd()
}

func (s *PlaygroundScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			s.confirmQuit = false
			return s, s.perform(exam.ForceComplete(s.state, s.deps.Config))
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	if key == "esc" && s.state.Phase != exam.PhaseComplete {
		s.confirmQuit = true
		return s, nil
	}

	if s.state.Phase != exam.PhaseActive {
		return s, nil
	}

	// Generation failed: manual reload.
	if s.state.Current == nil {
		if key == "r" || key == "R" || key == "enter" {
			if exam.RetryQuestion(s.state) {
				if s.state.QuestionIndex == 0 {
					return s, s.fetchFirst()
				}
				return s, s.fetchNext()
			}
		}
		return s, nil
	}

	q := s.state.Current

	if key == "ctrl+e" {
		if exam.RevealHint(s.state) {
			return s, s.logHint(q)
		}
		return s, nil
	}

	if q.Kind.HasOptions() {
		switch key {
		case "enter":
			return s.submit(s.choice.Value())
		case "1", "2", "3", "4":
			idx := int(key[0] - '1')
			if idx < len(q.Options) {
				s.choice.Selected = idx
			}
			return s, nil
		}
		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(msg)
		return s, cmd
	}

	if key == "ctrl+s" {
		return s.submit(s.answer.Value())
	}

	var cmd tea.Cmd
	s.answer, cmd = s.answer.Update(msg)
	return s, cmd
}

// submit hands the answer to the state machine and, if accepted,
// dispatches the evaluation with the question as asked.
func (s *PlaygroundScreen) submit(answer string) (screen.Screen, tea.Cmd) {
	if !exam.Submit(s.state, answer) {
		return s, nil
	}

	q := *s.state.Current
	secs := s.state.QuestionSecs
	hintUsed := s.state.HintShown

	if q.Kind.HasOptions() {
		s.choice.Lock()
	}

	gen := s.deps.Generator
	return s, func() tea.Msg {
		ev, err := gen.Evaluate(context.Background(), q, answer, secs, hintUsed)
		return evaluationMsg{Question: &q, Answer: answer, Eval: ev, Err: err}
	}
}

// perform dispatches the side effect requested by a state transition.
func (s *PlaygroundScreen) perform(eff exam.Effect) tea.Cmd {
	switch eff {
	case exam.EffectFetchNext:
		return s.fetchNext()
	case exam.EffectShowResult:
		return s.scheduleResult()
	case exam.EffectComplete:
		return s.complete()
	}
	return nil
}

func (s *PlaygroundScreen) fetchFirst() tea.Cmd {
	st := s.state
	gen := s.deps.Generator
	topicName := st.Topic.PromptName()
	name, prn := st.Student.Name, st.Student.PRN
	return func() tea.Msg {
		q, err := gen.FirstQuestion(context.Background(), topicName, name, prn)
		return questionMsg{Question: q, Err: err}
	}
}

func (s *PlaygroundScreen) fetchNext() tea.Cmd {
	st := s.state
	gen := s.deps.Generator
	topicName := st.Topic.PromptName()
	number := st.NextQuestionNumber()
	history := st.History()
	perf := st.Performance()
	return func() tea.Msg {
		q, err := gen.NextQuestion(context.Background(), topicName, number, history, perf)
		return questionMsg{Question: q, Err: err}
	}
}

// scheduleResult starts the result display pause, bound to the current
// result generation so forced completion cancels it.
func (s *PlaygroundScreen) scheduleResult() tea.Cmd {
	gen := s.state.ResultGen
	return tea.Tick(s.deps.Config.ResultPause, func(time.Time) tea.Msg {
		return resultElapsedMsg{Gen: gen}
	})
}

// complete persists the session end event and assembles the report.
func (s *PlaygroundScreen) complete() tea.Cmd {
	s.completing = true

	rep := s.state.Report
	sessionID := s.sessionID
	deps := s.deps
	durationMins := int(deps.Config.Duration.Minutes())

	return func() tea.Msg {
		ctx := context.Background()

		correct := 0
		for _, a := range rep.Answers {
			if a.Correct {
				correct++
			}
		}
		_ = deps.Events.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:      sessionID,
			Action:         "end",
			StudentName:    rep.Student.Name,
			StudentPRN:     rep.Student.PRN,
			TopicID:        rep.Topic.ID,
			TopicName:      rep.Topic.Name,
			Score:          rep.Score,
			MaxScore:       rep.MaxScore,
			QuestionsAsked: len(rep.Answers),
			CorrectAnswers: correct,
			DurationSecs:   rep.TimeUsedSecs,
		})

		model := report.Assemble(ctx, deps.Insights, *rep, durationMins)
		return reportReadyMsg{Model: model}
	}
}

func (s *PlaygroundScreen) logStart() tea.Cmd {
	st := s.state
	sessionID := s.sessionID
	events := s.deps.Events
	return func() tea.Msg {
		_ = events.AppendSessionEvent(context.Background(), store.SessionEventData{
			SessionID:   sessionID,
			Action:      "start",
			StudentName: st.Student.Name,
			StudentPRN:  st.Student.PRN,
			TopicID:     st.Topic.ID,
			TopicName:   st.Topic.Name,
		})
		return nil
	}
}

func (s *PlaygroundScreen) logAnswer(rec exam.AnswerRecord) tea.Cmd {
	sessionID := s.sessionID
	events := s.deps.Events
	return func() tea.Msg {
		_ = events.AppendAnswerEvent(context.Background(), store.AnswerEventData{
			SessionID:       sessionID,
			QuestionNumber:  rec.QuestionNumber,
			Kind:            string(rec.Kind),
			Difficulty:      string(rec.Difficulty),
			QuestionText:    rec.QuestionText,
			StudentAnswer:   rec.StudentAnswer,
			Correct:         rec.Correct,
			PointsAwarded:   rec.PointsAwarded,
			MaxPoints:       rec.MaxPoints,
			ReferenceAnswer: rec.ReferenceAnswer,
			TimeSecs:        rec.TimeSpentSecs,
			HintUsed:        rec.HintUsed,
		})
		return nil
	}
}

func (s *PlaygroundScreen) logHint(q *quizgen.Question) tea.Cmd {
	sessionID := s.sessionID
	events := s.deps.Events
	number := q.Number
	hint := q.Hint
	return func() tea.Msg {
		_ = events.AppendHintEvent(context.Background(), store.HintEventData{
			SessionID:      sessionID,
			QuestionNumber: number,
			HintText:       hint,
		})
		return nil
	}
}

// answerWidth sizes the free-text answer box to the current frame.
func (s *PlaygroundScreen) answerWidth() int {
	w := s.width - 12
	if w > 70 {
		w = 70
	}
	if w < 30 {
		w = 30
	}
	return w
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
