package playground

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/skand/proctor/internal/exam"
	"github.com/skand/proctor/internal/insights"
	"github.com/skand/proctor/internal/quizgen"
	"github.com/skand/proctor/internal/store"
	"github.com/skand/proctor/internal/topic"
)

// stubGenerator implements quizgen.Generator for testing.
type stubGenerator struct {
	question *quizgen.Question
	eval     *quizgen.Evaluation
	genErr   error
	evalErr  error
}

func (g *stubGenerator) FirstQuestion(_ context.Context, _, _, _ string) (*quizgen.Question, error) {
	if g.genErr != nil {
		return nil, g.genErr
	}
	q := *g.question
	return &q, nil
}

func (g *stubGenerator) NextQuestion(_ context.Context, _ string, _ int, _ []quizgen.HistoryEntry, _ quizgen.PerformanceSummary) (*quizgen.Question, error) {
	return g.FirstQuestion(context.Background(), "", "", "")
}

func (g *stubGenerator) Evaluate(_ context.Context, _ quizgen.Question, _ string, _ int, _ bool) (*quizgen.Evaluation, error) {
	if g.evalErr != nil {
		return nil, g.evalErr
	}
	ev := *g.eval
	return &ev, nil
}

// stubInsights implements insights.Generator for testing.
type stubInsights struct{}

func (stubInsights) Insights(_ context.Context, in insights.Input) (*insights.Bundle, error) {
	return insights.Fallback(in), nil
}

// stubEventRepo implements store.EventRepo for testing.
type stubEventRepo struct {
	sessionEvents []store.SessionEventData
	answerEvents  []store.AnswerEventData
	hintEvents    []store.HintEventData
}

func (r *stubEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	r.sessionEvents = append(r.sessionEvents, data)
	return nil
}
func (r *stubEventRepo) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	r.answerEvents = append(r.answerEvents, data)
	return nil
}
func (r *stubEventRepo) AppendHintEvent(_ context.Context, data store.HintEventData) error {
	r.hintEvents = append(r.hintEvents, data)
	return nil
}
func (r *stubEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (r *stubEventRepo) RecentSessions(_ context.Context, _ int) ([]store.SessionRecord, error) {
	return nil, nil
}
func (r *stubEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMEvent, error) {
	return nil, nil
}
func (r *stubEventRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMEvent, error) {
	return nil, nil
}
func (r *stubEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMUsage, error) {
	return nil, nil
}

// stubSnapshotRepo implements store.SnapshotRepo for testing.
type stubSnapshotRepo struct {
	snapshots []*store.Snapshot
}

func (r *stubSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	r.snapshots = append(r.snapshots, snap)
	return nil
}
func (r *stubSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	if len(r.snapshots) == 0 {
		return nil, nil
	}
	return r.snapshots[len(r.snapshots)-1], nil
}
func (r *stubSnapshotRepo) Prune(_ context.Context, _ int) error { return nil }

func mcq() *quizgen.Question {
	return &quizgen.Question{
		Kind:       quizgen.KindMCQ,
		Difficulty: quizgen.DifficultyMedium,
		Prompt:     "Which data structure gives O(1) average lookup?",
		Options:    []string{"Array", "Hash table", "Linked list", "Binary tree"},
		Points:     5,
		Hint:       "Think about key hashing.",
	}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testScreen() (*PlaygroundScreen, *stubGenerator, *stubEventRepo) {
	gen := &stubGenerator{
		question: mcq(),
		eval:     &quizgen.Evaluation{Correct: true, PointsAwarded: 5, Feedback: "Right."},
	}
	events := &stubEventRepo{}
	deps := Deps{
		Generator: gen,
		Insights:  stubInsights{},
		Events:    events,
		Snapshots: &stubSnapshotRepo{},
		Config: exam.Config{
			Duration:       20 * time.Minute,
			QuestionTarget: 15,
			LowTimeFloor:   time.Minute,
			ResultPause:    time.Millisecond,
		},
	}
	tp, _ := topic.ByID("data-structures")
	s := New(deps, exam.StudentInfo{Name: "Asha Rao", PRN: "PRN42"}, tp)
	return s, gen, events
}

// collectMsgs runs a command tree and gathers the produced messages.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collectMsgs(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func TestFirstQuestionActivatesSession(t *testing.T) {
	s, _, _ := testScreen()

	s.Update(questionMsg{Question: mcq()})

	if s.state.Phase != exam.PhaseActive {
		t.Fatalf("expected active phase, got %v", s.state.Phase)
	}
	if s.state.QuestionIndex != 1 {
		t.Errorf("expected question index 1, got %d", s.state.QuestionIndex)
	}
	if s.state.MaxScore != 5 {
		t.Errorf("expected max score 5, got %d", s.state.MaxScore)
	}
	if s.state.TimerSuspended {
		t.Error("expected countdown running after first question")
	}
}

func TestGenerationFailureOffersRetry(t *testing.T) {
	s, _, _ := testScreen()

	s.Update(questionMsg{Err: errors.New("boom")})

	if s.state.Current != nil {
		t.Fatal("expected no question after failure")
	}
	if s.state.LastError == "" {
		t.Error("expected user-facing error after failure")
	}
	if s.state.TimerSuspended {
		t.Error("expected countdown running despite failure")
	}

	_, cmd := s.Update(keyPress('r'))
	if cmd == nil {
		t.Fatal("expected retry to dispatch a generation request")
	}
	if s.state.LastError != "" {
		t.Error("expected error cleared on retry")
	}
}

func TestSubmitAndEvaluateMCQ(t *testing.T) {
	s, _, events := testScreen()

	q := mcq()
	s.Update(questionMsg{Question: q})
	s.choice.Selected = 1

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if s.state.Phase != exam.PhaseEvaluating {
		t.Fatalf("expected evaluating phase, got %v", s.state.Phase)
	}
	if cmd == nil {
		t.Fatal("expected evaluation dispatch")
	}

	msgs := collectMsgs(cmd)
	if len(msgs) != 1 {
		t.Fatalf("expected one evaluation message, got %d", len(msgs))
	}
	evMsg, ok := msgs[0].(evaluationMsg)
	if !ok {
		t.Fatalf("expected evaluationMsg, got %T", msgs[0])
	}
	if evMsg.Answer != "Hash table" {
		t.Errorf("expected chosen option text, got %q", evMsg.Answer)
	}

	_, cmd = s.Update(evMsg)
	if s.state.Phase != exam.PhaseResult {
		t.Fatalf("expected result phase, got %v", s.state.Phase)
	}
	if s.state.Score != 5 {
		t.Errorf("expected score 5, got %d", s.state.Score)
	}

	collectMsgs(cmd)
	if len(events.answerEvents) != 1 {
		t.Fatalf("expected one answer event, got %d", len(events.answerEvents))
	}
	rec := events.answerEvents[0]
	if rec.StudentAnswer != "Hash table" || !rec.Correct || rec.PointsAwarded != 5 {
		t.Errorf("unexpected answer event: %+v", rec)
	}
}

func TestEvaluationFailureSkipsRecord(t *testing.T) {
	s, gen, events := testScreen()
	gen.evalErr = errors.New("evaluator down")

	s.Update(questionMsg{Question: mcq()})
	_, cmd := s.Update(specialKey(tea.KeyEnter))

	msgs := collectMsgs(cmd)
	evMsg := msgs[0].(evaluationMsg)
	if evMsg.Err == nil {
		t.Fatal("expected evaluation error")
	}

	s.Update(evMsg)
	if len(s.state.Answers) != 0 {
		t.Errorf("expected no answer record, got %d", len(s.state.Answers))
	}
	if len(events.answerEvents) != 0 {
		t.Errorf("expected no answer event, got %d", len(events.answerEvents))
	}
}

func TestHintRevealLogsEvent(t *testing.T) {
	s, _, events := testScreen()

	s.Update(questionMsg{Question: mcq()})
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'e', Mod: tea.ModCtrl})

	if !s.state.HintShown {
		t.Fatal("expected hint shown")
	}
	collectMsgs(cmd)
	if len(events.hintEvents) != 1 {
		t.Fatalf("expected one hint event, got %d", len(events.hintEvents))
	}
	if events.hintEvents[0].QuestionNumber != 1 {
		t.Errorf("expected hint for question 1, got %d", events.hintEvents[0].QuestionNumber)
	}
}

func TestTickAdvancesCountdown(t *testing.T) {
	s, _, _ := testScreen()
	s.Update(questionMsg{Question: mcq()})

	before := s.state.RemainingSecs
	s.Update(timerTickMsg(time.Now()))

	if s.state.RemainingSecs != before-1 {
		t.Errorf("expected countdown %d, got %d", before-1, s.state.RemainingSecs)
	}
}

func TestQuitConfirmEndsSession(t *testing.T) {
	s, _, _ := testScreen()
	s.Update(questionMsg{Question: mcq()})

	s.Update(specialKey(tea.KeyEscape))
	if !s.confirmQuit {
		t.Fatal("expected quit confirmation")
	}

	_, cmd := s.Update(keyPress('y'))
	if s.state.Phase != exam.PhaseComplete {
		t.Fatalf("expected complete phase, got %v", s.state.Phase)
	}
	if s.state.Report == nil {
		t.Fatal("expected frozen report")
	}

	msgs := collectMsgs(cmd)
	var ready bool
	for _, m := range msgs {
		if _, ok := m.(reportReadyMsg); ok {
			ready = true
		}
	}
	if !ready {
		t.Error("expected report assembly to finish")
	}
}

func TestStaleResultPauseDiscarded(t *testing.T) {
	s, _, _ := testScreen()
	s.Update(questionMsg{Question: mcq()})
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	evMsg := collectMsgs(cmd)[0].(evaluationMsg)
	s.Update(evMsg)

	staleGen := s.state.ResultGen

	// Forced completion supersedes the pending pause.
	exam.ForceComplete(s.state, s.deps.Config)
	answersBefore := len(s.state.Answers)

	s.Update(resultElapsedMsg{Gen: staleGen})

	if s.state.Phase != exam.PhaseComplete {
		t.Errorf("expected phase unchanged, got %v", s.state.Phase)
	}
	if len(s.state.Answers) != answersBefore {
		t.Error("expected no further transitions from stale pause")
	}
}
