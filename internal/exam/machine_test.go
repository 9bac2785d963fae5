package exam

import (
	"testing"
	"time"

	"github.com/skand/proctor/internal/quizgen"
	"github.com/skand/proctor/internal/topic"
)

func testConfig() Config {
	return Config{
		Duration:       20 * time.Minute,
		QuestionTarget: 15,
		LowTimeFloor:   60 * time.Second,
		ResultPause:    3 * time.Second,
	}
}

func testStudent() StudentInfo {
	return StudentInfo{Name: "Asha Rao", PRN: "1032210045"}
}

func testTopic() topic.Topic {
	return topic.Topic{ID: "algorithms", Name: "Algorithms"}
}

func mcq() *quizgen.Question {
	return &quizgen.Question{
		Kind:       quizgen.KindMCQ,
		Difficulty: quizgen.DifficultyMedium,
		Prompt:     "Which sort is O(n log n) worst case?",
		Options:    []string{"Quicksort", "Mergesort", "Bubble sort", "Insertion sort"},
		Points:     5,
		Hint:       "Think about guaranteed bounds.",
	}
}

func descriptive() *quizgen.Question {
	return &quizgen.Question{
		Kind:       quizgen.KindDescriptive,
		Difficulty: quizgen.DifficultyHard,
		Prompt:     "Explain amortized analysis.",
		Points:     10,
	}
}

func correctEval(points int) *quizgen.Evaluation {
	return &quizgen.Evaluation{Correct: true, PointsAwarded: points, Feedback: "good", ReferenceAnswer: "ref"}
}

func wrongEval() *quizgen.Evaluation {
	return &quizgen.Evaluation{Correct: false, PointsAwarded: 0, Feedback: "not quite", ReferenceAnswer: "ref"}
}

// activeSession starts a session and lands the first question.
func activeSession() *State {
	s := Start(testStudent(), testTopic(), testConfig())
	ApplyQuestion(s, mcq())
	return s
}

// answerCurrent walks one full submit → evaluate cycle.
func answerCurrent(t *testing.T, s *State, answer string, ev *quizgen.Evaluation) Effect {
	t.Helper()
	q := s.Current
	if !Submit(s, answer) {
		t.Fatalf("submit rejected in phase %v", s.Phase)
	}
	return ApplyEvaluation(s, q, answer, ev)
}

func TestStart_TimerSuspendedAwaitingFirst(t *testing.T) {
	s := Start(testStudent(), testTopic(), testConfig())

	if s.Phase != PhaseAwaitingFirst {
		t.Fatalf("phase = %v, want awaiting-first", s.Phase)
	}
	if !s.TimerSuspended {
		t.Fatal("timer must start suspended")
	}
	if s.RemainingSecs != 1200 {
		t.Fatalf("remaining = %d, want 1200", s.RemainingSecs)
	}

	// Generation latency costs nothing: suspended ticks are no-ops.
	for i := 0; i < 30; i++ {
		Tick(s, testConfig())
	}
	if s.RemainingSecs != 1200 {
		t.Fatalf("remaining after suspended ticks = %d, want 1200", s.RemainingSecs)
	}
}

func TestApplyQuestion_IssuanceCommitsMaxScore(t *testing.T) {
	s := Start(testStudent(), testTopic(), testConfig())
	ApplyQuestion(s, mcq())

	if s.Phase != PhaseActive {
		t.Fatalf("phase = %v, want active", s.Phase)
	}
	if s.TimerSuspended {
		t.Fatal("timer must resume on question arrival")
	}
	if s.QuestionIndex != 1 {
		t.Fatalf("index = %d, want 1", s.QuestionIndex)
	}
	if s.Current.Number != 1 {
		t.Fatalf("question number = %d, want 1", s.Current.Number)
	}
	// Denominator grows at issuance, not at answer time.
	if s.MaxScore != 5 {
		t.Fatalf("max score = %d, want 5", s.MaxScore)
	}
	if len(s.Answers) != s.QuestionIndex-1 {
		t.Fatalf("answers = %d, want index-1 = %d", len(s.Answers), s.QuestionIndex-1)
	}
}

func TestTick_SuspensionSemantics(t *testing.T) {
	s := activeSession()
	cfg := testConfig()
	start := s.RemainingSecs

	// M active ticks decrement by exactly M.
	for i := 0; i < 7; i++ {
		Tick(s, cfg)
	}
	if s.RemainingSecs != start-7 {
		t.Fatalf("remaining = %d, want %d", s.RemainingSecs, start-7)
	}
	if s.QuestionSecs != 7 {
		t.Fatalf("question secs = %d, want 7", s.QuestionSecs)
	}

	// N suspended ticks decrement nothing.
	s.TimerSuspended = true
	for i := 0; i < 11; i++ {
		Tick(s, cfg)
	}
	if s.RemainingSecs != start-7 {
		t.Fatalf("remaining after suspended ticks = %d, want %d", s.RemainingSecs, start-7)
	}

	// Resuming continues the countdown.
	s.TimerSuspended = false
	for i := 0; i < 3; i++ {
		Tick(s, cfg)
	}
	if s.RemainingSecs != start-10 {
		t.Fatalf("remaining = %d, want %d", s.RemainingSecs, start-10)
	}
}

func TestTick_ExpiryForcesCompletion(t *testing.T) {
	s := activeSession()
	cfg := testConfig()
	s.RemainingSecs = 1

	eff := Tick(s, cfg)
	if eff != EffectComplete {
		t.Fatalf("effect = %v, want complete", eff)
	}
	if s.Phase != PhaseComplete {
		t.Fatalf("phase = %v, want complete", s.Phase)
	}
	if s.Report == nil {
		t.Fatal("report snapshot not emitted")
	}
	if s.Report.TimeUsedSecs != 1200 {
		t.Fatalf("time used = %d, want full duration 1200", s.Report.TimeUsedSecs)
	}

	// Further ticks are inert.
	if eff := Tick(s, cfg); eff != EffectNone {
		t.Fatalf("tick after completion = %v, want none", eff)
	}
}

func TestSubmit_Guards(t *testing.T) {
	cfg := testConfig()
	s := activeSession()

	// Blank answers never advance.
	if Submit(s, "   ") {
		t.Fatal("blank answer accepted")
	}
	if s.Phase != PhaseActive {
		t.Fatalf("phase moved on rejected submit: %v", s.Phase)
	}

	if !Submit(s, "Mergesort") {
		t.Fatal("valid answer rejected")
	}
	if s.Phase != PhaseEvaluating {
		t.Fatalf("phase = %v, want evaluating", s.Phase)
	}
	if !s.TimerSuspended {
		t.Fatal("timer must suspend on submission")
	}

	// Double-submit is a no-op.
	if Submit(s, "Mergesort") {
		t.Fatal("re-submission accepted while evaluating")
	}

	// No submission without a loaded question.
	s2 := Start(testStudent(), testTopic(), cfg)
	QuestionFailed(s2, "generator down")
	if Submit(s2, "anything") {
		t.Fatal("submit accepted with no question loaded")
	}
}

func TestApplyEvaluation_RecordsAndSchedulesResult(t *testing.T) {
	s := activeSession()
	cfg := testConfig()
	Tick(s, cfg)
	Tick(s, cfg) // 2 seconds on the question

	eff := answerCurrent(t, s, "Mergesort", correctEval(5))
	if eff != EffectShowResult {
		t.Fatalf("effect = %v, want show-result", eff)
	}
	if s.Phase != PhaseResult {
		t.Fatalf("phase = %v, want result", s.Phase)
	}
	if len(s.Answers) != 1 {
		t.Fatalf("answers = %d, want 1", len(s.Answers))
	}

	rec := s.Answers[0]
	if rec.QuestionNumber != 1 || !rec.Correct || rec.PointsAwarded != 5 || rec.MaxPoints != 5 {
		t.Fatalf("record = %+v", rec)
	}
	if rec.TimeSpentSecs != 2 {
		t.Fatalf("time spent = %d, want 2", rec.TimeSpentSecs)
	}
	if s.Score != 5 {
		t.Fatalf("score = %d, want 5", s.Score)
	}
}

func TestApplyEvaluation_ClampsPointsOnIngest(t *testing.T) {
	s := activeSession()

	// Evaluator misbehaves with 99 points on a 5-point question.
	eff := answerCurrent(t, s, "Mergesort", &quizgen.Evaluation{Correct: true, PointsAwarded: 99})
	if eff != EffectShowResult {
		t.Fatalf("effect = %v", eff)
	}
	if s.Answers[0].PointsAwarded != 5 {
		t.Fatalf("points = %d, want clamped to 5", s.Answers[0].PointsAwarded)
	}
	if s.Score > s.MaxScore {
		t.Fatalf("score %d exceeds max %d", s.Score, s.MaxScore)
	}
}

func TestScoreInvariantAcrossSequence(t *testing.T) {
	s := activeSession()
	cfg := testConfig()

	evals := []*quizgen.Evaluation{correctEval(5), wrongEval(), correctEval(5)}
	for i, ev := range evals {
		eff := answerCurrent(t, s, "answer", ev)
		if eff != EffectShowResult {
			t.Fatalf("step %d effect = %v", i, eff)
		}

		sum := 0
		for _, a := range s.Answers {
			sum += a.PointsAwarded
		}
		if s.Score != sum {
			t.Fatalf("score %d != sum of awarded %d", s.Score, sum)
		}
		if s.Score > s.MaxScore {
			t.Fatalf("score %d exceeds max %d", s.Score, s.MaxScore)
		}

		if eff := ResultElapsed(s, s.ResultGen, cfg); eff != EffectFetchNext {
			t.Fatalf("step %d progression = %v, want fetch-next", i, eff)
		}
		if i < len(evals)-1 {
			ApplyQuestion(s, mcq())
		}
	}

	// 5 + 0 + 5 over 15 issued.
	if s.Score != 10 || s.MaxScore != 15 {
		t.Fatalf("final = %d/%d, want 10/15", s.Score, s.MaxScore)
	}
}

func TestResultElapsed_StaleGenerationDiscarded(t *testing.T) {
	s := activeSession()
	cfg := testConfig()

	answerCurrent(t, s, "Mergesort", correctEval(5))
	gen := s.ResultGen

	// Forced completion during the pause supersedes the continuation.
	ForceComplete(s, cfg)
	if eff := ResultElapsed(s, gen, cfg); eff != EffectNone {
		t.Fatalf("stale continuation effect = %v, want none", eff)
	}
	if s.Phase != PhaseComplete {
		t.Fatalf("phase = %v, want complete", s.Phase)
	}
}

func TestExpiryMidEvaluationDiscardsLateResult(t *testing.T) {
	s := activeSession()
	cfg := testConfig()
	q := s.Current

	if !Submit(s, "Mergesort") {
		t.Fatal("submit rejected")
	}

	// Time expires while the evaluation is in flight.
	ForceComplete(s, cfg)
	if s.Report == nil {
		t.Fatal("report not emitted on forced completion")
	}
	snapshotScore := s.Report.Score
	snapshotAnswers := len(s.Report.Answers)

	// The late verdict is discarded, not appended.
	if eff := ApplyEvaluation(s, q, "Mergesort", correctEval(5)); eff != EffectNone {
		t.Fatalf("late evaluation effect = %v, want none", eff)
	}
	if len(s.Answers) != snapshotAnswers {
		t.Fatalf("answers grew after completion: %d", len(s.Answers))
	}
	if s.Report.Score != snapshotScore || len(s.Report.Answers) != snapshotAnswers {
		t.Fatal("frozen report mutated by late evaluation")
	}
}

func TestEvaluationFailed_SkipsRecordAndAdvances(t *testing.T) {
	s := activeSession()
	cfg := testConfig()

	if !Submit(s, "Mergesort") {
		t.Fatal("submit rejected")
	}
	eff := EvaluationFailed(s, "evaluator down", cfg)
	if eff != EffectFetchNext {
		t.Fatalf("effect = %v, want fetch-next", eff)
	}
	if len(s.Answers) != 0 {
		t.Fatalf("answers = %d, want 0 (lost answer not scored)", len(s.Answers))
	}
	if s.LastError == "" {
		t.Fatal("expected surfaced error")
	}

	// The next question still numbers correctly and clears the error.
	ApplyQuestion(s, descriptive())
	if s.QuestionIndex != 2 {
		t.Fatalf("index = %d, want 2", s.QuestionIndex)
	}
	if s.LastError != "" {
		t.Fatal("error not cleared on next question")
	}
	if s.MaxScore != 15 {
		t.Fatalf("max score = %d, want 15 (5 + 10)", s.MaxScore)
	}
}

func TestAdvance_LowTimeFloorCompletes(t *testing.T) {
	s := activeSession()
	cfg := testConfig()
	s.RemainingSecs = 59 // below the 60s floor

	eff := answerCurrent(t, s, "Mergesort", correctEval(5))
	if eff != EffectShowResult {
		t.Fatalf("effect = %v", eff)
	}
	if eff := ResultElapsed(s, s.ResultGen, cfg); eff != EffectComplete {
		t.Fatalf("progression = %v, want complete", eff)
	}
	if s.Report == nil {
		t.Fatal("report not emitted")
	}
}

func TestAdvance_QuestionTargetCompletes(t *testing.T) {
	s := activeSession()
	cfg := testConfig()
	s.QuestionIndex = cfg.QuestionTarget // final question answered

	answerCurrent(t, s, "Mergesort", correctEval(5))
	if eff := ResultElapsed(s, s.ResultGen, cfg); eff != EffectComplete {
		t.Fatalf("progression = %v, want complete", eff)
	}
}

func TestQuestionFailed_FailsOpen(t *testing.T) {
	cfg := testConfig()
	s := Start(testStudent(), testTopic(), cfg)

	QuestionFailed(s, "generator down")
	if s.Phase != PhaseActive {
		t.Fatalf("phase = %v, want active (fail-open)", s.Phase)
	}
	if s.TimerSuspended {
		t.Fatal("timer must run after fail-open")
	}
	if s.Current != nil {
		t.Fatal("no question should be loaded")
	}
	if s.LastError == "" {
		t.Fatal("error must surface to the student")
	}

	// Manual reload clears the error but keeps the clock running.
	if !RetryQuestion(s) {
		t.Fatal("retry rejected")
	}
	if s.TimerSuspended {
		t.Fatal("retry must not suspend the timer")
	}

	// The retried question gets number 1: nothing was issued yet.
	ApplyQuestion(s, mcq())
	if s.Current.Number != 1 {
		t.Fatalf("number = %d, want 1", s.Current.Number)
	}
}

func TestRevealHint(t *testing.T) {
	s := activeSession()

	if !RevealHint(s) {
		t.Fatal("hint reveal rejected")
	}
	if RevealHint(s) {
		t.Fatal("second reveal accepted")
	}

	// The reveal lands on the record.
	answerCurrent(t, s, "Mergesort", correctEval(5))
	if !s.Answers[0].HintUsed {
		t.Fatal("hint usage not recorded")
	}

	// Questions without hints never reveal.
	ResultElapsed(s, s.ResultGen, testConfig())
	ApplyQuestion(s, descriptive())
	if RevealHint(s) {
		t.Fatal("reveal accepted for hintless question")
	}
}

func TestPerformance_AccuracyDefaultsTo50(t *testing.T) {
	s := activeSession()

	perf := s.Performance()
	if perf.Accuracy != 50 {
		t.Fatalf("accuracy = %d, want neutral 50", perf.Accuracy)
	}

	answerCurrent(t, s, "Mergesort", correctEval(5))
	ResultElapsed(s, s.ResultGen, testConfig())
	ApplyQuestion(s, mcq())
	answerCurrent(t, s, "Quicksort", wrongEval())

	perf = s.Performance()
	if perf.Accuracy != 50 {
		t.Fatalf("accuracy = %d, want 50 (1 of 2)", perf.Accuracy)
	}
	if perf.Score != 5 || perf.MaxScore != 10 {
		t.Fatalf("perf = %d/%d, want 5/10", perf.Score, perf.MaxScore)
	}
}

func TestReportSnapshot_EmittedExactlyOnceAndFrozen(t *testing.T) {
	s := activeSession()
	cfg := testConfig()

	answerCurrent(t, s, "Mergesort", correctEval(5))
	ForceComplete(s, cfg)
	report := s.Report
	if report == nil {
		t.Fatal("report not emitted")
	}

	// Repeated completion never re-emits or replaces the snapshot.
	ForceComplete(s, cfg)
	if s.Report != report {
		t.Fatal("report snapshot replaced")
	}

	// The snapshot owns its answer slice: later state churn is invisible.
	s.Answers = append(s.Answers, AnswerRecord{QuestionNumber: 99})
	if len(report.Answers) != 1 {
		t.Fatalf("snapshot answers = %d, want 1", len(report.Answers))
	}
}
