package exam

import (
	"strings"

	"github.com/skand/proctor/internal/quizgen"
	"github.com/skand/proctor/internal/topic"
)

// Effect tells the caller what to do after a transition. The machine
// itself never performs I/O; the screen layer dispatches generator and
// evaluator calls and feeds results back in.
type Effect int

const (
	EffectNone Effect = iota

	// EffectFetchNext: request the next question from the generator,
	// numbered NextQuestionNumber().
	EffectFetchNext

	// EffectShowResult: schedule the result pause. The continuation must
	// carry the current ResultGen and call ResultElapsed with it.
	EffectShowResult

	// EffectComplete: the session ended and Report holds the frozen
	// snapshot. Terminal.
	EffectComplete
)

// Start begins a session: timer suspended, first question pending.
// The caller dispatches the first-question request.
func Start(student StudentInfo, tp topic.Topic, cfg Config) *State {
	return &State{
		Student:        student,
		Topic:          tp,
		Phase:          PhaseAwaitingFirst,
		RemainingSecs:  int(cfg.Duration.Seconds()),
		TimerSuspended: true,
	}
}

// NextQuestionNumber is the number the next issued question will get.
func (s *State) NextQuestionNumber() int {
	return s.QuestionIndex + 1
}

// ApplyQuestion installs a freshly generated question: the question
// index advances, its maximum points are committed to the score
// denominator at issuance, per-question input state resets, and the
// countdown resumes.
func ApplyQuestion(s *State, q *quizgen.Question) {
	if s.Phase == PhaseComplete {
		return
	}

	s.QuestionIndex++
	q.Number = s.QuestionIndex
	s.Current = q
	s.MaxScore += q.Points

	s.QuestionSecs = 0
	s.HintShown = false
	s.LastEvaluation = nil
	s.LastError = ""

	s.TimerSuspended = false
	s.Phase = PhaseActive
}

// QuestionFailed handles a generation failure. The session fails open:
// the countdown starts anyway and the student sees an error requiring a
// manual reload.
func QuestionFailed(s *State, msg string) {
	if s.Phase == PhaseComplete {
		return
	}

	s.Current = nil
	s.LastError = msg
	s.LastEvaluation = nil
	s.TimerSuspended = false
	s.Phase = PhaseActive
}

// RetryQuestion clears the error for a manual reload after a generation
// failure. The countdown keeps running: the fail-open policy already
// charged the student's budget. A failed generation never issued a
// question, so the retry reuses the same number. The caller re-dispatches
// the request.
func RetryQuestion(s *State) bool {
	if s.Phase != PhaseActive || s.Current != nil {
		return false
	}
	s.LastError = ""
	return true
}

// Tick advances the countdown by one second. Suspended ticks are no-ops.
// Reaching zero forces completion from any phase.
func Tick(s *State, cfg Config) Effect {
	if s.Phase == PhaseComplete || s.TimerSuspended {
		return EffectNone
	}

	if s.RemainingSecs > 0 {
		s.RemainingSecs--
	}
	if s.Phase == PhaseActive {
		s.QuestionSecs++
	}

	if s.RemainingSecs == 0 {
		return ForceComplete(s, cfg)
	}
	return EffectNone
}

// Submit accepts the student's answer for the current question. Returns
// true when the answer was accepted and the caller should dispatch the
// evaluation (with the current question, answer, QuestionSecs, and
// HintShown). Submitting outside question-active, with no question
// loaded, or with a blank answer is rejected. Re-submission while
// evaluating is a no-op.
func Submit(s *State, answer string) bool {
	if s.Phase != PhaseActive || s.Current == nil {
		return false
	}
	if strings.TrimSpace(answer) == "" {
		return false
	}

	s.TimerSuspended = true
	s.Phase = PhaseEvaluating
	return true
}

// ApplyEvaluation records the evaluator's verdict for the submitted
// answer and moves to the result display. A verdict arriving after
// forced completion is discarded: the report snapshot is already frozen.
func ApplyEvaluation(s *State, q *quizgen.Question, answer string, ev *quizgen.Evaluation) Effect {
	if s.Phase != PhaseEvaluating {
		return EffectNone
	}

	// Defensive clamp on ingest so the cumulative-score invariant holds
	// even against a misbehaving evaluator.
	points := ev.PointsAwarded
	if points < 0 {
		points = 0
	}
	if points > q.Points {
		points = q.Points
	}

	s.Answers = append(s.Answers, AnswerRecord{
		QuestionNumber:  q.Number,
		QuestionText:    q.Prompt,
		Kind:            q.Kind,
		Difficulty:      q.Difficulty,
		StudentAnswer:   answer,
		Correct:         ev.Correct,
		PointsAwarded:   points,
		MaxPoints:       q.Points,
		Feedback:        ev.Feedback,
		ReferenceAnswer: ev.ReferenceAnswer,
		TimeSpentSecs:   s.QuestionSecs,
		HintUsed:        s.HintShown,
	})
	s.Score += points

	s.LastEvaluation = ev
	s.Phase = PhaseResult
	s.ResultGen++
	return EffectShowResult
}

// EvaluationFailed handles an evaluator failure: no record is produced
// for the lost answer, and the session routes straight to the
// next-question decision, skipping the result display.
func EvaluationFailed(s *State, msg string, cfg Config) Effect {
	if s.Phase != PhaseEvaluating {
		return EffectNone
	}

	s.LastError = msg
	s.LastEvaluation = nil
	s.Phase = PhaseResult
	s.ResultGen++
	return advance(s, cfg)
}

// ResultElapsed fires when the result pause ends. A stale generation
// means the pause was superseded (typically by forced completion) and
// the continuation is discarded.
func ResultElapsed(s *State, gen int, cfg Config) Effect {
	if s.Phase != PhaseResult || gen != s.ResultGen {
		return EffectNone
	}
	return advance(s, cfg)
}

// advance decides between another question and completion: time must be
// above the low-time floor and the question target not yet reached.
func advance(s *State, cfg Config) Effect {
	if s.RemainingSecs > int(cfg.LowTimeFloor.Seconds()) && s.QuestionIndex < cfg.QuestionTarget {
		return EffectFetchNext
	}
	return ForceComplete(s, cfg)
}

// RevealHint marks the current question's hint as shown. At most once
// per question, and only when the question carries one. The reveal is
// recorded on the eventual AnswerRecord; any point penalty is the
// evaluator's business, not enforced here.
func RevealHint(s *State) bool {
	if s.Phase != PhaseActive || s.Current == nil {
		return false
	}
	if s.Current.Hint == "" || s.HintShown {
		return false
	}
	s.HintShown = true
	return true
}

// ForceComplete terminates the session from any phase: the timer stops
// permanently, any pending result continuation is invalidated, and the
// report snapshot is frozen exactly once.
func ForceComplete(s *State, cfg Config) Effect {
	if s.Phase == PhaseComplete {
		return EffectNone
	}

	s.Phase = PhaseComplete
	s.TimerSuspended = true
	s.ResultGen++ // invalidate any scheduled result continuation

	if !s.reportEmitted {
		s.reportEmitted = true
		s.Report = &ReportInput{
			Student:      s.Student,
			Topic:        s.Topic,
			Answers:      append([]AnswerRecord(nil), s.Answers...),
			Score:        s.Score,
			MaxScore:     s.MaxScore,
			TimeUsedSecs: int(cfg.Duration.Seconds()) - s.RemainingSecs,
		}
	}
	return EffectComplete
}
