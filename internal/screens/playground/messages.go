package playground

import (
	"time"

	"github.com/skand/proctor/internal/quizgen"
	"github.com/skand/proctor/internal/report"
)

// questionMsg is sent when a question generation attempt finishes.
type questionMsg struct {
	Question *quizgen.Question
	Err      error
}

// evaluationMsg is sent when the evaluator returns a verdict for the
// submitted answer. Question and Answer echo what was dispatched so the
// state machine scores against the question that was actually asked.
type evaluationMsg struct {
	Question *quizgen.Question
	Answer   string
	Eval     *quizgen.Evaluation
	Err      error
}

// timerTickMsg is sent every second to drive the countdown.
type timerTickMsg time.Time

// resultElapsedMsg fires when the result display pause ends. Gen is the
// result generation the pause was scheduled for; stale generations are
// discarded.
type resultElapsedMsg struct {
	Gen int
}

// reportReadyMsg is sent when the end-of-session report has been
// assembled and the report screen should be shown.
type reportReadyMsg struct {
	Model *report.Model
}
