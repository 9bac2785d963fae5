// Package exam implements the timed session state machine: a
// single-threaded reducer over phases, timer ticks, answer submissions,
// and asynchronous generator/evaluator results.
package exam

import (
	"github.com/skand/proctor/internal/quizgen"
	"github.com/skand/proctor/internal/topic"
)

// Phase is the session lifecycle state.
type Phase int

const (
	// PhaseAwaitingFirst: the opening question is being generated.
	// The timer is suspended so generation latency costs no student time.
	PhaseAwaitingFirst Phase = iota

	// PhaseActive: a question is displayed and the countdown is running.
	PhaseActive

	// PhaseEvaluating: an answer is with the evaluator. Timer suspended.
	PhaseEvaluating

	// PhaseResult: the verdict for the last answer is displayed for a
	// fixed pause before progression.
	PhaseResult

	// PhaseComplete is terminal. The report snapshot has been emitted.
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingFirst:
		return "awaiting-first-question"
	case PhaseActive:
		return "question-active"
	case PhaseEvaluating:
		return "evaluating"
	case PhaseResult:
		return "result-display"
	case PhaseComplete:
		return "session-complete"
	default:
		return "unknown"
	}
}

// StudentInfo identifies the student for one session. Immutable once captured.
type StudentInfo struct {
	Name string
	PRN  string
}

// AnswerRecord is one scored answer. Immutable once appended.
type AnswerRecord struct {
	QuestionNumber  int
	QuestionText    string
	Kind            quizgen.Kind
	Difficulty      quizgen.Difficulty
	StudentAnswer   string
	Correct         bool
	PointsAwarded   int
	MaxPoints       int
	Feedback        string
	ReferenceAnswer string
	TimeSpentSecs   int
	HintUsed        bool
}

// ReportInput is the frozen end-of-session snapshot handed to report
// assembly. Never mutated after emission.
type ReportInput struct {
	Student      StudentInfo
	Topic        topic.Topic
	Answers      []AnswerRecord
	Score        int
	MaxScore     int
	TimeUsedSecs int
}

// State is the single mutable session aggregate. All transitions happen
// through the functions in machine.go on one logical thread; nothing
// else mutates it.
type State struct {
	Student StudentInfo
	Topic   topic.Topic

	Phase Phase

	// Current is the in-flight question, nil before the first arrives
	// or after a generation failure.
	Current *quizgen.Question

	// QuestionIndex is the 1-based number of the question being asked
	// (or about to be asked).
	QuestionIndex int

	Answers  []AnswerRecord
	Score    int
	MaxScore int

	// RemainingSecs counts down once per active tick, never below 0.
	RemainingSecs  int
	TimerSuspended bool

	// QuestionSecs accumulates active seconds on the current question.
	QuestionSecs int

	// HintShown marks that the current question's hint was revealed.
	HintShown bool

	// LastEvaluation backs the result card during PhaseResult.
	LastEvaluation *quizgen.Evaluation

	// LastError holds a user-facing error line after a generation or
	// evaluation failure. Cleared on the next question.
	LastError string

	// ResultGen increments every time a result pause is scheduled. A
	// pause continuation carrying a stale generation is discarded, which
	// cancels the pause on any forced completion.
	ResultGen int

	// Report is the frozen snapshot, set exactly once on completion.
	Report *ReportInput

	reportEmitted bool
}

// Snapshot of running performance for adaptive generation.
func (s *State) Performance() quizgen.PerformanceSummary {
	perf := quizgen.PerformanceSummary{
		Score:    s.Score,
		MaxScore: s.MaxScore,
		Accuracy: 50, // neutral default before any answer lands
	}
	if len(s.Answers) > 0 {
		correct := 0
		for _, a := range s.Answers {
			if a.Correct {
				correct++
			}
		}
		perf.Accuracy = (correct*100 + len(s.Answers)/2) / len(s.Answers)
	}
	return perf
}

// History returns answered-question summaries, oldest first, for the
// next-question prompt.
func (s *State) History() []quizgen.HistoryEntry {
	out := make([]quizgen.HistoryEntry, len(s.Answers))
	for i, a := range s.Answers {
		out[i] = quizgen.HistoryEntry{
			QuestionNumber: a.QuestionNumber,
			Correct:        a.Correct,
			TimeSecs:       a.TimeSpentSecs,
		}
	}
	return out
}

// CorrectCount returns how many recorded answers were correct.
func (s *State) CorrectCount() int {
	n := 0
	for _, a := range s.Answers {
		if a.Correct {
			n++
		}
	}
	return n
}
