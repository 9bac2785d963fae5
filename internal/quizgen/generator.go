package quizgen

import "context"

// Generator produces quiz questions and evaluates answers via an LLM.
type Generator interface {
	// FirstQuestion generates the opening question for a session.
	FirstQuestion(ctx context.Context, topicName, studentName, studentPRN string) (*Question, error)

	// NextQuestion generates a follow-up question adapted to recent
	// performance. history holds the most recent answered questions.
	NextQuestion(ctx context.Context, topicName string, questionNumber int, history []HistoryEntry, perf PerformanceSummary) (*Question, error)

	// Evaluate scores a submitted answer against the question.
	Evaluate(ctx context.Context, q Question, studentAnswer string, timeSpentSecs int, hintUsed bool) (*Evaluation, error)
}
