// Package insights synthesizes the end-of-session report commentary:
// grade, strengths, weaknesses, recommendations, a study plan, and
// per-concept mastery. An LLM produces the bundle; a deterministic local
// fallback guarantees the report always renders.
package insights

import "context"

// Bundle is the synthesized commentary for one completed session.
type Bundle struct {
	Grade           string
	Strengths       []string
	Weaknesses      []string
	Recommendations []string
	StudyPlan       string
	Encouragement   string

	// TopicMastery maps concept names to 0-100 mastery estimates.
	TopicMastery map[string]int
}

// Input carries everything the generator needs about the session.
type Input struct {
	StudentName string
	StudentPRN  string
	TopicName   string

	Score      int
	MaxScore   int
	Percentage int

	// Answers summarizes each scored question, in order.
	Answers []AnswerSummary

	// DurationMins is the configured session length in minutes.
	DurationMins int
}

// AnswerSummary is the per-question digest sent to the generator.
type AnswerSummary struct {
	QuestionNumber int
	Correct        bool
	PointsAwarded  int
	TimeSecs       int
}

// Generator produces an insight Bundle for a completed session.
type Generator interface {
	Insights(ctx context.Context, in Input) (*Bundle, error)
}
