package quizgen

// Kind classifies how a question is asked and answered.
type Kind string

const (
	KindMCQ         Kind = "mcq"
	KindTrueFalse   Kind = "truefalse"
	KindDescriptive Kind = "descriptive"
	KindScenario    Kind = "scenario"
)

// Points returns the score weight for this question kind.
func (k Kind) Points() int {
	switch k {
	case KindMCQ, KindTrueFalse:
		return 5
	case KindDescriptive:
		return 10
	case KindScenario:
		return 15
	default:
		return 0
	}
}

// Valid reports whether k is a known question kind.
func (k Kind) Valid() bool {
	switch k {
	case KindMCQ, KindTrueFalse, KindDescriptive, KindScenario:
		return true
	}
	return false
}

// HasOptions reports whether this kind presents a fixed choice list.
func (k Kind) HasOptions() bool {
	return k == KindMCQ || k == KindTrueFalse
}

// Difficulty is the generator's declared difficulty for a question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is a known difficulty level.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Question is a generated quiz question ready for display.
type Question struct {
	// Number is the 1-based position of this question in the session.
	Number int

	Kind       Kind
	Difficulty Difficulty

	// Prompt is the question text shown to the student.
	Prompt string

	// Options is populated for mcq (4 choices) and truefalse (2 choices).
	// Nil for descriptive and scenario questions.
	Options []string

	// Points is the maximum score for this question, fixed by Kind.
	Points int

	// Hint is an optional hint the student can reveal. May be empty.
	Hint string
}

// HistoryEntry summarizes one answered question for prompt context.
type HistoryEntry struct {
	QuestionNumber int
	Correct        bool
	TimeSecs       int
}

// PerformanceSummary feeds adaptive difficulty steering.
type PerformanceSummary struct {
	Score    int
	MaxScore int

	// Accuracy is the percentage of answered questions that were correct,
	// rounded to the nearest integer. 50 when nothing has been answered.
	Accuracy int
}

// Evaluation is the scored verdict for one submitted answer.
type Evaluation struct {
	Correct         bool
	PointsAwarded   int
	Feedback        string
	ReferenceAnswer string
	KeyPoints       []string
}
