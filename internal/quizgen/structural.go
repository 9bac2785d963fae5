package quizgen

import "fmt"

// ValidationError describes why a generated question was rejected.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid question %s: %s", e.Field, e.Message)
}

// normalizeQuestion fixes up fields the generator gets loosely right.
// Points are authoritative from the kind, not the model. True/false
// questions always get the canonical option pair.
func normalizeQuestion(q *Question) {
	if q.Kind.Valid() {
		q.Points = q.Kind.Points()
	}
	switch q.Kind {
	case KindTrueFalse:
		q.Options = []string{"True", "False"}
	case KindDescriptive, KindScenario:
		q.Options = nil
	}
}

// validateQuestion rejects structurally unusable questions.
func validateQuestion(q *Question) *ValidationError {
	if q.Prompt == "" {
		return &ValidationError{Field: "question", Message: "empty prompt"}
	}
	if !q.Kind.Valid() {
		return &ValidationError{Field: "type", Message: fmt.Sprintf("unknown kind %q", q.Kind)}
	}
	if !q.Difficulty.Valid() {
		return &ValidationError{Field: "difficulty", Message: fmt.Sprintf("unknown difficulty %q", q.Difficulty)}
	}
	if q.Kind == KindMCQ && len(q.Options) != 4 {
		return &ValidationError{Field: "options", Message: fmt.Sprintf("mcq needs 4 options, got %d", len(q.Options))}
	}
	if q.Number < 1 {
		return &ValidationError{Field: "questionNumber", Message: "must be >= 1"}
	}
	return nil
}

// normalizeEvaluation clamps points to the question's range and enforces
// full-or-zero scoring for fixed-choice kinds.
func normalizeEvaluation(ev *Evaluation, q Question) {
	if ev.PointsAwarded < 0 {
		ev.PointsAwarded = 0
	}
	if ev.PointsAwarded > q.Points {
		ev.PointsAwarded = q.Points
	}
	if q.Kind.HasOptions() {
		if ev.Correct {
			ev.PointsAwarded = q.Points
		} else {
			ev.PointsAwarded = 0
		}
	}
}
