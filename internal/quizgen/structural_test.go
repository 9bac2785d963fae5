package quizgen

import (
	"reflect"
	"testing"
)

func TestKindPoints(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindMCQ, 5},
		{KindTrueFalse, 5},
		{KindDescriptive, 10},
		{KindScenario, 15},
		{Kind("jumble"), 0},
	}
	for _, tt := range tests {
		if got := tt.kind.Points(); got != tt.want {
			t.Errorf("%s.Points() = %d, want %d", tt.kind, got, tt.want)
		}
	}
}

func TestNormalizeQuestion_PointsFromKind(t *testing.T) {
	// Model claimed 5 points for a scenario question; the kind wins.
	q := &Question{Kind: KindScenario, Points: 5, Prompt: "p", Difficulty: DifficultyHard, Number: 1}
	normalizeQuestion(q)
	if q.Points != 15 {
		t.Errorf("points = %d, want 15", q.Points)
	}
}

func TestNormalizeQuestion_TrueFalseOptions(t *testing.T) {
	q := &Question{Kind: KindTrueFalse, Options: []string{"yes", "no", "maybe"}, Prompt: "p", Difficulty: DifficultyEasy, Number: 1}
	normalizeQuestion(q)
	if !reflect.DeepEqual(q.Options, []string{"True", "False"}) {
		t.Errorf("options = %v", q.Options)
	}
}

func TestNormalizeQuestion_DescriptiveDropsOptions(t *testing.T) {
	q := &Question{Kind: KindDescriptive, Options: []string{"stray"}, Prompt: "p", Difficulty: DifficultyMedium, Number: 1}
	normalizeQuestion(q)
	if q.Options != nil {
		t.Errorf("options = %v, want nil", q.Options)
	}
}

func TestNormalizeEvaluation_Clamping(t *testing.T) {
	tests := []struct {
		name    string
		q       Question
		ev      Evaluation
		want    int
	}{
		{
			name: "negative clamped to zero",
			q:    Question{Kind: KindDescriptive, Points: 10},
			ev:   Evaluation{Correct: false, PointsAwarded: -3},
			want: 0,
		},
		{
			name: "over max clamped to max",
			q:    Question{Kind: KindScenario, Points: 15},
			ev:   Evaluation{Correct: true, PointsAwarded: 40},
			want: 15,
		},
		{
			name: "partial credit kept for descriptive",
			q:    Question{Kind: KindDescriptive, Points: 10},
			ev:   Evaluation{Correct: false, PointsAwarded: 6},
			want: 6,
		},
		{
			name: "mcq correct forces full points",
			q:    Question{Kind: KindMCQ, Points: 5},
			ev:   Evaluation{Correct: true, PointsAwarded: 3},
			want: 5,
		},
		{
			name: "truefalse incorrect forces zero",
			q:    Question{Kind: KindTrueFalse, Points: 5},
			ev:   Evaluation{Correct: false, PointsAwarded: 2},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := tt.ev
			normalizeEvaluation(&ev, tt.q)
			if ev.PointsAwarded != tt.want {
				t.Errorf("points = %d, want %d", ev.PointsAwarded, tt.want)
			}
		})
	}
}
