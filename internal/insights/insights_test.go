package insights

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/skand/proctor/internal/llm"
)

func TestGradeFor(t *testing.T) {
	tests := []struct {
		pct  int
		want string
	}{
		{100, "A+"},
		{91, "A+"},
		{90, "A+"},
		{89, "A"},
		{85, "A"},
		{80, "A"},
		{79, "B+"},
		{70, "B+"},
		{67, "B"},
		{60, "B"},
		{59, "C"},
		{50, "C"},
		{42, "D"},
		{40, "D"},
		{38, "F"},
		{0, "F"},
	}
	for _, tt := range tests {
		if got := GradeFor(tt.pct); got != tt.want {
			t.Errorf("GradeFor(%d) = %q, want %q", tt.pct, got, tt.want)
		}
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		score, max, want int
	}{
		{10, 15, 67},
		{5, 10, 50},
		{0, 0, 0},
		{0, 50, 0},
		{50, 50, 100},
	}
	for _, tt := range tests {
		if got := Percentage(tt.score, tt.max); got != tt.want {
			t.Errorf("Percentage(%d, %d) = %d, want %d", tt.score, tt.max, got, tt.want)
		}
	}
}

func TestFallback(t *testing.T) {
	b := Fallback(Input{Score: 10, MaxScore: 15})
	if b.Grade != "B" {
		t.Errorf("grade = %q, want B (67%%)", b.Grade)
	}
	if len(b.Strengths) == 0 || len(b.Weaknesses) == 0 || len(b.Recommendations) == 0 {
		t.Error("fallback must carry generic content in every list")
	}
	if b.StudyPlan == "" || b.Encouragement == "" {
		t.Error("fallback must fill the prose fields")
	}
	if b.TopicMastery == nil {
		t.Error("topic mastery must be an empty map, not nil")
	}
}

func TestInsights_ParsesBundle(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{
			"grade": "A",
			"strengths": ["strong on recursion"],
			"weaknesses": ["slow on graph questions"],
			"recommendations": ["practice BFS/DFS"],
			"studyPlan": "Spend a week on graphs.",
			"encouragement": "Well done!",
			"topicMastery": {"recursion": 90, "graphs": 55}
		}`)},
	)
	g := New(mock)

	in := Input{
		StudentName: "Asha Rao",
		StudentPRN:  "1032210045",
		TopicName:   "Algorithms",
		Score:       42,
		MaxScore:    50,
		Percentage:  84,
		Answers: []AnswerSummary{
			{QuestionNumber: 1, Correct: true, PointsAwarded: 5, TimeSecs: 20},
			{QuestionNumber: 2, Correct: false, PointsAwarded: 0, TimeSecs: 61},
		},
		DurationMins: 20,
	}

	b, err := g.Insights(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Grade != "A" {
		t.Errorf("grade = %q", b.Grade)
	}
	if b.TopicMastery["graphs"] != 55 {
		t.Errorf("mastery = %v", b.TopicMastery)
	}

	sent := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"Asha Rao", "Algorithms", "42/50 (84%)", "Q2: incorrect, 0 points, 61s", "Correct: 1"} {
		if !strings.Contains(sent, want) {
			t.Errorf("prompt missing %q:\n%s", want, sent)
		}
	}
}

func TestInsights_ErrorPropagatesForFallback(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	g := New(mock)

	_, err := g.Insights(context.Background(), Input{})
	if err == nil {
		t.Fatal("expected error so the caller can fall back")
	}
}

func TestInsights_NilMasteryBecomesEmptyMap(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{
			"grade": "C",
			"strengths": ["s"],
			"weaknesses": ["w"],
			"recommendations": ["r"],
			"studyPlan": "p",
			"encouragement": "e"
		}`)},
	)
	g := New(mock)

	b, err := g.Insights(context.Background(), Input{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.TopicMastery == nil {
		t.Fatal("mastery map must not be nil")
	}
}
