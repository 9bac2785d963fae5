package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/skand/proctor/internal/llm"
)

func mcqJSON(number int) json.RawMessage {
	return json.RawMessage(`{
		"questionNumber": ` + strconv.Itoa(number) + `,
		"type": "mcq",
		"difficulty": "medium",
		"question": "Which data structure gives O(1) average lookup?",
		"options": ["Linked list", "Hash table", "Binary search tree", "Sorted array"],
		"points": 5,
		"hint": "Think about hashing."
	}`)
}

func TestFirstQuestion(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: mcqJSON(1)},
	)
	g := New(mock, DefaultConfig())

	q, err := g.FirstQuestion(context.Background(), "Data Structures", "Asha Rao", "1032210045")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Number != 1 {
		t.Errorf("number = %d, want 1", q.Number)
	}
	if q.Kind != KindMCQ {
		t.Errorf("kind = %q, want mcq", q.Kind)
	}
	if q.Points != 5 {
		t.Errorf("points = %d, want 5", q.Points)
	}
	if len(q.Options) != 4 {
		t.Errorf("options = %d, want 4", len(q.Options))
	}
	if q.Hint == "" {
		t.Error("expected hint to survive parsing")
	}

	// Prompt carries topic and identity.
	sent := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"Data Structures", "Asha Rao", "1032210045", "FIRST question"} {
		if !contains(sent, want) {
			t.Errorf("first-question prompt missing %q", want)
		}
	}
}

func TestNextQuestion_DifficultySteering(t *testing.T) {
	tests := []struct {
		name     string
		accuracy int
		want     string
	}{
		{"high accuracy increases difficulty", 80, "Increase the difficulty"},
		{"low accuracy eases up", 40, "easier question"},
		{"middle accuracy holds", 60, "current level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(
				llm.MockResponse{Content: mcqJSON(3)},
			)
			g := New(mock, DefaultConfig())

			perf := PerformanceSummary{Score: 10, MaxScore: 15, Accuracy: tt.accuracy}
			history := []HistoryEntry{
				{QuestionNumber: 1, Correct: true, TimeSecs: 20},
				{QuestionNumber: 2, Correct: false, TimeSecs: 45},
			}

			q, err := g.NextQuestion(context.Background(), "Algorithms", 3, history, perf)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if q.Number != 3 {
				t.Errorf("number = %d, want 3", q.Number)
			}

			sent := mock.Calls[0].Messages[0].Content
			if !contains(sent, tt.want) {
				t.Errorf("prompt missing steering %q:\n%s", tt.want, sent)
			}
			if !contains(sent, "Q1: Correct (20s)") || !contains(sent, "Q2: Incorrect (45s)") {
				t.Errorf("prompt missing history summary:\n%s", sent)
			}
		})
	}
}

func TestGenerateQuestion_NumberAuthoritative(t *testing.T) {
	// Model claims questionNumber 1 but we asked for 4; ours wins.
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: mcqJSON(1)},
	)
	g := New(mock, DefaultConfig())

	q, err := g.NextQuestion(context.Background(), "Databases", 4, nil, PerformanceSummary{Accuracy: 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Number != 4 {
		t.Errorf("number = %d, want 4", q.Number)
	}
}

func TestGenerateQuestion_RejectsBadShape(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown kind", `{"questionNumber":1,"type":"jumble","difficulty":"easy","question":"?","points":5}`},
		{"empty prompt", `{"questionNumber":1,"type":"mcq","difficulty":"easy","question":"","options":["a","b","c","d"],"points":5}`},
		{"mcq with 3 options", `{"questionNumber":1,"type":"mcq","difficulty":"easy","question":"?","options":["a","b","c"],"points":5}`},
		{"unknown difficulty", `{"questionNumber":1,"type":"descriptive","difficulty":"brutal","question":"?","points":10}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(
				llm.MockResponse{Content: json.RawMessage(tt.content)},
			)
			g := New(mock, DefaultConfig())

			_, err := g.FirstQuestion(context.Background(), "Python Programming", "A", "1")
			if err == nil {
				t.Fatal("expected validation error")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %T: %v", err, err)
			}
		})
	}
}

func TestGenerateQuestion_ProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	g := New(mock, DefaultConfig())

	_, err := g.FirstQuestion(context.Background(), "React.js", "A", "1")
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected wrapped ErrProviderUnavailable, got %T", err)
	}
}

func TestEvaluate(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{
			"isCorrect": true,
			"pointsAwarded": 5,
			"feedback": "Correct. Hash tables give O(1) average lookup.",
			"correctAnswer": "Hash table",
			"keyPoints": ["hashing", "average-case cost"]
		}`)},
	)
	g := New(mock, DefaultConfig())

	q := Question{Number: 1, Kind: KindMCQ, Difficulty: DifficultyMedium, Prompt: "?", Points: 5}
	ev, err := g.Evaluate(context.Background(), q, "Hash table", 21, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ev.Correct || ev.PointsAwarded != 5 {
		t.Errorf("evaluation = %+v, want correct 5 points", ev)
	}
	if ev.ReferenceAnswer != "Hash table" {
		t.Errorf("reference = %q", ev.ReferenceAnswer)
	}
	if len(ev.KeyPoints) != 2 {
		t.Errorf("key points = %d, want 2", len(ev.KeyPoints))
	}
}

func TestEvaluate_HintUsedReachesPrompt(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"isCorrect":false,"pointsAwarded":0,"feedback":"f","correctAnswer":"c"}`)},
	)
	g := New(mock, DefaultConfig())

	q := Question{Number: 2, Kind: KindDescriptive, Difficulty: DifficultyHard, Prompt: "Explain TCP handshake", Points: 10}
	_, err := g.Evaluate(context.Background(), q, "no idea", 90, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sent := mock.Calls[0].Messages[0].Content
	if !contains(sent, "used the hint") {
		t.Errorf("prompt missing hint usage:\n%s", sent)
	}
	if !contains(sent, "Time spent: 90 seconds") {
		t.Errorf("prompt missing time spent:\n%s", sent)
	}
}

func contains(s, sub string) bool {
	return strings.Contains(s, sub)
}
