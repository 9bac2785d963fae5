package report

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/skand/proctor/internal/exam"
	"github.com/skand/proctor/internal/insights"
	"github.com/skand/proctor/internal/quizgen"
	"github.com/skand/proctor/internal/topic"
)

type stubInsights struct {
	bundle *insights.Bundle
	err    error
	seen   insights.Input
}

func (s *stubInsights) Insights(_ context.Context, in insights.Input) (*insights.Bundle, error) {
	s.seen = in
	if s.err != nil {
		return nil, s.err
	}
	return s.bundle, nil
}

func sampleInput() exam.ReportInput {
	return exam.ReportInput{
		Student: exam.StudentInfo{Name: "Asha Rao", PRN: "1032210045"},
		Topic:   topic.Topic{ID: "algorithms", Name: "Algorithms"},
		Answers: []exam.AnswerRecord{
			{QuestionNumber: 1, Kind: quizgen.KindMCQ, QuestionText: "Q1?", StudentAnswer: "a", Correct: true, PointsAwarded: 5, MaxPoints: 5, TimeSpentSecs: 20, Feedback: "good"},
			{QuestionNumber: 2, Kind: quizgen.KindMCQ, QuestionText: "Q2?", StudentAnswer: "b", Correct: false, PointsAwarded: 0, MaxPoints: 5, TimeSpentSecs: 40, Feedback: "nope", ReferenceAnswer: "c"},
			{QuestionNumber: 3, Kind: quizgen.KindMCQ, QuestionText: "Q3?", StudentAnswer: "d", Correct: true, PointsAwarded: 5, MaxPoints: 5, TimeSpentSecs: 30, Feedback: "good"},
		},
		Score:        10,
		MaxScore:     15,
		TimeUsedSecs: 900,
	}
}

func TestAssemble(t *testing.T) {
	stub := &stubInsights{bundle: &insights.Bundle{
		Grade:     "B",
		Strengths: []string{"quick on MCQs"},
	}}

	m := Assemble(context.Background(), stub, sampleInput(), 20)

	if m.Percentage != 67 {
		t.Errorf("percentage = %d, want 67", m.Percentage)
	}
	if m.CorrectCount != 2 || m.QuestionCount != 3 {
		t.Errorf("correct = %d/%d, want 2/3", m.CorrectCount, m.QuestionCount)
	}
	if m.AvgTimeSecs != 30 {
		t.Errorf("avg time = %d, want 30", m.AvgTimeSecs)
	}
	if m.FallbackUsed {
		t.Error("fallback flagged despite generator success")
	}
	if m.Insights.Grade != "B" {
		t.Errorf("grade = %q", m.Insights.Grade)
	}

	// The generator saw the digest, not the raw records.
	if stub.seen.Percentage != 67 || len(stub.seen.Answers) != 3 || stub.seen.DurationMins != 20 {
		t.Errorf("generator input = %+v", stub.seen)
	}
}

func TestAssemble_FallbackOnInsightFailure(t *testing.T) {
	stub := &stubInsights{err: context.DeadlineExceeded}

	m := Assemble(context.Background(), stub, sampleInput(), 20)

	if !m.FallbackUsed {
		t.Fatal("fallback not flagged")
	}
	// 67% lands in [60,70) → "B" by the local threshold table.
	if m.Insights.Grade != "B" {
		t.Errorf("fallback grade = %q, want B", m.Insights.Grade)
	}
	if len(m.Insights.Strengths) == 0 {
		t.Error("fallback bundle empty")
	}
}

func TestAssemble_DoesNotMutateSnapshot(t *testing.T) {
	in := sampleInput()
	before := len(in.Answers)
	stub := &stubInsights{err: context.DeadlineExceeded}

	_ = Assemble(context.Background(), stub, in, 20)
	_ = Assemble(context.Background(), stub, in, 20)

	if len(in.Answers) != before || in.Score != 10 || in.MaxScore != 15 {
		t.Fatal("report assembly mutated the frozen snapshot")
	}
}

func TestHTMLExport(t *testing.T) {
	dir := t.TempDir()
	stub := &stubInsights{bundle: &insights.Bundle{
		Grade:           "A",
		Strengths:       []string{"strong fundamentals"},
		Weaknesses:      []string{"edge cases"},
		Recommendations: []string{"practice more"},
		StudyPlan:       "A week of drills.",
		Encouragement:   "Keep going!",
		TopicMastery:    map[string]int{"sorting": 80},
	}}
	m := Assemble(context.Background(), stub, sampleInput(), 20)

	e := &HTMLExporter{Dir: dir}
	path, err := e.Export(m)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	if filepath.Base(path) != "Asha Rao_Algorithms_Report.html" {
		t.Errorf("file name = %q", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read exported file: %v", err)
	}
	html := string(data)
	for _, want := range []string{"Asha Rao", "1032210045", "Algorithms", ">A<", "10/15", "67%", "strong fundamentals", "sorting", "Correct answer:"} {
		if !strings.Contains(html, want) {
			t.Errorf("export missing %q", want)
		}
	}
}

func TestSanitize(t *testing.T) {
	if got := sanitize(`a/b\c:d*e?f"g<h>i|j`); got != "a-b-c-d-e-f-g-h-i-j" {
		t.Errorf("sanitize = %q", got)
	}
	if got := sanitize("  Asha Rao  "); got != "Asha Rao" {
		t.Errorf("sanitize = %q", got)
	}
}
