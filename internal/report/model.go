// Package report assembles the final scored report from the frozen
// session snapshot and the insight bundle, and exports it as a
// standalone HTML document.
package report

import (
	"context"

	"github.com/skand/proctor/internal/exam"
	"github.com/skand/proctor/internal/insights"
)

// Model is the fully assembled, renderable report.
type Model struct {
	StudentName string
	StudentPRN  string
	TopicName   string

	Score      int
	MaxScore   int
	Percentage int

	QuestionCount int
	CorrectCount  int

	// AvgTimeSecs is the mean answer time across recorded answers.
	AvgTimeSecs int

	// TimeUsedSecs is total session time consumed.
	TimeUsedSecs int

	Answers []exam.AnswerRecord

	Insights insights.Bundle

	// FallbackUsed marks that the insight service failed and the bundle
	// is the deterministic local one.
	FallbackUsed bool
}

// Assemble builds the report model, asking the insight generator for
// commentary and falling back locally on any failure. It never returns
// an error: the report always renders.
func Assemble(ctx context.Context, gen insights.Generator, in exam.ReportInput, durationMins int) *Model {
	m := &Model{
		StudentName:   in.Student.Name,
		StudentPRN:    in.Student.PRN,
		TopicName:     in.Topic.Name,
		Score:         in.Score,
		MaxScore:      in.MaxScore,
		Percentage:    insights.Percentage(in.Score, in.MaxScore),
		QuestionCount: len(in.Answers),
		TimeUsedSecs:  in.TimeUsedSecs,
		Answers:       in.Answers,
	}

	totalTime := 0
	for _, a := range in.Answers {
		if a.Correct {
			m.CorrectCount++
		}
		totalTime += a.TimeSpentSecs
	}
	if len(in.Answers) > 0 {
		m.AvgTimeSecs = totalTime / len(in.Answers)
	}

	input := insightInput(in, m.Percentage, durationMins)
	bundle, err := gen.Insights(ctx, input)
	if err != nil {
		bundle = insights.Fallback(input)
		m.FallbackUsed = true
	}
	m.Insights = *bundle

	return m
}

func insightInput(in exam.ReportInput, percentage, durationMins int) insights.Input {
	answers := make([]insights.AnswerSummary, len(in.Answers))
	for i, a := range in.Answers {
		answers[i] = insights.AnswerSummary{
			QuestionNumber: a.QuestionNumber,
			Correct:        a.Correct,
			PointsAwarded:  a.PointsAwarded,
			TimeSecs:       a.TimeSpentSecs,
		}
	}
	return insights.Input{
		StudentName:  in.Student.Name,
		StudentPRN:   in.Student.PRN,
		TopicName:    in.Topic.Name,
		Score:        in.Score,
		MaxScore:     in.MaxScore,
		Percentage:   percentage,
		Answers:      answers,
		DurationMins: durationMins,
	}
}
