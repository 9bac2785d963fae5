package insights

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/skand/proctor/internal/llm"
)

// InsightSchema defines the JSON shape for insight generation responses.
var InsightSchema = &llm.Schema{
	Name:        "report-insights",
	Description: "Synthesized commentary for a completed test",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"grade": map[string]any{
				"type": "string",
				"enum": []any{"A+", "A", "B+", "B", "C", "D", "F"},
			},
			"strengths": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"weaknesses": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"recommendations": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"studyPlan": map[string]any{
				"type":        "string",
				"description": "Personalized study plan paragraph",
			},
			"encouragement": map[string]any{
				"type":        "string",
				"description": "Motivational message",
			},
			"topicMastery": map[string]any{
				"type":        "object",
				"description": "Concept name to 0-100 mastery estimate",
				"additionalProperties": map[string]any{
					"type":    "integer",
					"minimum": 0,
					"maximum": 100,
				},
			},
		},
		"required": []any{"grade", "strengths", "weaknesses", "recommendations", "studyPlan", "encouragement"},
	},
}

const insightSystemPrompt = `You are writing the results report for a student who just finished a timed adaptive test. Generate honest, specific, and encouraging insights grounded in the answer data you are given. Strengths and weaknesses must reference actual performance patterns, not generic praise.`

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider  llm.Provider
	maxTokens int
}

// New creates an LLMGenerator.
func New(provider llm.Provider) *LLMGenerator {
	return &LLMGenerator{provider: provider, maxTokens: 1536}
}

type insightOutput struct {
	Grade           string         `json:"grade"`
	Strengths       []string       `json:"strengths"`
	Weaknesses      []string       `json:"weaknesses"`
	Recommendations []string       `json:"recommendations"`
	StudyPlan       string         `json:"studyPlan"`
	Encouragement   string         `json:"encouragement"`
	TopicMastery    map[string]int `json:"topicMastery"`
}

// Insights generates the bundle for a completed session.
func (g *LLMGenerator) Insights(ctx context.Context, in Input) (*Bundle, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeInsights)

	req := llm.Request{
		System: insightSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildInsightMessage(in)},
		},
		Schema:      InsightSchema,
		MaxTokens:   g.maxTokens,
		Temperature: 0.7,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("insight generation failed: %w", err)
	}

	var raw insightOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse insight response: %w", err)
	}

	bundle := &Bundle{
		Grade:           raw.Grade,
		Strengths:       raw.Strengths,
		Weaknesses:      raw.Weaknesses,
		Recommendations: raw.Recommendations,
		StudyPlan:       raw.StudyPlan,
		Encouragement:   raw.Encouragement,
		TopicMastery:    raw.TopicMastery,
	}
	if bundle.TopicMastery == nil {
		bundle.TopicMastery = map[string]int{}
	}
	return bundle, nil
}

func buildInsightMessage(in Input) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Student: %s (%s)\n", in.StudentName, in.StudentPRN)
	fmt.Fprintf(&b, "Topic: %s\n", in.TopicName)
	fmt.Fprintf(&b, "Final score: %d/%d (%d%%)\n", in.Score, in.MaxScore, in.Percentage)
	fmt.Fprintf(&b, "Total questions: %d\n", len(in.Answers))

	correct := 0
	for _, a := range in.Answers {
		if a.Correct {
			correct++
		}
	}
	fmt.Fprintf(&b, "Correct: %d\n", correct)
	fmt.Fprintf(&b, "Time: %d minutes\n\n", in.DurationMins)

	b.WriteString("Answers:\n")
	for _, a := range in.Answers {
		verdict := "incorrect"
		if a.Correct {
			verdict = "correct"
		}
		fmt.Fprintf(&b, "Q%d: %s, %d points, %ds\n", a.QuestionNumber, verdict, a.PointsAwarded, a.TimeSecs)
	}

	return b.String()
}
