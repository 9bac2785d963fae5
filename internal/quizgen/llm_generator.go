package quizgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/skand/proctor/internal/llm"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// questionOutput is the raw LLM response before normalization.
type questionOutput struct {
	QuestionNumber int      `json:"questionNumber"`
	Type           string   `json:"type"`
	Difficulty     string   `json:"difficulty"`
	Question       string   `json:"question"`
	Options        []string `json:"options"`
	Points         int      `json:"points"`
	Hint           string   `json:"hint"`
}

// evaluationOutput is the raw LLM response before normalization.
type evaluationOutput struct {
	IsCorrect     bool     `json:"isCorrect"`
	PointsAwarded int      `json:"pointsAwarded"`
	Feedback      string   `json:"feedback"`
	CorrectAnswer string   `json:"correctAnswer"`
	KeyPoints     []string `json:"keyPoints"`
}

// FirstQuestion generates the opening question for a session.
func (g *LLMGenerator) FirstQuestion(ctx context.Context, topicName, studentName, studentPRN string) (*Question, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeFirstQuestion)
	msg := buildFirstQuestionMessage(topicName, studentName, studentPRN)
	return g.generateQuestion(ctx, msg, 1)
}

// NextQuestion generates a follow-up question adapted to recent performance.
func (g *LLMGenerator) NextQuestion(ctx context.Context, topicName string, questionNumber int, history []HistoryEntry, perf PerformanceSummary) (*Question, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeNextQuestion)
	msg := buildNextQuestionMessage(topicName, questionNumber, history, perf, g.config.MaxHistory)
	return g.generateQuestion(ctx, msg, questionNumber)
}

func (g *LLMGenerator) generateQuestion(ctx context.Context, userMsg string, questionNumber int) (*Question, error) {
	req := llm.Request{
		System: examinerSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      QuestionSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("question generation failed: %w", err)
	}

	var raw questionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse question response: %w", err)
	}

	q := &Question{
		Number:     questionNumber,
		Kind:       Kind(raw.Type),
		Difficulty: Difficulty(raw.Difficulty),
		Prompt:     raw.Question,
		Options:    raw.Options,
		Points:     raw.Points,
		Hint:       raw.Hint,
	}
	normalizeQuestion(q)

	if verr := validateQuestion(q); verr != nil {
		return nil, verr
	}

	return q, nil
}

// Evaluate scores a submitted answer against the question.
func (g *LLMGenerator) Evaluate(ctx context.Context, q Question, studentAnswer string, timeSpentSecs int, hintUsed bool) (*Evaluation, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeEvaluation)

	req := llm.Request{
		System: evaluatorSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildEvaluationMessage(q, studentAnswer, timeSpentSecs, hintUsed)},
		},
		Schema:      EvaluationSchema,
		MaxTokens:   g.config.EvalMaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("answer evaluation failed: %w", err)
	}

	var raw evaluationOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse evaluation response: %w", err)
	}

	ev := &Evaluation{
		Correct:         raw.IsCorrect,
		PointsAwarded:   raw.PointsAwarded,
		Feedback:        raw.Feedback,
		ReferenceAnswer: raw.CorrectAnswer,
		KeyPoints:       raw.KeyPoints,
	}
	normalizeEvaluation(ev, q)

	return ev, nil
}
