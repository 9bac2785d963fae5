package quizgen

import "github.com/skand/proctor/internal/llm"

// QuestionSchema defines the JSON shape for question generation responses.
var QuestionSchema = &llm.Schema{
	Name:        "quiz-question",
	Description: "A single quiz question with type, difficulty, and score weight",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questionNumber": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"description": "1-based position of this question in the test",
			},
			"type": map[string]any{
				"type":        "string",
				"enum":        []any{"mcq", "truefalse", "descriptive", "scenario"},
				"description": "How the student answers this question",
			},
			"difficulty": map[string]any{
				"type":        "string",
				"enum":        []any{"easy", "medium", "hard"},
				"description": "Self-assessed difficulty",
			},
			"question": map[string]any{
				"type":        "string",
				"description": "The question text shown to the student, plain text",
			},
			"options": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "4 plain-text choices for mcq, 2 for truefalse, empty otherwise",
			},
			"points": map[string]any{
				"type":        "integer",
				"description": "Score weight: mcq/truefalse = 5, descriptive = 10, scenario = 15",
			},
			"hint": map[string]any{
				"type":        "string",
				"description": "A short optional hint the student may reveal",
			},
		},
		"required":             []any{"questionNumber", "type", "difficulty", "question", "points"},
		"additionalProperties": false,
	},
}

// EvaluationSchema defines the JSON shape for answer evaluation responses.
var EvaluationSchema = &llm.Schema{
	Name:        "answer-evaluation",
	Description: "A scored verdict for a student's answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"isCorrect": map[string]any{
				"type":        "boolean",
				"description": "Whether the answer is substantially correct",
			},
			"pointsAwarded": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"description": "Points awarded, between 0 and the question's maximum",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "Constructive feedback for the student",
			},
			"correctAnswer": map[string]any{
				"type":        "string",
				"description": "The correct or ideal answer, plain text",
			},
			"keyPoints": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Key points the ideal answer covers",
			},
		},
		"required":             []any{"isCorrect", "pointsAwarded", "feedback", "correctAnswer"},
		"additionalProperties": false,
	},
}
