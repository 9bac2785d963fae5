package quizgen

import (
	"fmt"
	"strings"
)

const examinerSystemPrompt = `You are an intelligent examiner conducting a comprehensive timed test for a university student.

Rules:
- Generate exactly ONE question per request, never a full question set.
- Mix question types across the test: multiple choice (4 options), true/false, descriptive, and scenario-based.
- Question text and options must be plain text. No HTML, no Markdown markup.
- Points are fixed by question type: mcq and truefalse are worth 5, descriptive 10, scenario 15.
- For mcq, provide exactly 4 options with exactly one correct. Distractors should reflect common mistakes, not random values.
- For truefalse, provide exactly the options "True" and "False".
- For descriptive and scenario questions, leave the options empty.
- Make questions engaging and practical, not rote recall.
- Include a short hint when the question benefits from one.`

const evaluatorSystemPrompt = `You are grading one answer from a timed test. Be thorough, encouraging, and honest.

Scoring rules:
- mcq and truefalse: award FULL points if correct, 0 if wrong. No partial credit.
- descriptive and scenario: partial credit allowed, 0 up to the question maximum, based on quality and coverage of key points.
- Feedback must be constructive and specific to the student's answer.
- correctAnswer must state the correct or ideal answer in plain text.`

// buildFirstQuestionMessage constructs the prompt for the opening question.
func buildFirstQuestionMessage(topicName, studentName, studentPRN string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", topicName)
	fmt.Fprintf(&b, "Student: %s (PRN %s)\n\n", studentName, studentPRN)
	b.WriteString("This is the FIRST question of the test.\n")
	b.WriteString("Start with medium difficulty.\n")
	b.WriteString("Set questionNumber to 1.")

	return b.String()
}

// buildNextQuestionMessage constructs the prompt for a follow-up question,
// steering difficulty from recent performance.
func buildNextQuestionMessage(topicName string, questionNumber int, history []HistoryEntry, perf PerformanceSummary, maxHistory int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", topicName)
	fmt.Fprintf(&b, "This is question %d of the test.\n\n", questionNumber)

	fmt.Fprintf(&b, "Recent performance: %s\n", formatHistory(history, maxHistory))
	fmt.Fprintf(&b, "Current score: %d/%d\n", perf.Score, perf.MaxScore)
	fmt.Fprintf(&b, "Accuracy: %d%%\n\n", perf.Accuracy)

	switch {
	case perf.Accuracy > 75:
		b.WriteString("The student is doing well. Increase the difficulty.\n")
	case perf.Accuracy < 50:
		b.WriteString("The student is struggling. Ask an easier question and keep the tone encouraging.\n")
	default:
		b.WriteString("Keep the difficulty at the current level.\n")
	}

	b.WriteString("Vary the question type relative to recent questions.\n")
	fmt.Fprintf(&b, "Set questionNumber to %d.", questionNumber)

	return b.String()
}

// formatHistory renders the most recent answered questions, oldest first.
func formatHistory(history []HistoryEntry, max int) string {
	if len(history) == 0 {
		return "none yet"
	}
	if max > 0 && len(history) > max {
		history = history[len(history)-max:]
	}

	parts := make([]string, len(history))
	for i, h := range history {
		verdict := "Incorrect"
		if h.Correct {
			verdict = "Correct"
		}
		parts[i] = fmt.Sprintf("Q%d: %s (%ds)", h.QuestionNumber, verdict, h.TimeSecs)
	}
	return strings.Join(parts, ", ")
}

// buildEvaluationMessage constructs the grading prompt for one answer.
func buildEvaluationMessage(q Question, studentAnswer string, timeSpentSecs int, hintUsed bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Question type: %s\n", q.Kind)
	fmt.Fprintf(&b, "Question: %s\n", q.Prompt)
	if len(q.Options) > 0 {
		fmt.Fprintf(&b, "Options: %s\n", strings.Join(q.Options, " | "))
	}
	fmt.Fprintf(&b, "Maximum points: %d\n\n", q.Points)

	fmt.Fprintf(&b, "Student's answer: %s\n", studentAnswer)
	fmt.Fprintf(&b, "Time spent: %d seconds\n", timeSpentSecs)
	if hintUsed {
		b.WriteString("The student used the hint for this question.\n")
	}

	fmt.Fprintf(&b, "\npointsAwarded must be between 0 and %d.", q.Points)
	if q.Kind.HasOptions() {
		fmt.Fprintf(&b, " For this question type it must be exactly 0 or %d.", q.Points)
	}

	return b.String()
}
