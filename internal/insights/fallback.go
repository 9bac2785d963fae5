package insights

// GradeFor maps a score percentage to a letter grade.
func GradeFor(percentage int) string {
	switch {
	case percentage >= 90:
		return "A+"
	case percentage >= 80:
		return "A"
	case percentage >= 70:
		return "B+"
	case percentage >= 60:
		return "B"
	case percentage >= 50:
		return "C"
	case percentage >= 40:
		return "D"
	default:
		return "F"
	}
}

// Percentage computes the rounded score percentage, 0 when nothing was
// at stake.
func Percentage(score, maxScore int) int {
	if maxScore <= 0 {
		return 0
	}
	return (score*100 + maxScore/2) / maxScore
}

// Fallback builds the deterministic bundle used when the insight service
// fails. Generic content, locally computed grade.
func Fallback(in Input) *Bundle {
	return &Bundle{
		Grade:           GradeFor(Percentage(in.Score, in.MaxScore)),
		Strengths:       []string{"Completed the test"},
		Weaknesses:      []string{"Review missed questions"},
		Recommendations: []string{"Practice more on weak areas"},
		StudyPlan:       "Keep practicing to improve your skills.",
		Encouragement:   "Great effort! Keep learning!",
		TopicMastery:    map[string]int{},
	}
}
