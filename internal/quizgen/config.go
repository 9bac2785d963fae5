package quizgen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// MaxTokens is the token budget for question generation responses.
	MaxTokens int

	// EvalMaxTokens is the token budget for evaluation responses,
	// which carry feedback text and key points.
	EvalMaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxHistory is the maximum number of answered questions included
	// in the next-question prompt.
	MaxHistory int
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:     768,
		EvalMaxTokens: 1024,
		Temperature:   0.7,
		MaxHistory:    3,
	}
}
