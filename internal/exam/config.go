package exam

import "time"

// Config holds the fixed parameters of one timed session.
type Config struct {
	// Duration is the total time budget for the session.
	Duration time.Duration

	// QuestionTarget is the number of questions the session aims to ask.
	QuestionTarget int

	// LowTimeFloor is the remaining-time threshold below which no new
	// question is issued; progression goes straight to completion.
	LowTimeFloor time.Duration

	// ResultPause is how long the per-question result card is shown
	// before the next question is requested.
	ResultPause time.Duration
}

// DefaultConfig returns the standard 20-minute, 15-question session.
func DefaultConfig() Config {
	return Config{
		Duration:       20 * time.Minute,
		QuestionTarget: 15,
		LowTimeFloor:   60 * time.Second,
		ResultPause:    3 * time.Second,
	}
}
