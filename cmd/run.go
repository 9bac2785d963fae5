package cmd

import (
	"fmt"

	"github.com/skand/proctor/internal/app"
	"github.com/skand/proctor/internal/exam"
	"github.com/skand/proctor/internal/insights"
	"github.com/skand/proctor/internal/llm"
	"github.com/skand/proctor/internal/quizgen"
	"github.com/skand/proctor/internal/report"
	"github.com/skand/proctor/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		return fmt.Errorf("LLM provider not configured: %w\n"+
			"Set PROCTOR_GEMINI_API_KEY (or the OpenAI/Anthropic/OpenRouter equivalent) and try again", err)
	}

	opts := app.Options{
		EventRepo:    eventRepo,
		SnapshotRepo: st.SnapshotRepo(),
		Generator:    quizgen.New(provider, quizgen.DefaultConfig()),
		Insights:     insights.New(provider),
		Exporter:     &report.HTMLExporter{Dir: "."},
		ExamConfig:   exam.DefaultConfig(),
	}

	return app.Run(opts)
}
