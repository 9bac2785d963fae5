package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/skand/proctor/internal/insights"
	"github.com/skand/proctor/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List completed tests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		sessions, err := s.EventRepo().RecentSessions(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}

		if len(sessions) == 0 {
			fmt.Println("No tests taken yet.")
			return nil
		}

		fmt.Printf("%-19s  %-20s  %-22s  %-9s  %-5s  %-5s  %s\n",
			"Date", "Student", "Topic", "Score", "Grade", "Qs", "Time")
		fmt.Println(strings.Repeat("─", 96))

		for _, rec := range sessions {
			pct := insights.Percentage(rec.Score, rec.MaxScore)
			grade := insights.GradeFor(pct)
			scoreStr := fmt.Sprintf("%d/%d", rec.Score, rec.MaxScore)
			timeStr := fmt.Sprintf("%d:%02d", rec.DurationSecs/60, rec.DurationSecs%60)

			fmt.Printf("%-19s  %-20s  %-22s  %-9s  %-5s  %-5d  %s\n",
				rec.Timestamp.Local().Format("2006-01-02 15:04"),
				clip(rec.StudentName, 20),
				clip(rec.TopicName, 22),
				scoreStr,
				grade,
				rec.QuestionsAsked,
				timeStr,
			)
		}
		return nil
	},
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of tests to show")
}
