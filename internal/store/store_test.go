package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version:     1,
			LastStudent: &StudentData{Name: "Asha Rao", PRN: "1032210045"},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.LastStudent == nil || snap.Data.LastStudent.PRN != "1032210045" {
		t.Errorf("last student = %+v, want PRN 1032210045", snap.Data.LastStudent)
	}
}

func TestSessionEventsRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	start := SessionEventData{
		SessionID:   "sess-1",
		Action:      "start",
		StudentName: "Asha Rao",
		StudentPRN:  "1032210045",
		TopicID:     "algorithms",
		TopicName:   "Algorithms",
	}
	if err := repo.AppendSessionEvent(ctx, start); err != nil {
		t.Fatalf("append start: %v", err)
	}

	end := start
	end.Action = "end"
	end.Score = 35
	end.MaxScore = 50
	end.QuestionsAsked = 7
	end.CorrectAnswers = 5
	end.DurationSecs = 1130
	if err := repo.AppendSessionEvent(ctx, end); err != nil {
		t.Fatalf("append end: %v", err)
	}

	// RecentSessions only returns "end" events.
	records, err := repo.RecentSessions(ctx, 10)
	if err != nil {
		t.Fatalf("recent sessions: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	r := records[0]
	if r.SessionID != "sess-1" || r.Score != 35 || r.MaxScore != 50 {
		t.Errorf("record = %+v, want sess-1 35/50", r)
	}
}

func TestAnswerAndHintEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendAnswerEvent(ctx, AnswerEventData{
		SessionID:       "sess-2",
		QuestionNumber:  1,
		Kind:            "mcq",
		Difficulty:      "medium",
		QuestionText:    "Which structure gives O(1) lookup?",
		StudentAnswer:   "Hash table",
		Correct:         true,
		PointsAwarded:   5,
		MaxPoints:       5,
		ReferenceAnswer: "Hash table",
		TimeSecs:        21,
	})
	if err != nil {
		t.Fatalf("append answer: %v", err)
	}

	err = repo.AppendHintEvent(ctx, HintEventData{
		SessionID:      "sess-2",
		QuestionNumber: 1,
		HintText:       "Think about average-case lookup cost.",
	})
	if err != nil {
		t.Fatalf("append hint: %v", err)
	}
}

func TestLLMEventQueries(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, purpose := range []string{"first-question", "evaluation", "evaluation"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "gemini",
			Model:        "gemini-2.5-flash",
			Purpose:      purpose,
			InputTokens:  100 + i,
			OutputTokens: 50,
			LatencyMs:    800,
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append llm request %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	// Newest first.
	if events[0].InputTokens != 102 {
		t.Errorf("first event input tokens = %d, want 102", events[0].InputTokens)
	}

	usage, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("usage rows = %d, want 2", len(usage))
	}
	for _, u := range usage {
		if u.Purpose == "evaluation" && u.Calls != 2 {
			t.Errorf("evaluation calls = %d, want 2", u.Calls)
		}
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.ID != events[0].ID {
		t.Errorf("get = %+v, want ID %d", got, events[0].ID)
	}
}

func TestSequenceMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64 = -1
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if seq <= prev {
			t.Fatalf("sequence not monotonic: %d after %d", seq, prev)
		}
		prev = seq
	}
}
