package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// StudentData is the persisted form of a student identity.
type StudentData struct {
	Name string `json:"name"`
	PRN  string `json:"prn"`
}

// SnapshotData holds durable app state carried between runs.
type SnapshotData struct {
	Version int `json:"version"`

	// LastStudent prefills the welcome form on the next run.
	LastStudent *StudentData `json:"last_student,omitempty"`
}

// Snapshot represents a point-in-time capture of app state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages app state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// SessionEventData captures a session lifecycle event (start or end).
type SessionEventData struct {
	SessionID      string
	Action         string
	StudentName    string
	StudentPRN     string
	TopicID        string
	TopicName      string
	Score          int
	MaxScore       int
	QuestionsAsked int
	CorrectAnswers int
	DurationSecs   int
}

// SessionRecord is a completed session as read back for history views.
type SessionRecord struct {
	SessionID      string
	Timestamp      time.Time
	StudentName    string
	StudentPRN     string
	TopicName      string
	Score          int
	MaxScore       int
	QuestionsAsked int
	CorrectAnswers int
	DurationSecs   int
}

// AnswerEventData captures a single scored answer.
type AnswerEventData struct {
	SessionID       string
	QuestionNumber  int
	Kind            string
	Difficulty      string
	QuestionText    string
	StudentAnswer   string
	Correct         bool
	PointsAwarded   int
	MaxPoints       int
	ReferenceAnswer string
	TimeSecs        int
	HintUsed        bool
}

// HintEventData captures a hint reveal.
type HintEventData struct {
	SessionID      string
	QuestionNumber int
	HintText       string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is an LLM request event as read back for inspection.
type LLMEvent struct {
	ID           int
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMUsage aggregates token usage for one purpose label.
type LLMUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendAnswerEvent records a scored answer.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendHintEvent records a hint reveal.
	AppendHintEvent(ctx context.Context, data HintEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentSessions returns completed sessions, newest first.
	RecentSessions(ctx context.Context, limit int) ([]SessionRecord, error)

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns a single LLM event by ID, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage grouped by purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)
}
