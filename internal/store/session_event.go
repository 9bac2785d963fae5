package store

import (
	"context"
	"fmt"

	"github.com/skand/proctor/ent"
	"github.com/skand/proctor/ent/sessionevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetStudentName(data.StudentName).
		SetStudentPrn(data.StudentPRN).
		SetTopicID(data.TopicID).
		SetTopicName(data.TopicName).
		SetScore(data.Score).
		SetMaxScore(data.MaxScore).
		SetQuestionsAsked(data.QuestionsAsked).
		SetCorrectAnswers(data.CorrectAnswers).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentSessions(ctx context.Context, limit int) ([]SessionRecord, error) {
	q := r.client.SessionEvent.Query().
		Where(sessionevent.Action("end")).
		Order(ent.Desc(sessionevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}

	records := make([]SessionRecord, 0, len(events))
	for _, e := range events {
		records = append(records, SessionRecord{
			SessionID:      e.SessionID,
			Timestamp:      e.Timestamp,
			StudentName:    e.StudentName,
			StudentPRN:     e.StudentPrn,
			TopicName:      e.TopicName,
			Score:          e.Score,
			MaxScore:       e.MaxScore,
			QuestionsAsked: e.QuestionsAsked,
			CorrectAnswers: e.CorrectAnswers,
			DurationSecs:   e.DurationSecs,
		})
	}
	return records, nil
}
