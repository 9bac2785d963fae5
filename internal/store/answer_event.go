package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuestionNumber(data.QuestionNumber).
		SetKind(data.Kind).
		SetDifficulty(data.Difficulty).
		SetQuestionText(data.QuestionText).
		SetStudentAnswer(data.StudentAnswer).
		SetCorrect(data.Correct).
		SetPointsAwarded(data.PointsAwarded).
		SetMaxPoints(data.MaxPoints).
		SetReferenceAnswer(data.ReferenceAnswer).
		SetTimeSecs(data.TimeSecs).
		SetHintUsed(data.HintUsed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}
