package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendAssessmentResponse(ctx context.Context, data AssessmentResponseData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AssessmentResponseEvent.Create().
		SetSequence(seqNum).
		SetTimestamp(data.Timestamp).
		SetGroupID(data.GroupID).
		SetEnrollmentID(data.EnrollmentID).
		SetAssessmentID(data.AssessmentID).
		SetScore(data.Score).
		SetQuestionsAnswered(data.QuestionsAnswered).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save assessment response: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendFeedbackEvent(ctx context.Context, data FeedbackEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.FeedbackEvent.Create().
		SetSequence(seqNum).
		SetTimestamp(data.Timestamp).
		SetGroupID(data.GroupID).
		SetEnrollmentID(data.EnrollmentID).
		SetLessonID(data.LessonID).
		SetComment(data.Comment).
		SetTone(data.Tone).
		SetGenerator(data.Generator).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save feedback event: %w", err)
	}
	return nil
}
