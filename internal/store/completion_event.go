package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendLessonCompletion(ctx context.Context, data LessonCompletionData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LessonCompletionEvent.Create().
		SetSequence(seqNum).
		SetTimestamp(data.Timestamp).
		SetGroupID(data.GroupID).
		SetEnrollmentID(data.EnrollmentID).
		SetLessonID(data.LessonID).
		SetModuleID(data.ModuleID).
		SetQuestionsAnswered(data.QuestionsAnswered).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save lesson completion: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAssignmentCompletion(ctx context.Context, data AssignmentCompletionData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AssignmentCompletionEvent.Create().
		SetSequence(seqNum).
		SetTimestamp(data.Timestamp).
		SetGroupID(data.GroupID).
		SetEnrollmentID(data.EnrollmentID).
		SetAssignmentID(data.AssignmentID).
		SetLessonID(data.LessonID).
		SetScore(data.Score).
		SetDelayed(data.Delayed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save assignment completion: %w", err)
	}
	return nil
}
