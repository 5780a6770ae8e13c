package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/abhisek/paceseed/ent"
)

// eventRepo implements EventRepo on the ent client plus the shared
// sequence counter. The raw *sql.DB is kept for aggregate queries ent
// can't express.
type eventRepo struct {
	client      *ent.Client
	db          *sql.DB
	seq         *sequenceCounter
	placeholder func(int) string
}

func (r *eventRepo) AppendQuestionEvent(ctx context.Context, data QuestionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.QuestionEvent.Create().
		SetSequence(seqNum).
		SetTimestamp(data.Timestamp).
		SetGroupID(data.GroupID).
		SetEnrollmentID(data.EnrollmentID).
		SetLessonID(data.LessonID).
		SetQuestionID(data.QuestionID).
		SetAssignmentQuestionID(data.AssignmentQuestionID).
		SetAction(data.Action)

	if data.KnowledgeComponentID != "" {
		builder = builder.SetKnowledgeComponentID(data.KnowledgeComponentID)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save question event: %w", err)
	}
	return nil
}
