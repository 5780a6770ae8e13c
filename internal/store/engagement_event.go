package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendPointEvent(ctx context.Context, data PointEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.PointEvent.Create().
		SetSequence(seqNum).
		SetTimestamp(data.Timestamp).
		SetGroupID(data.GroupID).
		SetEnrollmentID(data.EnrollmentID).
		SetPoints(data.Points).
		SetReason(data.Reason).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save point event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAttendanceEvent(ctx context.Context, data AttendanceEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttendanceEvent.Create().
		SetSequence(seqNum).
		SetTimestamp(data.Timestamp).
		SetGroupID(data.GroupID).
		SetEnrollmentID(data.EnrollmentID).
		SetDate(data.Date).
		SetStatus(data.Status).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attendance event: %w", err)
	}
	return nil
}
