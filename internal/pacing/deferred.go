package pacing

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/paceseed/internal/archetype"
	"github.com/abhisek/paceseed/internal/calendar"
)

// reconcile drains the deferred-work queues after the main pass.
// Continuations go first because a split lesson's completion can itself
// defer a mastery check onto the pending queue. Entries are independent
// of each other; only per-entry internal ordering matters.
func (r *run) reconcile(ctx context.Context) error {
	for _, c := range r.continuations {
		if err := r.resumeContinuation(ctx, c); err != nil {
			return err
		}
	}

	for _, p := range r.pendingChecks {
		if err := r.sink.AppendMasteryCompletion(ctx, MasteryCompletion{
			EnrollmentID: p.Student.ID,
			AssignmentID: p.Lesson.AssignmentID,
			LessonID:     p.Lesson.ID,
			Score:        archetype.MasteryScore(p.Student.Index, p.LessonIdx),
			Delayed:      true,
			Timestamp:    r.stamp(p.DayOffset, p.Minute),
		}); err != nil {
			return fmt.Errorf("append deferred mastery completion: %w", err)
		}
		r.stats.addMastery(p.DayOffset)
	}

	r.log.Debug("reconciled deferred work",
		zap.Int("continuations", len(r.continuations)),
		zap.Int("pending_checks", len(r.pendingChecks)),
	)
	return nil
}

// resumeContinuation emits the remaining question pairs and the lesson
// completion at the continuation's scheduled day, then re-applies the
// delay decision with the continuation's own indices, so a resumed lesson
// can still end with a deferred mastery check.
func (r *run) resumeContinuation(ctx context.Context, c PartialLessonContinuation) error {
	if err := r.emitQuestions(ctx, c.Student, c.Lesson, c.Answered, len(c.Lesson.Questions), c.DayOffset); err != nil {
		return err
	}

	completionMinute := len(c.Lesson.Questions) * questionStride

	if err := r.sink.AppendLessonCompletion(ctx, LessonCompletion{
		EnrollmentID:      c.Student.ID,
		LessonID:          c.Lesson.ID,
		ModuleID:          c.Lesson.ModuleID,
		QuestionsAnswered: len(c.Lesson.Questions),
		Timestamp:         r.stamp(c.DayOffset, completionMinute),
	}); err != nil {
		return fmt.Errorf("append continued lesson completion: %w", err)
	}
	r.stats.addCompleted(c.DayOffset)

	if c.Lesson.AssignmentID == "" {
		return nil
	}

	if archetype.ShouldDelayMasteryCheck(c.Student.Index, c.LessonIdx, c.ModuleIdx) {
		r.pendingChecks = append(r.pendingChecks, PendingMasteryCheck{
			Student:   c.Student,
			Lesson:    c.Lesson,
			LessonIdx: c.LessonIdx,
			ModuleIdx: c.ModuleIdx,
			DayOffset: calendar.NextWorkingDay(c.DayOffset, c.Window),
			Minute:    completionMinute + deferredGap,
		})
		r.stats.DelayedChecks++
		return nil
	}

	if err := r.sink.AppendMasteryCompletion(ctx, MasteryCompletion{
		EnrollmentID: c.Student.ID,
		AssignmentID: c.Lesson.AssignmentID,
		LessonID:     c.Lesson.ID,
		Score:        archetype.MasteryScore(c.Student.Index, c.LessonIdx),
		Delayed:      true,
		Timestamp:    r.stamp(c.DayOffset, completionMinute+masteryGap),
	}); err != nil {
		return fmt.Errorf("append continued mastery completion: %w", err)
	}
	r.stats.addMastery(c.DayOffset)
	return nil
}
