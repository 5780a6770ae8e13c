package seeder

import (
	"context"

	"github.com/abhisek/paceseed/internal/pacing"
	"github.com/abhisek/paceseed/internal/store"
)

// repoSink adapts the event repository to the pacing engine's sink,
// stamping every event with the sandbox group ID.
type repoSink struct {
	events  store.EventRepo
	groupID string
}

func (s *repoSink) AppendQuestionShown(ctx context.Context, a pacing.QuestionActivity) error {
	return s.events.AppendQuestionEvent(ctx, s.questionData(a, "shown"))
}

func (s *repoSink) AppendQuestionAnswered(ctx context.Context, a pacing.QuestionActivity) error {
	return s.events.AppendQuestionEvent(ctx, s.questionData(a, "answered"))
}

func (s *repoSink) questionData(a pacing.QuestionActivity, action string) store.QuestionEventData {
	return store.QuestionEventData{
		GroupID:              s.groupID,
		EnrollmentID:         a.EnrollmentID,
		LessonID:             a.LessonID,
		QuestionID:           a.QuestionID,
		AssignmentQuestionID: a.AssignmentQuestionID,
		KnowledgeComponentID: a.KnowledgeComponentID,
		Action:               action,
		Timestamp:            a.Timestamp,
	}
}

func (s *repoSink) AppendLessonCompletion(ctx context.Context, c pacing.LessonCompletion) error {
	return s.events.AppendLessonCompletion(ctx, store.LessonCompletionData{
		GroupID:           s.groupID,
		EnrollmentID:      c.EnrollmentID,
		LessonID:          c.LessonID,
		ModuleID:          c.ModuleID,
		QuestionsAnswered: c.QuestionsAnswered,
		Timestamp:         c.Timestamp,
	})
}

func (s *repoSink) AppendMasteryCompletion(ctx context.Context, c pacing.MasteryCompletion) error {
	return s.events.AppendAssignmentCompletion(ctx, store.AssignmentCompletionData{
		GroupID:      s.groupID,
		EnrollmentID: c.EnrollmentID,
		AssignmentID: c.AssignmentID,
		LessonID:     c.LessonID,
		Score:        c.Score,
		Delayed:      c.Delayed,
		Timestamp:    c.Timestamp,
	})
}
