// Package pacing implements the temporal distribution engine that turns
// a roster and a curriculum into time-distributed activity events. Each
// synthetic student is assigned a deterministic pace, lessons are walked
// across per-module day windows, and some completions are deferred to a
// later working day and materialized by a second reconciliation pass.
package pacing

import (
	"context"
	"time"
)

// Enrollment identifies a synthetic student in the seeded group. Roster
// order is significant: Index drives every deterministic pacing decision.
type Enrollment struct {
	ID        string
	StudentID string
	Name      string
	Index     int
}

// QuestionSpec is a leaf content item of a lesson.
type QuestionSpec struct {
	ID                   string
	AssignmentQuestionID string

	// KnowledgeComponentID empty suppresses the question-shown event;
	// answered events are emitted regardless.
	KnowledgeComponentID string
}

// LessonSpec is one teachable unit, optionally gated by a mastery check.
// Question order is significant: it drives per-question timestamp offsets.
type LessonSpec struct {
	ID           string
	ModuleID     string
	AssignmentID string // mastery-check assignment; empty when ungated
	Questions    []QuestionSpec
}

// ModuleSpec is one sequential curriculum unit. Module order is
// significant: students progress strictly module by module.
type ModuleSpec struct {
	ID      string
	Lessons []LessonSpec
}

// QuestionActivity is a single question-shown or question-answered record.
type QuestionActivity struct {
	EnrollmentID         string
	LessonID             string
	QuestionID           string
	AssignmentQuestionID string
	KnowledgeComponentID string
	Timestamp            time.Time
}

// LessonCompletion records a student finishing a lesson.
type LessonCompletion struct {
	EnrollmentID      string
	LessonID          string
	ModuleID          string
	QuestionsAnswered int
	Timestamp         time.Time
}

// MasteryCompletion records a mastery-check response and completion pair.
type MasteryCompletion struct {
	EnrollmentID string
	AssignmentID string
	LessonID     string
	Score        float64
	Delayed      bool
	Timestamp    time.Time
}

// Sink durably appends fully-formed activity events. The engine treats
// appends as fire-and-forget within the run loop: each append either
// fully succeeds or returns an error, and the first error aborts the run.
type Sink interface {
	AppendQuestionShown(ctx context.Context, a QuestionActivity) error
	AppendQuestionAnswered(ctx context.Context, a QuestionActivity) error
	AppendLessonCompletion(ctx context.Context, c LessonCompletion) error
	AppendMasteryCompletion(ctx context.Context, c MasteryCompletion) error
}

// PartialLessonContinuation is the deferred remainder of a split lesson:
// the questions still unanswered when the first day's activity ended,
// scheduled for a later working day. Created during the main pass,
// consumed exactly once by the reconciler, never mutated.
type PartialLessonContinuation struct {
	Student   Enrollment
	Lesson    LessonSpec
	LessonIdx int
	ModuleIdx int
	Answered  int   // questions already answered on the first day
	DayOffset int   // scheduled days-ago for the remainder
	Window    []int // module's day window, for a possible deferred check
}

// PendingMasteryCheck is a mastery-check completion deferred to a later
// working day than its lesson.
type PendingMasteryCheck struct {
	Student   Enrollment
	Lesson    LessonSpec
	LessonIdx int
	ModuleIdx int
	DayOffset int
	Minute    int // intra-day minute keeping the check after the lesson
}
