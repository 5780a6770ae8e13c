package store

import (
	"context"
	"time"
)

// QuestionEventData is one question-shown or question-answered record.
type QuestionEventData struct {
	GroupID              string
	EnrollmentID         string
	LessonID             string
	QuestionID           string
	AssignmentQuestionID string
	KnowledgeComponentID string
	Action               string // "shown" or "answered"
	Timestamp            time.Time
}

// LessonCompletionData records a student finishing a lesson.
type LessonCompletionData struct {
	GroupID           string
	EnrollmentID      string
	LessonID          string
	ModuleID          string
	QuestionsAnswered int
	Timestamp         time.Time
}

// AssignmentCompletionData records a mastery-check response/completion.
type AssignmentCompletionData struct {
	GroupID      string
	EnrollmentID string
	AssignmentID string
	LessonID     string
	Score        float64
	Delayed      bool
	Timestamp    time.Time
}

// PointEventData records a point award.
type PointEventData struct {
	GroupID      string
	EnrollmentID string
	Points       int
	Reason       string
	Timestamp    time.Time
}

// AttendanceEventData records attendance for one student on one day.
type AttendanceEventData struct {
	GroupID      string
	EnrollmentID string
	Date         time.Time
	Status       string
	Timestamp    time.Time
}

// AssessmentResponseData records a student's assessment response.
type AssessmentResponseData struct {
	GroupID           string
	EnrollmentID      string
	AssessmentID      string
	Score             float64
	QuestionsAnswered int
	Timestamp         time.Time
}

// FeedbackEventData records an AI feedback comment.
type FeedbackEventData struct {
	GroupID      string
	EnrollmentID string
	LessonID     string
	Comment      string
	Tone         string
	Generator    string
	Timestamp    time.Time
}

// DayActivity aggregates one calendar day's seeded events.
type DayActivity struct {
	Day               string // YYYY-MM-DD
	QuestionsShown    int
	QuestionsAnswered int
	LessonsCompleted  int
	MasteryChecks     int
	PointAwards       int
	Attendance        int
}

// EventCounts totals seeded events per type for one group.
type EventCounts struct {
	QuestionEvents        int
	LessonCompletions     int
	AssignmentCompletions int
	PointEvents           int
	AttendanceEvents      int
	AssessmentResponses   int
	FeedbackEvents        int
}

// Total returns the sum across all event types.
func (c EventCounts) Total() int {
	return c.QuestionEvents + c.LessonCompletions + c.AssignmentCompletions +
		c.PointEvents + c.AttendanceEvents + c.AssessmentResponses + c.FeedbackEvents
}

// EventRepo provides append and aggregate access to activity events.
// Appends assign the global sequence number; each append fully succeeds
// or fails, and callers do not retry.
type EventRepo interface {
	AppendQuestionEvent(ctx context.Context, data QuestionEventData) error
	AppendLessonCompletion(ctx context.Context, data LessonCompletionData) error
	AppendAssignmentCompletion(ctx context.Context, data AssignmentCompletionData) error
	AppendPointEvent(ctx context.Context, data PointEventData) error
	AppendAttendanceEvent(ctx context.Context, data AttendanceEventData) error
	AppendAssessmentResponse(ctx context.Context, data AssessmentResponseData) error
	AppendFeedbackEvent(ctx context.Context, data FeedbackEventData) error

	// DailyActivity returns per-day event counts for the group, oldest
	// day first.
	DailyActivity(ctx context.Context, groupID string) ([]DayActivity, error)

	// EventCounts returns per-type totals for the group.
	EventCounts(ctx context.Context, groupID string) (EventCounts, error)

	// DeleteGroupEvents removes every seeded event for the group.
	DeleteGroupEvents(ctx context.Context, groupID string) (int, error)
}

// EducatorData identifies the sandbox teacher account.
type EducatorData struct {
	PublicID string
	Name     string
	Email    string
}

// GroupData identifies the sandbox group.
type GroupData struct {
	PublicID   string
	Name       string
	EducatorID string
}

// StudentData is one synthetic student to enroll. Slice order fixes the
// roster position and thus every pacing decision.
type StudentData struct {
	ProfileID    string
	EnrollmentID string
	DisplayName  string
}

// QuestionRow mirrors the Question entity for content loading.
type QuestionRow struct {
	PublicID             string
	AssignmentQuestionID string
	KnowledgeComponentID string
	Prompt               string
}

// LessonRow mirrors the Lesson entity plus its ordered questions.
type LessonRow struct {
	PublicID     string
	Title        string
	AssignmentID string
	Questions    []QuestionRow
}

// ModuleRow mirrors the CourseModule entity plus its ordered lessons.
type ModuleRow struct {
	PublicID string
	Title    string
	Lessons  []LessonRow
}

// EnrollmentRow mirrors the Enrollment entity.
type EnrollmentRow struct {
	PublicID         string
	StudentProfileID string
	DisplayName      string
	Position         int
}

// RosterRepo manages the sandbox roster and curriculum content.
type RosterRepo interface {
	// EnsureEducator and EnsureGroup create the row when absent; both
	// are idempotent on public ID.
	EnsureEducator(ctx context.Context, data EducatorData) error
	EnsureGroup(ctx context.Context, data GroupData) error

	// HasGroup reports whether the group exists.
	HasGroup(ctx context.Context, publicID string) (bool, error)

	// CreateModule inserts a module with its lessons, questions and
	// mastery-check assignments in one ordered pass.
	CreateModule(ctx context.Context, groupID string, position int, module ModuleRow) error

	// CreateAssessment inserts a group-level assessment assignment.
	CreateAssessment(ctx context.Context, groupID, publicID, title string) error

	// EnrollStudents creates profiles and enrollments in slice order.
	EnrollStudents(ctx context.Context, groupID string, students []StudentData) error

	// Modules returns the group's curriculum in module order, lessons
	// and questions ordered by position.
	Modules(ctx context.Context, groupID string) ([]ModuleRow, error)

	// Enrollments returns the roster ordered by position.
	Enrollments(ctx context.Context, groupID string) ([]EnrollmentRow, error)

	// DeleteGroupRoster removes enrollments, profiles, content and the
	// group itself, honoring the sandbox naming convention.
	DeleteGroupRoster(ctx context.Context, groupID string) error
}
