// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AssessmentResponseEvent is the predicate function for assessmentresponseevent builders.
type AssessmentResponseEvent func(*sql.Selector)

// Assignment is the predicate function for assignment builders.
type Assignment func(*sql.Selector)

// AssignmentCompletionEvent is the predicate function for assignmentcompletionevent builders.
type AssignmentCompletionEvent func(*sql.Selector)

// AttendanceEvent is the predicate function for attendanceevent builders.
type AttendanceEvent func(*sql.Selector)

// CourseModule is the predicate function for coursemodule builders.
type CourseModule func(*sql.Selector)

// Educator is the predicate function for educator builders.
type Educator func(*sql.Selector)

// Enrollment is the predicate function for enrollment builders.
type Enrollment func(*sql.Selector)

// FeedbackEvent is the predicate function for feedbackevent builders.
type FeedbackEvent func(*sql.Selector)

// Group is the predicate function for group builders.
type Group func(*sql.Selector)

// Lesson is the predicate function for lesson builders.
type Lesson func(*sql.Selector)

// LessonCompletionEvent is the predicate function for lessoncompletionevent builders.
type LessonCompletionEvent func(*sql.Selector)

// PointEvent is the predicate function for pointevent builders.
type PointEvent func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// QuestionEvent is the predicate function for questionevent builders.
type QuestionEvent func(*sql.Selector)

// StudentProfile is the predicate function for studentprofile builders.
type StudentProfile func(*sql.Selector)
