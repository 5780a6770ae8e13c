// Code generated by ent, DO NOT EDIT.

package assignmentcompletionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the assignmentcompletionevent type in the database.
	Label = "assignment_completion_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldGroupID holds the string denoting the group_id field in the database.
	FieldGroupID = "group_id"
	// FieldEnrollmentID holds the string denoting the enrollment_id field in the database.
	FieldEnrollmentID = "enrollment_id"
	// FieldAssignmentID holds the string denoting the assignment_id field in the database.
	FieldAssignmentID = "assignment_id"
	// FieldLessonID holds the string denoting the lesson_id field in the database.
	FieldLessonID = "lesson_id"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldDelayed holds the string denoting the delayed field in the database.
	FieldDelayed = "delayed"
	// Table holds the table name of the assignmentcompletionevent in the database.
	Table = "assignment_completion_events"
)

// Columns holds all SQL columns for assignmentcompletionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldGroupID,
	FieldEnrollmentID,
	FieldAssignmentID,
	FieldLessonID,
	FieldScore,
	FieldDelayed,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// GroupIDValidator is a validator for the "group_id" field. It is called by the builders before save.
	GroupIDValidator func(string) error
	// EnrollmentIDValidator is a validator for the "enrollment_id" field. It is called by the builders before save.
	EnrollmentIDValidator func(string) error
	// AssignmentIDValidator is a validator for the "assignment_id" field. It is called by the builders before save.
	AssignmentIDValidator func(string) error
	// LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	LessonIDValidator func(string) error
	// DefaultDelayed holds the default value on creation for the "delayed" field.
	DefaultDelayed bool
)

// OrderOption defines the ordering options for the AssignmentCompletionEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByGroupID orders the results by the group_id field.
func ByGroupID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGroupID, opts...).ToFunc()
}

// ByEnrollmentID orders the results by the enrollment_id field.
func ByEnrollmentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnrollmentID, opts...).ToFunc()
}

// ByAssignmentID orders the results by the assignment_id field.
func ByAssignmentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignmentID, opts...).ToFunc()
}

// ByLessonID orders the results by the lesson_id field.
func ByLessonID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLessonID, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByDelayed orders the results by the delayed field.
func ByDelayed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDelayed, opts...).ToFunc()
}
