// Code generated by ent, DO NOT EDIT.

package feedbackevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the feedbackevent type in the database.
	Label = "feedback_event"
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
	// FieldLessonID holds the string denoting the lesson_id field in the database.
	FieldLessonID = "lesson_id"
	// FieldComment holds the string denoting the comment field in the database.
	FieldComment = "comment"
	// FieldTone holds the string denoting the tone field in the database.
	FieldTone = "tone"
	// FieldGenerator holds the string denoting the generator field in the database.
	FieldGenerator = "generator"
	// Table holds the table name of the feedbackevent in the database.
	Table = "feedback_events"
)

// Columns holds all SQL columns for feedbackevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldGroupID,
	FieldEnrollmentID,
	FieldLessonID,
	FieldComment,
	FieldTone,
	FieldGenerator,
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
	// LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	LessonIDValidator func(string) error
	// CommentValidator is a validator for the "comment" field. It is called by the builders before save.
	CommentValidator func(string) error
	// ToneValidator is a validator for the "tone" field. It is called by the builders before save.
	ToneValidator func(string) error
	// GeneratorValidator is a validator for the "generator" field. It is called by the builders before save.
	GeneratorValidator func(string) error
)

// OrderOption defines the ordering options for the FeedbackEvent queries.
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

// ByLessonID orders the results by the lesson_id field.
func ByLessonID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLessonID, opts...).ToFunc()
}

// ByComment orders the results by the comment field.
func ByComment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComment, opts...).ToFunc()
}

// ByTone orders the results by the tone field.
func ByTone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTone, opts...).ToFunc()
}

// ByGenerator orders the results by the generator field.
func ByGenerator(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGenerator, opts...).ToFunc()
}
