// Code generated by ent, DO NOT EDIT.

package assessmentresponseevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the assessmentresponseevent type in the database.
	Label = "assessment_response_event"
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
	// FieldAssessmentID holds the string denoting the assessment_id field in the database.
	FieldAssessmentID = "assessment_id"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldQuestionsAnswered holds the string denoting the questions_answered field in the database.
	FieldQuestionsAnswered = "questions_answered"
	// Table holds the table name of the assessmentresponseevent in the database.
	Table = "assessment_response_events"
)

// Columns holds all SQL columns for assessmentresponseevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldGroupID,
	FieldEnrollmentID,
	FieldAssessmentID,
	FieldScore,
	FieldQuestionsAnswered,
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
	// AssessmentIDValidator is a validator for the "assessment_id" field. It is called by the builders before save.
	AssessmentIDValidator func(string) error
)

// OrderOption defines the ordering options for the AssessmentResponseEvent queries.
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

// ByAssessmentID orders the results by the assessment_id field.
func ByAssessmentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssessmentID, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByQuestionsAnswered orders the results by the questions_answered field.
func ByQuestionsAnswered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionsAnswered, opts...).ToFunc()
}
