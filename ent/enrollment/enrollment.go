// Code generated by ent, DO NOT EDIT.

package enrollment

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the enrollment type in the database.
	Label = "enrollment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPublicID holds the string denoting the public_id field in the database.
	FieldPublicID = "public_id"
	// FieldGroupID holds the string denoting the group_id field in the database.
	FieldGroupID = "group_id"
	// FieldStudentProfileID holds the string denoting the student_profile_id field in the database.
	FieldStudentProfileID = "student_profile_id"
	// FieldDisplayName holds the string denoting the display_name field in the database.
	FieldDisplayName = "display_name"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// Table holds the table name of the enrollment in the database.
	Table = "enrollments"
)

// Columns holds all SQL columns for enrollment fields.
var Columns = []string{
	FieldID,
	FieldPublicID,
	FieldGroupID,
	FieldStudentProfileID,
	FieldDisplayName,
	FieldPosition,
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
	// PublicIDValidator is a validator for the "public_id" field. It is called by the builders before save.
	PublicIDValidator func(string) error
	// GroupIDValidator is a validator for the "group_id" field. It is called by the builders before save.
	GroupIDValidator func(string) error
	// StudentProfileIDValidator is a validator for the "student_profile_id" field. It is called by the builders before save.
	StudentProfileIDValidator func(string) error
	// DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	DisplayNameValidator func(string) error
	// PositionValidator is a validator for the "position" field. It is called by the builders before save.
	PositionValidator func(int) error
)

// OrderOption defines the ordering options for the Enrollment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPublicID orders the results by the public_id field.
func ByPublicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublicID, opts...).ToFunc()
}

// ByGroupID orders the results by the group_id field.
func ByGroupID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGroupID, opts...).ToFunc()
}

// ByStudentProfileID orders the results by the student_profile_id field.
func ByStudentProfileID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentProfileID, opts...).ToFunc()
}

// ByDisplayName orders the results by the display_name field.
func ByDisplayName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplayName, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}
