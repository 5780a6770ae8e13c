// Code generated by ent, DO NOT EDIT.

package question

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the question type in the database.
	Label = "question"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPublicID holds the string denoting the public_id field in the database.
	FieldPublicID = "public_id"
	// FieldLessonID holds the string denoting the lesson_id field in the database.
	FieldLessonID = "lesson_id"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldAssignmentQuestionID holds the string denoting the assignment_question_id field in the database.
	FieldAssignmentQuestionID = "assignment_question_id"
	// FieldKnowledgeComponentID holds the string denoting the knowledge_component_id field in the database.
	FieldKnowledgeComponentID = "knowledge_component_id"
	// FieldPrompt holds the string denoting the prompt field in the database.
	FieldPrompt = "prompt"
	// Table holds the table name of the question in the database.
	Table = "questions"
)

// Columns holds all SQL columns for question fields.
var Columns = []string{
	FieldID,
	FieldPublicID,
	FieldLessonID,
	FieldPosition,
	FieldAssignmentQuestionID,
	FieldKnowledgeComponentID,
	FieldPrompt,
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
	// LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	LessonIDValidator func(string) error
	// PositionValidator is a validator for the "position" field. It is called by the builders before save.
	PositionValidator func(int) error
	// AssignmentQuestionIDValidator is a validator for the "assignment_question_id" field. It is called by the builders before save.
	AssignmentQuestionIDValidator func(string) error
	// PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	PromptValidator func(string) error
)

// OrderOption defines the ordering options for the Question queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPublicID orders the results by the public_id field.
func ByPublicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublicID, opts...).ToFunc()
}

// ByLessonID orders the results by the lesson_id field.
func ByLessonID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLessonID, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByAssignmentQuestionID orders the results by the assignment_question_id field.
func ByAssignmentQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignmentQuestionID, opts...).ToFunc()
}

// ByKnowledgeComponentID orders the results by the knowledge_component_id field.
func ByKnowledgeComponentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKnowledgeComponentID, opts...).ToFunc()
}

// ByPrompt orders the results by the prompt field.
func ByPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrompt, opts...).ToFunc()
}
