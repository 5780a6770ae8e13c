// Code generated by ent, DO NOT EDIT.

package question

import (
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/paceseed/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldID, id))
}

// PublicID applies equality check predicate on the "public_id" field. It's identical to PublicIDEQ.
func PublicID(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldPublicID, v))
}

// LessonID applies equality check predicate on the "lesson_id" field. It's identical to LessonIDEQ.
func LessonID(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldLessonID, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldPosition, v))
}

// AssignmentQuestionID applies equality check predicate on the "assignment_question_id" field. It's identical to AssignmentQuestionIDEQ.
func AssignmentQuestionID(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldAssignmentQuestionID, v))
}

// KnowledgeComponentID applies equality check predicate on the "knowledge_component_id" field. It's identical to KnowledgeComponentIDEQ.
func KnowledgeComponentID(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldKnowledgeComponentID, v))
}

// Prompt applies equality check predicate on the "prompt" field. It's identical to PromptEQ.
func Prompt(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldPrompt, v))
}

// PublicIDEQ applies the EQ predicate on the "public_id" field.
func PublicIDEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldPublicID, v))
}

// PublicIDNEQ applies the NEQ predicate on the "public_id" field.
func PublicIDNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldPublicID, v))
}

// PublicIDIn applies the In predicate on the "public_id" field.
func PublicIDIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldPublicID, vs...))
}

// PublicIDNotIn applies the NotIn predicate on the "public_id" field.
func PublicIDNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldPublicID, vs...))
}

// PublicIDGT applies the GT predicate on the "public_id" field.
func PublicIDGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldPublicID, v))
}

// PublicIDGTE applies the GTE predicate on the "public_id" field.
func PublicIDGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldPublicID, v))
}

// PublicIDLT applies the LT predicate on the "public_id" field.
func PublicIDLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldPublicID, v))
}

// PublicIDLTE applies the LTE predicate on the "public_id" field.
func PublicIDLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldPublicID, v))
}

// PublicIDContains applies the Contains predicate on the "public_id" field.
func PublicIDContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldPublicID, v))
}

// PublicIDHasPrefix applies the HasPrefix predicate on the "public_id" field.
func PublicIDHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldPublicID, v))
}

// PublicIDHasSuffix applies the HasSuffix predicate on the "public_id" field.
func PublicIDHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldPublicID, v))
}

// PublicIDEqualFold applies the EqualFold predicate on the "public_id" field.
func PublicIDEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldPublicID, v))
}

// PublicIDContainsFold applies the ContainsFold predicate on the "public_id" field.
func PublicIDContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldPublicID, v))
}

// LessonIDEQ applies the EQ predicate on the "lesson_id" field.
func LessonIDEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldLessonID, v))
}

// LessonIDNEQ applies the NEQ predicate on the "lesson_id" field.
func LessonIDNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldLessonID, v))
}

// LessonIDIn applies the In predicate on the "lesson_id" field.
func LessonIDIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldLessonID, vs...))
}

// LessonIDNotIn applies the NotIn predicate on the "lesson_id" field.
func LessonIDNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldLessonID, vs...))
}

// LessonIDGT applies the GT predicate on the "lesson_id" field.
func LessonIDGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldLessonID, v))
}

// LessonIDGTE applies the GTE predicate on the "lesson_id" field.
func LessonIDGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldLessonID, v))
}

// LessonIDLT applies the LT predicate on the "lesson_id" field.
func LessonIDLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldLessonID, v))
}

// LessonIDLTE applies the LTE predicate on the "lesson_id" field.
func LessonIDLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldLessonID, v))
}

// LessonIDContains applies the Contains predicate on the "lesson_id" field.
func LessonIDContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldLessonID, v))
}

// LessonIDHasPrefix applies the HasPrefix predicate on the "lesson_id" field.
func LessonIDHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldLessonID, v))
}

// LessonIDHasSuffix applies the HasSuffix predicate on the "lesson_id" field.
func LessonIDHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldLessonID, v))
}

// LessonIDEqualFold applies the EqualFold predicate on the "lesson_id" field.
func LessonIDEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldLessonID, v))
}

// LessonIDContainsFold applies the ContainsFold predicate on the "lesson_id" field.
func LessonIDContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldLessonID, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldPosition, v))
}

// AssignmentQuestionIDEQ applies the EQ predicate on the "assignment_question_id" field.
func AssignmentQuestionIDEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldAssignmentQuestionID, v))
}

// AssignmentQuestionIDNEQ applies the NEQ predicate on the "assignment_question_id" field.
func AssignmentQuestionIDNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldAssignmentQuestionID, v))
}

// AssignmentQuestionIDIn applies the In predicate on the "assignment_question_id" field.
func AssignmentQuestionIDIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldAssignmentQuestionID, vs...))
}

// AssignmentQuestionIDNotIn applies the NotIn predicate on the "assignment_question_id" field.
func AssignmentQuestionIDNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldAssignmentQuestionID, vs...))
}

// AssignmentQuestionIDGT applies the GT predicate on the "assignment_question_id" field.
func AssignmentQuestionIDGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldAssignmentQuestionID, v))
}

// AssignmentQuestionIDGTE applies the GTE predicate on the "assignment_question_id" field.
func AssignmentQuestionIDGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldAssignmentQuestionID, v))
}

// AssignmentQuestionIDLT applies the LT predicate on the "assignment_question_id" field.
func AssignmentQuestionIDLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldAssignmentQuestionID, v))
}

// AssignmentQuestionIDLTE applies the LTE predicate on the "assignment_question_id" field.
func AssignmentQuestionIDLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldAssignmentQuestionID, v))
}

// AssignmentQuestionIDContains applies the Contains predicate on the "assignment_question_id" field.
func AssignmentQuestionIDContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldAssignmentQuestionID, v))
}

// AssignmentQuestionIDHasPrefix applies the HasPrefix predicate on the "assignment_question_id" field.
func AssignmentQuestionIDHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldAssignmentQuestionID, v))
}

// AssignmentQuestionIDHasSuffix applies the HasSuffix predicate on the "assignment_question_id" field.
func AssignmentQuestionIDHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldAssignmentQuestionID, v))
}

// AssignmentQuestionIDEqualFold applies the EqualFold predicate on the "assignment_question_id" field.
func AssignmentQuestionIDEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldAssignmentQuestionID, v))
}

// AssignmentQuestionIDContainsFold applies the ContainsFold predicate on the "assignment_question_id" field.
func AssignmentQuestionIDContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldAssignmentQuestionID, v))
}

// KnowledgeComponentIDEQ applies the EQ predicate on the "knowledge_component_id" field.
func KnowledgeComponentIDEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldKnowledgeComponentID, v))
}

// KnowledgeComponentIDNEQ applies the NEQ predicate on the "knowledge_component_id" field.
func KnowledgeComponentIDNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldKnowledgeComponentID, v))
}

// KnowledgeComponentIDIn applies the In predicate on the "knowledge_component_id" field.
func KnowledgeComponentIDIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldKnowledgeComponentID, vs...))
}

// KnowledgeComponentIDNotIn applies the NotIn predicate on the "knowledge_component_id" field.
func KnowledgeComponentIDNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldKnowledgeComponentID, vs...))
}

// KnowledgeComponentIDGT applies the GT predicate on the "knowledge_component_id" field.
func KnowledgeComponentIDGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldKnowledgeComponentID, v))
}

// KnowledgeComponentIDGTE applies the GTE predicate on the "knowledge_component_id" field.
func KnowledgeComponentIDGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldKnowledgeComponentID, v))
}

// KnowledgeComponentIDLT applies the LT predicate on the "knowledge_component_id" field.
func KnowledgeComponentIDLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldKnowledgeComponentID, v))
}

// KnowledgeComponentIDLTE applies the LTE predicate on the "knowledge_component_id" field.
func KnowledgeComponentIDLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldKnowledgeComponentID, v))
}

// KnowledgeComponentIDContains applies the Contains predicate on the "knowledge_component_id" field.
func KnowledgeComponentIDContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldKnowledgeComponentID, v))
}

// KnowledgeComponentIDHasPrefix applies the HasPrefix predicate on the "knowledge_component_id" field.
func KnowledgeComponentIDHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldKnowledgeComponentID, v))
}

// KnowledgeComponentIDHasSuffix applies the HasSuffix predicate on the "knowledge_component_id" field.
func KnowledgeComponentIDHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldKnowledgeComponentID, v))
}

// KnowledgeComponentIDIsNil applies the IsNil predicate on the "knowledge_component_id" field.
func KnowledgeComponentIDIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldKnowledgeComponentID))
}

// KnowledgeComponentIDNotNil applies the NotNil predicate on the "knowledge_component_id" field.
func KnowledgeComponentIDNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldKnowledgeComponentID))
}

// KnowledgeComponentIDEqualFold applies the EqualFold predicate on the "knowledge_component_id" field.
func KnowledgeComponentIDEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldKnowledgeComponentID, v))
}

// KnowledgeComponentIDContainsFold applies the ContainsFold predicate on the "knowledge_component_id" field.
func KnowledgeComponentIDContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldKnowledgeComponentID, v))
}

// PromptEQ applies the EQ predicate on the "prompt" field.
func PromptEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldPrompt, v))
}

// PromptNEQ applies the NEQ predicate on the "prompt" field.
func PromptNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldPrompt, v))
}

// PromptIn applies the In predicate on the "prompt" field.
func PromptIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldPrompt, vs...))
}

// PromptNotIn applies the NotIn predicate on the "prompt" field.
func PromptNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldPrompt, vs...))
}

// PromptGT applies the GT predicate on the "prompt" field.
func PromptGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldPrompt, v))
}

// PromptGTE applies the GTE predicate on the "prompt" field.
func PromptGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldPrompt, v))
}

// PromptLT applies the LT predicate on the "prompt" field.
func PromptLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldPrompt, v))
}

// PromptLTE applies the LTE predicate on the "prompt" field.
func PromptLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldPrompt, v))
}

// PromptContains applies the Contains predicate on the "prompt" field.
func PromptContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldPrompt, v))
}

// PromptHasPrefix applies the HasPrefix predicate on the "prompt" field.
func PromptHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldPrompt, v))
}

// PromptHasSuffix applies the HasSuffix predicate on the "prompt" field.
func PromptHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldPrompt, v))
}

// PromptEqualFold applies the EqualFold predicate on the "prompt" field.
func PromptEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldPrompt, v))
}

// PromptContainsFold applies the ContainsFold predicate on the "prompt" field.
func PromptContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldPrompt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Question) predicate.Question {
	return predicate.Question(sql.NotPredicates(p))
}
