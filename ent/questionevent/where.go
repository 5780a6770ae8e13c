// Code generated by ent, DO NOT EDIT.

package questionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/paceseed/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// GroupID applies equality check predicate on the "group_id" field. It's identical to GroupIDEQ.
func GroupID(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldEQ(FieldGroupID, v))
}

// EnrollmentID applies equality check predicate on the "enrollment_id" field. It's identical to EnrollmentIDEQ.
func EnrollmentID(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldEQ(FieldEnrollmentID, v))
}

// LessonID applies equality check predicate on the "lesson_id" field. It's identical to LessonIDEQ.
func LessonID(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldEQ(FieldLessonID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldEQ(FieldQuestionID, v))
}

// AssignmentQuestionID applies equality check predicate on the "assignment_question_id" field. It's identical to AssignmentQuestionIDEQ.
func AssignmentQuestionID(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldEQ(FieldAssignmentQuestionID, v))
}

// KnowledgeComponentID applies equality check predicate on the "knowledge_component_id" field. It's identical to KnowledgeComponentIDEQ.
func KnowledgeComponentID(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldEQ(FieldKnowledgeComponentID, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldEQ(FieldAction, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldEQ(FieldCorrect, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// GroupIDEQ applies the EQ predicate on the "group_id" field.
func GroupIDEQ(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldEQ(FieldGroupID, v))
}

// GroupIDNEQ applies the NEQ predicate on the "group_id" field.
func GroupIDNEQ(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldNEQ(FieldGroupID, v))
}

// GroupIDIn applies the In predicate on the "group_id" field.
func GroupIDIn(vs ...string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldIn(FieldGroupID, vs...))
}

// GroupIDNotIn applies the NotIn predicate on the "group_id" field.
func GroupIDNotIn(vs ...string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldNotIn(FieldGroupID, vs...))
}

// GroupIDGT applies the GT predicate on the "group_id" field.
func GroupIDGT(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldGT(FieldGroupID, v))
}

// GroupIDGTE applies the GTE predicate on the "group_id" field.
func GroupIDGTE(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldGTE(FieldGroupID, v))
}

// GroupIDLT applies the LT predicate on the "group_id" field.
func GroupIDLT(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldLT(FieldGroupID, v))
}

// GroupIDLTE applies the LTE predicate on the "group_id" field.
func GroupIDLTE(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldLTE(FieldGroupID, v))
}

// GroupIDContains applies the Contains predicate on the "group_id" field.
func GroupIDContains(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldContains(FieldGroupID, v))
}

// GroupIDHasPrefix applies the HasPrefix predicate on the "group_id" field.
func GroupIDHasPrefix(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldHasPrefix(FieldGroupID, v))
}

// GroupIDHasSuffix applies the HasSuffix predicate on the "group_id" field.
func GroupIDHasSuffix(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldHasSuffix(FieldGroupID, v))
}

// GroupIDEqualFold applies the EqualFold predicate on the "group_id" field.
func GroupIDEqualFold(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldEqualFold(FieldGroupID, v))
}

// GroupIDContainsFold applies the ContainsFold predicate on the "group_id" field.
func GroupIDContainsFold(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldContainsFold(FieldGroupID, v))
}

// EnrollmentIDEQ applies the EQ predicate on the "enrollment_id" field.
func EnrollmentIDEQ(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldEQ(FieldEnrollmentID, v))
}

// EnrollmentIDNEQ applies the NEQ predicate on the "enrollment_id" field.
func EnrollmentIDNEQ(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldNEQ(FieldEnrollmentID, v))
}

// EnrollmentIDIn applies the In predicate on the "enrollment_id" field.
func EnrollmentIDIn(vs ...string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldIn(FieldEnrollmentID, vs...))
}

// EnrollmentIDNotIn applies the NotIn predicate on the "enrollment_id" field.
func EnrollmentIDNotIn(vs ...string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldNotIn(FieldEnrollmentID, vs...))
}

// EnrollmentIDGT applies the GT predicate on the "enrollment_id" field.
func EnrollmentIDGT(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldGT(FieldEnrollmentID, v))
}

// EnrollmentIDGTE applies the GTE predicate on the "enrollment_id" field.
func EnrollmentIDGTE(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldGTE(FieldEnrollmentID, v))
}

// EnrollmentIDLT applies the LT predicate on the "enrollment_id" field.
func EnrollmentIDLT(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldLT(FieldEnrollmentID, v))
}

// EnrollmentIDLTE applies the LTE predicate on the "enrollment_id" field.
func EnrollmentIDLTE(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldLTE(FieldEnrollmentID, v))
}

// EnrollmentIDContains applies the Contains predicate on the "enrollment_id" field.
func EnrollmentIDContains(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldContains(FieldEnrollmentID, v))
}

// EnrollmentIDHasPrefix applies the HasPrefix predicate on the "enrollment_id" field.
func EnrollmentIDHasPrefix(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldHasPrefix(FieldEnrollmentID, v))
}

// EnrollmentIDHasSuffix applies the HasSuffix predicate on the "enrollment_id" field.
func EnrollmentIDHasSuffix(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldHasSuffix(FieldEnrollmentID, v))
}

// EnrollmentIDEqualFold applies the EqualFold predicate on the "enrollment_id" field.
func EnrollmentIDEqualFold(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldEqualFold(FieldEnrollmentID, v))
}

// EnrollmentIDContainsFold applies the ContainsFold predicate on the "enrollment_id" field.
func EnrollmentIDContainsFold(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldContainsFold(FieldEnrollmentID, v))
}

// LessonIDEQ applies the EQ predicate on the "lesson_id" field.
func LessonIDEQ(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldEQ(FieldLessonID, v))
}

// LessonIDNEQ applies the NEQ predicate on the "lesson_id" field.
func LessonIDNEQ(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldNEQ(FieldLessonID, v))
}

// LessonIDIn applies the In predicate on the "lesson_id" field.
func LessonIDIn(vs ...string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldIn(FieldLessonID, vs...))
}

// LessonIDNotIn applies the NotIn predicate on the "lesson_id" field.
func LessonIDNotIn(vs ...string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldNotIn(FieldLessonID, vs...))
}

// LessonIDGT applies the GT predicate on the "lesson_id" field.
func LessonIDGT(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldGT(FieldLessonID, v))
}

// LessonIDGTE applies the GTE predicate on the "lesson_id" field.
func LessonIDGTE(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldGTE(FieldLessonID, v))
}

// LessonIDLT applies the LT predicate on the "lesson_id" field.
func LessonIDLT(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldLT(FieldLessonID, v))
}

// LessonIDLTE applies the LTE predicate on the "lesson_id" field.
func LessonIDLTE(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldLTE(FieldLessonID, v))
}

// LessonIDContains applies the Contains predicate on the "lesson_id" field.
func LessonIDContains(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldContains(FieldLessonID, v))
}

// LessonIDHasPrefix applies the HasPrefix predicate on the "lesson_id" field.
func LessonIDHasPrefix(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldHasPrefix(FieldLessonID, v))
}

// LessonIDHasSuffix applies the HasSuffix predicate on the "lesson_id" field.
func LessonIDHasSuffix(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldHasSuffix(FieldLessonID, v))
}

// LessonIDEqualFold applies the EqualFold predicate on the "lesson_id" field.
func LessonIDEqualFold(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldEqualFold(FieldLessonID, v))
}

// LessonIDContainsFold applies the ContainsFold predicate on the "lesson_id" field.
func LessonIDContainsFold(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldContainsFold(FieldLessonID, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldContainsFold(FieldQuestionID, v))
}

// AssignmentQuestionIDEQ applies the EQ predicate on the "assignment_question_id" field.
func AssignmentQuestionIDEQ(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldEQ(FieldAssignmentQuestionID, v))
}

// AssignmentQuestionIDNEQ applies the NEQ predicate on the "assignment_question_id" field.
func AssignmentQuestionIDNEQ(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldNEQ(FieldAssignmentQuestionID, v))
}

// AssignmentQuestionIDIn applies the In predicate on the "assignment_question_id" field.
func AssignmentQuestionIDIn(vs ...string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldIn(FieldAssignmentQuestionID, vs...))
}

// AssignmentQuestionIDNotIn applies the NotIn predicate on the "assignment_question_id" field.
func AssignmentQuestionIDNotIn(vs ...string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldNotIn(FieldAssignmentQuestionID, vs...))
}

// AssignmentQuestionIDGT applies the GT predicate on the "assignment_question_id" field.
func AssignmentQuestionIDGT(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldGT(FieldAssignmentQuestionID, v))
}

// AssignmentQuestionIDGTE applies the GTE predicate on the "assignment_question_id" field.
func AssignmentQuestionIDGTE(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldGTE(FieldAssignmentQuestionID, v))
}

// AssignmentQuestionIDLT applies the LT predicate on the "assignment_question_id" field.
func AssignmentQuestionIDLT(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldLT(FieldAssignmentQuestionID, v))
}

// AssignmentQuestionIDLTE applies the LTE predicate on the "assignment_question_id" field.
func AssignmentQuestionIDLTE(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldLTE(FieldAssignmentQuestionID, v))
}

// AssignmentQuestionIDContains applies the Contains predicate on the "assignment_question_id" field.
func AssignmentQuestionIDContains(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldContains(FieldAssignmentQuestionID, v))
}

// AssignmentQuestionIDHasPrefix applies the HasPrefix predicate on the "assignment_question_id" field.
func AssignmentQuestionIDHasPrefix(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldHasPrefix(FieldAssignmentQuestionID, v))
}

// AssignmentQuestionIDHasSuffix applies the HasSuffix predicate on the "assignment_question_id" field.
func AssignmentQuestionIDHasSuffix(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldHasSuffix(FieldAssignmentQuestionID, v))
}

// AssignmentQuestionIDEqualFold applies the EqualFold predicate on the "assignment_question_id" field.
func AssignmentQuestionIDEqualFold(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldEqualFold(FieldAssignmentQuestionID, v))
}

// AssignmentQuestionIDContainsFold applies the ContainsFold predicate on the "assignment_question_id" field.
func AssignmentQuestionIDContainsFold(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldContainsFold(FieldAssignmentQuestionID, v))
}

// KnowledgeComponentIDEQ applies the EQ predicate on the "knowledge_component_id" field.
func KnowledgeComponentIDEQ(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldEQ(FieldKnowledgeComponentID, v))
}

// KnowledgeComponentIDNEQ applies the NEQ predicate on the "knowledge_component_id" field.
func KnowledgeComponentIDNEQ(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldNEQ(FieldKnowledgeComponentID, v))
}

// KnowledgeComponentIDIn applies the In predicate on the "knowledge_component_id" field.
func KnowledgeComponentIDIn(vs ...string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldIn(FieldKnowledgeComponentID, vs...))
}

// KnowledgeComponentIDNotIn applies the NotIn predicate on the "knowledge_component_id" field.
func KnowledgeComponentIDNotIn(vs ...string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldNotIn(FieldKnowledgeComponentID, vs...))
}

// KnowledgeComponentIDGT applies the GT predicate on the "knowledge_component_id" field.
func KnowledgeComponentIDGT(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldGT(FieldKnowledgeComponentID, v))
}

// KnowledgeComponentIDGTE applies the GTE predicate on the "knowledge_component_id" field.
func KnowledgeComponentIDGTE(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldGTE(FieldKnowledgeComponentID, v))
}

// KnowledgeComponentIDLT applies the LT predicate on the "knowledge_component_id" field.
func KnowledgeComponentIDLT(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldLT(FieldKnowledgeComponentID, v))
}

// KnowledgeComponentIDLTE applies the LTE predicate on the "knowledge_component_id" field.
func KnowledgeComponentIDLTE(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldLTE(FieldKnowledgeComponentID, v))
}

// KnowledgeComponentIDContains applies the Contains predicate on the "knowledge_component_id" field.
func KnowledgeComponentIDContains(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldContains(FieldKnowledgeComponentID, v))
}

// KnowledgeComponentIDHasPrefix applies the HasPrefix predicate on the "knowledge_component_id" field.
func KnowledgeComponentIDHasPrefix(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldHasPrefix(FieldKnowledgeComponentID, v))
}

// KnowledgeComponentIDHasSuffix applies the HasSuffix predicate on the "knowledge_component_id" field.
func KnowledgeComponentIDHasSuffix(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldHasSuffix(FieldKnowledgeComponentID, v))
}

// KnowledgeComponentIDIsNil applies the IsNil predicate on the "knowledge_component_id" field.
func KnowledgeComponentIDIsNil() predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldIsNull(FieldKnowledgeComponentID))
}

// KnowledgeComponentIDNotNil applies the NotNil predicate on the "knowledge_component_id" field.
func KnowledgeComponentIDNotNil() predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldNotNull(FieldKnowledgeComponentID))
}

// KnowledgeComponentIDEqualFold applies the EqualFold predicate on the "knowledge_component_id" field.
func KnowledgeComponentIDEqualFold(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldEqualFold(FieldKnowledgeComponentID, v))
}

// KnowledgeComponentIDContainsFold applies the ContainsFold predicate on the "knowledge_component_id" field.
func KnowledgeComponentIDContainsFold(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldContainsFold(FieldKnowledgeComponentID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldContainsFold(FieldAction, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.FieldNEQ(FieldCorrect, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuestionEvent) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuestionEvent) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuestionEvent) predicate.QuestionEvent {
	return predicate.QuestionEvent(sql.NotPredicates(p))
}
