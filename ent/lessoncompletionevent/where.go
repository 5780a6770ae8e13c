// Code generated by ent, DO NOT EDIT.

package lessoncompletionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/paceseed/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// GroupID applies equality check predicate on the "group_id" field. It's identical to GroupIDEQ.
func GroupID(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldEQ(FieldGroupID, v))
}

// EnrollmentID applies equality check predicate on the "enrollment_id" field. It's identical to EnrollmentIDEQ.
func EnrollmentID(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldEQ(FieldEnrollmentID, v))
}

// LessonID applies equality check predicate on the "lesson_id" field. It's identical to LessonIDEQ.
func LessonID(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldEQ(FieldLessonID, v))
}

// ModuleID applies equality check predicate on the "module_id" field. It's identical to ModuleIDEQ.
func ModuleID(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldEQ(FieldModuleID, v))
}

// QuestionsAnswered applies equality check predicate on the "questions_answered" field. It's identical to QuestionsAnsweredEQ.
func QuestionsAnswered(v int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldEQ(FieldQuestionsAnswered, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// GroupIDEQ applies the EQ predicate on the "group_id" field.
func GroupIDEQ(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldEQ(FieldGroupID, v))
}

// GroupIDNEQ applies the NEQ predicate on the "group_id" field.
func GroupIDNEQ(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldNEQ(FieldGroupID, v))
}

// GroupIDIn applies the In predicate on the "group_id" field.
func GroupIDIn(vs ...string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldIn(FieldGroupID, vs...))
}

// GroupIDNotIn applies the NotIn predicate on the "group_id" field.
func GroupIDNotIn(vs ...string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldNotIn(FieldGroupID, vs...))
}

// GroupIDGT applies the GT predicate on the "group_id" field.
func GroupIDGT(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldGT(FieldGroupID, v))
}

// GroupIDGTE applies the GTE predicate on the "group_id" field.
func GroupIDGTE(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldGTE(FieldGroupID, v))
}

// GroupIDLT applies the LT predicate on the "group_id" field.
func GroupIDLT(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldLT(FieldGroupID, v))
}

// GroupIDLTE applies the LTE predicate on the "group_id" field.
func GroupIDLTE(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldLTE(FieldGroupID, v))
}

// GroupIDContains applies the Contains predicate on the "group_id" field.
func GroupIDContains(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldContains(FieldGroupID, v))
}

// GroupIDHasPrefix applies the HasPrefix predicate on the "group_id" field.
func GroupIDHasPrefix(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldHasPrefix(FieldGroupID, v))
}

// GroupIDHasSuffix applies the HasSuffix predicate on the "group_id" field.
func GroupIDHasSuffix(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldHasSuffix(FieldGroupID, v))
}

// GroupIDEqualFold applies the EqualFold predicate on the "group_id" field.
func GroupIDEqualFold(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldEqualFold(FieldGroupID, v))
}

// GroupIDContainsFold applies the ContainsFold predicate on the "group_id" field.
func GroupIDContainsFold(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldContainsFold(FieldGroupID, v))
}

// EnrollmentIDEQ applies the EQ predicate on the "enrollment_id" field.
func EnrollmentIDEQ(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldEQ(FieldEnrollmentID, v))
}

// EnrollmentIDNEQ applies the NEQ predicate on the "enrollment_id" field.
func EnrollmentIDNEQ(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldNEQ(FieldEnrollmentID, v))
}

// EnrollmentIDIn applies the In predicate on the "enrollment_id" field.
func EnrollmentIDIn(vs ...string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldIn(FieldEnrollmentID, vs...))
}

// EnrollmentIDNotIn applies the NotIn predicate on the "enrollment_id" field.
func EnrollmentIDNotIn(vs ...string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldNotIn(FieldEnrollmentID, vs...))
}

// EnrollmentIDGT applies the GT predicate on the "enrollment_id" field.
func EnrollmentIDGT(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldGT(FieldEnrollmentID, v))
}

// EnrollmentIDGTE applies the GTE predicate on the "enrollment_id" field.
func EnrollmentIDGTE(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldGTE(FieldEnrollmentID, v))
}

// EnrollmentIDLT applies the LT predicate on the "enrollment_id" field.
func EnrollmentIDLT(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldLT(FieldEnrollmentID, v))
}

// EnrollmentIDLTE applies the LTE predicate on the "enrollment_id" field.
func EnrollmentIDLTE(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldLTE(FieldEnrollmentID, v))
}

// EnrollmentIDContains applies the Contains predicate on the "enrollment_id" field.
func EnrollmentIDContains(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldContains(FieldEnrollmentID, v))
}

// EnrollmentIDHasPrefix applies the HasPrefix predicate on the "enrollment_id" field.
func EnrollmentIDHasPrefix(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldHasPrefix(FieldEnrollmentID, v))
}

// EnrollmentIDHasSuffix applies the HasSuffix predicate on the "enrollment_id" field.
func EnrollmentIDHasSuffix(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldHasSuffix(FieldEnrollmentID, v))
}

// EnrollmentIDEqualFold applies the EqualFold predicate on the "enrollment_id" field.
func EnrollmentIDEqualFold(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldEqualFold(FieldEnrollmentID, v))
}

// EnrollmentIDContainsFold applies the ContainsFold predicate on the "enrollment_id" field.
func EnrollmentIDContainsFold(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldContainsFold(FieldEnrollmentID, v))
}

// LessonIDEQ applies the EQ predicate on the "lesson_id" field.
func LessonIDEQ(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldEQ(FieldLessonID, v))
}

// LessonIDNEQ applies the NEQ predicate on the "lesson_id" field.
func LessonIDNEQ(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldNEQ(FieldLessonID, v))
}

// LessonIDIn applies the In predicate on the "lesson_id" field.
func LessonIDIn(vs ...string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldIn(FieldLessonID, vs...))
}

// LessonIDNotIn applies the NotIn predicate on the "lesson_id" field.
func LessonIDNotIn(vs ...string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldNotIn(FieldLessonID, vs...))
}

// LessonIDGT applies the GT predicate on the "lesson_id" field.
func LessonIDGT(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldGT(FieldLessonID, v))
}

// LessonIDGTE applies the GTE predicate on the "lesson_id" field.
func LessonIDGTE(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldGTE(FieldLessonID, v))
}

// LessonIDLT applies the LT predicate on the "lesson_id" field.
func LessonIDLT(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldLT(FieldLessonID, v))
}

// LessonIDLTE applies the LTE predicate on the "lesson_id" field.
func LessonIDLTE(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldLTE(FieldLessonID, v))
}

// LessonIDContains applies the Contains predicate on the "lesson_id" field.
func LessonIDContains(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldContains(FieldLessonID, v))
}

// LessonIDHasPrefix applies the HasPrefix predicate on the "lesson_id" field.
func LessonIDHasPrefix(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldHasPrefix(FieldLessonID, v))
}

// LessonIDHasSuffix applies the HasSuffix predicate on the "lesson_id" field.
func LessonIDHasSuffix(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldHasSuffix(FieldLessonID, v))
}

// LessonIDEqualFold applies the EqualFold predicate on the "lesson_id" field.
func LessonIDEqualFold(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldEqualFold(FieldLessonID, v))
}

// LessonIDContainsFold applies the ContainsFold predicate on the "lesson_id" field.
func LessonIDContainsFold(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldContainsFold(FieldLessonID, v))
}

// ModuleIDEQ applies the EQ predicate on the "module_id" field.
func ModuleIDEQ(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldEQ(FieldModuleID, v))
}

// ModuleIDNEQ applies the NEQ predicate on the "module_id" field.
func ModuleIDNEQ(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldNEQ(FieldModuleID, v))
}

// ModuleIDIn applies the In predicate on the "module_id" field.
func ModuleIDIn(vs ...string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldIn(FieldModuleID, vs...))
}

// ModuleIDNotIn applies the NotIn predicate on the "module_id" field.
func ModuleIDNotIn(vs ...string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldNotIn(FieldModuleID, vs...))
}

// ModuleIDGT applies the GT predicate on the "module_id" field.
func ModuleIDGT(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldGT(FieldModuleID, v))
}

// ModuleIDGTE applies the GTE predicate on the "module_id" field.
func ModuleIDGTE(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldGTE(FieldModuleID, v))
}

// ModuleIDLT applies the LT predicate on the "module_id" field.
func ModuleIDLT(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldLT(FieldModuleID, v))
}

// ModuleIDLTE applies the LTE predicate on the "module_id" field.
func ModuleIDLTE(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldLTE(FieldModuleID, v))
}

// ModuleIDContains applies the Contains predicate on the "module_id" field.
func ModuleIDContains(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldContains(FieldModuleID, v))
}

// ModuleIDHasPrefix applies the HasPrefix predicate on the "module_id" field.
func ModuleIDHasPrefix(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldHasPrefix(FieldModuleID, v))
}

// ModuleIDHasSuffix applies the HasSuffix predicate on the "module_id" field.
func ModuleIDHasSuffix(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldHasSuffix(FieldModuleID, v))
}

// ModuleIDEqualFold applies the EqualFold predicate on the "module_id" field.
func ModuleIDEqualFold(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldEqualFold(FieldModuleID, v))
}

// ModuleIDContainsFold applies the ContainsFold predicate on the "module_id" field.
func ModuleIDContainsFold(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldContainsFold(FieldModuleID, v))
}

// QuestionsAnsweredEQ applies the EQ predicate on the "questions_answered" field.
func QuestionsAnsweredEQ(v int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldEQ(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredNEQ applies the NEQ predicate on the "questions_answered" field.
func QuestionsAnsweredNEQ(v int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldNEQ(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredIn applies the In predicate on the "questions_answered" field.
func QuestionsAnsweredIn(vs ...int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldIn(FieldQuestionsAnswered, vs...))
}

// QuestionsAnsweredNotIn applies the NotIn predicate on the "questions_answered" field.
func QuestionsAnsweredNotIn(vs ...int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldNotIn(FieldQuestionsAnswered, vs...))
}

// QuestionsAnsweredGT applies the GT predicate on the "questions_answered" field.
func QuestionsAnsweredGT(v int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldGT(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredGTE applies the GTE predicate on the "questions_answered" field.
func QuestionsAnsweredGTE(v int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldGTE(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredLT applies the LT predicate on the "questions_answered" field.
func QuestionsAnsweredLT(v int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldLT(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredLTE applies the LTE predicate on the "questions_answered" field.
func QuestionsAnsweredLTE(v int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldLTE(FieldQuestionsAnswered, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LessonCompletionEvent) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LessonCompletionEvent) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LessonCompletionEvent) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.NotPredicates(p))
}
