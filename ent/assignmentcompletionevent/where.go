// Code generated by ent, DO NOT EDIT.

package assignmentcompletionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/paceseed/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// GroupID applies equality check predicate on the "group_id" field. It's identical to GroupIDEQ.
func GroupID(v string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldEQ(FieldGroupID, v))
}

// EnrollmentID applies equality check predicate on the "enrollment_id" field. It's identical to EnrollmentIDEQ.
func EnrollmentID(v string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldEQ(FieldEnrollmentID, v))
}

// AssignmentID applies equality check predicate on the "assignment_id" field. It's identical to AssignmentIDEQ.
func AssignmentID(v string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldEQ(FieldAssignmentID, v))
}

// LessonID applies equality check predicate on the "lesson_id" field. It's identical to LessonIDEQ.
func LessonID(v string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldEQ(FieldLessonID, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldEQ(FieldScore, v))
}

// Delayed applies equality check predicate on the "delayed" field. It's identical to DelayedEQ.
func Delayed(v bool) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldEQ(FieldDelayed, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// GroupIDEQ applies the EQ predicate on the "group_id" field.
func GroupIDEQ(v string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldEQ(FieldGroupID, v))
}

// GroupIDNEQ applies the NEQ predicate on the "group_id" field.
func GroupIDNEQ(v string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldNEQ(FieldGroupID, v))
}

// GroupIDIn applies the In predicate on the "group_id" field.
func GroupIDIn(vs ...string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldIn(FieldGroupID, vs...))
}

// GroupIDNotIn applies the NotIn predicate on the "group_id" field.
func GroupIDNotIn(vs ...string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldNotIn(FieldGroupID, vs...))
}

// GroupIDGT applies the GT predicate on the "group_id" field.
func GroupIDGT(v string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldGT(FieldGroupID, v))
}

// GroupIDGTE applies the GTE predicate on the "group_id" field.
func GroupIDGTE(v string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldGTE(FieldGroupID, v))
}

// GroupIDLT applies the LT predicate on the "group_id" field.
func GroupIDLT(v string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldLT(FieldGroupID, v))
}

// GroupIDLTE applies the LTE predicate on the "group_id" field.
func GroupIDLTE(v string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldLTE(FieldGroupID, v))
}

// GroupIDContains applies the Contains predicate on the "group_id" field.
func GroupIDContains(v string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldContains(FieldGroupID, v))
}

// GroupIDHasPrefix applies the HasPrefix predicate on the "group_id" field.
func GroupIDHasPrefix(v string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldHasPrefix(FieldGroupID, v))
}

// GroupIDHasSuffix applies the HasSuffix predicate on the "group_id" field.
func GroupIDHasSuffix(v string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldHasSuffix(FieldGroupID, v))
}

// GroupIDEqualFold applies the EqualFold predicate on the "group_id" field.
func GroupIDEqualFold(v string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldEqualFold(FieldGroupID, v))
}

// GroupIDContainsFold applies the ContainsFold predicate on the "group_id" field.
func GroupIDContainsFold(v string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldContainsFold(FieldGroupID, v))
}

// EnrollmentIDEQ applies the EQ predicate on the "enrollment_id" field.
func EnrollmentIDEQ(v string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldEQ(FieldEnrollmentID, v))
}

// EnrollmentIDNEQ applies the NEQ predicate on the "enrollment_id" field.
func EnrollmentIDNEQ(v string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldNEQ(FieldEnrollmentID, v))
}

// EnrollmentIDIn applies the In predicate on the "enrollment_id" field.
func EnrollmentIDIn(vs ...string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldIn(FieldEnrollmentID, vs...))
}

// EnrollmentIDNotIn applies the NotIn predicate on the "enrollment_id" field.
func EnrollmentIDNotIn(vs ...string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldNotIn(FieldEnrollmentID, vs...))
}

// EnrollmentIDGT applies the GT predicate on the "enrollment_id" field.
func EnrollmentIDGT(v string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldGT(FieldEnrollmentID, v))
}

// EnrollmentIDGTE applies the GTE predicate on the "enrollment_id" field.
func EnrollmentIDGTE(v string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldGTE(FieldEnrollmentID, v))
}

// EnrollmentIDLT applies the LT predicate on the "enrollment_id" field.
func EnrollmentIDLT(v string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldLT(FieldEnrollmentID, v))
}

// EnrollmentIDLTE applies the LTE predicate on the "enrollment_id" field.
func EnrollmentIDLTE(v string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldLTE(FieldEnrollmentID, v))
}

// EnrollmentIDContains applies the Contains predicate on the "enrollment_id" field.
func EnrollmentIDContains(v string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldContains(FieldEnrollmentID, v))
}

// EnrollmentIDHasPrefix applies the HasPrefix predicate on the "enrollment_id" field.
func EnrollmentIDHasPrefix(v string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldHasPrefix(FieldEnrollmentID, v))
}

// EnrollmentIDHasSuffix applies the HasSuffix predicate on the "enrollment_id" field.
func EnrollmentIDHasSuffix(v string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldHasSuffix(FieldEnrollmentID, v))
}

// EnrollmentIDEqualFold applies the EqualFold predicate on the "enrollment_id" field.
func EnrollmentIDEqualFold(v string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldEqualFold(FieldEnrollmentID, v))
}

// EnrollmentIDContainsFold applies the ContainsFold predicate on the "enrollment_id" field.
func EnrollmentIDContainsFold(v string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldContainsFold(FieldEnrollmentID, v))
}

// AssignmentIDEQ applies the EQ predicate on the "assignment_id" field.
func AssignmentIDEQ(v string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldEQ(FieldAssignmentID, v))
}

// AssignmentIDNEQ applies the NEQ predicate on the "assignment_id" field.
func AssignmentIDNEQ(v string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldNEQ(FieldAssignmentID, v))
}

// AssignmentIDIn applies the In predicate on the "assignment_id" field.
func AssignmentIDIn(vs ...string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldIn(FieldAssignmentID, vs...))
}

// AssignmentIDNotIn applies the NotIn predicate on the "assignment_id" field.
func AssignmentIDNotIn(vs ...string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldNotIn(FieldAssignmentID, vs...))
}

// AssignmentIDGT applies the GT predicate on the "assignment_id" field.
func AssignmentIDGT(v string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldGT(FieldAssignmentID, v))
}

// AssignmentIDGTE applies the GTE predicate on the "assignment_id" field.
func AssignmentIDGTE(v string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldGTE(FieldAssignmentID, v))
}

// AssignmentIDLT applies the LT predicate on the "assignment_id" field.
func AssignmentIDLT(v string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldLT(FieldAssignmentID, v))
}

// AssignmentIDLTE applies the LTE predicate on the "assignment_id" field.
func AssignmentIDLTE(v string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldLTE(FieldAssignmentID, v))
}

// AssignmentIDContains applies the Contains predicate on the "assignment_id" field.
func AssignmentIDContains(v string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldContains(FieldAssignmentID, v))
}

// AssignmentIDHasPrefix applies the HasPrefix predicate on the "assignment_id" field.
func AssignmentIDHasPrefix(v string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldHasPrefix(FieldAssignmentID, v))
}

// AssignmentIDHasSuffix applies the HasSuffix predicate on the "assignment_id" field.
func AssignmentIDHasSuffix(v string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldHasSuffix(FieldAssignmentID, v))
}

// AssignmentIDEqualFold applies the EqualFold predicate on the "assignment_id" field.
func AssignmentIDEqualFold(v string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldEqualFold(FieldAssignmentID, v))
}

// AssignmentIDContainsFold applies the ContainsFold predicate on the "assignment_id" field.
func AssignmentIDContainsFold(v string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldContainsFold(FieldAssignmentID, v))
}

// LessonIDEQ applies the EQ predicate on the "lesson_id" field.
func LessonIDEQ(v string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldEQ(FieldLessonID, v))
}

// LessonIDNEQ applies the NEQ predicate on the "lesson_id" field.
func LessonIDNEQ(v string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldNEQ(FieldLessonID, v))
}

// LessonIDIn applies the In predicate on the "lesson_id" field.
func LessonIDIn(vs ...string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldIn(FieldLessonID, vs...))
}

// LessonIDNotIn applies the NotIn predicate on the "lesson_id" field.
func LessonIDNotIn(vs ...string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldNotIn(FieldLessonID, vs...))
}

// LessonIDGT applies the GT predicate on the "lesson_id" field.
func LessonIDGT(v string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldGT(FieldLessonID, v))
}

// LessonIDGTE applies the GTE predicate on the "lesson_id" field.
func LessonIDGTE(v string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldGTE(FieldLessonID, v))
}

// LessonIDLT applies the LT predicate on the "lesson_id" field.
func LessonIDLT(v string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldLT(FieldLessonID, v))
}

// LessonIDLTE applies the LTE predicate on the "lesson_id" field.
func LessonIDLTE(v string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldLTE(FieldLessonID, v))
}

// LessonIDContains applies the Contains predicate on the "lesson_id" field.
func LessonIDContains(v string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldContains(FieldLessonID, v))
}

// LessonIDHasPrefix applies the HasPrefix predicate on the "lesson_id" field.
func LessonIDHasPrefix(v string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldHasPrefix(FieldLessonID, v))
}

// LessonIDHasSuffix applies the HasSuffix predicate on the "lesson_id" field.
func LessonIDHasSuffix(v string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldHasSuffix(FieldLessonID, v))
}

// LessonIDEqualFold applies the EqualFold predicate on the "lesson_id" field.
func LessonIDEqualFold(v string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldEqualFold(FieldLessonID, v))
}

// LessonIDContainsFold applies the ContainsFold predicate on the "lesson_id" field.
func LessonIDContainsFold(v string) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldContainsFold(FieldLessonID, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldLTE(FieldScore, v))
}

// DelayedEQ applies the EQ predicate on the "delayed" field.
func DelayedEQ(v bool) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldEQ(FieldDelayed, v))
}

// DelayedNEQ applies the NEQ predicate on the "delayed" field.
func DelayedNEQ(v bool) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.FieldNEQ(FieldDelayed, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AssignmentCompletionEvent) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AssignmentCompletionEvent) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AssignmentCompletionEvent) predicate.AssignmentCompletionEvent {
	return predicate.AssignmentCompletionEvent(sql.NotPredicates(p))
}
