// Code generated by ent, DO NOT EDIT.

package assessmentresponseevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/paceseed/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldEQ(FieldTimestamp, v))
}

// GroupID applies equality check predicate on the "group_id" field. It's identical to GroupIDEQ.
func GroupID(v string) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldEQ(FieldGroupID, v))
}

// EnrollmentID applies equality check predicate on the "enrollment_id" field. It's identical to EnrollmentIDEQ.
func EnrollmentID(v string) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldEQ(FieldEnrollmentID, v))
}

// AssessmentID applies equality check predicate on the "assessment_id" field. It's identical to AssessmentIDEQ.
func AssessmentID(v string) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldEQ(FieldAssessmentID, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldEQ(FieldScore, v))
}

// QuestionsAnswered applies equality check predicate on the "questions_answered" field. It's identical to QuestionsAnsweredEQ.
func QuestionsAnswered(v int) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldEQ(FieldQuestionsAnswered, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldLTE(FieldTimestamp, v))
}

// GroupIDEQ applies the EQ predicate on the "group_id" field.
func GroupIDEQ(v string) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldEQ(FieldGroupID, v))
}

// GroupIDNEQ applies the NEQ predicate on the "group_id" field.
func GroupIDNEQ(v string) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldNEQ(FieldGroupID, v))
}

// GroupIDIn applies the In predicate on the "group_id" field.
func GroupIDIn(vs ...string) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldIn(FieldGroupID, vs...))
}

// GroupIDNotIn applies the NotIn predicate on the "group_id" field.
func GroupIDNotIn(vs ...string) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldNotIn(FieldGroupID, vs...))
}

// GroupIDGT applies the GT predicate on the "group_id" field.
func GroupIDGT(v string) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldGT(FieldGroupID, v))
}

// GroupIDGTE applies the GTE predicate on the "group_id" field.
func GroupIDGTE(v string) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldGTE(FieldGroupID, v))
}

// GroupIDLT applies the LT predicate on the "group_id" field.
func GroupIDLT(v string) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldLT(FieldGroupID, v))
}

// GroupIDLTE applies the LTE predicate on the "group_id" field.
func GroupIDLTE(v string) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldLTE(FieldGroupID, v))
}

// GroupIDContains applies the Contains predicate on the "group_id" field.
func GroupIDContains(v string) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldContains(FieldGroupID, v))
}

// GroupIDHasPrefix applies the HasPrefix predicate on the "group_id" field.
func GroupIDHasPrefix(v string) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldHasPrefix(FieldGroupID, v))
}

// GroupIDHasSuffix applies the HasSuffix predicate on the "group_id" field.
func GroupIDHasSuffix(v string) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldHasSuffix(FieldGroupID, v))
}

// GroupIDEqualFold applies the EqualFold predicate on the "group_id" field.
func GroupIDEqualFold(v string) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldEqualFold(FieldGroupID, v))
}

// GroupIDContainsFold applies the ContainsFold predicate on the "group_id" field.
func GroupIDContainsFold(v string) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldContainsFold(FieldGroupID, v))
}

// EnrollmentIDEQ applies the EQ predicate on the "enrollment_id" field.
func EnrollmentIDEQ(v string) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldEQ(FieldEnrollmentID, v))
}

// EnrollmentIDNEQ applies the NEQ predicate on the "enrollment_id" field.
func EnrollmentIDNEQ(v string) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldNEQ(FieldEnrollmentID, v))
}

// EnrollmentIDIn applies the In predicate on the "enrollment_id" field.
func EnrollmentIDIn(vs ...string) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldIn(FieldEnrollmentID, vs...))
}

// EnrollmentIDNotIn applies the NotIn predicate on the "enrollment_id" field.
func EnrollmentIDNotIn(vs ...string) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldNotIn(FieldEnrollmentID, vs...))
}

// EnrollmentIDGT applies the GT predicate on the "enrollment_id" field.
func EnrollmentIDGT(v string) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldGT(FieldEnrollmentID, v))
}

// EnrollmentIDGTE applies the GTE predicate on the "enrollment_id" field.
func EnrollmentIDGTE(v string) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldGTE(FieldEnrollmentID, v))
}

// EnrollmentIDLT applies the LT predicate on the "enrollment_id" field.
func EnrollmentIDLT(v string) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldLT(FieldEnrollmentID, v))
}

// EnrollmentIDLTE applies the LTE predicate on the "enrollment_id" field.
func EnrollmentIDLTE(v string) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldLTE(FieldEnrollmentID, v))
}

// EnrollmentIDContains applies the Contains predicate on the "enrollment_id" field.
func EnrollmentIDContains(v string) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldContains(FieldEnrollmentID, v))
}

// EnrollmentIDHasPrefix applies the HasPrefix predicate on the "enrollment_id" field.
func EnrollmentIDHasPrefix(v string) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldHasPrefix(FieldEnrollmentID, v))
}

// EnrollmentIDHasSuffix applies the HasSuffix predicate on the "enrollment_id" field.
func EnrollmentIDHasSuffix(v string) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldHasSuffix(FieldEnrollmentID, v))
}

// EnrollmentIDEqualFold applies the EqualFold predicate on the "enrollment_id" field.
func EnrollmentIDEqualFold(v string) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldEqualFold(FieldEnrollmentID, v))
}

// EnrollmentIDContainsFold applies the ContainsFold predicate on the "enrollment_id" field.
func EnrollmentIDContainsFold(v string) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldContainsFold(FieldEnrollmentID, v))
}

// AssessmentIDEQ applies the EQ predicate on the "assessment_id" field.
func AssessmentIDEQ(v string) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldEQ(FieldAssessmentID, v))
}

// AssessmentIDNEQ applies the NEQ predicate on the "assessment_id" field.
func AssessmentIDNEQ(v string) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldNEQ(FieldAssessmentID, v))
}

// AssessmentIDIn applies the In predicate on the "assessment_id" field.
func AssessmentIDIn(vs ...string) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldIn(FieldAssessmentID, vs...))
}

// AssessmentIDNotIn applies the NotIn predicate on the "assessment_id" field.
func AssessmentIDNotIn(vs ...string) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldNotIn(FieldAssessmentID, vs...))
}

// AssessmentIDGT applies the GT predicate on the "assessment_id" field.
func AssessmentIDGT(v string) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldGT(FieldAssessmentID, v))
}

// AssessmentIDGTE applies the GTE predicate on the "assessment_id" field.
func AssessmentIDGTE(v string) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldGTE(FieldAssessmentID, v))
}

// AssessmentIDLT applies the LT predicate on the "assessment_id" field.
func AssessmentIDLT(v string) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldLT(FieldAssessmentID, v))
}

// AssessmentIDLTE applies the LTE predicate on the "assessment_id" field.
func AssessmentIDLTE(v string) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldLTE(FieldAssessmentID, v))
}

// AssessmentIDContains applies the Contains predicate on the "assessment_id" field.
func AssessmentIDContains(v string) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldContains(FieldAssessmentID, v))
}

// AssessmentIDHasPrefix applies the HasPrefix predicate on the "assessment_id" field.
func AssessmentIDHasPrefix(v string) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldHasPrefix(FieldAssessmentID, v))
}

// AssessmentIDHasSuffix applies the HasSuffix predicate on the "assessment_id" field.
func AssessmentIDHasSuffix(v string) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldHasSuffix(FieldAssessmentID, v))
}

// AssessmentIDEqualFold applies the EqualFold predicate on the "assessment_id" field.
func AssessmentIDEqualFold(v string) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldEqualFold(FieldAssessmentID, v))
}

// AssessmentIDContainsFold applies the ContainsFold predicate on the "assessment_id" field.
func AssessmentIDContainsFold(v string) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldContainsFold(FieldAssessmentID, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldLTE(FieldScore, v))
}

// QuestionsAnsweredEQ applies the EQ predicate on the "questions_answered" field.
func QuestionsAnsweredEQ(v int) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldEQ(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredNEQ applies the NEQ predicate on the "questions_answered" field.
func QuestionsAnsweredNEQ(v int) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldNEQ(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredIn applies the In predicate on the "questions_answered" field.
func QuestionsAnsweredIn(vs ...int) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldIn(FieldQuestionsAnswered, vs...))
}

// QuestionsAnsweredNotIn applies the NotIn predicate on the "questions_answered" field.
func QuestionsAnsweredNotIn(vs ...int) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldNotIn(FieldQuestionsAnswered, vs...))
}

// QuestionsAnsweredGT applies the GT predicate on the "questions_answered" field.
func QuestionsAnsweredGT(v int) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldGT(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredGTE applies the GTE predicate on the "questions_answered" field.
func QuestionsAnsweredGTE(v int) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldGTE(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredLT applies the LT predicate on the "questions_answered" field.
func QuestionsAnsweredLT(v int) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldLT(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredLTE applies the LTE predicate on the "questions_answered" field.
func QuestionsAnsweredLTE(v int) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.FieldLTE(FieldQuestionsAnswered, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AssessmentResponseEvent) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AssessmentResponseEvent) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AssessmentResponseEvent) predicate.AssessmentResponseEvent {
	return predicate.AssessmentResponseEvent(sql.NotPredicates(p))
}
