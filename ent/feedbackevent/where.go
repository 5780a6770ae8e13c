// Code generated by ent, DO NOT EDIT.

package feedbackevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/paceseed/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldTimestamp, v))
}

// GroupID applies equality check predicate on the "group_id" field. It's identical to GroupIDEQ.
func GroupID(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldGroupID, v))
}

// EnrollmentID applies equality check predicate on the "enrollment_id" field. It's identical to EnrollmentIDEQ.
func EnrollmentID(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldEnrollmentID, v))
}

// LessonID applies equality check predicate on the "lesson_id" field. It's identical to LessonIDEQ.
func LessonID(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldLessonID, v))
}

// Comment applies equality check predicate on the "comment" field. It's identical to CommentEQ.
func Comment(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldComment, v))
}

// Tone applies equality check predicate on the "tone" field. It's identical to ToneEQ.
func Tone(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldTone, v))
}

// Generator applies equality check predicate on the "generator" field. It's identical to GeneratorEQ.
func Generator(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldGenerator, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLTE(FieldTimestamp, v))
}

// GroupIDEQ applies the EQ predicate on the "group_id" field.
func GroupIDEQ(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldGroupID, v))
}

// GroupIDNEQ applies the NEQ predicate on the "group_id" field.
func GroupIDNEQ(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNEQ(FieldGroupID, v))
}

// GroupIDIn applies the In predicate on the "group_id" field.
func GroupIDIn(vs ...string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldIn(FieldGroupID, vs...))
}

// GroupIDNotIn applies the NotIn predicate on the "group_id" field.
func GroupIDNotIn(vs ...string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNotIn(FieldGroupID, vs...))
}

// GroupIDGT applies the GT predicate on the "group_id" field.
func GroupIDGT(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGT(FieldGroupID, v))
}

// GroupIDGTE applies the GTE predicate on the "group_id" field.
func GroupIDGTE(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGTE(FieldGroupID, v))
}

// GroupIDLT applies the LT predicate on the "group_id" field.
func GroupIDLT(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLT(FieldGroupID, v))
}

// GroupIDLTE applies the LTE predicate on the "group_id" field.
func GroupIDLTE(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLTE(FieldGroupID, v))
}

// GroupIDContains applies the Contains predicate on the "group_id" field.
func GroupIDContains(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldContains(FieldGroupID, v))
}

// GroupIDHasPrefix applies the HasPrefix predicate on the "group_id" field.
func GroupIDHasPrefix(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldHasPrefix(FieldGroupID, v))
}

// GroupIDHasSuffix applies the HasSuffix predicate on the "group_id" field.
func GroupIDHasSuffix(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldHasSuffix(FieldGroupID, v))
}

// GroupIDEqualFold applies the EqualFold predicate on the "group_id" field.
func GroupIDEqualFold(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEqualFold(FieldGroupID, v))
}

// GroupIDContainsFold applies the ContainsFold predicate on the "group_id" field.
func GroupIDContainsFold(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldContainsFold(FieldGroupID, v))
}

// EnrollmentIDEQ applies the EQ predicate on the "enrollment_id" field.
func EnrollmentIDEQ(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldEnrollmentID, v))
}

// EnrollmentIDNEQ applies the NEQ predicate on the "enrollment_id" field.
func EnrollmentIDNEQ(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNEQ(FieldEnrollmentID, v))
}

// EnrollmentIDIn applies the In predicate on the "enrollment_id" field.
func EnrollmentIDIn(vs ...string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldIn(FieldEnrollmentID, vs...))
}

// EnrollmentIDNotIn applies the NotIn predicate on the "enrollment_id" field.
func EnrollmentIDNotIn(vs ...string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNotIn(FieldEnrollmentID, vs...))
}

// EnrollmentIDGT applies the GT predicate on the "enrollment_id" field.
func EnrollmentIDGT(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGT(FieldEnrollmentID, v))
}

// EnrollmentIDGTE applies the GTE predicate on the "enrollment_id" field.
func EnrollmentIDGTE(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGTE(FieldEnrollmentID, v))
}

// EnrollmentIDLT applies the LT predicate on the "enrollment_id" field.
func EnrollmentIDLT(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLT(FieldEnrollmentID, v))
}

// EnrollmentIDLTE applies the LTE predicate on the "enrollment_id" field.
func EnrollmentIDLTE(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLTE(FieldEnrollmentID, v))
}

// EnrollmentIDContains applies the Contains predicate on the "enrollment_id" field.
func EnrollmentIDContains(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldContains(FieldEnrollmentID, v))
}

// EnrollmentIDHasPrefix applies the HasPrefix predicate on the "enrollment_id" field.
func EnrollmentIDHasPrefix(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldHasPrefix(FieldEnrollmentID, v))
}

// EnrollmentIDHasSuffix applies the HasSuffix predicate on the "enrollment_id" field.
func EnrollmentIDHasSuffix(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldHasSuffix(FieldEnrollmentID, v))
}

// EnrollmentIDEqualFold applies the EqualFold predicate on the "enrollment_id" field.
func EnrollmentIDEqualFold(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEqualFold(FieldEnrollmentID, v))
}

// EnrollmentIDContainsFold applies the ContainsFold predicate on the "enrollment_id" field.
func EnrollmentIDContainsFold(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldContainsFold(FieldEnrollmentID, v))
}

// LessonIDEQ applies the EQ predicate on the "lesson_id" field.
func LessonIDEQ(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldLessonID, v))
}

// LessonIDNEQ applies the NEQ predicate on the "lesson_id" field.
func LessonIDNEQ(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNEQ(FieldLessonID, v))
}

// LessonIDIn applies the In predicate on the "lesson_id" field.
func LessonIDIn(vs ...string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldIn(FieldLessonID, vs...))
}

// LessonIDNotIn applies the NotIn predicate on the "lesson_id" field.
func LessonIDNotIn(vs ...string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNotIn(FieldLessonID, vs...))
}

// LessonIDGT applies the GT predicate on the "lesson_id" field.
func LessonIDGT(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGT(FieldLessonID, v))
}

// LessonIDGTE applies the GTE predicate on the "lesson_id" field.
func LessonIDGTE(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGTE(FieldLessonID, v))
}

// LessonIDLT applies the LT predicate on the "lesson_id" field.
func LessonIDLT(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLT(FieldLessonID, v))
}

// LessonIDLTE applies the LTE predicate on the "lesson_id" field.
func LessonIDLTE(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLTE(FieldLessonID, v))
}

// LessonIDContains applies the Contains predicate on the "lesson_id" field.
func LessonIDContains(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldContains(FieldLessonID, v))
}

// LessonIDHasPrefix applies the HasPrefix predicate on the "lesson_id" field.
func LessonIDHasPrefix(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldHasPrefix(FieldLessonID, v))
}

// LessonIDHasSuffix applies the HasSuffix predicate on the "lesson_id" field.
func LessonIDHasSuffix(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldHasSuffix(FieldLessonID, v))
}

// LessonIDEqualFold applies the EqualFold predicate on the "lesson_id" field.
func LessonIDEqualFold(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEqualFold(FieldLessonID, v))
}

// LessonIDContainsFold applies the ContainsFold predicate on the "lesson_id" field.
func LessonIDContainsFold(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldContainsFold(FieldLessonID, v))
}

// CommentEQ applies the EQ predicate on the "comment" field.
func CommentEQ(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldComment, v))
}

// CommentNEQ applies the NEQ predicate on the "comment" field.
func CommentNEQ(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNEQ(FieldComment, v))
}

// CommentIn applies the In predicate on the "comment" field.
func CommentIn(vs ...string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldIn(FieldComment, vs...))
}

// CommentNotIn applies the NotIn predicate on the "comment" field.
func CommentNotIn(vs ...string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNotIn(FieldComment, vs...))
}

// CommentGT applies the GT predicate on the "comment" field.
func CommentGT(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGT(FieldComment, v))
}

// CommentGTE applies the GTE predicate on the "comment" field.
func CommentGTE(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGTE(FieldComment, v))
}

// CommentLT applies the LT predicate on the "comment" field.
func CommentLT(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLT(FieldComment, v))
}

// CommentLTE applies the LTE predicate on the "comment" field.
func CommentLTE(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLTE(FieldComment, v))
}

// CommentContains applies the Contains predicate on the "comment" field.
func CommentContains(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldContains(FieldComment, v))
}

// CommentHasPrefix applies the HasPrefix predicate on the "comment" field.
func CommentHasPrefix(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldHasPrefix(FieldComment, v))
}

// CommentHasSuffix applies the HasSuffix predicate on the "comment" field.
func CommentHasSuffix(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldHasSuffix(FieldComment, v))
}

// CommentEqualFold applies the EqualFold predicate on the "comment" field.
func CommentEqualFold(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEqualFold(FieldComment, v))
}

// CommentContainsFold applies the ContainsFold predicate on the "comment" field.
func CommentContainsFold(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldContainsFold(FieldComment, v))
}

// ToneEQ applies the EQ predicate on the "tone" field.
func ToneEQ(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldTone, v))
}

// ToneNEQ applies the NEQ predicate on the "tone" field.
func ToneNEQ(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNEQ(FieldTone, v))
}

// ToneIn applies the In predicate on the "tone" field.
func ToneIn(vs ...string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldIn(FieldTone, vs...))
}

// ToneNotIn applies the NotIn predicate on the "tone" field.
func ToneNotIn(vs ...string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNotIn(FieldTone, vs...))
}

// ToneGT applies the GT predicate on the "tone" field.
func ToneGT(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGT(FieldTone, v))
}

// ToneGTE applies the GTE predicate on the "tone" field.
func ToneGTE(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGTE(FieldTone, v))
}

// ToneLT applies the LT predicate on the "tone" field.
func ToneLT(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLT(FieldTone, v))
}

// ToneLTE applies the LTE predicate on the "tone" field.
func ToneLTE(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLTE(FieldTone, v))
}

// ToneContains applies the Contains predicate on the "tone" field.
func ToneContains(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldContains(FieldTone, v))
}

// ToneHasPrefix applies the HasPrefix predicate on the "tone" field.
func ToneHasPrefix(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldHasPrefix(FieldTone, v))
}

// ToneHasSuffix applies the HasSuffix predicate on the "tone" field.
func ToneHasSuffix(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldHasSuffix(FieldTone, v))
}

// ToneEqualFold applies the EqualFold predicate on the "tone" field.
func ToneEqualFold(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEqualFold(FieldTone, v))
}

// ToneContainsFold applies the ContainsFold predicate on the "tone" field.
func ToneContainsFold(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldContainsFold(FieldTone, v))
}

// GeneratorEQ applies the EQ predicate on the "generator" field.
func GeneratorEQ(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldGenerator, v))
}

// GeneratorNEQ applies the NEQ predicate on the "generator" field.
func GeneratorNEQ(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNEQ(FieldGenerator, v))
}

// GeneratorIn applies the In predicate on the "generator" field.
func GeneratorIn(vs ...string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldIn(FieldGenerator, vs...))
}

// GeneratorNotIn applies the NotIn predicate on the "generator" field.
func GeneratorNotIn(vs ...string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNotIn(FieldGenerator, vs...))
}

// GeneratorGT applies the GT predicate on the "generator" field.
func GeneratorGT(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGT(FieldGenerator, v))
}

// GeneratorGTE applies the GTE predicate on the "generator" field.
func GeneratorGTE(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGTE(FieldGenerator, v))
}

// GeneratorLT applies the LT predicate on the "generator" field.
func GeneratorLT(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLT(FieldGenerator, v))
}

// GeneratorLTE applies the LTE predicate on the "generator" field.
func GeneratorLTE(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLTE(FieldGenerator, v))
}

// GeneratorContains applies the Contains predicate on the "generator" field.
func GeneratorContains(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldContains(FieldGenerator, v))
}

// GeneratorHasPrefix applies the HasPrefix predicate on the "generator" field.
func GeneratorHasPrefix(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldHasPrefix(FieldGenerator, v))
}

// GeneratorHasSuffix applies the HasSuffix predicate on the "generator" field.
func GeneratorHasSuffix(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldHasSuffix(FieldGenerator, v))
}

// GeneratorEqualFold applies the EqualFold predicate on the "generator" field.
func GeneratorEqualFold(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEqualFold(FieldGenerator, v))
}

// GeneratorContainsFold applies the ContainsFold predicate on the "generator" field.
func GeneratorContainsFold(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldContainsFold(FieldGenerator, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FeedbackEvent) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FeedbackEvent) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FeedbackEvent) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.NotPredicates(p))
}
