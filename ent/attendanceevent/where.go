// Code generated by ent, DO NOT EDIT.

package attendanceevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/paceseed/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldEQ(FieldTimestamp, v))
}

// GroupID applies equality check predicate on the "group_id" field. It's identical to GroupIDEQ.
func GroupID(v string) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldEQ(FieldGroupID, v))
}

// EnrollmentID applies equality check predicate on the "enrollment_id" field. It's identical to EnrollmentIDEQ.
func EnrollmentID(v string) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldEQ(FieldEnrollmentID, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v time.Time) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldEQ(FieldDate, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldEQ(FieldStatus, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldLTE(FieldTimestamp, v))
}

// GroupIDEQ applies the EQ predicate on the "group_id" field.
func GroupIDEQ(v string) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldEQ(FieldGroupID, v))
}

// GroupIDNEQ applies the NEQ predicate on the "group_id" field.
func GroupIDNEQ(v string) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldNEQ(FieldGroupID, v))
}

// GroupIDIn applies the In predicate on the "group_id" field.
func GroupIDIn(vs ...string) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldIn(FieldGroupID, vs...))
}

// GroupIDNotIn applies the NotIn predicate on the "group_id" field.
func GroupIDNotIn(vs ...string) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldNotIn(FieldGroupID, vs...))
}

// GroupIDGT applies the GT predicate on the "group_id" field.
func GroupIDGT(v string) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldGT(FieldGroupID, v))
}

// GroupIDGTE applies the GTE predicate on the "group_id" field.
func GroupIDGTE(v string) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldGTE(FieldGroupID, v))
}

// GroupIDLT applies the LT predicate on the "group_id" field.
func GroupIDLT(v string) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldLT(FieldGroupID, v))
}

// GroupIDLTE applies the LTE predicate on the "group_id" field.
func GroupIDLTE(v string) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldLTE(FieldGroupID, v))
}

// GroupIDContains applies the Contains predicate on the "group_id" field.
func GroupIDContains(v string) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldContains(FieldGroupID, v))
}

// GroupIDHasPrefix applies the HasPrefix predicate on the "group_id" field.
func GroupIDHasPrefix(v string) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldHasPrefix(FieldGroupID, v))
}

// GroupIDHasSuffix applies the HasSuffix predicate on the "group_id" field.
func GroupIDHasSuffix(v string) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldHasSuffix(FieldGroupID, v))
}

// GroupIDEqualFold applies the EqualFold predicate on the "group_id" field.
func GroupIDEqualFold(v string) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldEqualFold(FieldGroupID, v))
}

// GroupIDContainsFold applies the ContainsFold predicate on the "group_id" field.
func GroupIDContainsFold(v string) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldContainsFold(FieldGroupID, v))
}

// EnrollmentIDEQ applies the EQ predicate on the "enrollment_id" field.
func EnrollmentIDEQ(v string) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldEQ(FieldEnrollmentID, v))
}

// EnrollmentIDNEQ applies the NEQ predicate on the "enrollment_id" field.
func EnrollmentIDNEQ(v string) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldNEQ(FieldEnrollmentID, v))
}

// EnrollmentIDIn applies the In predicate on the "enrollment_id" field.
func EnrollmentIDIn(vs ...string) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldIn(FieldEnrollmentID, vs...))
}

// EnrollmentIDNotIn applies the NotIn predicate on the "enrollment_id" field.
func EnrollmentIDNotIn(vs ...string) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldNotIn(FieldEnrollmentID, vs...))
}

// EnrollmentIDGT applies the GT predicate on the "enrollment_id" field.
func EnrollmentIDGT(v string) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldGT(FieldEnrollmentID, v))
}

// EnrollmentIDGTE applies the GTE predicate on the "enrollment_id" field.
func EnrollmentIDGTE(v string) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldGTE(FieldEnrollmentID, v))
}

// EnrollmentIDLT applies the LT predicate on the "enrollment_id" field.
func EnrollmentIDLT(v string) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldLT(FieldEnrollmentID, v))
}

// EnrollmentIDLTE applies the LTE predicate on the "enrollment_id" field.
func EnrollmentIDLTE(v string) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldLTE(FieldEnrollmentID, v))
}

// EnrollmentIDContains applies the Contains predicate on the "enrollment_id" field.
func EnrollmentIDContains(v string) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldContains(FieldEnrollmentID, v))
}

// EnrollmentIDHasPrefix applies the HasPrefix predicate on the "enrollment_id" field.
func EnrollmentIDHasPrefix(v string) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldHasPrefix(FieldEnrollmentID, v))
}

// EnrollmentIDHasSuffix applies the HasSuffix predicate on the "enrollment_id" field.
func EnrollmentIDHasSuffix(v string) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldHasSuffix(FieldEnrollmentID, v))
}

// EnrollmentIDEqualFold applies the EqualFold predicate on the "enrollment_id" field.
func EnrollmentIDEqualFold(v string) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldEqualFold(FieldEnrollmentID, v))
}

// EnrollmentIDContainsFold applies the ContainsFold predicate on the "enrollment_id" field.
func EnrollmentIDContainsFold(v string) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldContainsFold(FieldEnrollmentID, v))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v time.Time) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v time.Time) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...time.Time) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...time.Time) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v time.Time) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v time.Time) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v time.Time) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v time.Time) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldLTE(FieldDate, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.FieldContainsFold(FieldStatus, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AttendanceEvent) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AttendanceEvent) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AttendanceEvent) predicate.AttendanceEvent {
	return predicate.AttendanceEvent(sql.NotPredicates(p))
}
