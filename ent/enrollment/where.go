// Code generated by ent, DO NOT EDIT.

package enrollment

import (
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/paceseed/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLTE(FieldID, id))
}

// PublicID applies equality check predicate on the "public_id" field. It's identical to PublicIDEQ.
func PublicID(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldPublicID, v))
}

// GroupID applies equality check predicate on the "group_id" field. It's identical to GroupIDEQ.
func GroupID(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldGroupID, v))
}

// StudentProfileID applies equality check predicate on the "student_profile_id" field. It's identical to StudentProfileIDEQ.
func StudentProfileID(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldStudentProfileID, v))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldDisplayName, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldPosition, v))
}

// PublicIDEQ applies the EQ predicate on the "public_id" field.
func PublicIDEQ(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldPublicID, v))
}

// PublicIDNEQ applies the NEQ predicate on the "public_id" field.
func PublicIDNEQ(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNEQ(FieldPublicID, v))
}

// PublicIDIn applies the In predicate on the "public_id" field.
func PublicIDIn(vs ...string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldIn(FieldPublicID, vs...))
}

// PublicIDNotIn applies the NotIn predicate on the "public_id" field.
func PublicIDNotIn(vs ...string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNotIn(FieldPublicID, vs...))
}

// PublicIDGT applies the GT predicate on the "public_id" field.
func PublicIDGT(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGT(FieldPublicID, v))
}

// PublicIDGTE applies the GTE predicate on the "public_id" field.
func PublicIDGTE(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGTE(FieldPublicID, v))
}

// PublicIDLT applies the LT predicate on the "public_id" field.
func PublicIDLT(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLT(FieldPublicID, v))
}

// PublicIDLTE applies the LTE predicate on the "public_id" field.
func PublicIDLTE(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLTE(FieldPublicID, v))
}

// PublicIDContains applies the Contains predicate on the "public_id" field.
func PublicIDContains(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldContains(FieldPublicID, v))
}

// PublicIDHasPrefix applies the HasPrefix predicate on the "public_id" field.
func PublicIDHasPrefix(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldHasPrefix(FieldPublicID, v))
}

// PublicIDHasSuffix applies the HasSuffix predicate on the "public_id" field.
func PublicIDHasSuffix(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldHasSuffix(FieldPublicID, v))
}

// PublicIDEqualFold applies the EqualFold predicate on the "public_id" field.
func PublicIDEqualFold(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEqualFold(FieldPublicID, v))
}

// PublicIDContainsFold applies the ContainsFold predicate on the "public_id" field.
func PublicIDContainsFold(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldContainsFold(FieldPublicID, v))
}

// GroupIDEQ applies the EQ predicate on the "group_id" field.
func GroupIDEQ(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldGroupID, v))
}

// GroupIDNEQ applies the NEQ predicate on the "group_id" field.
func GroupIDNEQ(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNEQ(FieldGroupID, v))
}

// GroupIDIn applies the In predicate on the "group_id" field.
func GroupIDIn(vs ...string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldIn(FieldGroupID, vs...))
}

// GroupIDNotIn applies the NotIn predicate on the "group_id" field.
func GroupIDNotIn(vs ...string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNotIn(FieldGroupID, vs...))
}

// GroupIDGT applies the GT predicate on the "group_id" field.
func GroupIDGT(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGT(FieldGroupID, v))
}

// GroupIDGTE applies the GTE predicate on the "group_id" field.
func GroupIDGTE(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGTE(FieldGroupID, v))
}

// GroupIDLT applies the LT predicate on the "group_id" field.
func GroupIDLT(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLT(FieldGroupID, v))
}

// GroupIDLTE applies the LTE predicate on the "group_id" field.
func GroupIDLTE(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLTE(FieldGroupID, v))
}

// GroupIDContains applies the Contains predicate on the "group_id" field.
func GroupIDContains(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldContains(FieldGroupID, v))
}

// GroupIDHasPrefix applies the HasPrefix predicate on the "group_id" field.
func GroupIDHasPrefix(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldHasPrefix(FieldGroupID, v))
}

// GroupIDHasSuffix applies the HasSuffix predicate on the "group_id" field.
func GroupIDHasSuffix(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldHasSuffix(FieldGroupID, v))
}

// GroupIDEqualFold applies the EqualFold predicate on the "group_id" field.
func GroupIDEqualFold(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEqualFold(FieldGroupID, v))
}

// GroupIDContainsFold applies the ContainsFold predicate on the "group_id" field.
func GroupIDContainsFold(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldContainsFold(FieldGroupID, v))
}

// StudentProfileIDEQ applies the EQ predicate on the "student_profile_id" field.
func StudentProfileIDEQ(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldStudentProfileID, v))
}

// StudentProfileIDNEQ applies the NEQ predicate on the "student_profile_id" field.
func StudentProfileIDNEQ(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNEQ(FieldStudentProfileID, v))
}

// StudentProfileIDIn applies the In predicate on the "student_profile_id" field.
func StudentProfileIDIn(vs ...string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldIn(FieldStudentProfileID, vs...))
}

// StudentProfileIDNotIn applies the NotIn predicate on the "student_profile_id" field.
func StudentProfileIDNotIn(vs ...string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNotIn(FieldStudentProfileID, vs...))
}

// StudentProfileIDGT applies the GT predicate on the "student_profile_id" field.
func StudentProfileIDGT(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGT(FieldStudentProfileID, v))
}

// StudentProfileIDGTE applies the GTE predicate on the "student_profile_id" field.
func StudentProfileIDGTE(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGTE(FieldStudentProfileID, v))
}

// StudentProfileIDLT applies the LT predicate on the "student_profile_id" field.
func StudentProfileIDLT(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLT(FieldStudentProfileID, v))
}

// StudentProfileIDLTE applies the LTE predicate on the "student_profile_id" field.
func StudentProfileIDLTE(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLTE(FieldStudentProfileID, v))
}

// StudentProfileIDContains applies the Contains predicate on the "student_profile_id" field.
func StudentProfileIDContains(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldContains(FieldStudentProfileID, v))
}

// StudentProfileIDHasPrefix applies the HasPrefix predicate on the "student_profile_id" field.
func StudentProfileIDHasPrefix(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldHasPrefix(FieldStudentProfileID, v))
}

// StudentProfileIDHasSuffix applies the HasSuffix predicate on the "student_profile_id" field.
func StudentProfileIDHasSuffix(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldHasSuffix(FieldStudentProfileID, v))
}

// StudentProfileIDEqualFold applies the EqualFold predicate on the "student_profile_id" field.
func StudentProfileIDEqualFold(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEqualFold(FieldStudentProfileID, v))
}

// StudentProfileIDContainsFold applies the ContainsFold predicate on the "student_profile_id" field.
func StudentProfileIDContainsFold(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldContainsFold(FieldStudentProfileID, v))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldContainsFold(FieldDisplayName, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.Enrollment {
	return predicate.Enrollment(sql.FieldLTE(FieldPosition, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Enrollment) predicate.Enrollment {
	return predicate.Enrollment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Enrollment) predicate.Enrollment {
	return predicate.Enrollment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Enrollment) predicate.Enrollment {
	return predicate.Enrollment(sql.NotPredicates(p))
}
