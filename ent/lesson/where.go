// Code generated by ent, DO NOT EDIT.

package lesson

import (
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/paceseed/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldID, id))
}

// PublicID applies equality check predicate on the "public_id" field. It's identical to PublicIDEQ.
func PublicID(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldPublicID, v))
}

// ModuleID applies equality check predicate on the "module_id" field. It's identical to ModuleIDEQ.
func ModuleID(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldModuleID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldTitle, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldPosition, v))
}

// AssignmentID applies equality check predicate on the "assignment_id" field. It's identical to AssignmentIDEQ.
func AssignmentID(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldAssignmentID, v))
}

// PublicIDEQ applies the EQ predicate on the "public_id" field.
func PublicIDEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldPublicID, v))
}

// PublicIDNEQ applies the NEQ predicate on the "public_id" field.
func PublicIDNEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldPublicID, v))
}

// PublicIDIn applies the In predicate on the "public_id" field.
func PublicIDIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldPublicID, vs...))
}

// PublicIDNotIn applies the NotIn predicate on the "public_id" field.
func PublicIDNotIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldPublicID, vs...))
}

// PublicIDGT applies the GT predicate on the "public_id" field.
func PublicIDGT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldPublicID, v))
}

// PublicIDGTE applies the GTE predicate on the "public_id" field.
func PublicIDGTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldPublicID, v))
}

// PublicIDLT applies the LT predicate on the "public_id" field.
func PublicIDLT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldPublicID, v))
}

// PublicIDLTE applies the LTE predicate on the "public_id" field.
func PublicIDLTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldPublicID, v))
}

// PublicIDContains applies the Contains predicate on the "public_id" field.
func PublicIDContains(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContains(FieldPublicID, v))
}

// PublicIDHasPrefix applies the HasPrefix predicate on the "public_id" field.
func PublicIDHasPrefix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasPrefix(FieldPublicID, v))
}

// PublicIDHasSuffix applies the HasSuffix predicate on the "public_id" field.
func PublicIDHasSuffix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasSuffix(FieldPublicID, v))
}

// PublicIDEqualFold applies the EqualFold predicate on the "public_id" field.
func PublicIDEqualFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEqualFold(FieldPublicID, v))
}

// PublicIDContainsFold applies the ContainsFold predicate on the "public_id" field.
func PublicIDContainsFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContainsFold(FieldPublicID, v))
}

// ModuleIDEQ applies the EQ predicate on the "module_id" field.
func ModuleIDEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldModuleID, v))
}

// ModuleIDNEQ applies the NEQ predicate on the "module_id" field.
func ModuleIDNEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldModuleID, v))
}

// ModuleIDIn applies the In predicate on the "module_id" field.
func ModuleIDIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldModuleID, vs...))
}

// ModuleIDNotIn applies the NotIn predicate on the "module_id" field.
func ModuleIDNotIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldModuleID, vs...))
}

// ModuleIDGT applies the GT predicate on the "module_id" field.
func ModuleIDGT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldModuleID, v))
}

// ModuleIDGTE applies the GTE predicate on the "module_id" field.
func ModuleIDGTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldModuleID, v))
}

// ModuleIDLT applies the LT predicate on the "module_id" field.
func ModuleIDLT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldModuleID, v))
}

// ModuleIDLTE applies the LTE predicate on the "module_id" field.
func ModuleIDLTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldModuleID, v))
}

// ModuleIDContains applies the Contains predicate on the "module_id" field.
func ModuleIDContains(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContains(FieldModuleID, v))
}

// ModuleIDHasPrefix applies the HasPrefix predicate on the "module_id" field.
func ModuleIDHasPrefix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasPrefix(FieldModuleID, v))
}

// ModuleIDHasSuffix applies the HasSuffix predicate on the "module_id" field.
func ModuleIDHasSuffix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasSuffix(FieldModuleID, v))
}

// ModuleIDEqualFold applies the EqualFold predicate on the "module_id" field.
func ModuleIDEqualFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEqualFold(FieldModuleID, v))
}

// ModuleIDContainsFold applies the ContainsFold predicate on the "module_id" field.
func ModuleIDContainsFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContainsFold(FieldModuleID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContainsFold(FieldTitle, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldPosition, v))
}

// AssignmentIDEQ applies the EQ predicate on the "assignment_id" field.
func AssignmentIDEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldAssignmentID, v))
}

// AssignmentIDNEQ applies the NEQ predicate on the "assignment_id" field.
func AssignmentIDNEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldAssignmentID, v))
}

// AssignmentIDIn applies the In predicate on the "assignment_id" field.
func AssignmentIDIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldAssignmentID, vs...))
}

// AssignmentIDNotIn applies the NotIn predicate on the "assignment_id" field.
func AssignmentIDNotIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldAssignmentID, vs...))
}

// AssignmentIDGT applies the GT predicate on the "assignment_id" field.
func AssignmentIDGT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldAssignmentID, v))
}

// AssignmentIDGTE applies the GTE predicate on the "assignment_id" field.
func AssignmentIDGTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldAssignmentID, v))
}

// AssignmentIDLT applies the LT predicate on the "assignment_id" field.
func AssignmentIDLT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldAssignmentID, v))
}

// AssignmentIDLTE applies the LTE predicate on the "assignment_id" field.
func AssignmentIDLTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldAssignmentID, v))
}

// AssignmentIDContains applies the Contains predicate on the "assignment_id" field.
func AssignmentIDContains(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContains(FieldAssignmentID, v))
}

// AssignmentIDHasPrefix applies the HasPrefix predicate on the "assignment_id" field.
func AssignmentIDHasPrefix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasPrefix(FieldAssignmentID, v))
}

// AssignmentIDHasSuffix applies the HasSuffix predicate on the "assignment_id" field.
func AssignmentIDHasSuffix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasSuffix(FieldAssignmentID, v))
}

// AssignmentIDIsNil applies the IsNil predicate on the "assignment_id" field.
func AssignmentIDIsNil() predicate.Lesson {
	return predicate.Lesson(sql.FieldIsNull(FieldAssignmentID))
}

// AssignmentIDNotNil applies the NotNil predicate on the "assignment_id" field.
func AssignmentIDNotNil() predicate.Lesson {
	return predicate.Lesson(sql.FieldNotNull(FieldAssignmentID))
}

// AssignmentIDEqualFold applies the EqualFold predicate on the "assignment_id" field.
func AssignmentIDEqualFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEqualFold(FieldAssignmentID, v))
}

// AssignmentIDContainsFold applies the ContainsFold predicate on the "assignment_id" field.
func AssignmentIDContainsFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContainsFold(FieldAssignmentID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Lesson) predicate.Lesson {
	return predicate.Lesson(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Lesson) predicate.Lesson {
	return predicate.Lesson(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Lesson) predicate.Lesson {
	return predicate.Lesson(sql.NotPredicates(p))
}
