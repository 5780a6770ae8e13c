// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/paceseed/ent/enrollment"
	"github.com/abhisek/paceseed/ent/predicate"
)

// EnrollmentUpdate is the builder for updating Enrollment entities.
type EnrollmentUpdate struct {
	config
	hooks    []Hook
	mutation *EnrollmentMutation
}

// Where appends a list predicates to the EnrollmentUpdate builder.
func (_u *EnrollmentUpdate) Where(ps ...predicate.Enrollment) *EnrollmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPublicID sets the "public_id" field.
func (_u *EnrollmentUpdate) SetPublicID(v string) *EnrollmentUpdate {
	_u.mutation.SetPublicID(v)
	return _u
}

// SetNillablePublicID sets the "public_id" field if the given value is not nil.
func (_u *EnrollmentUpdate) SetNillablePublicID(v *string) *EnrollmentUpdate {
	if v != nil {
		_u.SetPublicID(*v)
	}
	return _u
}

// SetGroupID sets the "group_id" field.
func (_u *EnrollmentUpdate) SetGroupID(v string) *EnrollmentUpdate {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *EnrollmentUpdate) SetNillableGroupID(v *string) *EnrollmentUpdate {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// SetStudentProfileID sets the "student_profile_id" field.
func (_u *EnrollmentUpdate) SetStudentProfileID(v string) *EnrollmentUpdate {
	_u.mutation.SetStudentProfileID(v)
	return _u
}

// SetNillableStudentProfileID sets the "student_profile_id" field if the given value is not nil.
func (_u *EnrollmentUpdate) SetNillableStudentProfileID(v *string) *EnrollmentUpdate {
	if v != nil {
		_u.SetStudentProfileID(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *EnrollmentUpdate) SetDisplayName(v string) *EnrollmentUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *EnrollmentUpdate) SetNillableDisplayName(v *string) *EnrollmentUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *EnrollmentUpdate) SetPosition(v int) *EnrollmentUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *EnrollmentUpdate) SetNillablePosition(v *int) *EnrollmentUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *EnrollmentUpdate) AddPosition(v int) *EnrollmentUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// Mutation returns the EnrollmentMutation object of the builder.
func (_u *EnrollmentUpdate) Mutation() *EnrollmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EnrollmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EnrollmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EnrollmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EnrollmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EnrollmentUpdate) check() error {
	if v, ok := _u.mutation.PublicID(); ok {
		if err := enrollment.PublicIDValidator(v); err != nil {
			return &ValidationError{Name: "public_id", err: fmt.Errorf(`ent: validator failed for field "Enrollment.public_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GroupID(); ok {
		if err := enrollment.GroupIDValidator(v); err != nil {
			return &ValidationError{Name: "group_id", err: fmt.Errorf(`ent: validator failed for field "Enrollment.group_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentProfileID(); ok {
		if err := enrollment.StudentProfileIDValidator(v); err != nil {
			return &ValidationError{Name: "student_profile_id", err: fmt.Errorf(`ent: validator failed for field "Enrollment.student_profile_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DisplayName(); ok {
		if err := enrollment.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`ent: validator failed for field "Enrollment.display_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := enrollment.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Enrollment.position": %w`, err)}
		}
	}
	return nil
}

func (_u *EnrollmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(enrollment.Table, enrollment.Columns, sqlgraph.NewFieldSpec(enrollment.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PublicID(); ok {
		_spec.SetField(enrollment.FieldPublicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GroupID(); ok {
		_spec.SetField(enrollment.FieldGroupID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentProfileID(); ok {
		_spec.SetField(enrollment.FieldStudentProfileID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(enrollment.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(enrollment.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(enrollment.FieldPosition, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{enrollment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EnrollmentUpdateOne is the builder for updating a single Enrollment entity.
type EnrollmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EnrollmentMutation
}

// SetPublicID sets the "public_id" field.
func (_u *EnrollmentUpdateOne) SetPublicID(v string) *EnrollmentUpdateOne {
	_u.mutation.SetPublicID(v)
	return _u
}

// SetNillablePublicID sets the "public_id" field if the given value is not nil.
func (_u *EnrollmentUpdateOne) SetNillablePublicID(v *string) *EnrollmentUpdateOne {
	if v != nil {
		_u.SetPublicID(*v)
	}
	return _u
}

// SetGroupID sets the "group_id" field.
func (_u *EnrollmentUpdateOne) SetGroupID(v string) *EnrollmentUpdateOne {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *EnrollmentUpdateOne) SetNillableGroupID(v *string) *EnrollmentUpdateOne {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// SetStudentProfileID sets the "student_profile_id" field.
func (_u *EnrollmentUpdateOne) SetStudentProfileID(v string) *EnrollmentUpdateOne {
	_u.mutation.SetStudentProfileID(v)
	return _u
}

// SetNillableStudentProfileID sets the "student_profile_id" field if the given value is not nil.
func (_u *EnrollmentUpdateOne) SetNillableStudentProfileID(v *string) *EnrollmentUpdateOne {
	if v != nil {
		_u.SetStudentProfileID(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *EnrollmentUpdateOne) SetDisplayName(v string) *EnrollmentUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *EnrollmentUpdateOne) SetNillableDisplayName(v *string) *EnrollmentUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *EnrollmentUpdateOne) SetPosition(v int) *EnrollmentUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *EnrollmentUpdateOne) SetNillablePosition(v *int) *EnrollmentUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *EnrollmentUpdateOne) AddPosition(v int) *EnrollmentUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// Mutation returns the EnrollmentMutation object of the builder.
func (_u *EnrollmentUpdateOne) Mutation() *EnrollmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the EnrollmentUpdate builder.
func (_u *EnrollmentUpdateOne) Where(ps ...predicate.Enrollment) *EnrollmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EnrollmentUpdateOne) Select(field string, fields ...string) *EnrollmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Enrollment entity.
func (_u *EnrollmentUpdateOne) Save(ctx context.Context) (*Enrollment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EnrollmentUpdateOne) SaveX(ctx context.Context) *Enrollment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EnrollmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EnrollmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EnrollmentUpdateOne) check() error {
	if v, ok := _u.mutation.PublicID(); ok {
		if err := enrollment.PublicIDValidator(v); err != nil {
			return &ValidationError{Name: "public_id", err: fmt.Errorf(`ent: validator failed for field "Enrollment.public_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GroupID(); ok {
		if err := enrollment.GroupIDValidator(v); err != nil {
			return &ValidationError{Name: "group_id", err: fmt.Errorf(`ent: validator failed for field "Enrollment.group_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentProfileID(); ok {
		if err := enrollment.StudentProfileIDValidator(v); err != nil {
			return &ValidationError{Name: "student_profile_id", err: fmt.Errorf(`ent: validator failed for field "Enrollment.student_profile_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DisplayName(); ok {
		if err := enrollment.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`ent: validator failed for field "Enrollment.display_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := enrollment.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Enrollment.position": %w`, err)}
		}
	}
	return nil
}

func (_u *EnrollmentUpdateOne) sqlSave(ctx context.Context) (_node *Enrollment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(enrollment.Table, enrollment.Columns, sqlgraph.NewFieldSpec(enrollment.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Enrollment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, enrollment.FieldID)
		for _, f := range fields {
			if !enrollment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != enrollment.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PublicID(); ok {
		_spec.SetField(enrollment.FieldPublicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GroupID(); ok {
		_spec.SetField(enrollment.FieldGroupID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentProfileID(); ok {
		_spec.SetField(enrollment.FieldStudentProfileID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(enrollment.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(enrollment.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(enrollment.FieldPosition, field.TypeInt, value)
	}
	_node = &Enrollment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{enrollment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
