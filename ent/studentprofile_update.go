// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/paceseed/ent/predicate"
	"github.com/abhisek/paceseed/ent/studentprofile"
)

// StudentProfileUpdate is the builder for updating StudentProfile entities.
type StudentProfileUpdate struct {
	config
	hooks    []Hook
	mutation *StudentProfileMutation
}

// Where appends a list predicates to the StudentProfileUpdate builder.
func (_u *StudentProfileUpdate) Where(ps ...predicate.StudentProfile) *StudentProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPublicID sets the "public_id" field.
func (_u *StudentProfileUpdate) SetPublicID(v string) *StudentProfileUpdate {
	_u.mutation.SetPublicID(v)
	return _u
}

// SetNillablePublicID sets the "public_id" field if the given value is not nil.
func (_u *StudentProfileUpdate) SetNillablePublicID(v *string) *StudentProfileUpdate {
	if v != nil {
		_u.SetPublicID(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *StudentProfileUpdate) SetDisplayName(v string) *StudentProfileUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *StudentProfileUpdate) SetNillableDisplayName(v *string) *StudentProfileUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// Mutation returns the StudentProfileMutation object of the builder.
func (_u *StudentProfileUpdate) Mutation() *StudentProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudentProfileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudentProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudentProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudentProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudentProfileUpdate) check() error {
	if v, ok := _u.mutation.PublicID(); ok {
		if err := studentprofile.PublicIDValidator(v); err != nil {
			return &ValidationError{Name: "public_id", err: fmt.Errorf(`ent: validator failed for field "StudentProfile.public_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DisplayName(); ok {
		if err := studentprofile.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`ent: validator failed for field "StudentProfile.display_name": %w`, err)}
		}
	}
	return nil
}

func (_u *StudentProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studentprofile.Table, studentprofile.Columns, sqlgraph.NewFieldSpec(studentprofile.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PublicID(); ok {
		_spec.SetField(studentprofile.FieldPublicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(studentprofile.FieldDisplayName, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studentprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudentProfileUpdateOne is the builder for updating a single StudentProfile entity.
type StudentProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudentProfileMutation
}

// SetPublicID sets the "public_id" field.
func (_u *StudentProfileUpdateOne) SetPublicID(v string) *StudentProfileUpdateOne {
	_u.mutation.SetPublicID(v)
	return _u
}

// SetNillablePublicID sets the "public_id" field if the given value is not nil.
func (_u *StudentProfileUpdateOne) SetNillablePublicID(v *string) *StudentProfileUpdateOne {
	if v != nil {
		_u.SetPublicID(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *StudentProfileUpdateOne) SetDisplayName(v string) *StudentProfileUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *StudentProfileUpdateOne) SetNillableDisplayName(v *string) *StudentProfileUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// Mutation returns the StudentProfileMutation object of the builder.
func (_u *StudentProfileUpdateOne) Mutation() *StudentProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the StudentProfileUpdate builder.
func (_u *StudentProfileUpdateOne) Where(ps ...predicate.StudentProfile) *StudentProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudentProfileUpdateOne) Select(field string, fields ...string) *StudentProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StudentProfile entity.
func (_u *StudentProfileUpdateOne) Save(ctx context.Context) (*StudentProfile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudentProfileUpdateOne) SaveX(ctx context.Context) *StudentProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudentProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudentProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudentProfileUpdateOne) check() error {
	if v, ok := _u.mutation.PublicID(); ok {
		if err := studentprofile.PublicIDValidator(v); err != nil {
			return &ValidationError{Name: "public_id", err: fmt.Errorf(`ent: validator failed for field "StudentProfile.public_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DisplayName(); ok {
		if err := studentprofile.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`ent: validator failed for field "StudentProfile.display_name": %w`, err)}
		}
	}
	return nil
}

func (_u *StudentProfileUpdateOne) sqlSave(ctx context.Context) (_node *StudentProfile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studentprofile.Table, studentprofile.Columns, sqlgraph.NewFieldSpec(studentprofile.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StudentProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, studentprofile.FieldID)
		for _, f := range fields {
			if !studentprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != studentprofile.FieldID {
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
		_spec.SetField(studentprofile.FieldPublicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(studentprofile.FieldDisplayName, field.TypeString, value)
	}
	_node = &StudentProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studentprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
