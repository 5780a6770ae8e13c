// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/paceseed/ent/educator"
	"github.com/abhisek/paceseed/ent/predicate"
)

// EducatorUpdate is the builder for updating Educator entities.
type EducatorUpdate struct {
	config
	hooks    []Hook
	mutation *EducatorMutation
}

// Where appends a list predicates to the EducatorUpdate builder.
func (_u *EducatorUpdate) Where(ps ...predicate.Educator) *EducatorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPublicID sets the "public_id" field.
func (_u *EducatorUpdate) SetPublicID(v string) *EducatorUpdate {
	_u.mutation.SetPublicID(v)
	return _u
}

// SetNillablePublicID sets the "public_id" field if the given value is not nil.
func (_u *EducatorUpdate) SetNillablePublicID(v *string) *EducatorUpdate {
	if v != nil {
		_u.SetPublicID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *EducatorUpdate) SetName(v string) *EducatorUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *EducatorUpdate) SetNillableName(v *string) *EducatorUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *EducatorUpdate) SetEmail(v string) *EducatorUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *EducatorUpdate) SetNillableEmail(v *string) *EducatorUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// Mutation returns the EducatorMutation object of the builder.
func (_u *EducatorUpdate) Mutation() *EducatorMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EducatorUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EducatorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EducatorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EducatorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EducatorUpdate) check() error {
	if v, ok := _u.mutation.PublicID(); ok {
		if err := educator.PublicIDValidator(v); err != nil {
			return &ValidationError{Name: "public_id", err: fmt.Errorf(`ent: validator failed for field "Educator.public_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := educator.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Educator.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := educator.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Educator.email": %w`, err)}
		}
	}
	return nil
}

func (_u *EducatorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(educator.Table, educator.Columns, sqlgraph.NewFieldSpec(educator.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PublicID(); ok {
		_spec.SetField(educator.FieldPublicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(educator.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(educator.FieldEmail, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{educator.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EducatorUpdateOne is the builder for updating a single Educator entity.
type EducatorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EducatorMutation
}

// SetPublicID sets the "public_id" field.
func (_u *EducatorUpdateOne) SetPublicID(v string) *EducatorUpdateOne {
	_u.mutation.SetPublicID(v)
	return _u
}

// SetNillablePublicID sets the "public_id" field if the given value is not nil.
func (_u *EducatorUpdateOne) SetNillablePublicID(v *string) *EducatorUpdateOne {
	if v != nil {
		_u.SetPublicID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *EducatorUpdateOne) SetName(v string) *EducatorUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *EducatorUpdateOne) SetNillableName(v *string) *EducatorUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *EducatorUpdateOne) SetEmail(v string) *EducatorUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *EducatorUpdateOne) SetNillableEmail(v *string) *EducatorUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// Mutation returns the EducatorMutation object of the builder.
func (_u *EducatorUpdateOne) Mutation() *EducatorMutation {
	return _u.mutation
}

// Where appends a list predicates to the EducatorUpdate builder.
func (_u *EducatorUpdateOne) Where(ps ...predicate.Educator) *EducatorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EducatorUpdateOne) Select(field string, fields ...string) *EducatorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Educator entity.
func (_u *EducatorUpdateOne) Save(ctx context.Context) (*Educator, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EducatorUpdateOne) SaveX(ctx context.Context) *Educator {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EducatorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EducatorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EducatorUpdateOne) check() error {
	if v, ok := _u.mutation.PublicID(); ok {
		if err := educator.PublicIDValidator(v); err != nil {
			return &ValidationError{Name: "public_id", err: fmt.Errorf(`ent: validator failed for field "Educator.public_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := educator.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Educator.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := educator.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Educator.email": %w`, err)}
		}
	}
	return nil
}

func (_u *EducatorUpdateOne) sqlSave(ctx context.Context) (_node *Educator, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(educator.Table, educator.Columns, sqlgraph.NewFieldSpec(educator.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Educator.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, educator.FieldID)
		for _, f := range fields {
			if !educator.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != educator.FieldID {
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
		_spec.SetField(educator.FieldPublicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(educator.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(educator.FieldEmail, field.TypeString, value)
	}
	_node = &Educator{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{educator.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
