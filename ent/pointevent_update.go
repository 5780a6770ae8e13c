// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/paceseed/ent/pointevent"
	"github.com/abhisek/paceseed/ent/predicate"
)

// PointEventUpdate is the builder for updating PointEvent entities.
type PointEventUpdate struct {
	config
	hooks    []Hook
	mutation *PointEventMutation
}

// Where appends a list predicates to the PointEventUpdate builder.
func (_u *PointEventUpdate) Where(ps ...predicate.PointEvent) *PointEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEnrollmentID sets the "enrollment_id" field.
func (_u *PointEventUpdate) SetEnrollmentID(v string) *PointEventUpdate {
	_u.mutation.SetEnrollmentID(v)
	return _u
}

// SetNillableEnrollmentID sets the "enrollment_id" field if the given value is not nil.
func (_u *PointEventUpdate) SetNillableEnrollmentID(v *string) *PointEventUpdate {
	if v != nil {
		_u.SetEnrollmentID(*v)
	}
	return _u
}

// SetPoints sets the "points" field.
func (_u *PointEventUpdate) SetPoints(v int) *PointEventUpdate {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *PointEventUpdate) SetNillablePoints(v *int) *PointEventUpdate {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *PointEventUpdate) AddPoints(v int) *PointEventUpdate {
	_u.mutation.AddPoints(v)
	return _u
}

// SetReason sets the "reason" field.
func (_u *PointEventUpdate) SetReason(v string) *PointEventUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *PointEventUpdate) SetNillableReason(v *string) *PointEventUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// Mutation returns the PointEventMutation object of the builder.
func (_u *PointEventUpdate) Mutation() *PointEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PointEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PointEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PointEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PointEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PointEventUpdate) check() error {
	if v, ok := _u.mutation.EnrollmentID(); ok {
		if err := pointevent.EnrollmentIDValidator(v); err != nil {
			return &ValidationError{Name: "enrollment_id", err: fmt.Errorf(`ent: validator failed for field "PointEvent.enrollment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Points(); ok {
		if err := pointevent.PointsValidator(v); err != nil {
			return &ValidationError{Name: "points", err: fmt.Errorf(`ent: validator failed for field "PointEvent.points": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := pointevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "PointEvent.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *PointEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pointevent.Table, pointevent.Columns, sqlgraph.NewFieldSpec(pointevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EnrollmentID(); ok {
		_spec.SetField(pointevent.FieldEnrollmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(pointevent.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(pointevent.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(pointevent.FieldReason, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pointevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PointEventUpdateOne is the builder for updating a single PointEvent entity.
type PointEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PointEventMutation
}

// SetEnrollmentID sets the "enrollment_id" field.
func (_u *PointEventUpdateOne) SetEnrollmentID(v string) *PointEventUpdateOne {
	_u.mutation.SetEnrollmentID(v)
	return _u
}

// SetNillableEnrollmentID sets the "enrollment_id" field if the given value is not nil.
func (_u *PointEventUpdateOne) SetNillableEnrollmentID(v *string) *PointEventUpdateOne {
	if v != nil {
		_u.SetEnrollmentID(*v)
	}
	return _u
}

// SetPoints sets the "points" field.
func (_u *PointEventUpdateOne) SetPoints(v int) *PointEventUpdateOne {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *PointEventUpdateOne) SetNillablePoints(v *int) *PointEventUpdateOne {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *PointEventUpdateOne) AddPoints(v int) *PointEventUpdateOne {
	_u.mutation.AddPoints(v)
	return _u
}

// SetReason sets the "reason" field.
func (_u *PointEventUpdateOne) SetReason(v string) *PointEventUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *PointEventUpdateOne) SetNillableReason(v *string) *PointEventUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// Mutation returns the PointEventMutation object of the builder.
func (_u *PointEventUpdateOne) Mutation() *PointEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PointEventUpdate builder.
func (_u *PointEventUpdateOne) Where(ps ...predicate.PointEvent) *PointEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PointEventUpdateOne) Select(field string, fields ...string) *PointEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PointEvent entity.
func (_u *PointEventUpdateOne) Save(ctx context.Context) (*PointEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PointEventUpdateOne) SaveX(ctx context.Context) *PointEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PointEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PointEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PointEventUpdateOne) check() error {
	if v, ok := _u.mutation.EnrollmentID(); ok {
		if err := pointevent.EnrollmentIDValidator(v); err != nil {
			return &ValidationError{Name: "enrollment_id", err: fmt.Errorf(`ent: validator failed for field "PointEvent.enrollment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Points(); ok {
		if err := pointevent.PointsValidator(v); err != nil {
			return &ValidationError{Name: "points", err: fmt.Errorf(`ent: validator failed for field "PointEvent.points": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := pointevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "PointEvent.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *PointEventUpdateOne) sqlSave(ctx context.Context) (_node *PointEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pointevent.Table, pointevent.Columns, sqlgraph.NewFieldSpec(pointevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PointEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pointevent.FieldID)
		for _, f := range fields {
			if !pointevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pointevent.FieldID {
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
	if value, ok := _u.mutation.EnrollmentID(); ok {
		_spec.SetField(pointevent.FieldEnrollmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(pointevent.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(pointevent.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(pointevent.FieldReason, field.TypeString, value)
	}
	_node = &PointEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pointevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
