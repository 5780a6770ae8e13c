// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/paceseed/ent/attendanceevent"
	"github.com/abhisek/paceseed/ent/predicate"
)

// AttendanceEventUpdate is the builder for updating AttendanceEvent entities.
type AttendanceEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttendanceEventMutation
}

// Where appends a list predicates to the AttendanceEventUpdate builder.
func (_u *AttendanceEventUpdate) Where(ps ...predicate.AttendanceEvent) *AttendanceEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEnrollmentID sets the "enrollment_id" field.
func (_u *AttendanceEventUpdate) SetEnrollmentID(v string) *AttendanceEventUpdate {
	_u.mutation.SetEnrollmentID(v)
	return _u
}

// SetNillableEnrollmentID sets the "enrollment_id" field if the given value is not nil.
func (_u *AttendanceEventUpdate) SetNillableEnrollmentID(v *string) *AttendanceEventUpdate {
	if v != nil {
		_u.SetEnrollmentID(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *AttendanceEventUpdate) SetDate(v time.Time) *AttendanceEventUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *AttendanceEventUpdate) SetNillableDate(v *time.Time) *AttendanceEventUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AttendanceEventUpdate) SetStatus(v string) *AttendanceEventUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AttendanceEventUpdate) SetNillableStatus(v *string) *AttendanceEventUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the AttendanceEventMutation object of the builder.
func (_u *AttendanceEventUpdate) Mutation() *AttendanceEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttendanceEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttendanceEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttendanceEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttendanceEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttendanceEventUpdate) check() error {
	if v, ok := _u.mutation.EnrollmentID(); ok {
		if err := attendanceevent.EnrollmentIDValidator(v); err != nil {
			return &ValidationError{Name: "enrollment_id", err: fmt.Errorf(`ent: validator failed for field "AttendanceEvent.enrollment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := attendanceevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AttendanceEvent.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AttendanceEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attendanceevent.Table, attendanceevent.Columns, sqlgraph.NewFieldSpec(attendanceevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EnrollmentID(); ok {
		_spec.SetField(attendanceevent.FieldEnrollmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(attendanceevent.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(attendanceevent.FieldStatus, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attendanceevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttendanceEventUpdateOne is the builder for updating a single AttendanceEvent entity.
type AttendanceEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttendanceEventMutation
}

// SetEnrollmentID sets the "enrollment_id" field.
func (_u *AttendanceEventUpdateOne) SetEnrollmentID(v string) *AttendanceEventUpdateOne {
	_u.mutation.SetEnrollmentID(v)
	return _u
}

// SetNillableEnrollmentID sets the "enrollment_id" field if the given value is not nil.
func (_u *AttendanceEventUpdateOne) SetNillableEnrollmentID(v *string) *AttendanceEventUpdateOne {
	if v != nil {
		_u.SetEnrollmentID(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *AttendanceEventUpdateOne) SetDate(v time.Time) *AttendanceEventUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *AttendanceEventUpdateOne) SetNillableDate(v *time.Time) *AttendanceEventUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AttendanceEventUpdateOne) SetStatus(v string) *AttendanceEventUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AttendanceEventUpdateOne) SetNillableStatus(v *string) *AttendanceEventUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the AttendanceEventMutation object of the builder.
func (_u *AttendanceEventUpdateOne) Mutation() *AttendanceEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttendanceEventUpdate builder.
func (_u *AttendanceEventUpdateOne) Where(ps ...predicate.AttendanceEvent) *AttendanceEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttendanceEventUpdateOne) Select(field string, fields ...string) *AttendanceEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttendanceEvent entity.
func (_u *AttendanceEventUpdateOne) Save(ctx context.Context) (*AttendanceEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttendanceEventUpdateOne) SaveX(ctx context.Context) *AttendanceEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttendanceEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttendanceEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttendanceEventUpdateOne) check() error {
	if v, ok := _u.mutation.EnrollmentID(); ok {
		if err := attendanceevent.EnrollmentIDValidator(v); err != nil {
			return &ValidationError{Name: "enrollment_id", err: fmt.Errorf(`ent: validator failed for field "AttendanceEvent.enrollment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := attendanceevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AttendanceEvent.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AttendanceEventUpdateOne) sqlSave(ctx context.Context) (_node *AttendanceEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attendanceevent.Table, attendanceevent.Columns, sqlgraph.NewFieldSpec(attendanceevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttendanceEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attendanceevent.FieldID)
		for _, f := range fields {
			if !attendanceevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attendanceevent.FieldID {
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
		_spec.SetField(attendanceevent.FieldEnrollmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(attendanceevent.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(attendanceevent.FieldStatus, field.TypeString, value)
	}
	_node = &AttendanceEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attendanceevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
