// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/paceseed/ent/assignmentcompletionevent"
	"github.com/abhisek/paceseed/ent/predicate"
)

// AssignmentCompletionEventUpdate is the builder for updating AssignmentCompletionEvent entities.
type AssignmentCompletionEventUpdate struct {
	config
	hooks    []Hook
	mutation *AssignmentCompletionEventMutation
}

// Where appends a list predicates to the AssignmentCompletionEventUpdate builder.
func (_u *AssignmentCompletionEventUpdate) Where(ps ...predicate.AssignmentCompletionEvent) *AssignmentCompletionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEnrollmentID sets the "enrollment_id" field.
func (_u *AssignmentCompletionEventUpdate) SetEnrollmentID(v string) *AssignmentCompletionEventUpdate {
	_u.mutation.SetEnrollmentID(v)
	return _u
}

// SetNillableEnrollmentID sets the "enrollment_id" field if the given value is not nil.
func (_u *AssignmentCompletionEventUpdate) SetNillableEnrollmentID(v *string) *AssignmentCompletionEventUpdate {
	if v != nil {
		_u.SetEnrollmentID(*v)
	}
	return _u
}

// SetAssignmentID sets the "assignment_id" field.
func (_u *AssignmentCompletionEventUpdate) SetAssignmentID(v string) *AssignmentCompletionEventUpdate {
	_u.mutation.SetAssignmentID(v)
	return _u
}

// SetNillableAssignmentID sets the "assignment_id" field if the given value is not nil.
func (_u *AssignmentCompletionEventUpdate) SetNillableAssignmentID(v *string) *AssignmentCompletionEventUpdate {
	if v != nil {
		_u.SetAssignmentID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *AssignmentCompletionEventUpdate) SetLessonID(v string) *AssignmentCompletionEventUpdate {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *AssignmentCompletionEventUpdate) SetNillableLessonID(v *string) *AssignmentCompletionEventUpdate {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *AssignmentCompletionEventUpdate) SetScore(v float64) *AssignmentCompletionEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AssignmentCompletionEventUpdate) SetNillableScore(v *float64) *AssignmentCompletionEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AssignmentCompletionEventUpdate) AddScore(v float64) *AssignmentCompletionEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetDelayed sets the "delayed" field.
func (_u *AssignmentCompletionEventUpdate) SetDelayed(v bool) *AssignmentCompletionEventUpdate {
	_u.mutation.SetDelayed(v)
	return _u
}

// SetNillableDelayed sets the "delayed" field if the given value is not nil.
func (_u *AssignmentCompletionEventUpdate) SetNillableDelayed(v *bool) *AssignmentCompletionEventUpdate {
	if v != nil {
		_u.SetDelayed(*v)
	}
	return _u
}

// Mutation returns the AssignmentCompletionEventMutation object of the builder.
func (_u *AssignmentCompletionEventUpdate) Mutation() *AssignmentCompletionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssignmentCompletionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssignmentCompletionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssignmentCompletionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssignmentCompletionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssignmentCompletionEventUpdate) check() error {
	if v, ok := _u.mutation.EnrollmentID(); ok {
		if err := assignmentcompletionevent.EnrollmentIDValidator(v); err != nil {
			return &ValidationError{Name: "enrollment_id", err: fmt.Errorf(`ent: validator failed for field "AssignmentCompletionEvent.enrollment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssignmentID(); ok {
		if err := assignmentcompletionevent.AssignmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assignment_id", err: fmt.Errorf(`ent: validator failed for field "AssignmentCompletionEvent.assignment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := assignmentcompletionevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "AssignmentCompletionEvent.lesson_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AssignmentCompletionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assignmentcompletionevent.Table, assignmentcompletionevent.Columns, sqlgraph.NewFieldSpec(assignmentcompletionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EnrollmentID(); ok {
		_spec.SetField(assignmentcompletionevent.FieldEnrollmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssignmentID(); ok {
		_spec.SetField(assignmentcompletionevent.FieldAssignmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(assignmentcompletionevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(assignmentcompletionevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(assignmentcompletionevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Delayed(); ok {
		_spec.SetField(assignmentcompletionevent.FieldDelayed, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assignmentcompletionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssignmentCompletionEventUpdateOne is the builder for updating a single AssignmentCompletionEvent entity.
type AssignmentCompletionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssignmentCompletionEventMutation
}

// SetEnrollmentID sets the "enrollment_id" field.
func (_u *AssignmentCompletionEventUpdateOne) SetEnrollmentID(v string) *AssignmentCompletionEventUpdateOne {
	_u.mutation.SetEnrollmentID(v)
	return _u
}

// SetNillableEnrollmentID sets the "enrollment_id" field if the given value is not nil.
func (_u *AssignmentCompletionEventUpdateOne) SetNillableEnrollmentID(v *string) *AssignmentCompletionEventUpdateOne {
	if v != nil {
		_u.SetEnrollmentID(*v)
	}
	return _u
}

// SetAssignmentID sets the "assignment_id" field.
func (_u *AssignmentCompletionEventUpdateOne) SetAssignmentID(v string) *AssignmentCompletionEventUpdateOne {
	_u.mutation.SetAssignmentID(v)
	return _u
}

// SetNillableAssignmentID sets the "assignment_id" field if the given value is not nil.
func (_u *AssignmentCompletionEventUpdateOne) SetNillableAssignmentID(v *string) *AssignmentCompletionEventUpdateOne {
	if v != nil {
		_u.SetAssignmentID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *AssignmentCompletionEventUpdateOne) SetLessonID(v string) *AssignmentCompletionEventUpdateOne {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *AssignmentCompletionEventUpdateOne) SetNillableLessonID(v *string) *AssignmentCompletionEventUpdateOne {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *AssignmentCompletionEventUpdateOne) SetScore(v float64) *AssignmentCompletionEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AssignmentCompletionEventUpdateOne) SetNillableScore(v *float64) *AssignmentCompletionEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AssignmentCompletionEventUpdateOne) AddScore(v float64) *AssignmentCompletionEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetDelayed sets the "delayed" field.
func (_u *AssignmentCompletionEventUpdateOne) SetDelayed(v bool) *AssignmentCompletionEventUpdateOne {
	_u.mutation.SetDelayed(v)
	return _u
}

// SetNillableDelayed sets the "delayed" field if the given value is not nil.
func (_u *AssignmentCompletionEventUpdateOne) SetNillableDelayed(v *bool) *AssignmentCompletionEventUpdateOne {
	if v != nil {
		_u.SetDelayed(*v)
	}
	return _u
}

// Mutation returns the AssignmentCompletionEventMutation object of the builder.
func (_u *AssignmentCompletionEventUpdateOne) Mutation() *AssignmentCompletionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssignmentCompletionEventUpdate builder.
func (_u *AssignmentCompletionEventUpdateOne) Where(ps ...predicate.AssignmentCompletionEvent) *AssignmentCompletionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssignmentCompletionEventUpdateOne) Select(field string, fields ...string) *AssignmentCompletionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AssignmentCompletionEvent entity.
func (_u *AssignmentCompletionEventUpdateOne) Save(ctx context.Context) (*AssignmentCompletionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssignmentCompletionEventUpdateOne) SaveX(ctx context.Context) *AssignmentCompletionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssignmentCompletionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssignmentCompletionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssignmentCompletionEventUpdateOne) check() error {
	if v, ok := _u.mutation.EnrollmentID(); ok {
		if err := assignmentcompletionevent.EnrollmentIDValidator(v); err != nil {
			return &ValidationError{Name: "enrollment_id", err: fmt.Errorf(`ent: validator failed for field "AssignmentCompletionEvent.enrollment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssignmentID(); ok {
		if err := assignmentcompletionevent.AssignmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assignment_id", err: fmt.Errorf(`ent: validator failed for field "AssignmentCompletionEvent.assignment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := assignmentcompletionevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "AssignmentCompletionEvent.lesson_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AssignmentCompletionEventUpdateOne) sqlSave(ctx context.Context) (_node *AssignmentCompletionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assignmentcompletionevent.Table, assignmentcompletionevent.Columns, sqlgraph.NewFieldSpec(assignmentcompletionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AssignmentCompletionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assignmentcompletionevent.FieldID)
		for _, f := range fields {
			if !assignmentcompletionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assignmentcompletionevent.FieldID {
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
		_spec.SetField(assignmentcompletionevent.FieldEnrollmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssignmentID(); ok {
		_spec.SetField(assignmentcompletionevent.FieldAssignmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(assignmentcompletionevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(assignmentcompletionevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(assignmentcompletionevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Delayed(); ok {
		_spec.SetField(assignmentcompletionevent.FieldDelayed, field.TypeBool, value)
	}
	_node = &AssignmentCompletionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assignmentcompletionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
