// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/paceseed/ent/assignmentcompletionevent"
)

// AssignmentCompletionEventCreate is the builder for creating a AssignmentCompletionEvent entity.
type AssignmentCompletionEventCreate struct {
	config
	mutation *AssignmentCompletionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AssignmentCompletionEventCreate) SetSequence(v int64) *AssignmentCompletionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AssignmentCompletionEventCreate) SetTimestamp(v time.Time) *AssignmentCompletionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AssignmentCompletionEventCreate) SetNillableTimestamp(v *time.Time) *AssignmentCompletionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetGroupID sets the "group_id" field.
func (_c *AssignmentCompletionEventCreate) SetGroupID(v string) *AssignmentCompletionEventCreate {
	_c.mutation.SetGroupID(v)
	return _c
}

// SetEnrollmentID sets the "enrollment_id" field.
func (_c *AssignmentCompletionEventCreate) SetEnrollmentID(v string) *AssignmentCompletionEventCreate {
	_c.mutation.SetEnrollmentID(v)
	return _c
}

// SetAssignmentID sets the "assignment_id" field.
func (_c *AssignmentCompletionEventCreate) SetAssignmentID(v string) *AssignmentCompletionEventCreate {
	_c.mutation.SetAssignmentID(v)
	return _c
}

// SetLessonID sets the "lesson_id" field.
func (_c *AssignmentCompletionEventCreate) SetLessonID(v string) *AssignmentCompletionEventCreate {
	_c.mutation.SetLessonID(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *AssignmentCompletionEventCreate) SetScore(v float64) *AssignmentCompletionEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetDelayed sets the "delayed" field.
func (_c *AssignmentCompletionEventCreate) SetDelayed(v bool) *AssignmentCompletionEventCreate {
	_c.mutation.SetDelayed(v)
	return _c
}

// SetNillableDelayed sets the "delayed" field if the given value is not nil.
func (_c *AssignmentCompletionEventCreate) SetNillableDelayed(v *bool) *AssignmentCompletionEventCreate {
	if v != nil {
		_c.SetDelayed(*v)
	}
	return _c
}

// Mutation returns the AssignmentCompletionEventMutation object of the builder.
func (_c *AssignmentCompletionEventCreate) Mutation() *AssignmentCompletionEventMutation {
	return _c.mutation
}

// Save creates the AssignmentCompletionEvent in the database.
func (_c *AssignmentCompletionEventCreate) Save(ctx context.Context) (*AssignmentCompletionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssignmentCompletionEventCreate) SaveX(ctx context.Context) *AssignmentCompletionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssignmentCompletionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssignmentCompletionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssignmentCompletionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := assignmentcompletionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Delayed(); !ok {
		v := assignmentcompletionevent.DefaultDelayed
		_c.mutation.SetDelayed(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssignmentCompletionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AssignmentCompletionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AssignmentCompletionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.GroupID(); !ok {
		return &ValidationError{Name: "group_id", err: errors.New(`ent: missing required field "AssignmentCompletionEvent.group_id"`)}
	}
	if v, ok := _c.mutation.GroupID(); ok {
		if err := assignmentcompletionevent.GroupIDValidator(v); err != nil {
			return &ValidationError{Name: "group_id", err: fmt.Errorf(`ent: validator failed for field "AssignmentCompletionEvent.group_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EnrollmentID(); !ok {
		return &ValidationError{Name: "enrollment_id", err: errors.New(`ent: missing required field "AssignmentCompletionEvent.enrollment_id"`)}
	}
	if v, ok := _c.mutation.EnrollmentID(); ok {
		if err := assignmentcompletionevent.EnrollmentIDValidator(v); err != nil {
			return &ValidationError{Name: "enrollment_id", err: fmt.Errorf(`ent: validator failed for field "AssignmentCompletionEvent.enrollment_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AssignmentID(); !ok {
		return &ValidationError{Name: "assignment_id", err: errors.New(`ent: missing required field "AssignmentCompletionEvent.assignment_id"`)}
	}
	if v, ok := _c.mutation.AssignmentID(); ok {
		if err := assignmentcompletionevent.AssignmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assignment_id", err: fmt.Errorf(`ent: validator failed for field "AssignmentCompletionEvent.assignment_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`ent: missing required field "AssignmentCompletionEvent.lesson_id"`)}
	}
	if v, ok := _c.mutation.LessonID(); ok {
		if err := assignmentcompletionevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "AssignmentCompletionEvent.lesson_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "AssignmentCompletionEvent.score"`)}
	}
	if _, ok := _c.mutation.Delayed(); !ok {
		return &ValidationError{Name: "delayed", err: errors.New(`ent: missing required field "AssignmentCompletionEvent.delayed"`)}
	}
	return nil
}

func (_c *AssignmentCompletionEventCreate) sqlSave(ctx context.Context) (*AssignmentCompletionEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AssignmentCompletionEventCreate) createSpec() (*AssignmentCompletionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AssignmentCompletionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assignmentcompletionevent.Table, sqlgraph.NewFieldSpec(assignmentcompletionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(assignmentcompletionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(assignmentcompletionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.GroupID(); ok {
		_spec.SetField(assignmentcompletionevent.FieldGroupID, field.TypeString, value)
		_node.GroupID = value
	}
	if value, ok := _c.mutation.EnrollmentID(); ok {
		_spec.SetField(assignmentcompletionevent.FieldEnrollmentID, field.TypeString, value)
		_node.EnrollmentID = value
	}
	if value, ok := _c.mutation.AssignmentID(); ok {
		_spec.SetField(assignmentcompletionevent.FieldAssignmentID, field.TypeString, value)
		_node.AssignmentID = value
	}
	if value, ok := _c.mutation.LessonID(); ok {
		_spec.SetField(assignmentcompletionevent.FieldLessonID, field.TypeString, value)
		_node.LessonID = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(assignmentcompletionevent.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Delayed(); ok {
		_spec.SetField(assignmentcompletionevent.FieldDelayed, field.TypeBool, value)
		_node.Delayed = value
	}
	return _node, _spec
}

// AssignmentCompletionEventCreateBulk is the builder for creating many AssignmentCompletionEvent entities in bulk.
type AssignmentCompletionEventCreateBulk struct {
	config
	err      error
	builders []*AssignmentCompletionEventCreate
}

// Save creates the AssignmentCompletionEvent entities in the database.
func (_c *AssignmentCompletionEventCreateBulk) Save(ctx context.Context) ([]*AssignmentCompletionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AssignmentCompletionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssignmentCompletionEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AssignmentCompletionEventCreateBulk) SaveX(ctx context.Context) []*AssignmentCompletionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssignmentCompletionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssignmentCompletionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
