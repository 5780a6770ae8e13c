// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/paceseed/ent/lessoncompletionevent"
)

// LessonCompletionEventCreate is the builder for creating a LessonCompletionEvent entity.
type LessonCompletionEventCreate struct {
	config
	mutation *LessonCompletionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *LessonCompletionEventCreate) SetSequence(v int64) *LessonCompletionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *LessonCompletionEventCreate) SetTimestamp(v time.Time) *LessonCompletionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *LessonCompletionEventCreate) SetNillableTimestamp(v *time.Time) *LessonCompletionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetGroupID sets the "group_id" field.
func (_c *LessonCompletionEventCreate) SetGroupID(v string) *LessonCompletionEventCreate {
	_c.mutation.SetGroupID(v)
	return _c
}

// SetEnrollmentID sets the "enrollment_id" field.
func (_c *LessonCompletionEventCreate) SetEnrollmentID(v string) *LessonCompletionEventCreate {
	_c.mutation.SetEnrollmentID(v)
	return _c
}

// SetLessonID sets the "lesson_id" field.
func (_c *LessonCompletionEventCreate) SetLessonID(v string) *LessonCompletionEventCreate {
	_c.mutation.SetLessonID(v)
	return _c
}

// SetModuleID sets the "module_id" field.
func (_c *LessonCompletionEventCreate) SetModuleID(v string) *LessonCompletionEventCreate {
	_c.mutation.SetModuleID(v)
	return _c
}

// SetQuestionsAnswered sets the "questions_answered" field.
func (_c *LessonCompletionEventCreate) SetQuestionsAnswered(v int) *LessonCompletionEventCreate {
	_c.mutation.SetQuestionsAnswered(v)
	return _c
}

// Mutation returns the LessonCompletionEventMutation object of the builder.
func (_c *LessonCompletionEventCreate) Mutation() *LessonCompletionEventMutation {
	return _c.mutation
}

// Save creates the LessonCompletionEvent in the database.
func (_c *LessonCompletionEventCreate) Save(ctx context.Context) (*LessonCompletionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LessonCompletionEventCreate) SaveX(ctx context.Context) *LessonCompletionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonCompletionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonCompletionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LessonCompletionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := lessoncompletionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LessonCompletionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "LessonCompletionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "LessonCompletionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.GroupID(); !ok {
		return &ValidationError{Name: "group_id", err: errors.New(`ent: missing required field "LessonCompletionEvent.group_id"`)}
	}
	if v, ok := _c.mutation.GroupID(); ok {
		if err := lessoncompletionevent.GroupIDValidator(v); err != nil {
			return &ValidationError{Name: "group_id", err: fmt.Errorf(`ent: validator failed for field "LessonCompletionEvent.group_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EnrollmentID(); !ok {
		return &ValidationError{Name: "enrollment_id", err: errors.New(`ent: missing required field "LessonCompletionEvent.enrollment_id"`)}
	}
	if v, ok := _c.mutation.EnrollmentID(); ok {
		if err := lessoncompletionevent.EnrollmentIDValidator(v); err != nil {
			return &ValidationError{Name: "enrollment_id", err: fmt.Errorf(`ent: validator failed for field "LessonCompletionEvent.enrollment_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`ent: missing required field "LessonCompletionEvent.lesson_id"`)}
	}
	if v, ok := _c.mutation.LessonID(); ok {
		if err := lessoncompletionevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "LessonCompletionEvent.lesson_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ModuleID(); !ok {
		return &ValidationError{Name: "module_id", err: errors.New(`ent: missing required field "LessonCompletionEvent.module_id"`)}
	}
	if v, ok := _c.mutation.ModuleID(); ok {
		if err := lessoncompletionevent.ModuleIDValidator(v); err != nil {
			return &ValidationError{Name: "module_id", err: fmt.Errorf(`ent: validator failed for field "LessonCompletionEvent.module_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionsAnswered(); !ok {
		return &ValidationError{Name: "questions_answered", err: errors.New(`ent: missing required field "LessonCompletionEvent.questions_answered"`)}
	}
	return nil
}

func (_c *LessonCompletionEventCreate) sqlSave(ctx context.Context) (*LessonCompletionEvent, error) {
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

func (_c *LessonCompletionEventCreate) createSpec() (*LessonCompletionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &LessonCompletionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lessoncompletionevent.Table, sqlgraph.NewFieldSpec(lessoncompletionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(lessoncompletionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(lessoncompletionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.GroupID(); ok {
		_spec.SetField(lessoncompletionevent.FieldGroupID, field.TypeString, value)
		_node.GroupID = value
	}
	if value, ok := _c.mutation.EnrollmentID(); ok {
		_spec.SetField(lessoncompletionevent.FieldEnrollmentID, field.TypeString, value)
		_node.EnrollmentID = value
	}
	if value, ok := _c.mutation.LessonID(); ok {
		_spec.SetField(lessoncompletionevent.FieldLessonID, field.TypeString, value)
		_node.LessonID = value
	}
	if value, ok := _c.mutation.ModuleID(); ok {
		_spec.SetField(lessoncompletionevent.FieldModuleID, field.TypeString, value)
		_node.ModuleID = value
	}
	if value, ok := _c.mutation.QuestionsAnswered(); ok {
		_spec.SetField(lessoncompletionevent.FieldQuestionsAnswered, field.TypeInt, value)
		_node.QuestionsAnswered = value
	}
	return _node, _spec
}

// LessonCompletionEventCreateBulk is the builder for creating many LessonCompletionEvent entities in bulk.
type LessonCompletionEventCreateBulk struct {
	config
	err      error
	builders []*LessonCompletionEventCreate
}

// Save creates the LessonCompletionEvent entities in the database.
func (_c *LessonCompletionEventCreateBulk) Save(ctx context.Context) ([]*LessonCompletionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LessonCompletionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LessonCompletionEventMutation)
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
func (_c *LessonCompletionEventCreateBulk) SaveX(ctx context.Context) []*LessonCompletionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonCompletionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonCompletionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
