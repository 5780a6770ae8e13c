// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/paceseed/ent/questionevent"
)

// QuestionEventCreate is the builder for creating a QuestionEvent entity.
type QuestionEventCreate struct {
	config
	mutation *QuestionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *QuestionEventCreate) SetSequence(v int64) *QuestionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *QuestionEventCreate) SetTimestamp(v time.Time) *QuestionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *QuestionEventCreate) SetNillableTimestamp(v *time.Time) *QuestionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetGroupID sets the "group_id" field.
func (_c *QuestionEventCreate) SetGroupID(v string) *QuestionEventCreate {
	_c.mutation.SetGroupID(v)
	return _c
}

// SetEnrollmentID sets the "enrollment_id" field.
func (_c *QuestionEventCreate) SetEnrollmentID(v string) *QuestionEventCreate {
	_c.mutation.SetEnrollmentID(v)
	return _c
}

// SetLessonID sets the "lesson_id" field.
func (_c *QuestionEventCreate) SetLessonID(v string) *QuestionEventCreate {
	_c.mutation.SetLessonID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *QuestionEventCreate) SetQuestionID(v string) *QuestionEventCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetAssignmentQuestionID sets the "assignment_question_id" field.
func (_c *QuestionEventCreate) SetAssignmentQuestionID(v string) *QuestionEventCreate {
	_c.mutation.SetAssignmentQuestionID(v)
	return _c
}

// SetKnowledgeComponentID sets the "knowledge_component_id" field.
func (_c *QuestionEventCreate) SetKnowledgeComponentID(v string) *QuestionEventCreate {
	_c.mutation.SetKnowledgeComponentID(v)
	return _c
}

// SetNillableKnowledgeComponentID sets the "knowledge_component_id" field if the given value is not nil.
func (_c *QuestionEventCreate) SetNillableKnowledgeComponentID(v *string) *QuestionEventCreate {
	if v != nil {
		_c.SetKnowledgeComponentID(*v)
	}
	return _c
}

// SetAction sets the "action" field.
func (_c *QuestionEventCreate) SetAction(v string) *QuestionEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *QuestionEventCreate) SetCorrect(v bool) *QuestionEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_c *QuestionEventCreate) SetNillableCorrect(v *bool) *QuestionEventCreate {
	if v != nil {
		_c.SetCorrect(*v)
	}
	return _c
}

// Mutation returns the QuestionEventMutation object of the builder.
func (_c *QuestionEventCreate) Mutation() *QuestionEventMutation {
	return _c.mutation
}

// Save creates the QuestionEvent in the database.
func (_c *QuestionEventCreate) Save(ctx context.Context) (*QuestionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionEventCreate) SaveX(ctx context.Context) *QuestionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := questionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Correct(); !ok {
		v := questionevent.DefaultCorrect
		_c.mutation.SetCorrect(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "QuestionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "QuestionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.GroupID(); !ok {
		return &ValidationError{Name: "group_id", err: errors.New(`ent: missing required field "QuestionEvent.group_id"`)}
	}
	if v, ok := _c.mutation.GroupID(); ok {
		if err := questionevent.GroupIDValidator(v); err != nil {
			return &ValidationError{Name: "group_id", err: fmt.Errorf(`ent: validator failed for field "QuestionEvent.group_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EnrollmentID(); !ok {
		return &ValidationError{Name: "enrollment_id", err: errors.New(`ent: missing required field "QuestionEvent.enrollment_id"`)}
	}
	if v, ok := _c.mutation.EnrollmentID(); ok {
		if err := questionevent.EnrollmentIDValidator(v); err != nil {
			return &ValidationError{Name: "enrollment_id", err: fmt.Errorf(`ent: validator failed for field "QuestionEvent.enrollment_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`ent: missing required field "QuestionEvent.lesson_id"`)}
	}
	if v, ok := _c.mutation.LessonID(); ok {
		if err := questionevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "QuestionEvent.lesson_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "QuestionEvent.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := questionevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "QuestionEvent.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AssignmentQuestionID(); !ok {
		return &ValidationError{Name: "assignment_question_id", err: errors.New(`ent: missing required field "QuestionEvent.assignment_question_id"`)}
	}
	if v, ok := _c.mutation.AssignmentQuestionID(); ok {
		if err := questionevent.AssignmentQuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "assignment_question_id", err: fmt.Errorf(`ent: validator failed for field "QuestionEvent.assignment_question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "QuestionEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := questionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "QuestionEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "QuestionEvent.correct"`)}
	}
	return nil
}

func (_c *QuestionEventCreate) sqlSave(ctx context.Context) (*QuestionEvent, error) {
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

func (_c *QuestionEventCreate) createSpec() (*QuestionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &QuestionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(questionevent.Table, sqlgraph.NewFieldSpec(questionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(questionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(questionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.GroupID(); ok {
		_spec.SetField(questionevent.FieldGroupID, field.TypeString, value)
		_node.GroupID = value
	}
	if value, ok := _c.mutation.EnrollmentID(); ok {
		_spec.SetField(questionevent.FieldEnrollmentID, field.TypeString, value)
		_node.EnrollmentID = value
	}
	if value, ok := _c.mutation.LessonID(); ok {
		_spec.SetField(questionevent.FieldLessonID, field.TypeString, value)
		_node.LessonID = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(questionevent.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.AssignmentQuestionID(); ok {
		_spec.SetField(questionevent.FieldAssignmentQuestionID, field.TypeString, value)
		_node.AssignmentQuestionID = value
	}
	if value, ok := _c.mutation.KnowledgeComponentID(); ok {
		_spec.SetField(questionevent.FieldKnowledgeComponentID, field.TypeString, value)
		_node.KnowledgeComponentID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(questionevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(questionevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	return _node, _spec
}

// QuestionEventCreateBulk is the builder for creating many QuestionEvent entities in bulk.
type QuestionEventCreateBulk struct {
	config
	err      error
	builders []*QuestionEventCreate
}

// Save creates the QuestionEvent entities in the database.
func (_c *QuestionEventCreateBulk) Save(ctx context.Context) ([]*QuestionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuestionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionEventMutation)
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
func (_c *QuestionEventCreateBulk) SaveX(ctx context.Context) []*QuestionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
