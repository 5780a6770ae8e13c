// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/paceseed/ent/assessmentresponseevent"
)

// AssessmentResponseEventCreate is the builder for creating a AssessmentResponseEvent entity.
type AssessmentResponseEventCreate struct {
	config
	mutation *AssessmentResponseEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AssessmentResponseEventCreate) SetSequence(v int64) *AssessmentResponseEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AssessmentResponseEventCreate) SetTimestamp(v time.Time) *AssessmentResponseEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AssessmentResponseEventCreate) SetNillableTimestamp(v *time.Time) *AssessmentResponseEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetGroupID sets the "group_id" field.
func (_c *AssessmentResponseEventCreate) SetGroupID(v string) *AssessmentResponseEventCreate {
	_c.mutation.SetGroupID(v)
	return _c
}

// SetEnrollmentID sets the "enrollment_id" field.
func (_c *AssessmentResponseEventCreate) SetEnrollmentID(v string) *AssessmentResponseEventCreate {
	_c.mutation.SetEnrollmentID(v)
	return _c
}

// SetAssessmentID sets the "assessment_id" field.
func (_c *AssessmentResponseEventCreate) SetAssessmentID(v string) *AssessmentResponseEventCreate {
	_c.mutation.SetAssessmentID(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *AssessmentResponseEventCreate) SetScore(v float64) *AssessmentResponseEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetQuestionsAnswered sets the "questions_answered" field.
func (_c *AssessmentResponseEventCreate) SetQuestionsAnswered(v int) *AssessmentResponseEventCreate {
	_c.mutation.SetQuestionsAnswered(v)
	return _c
}

// Mutation returns the AssessmentResponseEventMutation object of the builder.
func (_c *AssessmentResponseEventCreate) Mutation() *AssessmentResponseEventMutation {
	return _c.mutation
}

// Save creates the AssessmentResponseEvent in the database.
func (_c *AssessmentResponseEventCreate) Save(ctx context.Context) (*AssessmentResponseEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssessmentResponseEventCreate) SaveX(ctx context.Context) *AssessmentResponseEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentResponseEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentResponseEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssessmentResponseEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := assessmentresponseevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssessmentResponseEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AssessmentResponseEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AssessmentResponseEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.GroupID(); !ok {
		return &ValidationError{Name: "group_id", err: errors.New(`ent: missing required field "AssessmentResponseEvent.group_id"`)}
	}
	if v, ok := _c.mutation.GroupID(); ok {
		if err := assessmentresponseevent.GroupIDValidator(v); err != nil {
			return &ValidationError{Name: "group_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentResponseEvent.group_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EnrollmentID(); !ok {
		return &ValidationError{Name: "enrollment_id", err: errors.New(`ent: missing required field "AssessmentResponseEvent.enrollment_id"`)}
	}
	if v, ok := _c.mutation.EnrollmentID(); ok {
		if err := assessmentresponseevent.EnrollmentIDValidator(v); err != nil {
			return &ValidationError{Name: "enrollment_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentResponseEvent.enrollment_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AssessmentID(); !ok {
		return &ValidationError{Name: "assessment_id", err: errors.New(`ent: missing required field "AssessmentResponseEvent.assessment_id"`)}
	}
	if v, ok := _c.mutation.AssessmentID(); ok {
		if err := assessmentresponseevent.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentResponseEvent.assessment_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "AssessmentResponseEvent.score"`)}
	}
	if _, ok := _c.mutation.QuestionsAnswered(); !ok {
		return &ValidationError{Name: "questions_answered", err: errors.New(`ent: missing required field "AssessmentResponseEvent.questions_answered"`)}
	}
	return nil
}

func (_c *AssessmentResponseEventCreate) sqlSave(ctx context.Context) (*AssessmentResponseEvent, error) {
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

func (_c *AssessmentResponseEventCreate) createSpec() (*AssessmentResponseEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AssessmentResponseEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assessmentresponseevent.Table, sqlgraph.NewFieldSpec(assessmentresponseevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(assessmentresponseevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(assessmentresponseevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.GroupID(); ok {
		_spec.SetField(assessmentresponseevent.FieldGroupID, field.TypeString, value)
		_node.GroupID = value
	}
	if value, ok := _c.mutation.EnrollmentID(); ok {
		_spec.SetField(assessmentresponseevent.FieldEnrollmentID, field.TypeString, value)
		_node.EnrollmentID = value
	}
	if value, ok := _c.mutation.AssessmentID(); ok {
		_spec.SetField(assessmentresponseevent.FieldAssessmentID, field.TypeString, value)
		_node.AssessmentID = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(assessmentresponseevent.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.QuestionsAnswered(); ok {
		_spec.SetField(assessmentresponseevent.FieldQuestionsAnswered, field.TypeInt, value)
		_node.QuestionsAnswered = value
	}
	return _node, _spec
}

// AssessmentResponseEventCreateBulk is the builder for creating many AssessmentResponseEvent entities in bulk.
type AssessmentResponseEventCreateBulk struct {
	config
	err      error
	builders []*AssessmentResponseEventCreate
}

// Save creates the AssessmentResponseEvent entities in the database.
func (_c *AssessmentResponseEventCreateBulk) Save(ctx context.Context) ([]*AssessmentResponseEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AssessmentResponseEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssessmentResponseEventMutation)
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
func (_c *AssessmentResponseEventCreateBulk) SaveX(ctx context.Context) []*AssessmentResponseEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentResponseEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentResponseEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
