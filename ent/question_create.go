// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/paceseed/ent/question"
)

// QuestionCreate is the builder for creating a Question entity.
type QuestionCreate struct {
	config
	mutation *QuestionMutation
	hooks    []Hook
}

// SetPublicID sets the "public_id" field.
func (_c *QuestionCreate) SetPublicID(v string) *QuestionCreate {
	_c.mutation.SetPublicID(v)
	return _c
}

// SetLessonID sets the "lesson_id" field.
func (_c *QuestionCreate) SetLessonID(v string) *QuestionCreate {
	_c.mutation.SetLessonID(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *QuestionCreate) SetPosition(v int) *QuestionCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetAssignmentQuestionID sets the "assignment_question_id" field.
func (_c *QuestionCreate) SetAssignmentQuestionID(v string) *QuestionCreate {
	_c.mutation.SetAssignmentQuestionID(v)
	return _c
}

// SetKnowledgeComponentID sets the "knowledge_component_id" field.
func (_c *QuestionCreate) SetKnowledgeComponentID(v string) *QuestionCreate {
	_c.mutation.SetKnowledgeComponentID(v)
	return _c
}

// SetNillableKnowledgeComponentID sets the "knowledge_component_id" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableKnowledgeComponentID(v *string) *QuestionCreate {
	if v != nil {
		_c.SetKnowledgeComponentID(*v)
	}
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *QuestionCreate) SetPrompt(v string) *QuestionCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// Mutation returns the QuestionMutation object of the builder.
func (_c *QuestionCreate) Mutation() *QuestionMutation {
	return _c.mutation
}

// Save creates the Question in the database.
func (_c *QuestionCreate) Save(ctx context.Context) (*Question, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionCreate) SaveX(ctx context.Context) *Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionCreate) check() error {
	if _, ok := _c.mutation.PublicID(); !ok {
		return &ValidationError{Name: "public_id", err: errors.New(`ent: missing required field "Question.public_id"`)}
	}
	if v, ok := _c.mutation.PublicID(); ok {
		if err := question.PublicIDValidator(v); err != nil {
			return &ValidationError{Name: "public_id", err: fmt.Errorf(`ent: validator failed for field "Question.public_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`ent: missing required field "Question.lesson_id"`)}
	}
	if v, ok := _c.mutation.LessonID(); ok {
		if err := question.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "Question.lesson_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "Question.position"`)}
	}
	if v, ok := _c.mutation.Position(); ok {
		if err := question.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Question.position": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AssignmentQuestionID(); !ok {
		return &ValidationError{Name: "assignment_question_id", err: errors.New(`ent: missing required field "Question.assignment_question_id"`)}
	}
	if v, ok := _c.mutation.AssignmentQuestionID(); ok {
		if err := question.AssignmentQuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "assignment_question_id", err: fmt.Errorf(`ent: validator failed for field "Question.assignment_question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "Question.prompt"`)}
	}
	if v, ok := _c.mutation.Prompt(); ok {
		if err := question.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "Question.prompt": %w`, err)}
		}
	}
	return nil
}

func (_c *QuestionCreate) sqlSave(ctx context.Context) (*Question, error) {
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

func (_c *QuestionCreate) createSpec() (*Question, *sqlgraph.CreateSpec) {
	var (
		_node = &Question{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(question.Table, sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.PublicID(); ok {
		_spec.SetField(question.FieldPublicID, field.TypeString, value)
		_node.PublicID = value
	}
	if value, ok := _c.mutation.LessonID(); ok {
		_spec.SetField(question.FieldLessonID, field.TypeString, value)
		_node.LessonID = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(question.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.AssignmentQuestionID(); ok {
		_spec.SetField(question.FieldAssignmentQuestionID, field.TypeString, value)
		_node.AssignmentQuestionID = value
	}
	if value, ok := _c.mutation.KnowledgeComponentID(); ok {
		_spec.SetField(question.FieldKnowledgeComponentID, field.TypeString, value)
		_node.KnowledgeComponentID = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(question.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	return _node, _spec
}

// QuestionCreateBulk is the builder for creating many Question entities in bulk.
type QuestionCreateBulk struct {
	config
	err      error
	builders []*QuestionCreate
}

// Save creates the Question entities in the database.
func (_c *QuestionCreateBulk) Save(ctx context.Context) ([]*Question, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Question, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionMutation)
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
func (_c *QuestionCreateBulk) SaveX(ctx context.Context) []*Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
