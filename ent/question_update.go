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
	"github.com/abhisek/paceseed/ent/question"
)

// QuestionUpdate is the builder for updating Question entities.
type QuestionUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionMutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdate) Where(ps ...predicate.Question) *QuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPublicID sets the "public_id" field.
func (_u *QuestionUpdate) SetPublicID(v string) *QuestionUpdate {
	_u.mutation.SetPublicID(v)
	return _u
}

// SetNillablePublicID sets the "public_id" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillablePublicID(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetPublicID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *QuestionUpdate) SetLessonID(v string) *QuestionUpdate {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableLessonID(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *QuestionUpdate) SetPosition(v int) *QuestionUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillablePosition(v *int) *QuestionUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *QuestionUpdate) AddPosition(v int) *QuestionUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetAssignmentQuestionID sets the "assignment_question_id" field.
func (_u *QuestionUpdate) SetAssignmentQuestionID(v string) *QuestionUpdate {
	_u.mutation.SetAssignmentQuestionID(v)
	return _u
}

// SetNillableAssignmentQuestionID sets the "assignment_question_id" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableAssignmentQuestionID(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetAssignmentQuestionID(*v)
	}
	return _u
}

// SetKnowledgeComponentID sets the "knowledge_component_id" field.
func (_u *QuestionUpdate) SetKnowledgeComponentID(v string) *QuestionUpdate {
	_u.mutation.SetKnowledgeComponentID(v)
	return _u
}

// SetNillableKnowledgeComponentID sets the "knowledge_component_id" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableKnowledgeComponentID(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetKnowledgeComponentID(*v)
	}
	return _u
}

// ClearKnowledgeComponentID clears the value of the "knowledge_component_id" field.
func (_u *QuestionUpdate) ClearKnowledgeComponentID() *QuestionUpdate {
	_u.mutation.ClearKnowledgeComponentID()
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *QuestionUpdate) SetPrompt(v string) *QuestionUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillablePrompt(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdate) Mutation() *QuestionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdate) check() error {
	if v, ok := _u.mutation.PublicID(); ok {
		if err := question.PublicIDValidator(v); err != nil {
			return &ValidationError{Name: "public_id", err: fmt.Errorf(`ent: validator failed for field "Question.public_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := question.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "Question.lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := question.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Question.position": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssignmentQuestionID(); ok {
		if err := question.AssignmentQuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "assignment_question_id", err: fmt.Errorf(`ent: validator failed for field "Question.assignment_question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := question.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "Question.prompt": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PublicID(); ok {
		_spec.SetField(question.FieldPublicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(question.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(question.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(question.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AssignmentQuestionID(); ok {
		_spec.SetField(question.FieldAssignmentQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.KnowledgeComponentID(); ok {
		_spec.SetField(question.FieldKnowledgeComponentID, field.TypeString, value)
	}
	if _u.mutation.KnowledgeComponentIDCleared() {
		_spec.ClearField(question.FieldKnowledgeComponentID, field.TypeString)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(question.FieldPrompt, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionUpdateOne is the builder for updating a single Question entity.
type QuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionMutation
}

// SetPublicID sets the "public_id" field.
func (_u *QuestionUpdateOne) SetPublicID(v string) *QuestionUpdateOne {
	_u.mutation.SetPublicID(v)
	return _u
}

// SetNillablePublicID sets the "public_id" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillablePublicID(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetPublicID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *QuestionUpdateOne) SetLessonID(v string) *QuestionUpdateOne {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableLessonID(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *QuestionUpdateOne) SetPosition(v int) *QuestionUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillablePosition(v *int) *QuestionUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *QuestionUpdateOne) AddPosition(v int) *QuestionUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetAssignmentQuestionID sets the "assignment_question_id" field.
func (_u *QuestionUpdateOne) SetAssignmentQuestionID(v string) *QuestionUpdateOne {
	_u.mutation.SetAssignmentQuestionID(v)
	return _u
}

// SetNillableAssignmentQuestionID sets the "assignment_question_id" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableAssignmentQuestionID(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetAssignmentQuestionID(*v)
	}
	return _u
}

// SetKnowledgeComponentID sets the "knowledge_component_id" field.
func (_u *QuestionUpdateOne) SetKnowledgeComponentID(v string) *QuestionUpdateOne {
	_u.mutation.SetKnowledgeComponentID(v)
	return _u
}

// SetNillableKnowledgeComponentID sets the "knowledge_component_id" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableKnowledgeComponentID(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetKnowledgeComponentID(*v)
	}
	return _u
}

// ClearKnowledgeComponentID clears the value of the "knowledge_component_id" field.
func (_u *QuestionUpdateOne) ClearKnowledgeComponentID() *QuestionUpdateOne {
	_u.mutation.ClearKnowledgeComponentID()
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *QuestionUpdateOne) SetPrompt(v string) *QuestionUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillablePrompt(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdateOne) Mutation() *QuestionMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdateOne) Where(ps ...predicate.Question) *QuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionUpdateOne) Select(field string, fields ...string) *QuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Question entity.
func (_u *QuestionUpdateOne) Save(ctx context.Context) (*Question, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdateOne) SaveX(ctx context.Context) *Question {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdateOne) check() error {
	if v, ok := _u.mutation.PublicID(); ok {
		if err := question.PublicIDValidator(v); err != nil {
			return &ValidationError{Name: "public_id", err: fmt.Errorf(`ent: validator failed for field "Question.public_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := question.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "Question.lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := question.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Question.position": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssignmentQuestionID(); ok {
		if err := question.AssignmentQuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "assignment_question_id", err: fmt.Errorf(`ent: validator failed for field "Question.assignment_question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := question.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "Question.prompt": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionUpdateOne) sqlSave(ctx context.Context) (_node *Question, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Question.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, question.FieldID)
		for _, f := range fields {
			if !question.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != question.FieldID {
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
		_spec.SetField(question.FieldPublicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(question.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(question.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(question.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AssignmentQuestionID(); ok {
		_spec.SetField(question.FieldAssignmentQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.KnowledgeComponentID(); ok {
		_spec.SetField(question.FieldKnowledgeComponentID, field.TypeString, value)
	}
	if _u.mutation.KnowledgeComponentIDCleared() {
		_spec.ClearField(question.FieldKnowledgeComponentID, field.TypeString)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(question.FieldPrompt, field.TypeString, value)
	}
	_node = &Question{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
