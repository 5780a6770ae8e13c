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
	"github.com/abhisek/paceseed/ent/questionevent"
)

// QuestionEventUpdate is the builder for updating QuestionEvent entities.
type QuestionEventUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionEventMutation
}

// Where appends a list predicates to the QuestionEventUpdate builder.
func (_u *QuestionEventUpdate) Where(ps ...predicate.QuestionEvent) *QuestionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEnrollmentID sets the "enrollment_id" field.
func (_u *QuestionEventUpdate) SetEnrollmentID(v string) *QuestionEventUpdate {
	_u.mutation.SetEnrollmentID(v)
	return _u
}

// SetNillableEnrollmentID sets the "enrollment_id" field if the given value is not nil.
func (_u *QuestionEventUpdate) SetNillableEnrollmentID(v *string) *QuestionEventUpdate {
	if v != nil {
		_u.SetEnrollmentID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *QuestionEventUpdate) SetLessonID(v string) *QuestionEventUpdate {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *QuestionEventUpdate) SetNillableLessonID(v *string) *QuestionEventUpdate {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *QuestionEventUpdate) SetQuestionID(v string) *QuestionEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *QuestionEventUpdate) SetNillableQuestionID(v *string) *QuestionEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetAssignmentQuestionID sets the "assignment_question_id" field.
func (_u *QuestionEventUpdate) SetAssignmentQuestionID(v string) *QuestionEventUpdate {
	_u.mutation.SetAssignmentQuestionID(v)
	return _u
}

// SetNillableAssignmentQuestionID sets the "assignment_question_id" field if the given value is not nil.
func (_u *QuestionEventUpdate) SetNillableAssignmentQuestionID(v *string) *QuestionEventUpdate {
	if v != nil {
		_u.SetAssignmentQuestionID(*v)
	}
	return _u
}

// SetKnowledgeComponentID sets the "knowledge_component_id" field.
func (_u *QuestionEventUpdate) SetKnowledgeComponentID(v string) *QuestionEventUpdate {
	_u.mutation.SetKnowledgeComponentID(v)
	return _u
}

// SetNillableKnowledgeComponentID sets the "knowledge_component_id" field if the given value is not nil.
func (_u *QuestionEventUpdate) SetNillableKnowledgeComponentID(v *string) *QuestionEventUpdate {
	if v != nil {
		_u.SetKnowledgeComponentID(*v)
	}
	return _u
}

// ClearKnowledgeComponentID clears the value of the "knowledge_component_id" field.
func (_u *QuestionEventUpdate) ClearKnowledgeComponentID() *QuestionEventUpdate {
	_u.mutation.ClearKnowledgeComponentID()
	return _u
}

// SetAction sets the "action" field.
func (_u *QuestionEventUpdate) SetAction(v string) *QuestionEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *QuestionEventUpdate) SetNillableAction(v *string) *QuestionEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *QuestionEventUpdate) SetCorrect(v bool) *QuestionEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *QuestionEventUpdate) SetNillableCorrect(v *bool) *QuestionEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// Mutation returns the QuestionEventMutation object of the builder.
func (_u *QuestionEventUpdate) Mutation() *QuestionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionEventUpdate) check() error {
	if v, ok := _u.mutation.EnrollmentID(); ok {
		if err := questionevent.EnrollmentIDValidator(v); err != nil {
			return &ValidationError{Name: "enrollment_id", err: fmt.Errorf(`ent: validator failed for field "QuestionEvent.enrollment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := questionevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "QuestionEvent.lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := questionevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "QuestionEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssignmentQuestionID(); ok {
		if err := questionevent.AssignmentQuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "assignment_question_id", err: fmt.Errorf(`ent: validator failed for field "QuestionEvent.assignment_question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := questionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "QuestionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionevent.Table, questionevent.Columns, sqlgraph.NewFieldSpec(questionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EnrollmentID(); ok {
		_spec.SetField(questionevent.FieldEnrollmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(questionevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(questionevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssignmentQuestionID(); ok {
		_spec.SetField(questionevent.FieldAssignmentQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.KnowledgeComponentID(); ok {
		_spec.SetField(questionevent.FieldKnowledgeComponentID, field.TypeString, value)
	}
	if _u.mutation.KnowledgeComponentIDCleared() {
		_spec.ClearField(questionevent.FieldKnowledgeComponentID, field.TypeString)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(questionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(questionevent.FieldCorrect, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionEventUpdateOne is the builder for updating a single QuestionEvent entity.
type QuestionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionEventMutation
}

// SetEnrollmentID sets the "enrollment_id" field.
func (_u *QuestionEventUpdateOne) SetEnrollmentID(v string) *QuestionEventUpdateOne {
	_u.mutation.SetEnrollmentID(v)
	return _u
}

// SetNillableEnrollmentID sets the "enrollment_id" field if the given value is not nil.
func (_u *QuestionEventUpdateOne) SetNillableEnrollmentID(v *string) *QuestionEventUpdateOne {
	if v != nil {
		_u.SetEnrollmentID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *QuestionEventUpdateOne) SetLessonID(v string) *QuestionEventUpdateOne {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *QuestionEventUpdateOne) SetNillableLessonID(v *string) *QuestionEventUpdateOne {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *QuestionEventUpdateOne) SetQuestionID(v string) *QuestionEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *QuestionEventUpdateOne) SetNillableQuestionID(v *string) *QuestionEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetAssignmentQuestionID sets the "assignment_question_id" field.
func (_u *QuestionEventUpdateOne) SetAssignmentQuestionID(v string) *QuestionEventUpdateOne {
	_u.mutation.SetAssignmentQuestionID(v)
	return _u
}

// SetNillableAssignmentQuestionID sets the "assignment_question_id" field if the given value is not nil.
func (_u *QuestionEventUpdateOne) SetNillableAssignmentQuestionID(v *string) *QuestionEventUpdateOne {
	if v != nil {
		_u.SetAssignmentQuestionID(*v)
	}
	return _u
}

// SetKnowledgeComponentID sets the "knowledge_component_id" field.
func (_u *QuestionEventUpdateOne) SetKnowledgeComponentID(v string) *QuestionEventUpdateOne {
	_u.mutation.SetKnowledgeComponentID(v)
	return _u
}

// SetNillableKnowledgeComponentID sets the "knowledge_component_id" field if the given value is not nil.
func (_u *QuestionEventUpdateOne) SetNillableKnowledgeComponentID(v *string) *QuestionEventUpdateOne {
	if v != nil {
		_u.SetKnowledgeComponentID(*v)
	}
	return _u
}

// ClearKnowledgeComponentID clears the value of the "knowledge_component_id" field.
func (_u *QuestionEventUpdateOne) ClearKnowledgeComponentID() *QuestionEventUpdateOne {
	_u.mutation.ClearKnowledgeComponentID()
	return _u
}

// SetAction sets the "action" field.
func (_u *QuestionEventUpdateOne) SetAction(v string) *QuestionEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *QuestionEventUpdateOne) SetNillableAction(v *string) *QuestionEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *QuestionEventUpdateOne) SetCorrect(v bool) *QuestionEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *QuestionEventUpdateOne) SetNillableCorrect(v *bool) *QuestionEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// Mutation returns the QuestionEventMutation object of the builder.
func (_u *QuestionEventUpdateOne) Mutation() *QuestionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuestionEventUpdate builder.
func (_u *QuestionEventUpdateOne) Where(ps ...predicate.QuestionEvent) *QuestionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionEventUpdateOne) Select(field string, fields ...string) *QuestionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuestionEvent entity.
func (_u *QuestionEventUpdateOne) Save(ctx context.Context) (*QuestionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionEventUpdateOne) SaveX(ctx context.Context) *QuestionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionEventUpdateOne) check() error {
	if v, ok := _u.mutation.EnrollmentID(); ok {
		if err := questionevent.EnrollmentIDValidator(v); err != nil {
			return &ValidationError{Name: "enrollment_id", err: fmt.Errorf(`ent: validator failed for field "QuestionEvent.enrollment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := questionevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "QuestionEvent.lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := questionevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "QuestionEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssignmentQuestionID(); ok {
		if err := questionevent.AssignmentQuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "assignment_question_id", err: fmt.Errorf(`ent: validator failed for field "QuestionEvent.assignment_question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := questionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "QuestionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionEventUpdateOne) sqlSave(ctx context.Context) (_node *QuestionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionevent.Table, questionevent.Columns, sqlgraph.NewFieldSpec(questionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuestionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, questionevent.FieldID)
		for _, f := range fields {
			if !questionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != questionevent.FieldID {
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
		_spec.SetField(questionevent.FieldEnrollmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(questionevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(questionevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssignmentQuestionID(); ok {
		_spec.SetField(questionevent.FieldAssignmentQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.KnowledgeComponentID(); ok {
		_spec.SetField(questionevent.FieldKnowledgeComponentID, field.TypeString, value)
	}
	if _u.mutation.KnowledgeComponentIDCleared() {
		_spec.ClearField(questionevent.FieldKnowledgeComponentID, field.TypeString)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(questionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(questionevent.FieldCorrect, field.TypeBool, value)
	}
	_node = &QuestionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
