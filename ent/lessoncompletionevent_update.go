// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/paceseed/ent/lessoncompletionevent"
	"github.com/abhisek/paceseed/ent/predicate"
)

// LessonCompletionEventUpdate is the builder for updating LessonCompletionEvent entities.
type LessonCompletionEventUpdate struct {
	config
	hooks    []Hook
	mutation *LessonCompletionEventMutation
}

// Where appends a list predicates to the LessonCompletionEventUpdate builder.
func (_u *LessonCompletionEventUpdate) Where(ps ...predicate.LessonCompletionEvent) *LessonCompletionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEnrollmentID sets the "enrollment_id" field.
func (_u *LessonCompletionEventUpdate) SetEnrollmentID(v string) *LessonCompletionEventUpdate {
	_u.mutation.SetEnrollmentID(v)
	return _u
}

// SetNillableEnrollmentID sets the "enrollment_id" field if the given value is not nil.
func (_u *LessonCompletionEventUpdate) SetNillableEnrollmentID(v *string) *LessonCompletionEventUpdate {
	if v != nil {
		_u.SetEnrollmentID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *LessonCompletionEventUpdate) SetLessonID(v string) *LessonCompletionEventUpdate {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *LessonCompletionEventUpdate) SetNillableLessonID(v *string) *LessonCompletionEventUpdate {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetModuleID sets the "module_id" field.
func (_u *LessonCompletionEventUpdate) SetModuleID(v string) *LessonCompletionEventUpdate {
	_u.mutation.SetModuleID(v)
	return _u
}

// SetNillableModuleID sets the "module_id" field if the given value is not nil.
func (_u *LessonCompletionEventUpdate) SetNillableModuleID(v *string) *LessonCompletionEventUpdate {
	if v != nil {
		_u.SetModuleID(*v)
	}
	return _u
}

// SetQuestionsAnswered sets the "questions_answered" field.
func (_u *LessonCompletionEventUpdate) SetQuestionsAnswered(v int) *LessonCompletionEventUpdate {
	_u.mutation.ResetQuestionsAnswered()
	_u.mutation.SetQuestionsAnswered(v)
	return _u
}

// SetNillableQuestionsAnswered sets the "questions_answered" field if the given value is not nil.
func (_u *LessonCompletionEventUpdate) SetNillableQuestionsAnswered(v *int) *LessonCompletionEventUpdate {
	if v != nil {
		_u.SetQuestionsAnswered(*v)
	}
	return _u
}

// AddQuestionsAnswered adds value to the "questions_answered" field.
func (_u *LessonCompletionEventUpdate) AddQuestionsAnswered(v int) *LessonCompletionEventUpdate {
	_u.mutation.AddQuestionsAnswered(v)
	return _u
}

// Mutation returns the LessonCompletionEventMutation object of the builder.
func (_u *LessonCompletionEventUpdate) Mutation() *LessonCompletionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LessonCompletionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonCompletionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LessonCompletionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonCompletionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonCompletionEventUpdate) check() error {
	if v, ok := _u.mutation.EnrollmentID(); ok {
		if err := lessoncompletionevent.EnrollmentIDValidator(v); err != nil {
			return &ValidationError{Name: "enrollment_id", err: fmt.Errorf(`ent: validator failed for field "LessonCompletionEvent.enrollment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := lessoncompletionevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "LessonCompletionEvent.lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModuleID(); ok {
		if err := lessoncompletionevent.ModuleIDValidator(v); err != nil {
			return &ValidationError{Name: "module_id", err: fmt.Errorf(`ent: validator failed for field "LessonCompletionEvent.module_id": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonCompletionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessoncompletionevent.Table, lessoncompletionevent.Columns, sqlgraph.NewFieldSpec(lessoncompletionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EnrollmentID(); ok {
		_spec.SetField(lessoncompletionevent.FieldEnrollmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(lessoncompletionevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModuleID(); ok {
		_spec.SetField(lessoncompletionevent.FieldModuleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionsAnswered(); ok {
		_spec.SetField(lessoncompletionevent.FieldQuestionsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAnswered(); ok {
		_spec.AddField(lessoncompletionevent.FieldQuestionsAnswered, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessoncompletionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LessonCompletionEventUpdateOne is the builder for updating a single LessonCompletionEvent entity.
type LessonCompletionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonCompletionEventMutation
}

// SetEnrollmentID sets the "enrollment_id" field.
func (_u *LessonCompletionEventUpdateOne) SetEnrollmentID(v string) *LessonCompletionEventUpdateOne {
	_u.mutation.SetEnrollmentID(v)
	return _u
}

// SetNillableEnrollmentID sets the "enrollment_id" field if the given value is not nil.
func (_u *LessonCompletionEventUpdateOne) SetNillableEnrollmentID(v *string) *LessonCompletionEventUpdateOne {
	if v != nil {
		_u.SetEnrollmentID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *LessonCompletionEventUpdateOne) SetLessonID(v string) *LessonCompletionEventUpdateOne {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *LessonCompletionEventUpdateOne) SetNillableLessonID(v *string) *LessonCompletionEventUpdateOne {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetModuleID sets the "module_id" field.
func (_u *LessonCompletionEventUpdateOne) SetModuleID(v string) *LessonCompletionEventUpdateOne {
	_u.mutation.SetModuleID(v)
	return _u
}

// SetNillableModuleID sets the "module_id" field if the given value is not nil.
func (_u *LessonCompletionEventUpdateOne) SetNillableModuleID(v *string) *LessonCompletionEventUpdateOne {
	if v != nil {
		_u.SetModuleID(*v)
	}
	return _u
}

// SetQuestionsAnswered sets the "questions_answered" field.
func (_u *LessonCompletionEventUpdateOne) SetQuestionsAnswered(v int) *LessonCompletionEventUpdateOne {
	_u.mutation.ResetQuestionsAnswered()
	_u.mutation.SetQuestionsAnswered(v)
	return _u
}

// SetNillableQuestionsAnswered sets the "questions_answered" field if the given value is not nil.
func (_u *LessonCompletionEventUpdateOne) SetNillableQuestionsAnswered(v *int) *LessonCompletionEventUpdateOne {
	if v != nil {
		_u.SetQuestionsAnswered(*v)
	}
	return _u
}

// AddQuestionsAnswered adds value to the "questions_answered" field.
func (_u *LessonCompletionEventUpdateOne) AddQuestionsAnswered(v int) *LessonCompletionEventUpdateOne {
	_u.mutation.AddQuestionsAnswered(v)
	return _u
}

// Mutation returns the LessonCompletionEventMutation object of the builder.
func (_u *LessonCompletionEventUpdateOne) Mutation() *LessonCompletionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the LessonCompletionEventUpdate builder.
func (_u *LessonCompletionEventUpdateOne) Where(ps ...predicate.LessonCompletionEvent) *LessonCompletionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LessonCompletionEventUpdateOne) Select(field string, fields ...string) *LessonCompletionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LessonCompletionEvent entity.
func (_u *LessonCompletionEventUpdateOne) Save(ctx context.Context) (*LessonCompletionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonCompletionEventUpdateOne) SaveX(ctx context.Context) *LessonCompletionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LessonCompletionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonCompletionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonCompletionEventUpdateOne) check() error {
	if v, ok := _u.mutation.EnrollmentID(); ok {
		if err := lessoncompletionevent.EnrollmentIDValidator(v); err != nil {
			return &ValidationError{Name: "enrollment_id", err: fmt.Errorf(`ent: validator failed for field "LessonCompletionEvent.enrollment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := lessoncompletionevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "LessonCompletionEvent.lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModuleID(); ok {
		if err := lessoncompletionevent.ModuleIDValidator(v); err != nil {
			return &ValidationError{Name: "module_id", err: fmt.Errorf(`ent: validator failed for field "LessonCompletionEvent.module_id": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonCompletionEventUpdateOne) sqlSave(ctx context.Context) (_node *LessonCompletionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessoncompletionevent.Table, lessoncompletionevent.Columns, sqlgraph.NewFieldSpec(lessoncompletionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LessonCompletionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lessoncompletionevent.FieldID)
		for _, f := range fields {
			if !lessoncompletionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lessoncompletionevent.FieldID {
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
		_spec.SetField(lessoncompletionevent.FieldEnrollmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(lessoncompletionevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModuleID(); ok {
		_spec.SetField(lessoncompletionevent.FieldModuleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionsAnswered(); ok {
		_spec.SetField(lessoncompletionevent.FieldQuestionsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAnswered(); ok {
		_spec.AddField(lessoncompletionevent.FieldQuestionsAnswered, field.TypeInt, value)
	}
	_node = &LessonCompletionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessoncompletionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
