// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/paceseed/ent/feedbackevent"
	"github.com/abhisek/paceseed/ent/predicate"
)

// FeedbackEventUpdate is the builder for updating FeedbackEvent entities.
type FeedbackEventUpdate struct {
	config
	hooks    []Hook
	mutation *FeedbackEventMutation
}

// Where appends a list predicates to the FeedbackEventUpdate builder.
func (_u *FeedbackEventUpdate) Where(ps ...predicate.FeedbackEvent) *FeedbackEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEnrollmentID sets the "enrollment_id" field.
func (_u *FeedbackEventUpdate) SetEnrollmentID(v string) *FeedbackEventUpdate {
	_u.mutation.SetEnrollmentID(v)
	return _u
}

// SetNillableEnrollmentID sets the "enrollment_id" field if the given value is not nil.
func (_u *FeedbackEventUpdate) SetNillableEnrollmentID(v *string) *FeedbackEventUpdate {
	if v != nil {
		_u.SetEnrollmentID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *FeedbackEventUpdate) SetLessonID(v string) *FeedbackEventUpdate {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *FeedbackEventUpdate) SetNillableLessonID(v *string) *FeedbackEventUpdate {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetComment sets the "comment" field.
func (_u *FeedbackEventUpdate) SetComment(v string) *FeedbackEventUpdate {
	_u.mutation.SetComment(v)
	return _u
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_u *FeedbackEventUpdate) SetNillableComment(v *string) *FeedbackEventUpdate {
	if v != nil {
		_u.SetComment(*v)
	}
	return _u
}

// SetTone sets the "tone" field.
func (_u *FeedbackEventUpdate) SetTone(v string) *FeedbackEventUpdate {
	_u.mutation.SetTone(v)
	return _u
}

// SetNillableTone sets the "tone" field if the given value is not nil.
func (_u *FeedbackEventUpdate) SetNillableTone(v *string) *FeedbackEventUpdate {
	if v != nil {
		_u.SetTone(*v)
	}
	return _u
}

// SetGenerator sets the "generator" field.
func (_u *FeedbackEventUpdate) SetGenerator(v string) *FeedbackEventUpdate {
	_u.mutation.SetGenerator(v)
	return _u
}

// SetNillableGenerator sets the "generator" field if the given value is not nil.
func (_u *FeedbackEventUpdate) SetNillableGenerator(v *string) *FeedbackEventUpdate {
	if v != nil {
		_u.SetGenerator(*v)
	}
	return _u
}

// Mutation returns the FeedbackEventMutation object of the builder.
func (_u *FeedbackEventUpdate) Mutation() *FeedbackEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FeedbackEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeedbackEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FeedbackEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeedbackEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FeedbackEventUpdate) check() error {
	if v, ok := _u.mutation.EnrollmentID(); ok {
		if err := feedbackevent.EnrollmentIDValidator(v); err != nil {
			return &ValidationError{Name: "enrollment_id", err: fmt.Errorf(`ent: validator failed for field "FeedbackEvent.enrollment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := feedbackevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "FeedbackEvent.lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Comment(); ok {
		if err := feedbackevent.CommentValidator(v); err != nil {
			return &ValidationError{Name: "comment", err: fmt.Errorf(`ent: validator failed for field "FeedbackEvent.comment": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tone(); ok {
		if err := feedbackevent.ToneValidator(v); err != nil {
			return &ValidationError{Name: "tone", err: fmt.Errorf(`ent: validator failed for field "FeedbackEvent.tone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Generator(); ok {
		if err := feedbackevent.GeneratorValidator(v); err != nil {
			return &ValidationError{Name: "generator", err: fmt.Errorf(`ent: validator failed for field "FeedbackEvent.generator": %w`, err)}
		}
	}
	return nil
}

func (_u *FeedbackEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(feedbackevent.Table, feedbackevent.Columns, sqlgraph.NewFieldSpec(feedbackevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EnrollmentID(); ok {
		_spec.SetField(feedbackevent.FieldEnrollmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(feedbackevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Comment(); ok {
		_spec.SetField(feedbackevent.FieldComment, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tone(); ok {
		_spec.SetField(feedbackevent.FieldTone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Generator(); ok {
		_spec.SetField(feedbackevent.FieldGenerator, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feedbackevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FeedbackEventUpdateOne is the builder for updating a single FeedbackEvent entity.
type FeedbackEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FeedbackEventMutation
}

// SetEnrollmentID sets the "enrollment_id" field.
func (_u *FeedbackEventUpdateOne) SetEnrollmentID(v string) *FeedbackEventUpdateOne {
	_u.mutation.SetEnrollmentID(v)
	return _u
}

// SetNillableEnrollmentID sets the "enrollment_id" field if the given value is not nil.
func (_u *FeedbackEventUpdateOne) SetNillableEnrollmentID(v *string) *FeedbackEventUpdateOne {
	if v != nil {
		_u.SetEnrollmentID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *FeedbackEventUpdateOne) SetLessonID(v string) *FeedbackEventUpdateOne {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *FeedbackEventUpdateOne) SetNillableLessonID(v *string) *FeedbackEventUpdateOne {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetComment sets the "comment" field.
func (_u *FeedbackEventUpdateOne) SetComment(v string) *FeedbackEventUpdateOne {
	_u.mutation.SetComment(v)
	return _u
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_u *FeedbackEventUpdateOne) SetNillableComment(v *string) *FeedbackEventUpdateOne {
	if v != nil {
		_u.SetComment(*v)
	}
	return _u
}

// SetTone sets the "tone" field.
func (_u *FeedbackEventUpdateOne) SetTone(v string) *FeedbackEventUpdateOne {
	_u.mutation.SetTone(v)
	return _u
}

// SetNillableTone sets the "tone" field if the given value is not nil.
func (_u *FeedbackEventUpdateOne) SetNillableTone(v *string) *FeedbackEventUpdateOne {
	if v != nil {
		_u.SetTone(*v)
	}
	return _u
}

// SetGenerator sets the "generator" field.
func (_u *FeedbackEventUpdateOne) SetGenerator(v string) *FeedbackEventUpdateOne {
	_u.mutation.SetGenerator(v)
	return _u
}

// SetNillableGenerator sets the "generator" field if the given value is not nil.
func (_u *FeedbackEventUpdateOne) SetNillableGenerator(v *string) *FeedbackEventUpdateOne {
	if v != nil {
		_u.SetGenerator(*v)
	}
	return _u
}

// Mutation returns the FeedbackEventMutation object of the builder.
func (_u *FeedbackEventUpdateOne) Mutation() *FeedbackEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the FeedbackEventUpdate builder.
func (_u *FeedbackEventUpdateOne) Where(ps ...predicate.FeedbackEvent) *FeedbackEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FeedbackEventUpdateOne) Select(field string, fields ...string) *FeedbackEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FeedbackEvent entity.
func (_u *FeedbackEventUpdateOne) Save(ctx context.Context) (*FeedbackEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeedbackEventUpdateOne) SaveX(ctx context.Context) *FeedbackEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FeedbackEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeedbackEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FeedbackEventUpdateOne) check() error {
	if v, ok := _u.mutation.EnrollmentID(); ok {
		if err := feedbackevent.EnrollmentIDValidator(v); err != nil {
			return &ValidationError{Name: "enrollment_id", err: fmt.Errorf(`ent: validator failed for field "FeedbackEvent.enrollment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := feedbackevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "FeedbackEvent.lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Comment(); ok {
		if err := feedbackevent.CommentValidator(v); err != nil {
			return &ValidationError{Name: "comment", err: fmt.Errorf(`ent: validator failed for field "FeedbackEvent.comment": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tone(); ok {
		if err := feedbackevent.ToneValidator(v); err != nil {
			return &ValidationError{Name: "tone", err: fmt.Errorf(`ent: validator failed for field "FeedbackEvent.tone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Generator(); ok {
		if err := feedbackevent.GeneratorValidator(v); err != nil {
			return &ValidationError{Name: "generator", err: fmt.Errorf(`ent: validator failed for field "FeedbackEvent.generator": %w`, err)}
		}
	}
	return nil
}

func (_u *FeedbackEventUpdateOne) sqlSave(ctx context.Context) (_node *FeedbackEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(feedbackevent.Table, feedbackevent.Columns, sqlgraph.NewFieldSpec(feedbackevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FeedbackEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, feedbackevent.FieldID)
		for _, f := range fields {
			if !feedbackevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != feedbackevent.FieldID {
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
		_spec.SetField(feedbackevent.FieldEnrollmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(feedbackevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Comment(); ok {
		_spec.SetField(feedbackevent.FieldComment, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tone(); ok {
		_spec.SetField(feedbackevent.FieldTone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Generator(); ok {
		_spec.SetField(feedbackevent.FieldGenerator, field.TypeString, value)
	}
	_node = &FeedbackEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feedbackevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
