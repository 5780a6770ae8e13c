// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/paceseed/ent/assessmentresponseevent"
	"github.com/abhisek/paceseed/ent/predicate"
)

// AssessmentResponseEventUpdate is the builder for updating AssessmentResponseEvent entities.
type AssessmentResponseEventUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentResponseEventMutation
}

// Where appends a list predicates to the AssessmentResponseEventUpdate builder.
func (_u *AssessmentResponseEventUpdate) Where(ps ...predicate.AssessmentResponseEvent) *AssessmentResponseEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEnrollmentID sets the "enrollment_id" field.
func (_u *AssessmentResponseEventUpdate) SetEnrollmentID(v string) *AssessmentResponseEventUpdate {
	_u.mutation.SetEnrollmentID(v)
	return _u
}

// SetNillableEnrollmentID sets the "enrollment_id" field if the given value is not nil.
func (_u *AssessmentResponseEventUpdate) SetNillableEnrollmentID(v *string) *AssessmentResponseEventUpdate {
	if v != nil {
		_u.SetEnrollmentID(*v)
	}
	return _u
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *AssessmentResponseEventUpdate) SetAssessmentID(v string) *AssessmentResponseEventUpdate {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *AssessmentResponseEventUpdate) SetNillableAssessmentID(v *string) *AssessmentResponseEventUpdate {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *AssessmentResponseEventUpdate) SetScore(v float64) *AssessmentResponseEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AssessmentResponseEventUpdate) SetNillableScore(v *float64) *AssessmentResponseEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AssessmentResponseEventUpdate) AddScore(v float64) *AssessmentResponseEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetQuestionsAnswered sets the "questions_answered" field.
func (_u *AssessmentResponseEventUpdate) SetQuestionsAnswered(v int) *AssessmentResponseEventUpdate {
	_u.mutation.ResetQuestionsAnswered()
	_u.mutation.SetQuestionsAnswered(v)
	return _u
}

// SetNillableQuestionsAnswered sets the "questions_answered" field if the given value is not nil.
func (_u *AssessmentResponseEventUpdate) SetNillableQuestionsAnswered(v *int) *AssessmentResponseEventUpdate {
	if v != nil {
		_u.SetQuestionsAnswered(*v)
	}
	return _u
}

// AddQuestionsAnswered adds value to the "questions_answered" field.
func (_u *AssessmentResponseEventUpdate) AddQuestionsAnswered(v int) *AssessmentResponseEventUpdate {
	_u.mutation.AddQuestionsAnswered(v)
	return _u
}

// Mutation returns the AssessmentResponseEventMutation object of the builder.
func (_u *AssessmentResponseEventUpdate) Mutation() *AssessmentResponseEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentResponseEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentResponseEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentResponseEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentResponseEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentResponseEventUpdate) check() error {
	if v, ok := _u.mutation.EnrollmentID(); ok {
		if err := assessmentresponseevent.EnrollmentIDValidator(v); err != nil {
			return &ValidationError{Name: "enrollment_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentResponseEvent.enrollment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssessmentID(); ok {
		if err := assessmentresponseevent.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentResponseEvent.assessment_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentResponseEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentresponseevent.Table, assessmentresponseevent.Columns, sqlgraph.NewFieldSpec(assessmentresponseevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EnrollmentID(); ok {
		_spec.SetField(assessmentresponseevent.FieldEnrollmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(assessmentresponseevent.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(assessmentresponseevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(assessmentresponseevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.QuestionsAnswered(); ok {
		_spec.SetField(assessmentresponseevent.FieldQuestionsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAnswered(); ok {
		_spec.AddField(assessmentresponseevent.FieldQuestionsAnswered, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentresponseevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentResponseEventUpdateOne is the builder for updating a single AssessmentResponseEvent entity.
type AssessmentResponseEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentResponseEventMutation
}

// SetEnrollmentID sets the "enrollment_id" field.
func (_u *AssessmentResponseEventUpdateOne) SetEnrollmentID(v string) *AssessmentResponseEventUpdateOne {
	_u.mutation.SetEnrollmentID(v)
	return _u
}

// SetNillableEnrollmentID sets the "enrollment_id" field if the given value is not nil.
func (_u *AssessmentResponseEventUpdateOne) SetNillableEnrollmentID(v *string) *AssessmentResponseEventUpdateOne {
	if v != nil {
		_u.SetEnrollmentID(*v)
	}
	return _u
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *AssessmentResponseEventUpdateOne) SetAssessmentID(v string) *AssessmentResponseEventUpdateOne {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *AssessmentResponseEventUpdateOne) SetNillableAssessmentID(v *string) *AssessmentResponseEventUpdateOne {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *AssessmentResponseEventUpdateOne) SetScore(v float64) *AssessmentResponseEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AssessmentResponseEventUpdateOne) SetNillableScore(v *float64) *AssessmentResponseEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AssessmentResponseEventUpdateOne) AddScore(v float64) *AssessmentResponseEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetQuestionsAnswered sets the "questions_answered" field.
func (_u *AssessmentResponseEventUpdateOne) SetQuestionsAnswered(v int) *AssessmentResponseEventUpdateOne {
	_u.mutation.ResetQuestionsAnswered()
	_u.mutation.SetQuestionsAnswered(v)
	return _u
}

// SetNillableQuestionsAnswered sets the "questions_answered" field if the given value is not nil.
func (_u *AssessmentResponseEventUpdateOne) SetNillableQuestionsAnswered(v *int) *AssessmentResponseEventUpdateOne {
	if v != nil {
		_u.SetQuestionsAnswered(*v)
	}
	return _u
}

// AddQuestionsAnswered adds value to the "questions_answered" field.
func (_u *AssessmentResponseEventUpdateOne) AddQuestionsAnswered(v int) *AssessmentResponseEventUpdateOne {
	_u.mutation.AddQuestionsAnswered(v)
	return _u
}

// Mutation returns the AssessmentResponseEventMutation object of the builder.
func (_u *AssessmentResponseEventUpdateOne) Mutation() *AssessmentResponseEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssessmentResponseEventUpdate builder.
func (_u *AssessmentResponseEventUpdateOne) Where(ps ...predicate.AssessmentResponseEvent) *AssessmentResponseEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentResponseEventUpdateOne) Select(field string, fields ...string) *AssessmentResponseEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AssessmentResponseEvent entity.
func (_u *AssessmentResponseEventUpdateOne) Save(ctx context.Context) (*AssessmentResponseEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentResponseEventUpdateOne) SaveX(ctx context.Context) *AssessmentResponseEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentResponseEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentResponseEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentResponseEventUpdateOne) check() error {
	if v, ok := _u.mutation.EnrollmentID(); ok {
		if err := assessmentresponseevent.EnrollmentIDValidator(v); err != nil {
			return &ValidationError{Name: "enrollment_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentResponseEvent.enrollment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssessmentID(); ok {
		if err := assessmentresponseevent.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentResponseEvent.assessment_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentResponseEventUpdateOne) sqlSave(ctx context.Context) (_node *AssessmentResponseEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentresponseevent.Table, assessmentresponseevent.Columns, sqlgraph.NewFieldSpec(assessmentresponseevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AssessmentResponseEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessmentresponseevent.FieldID)
		for _, f := range fields {
			if !assessmentresponseevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assessmentresponseevent.FieldID {
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
		_spec.SetField(assessmentresponseevent.FieldEnrollmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(assessmentresponseevent.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(assessmentresponseevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(assessmentresponseevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.QuestionsAnswered(); ok {
		_spec.SetField(assessmentresponseevent.FieldQuestionsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAnswered(); ok {
		_spec.AddField(assessmentresponseevent.FieldQuestionsAnswered, field.TypeInt, value)
	}
	_node = &AssessmentResponseEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentresponseevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
