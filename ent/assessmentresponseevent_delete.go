// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/paceseed/ent/assessmentresponseevent"
	"github.com/abhisek/paceseed/ent/predicate"
)

// AssessmentResponseEventDelete is the builder for deleting a AssessmentResponseEvent entity.
type AssessmentResponseEventDelete struct {
	config
	hooks    []Hook
	mutation *AssessmentResponseEventMutation
}

// Where appends a list predicates to the AssessmentResponseEventDelete builder.
func (_d *AssessmentResponseEventDelete) Where(ps ...predicate.AssessmentResponseEvent) *AssessmentResponseEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AssessmentResponseEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AssessmentResponseEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AssessmentResponseEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(assessmentresponseevent.Table, sqlgraph.NewFieldSpec(assessmentresponseevent.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// AssessmentResponseEventDeleteOne is the builder for deleting a single AssessmentResponseEvent entity.
type AssessmentResponseEventDeleteOne struct {
	_d *AssessmentResponseEventDelete
}

// Where appends a list predicates to the AssessmentResponseEventDelete builder.
func (_d *AssessmentResponseEventDeleteOne) Where(ps ...predicate.AssessmentResponseEvent) *AssessmentResponseEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AssessmentResponseEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{assessmentresponseevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AssessmentResponseEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
