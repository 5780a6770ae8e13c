// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/paceseed/ent/assignmentcompletionevent"
	"github.com/abhisek/paceseed/ent/predicate"
)

// AssignmentCompletionEventDelete is the builder for deleting a AssignmentCompletionEvent entity.
type AssignmentCompletionEventDelete struct {
	config
	hooks    []Hook
	mutation *AssignmentCompletionEventMutation
}

// Where appends a list predicates to the AssignmentCompletionEventDelete builder.
func (_d *AssignmentCompletionEventDelete) Where(ps ...predicate.AssignmentCompletionEvent) *AssignmentCompletionEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AssignmentCompletionEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AssignmentCompletionEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AssignmentCompletionEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(assignmentcompletionevent.Table, sqlgraph.NewFieldSpec(assignmentcompletionevent.FieldID, field.TypeInt))
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

// AssignmentCompletionEventDeleteOne is the builder for deleting a single AssignmentCompletionEvent entity.
type AssignmentCompletionEventDeleteOne struct {
	_d *AssignmentCompletionEventDelete
}

// Where appends a list predicates to the AssignmentCompletionEventDelete builder.
func (_d *AssignmentCompletionEventDeleteOne) Where(ps ...predicate.AssignmentCompletionEvent) *AssignmentCompletionEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AssignmentCompletionEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{assignmentcompletionevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AssignmentCompletionEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
