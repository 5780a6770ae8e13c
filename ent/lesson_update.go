// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/paceseed/ent/lesson"
	"github.com/abhisek/paceseed/ent/predicate"
)

// LessonUpdate is the builder for updating Lesson entities.
type LessonUpdate struct {
	config
	hooks    []Hook
	mutation *LessonMutation
}

// Where appends a list predicates to the LessonUpdate builder.
func (_u *LessonUpdate) Where(ps ...predicate.Lesson) *LessonUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPublicID sets the "public_id" field.
func (_u *LessonUpdate) SetPublicID(v string) *LessonUpdate {
	_u.mutation.SetPublicID(v)
	return _u
}

// SetNillablePublicID sets the "public_id" field if the given value is not nil.
func (_u *LessonUpdate) SetNillablePublicID(v *string) *LessonUpdate {
	if v != nil {
		_u.SetPublicID(*v)
	}
	return _u
}

// SetModuleID sets the "module_id" field.
func (_u *LessonUpdate) SetModuleID(v string) *LessonUpdate {
	_u.mutation.SetModuleID(v)
	return _u
}

// SetNillableModuleID sets the "module_id" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableModuleID(v *string) *LessonUpdate {
	if v != nil {
		_u.SetModuleID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *LessonUpdate) SetTitle(v string) *LessonUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableTitle(v *string) *LessonUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *LessonUpdate) SetPosition(v int) *LessonUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *LessonUpdate) SetNillablePosition(v *int) *LessonUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *LessonUpdate) AddPosition(v int) *LessonUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetAssignmentID sets the "assignment_id" field.
func (_u *LessonUpdate) SetAssignmentID(v string) *LessonUpdate {
	_u.mutation.SetAssignmentID(v)
	return _u
}

// SetNillableAssignmentID sets the "assignment_id" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableAssignmentID(v *string) *LessonUpdate {
	if v != nil {
		_u.SetAssignmentID(*v)
	}
	return _u
}

// ClearAssignmentID clears the value of the "assignment_id" field.
func (_u *LessonUpdate) ClearAssignmentID() *LessonUpdate {
	_u.mutation.ClearAssignmentID()
	return _u
}

// Mutation returns the LessonMutation object of the builder.
func (_u *LessonUpdate) Mutation() *LessonMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LessonUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LessonUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonUpdate) check() error {
	if v, ok := _u.mutation.PublicID(); ok {
		if err := lesson.PublicIDValidator(v); err != nil {
			return &ValidationError{Name: "public_id", err: fmt.Errorf(`ent: validator failed for field "Lesson.public_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModuleID(); ok {
		if err := lesson.ModuleIDValidator(v); err != nil {
			return &ValidationError{Name: "module_id", err: fmt.Errorf(`ent: validator failed for field "Lesson.module_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := lesson.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Lesson.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := lesson.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Lesson.position": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lesson.Table, lesson.Columns, sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PublicID(); ok {
		_spec.SetField(lesson.FieldPublicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModuleID(); ok {
		_spec.SetField(lesson.FieldModuleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(lesson.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(lesson.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(lesson.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AssignmentID(); ok {
		_spec.SetField(lesson.FieldAssignmentID, field.TypeString, value)
	}
	if _u.mutation.AssignmentIDCleared() {
		_spec.ClearField(lesson.FieldAssignmentID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lesson.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LessonUpdateOne is the builder for updating a single Lesson entity.
type LessonUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonMutation
}

// SetPublicID sets the "public_id" field.
func (_u *LessonUpdateOne) SetPublicID(v string) *LessonUpdateOne {
	_u.mutation.SetPublicID(v)
	return _u
}

// SetNillablePublicID sets the "public_id" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillablePublicID(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetPublicID(*v)
	}
	return _u
}

// SetModuleID sets the "module_id" field.
func (_u *LessonUpdateOne) SetModuleID(v string) *LessonUpdateOne {
	_u.mutation.SetModuleID(v)
	return _u
}

// SetNillableModuleID sets the "module_id" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableModuleID(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetModuleID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *LessonUpdateOne) SetTitle(v string) *LessonUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableTitle(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *LessonUpdateOne) SetPosition(v int) *LessonUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillablePosition(v *int) *LessonUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *LessonUpdateOne) AddPosition(v int) *LessonUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetAssignmentID sets the "assignment_id" field.
func (_u *LessonUpdateOne) SetAssignmentID(v string) *LessonUpdateOne {
	_u.mutation.SetAssignmentID(v)
	return _u
}

// SetNillableAssignmentID sets the "assignment_id" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableAssignmentID(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetAssignmentID(*v)
	}
	return _u
}

// ClearAssignmentID clears the value of the "assignment_id" field.
func (_u *LessonUpdateOne) ClearAssignmentID() *LessonUpdateOne {
	_u.mutation.ClearAssignmentID()
	return _u
}

// Mutation returns the LessonMutation object of the builder.
func (_u *LessonUpdateOne) Mutation() *LessonMutation {
	return _u.mutation
}

// Where appends a list predicates to the LessonUpdate builder.
func (_u *LessonUpdateOne) Where(ps ...predicate.Lesson) *LessonUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LessonUpdateOne) Select(field string, fields ...string) *LessonUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Lesson entity.
func (_u *LessonUpdateOne) Save(ctx context.Context) (*Lesson, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonUpdateOne) SaveX(ctx context.Context) *Lesson {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LessonUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonUpdateOne) check() error {
	if v, ok := _u.mutation.PublicID(); ok {
		if err := lesson.PublicIDValidator(v); err != nil {
			return &ValidationError{Name: "public_id", err: fmt.Errorf(`ent: validator failed for field "Lesson.public_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModuleID(); ok {
		if err := lesson.ModuleIDValidator(v); err != nil {
			return &ValidationError{Name: "module_id", err: fmt.Errorf(`ent: validator failed for field "Lesson.module_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := lesson.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Lesson.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := lesson.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Lesson.position": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonUpdateOne) sqlSave(ctx context.Context) (_node *Lesson, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lesson.Table, lesson.Columns, sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Lesson.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lesson.FieldID)
		for _, f := range fields {
			if !lesson.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lesson.FieldID {
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
		_spec.SetField(lesson.FieldPublicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModuleID(); ok {
		_spec.SetField(lesson.FieldModuleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(lesson.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(lesson.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(lesson.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AssignmentID(); ok {
		_spec.SetField(lesson.FieldAssignmentID, field.TypeString, value)
	}
	if _u.mutation.AssignmentIDCleared() {
		_spec.ClearField(lesson.FieldAssignmentID, field.TypeString)
	}
	_node = &Lesson{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lesson.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
