// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/paceseed/ent/lesson"
)

// LessonCreate is the builder for creating a Lesson entity.
type LessonCreate struct {
	config
	mutation *LessonMutation
	hooks    []Hook
}

// SetPublicID sets the "public_id" field.
func (_c *LessonCreate) SetPublicID(v string) *LessonCreate {
	_c.mutation.SetPublicID(v)
	return _c
}

// SetModuleID sets the "module_id" field.
func (_c *LessonCreate) SetModuleID(v string) *LessonCreate {
	_c.mutation.SetModuleID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *LessonCreate) SetTitle(v string) *LessonCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *LessonCreate) SetPosition(v int) *LessonCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetAssignmentID sets the "assignment_id" field.
func (_c *LessonCreate) SetAssignmentID(v string) *LessonCreate {
	_c.mutation.SetAssignmentID(v)
	return _c
}

// SetNillableAssignmentID sets the "assignment_id" field if the given value is not nil.
func (_c *LessonCreate) SetNillableAssignmentID(v *string) *LessonCreate {
	if v != nil {
		_c.SetAssignmentID(*v)
	}
	return _c
}

// Mutation returns the LessonMutation object of the builder.
func (_c *LessonCreate) Mutation() *LessonMutation {
	return _c.mutation
}

// Save creates the Lesson in the database.
func (_c *LessonCreate) Save(ctx context.Context) (*Lesson, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LessonCreate) SaveX(ctx context.Context) *Lesson {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LessonCreate) check() error {
	if _, ok := _c.mutation.PublicID(); !ok {
		return &ValidationError{Name: "public_id", err: errors.New(`ent: missing required field "Lesson.public_id"`)}
	}
	if v, ok := _c.mutation.PublicID(); ok {
		if err := lesson.PublicIDValidator(v); err != nil {
			return &ValidationError{Name: "public_id", err: fmt.Errorf(`ent: validator failed for field "Lesson.public_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ModuleID(); !ok {
		return &ValidationError{Name: "module_id", err: errors.New(`ent: missing required field "Lesson.module_id"`)}
	}
	if v, ok := _c.mutation.ModuleID(); ok {
		if err := lesson.ModuleIDValidator(v); err != nil {
			return &ValidationError{Name: "module_id", err: fmt.Errorf(`ent: validator failed for field "Lesson.module_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Lesson.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := lesson.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Lesson.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "Lesson.position"`)}
	}
	if v, ok := _c.mutation.Position(); ok {
		if err := lesson.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Lesson.position": %w`, err)}
		}
	}
	return nil
}

func (_c *LessonCreate) sqlSave(ctx context.Context) (*Lesson, error) {
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

func (_c *LessonCreate) createSpec() (*Lesson, *sqlgraph.CreateSpec) {
	var (
		_node = &Lesson{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lesson.Table, sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.PublicID(); ok {
		_spec.SetField(lesson.FieldPublicID, field.TypeString, value)
		_node.PublicID = value
	}
	if value, ok := _c.mutation.ModuleID(); ok {
		_spec.SetField(lesson.FieldModuleID, field.TypeString, value)
		_node.ModuleID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(lesson.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(lesson.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.AssignmentID(); ok {
		_spec.SetField(lesson.FieldAssignmentID, field.TypeString, value)
		_node.AssignmentID = value
	}
	return _node, _spec
}

// LessonCreateBulk is the builder for creating many Lesson entities in bulk.
type LessonCreateBulk struct {
	config
	err      error
	builders []*LessonCreate
}

// Save creates the Lesson entities in the database.
func (_c *LessonCreateBulk) Save(ctx context.Context) ([]*Lesson, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Lesson, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LessonMutation)
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
func (_c *LessonCreateBulk) SaveX(ctx context.Context) []*Lesson {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
