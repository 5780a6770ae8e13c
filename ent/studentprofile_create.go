// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/paceseed/ent/studentprofile"
)

// StudentProfileCreate is the builder for creating a StudentProfile entity.
type StudentProfileCreate struct {
	config
	mutation *StudentProfileMutation
	hooks    []Hook
}

// SetPublicID sets the "public_id" field.
func (_c *StudentProfileCreate) SetPublicID(v string) *StudentProfileCreate {
	_c.mutation.SetPublicID(v)
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *StudentProfileCreate) SetDisplayName(v string) *StudentProfileCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// Mutation returns the StudentProfileMutation object of the builder.
func (_c *StudentProfileCreate) Mutation() *StudentProfileMutation {
	return _c.mutation
}

// Save creates the StudentProfile in the database.
func (_c *StudentProfileCreate) Save(ctx context.Context) (*StudentProfile, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StudentProfileCreate) SaveX(ctx context.Context) *StudentProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudentProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudentProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StudentProfileCreate) check() error {
	if _, ok := _c.mutation.PublicID(); !ok {
		return &ValidationError{Name: "public_id", err: errors.New(`ent: missing required field "StudentProfile.public_id"`)}
	}
	if v, ok := _c.mutation.PublicID(); ok {
		if err := studentprofile.PublicIDValidator(v); err != nil {
			return &ValidationError{Name: "public_id", err: fmt.Errorf(`ent: validator failed for field "StudentProfile.public_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DisplayName(); !ok {
		return &ValidationError{Name: "display_name", err: errors.New(`ent: missing required field "StudentProfile.display_name"`)}
	}
	if v, ok := _c.mutation.DisplayName(); ok {
		if err := studentprofile.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`ent: validator failed for field "StudentProfile.display_name": %w`, err)}
		}
	}
	return nil
}

func (_c *StudentProfileCreate) sqlSave(ctx context.Context) (*StudentProfile, error) {
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

func (_c *StudentProfileCreate) createSpec() (*StudentProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &StudentProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(studentprofile.Table, sqlgraph.NewFieldSpec(studentprofile.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.PublicID(); ok {
		_spec.SetField(studentprofile.FieldPublicID, field.TypeString, value)
		_node.PublicID = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(studentprofile.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	return _node, _spec
}

// StudentProfileCreateBulk is the builder for creating many StudentProfile entities in bulk.
type StudentProfileCreateBulk struct {
	config
	err      error
	builders []*StudentProfileCreate
}

// Save creates the StudentProfile entities in the database.
func (_c *StudentProfileCreateBulk) Save(ctx context.Context) ([]*StudentProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StudentProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudentProfileMutation)
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
func (_c *StudentProfileCreateBulk) SaveX(ctx context.Context) []*StudentProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudentProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudentProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
