// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/paceseed/ent/enrollment"
)

// EnrollmentCreate is the builder for creating a Enrollment entity.
type EnrollmentCreate struct {
	config
	mutation *EnrollmentMutation
	hooks    []Hook
}

// SetPublicID sets the "public_id" field.
func (_c *EnrollmentCreate) SetPublicID(v string) *EnrollmentCreate {
	_c.mutation.SetPublicID(v)
	return _c
}

// SetGroupID sets the "group_id" field.
func (_c *EnrollmentCreate) SetGroupID(v string) *EnrollmentCreate {
	_c.mutation.SetGroupID(v)
	return _c
}

// SetStudentProfileID sets the "student_profile_id" field.
func (_c *EnrollmentCreate) SetStudentProfileID(v string) *EnrollmentCreate {
	_c.mutation.SetStudentProfileID(v)
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *EnrollmentCreate) SetDisplayName(v string) *EnrollmentCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *EnrollmentCreate) SetPosition(v int) *EnrollmentCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// Mutation returns the EnrollmentMutation object of the builder.
func (_c *EnrollmentCreate) Mutation() *EnrollmentMutation {
	return _c.mutation
}

// Save creates the Enrollment in the database.
func (_c *EnrollmentCreate) Save(ctx context.Context) (*Enrollment, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EnrollmentCreate) SaveX(ctx context.Context) *Enrollment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EnrollmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EnrollmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EnrollmentCreate) check() error {
	if _, ok := _c.mutation.PublicID(); !ok {
		return &ValidationError{Name: "public_id", err: errors.New(`ent: missing required field "Enrollment.public_id"`)}
	}
	if v, ok := _c.mutation.PublicID(); ok {
		if err := enrollment.PublicIDValidator(v); err != nil {
			return &ValidationError{Name: "public_id", err: fmt.Errorf(`ent: validator failed for field "Enrollment.public_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GroupID(); !ok {
		return &ValidationError{Name: "group_id", err: errors.New(`ent: missing required field "Enrollment.group_id"`)}
	}
	if v, ok := _c.mutation.GroupID(); ok {
		if err := enrollment.GroupIDValidator(v); err != nil {
			return &ValidationError{Name: "group_id", err: fmt.Errorf(`ent: validator failed for field "Enrollment.group_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StudentProfileID(); !ok {
		return &ValidationError{Name: "student_profile_id", err: errors.New(`ent: missing required field "Enrollment.student_profile_id"`)}
	}
	if v, ok := _c.mutation.StudentProfileID(); ok {
		if err := enrollment.StudentProfileIDValidator(v); err != nil {
			return &ValidationError{Name: "student_profile_id", err: fmt.Errorf(`ent: validator failed for field "Enrollment.student_profile_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DisplayName(); !ok {
		return &ValidationError{Name: "display_name", err: errors.New(`ent: missing required field "Enrollment.display_name"`)}
	}
	if v, ok := _c.mutation.DisplayName(); ok {
		if err := enrollment.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`ent: validator failed for field "Enrollment.display_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "Enrollment.position"`)}
	}
	if v, ok := _c.mutation.Position(); ok {
		if err := enrollment.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Enrollment.position": %w`, err)}
		}
	}
	return nil
}

func (_c *EnrollmentCreate) sqlSave(ctx context.Context) (*Enrollment, error) {
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

func (_c *EnrollmentCreate) createSpec() (*Enrollment, *sqlgraph.CreateSpec) {
	var (
		_node = &Enrollment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(enrollment.Table, sqlgraph.NewFieldSpec(enrollment.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.PublicID(); ok {
		_spec.SetField(enrollment.FieldPublicID, field.TypeString, value)
		_node.PublicID = value
	}
	if value, ok := _c.mutation.GroupID(); ok {
		_spec.SetField(enrollment.FieldGroupID, field.TypeString, value)
		_node.GroupID = value
	}
	if value, ok := _c.mutation.StudentProfileID(); ok {
		_spec.SetField(enrollment.FieldStudentProfileID, field.TypeString, value)
		_node.StudentProfileID = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(enrollment.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(enrollment.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	return _node, _spec
}

// EnrollmentCreateBulk is the builder for creating many Enrollment entities in bulk.
type EnrollmentCreateBulk struct {
	config
	err      error
	builders []*EnrollmentCreate
}

// Save creates the Enrollment entities in the database.
func (_c *EnrollmentCreateBulk) Save(ctx context.Context) ([]*Enrollment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Enrollment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EnrollmentMutation)
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
func (_c *EnrollmentCreateBulk) SaveX(ctx context.Context) []*Enrollment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EnrollmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EnrollmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
