// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/paceseed/ent/attendanceevent"
)

// AttendanceEventCreate is the builder for creating a AttendanceEvent entity.
type AttendanceEventCreate struct {
	config
	mutation *AttendanceEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AttendanceEventCreate) SetSequence(v int64) *AttendanceEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AttendanceEventCreate) SetTimestamp(v time.Time) *AttendanceEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AttendanceEventCreate) SetNillableTimestamp(v *time.Time) *AttendanceEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetGroupID sets the "group_id" field.
func (_c *AttendanceEventCreate) SetGroupID(v string) *AttendanceEventCreate {
	_c.mutation.SetGroupID(v)
	return _c
}

// SetEnrollmentID sets the "enrollment_id" field.
func (_c *AttendanceEventCreate) SetEnrollmentID(v string) *AttendanceEventCreate {
	_c.mutation.SetEnrollmentID(v)
	return _c
}

// SetDate sets the "date" field.
func (_c *AttendanceEventCreate) SetDate(v time.Time) *AttendanceEventCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AttendanceEventCreate) SetStatus(v string) *AttendanceEventCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// Mutation returns the AttendanceEventMutation object of the builder.
func (_c *AttendanceEventCreate) Mutation() *AttendanceEventMutation {
	return _c.mutation
}

// Save creates the AttendanceEvent in the database.
func (_c *AttendanceEventCreate) Save(ctx context.Context) (*AttendanceEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttendanceEventCreate) SaveX(ctx context.Context) *AttendanceEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttendanceEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttendanceEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttendanceEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := attendanceevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttendanceEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AttendanceEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AttendanceEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.GroupID(); !ok {
		return &ValidationError{Name: "group_id", err: errors.New(`ent: missing required field "AttendanceEvent.group_id"`)}
	}
	if v, ok := _c.mutation.GroupID(); ok {
		if err := attendanceevent.GroupIDValidator(v); err != nil {
			return &ValidationError{Name: "group_id", err: fmt.Errorf(`ent: validator failed for field "AttendanceEvent.group_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EnrollmentID(); !ok {
		return &ValidationError{Name: "enrollment_id", err: errors.New(`ent: missing required field "AttendanceEvent.enrollment_id"`)}
	}
	if v, ok := _c.mutation.EnrollmentID(); ok {
		if err := attendanceevent.EnrollmentIDValidator(v); err != nil {
			return &ValidationError{Name: "enrollment_id", err: fmt.Errorf(`ent: validator failed for field "AttendanceEvent.enrollment_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`ent: missing required field "AttendanceEvent.date"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AttendanceEvent.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := attendanceevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AttendanceEvent.status": %w`, err)}
		}
	}
	return nil
}

func (_c *AttendanceEventCreate) sqlSave(ctx context.Context) (*AttendanceEvent, error) {
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

func (_c *AttendanceEventCreate) createSpec() (*AttendanceEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AttendanceEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attendanceevent.Table, sqlgraph.NewFieldSpec(attendanceevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(attendanceevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(attendanceevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.GroupID(); ok {
		_spec.SetField(attendanceevent.FieldGroupID, field.TypeString, value)
		_node.GroupID = value
	}
	if value, ok := _c.mutation.EnrollmentID(); ok {
		_spec.SetField(attendanceevent.FieldEnrollmentID, field.TypeString, value)
		_node.EnrollmentID = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(attendanceevent.FieldDate, field.TypeTime, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(attendanceevent.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	return _node, _spec
}

// AttendanceEventCreateBulk is the builder for creating many AttendanceEvent entities in bulk.
type AttendanceEventCreateBulk struct {
	config
	err      error
	builders []*AttendanceEventCreate
}

// Save creates the AttendanceEvent entities in the database.
func (_c *AttendanceEventCreateBulk) Save(ctx context.Context) ([]*AttendanceEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AttendanceEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttendanceEventMutation)
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
func (_c *AttendanceEventCreateBulk) SaveX(ctx context.Context) []*AttendanceEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttendanceEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttendanceEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
