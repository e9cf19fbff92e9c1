// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mindweave/ent/gradingevent"
)

// GradingEventCreate is the builder for creating a GradingEvent entity.
type GradingEventCreate struct {
	config
	mutation *GradingEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *GradingEventCreate) SetSequence(v int64) *GradingEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *GradingEventCreate) SetTimestamp(v time.Time) *GradingEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *GradingEventCreate) SetNillableTimestamp(v *time.Time) *GradingEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *GradingEventCreate) SetSessionID(v string) *GradingEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNodeID sets the "node_id" field.
func (_c *GradingEventCreate) SetNodeID(v string) *GradingEventCreate {
	_c.mutation.SetNodeID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *GradingEventCreate) SetQuestionID(v string) *GradingEventCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetAttempt sets the "attempt" field.
func (_c *GradingEventCreate) SetAttempt(v int) *GradingEventCreate {
	_c.mutation.SetAttempt(v)
	return _c
}

// SetGrade sets the "grade" field.
func (_c *GradingEventCreate) SetGrade(v int) *GradingEventCreate {
	_c.mutation.SetGrade(v)
	return _c
}

// SetPassed sets the "passed" field.
func (_c *GradingEventCreate) SetPassed(v bool) *GradingEventCreate {
	_c.mutation.SetPassed(v)
	return _c
}

// SetNodeStatus sets the "node_status" field.
func (_c *GradingEventCreate) SetNodeStatus(v string) *GradingEventCreate {
	_c.mutation.SetNodeStatus(v)
	return _c
}

// Mutation returns the GradingEventMutation object of the builder.
func (_c *GradingEventCreate) Mutation() *GradingEventMutation {
	return _c.mutation
}

// Save creates the GradingEvent in the database.
func (_c *GradingEventCreate) Save(ctx context.Context) (*GradingEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GradingEventCreate) SaveX(ctx context.Context) *GradingEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GradingEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GradingEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GradingEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := gradingevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GradingEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "GradingEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "GradingEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "GradingEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := gradingevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "GradingEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NodeID(); !ok {
		return &ValidationError{Name: "node_id", err: errors.New(`ent: missing required field "GradingEvent.node_id"`)}
	}
	if v, ok := _c.mutation.NodeID(); ok {
		if err := gradingevent.NodeIDValidator(v); err != nil {
			return &ValidationError{Name: "node_id", err: fmt.Errorf(`ent: validator failed for field "GradingEvent.node_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "GradingEvent.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := gradingevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "GradingEvent.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		return &ValidationError{Name: "attempt", err: errors.New(`ent: missing required field "GradingEvent.attempt"`)}
	}
	if _, ok := _c.mutation.Grade(); !ok {
		return &ValidationError{Name: "grade", err: errors.New(`ent: missing required field "GradingEvent.grade"`)}
	}
	if _, ok := _c.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "GradingEvent.passed"`)}
	}
	if _, ok := _c.mutation.NodeStatus(); !ok {
		return &ValidationError{Name: "node_status", err: errors.New(`ent: missing required field "GradingEvent.node_status"`)}
	}
	if v, ok := _c.mutation.NodeStatus(); ok {
		if err := gradingevent.NodeStatusValidator(v); err != nil {
			return &ValidationError{Name: "node_status", err: fmt.Errorf(`ent: validator failed for field "GradingEvent.node_status": %w`, err)}
		}
	}
	return nil
}

func (_c *GradingEventCreate) sqlSave(ctx context.Context) (*GradingEvent, error) {
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

func (_c *GradingEventCreate) createSpec() (*GradingEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &GradingEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(gradingevent.Table, sqlgraph.NewFieldSpec(gradingevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(gradingevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(gradingevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(gradingevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.NodeID(); ok {
		_spec.SetField(gradingevent.FieldNodeID, field.TypeString, value)
		_node.NodeID = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(gradingevent.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.Attempt(); ok {
		_spec.SetField(gradingevent.FieldAttempt, field.TypeInt, value)
		_node.Attempt = value
	}
	if value, ok := _c.mutation.Grade(); ok {
		_spec.SetField(gradingevent.FieldGrade, field.TypeInt, value)
		_node.Grade = value
	}
	if value, ok := _c.mutation.Passed(); ok {
		_spec.SetField(gradingevent.FieldPassed, field.TypeBool, value)
		_node.Passed = value
	}
	if value, ok := _c.mutation.NodeStatus(); ok {
		_spec.SetField(gradingevent.FieldNodeStatus, field.TypeString, value)
		_node.NodeStatus = value
	}
	return _node, _spec
}

// GradingEventCreateBulk is the builder for creating many GradingEvent entities in bulk.
type GradingEventCreateBulk struct {
	config
	err      error
	builders []*GradingEventCreate
}

// Save creates the GradingEvent entities in the database.
func (_c *GradingEventCreateBulk) Save(ctx context.Context) ([]*GradingEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GradingEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GradingEventMutation)
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
func (_c *GradingEventCreateBulk) SaveX(ctx context.Context) []*GradingEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GradingEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GradingEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
