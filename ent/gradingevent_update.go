// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mindweave/ent/gradingevent"
	"github.com/abhisek/mindweave/ent/predicate"
)

// GradingEventUpdate is the builder for updating GradingEvent entities.
type GradingEventUpdate struct {
	config
	hooks    []Hook
	mutation *GradingEventMutation
}

// Where appends a list predicates to the GradingEventUpdate builder.
func (_u *GradingEventUpdate) Where(ps ...predicate.GradingEvent) *GradingEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *GradingEventUpdate) SetSessionID(v string) *GradingEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *GradingEventUpdate) SetNillableSessionID(v *string) *GradingEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *GradingEventUpdate) SetNodeID(v string) *GradingEventUpdate {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *GradingEventUpdate) SetNillableNodeID(v *string) *GradingEventUpdate {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *GradingEventUpdate) SetQuestionID(v string) *GradingEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *GradingEventUpdate) SetNillableQuestionID(v *string) *GradingEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *GradingEventUpdate) SetAttempt(v int) *GradingEventUpdate {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *GradingEventUpdate) SetNillableAttempt(v *int) *GradingEventUpdate {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *GradingEventUpdate) AddAttempt(v int) *GradingEventUpdate {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetGrade sets the "grade" field.
func (_u *GradingEventUpdate) SetGrade(v int) *GradingEventUpdate {
	_u.mutation.ResetGrade()
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *GradingEventUpdate) SetNillableGrade(v *int) *GradingEventUpdate {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// AddGrade adds value to the "grade" field.
func (_u *GradingEventUpdate) AddGrade(v int) *GradingEventUpdate {
	_u.mutation.AddGrade(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *GradingEventUpdate) SetPassed(v bool) *GradingEventUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *GradingEventUpdate) SetNillablePassed(v *bool) *GradingEventUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetNodeStatus sets the "node_status" field.
func (_u *GradingEventUpdate) SetNodeStatus(v string) *GradingEventUpdate {
	_u.mutation.SetNodeStatus(v)
	return _u
}

// SetNillableNodeStatus sets the "node_status" field if the given value is not nil.
func (_u *GradingEventUpdate) SetNillableNodeStatus(v *string) *GradingEventUpdate {
	if v != nil {
		_u.SetNodeStatus(*v)
	}
	return _u
}

// Mutation returns the GradingEventMutation object of the builder.
func (_u *GradingEventUpdate) Mutation() *GradingEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GradingEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GradingEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GradingEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GradingEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GradingEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := gradingevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "GradingEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NodeID(); ok {
		if err := gradingevent.NodeIDValidator(v); err != nil {
			return &ValidationError{Name: "node_id", err: fmt.Errorf(`ent: validator failed for field "GradingEvent.node_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := gradingevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "GradingEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NodeStatus(); ok {
		if err := gradingevent.NodeStatusValidator(v); err != nil {
			return &ValidationError{Name: "node_status", err: fmt.Errorf(`ent: validator failed for field "GradingEvent.node_status": %w`, err)}
		}
	}
	return nil
}

func (_u *GradingEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gradingevent.Table, gradingevent.Columns, sqlgraph.NewFieldSpec(gradingevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(gradingevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.NodeID(); ok {
		_spec.SetField(gradingevent.FieldNodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(gradingevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(gradingevent.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(gradingevent.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(gradingevent.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGrade(); ok {
		_spec.AddField(gradingevent.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(gradingevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.NodeStatus(); ok {
		_spec.SetField(gradingevent.FieldNodeStatus, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gradingevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GradingEventUpdateOne is the builder for updating a single GradingEvent entity.
type GradingEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GradingEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *GradingEventUpdateOne) SetSessionID(v string) *GradingEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *GradingEventUpdateOne) SetNillableSessionID(v *string) *GradingEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *GradingEventUpdateOne) SetNodeID(v string) *GradingEventUpdateOne {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *GradingEventUpdateOne) SetNillableNodeID(v *string) *GradingEventUpdateOne {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *GradingEventUpdateOne) SetQuestionID(v string) *GradingEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *GradingEventUpdateOne) SetNillableQuestionID(v *string) *GradingEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *GradingEventUpdateOne) SetAttempt(v int) *GradingEventUpdateOne {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *GradingEventUpdateOne) SetNillableAttempt(v *int) *GradingEventUpdateOne {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *GradingEventUpdateOne) AddAttempt(v int) *GradingEventUpdateOne {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetGrade sets the "grade" field.
func (_u *GradingEventUpdateOne) SetGrade(v int) *GradingEventUpdateOne {
	_u.mutation.ResetGrade()
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *GradingEventUpdateOne) SetNillableGrade(v *int) *GradingEventUpdateOne {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// AddGrade adds value to the "grade" field.
func (_u *GradingEventUpdateOne) AddGrade(v int) *GradingEventUpdateOne {
	_u.mutation.AddGrade(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *GradingEventUpdateOne) SetPassed(v bool) *GradingEventUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *GradingEventUpdateOne) SetNillablePassed(v *bool) *GradingEventUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetNodeStatus sets the "node_status" field.
func (_u *GradingEventUpdateOne) SetNodeStatus(v string) *GradingEventUpdateOne {
	_u.mutation.SetNodeStatus(v)
	return _u
}

// SetNillableNodeStatus sets the "node_status" field if the given value is not nil.
func (_u *GradingEventUpdateOne) SetNillableNodeStatus(v *string) *GradingEventUpdateOne {
	if v != nil {
		_u.SetNodeStatus(*v)
	}
	return _u
}

// Mutation returns the GradingEventMutation object of the builder.
func (_u *GradingEventUpdateOne) Mutation() *GradingEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the GradingEventUpdate builder.
func (_u *GradingEventUpdateOne) Where(ps ...predicate.GradingEvent) *GradingEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GradingEventUpdateOne) Select(field string, fields ...string) *GradingEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GradingEvent entity.
func (_u *GradingEventUpdateOne) Save(ctx context.Context) (*GradingEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GradingEventUpdateOne) SaveX(ctx context.Context) *GradingEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GradingEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GradingEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GradingEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := gradingevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "GradingEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NodeID(); ok {
		if err := gradingevent.NodeIDValidator(v); err != nil {
			return &ValidationError{Name: "node_id", err: fmt.Errorf(`ent: validator failed for field "GradingEvent.node_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := gradingevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "GradingEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NodeStatus(); ok {
		if err := gradingevent.NodeStatusValidator(v); err != nil {
			return &ValidationError{Name: "node_status", err: fmt.Errorf(`ent: validator failed for field "GradingEvent.node_status": %w`, err)}
		}
	}
	return nil
}

func (_u *GradingEventUpdateOne) sqlSave(ctx context.Context) (_node *GradingEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gradingevent.Table, gradingevent.Columns, sqlgraph.NewFieldSpec(gradingevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GradingEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gradingevent.FieldID)
		for _, f := range fields {
			if !gradingevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != gradingevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(gradingevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.NodeID(); ok {
		_spec.SetField(gradingevent.FieldNodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(gradingevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(gradingevent.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(gradingevent.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(gradingevent.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGrade(); ok {
		_spec.AddField(gradingevent.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(gradingevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.NodeStatus(); ok {
		_spec.SetField(gradingevent.FieldNodeStatus, field.TypeString, value)
	}
	_node = &GradingEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gradingevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
