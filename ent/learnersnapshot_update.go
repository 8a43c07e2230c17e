// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sagelearn/sage/ent/learnersnapshot"
	"github.com/sagelearn/sage/ent/predicate"
)

// LearnerSnapshotUpdate is the builder for updating LearnerSnapshot entities.
type LearnerSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *LearnerSnapshotMutation
}

// Where appends a list predicates to the LearnerSnapshotUpdate builder.
func (_u *LearnerSnapshotUpdate) Where(ps ...predicate.LearnerSnapshot) *LearnerSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the LearnerSnapshotMutation object of the builder.
func (_u *LearnerSnapshotUpdate) Mutation() *LearnerSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearnerSnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearnerSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearnerSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearnerSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LearnerSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(learnersnapshot.Table, learnersnapshot.Columns, sqlgraph.NewFieldSpec(learnersnapshot.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.PathIDCleared() {
		_spec.ClearField(learnersnapshot.FieldPathID, field.TypeString)
	}
	if _u.mutation.LessonIDCleared() {
		_spec.ClearField(learnersnapshot.FieldLessonID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learnersnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearnerSnapshotUpdateOne is the builder for updating a single LearnerSnapshot entity.
type LearnerSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearnerSnapshotMutation
}

// Mutation returns the LearnerSnapshotMutation object of the builder.
func (_u *LearnerSnapshotUpdateOne) Mutation() *LearnerSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearnerSnapshotUpdate builder.
func (_u *LearnerSnapshotUpdateOne) Where(ps ...predicate.LearnerSnapshot) *LearnerSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearnerSnapshotUpdateOne) Select(field string, fields ...string) *LearnerSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearnerSnapshot entity.
func (_u *LearnerSnapshotUpdateOne) Save(ctx context.Context) (*LearnerSnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearnerSnapshotUpdateOne) SaveX(ctx context.Context) *LearnerSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearnerSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearnerSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LearnerSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *LearnerSnapshot, err error) {
	_spec := sqlgraph.NewUpdateSpec(learnersnapshot.Table, learnersnapshot.Columns, sqlgraph.NewFieldSpec(learnersnapshot.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearnerSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learnersnapshot.FieldID)
		for _, f := range fields {
			if !learnersnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learnersnapshot.FieldID {
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
	if _u.mutation.PathIDCleared() {
		_spec.ClearField(learnersnapshot.FieldPathID, field.TypeString)
	}
	if _u.mutation.LessonIDCleared() {
		_spec.ClearField(learnersnapshot.FieldLessonID, field.TypeString)
	}
	_node = &LearnerSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learnersnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
