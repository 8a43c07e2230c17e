// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sagelearn/sage/ent/learnersnapshot"
)

// LearnerSnapshotCreate is the builder for creating a LearnerSnapshot entity.
type LearnerSnapshotCreate struct {
	config
	mutation *LearnerSnapshotMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *LearnerSnapshotCreate) SetUserID(v string) *LearnerSnapshotCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetPathID sets the "path_id" field.
func (_c *LearnerSnapshotCreate) SetPathID(v string) *LearnerSnapshotCreate {
	_c.mutation.SetPathID(v)
	return _c
}

// SetNillablePathID sets the "path_id" field if the given value is not nil.
func (_c *LearnerSnapshotCreate) SetNillablePathID(v *string) *LearnerSnapshotCreate {
	if v != nil {
		_c.SetPathID(*v)
	}
	return _c
}

// SetLessonID sets the "lesson_id" field.
func (_c *LearnerSnapshotCreate) SetLessonID(v string) *LearnerSnapshotCreate {
	_c.mutation.SetLessonID(v)
	return _c
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_c *LearnerSnapshotCreate) SetNillableLessonID(v *string) *LearnerSnapshotCreate {
	if v != nil {
		_c.SetLessonID(*v)
	}
	return _c
}

// SetLevel sets the "level" field.
func (_c *LearnerSnapshotCreate) SetLevel(v string) *LearnerSnapshotCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *LearnerSnapshotCreate) SetConfidence(v float64) *LearnerSnapshotCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetAssessment sets the "assessment" field.
func (_c *LearnerSnapshotCreate) SetAssessment(v map[string]interface{}) *LearnerSnapshotCreate {
	_c.mutation.SetAssessment(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LearnerSnapshotCreate) SetCreatedAt(v time.Time) *LearnerSnapshotCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LearnerSnapshotCreate) SetNillableCreatedAt(v *time.Time) *LearnerSnapshotCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LearnerSnapshotCreate) SetID(v string) *LearnerSnapshotCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *LearnerSnapshotCreate) SetNillableID(v *string) *LearnerSnapshotCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the LearnerSnapshotMutation object of the builder.
func (_c *LearnerSnapshotCreate) Mutation() *LearnerSnapshotMutation {
	return _c.mutation
}

// Save creates the LearnerSnapshot in the database.
func (_c *LearnerSnapshotCreate) Save(ctx context.Context) (*LearnerSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearnerSnapshotCreate) SaveX(ctx context.Context) *LearnerSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearnerSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearnerSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearnerSnapshotCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := learnersnapshot.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := learnersnapshot.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearnerSnapshotCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "LearnerSnapshot.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := learnersnapshot.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LearnerSnapshot.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "LearnerSnapshot.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := learnersnapshot.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "LearnerSnapshot.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "LearnerSnapshot.confidence"`)}
	}
	if _, ok := _c.mutation.Assessment(); !ok {
		return &ValidationError{Name: "assessment", err: errors.New(`ent: missing required field "LearnerSnapshot.assessment"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LearnerSnapshot.created_at"`)}
	}
	return nil
}

func (_c *LearnerSnapshotCreate) sqlSave(ctx context.Context) (*LearnerSnapshot, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected LearnerSnapshot.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LearnerSnapshotCreate) createSpec() (*LearnerSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &LearnerSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learnersnapshot.Table, sqlgraph.NewFieldSpec(learnersnapshot.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(learnersnapshot.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.PathID(); ok {
		_spec.SetField(learnersnapshot.FieldPathID, field.TypeString, value)
		_node.PathID = value
	}
	if value, ok := _c.mutation.LessonID(); ok {
		_spec.SetField(learnersnapshot.FieldLessonID, field.TypeString, value)
		_node.LessonID = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(learnersnapshot.FieldLevel, field.TypeString, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(learnersnapshot.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Assessment(); ok {
		_spec.SetField(learnersnapshot.FieldAssessment, field.TypeJSON, value)
		_node.Assessment = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(learnersnapshot.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// LearnerSnapshotCreateBulk is the builder for creating many LearnerSnapshot entities in bulk.
type LearnerSnapshotCreateBulk struct {
	config
	err      error
	builders []*LearnerSnapshotCreate
}

// Save creates the LearnerSnapshot entities in the database.
func (_c *LearnerSnapshotCreateBulk) Save(ctx context.Context) ([]*LearnerSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearnerSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearnerSnapshotMutation)
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
func (_c *LearnerSnapshotCreateBulk) SaveX(ctx context.Context) []*LearnerSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearnerSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearnerSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
