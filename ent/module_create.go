// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sagelearn/sage/ent/module"
)

// ModuleCreate is the builder for creating a Module entity.
type ModuleCreate struct {
	config
	mutation *ModuleMutation
	hooks    []Hook
}

// SetPathID sets the "path_id" field.
func (_c *ModuleCreate) SetPathID(v string) *ModuleCreate {
	_c.mutation.SetPathID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ModuleCreate) SetTitle(v string) *ModuleCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ModuleCreate) SetDescription(v string) *ModuleCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ModuleCreate) SetNillableDescription(v *string) *ModuleCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetOrderIndex sets the "order_index" field.
func (_c *ModuleCreate) SetOrderIndex(v int) *ModuleCreate {
	_c.mutation.SetOrderIndex(v)
	return _c
}

// SetIsCompleted sets the "is_completed" field.
func (_c *ModuleCreate) SetIsCompleted(v bool) *ModuleCreate {
	_c.mutation.SetIsCompleted(v)
	return _c
}

// SetNillableIsCompleted sets the "is_completed" field if the given value is not nil.
func (_c *ModuleCreate) SetNillableIsCompleted(v *bool) *ModuleCreate {
	if v != nil {
		_c.SetIsCompleted(*v)
	}
	return _c
}

// SetIsUnlocked sets the "is_unlocked" field.
func (_c *ModuleCreate) SetIsUnlocked(v bool) *ModuleCreate {
	_c.mutation.SetIsUnlocked(v)
	return _c
}

// SetNillableIsUnlocked sets the "is_unlocked" field if the given value is not nil.
func (_c *ModuleCreate) SetNillableIsUnlocked(v *bool) *ModuleCreate {
	if v != nil {
		_c.SetIsUnlocked(*v)
	}
	return _c
}

// SetTotalLessons sets the "total_lessons" field.
func (_c *ModuleCreate) SetTotalLessons(v int) *ModuleCreate {
	_c.mutation.SetTotalLessons(v)
	return _c
}

// SetNillableTotalLessons sets the "total_lessons" field if the given value is not nil.
func (_c *ModuleCreate) SetNillableTotalLessons(v *int) *ModuleCreate {
	if v != nil {
		_c.SetTotalLessons(*v)
	}
	return _c
}

// SetCompletedLessons sets the "completed_lessons" field.
func (_c *ModuleCreate) SetCompletedLessons(v int) *ModuleCreate {
	_c.mutation.SetCompletedLessons(v)
	return _c
}

// SetNillableCompletedLessons sets the "completed_lessons" field if the given value is not nil.
func (_c *ModuleCreate) SetNillableCompletedLessons(v *int) *ModuleCreate {
	if v != nil {
		_c.SetCompletedLessons(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ModuleCreate) SetID(v string) *ModuleCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ModuleCreate) SetNillableID(v *string) *ModuleCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ModuleMutation object of the builder.
func (_c *ModuleCreate) Mutation() *ModuleMutation {
	return _c.mutation
}

// Save creates the Module in the database.
func (_c *ModuleCreate) Save(ctx context.Context) (*Module, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ModuleCreate) SaveX(ctx context.Context) *Module {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModuleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModuleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ModuleCreate) defaults() {
	if _, ok := _c.mutation.IsCompleted(); !ok {
		v := module.DefaultIsCompleted
		_c.mutation.SetIsCompleted(v)
	}
	if _, ok := _c.mutation.IsUnlocked(); !ok {
		v := module.DefaultIsUnlocked
		_c.mutation.SetIsUnlocked(v)
	}
	if _, ok := _c.mutation.TotalLessons(); !ok {
		v := module.DefaultTotalLessons
		_c.mutation.SetTotalLessons(v)
	}
	if _, ok := _c.mutation.CompletedLessons(); !ok {
		v := module.DefaultCompletedLessons
		_c.mutation.SetCompletedLessons(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := module.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ModuleCreate) check() error {
	if _, ok := _c.mutation.PathID(); !ok {
		return &ValidationError{Name: "path_id", err: errors.New(`ent: missing required field "Module.path_id"`)}
	}
	if v, ok := _c.mutation.PathID(); ok {
		if err := module.PathIDValidator(v); err != nil {
			return &ValidationError{Name: "path_id", err: fmt.Errorf(`ent: validator failed for field "Module.path_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Module.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := module.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Module.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OrderIndex(); !ok {
		return &ValidationError{Name: "order_index", err: errors.New(`ent: missing required field "Module.order_index"`)}
	}
	if _, ok := _c.mutation.IsCompleted(); !ok {
		return &ValidationError{Name: "is_completed", err: errors.New(`ent: missing required field "Module.is_completed"`)}
	}
	if _, ok := _c.mutation.IsUnlocked(); !ok {
		return &ValidationError{Name: "is_unlocked", err: errors.New(`ent: missing required field "Module.is_unlocked"`)}
	}
	if _, ok := _c.mutation.TotalLessons(); !ok {
		return &ValidationError{Name: "total_lessons", err: errors.New(`ent: missing required field "Module.total_lessons"`)}
	}
	if _, ok := _c.mutation.CompletedLessons(); !ok {
		return &ValidationError{Name: "completed_lessons", err: errors.New(`ent: missing required field "Module.completed_lessons"`)}
	}
	return nil
}

func (_c *ModuleCreate) sqlSave(ctx context.Context) (*Module, error) {
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
			return nil, fmt.Errorf("unexpected Module.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ModuleCreate) createSpec() (*Module, *sqlgraph.CreateSpec) {
	var (
		_node = &Module{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(module.Table, sqlgraph.NewFieldSpec(module.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.PathID(); ok {
		_spec.SetField(module.FieldPathID, field.TypeString, value)
		_node.PathID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(module.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(module.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.OrderIndex(); ok {
		_spec.SetField(module.FieldOrderIndex, field.TypeInt, value)
		_node.OrderIndex = value
	}
	if value, ok := _c.mutation.IsCompleted(); ok {
		_spec.SetField(module.FieldIsCompleted, field.TypeBool, value)
		_node.IsCompleted = value
	}
	if value, ok := _c.mutation.IsUnlocked(); ok {
		_spec.SetField(module.FieldIsUnlocked, field.TypeBool, value)
		_node.IsUnlocked = value
	}
	if value, ok := _c.mutation.TotalLessons(); ok {
		_spec.SetField(module.FieldTotalLessons, field.TypeInt, value)
		_node.TotalLessons = value
	}
	if value, ok := _c.mutation.CompletedLessons(); ok {
		_spec.SetField(module.FieldCompletedLessons, field.TypeInt, value)
		_node.CompletedLessons = value
	}
	return _node, _spec
}

// ModuleCreateBulk is the builder for creating many Module entities in bulk.
type ModuleCreateBulk struct {
	config
	err      error
	builders []*ModuleCreate
}

// Save creates the Module entities in the database.
func (_c *ModuleCreateBulk) Save(ctx context.Context) ([]*Module, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Module, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ModuleMutation)
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
func (_c *ModuleCreateBulk) SaveX(ctx context.Context) []*Module {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModuleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModuleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
