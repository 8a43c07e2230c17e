// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sagelearn/sage/ent/module"
	"github.com/sagelearn/sage/ent/predicate"
)

// ModuleUpdate is the builder for updating Module entities.
type ModuleUpdate struct {
	config
	hooks    []Hook
	mutation *ModuleMutation
}

// Where appends a list predicates to the ModuleUpdate builder.
func (_u *ModuleUpdate) Where(ps ...predicate.Module) *ModuleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPathID sets the "path_id" field.
func (_u *ModuleUpdate) SetPathID(v string) *ModuleUpdate {
	_u.mutation.SetPathID(v)
	return _u
}

// SetNillablePathID sets the "path_id" field if the given value is not nil.
func (_u *ModuleUpdate) SetNillablePathID(v *string) *ModuleUpdate {
	if v != nil {
		_u.SetPathID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ModuleUpdate) SetTitle(v string) *ModuleUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ModuleUpdate) SetNillableTitle(v *string) *ModuleUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ModuleUpdate) SetDescription(v string) *ModuleUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ModuleUpdate) SetNillableDescription(v *string) *ModuleUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ModuleUpdate) ClearDescription() *ModuleUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetOrderIndex sets the "order_index" field.
func (_u *ModuleUpdate) SetOrderIndex(v int) *ModuleUpdate {
	_u.mutation.ResetOrderIndex()
	_u.mutation.SetOrderIndex(v)
	return _u
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_u *ModuleUpdate) SetNillableOrderIndex(v *int) *ModuleUpdate {
	if v != nil {
		_u.SetOrderIndex(*v)
	}
	return _u
}

// AddOrderIndex adds value to the "order_index" field.
func (_u *ModuleUpdate) AddOrderIndex(v int) *ModuleUpdate {
	_u.mutation.AddOrderIndex(v)
	return _u
}

// SetIsCompleted sets the "is_completed" field.
func (_u *ModuleUpdate) SetIsCompleted(v bool) *ModuleUpdate {
	_u.mutation.SetIsCompleted(v)
	return _u
}

// SetNillableIsCompleted sets the "is_completed" field if the given value is not nil.
func (_u *ModuleUpdate) SetNillableIsCompleted(v *bool) *ModuleUpdate {
	if v != nil {
		_u.SetIsCompleted(*v)
	}
	return _u
}

// SetIsUnlocked sets the "is_unlocked" field.
func (_u *ModuleUpdate) SetIsUnlocked(v bool) *ModuleUpdate {
	_u.mutation.SetIsUnlocked(v)
	return _u
}

// SetNillableIsUnlocked sets the "is_unlocked" field if the given value is not nil.
func (_u *ModuleUpdate) SetNillableIsUnlocked(v *bool) *ModuleUpdate {
	if v != nil {
		_u.SetIsUnlocked(*v)
	}
	return _u
}

// SetTotalLessons sets the "total_lessons" field.
func (_u *ModuleUpdate) SetTotalLessons(v int) *ModuleUpdate {
	_u.mutation.ResetTotalLessons()
	_u.mutation.SetTotalLessons(v)
	return _u
}

// SetNillableTotalLessons sets the "total_lessons" field if the given value is not nil.
func (_u *ModuleUpdate) SetNillableTotalLessons(v *int) *ModuleUpdate {
	if v != nil {
		_u.SetTotalLessons(*v)
	}
	return _u
}

// AddTotalLessons adds value to the "total_lessons" field.
func (_u *ModuleUpdate) AddTotalLessons(v int) *ModuleUpdate {
	_u.mutation.AddTotalLessons(v)
	return _u
}

// SetCompletedLessons sets the "completed_lessons" field.
func (_u *ModuleUpdate) SetCompletedLessons(v int) *ModuleUpdate {
	_u.mutation.ResetCompletedLessons()
	_u.mutation.SetCompletedLessons(v)
	return _u
}

// SetNillableCompletedLessons sets the "completed_lessons" field if the given value is not nil.
func (_u *ModuleUpdate) SetNillableCompletedLessons(v *int) *ModuleUpdate {
	if v != nil {
		_u.SetCompletedLessons(*v)
	}
	return _u
}

// AddCompletedLessons adds value to the "completed_lessons" field.
func (_u *ModuleUpdate) AddCompletedLessons(v int) *ModuleUpdate {
	_u.mutation.AddCompletedLessons(v)
	return _u
}

// Mutation returns the ModuleMutation object of the builder.
func (_u *ModuleUpdate) Mutation() *ModuleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ModuleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModuleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ModuleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModuleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ModuleUpdate) check() error {
	if v, ok := _u.mutation.PathID(); ok {
		if err := module.PathIDValidator(v); err != nil {
			return &ValidationError{Name: "path_id", err: fmt.Errorf(`ent: validator failed for field "Module.path_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := module.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Module.title": %w`, err)}
		}
	}
	return nil
}

func (_u *ModuleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(module.Table, module.Columns, sqlgraph.NewFieldSpec(module.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PathID(); ok {
		_spec.SetField(module.FieldPathID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(module.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(module.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(module.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.OrderIndex(); ok {
		_spec.SetField(module.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderIndex(); ok {
		_spec.AddField(module.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsCompleted(); ok {
		_spec.SetField(module.FieldIsCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsUnlocked(); ok {
		_spec.SetField(module.FieldIsUnlocked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TotalLessons(); ok {
		_spec.SetField(module.FieldTotalLessons, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalLessons(); ok {
		_spec.AddField(module.FieldTotalLessons, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedLessons(); ok {
		_spec.SetField(module.FieldCompletedLessons, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedLessons(); ok {
		_spec.AddField(module.FieldCompletedLessons, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{module.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ModuleUpdateOne is the builder for updating a single Module entity.
type ModuleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ModuleMutation
}

// SetPathID sets the "path_id" field.
func (_u *ModuleUpdateOne) SetPathID(v string) *ModuleUpdateOne {
	_u.mutation.SetPathID(v)
	return _u
}

// SetNillablePathID sets the "path_id" field if the given value is not nil.
func (_u *ModuleUpdateOne) SetNillablePathID(v *string) *ModuleUpdateOne {
	if v != nil {
		_u.SetPathID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ModuleUpdateOne) SetTitle(v string) *ModuleUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ModuleUpdateOne) SetNillableTitle(v *string) *ModuleUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ModuleUpdateOne) SetDescription(v string) *ModuleUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ModuleUpdateOne) SetNillableDescription(v *string) *ModuleUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ModuleUpdateOne) ClearDescription() *ModuleUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetOrderIndex sets the "order_index" field.
func (_u *ModuleUpdateOne) SetOrderIndex(v int) *ModuleUpdateOne {
	_u.mutation.ResetOrderIndex()
	_u.mutation.SetOrderIndex(v)
	return _u
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_u *ModuleUpdateOne) SetNillableOrderIndex(v *int) *ModuleUpdateOne {
	if v != nil {
		_u.SetOrderIndex(*v)
	}
	return _u
}

// AddOrderIndex adds value to the "order_index" field.
func (_u *ModuleUpdateOne) AddOrderIndex(v int) *ModuleUpdateOne {
	_u.mutation.AddOrderIndex(v)
	return _u
}

// SetIsCompleted sets the "is_completed" field.
func (_u *ModuleUpdateOne) SetIsCompleted(v bool) *ModuleUpdateOne {
	_u.mutation.SetIsCompleted(v)
	return _u
}

// SetNillableIsCompleted sets the "is_completed" field if the given value is not nil.
func (_u *ModuleUpdateOne) SetNillableIsCompleted(v *bool) *ModuleUpdateOne {
	if v != nil {
		_u.SetIsCompleted(*v)
	}
	return _u
}

// SetIsUnlocked sets the "is_unlocked" field.
func (_u *ModuleUpdateOne) SetIsUnlocked(v bool) *ModuleUpdateOne {
	_u.mutation.SetIsUnlocked(v)
	return _u
}

// SetNillableIsUnlocked sets the "is_unlocked" field if the given value is not nil.
func (_u *ModuleUpdateOne) SetNillableIsUnlocked(v *bool) *ModuleUpdateOne {
	if v != nil {
		_u.SetIsUnlocked(*v)
	}
	return _u
}

// SetTotalLessons sets the "total_lessons" field.
func (_u *ModuleUpdateOne) SetTotalLessons(v int) *ModuleUpdateOne {
	_u.mutation.ResetTotalLessons()
	_u.mutation.SetTotalLessons(v)
	return _u
}

// SetNillableTotalLessons sets the "total_lessons" field if the given value is not nil.
func (_u *ModuleUpdateOne) SetNillableTotalLessons(v *int) *ModuleUpdateOne {
	if v != nil {
		_u.SetTotalLessons(*v)
	}
	return _u
}

// AddTotalLessons adds value to the "total_lessons" field.
func (_u *ModuleUpdateOne) AddTotalLessons(v int) *ModuleUpdateOne {
	_u.mutation.AddTotalLessons(v)
	return _u
}

// SetCompletedLessons sets the "completed_lessons" field.
func (_u *ModuleUpdateOne) SetCompletedLessons(v int) *ModuleUpdateOne {
	_u.mutation.ResetCompletedLessons()
	_u.mutation.SetCompletedLessons(v)
	return _u
}

// SetNillableCompletedLessons sets the "completed_lessons" field if the given value is not nil.
func (_u *ModuleUpdateOne) SetNillableCompletedLessons(v *int) *ModuleUpdateOne {
	if v != nil {
		_u.SetCompletedLessons(*v)
	}
	return _u
}

// AddCompletedLessons adds value to the "completed_lessons" field.
func (_u *ModuleUpdateOne) AddCompletedLessons(v int) *ModuleUpdateOne {
	_u.mutation.AddCompletedLessons(v)
	return _u
}

// Mutation returns the ModuleMutation object of the builder.
func (_u *ModuleUpdateOne) Mutation() *ModuleMutation {
	return _u.mutation
}

// Where appends a list predicates to the ModuleUpdate builder.
func (_u *ModuleUpdateOne) Where(ps ...predicate.Module) *ModuleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ModuleUpdateOne) Select(field string, fields ...string) *ModuleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Module entity.
func (_u *ModuleUpdateOne) Save(ctx context.Context) (*Module, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModuleUpdateOne) SaveX(ctx context.Context) *Module {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ModuleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModuleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ModuleUpdateOne) check() error {
	if v, ok := _u.mutation.PathID(); ok {
		if err := module.PathIDValidator(v); err != nil {
			return &ValidationError{Name: "path_id", err: fmt.Errorf(`ent: validator failed for field "Module.path_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := module.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Module.title": %w`, err)}
		}
	}
	return nil
}

func (_u *ModuleUpdateOne) sqlSave(ctx context.Context) (_node *Module, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(module.Table, module.Columns, sqlgraph.NewFieldSpec(module.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Module.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, module.FieldID)
		for _, f := range fields {
			if !module.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != module.FieldID {
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
	if value, ok := _u.mutation.PathID(); ok {
		_spec.SetField(module.FieldPathID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(module.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(module.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(module.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.OrderIndex(); ok {
		_spec.SetField(module.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderIndex(); ok {
		_spec.AddField(module.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsCompleted(); ok {
		_spec.SetField(module.FieldIsCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsUnlocked(); ok {
		_spec.SetField(module.FieldIsUnlocked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TotalLessons(); ok {
		_spec.SetField(module.FieldTotalLessons, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalLessons(); ok {
		_spec.AddField(module.FieldTotalLessons, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedLessons(); ok {
		_spec.SetField(module.FieldCompletedLessons, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedLessons(); ok {
		_spec.AddField(module.FieldCompletedLessons, field.TypeInt, value)
	}
	_node = &Module{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{module.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
