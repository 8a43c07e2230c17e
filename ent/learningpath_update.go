// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sagelearn/sage/ent/learningpath"
	"github.com/sagelearn/sage/ent/predicate"
)

// LearningPathUpdate is the builder for updating LearningPath entities.
type LearningPathUpdate struct {
	config
	hooks    []Hook
	mutation *LearningPathMutation
}

// Where appends a list predicates to the LearningPathUpdate builder.
func (_u *LearningPathUpdate) Where(ps ...predicate.LearningPath) *LearningPathUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *LearningPathUpdate) SetUserID(v string) *LearningPathUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LearningPathUpdate) SetNillableUserID(v *string) *LearningPathUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *LearningPathUpdate) SetTitle(v string) *LearningPathUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LearningPathUpdate) SetNillableTitle(v *string) *LearningPathUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *LearningPathUpdate) SetDescription(v string) *LearningPathUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *LearningPathUpdate) SetNillableDescription(v *string) *LearningPathUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetGoal sets the "goal" field.
func (_u *LearningPathUpdate) SetGoal(v string) *LearningPathUpdate {
	_u.mutation.SetGoal(v)
	return _u
}

// SetNillableGoal sets the "goal" field if the given value is not nil.
func (_u *LearningPathUpdate) SetNillableGoal(v *string) *LearningPathUpdate {
	if v != nil {
		_u.SetGoal(*v)
	}
	return _u
}

// SetMotivation sets the "motivation" field.
func (_u *LearningPathUpdate) SetMotivation(v string) *LearningPathUpdate {
	_u.mutation.SetMotivation(v)
	return _u
}

// SetNillableMotivation sets the "motivation" field if the given value is not nil.
func (_u *LearningPathUpdate) SetNillableMotivation(v *string) *LearningPathUpdate {
	if v != nil {
		_u.SetMotivation(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *LearningPathUpdate) SetDifficulty(v string) *LearningPathUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *LearningPathUpdate) SetNillableDifficulty(v *string) *LearningPathUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetEstimatedDuration sets the "estimated_duration" field.
func (_u *LearningPathUpdate) SetEstimatedDuration(v string) *LearningPathUpdate {
	_u.mutation.SetEstimatedDuration(v)
	return _u
}

// SetNillableEstimatedDuration sets the "estimated_duration" field if the given value is not nil.
func (_u *LearningPathUpdate) SetNillableEstimatedDuration(v *string) *LearningPathUpdate {
	if v != nil {
		_u.SetEstimatedDuration(*v)
	}
	return _u
}

// ClearEstimatedDuration clears the value of the "estimated_duration" field.
func (_u *LearningPathUpdate) ClearEstimatedDuration() *LearningPathUpdate {
	_u.mutation.ClearEstimatedDuration()
	return _u
}

// SetProgress sets the "progress" field.
func (_u *LearningPathUpdate) SetProgress(v int) *LearningPathUpdate {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *LearningPathUpdate) SetNillableProgress(v *int) *LearningPathUpdate {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *LearningPathUpdate) AddProgress(v int) *LearningPathUpdate {
	_u.mutation.AddProgress(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *LearningPathUpdate) SetIsActive(v bool) *LearningPathUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *LearningPathUpdate) SetNillableIsActive(v *bool) *LearningPathUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the LearningPathMutation object of the builder.
func (_u *LearningPathUpdate) Mutation() *LearningPathMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearningPathUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningPathUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearningPathUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningPathUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningPathUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := learningpath.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LearningPath.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := learningpath.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "LearningPath.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := learningpath.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "LearningPath.description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Goal(); ok {
		if err := learningpath.GoalValidator(v); err != nil {
			return &ValidationError{Name: "goal", err: fmt.Errorf(`ent: validator failed for field "LearningPath.goal": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Motivation(); ok {
		if err := learningpath.MotivationValidator(v); err != nil {
			return &ValidationError{Name: "motivation", err: fmt.Errorf(`ent: validator failed for field "LearningPath.motivation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := learningpath.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "LearningPath.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *LearningPathUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningpath.Table, learningpath.Columns, sqlgraph.NewFieldSpec(learningpath.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(learningpath.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(learningpath.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(learningpath.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Goal(); ok {
		_spec.SetField(learningpath.FieldGoal, field.TypeString, value)
	}
	if value, ok := _u.mutation.Motivation(); ok {
		_spec.SetField(learningpath.FieldMotivation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(learningpath.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.EstimatedDuration(); ok {
		_spec.SetField(learningpath.FieldEstimatedDuration, field.TypeString, value)
	}
	if _u.mutation.EstimatedDurationCleared() {
		_spec.ClearField(learningpath.FieldEstimatedDuration, field.TypeString)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(learningpath.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(learningpath.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(learningpath.FieldIsActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningpath.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearningPathUpdateOne is the builder for updating a single LearningPath entity.
type LearningPathUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearningPathMutation
}

// SetUserID sets the "user_id" field.
func (_u *LearningPathUpdateOne) SetUserID(v string) *LearningPathUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LearningPathUpdateOne) SetNillableUserID(v *string) *LearningPathUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *LearningPathUpdateOne) SetTitle(v string) *LearningPathUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LearningPathUpdateOne) SetNillableTitle(v *string) *LearningPathUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *LearningPathUpdateOne) SetDescription(v string) *LearningPathUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *LearningPathUpdateOne) SetNillableDescription(v *string) *LearningPathUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetGoal sets the "goal" field.
func (_u *LearningPathUpdateOne) SetGoal(v string) *LearningPathUpdateOne {
	_u.mutation.SetGoal(v)
	return _u
}

// SetNillableGoal sets the "goal" field if the given value is not nil.
func (_u *LearningPathUpdateOne) SetNillableGoal(v *string) *LearningPathUpdateOne {
	if v != nil {
		_u.SetGoal(*v)
	}
	return _u
}

// SetMotivation sets the "motivation" field.
func (_u *LearningPathUpdateOne) SetMotivation(v string) *LearningPathUpdateOne {
	_u.mutation.SetMotivation(v)
	return _u
}

// SetNillableMotivation sets the "motivation" field if the given value is not nil.
func (_u *LearningPathUpdateOne) SetNillableMotivation(v *string) *LearningPathUpdateOne {
	if v != nil {
		_u.SetMotivation(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *LearningPathUpdateOne) SetDifficulty(v string) *LearningPathUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *LearningPathUpdateOne) SetNillableDifficulty(v *string) *LearningPathUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetEstimatedDuration sets the "estimated_duration" field.
func (_u *LearningPathUpdateOne) SetEstimatedDuration(v string) *LearningPathUpdateOne {
	_u.mutation.SetEstimatedDuration(v)
	return _u
}

// SetNillableEstimatedDuration sets the "estimated_duration" field if the given value is not nil.
func (_u *LearningPathUpdateOne) SetNillableEstimatedDuration(v *string) *LearningPathUpdateOne {
	if v != nil {
		_u.SetEstimatedDuration(*v)
	}
	return _u
}

// ClearEstimatedDuration clears the value of the "estimated_duration" field.
func (_u *LearningPathUpdateOne) ClearEstimatedDuration() *LearningPathUpdateOne {
	_u.mutation.ClearEstimatedDuration()
	return _u
}

// SetProgress sets the "progress" field.
func (_u *LearningPathUpdateOne) SetProgress(v int) *LearningPathUpdateOne {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *LearningPathUpdateOne) SetNillableProgress(v *int) *LearningPathUpdateOne {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *LearningPathUpdateOne) AddProgress(v int) *LearningPathUpdateOne {
	_u.mutation.AddProgress(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *LearningPathUpdateOne) SetIsActive(v bool) *LearningPathUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *LearningPathUpdateOne) SetNillableIsActive(v *bool) *LearningPathUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the LearningPathMutation object of the builder.
func (_u *LearningPathUpdateOne) Mutation() *LearningPathMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearningPathUpdate builder.
func (_u *LearningPathUpdateOne) Where(ps ...predicate.LearningPath) *LearningPathUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearningPathUpdateOne) Select(field string, fields ...string) *LearningPathUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearningPath entity.
func (_u *LearningPathUpdateOne) Save(ctx context.Context) (*LearningPath, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningPathUpdateOne) SaveX(ctx context.Context) *LearningPath {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearningPathUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningPathUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningPathUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := learningpath.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LearningPath.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := learningpath.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "LearningPath.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := learningpath.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "LearningPath.description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Goal(); ok {
		if err := learningpath.GoalValidator(v); err != nil {
			return &ValidationError{Name: "goal", err: fmt.Errorf(`ent: validator failed for field "LearningPath.goal": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Motivation(); ok {
		if err := learningpath.MotivationValidator(v); err != nil {
			return &ValidationError{Name: "motivation", err: fmt.Errorf(`ent: validator failed for field "LearningPath.motivation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := learningpath.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "LearningPath.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *LearningPathUpdateOne) sqlSave(ctx context.Context) (_node *LearningPath, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningpath.Table, learningpath.Columns, sqlgraph.NewFieldSpec(learningpath.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearningPath.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learningpath.FieldID)
		for _, f := range fields {
			if !learningpath.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learningpath.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(learningpath.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(learningpath.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(learningpath.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Goal(); ok {
		_spec.SetField(learningpath.FieldGoal, field.TypeString, value)
	}
	if value, ok := _u.mutation.Motivation(); ok {
		_spec.SetField(learningpath.FieldMotivation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(learningpath.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.EstimatedDuration(); ok {
		_spec.SetField(learningpath.FieldEstimatedDuration, field.TypeString, value)
	}
	if _u.mutation.EstimatedDurationCleared() {
		_spec.ClearField(learningpath.FieldEstimatedDuration, field.TypeString)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(learningpath.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(learningpath.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(learningpath.FieldIsActive, field.TypeBool, value)
	}
	_node = &LearningPath{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningpath.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
