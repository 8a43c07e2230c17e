// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/sagelearn/sage/ent/predicate"
	"github.com/sagelearn/sage/ent/project"
)

// ProjectUpdate is the builder for updating Project entities.
type ProjectUpdate struct {
	config
	hooks    []Hook
	mutation *ProjectMutation
}

// Where appends a list predicates to the ProjectUpdate builder.
func (_u *ProjectUpdate) Where(ps ...predicate.Project) *ProjectUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ProjectUpdate) SetUserID(v string) *ProjectUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableUserID(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ProjectUpdate) SetTitle(v string) *ProjectUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableTitle(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ProjectUpdate) SetDescription(v string) *ProjectUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableDescription(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetTechnologies sets the "technologies" field.
func (_u *ProjectUpdate) SetTechnologies(v []string) *ProjectUpdate {
	_u.mutation.SetTechnologies(v)
	return _u
}

// AppendTechnologies appends value to the "technologies" field.
func (_u *ProjectUpdate) AppendTechnologies(v []string) *ProjectUpdate {
	_u.mutation.AppendTechnologies(v)
	return _u
}

// SetImageURL sets the "image_url" field.
func (_u *ProjectUpdate) SetImageURL(v string) *ProjectUpdate {
	_u.mutation.SetImageURL(v)
	return _u
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableImageURL(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetImageURL(*v)
	}
	return _u
}

// ClearImageURL clears the value of the "image_url" field.
func (_u *ProjectUpdate) ClearImageURL() *ProjectUpdate {
	_u.mutation.ClearImageURL()
	return _u
}

// SetGithubURL sets the "github_url" field.
func (_u *ProjectUpdate) SetGithubURL(v string) *ProjectUpdate {
	_u.mutation.SetGithubURL(v)
	return _u
}

// SetNillableGithubURL sets the "github_url" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableGithubURL(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetGithubURL(*v)
	}
	return _u
}

// ClearGithubURL clears the value of the "github_url" field.
func (_u *ProjectUpdate) ClearGithubURL() *ProjectUpdate {
	_u.mutation.ClearGithubURL()
	return _u
}

// SetLiveURL sets the "live_url" field.
func (_u *ProjectUpdate) SetLiveURL(v string) *ProjectUpdate {
	_u.mutation.SetLiveURL(v)
	return _u
}

// SetNillableLiveURL sets the "live_url" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableLiveURL(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetLiveURL(*v)
	}
	return _u
}

// ClearLiveURL clears the value of the "live_url" field.
func (_u *ProjectUpdate) ClearLiveURL() *ProjectUpdate {
	_u.mutation.ClearLiveURL()
	return _u
}

// SetIsCompleted sets the "is_completed" field.
func (_u *ProjectUpdate) SetIsCompleted(v bool) *ProjectUpdate {
	_u.mutation.SetIsCompleted(v)
	return _u
}

// SetNillableIsCompleted sets the "is_completed" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableIsCompleted(v *bool) *ProjectUpdate {
	if v != nil {
		_u.SetIsCompleted(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ProjectUpdate) SetCompletedAt(v time.Time) *ProjectUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableCompletedAt(v *time.Time) *ProjectUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ProjectUpdate) ClearCompletedAt() *ProjectUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the ProjectMutation object of the builder.
func (_u *ProjectUpdate) Mutation() *ProjectMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProjectUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProjectUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProjectUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := project.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Project.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := project.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Project.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := project.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Project.description": %w`, err)}
		}
	}
	return nil
}

func (_u *ProjectUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(project.Table, project.Columns, sqlgraph.NewFieldSpec(project.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(project.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(project.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(project.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Technologies(); ok {
		_spec.SetField(project.FieldTechnologies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTechnologies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, project.FieldTechnologies, value)
		})
	}
	if value, ok := _u.mutation.ImageURL(); ok {
		_spec.SetField(project.FieldImageURL, field.TypeString, value)
	}
	if _u.mutation.ImageURLCleared() {
		_spec.ClearField(project.FieldImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.GithubURL(); ok {
		_spec.SetField(project.FieldGithubURL, field.TypeString, value)
	}
	if _u.mutation.GithubURLCleared() {
		_spec.ClearField(project.FieldGithubURL, field.TypeString)
	}
	if value, ok := _u.mutation.LiveURL(); ok {
		_spec.SetField(project.FieldLiveURL, field.TypeString, value)
	}
	if _u.mutation.LiveURLCleared() {
		_spec.ClearField(project.FieldLiveURL, field.TypeString)
	}
	if value, ok := _u.mutation.IsCompleted(); ok {
		_spec.SetField(project.FieldIsCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(project.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(project.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{project.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProjectUpdateOne is the builder for updating a single Project entity.
type ProjectUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProjectMutation
}

// SetUserID sets the "user_id" field.
func (_u *ProjectUpdateOne) SetUserID(v string) *ProjectUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableUserID(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ProjectUpdateOne) SetTitle(v string) *ProjectUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableTitle(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ProjectUpdateOne) SetDescription(v string) *ProjectUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableDescription(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetTechnologies sets the "technologies" field.
func (_u *ProjectUpdateOne) SetTechnologies(v []string) *ProjectUpdateOne {
	_u.mutation.SetTechnologies(v)
	return _u
}

// AppendTechnologies appends value to the "technologies" field.
func (_u *ProjectUpdateOne) AppendTechnologies(v []string) *ProjectUpdateOne {
	_u.mutation.AppendTechnologies(v)
	return _u
}

// SetImageURL sets the "image_url" field.
func (_u *ProjectUpdateOne) SetImageURL(v string) *ProjectUpdateOne {
	_u.mutation.SetImageURL(v)
	return _u
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableImageURL(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetImageURL(*v)
	}
	return _u
}

// ClearImageURL clears the value of the "image_url" field.
func (_u *ProjectUpdateOne) ClearImageURL() *ProjectUpdateOne {
	_u.mutation.ClearImageURL()
	return _u
}

// SetGithubURL sets the "github_url" field.
func (_u *ProjectUpdateOne) SetGithubURL(v string) *ProjectUpdateOne {
	_u.mutation.SetGithubURL(v)
	return _u
}

// SetNillableGithubURL sets the "github_url" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableGithubURL(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetGithubURL(*v)
	}
	return _u
}

// ClearGithubURL clears the value of the "github_url" field.
func (_u *ProjectUpdateOne) ClearGithubURL() *ProjectUpdateOne {
	_u.mutation.ClearGithubURL()
	return _u
}

// SetLiveURL sets the "live_url" field.
func (_u *ProjectUpdateOne) SetLiveURL(v string) *ProjectUpdateOne {
	_u.mutation.SetLiveURL(v)
	return _u
}

// SetNillableLiveURL sets the "live_url" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableLiveURL(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetLiveURL(*v)
	}
	return _u
}

// ClearLiveURL clears the value of the "live_url" field.
func (_u *ProjectUpdateOne) ClearLiveURL() *ProjectUpdateOne {
	_u.mutation.ClearLiveURL()
	return _u
}

// SetIsCompleted sets the "is_completed" field.
func (_u *ProjectUpdateOne) SetIsCompleted(v bool) *ProjectUpdateOne {
	_u.mutation.SetIsCompleted(v)
	return _u
}

// SetNillableIsCompleted sets the "is_completed" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableIsCompleted(v *bool) *ProjectUpdateOne {
	if v != nil {
		_u.SetIsCompleted(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ProjectUpdateOne) SetCompletedAt(v time.Time) *ProjectUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableCompletedAt(v *time.Time) *ProjectUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ProjectUpdateOne) ClearCompletedAt() *ProjectUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the ProjectMutation object of the builder.
func (_u *ProjectUpdateOne) Mutation() *ProjectMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProjectUpdate builder.
func (_u *ProjectUpdateOne) Where(ps ...predicate.Project) *ProjectUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProjectUpdateOne) Select(field string, fields ...string) *ProjectUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Project entity.
func (_u *ProjectUpdateOne) Save(ctx context.Context) (*Project, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectUpdateOne) SaveX(ctx context.Context) *Project {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProjectUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProjectUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := project.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Project.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := project.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Project.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := project.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "Project.description": %w`, err)}
		}
	}
	return nil
}

func (_u *ProjectUpdateOne) sqlSave(ctx context.Context) (_node *Project, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(project.Table, project.Columns, sqlgraph.NewFieldSpec(project.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Project.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, project.FieldID)
		for _, f := range fields {
			if !project.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != project.FieldID {
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
		_spec.SetField(project.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(project.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(project.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Technologies(); ok {
		_spec.SetField(project.FieldTechnologies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTechnologies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, project.FieldTechnologies, value)
		})
	}
	if value, ok := _u.mutation.ImageURL(); ok {
		_spec.SetField(project.FieldImageURL, field.TypeString, value)
	}
	if _u.mutation.ImageURLCleared() {
		_spec.ClearField(project.FieldImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.GithubURL(); ok {
		_spec.SetField(project.FieldGithubURL, field.TypeString, value)
	}
	if _u.mutation.GithubURLCleared() {
		_spec.ClearField(project.FieldGithubURL, field.TypeString)
	}
	if value, ok := _u.mutation.LiveURL(); ok {
		_spec.SetField(project.FieldLiveURL, field.TypeString, value)
	}
	if _u.mutation.LiveURLCleared() {
		_spec.ClearField(project.FieldLiveURL, field.TypeString)
	}
	if value, ok := _u.mutation.IsCompleted(); ok {
		_spec.SetField(project.FieldIsCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(project.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(project.FieldCompletedAt, field.TypeTime)
	}
	_node = &Project{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{project.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
