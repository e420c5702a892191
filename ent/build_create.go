// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/metrics-lab/staticpress/ent/build"
	"github.com/metrics-lab/staticpress/ent/site"
)

// BuildCreate is the builder for creating a Build entity.
type BuildCreate struct {
	config
	mutation *BuildMutation
	hooks    []Hook
}

// SetSiteID sets the "site_id" field.
func (_c *BuildCreate) SetSiteID(v string) *BuildCreate {
	_c.mutation.SetSiteID(v)
	return _c
}

// SetScope sets the "scope" field.
func (_c *BuildCreate) SetScope(v build.Scope) *BuildCreate {
	_c.mutation.SetScope(v)
	return _c
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_c *BuildCreate) SetNillableScope(v *build.Scope) *BuildCreate {
	if v != nil {
		_c.SetScope(*v)
	}
	return _c
}

// SetTriggeredBy sets the "triggered_by" field.
func (_c *BuildCreate) SetTriggeredBy(v build.TriggeredBy) *BuildCreate {
	_c.mutation.SetTriggeredBy(v)
	return _c
}

// SetNillableTriggeredBy sets the "triggered_by" field if the given value is not nil.
func (_c *BuildCreate) SetNillableTriggeredBy(v *build.TriggeredBy) *BuildCreate {
	if v != nil {
		_c.SetTriggeredBy(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *BuildCreate) SetStatus(v build.Status) *BuildCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *BuildCreate) SetNillableStatus(v *build.Status) *BuildCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCurrentPhase sets the "current_phase" field.
func (_c *BuildCreate) SetCurrentPhase(v string) *BuildCreate {
	_c.mutation.SetCurrentPhase(v)
	return _c
}

// SetNillableCurrentPhase sets the "current_phase" field if the given value is not nil.
func (_c *BuildCreate) SetNillableCurrentPhase(v *string) *BuildCreate {
	if v != nil {
		_c.SetCurrentPhase(*v)
	}
	return _c
}

// SetCheckpointPhase sets the "checkpoint_phase" field.
func (_c *BuildCreate) SetCheckpointPhase(v string) *BuildCreate {
	_c.mutation.SetCheckpointPhase(v)
	return _c
}

// SetNillableCheckpointPhase sets the "checkpoint_phase" field if the given value is not nil.
func (_c *BuildCreate) SetNillableCheckpointPhase(v *string) *BuildCreate {
	if v != nil {
		_c.SetCheckpointPhase(*v)
	}
	return _c
}

// SetPagesTotal sets the "pages_total" field.
func (_c *BuildCreate) SetPagesTotal(v int) *BuildCreate {
	_c.mutation.SetPagesTotal(v)
	return _c
}

// SetNillablePagesTotal sets the "pages_total" field if the given value is not nil.
func (_c *BuildCreate) SetNillablePagesTotal(v *int) *BuildCreate {
	if v != nil {
		_c.SetPagesTotal(*v)
	}
	return _c
}

// SetPagesProcessed sets the "pages_processed" field.
func (_c *BuildCreate) SetPagesProcessed(v int) *BuildCreate {
	_c.mutation.SetPagesProcessed(v)
	return _c
}

// SetNillablePagesProcessed sets the "pages_processed" field if the given value is not nil.
func (_c *BuildCreate) SetNillablePagesProcessed(v *int) *BuildCreate {
	if v != nil {
		_c.SetPagesProcessed(*v)
	}
	return _c
}

// SetOriginalBytes sets the "original_bytes" field.
func (_c *BuildCreate) SetOriginalBytes(v map[string]int64) *BuildCreate {
	_c.mutation.SetOriginalBytes(v)
	return _c
}

// SetOptimizedBytes sets the "optimized_bytes" field.
func (_c *BuildCreate) SetOptimizedBytes(v map[string]int64) *BuildCreate {
	_c.mutation.SetOptimizedBytes(v)
	return _c
}

// SetIframesReplaced sets the "iframes_replaced" field.
func (_c *BuildCreate) SetIframesReplaced(v int) *BuildCreate {
	_c.mutation.SetIframesReplaced(v)
	return _c
}

// SetNillableIframesReplaced sets the "iframes_replaced" field if the given value is not nil.
func (_c *BuildCreate) SetNillableIframesReplaced(v *int) *BuildCreate {
	if v != nil {
		_c.SetIframesReplaced(*v)
	}
	return _c
}

// SetScriptsRemoved sets the "scripts_removed" field.
func (_c *BuildCreate) SetScriptsRemoved(v int) *BuildCreate {
	_c.mutation.SetScriptsRemoved(v)
	return _c
}

// SetNillableScriptsRemoved sets the "scripts_removed" field if the given value is not nil.
func (_c *BuildCreate) SetNillableScriptsRemoved(v *int) *BuildCreate {
	if v != nil {
		_c.SetScriptsRemoved(*v)
	}
	return _c
}

// SetScoreBefore sets the "score_before" field.
func (_c *BuildCreate) SetScoreBefore(v float64) *BuildCreate {
	_c.mutation.SetScoreBefore(v)
	return _c
}

// SetNillableScoreBefore sets the "score_before" field if the given value is not nil.
func (_c *BuildCreate) SetNillableScoreBefore(v *float64) *BuildCreate {
	if v != nil {
		_c.SetScoreBefore(*v)
	}
	return _c
}

// SetScoreAfter sets the "score_after" field.
func (_c *BuildCreate) SetScoreAfter(v float64) *BuildCreate {
	_c.mutation.SetScoreAfter(v)
	return _c
}

// SetNillableScoreAfter sets the "score_after" field if the given value is not nil.
func (_c *BuildCreate) SetNillableScoreAfter(v *float64) *BuildCreate {
	if v != nil {
		_c.SetScoreAfter(*v)
	}
	return _c
}

// SetErrorPhase sets the "error_phase" field.
func (_c *BuildCreate) SetErrorPhase(v string) *BuildCreate {
	_c.mutation.SetErrorPhase(v)
	return _c
}

// SetNillableErrorPhase sets the "error_phase" field if the given value is not nil.
func (_c *BuildCreate) SetNillableErrorPhase(v *string) *BuildCreate {
	if v != nil {
		_c.SetErrorPhase(*v)
	}
	return _c
}

// SetErrorStep sets the "error_step" field.
func (_c *BuildCreate) SetErrorStep(v string) *BuildCreate {
	_c.mutation.SetErrorStep(v)
	return _c
}

// SetNillableErrorStep sets the "error_step" field if the given value is not nil.
func (_c *BuildCreate) SetNillableErrorStep(v *string) *BuildCreate {
	if v != nil {
		_c.SetErrorStep(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *BuildCreate) SetErrorMessage(v string) *BuildCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *BuildCreate) SetNillableErrorMessage(v *string) *BuildCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetErrorRetryable sets the "error_retryable" field.
func (_c *BuildCreate) SetErrorRetryable(v bool) *BuildCreate {
	_c.mutation.SetErrorRetryable(v)
	return _c
}

// SetNillableErrorRetryable sets the "error_retryable" field if the given value is not nil.
func (_c *BuildCreate) SetNillableErrorRetryable(v *bool) *BuildCreate {
	if v != nil {
		_c.SetErrorRetryable(*v)
	}
	return _c
}

// SetResolvedSettings sets the "resolved_settings" field.
func (_c *BuildCreate) SetResolvedSettings(v map[string]interface{}) *BuildCreate {
	_c.mutation.SetResolvedSettings(v)
	return _c
}

// SetLog sets the "log" field.
func (_c *BuildCreate) SetLog(v []map[string]interface{}) *BuildCreate {
	_c.mutation.SetLog(v)
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *BuildCreate) SetRetryCount(v int) *BuildCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *BuildCreate) SetNillableRetryCount(v *int) *BuildCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BuildCreate) SetCreatedAt(v time.Time) *BuildCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BuildCreate) SetNillableCreatedAt(v *time.Time) *BuildCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *BuildCreate) SetStartedAt(v time.Time) *BuildCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *BuildCreate) SetNillableStartedAt(v *time.Time) *BuildCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *BuildCreate) SetCompletedAt(v time.Time) *BuildCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *BuildCreate) SetNillableCompletedAt(v *time.Time) *BuildCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BuildCreate) SetID(v string) *BuildCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSite sets the "site" edge to the Site entity.
func (_c *BuildCreate) SetSite(v *Site) *BuildCreate {
	return _c.SetSiteID(v.ID)
}

// Mutation returns the BuildMutation object of the builder.
func (_c *BuildCreate) Mutation() *BuildMutation {
	return _c.mutation
}

// Save creates the Build in the database.
func (_c *BuildCreate) Save(ctx context.Context) (*Build, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BuildCreate) SaveX(ctx context.Context) *Build {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BuildCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BuildCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BuildCreate) defaults() {
	if _, ok := _c.mutation.Scope(); !ok {
		v := build.DefaultScope
		_c.mutation.SetScope(v)
	}
	if _, ok := _c.mutation.TriggeredBy(); !ok {
		v := build.DefaultTriggeredBy
		_c.mutation.SetTriggeredBy(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := build.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.PagesTotal(); !ok {
		v := build.DefaultPagesTotal
		_c.mutation.SetPagesTotal(v)
	}
	if _, ok := _c.mutation.PagesProcessed(); !ok {
		v := build.DefaultPagesProcessed
		_c.mutation.SetPagesProcessed(v)
	}
	if _, ok := _c.mutation.IframesReplaced(); !ok {
		v := build.DefaultIframesReplaced
		_c.mutation.SetIframesReplaced(v)
	}
	if _, ok := _c.mutation.ScriptsRemoved(); !ok {
		v := build.DefaultScriptsRemoved
		_c.mutation.SetScriptsRemoved(v)
	}
	if _, ok := _c.mutation.ErrorRetryable(); !ok {
		v := build.DefaultErrorRetryable
		_c.mutation.SetErrorRetryable(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := build.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := build.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BuildCreate) check() error {
	if _, ok := _c.mutation.SiteID(); !ok {
		return &ValidationError{Name: "site_id", err: errors.New(`ent: missing required field "Build.site_id"`)}
	}
	if _, ok := _c.mutation.Scope(); !ok {
		return &ValidationError{Name: "scope", err: errors.New(`ent: missing required field "Build.scope"`)}
	}
	if v, ok := _c.mutation.Scope(); ok {
		if err := build.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "Build.scope": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TriggeredBy(); !ok {
		return &ValidationError{Name: "triggered_by", err: errors.New(`ent: missing required field "Build.triggered_by"`)}
	}
	if v, ok := _c.mutation.TriggeredBy(); ok {
		if err := build.TriggeredByValidator(v); err != nil {
			return &ValidationError{Name: "triggered_by", err: fmt.Errorf(`ent: validator failed for field "Build.triggered_by": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Build.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := build.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Build.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PagesTotal(); !ok {
		return &ValidationError{Name: "pages_total", err: errors.New(`ent: missing required field "Build.pages_total"`)}
	}
	if _, ok := _c.mutation.PagesProcessed(); !ok {
		return &ValidationError{Name: "pages_processed", err: errors.New(`ent: missing required field "Build.pages_processed"`)}
	}
	if _, ok := _c.mutation.IframesReplaced(); !ok {
		return &ValidationError{Name: "iframes_replaced", err: errors.New(`ent: missing required field "Build.iframes_replaced"`)}
	}
	if _, ok := _c.mutation.ScriptsRemoved(); !ok {
		return &ValidationError{Name: "scripts_removed", err: errors.New(`ent: missing required field "Build.scripts_removed"`)}
	}
	if _, ok := _c.mutation.ErrorRetryable(); !ok {
		return &ValidationError{Name: "error_retryable", err: errors.New(`ent: missing required field "Build.error_retryable"`)}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "Build.retry_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Build.created_at"`)}
	}
	if len(_c.mutation.SiteIDs()) == 0 {
		return &ValidationError{Name: "site", err: errors.New(`ent: missing required edge "Build.site"`)}
	}
	return nil
}

func (_c *BuildCreate) sqlSave(ctx context.Context) (*Build, error) {
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
			return nil, fmt.Errorf("unexpected Build.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BuildCreate) createSpec() (*Build, *sqlgraph.CreateSpec) {
	var (
		_node = &Build{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(build.Table, sqlgraph.NewFieldSpec(build.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Scope(); ok {
		_spec.SetField(build.FieldScope, field.TypeEnum, value)
		_node.Scope = value
	}
	if value, ok := _c.mutation.TriggeredBy(); ok {
		_spec.SetField(build.FieldTriggeredBy, field.TypeEnum, value)
		_node.TriggeredBy = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(build.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CurrentPhase(); ok {
		_spec.SetField(build.FieldCurrentPhase, field.TypeString, value)
		_node.CurrentPhase = &value
	}
	if value, ok := _c.mutation.CheckpointPhase(); ok {
		_spec.SetField(build.FieldCheckpointPhase, field.TypeString, value)
		_node.CheckpointPhase = &value
	}
	if value, ok := _c.mutation.PagesTotal(); ok {
		_spec.SetField(build.FieldPagesTotal, field.TypeInt, value)
		_node.PagesTotal = value
	}
	if value, ok := _c.mutation.PagesProcessed(); ok {
		_spec.SetField(build.FieldPagesProcessed, field.TypeInt, value)
		_node.PagesProcessed = value
	}
	if value, ok := _c.mutation.OriginalBytes(); ok {
		_spec.SetField(build.FieldOriginalBytes, field.TypeJSON, value)
		_node.OriginalBytes = value
	}
	if value, ok := _c.mutation.OptimizedBytes(); ok {
		_spec.SetField(build.FieldOptimizedBytes, field.TypeJSON, value)
		_node.OptimizedBytes = value
	}
	if value, ok := _c.mutation.IframesReplaced(); ok {
		_spec.SetField(build.FieldIframesReplaced, field.TypeInt, value)
		_node.IframesReplaced = value
	}
	if value, ok := _c.mutation.ScriptsRemoved(); ok {
		_spec.SetField(build.FieldScriptsRemoved, field.TypeInt, value)
		_node.ScriptsRemoved = value
	}
	if value, ok := _c.mutation.ScoreBefore(); ok {
		_spec.SetField(build.FieldScoreBefore, field.TypeFloat64, value)
		_node.ScoreBefore = &value
	}
	if value, ok := _c.mutation.ScoreAfter(); ok {
		_spec.SetField(build.FieldScoreAfter, field.TypeFloat64, value)
		_node.ScoreAfter = &value
	}
	if value, ok := _c.mutation.ErrorPhase(); ok {
		_spec.SetField(build.FieldErrorPhase, field.TypeString, value)
		_node.ErrorPhase = &value
	}
	if value, ok := _c.mutation.ErrorStep(); ok {
		_spec.SetField(build.FieldErrorStep, field.TypeString, value)
		_node.ErrorStep = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(build.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ErrorRetryable(); ok {
		_spec.SetField(build.FieldErrorRetryable, field.TypeBool, value)
		_node.ErrorRetryable = value
	}
	if value, ok := _c.mutation.ResolvedSettings(); ok {
		_spec.SetField(build.FieldResolvedSettings, field.TypeJSON, value)
		_node.ResolvedSettings = value
	}
	if value, ok := _c.mutation.Log(); ok {
		_spec.SetField(build.FieldLog, field.TypeJSON, value)
		_node.Log = value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(build.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(build.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(build.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(build.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.SiteIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   build.SiteTable,
			Columns: []string{build.SiteColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(site.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SiteID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BuildCreateBulk is the builder for creating many Build entities in bulk.
type BuildCreateBulk struct {
	config
	err      error
	builders []*BuildCreate
}

// Save creates the Build entities in the database.
func (_c *BuildCreateBulk) Save(ctx context.Context) ([]*Build, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Build, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BuildMutation)
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
func (_c *BuildCreateBulk) SaveX(ctx context.Context) []*Build {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BuildCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BuildCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
