// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/metrics-lab/staticpress/ent/agentrun"
	"github.com/metrics-lab/staticpress/ent/site"
)

// AgentRunCreate is the builder for creating a AgentRun entity.
type AgentRunCreate struct {
	config
	mutation *AgentRunMutation
	hooks    []Hook
}

// SetSiteID sets the "site_id" field.
func (_c *AgentRunCreate) SetSiteID(v string) *AgentRunCreate {
	_c.mutation.SetSiteID(v)
	return _c
}

// SetPhase sets the "phase" field.
func (_c *AgentRunCreate) SetPhase(v agentrun.Phase) *AgentRunCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillablePhase(v *agentrun.Phase) *AgentRunCreate {
	if v != nil {
		_c.SetPhase(*v)
	}
	return _c
}

// SetIteration sets the "iteration" field.
func (_c *AgentRunCreate) SetIteration(v int) *AgentRunCreate {
	_c.mutation.SetIteration(v)
	return _c
}

// SetNillableIteration sets the "iteration" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableIteration(v *int) *AgentRunCreate {
	if v != nil {
		_c.SetIteration(*v)
	}
	return _c
}

// SetMaxIterations sets the "max_iterations" field.
func (_c *AgentRunCreate) SetMaxIterations(v int) *AgentRunCreate {
	_c.mutation.SetMaxIterations(v)
	return _c
}

// SetNillableMaxIterations sets the "max_iterations" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableMaxIterations(v *int) *AgentRunCreate {
	if v != nil {
		_c.SetMaxIterations(*v)
	}
	return _c
}

// SetPhaseTimings sets the "phase_timings" field.
func (_c *AgentRunCreate) SetPhaseTimings(v map[string]int64) *AgentRunCreate {
	_c.mutation.SetPhaseTimings(v)
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *AgentRunCreate) SetLastError(v string) *AgentRunCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableLastError(v *string) *AgentRunCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetCheckpoint sets the "checkpoint" field.
func (_c *AgentRunCreate) SetCheckpoint(v map[string]interface{}) *AgentRunCreate {
	_c.mutation.SetCheckpoint(v)
	return _c
}

// SetCurrentBuildID sets the "current_build_id" field.
func (_c *AgentRunCreate) SetCurrentBuildID(v string) *AgentRunCreate {
	_c.mutation.SetCurrentBuildID(v)
	return _c
}

// SetNillableCurrentBuildID sets the "current_build_id" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableCurrentBuildID(v *string) *AgentRunCreate {
	if v != nil {
		_c.SetCurrentBuildID(*v)
	}
	return _c
}

// SetWorkspaceDir sets the "workspace_dir" field.
func (_c *AgentRunCreate) SetWorkspaceDir(v string) *AgentRunCreate {
	_c.mutation.SetWorkspaceDir(v)
	return _c
}

// SetNillableWorkspaceDir sets the "workspace_dir" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableWorkspaceDir(v *string) *AgentRunCreate {
	if v != nil {
		_c.SetWorkspaceDir(*v)
	}
	return _c
}

// SetFinalVerdict sets the "final_verdict" field.
func (_c *AgentRunCreate) SetFinalVerdict(v string) *AgentRunCreate {
	_c.mutation.SetFinalVerdict(v)
	return _c
}

// SetNillableFinalVerdict sets the "final_verdict" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableFinalVerdict(v *string) *AgentRunCreate {
	if v != nil {
		_c.SetFinalVerdict(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentRunCreate) SetCreatedAt(v time.Time) *AgentRunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableCreatedAt(v *time.Time) *AgentRunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AgentRunCreate) SetUpdatedAt(v time.Time) *AgentRunCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableUpdatedAt(v *time.Time) *AgentRunCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *AgentRunCreate) SetCompletedAt(v time.Time) *AgentRunCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableCompletedAt(v *time.Time) *AgentRunCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentRunCreate) SetID(v string) *AgentRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSite sets the "site" edge to the Site entity.
func (_c *AgentRunCreate) SetSite(v *Site) *AgentRunCreate {
	return _c.SetSiteID(v.ID)
}

// Mutation returns the AgentRunMutation object of the builder.
func (_c *AgentRunCreate) Mutation() *AgentRunMutation {
	return _c.mutation
}

// Save creates the AgentRun in the database.
func (_c *AgentRunCreate) Save(ctx context.Context) (*AgentRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentRunCreate) SaveX(ctx context.Context) *AgentRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentRunCreate) defaults() {
	if _, ok := _c.mutation.Phase(); !ok {
		v := agentrun.DefaultPhase
		_c.mutation.SetPhase(v)
	}
	if _, ok := _c.mutation.Iteration(); !ok {
		v := agentrun.DefaultIteration
		_c.mutation.SetIteration(v)
	}
	if _, ok := _c.mutation.MaxIterations(); !ok {
		v := agentrun.DefaultMaxIterations
		_c.mutation.SetMaxIterations(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentrun.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := agentrun.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentRunCreate) check() error {
	if _, ok := _c.mutation.SiteID(); !ok {
		return &ValidationError{Name: "site_id", err: errors.New(`ent: missing required field "AgentRun.site_id"`)}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "AgentRun.phase"`)}
	}
	if v, ok := _c.mutation.Phase(); ok {
		if err := agentrun.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "AgentRun.phase": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Iteration(); !ok {
		return &ValidationError{Name: "iteration", err: errors.New(`ent: missing required field "AgentRun.iteration"`)}
	}
	if _, ok := _c.mutation.MaxIterations(); !ok {
		return &ValidationError{Name: "max_iterations", err: errors.New(`ent: missing required field "AgentRun.max_iterations"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentRun.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AgentRun.updated_at"`)}
	}
	if len(_c.mutation.SiteIDs()) == 0 {
		return &ValidationError{Name: "site", err: errors.New(`ent: missing required edge "AgentRun.site"`)}
	}
	return nil
}

func (_c *AgentRunCreate) sqlSave(ctx context.Context) (*AgentRun, error) {
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
			return nil, fmt.Errorf("unexpected AgentRun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentRunCreate) createSpec() (*AgentRun, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentrun.Table, sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(agentrun.FieldPhase, field.TypeEnum, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.Iteration(); ok {
		_spec.SetField(agentrun.FieldIteration, field.TypeInt, value)
		_node.Iteration = value
	}
	if value, ok := _c.mutation.MaxIterations(); ok {
		_spec.SetField(agentrun.FieldMaxIterations, field.TypeInt, value)
		_node.MaxIterations = value
	}
	if value, ok := _c.mutation.PhaseTimings(); ok {
		_spec.SetField(agentrun.FieldPhaseTimings, field.TypeJSON, value)
		_node.PhaseTimings = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(agentrun.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.Checkpoint(); ok {
		_spec.SetField(agentrun.FieldCheckpoint, field.TypeJSON, value)
		_node.Checkpoint = value
	}
	if value, ok := _c.mutation.CurrentBuildID(); ok {
		_spec.SetField(agentrun.FieldCurrentBuildID, field.TypeString, value)
		_node.CurrentBuildID = &value
	}
	if value, ok := _c.mutation.WorkspaceDir(); ok {
		_spec.SetField(agentrun.FieldWorkspaceDir, field.TypeString, value)
		_node.WorkspaceDir = &value
	}
	if value, ok := _c.mutation.FinalVerdict(); ok {
		_spec.SetField(agentrun.FieldFinalVerdict, field.TypeString, value)
		_node.FinalVerdict = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentrun.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(agentrun.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(agentrun.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.SiteIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentrun.SiteTable,
			Columns: []string{agentrun.SiteColumn},
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

// AgentRunCreateBulk is the builder for creating many AgentRun entities in bulk.
type AgentRunCreateBulk struct {
	config
	err      error
	builders []*AgentRunCreate
}

// Save creates the AgentRun entities in the database.
func (_c *AgentRunCreateBulk) Save(ctx context.Context) ([]*AgentRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentRunMutation)
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
func (_c *AgentRunCreateBulk) SaveX(ctx context.Context) []*AgentRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
