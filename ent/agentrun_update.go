// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/metrics-lab/staticpress/ent/agentrun"
	"github.com/metrics-lab/staticpress/ent/predicate"
	"github.com/metrics-lab/staticpress/ent/site"
)

// AgentRunUpdate is the builder for updating AgentRun entities.
type AgentRunUpdate struct {
	config
	hooks    []Hook
	mutation *AgentRunMutation
}

// Where appends a list predicates to the AgentRunUpdate builder.
func (_u *AgentRunUpdate) Where(ps ...predicate.AgentRun) *AgentRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSiteID sets the "site_id" field.
func (_u *AgentRunUpdate) SetSiteID(v string) *AgentRunUpdate {
	_u.mutation.SetSiteID(v)
	return _u
}

// SetNillableSiteID sets the "site_id" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableSiteID(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetSiteID(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *AgentRunUpdate) SetPhase(v agentrun.Phase) *AgentRunUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillablePhase(v *agentrun.Phase) *AgentRunUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetIteration sets the "iteration" field.
func (_u *AgentRunUpdate) SetIteration(v int) *AgentRunUpdate {
	_u.mutation.ResetIteration()
	_u.mutation.SetIteration(v)
	return _u
}

// SetNillableIteration sets the "iteration" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableIteration(v *int) *AgentRunUpdate {
	if v != nil {
		_u.SetIteration(*v)
	}
	return _u
}

// AddIteration adds value to the "iteration" field.
func (_u *AgentRunUpdate) AddIteration(v int) *AgentRunUpdate {
	_u.mutation.AddIteration(v)
	return _u
}

// SetMaxIterations sets the "max_iterations" field.
func (_u *AgentRunUpdate) SetMaxIterations(v int) *AgentRunUpdate {
	_u.mutation.ResetMaxIterations()
	_u.mutation.SetMaxIterations(v)
	return _u
}

// SetNillableMaxIterations sets the "max_iterations" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableMaxIterations(v *int) *AgentRunUpdate {
	if v != nil {
		_u.SetMaxIterations(*v)
	}
	return _u
}

// AddMaxIterations adds value to the "max_iterations" field.
func (_u *AgentRunUpdate) AddMaxIterations(v int) *AgentRunUpdate {
	_u.mutation.AddMaxIterations(v)
	return _u
}

// SetPhaseTimings sets the "phase_timings" field.
func (_u *AgentRunUpdate) SetPhaseTimings(v map[string]int64) *AgentRunUpdate {
	_u.mutation.SetPhaseTimings(v)
	return _u
}

// ClearPhaseTimings clears the value of the "phase_timings" field.
func (_u *AgentRunUpdate) ClearPhaseTimings() *AgentRunUpdate {
	_u.mutation.ClearPhaseTimings()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *AgentRunUpdate) SetLastError(v string) *AgentRunUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableLastError(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *AgentRunUpdate) ClearLastError() *AgentRunUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetCheckpoint sets the "checkpoint" field.
func (_u *AgentRunUpdate) SetCheckpoint(v map[string]interface{}) *AgentRunUpdate {
	_u.mutation.SetCheckpoint(v)
	return _u
}

// ClearCheckpoint clears the value of the "checkpoint" field.
func (_u *AgentRunUpdate) ClearCheckpoint() *AgentRunUpdate {
	_u.mutation.ClearCheckpoint()
	return _u
}

// SetCurrentBuildID sets the "current_build_id" field.
func (_u *AgentRunUpdate) SetCurrentBuildID(v string) *AgentRunUpdate {
	_u.mutation.SetCurrentBuildID(v)
	return _u
}

// SetNillableCurrentBuildID sets the "current_build_id" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableCurrentBuildID(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetCurrentBuildID(*v)
	}
	return _u
}

// ClearCurrentBuildID clears the value of the "current_build_id" field.
func (_u *AgentRunUpdate) ClearCurrentBuildID() *AgentRunUpdate {
	_u.mutation.ClearCurrentBuildID()
	return _u
}

// SetWorkspaceDir sets the "workspace_dir" field.
func (_u *AgentRunUpdate) SetWorkspaceDir(v string) *AgentRunUpdate {
	_u.mutation.SetWorkspaceDir(v)
	return _u
}

// SetNillableWorkspaceDir sets the "workspace_dir" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableWorkspaceDir(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetWorkspaceDir(*v)
	}
	return _u
}

// ClearWorkspaceDir clears the value of the "workspace_dir" field.
func (_u *AgentRunUpdate) ClearWorkspaceDir() *AgentRunUpdate {
	_u.mutation.ClearWorkspaceDir()
	return _u
}

// SetFinalVerdict sets the "final_verdict" field.
func (_u *AgentRunUpdate) SetFinalVerdict(v string) *AgentRunUpdate {
	_u.mutation.SetFinalVerdict(v)
	return _u
}

// SetNillableFinalVerdict sets the "final_verdict" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableFinalVerdict(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetFinalVerdict(*v)
	}
	return _u
}

// ClearFinalVerdict clears the value of the "final_verdict" field.
func (_u *AgentRunUpdate) ClearFinalVerdict() *AgentRunUpdate {
	_u.mutation.ClearFinalVerdict()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentRunUpdate) SetUpdatedAt(v time.Time) *AgentRunUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AgentRunUpdate) SetCompletedAt(v time.Time) *AgentRunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableCompletedAt(v *time.Time) *AgentRunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AgentRunUpdate) ClearCompletedAt() *AgentRunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetSite sets the "site" edge to the Site entity.
func (_u *AgentRunUpdate) SetSite(v *Site) *AgentRunUpdate {
	return _u.SetSiteID(v.ID)
}

// Mutation returns the AgentRunMutation object of the builder.
func (_u *AgentRunUpdate) Mutation() *AgentRunMutation {
	return _u.mutation
}

// ClearSite clears the "site" edge to the Site entity.
func (_u *AgentRunUpdate) ClearSite() *AgentRunUpdate {
	_u.mutation.ClearSite()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentRunUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentRunUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentrun.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentRunUpdate) check() error {
	if v, ok := _u.mutation.Phase(); ok {
		if err := agentrun.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "AgentRun.phase": %w`, err)}
		}
	}
	if _u.mutation.SiteCleared() && len(_u.mutation.SiteIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentRun.site"`)
	}
	return nil
}

func (_u *AgentRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentrun.Table, agentrun.Columns, sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(agentrun.FieldPhase, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Iteration(); ok {
		_spec.SetField(agentrun.FieldIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIteration(); ok {
		_spec.AddField(agentrun.FieldIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxIterations(); ok {
		_spec.SetField(agentrun.FieldMaxIterations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxIterations(); ok {
		_spec.AddField(agentrun.FieldMaxIterations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PhaseTimings(); ok {
		_spec.SetField(agentrun.FieldPhaseTimings, field.TypeJSON, value)
	}
	if _u.mutation.PhaseTimingsCleared() {
		_spec.ClearField(agentrun.FieldPhaseTimings, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(agentrun.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(agentrun.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.Checkpoint(); ok {
		_spec.SetField(agentrun.FieldCheckpoint, field.TypeJSON, value)
	}
	if _u.mutation.CheckpointCleared() {
		_spec.ClearField(agentrun.FieldCheckpoint, field.TypeJSON)
	}
	if value, ok := _u.mutation.CurrentBuildID(); ok {
		_spec.SetField(agentrun.FieldCurrentBuildID, field.TypeString, value)
	}
	if _u.mutation.CurrentBuildIDCleared() {
		_spec.ClearField(agentrun.FieldCurrentBuildID, field.TypeString)
	}
	if value, ok := _u.mutation.WorkspaceDir(); ok {
		_spec.SetField(agentrun.FieldWorkspaceDir, field.TypeString, value)
	}
	if _u.mutation.WorkspaceDirCleared() {
		_spec.ClearField(agentrun.FieldWorkspaceDir, field.TypeString)
	}
	if value, ok := _u.mutation.FinalVerdict(); ok {
		_spec.SetField(agentrun.FieldFinalVerdict, field.TypeString, value)
	}
	if _u.mutation.FinalVerdictCleared() {
		_spec.ClearField(agentrun.FieldFinalVerdict, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentrun.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(agentrun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(agentrun.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.SiteCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SiteIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentRunUpdateOne is the builder for updating a single AgentRun entity.
type AgentRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentRunMutation
}

// SetSiteID sets the "site_id" field.
func (_u *AgentRunUpdateOne) SetSiteID(v string) *AgentRunUpdateOne {
	_u.mutation.SetSiteID(v)
	return _u
}

// SetNillableSiteID sets the "site_id" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableSiteID(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetSiteID(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *AgentRunUpdateOne) SetPhase(v agentrun.Phase) *AgentRunUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillablePhase(v *agentrun.Phase) *AgentRunUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetIteration sets the "iteration" field.
func (_u *AgentRunUpdateOne) SetIteration(v int) *AgentRunUpdateOne {
	_u.mutation.ResetIteration()
	_u.mutation.SetIteration(v)
	return _u
}

// SetNillableIteration sets the "iteration" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableIteration(v *int) *AgentRunUpdateOne {
	if v != nil {
		_u.SetIteration(*v)
	}
	return _u
}

// AddIteration adds value to the "iteration" field.
func (_u *AgentRunUpdateOne) AddIteration(v int) *AgentRunUpdateOne {
	_u.mutation.AddIteration(v)
	return _u
}

// SetMaxIterations sets the "max_iterations" field.
func (_u *AgentRunUpdateOne) SetMaxIterations(v int) *AgentRunUpdateOne {
	_u.mutation.ResetMaxIterations()
	_u.mutation.SetMaxIterations(v)
	return _u
}

// SetNillableMaxIterations sets the "max_iterations" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableMaxIterations(v *int) *AgentRunUpdateOne {
	if v != nil {
		_u.SetMaxIterations(*v)
	}
	return _u
}

// AddMaxIterations adds value to the "max_iterations" field.
func (_u *AgentRunUpdateOne) AddMaxIterations(v int) *AgentRunUpdateOne {
	_u.mutation.AddMaxIterations(v)
	return _u
}

// SetPhaseTimings sets the "phase_timings" field.
func (_u *AgentRunUpdateOne) SetPhaseTimings(v map[string]int64) *AgentRunUpdateOne {
	_u.mutation.SetPhaseTimings(v)
	return _u
}

// ClearPhaseTimings clears the value of the "phase_timings" field.
func (_u *AgentRunUpdateOne) ClearPhaseTimings() *AgentRunUpdateOne {
	_u.mutation.ClearPhaseTimings()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *AgentRunUpdateOne) SetLastError(v string) *AgentRunUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableLastError(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *AgentRunUpdateOne) ClearLastError() *AgentRunUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetCheckpoint sets the "checkpoint" field.
func (_u *AgentRunUpdateOne) SetCheckpoint(v map[string]interface{}) *AgentRunUpdateOne {
	_u.mutation.SetCheckpoint(v)
	return _u
}

// ClearCheckpoint clears the value of the "checkpoint" field.
func (_u *AgentRunUpdateOne) ClearCheckpoint() *AgentRunUpdateOne {
	_u.mutation.ClearCheckpoint()
	return _u
}

// SetCurrentBuildID sets the "current_build_id" field.
func (_u *AgentRunUpdateOne) SetCurrentBuildID(v string) *AgentRunUpdateOne {
	_u.mutation.SetCurrentBuildID(v)
	return _u
}

// SetNillableCurrentBuildID sets the "current_build_id" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableCurrentBuildID(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetCurrentBuildID(*v)
	}
	return _u
}

// ClearCurrentBuildID clears the value of the "current_build_id" field.
func (_u *AgentRunUpdateOne) ClearCurrentBuildID() *AgentRunUpdateOne {
	_u.mutation.ClearCurrentBuildID()
	return _u
}

// SetWorkspaceDir sets the "workspace_dir" field.
func (_u *AgentRunUpdateOne) SetWorkspaceDir(v string) *AgentRunUpdateOne {
	_u.mutation.SetWorkspaceDir(v)
	return _u
}

// SetNillableWorkspaceDir sets the "workspace_dir" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableWorkspaceDir(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetWorkspaceDir(*v)
	}
	return _u
}

// ClearWorkspaceDir clears the value of the "workspace_dir" field.
func (_u *AgentRunUpdateOne) ClearWorkspaceDir() *AgentRunUpdateOne {
	_u.mutation.ClearWorkspaceDir()
	return _u
}

// SetFinalVerdict sets the "final_verdict" field.
func (_u *AgentRunUpdateOne) SetFinalVerdict(v string) *AgentRunUpdateOne {
	_u.mutation.SetFinalVerdict(v)
	return _u
}

// SetNillableFinalVerdict sets the "final_verdict" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableFinalVerdict(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetFinalVerdict(*v)
	}
	return _u
}

// ClearFinalVerdict clears the value of the "final_verdict" field.
func (_u *AgentRunUpdateOne) ClearFinalVerdict() *AgentRunUpdateOne {
	_u.mutation.ClearFinalVerdict()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentRunUpdateOne) SetUpdatedAt(v time.Time) *AgentRunUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AgentRunUpdateOne) SetCompletedAt(v time.Time) *AgentRunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableCompletedAt(v *time.Time) *AgentRunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AgentRunUpdateOne) ClearCompletedAt() *AgentRunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetSite sets the "site" edge to the Site entity.
func (_u *AgentRunUpdateOne) SetSite(v *Site) *AgentRunUpdateOne {
	return _u.SetSiteID(v.ID)
}

// Mutation returns the AgentRunMutation object of the builder.
func (_u *AgentRunUpdateOne) Mutation() *AgentRunMutation {
	return _u.mutation
}

// ClearSite clears the "site" edge to the Site entity.
func (_u *AgentRunUpdateOne) ClearSite() *AgentRunUpdateOne {
	_u.mutation.ClearSite()
	return _u
}

// Where appends a list predicates to the AgentRunUpdate builder.
func (_u *AgentRunUpdateOne) Where(ps ...predicate.AgentRun) *AgentRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentRunUpdateOne) Select(field string, fields ...string) *AgentRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentRun entity.
func (_u *AgentRunUpdateOne) Save(ctx context.Context) (*AgentRun, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentRunUpdateOne) SaveX(ctx context.Context) *AgentRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentRunUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentrun.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentRunUpdateOne) check() error {
	if v, ok := _u.mutation.Phase(); ok {
		if err := agentrun.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "AgentRun.phase": %w`, err)}
		}
	}
	if _u.mutation.SiteCleared() && len(_u.mutation.SiteIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentRun.site"`)
	}
	return nil
}

func (_u *AgentRunUpdateOne) sqlSave(ctx context.Context) (_node *AgentRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentrun.Table, agentrun.Columns, sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentrun.FieldID)
		for _, f := range fields {
			if !agentrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentrun.FieldID {
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
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(agentrun.FieldPhase, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Iteration(); ok {
		_spec.SetField(agentrun.FieldIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIteration(); ok {
		_spec.AddField(agentrun.FieldIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxIterations(); ok {
		_spec.SetField(agentrun.FieldMaxIterations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxIterations(); ok {
		_spec.AddField(agentrun.FieldMaxIterations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PhaseTimings(); ok {
		_spec.SetField(agentrun.FieldPhaseTimings, field.TypeJSON, value)
	}
	if _u.mutation.PhaseTimingsCleared() {
		_spec.ClearField(agentrun.FieldPhaseTimings, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(agentrun.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(agentrun.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.Checkpoint(); ok {
		_spec.SetField(agentrun.FieldCheckpoint, field.TypeJSON, value)
	}
	if _u.mutation.CheckpointCleared() {
		_spec.ClearField(agentrun.FieldCheckpoint, field.TypeJSON)
	}
	if value, ok := _u.mutation.CurrentBuildID(); ok {
		_spec.SetField(agentrun.FieldCurrentBuildID, field.TypeString, value)
	}
	if _u.mutation.CurrentBuildIDCleared() {
		_spec.ClearField(agentrun.FieldCurrentBuildID, field.TypeString)
	}
	if value, ok := _u.mutation.WorkspaceDir(); ok {
		_spec.SetField(agentrun.FieldWorkspaceDir, field.TypeString, value)
	}
	if _u.mutation.WorkspaceDirCleared() {
		_spec.ClearField(agentrun.FieldWorkspaceDir, field.TypeString)
	}
	if value, ok := _u.mutation.FinalVerdict(); ok {
		_spec.SetField(agentrun.FieldFinalVerdict, field.TypeString, value)
	}
	if _u.mutation.FinalVerdictCleared() {
		_spec.ClearField(agentrun.FieldFinalVerdict, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentrun.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(agentrun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(agentrun.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.SiteCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SiteIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AgentRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
