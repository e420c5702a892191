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
	"github.com/metrics-lab/staticpress/ent/build"
	"github.com/metrics-lab/staticpress/ent/predicate"
	"github.com/metrics-lab/staticpress/ent/site"
)

// BuildUpdate is the builder for updating Build entities.
type BuildUpdate struct {
	config
	hooks    []Hook
	mutation *BuildMutation
}

// Where appends a list predicates to the BuildUpdate builder.
func (_u *BuildUpdate) Where(ps ...predicate.Build) *BuildUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSiteID sets the "site_id" field.
func (_u *BuildUpdate) SetSiteID(v string) *BuildUpdate {
	_u.mutation.SetSiteID(v)
	return _u
}

// SetNillableSiteID sets the "site_id" field if the given value is not nil.
func (_u *BuildUpdate) SetNillableSiteID(v *string) *BuildUpdate {
	if v != nil {
		_u.SetSiteID(*v)
	}
	return _u
}

// SetScope sets the "scope" field.
func (_u *BuildUpdate) SetScope(v build.Scope) *BuildUpdate {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *BuildUpdate) SetNillableScope(v *build.Scope) *BuildUpdate {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetTriggeredBy sets the "triggered_by" field.
func (_u *BuildUpdate) SetTriggeredBy(v build.TriggeredBy) *BuildUpdate {
	_u.mutation.SetTriggeredBy(v)
	return _u
}

// SetNillableTriggeredBy sets the "triggered_by" field if the given value is not nil.
func (_u *BuildUpdate) SetNillableTriggeredBy(v *build.TriggeredBy) *BuildUpdate {
	if v != nil {
		_u.SetTriggeredBy(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *BuildUpdate) SetStatus(v build.Status) *BuildUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BuildUpdate) SetNillableStatus(v *build.Status) *BuildUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentPhase sets the "current_phase" field.
func (_u *BuildUpdate) SetCurrentPhase(v string) *BuildUpdate {
	_u.mutation.SetCurrentPhase(v)
	return _u
}

// SetNillableCurrentPhase sets the "current_phase" field if the given value is not nil.
func (_u *BuildUpdate) SetNillableCurrentPhase(v *string) *BuildUpdate {
	if v != nil {
		_u.SetCurrentPhase(*v)
	}
	return _u
}

// ClearCurrentPhase clears the value of the "current_phase" field.
func (_u *BuildUpdate) ClearCurrentPhase() *BuildUpdate {
	_u.mutation.ClearCurrentPhase()
	return _u
}

// SetCheckpointPhase sets the "checkpoint_phase" field.
func (_u *BuildUpdate) SetCheckpointPhase(v string) *BuildUpdate {
	_u.mutation.SetCheckpointPhase(v)
	return _u
}

// SetNillableCheckpointPhase sets the "checkpoint_phase" field if the given value is not nil.
func (_u *BuildUpdate) SetNillableCheckpointPhase(v *string) *BuildUpdate {
	if v != nil {
		_u.SetCheckpointPhase(*v)
	}
	return _u
}

// ClearCheckpointPhase clears the value of the "checkpoint_phase" field.
func (_u *BuildUpdate) ClearCheckpointPhase() *BuildUpdate {
	_u.mutation.ClearCheckpointPhase()
	return _u
}

// SetPagesTotal sets the "pages_total" field.
func (_u *BuildUpdate) SetPagesTotal(v int) *BuildUpdate {
	_u.mutation.ResetPagesTotal()
	_u.mutation.SetPagesTotal(v)
	return _u
}

// SetNillablePagesTotal sets the "pages_total" field if the given value is not nil.
func (_u *BuildUpdate) SetNillablePagesTotal(v *int) *BuildUpdate {
	if v != nil {
		_u.SetPagesTotal(*v)
	}
	return _u
}

// AddPagesTotal adds value to the "pages_total" field.
func (_u *BuildUpdate) AddPagesTotal(v int) *BuildUpdate {
	_u.mutation.AddPagesTotal(v)
	return _u
}

// SetPagesProcessed sets the "pages_processed" field.
func (_u *BuildUpdate) SetPagesProcessed(v int) *BuildUpdate {
	_u.mutation.ResetPagesProcessed()
	_u.mutation.SetPagesProcessed(v)
	return _u
}

// SetNillablePagesProcessed sets the "pages_processed" field if the given value is not nil.
func (_u *BuildUpdate) SetNillablePagesProcessed(v *int) *BuildUpdate {
	if v != nil {
		_u.SetPagesProcessed(*v)
	}
	return _u
}

// AddPagesProcessed adds value to the "pages_processed" field.
func (_u *BuildUpdate) AddPagesProcessed(v int) *BuildUpdate {
	_u.mutation.AddPagesProcessed(v)
	return _u
}

// SetOriginalBytes sets the "original_bytes" field.
func (_u *BuildUpdate) SetOriginalBytes(v map[string]int64) *BuildUpdate {
	_u.mutation.SetOriginalBytes(v)
	return _u
}

// ClearOriginalBytes clears the value of the "original_bytes" field.
func (_u *BuildUpdate) ClearOriginalBytes() *BuildUpdate {
	_u.mutation.ClearOriginalBytes()
	return _u
}

// SetOptimizedBytes sets the "optimized_bytes" field.
func (_u *BuildUpdate) SetOptimizedBytes(v map[string]int64) *BuildUpdate {
	_u.mutation.SetOptimizedBytes(v)
	return _u
}

// ClearOptimizedBytes clears the value of the "optimized_bytes" field.
func (_u *BuildUpdate) ClearOptimizedBytes() *BuildUpdate {
	_u.mutation.ClearOptimizedBytes()
	return _u
}

// SetIframesReplaced sets the "iframes_replaced" field.
func (_u *BuildUpdate) SetIframesReplaced(v int) *BuildUpdate {
	_u.mutation.ResetIframesReplaced()
	_u.mutation.SetIframesReplaced(v)
	return _u
}

// SetNillableIframesReplaced sets the "iframes_replaced" field if the given value is not nil.
func (_u *BuildUpdate) SetNillableIframesReplaced(v *int) *BuildUpdate {
	if v != nil {
		_u.SetIframesReplaced(*v)
	}
	return _u
}

// AddIframesReplaced adds value to the "iframes_replaced" field.
func (_u *BuildUpdate) AddIframesReplaced(v int) *BuildUpdate {
	_u.mutation.AddIframesReplaced(v)
	return _u
}

// SetScriptsRemoved sets the "scripts_removed" field.
func (_u *BuildUpdate) SetScriptsRemoved(v int) *BuildUpdate {
	_u.mutation.ResetScriptsRemoved()
	_u.mutation.SetScriptsRemoved(v)
	return _u
}

// SetNillableScriptsRemoved sets the "scripts_removed" field if the given value is not nil.
func (_u *BuildUpdate) SetNillableScriptsRemoved(v *int) *BuildUpdate {
	if v != nil {
		_u.SetScriptsRemoved(*v)
	}
	return _u
}

// AddScriptsRemoved adds value to the "scripts_removed" field.
func (_u *BuildUpdate) AddScriptsRemoved(v int) *BuildUpdate {
	_u.mutation.AddScriptsRemoved(v)
	return _u
}

// SetScoreBefore sets the "score_before" field.
func (_u *BuildUpdate) SetScoreBefore(v float64) *BuildUpdate {
	_u.mutation.ResetScoreBefore()
	_u.mutation.SetScoreBefore(v)
	return _u
}

// SetNillableScoreBefore sets the "score_before" field if the given value is not nil.
func (_u *BuildUpdate) SetNillableScoreBefore(v *float64) *BuildUpdate {
	if v != nil {
		_u.SetScoreBefore(*v)
	}
	return _u
}

// AddScoreBefore adds value to the "score_before" field.
func (_u *BuildUpdate) AddScoreBefore(v float64) *BuildUpdate {
	_u.mutation.AddScoreBefore(v)
	return _u
}

// ClearScoreBefore clears the value of the "score_before" field.
func (_u *BuildUpdate) ClearScoreBefore() *BuildUpdate {
	_u.mutation.ClearScoreBefore()
	return _u
}

// SetScoreAfter sets the "score_after" field.
func (_u *BuildUpdate) SetScoreAfter(v float64) *BuildUpdate {
	_u.mutation.ResetScoreAfter()
	_u.mutation.SetScoreAfter(v)
	return _u
}

// SetNillableScoreAfter sets the "score_after" field if the given value is not nil.
func (_u *BuildUpdate) SetNillableScoreAfter(v *float64) *BuildUpdate {
	if v != nil {
		_u.SetScoreAfter(*v)
	}
	return _u
}

// AddScoreAfter adds value to the "score_after" field.
func (_u *BuildUpdate) AddScoreAfter(v float64) *BuildUpdate {
	_u.mutation.AddScoreAfter(v)
	return _u
}

// ClearScoreAfter clears the value of the "score_after" field.
func (_u *BuildUpdate) ClearScoreAfter() *BuildUpdate {
	_u.mutation.ClearScoreAfter()
	return _u
}

// SetErrorPhase sets the "error_phase" field.
func (_u *BuildUpdate) SetErrorPhase(v string) *BuildUpdate {
	_u.mutation.SetErrorPhase(v)
	return _u
}

// SetNillableErrorPhase sets the "error_phase" field if the given value is not nil.
func (_u *BuildUpdate) SetNillableErrorPhase(v *string) *BuildUpdate {
	if v != nil {
		_u.SetErrorPhase(*v)
	}
	return _u
}

// ClearErrorPhase clears the value of the "error_phase" field.
func (_u *BuildUpdate) ClearErrorPhase() *BuildUpdate {
	_u.mutation.ClearErrorPhase()
	return _u
}

// SetErrorStep sets the "error_step" field.
func (_u *BuildUpdate) SetErrorStep(v string) *BuildUpdate {
	_u.mutation.SetErrorStep(v)
	return _u
}

// SetNillableErrorStep sets the "error_step" field if the given value is not nil.
func (_u *BuildUpdate) SetNillableErrorStep(v *string) *BuildUpdate {
	if v != nil {
		_u.SetErrorStep(*v)
	}
	return _u
}

// ClearErrorStep clears the value of the "error_step" field.
func (_u *BuildUpdate) ClearErrorStep() *BuildUpdate {
	_u.mutation.ClearErrorStep()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *BuildUpdate) SetErrorMessage(v string) *BuildUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *BuildUpdate) SetNillableErrorMessage(v *string) *BuildUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *BuildUpdate) ClearErrorMessage() *BuildUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetErrorRetryable sets the "error_retryable" field.
func (_u *BuildUpdate) SetErrorRetryable(v bool) *BuildUpdate {
	_u.mutation.SetErrorRetryable(v)
	return _u
}

// SetNillableErrorRetryable sets the "error_retryable" field if the given value is not nil.
func (_u *BuildUpdate) SetNillableErrorRetryable(v *bool) *BuildUpdate {
	if v != nil {
		_u.SetErrorRetryable(*v)
	}
	return _u
}

// SetResolvedSettings sets the "resolved_settings" field.
func (_u *BuildUpdate) SetResolvedSettings(v map[string]interface{}) *BuildUpdate {
	_u.mutation.SetResolvedSettings(v)
	return _u
}

// ClearResolvedSettings clears the value of the "resolved_settings" field.
func (_u *BuildUpdate) ClearResolvedSettings() *BuildUpdate {
	_u.mutation.ClearResolvedSettings()
	return _u
}

// SetLog sets the "log" field.
func (_u *BuildUpdate) SetLog(v []map[string]interface{}) *BuildUpdate {
	_u.mutation.SetLog(v)
	return _u
}

// AppendLog appends value to the "log" field.
func (_u *BuildUpdate) AppendLog(v []map[string]interface{}) *BuildUpdate {
	_u.mutation.AppendLog(v)
	return _u
}

// ClearLog clears the value of the "log" field.
func (_u *BuildUpdate) ClearLog() *BuildUpdate {
	_u.mutation.ClearLog()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *BuildUpdate) SetRetryCount(v int) *BuildUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *BuildUpdate) SetNillableRetryCount(v *int) *BuildUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *BuildUpdate) AddRetryCount(v int) *BuildUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *BuildUpdate) SetStartedAt(v time.Time) *BuildUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *BuildUpdate) SetNillableStartedAt(v *time.Time) *BuildUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *BuildUpdate) ClearStartedAt() *BuildUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *BuildUpdate) SetCompletedAt(v time.Time) *BuildUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *BuildUpdate) SetNillableCompletedAt(v *time.Time) *BuildUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *BuildUpdate) ClearCompletedAt() *BuildUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetSite sets the "site" edge to the Site entity.
func (_u *BuildUpdate) SetSite(v *Site) *BuildUpdate {
	return _u.SetSiteID(v.ID)
}

// Mutation returns the BuildMutation object of the builder.
func (_u *BuildUpdate) Mutation() *BuildMutation {
	return _u.mutation
}

// ClearSite clears the "site" edge to the Site entity.
func (_u *BuildUpdate) ClearSite() *BuildUpdate {
	_u.mutation.ClearSite()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BuildUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BuildUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BuildUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BuildUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BuildUpdate) check() error {
	if v, ok := _u.mutation.Scope(); ok {
		if err := build.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "Build.scope": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TriggeredBy(); ok {
		if err := build.TriggeredByValidator(v); err != nil {
			return &ValidationError{Name: "triggered_by", err: fmt.Errorf(`ent: validator failed for field "Build.triggered_by": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := build.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Build.status": %w`, err)}
		}
	}
	if _u.mutation.SiteCleared() && len(_u.mutation.SiteIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Build.site"`)
	}
	return nil
}

func (_u *BuildUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(build.Table, build.Columns, sqlgraph.NewFieldSpec(build.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(build.FieldScope, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TriggeredBy(); ok {
		_spec.SetField(build.FieldTriggeredBy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(build.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentPhase(); ok {
		_spec.SetField(build.FieldCurrentPhase, field.TypeString, value)
	}
	if _u.mutation.CurrentPhaseCleared() {
		_spec.ClearField(build.FieldCurrentPhase, field.TypeString)
	}
	if value, ok := _u.mutation.CheckpointPhase(); ok {
		_spec.SetField(build.FieldCheckpointPhase, field.TypeString, value)
	}
	if _u.mutation.CheckpointPhaseCleared() {
		_spec.ClearField(build.FieldCheckpointPhase, field.TypeString)
	}
	if value, ok := _u.mutation.PagesTotal(); ok {
		_spec.SetField(build.FieldPagesTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPagesTotal(); ok {
		_spec.AddField(build.FieldPagesTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PagesProcessed(); ok {
		_spec.SetField(build.FieldPagesProcessed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPagesProcessed(); ok {
		_spec.AddField(build.FieldPagesProcessed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OriginalBytes(); ok {
		_spec.SetField(build.FieldOriginalBytes, field.TypeJSON, value)
	}
	if _u.mutation.OriginalBytesCleared() {
		_spec.ClearField(build.FieldOriginalBytes, field.TypeJSON)
	}
	if value, ok := _u.mutation.OptimizedBytes(); ok {
		_spec.SetField(build.FieldOptimizedBytes, field.TypeJSON, value)
	}
	if _u.mutation.OptimizedBytesCleared() {
		_spec.ClearField(build.FieldOptimizedBytes, field.TypeJSON)
	}
	if value, ok := _u.mutation.IframesReplaced(); ok {
		_spec.SetField(build.FieldIframesReplaced, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIframesReplaced(); ok {
		_spec.AddField(build.FieldIframesReplaced, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScriptsRemoved(); ok {
		_spec.SetField(build.FieldScriptsRemoved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScriptsRemoved(); ok {
		_spec.AddField(build.FieldScriptsRemoved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScoreBefore(); ok {
		_spec.SetField(build.FieldScoreBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScoreBefore(); ok {
		_spec.AddField(build.FieldScoreBefore, field.TypeFloat64, value)
	}
	if _u.mutation.ScoreBeforeCleared() {
		_spec.ClearField(build.FieldScoreBefore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ScoreAfter(); ok {
		_spec.SetField(build.FieldScoreAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScoreAfter(); ok {
		_spec.AddField(build.FieldScoreAfter, field.TypeFloat64, value)
	}
	if _u.mutation.ScoreAfterCleared() {
		_spec.ClearField(build.FieldScoreAfter, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ErrorPhase(); ok {
		_spec.SetField(build.FieldErrorPhase, field.TypeString, value)
	}
	if _u.mutation.ErrorPhaseCleared() {
		_spec.ClearField(build.FieldErrorPhase, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorStep(); ok {
		_spec.SetField(build.FieldErrorStep, field.TypeString, value)
	}
	if _u.mutation.ErrorStepCleared() {
		_spec.ClearField(build.FieldErrorStep, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(build.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(build.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorRetryable(); ok {
		_spec.SetField(build.FieldErrorRetryable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResolvedSettings(); ok {
		_spec.SetField(build.FieldResolvedSettings, field.TypeJSON, value)
	}
	if _u.mutation.ResolvedSettingsCleared() {
		_spec.ClearField(build.FieldResolvedSettings, field.TypeJSON)
	}
	if value, ok := _u.mutation.Log(); ok {
		_spec.SetField(build.FieldLog, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLog(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, build.FieldLog, value)
		})
	}
	if _u.mutation.LogCleared() {
		_spec.ClearField(build.FieldLog, field.TypeJSON)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(build.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(build.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(build.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(build.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(build.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(build.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.SiteCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SiteIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{build.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BuildUpdateOne is the builder for updating a single Build entity.
type BuildUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BuildMutation
}

// SetSiteID sets the "site_id" field.
func (_u *BuildUpdateOne) SetSiteID(v string) *BuildUpdateOne {
	_u.mutation.SetSiteID(v)
	return _u
}

// SetNillableSiteID sets the "site_id" field if the given value is not nil.
func (_u *BuildUpdateOne) SetNillableSiteID(v *string) *BuildUpdateOne {
	if v != nil {
		_u.SetSiteID(*v)
	}
	return _u
}

// SetScope sets the "scope" field.
func (_u *BuildUpdateOne) SetScope(v build.Scope) *BuildUpdateOne {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *BuildUpdateOne) SetNillableScope(v *build.Scope) *BuildUpdateOne {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetTriggeredBy sets the "triggered_by" field.
func (_u *BuildUpdateOne) SetTriggeredBy(v build.TriggeredBy) *BuildUpdateOne {
	_u.mutation.SetTriggeredBy(v)
	return _u
}

// SetNillableTriggeredBy sets the "triggered_by" field if the given value is not nil.
func (_u *BuildUpdateOne) SetNillableTriggeredBy(v *build.TriggeredBy) *BuildUpdateOne {
	if v != nil {
		_u.SetTriggeredBy(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *BuildUpdateOne) SetStatus(v build.Status) *BuildUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BuildUpdateOne) SetNillableStatus(v *build.Status) *BuildUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentPhase sets the "current_phase" field.
func (_u *BuildUpdateOne) SetCurrentPhase(v string) *BuildUpdateOne {
	_u.mutation.SetCurrentPhase(v)
	return _u
}

// SetNillableCurrentPhase sets the "current_phase" field if the given value is not nil.
func (_u *BuildUpdateOne) SetNillableCurrentPhase(v *string) *BuildUpdateOne {
	if v != nil {
		_u.SetCurrentPhase(*v)
	}
	return _u
}

// ClearCurrentPhase clears the value of the "current_phase" field.
func (_u *BuildUpdateOne) ClearCurrentPhase() *BuildUpdateOne {
	_u.mutation.ClearCurrentPhase()
	return _u
}

// SetCheckpointPhase sets the "checkpoint_phase" field.
func (_u *BuildUpdateOne) SetCheckpointPhase(v string) *BuildUpdateOne {
	_u.mutation.SetCheckpointPhase(v)
	return _u
}

// SetNillableCheckpointPhase sets the "checkpoint_phase" field if the given value is not nil.
func (_u *BuildUpdateOne) SetNillableCheckpointPhase(v *string) *BuildUpdateOne {
	if v != nil {
		_u.SetCheckpointPhase(*v)
	}
	return _u
}

// ClearCheckpointPhase clears the value of the "checkpoint_phase" field.
func (_u *BuildUpdateOne) ClearCheckpointPhase() *BuildUpdateOne {
	_u.mutation.ClearCheckpointPhase()
	return _u
}

// SetPagesTotal sets the "pages_total" field.
func (_u *BuildUpdateOne) SetPagesTotal(v int) *BuildUpdateOne {
	_u.mutation.ResetPagesTotal()
	_u.mutation.SetPagesTotal(v)
	return _u
}

// SetNillablePagesTotal sets the "pages_total" field if the given value is not nil.
func (_u *BuildUpdateOne) SetNillablePagesTotal(v *int) *BuildUpdateOne {
	if v != nil {
		_u.SetPagesTotal(*v)
	}
	return _u
}

// AddPagesTotal adds value to the "pages_total" field.
func (_u *BuildUpdateOne) AddPagesTotal(v int) *BuildUpdateOne {
	_u.mutation.AddPagesTotal(v)
	return _u
}

// SetPagesProcessed sets the "pages_processed" field.
func (_u *BuildUpdateOne) SetPagesProcessed(v int) *BuildUpdateOne {
	_u.mutation.ResetPagesProcessed()
	_u.mutation.SetPagesProcessed(v)
	return _u
}

// SetNillablePagesProcessed sets the "pages_processed" field if the given value is not nil.
func (_u *BuildUpdateOne) SetNillablePagesProcessed(v *int) *BuildUpdateOne {
	if v != nil {
		_u.SetPagesProcessed(*v)
	}
	return _u
}

// AddPagesProcessed adds value to the "pages_processed" field.
func (_u *BuildUpdateOne) AddPagesProcessed(v int) *BuildUpdateOne {
	_u.mutation.AddPagesProcessed(v)
	return _u
}

// SetOriginalBytes sets the "original_bytes" field.
func (_u *BuildUpdateOne) SetOriginalBytes(v map[string]int64) *BuildUpdateOne {
	_u.mutation.SetOriginalBytes(v)
	return _u
}

// ClearOriginalBytes clears the value of the "original_bytes" field.
func (_u *BuildUpdateOne) ClearOriginalBytes() *BuildUpdateOne {
	_u.mutation.ClearOriginalBytes()
	return _u
}

// SetOptimizedBytes sets the "optimized_bytes" field.
func (_u *BuildUpdateOne) SetOptimizedBytes(v map[string]int64) *BuildUpdateOne {
	_u.mutation.SetOptimizedBytes(v)
	return _u
}

// ClearOptimizedBytes clears the value of the "optimized_bytes" field.
func (_u *BuildUpdateOne) ClearOptimizedBytes() *BuildUpdateOne {
	_u.mutation.ClearOptimizedBytes()
	return _u
}

// SetIframesReplaced sets the "iframes_replaced" field.
func (_u *BuildUpdateOne) SetIframesReplaced(v int) *BuildUpdateOne {
	_u.mutation.ResetIframesReplaced()
	_u.mutation.SetIframesReplaced(v)
	return _u
}

// SetNillableIframesReplaced sets the "iframes_replaced" field if the given value is not nil.
func (_u *BuildUpdateOne) SetNillableIframesReplaced(v *int) *BuildUpdateOne {
	if v != nil {
		_u.SetIframesReplaced(*v)
	}
	return _u
}

// AddIframesReplaced adds value to the "iframes_replaced" field.
func (_u *BuildUpdateOne) AddIframesReplaced(v int) *BuildUpdateOne {
	_u.mutation.AddIframesReplaced(v)
	return _u
}

// SetScriptsRemoved sets the "scripts_removed" field.
func (_u *BuildUpdateOne) SetScriptsRemoved(v int) *BuildUpdateOne {
	_u.mutation.ResetScriptsRemoved()
	_u.mutation.SetScriptsRemoved(v)
	return _u
}

// SetNillableScriptsRemoved sets the "scripts_removed" field if the given value is not nil.
func (_u *BuildUpdateOne) SetNillableScriptsRemoved(v *int) *BuildUpdateOne {
	if v != nil {
		_u.SetScriptsRemoved(*v)
	}
	return _u
}

// AddScriptsRemoved adds value to the "scripts_removed" field.
func (_u *BuildUpdateOne) AddScriptsRemoved(v int) *BuildUpdateOne {
	_u.mutation.AddScriptsRemoved(v)
	return _u
}

// SetScoreBefore sets the "score_before" field.
func (_u *BuildUpdateOne) SetScoreBefore(v float64) *BuildUpdateOne {
	_u.mutation.ResetScoreBefore()
	_u.mutation.SetScoreBefore(v)
	return _u
}

// SetNillableScoreBefore sets the "score_before" field if the given value is not nil.
func (_u *BuildUpdateOne) SetNillableScoreBefore(v *float64) *BuildUpdateOne {
	if v != nil {
		_u.SetScoreBefore(*v)
	}
	return _u
}

// AddScoreBefore adds value to the "score_before" field.
func (_u *BuildUpdateOne) AddScoreBefore(v float64) *BuildUpdateOne {
	_u.mutation.AddScoreBefore(v)
	return _u
}

// ClearScoreBefore clears the value of the "score_before" field.
func (_u *BuildUpdateOne) ClearScoreBefore() *BuildUpdateOne {
	_u.mutation.ClearScoreBefore()
	return _u
}

// SetScoreAfter sets the "score_after" field.
func (_u *BuildUpdateOne) SetScoreAfter(v float64) *BuildUpdateOne {
	_u.mutation.ResetScoreAfter()
	_u.mutation.SetScoreAfter(v)
	return _u
}

// SetNillableScoreAfter sets the "score_after" field if the given value is not nil.
func (_u *BuildUpdateOne) SetNillableScoreAfter(v *float64) *BuildUpdateOne {
	if v != nil {
		_u.SetScoreAfter(*v)
	}
	return _u
}

// AddScoreAfter adds value to the "score_after" field.
func (_u *BuildUpdateOne) AddScoreAfter(v float64) *BuildUpdateOne {
	_u.mutation.AddScoreAfter(v)
	return _u
}

// ClearScoreAfter clears the value of the "score_after" field.
func (_u *BuildUpdateOne) ClearScoreAfter() *BuildUpdateOne {
	_u.mutation.ClearScoreAfter()
	return _u
}

// SetErrorPhase sets the "error_phase" field.
func (_u *BuildUpdateOne) SetErrorPhase(v string) *BuildUpdateOne {
	_u.mutation.SetErrorPhase(v)
	return _u
}

// SetNillableErrorPhase sets the "error_phase" field if the given value is not nil.
func (_u *BuildUpdateOne) SetNillableErrorPhase(v *string) *BuildUpdateOne {
	if v != nil {
		_u.SetErrorPhase(*v)
	}
	return _u
}

// ClearErrorPhase clears the value of the "error_phase" field.
func (_u *BuildUpdateOne) ClearErrorPhase() *BuildUpdateOne {
	_u.mutation.ClearErrorPhase()
	return _u
}

// SetErrorStep sets the "error_step" field.
func (_u *BuildUpdateOne) SetErrorStep(v string) *BuildUpdateOne {
	_u.mutation.SetErrorStep(v)
	return _u
}

// SetNillableErrorStep sets the "error_step" field if the given value is not nil.
func (_u *BuildUpdateOne) SetNillableErrorStep(v *string) *BuildUpdateOne {
	if v != nil {
		_u.SetErrorStep(*v)
	}
	return _u
}

// ClearErrorStep clears the value of the "error_step" field.
func (_u *BuildUpdateOne) ClearErrorStep() *BuildUpdateOne {
	_u.mutation.ClearErrorStep()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *BuildUpdateOne) SetErrorMessage(v string) *BuildUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *BuildUpdateOne) SetNillableErrorMessage(v *string) *BuildUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *BuildUpdateOne) ClearErrorMessage() *BuildUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetErrorRetryable sets the "error_retryable" field.
func (_u *BuildUpdateOne) SetErrorRetryable(v bool) *BuildUpdateOne {
	_u.mutation.SetErrorRetryable(v)
	return _u
}

// SetNillableErrorRetryable sets the "error_retryable" field if the given value is not nil.
func (_u *BuildUpdateOne) SetNillableErrorRetryable(v *bool) *BuildUpdateOne {
	if v != nil {
		_u.SetErrorRetryable(*v)
	}
	return _u
}

// SetResolvedSettings sets the "resolved_settings" field.
func (_u *BuildUpdateOne) SetResolvedSettings(v map[string]interface{}) *BuildUpdateOne {
	_u.mutation.SetResolvedSettings(v)
	return _u
}

// ClearResolvedSettings clears the value of the "resolved_settings" field.
func (_u *BuildUpdateOne) ClearResolvedSettings() *BuildUpdateOne {
	_u.mutation.ClearResolvedSettings()
	return _u
}

// SetLog sets the "log" field.
func (_u *BuildUpdateOne) SetLog(v []map[string]interface{}) *BuildUpdateOne {
	_u.mutation.SetLog(v)
	return _u
}

// AppendLog appends value to the "log" field.
func (_u *BuildUpdateOne) AppendLog(v []map[string]interface{}) *BuildUpdateOne {
	_u.mutation.AppendLog(v)
	return _u
}

// ClearLog clears the value of the "log" field.
func (_u *BuildUpdateOne) ClearLog() *BuildUpdateOne {
	_u.mutation.ClearLog()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *BuildUpdateOne) SetRetryCount(v int) *BuildUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *BuildUpdateOne) SetNillableRetryCount(v *int) *BuildUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *BuildUpdateOne) AddRetryCount(v int) *BuildUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *BuildUpdateOne) SetStartedAt(v time.Time) *BuildUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *BuildUpdateOne) SetNillableStartedAt(v *time.Time) *BuildUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *BuildUpdateOne) ClearStartedAt() *BuildUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *BuildUpdateOne) SetCompletedAt(v time.Time) *BuildUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *BuildUpdateOne) SetNillableCompletedAt(v *time.Time) *BuildUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *BuildUpdateOne) ClearCompletedAt() *BuildUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetSite sets the "site" edge to the Site entity.
func (_u *BuildUpdateOne) SetSite(v *Site) *BuildUpdateOne {
	return _u.SetSiteID(v.ID)
}

// Mutation returns the BuildMutation object of the builder.
func (_u *BuildUpdateOne) Mutation() *BuildMutation {
	return _u.mutation
}

// ClearSite clears the "site" edge to the Site entity.
func (_u *BuildUpdateOne) ClearSite() *BuildUpdateOne {
	_u.mutation.ClearSite()
	return _u
}

// Where appends a list predicates to the BuildUpdate builder.
func (_u *BuildUpdateOne) Where(ps ...predicate.Build) *BuildUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BuildUpdateOne) Select(field string, fields ...string) *BuildUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Build entity.
func (_u *BuildUpdateOne) Save(ctx context.Context) (*Build, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BuildUpdateOne) SaveX(ctx context.Context) *Build {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BuildUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BuildUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BuildUpdateOne) check() error {
	if v, ok := _u.mutation.Scope(); ok {
		if err := build.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "Build.scope": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TriggeredBy(); ok {
		if err := build.TriggeredByValidator(v); err != nil {
			return &ValidationError{Name: "triggered_by", err: fmt.Errorf(`ent: validator failed for field "Build.triggered_by": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := build.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Build.status": %w`, err)}
		}
	}
	if _u.mutation.SiteCleared() && len(_u.mutation.SiteIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Build.site"`)
	}
	return nil
}

func (_u *BuildUpdateOne) sqlSave(ctx context.Context) (_node *Build, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(build.Table, build.Columns, sqlgraph.NewFieldSpec(build.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Build.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, build.FieldID)
		for _, f := range fields {
			if !build.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != build.FieldID {
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
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(build.FieldScope, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TriggeredBy(); ok {
		_spec.SetField(build.FieldTriggeredBy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(build.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentPhase(); ok {
		_spec.SetField(build.FieldCurrentPhase, field.TypeString, value)
	}
	if _u.mutation.CurrentPhaseCleared() {
		_spec.ClearField(build.FieldCurrentPhase, field.TypeString)
	}
	if value, ok := _u.mutation.CheckpointPhase(); ok {
		_spec.SetField(build.FieldCheckpointPhase, field.TypeString, value)
	}
	if _u.mutation.CheckpointPhaseCleared() {
		_spec.ClearField(build.FieldCheckpointPhase, field.TypeString)
	}
	if value, ok := _u.mutation.PagesTotal(); ok {
		_spec.SetField(build.FieldPagesTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPagesTotal(); ok {
		_spec.AddField(build.FieldPagesTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PagesProcessed(); ok {
		_spec.SetField(build.FieldPagesProcessed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPagesProcessed(); ok {
		_spec.AddField(build.FieldPagesProcessed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OriginalBytes(); ok {
		_spec.SetField(build.FieldOriginalBytes, field.TypeJSON, value)
	}
	if _u.mutation.OriginalBytesCleared() {
		_spec.ClearField(build.FieldOriginalBytes, field.TypeJSON)
	}
	if value, ok := _u.mutation.OptimizedBytes(); ok {
		_spec.SetField(build.FieldOptimizedBytes, field.TypeJSON, value)
	}
	if _u.mutation.OptimizedBytesCleared() {
		_spec.ClearField(build.FieldOptimizedBytes, field.TypeJSON)
	}
	if value, ok := _u.mutation.IframesReplaced(); ok {
		_spec.SetField(build.FieldIframesReplaced, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIframesReplaced(); ok {
		_spec.AddField(build.FieldIframesReplaced, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScriptsRemoved(); ok {
		_spec.SetField(build.FieldScriptsRemoved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScriptsRemoved(); ok {
		_spec.AddField(build.FieldScriptsRemoved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScoreBefore(); ok {
		_spec.SetField(build.FieldScoreBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScoreBefore(); ok {
		_spec.AddField(build.FieldScoreBefore, field.TypeFloat64, value)
	}
	if _u.mutation.ScoreBeforeCleared() {
		_spec.ClearField(build.FieldScoreBefore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ScoreAfter(); ok {
		_spec.SetField(build.FieldScoreAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScoreAfter(); ok {
		_spec.AddField(build.FieldScoreAfter, field.TypeFloat64, value)
	}
	if _u.mutation.ScoreAfterCleared() {
		_spec.ClearField(build.FieldScoreAfter, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ErrorPhase(); ok {
		_spec.SetField(build.FieldErrorPhase, field.TypeString, value)
	}
	if _u.mutation.ErrorPhaseCleared() {
		_spec.ClearField(build.FieldErrorPhase, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorStep(); ok {
		_spec.SetField(build.FieldErrorStep, field.TypeString, value)
	}
	if _u.mutation.ErrorStepCleared() {
		_spec.ClearField(build.FieldErrorStep, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(build.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(build.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorRetryable(); ok {
		_spec.SetField(build.FieldErrorRetryable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResolvedSettings(); ok {
		_spec.SetField(build.FieldResolvedSettings, field.TypeJSON, value)
	}
	if _u.mutation.ResolvedSettingsCleared() {
		_spec.ClearField(build.FieldResolvedSettings, field.TypeJSON)
	}
	if value, ok := _u.mutation.Log(); ok {
		_spec.SetField(build.FieldLog, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLog(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, build.FieldLog, value)
		})
	}
	if _u.mutation.LogCleared() {
		_spec.ClearField(build.FieldLog, field.TypeJSON)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(build.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(build.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(build.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(build.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(build.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(build.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.SiteCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SiteIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Build{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{build.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
