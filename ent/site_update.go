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
	"github.com/metrics-lab/staticpress/ent/alertlog"
	"github.com/metrics-lab/staticpress/ent/alertrule"
	"github.com/metrics-lab/staticpress/ent/assetoverride"
	"github.com/metrics-lab/staticpress/ent/build"
	"github.com/metrics-lab/staticpress/ent/measurementcomparison"
	"github.com/metrics-lab/staticpress/ent/page"
	"github.com/metrics-lab/staticpress/ent/predicate"
	"github.com/metrics-lab/staticpress/ent/settingshistory"
	"github.com/metrics-lab/staticpress/ent/site"
)

// SiteUpdate is the builder for updating Site entities.
type SiteUpdate struct {
	config
	hooks    []Hook
	mutation *SiteMutation
}

// Where appends a list predicates to the SiteUpdate builder.
func (_u *SiteUpdate) Where(ps ...predicate.Site) *SiteUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *SiteUpdate) SetName(v string) *SiteUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SiteUpdate) SetNillableName(v *string) *SiteUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSourceURL sets the "source_url" field.
func (_u *SiteUpdate) SetSourceURL(v string) *SiteUpdate {
	_u.mutation.SetSourceURL(v)
	return _u
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_u *SiteUpdate) SetNillableSourceURL(v *string) *SiteUpdate {
	if v != nil {
		_u.SetSourceURL(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SiteUpdate) SetStatus(v site.Status) *SiteUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SiteUpdate) SetNillableStatus(v *site.Status) *SiteUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastBuildID sets the "last_build_id" field.
func (_u *SiteUpdate) SetLastBuildID(v string) *SiteUpdate {
	_u.mutation.SetLastBuildID(v)
	return _u
}

// SetNillableLastBuildID sets the "last_build_id" field if the given value is not nil.
func (_u *SiteUpdate) SetNillableLastBuildID(v *string) *SiteUpdate {
	if v != nil {
		_u.SetLastBuildID(*v)
	}
	return _u
}

// ClearLastBuildID clears the value of the "last_build_id" field.
func (_u *SiteUpdate) ClearLastBuildID() *SiteUpdate {
	_u.mutation.ClearLastBuildID()
	return _u
}

// SetLastBuildStatus sets the "last_build_status" field.
func (_u *SiteUpdate) SetLastBuildStatus(v site.LastBuildStatus) *SiteUpdate {
	_u.mutation.SetLastBuildStatus(v)
	return _u
}

// SetNillableLastBuildStatus sets the "last_build_status" field if the given value is not nil.
func (_u *SiteUpdate) SetNillableLastBuildStatus(v *site.LastBuildStatus) *SiteUpdate {
	if v != nil {
		_u.SetLastBuildStatus(*v)
	}
	return _u
}

// ClearLastBuildStatus clears the value of the "last_build_status" field.
func (_u *SiteUpdate) ClearLastBuildStatus() *SiteUpdate {
	_u.mutation.ClearLastBuildStatus()
	return _u
}

// SetEdgeURL sets the "edge_url" field.
func (_u *SiteUpdate) SetEdgeURL(v string) *SiteUpdate {
	_u.mutation.SetEdgeURL(v)
	return _u
}

// SetNillableEdgeURL sets the "edge_url" field if the given value is not nil.
func (_u *SiteUpdate) SetNillableEdgeURL(v *string) *SiteUpdate {
	if v != nil {
		_u.SetEdgeURL(*v)
	}
	return _u
}

// ClearEdgeURL clears the value of the "edge_url" field.
func (_u *SiteUpdate) ClearEdgeURL() *SiteUpdate {
	_u.mutation.ClearEdgeURL()
	return _u
}

// SetEdgeProject sets the "edge_project" field.
func (_u *SiteUpdate) SetEdgeProject(v string) *SiteUpdate {
	_u.mutation.SetEdgeProject(v)
	return _u
}

// SetNillableEdgeProject sets the "edge_project" field if the given value is not nil.
func (_u *SiteUpdate) SetNillableEdgeProject(v *string) *SiteUpdate {
	if v != nil {
		_u.SetEdgeProject(*v)
	}
	return _u
}

// ClearEdgeProject clears the value of the "edge_project" field.
func (_u *SiteUpdate) ClearEdgeProject() *SiteUpdate {
	_u.mutation.ClearEdgeProject()
	return _u
}

// SetPageCount sets the "page_count" field.
func (_u *SiteUpdate) SetPageCount(v int) *SiteUpdate {
	_u.mutation.ResetPageCount()
	_u.mutation.SetPageCount(v)
	return _u
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_u *SiteUpdate) SetNillablePageCount(v *int) *SiteUpdate {
	if v != nil {
		_u.SetPageCount(*v)
	}
	return _u
}

// AddPageCount adds value to the "page_count" field.
func (_u *SiteUpdate) AddPageCount(v int) *SiteUpdate {
	_u.mutation.AddPageCount(v)
	return _u
}

// SetTotalBytes sets the "total_bytes" field.
func (_u *SiteUpdate) SetTotalBytes(v int64) *SiteUpdate {
	_u.mutation.ResetTotalBytes()
	_u.mutation.SetTotalBytes(v)
	return _u
}

// SetNillableTotalBytes sets the "total_bytes" field if the given value is not nil.
func (_u *SiteUpdate) SetNillableTotalBytes(v *int64) *SiteUpdate {
	if v != nil {
		_u.SetTotalBytes(*v)
	}
	return _u
}

// AddTotalBytes adds value to the "total_bytes" field.
func (_u *SiteUpdate) AddTotalBytes(v int64) *SiteUpdate {
	_u.mutation.AddTotalBytes(v)
	return _u
}

// SetSettings sets the "settings" field.
func (_u *SiteUpdate) SetSettings(v map[string]interface{}) *SiteUpdate {
	_u.mutation.SetSettings(v)
	return _u
}

// ClearSettings clears the value of the "settings" field.
func (_u *SiteUpdate) ClearSettings() *SiteUpdate {
	_u.mutation.ClearSettings()
	return _u
}

// SetWebhookSecret sets the "webhook_secret" field.
func (_u *SiteUpdate) SetWebhookSecret(v string) *SiteUpdate {
	_u.mutation.SetWebhookSecret(v)
	return _u
}

// SetNillableWebhookSecret sets the "webhook_secret" field if the given value is not nil.
func (_u *SiteUpdate) SetNillableWebhookSecret(v *string) *SiteUpdate {
	if v != nil {
		_u.SetWebhookSecret(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SiteUpdate) SetUpdatedAt(v time.Time) *SiteUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddBuildIDs adds the "builds" edge to the Build entity by IDs.
func (_u *SiteUpdate) AddBuildIDs(ids ...string) *SiteUpdate {
	_u.mutation.AddBuildIDs(ids...)
	return _u
}

// AddBuilds adds the "builds" edges to the Build entity.
func (_u *SiteUpdate) AddBuilds(v ...*Build) *SiteUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBuildIDs(ids...)
}

// AddAgentRunIDs adds the "agent_runs" edge to the AgentRun entity by IDs.
func (_u *SiteUpdate) AddAgentRunIDs(ids ...string) *SiteUpdate {
	_u.mutation.AddAgentRunIDs(ids...)
	return _u
}

// AddAgentRuns adds the "agent_runs" edges to the AgentRun entity.
func (_u *SiteUpdate) AddAgentRuns(v ...*AgentRun) *SiteUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentRunIDs(ids...)
}

// AddAssetOverrideIDs adds the "asset_overrides" edge to the AssetOverride entity by IDs.
func (_u *SiteUpdate) AddAssetOverrideIDs(ids ...string) *SiteUpdate {
	_u.mutation.AddAssetOverrideIDs(ids...)
	return _u
}

// AddAssetOverrides adds the "asset_overrides" edges to the AssetOverride entity.
func (_u *SiteUpdate) AddAssetOverrides(v ...*AssetOverride) *SiteUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAssetOverrideIDs(ids...)
}

// AddSettingsHistoryIDs adds the "settings_history" edge to the SettingsHistory entity by IDs.
func (_u *SiteUpdate) AddSettingsHistoryIDs(ids ...string) *SiteUpdate {
	_u.mutation.AddSettingsHistoryIDs(ids...)
	return _u
}

// AddSettingsHistory adds the "settings_history" edges to the SettingsHistory entity.
func (_u *SiteUpdate) AddSettingsHistory(v ...*SettingsHistory) *SiteUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSettingsHistoryIDs(ids...)
}

// AddMeasurementIDs adds the "measurements" edge to the MeasurementComparison entity by IDs.
func (_u *SiteUpdate) AddMeasurementIDs(ids ...string) *SiteUpdate {
	_u.mutation.AddMeasurementIDs(ids...)
	return _u
}

// AddMeasurements adds the "measurements" edges to the MeasurementComparison entity.
func (_u *SiteUpdate) AddMeasurements(v ...*MeasurementComparison) *SiteUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMeasurementIDs(ids...)
}

// AddPageIDs adds the "pages" edge to the Page entity by IDs.
func (_u *SiteUpdate) AddPageIDs(ids ...string) *SiteUpdate {
	_u.mutation.AddPageIDs(ids...)
	return _u
}

// AddPages adds the "pages" edges to the Page entity.
func (_u *SiteUpdate) AddPages(v ...*Page) *SiteUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPageIDs(ids...)
}

// AddAlertRuleIDs adds the "alert_rules" edge to the AlertRule entity by IDs.
func (_u *SiteUpdate) AddAlertRuleIDs(ids ...string) *SiteUpdate {
	_u.mutation.AddAlertRuleIDs(ids...)
	return _u
}

// AddAlertRules adds the "alert_rules" edges to the AlertRule entity.
func (_u *SiteUpdate) AddAlertRules(v ...*AlertRule) *SiteUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAlertRuleIDs(ids...)
}

// AddAlertLogIDs adds the "alert_logs" edge to the AlertLog entity by IDs.
func (_u *SiteUpdate) AddAlertLogIDs(ids ...string) *SiteUpdate {
	_u.mutation.AddAlertLogIDs(ids...)
	return _u
}

// AddAlertLogs adds the "alert_logs" edges to the AlertLog entity.
func (_u *SiteUpdate) AddAlertLogs(v ...*AlertLog) *SiteUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAlertLogIDs(ids...)
}

// Mutation returns the SiteMutation object of the builder.
func (_u *SiteUpdate) Mutation() *SiteMutation {
	return _u.mutation
}

// ClearBuilds clears all "builds" edges to the Build entity.
func (_u *SiteUpdate) ClearBuilds() *SiteUpdate {
	_u.mutation.ClearBuilds()
	return _u
}

// RemoveBuildIDs removes the "builds" edge to Build entities by IDs.
func (_u *SiteUpdate) RemoveBuildIDs(ids ...string) *SiteUpdate {
	_u.mutation.RemoveBuildIDs(ids...)
	return _u
}

// RemoveBuilds removes "builds" edges to Build entities.
func (_u *SiteUpdate) RemoveBuilds(v ...*Build) *SiteUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBuildIDs(ids...)
}

// ClearAgentRuns clears all "agent_runs" edges to the AgentRun entity.
func (_u *SiteUpdate) ClearAgentRuns() *SiteUpdate {
	_u.mutation.ClearAgentRuns()
	return _u
}

// RemoveAgentRunIDs removes the "agent_runs" edge to AgentRun entities by IDs.
func (_u *SiteUpdate) RemoveAgentRunIDs(ids ...string) *SiteUpdate {
	_u.mutation.RemoveAgentRunIDs(ids...)
	return _u
}

// RemoveAgentRuns removes "agent_runs" edges to AgentRun entities.
func (_u *SiteUpdate) RemoveAgentRuns(v ...*AgentRun) *SiteUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentRunIDs(ids...)
}

// ClearAssetOverrides clears all "asset_overrides" edges to the AssetOverride entity.
func (_u *SiteUpdate) ClearAssetOverrides() *SiteUpdate {
	_u.mutation.ClearAssetOverrides()
	return _u
}

// RemoveAssetOverrideIDs removes the "asset_overrides" edge to AssetOverride entities by IDs.
func (_u *SiteUpdate) RemoveAssetOverrideIDs(ids ...string) *SiteUpdate {
	_u.mutation.RemoveAssetOverrideIDs(ids...)
	return _u
}

// RemoveAssetOverrides removes "asset_overrides" edges to AssetOverride entities.
func (_u *SiteUpdate) RemoveAssetOverrides(v ...*AssetOverride) *SiteUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAssetOverrideIDs(ids...)
}

// ClearSettingsHistory clears all "settings_history" edges to the SettingsHistory entity.
func (_u *SiteUpdate) ClearSettingsHistory() *SiteUpdate {
	_u.mutation.ClearSettingsHistory()
	return _u
}

// RemoveSettingsHistoryIDs removes the "settings_history" edge to SettingsHistory entities by IDs.
func (_u *SiteUpdate) RemoveSettingsHistoryIDs(ids ...string) *SiteUpdate {
	_u.mutation.RemoveSettingsHistoryIDs(ids...)
	return _u
}

// RemoveSettingsHistory removes "settings_history" edges to SettingsHistory entities.
func (_u *SiteUpdate) RemoveSettingsHistory(v ...*SettingsHistory) *SiteUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSettingsHistoryIDs(ids...)
}

// ClearMeasurements clears all "measurements" edges to the MeasurementComparison entity.
func (_u *SiteUpdate) ClearMeasurements() *SiteUpdate {
	_u.mutation.ClearMeasurements()
	return _u
}

// RemoveMeasurementIDs removes the "measurements" edge to MeasurementComparison entities by IDs.
func (_u *SiteUpdate) RemoveMeasurementIDs(ids ...string) *SiteUpdate {
	_u.mutation.RemoveMeasurementIDs(ids...)
	return _u
}

// RemoveMeasurements removes "measurements" edges to MeasurementComparison entities.
func (_u *SiteUpdate) RemoveMeasurements(v ...*MeasurementComparison) *SiteUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMeasurementIDs(ids...)
}

// ClearPages clears all "pages" edges to the Page entity.
func (_u *SiteUpdate) ClearPages() *SiteUpdate {
	_u.mutation.ClearPages()
	return _u
}

// RemovePageIDs removes the "pages" edge to Page entities by IDs.
func (_u *SiteUpdate) RemovePageIDs(ids ...string) *SiteUpdate {
	_u.mutation.RemovePageIDs(ids...)
	return _u
}

// RemovePages removes "pages" edges to Page entities.
func (_u *SiteUpdate) RemovePages(v ...*Page) *SiteUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePageIDs(ids...)
}

// ClearAlertRules clears all "alert_rules" edges to the AlertRule entity.
func (_u *SiteUpdate) ClearAlertRules() *SiteUpdate {
	_u.mutation.ClearAlertRules()
	return _u
}

// RemoveAlertRuleIDs removes the "alert_rules" edge to AlertRule entities by IDs.
func (_u *SiteUpdate) RemoveAlertRuleIDs(ids ...string) *SiteUpdate {
	_u.mutation.RemoveAlertRuleIDs(ids...)
	return _u
}

// RemoveAlertRules removes "alert_rules" edges to AlertRule entities.
func (_u *SiteUpdate) RemoveAlertRules(v ...*AlertRule) *SiteUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAlertRuleIDs(ids...)
}

// ClearAlertLogs clears all "alert_logs" edges to the AlertLog entity.
func (_u *SiteUpdate) ClearAlertLogs() *SiteUpdate {
	_u.mutation.ClearAlertLogs()
	return _u
}

// RemoveAlertLogIDs removes the "alert_logs" edge to AlertLog entities by IDs.
func (_u *SiteUpdate) RemoveAlertLogIDs(ids ...string) *SiteUpdate {
	_u.mutation.RemoveAlertLogIDs(ids...)
	return _u
}

// RemoveAlertLogs removes "alert_logs" edges to AlertLog entities.
func (_u *SiteUpdate) RemoveAlertLogs(v ...*AlertLog) *SiteUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAlertLogIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SiteUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SiteUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SiteUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SiteUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SiteUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := site.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SiteUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := site.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Site.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastBuildStatus(); ok {
		if err := site.LastBuildStatusValidator(v); err != nil {
			return &ValidationError{Name: "last_build_status", err: fmt.Errorf(`ent: validator failed for field "Site.last_build_status": %w`, err)}
		}
	}
	return nil
}

func (_u *SiteUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(site.Table, site.Columns, sqlgraph.NewFieldSpec(site.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(site.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceURL(); ok {
		_spec.SetField(site.FieldSourceURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(site.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastBuildID(); ok {
		_spec.SetField(site.FieldLastBuildID, field.TypeString, value)
	}
	if _u.mutation.LastBuildIDCleared() {
		_spec.ClearField(site.FieldLastBuildID, field.TypeString)
	}
	if value, ok := _u.mutation.LastBuildStatus(); ok {
		_spec.SetField(site.FieldLastBuildStatus, field.TypeEnum, value)
	}
	if _u.mutation.LastBuildStatusCleared() {
		_spec.ClearField(site.FieldLastBuildStatus, field.TypeEnum)
	}
	if value, ok := _u.mutation.EdgeURL(); ok {
		_spec.SetField(site.FieldEdgeURL, field.TypeString, value)
	}
	if _u.mutation.EdgeURLCleared() {
		_spec.ClearField(site.FieldEdgeURL, field.TypeString)
	}
	if value, ok := _u.mutation.EdgeProject(); ok {
		_spec.SetField(site.FieldEdgeProject, field.TypeString, value)
	}
	if _u.mutation.EdgeProjectCleared() {
		_spec.ClearField(site.FieldEdgeProject, field.TypeString)
	}
	if value, ok := _u.mutation.PageCount(); ok {
		_spec.SetField(site.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageCount(); ok {
		_spec.AddField(site.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalBytes(); ok {
		_spec.SetField(site.FieldTotalBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalBytes(); ok {
		_spec.AddField(site.FieldTotalBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Settings(); ok {
		_spec.SetField(site.FieldSettings, field.TypeJSON, value)
	}
	if _u.mutation.SettingsCleared() {
		_spec.ClearField(site.FieldSettings, field.TypeJSON)
	}
	if value, ok := _u.mutation.WebhookSecret(); ok {
		_spec.SetField(site.FieldWebhookSecret, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(site.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BuildsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   site.BuildsTable,
			Columns: []string{site.BuildsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(build.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBuildsIDs(); len(nodes) > 0 && !_u.mutation.BuildsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   site.BuildsTable,
			Columns: []string{site.BuildsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(build.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BuildsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   site.BuildsTable,
			Columns: []string{site.BuildsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(build.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AgentRunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   site.AgentRunsTable,
			Columns: []string{site.AgentRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentRunsIDs(); len(nodes) > 0 && !_u.mutation.AgentRunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   site.AgentRunsTable,
			Columns: []string{site.AgentRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentRunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   site.AgentRunsTable,
			Columns: []string{site.AgentRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssetOverridesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   site.AssetOverridesTable,
			Columns: []string{site.AssetOverridesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assetoverride.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAssetOverridesIDs(); len(nodes) > 0 && !_u.mutation.AssetOverridesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   site.AssetOverridesTable,
			Columns: []string{site.AssetOverridesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assetoverride.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssetOverridesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   site.AssetOverridesTable,
			Columns: []string{site.AssetOverridesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assetoverride.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SettingsHistoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   site.SettingsHistoryTable,
			Columns: []string{site.SettingsHistoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(settingshistory.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSettingsHistoryIDs(); len(nodes) > 0 && !_u.mutation.SettingsHistoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   site.SettingsHistoryTable,
			Columns: []string{site.SettingsHistoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(settingshistory.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SettingsHistoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   site.SettingsHistoryTable,
			Columns: []string{site.SettingsHistoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(settingshistory.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MeasurementsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   site.MeasurementsTable,
			Columns: []string{site.MeasurementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(measurementcomparison.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMeasurementsIDs(); len(nodes) > 0 && !_u.mutation.MeasurementsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   site.MeasurementsTable,
			Columns: []string{site.MeasurementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(measurementcomparison.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MeasurementsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   site.MeasurementsTable,
			Columns: []string{site.MeasurementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(measurementcomparison.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   site.PagesTable,
			Columns: []string{site.PagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(page.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPagesIDs(); len(nodes) > 0 && !_u.mutation.PagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   site.PagesTable,
			Columns: []string{site.PagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(page.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   site.PagesTable,
			Columns: []string{site.PagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(page.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AlertRulesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   site.AlertRulesTable,
			Columns: []string{site.AlertRulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(alertrule.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAlertRulesIDs(); len(nodes) > 0 && !_u.mutation.AlertRulesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   site.AlertRulesTable,
			Columns: []string{site.AlertRulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(alertrule.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AlertRulesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   site.AlertRulesTable,
			Columns: []string{site.AlertRulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(alertrule.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AlertLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   site.AlertLogsTable,
			Columns: []string{site.AlertLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(alertlog.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAlertLogsIDs(); len(nodes) > 0 && !_u.mutation.AlertLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   site.AlertLogsTable,
			Columns: []string{site.AlertLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(alertlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AlertLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   site.AlertLogsTable,
			Columns: []string{site.AlertLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(alertlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{site.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SiteUpdateOne is the builder for updating a single Site entity.
type SiteUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SiteMutation
}

// SetName sets the "name" field.
func (_u *SiteUpdateOne) SetName(v string) *SiteUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SiteUpdateOne) SetNillableName(v *string) *SiteUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSourceURL sets the "source_url" field.
func (_u *SiteUpdateOne) SetSourceURL(v string) *SiteUpdateOne {
	_u.mutation.SetSourceURL(v)
	return _u
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_u *SiteUpdateOne) SetNillableSourceURL(v *string) *SiteUpdateOne {
	if v != nil {
		_u.SetSourceURL(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SiteUpdateOne) SetStatus(v site.Status) *SiteUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SiteUpdateOne) SetNillableStatus(v *site.Status) *SiteUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastBuildID sets the "last_build_id" field.
func (_u *SiteUpdateOne) SetLastBuildID(v string) *SiteUpdateOne {
	_u.mutation.SetLastBuildID(v)
	return _u
}

// SetNillableLastBuildID sets the "last_build_id" field if the given value is not nil.
func (_u *SiteUpdateOne) SetNillableLastBuildID(v *string) *SiteUpdateOne {
	if v != nil {
		_u.SetLastBuildID(*v)
	}
	return _u
}

// ClearLastBuildID clears the value of the "last_build_id" field.
func (_u *SiteUpdateOne) ClearLastBuildID() *SiteUpdateOne {
	_u.mutation.ClearLastBuildID()
	return _u
}

// SetLastBuildStatus sets the "last_build_status" field.
func (_u *SiteUpdateOne) SetLastBuildStatus(v site.LastBuildStatus) *SiteUpdateOne {
	_u.mutation.SetLastBuildStatus(v)
	return _u
}

// SetNillableLastBuildStatus sets the "last_build_status" field if the given value is not nil.
func (_u *SiteUpdateOne) SetNillableLastBuildStatus(v *site.LastBuildStatus) *SiteUpdateOne {
	if v != nil {
		_u.SetLastBuildStatus(*v)
	}
	return _u
}

// ClearLastBuildStatus clears the value of the "last_build_status" field.
func (_u *SiteUpdateOne) ClearLastBuildStatus() *SiteUpdateOne {
	_u.mutation.ClearLastBuildStatus()
	return _u
}

// SetEdgeURL sets the "edge_url" field.
func (_u *SiteUpdateOne) SetEdgeURL(v string) *SiteUpdateOne {
	_u.mutation.SetEdgeURL(v)
	return _u
}

// SetNillableEdgeURL sets the "edge_url" field if the given value is not nil.
func (_u *SiteUpdateOne) SetNillableEdgeURL(v *string) *SiteUpdateOne {
	if v != nil {
		_u.SetEdgeURL(*v)
	}
	return _u
}

// ClearEdgeURL clears the value of the "edge_url" field.
func (_u *SiteUpdateOne) ClearEdgeURL() *SiteUpdateOne {
	_u.mutation.ClearEdgeURL()
	return _u
}

// SetEdgeProject sets the "edge_project" field.
func (_u *SiteUpdateOne) SetEdgeProject(v string) *SiteUpdateOne {
	_u.mutation.SetEdgeProject(v)
	return _u
}

// SetNillableEdgeProject sets the "edge_project" field if the given value is not nil.
func (_u *SiteUpdateOne) SetNillableEdgeProject(v *string) *SiteUpdateOne {
	if v != nil {
		_u.SetEdgeProject(*v)
	}
	return _u
}

// ClearEdgeProject clears the value of the "edge_project" field.
func (_u *SiteUpdateOne) ClearEdgeProject() *SiteUpdateOne {
	_u.mutation.ClearEdgeProject()
	return _u
}

// SetPageCount sets the "page_count" field.
func (_u *SiteUpdateOne) SetPageCount(v int) *SiteUpdateOne {
	_u.mutation.ResetPageCount()
	_u.mutation.SetPageCount(v)
	return _u
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_u *SiteUpdateOne) SetNillablePageCount(v *int) *SiteUpdateOne {
	if v != nil {
		_u.SetPageCount(*v)
	}
	return _u
}

// AddPageCount adds value to the "page_count" field.
func (_u *SiteUpdateOne) AddPageCount(v int) *SiteUpdateOne {
	_u.mutation.AddPageCount(v)
	return _u
}

// SetTotalBytes sets the "total_bytes" field.
func (_u *SiteUpdateOne) SetTotalBytes(v int64) *SiteUpdateOne {
	_u.mutation.ResetTotalBytes()
	_u.mutation.SetTotalBytes(v)
	return _u
}

// SetNillableTotalBytes sets the "total_bytes" field if the given value is not nil.
func (_u *SiteUpdateOne) SetNillableTotalBytes(v *int64) *SiteUpdateOne {
	if v != nil {
		_u.SetTotalBytes(*v)
	}
	return _u
}

// AddTotalBytes adds value to the "total_bytes" field.
func (_u *SiteUpdateOne) AddTotalBytes(v int64) *SiteUpdateOne {
	_u.mutation.AddTotalBytes(v)
	return _u
}

// SetSettings sets the "settings" field.
func (_u *SiteUpdateOne) SetSettings(v map[string]interface{}) *SiteUpdateOne {
	_u.mutation.SetSettings(v)
	return _u
}

// ClearSettings clears the value of the "settings" field.
func (_u *SiteUpdateOne) ClearSettings() *SiteUpdateOne {
	_u.mutation.ClearSettings()
	return _u
}

// SetWebhookSecret sets the "webhook_secret" field.
func (_u *SiteUpdateOne) SetWebhookSecret(v string) *SiteUpdateOne {
	_u.mutation.SetWebhookSecret(v)
	return _u
}

// SetNillableWebhookSecret sets the "webhook_secret" field if the given value is not nil.
func (_u *SiteUpdateOne) SetNillableWebhookSecret(v *string) *SiteUpdateOne {
	if v != nil {
		_u.SetWebhookSecret(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SiteUpdateOne) SetUpdatedAt(v time.Time) *SiteUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddBuildIDs adds the "builds" edge to the Build entity by IDs.
func (_u *SiteUpdateOne) AddBuildIDs(ids ...string) *SiteUpdateOne {
	_u.mutation.AddBuildIDs(ids...)
	return _u
}

// AddBuilds adds the "builds" edges to the Build entity.
func (_u *SiteUpdateOne) AddBuilds(v ...*Build) *SiteUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBuildIDs(ids...)
}

// AddAgentRunIDs adds the "agent_runs" edge to the AgentRun entity by IDs.
func (_u *SiteUpdateOne) AddAgentRunIDs(ids ...string) *SiteUpdateOne {
	_u.mutation.AddAgentRunIDs(ids...)
	return _u
}

// AddAgentRuns adds the "agent_runs" edges to the AgentRun entity.
func (_u *SiteUpdateOne) AddAgentRuns(v ...*AgentRun) *SiteUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentRunIDs(ids...)
}

// AddAssetOverrideIDs adds the "asset_overrides" edge to the AssetOverride entity by IDs.
func (_u *SiteUpdateOne) AddAssetOverrideIDs(ids ...string) *SiteUpdateOne {
	_u.mutation.AddAssetOverrideIDs(ids...)
	return _u
}

// AddAssetOverrides adds the "asset_overrides" edges to the AssetOverride entity.
func (_u *SiteUpdateOne) AddAssetOverrides(v ...*AssetOverride) *SiteUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAssetOverrideIDs(ids...)
}

// AddSettingsHistoryIDs adds the "settings_history" edge to the SettingsHistory entity by IDs.
func (_u *SiteUpdateOne) AddSettingsHistoryIDs(ids ...string) *SiteUpdateOne {
	_u.mutation.AddSettingsHistoryIDs(ids...)
	return _u
}

// AddSettingsHistory adds the "settings_history" edges to the SettingsHistory entity.
func (_u *SiteUpdateOne) AddSettingsHistory(v ...*SettingsHistory) *SiteUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSettingsHistoryIDs(ids...)
}

// AddMeasurementIDs adds the "measurements" edge to the MeasurementComparison entity by IDs.
func (_u *SiteUpdateOne) AddMeasurementIDs(ids ...string) *SiteUpdateOne {
	_u.mutation.AddMeasurementIDs(ids...)
	return _u
}

// AddMeasurements adds the "measurements" edges to the MeasurementComparison entity.
func (_u *SiteUpdateOne) AddMeasurements(v ...*MeasurementComparison) *SiteUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMeasurementIDs(ids...)
}

// AddPageIDs adds the "pages" edge to the Page entity by IDs.
func (_u *SiteUpdateOne) AddPageIDs(ids ...string) *SiteUpdateOne {
	_u.mutation.AddPageIDs(ids...)
	return _u
}

// AddPages adds the "pages" edges to the Page entity.
func (_u *SiteUpdateOne) AddPages(v ...*Page) *SiteUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPageIDs(ids...)
}

// AddAlertRuleIDs adds the "alert_rules" edge to the AlertRule entity by IDs.
func (_u *SiteUpdateOne) AddAlertRuleIDs(ids ...string) *SiteUpdateOne {
	_u.mutation.AddAlertRuleIDs(ids...)
	return _u
}

// AddAlertRules adds the "alert_rules" edges to the AlertRule entity.
func (_u *SiteUpdateOne) AddAlertRules(v ...*AlertRule) *SiteUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAlertRuleIDs(ids...)
}

// AddAlertLogIDs adds the "alert_logs" edge to the AlertLog entity by IDs.
func (_u *SiteUpdateOne) AddAlertLogIDs(ids ...string) *SiteUpdateOne {
	_u.mutation.AddAlertLogIDs(ids...)
	return _u
}

// AddAlertLogs adds the "alert_logs" edges to the AlertLog entity.
func (_u *SiteUpdateOne) AddAlertLogs(v ...*AlertLog) *SiteUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAlertLogIDs(ids...)
}

// Mutation returns the SiteMutation object of the builder.
func (_u *SiteUpdateOne) Mutation() *SiteMutation {
	return _u.mutation
}

// ClearBuilds clears all "builds" edges to the Build entity.
func (_u *SiteUpdateOne) ClearBuilds() *SiteUpdateOne {
	_u.mutation.ClearBuilds()
	return _u
}

// RemoveBuildIDs removes the "builds" edge to Build entities by IDs.
func (_u *SiteUpdateOne) RemoveBuildIDs(ids ...string) *SiteUpdateOne {
	_u.mutation.RemoveBuildIDs(ids...)
	return _u
}

// RemoveBuilds removes "builds" edges to Build entities.
func (_u *SiteUpdateOne) RemoveBuilds(v ...*Build) *SiteUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBuildIDs(ids...)
}

// ClearAgentRuns clears all "agent_runs" edges to the AgentRun entity.
func (_u *SiteUpdateOne) ClearAgentRuns() *SiteUpdateOne {
	_u.mutation.ClearAgentRuns()
	return _u
}

// RemoveAgentRunIDs removes the "agent_runs" edge to AgentRun entities by IDs.
func (_u *SiteUpdateOne) RemoveAgentRunIDs(ids ...string) *SiteUpdateOne {
	_u.mutation.RemoveAgentRunIDs(ids...)
	return _u
}

// RemoveAgentRuns removes "agent_runs" edges to AgentRun entities.
func (_u *SiteUpdateOne) RemoveAgentRuns(v ...*AgentRun) *SiteUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentRunIDs(ids...)
}

// ClearAssetOverrides clears all "asset_overrides" edges to the AssetOverride entity.
func (_u *SiteUpdateOne) ClearAssetOverrides() *SiteUpdateOne {
	_u.mutation.ClearAssetOverrides()
	return _u
}

// RemoveAssetOverrideIDs removes the "asset_overrides" edge to AssetOverride entities by IDs.
func (_u *SiteUpdateOne) RemoveAssetOverrideIDs(ids ...string) *SiteUpdateOne {
	_u.mutation.RemoveAssetOverrideIDs(ids...)
	return _u
}

// RemoveAssetOverrides removes "asset_overrides" edges to AssetOverride entities.
func (_u *SiteUpdateOne) RemoveAssetOverrides(v ...*AssetOverride) *SiteUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAssetOverrideIDs(ids...)
}

// ClearSettingsHistory clears all "settings_history" edges to the SettingsHistory entity.
func (_u *SiteUpdateOne) ClearSettingsHistory() *SiteUpdateOne {
	_u.mutation.ClearSettingsHistory()
	return _u
}

// RemoveSettingsHistoryIDs removes the "settings_history" edge to SettingsHistory entities by IDs.
func (_u *SiteUpdateOne) RemoveSettingsHistoryIDs(ids ...string) *SiteUpdateOne {
	_u.mutation.RemoveSettingsHistoryIDs(ids...)
	return _u
}

// RemoveSettingsHistory removes "settings_history" edges to SettingsHistory entities.
func (_u *SiteUpdateOne) RemoveSettingsHistory(v ...*SettingsHistory) *SiteUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSettingsHistoryIDs(ids...)
}

// ClearMeasurements clears all "measurements" edges to the MeasurementComparison entity.
func (_u *SiteUpdateOne) ClearMeasurements() *SiteUpdateOne {
	_u.mutation.ClearMeasurements()
	return _u
}

// RemoveMeasurementIDs removes the "measurements" edge to MeasurementComparison entities by IDs.
func (_u *SiteUpdateOne) RemoveMeasurementIDs(ids ...string) *SiteUpdateOne {
	_u.mutation.RemoveMeasurementIDs(ids...)
	return _u
}

// RemoveMeasurements removes "measurements" edges to MeasurementComparison entities.
func (_u *SiteUpdateOne) RemoveMeasurements(v ...*MeasurementComparison) *SiteUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMeasurementIDs(ids...)
}

// ClearPages clears all "pages" edges to the Page entity.
func (_u *SiteUpdateOne) ClearPages() *SiteUpdateOne {
	_u.mutation.ClearPages()
	return _u
}

// RemovePageIDs removes the "pages" edge to Page entities by IDs.
func (_u *SiteUpdateOne) RemovePageIDs(ids ...string) *SiteUpdateOne {
	_u.mutation.RemovePageIDs(ids...)
	return _u
}

// RemovePages removes "pages" edges to Page entities.
func (_u *SiteUpdateOne) RemovePages(v ...*Page) *SiteUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePageIDs(ids...)
}

// ClearAlertRules clears all "alert_rules" edges to the AlertRule entity.
func (_u *SiteUpdateOne) ClearAlertRules() *SiteUpdateOne {
	_u.mutation.ClearAlertRules()
	return _u
}

// RemoveAlertRuleIDs removes the "alert_rules" edge to AlertRule entities by IDs.
func (_u *SiteUpdateOne) RemoveAlertRuleIDs(ids ...string) *SiteUpdateOne {
	_u.mutation.RemoveAlertRuleIDs(ids...)
	return _u
}

// RemoveAlertRules removes "alert_rules" edges to AlertRule entities.
func (_u *SiteUpdateOne) RemoveAlertRules(v ...*AlertRule) *SiteUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAlertRuleIDs(ids...)
}

// ClearAlertLogs clears all "alert_logs" edges to the AlertLog entity.
func (_u *SiteUpdateOne) ClearAlertLogs() *SiteUpdateOne {
	_u.mutation.ClearAlertLogs()
	return _u
}

// RemoveAlertLogIDs removes the "alert_logs" edge to AlertLog entities by IDs.
func (_u *SiteUpdateOne) RemoveAlertLogIDs(ids ...string) *SiteUpdateOne {
	_u.mutation.RemoveAlertLogIDs(ids...)
	return _u
}

// RemoveAlertLogs removes "alert_logs" edges to AlertLog entities.
func (_u *SiteUpdateOne) RemoveAlertLogs(v ...*AlertLog) *SiteUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAlertLogIDs(ids...)
}

// Where appends a list predicates to the SiteUpdate builder.
func (_u *SiteUpdateOne) Where(ps ...predicate.Site) *SiteUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SiteUpdateOne) Select(field string, fields ...string) *SiteUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Site entity.
func (_u *SiteUpdateOne) Save(ctx context.Context) (*Site, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SiteUpdateOne) SaveX(ctx context.Context) *Site {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SiteUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SiteUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SiteUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := site.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SiteUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := site.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Site.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastBuildStatus(); ok {
		if err := site.LastBuildStatusValidator(v); err != nil {
			return &ValidationError{Name: "last_build_status", err: fmt.Errorf(`ent: validator failed for field "Site.last_build_status": %w`, err)}
		}
	}
	return nil
}

func (_u *SiteUpdateOne) sqlSave(ctx context.Context) (_node *Site, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(site.Table, site.Columns, sqlgraph.NewFieldSpec(site.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Site.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, site.FieldID)
		for _, f := range fields {
			if !site.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != site.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(site.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceURL(); ok {
		_spec.SetField(site.FieldSourceURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(site.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastBuildID(); ok {
		_spec.SetField(site.FieldLastBuildID, field.TypeString, value)
	}
	if _u.mutation.LastBuildIDCleared() {
		_spec.ClearField(site.FieldLastBuildID, field.TypeString)
	}
	if value, ok := _u.mutation.LastBuildStatus(); ok {
		_spec.SetField(site.FieldLastBuildStatus, field.TypeEnum, value)
	}
	if _u.mutation.LastBuildStatusCleared() {
		_spec.ClearField(site.FieldLastBuildStatus, field.TypeEnum)
	}
	if value, ok := _u.mutation.EdgeURL(); ok {
		_spec.SetField(site.FieldEdgeURL, field.TypeString, value)
	}
	if _u.mutation.EdgeURLCleared() {
		_spec.ClearField(site.FieldEdgeURL, field.TypeString)
	}
	if value, ok := _u.mutation.EdgeProject(); ok {
		_spec.SetField(site.FieldEdgeProject, field.TypeString, value)
	}
	if _u.mutation.EdgeProjectCleared() {
		_spec.ClearField(site.FieldEdgeProject, field.TypeString)
	}
	if value, ok := _u.mutation.PageCount(); ok {
		_spec.SetField(site.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageCount(); ok {
		_spec.AddField(site.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalBytes(); ok {
		_spec.SetField(site.FieldTotalBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalBytes(); ok {
		_spec.AddField(site.FieldTotalBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Settings(); ok {
		_spec.SetField(site.FieldSettings, field.TypeJSON, value)
	}
	if _u.mutation.SettingsCleared() {
		_spec.ClearField(site.FieldSettings, field.TypeJSON)
	}
	if value, ok := _u.mutation.WebhookSecret(); ok {
		_spec.SetField(site.FieldWebhookSecret, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(site.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BuildsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   site.BuildsTable,
			Columns: []string{site.BuildsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(build.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBuildsIDs(); len(nodes) > 0 && !_u.mutation.BuildsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   site.BuildsTable,
			Columns: []string{site.BuildsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(build.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BuildsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   site.BuildsTable,
			Columns: []string{site.BuildsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(build.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AgentRunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   site.AgentRunsTable,
			Columns: []string{site.AgentRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentRunsIDs(); len(nodes) > 0 && !_u.mutation.AgentRunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   site.AgentRunsTable,
			Columns: []string{site.AgentRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentRunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   site.AgentRunsTable,
			Columns: []string{site.AgentRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssetOverridesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   site.AssetOverridesTable,
			Columns: []string{site.AssetOverridesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assetoverride.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAssetOverridesIDs(); len(nodes) > 0 && !_u.mutation.AssetOverridesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   site.AssetOverridesTable,
			Columns: []string{site.AssetOverridesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assetoverride.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssetOverridesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   site.AssetOverridesTable,
			Columns: []string{site.AssetOverridesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assetoverride.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SettingsHistoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   site.SettingsHistoryTable,
			Columns: []string{site.SettingsHistoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(settingshistory.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSettingsHistoryIDs(); len(nodes) > 0 && !_u.mutation.SettingsHistoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   site.SettingsHistoryTable,
			Columns: []string{site.SettingsHistoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(settingshistory.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SettingsHistoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   site.SettingsHistoryTable,
			Columns: []string{site.SettingsHistoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(settingshistory.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MeasurementsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   site.MeasurementsTable,
			Columns: []string{site.MeasurementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(measurementcomparison.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMeasurementsIDs(); len(nodes) > 0 && !_u.mutation.MeasurementsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   site.MeasurementsTable,
			Columns: []string{site.MeasurementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(measurementcomparison.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MeasurementsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   site.MeasurementsTable,
			Columns: []string{site.MeasurementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(measurementcomparison.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   site.PagesTable,
			Columns: []string{site.PagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(page.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPagesIDs(); len(nodes) > 0 && !_u.mutation.PagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   site.PagesTable,
			Columns: []string{site.PagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(page.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   site.PagesTable,
			Columns: []string{site.PagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(page.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AlertRulesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   site.AlertRulesTable,
			Columns: []string{site.AlertRulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(alertrule.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAlertRulesIDs(); len(nodes) > 0 && !_u.mutation.AlertRulesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   site.AlertRulesTable,
			Columns: []string{site.AlertRulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(alertrule.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AlertRulesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   site.AlertRulesTable,
			Columns: []string{site.AlertRulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(alertrule.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AlertLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   site.AlertLogsTable,
			Columns: []string{site.AlertLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(alertlog.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAlertLogsIDs(); len(nodes) > 0 && !_u.mutation.AlertLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   site.AlertLogsTable,
			Columns: []string{site.AlertLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(alertlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AlertLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   site.AlertLogsTable,
			Columns: []string{site.AlertLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(alertlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Site{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{site.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
