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
	"github.com/metrics-lab/staticpress/ent/alertlog"
	"github.com/metrics-lab/staticpress/ent/alertrule"
	"github.com/metrics-lab/staticpress/ent/assetoverride"
	"github.com/metrics-lab/staticpress/ent/build"
	"github.com/metrics-lab/staticpress/ent/measurementcomparison"
	"github.com/metrics-lab/staticpress/ent/page"
	"github.com/metrics-lab/staticpress/ent/settingshistory"
	"github.com/metrics-lab/staticpress/ent/site"
)

// SiteCreate is the builder for creating a Site entity.
type SiteCreate struct {
	config
	mutation *SiteMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *SiteCreate) SetName(v string) *SiteCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetSourceURL sets the "source_url" field.
func (_c *SiteCreate) SetSourceURL(v string) *SiteCreate {
	_c.mutation.SetSourceURL(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SiteCreate) SetStatus(v site.Status) *SiteCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SiteCreate) SetNillableStatus(v *site.Status) *SiteCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetLastBuildID sets the "last_build_id" field.
func (_c *SiteCreate) SetLastBuildID(v string) *SiteCreate {
	_c.mutation.SetLastBuildID(v)
	return _c
}

// SetNillableLastBuildID sets the "last_build_id" field if the given value is not nil.
func (_c *SiteCreate) SetNillableLastBuildID(v *string) *SiteCreate {
	if v != nil {
		_c.SetLastBuildID(*v)
	}
	return _c
}

// SetLastBuildStatus sets the "last_build_status" field.
func (_c *SiteCreate) SetLastBuildStatus(v site.LastBuildStatus) *SiteCreate {
	_c.mutation.SetLastBuildStatus(v)
	return _c
}

// SetNillableLastBuildStatus sets the "last_build_status" field if the given value is not nil.
func (_c *SiteCreate) SetNillableLastBuildStatus(v *site.LastBuildStatus) *SiteCreate {
	if v != nil {
		_c.SetLastBuildStatus(*v)
	}
	return _c
}

// SetEdgeURL sets the "edge_url" field.
func (_c *SiteCreate) SetEdgeURL(v string) *SiteCreate {
	_c.mutation.SetEdgeURL(v)
	return _c
}

// SetNillableEdgeURL sets the "edge_url" field if the given value is not nil.
func (_c *SiteCreate) SetNillableEdgeURL(v *string) *SiteCreate {
	if v != nil {
		_c.SetEdgeURL(*v)
	}
	return _c
}

// SetEdgeProject sets the "edge_project" field.
func (_c *SiteCreate) SetEdgeProject(v string) *SiteCreate {
	_c.mutation.SetEdgeProject(v)
	return _c
}

// SetNillableEdgeProject sets the "edge_project" field if the given value is not nil.
func (_c *SiteCreate) SetNillableEdgeProject(v *string) *SiteCreate {
	if v != nil {
		_c.SetEdgeProject(*v)
	}
	return _c
}

// SetPageCount sets the "page_count" field.
func (_c *SiteCreate) SetPageCount(v int) *SiteCreate {
	_c.mutation.SetPageCount(v)
	return _c
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_c *SiteCreate) SetNillablePageCount(v *int) *SiteCreate {
	if v != nil {
		_c.SetPageCount(*v)
	}
	return _c
}

// SetTotalBytes sets the "total_bytes" field.
func (_c *SiteCreate) SetTotalBytes(v int64) *SiteCreate {
	_c.mutation.SetTotalBytes(v)
	return _c
}

// SetNillableTotalBytes sets the "total_bytes" field if the given value is not nil.
func (_c *SiteCreate) SetNillableTotalBytes(v *int64) *SiteCreate {
	if v != nil {
		_c.SetTotalBytes(*v)
	}
	return _c
}

// SetSettings sets the "settings" field.
func (_c *SiteCreate) SetSettings(v map[string]interface{}) *SiteCreate {
	_c.mutation.SetSettings(v)
	return _c
}

// SetWebhookSecret sets the "webhook_secret" field.
func (_c *SiteCreate) SetWebhookSecret(v string) *SiteCreate {
	_c.mutation.SetWebhookSecret(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SiteCreate) SetCreatedAt(v time.Time) *SiteCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SiteCreate) SetNillableCreatedAt(v *time.Time) *SiteCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SiteCreate) SetUpdatedAt(v time.Time) *SiteCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SiteCreate) SetNillableUpdatedAt(v *time.Time) *SiteCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SiteCreate) SetID(v string) *SiteCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddBuildIDs adds the "builds" edge to the Build entity by IDs.
func (_c *SiteCreate) AddBuildIDs(ids ...string) *SiteCreate {
	_c.mutation.AddBuildIDs(ids...)
	return _c
}

// AddBuilds adds the "builds" edges to the Build entity.
func (_c *SiteCreate) AddBuilds(v ...*Build) *SiteCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBuildIDs(ids...)
}

// AddAgentRunIDs adds the "agent_runs" edge to the AgentRun entity by IDs.
func (_c *SiteCreate) AddAgentRunIDs(ids ...string) *SiteCreate {
	_c.mutation.AddAgentRunIDs(ids...)
	return _c
}

// AddAgentRuns adds the "agent_runs" edges to the AgentRun entity.
func (_c *SiteCreate) AddAgentRuns(v ...*AgentRun) *SiteCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAgentRunIDs(ids...)
}

// AddAssetOverrideIDs adds the "asset_overrides" edge to the AssetOverride entity by IDs.
func (_c *SiteCreate) AddAssetOverrideIDs(ids ...string) *SiteCreate {
	_c.mutation.AddAssetOverrideIDs(ids...)
	return _c
}

// AddAssetOverrides adds the "asset_overrides" edges to the AssetOverride entity.
func (_c *SiteCreate) AddAssetOverrides(v ...*AssetOverride) *SiteCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAssetOverrideIDs(ids...)
}

// AddSettingsHistoryIDs adds the "settings_history" edge to the SettingsHistory entity by IDs.
func (_c *SiteCreate) AddSettingsHistoryIDs(ids ...string) *SiteCreate {
	_c.mutation.AddSettingsHistoryIDs(ids...)
	return _c
}

// AddSettingsHistory adds the "settings_history" edges to the SettingsHistory entity.
func (_c *SiteCreate) AddSettingsHistory(v ...*SettingsHistory) *SiteCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSettingsHistoryIDs(ids...)
}

// AddMeasurementIDs adds the "measurements" edge to the MeasurementComparison entity by IDs.
func (_c *SiteCreate) AddMeasurementIDs(ids ...string) *SiteCreate {
	_c.mutation.AddMeasurementIDs(ids...)
	return _c
}

// AddMeasurements adds the "measurements" edges to the MeasurementComparison entity.
func (_c *SiteCreate) AddMeasurements(v ...*MeasurementComparison) *SiteCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMeasurementIDs(ids...)
}

// AddPageIDs adds the "pages" edge to the Page entity by IDs.
func (_c *SiteCreate) AddPageIDs(ids ...string) *SiteCreate {
	_c.mutation.AddPageIDs(ids...)
	return _c
}

// AddPages adds the "pages" edges to the Page entity.
func (_c *SiteCreate) AddPages(v ...*Page) *SiteCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPageIDs(ids...)
}

// AddAlertRuleIDs adds the "alert_rules" edge to the AlertRule entity by IDs.
func (_c *SiteCreate) AddAlertRuleIDs(ids ...string) *SiteCreate {
	_c.mutation.AddAlertRuleIDs(ids...)
	return _c
}

// AddAlertRules adds the "alert_rules" edges to the AlertRule entity.
func (_c *SiteCreate) AddAlertRules(v ...*AlertRule) *SiteCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAlertRuleIDs(ids...)
}

// AddAlertLogIDs adds the "alert_logs" edge to the AlertLog entity by IDs.
func (_c *SiteCreate) AddAlertLogIDs(ids ...string) *SiteCreate {
	_c.mutation.AddAlertLogIDs(ids...)
	return _c
}

// AddAlertLogs adds the "alert_logs" edges to the AlertLog entity.
func (_c *SiteCreate) AddAlertLogs(v ...*AlertLog) *SiteCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAlertLogIDs(ids...)
}

// Mutation returns the SiteMutation object of the builder.
func (_c *SiteCreate) Mutation() *SiteMutation {
	return _c.mutation
}

// Save creates the Site in the database.
func (_c *SiteCreate) Save(ctx context.Context) (*Site, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SiteCreate) SaveX(ctx context.Context) *Site {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SiteCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SiteCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SiteCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := site.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.PageCount(); !ok {
		v := site.DefaultPageCount
		_c.mutation.SetPageCount(v)
	}
	if _, ok := _c.mutation.TotalBytes(); !ok {
		v := site.DefaultTotalBytes
		_c.mutation.SetTotalBytes(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := site.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := site.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SiteCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Site.name"`)}
	}
	if _, ok := _c.mutation.SourceURL(); !ok {
		return &ValidationError{Name: "source_url", err: errors.New(`ent: missing required field "Site.source_url"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Site.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := site.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Site.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.LastBuildStatus(); ok {
		if err := site.LastBuildStatusValidator(v); err != nil {
			return &ValidationError{Name: "last_build_status", err: fmt.Errorf(`ent: validator failed for field "Site.last_build_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PageCount(); !ok {
		return &ValidationError{Name: "page_count", err: errors.New(`ent: missing required field "Site.page_count"`)}
	}
	if _, ok := _c.mutation.TotalBytes(); !ok {
		return &ValidationError{Name: "total_bytes", err: errors.New(`ent: missing required field "Site.total_bytes"`)}
	}
	if _, ok := _c.mutation.WebhookSecret(); !ok {
		return &ValidationError{Name: "webhook_secret", err: errors.New(`ent: missing required field "Site.webhook_secret"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Site.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Site.updated_at"`)}
	}
	return nil
}

func (_c *SiteCreate) sqlSave(ctx context.Context) (*Site, error) {
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
			return nil, fmt.Errorf("unexpected Site.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SiteCreate) createSpec() (*Site, *sqlgraph.CreateSpec) {
	var (
		_node = &Site{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(site.Table, sqlgraph.NewFieldSpec(site.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(site.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.SourceURL(); ok {
		_spec.SetField(site.FieldSourceURL, field.TypeString, value)
		_node.SourceURL = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(site.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.LastBuildID(); ok {
		_spec.SetField(site.FieldLastBuildID, field.TypeString, value)
		_node.LastBuildID = &value
	}
	if value, ok := _c.mutation.LastBuildStatus(); ok {
		_spec.SetField(site.FieldLastBuildStatus, field.TypeEnum, value)
		_node.LastBuildStatus = &value
	}
	if value, ok := _c.mutation.EdgeURL(); ok {
		_spec.SetField(site.FieldEdgeURL, field.TypeString, value)
		_node.EdgeURL = &value
	}
	if value, ok := _c.mutation.EdgeProject(); ok {
		_spec.SetField(site.FieldEdgeProject, field.TypeString, value)
		_node.EdgeProject = &value
	}
	if value, ok := _c.mutation.PageCount(); ok {
		_spec.SetField(site.FieldPageCount, field.TypeInt, value)
		_node.PageCount = value
	}
	if value, ok := _c.mutation.TotalBytes(); ok {
		_spec.SetField(site.FieldTotalBytes, field.TypeInt64, value)
		_node.TotalBytes = value
	}
	if value, ok := _c.mutation.Settings(); ok {
		_spec.SetField(site.FieldSettings, field.TypeJSON, value)
		_node.Settings = value
	}
	if value, ok := _c.mutation.WebhookSecret(); ok {
		_spec.SetField(site.FieldWebhookSecret, field.TypeString, value)
		_node.WebhookSecret = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(site.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(site.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.BuildsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AgentRunsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AssetOverridesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SettingsHistoryIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MeasurementsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PagesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AlertRulesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AlertLogsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SiteCreateBulk is the builder for creating many Site entities in bulk.
type SiteCreateBulk struct {
	config
	err      error
	builders []*SiteCreate
}

// Save creates the Site entities in the database.
func (_c *SiteCreateBulk) Save(ctx context.Context) ([]*Site, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Site, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SiteMutation)
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
func (_c *SiteCreateBulk) SaveX(ctx context.Context) []*Site {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SiteCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SiteCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
