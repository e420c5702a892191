// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
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

// SiteQuery is the builder for querying Site entities.
type SiteQuery struct {
	config
	ctx                 *QueryContext
	order               []site.OrderOption
	inters              []Interceptor
	predicates          []predicate.Site
	withBuilds          *BuildQuery
	withAgentRuns       *AgentRunQuery
	withAssetOverrides  *AssetOverrideQuery
	withSettingsHistory *SettingsHistoryQuery
	withMeasurements    *MeasurementComparisonQuery
	withPages           *PageQuery
	withAlertRules      *AlertRuleQuery
	withAlertLogs       *AlertLogQuery
	modifiers           []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the SiteQuery builder.
func (_q *SiteQuery) Where(ps ...predicate.Site) *SiteQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *SiteQuery) Limit(limit int) *SiteQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *SiteQuery) Offset(offset int) *SiteQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *SiteQuery) Unique(unique bool) *SiteQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *SiteQuery) Order(o ...site.OrderOption) *SiteQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryBuilds chains the current query on the "builds" edge.
func (_q *SiteQuery) QueryBuilds() *BuildQuery {
	query := (&BuildClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(site.Table, site.FieldID, selector),
			sqlgraph.To(build.Table, build.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, site.BuildsTable, site.BuildsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAgentRuns chains the current query on the "agent_runs" edge.
func (_q *SiteQuery) QueryAgentRuns() *AgentRunQuery {
	query := (&AgentRunClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(site.Table, site.FieldID, selector),
			sqlgraph.To(agentrun.Table, agentrun.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, site.AgentRunsTable, site.AgentRunsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAssetOverrides chains the current query on the "asset_overrides" edge.
func (_q *SiteQuery) QueryAssetOverrides() *AssetOverrideQuery {
	query := (&AssetOverrideClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(site.Table, site.FieldID, selector),
			sqlgraph.To(assetoverride.Table, assetoverride.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, site.AssetOverridesTable, site.AssetOverridesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySettingsHistory chains the current query on the "settings_history" edge.
func (_q *SiteQuery) QuerySettingsHistory() *SettingsHistoryQuery {
	query := (&SettingsHistoryClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(site.Table, site.FieldID, selector),
			sqlgraph.To(settingshistory.Table, settingshistory.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, site.SettingsHistoryTable, site.SettingsHistoryColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryMeasurements chains the current query on the "measurements" edge.
func (_q *SiteQuery) QueryMeasurements() *MeasurementComparisonQuery {
	query := (&MeasurementComparisonClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(site.Table, site.FieldID, selector),
			sqlgraph.To(measurementcomparison.Table, measurementcomparison.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, site.MeasurementsTable, site.MeasurementsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryPages chains the current query on the "pages" edge.
func (_q *SiteQuery) QueryPages() *PageQuery {
	query := (&PageClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(site.Table, site.FieldID, selector),
			sqlgraph.To(page.Table, page.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, site.PagesTable, site.PagesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAlertRules chains the current query on the "alert_rules" edge.
func (_q *SiteQuery) QueryAlertRules() *AlertRuleQuery {
	query := (&AlertRuleClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(site.Table, site.FieldID, selector),
			sqlgraph.To(alertrule.Table, alertrule.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, site.AlertRulesTable, site.AlertRulesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAlertLogs chains the current query on the "alert_logs" edge.
func (_q *SiteQuery) QueryAlertLogs() *AlertLogQuery {
	query := (&AlertLogClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(site.Table, site.FieldID, selector),
			sqlgraph.To(alertlog.Table, alertlog.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, site.AlertLogsTable, site.AlertLogsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Site entity from the query.
// Returns a *NotFoundError when no Site was found.
func (_q *SiteQuery) First(ctx context.Context) (*Site, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{site.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *SiteQuery) FirstX(ctx context.Context) *Site {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Site ID from the query.
// Returns a *NotFoundError when no Site ID was found.
func (_q *SiteQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{site.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *SiteQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Site entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Site entity is found.
// Returns a *NotFoundError when no Site entities are found.
func (_q *SiteQuery) Only(ctx context.Context) (*Site, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{site.Label}
	default:
		return nil, &NotSingularError{site.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *SiteQuery) OnlyX(ctx context.Context) *Site {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Site ID in the query.
// Returns a *NotSingularError when more than one Site ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *SiteQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{site.Label}
	default:
		err = &NotSingularError{site.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *SiteQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Sites.
func (_q *SiteQuery) All(ctx context.Context) ([]*Site, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Site, *SiteQuery]()
	return withInterceptors[[]*Site](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *SiteQuery) AllX(ctx context.Context) []*Site {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Site IDs.
func (_q *SiteQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(site.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *SiteQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *SiteQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*SiteQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *SiteQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *SiteQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *SiteQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the SiteQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *SiteQuery) Clone() *SiteQuery {
	if _q == nil {
		return nil
	}
	return &SiteQuery{
		config:              _q.config,
		ctx:                 _q.ctx.Clone(),
		order:               append([]site.OrderOption{}, _q.order...),
		inters:              append([]Interceptor{}, _q.inters...),
		predicates:          append([]predicate.Site{}, _q.predicates...),
		withBuilds:          _q.withBuilds.Clone(),
		withAgentRuns:       _q.withAgentRuns.Clone(),
		withAssetOverrides:  _q.withAssetOverrides.Clone(),
		withSettingsHistory: _q.withSettingsHistory.Clone(),
		withMeasurements:    _q.withMeasurements.Clone(),
		withPages:           _q.withPages.Clone(),
		withAlertRules:      _q.withAlertRules.Clone(),
		withAlertLogs:       _q.withAlertLogs.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithBuilds tells the query-builder to eager-load the nodes that are connected to
// the "builds" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SiteQuery) WithBuilds(opts ...func(*BuildQuery)) *SiteQuery {
	query := (&BuildClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withBuilds = query
	return _q
}

// WithAgentRuns tells the query-builder to eager-load the nodes that are connected to
// the "agent_runs" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SiteQuery) WithAgentRuns(opts ...func(*AgentRunQuery)) *SiteQuery {
	query := (&AgentRunClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAgentRuns = query
	return _q
}

// WithAssetOverrides tells the query-builder to eager-load the nodes that are connected to
// the "asset_overrides" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SiteQuery) WithAssetOverrides(opts ...func(*AssetOverrideQuery)) *SiteQuery {
	query := (&AssetOverrideClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAssetOverrides = query
	return _q
}

// WithSettingsHistory tells the query-builder to eager-load the nodes that are connected to
// the "settings_history" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SiteQuery) WithSettingsHistory(opts ...func(*SettingsHistoryQuery)) *SiteQuery {
	query := (&SettingsHistoryClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSettingsHistory = query
	return _q
}

// WithMeasurements tells the query-builder to eager-load the nodes that are connected to
// the "measurements" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SiteQuery) WithMeasurements(opts ...func(*MeasurementComparisonQuery)) *SiteQuery {
	query := (&MeasurementComparisonClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMeasurements = query
	return _q
}

// WithPages tells the query-builder to eager-load the nodes that are connected to
// the "pages" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SiteQuery) WithPages(opts ...func(*PageQuery)) *SiteQuery {
	query := (&PageClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPages = query
	return _q
}

// WithAlertRules tells the query-builder to eager-load the nodes that are connected to
// the "alert_rules" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SiteQuery) WithAlertRules(opts ...func(*AlertRuleQuery)) *SiteQuery {
	query := (&AlertRuleClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAlertRules = query
	return _q
}

// WithAlertLogs tells the query-builder to eager-load the nodes that are connected to
// the "alert_logs" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SiteQuery) WithAlertLogs(opts ...func(*AlertLogQuery)) *SiteQuery {
	query := (&AlertLogClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAlertLogs = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Site.Query().
//		GroupBy(site.FieldName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *SiteQuery) GroupBy(field string, fields ...string) *SiteGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &SiteGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = site.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//	}
//
//	client.Site.Query().
//		Select(site.FieldName).
//		Scan(ctx, &v)
func (_q *SiteQuery) Select(fields ...string) *SiteSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &SiteSelect{SiteQuery: _q}
	sbuild.label = site.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a SiteSelect configured with the given aggregations.
func (_q *SiteQuery) Aggregate(fns ...AggregateFunc) *SiteSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *SiteQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !site.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *SiteQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Site, error) {
	var (
		nodes       = []*Site{}
		_spec       = _q.querySpec()
		loadedTypes = [8]bool{
			_q.withBuilds != nil,
			_q.withAgentRuns != nil,
			_q.withAssetOverrides != nil,
			_q.withSettingsHistory != nil,
			_q.withMeasurements != nil,
			_q.withPages != nil,
			_q.withAlertRules != nil,
			_q.withAlertLogs != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Site).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Site{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withBuilds; query != nil {
		if err := _q.loadBuilds(ctx, query, nodes,
			func(n *Site) { n.Edges.Builds = []*Build{} },
			func(n *Site, e *Build) { n.Edges.Builds = append(n.Edges.Builds, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAgentRuns; query != nil {
		if err := _q.loadAgentRuns(ctx, query, nodes,
			func(n *Site) { n.Edges.AgentRuns = []*AgentRun{} },
			func(n *Site, e *AgentRun) { n.Edges.AgentRuns = append(n.Edges.AgentRuns, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAssetOverrides; query != nil {
		if err := _q.loadAssetOverrides(ctx, query, nodes,
			func(n *Site) { n.Edges.AssetOverrides = []*AssetOverride{} },
			func(n *Site, e *AssetOverride) { n.Edges.AssetOverrides = append(n.Edges.AssetOverrides, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSettingsHistory; query != nil {
		if err := _q.loadSettingsHistory(ctx, query, nodes,
			func(n *Site) { n.Edges.SettingsHistory = []*SettingsHistory{} },
			func(n *Site, e *SettingsHistory) { n.Edges.SettingsHistory = append(n.Edges.SettingsHistory, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withMeasurements; query != nil {
		if err := _q.loadMeasurements(ctx, query, nodes,
			func(n *Site) { n.Edges.Measurements = []*MeasurementComparison{} },
			func(n *Site, e *MeasurementComparison) { n.Edges.Measurements = append(n.Edges.Measurements, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withPages; query != nil {
		if err := _q.loadPages(ctx, query, nodes,
			func(n *Site) { n.Edges.Pages = []*Page{} },
			func(n *Site, e *Page) { n.Edges.Pages = append(n.Edges.Pages, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAlertRules; query != nil {
		if err := _q.loadAlertRules(ctx, query, nodes,
			func(n *Site) { n.Edges.AlertRules = []*AlertRule{} },
			func(n *Site, e *AlertRule) { n.Edges.AlertRules = append(n.Edges.AlertRules, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAlertLogs; query != nil {
		if err := _q.loadAlertLogs(ctx, query, nodes,
			func(n *Site) { n.Edges.AlertLogs = []*AlertLog{} },
			func(n *Site, e *AlertLog) { n.Edges.AlertLogs = append(n.Edges.AlertLogs, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *SiteQuery) loadBuilds(ctx context.Context, query *BuildQuery, nodes []*Site, init func(*Site), assign func(*Site, *Build)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Site)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(build.FieldSiteID)
	}
	query.Where(predicate.Build(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(site.BuildsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SiteID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "site_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *SiteQuery) loadAgentRuns(ctx context.Context, query *AgentRunQuery, nodes []*Site, init func(*Site), assign func(*Site, *AgentRun)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Site)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(agentrun.FieldSiteID)
	}
	query.Where(predicate.AgentRun(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(site.AgentRunsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SiteID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "site_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *SiteQuery) loadAssetOverrides(ctx context.Context, query *AssetOverrideQuery, nodes []*Site, init func(*Site), assign func(*Site, *AssetOverride)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Site)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(assetoverride.FieldSiteID)
	}
	query.Where(predicate.AssetOverride(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(site.AssetOverridesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SiteID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "site_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *SiteQuery) loadSettingsHistory(ctx context.Context, query *SettingsHistoryQuery, nodes []*Site, init func(*Site), assign func(*Site, *SettingsHistory)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Site)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(settingshistory.FieldSiteID)
	}
	query.Where(predicate.SettingsHistory(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(site.SettingsHistoryColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SiteID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "site_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *SiteQuery) loadMeasurements(ctx context.Context, query *MeasurementComparisonQuery, nodes []*Site, init func(*Site), assign func(*Site, *MeasurementComparison)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Site)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(measurementcomparison.FieldSiteID)
	}
	query.Where(predicate.MeasurementComparison(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(site.MeasurementsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SiteID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "site_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *SiteQuery) loadPages(ctx context.Context, query *PageQuery, nodes []*Site, init func(*Site), assign func(*Site, *Page)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Site)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(page.FieldSiteID)
	}
	query.Where(predicate.Page(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(site.PagesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SiteID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "site_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *SiteQuery) loadAlertRules(ctx context.Context, query *AlertRuleQuery, nodes []*Site, init func(*Site), assign func(*Site, *AlertRule)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Site)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(alertrule.FieldSiteID)
	}
	query.Where(predicate.AlertRule(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(site.AlertRulesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SiteID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "site_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *SiteQuery) loadAlertLogs(ctx context.Context, query *AlertLogQuery, nodes []*Site, init func(*Site), assign func(*Site, *AlertLog)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Site)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(alertlog.FieldSiteID)
	}
	query.Where(predicate.AlertLog(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(site.AlertLogsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SiteID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "site_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *SiteQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *SiteQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(site.Table, site.Columns, sqlgraph.NewFieldSpec(site.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, site.FieldID)
		for i := range fields {
			if fields[i] != site.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *SiteQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(site.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = site.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *SiteQuery) ForUpdate(opts ...sql.LockOption) *SiteQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *SiteQuery) ForShare(opts ...sql.LockOption) *SiteQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// SiteGroupBy is the group-by builder for Site entities.
type SiteGroupBy struct {
	selector
	build *SiteQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *SiteGroupBy) Aggregate(fns ...AggregateFunc) *SiteGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *SiteGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SiteQuery, *SiteGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *SiteGroupBy) sqlScan(ctx context.Context, root *SiteQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// SiteSelect is the builder for selecting fields of Site entities.
type SiteSelect struct {
	*SiteQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *SiteSelect) Aggregate(fns ...AggregateFunc) *SiteSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *SiteSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SiteQuery, *SiteSelect](ctx, _s.SiteQuery, _s, _s.inters, v)
}

func (_s *SiteSelect) sqlScan(ctx context.Context, root *SiteQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
