// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/metrics-lab/staticpress/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/metrics-lab/staticpress/ent/agentrun"
	"github.com/metrics-lab/staticpress/ent/alertlog"
	"github.com/metrics-lab/staticpress/ent/alertrule"
	"github.com/metrics-lab/staticpress/ent/assetoverride"
	"github.com/metrics-lab/staticpress/ent/build"
	"github.com/metrics-lab/staticpress/ent/job"
	"github.com/metrics-lab/staticpress/ent/measurementcomparison"
	"github.com/metrics-lab/staticpress/ent/page"
	"github.com/metrics-lab/staticpress/ent/settingshistory"
	"github.com/metrics-lab/staticpress/ent/site"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AgentRun is the client for interacting with the AgentRun builders.
	AgentRun *AgentRunClient
	// AlertLog is the client for interacting with the AlertLog builders.
	AlertLog *AlertLogClient
	// AlertRule is the client for interacting with the AlertRule builders.
	AlertRule *AlertRuleClient
	// AssetOverride is the client for interacting with the AssetOverride builders.
	AssetOverride *AssetOverrideClient
	// Build is the client for interacting with the Build builders.
	Build *BuildClient
	// Job is the client for interacting with the Job builders.
	Job *JobClient
	// MeasurementComparison is the client for interacting with the MeasurementComparison builders.
	MeasurementComparison *MeasurementComparisonClient
	// Page is the client for interacting with the Page builders.
	Page *PageClient
	// SettingsHistory is the client for interacting with the SettingsHistory builders.
	SettingsHistory *SettingsHistoryClient
	// Site is the client for interacting with the Site builders.
	Site *SiteClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AgentRun = NewAgentRunClient(c.config)
	c.AlertLog = NewAlertLogClient(c.config)
	c.AlertRule = NewAlertRuleClient(c.config)
	c.AssetOverride = NewAssetOverrideClient(c.config)
	c.Build = NewBuildClient(c.config)
	c.Job = NewJobClient(c.config)
	c.MeasurementComparison = NewMeasurementComparisonClient(c.config)
	c.Page = NewPageClient(c.config)
	c.SettingsHistory = NewSettingsHistoryClient(c.config)
	c.Site = NewSiteClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                   ctx,
		config:                cfg,
		AgentRun:              NewAgentRunClient(cfg),
		AlertLog:              NewAlertLogClient(cfg),
		AlertRule:             NewAlertRuleClient(cfg),
		AssetOverride:         NewAssetOverrideClient(cfg),
		Build:                 NewBuildClient(cfg),
		Job:                   NewJobClient(cfg),
		MeasurementComparison: NewMeasurementComparisonClient(cfg),
		Page:                  NewPageClient(cfg),
		SettingsHistory:       NewSettingsHistoryClient(cfg),
		Site:                  NewSiteClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                   ctx,
		config:                cfg,
		AgentRun:              NewAgentRunClient(cfg),
		AlertLog:              NewAlertLogClient(cfg),
		AlertRule:             NewAlertRuleClient(cfg),
		AssetOverride:         NewAssetOverrideClient(cfg),
		Build:                 NewBuildClient(cfg),
		Job:                   NewJobClient(cfg),
		MeasurementComparison: NewMeasurementComparisonClient(cfg),
		Page:                  NewPageClient(cfg),
		SettingsHistory:       NewSettingsHistoryClient(cfg),
		Site:                  NewSiteClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AgentRun.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.AgentRun, c.AlertLog, c.AlertRule, c.AssetOverride, c.Build, c.Job,
		c.MeasurementComparison, c.Page, c.SettingsHistory, c.Site,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AgentRun, c.AlertLog, c.AlertRule, c.AssetOverride, c.Build, c.Job,
		c.MeasurementComparison, c.Page, c.SettingsHistory, c.Site,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentRunMutation:
		return c.AgentRun.mutate(ctx, m)
	case *AlertLogMutation:
		return c.AlertLog.mutate(ctx, m)
	case *AlertRuleMutation:
		return c.AlertRule.mutate(ctx, m)
	case *AssetOverrideMutation:
		return c.AssetOverride.mutate(ctx, m)
	case *BuildMutation:
		return c.Build.mutate(ctx, m)
	case *JobMutation:
		return c.Job.mutate(ctx, m)
	case *MeasurementComparisonMutation:
		return c.MeasurementComparison.mutate(ctx, m)
	case *PageMutation:
		return c.Page.mutate(ctx, m)
	case *SettingsHistoryMutation:
		return c.SettingsHistory.mutate(ctx, m)
	case *SiteMutation:
		return c.Site.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentRunClient is a client for the AgentRun schema.
type AgentRunClient struct {
	config
}

// NewAgentRunClient returns a client for the AgentRun from the given config.
func NewAgentRunClient(c config) *AgentRunClient {
	return &AgentRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentrun.Hooks(f(g(h())))`.
func (c *AgentRunClient) Use(hooks ...Hook) {
	c.hooks.AgentRun = append(c.hooks.AgentRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentrun.Intercept(f(g(h())))`.
func (c *AgentRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentRun = append(c.inters.AgentRun, interceptors...)
}

// Create returns a builder for creating a AgentRun entity.
func (c *AgentRunClient) Create() *AgentRunCreate {
	mutation := newAgentRunMutation(c.config, OpCreate)
	return &AgentRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentRun entities.
func (c *AgentRunClient) CreateBulk(builders ...*AgentRunCreate) *AgentRunCreateBulk {
	return &AgentRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentRunClient) MapCreateBulk(slice any, setFunc func(*AgentRunCreate, int)) *AgentRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentRunCreateBulk{err: fmt.Errorf("calling to AgentRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentRun.
func (c *AgentRunClient) Update() *AgentRunUpdate {
	mutation := newAgentRunMutation(c.config, OpUpdate)
	return &AgentRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentRunClient) UpdateOne(_m *AgentRun) *AgentRunUpdateOne {
	mutation := newAgentRunMutation(c.config, OpUpdateOne, withAgentRun(_m))
	return &AgentRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentRunClient) UpdateOneID(id string) *AgentRunUpdateOne {
	mutation := newAgentRunMutation(c.config, OpUpdateOne, withAgentRunID(id))
	return &AgentRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentRun.
func (c *AgentRunClient) Delete() *AgentRunDelete {
	mutation := newAgentRunMutation(c.config, OpDelete)
	return &AgentRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentRunClient) DeleteOne(_m *AgentRun) *AgentRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentRunClient) DeleteOneID(id string) *AgentRunDeleteOne {
	builder := c.Delete().Where(agentrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentRunDeleteOne{builder}
}

// Query returns a query builder for AgentRun.
func (c *AgentRunClient) Query() *AgentRunQuery {
	return &AgentRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentRun},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentRun entity by its id.
func (c *AgentRunClient) Get(ctx context.Context, id string) (*AgentRun, error) {
	return c.Query().Where(agentrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentRunClient) GetX(ctx context.Context, id string) *AgentRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySite queries the site edge of a AgentRun.
func (c *AgentRunClient) QuerySite(_m *AgentRun) *SiteQuery {
	query := (&SiteClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentrun.Table, agentrun.FieldID, id),
			sqlgraph.To(site.Table, site.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentrun.SiteTable, agentrun.SiteColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentRunClient) Hooks() []Hook {
	return c.hooks.AgentRun
}

// Interceptors returns the client interceptors.
func (c *AgentRunClient) Interceptors() []Interceptor {
	return c.inters.AgentRun
}

func (c *AgentRunClient) mutate(ctx context.Context, m *AgentRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentRun mutation op: %q", m.Op())
	}
}

// AlertLogClient is a client for the AlertLog schema.
type AlertLogClient struct {
	config
}

// NewAlertLogClient returns a client for the AlertLog from the given config.
func NewAlertLogClient(c config) *AlertLogClient {
	return &AlertLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `alertlog.Hooks(f(g(h())))`.
func (c *AlertLogClient) Use(hooks ...Hook) {
	c.hooks.AlertLog = append(c.hooks.AlertLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `alertlog.Intercept(f(g(h())))`.
func (c *AlertLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.AlertLog = append(c.inters.AlertLog, interceptors...)
}

// Create returns a builder for creating a AlertLog entity.
func (c *AlertLogClient) Create() *AlertLogCreate {
	mutation := newAlertLogMutation(c.config, OpCreate)
	return &AlertLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AlertLog entities.
func (c *AlertLogClient) CreateBulk(builders ...*AlertLogCreate) *AlertLogCreateBulk {
	return &AlertLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AlertLogClient) MapCreateBulk(slice any, setFunc func(*AlertLogCreate, int)) *AlertLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AlertLogCreateBulk{err: fmt.Errorf("calling to AlertLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AlertLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AlertLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AlertLog.
func (c *AlertLogClient) Update() *AlertLogUpdate {
	mutation := newAlertLogMutation(c.config, OpUpdate)
	return &AlertLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AlertLogClient) UpdateOne(_m *AlertLog) *AlertLogUpdateOne {
	mutation := newAlertLogMutation(c.config, OpUpdateOne, withAlertLog(_m))
	return &AlertLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AlertLogClient) UpdateOneID(id string) *AlertLogUpdateOne {
	mutation := newAlertLogMutation(c.config, OpUpdateOne, withAlertLogID(id))
	return &AlertLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AlertLog.
func (c *AlertLogClient) Delete() *AlertLogDelete {
	mutation := newAlertLogMutation(c.config, OpDelete)
	return &AlertLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AlertLogClient) DeleteOne(_m *AlertLog) *AlertLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AlertLogClient) DeleteOneID(id string) *AlertLogDeleteOne {
	builder := c.Delete().Where(alertlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AlertLogDeleteOne{builder}
}

// Query returns a query builder for AlertLog.
func (c *AlertLogClient) Query() *AlertLogQuery {
	return &AlertLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAlertLog},
		inters: c.Interceptors(),
	}
}

// Get returns a AlertLog entity by its id.
func (c *AlertLogClient) Get(ctx context.Context, id string) (*AlertLog, error) {
	return c.Query().Where(alertlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AlertLogClient) GetX(ctx context.Context, id string) *AlertLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySite queries the site edge of a AlertLog.
func (c *AlertLogClient) QuerySite(_m *AlertLog) *SiteQuery {
	query := (&SiteClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(alertlog.Table, alertlog.FieldID, id),
			sqlgraph.To(site.Table, site.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, alertlog.SiteTable, alertlog.SiteColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AlertLogClient) Hooks() []Hook {
	return c.hooks.AlertLog
}

// Interceptors returns the client interceptors.
func (c *AlertLogClient) Interceptors() []Interceptor {
	return c.inters.AlertLog
}

func (c *AlertLogClient) mutate(ctx context.Context, m *AlertLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AlertLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AlertLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AlertLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AlertLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AlertLog mutation op: %q", m.Op())
	}
}

// AlertRuleClient is a client for the AlertRule schema.
type AlertRuleClient struct {
	config
}

// NewAlertRuleClient returns a client for the AlertRule from the given config.
func NewAlertRuleClient(c config) *AlertRuleClient {
	return &AlertRuleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `alertrule.Hooks(f(g(h())))`.
func (c *AlertRuleClient) Use(hooks ...Hook) {
	c.hooks.AlertRule = append(c.hooks.AlertRule, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `alertrule.Intercept(f(g(h())))`.
func (c *AlertRuleClient) Intercept(interceptors ...Interceptor) {
	c.inters.AlertRule = append(c.inters.AlertRule, interceptors...)
}

// Create returns a builder for creating a AlertRule entity.
func (c *AlertRuleClient) Create() *AlertRuleCreate {
	mutation := newAlertRuleMutation(c.config, OpCreate)
	return &AlertRuleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AlertRule entities.
func (c *AlertRuleClient) CreateBulk(builders ...*AlertRuleCreate) *AlertRuleCreateBulk {
	return &AlertRuleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AlertRuleClient) MapCreateBulk(slice any, setFunc func(*AlertRuleCreate, int)) *AlertRuleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AlertRuleCreateBulk{err: fmt.Errorf("calling to AlertRuleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AlertRuleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AlertRuleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AlertRule.
func (c *AlertRuleClient) Update() *AlertRuleUpdate {
	mutation := newAlertRuleMutation(c.config, OpUpdate)
	return &AlertRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AlertRuleClient) UpdateOne(_m *AlertRule) *AlertRuleUpdateOne {
	mutation := newAlertRuleMutation(c.config, OpUpdateOne, withAlertRule(_m))
	return &AlertRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AlertRuleClient) UpdateOneID(id string) *AlertRuleUpdateOne {
	mutation := newAlertRuleMutation(c.config, OpUpdateOne, withAlertRuleID(id))
	return &AlertRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AlertRule.
func (c *AlertRuleClient) Delete() *AlertRuleDelete {
	mutation := newAlertRuleMutation(c.config, OpDelete)
	return &AlertRuleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AlertRuleClient) DeleteOne(_m *AlertRule) *AlertRuleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AlertRuleClient) DeleteOneID(id string) *AlertRuleDeleteOne {
	builder := c.Delete().Where(alertrule.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AlertRuleDeleteOne{builder}
}

// Query returns a query builder for AlertRule.
func (c *AlertRuleClient) Query() *AlertRuleQuery {
	return &AlertRuleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAlertRule},
		inters: c.Interceptors(),
	}
}

// Get returns a AlertRule entity by its id.
func (c *AlertRuleClient) Get(ctx context.Context, id string) (*AlertRule, error) {
	return c.Query().Where(alertrule.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AlertRuleClient) GetX(ctx context.Context, id string) *AlertRule {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySite queries the site edge of a AlertRule.
func (c *AlertRuleClient) QuerySite(_m *AlertRule) *SiteQuery {
	query := (&SiteClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(alertrule.Table, alertrule.FieldID, id),
			sqlgraph.To(site.Table, site.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, alertrule.SiteTable, alertrule.SiteColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AlertRuleClient) Hooks() []Hook {
	return c.hooks.AlertRule
}

// Interceptors returns the client interceptors.
func (c *AlertRuleClient) Interceptors() []Interceptor {
	return c.inters.AlertRule
}

func (c *AlertRuleClient) mutate(ctx context.Context, m *AlertRuleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AlertRuleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AlertRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AlertRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AlertRuleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AlertRule mutation op: %q", m.Op())
	}
}

// AssetOverrideClient is a client for the AssetOverride schema.
type AssetOverrideClient struct {
	config
}

// NewAssetOverrideClient returns a client for the AssetOverride from the given config.
func NewAssetOverrideClient(c config) *AssetOverrideClient {
	return &AssetOverrideClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `assetoverride.Hooks(f(g(h())))`.
func (c *AssetOverrideClient) Use(hooks ...Hook) {
	c.hooks.AssetOverride = append(c.hooks.AssetOverride, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `assetoverride.Intercept(f(g(h())))`.
func (c *AssetOverrideClient) Intercept(interceptors ...Interceptor) {
	c.inters.AssetOverride = append(c.inters.AssetOverride, interceptors...)
}

// Create returns a builder for creating a AssetOverride entity.
func (c *AssetOverrideClient) Create() *AssetOverrideCreate {
	mutation := newAssetOverrideMutation(c.config, OpCreate)
	return &AssetOverrideCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AssetOverride entities.
func (c *AssetOverrideClient) CreateBulk(builders ...*AssetOverrideCreate) *AssetOverrideCreateBulk {
	return &AssetOverrideCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AssetOverrideClient) MapCreateBulk(slice any, setFunc func(*AssetOverrideCreate, int)) *AssetOverrideCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AssetOverrideCreateBulk{err: fmt.Errorf("calling to AssetOverrideClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AssetOverrideCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AssetOverrideCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AssetOverride.
func (c *AssetOverrideClient) Update() *AssetOverrideUpdate {
	mutation := newAssetOverrideMutation(c.config, OpUpdate)
	return &AssetOverrideUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AssetOverrideClient) UpdateOne(_m *AssetOverride) *AssetOverrideUpdateOne {
	mutation := newAssetOverrideMutation(c.config, OpUpdateOne, withAssetOverride(_m))
	return &AssetOverrideUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AssetOverrideClient) UpdateOneID(id string) *AssetOverrideUpdateOne {
	mutation := newAssetOverrideMutation(c.config, OpUpdateOne, withAssetOverrideID(id))
	return &AssetOverrideUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AssetOverride.
func (c *AssetOverrideClient) Delete() *AssetOverrideDelete {
	mutation := newAssetOverrideMutation(c.config, OpDelete)
	return &AssetOverrideDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AssetOverrideClient) DeleteOne(_m *AssetOverride) *AssetOverrideDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AssetOverrideClient) DeleteOneID(id string) *AssetOverrideDeleteOne {
	builder := c.Delete().Where(assetoverride.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AssetOverrideDeleteOne{builder}
}

// Query returns a query builder for AssetOverride.
func (c *AssetOverrideClient) Query() *AssetOverrideQuery {
	return &AssetOverrideQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAssetOverride},
		inters: c.Interceptors(),
	}
}

// Get returns a AssetOverride entity by its id.
func (c *AssetOverrideClient) Get(ctx context.Context, id string) (*AssetOverride, error) {
	return c.Query().Where(assetoverride.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AssetOverrideClient) GetX(ctx context.Context, id string) *AssetOverride {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySite queries the site edge of a AssetOverride.
func (c *AssetOverrideClient) QuerySite(_m *AssetOverride) *SiteQuery {
	query := (&SiteClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(assetoverride.Table, assetoverride.FieldID, id),
			sqlgraph.To(site.Table, site.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, assetoverride.SiteTable, assetoverride.SiteColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AssetOverrideClient) Hooks() []Hook {
	return c.hooks.AssetOverride
}

// Interceptors returns the client interceptors.
func (c *AssetOverrideClient) Interceptors() []Interceptor {
	return c.inters.AssetOverride
}

func (c *AssetOverrideClient) mutate(ctx context.Context, m *AssetOverrideMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AssetOverrideCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AssetOverrideUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AssetOverrideUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AssetOverrideDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AssetOverride mutation op: %q", m.Op())
	}
}

// BuildClient is a client for the Build schema.
type BuildClient struct {
	config
}

// NewBuildClient returns a client for the Build from the given config.
func NewBuildClient(c config) *BuildClient {
	return &BuildClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `build.Hooks(f(g(h())))`.
func (c *BuildClient) Use(hooks ...Hook) {
	c.hooks.Build = append(c.hooks.Build, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `build.Intercept(f(g(h())))`.
func (c *BuildClient) Intercept(interceptors ...Interceptor) {
	c.inters.Build = append(c.inters.Build, interceptors...)
}

// Create returns a builder for creating a Build entity.
func (c *BuildClient) Create() *BuildCreate {
	mutation := newBuildMutation(c.config, OpCreate)
	return &BuildCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Build entities.
func (c *BuildClient) CreateBulk(builders ...*BuildCreate) *BuildCreateBulk {
	return &BuildCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BuildClient) MapCreateBulk(slice any, setFunc func(*BuildCreate, int)) *BuildCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BuildCreateBulk{err: fmt.Errorf("calling to BuildClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BuildCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BuildCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Build.
func (c *BuildClient) Update() *BuildUpdate {
	mutation := newBuildMutation(c.config, OpUpdate)
	return &BuildUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BuildClient) UpdateOne(_m *Build) *BuildUpdateOne {
	mutation := newBuildMutation(c.config, OpUpdateOne, withBuild(_m))
	return &BuildUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BuildClient) UpdateOneID(id string) *BuildUpdateOne {
	mutation := newBuildMutation(c.config, OpUpdateOne, withBuildID(id))
	return &BuildUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Build.
func (c *BuildClient) Delete() *BuildDelete {
	mutation := newBuildMutation(c.config, OpDelete)
	return &BuildDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BuildClient) DeleteOne(_m *Build) *BuildDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BuildClient) DeleteOneID(id string) *BuildDeleteOne {
	builder := c.Delete().Where(build.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BuildDeleteOne{builder}
}

// Query returns a query builder for Build.
func (c *BuildClient) Query() *BuildQuery {
	return &BuildQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBuild},
		inters: c.Interceptors(),
	}
}

// Get returns a Build entity by its id.
func (c *BuildClient) Get(ctx context.Context, id string) (*Build, error) {
	return c.Query().Where(build.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BuildClient) GetX(ctx context.Context, id string) *Build {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySite queries the site edge of a Build.
func (c *BuildClient) QuerySite(_m *Build) *SiteQuery {
	query := (&SiteClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(build.Table, build.FieldID, id),
			sqlgraph.To(site.Table, site.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, build.SiteTable, build.SiteColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BuildClient) Hooks() []Hook {
	return c.hooks.Build
}

// Interceptors returns the client interceptors.
func (c *BuildClient) Interceptors() []Interceptor {
	return c.inters.Build
}

func (c *BuildClient) mutate(ctx context.Context, m *BuildMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BuildCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BuildUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BuildUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BuildDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Build mutation op: %q", m.Op())
	}
}

// JobClient is a client for the Job schema.
type JobClient struct {
	config
}

// NewJobClient returns a client for the Job from the given config.
func NewJobClient(c config) *JobClient {
	return &JobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `job.Hooks(f(g(h())))`.
func (c *JobClient) Use(hooks ...Hook) {
	c.hooks.Job = append(c.hooks.Job, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `job.Intercept(f(g(h())))`.
func (c *JobClient) Intercept(interceptors ...Interceptor) {
	c.inters.Job = append(c.inters.Job, interceptors...)
}

// Create returns a builder for creating a Job entity.
func (c *JobClient) Create() *JobCreate {
	mutation := newJobMutation(c.config, OpCreate)
	return &JobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Job entities.
func (c *JobClient) CreateBulk(builders ...*JobCreate) *JobCreateBulk {
	return &JobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobClient) MapCreateBulk(slice any, setFunc func(*JobCreate, int)) *JobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobCreateBulk{err: fmt.Errorf("calling to JobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Job.
func (c *JobClient) Update() *JobUpdate {
	mutation := newJobMutation(c.config, OpUpdate)
	return &JobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobClient) UpdateOne(_m *Job) *JobUpdateOne {
	mutation := newJobMutation(c.config, OpUpdateOne, withJob(_m))
	return &JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobClient) UpdateOneID(id string) *JobUpdateOne {
	mutation := newJobMutation(c.config, OpUpdateOne, withJobID(id))
	return &JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Job.
func (c *JobClient) Delete() *JobDelete {
	mutation := newJobMutation(c.config, OpDelete)
	return &JobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobClient) DeleteOne(_m *Job) *JobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobClient) DeleteOneID(id string) *JobDeleteOne {
	builder := c.Delete().Where(job.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobDeleteOne{builder}
}

// Query returns a query builder for Job.
func (c *JobClient) Query() *JobQuery {
	return &JobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJob},
		inters: c.Interceptors(),
	}
}

// Get returns a Job entity by its id.
func (c *JobClient) Get(ctx context.Context, id string) (*Job, error) {
	return c.Query().Where(job.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobClient) GetX(ctx context.Context, id string) *Job {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *JobClient) Hooks() []Hook {
	return c.hooks.Job
}

// Interceptors returns the client interceptors.
func (c *JobClient) Interceptors() []Interceptor {
	return c.inters.Job
}

func (c *JobClient) mutate(ctx context.Context, m *JobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Job mutation op: %q", m.Op())
	}
}

// MeasurementComparisonClient is a client for the MeasurementComparison schema.
type MeasurementComparisonClient struct {
	config
}

// NewMeasurementComparisonClient returns a client for the MeasurementComparison from the given config.
func NewMeasurementComparisonClient(c config) *MeasurementComparisonClient {
	return &MeasurementComparisonClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `measurementcomparison.Hooks(f(g(h())))`.
func (c *MeasurementComparisonClient) Use(hooks ...Hook) {
	c.hooks.MeasurementComparison = append(c.hooks.MeasurementComparison, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `measurementcomparison.Intercept(f(g(h())))`.
func (c *MeasurementComparisonClient) Intercept(interceptors ...Interceptor) {
	c.inters.MeasurementComparison = append(c.inters.MeasurementComparison, interceptors...)
}

// Create returns a builder for creating a MeasurementComparison entity.
func (c *MeasurementComparisonClient) Create() *MeasurementComparisonCreate {
	mutation := newMeasurementComparisonMutation(c.config, OpCreate)
	return &MeasurementComparisonCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MeasurementComparison entities.
func (c *MeasurementComparisonClient) CreateBulk(builders ...*MeasurementComparisonCreate) *MeasurementComparisonCreateBulk {
	return &MeasurementComparisonCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MeasurementComparisonClient) MapCreateBulk(slice any, setFunc func(*MeasurementComparisonCreate, int)) *MeasurementComparisonCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MeasurementComparisonCreateBulk{err: fmt.Errorf("calling to MeasurementComparisonClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MeasurementComparisonCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MeasurementComparisonCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MeasurementComparison.
func (c *MeasurementComparisonClient) Update() *MeasurementComparisonUpdate {
	mutation := newMeasurementComparisonMutation(c.config, OpUpdate)
	return &MeasurementComparisonUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MeasurementComparisonClient) UpdateOne(_m *MeasurementComparison) *MeasurementComparisonUpdateOne {
	mutation := newMeasurementComparisonMutation(c.config, OpUpdateOne, withMeasurementComparison(_m))
	return &MeasurementComparisonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MeasurementComparisonClient) UpdateOneID(id string) *MeasurementComparisonUpdateOne {
	mutation := newMeasurementComparisonMutation(c.config, OpUpdateOne, withMeasurementComparisonID(id))
	return &MeasurementComparisonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MeasurementComparison.
func (c *MeasurementComparisonClient) Delete() *MeasurementComparisonDelete {
	mutation := newMeasurementComparisonMutation(c.config, OpDelete)
	return &MeasurementComparisonDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MeasurementComparisonClient) DeleteOne(_m *MeasurementComparison) *MeasurementComparisonDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MeasurementComparisonClient) DeleteOneID(id string) *MeasurementComparisonDeleteOne {
	builder := c.Delete().Where(measurementcomparison.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MeasurementComparisonDeleteOne{builder}
}

// Query returns a query builder for MeasurementComparison.
func (c *MeasurementComparisonClient) Query() *MeasurementComparisonQuery {
	return &MeasurementComparisonQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMeasurementComparison},
		inters: c.Interceptors(),
	}
}

// Get returns a MeasurementComparison entity by its id.
func (c *MeasurementComparisonClient) Get(ctx context.Context, id string) (*MeasurementComparison, error) {
	return c.Query().Where(measurementcomparison.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MeasurementComparisonClient) GetX(ctx context.Context, id string) *MeasurementComparison {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySite queries the site edge of a MeasurementComparison.
func (c *MeasurementComparisonClient) QuerySite(_m *MeasurementComparison) *SiteQuery {
	query := (&SiteClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(measurementcomparison.Table, measurementcomparison.FieldID, id),
			sqlgraph.To(site.Table, site.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, measurementcomparison.SiteTable, measurementcomparison.SiteColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MeasurementComparisonClient) Hooks() []Hook {
	return c.hooks.MeasurementComparison
}

// Interceptors returns the client interceptors.
func (c *MeasurementComparisonClient) Interceptors() []Interceptor {
	return c.inters.MeasurementComparison
}

func (c *MeasurementComparisonClient) mutate(ctx context.Context, m *MeasurementComparisonMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MeasurementComparisonCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MeasurementComparisonUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MeasurementComparisonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MeasurementComparisonDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MeasurementComparison mutation op: %q", m.Op())
	}
}

// PageClient is a client for the Page schema.
type PageClient struct {
	config
}

// NewPageClient returns a client for the Page from the given config.
func NewPageClient(c config) *PageClient {
	return &PageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `page.Hooks(f(g(h())))`.
func (c *PageClient) Use(hooks ...Hook) {
	c.hooks.Page = append(c.hooks.Page, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `page.Intercept(f(g(h())))`.
func (c *PageClient) Intercept(interceptors ...Interceptor) {
	c.inters.Page = append(c.inters.Page, interceptors...)
}

// Create returns a builder for creating a Page entity.
func (c *PageClient) Create() *PageCreate {
	mutation := newPageMutation(c.config, OpCreate)
	return &PageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Page entities.
func (c *PageClient) CreateBulk(builders ...*PageCreate) *PageCreateBulk {
	return &PageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PageClient) MapCreateBulk(slice any, setFunc func(*PageCreate, int)) *PageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PageCreateBulk{err: fmt.Errorf("calling to PageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Page.
func (c *PageClient) Update() *PageUpdate {
	mutation := newPageMutation(c.config, OpUpdate)
	return &PageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PageClient) UpdateOne(_m *Page) *PageUpdateOne {
	mutation := newPageMutation(c.config, OpUpdateOne, withPage(_m))
	return &PageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PageClient) UpdateOneID(id string) *PageUpdateOne {
	mutation := newPageMutation(c.config, OpUpdateOne, withPageID(id))
	return &PageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Page.
func (c *PageClient) Delete() *PageDelete {
	mutation := newPageMutation(c.config, OpDelete)
	return &PageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PageClient) DeleteOne(_m *Page) *PageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PageClient) DeleteOneID(id string) *PageDeleteOne {
	builder := c.Delete().Where(page.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PageDeleteOne{builder}
}

// Query returns a query builder for Page.
func (c *PageClient) Query() *PageQuery {
	return &PageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePage},
		inters: c.Interceptors(),
	}
}

// Get returns a Page entity by its id.
func (c *PageClient) Get(ctx context.Context, id string) (*Page, error) {
	return c.Query().Where(page.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PageClient) GetX(ctx context.Context, id string) *Page {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySite queries the site edge of a Page.
func (c *PageClient) QuerySite(_m *Page) *SiteQuery {
	query := (&SiteClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(page.Table, page.FieldID, id),
			sqlgraph.To(site.Table, site.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, page.SiteTable, page.SiteColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PageClient) Hooks() []Hook {
	return c.hooks.Page
}

// Interceptors returns the client interceptors.
func (c *PageClient) Interceptors() []Interceptor {
	return c.inters.Page
}

func (c *PageClient) mutate(ctx context.Context, m *PageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Page mutation op: %q", m.Op())
	}
}

// SettingsHistoryClient is a client for the SettingsHistory schema.
type SettingsHistoryClient struct {
	config
}

// NewSettingsHistoryClient returns a client for the SettingsHistory from the given config.
func NewSettingsHistoryClient(c config) *SettingsHistoryClient {
	return &SettingsHistoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `settingshistory.Hooks(f(g(h())))`.
func (c *SettingsHistoryClient) Use(hooks ...Hook) {
	c.hooks.SettingsHistory = append(c.hooks.SettingsHistory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `settingshistory.Intercept(f(g(h())))`.
func (c *SettingsHistoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.SettingsHistory = append(c.inters.SettingsHistory, interceptors...)
}

// Create returns a builder for creating a SettingsHistory entity.
func (c *SettingsHistoryClient) Create() *SettingsHistoryCreate {
	mutation := newSettingsHistoryMutation(c.config, OpCreate)
	return &SettingsHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SettingsHistory entities.
func (c *SettingsHistoryClient) CreateBulk(builders ...*SettingsHistoryCreate) *SettingsHistoryCreateBulk {
	return &SettingsHistoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SettingsHistoryClient) MapCreateBulk(slice any, setFunc func(*SettingsHistoryCreate, int)) *SettingsHistoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SettingsHistoryCreateBulk{err: fmt.Errorf("calling to SettingsHistoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SettingsHistoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SettingsHistoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SettingsHistory.
func (c *SettingsHistoryClient) Update() *SettingsHistoryUpdate {
	mutation := newSettingsHistoryMutation(c.config, OpUpdate)
	return &SettingsHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SettingsHistoryClient) UpdateOne(_m *SettingsHistory) *SettingsHistoryUpdateOne {
	mutation := newSettingsHistoryMutation(c.config, OpUpdateOne, withSettingsHistory(_m))
	return &SettingsHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SettingsHistoryClient) UpdateOneID(id string) *SettingsHistoryUpdateOne {
	mutation := newSettingsHistoryMutation(c.config, OpUpdateOne, withSettingsHistoryID(id))
	return &SettingsHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SettingsHistory.
func (c *SettingsHistoryClient) Delete() *SettingsHistoryDelete {
	mutation := newSettingsHistoryMutation(c.config, OpDelete)
	return &SettingsHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SettingsHistoryClient) DeleteOne(_m *SettingsHistory) *SettingsHistoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SettingsHistoryClient) DeleteOneID(id string) *SettingsHistoryDeleteOne {
	builder := c.Delete().Where(settingshistory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SettingsHistoryDeleteOne{builder}
}

// Query returns a query builder for SettingsHistory.
func (c *SettingsHistoryClient) Query() *SettingsHistoryQuery {
	return &SettingsHistoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSettingsHistory},
		inters: c.Interceptors(),
	}
}

// Get returns a SettingsHistory entity by its id.
func (c *SettingsHistoryClient) Get(ctx context.Context, id string) (*SettingsHistory, error) {
	return c.Query().Where(settingshistory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SettingsHistoryClient) GetX(ctx context.Context, id string) *SettingsHistory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySite queries the site edge of a SettingsHistory.
func (c *SettingsHistoryClient) QuerySite(_m *SettingsHistory) *SiteQuery {
	query := (&SiteClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(settingshistory.Table, settingshistory.FieldID, id),
			sqlgraph.To(site.Table, site.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, settingshistory.SiteTable, settingshistory.SiteColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SettingsHistoryClient) Hooks() []Hook {
	return c.hooks.SettingsHistory
}

// Interceptors returns the client interceptors.
func (c *SettingsHistoryClient) Interceptors() []Interceptor {
	return c.inters.SettingsHistory
}

func (c *SettingsHistoryClient) mutate(ctx context.Context, m *SettingsHistoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SettingsHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SettingsHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SettingsHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SettingsHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SettingsHistory mutation op: %q", m.Op())
	}
}

// SiteClient is a client for the Site schema.
type SiteClient struct {
	config
}

// NewSiteClient returns a client for the Site from the given config.
func NewSiteClient(c config) *SiteClient {
	return &SiteClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `site.Hooks(f(g(h())))`.
func (c *SiteClient) Use(hooks ...Hook) {
	c.hooks.Site = append(c.hooks.Site, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `site.Intercept(f(g(h())))`.
func (c *SiteClient) Intercept(interceptors ...Interceptor) {
	c.inters.Site = append(c.inters.Site, interceptors...)
}

// Create returns a builder for creating a Site entity.
func (c *SiteClient) Create() *SiteCreate {
	mutation := newSiteMutation(c.config, OpCreate)
	return &SiteCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Site entities.
func (c *SiteClient) CreateBulk(builders ...*SiteCreate) *SiteCreateBulk {
	return &SiteCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SiteClient) MapCreateBulk(slice any, setFunc func(*SiteCreate, int)) *SiteCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SiteCreateBulk{err: fmt.Errorf("calling to SiteClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SiteCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SiteCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Site.
func (c *SiteClient) Update() *SiteUpdate {
	mutation := newSiteMutation(c.config, OpUpdate)
	return &SiteUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SiteClient) UpdateOne(_m *Site) *SiteUpdateOne {
	mutation := newSiteMutation(c.config, OpUpdateOne, withSite(_m))
	return &SiteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SiteClient) UpdateOneID(id string) *SiteUpdateOne {
	mutation := newSiteMutation(c.config, OpUpdateOne, withSiteID(id))
	return &SiteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Site.
func (c *SiteClient) Delete() *SiteDelete {
	mutation := newSiteMutation(c.config, OpDelete)
	return &SiteDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SiteClient) DeleteOne(_m *Site) *SiteDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SiteClient) DeleteOneID(id string) *SiteDeleteOne {
	builder := c.Delete().Where(site.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SiteDeleteOne{builder}
}

// Query returns a query builder for Site.
func (c *SiteClient) Query() *SiteQuery {
	return &SiteQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSite},
		inters: c.Interceptors(),
	}
}

// Get returns a Site entity by its id.
func (c *SiteClient) Get(ctx context.Context, id string) (*Site, error) {
	return c.Query().Where(site.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SiteClient) GetX(ctx context.Context, id string) *Site {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBuilds queries the builds edge of a Site.
func (c *SiteClient) QueryBuilds(_m *Site) *BuildQuery {
	query := (&BuildClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(site.Table, site.FieldID, id),
			sqlgraph.To(build.Table, build.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, site.BuildsTable, site.BuildsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAgentRuns queries the agent_runs edge of a Site.
func (c *SiteClient) QueryAgentRuns(_m *Site) *AgentRunQuery {
	query := (&AgentRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(site.Table, site.FieldID, id),
			sqlgraph.To(agentrun.Table, agentrun.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, site.AgentRunsTable, site.AgentRunsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAssetOverrides queries the asset_overrides edge of a Site.
func (c *SiteClient) QueryAssetOverrides(_m *Site) *AssetOverrideQuery {
	query := (&AssetOverrideClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(site.Table, site.FieldID, id),
			sqlgraph.To(assetoverride.Table, assetoverride.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, site.AssetOverridesTable, site.AssetOverridesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySettingsHistory queries the settings_history edge of a Site.
func (c *SiteClient) QuerySettingsHistory(_m *Site) *SettingsHistoryQuery {
	query := (&SettingsHistoryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(site.Table, site.FieldID, id),
			sqlgraph.To(settingshistory.Table, settingshistory.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, site.SettingsHistoryTable, site.SettingsHistoryColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMeasurements queries the measurements edge of a Site.
func (c *SiteClient) QueryMeasurements(_m *Site) *MeasurementComparisonQuery {
	query := (&MeasurementComparisonClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(site.Table, site.FieldID, id),
			sqlgraph.To(measurementcomparison.Table, measurementcomparison.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, site.MeasurementsTable, site.MeasurementsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPages queries the pages edge of a Site.
func (c *SiteClient) QueryPages(_m *Site) *PageQuery {
	query := (&PageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(site.Table, site.FieldID, id),
			sqlgraph.To(page.Table, page.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, site.PagesTable, site.PagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAlertRules queries the alert_rules edge of a Site.
func (c *SiteClient) QueryAlertRules(_m *Site) *AlertRuleQuery {
	query := (&AlertRuleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(site.Table, site.FieldID, id),
			sqlgraph.To(alertrule.Table, alertrule.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, site.AlertRulesTable, site.AlertRulesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAlertLogs queries the alert_logs edge of a Site.
func (c *SiteClient) QueryAlertLogs(_m *Site) *AlertLogQuery {
	query := (&AlertLogClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(site.Table, site.FieldID, id),
			sqlgraph.To(alertlog.Table, alertlog.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, site.AlertLogsTable, site.AlertLogsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SiteClient) Hooks() []Hook {
	return c.hooks.Site
}

// Interceptors returns the client interceptors.
func (c *SiteClient) Interceptors() []Interceptor {
	return c.inters.Site
}

func (c *SiteClient) mutate(ctx context.Context, m *SiteMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SiteCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SiteUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SiteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SiteDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Site mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AgentRun, AlertLog, AlertRule, AssetOverride, Build, Job, MeasurementComparison,
		Page, SettingsHistory, Site []ent.Hook
	}
	inters struct {
		AgentRun, AlertLog, AlertRule, AssetOverride, Build, Job, MeasurementComparison,
		Page, SettingsHistory, Site []ent.Interceptor
	}
)
