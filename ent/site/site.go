// Code generated by ent, DO NOT EDIT.

package site

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the site type in the database.
	Label = "site"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "site_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldSourceURL holds the string denoting the source_url field in the database.
	FieldSourceURL = "source_url"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldLastBuildID holds the string denoting the last_build_id field in the database.
	FieldLastBuildID = "last_build_id"
	// FieldLastBuildStatus holds the string denoting the last_build_status field in the database.
	FieldLastBuildStatus = "last_build_status"
	// FieldEdgeURL holds the string denoting the edge_url field in the database.
	FieldEdgeURL = "edge_url"
	// FieldEdgeProject holds the string denoting the edge_project field in the database.
	FieldEdgeProject = "edge_project"
	// FieldPageCount holds the string denoting the page_count field in the database.
	FieldPageCount = "page_count"
	// FieldTotalBytes holds the string denoting the total_bytes field in the database.
	FieldTotalBytes = "total_bytes"
	// FieldSettings holds the string denoting the settings field in the database.
	FieldSettings = "settings"
	// FieldWebhookSecret holds the string denoting the webhook_secret field in the database.
	FieldWebhookSecret = "webhook_secret"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeBuilds holds the string denoting the builds edge name in mutations.
	EdgeBuilds = "builds"
	// EdgeAgentRuns holds the string denoting the agent_runs edge name in mutations.
	EdgeAgentRuns = "agent_runs"
	// EdgeAssetOverrides holds the string denoting the asset_overrides edge name in mutations.
	EdgeAssetOverrides = "asset_overrides"
	// EdgeSettingsHistory holds the string denoting the settings_history edge name in mutations.
	EdgeSettingsHistory = "settings_history"
	// EdgeMeasurements holds the string denoting the measurements edge name in mutations.
	EdgeMeasurements = "measurements"
	// EdgePages holds the string denoting the pages edge name in mutations.
	EdgePages = "pages"
	// EdgeAlertRules holds the string denoting the alert_rules edge name in mutations.
	EdgeAlertRules = "alert_rules"
	// EdgeAlertLogs holds the string denoting the alert_logs edge name in mutations.
	EdgeAlertLogs = "alert_logs"
	// BuildFieldID holds the string denoting the ID field of the Build.
	BuildFieldID = "build_id"
	// AgentRunFieldID holds the string denoting the ID field of the AgentRun.
	AgentRunFieldID = "run_id"
	// AssetOverrideFieldID holds the string denoting the ID field of the AssetOverride.
	AssetOverrideFieldID = "override_id"
	// SettingsHistoryFieldID holds the string denoting the ID field of the SettingsHistory.
	SettingsHistoryFieldID = "history_id"
	// MeasurementComparisonFieldID holds the string denoting the ID field of the MeasurementComparison.
	MeasurementComparisonFieldID = "measurement_id"
	// PageFieldID holds the string denoting the ID field of the Page.
	PageFieldID = "page_id"
	// AlertRuleFieldID holds the string denoting the ID field of the AlertRule.
	AlertRuleFieldID = "rule_id"
	// AlertLogFieldID holds the string denoting the ID field of the AlertLog.
	AlertLogFieldID = "alert_id"
	// Table holds the table name of the site in the database.
	Table = "sites"
	// BuildsTable is the table that holds the builds relation/edge.
	BuildsTable = "builds"
	// BuildsInverseTable is the table name for the Build entity.
	// It exists in this package in order to avoid circular dependency with the "build" package.
	BuildsInverseTable = "builds"
	// BuildsColumn is the table column denoting the builds relation/edge.
	BuildsColumn = "site_id"
	// AgentRunsTable is the table that holds the agent_runs relation/edge.
	AgentRunsTable = "agent_runs"
	// AgentRunsInverseTable is the table name for the AgentRun entity.
	// It exists in this package in order to avoid circular dependency with the "agentrun" package.
	AgentRunsInverseTable = "agent_runs"
	// AgentRunsColumn is the table column denoting the agent_runs relation/edge.
	AgentRunsColumn = "site_id"
	// AssetOverridesTable is the table that holds the asset_overrides relation/edge.
	AssetOverridesTable = "asset_overrides"
	// AssetOverridesInverseTable is the table name for the AssetOverride entity.
	// It exists in this package in order to avoid circular dependency with the "assetoverride" package.
	AssetOverridesInverseTable = "asset_overrides"
	// AssetOverridesColumn is the table column denoting the asset_overrides relation/edge.
	AssetOverridesColumn = "site_id"
	// SettingsHistoryTable is the table that holds the settings_history relation/edge.
	SettingsHistoryTable = "settings_histories"
	// SettingsHistoryInverseTable is the table name for the SettingsHistory entity.
	// It exists in this package in order to avoid circular dependency with the "settingshistory" package.
	SettingsHistoryInverseTable = "settings_histories"
	// SettingsHistoryColumn is the table column denoting the settings_history relation/edge.
	SettingsHistoryColumn = "site_id"
	// MeasurementsTable is the table that holds the measurements relation/edge.
	MeasurementsTable = "measurement_comparisons"
	// MeasurementsInverseTable is the table name for the MeasurementComparison entity.
	// It exists in this package in order to avoid circular dependency with the "measurementcomparison" package.
	MeasurementsInverseTable = "measurement_comparisons"
	// MeasurementsColumn is the table column denoting the measurements relation/edge.
	MeasurementsColumn = "site_id"
	// PagesTable is the table that holds the pages relation/edge.
	PagesTable = "pages"
	// PagesInverseTable is the table name for the Page entity.
	// It exists in this package in order to avoid circular dependency with the "page" package.
	PagesInverseTable = "pages"
	// PagesColumn is the table column denoting the pages relation/edge.
	PagesColumn = "site_id"
	// AlertRulesTable is the table that holds the alert_rules relation/edge.
	AlertRulesTable = "alert_rules"
	// AlertRulesInverseTable is the table name for the AlertRule entity.
	// It exists in this package in order to avoid circular dependency with the "alertrule" package.
	AlertRulesInverseTable = "alert_rules"
	// AlertRulesColumn is the table column denoting the alert_rules relation/edge.
	AlertRulesColumn = "site_id"
	// AlertLogsTable is the table that holds the alert_logs relation/edge.
	AlertLogsTable = "alert_logs"
	// AlertLogsInverseTable is the table name for the AlertLog entity.
	// It exists in this package in order to avoid circular dependency with the "alertlog" package.
	AlertLogsInverseTable = "alert_logs"
	// AlertLogsColumn is the table column denoting the alert_logs relation/edge.
	AlertLogsColumn = "site_id"
)

// Columns holds all SQL columns for site fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldSourceURL,
	FieldStatus,
	FieldLastBuildID,
	FieldLastBuildStatus,
	FieldEdgeURL,
	FieldEdgeProject,
	FieldPageCount,
	FieldTotalBytes,
	FieldSettings,
	FieldWebhookSecret,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultPageCount holds the default value on creation for the "page_count" field.
	DefaultPageCount int
	// DefaultTotalBytes holds the default value on creation for the "total_bytes" field.
	DefaultTotalBytes int64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending Status = "pending"
	StatusActive  Status = "active"
	StatusError   Status = "error"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusActive, StatusError:
		return nil
	default:
		return fmt.Errorf("site: invalid enum value for status field: %q", s)
	}
}

// LastBuildStatus defines the type for the "last_build_status" enum field.
type LastBuildStatus string

// LastBuildStatus values.
const (
	LastBuildStatusQueued     LastBuildStatus = "queued"
	LastBuildStatusCrawling   LastBuildStatus = "crawling"
	LastBuildStatusOptimizing LastBuildStatus = "optimizing"
	LastBuildStatusDeploying  LastBuildStatus = "deploying"
	LastBuildStatusSuccess    LastBuildStatus = "success"
	LastBuildStatusFailed     LastBuildStatus = "failed"
	LastBuildStatusCancelled  LastBuildStatus = "cancelled"
)

func (lbs LastBuildStatus) String() string {
	return string(lbs)
}

// LastBuildStatusValidator is a validator for the "last_build_status" field enum values. It is called by the builders before save.
func LastBuildStatusValidator(lbs LastBuildStatus) error {
	switch lbs {
	case LastBuildStatusQueued, LastBuildStatusCrawling, LastBuildStatusOptimizing, LastBuildStatusDeploying, LastBuildStatusSuccess, LastBuildStatusFailed, LastBuildStatusCancelled:
		return nil
	default:
		return fmt.Errorf("site: invalid enum value for last_build_status field: %q", lbs)
	}
}

// OrderOption defines the ordering options for the Site queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// BySourceURL orders the results by the source_url field.
func BySourceURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceURL, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByLastBuildID orders the results by the last_build_id field.
func ByLastBuildID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastBuildID, opts...).ToFunc()
}

// ByLastBuildStatus orders the results by the last_build_status field.
func ByLastBuildStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastBuildStatus, opts...).ToFunc()
}

// ByEdgeURL orders the results by the edge_url field.
func ByEdgeURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEdgeURL, opts...).ToFunc()
}

// ByEdgeProject orders the results by the edge_project field.
func ByEdgeProject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEdgeProject, opts...).ToFunc()
}

// ByPageCount orders the results by the page_count field.
func ByPageCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPageCount, opts...).ToFunc()
}

// ByTotalBytes orders the results by the total_bytes field.
func ByTotalBytes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalBytes, opts...).ToFunc()
}

// ByWebhookSecret orders the results by the webhook_secret field.
func ByWebhookSecret(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWebhookSecret, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByBuildsCount orders the results by builds count.
func ByBuildsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newBuildsStep(), opts...)
	}
}

// ByBuilds orders the results by builds terms.
func ByBuilds(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBuildsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAgentRunsCount orders the results by agent_runs count.
func ByAgentRunsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAgentRunsStep(), opts...)
	}
}

// ByAgentRuns orders the results by agent_runs terms.
func ByAgentRuns(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAgentRunsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAssetOverridesCount orders the results by asset_overrides count.
func ByAssetOverridesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAssetOverridesStep(), opts...)
	}
}

// ByAssetOverrides orders the results by asset_overrides terms.
func ByAssetOverrides(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAssetOverridesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySettingsHistoryCount orders the results by settings_history count.
func BySettingsHistoryCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSettingsHistoryStep(), opts...)
	}
}

// BySettingsHistory orders the results by settings_history terms.
func BySettingsHistory(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSettingsHistoryStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMeasurementsCount orders the results by measurements count.
func ByMeasurementsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMeasurementsStep(), opts...)
	}
}

// ByMeasurements orders the results by measurements terms.
func ByMeasurements(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMeasurementsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByPagesCount orders the results by pages count.
func ByPagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPagesStep(), opts...)
	}
}

// ByPages orders the results by pages terms.
func ByPages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAlertRulesCount orders the results by alert_rules count.
func ByAlertRulesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAlertRulesStep(), opts...)
	}
}

// ByAlertRules orders the results by alert_rules terms.
func ByAlertRules(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAlertRulesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAlertLogsCount orders the results by alert_logs count.
func ByAlertLogsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAlertLogsStep(), opts...)
	}
}

// ByAlertLogs orders the results by alert_logs terms.
func ByAlertLogs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAlertLogsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newBuildsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BuildsInverseTable, BuildFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, BuildsTable, BuildsColumn),
	)
}
func newAgentRunsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AgentRunsInverseTable, AgentRunFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AgentRunsTable, AgentRunsColumn),
	)
}
func newAssetOverridesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AssetOverridesInverseTable, AssetOverrideFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AssetOverridesTable, AssetOverridesColumn),
	)
}
func newSettingsHistoryStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SettingsHistoryInverseTable, SettingsHistoryFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SettingsHistoryTable, SettingsHistoryColumn),
	)
}
func newMeasurementsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MeasurementsInverseTable, MeasurementComparisonFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MeasurementsTable, MeasurementsColumn),
	)
}
func newPagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PagesInverseTable, PageFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PagesTable, PagesColumn),
	)
}
func newAlertRulesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AlertRulesInverseTable, AlertRuleFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AlertRulesTable, AlertRulesColumn),
	)
}
func newAlertLogsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AlertLogsInverseTable, AlertLogFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AlertLogsTable, AlertLogsColumn),
	)
}
