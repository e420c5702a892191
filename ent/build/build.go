// Code generated by ent, DO NOT EDIT.

package build

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the build type in the database.
	Label = "build"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "build_id"
	// FieldSiteID holds the string denoting the site_id field in the database.
	FieldSiteID = "site_id"
	// FieldScope holds the string denoting the scope field in the database.
	FieldScope = "scope"
	// FieldTriggeredBy holds the string denoting the triggered_by field in the database.
	FieldTriggeredBy = "triggered_by"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCurrentPhase holds the string denoting the current_phase field in the database.
	FieldCurrentPhase = "current_phase"
	// FieldCheckpointPhase holds the string denoting the checkpoint_phase field in the database.
	FieldCheckpointPhase = "checkpoint_phase"
	// FieldPagesTotal holds the string denoting the pages_total field in the database.
	FieldPagesTotal = "pages_total"
	// FieldPagesProcessed holds the string denoting the pages_processed field in the database.
	FieldPagesProcessed = "pages_processed"
	// FieldOriginalBytes holds the string denoting the original_bytes field in the database.
	FieldOriginalBytes = "original_bytes"
	// FieldOptimizedBytes holds the string denoting the optimized_bytes field in the database.
	FieldOptimizedBytes = "optimized_bytes"
	// FieldIframesReplaced holds the string denoting the iframes_replaced field in the database.
	FieldIframesReplaced = "iframes_replaced"
	// FieldScriptsRemoved holds the string denoting the scripts_removed field in the database.
	FieldScriptsRemoved = "scripts_removed"
	// FieldScoreBefore holds the string denoting the score_before field in the database.
	FieldScoreBefore = "score_before"
	// FieldScoreAfter holds the string denoting the score_after field in the database.
	FieldScoreAfter = "score_after"
	// FieldErrorPhase holds the string denoting the error_phase field in the database.
	FieldErrorPhase = "error_phase"
	// FieldErrorStep holds the string denoting the error_step field in the database.
	FieldErrorStep = "error_step"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldErrorRetryable holds the string denoting the error_retryable field in the database.
	FieldErrorRetryable = "error_retryable"
	// FieldResolvedSettings holds the string denoting the resolved_settings field in the database.
	FieldResolvedSettings = "resolved_settings"
	// FieldLog holds the string denoting the log field in the database.
	FieldLog = "log"
	// FieldRetryCount holds the string denoting the retry_count field in the database.
	FieldRetryCount = "retry_count"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeSite holds the string denoting the site edge name in mutations.
	EdgeSite = "site"
	// SiteFieldID holds the string denoting the ID field of the Site.
	SiteFieldID = "site_id"
	// Table holds the table name of the build in the database.
	Table = "builds"
	// SiteTable is the table that holds the site relation/edge.
	SiteTable = "builds"
	// SiteInverseTable is the table name for the Site entity.
	// It exists in this package in order to avoid circular dependency with the "site" package.
	SiteInverseTable = "sites"
	// SiteColumn is the table column denoting the site relation/edge.
	SiteColumn = "site_id"
)

// Columns holds all SQL columns for build fields.
var Columns = []string{
	FieldID,
	FieldSiteID,
	FieldScope,
	FieldTriggeredBy,
	FieldStatus,
	FieldCurrentPhase,
	FieldCheckpointPhase,
	FieldPagesTotal,
	FieldPagesProcessed,
	FieldOriginalBytes,
	FieldOptimizedBytes,
	FieldIframesReplaced,
	FieldScriptsRemoved,
	FieldScoreBefore,
	FieldScoreAfter,
	FieldErrorPhase,
	FieldErrorStep,
	FieldErrorMessage,
	FieldErrorRetryable,
	FieldResolvedSettings,
	FieldLog,
	FieldRetryCount,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
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
	// DefaultPagesTotal holds the default value on creation for the "pages_total" field.
	DefaultPagesTotal int
	// DefaultPagesProcessed holds the default value on creation for the "pages_processed" field.
	DefaultPagesProcessed int
	// DefaultIframesReplaced holds the default value on creation for the "iframes_replaced" field.
	DefaultIframesReplaced int
	// DefaultScriptsRemoved holds the default value on creation for the "scripts_removed" field.
	DefaultScriptsRemoved int
	// DefaultErrorRetryable holds the default value on creation for the "error_retryable" field.
	DefaultErrorRetryable bool
	// DefaultRetryCount holds the default value on creation for the "retry_count" field.
	DefaultRetryCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Scope defines the type for the "scope" enum field.
type Scope string

// ScopeFull is the default value of the Scope enum.
const DefaultScope = ScopeFull

// Scope values.
const (
	ScopeFull    Scope = "full"
	ScopePartial Scope = "partial"
)

func (s Scope) String() string {
	return string(s)
}

// ScopeValidator is a validator for the "scope" field enum values. It is called by the builders before save.
func ScopeValidator(s Scope) error {
	switch s {
	case ScopeFull, ScopePartial:
		return nil
	default:
		return fmt.Errorf("build: invalid enum value for scope field: %q", s)
	}
}

// TriggeredBy defines the type for the "triggered_by" enum field.
type TriggeredBy string

// TriggeredByUser is the default value of the TriggeredBy enum.
const DefaultTriggeredBy = TriggeredByUser

// TriggeredBy values.
const (
	TriggeredByUser     TriggeredBy = "user"
	TriggeredByWebhook  TriggeredBy = "webhook"
	TriggeredBySchedule TriggeredBy = "schedule"
	TriggeredByAgent    TriggeredBy = "agent"
)

func (tb TriggeredBy) String() string {
	return string(tb)
}

// TriggeredByValidator is a validator for the "triggered_by" field enum values. It is called by the builders before save.
func TriggeredByValidator(tb TriggeredBy) error {
	switch tb {
	case TriggeredByUser, TriggeredByWebhook, TriggeredBySchedule, TriggeredByAgent:
		return nil
	default:
		return fmt.Errorf("build: invalid enum value for triggered_by field: %q", tb)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusQueued is the default value of the Status enum.
const DefaultStatus = StatusQueued

// Status values.
const (
	StatusQueued     Status = "queued"
	StatusCrawling   Status = "crawling"
	StatusOptimizing Status = "optimizing"
	StatusDeploying  Status = "deploying"
	StatusSuccess    Status = "success"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusQueued, StatusCrawling, StatusOptimizing, StatusDeploying, StatusSuccess, StatusFailed, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("build: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Build queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySiteID orders the results by the site_id field.
func BySiteID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSiteID, opts...).ToFunc()
}

// ByScope orders the results by the scope field.
func ByScope(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScope, opts...).ToFunc()
}

// ByTriggeredBy orders the results by the triggered_by field.
func ByTriggeredBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggeredBy, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCurrentPhase orders the results by the current_phase field.
func ByCurrentPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentPhase, opts...).ToFunc()
}

// ByCheckpointPhase orders the results by the checkpoint_phase field.
func ByCheckpointPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCheckpointPhase, opts...).ToFunc()
}

// ByPagesTotal orders the results by the pages_total field.
func ByPagesTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPagesTotal, opts...).ToFunc()
}

// ByPagesProcessed orders the results by the pages_processed field.
func ByPagesProcessed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPagesProcessed, opts...).ToFunc()
}

// ByIframesReplaced orders the results by the iframes_replaced field.
func ByIframesReplaced(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIframesReplaced, opts...).ToFunc()
}

// ByScriptsRemoved orders the results by the scripts_removed field.
func ByScriptsRemoved(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScriptsRemoved, opts...).ToFunc()
}

// ByScoreBefore orders the results by the score_before field.
func ByScoreBefore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScoreBefore, opts...).ToFunc()
}

// ByScoreAfter orders the results by the score_after field.
func ByScoreAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScoreAfter, opts...).ToFunc()
}

// ByErrorPhase orders the results by the error_phase field.
func ByErrorPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorPhase, opts...).ToFunc()
}

// ByErrorStep orders the results by the error_step field.
func ByErrorStep(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorStep, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByErrorRetryable orders the results by the error_retryable field.
func ByErrorRetryable(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorRetryable, opts...).ToFunc()
}

// ByRetryCount orders the results by the retry_count field.
func ByRetryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// BySiteField orders the results by site field.
func BySiteField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSiteStep(), sql.OrderByField(field, opts...))
	}
}
func newSiteStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SiteInverseTable, SiteFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SiteTable, SiteColumn),
	)
}
