// Code generated by ent, DO NOT EDIT.

package agentrun

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the agentrun type in the database.
	Label = "agent_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "run_id"
	// FieldSiteID holds the string denoting the site_id field in the database.
	FieldSiteID = "site_id"
	// FieldPhase holds the string denoting the phase field in the database.
	FieldPhase = "phase"
	// FieldIteration holds the string denoting the iteration field in the database.
	FieldIteration = "iteration"
	// FieldMaxIterations holds the string denoting the max_iterations field in the database.
	FieldMaxIterations = "max_iterations"
	// FieldPhaseTimings holds the string denoting the phase_timings field in the database.
	FieldPhaseTimings = "phase_timings"
	// FieldLastError holds the string denoting the last_error field in the database.
	FieldLastError = "last_error"
	// FieldCheckpoint holds the string denoting the checkpoint field in the database.
	FieldCheckpoint = "checkpoint"
	// FieldCurrentBuildID holds the string denoting the current_build_id field in the database.
	FieldCurrentBuildID = "current_build_id"
	// FieldWorkspaceDir holds the string denoting the workspace_dir field in the database.
	FieldWorkspaceDir = "workspace_dir"
	// FieldFinalVerdict holds the string denoting the final_verdict field in the database.
	FieldFinalVerdict = "final_verdict"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeSite holds the string denoting the site edge name in mutations.
	EdgeSite = "site"
	// SiteFieldID holds the string denoting the ID field of the Site.
	SiteFieldID = "site_id"
	// Table holds the table name of the agentrun in the database.
	Table = "agent_runs"
	// SiteTable is the table that holds the site relation/edge.
	SiteTable = "agent_runs"
	// SiteInverseTable is the table name for the Site entity.
	// It exists in this package in order to avoid circular dependency with the "site" package.
	SiteInverseTable = "sites"
	// SiteColumn is the table column denoting the site relation/edge.
	SiteColumn = "site_id"
)

// Columns holds all SQL columns for agentrun fields.
var Columns = []string{
	FieldID,
	FieldSiteID,
	FieldPhase,
	FieldIteration,
	FieldMaxIterations,
	FieldPhaseTimings,
	FieldLastError,
	FieldCheckpoint,
	FieldCurrentBuildID,
	FieldWorkspaceDir,
	FieldFinalVerdict,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultIteration holds the default value on creation for the "iteration" field.
	DefaultIteration int
	// DefaultMaxIterations holds the default value on creation for the "max_iterations" field.
	DefaultMaxIterations int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Phase defines the type for the "phase" enum field.
type Phase string

// PhaseAnalyzing is the default value of the Phase enum.
const DefaultPhase = PhaseAnalyzing

// Phase values.
const (
	PhaseAnalyzing Phase = "analyzing"
	PhasePlanning  Phase = "planning"
	PhaseBuilding  Phase = "building"
	PhaseVerifying Phase = "verifying"
	PhaseReviewing Phase = "reviewing"
	PhaseComplete  Phase = "complete"
	PhaseFailed    Phase = "failed"
)

func (ph Phase) String() string {
	return string(ph)
}

// PhaseValidator is a validator for the "phase" field enum values. It is called by the builders before save.
func PhaseValidator(ph Phase) error {
	switch ph {
	case PhaseAnalyzing, PhasePlanning, PhaseBuilding, PhaseVerifying, PhaseReviewing, PhaseComplete, PhaseFailed:
		return nil
	default:
		return fmt.Errorf("agentrun: invalid enum value for phase field: %q", ph)
	}
}

// OrderOption defines the ordering options for the AgentRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySiteID orders the results by the site_id field.
func BySiteID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSiteID, opts...).ToFunc()
}

// ByPhase orders the results by the phase field.
func ByPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhase, opts...).ToFunc()
}

// ByIteration orders the results by the iteration field.
func ByIteration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIteration, opts...).ToFunc()
}

// ByMaxIterations orders the results by the max_iterations field.
func ByMaxIterations(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxIterations, opts...).ToFunc()
}

// ByLastError orders the results by the last_error field.
func ByLastError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastError, opts...).ToFunc()
}

// ByCurrentBuildID orders the results by the current_build_id field.
func ByCurrentBuildID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentBuildID, opts...).ToFunc()
}

// ByWorkspaceDir orders the results by the workspace_dir field.
func ByWorkspaceDir(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkspaceDir, opts...).ToFunc()
}

// ByFinalVerdict orders the results by the final_verdict field.
func ByFinalVerdict(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalVerdict, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
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
