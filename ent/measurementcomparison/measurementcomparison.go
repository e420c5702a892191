// Code generated by ent, DO NOT EDIT.

package measurementcomparison

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the measurementcomparison type in the database.
	Label = "measurement_comparison"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "measurement_id"
	// FieldSiteID holds the string denoting the site_id field in the database.
	FieldSiteID = "site_id"
	// FieldBuildID holds the string denoting the build_id field in the database.
	FieldBuildID = "build_id"
	// FieldStrategy holds the string denoting the strategy field in the database.
	FieldStrategy = "strategy"
	// FieldOriginalScore holds the string denoting the original_score field in the database.
	FieldOriginalScore = "original_score"
	// FieldOptimizedScore holds the string denoting the optimized_score field in the database.
	FieldOptimizedScore = "optimized_score"
	// FieldOriginalVitals holds the string denoting the original_vitals field in the database.
	FieldOriginalVitals = "original_vitals"
	// FieldOptimizedVitals holds the string denoting the optimized_vitals field in the database.
	FieldOptimizedVitals = "optimized_vitals"
	// FieldImprovements holds the string denoting the improvements field in the database.
	FieldImprovements = "improvements"
	// FieldPayloadSavingsBytes holds the string denoting the payload_savings_bytes field in the database.
	FieldPayloadSavingsBytes = "payload_savings_bytes"
	// FieldOriginalRaw holds the string denoting the original_raw field in the database.
	FieldOriginalRaw = "original_raw"
	// FieldOptimizedRaw holds the string denoting the optimized_raw field in the database.
	FieldOptimizedRaw = "optimized_raw"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSite holds the string denoting the site edge name in mutations.
	EdgeSite = "site"
	// SiteFieldID holds the string denoting the ID field of the Site.
	SiteFieldID = "site_id"
	// Table holds the table name of the measurementcomparison in the database.
	Table = "measurement_comparisons"
	// SiteTable is the table that holds the site relation/edge.
	SiteTable = "measurement_comparisons"
	// SiteInverseTable is the table name for the Site entity.
	// It exists in this package in order to avoid circular dependency with the "site" package.
	SiteInverseTable = "sites"
	// SiteColumn is the table column denoting the site relation/edge.
	SiteColumn = "site_id"
)

// Columns holds all SQL columns for measurementcomparison fields.
var Columns = []string{
	FieldID,
	FieldSiteID,
	FieldBuildID,
	FieldStrategy,
	FieldOriginalScore,
	FieldOptimizedScore,
	FieldOriginalVitals,
	FieldOptimizedVitals,
	FieldImprovements,
	FieldPayloadSavingsBytes,
	FieldOriginalRaw,
	FieldOptimizedRaw,
	FieldCreatedAt,
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
	// DefaultPayloadSavingsBytes holds the default value on creation for the "payload_savings_bytes" field.
	DefaultPayloadSavingsBytes int64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Strategy defines the type for the "strategy" enum field.
type Strategy string

// Strategy values.
const (
	StrategyMobile  Strategy = "mobile"
	StrategyDesktop Strategy = "desktop"
)

func (s Strategy) String() string {
	return string(s)
}

// StrategyValidator is a validator for the "strategy" field enum values. It is called by the builders before save.
func StrategyValidator(s Strategy) error {
	switch s {
	case StrategyMobile, StrategyDesktop:
		return nil
	default:
		return fmt.Errorf("measurementcomparison: invalid enum value for strategy field: %q", s)
	}
}

// OrderOption defines the ordering options for the MeasurementComparison queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySiteID orders the results by the site_id field.
func BySiteID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSiteID, opts...).ToFunc()
}

// ByBuildID orders the results by the build_id field.
func ByBuildID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuildID, opts...).ToFunc()
}

// ByStrategy orders the results by the strategy field.
func ByStrategy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStrategy, opts...).ToFunc()
}

// ByOriginalScore orders the results by the original_score field.
func ByOriginalScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalScore, opts...).ToFunc()
}

// ByOptimizedScore orders the results by the optimized_score field.
func ByOptimizedScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOptimizedScore, opts...).ToFunc()
}

// ByPayloadSavingsBytes orders the results by the payload_savings_bytes field.
func ByPayloadSavingsBytes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPayloadSavingsBytes, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
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
