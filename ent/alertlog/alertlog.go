// Code generated by ent, DO NOT EDIT.

package alertlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the alertlog type in the database.
	Label = "alert_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "alert_id"
	// FieldSiteID holds the string denoting the site_id field in the database.
	FieldSiteID = "site_id"
	// FieldRuleID holds the string denoting the rule_id field in the database.
	FieldRuleID = "rule_id"
	// FieldMessage holds the string denoting the message field in the database.
	FieldMessage = "message"
	// FieldObservedValue holds the string denoting the observed_value field in the database.
	FieldObservedValue = "observed_value"
	// FieldFiredAt holds the string denoting the fired_at field in the database.
	FieldFiredAt = "fired_at"
	// EdgeSite holds the string denoting the site edge name in mutations.
	EdgeSite = "site"
	// SiteFieldID holds the string denoting the ID field of the Site.
	SiteFieldID = "site_id"
	// Table holds the table name of the alertlog in the database.
	Table = "alert_logs"
	// SiteTable is the table that holds the site relation/edge.
	SiteTable = "alert_logs"
	// SiteInverseTable is the table name for the Site entity.
	// It exists in this package in order to avoid circular dependency with the "site" package.
	SiteInverseTable = "sites"
	// SiteColumn is the table column denoting the site relation/edge.
	SiteColumn = "site_id"
)

// Columns holds all SQL columns for alertlog fields.
var Columns = []string{
	FieldID,
	FieldSiteID,
	FieldRuleID,
	FieldMessage,
	FieldObservedValue,
	FieldFiredAt,
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
	// DefaultFiredAt holds the default value on creation for the "fired_at" field.
	DefaultFiredAt func() time.Time
)

// OrderOption defines the ordering options for the AlertLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySiteID orders the results by the site_id field.
func BySiteID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSiteID, opts...).ToFunc()
}

// ByRuleID orders the results by the rule_id field.
func ByRuleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRuleID, opts...).ToFunc()
}

// ByMessage orders the results by the message field.
func ByMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessage, opts...).ToFunc()
}

// ByObservedValue orders the results by the observed_value field.
func ByObservedValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObservedValue, opts...).ToFunc()
}

// ByFiredAt orders the results by the fired_at field.
func ByFiredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFiredAt, opts...).ToFunc()
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
