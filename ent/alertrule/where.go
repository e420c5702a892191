// Code generated by ent, DO NOT EDIT.

package alertrule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/metrics-lab/staticpress/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldContainsFold(FieldID, id))
}

// SiteID applies equality check predicate on the "site_id" field. It's identical to SiteIDEQ.
func SiteID(v string) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldEQ(FieldSiteID, v))
}

// Metric applies equality check predicate on the "metric" field. It's identical to MetricEQ.
func Metric(v string) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldEQ(FieldMetric, v))
}

// Threshold applies equality check predicate on the "threshold" field. It's identical to ThresholdEQ.
func Threshold(v float64) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldEQ(FieldThreshold, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldEQ(FieldEnabled, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldEQ(FieldCreatedAt, v))
}

// SiteIDEQ applies the EQ predicate on the "site_id" field.
func SiteIDEQ(v string) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldEQ(FieldSiteID, v))
}

// SiteIDNEQ applies the NEQ predicate on the "site_id" field.
func SiteIDNEQ(v string) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldNEQ(FieldSiteID, v))
}

// SiteIDIn applies the In predicate on the "site_id" field.
func SiteIDIn(vs ...string) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldIn(FieldSiteID, vs...))
}

// SiteIDNotIn applies the NotIn predicate on the "site_id" field.
func SiteIDNotIn(vs ...string) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldNotIn(FieldSiteID, vs...))
}

// SiteIDGT applies the GT predicate on the "site_id" field.
func SiteIDGT(v string) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldGT(FieldSiteID, v))
}

// SiteIDGTE applies the GTE predicate on the "site_id" field.
func SiteIDGTE(v string) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldGTE(FieldSiteID, v))
}

// SiteIDLT applies the LT predicate on the "site_id" field.
func SiteIDLT(v string) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldLT(FieldSiteID, v))
}

// SiteIDLTE applies the LTE predicate on the "site_id" field.
func SiteIDLTE(v string) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldLTE(FieldSiteID, v))
}

// SiteIDContains applies the Contains predicate on the "site_id" field.
func SiteIDContains(v string) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldContains(FieldSiteID, v))
}

// SiteIDHasPrefix applies the HasPrefix predicate on the "site_id" field.
func SiteIDHasPrefix(v string) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldHasPrefix(FieldSiteID, v))
}

// SiteIDHasSuffix applies the HasSuffix predicate on the "site_id" field.
func SiteIDHasSuffix(v string) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldHasSuffix(FieldSiteID, v))
}

// SiteIDEqualFold applies the EqualFold predicate on the "site_id" field.
func SiteIDEqualFold(v string) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldEqualFold(FieldSiteID, v))
}

// SiteIDContainsFold applies the ContainsFold predicate on the "site_id" field.
func SiteIDContainsFold(v string) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldContainsFold(FieldSiteID, v))
}

// MetricEQ applies the EQ predicate on the "metric" field.
func MetricEQ(v string) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldEQ(FieldMetric, v))
}

// MetricNEQ applies the NEQ predicate on the "metric" field.
func MetricNEQ(v string) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldNEQ(FieldMetric, v))
}

// MetricIn applies the In predicate on the "metric" field.
func MetricIn(vs ...string) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldIn(FieldMetric, vs...))
}

// MetricNotIn applies the NotIn predicate on the "metric" field.
func MetricNotIn(vs ...string) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldNotIn(FieldMetric, vs...))
}

// MetricGT applies the GT predicate on the "metric" field.
func MetricGT(v string) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldGT(FieldMetric, v))
}

// MetricGTE applies the GTE predicate on the "metric" field.
func MetricGTE(v string) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldGTE(FieldMetric, v))
}

// MetricLT applies the LT predicate on the "metric" field.
func MetricLT(v string) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldLT(FieldMetric, v))
}

// MetricLTE applies the LTE predicate on the "metric" field.
func MetricLTE(v string) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldLTE(FieldMetric, v))
}

// MetricContains applies the Contains predicate on the "metric" field.
func MetricContains(v string) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldContains(FieldMetric, v))
}

// MetricHasPrefix applies the HasPrefix predicate on the "metric" field.
func MetricHasPrefix(v string) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldHasPrefix(FieldMetric, v))
}

// MetricHasSuffix applies the HasSuffix predicate on the "metric" field.
func MetricHasSuffix(v string) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldHasSuffix(FieldMetric, v))
}

// MetricEqualFold applies the EqualFold predicate on the "metric" field.
func MetricEqualFold(v string) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldEqualFold(FieldMetric, v))
}

// MetricContainsFold applies the ContainsFold predicate on the "metric" field.
func MetricContainsFold(v string) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldContainsFold(FieldMetric, v))
}

// OperatorEQ applies the EQ predicate on the "operator" field.
func OperatorEQ(v Operator) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldEQ(FieldOperator, v))
}

// OperatorNEQ applies the NEQ predicate on the "operator" field.
func OperatorNEQ(v Operator) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldNEQ(FieldOperator, v))
}

// OperatorIn applies the In predicate on the "operator" field.
func OperatorIn(vs ...Operator) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldIn(FieldOperator, vs...))
}

// OperatorNotIn applies the NotIn predicate on the "operator" field.
func OperatorNotIn(vs ...Operator) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldNotIn(FieldOperator, vs...))
}

// ThresholdEQ applies the EQ predicate on the "threshold" field.
func ThresholdEQ(v float64) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldEQ(FieldThreshold, v))
}

// ThresholdNEQ applies the NEQ predicate on the "threshold" field.
func ThresholdNEQ(v float64) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldNEQ(FieldThreshold, v))
}

// ThresholdIn applies the In predicate on the "threshold" field.
func ThresholdIn(vs ...float64) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldIn(FieldThreshold, vs...))
}

// ThresholdNotIn applies the NotIn predicate on the "threshold" field.
func ThresholdNotIn(vs ...float64) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldNotIn(FieldThreshold, vs...))
}

// ThresholdGT applies the GT predicate on the "threshold" field.
func ThresholdGT(v float64) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldGT(FieldThreshold, v))
}

// ThresholdGTE applies the GTE predicate on the "threshold" field.
func ThresholdGTE(v float64) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldGTE(FieldThreshold, v))
}

// ThresholdLT applies the LT predicate on the "threshold" field.
func ThresholdLT(v float64) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldLT(FieldThreshold, v))
}

// ThresholdLTE applies the LTE predicate on the "threshold" field.
func ThresholdLTE(v float64) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldLTE(FieldThreshold, v))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldNEQ(FieldEnabled, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AlertRule {
	return predicate.AlertRule(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSite applies the HasEdge predicate on the "site" edge.
func HasSite() predicate.AlertRule {
	return predicate.AlertRule(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SiteTable, SiteColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSiteWith applies the HasEdge predicate on the "site" edge with a given conditions (other predicates).
func HasSiteWith(preds ...predicate.Site) predicate.AlertRule {
	return predicate.AlertRule(func(s *sql.Selector) {
		step := newSiteStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AlertRule) predicate.AlertRule {
	return predicate.AlertRule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AlertRule) predicate.AlertRule {
	return predicate.AlertRule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AlertRule) predicate.AlertRule {
	return predicate.AlertRule(sql.NotPredicates(p))
}
