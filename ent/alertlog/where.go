// Code generated by ent, DO NOT EDIT.

package alertlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/metrics-lab/staticpress/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldContainsFold(FieldID, id))
}

// SiteID applies equality check predicate on the "site_id" field. It's identical to SiteIDEQ.
func SiteID(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldEQ(FieldSiteID, v))
}

// RuleID applies equality check predicate on the "rule_id" field. It's identical to RuleIDEQ.
func RuleID(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldEQ(FieldRuleID, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldEQ(FieldMessage, v))
}

// ObservedValue applies equality check predicate on the "observed_value" field. It's identical to ObservedValueEQ.
func ObservedValue(v float64) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldEQ(FieldObservedValue, v))
}

// FiredAt applies equality check predicate on the "fired_at" field. It's identical to FiredAtEQ.
func FiredAt(v time.Time) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldEQ(FieldFiredAt, v))
}

// SiteIDEQ applies the EQ predicate on the "site_id" field.
func SiteIDEQ(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldEQ(FieldSiteID, v))
}

// SiteIDNEQ applies the NEQ predicate on the "site_id" field.
func SiteIDNEQ(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldNEQ(FieldSiteID, v))
}

// SiteIDIn applies the In predicate on the "site_id" field.
func SiteIDIn(vs ...string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldIn(FieldSiteID, vs...))
}

// SiteIDNotIn applies the NotIn predicate on the "site_id" field.
func SiteIDNotIn(vs ...string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldNotIn(FieldSiteID, vs...))
}

// SiteIDGT applies the GT predicate on the "site_id" field.
func SiteIDGT(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldGT(FieldSiteID, v))
}

// SiteIDGTE applies the GTE predicate on the "site_id" field.
func SiteIDGTE(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldGTE(FieldSiteID, v))
}

// SiteIDLT applies the LT predicate on the "site_id" field.
func SiteIDLT(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldLT(FieldSiteID, v))
}

// SiteIDLTE applies the LTE predicate on the "site_id" field.
func SiteIDLTE(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldLTE(FieldSiteID, v))
}

// SiteIDContains applies the Contains predicate on the "site_id" field.
func SiteIDContains(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldContains(FieldSiteID, v))
}

// SiteIDHasPrefix applies the HasPrefix predicate on the "site_id" field.
func SiteIDHasPrefix(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldHasPrefix(FieldSiteID, v))
}

// SiteIDHasSuffix applies the HasSuffix predicate on the "site_id" field.
func SiteIDHasSuffix(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldHasSuffix(FieldSiteID, v))
}

// SiteIDEqualFold applies the EqualFold predicate on the "site_id" field.
func SiteIDEqualFold(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldEqualFold(FieldSiteID, v))
}

// SiteIDContainsFold applies the ContainsFold predicate on the "site_id" field.
func SiteIDContainsFold(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldContainsFold(FieldSiteID, v))
}

// RuleIDEQ applies the EQ predicate on the "rule_id" field.
func RuleIDEQ(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldEQ(FieldRuleID, v))
}

// RuleIDNEQ applies the NEQ predicate on the "rule_id" field.
func RuleIDNEQ(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldNEQ(FieldRuleID, v))
}

// RuleIDIn applies the In predicate on the "rule_id" field.
func RuleIDIn(vs ...string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldIn(FieldRuleID, vs...))
}

// RuleIDNotIn applies the NotIn predicate on the "rule_id" field.
func RuleIDNotIn(vs ...string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldNotIn(FieldRuleID, vs...))
}

// RuleIDGT applies the GT predicate on the "rule_id" field.
func RuleIDGT(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldGT(FieldRuleID, v))
}

// RuleIDGTE applies the GTE predicate on the "rule_id" field.
func RuleIDGTE(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldGTE(FieldRuleID, v))
}

// RuleIDLT applies the LT predicate on the "rule_id" field.
func RuleIDLT(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldLT(FieldRuleID, v))
}

// RuleIDLTE applies the LTE predicate on the "rule_id" field.
func RuleIDLTE(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldLTE(FieldRuleID, v))
}

// RuleIDContains applies the Contains predicate on the "rule_id" field.
func RuleIDContains(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldContains(FieldRuleID, v))
}

// RuleIDHasPrefix applies the HasPrefix predicate on the "rule_id" field.
func RuleIDHasPrefix(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldHasPrefix(FieldRuleID, v))
}

// RuleIDHasSuffix applies the HasSuffix predicate on the "rule_id" field.
func RuleIDHasSuffix(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldHasSuffix(FieldRuleID, v))
}

// RuleIDEqualFold applies the EqualFold predicate on the "rule_id" field.
func RuleIDEqualFold(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldEqualFold(FieldRuleID, v))
}

// RuleIDContainsFold applies the ContainsFold predicate on the "rule_id" field.
func RuleIDContainsFold(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldContainsFold(FieldRuleID, v))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldContainsFold(FieldMessage, v))
}

// ObservedValueEQ applies the EQ predicate on the "observed_value" field.
func ObservedValueEQ(v float64) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldEQ(FieldObservedValue, v))
}

// ObservedValueNEQ applies the NEQ predicate on the "observed_value" field.
func ObservedValueNEQ(v float64) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldNEQ(FieldObservedValue, v))
}

// ObservedValueIn applies the In predicate on the "observed_value" field.
func ObservedValueIn(vs ...float64) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldIn(FieldObservedValue, vs...))
}

// ObservedValueNotIn applies the NotIn predicate on the "observed_value" field.
func ObservedValueNotIn(vs ...float64) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldNotIn(FieldObservedValue, vs...))
}

// ObservedValueGT applies the GT predicate on the "observed_value" field.
func ObservedValueGT(v float64) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldGT(FieldObservedValue, v))
}

// ObservedValueGTE applies the GTE predicate on the "observed_value" field.
func ObservedValueGTE(v float64) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldGTE(FieldObservedValue, v))
}

// ObservedValueLT applies the LT predicate on the "observed_value" field.
func ObservedValueLT(v float64) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldLT(FieldObservedValue, v))
}

// ObservedValueLTE applies the LTE predicate on the "observed_value" field.
func ObservedValueLTE(v float64) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldLTE(FieldObservedValue, v))
}

// FiredAtEQ applies the EQ predicate on the "fired_at" field.
func FiredAtEQ(v time.Time) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldEQ(FieldFiredAt, v))
}

// FiredAtNEQ applies the NEQ predicate on the "fired_at" field.
func FiredAtNEQ(v time.Time) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldNEQ(FieldFiredAt, v))
}

// FiredAtIn applies the In predicate on the "fired_at" field.
func FiredAtIn(vs ...time.Time) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldIn(FieldFiredAt, vs...))
}

// FiredAtNotIn applies the NotIn predicate on the "fired_at" field.
func FiredAtNotIn(vs ...time.Time) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldNotIn(FieldFiredAt, vs...))
}

// FiredAtGT applies the GT predicate on the "fired_at" field.
func FiredAtGT(v time.Time) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldGT(FieldFiredAt, v))
}

// FiredAtGTE applies the GTE predicate on the "fired_at" field.
func FiredAtGTE(v time.Time) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldGTE(FieldFiredAt, v))
}

// FiredAtLT applies the LT predicate on the "fired_at" field.
func FiredAtLT(v time.Time) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldLT(FieldFiredAt, v))
}

// FiredAtLTE applies the LTE predicate on the "fired_at" field.
func FiredAtLTE(v time.Time) predicate.AlertLog {
	return predicate.AlertLog(sql.FieldLTE(FieldFiredAt, v))
}

// HasSite applies the HasEdge predicate on the "site" edge.
func HasSite() predicate.AlertLog {
	return predicate.AlertLog(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SiteTable, SiteColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSiteWith applies the HasEdge predicate on the "site" edge with a given conditions (other predicates).
func HasSiteWith(preds ...predicate.Site) predicate.AlertLog {
	return predicate.AlertLog(func(s *sql.Selector) {
		step := newSiteStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AlertLog) predicate.AlertLog {
	return predicate.AlertLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AlertLog) predicate.AlertLog {
	return predicate.AlertLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AlertLog) predicate.AlertLog {
	return predicate.AlertLog(sql.NotPredicates(p))
}
