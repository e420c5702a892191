// Code generated by ent, DO NOT EDIT.

package assetoverride

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/metrics-lab/staticpress/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldContainsFold(FieldID, id))
}

// SiteID applies equality check predicate on the "site_id" field. It's identical to SiteIDEQ.
func SiteID(v string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldEQ(FieldSiteID, v))
}

// URLPattern applies equality check predicate on the "url_pattern" field. It's identical to URLPatternEQ.
func URLPattern(v string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldEQ(FieldURLPattern, v))
}

// AssetClass applies equality check predicate on the "asset_class" field. It's identical to AssetClassEQ.
func AssetClass(v string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldEQ(FieldAssetClass, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldEQ(FieldUpdatedAt, v))
}

// SiteIDEQ applies the EQ predicate on the "site_id" field.
func SiteIDEQ(v string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldEQ(FieldSiteID, v))
}

// SiteIDNEQ applies the NEQ predicate on the "site_id" field.
func SiteIDNEQ(v string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldNEQ(FieldSiteID, v))
}

// SiteIDIn applies the In predicate on the "site_id" field.
func SiteIDIn(vs ...string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldIn(FieldSiteID, vs...))
}

// SiteIDNotIn applies the NotIn predicate on the "site_id" field.
func SiteIDNotIn(vs ...string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldNotIn(FieldSiteID, vs...))
}

// SiteIDGT applies the GT predicate on the "site_id" field.
func SiteIDGT(v string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldGT(FieldSiteID, v))
}

// SiteIDGTE applies the GTE predicate on the "site_id" field.
func SiteIDGTE(v string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldGTE(FieldSiteID, v))
}

// SiteIDLT applies the LT predicate on the "site_id" field.
func SiteIDLT(v string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldLT(FieldSiteID, v))
}

// SiteIDLTE applies the LTE predicate on the "site_id" field.
func SiteIDLTE(v string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldLTE(FieldSiteID, v))
}

// SiteIDContains applies the Contains predicate on the "site_id" field.
func SiteIDContains(v string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldContains(FieldSiteID, v))
}

// SiteIDHasPrefix applies the HasPrefix predicate on the "site_id" field.
func SiteIDHasPrefix(v string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldHasPrefix(FieldSiteID, v))
}

// SiteIDHasSuffix applies the HasSuffix predicate on the "site_id" field.
func SiteIDHasSuffix(v string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldHasSuffix(FieldSiteID, v))
}

// SiteIDEqualFold applies the EqualFold predicate on the "site_id" field.
func SiteIDEqualFold(v string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldEqualFold(FieldSiteID, v))
}

// SiteIDContainsFold applies the ContainsFold predicate on the "site_id" field.
func SiteIDContainsFold(v string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldContainsFold(FieldSiteID, v))
}

// URLPatternEQ applies the EQ predicate on the "url_pattern" field.
func URLPatternEQ(v string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldEQ(FieldURLPattern, v))
}

// URLPatternNEQ applies the NEQ predicate on the "url_pattern" field.
func URLPatternNEQ(v string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldNEQ(FieldURLPattern, v))
}

// URLPatternIn applies the In predicate on the "url_pattern" field.
func URLPatternIn(vs ...string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldIn(FieldURLPattern, vs...))
}

// URLPatternNotIn applies the NotIn predicate on the "url_pattern" field.
func URLPatternNotIn(vs ...string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldNotIn(FieldURLPattern, vs...))
}

// URLPatternGT applies the GT predicate on the "url_pattern" field.
func URLPatternGT(v string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldGT(FieldURLPattern, v))
}

// URLPatternGTE applies the GTE predicate on the "url_pattern" field.
func URLPatternGTE(v string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldGTE(FieldURLPattern, v))
}

// URLPatternLT applies the LT predicate on the "url_pattern" field.
func URLPatternLT(v string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldLT(FieldURLPattern, v))
}

// URLPatternLTE applies the LTE predicate on the "url_pattern" field.
func URLPatternLTE(v string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldLTE(FieldURLPattern, v))
}

// URLPatternContains applies the Contains predicate on the "url_pattern" field.
func URLPatternContains(v string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldContains(FieldURLPattern, v))
}

// URLPatternHasPrefix applies the HasPrefix predicate on the "url_pattern" field.
func URLPatternHasPrefix(v string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldHasPrefix(FieldURLPattern, v))
}

// URLPatternHasSuffix applies the HasSuffix predicate on the "url_pattern" field.
func URLPatternHasSuffix(v string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldHasSuffix(FieldURLPattern, v))
}

// URLPatternEqualFold applies the EqualFold predicate on the "url_pattern" field.
func URLPatternEqualFold(v string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldEqualFold(FieldURLPattern, v))
}

// URLPatternContainsFold applies the ContainsFold predicate on the "url_pattern" field.
func URLPatternContainsFold(v string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldContainsFold(FieldURLPattern, v))
}

// AssetClassEQ applies the EQ predicate on the "asset_class" field.
func AssetClassEQ(v string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldEQ(FieldAssetClass, v))
}

// AssetClassNEQ applies the NEQ predicate on the "asset_class" field.
func AssetClassNEQ(v string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldNEQ(FieldAssetClass, v))
}

// AssetClassIn applies the In predicate on the "asset_class" field.
func AssetClassIn(vs ...string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldIn(FieldAssetClass, vs...))
}

// AssetClassNotIn applies the NotIn predicate on the "asset_class" field.
func AssetClassNotIn(vs ...string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldNotIn(FieldAssetClass, vs...))
}

// AssetClassGT applies the GT predicate on the "asset_class" field.
func AssetClassGT(v string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldGT(FieldAssetClass, v))
}

// AssetClassGTE applies the GTE predicate on the "asset_class" field.
func AssetClassGTE(v string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldGTE(FieldAssetClass, v))
}

// AssetClassLT applies the LT predicate on the "asset_class" field.
func AssetClassLT(v string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldLT(FieldAssetClass, v))
}

// AssetClassLTE applies the LTE predicate on the "asset_class" field.
func AssetClassLTE(v string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldLTE(FieldAssetClass, v))
}

// AssetClassContains applies the Contains predicate on the "asset_class" field.
func AssetClassContains(v string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldContains(FieldAssetClass, v))
}

// AssetClassHasPrefix applies the HasPrefix predicate on the "asset_class" field.
func AssetClassHasPrefix(v string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldHasPrefix(FieldAssetClass, v))
}

// AssetClassHasSuffix applies the HasSuffix predicate on the "asset_class" field.
func AssetClassHasSuffix(v string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldHasSuffix(FieldAssetClass, v))
}

// AssetClassIsNil applies the IsNil predicate on the "asset_class" field.
func AssetClassIsNil() predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldIsNull(FieldAssetClass))
}

// AssetClassNotNil applies the NotNil predicate on the "asset_class" field.
func AssetClassNotNil() predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldNotNull(FieldAssetClass))
}

// AssetClassEqualFold applies the EqualFold predicate on the "asset_class" field.
func AssetClassEqualFold(v string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldEqualFold(FieldAssetClass, v))
}

// AssetClassContainsFold applies the ContainsFold predicate on the "asset_class" field.
func AssetClassContainsFold(v string) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldContainsFold(FieldAssetClass, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AssetOverride {
	return predicate.AssetOverride(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasSite applies the HasEdge predicate on the "site" edge.
func HasSite() predicate.AssetOverride {
	return predicate.AssetOverride(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SiteTable, SiteColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSiteWith applies the HasEdge predicate on the "site" edge with a given conditions (other predicates).
func HasSiteWith(preds ...predicate.Site) predicate.AssetOverride {
	return predicate.AssetOverride(func(s *sql.Selector) {
		step := newSiteStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AssetOverride) predicate.AssetOverride {
	return predicate.AssetOverride(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AssetOverride) predicate.AssetOverride {
	return predicate.AssetOverride(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AssetOverride) predicate.AssetOverride {
	return predicate.AssetOverride(sql.NotPredicates(p))
}
