// Code generated by ent, DO NOT EDIT.

package measurementcomparison

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/metrics-lab/staticpress/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldContainsFold(FieldID, id))
}

// SiteID applies equality check predicate on the "site_id" field. It's identical to SiteIDEQ.
func SiteID(v string) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldEQ(FieldSiteID, v))
}

// BuildID applies equality check predicate on the "build_id" field. It's identical to BuildIDEQ.
func BuildID(v string) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldEQ(FieldBuildID, v))
}

// OriginalScore applies equality check predicate on the "original_score" field. It's identical to OriginalScoreEQ.
func OriginalScore(v float64) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldEQ(FieldOriginalScore, v))
}

// OptimizedScore applies equality check predicate on the "optimized_score" field. It's identical to OptimizedScoreEQ.
func OptimizedScore(v float64) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldEQ(FieldOptimizedScore, v))
}

// PayloadSavingsBytes applies equality check predicate on the "payload_savings_bytes" field. It's identical to PayloadSavingsBytesEQ.
func PayloadSavingsBytes(v int64) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldEQ(FieldPayloadSavingsBytes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldEQ(FieldCreatedAt, v))
}

// SiteIDEQ applies the EQ predicate on the "site_id" field.
func SiteIDEQ(v string) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldEQ(FieldSiteID, v))
}

// SiteIDNEQ applies the NEQ predicate on the "site_id" field.
func SiteIDNEQ(v string) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldNEQ(FieldSiteID, v))
}

// SiteIDIn applies the In predicate on the "site_id" field.
func SiteIDIn(vs ...string) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldIn(FieldSiteID, vs...))
}

// SiteIDNotIn applies the NotIn predicate on the "site_id" field.
func SiteIDNotIn(vs ...string) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldNotIn(FieldSiteID, vs...))
}

// SiteIDGT applies the GT predicate on the "site_id" field.
func SiteIDGT(v string) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldGT(FieldSiteID, v))
}

// SiteIDGTE applies the GTE predicate on the "site_id" field.
func SiteIDGTE(v string) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldGTE(FieldSiteID, v))
}

// SiteIDLT applies the LT predicate on the "site_id" field.
func SiteIDLT(v string) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldLT(FieldSiteID, v))
}

// SiteIDLTE applies the LTE predicate on the "site_id" field.
func SiteIDLTE(v string) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldLTE(FieldSiteID, v))
}

// SiteIDContains applies the Contains predicate on the "site_id" field.
func SiteIDContains(v string) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldContains(FieldSiteID, v))
}

// SiteIDHasPrefix applies the HasPrefix predicate on the "site_id" field.
func SiteIDHasPrefix(v string) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldHasPrefix(FieldSiteID, v))
}

// SiteIDHasSuffix applies the HasSuffix predicate on the "site_id" field.
func SiteIDHasSuffix(v string) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldHasSuffix(FieldSiteID, v))
}

// SiteIDEqualFold applies the EqualFold predicate on the "site_id" field.
func SiteIDEqualFold(v string) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldEqualFold(FieldSiteID, v))
}

// SiteIDContainsFold applies the ContainsFold predicate on the "site_id" field.
func SiteIDContainsFold(v string) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldContainsFold(FieldSiteID, v))
}

// BuildIDEQ applies the EQ predicate on the "build_id" field.
func BuildIDEQ(v string) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldEQ(FieldBuildID, v))
}

// BuildIDNEQ applies the NEQ predicate on the "build_id" field.
func BuildIDNEQ(v string) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldNEQ(FieldBuildID, v))
}

// BuildIDIn applies the In predicate on the "build_id" field.
func BuildIDIn(vs ...string) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldIn(FieldBuildID, vs...))
}

// BuildIDNotIn applies the NotIn predicate on the "build_id" field.
func BuildIDNotIn(vs ...string) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldNotIn(FieldBuildID, vs...))
}

// BuildIDGT applies the GT predicate on the "build_id" field.
func BuildIDGT(v string) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldGT(FieldBuildID, v))
}

// BuildIDGTE applies the GTE predicate on the "build_id" field.
func BuildIDGTE(v string) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldGTE(FieldBuildID, v))
}

// BuildIDLT applies the LT predicate on the "build_id" field.
func BuildIDLT(v string) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldLT(FieldBuildID, v))
}

// BuildIDLTE applies the LTE predicate on the "build_id" field.
func BuildIDLTE(v string) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldLTE(FieldBuildID, v))
}

// BuildIDContains applies the Contains predicate on the "build_id" field.
func BuildIDContains(v string) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldContains(FieldBuildID, v))
}

// BuildIDHasPrefix applies the HasPrefix predicate on the "build_id" field.
func BuildIDHasPrefix(v string) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldHasPrefix(FieldBuildID, v))
}

// BuildIDHasSuffix applies the HasSuffix predicate on the "build_id" field.
func BuildIDHasSuffix(v string) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldHasSuffix(FieldBuildID, v))
}

// BuildIDIsNil applies the IsNil predicate on the "build_id" field.
func BuildIDIsNil() predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldIsNull(FieldBuildID))
}

// BuildIDNotNil applies the NotNil predicate on the "build_id" field.
func BuildIDNotNil() predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldNotNull(FieldBuildID))
}

// BuildIDEqualFold applies the EqualFold predicate on the "build_id" field.
func BuildIDEqualFold(v string) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldEqualFold(FieldBuildID, v))
}

// BuildIDContainsFold applies the ContainsFold predicate on the "build_id" field.
func BuildIDContainsFold(v string) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldContainsFold(FieldBuildID, v))
}

// StrategyEQ applies the EQ predicate on the "strategy" field.
func StrategyEQ(v Strategy) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldEQ(FieldStrategy, v))
}

// StrategyNEQ applies the NEQ predicate on the "strategy" field.
func StrategyNEQ(v Strategy) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldNEQ(FieldStrategy, v))
}

// StrategyIn applies the In predicate on the "strategy" field.
func StrategyIn(vs ...Strategy) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldIn(FieldStrategy, vs...))
}

// StrategyNotIn applies the NotIn predicate on the "strategy" field.
func StrategyNotIn(vs ...Strategy) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldNotIn(FieldStrategy, vs...))
}

// OriginalScoreEQ applies the EQ predicate on the "original_score" field.
func OriginalScoreEQ(v float64) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldEQ(FieldOriginalScore, v))
}

// OriginalScoreNEQ applies the NEQ predicate on the "original_score" field.
func OriginalScoreNEQ(v float64) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldNEQ(FieldOriginalScore, v))
}

// OriginalScoreIn applies the In predicate on the "original_score" field.
func OriginalScoreIn(vs ...float64) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldIn(FieldOriginalScore, vs...))
}

// OriginalScoreNotIn applies the NotIn predicate on the "original_score" field.
func OriginalScoreNotIn(vs ...float64) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldNotIn(FieldOriginalScore, vs...))
}

// OriginalScoreGT applies the GT predicate on the "original_score" field.
func OriginalScoreGT(v float64) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldGT(FieldOriginalScore, v))
}

// OriginalScoreGTE applies the GTE predicate on the "original_score" field.
func OriginalScoreGTE(v float64) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldGTE(FieldOriginalScore, v))
}

// OriginalScoreLT applies the LT predicate on the "original_score" field.
func OriginalScoreLT(v float64) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldLT(FieldOriginalScore, v))
}

// OriginalScoreLTE applies the LTE predicate on the "original_score" field.
func OriginalScoreLTE(v float64) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldLTE(FieldOriginalScore, v))
}

// OptimizedScoreEQ applies the EQ predicate on the "optimized_score" field.
func OptimizedScoreEQ(v float64) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldEQ(FieldOptimizedScore, v))
}

// OptimizedScoreNEQ applies the NEQ predicate on the "optimized_score" field.
func OptimizedScoreNEQ(v float64) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldNEQ(FieldOptimizedScore, v))
}

// OptimizedScoreIn applies the In predicate on the "optimized_score" field.
func OptimizedScoreIn(vs ...float64) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldIn(FieldOptimizedScore, vs...))
}

// OptimizedScoreNotIn applies the NotIn predicate on the "optimized_score" field.
func OptimizedScoreNotIn(vs ...float64) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldNotIn(FieldOptimizedScore, vs...))
}

// OptimizedScoreGT applies the GT predicate on the "optimized_score" field.
func OptimizedScoreGT(v float64) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldGT(FieldOptimizedScore, v))
}

// OptimizedScoreGTE applies the GTE predicate on the "optimized_score" field.
func OptimizedScoreGTE(v float64) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldGTE(FieldOptimizedScore, v))
}

// OptimizedScoreLT applies the LT predicate on the "optimized_score" field.
func OptimizedScoreLT(v float64) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldLT(FieldOptimizedScore, v))
}

// OptimizedScoreLTE applies the LTE predicate on the "optimized_score" field.
func OptimizedScoreLTE(v float64) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldLTE(FieldOptimizedScore, v))
}

// OriginalVitalsIsNil applies the IsNil predicate on the "original_vitals" field.
func OriginalVitalsIsNil() predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldIsNull(FieldOriginalVitals))
}

// OriginalVitalsNotNil applies the NotNil predicate on the "original_vitals" field.
func OriginalVitalsNotNil() predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldNotNull(FieldOriginalVitals))
}

// OptimizedVitalsIsNil applies the IsNil predicate on the "optimized_vitals" field.
func OptimizedVitalsIsNil() predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldIsNull(FieldOptimizedVitals))
}

// OptimizedVitalsNotNil applies the NotNil predicate on the "optimized_vitals" field.
func OptimizedVitalsNotNil() predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldNotNull(FieldOptimizedVitals))
}

// ImprovementsIsNil applies the IsNil predicate on the "improvements" field.
func ImprovementsIsNil() predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldIsNull(FieldImprovements))
}

// ImprovementsNotNil applies the NotNil predicate on the "improvements" field.
func ImprovementsNotNil() predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldNotNull(FieldImprovements))
}

// PayloadSavingsBytesEQ applies the EQ predicate on the "payload_savings_bytes" field.
func PayloadSavingsBytesEQ(v int64) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldEQ(FieldPayloadSavingsBytes, v))
}

// PayloadSavingsBytesNEQ applies the NEQ predicate on the "payload_savings_bytes" field.
func PayloadSavingsBytesNEQ(v int64) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldNEQ(FieldPayloadSavingsBytes, v))
}

// PayloadSavingsBytesIn applies the In predicate on the "payload_savings_bytes" field.
func PayloadSavingsBytesIn(vs ...int64) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldIn(FieldPayloadSavingsBytes, vs...))
}

// PayloadSavingsBytesNotIn applies the NotIn predicate on the "payload_savings_bytes" field.
func PayloadSavingsBytesNotIn(vs ...int64) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldNotIn(FieldPayloadSavingsBytes, vs...))
}

// PayloadSavingsBytesGT applies the GT predicate on the "payload_savings_bytes" field.
func PayloadSavingsBytesGT(v int64) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldGT(FieldPayloadSavingsBytes, v))
}

// PayloadSavingsBytesGTE applies the GTE predicate on the "payload_savings_bytes" field.
func PayloadSavingsBytesGTE(v int64) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldGTE(FieldPayloadSavingsBytes, v))
}

// PayloadSavingsBytesLT applies the LT predicate on the "payload_savings_bytes" field.
func PayloadSavingsBytesLT(v int64) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldLT(FieldPayloadSavingsBytes, v))
}

// PayloadSavingsBytesLTE applies the LTE predicate on the "payload_savings_bytes" field.
func PayloadSavingsBytesLTE(v int64) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldLTE(FieldPayloadSavingsBytes, v))
}

// OriginalRawIsNil applies the IsNil predicate on the "original_raw" field.
func OriginalRawIsNil() predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldIsNull(FieldOriginalRaw))
}

// OriginalRawNotNil applies the NotNil predicate on the "original_raw" field.
func OriginalRawNotNil() predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldNotNull(FieldOriginalRaw))
}

// OptimizedRawIsNil applies the IsNil predicate on the "optimized_raw" field.
func OptimizedRawIsNil() predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldIsNull(FieldOptimizedRaw))
}

// OptimizedRawNotNil applies the NotNil predicate on the "optimized_raw" field.
func OptimizedRawNotNil() predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldNotNull(FieldOptimizedRaw))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSite applies the HasEdge predicate on the "site" edge.
func HasSite() predicate.MeasurementComparison {
	return predicate.MeasurementComparison(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SiteTable, SiteColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSiteWith applies the HasEdge predicate on the "site" edge with a given conditions (other predicates).
func HasSiteWith(preds ...predicate.Site) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(func(s *sql.Selector) {
		step := newSiteStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MeasurementComparison) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MeasurementComparison) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MeasurementComparison) predicate.MeasurementComparison {
	return predicate.MeasurementComparison(sql.NotPredicates(p))
}
