package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MeasurementComparison holds the schema definition for one measurement run
// comparing the origin site against the deployed edge URL.
type MeasurementComparison struct {
	ent.Schema
}

// Fields of the MeasurementComparison.
func (MeasurementComparison) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("measurement_id").
			Unique().
			Immutable(),
		field.String("site_id"),
		field.String("build_id").
			Optional().
			Nillable(),
		field.Enum("strategy").
			Values("mobile", "desktop"),
		field.Float("original_score"),
		field.Float("optimized_score"),
		field.JSON("original_vitals", map[string]float64{}).
			Optional().
			Comment("Core vitals for the origin: lcp_ms, fcp_ms, cls, tbt_ms, ttfb_ms"),
		field.JSON("optimized_vitals", map[string]float64{}).
			Optional(),
		field.JSON("improvements", map[string]float64{}).
			Optional().
			Comment("Per-metric improvement percentages"),
		field.Int64("payload_savings_bytes").
			Default(0),
		field.JSON("original_raw", map[string]interface{}{}).
			Optional().
			Comment("Raw measurement endpoint response for the origin"),
		field.JSON("optimized_raw", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the MeasurementComparison.
func (MeasurementComparison) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("site", Site.Type).
			Ref("measurements").
			Field("site_id").
			Unique().
			Required(),
	}
}

// Indexes of the MeasurementComparison.
func (MeasurementComparison) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("site_id", "created_at"),
		index.Fields("build_id"),
	}
}
