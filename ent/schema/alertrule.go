package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AlertRule holds the schema definition for the AlertRule entity.
// Rules are evaluated after each measurement write.
type AlertRule struct {
	ent.Schema
}

// Fields of the AlertRule.
func (AlertRule) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("rule_id").
			Unique().
			Immutable(),
		field.String("site_id"),
		field.String("metric").
			Comment("Metric name, e.g. optimized_score or lcp_ms"),
		field.Enum("operator").
			Values("lt", "gt"),
		field.Float("threshold"),
		field.Bool("enabled").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AlertRule.
func (AlertRule) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("site", Site.Type).
			Ref("alert_rules").
			Field("site_id").
			Unique().
			Required(),
	}
}

// Indexes of the AlertRule.
func (AlertRule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("site_id", "enabled"),
	}
}
