package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AlertLog holds the schema definition for the AlertLog entity.
// Append-only record of fired alerts.
type AlertLog struct {
	ent.Schema
}

// Fields of the AlertLog.
func (AlertLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("alert_id").
			Unique().
			Immutable(),
		field.String("site_id"),
		field.String("rule_id"),
		field.String("message"),
		field.Float("observed_value"),
		field.Time("fired_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AlertLog.
func (AlertLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("site", Site.Type).
			Ref("alert_logs").
			Field("site_id").
			Unique().
			Required(),
	}
}

// Indexes of the AlertLog.
func (AlertLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("site_id", "fired_at"),
	}
}
