package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SettingsHistory holds the schema definition for the SettingsHistory entity.
// Append-only log of prior sparse-settings values; rollback copies a row
// back into the site's current settings and appends a new entry.
type SettingsHistory struct {
	ent.Schema
}

// Fields of the SettingsHistory.
func (SettingsHistory) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("history_id").
			Unique().
			Immutable(),
		field.String("site_id"),
		field.JSON("settings", map[string]interface{}{}).
			Optional().
			Comment("The sparse settings value before the write that created this row"),
		field.String("actor").
			Default("api-client").
			Comment("Who made the change: user identity, 'agent', or 'rollback'"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the SettingsHistory.
func (SettingsHistory) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("site", Site.Type).
			Ref("settings_history").
			Field("site_id").
			Unique().
			Required(),
	}
}

// Indexes of the SettingsHistory.
func (SettingsHistory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("site_id", "created_at"),
	}
}
