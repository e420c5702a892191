package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Site holds the schema definition for the Site entity.
// A site is the unit of ownership: builds, agent runs, overrides, history,
// measurements and pages all cascade-delete with their site.
type Site struct {
	ent.Schema
}

// Fields of the Site.
func (Site) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("site_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.String("source_url").
			Comment("Origin WordPress URL the crawler starts from"),
		field.Enum("status").
			Values("pending", "active", "error").
			Default("pending"),
		field.String("last_build_id").
			Optional().
			Nillable().
			Comment("Denormalized pointer to the most recent build (best-effort)"),
		field.Enum("last_build_status").
			Values("queued", "crawling", "optimizing", "deploying", "success", "failed", "cancelled").
			Optional().
			Nillable(),
		field.String("edge_url").
			Optional().
			Nillable().
			Comment("Public URL returned by the edge provider for the latest deploy"),
		field.String("edge_project").
			Optional().
			Nillable().
			Comment("Edge provider project name, form mls-{siteId}"),
		field.Int("page_count").
			Default(0),
		field.Int64("total_bytes").
			Default(0),
		field.JSON("settings", map[string]interface{}{}).
			Optional().
			Comment("Sparse settings override merged over built-in defaults"),
		field.String("webhook_secret").
			Sensitive().
			Comment("HMAC secret for inbound WordPress webhooks"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Site.
func (Site) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("builds", Build.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("agent_runs", AgentRun.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("asset_overrides", AssetOverride.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("settings_history", SettingsHistory.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("measurements", MeasurementComparison.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("pages", Page.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("alert_rules", AlertRule.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("alert_logs", AlertLog.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Site.
func (Site) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("source_url"),
	}
}
