package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Build holds the schema definition for the Build entity.
// One end-to-end pipeline run producing an optimized artifact tree.
type Build struct {
	ent.Schema
}

// Fields of the Build.
func (Build) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("build_id").
			Unique().
			Immutable(),
		field.String("site_id"),
		field.Enum("scope").
			Values("full", "partial").
			Default("full"),
		field.Enum("triggered_by").
			Values("user", "webhook", "schedule", "agent").
			Default("user"),
		field.Enum("status").
			Values("queued", "crawling", "optimizing", "deploying", "success", "failed", "cancelled").
			Default("queued"),
		field.String("current_phase").
			Optional().
			Nillable().
			Comment("Fine-grained pipeline phase (crawl, images, css, js, html, fonts, deploy, measure)"),
		field.String("checkpoint_phase").
			Optional().
			Nillable().
			Comment("Last phase that completed and persisted its artifacts; resume re-enters after it"),
		field.Int("pages_total").
			Default(0),
		field.Int("pages_processed").
			Default(0),
		field.JSON("original_bytes", map[string]int64{}).
			Optional().
			Comment("Input size per asset class: html, css, js, images, fonts"),
		field.JSON("optimized_bytes", map[string]int64{}).
			Optional().
			Comment("Output size per asset class: html, css, js, images, fonts"),
		field.Int("iframes_replaced").
			Default(0),
		field.Int("scripts_removed").
			Default(0),
		field.Float("score_before").
			Optional().
			Nillable(),
		field.Float("score_after").
			Optional().
			Nillable(),
		field.String("error_phase").
			Optional().
			Nillable(),
		field.String("error_step").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Bool("error_retryable").
			Default(false),
		field.JSON("resolved_settings", map[string]interface{}{}).
			Optional().
			Comment("Full settings snapshot the pipeline ran with"),
		field.JSON("log", []map[string]interface{}{}).
			Optional().
			Comment("Append-only structured log: {ts, level, message}"),
		field.Int("retry_count").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("Set iff status is terminal"),
	}
}

// Edges of the Build.
func (Build) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("site", Site.Type).
			Ref("builds").
			Field("site_id").
			Unique().
			Required(),
	}
}

// Indexes of the Build.
func (Build) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("site_id", "status"),
		index.Fields("site_id", "created_at"),
		index.Fields("status", "created_at"),
	}
}
