package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssetOverride holds the schema definition for the AssetOverride entity.
// Sparse settings applied to any asset whose URL matches the glob pattern.
// Upserts are idempotent on {site_id, url_pattern}.
type AssetOverride struct {
	ent.Schema
}

// Fields of the AssetOverride.
func (AssetOverride) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("override_id").
			Unique().
			Immutable(),
		field.String("site_id"),
		field.String("url_pattern").
			Comment("Glob: * matches within a path segment, ** across segments"),
		field.String("asset_class").
			Optional().
			Nillable().
			Comment("Optional restriction: html, css, js, image, font"),
		field.JSON("settings", map[string]interface{}{}).
			Comment("Sparse settings merged for matching assets"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the AssetOverride.
func (AssetOverride) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("site", Site.Type).
			Ref("asset_overrides").
			Field("site_id").
			Unique().
			Required(),
	}
}

// Indexes of the AssetOverride.
func (AssetOverride) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("site_id", "url_pattern").
			Unique(),
		// Match application follows insertion order.
		index.Fields("site_id", "created_at"),
	}
}
