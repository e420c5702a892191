package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Page holds the schema definition for the Page entity: a per-site,
// per-path content fingerprint used by partial rebuilds to skip pages
// unchanged since the last crawl.
type Page struct {
	ent.Schema
}

// Fields of the Page.
func (Page) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("page_id").
			Unique().
			Immutable(),
		field.String("site_id"),
		field.String("path"),
		field.String("content_hash").
			Comment("SHA-256 of the rendered HTML"),
		field.Time("last_crawled_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Page.
func (Page) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("site", Site.Type).
			Ref("pages").
			Field("site_id").
			Unique().
			Required(),
	}
}

// Indexes of the Page.
func (Page) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("site_id", "path").
			Unique(),
	}
}
