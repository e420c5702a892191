package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Job holds the schema definition for the durable queue Job entity.
// Jobs reference builds and agent runs by id only — no edges — so the
// queue stays decoupled from the domain rows it drives.
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.Enum("kind").
			Values("build", "agent"),
		field.String("site_id"),
		field.JSON("payload", map[string]interface{}{}).
			Optional().
			Comment("Kind-specific payload: build_id or run_id plus options"),
		field.Enum("status").
			Values("ready", "reserved", "succeeded", "failed", "cancelled").
			Default("ready"),
		field.Int("attempts").
			Default(0),
		field.Int("max_retries").
			Default(5),
		field.Time("not_before").
			Default(time.Now).
			Comment("Earliest time the job may be reserved (backoff target)"),
		field.Time("lease_expires_at").
			Optional().
			Nillable().
			Comment("Visibility lease; expired reserved jobs return to the ready set"),
		field.String("pod_id").
			Optional().
			Nillable(),
		field.String("last_error").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Job.
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "not_before", "created_at"),
		index.Fields("site_id", "status"),
		index.Fields("status", "lease_expires_at"),
	}
}
