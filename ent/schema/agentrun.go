package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentRun holds the schema definition for the AgentRun entity.
// A multi-build optimize-verify-adjust loop supervised by the LLM oracle.
// At most one non-terminal run may exist per site (enforced by the job slot).
type AgentRun struct {
	ent.Schema
}

// Fields of the AgentRun.
func (AgentRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.String("site_id"),
		field.Enum("phase").
			Values("analyzing", "planning", "building", "verifying", "reviewing", "complete", "failed").
			Default("analyzing"),
		field.Int("iteration").
			Default(0).
			Comment("Monotonically non-decreasing iteration counter"),
		field.Int("max_iterations").
			Default(10),
		field.JSON("phase_timings", map[string]int64{}).
			Optional().
			Comment("Milliseconds spent per phase, keyed phase:iteration"),
		field.String("last_error").
			Optional().
			Nillable(),
		field.JSON("checkpoint", map[string]interface{}{}).
			Optional().
			Comment("Full resumable state written before each build phase"),
		field.String("current_build_id").
			Optional().
			Nillable(),
		field.String("workspace_dir").
			Optional().
			Nillable().
			Comment("On-disk working directory; presence gates resumability"),
		field.String("final_verdict").
			Optional().
			Nillable().
			Comment("pass, needs-changes, or critical-failure from the last review"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the AgentRun.
func (AgentRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("site", Site.Type).
			Ref("agent_runs").
			Field("site_id").
			Unique().
			Required(),
	}
}

// Indexes of the AgentRun.
func (AgentRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("site_id", "phase"),
		index.Fields("site_id", "created_at"),
	}
}
