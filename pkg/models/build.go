package models

import "github.com/metrics-lab/staticpress/ent"

// TriggerBuildRequest contains fields for starting a build.
type TriggerBuildRequest struct {
	// Scope is "full" or "partial"; empty defaults to full.
	Scope string `json:"scope,omitempty"`
	// TriggeredBy records the actor: user, webhook, schedule, agent.
	TriggeredBy string `json:"triggered_by,omitempty"`
}

// TriggerBuildResponse acknowledges an accepted build with its job.
type TriggerBuildResponse struct {
	BuildID string `json:"build_id"`
	JobID   string `json:"job_id"`
	Status  string `json:"status"`
}

// BuildResponse wraps a Build.
type BuildResponse struct {
	*ent.Build
}

// BuildListResponse contains a page of builds for a site.
type BuildListResponse struct {
	Builds []*ent.Build `json:"builds"`
	Total  int          `json:"total"`
}

// BuildLogEntry is one structured line of a build's persisted log.
type BuildLogEntry struct {
	Level     string `json:"level"`
	Phase     string `json:"phase,omitempty"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}
