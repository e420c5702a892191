package models

import "github.com/metrics-lab/staticpress/ent"

// StartAgentRequest contains optional knobs for an agent optimize run.
type StartAgentRequest struct {
	MaxIterations int `json:"max_iterations,omitempty"`
}

// StartAgentResponse acknowledges an accepted agent run with its job.
type StartAgentResponse struct {
	RunID  string `json:"run_id"`
	JobID  string `json:"job_id"`
	Status string `json:"status"`
}

// AgentRunResponse wraps an AgentRun.
type AgentRunResponse struct {
	*ent.AgentRun
}

// AgentReportResponse is the final report for a completed run.
type AgentReportResponse struct {
	RunID           string           `json:"run_id"`
	FinalVerdict    string           `json:"final_verdict,omitempty"`
	TotalIterations int              `json:"total_iterations"`
	Phase           string           `json:"phase"`
	PhaseTimings    map[string]int64 `json:"phase_timings,omitempty"`
	LastError       string           `json:"last_error,omitempty"`
}
