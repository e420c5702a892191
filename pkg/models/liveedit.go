package models

// WorkspaceFile describes one file in a live-edit workspace listing.
type WorkspaceFile struct {
	Path  string `json:"path"`
	Bytes int64  `json:"bytes"`
	IsDir bool   `json:"is_dir"`
}

// WorkspaceListResponse is the live-edit workspace file listing.
type WorkspaceListResponse struct {
	SiteID string          `json:"site_id"`
	Files  []WorkspaceFile `json:"files"`
}

// WorkspaceFileResponse returns one file's content.
type WorkspaceFileResponse struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// ChatRequest is a live-edit chat turn. In the plan step Execute is
// false and Message carries the instruction; to apply a previously
// returned plan the client repeats the call with Execute true and the
// matching PlanID, and Message may be empty.
type ChatRequest struct {
	Message string `json:"message,omitempty"`
	Execute bool   `json:"execute,omitempty"`
	PlanID  string `json:"plan_id,omitempty"`
}

// FileEdit is one concrete change within an edit plan.
type FileEdit struct {
	Path    string `json:"path"`
	Content string `json:"content"`
	Summary string `json:"summary,omitempty"`
}

// EditPlan is the oracle's proposed set of workspace changes.
type EditPlan struct {
	PlanID      string     `json:"plan_id"`
	Description string     `json:"description"`
	Edits       []FileEdit `json:"edits"`
}

// ChatResponse returns either a plan awaiting approval or the result
// of executing one.
type ChatResponse struct {
	Plan     *EditPlan `json:"plan,omitempty"`
	Executed bool      `json:"executed"`
	Message  string    `json:"message,omitempty"`
}

// AuditRequest selects a live-edit audit type.
type AuditRequest struct {
	// Type is one of speed, bugs, visual.
	Type string `json:"type" binding:"required"`
}

// AuditFinding is one issue surfaced by an audit.
type AuditFinding struct {
	Severity string `json:"severity"`
	Path     string `json:"path,omitempty"`
	Message  string `json:"message"`
}

// AuditResponse is the result of a workspace audit.
type AuditResponse struct {
	Type     string         `json:"type"`
	Findings []AuditFinding `json:"findings"`
	Summary  string         `json:"summary,omitempty"`
}

// DeployWorkspaceResponse acknowledges a live-edit deploy.
type DeployWorkspaceResponse struct {
	EdgeURL string `json:"edge_url"`
}
