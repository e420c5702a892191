package liveedit

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/metrics-lab/staticpress/pkg/models"
	"github.com/metrics-lab/staticpress/pkg/services"
	"github.com/metrics-lab/staticpress/pkg/upstream"
)

// Audit types.
var auditPrompts = map[string]string{
	"speed": `You audit static sites for performance. Given the workspace listing and page content, report oversized assets, render-blocking references, missing lazy-loading and similar issues. Respond with JSON only: {"findings":[{"severity":"high|medium|low","path":"...","message":"..."}],"summary":"..."}`,
	"bugs": `You audit static sites for functional defects. Given the workspace listing and page content, report broken references, malformed markup, dangling scripts and similar issues. Respond with JSON only: {"findings":[{"severity":"high|medium|low","path":"...","message":"..."}],"summary":"..."}`,
	"visual": `You audit static sites for visual defects. Given the workspace listing and page content, report layout hazards: missing image dimensions, conflicting styles, overflow risks. Respond with JSON only: {"findings":[{"severity":"high|medium|low","path":"...","message":"..."}],"summary":"..."}`,
}

// auditResult mirrors the oracle's audit JSON.
type auditResult struct {
	Findings []models.AuditFinding `json:"findings"`
	Summary  string                `json:"summary"`
}

// Audit runs one oracle-backed workspace audit.
func (s *Service) Audit(ctx context.Context, planner OracleEditPlanner, siteID string, req models.AuditRequest) (*models.AuditResponse, error) {
	prompt, ok := auditPrompts[req.Type]
	if !ok {
		return nil, services.NewValidationError("type", "must be one of speed, bugs, visual")
	}

	workspaceContext, err := s.workspaceContext(ctx, siteID)
	if err != nil {
		return nil, err
	}

	raw, _, err := planner.PlanEdits(ctx, workspaceContext, prompt)
	if err != nil {
		return nil, err
	}

	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")

	var parsed auditResult
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, upstream.Transient(fmt.Errorf("oracle returned an unusable audit: %w", err))
	}

	return &models.AuditResponse{
		Type:     req.Type,
		Findings: parsed.Findings,
		Summary:  parsed.Summary,
	}, nil
}
