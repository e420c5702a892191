package liveedit

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/metrics-lab/staticpress/pkg/events"
	"github.com/metrics-lab/staticpress/pkg/models"
	"github.com/metrics-lab/staticpress/pkg/oracle"
	"github.com/metrics-lab/staticpress/pkg/services"
	"github.com/metrics-lab/staticpress/pkg/upstream"
)

// planTTL bounds how long an unexecuted plan stays approvable.
const planTTL = 15 * time.Minute

// pendingPlan is an oracle-produced plan awaiting approval. One per
// site; a newer plan supersedes the old one.
type pendingPlan struct {
	plan    models.EditPlan
	expires time.Time
}

type planRegistry struct {
	mu    sync.Mutex
	plans map[string]pendingPlan // keyed by site id
}

func newPlanRegistry() *planRegistry {
	return &planRegistry{plans: map[string]pendingPlan{}}
}

func (r *planRegistry) put(siteID string, plan models.EditPlan) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plans[siteID] = pendingPlan{plan: plan, expires: time.Now().Add(planTTL)}
}

// take removes and returns the site's pending plan when the id matches
// and it has not expired.
func (r *planRegistry) take(siteID, planID string) (*models.EditPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	pending, ok := r.plans[siteID]
	if !ok {
		return nil, services.NewValidationError("plan_id", "no pending plan for this site")
	}
	if time.Now().After(pending.expires) {
		delete(r.plans, siteID)
		return nil, services.NewValidationError("plan_id", "plan expired, request a new one")
	}
	if pending.plan.PlanID != planID {
		return nil, services.NewValidationError("plan_id", "does not match the pending plan")
	}
	delete(r.plans, siteID)
	p := pending.plan
	return &p, nil
}

// OracleEditPlanner is the slice of the oracle client the chat flow
// uses.
type OracleEditPlanner interface {
	PlanEdits(ctx context.Context, workspaceContext, message string) (string, oracle.Usage, error)
}

// Chat handles one live-edit turn. Without Execute it asks the oracle
// for a plan and parks it for approval; with Execute it applies the
// previously returned plan and deploys the workspace.
func (s *Service) Chat(ctx context.Context, planner OracleEditPlanner, siteID string, req models.ChatRequest) (*models.ChatResponse, error) {
	if _, err := s.EnsureWorkspace(ctx, siteID); err != nil {
		return nil, err
	}

	if req.Execute {
		return s.executePlan(ctx, siteID, req.PlanID)
	}
	if strings.TrimSpace(req.Message) == "" {
		return nil, services.NewValidationError("message", "required when requesting a plan")
	}

	workspaceContext, err := s.workspaceContext(ctx, siteID)
	if err != nil {
		return nil, err
	}
	raw, _, err := planner.PlanEdits(ctx, workspaceContext, req.Message)
	if err != nil {
		return nil, err
	}

	plan, err := parseEditPlan(raw)
	if err != nil {
		return nil, upstream.Transient(fmt.Errorf("oracle returned an unusable edit plan: %w", err))
	}
	plan.PlanID = services.NewID("plan")
	s.plans.put(siteID, *plan)

	s.bus.Publish(events.LiveEditTopic(siteID, ""), events.Event{
		Type: events.TypePlan,
		Payload: events.PlanPayload{
			PlanID: plan.PlanID, Description: plan.Description,
			Plan: plan, Timestamp: events.Now(),
		},
	})
	return &models.ChatResponse{Plan: plan}, nil
}

// executePlan applies an approved plan's edits and deploys the
// workspace. A partial apply skips the deploy so a half-edited
// workspace never goes live.
func (s *Service) executePlan(ctx context.Context, siteID, planID string) (*models.ChatResponse, error) {
	plan, err := s.plans.take(siteID, planID)
	if err != nil {
		return nil, err
	}

	errs := s.ApplyEdits(ctx, siteID, plan.Edits)
	var failures []string
	for i, applyErr := range errs {
		if applyErr != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", plan.Edits[i].Path, applyErr))
		}
	}
	if len(failures) > 0 {
		return &models.ChatResponse{
			Executed: true,
			Message:  "applied with failures, deploy skipped: " + strings.Join(failures, "; "),
		}, nil
	}

	deployed, err := s.Deploy(ctx, siteID)
	if err != nil {
		return nil, fmt.Errorf("failed to deploy after applying plan %s: %w", planID, err)
	}
	return &models.ChatResponse{
		Executed: true,
		Message:  fmt.Sprintf("applied %d edits, deployed to %s", len(plan.Edits), deployed.EdgeURL),
	}, nil
}

// workspaceContext summarizes the workspace for the oracle: the file
// listing plus the content of the pages most edits target.
func (s *Service) workspaceContext(ctx context.Context, siteID string) (string, error) {
	listing, err := s.ListFiles(ctx, siteID)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, f := range listing.Files {
		fmt.Fprintf(&b, "%s (%d bytes)\n", f.Path, f.Bytes)
	}
	// Include the home page inline; it anchors most requests.
	if home, err := s.ReadFile(ctx, siteID, "index.html"); err == nil {
		b.WriteString("\n--- index.html ---\n")
		b.WriteString(home.Content)
	}
	return b.String(), nil
}

// parseEditPlan decodes the oracle's JSON response into an EditPlan.
func parseEditPlan(raw string) (*models.EditPlan, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")

	var plan models.EditPlan
	if err := json.Unmarshal([]byte(cleaned), &plan); err != nil {
		return nil, fmt.Errorf("not valid JSON: %w", err)
	}
	if len(plan.Edits) == 0 {
		return nil, fmt.Errorf("plan contains no edits")
	}
	for _, edit := range plan.Edits {
		if edit.Path == "" {
			return nil, fmt.Errorf("plan contains an edit without a path")
		}
	}
	return &plan, nil
}
