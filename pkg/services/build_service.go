package services

import (
	"context"
	"fmt"
	"time"

	"github.com/metrics-lab/staticpress/ent"
	"github.com/metrics-lab/staticpress/ent/agentrun"
	"github.com/metrics-lab/staticpress/ent/build"
	"github.com/metrics-lab/staticpress/ent/job"
	"github.com/metrics-lab/staticpress/ent/site"
	"github.com/metrics-lab/staticpress/pkg/events"
	"github.com/metrics-lab/staticpress/pkg/models"
)

// NonTerminalBuildStatuses are build states that hold the site slot.
var NonTerminalBuildStatuses = []build.Status{
	build.StatusQueued,
	build.StatusCrawling,
	build.StatusOptimizing,
	build.StatusDeploying,
}

// NonTerminalAgentPhases are agent run states that hold the site slot.
var NonTerminalAgentPhases = []agentrun.Phase{
	agentrun.PhaseAnalyzing,
	agentrun.PhasePlanning,
	agentrun.PhaseBuilding,
	agentrun.PhaseVerifying,
	agentrun.PhaseReviewing,
}

// RunCanceller signals cooperative cancellation to a worker currently
// executing a job for the site. Implemented by the worker pool.
type RunCanceller interface {
	CancelSite(siteID string) bool
}

// BuildService manages build lifecycle: trigger, cancel, retry, query
type BuildService struct {
	client    *ent.Client
	bus       *events.Bus
	canceller RunCanceller
}

// NewBuildService creates a new BuildService
func NewBuildService(client *ent.Client, bus *events.Bus) *BuildService {
	return &BuildService{client: client, bus: bus}
}

// SetCanceller wires the worker pool's cancel registry. Called once in
// main after the pool exists.
func (s *BuildService) SetCanceller(c RunCanceller) {
	s.canceller = c
}

// TriggerBuild creates a build row and its queue job in one
// transaction. The per-site slot is asserted here: a second trigger
// while any build or agent run is non-terminal fails with
// ErrAlreadyInProgress.
func (s *BuildService) TriggerBuild(httpCtx context.Context, siteID string, req models.TriggerBuildRequest) (*models.TriggerBuildResponse, error) {
	scope := build.ScopeFull
	switch req.Scope {
	case "", "full":
	case "partial":
		scope = build.ScopePartial
	default:
		return nil, NewValidationError("scope", "must be full or partial")
	}
	trigger := build.TriggeredByUser
	switch req.TriggeredBy {
	case "", "user":
	case "webhook":
		trigger = build.TriggeredByWebhook
	case "schedule":
		trigger = build.TriggeredBySchedule
	case "agent":
		trigger = build.TriggeredByAgent
	default:
		return nil, NewValidationError("triggered_by", "must be user, webhook, schedule, or agent")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	// Lock the site row so concurrent triggers serialize on the slot check.
	_, err = tx.Site.Query().
		Where(site.IDEQ(siteID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock site %s: %w", siteID, err)
	}

	if err := assertSlotFree(ctx, tx, siteID); err != nil {
		return nil, err
	}

	buildID := NewID("build")
	created, err := tx.Build.Create().
		SetID(buildID).
		SetSiteID(siteID).
		SetScope(scope).
		SetTriggeredBy(trigger).
		SetStatus(build.StatusQueued).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create build: %w", err)
	}

	jobID := NewID("job")
	_, err = tx.Job.Create().
		SetID(jobID).
		SetKind(job.KindBuild).
		SetSiteID(siteID).
		SetPayload(map[string]any{"build_id": buildID}).
		SetStatus(job.StatusReady).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue build job: %w", err)
	}

	// Bump the denormalized pointer on the site row.
	err = tx.Site.UpdateOneID(siteID).
		SetLastBuildID(buildID).
		SetLastBuildStatus(site.LastBuildStatusQueued).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update site build pointer: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit build trigger: %w", err)
	}

	s.bus.Publish(events.BuildTopic(siteID), events.Event{
		Type: events.TypePhase,
		Payload: events.PhasePayload{
			BuildID:   created.ID,
			Status:    string(created.Status),
			Timestamp: events.Now(),
		},
	})

	return &models.TriggerBuildResponse{
		BuildID: buildID,
		JobID:   jobID,
		Status:  string(created.Status),
	}, nil
}

// assertSlotFree fails with ErrAlreadyInProgress when any non-terminal
// build or agent run exists for the site. Callers hold the site row lock.
func assertSlotFree(ctx context.Context, tx *ent.Tx, siteID string) error {
	activeBuilds, err := tx.Build.Query().
		Where(build.SiteIDEQ(siteID), build.StatusIn(NonTerminalBuildStatuses...)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count active builds: %w", err)
	}
	if activeBuilds > 0 {
		return ErrAlreadyInProgress
	}
	activeRuns, err := tx.AgentRun.Query().
		Where(agentrun.SiteIDEQ(siteID), agentrun.PhaseIn(NonTerminalAgentPhases...)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count active agent runs: %w", err)
	}
	if activeRuns > 0 {
		return ErrAlreadyInProgress
	}
	return nil
}

// GetBuild returns a build by id, scoped to its site
func (s *BuildService) GetBuild(ctx context.Context, siteID, buildID string) (*ent.Build, error) {
	found, err := s.client.Build.Query().
		Where(build.IDEQ(buildID), build.SiteIDEQ(siteID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get build %s: %w", buildID, err)
	}
	return found, nil
}

// ListBuilds returns a site's builds, newest first
func (s *BuildService) ListBuilds(ctx context.Context, siteID string, limit int) ([]*ent.Build, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	builds, err := s.client.Build.Query().
		Where(build.SiteIDEQ(siteID)).
		Order(ent.Desc(build.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list builds for site %s: %w", siteID, err)
	}
	return builds, nil
}

// GetLogs returns a build's persisted structured log lines
func (s *BuildService) GetLogs(ctx context.Context, siteID, buildID string) ([]map[string]any, error) {
	found, err := s.GetBuild(ctx, siteID, buildID)
	if err != nil {
		return nil, err
	}
	if found.Log == nil {
		return []map[string]any{}, nil
	}
	return found.Log, nil
}

// CancelBuild cancels a non-terminal build. Queued jobs are marked
// cancelled directly; a running job gets a cooperative stop signal and
// the worker finalizes the status.
func (s *BuildService) CancelBuild(httpCtx context.Context, siteID, buildID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	found, err := s.GetBuild(ctx, siteID, buildID)
	if err != nil {
		return err
	}
	if isTerminalBuildStatus(found.Status) {
		return ErrInvalidTransition
	}

	// Signal a worker that may be executing this site's job right now.
	running := false
	if s.canceller != nil {
		running = s.canceller.CancelSite(siteID)
	}
	if running {
		// The executor observes the cancel and finalizes rows itself.
		return nil
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	err = tx.Build.UpdateOneID(buildID).
		SetStatus(build.StatusCancelled).
		SetCompletedAt(now).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to cancel build %s: %w", buildID, err)
	}
	_, err = tx.Job.Update().
		Where(job.SiteIDEQ(siteID), job.StatusIn(job.StatusReady, job.StatusReserved)).
		SetStatus(job.StatusCancelled).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to cancel queued jobs for site %s: %w", siteID, err)
	}
	err = tx.Site.UpdateOneID(siteID).
		SetLastBuildStatus(site.LastBuildStatusCancelled).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update site build pointer: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cancel: %w", err)
	}

	s.bus.Publish(events.BuildTopic(siteID), events.Event{
		Type: events.TypeDone,
		Payload: events.DonePayload{
			Status:    string(build.StatusCancelled),
			Timestamp: events.Now(),
		},
	})
	return nil
}

// RetryBuild re-queues a failed build. The pipeline re-enters at the
// failed phase: crawl artifacts and earlier checkpoints are preserved.
func (s *BuildService) RetryBuild(httpCtx context.Context, siteID, buildID string) (*models.TriggerBuildResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Site.Query().Where(site.IDEQ(siteID)).ForUpdate().Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock site %s: %w", siteID, err)
	}

	found, err := tx.Build.Query().
		Where(build.IDEQ(buildID), build.SiteIDEQ(siteID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get build %s: %w", buildID, err)
	}
	if found.Status != build.StatusFailed {
		return nil, ErrInvalidTransition
	}

	if err := assertSlotFree(ctx, tx, siteID); err != nil {
		return nil, err
	}

	// checkpoint_phase is left intact: the engine skips completed
	// phases and re-enters at the one that failed. Progress counters
	// restart from zero with the new attempt.
	err = tx.Build.UpdateOneID(buildID).
		SetStatus(build.StatusQueued).
		ClearErrorPhase().
		ClearErrorStep().
		ClearErrorMessage().
		SetErrorRetryable(false).
		ClearCompletedAt().
		SetPagesTotal(0).
		SetPagesProcessed(0).
		AddRetryCount(1).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reset build %s for retry: %w", buildID, err)
	}

	jobID := NewID("job")
	_, err = tx.Job.Create().
		SetID(jobID).
		SetKind(job.KindBuild).
		SetSiteID(siteID).
		SetPayload(map[string]any{"build_id": buildID, "retry": true}).
		SetStatus(job.StatusReady).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue retry job: %w", err)
	}

	err = tx.Site.UpdateOneID(siteID).
		SetLastBuildID(buildID).
		SetLastBuildStatus(site.LastBuildStatusQueued).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update site build pointer: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit retry: %w", err)
	}

	return &models.TriggerBuildResponse{
		BuildID: buildID,
		JobID:   jobID,
		Status:  string(build.StatusQueued),
	}, nil
}

func isTerminalBuildStatus(status build.Status) bool {
	switch status {
	case build.StatusSuccess, build.StatusFailed, build.StatusCancelled:
		return true
	default:
		return false
	}
}
