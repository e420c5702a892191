package services

import (
	"context"
	"fmt"
	"time"

	"github.com/metrics-lab/staticpress/ent"
	"github.com/metrics-lab/staticpress/ent/agentrun"
	"github.com/metrics-lab/staticpress/ent/job"
	"github.com/metrics-lab/staticpress/ent/site"
	"github.com/metrics-lab/staticpress/pkg/models"
)

// AgentService manages agent run lifecycle: start, stop, resume, report
type AgentService struct {
	client    *ent.Client
	canceller RunCanceller
}

// NewAgentService creates a new AgentService
func NewAgentService(client *ent.Client) *AgentService {
	return &AgentService{client: client}
}

// SetCanceller wires the worker pool's cancel registry.
func (s *AgentService) SetCanceller(c RunCanceller) {
	s.canceller = c
}

// StartRun creates an agent run and its queue job in one transaction,
// asserting the per-site slot.
func (s *AgentService) StartRun(httpCtx context.Context, siteID string, req models.StartAgentRequest) (*models.StartAgentResponse, error) {
	maxIterations := req.MaxIterations
	if maxIterations <= 0 {
		maxIterations = 10
	}
	if maxIterations > 25 {
		return nil, NewValidationError("max_iterations", "must be at most 25")
	}

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

	if err := assertSlotFree(ctx, tx, siteID); err != nil {
		return nil, err
	}

	runID := NewID("run")
	_, err = tx.AgentRun.Create().
		SetID(runID).
		SetSiteID(siteID).
		SetPhase(agentrun.PhaseAnalyzing).
		SetMaxIterations(maxIterations).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create agent run: %w", err)
	}

	jobID := NewID("job")
	_, err = tx.Job.Create().
		SetID(jobID).
		SetKind(job.KindAgent).
		SetSiteID(siteID).
		SetPayload(map[string]any{"run_id": runID}).
		SetStatus(job.StatusReady).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue agent job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit agent start: %w", err)
	}

	return &models.StartAgentResponse{
		RunID:  runID,
		JobID:  jobID,
		Status: string(agentrun.PhaseAnalyzing),
	}, nil
}

// GetRun returns an agent run by id, scoped to its site
func (s *AgentService) GetRun(ctx context.Context, siteID, runID string) (*ent.AgentRun, error) {
	found, err := s.client.AgentRun.Query().
		Where(agentrun.IDEQ(runID), agentrun.SiteIDEQ(siteID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agent run %s: %w", runID, err)
	}
	return found, nil
}

// LatestRun returns the site's most recent agent run
func (s *AgentService) LatestRun(ctx context.Context, siteID string) (*ent.AgentRun, error) {
	found, err := s.client.AgentRun.Query().
		Where(agentrun.SiteIDEQ(siteID)).
		Order(ent.Desc(agentrun.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest agent run for site %s: %w", siteID, err)
	}
	return found, nil
}

// Report builds the final report for the site's most recent run
func (s *AgentService) Report(ctx context.Context, siteID string) (*models.AgentReportResponse, error) {
	run, err := s.LatestRun(ctx, siteID)
	if err != nil {
		return nil, err
	}
	report := &models.AgentReportResponse{
		RunID:           run.ID,
		TotalIterations: run.Iteration,
		Phase:           string(run.Phase),
		PhaseTimings:    run.PhaseTimings,
	}
	if run.FinalVerdict != nil {
		report.FinalVerdict = *run.FinalVerdict
	}
	if run.LastError != nil {
		report.LastError = *run.LastError
	}
	return report, nil
}

// StopRun requests cooperative termination of a running agent loop.
// The loop observes the signal at its next iteration boundary, writes
// a final checkpoint, and exits with its current phase preserved.
func (s *AgentService) StopRun(httpCtx context.Context, siteID, runID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	run, err := s.GetRun(ctx, siteID, runID)
	if err != nil {
		return err
	}
	if isTerminalAgentPhase(run.Phase) {
		return ErrInvalidTransition
	}

	if s.canceller != nil && s.canceller.CancelSite(siteID) {
		return nil
	}

	// Not currently executing: cancel the queued job so it never starts.
	_, err = s.client.Job.Update().
		Where(job.SiteIDEQ(siteID), job.KindEQ(job.KindAgent), job.StatusIn(job.StatusReady, job.StatusReserved)).
		SetStatus(job.StatusCancelled).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to cancel agent job for site %s: %w", siteID, err)
	}
	err = s.client.AgentRun.UpdateOneID(runID).
		SetPhase(agentrun.PhaseFailed).
		SetLastError("stopped by user before execution").
		SetCompletedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to finalize stopped run %s: %w", runID, err)
	}
	return nil
}

// ResumeRun re-enqueues an interrupted agent run. Resume is gated on
// the checkpoint and on the workspace directory still existing; the
// executor falls back to a fresh start when the workspace is gone.
func (s *AgentService) ResumeRun(httpCtx context.Context, siteID, runID string) (*models.StartAgentResponse, error) {
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

	run, err := tx.AgentRun.Query().
		Where(agentrun.IDEQ(runID), agentrun.SiteIDEQ(siteID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agent run %s: %w", runID, err)
	}
	if isTerminalAgentPhase(run.Phase) {
		return nil, ErrInvalidTransition
	}

	// The run itself holds the slot; only reject when a different
	// build or run is active.
	activeJobs, err := tx.Job.Query().
		Where(job.SiteIDEQ(siteID), job.StatusIn(job.StatusReady, job.StatusReserved)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count active jobs: %w", err)
	}
	if activeJobs > 0 {
		return nil, ErrAlreadyInProgress
	}

	jobID := NewID("job")
	_, err = tx.Job.Create().
		SetID(jobID).
		SetKind(job.KindAgent).
		SetSiteID(siteID).
		SetPayload(map[string]any{"run_id": runID, "resume": true}).
		SetStatus(job.StatusReady).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue resume job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit resume: %w", err)
	}

	return &models.StartAgentResponse{
		RunID:  runID,
		JobID:  jobID,
		Status: string(run.Phase),
	}, nil
}

func isTerminalAgentPhase(phase agentrun.Phase) bool {
	switch phase {
	case agentrun.PhaseComplete, agentrun.PhaseFailed:
		return true
	default:
		return false
	}
}
