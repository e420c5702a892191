package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/metrics-lab/staticpress/ent"
	"github.com/metrics-lab/staticpress/ent/agentrun"
	"github.com/metrics-lab/staticpress/ent/job"
	"github.com/metrics-lab/staticpress/pkg/queue"
	"github.com/metrics-lab/staticpress/pkg/upstream"
)

// Executor adapts the runner to the queue.
type Executor struct {
	client *ent.Client
	runner *Runner
	logger *slog.Logger
}

// NewExecutor creates the executor for agent jobs.
func NewExecutor(client *ent.Client, runner *Runner) *Executor {
	return &Executor{
		client: client,
		runner: runner,
		logger: slog.With("component", "agent.executor"),
	}
}

// Execute runs one agent job. A cancelled context leaves the run
// resumable: the checkpoint and workspace stay in place and the run
// phase is preserved, so POST .../resume can pick it up.
func (x *Executor) Execute(ctx context.Context, j *ent.Job) *queue.ExecutionResult {
	runID, _ := j.Payload["run_id"].(string)
	if runID == "" {
		return &queue.ExecutionResult{
			Status: job.StatusFailed,
			Error:  fmt.Errorf("job %s has no run_id in payload", j.ID),
		}
	}

	err := x.runner.Run(ctx, runID)
	if err == nil {
		return &queue.ExecutionResult{Status: job.StatusSucceeded}
	}

	if errors.Is(err, context.Canceled) {
		x.logger.Info("Agent run interrupted, checkpoint retained", "run_id", runID)
		return &queue.ExecutionResult{Status: job.StatusCancelled, Error: err}
	}

	retryable := upstream.IsTransient(err)
	if retryable {
		// The queue will re-deliver; reopen the run so the next attempt
		// resumes from the checkpoint instead of seeing a failed phase.
		wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
		defer cancel()
		if uerr := x.client.AgentRun.UpdateOneID(runID).
			SetPhase(agentrun.PhaseAnalyzing).
			ClearCompletedAt().
			Exec(wctx); uerr != nil {
			x.logger.Warn("Failed to reopen run for retry", "run_id", runID, "error", uerr)
		}
	}
	x.logger.Error("Agent run failed", "run_id", runID, "retryable", retryable, "error", err)
	return &queue.ExecutionResult{Status: job.StatusFailed, Error: err, Retryable: retryable}
}
