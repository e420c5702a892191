// Package queue provides the durable job queue and worker pool that
// drive builds and agent runs. Jobs are database rows claimed with
// FOR UPDATE SKIP LOCKED; a visibility lease returns jobs to the ready
// set when their worker dies.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/metrics-lab/staticpress/ent"
	"github.com/metrics-lab/staticpress/ent/job"
)

// Sentinel errors for queue operations.
var (
	// ErrNoJobsAvailable indicates no ready jobs are in the queue.
	ErrNoJobsAvailable = errors.New("no jobs available")
)

// JobExecutor processes one claimed job to completion.
//
// The executor owns the domain lifecycle internally: it loads the
// build or agent run named in the job payload, drives it, and writes
// all intermediate state progressively. The worker only handles
// claiming, lease heartbeat, terminal acknowledgement, and retry
// scheduling.
type JobExecutor interface {
	Execute(ctx context.Context, j *ent.Job) *ExecutionResult
}

// ExecutionResult is lightweight — just the terminal outcome. All
// intermediate state was already written by the executor.
type ExecutionResult struct {
	Status    job.Status // succeeded, failed, cancelled
	Error     error      // error details (if failed)
	Retryable bool       // whether a failure should re-enqueue with backoff
}

// KindDispatcher routes jobs to the executor for their kind.
type KindDispatcher struct {
	Build JobExecutor
	Agent JobExecutor
}

// Execute dispatches on the job kind.
func (d *KindDispatcher) Execute(ctx context.Context, j *ent.Job) *ExecutionResult {
	switch j.Kind {
	case job.KindBuild:
		return d.Build.Execute(ctx, j)
	case job.KindAgent:
		return d.Agent.Execute(ctx, j)
	default:
		return &ExecutionResult{
			Status: job.StatusFailed,
			Error:  errors.New("unknown job kind"),
		}
	}
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy       bool           `json:"is_healthy"`
	DBReachable     bool           `json:"db_reachable"`
	DBError         string         `json:"db_error,omitempty"`
	PodID           string         `json:"pod_id"`
	ActiveWorkers   int            `json:"active_workers"`
	TotalWorkers    int            `json:"total_workers"`
	QueueDepth      int            `json:"queue_depth"`
	WorkerStats     []WorkerHealth `json:"worker_stats"`
	LastLeaseScan   time.Time      `json:"last_lease_scan"`
	LeasesReclaimed int            `json:"leases_reclaimed"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentJobID  string    `json:"current_job_id,omitempty"`
	JobsProcessed int       `json:"jobs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
