package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/metrics-lab/staticpress/ent"
	"github.com/metrics-lab/staticpress/ent/job"
	"github.com/metrics-lab/staticpress/pkg/config"
	"github.com/metrics-lab/staticpress/pkg/metrics"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes jobs.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	config   *config.QueueConfig
	executor JobExecutor
	pool     SiteRegistry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentJobID  string
	jobsProcessed int
	lastActivity  time.Time
}

// SiteRegistry is the subset of WorkerPool used by Worker to register
// the cancel function of the site it is working on.
type SiteRegistry interface {
	RegisterSite(siteID string, cancel context.CancelFunc)
	UnregisterSite(siteID string)
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, executor JobExecutor, pool SiteRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		executor:     executor,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        string(w.status),
		CurrentJobID:  w.currentJobID,
		JobsProcessed: w.jobsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoJobsAvailable) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing job", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess claims the next ready job and runs it to a terminal
// acknowledgement.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	claimed, err := w.reserveNextJob(ctx)
	if err != nil {
		return err
	}

	log := slog.With("job_id", claimed.ID, "kind", claimed.Kind, "site_id", claimed.SiteID, "worker_id", w.id)
	log.Info("Job reserved")

	w.setStatus(WorkerStatusWorking, claimed.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 1. Job context bounded by the lease; a heartbeat extends the
	//    lease while execution makes progress.
	jobCtx, cancelJob := context.WithCancel(ctx)
	defer cancelJob()

	// 2. Register cancel under the site id for API-triggered cancellation.
	w.pool.RegisterSite(claimed.SiteID, cancelJob)
	defer w.pool.UnregisterSite(claimed.SiteID)

	// 3. Start lease heartbeat.
	heartbeatCtx, cancelHeartbeat := context.WithCancel(jobCtx)
	go w.runHeartbeat(heartbeatCtx, claimed.ID)

	// 4. Execute.
	started := time.Now()
	result := w.executor.Execute(jobCtx, claimed)
	cancelHeartbeat()

	// Nil-guard: synthesize a safe result if the executor returned nil.
	if result == nil {
		if errors.Is(jobCtx.Err(), context.Canceled) {
			result = &ExecutionResult{Status: job.StatusCancelled, Error: context.Canceled}
		} else {
			result = &ExecutionResult{
				Status: job.StatusFailed,
				Error:  fmt.Errorf("executor returned nil result"),
			}
		}
	}
	if result.Status == "" && errors.Is(jobCtx.Err(), context.Canceled) {
		result = &ExecutionResult{Status: job.StatusCancelled, Error: context.Canceled}
	}

	// 5. Acknowledge terminal outcome (background context — job ctx may
	//    be cancelled).
	if err := w.ack(context.Background(), claimed, result); err != nil {
		log.Error("Failed to acknowledge job", "error", err)
		return err
	}

	w.mu.Lock()
	w.jobsProcessed++
	w.mu.Unlock()

	metrics.JobDuration.
		WithLabelValues(string(claimed.Kind), string(result.Status)).
		Observe(time.Since(started).Seconds())

	log.Info("Job processing complete", "status", result.Status)
	return nil
}

// reserveNextJob atomically claims the oldest ready job using
// FOR UPDATE SKIP LOCKED and stamps its visibility lease.
func (w *Worker) reserveNextJob(ctx context.Context) (*ent.Job, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// SELECT ... FOR UPDATE SKIP LOCKED, FIFO within the ready set.
	claimed, err := tx.Job.Query().
		Where(
			job.StatusEQ(job.StatusReady),
			job.NotBeforeLTE(time.Now()),
		).
		Order(ent.Asc(job.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoJobsAvailable
		}
		return nil, fmt.Errorf("failed to query ready job: %w", err)
	}

	now := time.Now()
	claimed, err = claimed.Update().
		SetStatus(job.StatusReserved).
		SetPodID(w.podID).
		SetLeaseExpiresAt(now.Add(w.config.LeaseDuration)).
		AddAttempts(1).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reserve job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit reservation: %w", err)
	}
	return claimed, nil
}

// runHeartbeat periodically extends the job's visibility lease so it
// is not reclaimed while execution is making progress.
func (w *Worker) runHeartbeat(ctx context.Context, jobID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.Job.UpdateOneID(jobID).
				SetLeaseExpiresAt(time.Now().Add(w.config.LeaseDuration)).
				Exec(ctx); err != nil {
				slog.Warn("Lease heartbeat failed", "job_id", jobID, "error", err)
			}
		}
	}
}

// ack writes the job's terminal outcome. A retryable failure below the
// retry limit re-enters the ready set after exponential backoff.
func (w *Worker) ack(ctx context.Context, claimed *ent.Job, result *ExecutionResult) error {
	update := w.client.Job.UpdateOneID(claimed.ID).
		ClearLeaseExpiresAt()

	switch {
	case result.Status == job.StatusFailed && result.Retryable && claimed.Attempts < claimed.MaxRetries:
		delay := retryDelay(w.config, claimed.Attempts)
		update.
			SetStatus(job.StatusReady).
			SetNotBefore(time.Now().Add(delay))
		if result.Error != nil {
			update.SetLastError(result.Error.Error())
		}
		slog.Info("Job re-enqueued with backoff",
			"job_id", claimed.ID, "attempt", claimed.Attempts, "delay", delay)
	default:
		update.SetStatus(result.Status)
		if result.Error != nil {
			update.SetLastError(result.Error.Error())
		}
	}

	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to ack job %s: %w", claimed.ID, err)
	}
	return nil
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, jobID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentJobID = jobID
	w.lastActivity = time.Now()
}
