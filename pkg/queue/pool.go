package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/metrics-lab/staticpress/ent"
	"github.com/metrics-lab/staticpress/ent/job"
	"github.com/metrics-lab/staticpress/pkg/config"
	"github.com/metrics-lab/staticpress/pkg/metrics"
)

// WorkerPool manages a pool of queue workers plus the background lease
// reclaim task. It also keeps the per-site cancel registry used for
// API-triggered cancellation.
type WorkerPool struct {
	podID    string
	client   *ent.Client
	config   *config.QueueConfig
	executor JobExecutor
	workers  []*Worker
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Site cancel registry: site_id → cancel function
	activeSites map[string]context.CancelFunc
	mu          sync.RWMutex
	started     bool

	// Lease reclaim state
	leases leaseState
}

type leaseState struct {
	mu              sync.Mutex
	lastLeaseScan   time.Time
	leasesReclaimed int
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(podID string, client *ent.Client, cfg *config.QueueConfig, executor JobExecutor) *WorkerPool {
	return &WorkerPool{
		podID:       podID,
		client:      client,
		config:      cfg,
		executor:    executor,
		workers:     make([]*Worker, 0, cfg.WorkerCount),
		stopCh:      make(chan struct{}),
		activeSites: make(map[string]context.CancelFunc),
	}
}

// Start spawns worker goroutines and the lease reclaim background task.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "pod_id", p.podID, "worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.client, p.config, p.executor, p)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runLeaseReclaim(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish.
// Workers finish their current jobs before exiting (graceful shutdown).
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	active := p.getActiveSiteIDs()
	if len(active) > 0 {
		slog.Info("Waiting for active jobs to complete",
			"count", len(active),
			"site_ids", active)
	}

	for _, worker := range p.workers {
		worker.Stop()
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// RegisterSite stores a cancel function for manual cancellation.
func (p *WorkerPool) RegisterSite(siteID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeSites[siteID] = cancel
}

// UnregisterSite removes the cancel function when processing ends.
func (p *WorkerPool) UnregisterSite(siteID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeSites, siteID)
}

// CancelSite triggers context cancellation for the job currently
// running for a site on this pod. Returns true if one was found.
func (p *WorkerPool) CancelSite(siteID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.activeSites[siteID]; ok {
		cancel()
		return true
	}
	return false
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.client.Job.Query().
		Where(job.StatusEQ(job.StatusReady)).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"pod_id", p.podID,
			"error", errQ)
	} else {
		metrics.QueueDepth.Set(float64(queueDepth))
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	dbHealthy := errQ == nil
	isHealthy := len(p.workers) > 0 && dbHealthy

	p.leases.mu.Lock()
	lastLeaseScan := p.leases.lastLeaseScan
	leasesReclaimed := p.leases.leasesReclaimed
	p.leases.mu.Unlock()

	var dbError string
	if errQ != nil {
		dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
	}

	return &PoolHealth{
		IsHealthy:       isHealthy,
		DBReachable:     dbHealthy,
		DBError:         dbError,
		PodID:           p.podID,
		ActiveWorkers:   activeWorkers,
		TotalWorkers:    len(p.workers),
		QueueDepth:      queueDepth,
		WorkerStats:     workerStats,
		LastLeaseScan:   lastLeaseScan,
		LeasesReclaimed: leasesReclaimed,
	}
}

// getActiveSiteIDs returns site ids of currently executing jobs (for logging).
func (p *WorkerPool) getActiveSiteIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	sites := make([]string, 0, len(p.activeSites))
	for id := range p.activeSites {
		sites = append(sites, id)
	}
	return sites
}
