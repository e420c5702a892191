package queue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/metrics-lab/staticpress/ent"
	"github.com/metrics-lab/staticpress/ent/build"
	"github.com/metrics-lab/staticpress/ent/job"
	"github.com/metrics-lab/staticpress/ent/site"
)

// runLeaseReclaim periodically returns expired reserved jobs to the
// ready set. All pods run this independently — the update is
// idempotent and guarded by the expiry predicate.
func (p *WorkerPool) runLeaseReclaim(ctx context.Context) {
	ticker := time.NewTicker(p.config.ExpiredScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.reclaimExpiredLeases(ctx); err != nil {
				slog.Error("Lease reclaim failed", "error", err)
			}
		}
	}
}

// reclaimExpiredLeases moves reserved jobs whose lease has lapsed back
// to ready. The next worker to claim one resumes from the build's
// checkpoint instead of starting over.
func (p *WorkerPool) reclaimExpiredLeases(ctx context.Context) error {
	n, err := p.client.Job.Update().
		Where(
			job.StatusEQ(job.StatusReserved),
			job.LeaseExpiresAtNotNil(),
			job.LeaseExpiresAtLT(time.Now()),
		).
		SetStatus(job.StatusReady).
		ClearLeaseExpiresAt().
		ClearPodID().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to reclaim expired leases: %w", err)
	}

	p.leases.mu.Lock()
	p.leases.lastLeaseScan = time.Now()
	p.leases.leasesReclaimed += n
	p.leases.mu.Unlock()

	if n > 0 {
		slog.Warn("Reclaimed expired job leases", "count", n)
	}
	return nil
}

// CancelStale marks every non-terminal build and job for a site as
// cancelled and returns the number of builds affected. Recovery hatch
// for a worker that crashed without releasing its lease.
func CancelStale(ctx context.Context, client *ent.Client, siteID string) (int, error) {
	tx, err := client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	cancelledBuilds, err := tx.Build.Update().
		Where(
			build.SiteIDEQ(siteID),
			build.StatusIn(build.StatusQueued, build.StatusCrawling, build.StatusOptimizing, build.StatusDeploying),
		).
		SetStatus(build.StatusCancelled).
		SetCompletedAt(now).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to cancel stale builds: %w", err)
	}

	cancelledJobs, err := tx.Job.Update().
		Where(
			job.SiteIDEQ(siteID),
			job.StatusIn(job.StatusReady, job.StatusReserved),
		).
		SetStatus(job.StatusCancelled).
		ClearLeaseExpiresAt().
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to cancel stale jobs: %w", err)
	}

	if cancelledBuilds > 0 {
		err = tx.Site.UpdateOneID(siteID).
			SetLastBuildStatus(site.LastBuildStatusCancelled).
			Exec(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to update site build pointer: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit stale cancellation: %w", err)
	}

	slog.Info("Cancelled stale work for site",
		"site_id", siteID,
		"builds", cancelledBuilds,
		"jobs", cancelledJobs)
	return cancelledBuilds, nil
}

// CleanupStartupOrphans returns jobs this pod reserved before a crash
// to the ready set. Called once during startup, before the worker pool
// begins processing; the resumed jobs re-enter execution from their
// build or agent checkpoint.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	n, err := client.Job.Update().
		Where(
			job.StatusEQ(job.StatusReserved),
			job.PodIDEQ(podID),
		).
		SetStatus(job.StatusReady).
		ClearLeaseExpiresAt().
		ClearPodID().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to release startup orphans: %w", err)
	}
	if n > 0 {
		slog.Warn("Released jobs reserved by a previous run of this pod",
			"pod_id", podID,
			"count", n)
	}
	return nil
}
