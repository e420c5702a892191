// Package cleanup prunes on-disk build artifacts past the retention
// window. Database rows are kept; only the workspace directories under
// {data-root}/builds are reclaimed.
package cleanup

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-co-op/gocron/v2"

	"github.com/metrics-lab/staticpress/ent"
	entbuild "github.com/metrics-lab/staticpress/ent/build"
	"github.com/metrics-lab/staticpress/pkg/config"
)

// Sweeper runs the periodic artifact retention sweep.
type Sweeper struct {
	client    *ent.Client
	cfg       *config.RetentionConfig
	dataRoot  string
	scheduler gocron.Scheduler
	logger    *slog.Logger
}

// NewSweeper creates the retention sweeper.
func NewSweeper(client *ent.Client, cfg *config.RetentionConfig, dataRoot string) (*Sweeper, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	return &Sweeper{
		client:    client,
		cfg:       cfg,
		dataRoot:  dataRoot,
		scheduler: scheduler,
		logger:    slog.With("component", "cleanup"),
	}, nil
}

// Start schedules the sweep and begins the scheduler. The first sweep
// runs one interval after startup.
func (s *Sweeper) Start() error {
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(s.cfg.SweepInterval),
		gocron.NewTask(s.sweep),
		gocron.WithName("artifact-retention"),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule retention sweep: %w", err)
	}
	s.scheduler.Start()
	s.logger.Info("Retention sweep scheduled",
		"keep_successful_builds", s.cfg.KeepSuccessfulBuilds,
		"interval", s.cfg.SweepInterval)
	return nil
}

// Stop shuts the scheduler down, waiting for a running sweep.
func (s *Sweeper) Stop() {
	if err := s.scheduler.Shutdown(); err != nil {
		s.logger.Warn("Scheduler shutdown failed", "error", err)
	}
}

// sweep prunes artifacts for every site.
func (s *Sweeper) sweep() {
	ctx := context.Background()
	siteIDs, err := s.client.Site.Query().IDs(ctx)
	if err != nil {
		s.logger.Error("Retention sweep failed to list sites", "error", err)
		return
	}

	pruned := 0
	for _, siteID := range siteIDs {
		n, err := s.SweepSite(ctx, siteID)
		if err != nil {
			s.logger.Error("Retention sweep failed for site", "site_id", siteID, "error", err)
			continue
		}
		pruned += n
	}
	if pruned > 0 {
		s.logger.Info("Retention sweep complete", "pruned_dirs", pruned)
	}
}

// SweepSite prunes one site's artifacts: every terminal build older
// than the newest KeepSuccessfulBuilds successful builds loses its
// directory. Non-terminal builds are never touched.
func (s *Sweeper) SweepSite(ctx context.Context, siteID string) (int, error) {
	keep, err := s.client.Build.Query().
		Where(entbuild.SiteIDEQ(siteID), entbuild.StatusEQ(entbuild.StatusSuccess)).
		Order(ent.Desc(entbuild.FieldCreatedAt)).
		Limit(s.cfg.KeepSuccessfulBuilds).
		IDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list retained builds: %w", err)
	}
	retained := make(map[string]bool, len(keep))
	for _, id := range keep {
		retained[id] = true
	}

	// Only terminal builds are candidates; a running build's directory
	// is in active use.
	candidates, err := s.client.Build.Query().
		Where(
			entbuild.SiteIDEQ(siteID),
			entbuild.StatusIn(entbuild.StatusSuccess, entbuild.StatusFailed, entbuild.StatusCancelled),
		).
		IDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list prune candidates: %w", err)
	}

	pruned := 0
	for _, buildID := range candidates {
		if retained[buildID] {
			continue
		}
		dir := filepath.Join(s.dataRoot, "builds", buildID)
		if _, err := os.Stat(dir); err != nil {
			continue // already gone
		}
		if err := os.RemoveAll(dir); err != nil {
			s.logger.Warn("Failed to prune build artifacts", "build_id", buildID, "error", err)
			continue
		}
		pruned++
	}
	return pruned, nil
}
