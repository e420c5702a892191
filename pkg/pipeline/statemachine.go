package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/metrics-lab/staticpress/ent"
	"github.com/metrics-lab/staticpress/ent/build"
	"github.com/metrics-lab/staticpress/pkg/services"
)

// validTransitions is the build status transition table. The engine is
// the single writer of builds.status once a job is claimed; anything
// not listed here is rejected with ErrInvalidTransition.
var validTransitions = map[build.Status][]build.Status{
	// A fresh build starts at crawl; a re-queued retry carrying a
	// checkpoint re-enters mid-pipeline at the phase that failed.
	build.StatusQueued:     {build.StatusCrawling, build.StatusOptimizing, build.StatusDeploying, build.StatusCancelled},
	build.StatusCrawling:   {build.StatusOptimizing, build.StatusDeploying, build.StatusFailed, build.StatusCancelled},
	build.StatusOptimizing: {build.StatusDeploying, build.StatusFailed, build.StatusCancelled},
	build.StatusDeploying:  {build.StatusSuccess, build.StatusFailed, build.StatusCancelled},
	// A queue-level retry re-runs a build the engine already marked
	// failed; it also re-enters at the checkpointed phase.
	build.StatusFailed: {build.StatusCrawling, build.StatusOptimizing, build.StatusDeploying, build.StatusCancelled},
}

// CanTransition reports whether from -> to is a legal status change.
func CanTransition(from, to build.Status) bool {
	if from == to {
		return true
	}
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether a build status accepts no further
// transitions from the engine.
func IsTerminal(s build.Status) bool {
	return s == build.StatusSuccess || s == build.StatusCancelled
}

// transition moves a build to a new status, stamping started_at on
// leaving queued and completed_at on reaching a terminal status.
func transition(ctx context.Context, client *ent.Client, b *ent.Build, to build.Status) (*ent.Build, error) {
	if b.Status == to {
		return b, nil
	}
	if !CanTransition(b.Status, to) {
		return nil, fmt.Errorf("%w: build %s cannot move %s -> %s",
			services.ErrInvalidTransition, b.ID, b.Status, to)
	}

	upd := client.Build.UpdateOneID(b.ID).SetStatus(to)
	now := time.Now()
	if b.Status == build.StatusQueued {
		upd.SetStartedAt(now)
	}
	if to == build.StatusSuccess || to == build.StatusFailed || to == build.StatusCancelled {
		upd.SetCompletedAt(now)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to transition build %s to %s: %w", b.ID, to, err)
	}
	return updated, nil
}
