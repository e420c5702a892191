package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/metrics-lab/staticpress/ent"
	entbuild "github.com/metrics-lab/staticpress/ent/build"
	"github.com/metrics-lab/staticpress/ent/job"
	entsite "github.com/metrics-lab/staticpress/ent/site"
	"github.com/metrics-lab/staticpress/pkg/events"
	"github.com/metrics-lab/staticpress/pkg/metrics"
	"github.com/metrics-lab/staticpress/pkg/queue"
	"github.com/metrics-lab/staticpress/pkg/upstream"
)

// BuildExecutor adapts the engine to the queue: it loads the build
// named in the job payload, runs it, and writes the terminal state.
type BuildExecutor struct {
	client *ent.Client
	engine *Engine
	bus    *events.Bus
	logger *slog.Logger
}

// NewBuildExecutor creates the executor for build jobs.
func NewBuildExecutor(client *ent.Client, engine *Engine, bus *events.Bus) *BuildExecutor {
	return &BuildExecutor{
		client: client,
		engine: engine,
		bus:    bus,
		logger: slog.With("component", "pipeline.executor"),
	}
}

// Execute runs one build job to a terminal state.
func (x *BuildExecutor) Execute(ctx context.Context, j *ent.Job) *queue.ExecutionResult {
	buildID, _ := j.Payload["build_id"].(string)
	if buildID == "" {
		return &queue.ExecutionResult{
			Status: job.StatusFailed,
			Error:  fmt.Errorf("job %s has no build_id in payload", j.ID),
		}
	}

	err := x.engine.Run(ctx, buildID)
	if err == nil {
		metrics.BuildsCompleted.WithLabelValues(string(entbuild.StatusSuccess)).Inc()
		return &queue.ExecutionResult{Status: job.StatusSucceeded}
	}

	// Terminal bookkeeping must not die with the job context.
	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
	defer cancel()

	if errors.Is(err, context.Canceled) {
		x.markTerminal(wctx, j.SiteID, buildID, entbuild.StatusCancelled, "cancelled by user")
		metrics.BuildsCompleted.WithLabelValues(string(entbuild.StatusCancelled)).Inc()
		return &queue.ExecutionResult{Status: job.StatusCancelled, Error: err}
	}

	retryable := upstream.IsTransient(err)
	x.markTerminal(wctx, j.SiteID, buildID, entbuild.StatusFailed, err.Error())
	metrics.BuildsCompleted.WithLabelValues(string(entbuild.StatusFailed)).Inc()
	x.logger.Error("Build failed", "build_id", buildID, "retryable", retryable, "error", err)
	return &queue.ExecutionResult{Status: job.StatusFailed, Error: err, Retryable: retryable}
}

// markTerminal moves the build and the site's denormalized pointer to
// a terminal state.
func (x *BuildExecutor) markTerminal(ctx context.Context, siteID, buildID string, status entbuild.Status, message string) {
	b, err := x.client.Build.Get(ctx, buildID)
	if err != nil {
		x.logger.Error("Failed to load build for terminal update", "build_id", buildID, "error", err)
		return
	}
	if !IsTerminal(b.Status) && b.Status != status {
		if _, err := transition(ctx, x.client, b, status); err != nil {
			x.logger.Error("Failed to mark build terminal", "build_id", buildID, "status", status, "error", err)
			return
		}
	}

	if err := x.client.Site.UpdateOneID(siteID).
		SetLastBuildID(buildID).
		SetLastBuildStatus(entsite.LastBuildStatus(status)).
		Exec(ctx); err != nil {
		x.logger.Warn("Failed to update site build pointer", "site_id", siteID, "error", err)
	}

	x.bus.Publish(events.BuildTopic(siteID), events.Event{
		Type:    events.TypeDone,
		Payload: events.DonePayload{Status: string(status), Message: message, Timestamp: events.Now()},
	})
}
