package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/metrics-lab/staticpress/ent"
	entbuild "github.com/metrics-lab/staticpress/ent/build"
	"github.com/metrics-lab/staticpress/pkg/browser"
	"github.com/metrics-lab/staticpress/pkg/config"
	"github.com/metrics-lab/staticpress/pkg/deploy"
	"github.com/metrics-lab/staticpress/pkg/events"
	"github.com/metrics-lab/staticpress/pkg/measure"
	"github.com/metrics-lab/staticpress/pkg/metrics"
	"github.com/metrics-lab/staticpress/pkg/settings"
	"github.com/metrics-lab/staticpress/pkg/transform"
	"github.com/metrics-lab/staticpress/pkg/upstream"
)

// AlertEvaluator receives every measurement row for threshold checks.
// Evaluation failures never propagate into the build.
type AlertEvaluator interface {
	Evaluate(ctx context.Context, m *ent.MeasurementComparison)
}

// Engine runs builds through the eight pipeline phases. It is the
// single writer of builds.status while a job is claimed.
type Engine struct {
	client     *ent.Client
	cfg        *config.PipelineConfig
	bus        *events.Bus
	resolver   *settings.Resolver
	renderer   browser.Renderer
	transcoder transform.ImageTranscoder
	cssProc    transform.CSSProcessor
	jsMin      transform.JSMinifier
	deployer   deploy.Deployer
	measurer   measure.Measurer
	alerts     AlertEvaluator
	fetcher    *http.Client
	logger     *slog.Logger
}

// NewEngine wires a pipeline engine from its collaborators.
func NewEngine(
	client *ent.Client,
	cfg *config.PipelineConfig,
	bus *events.Bus,
	resolver *settings.Resolver,
	renderer browser.Renderer,
	deployer deploy.Deployer,
	measurer measure.Measurer,
	alerts AlertEvaluator,
) *Engine {
	return &Engine{
		client:     client,
		cfg:        cfg,
		bus:        bus,
		resolver:   resolver,
		renderer:   renderer,
		transcoder: transform.NewCodecTranscoder(),
		cssProc:    transform.NewCSSProcessor(),
		jsMin:      transform.NewJSMinifier(),
		deployer:   deployer,
		measurer:   measurer,
		alerts:     alerts,
		fetcher:    &http.Client{Timeout: 2 * time.Minute},
		logger:     slog.With("component", "pipeline"),
	}
}

// byteStats accumulates per-class input and output sizes.
type byteStats struct {
	original  map[string]int64
	optimized map[string]int64
}

func newByteStats() *byteStats {
	return &byteStats{original: map[string]int64{}, optimized: map[string]int64{}}
}

func (s *byteStats) add(class string, before, after int64) {
	s.original[class] += before
	s.optimized[class] += after
}

// buildCtx carries one build's state across phases.
type buildCtx struct {
	build      *ent.Build
	site       *ent.Site
	ws         *Workspace
	settings   map[string]any
	inv        *Inventory
	prevOutput string
	stats      *byteStats
}

// PhaseError wraps a phase failure with its location in the pipeline.
type PhaseError struct {
	Phase string
	Err   error
}

func (e *PhaseError) Error() string { return fmt.Sprintf("phase %s: %v", e.Phase, e.Err) }
func (e *PhaseError) Unwrap() error { return e.Err }

// Run drives one build to a terminal state. A retried build resumes
// after its checkpoint phase when the workspace is still on disk;
// otherwise it restarts from crawl. The returned error is nil on
// success, context.Canceled on cooperative cancellation, and a
// *PhaseError otherwise.
func (e *Engine) Run(ctx context.Context, buildID string) error {
	b, err := e.client.Build.Get(ctx, buildID)
	if err != nil {
		return fmt.Errorf("failed to load build %s: %w", buildID, err)
	}
	if IsTerminal(b.Status) {
		e.logger.Info("Build already terminal, nothing to do", "build_id", buildID, "status", b.Status)
		return nil
	}
	site, err := b.QuerySite().Only(ctx)
	if err != nil {
		return fmt.Errorf("failed to load site for build %s: %w", buildID, err)
	}

	bc := &buildCtx{
		build: b,
		site:  site,
		ws:    NewWorkspace(e.cfg.DataRoot, buildID),
		stats: newByteStats(),
	}

	checkpoint := ""
	if b.CheckpointPhase != nil {
		checkpoint = *b.CheckpointPhase
	}
	if checkpoint != "" && !bc.ws.Exists() {
		e.logger.Warn("Checkpoint set but workspace missing, restarting from crawl",
			"build_id", buildID, "checkpoint", checkpoint)
		checkpoint = ""
		b, err = e.client.Build.UpdateOneID(buildID).ClearCheckpointPhase().Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to clear checkpoint: %w", err)
		}
		bc.build = b
	}
	if err := bc.ws.Prepare(); err != nil {
		return &PhaseError{Phase: PhaseCrawl, Err: err}
	}

	if err := e.prepareSettings(ctx, bc, checkpoint); err != nil {
		return &PhaseError{Phase: PhaseCrawl, Err: err}
	}
	bc.prevOutput = e.previousOutput(ctx, bc)

	for _, phase := range phasesAfter(checkpoint) {
		if err := e.runPhase(ctx, bc, phase); err != nil {
			return err
		}
	}
	return e.finalize(ctx, bc)
}

// runPhase executes one phase under its time budget, moving the build
// status and checkpointing on success.
func (e *Engine) runPhase(ctx context.Context, bc *buildCtx, phase string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b, err := transition(ctx, e.client, bc.build, phaseStatus[phase])
	if err != nil {
		return &PhaseError{Phase: phase, Err: err}
	}
	b, err = e.client.Build.UpdateOneID(b.ID).SetCurrentPhase(phase).Save(ctx)
	if err != nil {
		return &PhaseError{Phase: phase, Err: err}
	}
	bc.build = b

	e.bus.Publish(events.BuildTopic(bc.site.ID), events.Event{
		Type: events.TypePhase,
		Payload: events.PhasePayload{
			BuildID: b.ID, Status: string(b.Status), Phase: phase, Timestamp: events.Now(),
		},
	})
	e.bus.Publish(events.BuildTopic(bc.site.ID), events.Event{
		Type:    events.TypeStepStart,
		Payload: events.StepPayload{BuildID: b.ID, Phase: phase, Step: phase, Timestamp: events.Now()},
	})

	budget := e.cfg.PhaseTimeout(phase)
	phaseCtx, cancel := context.WithTimeout(ctx, budget)
	defer cancel()

	started := time.Now()
	err = e.dispatchPhase(phaseCtx, bc, phase)
	metrics.PhaseDuration.WithLabelValues(phase).Observe(time.Since(started).Seconds())

	if err != nil {
		// Cooperative cancellation from the pool is not a failure.
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if phaseCtx.Err() == context.DeadlineExceeded {
			err = upstream.Transient(fmt.Errorf("phase %s exceeded its %s budget", phase, budget))
		}
		return e.recordPhaseFailure(ctx, bc, phase, err)
	}

	b, err = e.client.Build.UpdateOneID(bc.build.ID).SetCheckpointPhase(phase).Save(ctx)
	if err != nil {
		return &PhaseError{Phase: phase, Err: err}
	}
	bc.build = b

	e.bus.Publish(events.BuildTopic(bc.site.ID), events.Event{
		Type: events.TypeStepComplete,
		Payload: events.StepPayload{
			BuildID: b.ID, Phase: phase, Step: phase,
			DurationMs: time.Since(started).Milliseconds(), Timestamp: events.Now(),
		},
	})

	// The crawl just produced the class inventory; re-derive settings
	// with the page-builder safe floor before any optimization runs.
	if phase == PhaseCrawl {
		if err := e.applySafeFloor(ctx, bc); err != nil {
			return &PhaseError{Phase: phase, Err: err}
		}
	}
	return nil
}

func (e *Engine) dispatchPhase(ctx context.Context, bc *buildCtx, phase string) error {
	switch phase {
	case PhaseCrawl:
		return e.runCrawl(ctx, bc)
	case PhaseImages:
		return e.runImages(ctx, bc)
	case PhaseCSS:
		return e.runCSS(ctx, bc)
	case PhaseJS:
		return e.runJS(ctx, bc)
	case PhaseHTML:
		return e.runHTML(ctx, bc)
	case PhaseFonts:
		return e.runFonts(ctx, bc)
	case PhaseDeploy:
		return e.runDeploy(ctx, bc)
	case PhaseMeasure:
		return e.runMeasure(ctx, bc)
	default:
		return fmt.Errorf("unknown phase %s", phase)
	}
}

// prepareSettings resolves the settings snapshot and, when resuming
// past crawl, reloads the persisted inventory.
func (e *Engine) prepareSettings(ctx context.Context, bc *buildCtx, checkpoint string) error {
	resolved, err := e.resolver.Resolve(ctx, bc.site.ID)
	if err != nil {
		return err
	}
	bc.settings = resolved

	if checkpoint != "" {
		inv, err := LoadInventory(bc.ws.InventoryPath())
		if err != nil {
			return fmt.Errorf("checkpoint %s unusable: %w", checkpoint, err)
		}
		bc.inv = inv
		bc.settings = settings.EnforceSafeFloor(bc.settings, inv.ClassNames)
	}

	b, err := e.client.Build.UpdateOneID(bc.build.ID).SetResolvedSettings(bc.settings).Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to snapshot settings: %w", err)
	}
	bc.build = b
	return nil
}

// applySafeFloor clamps purge aggressiveness after crawl produced the
// class inventory, re-snapshotting the effective settings.
func (e *Engine) applySafeFloor(ctx context.Context, bc *buildCtx) error {
	before := stringSetting(bc.settings, "css", "purgeAggressiveness", "standard")
	bc.settings = settings.EnforceSafeFloor(bc.settings, bc.inv.ClassNames)
	after := stringSetting(bc.settings, "css", "purgeAggressiveness", "standard")
	if before != after {
		e.log(ctx, bc, "info", PhaseCrawl,
			fmt.Sprintf("page builder detected, clamping css purge from %s to %s", before, after))
	}
	_, err := e.client.Build.UpdateOneID(bc.build.ID).SetResolvedSettings(bc.settings).Save(ctx)
	return err
}

// recordPhaseFailure writes the failure onto the build row and emits
// the error event. The caller decides retry handling from the
// classification.
func (e *Engine) recordPhaseFailure(ctx context.Context, bc *buildCtx, phase string, err error) error {
	retryable := upstream.IsTransient(err)
	_, uerr := e.client.Build.UpdateOneID(bc.build.ID).
		SetErrorPhase(phase).
		SetErrorMessage(err.Error()).
		SetErrorRetryable(retryable).
		Save(ctx)
	if uerr != nil {
		e.logger.Error("Failed to record phase failure", "build_id", bc.build.ID, "error", uerr)
	}

	e.bus.Publish(events.BuildTopic(bc.site.ID), events.Event{
		Type:    events.TypeError,
		Payload: events.NewErrorPayload(phase, "", err.Error(), retryable),
	})
	return &PhaseError{Phase: phase, Err: err}
}

// finalize persists byte stats, marks the build successful and updates
// the site's denormalized pointers.
func (e *Engine) finalize(ctx context.Context, bc *buildCtx) error {
	var totalBytes int64
	for _, n := range bc.stats.optimized {
		totalBytes += n
	}

	b, err := e.client.Build.UpdateOneID(bc.build.ID).
		SetOriginalBytes(bc.stats.original).
		SetOptimizedBytes(bc.stats.optimized).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to persist build stats: %w", err)
	}
	bc.build = b

	b, err = transition(ctx, e.client, b, entbuild.StatusSuccess)
	if err != nil {
		return err
	}
	bc.build = b

	pages := 0
	if bc.inv != nil {
		pages = len(bc.inv.Pages)
	}
	_, err = e.client.Site.UpdateOneID(bc.site.ID).
		SetStatus("active").
		SetLastBuildID(b.ID).
		SetLastBuildStatus("success").
		SetPageCount(pages).
		SetTotalBytes(totalBytes).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update site after build: %w", err)
	}

	e.bus.Publish(events.BuildTopic(bc.site.ID), events.Event{
		Type:    events.TypeDone,
		Payload: events.DonePayload{Status: "success", Timestamp: events.Now()},
	})
	e.logger.Info("Build complete", "build_id", b.ID, "site_id", bc.site.ID, "pages", pages)
	return nil
}

// previousOutput locates the output tree of the site's last successful
// build, used by the partial fast path.
func (e *Engine) previousOutput(ctx context.Context, bc *buildCtx) string {
	prev, err := e.client.Build.Query().
		Where(
			entbuild.SiteIDEQ(bc.site.ID),
			entbuild.StatusEQ(entbuild.StatusSuccess),
			entbuild.IDNEQ(bc.build.ID),
		).
		Order(ent.Desc(entbuild.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			e.logger.Warn("Failed to look up previous build", "site_id", bc.site.ID, "error", err)
		}
		return ""
	}
	output := NewWorkspace(e.cfg.DataRoot, prev.ID).Output
	if info, err := os.Stat(output); err != nil || !info.IsDir() {
		return ""
	}
	return output
}

// log appends one line to the build's structured log and mirrors it on
// the event stream.
func (e *Engine) log(ctx context.Context, bc *buildCtx, level, phase, message string) {
	entry := map[string]interface{}{
		"ts":      time.Now().UTC().Format(time.RFC3339Nano),
		"level":   level,
		"phase":   phase,
		"message": message,
	}
	// Log writes survive phase timeouts; use a short independent window.
	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if err := e.client.Build.UpdateOneID(bc.build.ID).
		AppendLog([]map[string]interface{}{entry}).
		Exec(wctx); err != nil {
		e.logger.Warn("Failed to append build log", "build_id", bc.build.ID, "error", err)
	}

	e.bus.Publish(events.BuildTopic(bc.site.ID), events.Event{
		Type:    events.TypeLog,
		Payload: events.NewLogPayload(level, phase, message),
	})
}

// setProgress updates the crawl progress counters.
func (e *Engine) setProgress(ctx context.Context, bc *buildCtx, total, processed int) error {
	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	return e.client.Build.UpdateOneID(bc.build.ID).
		SetPagesTotal(total).
		SetPagesProcessed(processed).
		Exec(wctx)
}

// runDeploy uploads the output tree to the edge provider and records
// the public URL.
func (e *Engine) runDeploy(ctx context.Context, bc *buildCtx) error {
	project := deploy.ProjectName(bc.site.ID)
	edgeURL, err := e.deployer.Deploy(ctx, project, bc.ws.Output, bc.site.SourceURL)
	if err != nil {
		return err
	}

	site, err := e.client.Site.UpdateOneID(bc.site.ID).
		SetEdgeURL(edgeURL).
		SetEdgeProject(project).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to record edge url: %w", err)
	}
	bc.site = site

	e.bus.Publish(events.BuildTopic(bc.site.ID), events.Event{
		Type:    events.TypeDeploy,
		Payload: events.DeployPayload{BuildID: bc.build.ID, EdgeURL: edgeURL, Timestamp: events.Now()},
	})
	e.log(ctx, bc, "info", PhaseDeploy, "deployed to "+edgeURL)
	return nil
}
