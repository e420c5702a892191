package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/metrics-lab/staticpress/ent"
	"github.com/metrics-lab/staticpress/ent/agentrun"
	entbuild "github.com/metrics-lab/staticpress/ent/build"
	"github.com/metrics-lab/staticpress/ent/measurementcomparison"
	"github.com/metrics-lab/staticpress/pkg/config"
	"github.com/metrics-lab/staticpress/pkg/events"
	"github.com/metrics-lab/staticpress/pkg/metrics"
	"github.com/metrics-lab/staticpress/pkg/models"
	"github.com/metrics-lab/staticpress/pkg/oracle"
	"github.com/metrics-lab/staticpress/pkg/pipeline"
	"github.com/metrics-lab/staticpress/pkg/services"
	"github.com/metrics-lab/staticpress/pkg/verify"
)

// SettingsStore is the slice of the settings service the runner needs.
type SettingsStore interface {
	UpdateSettings(ctx context.Context, siteID string, req models.UpdateSettingsRequest) (*models.SettingsResponse, error)
	ReplaceSettings(ctx context.Context, siteID string, next map[string]any, actor string) (*models.SettingsResponse, error)
}

// Runner executes agent runs: a supervised loop of plan, apply, build,
// verify, review. The run row is the durable record; the checkpoint
// written before each build makes the loop resumable.
type Runner struct {
	client      *ent.Client
	cfg         *config.OracleConfig
	pipelineCfg *config.PipelineConfig
	bus         *events.Bus
	oracle      *oracle.Client
	engine      *pipeline.Engine
	suite       *verify.Suite
	store       SettingsStore
	logger      *slog.Logger
}

// NewRunner wires an agent runner.
func NewRunner(
	client *ent.Client,
	cfg *config.OracleConfig,
	pipelineCfg *config.PipelineConfig,
	bus *events.Bus,
	oracleClient *oracle.Client,
	engine *pipeline.Engine,
	suite *verify.Suite,
	store SettingsStore,
) *Runner {
	return &Runner{
		client:      client,
		cfg:         cfg,
		pipelineCfg: pipelineCfg,
		bus:         bus,
		oracle:      oracleClient,
		engine:      engine,
		suite:       suite,
		store:       store,
		logger:      slog.With("component", "agent"),
	}
}

// Run drives one agent run to a terminal phase. Resumption: when the
// run carries a checkpoint and its workspace directory still exists,
// the loop continues from the checkpointed iteration; otherwise it
// starts from the top.
func (r *Runner) Run(ctx context.Context, runID string) error {
	run, err := r.client.AgentRun.Get(ctx, runID)
	if err != nil {
		return fmt.Errorf("failed to load agent run %s: %w", runID, err)
	}
	if run.Phase == agentrun.PhaseComplete || run.Phase == agentrun.PhaseFailed {
		r.logger.Info("Agent run already terminal", "run_id", runID, "phase", run.Phase)
		return nil
	}
	site, err := run.QuerySite().Only(ctx)
	if err != nil {
		return fmt.Errorf("failed to load site for run %s: %w", runID, err)
	}

	workspace := filepath.Join(r.pipelineCfg.DataRoot, "agent", runID)
	cp, err := r.restoreOrInit(ctx, run, site, workspace)
	if err != nil {
		return err
	}
	run, err = r.client.AgentRun.UpdateOneID(runID).SetWorkspaceDir(workspace).Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to record workspace dir: %w", err)
	}

	for cp.Iteration < run.MaxIterations {
		if err := ctx.Err(); err != nil {
			return err
		}
		cp.Iteration++

		done, err := r.runIteration(ctx, run, site, cp)
		if err != nil {
			return r.fail(ctx, run, err)
		}
		if done {
			return nil
		}
	}

	// Budget exhausted without a pass: terminal, but not a failure.
	return r.complete(ctx, run, oracle.VerdictNeedsChanges,
		fmt.Sprintf("stopped after %d iterations without a pass", run.MaxIterations))
}

// runIteration executes one full loop pass. Returns done=true when the
// run reached a terminal phase.
func (r *Runner) runIteration(ctx context.Context, run *ent.AgentRun, site *ent.Site, cp *checkpoint) (bool, error) {
	iter := cp.Iteration
	r.publishLog(site.ID, fmt.Sprintf("iteration %d/%d starting", iter, run.MaxIterations))

	// Plan on the first iteration; later iterations run on the pending
	// delta from the last review.
	if err := r.setPhase(ctx, run, agentrun.PhaseAnalyzing, iter); err != nil {
		return false, err
	}
	delta := cp.PendingDelta
	cp.PendingDelta = nil
	if planNeeded(iter, delta) {
		if err := r.setPhase(ctx, run, agentrun.PhasePlanning, iter); err != nil {
			return false, err
		}
		plan, usage, err := r.plan(ctx, run, site, iter)
		if err != nil {
			return false, err
		}
		cp.Usage.Add(usage)
		delta = plan.Settings
	}

	// Apply the settings before building so the pipeline resolves them.
	if len(delta) > 0 {
		if _, err := r.store.UpdateSettings(ctx, site.ID, models.UpdateSettingsRequest{
			Settings: delta,
			Actor:    "agent:" + run.ID,
		}); err != nil {
			return false, err
		}
	}

	// Checkpoint, then build. A worker death past this point resumes
	// here with the settings already applied.
	buildID, err := r.createBuild(ctx, site.ID)
	if err != nil {
		return false, err
	}
	cp.BuildID = buildID
	if err := r.saveCheckpoint(ctx, run, cp); err != nil {
		return false, err
	}

	if err := r.setPhase(ctx, run, agentrun.PhaseBuilding, iter); err != nil {
		return false, err
	}
	if _, err := r.client.AgentRun.UpdateOneID(run.ID).SetCurrentBuildID(buildID).Save(ctx); err != nil {
		return false, fmt.Errorf("failed to record current build: %w", err)
	}
	buildStart := time.Now()
	if err := r.engine.Run(ctx, buildID); err != nil {
		return false, fmt.Errorf("iteration %d build failed: %w", iter, err)
	}
	r.recordTiming(ctx, run, "building", iter, buildStart)

	// Verify the deployed result.
	if err := r.setPhase(ctx, run, agentrun.PhaseVerifying, iter); err != nil {
		return false, err
	}
	verifyStart := time.Now()
	suiteResult, err := r.verifyBuild(ctx, run, site, buildID, iter)
	if err != nil {
		return false, err
	}
	r.recordTiming(ctx, run, "verifying", iter, verifyStart)

	// Review.
	if err := r.setPhase(ctx, run, agentrun.PhaseReviewing, iter); err != nil {
		return false, err
	}
	decision, usage, err := r.review(ctx, site, cp, suiteResult, buildID)
	if err != nil {
		return false, err
	}
	cp.Usage.Add(usage)
	cp.History = append(cp.History, iterationRecord{
		Iteration: iter,
		Verdict:   decision.Verdict,
		Reasoning: decision.Reasoning,
		BuildID:   buildID,
	})
	if err := r.saveCheckpoint(ctx, run, cp); err != nil {
		return false, err
	}
	metrics.AgentIterations.WithLabelValues(decision.Verdict).Inc()

	switch decision.Verdict {
	case oracle.VerdictPass:
		return true, r.complete(ctx, run, oracle.VerdictPass, decision.Reasoning)

	case oracle.VerdictCriticalFailure:
		// Restore the pre-run settings before surfacing the failure.
		if _, err := r.store.ReplaceSettings(ctx, site.ID, cp.SettingsBefore, "agent-rollback:"+run.ID); err != nil {
			r.logger.Error("Failed to restore settings after critical failure", "run_id", run.ID, "error", err)
		}
		return true, r.terminate(ctx, run, agentrun.PhaseFailed, oracle.VerdictCriticalFailure, decision.Reasoning)

	default: // needs-changes
		if !decision.ShouldRebuild {
			return true, r.complete(ctx, run, oracle.VerdictNeedsChanges, decision.Reasoning)
		}
		cp.PendingDelta = decision.SettingsDelta
		return false, r.saveCheckpoint(ctx, run, cp)
	}
}

// planNeeded reports whether an iteration asks the oracle for a fresh
// plan. Only the first iteration plans; afterwards the review's delta
// drives the loop, and an empty delta means rebuild and re-verify with
// the settings unchanged rather than plan again.
func planNeeded(iter int, delta map[string]any) bool {
	return iter == 1 && delta == nil
}

// plan gathers the site context and asks the oracle for a plan.
func (r *Runner) plan(ctx context.Context, run *ent.AgentRun, site *ent.Site, iter int) (*oracle.OptimizationPlan, oracle.Usage, error) {
	start := time.Now()
	defer r.recordTiming(ctx, run, "planning", iter, start)

	inventoryJSON := r.latestInventoryJSON(ctx, site.ID)
	measurementJSON := r.latestMeasurementJSON(ctx, site.ID)

	plan, usage, err := r.oracle.Plan(ctx, inventoryJSON, measurementJSON)
	if err != nil {
		return nil, usage, err
	}

	r.bus.Publish(events.AgentTopic(site.ID), events.Event{
		Type: events.TypePlan,
		Payload: events.PlanPayload{
			RunID:     run.ID,
			Iteration: iter,
			Plan:      plan,
			Timestamp: events.Now(),
		},
	})
	return plan, usage, nil
}

// verifyBuild assembles the suite input from the build artifacts and
// runs all checks.
func (r *Runner) verifyBuild(ctx context.Context, run *ent.AgentRun, site *ent.Site, buildID string, iter int) (*verify.SuiteResult, error) {
	site, err := r.client.Site.Get(ctx, site.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload site: %w", err)
	}
	if site.EdgeURL == nil || *site.EdgeURL == "" {
		return nil, fmt.Errorf("build %s left no edge url to verify", buildID)
	}

	ws := pipeline.NewWorkspace(r.pipelineCfg.DataRoot, buildID)
	inv, err := pipeline.LoadInventory(ws.InventoryPath())
	if err != nil {
		return nil, err
	}

	input := &verify.Input{
		SourceURL: site.SourceURL,
		EdgeURL:   *site.EdgeURL,
		Workspace: ws,
	}
	for _, p := range inv.Pages {
		input.Pages = append(input.Pages, p.Path)
		if len(p.InteractiveElements) > 0 {
			input.Interactive = append(input.Interactive, verify.PageInteractions{
				Path:     p.Path,
				Elements: p.InteractiveElements,
			})
		}
	}

	r.bus.Publish(events.AgentTopic(site.ID), events.Event{
		Type: events.TypeVerificationStart,
		Payload: events.VerificationPayload{
			RunID: run.ID, Iteration: iter, Timestamp: events.Now(),
		},
	})

	result, err := r.suite.Run(ctx, input)
	if err != nil {
		return nil, err
	}

	r.bus.Publish(events.AgentTopic(site.ID), events.Event{
		Type: events.TypeVerificationResult,
		Payload: events.VerificationPayload{
			RunID: run.ID, Iteration: iter,
			Verdict: result.Verdict, Details: result,
			Timestamp: events.Now(),
		},
	})
	return result, nil
}

// review asks the oracle to judge the verification outcome.
func (r *Runner) review(ctx context.Context, site *ent.Site, cp *checkpoint, result *verify.SuiteResult, buildID string) (*oracle.AIReviewDecision, oracle.Usage, error) {
	verificationJSON, err := json.Marshal(result)
	if err != nil {
		return nil, oracle.Usage{}, fmt.Errorf("failed to encode verification result: %w", err)
	}
	historyJSON, err := json.Marshal(cp.History)
	if err != nil {
		return nil, oracle.Usage{}, fmt.Errorf("failed to encode history: %w", err)
	}
	return r.oracle.Review(ctx, string(verificationJSON), string(historyJSON))
}

// createBuild inserts an agent-triggered build row the engine then
// drives directly — the agent already holds the site's slot.
func (r *Runner) createBuild(ctx context.Context, siteID string) (string, error) {
	b, err := r.client.Build.Create().
		SetID(services.NewID("build")).
		SetSiteID(siteID).
		SetScope(entbuild.ScopeFull).
		SetTriggeredBy(entbuild.TriggeredByAgent).
		Save(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create agent build: %w", err)
	}
	return b.ID, nil
}

// restoreOrInit loads the checkpoint when the workspace survived, or
// initializes a fresh one with the pre-run settings snapshot.
func (r *Runner) restoreOrInit(ctx context.Context, run *ent.AgentRun, site *ent.Site, workspace string) (*checkpoint, error) {
	if len(run.Checkpoint) > 0 {
		if info, err := os.Stat(workspace); err == nil && info.IsDir() {
			cp, err := decodeCheckpoint(run.Checkpoint)
			if err == nil {
				r.logger.Info("Resuming agent run from checkpoint",
					"run_id", run.ID, "iteration", cp.Iteration)
				return cp, nil
			}
			r.logger.Warn("Checkpoint undecodable, starting over", "run_id", run.ID, "error", err)
		} else {
			r.logger.Warn("Workspace missing, starting over", "run_id", run.ID, "workspace", workspace)
		}
	}

	if err := os.MkdirAll(workspace, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create agent workspace: %w", err)
	}
	snapshot := site.Settings
	if snapshot == nil {
		snapshot = map[string]any{}
	}
	return &checkpoint{SettingsBefore: snapshot}, nil
}

// saveCheckpoint persists the resumable state onto the run row.
func (r *Runner) saveCheckpoint(ctx context.Context, run *ent.AgentRun, cp *checkpoint) error {
	encoded, err := cp.encode()
	if err != nil {
		return err
	}
	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if err := r.client.AgentRun.UpdateOneID(run.ID).
		SetCheckpoint(encoded).
		SetIteration(cp.Iteration).
		Exec(wctx); err != nil {
		return fmt.Errorf("failed to save checkpoint: %w", err)
	}
	return nil
}

// setPhase moves the run's phase and emits the change.
func (r *Runner) setPhase(ctx context.Context, run *ent.AgentRun, phase agentrun.Phase, iter int) error {
	if err := r.client.AgentRun.UpdateOneID(run.ID).SetPhase(phase).Exec(ctx); err != nil {
		return fmt.Errorf("failed to set run phase %s: %w", phase, err)
	}
	r.bus.Publish(events.AgentTopic(run.SiteID), events.Event{
		Type: events.TypePhase,
		Payload: events.PhasePayload{
			BuildID: run.ID, Status: string(phase),
			Phase: fmt.Sprintf("iteration-%d", iter), Timestamp: events.Now(),
		},
	})
	return nil
}

// recordTiming accumulates milliseconds under "phase:iteration".
func (r *Runner) recordTiming(ctx context.Context, run *ent.AgentRun, phase string, iter int, start time.Time) {
	key := fmt.Sprintf("%s:%d", phase, iter)
	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()

	current, err := r.client.AgentRun.Get(wctx, run.ID)
	if err != nil {
		return
	}
	timings := current.PhaseTimings
	if timings == nil {
		timings = map[string]int64{}
	}
	timings[key] += time.Since(start).Milliseconds()
	_ = r.client.AgentRun.UpdateOneID(run.ID).SetPhaseTimings(timings).Exec(wctx)
}

// complete marks the run complete with its final verdict.
func (r *Runner) complete(ctx context.Context, run *ent.AgentRun, verdict, message string) error {
	return r.terminate(ctx, run, agentrun.PhaseComplete, verdict, message)
}

// terminate writes the terminal phase and emits done.
func (r *Runner) terminate(ctx context.Context, run *ent.AgentRun, phase agentrun.Phase, verdict, message string) error {
	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()

	upd := r.client.AgentRun.UpdateOneID(run.ID).
		SetPhase(phase).
		SetCompletedAt(time.Now())
	if verdict != "" {
		upd.SetFinalVerdict(verdict)
	}
	if phase == agentrun.PhaseFailed && message != "" {
		upd.SetLastError(message)
	}
	if err := upd.Exec(wctx); err != nil {
		return fmt.Errorf("failed to finish run %s: %w", run.ID, err)
	}

	r.bus.Publish(events.AgentTopic(run.SiteID), events.Event{
		Type:    events.TypeDone,
		Payload: events.DonePayload{Status: string(phase), Message: message, Timestamp: events.Now()},
	})
	r.logger.Info("Agent run finished", "run_id", run.ID, "phase", phase, "verdict", verdict)
	return nil
}

// fail marks the run failed with the error.
func (r *Runner) fail(ctx context.Context, run *ent.AgentRun, cause error) error {
	if err := r.terminate(ctx, run, agentrun.PhaseFailed, "", cause.Error()); err != nil {
		r.logger.Error("Failed to record run failure", "run_id", run.ID, "error", err)
	}
	return cause
}

func (r *Runner) publishLog(siteID, message string) {
	r.bus.Publish(events.AgentTopic(siteID), events.Event{
		Type:    events.TypeLog,
		Payload: events.NewLogPayload("info", "", message),
	})
}

// latestInventoryJSON loads the most recent successful build's
// inventory for planning context; "{}" when none exists yet.
func (r *Runner) latestInventoryJSON(ctx context.Context, siteID string) string {
	b, err := r.client.Build.Query().
		Where(entbuild.SiteIDEQ(siteID), entbuild.StatusEQ(entbuild.StatusSuccess)).
		Order(ent.Desc(entbuild.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		return "{}"
	}
	data, err := os.ReadFile(pipeline.NewWorkspace(r.pipelineCfg.DataRoot, b.ID).InventoryPath())
	if err != nil {
		return "{}"
	}
	return string(data)
}

// latestMeasurementJSON serializes the newest measurement comparison.
func (r *Runner) latestMeasurementJSON(ctx context.Context, siteID string) string {
	m, err := r.client.MeasurementComparison.Query().
		Where(measurementcomparison.SiteIDEQ(siteID)).
		Order(ent.Desc(measurementcomparison.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		return "{}"
	}
	data, err := json.Marshal(m)
	if err != nil {
		return "{}"
	}
	return string(data)
}
