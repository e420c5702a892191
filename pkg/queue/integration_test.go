package queue

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metrics-lab/staticpress/ent"
	"github.com/metrics-lab/staticpress/ent/build"
	"github.com/metrics-lab/staticpress/ent/job"
	"github.com/metrics-lab/staticpress/ent/site"
	"github.com/metrics-lab/staticpress/pkg/config"
	testdb "github.com/metrics-lab/staticpress/test/database"
)

// jobRecorder tracks which pod processed each job. Shared between the
// per-pod executors so the test can assert exactly-once execution.
type jobRecorder struct {
	mu   sync.Mutex
	seen map[string]string // job_id → pod_id
}

func newJobRecorder() *jobRecorder {
	return &jobRecorder{seen: make(map[string]string)}
}

func (r *jobRecorder) record(jobID, podID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen[jobID] = podID
}

func (r *jobRecorder) snapshot() map[string]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]string, len(r.seen))
	for k, v := range r.seen {
		out[k] = v
	}
	return out
}

// recordingExecutor marks every job it sees with the pod that ran it.
type recordingExecutor struct {
	podID    string
	recorder *jobRecorder
}

func (e *recordingExecutor) Execute(ctx context.Context, j *ent.Job) *ExecutionResult {
	e.recorder.record(j.ID, e.podID)
	return &ExecutionResult{Status: job.StatusSucceeded}
}

func fastQueueConfig() *config.QueueConfig {
	cfg := config.DefaultQueueConfig()
	cfg.WorkerCount = 2
	cfg.PollInterval = 50 * time.Millisecond
	cfg.PollIntervalJitter = 10 * time.Millisecond
	cfg.ExpiredScanInterval = 100 * time.Millisecond
	return cfg
}

// TestMultiPodClaiming runs two worker pools against one shared schema
// and verifies FOR UPDATE SKIP LOCKED hands each job to exactly one pod.
func TestMultiPodClaiming(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	clientA := shared.NewClient(t)
	clientB := shared.NewClient(t)
	ctx := context.Background()

	const jobCount = 20
	jobIDs := make([]string, 0, jobCount)
	for i := 0; i < jobCount; i++ {
		created, err := clientA.Job.Create().
			SetID(fmt.Sprintf("job_claim_%d", i)).
			SetKind(job.KindBuild).
			SetSiteID(fmt.Sprintf("site_%d", i)).
			Save(ctx)
		require.NoError(t, err)
		jobIDs = append(jobIDs, created.ID)
	}

	recorder := newJobRecorder()
	poolA := NewWorkerPool("pod-a", clientA.Client, fastQueueConfig(), &recordingExecutor{podID: "pod-a", recorder: recorder})
	poolB := NewWorkerPool("pod-b", clientB.Client, fastQueueConfig(), &recordingExecutor{podID: "pod-b", recorder: recorder})
	require.NoError(t, poolA.Start(ctx))
	require.NoError(t, poolB.Start(ctx))
	defer poolA.Stop()
	defer poolB.Stop()

	require.Eventually(t, func() bool {
		return len(recorder.snapshot()) == jobCount
	}, 15*time.Second, 100*time.Millisecond, "all jobs should be processed")

	poolA.Stop()
	poolB.Stop()

	// Each job ran exactly once, and every row reached succeeded with
	// exactly one attempt.
	seen := recorder.snapshot()
	assert.Len(t, seen, jobCount)
	for _, id := range jobIDs {
		row, err := clientA.Job.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, job.StatusSucceeded, row.Status, "job %s", id)
		assert.Equal(t, 1, row.Attempts, "job %s", id)
		assert.Nil(t, row.LeaseExpiresAt, "job %s lease should be cleared", id)
	}
}

// TestLeaseReclaim verifies that reserved jobs whose lease has lapsed
// return to the ready set with their pod assignment cleared.
func TestLeaseReclaim(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	expired, err := client.Job.Create().
		SetID("job_expired").
		SetKind(job.KindBuild).
		SetSiteID("site_x").
		SetStatus(job.StatusReserved).
		SetPodID("pod-dead").
		SetLeaseExpiresAt(time.Now().Add(-time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	live, err := client.Job.Create().
		SetID("job_live").
		SetKind(job.KindBuild).
		SetSiteID("site_y").
		SetStatus(job.StatusReserved).
		SetPodID("pod-alive").
		SetLeaseExpiresAt(time.Now().Add(10 * time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	pool := NewWorkerPool("pod-reclaim", client.Client, fastQueueConfig(), nil)
	require.NoError(t, pool.reclaimExpiredLeases(ctx))

	expired, err = client.Job.Get(ctx, expired.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusReady, expired.Status)
	assert.Nil(t, expired.PodID)
	assert.Nil(t, expired.LeaseExpiresAt)

	// A job with a valid lease is untouched.
	live, err = client.Job.Get(ctx, live.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusReserved, live.Status)
	require.NotNil(t, live.PodID)
	assert.Equal(t, "pod-alive", *live.PodID)
}

// TestCleanupStartupOrphans verifies that a restarting pod releases
// only its own reserved jobs.
func TestCleanupStartupOrphans(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	for i, pod := range []string{"pod-restarting", "pod-other"} {
		_, err := client.Job.Create().
			SetID(fmt.Sprintf("job_orphan_%d", i)).
			SetKind(job.KindAgent).
			SetSiteID("site_z").
			SetStatus(job.StatusReserved).
			SetPodID(pod).
			SetLeaseExpiresAt(time.Now().Add(10 * time.Minute)).
			Save(ctx)
		require.NoError(t, err)
	}

	require.NoError(t, CleanupStartupOrphans(ctx, client.Client, "pod-restarting"))

	released, err := client.Job.Get(ctx, "job_orphan_0")
	require.NoError(t, err)
	assert.Equal(t, job.StatusReady, released.Status)
	assert.Nil(t, released.PodID)

	kept, err := client.Job.Get(ctx, "job_orphan_1")
	require.NoError(t, err)
	assert.Equal(t, job.StatusReserved, kept.Status)
}

// TestCancelStale verifies the recovery hatch cancels non-terminal
// builds and jobs for a site and reports the build count.
func TestCancelStale(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	created, err := client.Site.Create().
		SetID("site_stale").
		SetName("stale").
		SetSourceURL("https://stale.example").
		SetStatus(site.StatusActive).
		SetWebhookSecret("s").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Build.Create().
		SetID("build_stale").
		SetSiteID(created.ID).
		SetScope(build.ScopeFull).
		SetTriggeredBy(build.TriggeredByUser).
		SetStatus(build.StatusOptimizing).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Job.Create().
		SetID("job_stale").
		SetKind(job.KindBuild).
		SetSiteID(created.ID).
		SetStatus(job.StatusReserved).
		SetPodID("pod-dead").
		SetLeaseExpiresAt(time.Now().Add(10 * time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	cancelled, err := CancelStale(ctx, client.Client, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, cancelled)

	b, err := client.Build.Get(ctx, "build_stale")
	require.NoError(t, err)
	assert.Equal(t, build.StatusCancelled, b.Status)
	require.NotNil(t, b.CompletedAt)

	j, err := client.Job.Get(ctx, "job_stale")
	require.NoError(t, err)
	assert.Equal(t, job.StatusCancelled, j.Status)

	refreshed, err := client.Site.Get(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, refreshed.LastBuildStatus)
	assert.Equal(t, site.LastBuildStatusCancelled, *refreshed.LastBuildStatus)
}
