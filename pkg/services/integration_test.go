package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metrics-lab/staticpress/ent/build"
	"github.com/metrics-lab/staticpress/ent/job"
	"github.com/metrics-lab/staticpress/pkg/events"
	"github.com/metrics-lab/staticpress/pkg/models"
	"github.com/metrics-lab/staticpress/pkg/settings"
	testdb "github.com/metrics-lab/staticpress/test/database"
)

// TestServiceIntegration exercises the services against a real
// PostgreSQL database: the per-site slot, the build/job transaction,
// and the settings history chain.
func TestServiceIntegration(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	bus := events.NewBus()
	resolver := settings.NewResolver(client.Client)

	siteService := NewSiteService(client.Client)
	buildService := NewBuildService(client.Client, bus)
	settingsService := NewSettingsService(client.Client, resolver)
	overrideService := NewOverrideService(client.Client, resolver)

	t.Run("site registration and build trigger", func(t *testing.T) {
		created, secret, err := siteService.CreateSite(ctx, models.CreateSiteRequest{
			Name:      "acme-store",
			SourceURL: "https://store.acme.example",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Len(t, secret, 64)

		// The secret is retrievable for webhook verification.
		stored, err := siteService.WebhookSecret(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, secret, stored)

		// Trigger creates the build row and its queue job atomically.
		resp, err := buildService.TriggerBuild(ctx, created.ID, models.TriggerBuildRequest{})
		require.NoError(t, err)
		assert.Equal(t, string(build.StatusQueued), resp.Status)

		queued, err := client.Job.Query().Where(job.IDEQ(resp.JobID)).Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, job.StatusReady, queued.Status)
		assert.Equal(t, created.ID, queued.SiteID)
		assert.Equal(t, resp.BuildID, queued.Payload["build_id"])

		// Second trigger while the first build is queued: slot is held.
		_, err = buildService.TriggerBuild(ctx, created.ID, models.TriggerBuildRequest{})
		assert.ErrorIs(t, err, ErrAlreadyInProgress)

		// The denormalized pointer on the site row tracks the build.
		status, err := siteService.Status(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, status.LastBuildID)
		assert.Equal(t, resp.BuildID, *status.LastBuildID)

		// Cancelling frees the slot.
		err = buildService.CancelBuild(ctx, created.ID, resp.BuildID)
		require.NoError(t, err)

		_, err = buildService.TriggerBuild(ctx, created.ID, models.TriggerBuildRequest{Scope: "partial"})
		require.NoError(t, err)
	})

	t.Run("retry re-queues only failed builds", func(t *testing.T) {
		created, _, err := siteService.CreateSite(ctx, models.CreateSiteRequest{
			Name:      "retry-site",
			SourceURL: "https://retry.example",
		})
		require.NoError(t, err)

		resp, err := buildService.TriggerBuild(ctx, created.ID, models.TriggerBuildRequest{})
		require.NoError(t, err)

		// A queued build cannot be retried.
		_, err = buildService.RetryBuild(ctx, created.ID, resp.BuildID)
		assert.ErrorIs(t, err, ErrInvalidTransition)

		// Fail it (as the executor would), then retry succeeds and a
		// fresh job appears.
		err = client.Build.UpdateOneID(resp.BuildID).
			SetStatus(build.StatusFailed).
			SetErrorPhase("css").
			SetPagesTotal(40).
			SetPagesProcessed(12).
			Exec(ctx)
		require.NoError(t, err)
		err = client.Job.UpdateOneID(resp.JobID).
			SetStatus(job.StatusFailed).
			Exec(ctx)
		require.NoError(t, err)

		retried, err := buildService.RetryBuild(ctx, created.ID, resp.BuildID)
		require.NoError(t, err)
		assert.Equal(t, resp.BuildID, retried.BuildID)
		assert.NotEqual(t, resp.JobID, retried.JobID)

		refreshed, err := buildService.GetBuild(ctx, created.ID, resp.BuildID)
		require.NoError(t, err)
		assert.Equal(t, build.StatusQueued, refreshed.Status)
		assert.Nil(t, refreshed.ErrorPhase)
		assert.Equal(t, 1, refreshed.RetryCount)
		// Progress counters restart; stale numbers from the failed
		// attempt must not show while the retry is queued.
		assert.Zero(t, refreshed.PagesTotal)
		assert.Zero(t, refreshed.PagesProcessed)
	})

	t.Run("settings update, history and rollback", func(t *testing.T) {
		created, _, err := siteService.CreateSite(ctx, models.CreateSiteRequest{
			Name:      "settings-site",
			SourceURL: "https://settings.example",
		})
		require.NoError(t, err)

		// Fresh site resolves to pure defaults with an empty override.
		initial, err := settingsService.GetSettings(ctx, created.ID)
		require.NoError(t, err)
		assert.Empty(t, initial.Override)
		assert.Equal(t, settings.Defaults(), initial.Resolved)

		// Sparse update changes one leaf; the rest stays default.
		updated, err := settingsService.UpdateSettings(ctx, created.ID, models.UpdateSettingsRequest{
			Settings: map[string]any{
				"images": map[string]any{"qualityLCP": 90},
			},
			Actor: "alice",
		})
		require.NoError(t, err)
		images := updated.Resolved["images"].(map[string]any)
		assert.EqualValues(t, 90, images["qualityLCP"])
		assert.Equal(t, "webp", images["modernFormat"])

		history, err := settingsService.History(ctx, created.ID)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, "alice", history[0].Actor)

		// Rolling back to the recorded entry restores the prior override.
		rolled, err := settingsService.Rollback(ctx, created.ID, history[0].ID)
		require.NoError(t, err)
		assert.Empty(t, rolled.Override)
	})

	t.Run("asset override lifecycle", func(t *testing.T) {
		created, _, err := siteService.CreateSite(ctx, models.CreateSiteRequest{
			Name:      "override-site",
			SourceURL: "https://override.example",
		})
		require.NoError(t, err)

		override, err := overrideService.UpsertOverride(ctx, created.ID, models.CreateAssetOverrideRequest{
			URLPattern: "/wp-content/uploads/hero-*.jpg",
			Settings: map[string]any{
				"images": map[string]any{"qualityLCP": 95},
			},
		})
		require.NoError(t, err)

		listed, err := overrideService.ListOverrides(ctx, created.ID)
		require.NoError(t, err)
		require.Len(t, listed, 1)

		// Per-asset resolution layers the override on top of site settings.
		resolved, err := resolver.ResolveForAsset(ctx, created.ID, "/wp-content/uploads/hero-home.jpg")
		require.NoError(t, err)
		images := resolved["images"].(map[string]any)
		assert.EqualValues(t, 95, images["qualityLCP"])

		err = overrideService.DeleteOverride(ctx, created.ID, override.ID)
		require.NoError(t, err)
		_, err = overrideService.GetOverride(ctx, created.ID, override.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
