package cleanup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entbuild "github.com/metrics-lab/staticpress/ent/build"
	entsite "github.com/metrics-lab/staticpress/ent/site"
	"github.com/metrics-lab/staticpress/pkg/config"
	testdb "github.com/metrics-lab/staticpress/test/database"
)

func TestSweepSite(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	dataRoot := t.TempDir()

	siteID := "site_sweep"
	_, err := client.Site.Create().
		SetID(siteID).
		SetName("sweep").
		SetSourceURL("https://sweep.example").
		SetStatus(entsite.StatusActive).
		SetWebhookSecret("s").
		Save(ctx)
	require.NoError(t, err)

	mkBuild := func(id string, status entbuild.Status, age time.Duration) {
		t.Helper()
		_, err := client.Build.Create().
			SetID(id).
			SetSiteID(siteID).
			SetScope(entbuild.ScopeFull).
			SetTriggeredBy(entbuild.TriggeredByUser).
			SetStatus(status).
			SetCreatedAt(time.Now().Add(-age)).
			Save(ctx)
		require.NoError(t, err)
		require.NoError(t, os.MkdirAll(filepath.Join(dataRoot, "builds", id), 0o755))
	}

	// Four successful builds, oldest first, plus a failed and a running one.
	for i := 0; i < 4; i++ {
		mkBuild(fmt.Sprintf("build_ok_%d", i), entbuild.StatusSuccess, time.Duration(10-i)*time.Hour)
	}
	mkBuild("build_failed", entbuild.StatusFailed, 20*time.Hour)
	mkBuild("build_running", entbuild.StatusOptimizing, time.Minute)

	sweeper, err := NewSweeper(client.Client, &config.RetentionConfig{
		KeepSuccessfulBuilds: 2,
		SweepInterval:        time.Hour,
	}, dataRoot)
	require.NoError(t, err)

	pruned, err := sweeper.SweepSite(ctx, siteID)
	require.NoError(t, err)
	// Two old successful builds and the failed one lose their dirs.
	assert.Equal(t, 3, pruned)

	dirExists := func(id string) bool {
		_, err := os.Stat(filepath.Join(dataRoot, "builds", id))
		return err == nil
	}
	assert.False(t, dirExists("build_ok_0"))
	assert.False(t, dirExists("build_ok_1"))
	assert.False(t, dirExists("build_failed"))
	assert.True(t, dirExists("build_ok_2"))
	assert.True(t, dirExists("build_ok_3"))
	assert.True(t, dirExists("build_running"), "a running build's directory is never pruned")

	// Database rows all survive the sweep.
	count, err := client.Build.Query().Where(entbuild.SiteIDEQ(siteID)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, count)

	// A second sweep is a no-op.
	pruned, err = sweeper.SweepSite(ctx, siteID)
	require.NoError(t, err)
	assert.Zero(t, pruned)
}
