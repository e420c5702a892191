package liveedit

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entbuild "github.com/metrics-lab/staticpress/ent/build"
	entsite "github.com/metrics-lab/staticpress/ent/site"
	"github.com/metrics-lab/staticpress/pkg/events"
	"github.com/metrics-lab/staticpress/pkg/models"
	"github.com/metrics-lab/staticpress/pkg/oracle"
	"github.com/metrics-lab/staticpress/pkg/pipeline"
	testdb "github.com/metrics-lab/staticpress/test/database"
)

// stubDeployer records deploy calls and returns a fixed edge URL.
type stubDeployer struct {
	calls   int
	lastDir string
}

func (d *stubDeployer) Deploy(ctx context.Context, projectName, directory, sourceURL string) (string, error) {
	d.calls++
	d.lastDir = directory
	return "https://edited.example.pages.dev", nil
}

// stubPlanner returns a canned oracle response.
type stubPlanner struct {
	raw string
}

func (p *stubPlanner) PlanEdits(ctx context.Context, workspaceContext, message string) (string, oracle.Usage, error) {
	return p.raw, oracle.Usage{}, nil
}

func TestChatPlanThenExecuteDeploys(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	dataRoot := t.TempDir()

	siteID := "site_chat"
	_, err := client.Site.Create().
		SetID(siteID).
		SetName("chat").
		SetSourceURL("https://chat.example").
		SetStatus(entsite.StatusActive).
		SetWebhookSecret("s").
		Save(ctx)
	require.NoError(t, err)

	// A successful build whose output seeds the workspace.
	_, err = client.Build.Create().
		SetID("build_chat").
		SetSiteID(siteID).
		SetScope(entbuild.ScopeFull).
		SetTriggeredBy(entbuild.TriggeredByUser).
		SetStatus(entbuild.StatusSuccess).
		Save(ctx)
	require.NoError(t, err)
	output := pipeline.NewWorkspace(dataRoot, "build_chat").Output
	require.NoError(t, os.MkdirAll(output, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(output, "index.html"), []byte("<html>old</html>"), 0o644))

	deployer := &stubDeployer{}
	svc := NewService(client.Client, dataRoot, deployer, events.NewBus())
	planner := &stubPlanner{
		raw: `{"description":"darken header","edits":[{"path":"index.html","content":"<html>new</html>","summary":"replace header"}]}`,
	}

	// A plan turn needs an instruction.
	_, err = svc.Chat(ctx, planner, siteID, models.ChatRequest{})
	assert.Error(t, err)

	planned, err := svc.Chat(ctx, planner, siteID, models.ChatRequest{Message: "darken the header"})
	require.NoError(t, err)
	require.NotNil(t, planned.Plan)
	assert.False(t, planned.Executed)
	assert.Zero(t, deployer.calls, "planning must not deploy")

	// Approving executes the edits and deploys the workspace. Message
	// is not required on the execute turn.
	executed, err := svc.Chat(ctx, planner, siteID, models.ChatRequest{
		Execute: true,
		PlanID:  planned.Plan.PlanID,
	})
	require.NoError(t, err)
	assert.True(t, executed.Executed)
	assert.Contains(t, executed.Message, "https://edited.example.pages.dev")

	assert.Equal(t, 1, deployer.calls)
	assert.Equal(t, svc.workspaceDir(siteID), deployer.lastDir)

	content, err := os.ReadFile(filepath.Join(svc.workspaceDir(siteID), "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "<html>new</html>", string(content))

	refreshed, err := client.Site.Get(ctx, siteID)
	require.NoError(t, err)
	require.NotNil(t, refreshed.EdgeURL)
	assert.Equal(t, "https://edited.example.pages.dev", *refreshed.EdgeURL)
}
