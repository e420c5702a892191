package liveedit

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metrics-lab/staticpress/pkg/models"
)

func TestResolveInsideAcceptsNormalPaths(t *testing.T) {
	root := filepath.Join("/data", "workspaces", "site_a")

	full, err := resolveInside(root, "index.html")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "index.html"), full)

	full, err = resolveInside(root, "blog/post/index.html")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "blog", "post", "index.html"), full)
}

func TestResolveInsideRejectsTraversal(t *testing.T) {
	root := "/data/workspaces/site_a"
	for _, bad := range []string{
		"",
		"..",
		"../secrets",
		"../../etc/passwd",
		"blog/../../../../etc/passwd",
		"/etc/passwd",
	} {
		_, err := resolveInside(root, bad)
		assert.Error(t, err, "path %q must be rejected", bad)
	}
}

func TestResolveInsideNormalizesDotSegments(t *testing.T) {
	root := "/data/workspaces/site_a"
	full, err := resolveInside(root, "blog/./post/../index.html")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "blog", "index.html"), full)
}

func TestPlanRegistryLifecycle(t *testing.T) {
	reg := newPlanRegistry()
	plan := models.EditPlan{PlanID: "plan_1", Edits: []models.FileEdit{{Path: "index.html"}}}
	reg.put("site_a", plan)

	// Wrong id fails and leaves the plan in place.
	_, err := reg.take("site_a", "plan_other")
	assert.Error(t, err)

	got, err := reg.take("site_a", "plan_1")
	require.NoError(t, err)
	assert.Equal(t, "plan_1", got.PlanID)

	// Single use.
	_, err = reg.take("site_a", "plan_1")
	assert.Error(t, err)
}

func TestPlanRegistrySupersede(t *testing.T) {
	reg := newPlanRegistry()
	reg.put("site_a", models.EditPlan{PlanID: "plan_1"})
	reg.put("site_a", models.EditPlan{PlanID: "plan_2"})

	_, err := reg.take("site_a", "plan_1")
	assert.Error(t, err) // superseded

	got, err := reg.take("site_a", "plan_2")
	require.NoError(t, err)
	assert.Equal(t, "plan_2", got.PlanID)
}

func TestPlanRegistryExpiry(t *testing.T) {
	reg := newPlanRegistry()
	reg.put("site_a", models.EditPlan{PlanID: "plan_1"})
	reg.plans["site_a"] = pendingPlan{
		plan:    reg.plans["site_a"].plan,
		expires: time.Now().Add(-time.Second),
	}

	_, err := reg.take("site_a", "plan_1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}

func TestParseEditPlan(t *testing.T) {
	raw := "```json\n" + `{"description":"darken header","edits":[{"path":"index.html","content":"<html></html>","summary":"new header"}]}` + "\n```"
	plan, err := parseEditPlan(raw)
	require.NoError(t, err)
	assert.Equal(t, "darken header", plan.Description)
	require.Len(t, plan.Edits, 1)
	assert.Equal(t, "index.html", plan.Edits[0].Path)
}

func TestParseEditPlanRejections(t *testing.T) {
	_, err := parseEditPlan("not json at all")
	assert.Error(t, err)

	_, err = parseEditPlan(`{"description":"empty","edits":[]}`)
	assert.Error(t, err)

	_, err = parseEditPlan(`{"edits":[{"content":"x"}]}`)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "without a path"))
}
