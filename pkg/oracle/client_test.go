package oracle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metrics-lab/staticpress/pkg/upstream"
)

// fakeCaller returns a canned response.
type fakeCaller struct {
	response string
	usage    Usage
	err      error
}

func (f *fakeCaller) Call(ctx context.Context, system, user string) (string, Usage, error) {
	return f.response, f.usage, f.err
}

func TestPlan_ValidResponse(t *testing.T) {
	c := NewClient(&fakeCaller{
		response: `{
			"settings": {"css": {"purgeAggressiveness": "standard"}},
			"rationale": {"css": "theme is hand-written, standard purge is safe"},
			"expectedPerformance": {"score": 92, "lcpMs": 1800, "payloadBytes": 900000}
		}`,
		usage: Usage{InputTokens: 1200, OutputTokens: 300, CostUSD: 0.008},
	})

	plan, usage, err := c.Plan(context.Background(), "{}", "{}")

	require.NoError(t, err)
	assert.Equal(t, "standard", plan.Settings["css"].(map[string]any)["purgeAggressiveness"])
	assert.Equal(t, "theme is hand-written, standard purge is safe", plan.Rationale["css"])
	assert.InDelta(t, 92.0, plan.ExpectedPerformance.Score, 0.001)
	assert.Equal(t, 1200, usage.InputTokens)
}

func TestPlan_CodeFencedResponse(t *testing.T) {
	c := NewClient(&fakeCaller{
		response: "```json\n{\"settings\": {}, \"rationale\": {}}\n```",
	})

	plan, _, err := c.Plan(context.Background(), "{}", "{}")

	require.NoError(t, err)
	assert.NotNil(t, plan)
}

func TestPlan_MalformedResponseIsTransient(t *testing.T) {
	c := NewClient(&fakeCaller{response: "I think you should enable image optimization."})

	_, _, err := c.Plan(context.Background(), "{}", "{}")

	require.Error(t, err)
	assert.True(t, upstream.IsTransient(err))
}

func TestReview_ValidVerdicts(t *testing.T) {
	tests := []struct {
		name     string
		response string
		verdict  string
	}{
		{
			"pass",
			`{"verdict": "pass", "reasoning": "all checks green", "shouldRebuild": false, "confidence": 0.95}`,
			VerdictPass,
		},
		{
			"needs-changes with delta",
			`{"verdict": "needs-changes", "settingsDelta": {"css": {"purgeSafelist": {"standard": ["slider-active"]}}}, "reasoning": "slider broke", "shouldRebuild": true, "confidence": 0.8}`,
			VerdictNeedsChanges,
		},
		{
			"critical failure",
			`{"verdict": "critical-failure", "reasoning": "site unusable at any setting", "shouldRebuild": false, "confidence": 0.9}`,
			VerdictCriticalFailure,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(&fakeCaller{response: tt.response})
			decision, _, err := c.Review(context.Background(), "{}", "[]")
			require.NoError(t, err)
			assert.Equal(t, tt.verdict, decision.Verdict)
		})
	}
}

func TestReview_UnknownVerdictRejected(t *testing.T) {
	c := NewClient(&fakeCaller{
		response: `{"verdict": "maybe", "reasoning": "unsure"}`,
	})

	_, _, err := c.Review(context.Background(), "{}", "[]")

	require.Error(t, err)
	assert.True(t, upstream.IsTransient(err))
}

func TestUsage_Add(t *testing.T) {
	total := Usage{}
	total.Add(Usage{InputTokens: 100, OutputTokens: 50, CostUSD: 0.01})
	total.Add(Usage{InputTokens: 200, OutputTokens: 80, CostUSD: 0.02})

	assert.Equal(t, 300, total.InputTokens)
	assert.Equal(t, 130, total.OutputTokens)
	assert.InDelta(t, 0.03, total.CostUSD, 1e-9)
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence(`{"a":1}`))
}
