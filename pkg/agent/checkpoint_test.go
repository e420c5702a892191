package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metrics-lab/staticpress/pkg/oracle"
)

func TestCheckpointRoundTrip(t *testing.T) {
	cp := &checkpoint{
		Iteration:      3,
		SettingsBefore: map[string]any{"css": map[string]any{"purgeAggressiveness": "safe"}},
		PendingDelta:   map[string]any{"images": map[string]any{"qualityStandard": float64(60)}},
		History: []iterationRecord{
			{Iteration: 1, Verdict: oracle.VerdictNeedsChanges, BuildID: "build_a"},
			{Iteration: 2, Verdict: oracle.VerdictNeedsChanges, BuildID: "build_b"},
		},
		Usage:   oracle.Usage{InputTokens: 1200, OutputTokens: 400, CostUSD: 0.0096},
		BuildID: "build_b",
	}

	encoded, err := cp.encode()
	require.NoError(t, err)

	restored, err := decodeCheckpoint(encoded)
	require.NoError(t, err)
	assert.Equal(t, 3, restored.Iteration)
	assert.Equal(t, cp.SettingsBefore, restored.SettingsBefore)
	assert.Equal(t, cp.PendingDelta, restored.PendingDelta)
	assert.Len(t, restored.History, 2)
	assert.Equal(t, "build_a", restored.History[0].BuildID)
	assert.Equal(t, 1200, restored.Usage.InputTokens)
	assert.InDelta(t, 0.0096, restored.Usage.CostUSD, 1e-9)
}

func TestDecodeCheckpointEmpty(t *testing.T) {
	cp, err := decodeCheckpoint(nil)
	require.NoError(t, err)
	assert.Zero(t, cp.Iteration)
	assert.Nil(t, cp.PendingDelta)

	cp, err = decodeCheckpoint(map[string]any{})
	require.NoError(t, err)
	assert.Zero(t, cp.Iteration)
}
