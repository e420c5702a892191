package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanNeeded(t *testing.T) {
	assert.True(t, planNeeded(1, nil), "a fresh run plans once, up front")

	// A delta restored from a checkpoint replaces the plan even on the
	// first iteration.
	assert.False(t, planNeeded(1, map[string]any{"css": map[string]any{"minify": true}}))

	// A review that asks for a rebuild without settings changes must
	// not trigger another planning round: the loop rebuilds and
	// re-verifies with the settings unchanged.
	assert.False(t, planNeeded(2, nil))
	assert.False(t, planNeeded(2, map[string]any{}))
	assert.False(t, planNeeded(5, map[string]any{"images": map[string]any{"qualityStandard": 60}}))
}
