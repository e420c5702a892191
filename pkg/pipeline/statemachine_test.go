package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/metrics-lab/staticpress/ent/build"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    build.Status
		to      build.Status
		allowed bool
	}{
		{"queued starts crawling", build.StatusQueued, build.StatusCrawling, true},
		{"queued can be cancelled", build.StatusQueued, build.StatusCancelled, true},
		{"queued retry resumes mid-optimize", build.StatusQueued, build.StatusOptimizing, true},
		{"queued retry resumes at deploy", build.StatusQueued, build.StatusDeploying, true},
		{"queued cannot complete directly", build.StatusQueued, build.StatusSuccess, false},
		{"crawling to optimizing", build.StatusCrawling, build.StatusOptimizing, true},
		{"crawling may fail", build.StatusCrawling, build.StatusFailed, true},
		{"optimizing to deploying", build.StatusOptimizing, build.StatusDeploying, true},
		{"optimizing cannot go back", build.StatusOptimizing, build.StatusCrawling, false},
		{"deploying to success", build.StatusDeploying, build.StatusSuccess, true},
		{"retry re-enters crawl", build.StatusFailed, build.StatusCrawling, true},
		{"retry re-enters optimize", build.StatusFailed, build.StatusOptimizing, true},
		{"retry re-enters deploy", build.StatusFailed, build.StatusDeploying, true},
		{"failed cannot jump to success", build.StatusFailed, build.StatusSuccess, false},
		{"success is final", build.StatusSuccess, build.StatusCrawling, false},
		{"cancelled is final", build.StatusCancelled, build.StatusCrawling, false},
		{"self transition is a no-op", build.StatusCrawling, build.StatusCrawling, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

// TestRetryResumesFromEveryCheckpoint covers the re-queued retry path:
// whatever phase a build checkpointed at, the engine's first status
// write from queued must be legal, or retries past crawl would never
// leave the queue.
func TestRetryResumesFromEveryCheckpoint(t *testing.T) {
	for _, checkpoint := range phaseOrder[:len(phaseOrder)-1] {
		next := phasesAfter(checkpoint)[0]
		assert.True(t, CanTransition(build.StatusQueued, phaseStatus[next]),
			"resume after checkpoint %s enters %s", checkpoint, next)
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(build.StatusSuccess))
	assert.True(t, IsTerminal(build.StatusCancelled))
	assert.False(t, IsTerminal(build.StatusFailed)) // failed builds accept a retry
	assert.False(t, IsTerminal(build.StatusQueued))
	assert.False(t, IsTerminal(build.StatusDeploying))
}

func TestPhasesAfter(t *testing.T) {
	assert.Equal(t, phaseOrder, phasesAfter(""))
	assert.Equal(t, []string{PhaseImages, PhaseCSS, PhaseJS, PhaseHTML, PhaseFonts, PhaseDeploy, PhaseMeasure}, phasesAfter(PhaseCrawl))
	assert.Equal(t, []string{PhaseMeasure}, phasesAfter(PhaseDeploy))
	assert.Empty(t, phasesAfter(PhaseMeasure))
	assert.Equal(t, phaseOrder, phasesAfter("unknown"))
}

func TestEveryPhaseHasAStatus(t *testing.T) {
	for _, phase := range phaseOrder {
		assert.Contains(t, phaseStatus, phase)
	}
}
