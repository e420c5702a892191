// Package verify runs the post-deploy verification suite: visual
// diffing against the crawl baselines, functional replay of detected
// interactive elements, link integrity, and performance comparison.
// The four checks run concurrently and aggregate into one verdict.
package verify

// Visual diff verdicts, thresholded on the fraction of differing
// pixels.
const (
	VerdictIdentical   = "identical"    // < 0.1%
	VerdictAcceptable  = "acceptable"   // < 2%
	VerdictNeedsReview = "needs-review" // < 10%
	VerdictFailed      = "failed"       // >= 10%
)

// Diff thresholds as fractions of the pixel count.
const (
	thresholdIdentical   = 0.001
	thresholdAcceptable  = 0.02
	thresholdNeedsReview = 0.10
)

// VisualResult is the diff outcome for one page and viewport.
type VisualResult struct {
	Path        string  `json:"path"`
	Viewport    string  `json:"viewport"`
	DiffPercent float64 `json:"diffPercent"`
	Verdict     string  `json:"verdict"`
	Error       string  `json:"error,omitempty"`
}

// FunctionalResult is the replay outcome for one interactive element.
type FunctionalResult struct {
	Path           string   `json:"path"`
	Kind           string   `json:"kind"`
	Selector       string   `json:"selector"`
	Passed         bool     `json:"passed"`
	FailedSelector string   `json:"failedSelector,omitempty"`
	Error          string   `json:"error,omitempty"`
	ConsoleErrors  []string `json:"consoleErrors,omitempty"`
}

// LinkResult is one broken or unreachable link.
type LinkResult struct {
	Page   string `json:"page"`
	Href   string `json:"href"`
	Status int    `json:"status,omitempty"`
	Error  string `json:"error,omitempty"`
}

// PerformanceResult compares the optimized copy against the origin.
type PerformanceResult struct {
	Strategy       string  `json:"strategy"`
	OriginalScore  float64 `json:"originalScore"`
	OptimizedScore float64 `json:"optimizedScore"`
	Regressed      bool    `json:"regressed"`
	Error          string  `json:"error,omitempty"`
}

// SuiteResult aggregates all four checks.
type SuiteResult struct {
	Visual      []VisualResult     `json:"visual"`
	Functional  []FunctionalResult `json:"functional"`
	Links       []LinkResult       `json:"brokenLinks"`
	Performance []PerformanceResult `json:"performance"`
	Verdict     string             `json:"verdict"`
}

// verdictFor maps a pixel diff fraction to its verdict.
func verdictFor(diff float64) string {
	switch {
	case diff < thresholdIdentical:
		return VerdictIdentical
	case diff < thresholdAcceptable:
		return VerdictAcceptable
	case diff < thresholdNeedsReview:
		return VerdictNeedsReview
	default:
		return VerdictFailed
	}
}

// aggregate computes the suite verdict: the worst visual verdict,
// demoted further by functional failures, broken links or performance
// regressions.
func aggregate(r *SuiteResult) string {
	rank := map[string]int{
		VerdictIdentical:   0,
		VerdictAcceptable:  1,
		VerdictNeedsReview: 2,
		VerdictFailed:      3,
	}
	worst := VerdictIdentical
	for _, v := range r.Visual {
		if rank[v.Verdict] > rank[worst] {
			worst = v.Verdict
		}
	}
	for _, f := range r.Functional {
		if !f.Passed && rank[worst] < rank[VerdictFailed] {
			worst = VerdictFailed
		}
	}
	if len(r.Links) > 0 && rank[worst] < rank[VerdictNeedsReview] {
		worst = VerdictNeedsReview
	}
	for _, p := range r.Performance {
		if p.Regressed && rank[worst] < rank[VerdictNeedsReview] {
			worst = VerdictNeedsReview
		}
	}
	return worst
}
