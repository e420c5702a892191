// Package oracle calls the external language model that supervises
// agent runs and live-edit planning. Calls are stateless; every call
// records token usage for cost tracking.
package oracle

// Usage is the token accounting for one oracle call.
type Usage struct {
	InputTokens  int     `json:"inputTokens"`
	OutputTokens int     `json:"outputTokens"`
	CostUSD      float64 `json:"costUsd"`
}

// Add accumulates another call's usage.
func (u *Usage) Add(other Usage) {
	u.InputTokens += other.InputTokens
	u.OutputTokens += other.OutputTokens
	u.CostUSD += other.CostUSD
}

// ExpectedPerformance is the oracle's prediction for a plan.
type ExpectedPerformance struct {
	Score        float64 `json:"score"`
	LCPMs        float64 `json:"lcpMs"`
	PayloadBytes int64   `json:"payloadBytes"`
}

// OptimizationPlan is the oracle's output on plan requests: a full
// settings override document with per-section rationale.
type OptimizationPlan struct {
	Settings            map[string]any       `json:"settings"`
	Rationale           map[string]string    `json:"rationale"`
	ExpectedPerformance *ExpectedPerformance `json:"expectedPerformance,omitempty"`
}

// Review verdicts.
const (
	VerdictPass            = "pass"
	VerdictNeedsChanges    = "needs-changes"
	VerdictCriticalFailure = "critical-failure"
)

// AIReviewDecision is the oracle's output on review requests.
type AIReviewDecision struct {
	Verdict       string         `json:"verdict"`
	SettingsDelta map[string]any `json:"settingsDelta,omitempty"`
	Reasoning     string         `json:"reasoning"`
	ShouldRebuild bool           `json:"shouldRebuild"`
	Confidence    float64        `json:"confidence"`
}
