package events

import "time"

// timestamp formats event times for transport.
func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// LogPayload is a free-form progress line from a pipeline phase or the
// agent loop.
type LogPayload struct {
	Level     string `json:"level"`
	Message   string `json:"message"`
	Phase     string `json:"phase,omitempty"`
	Timestamp string `json:"timestamp"`
}

// NewLogPayload creates a log payload stamped with the current time.
func NewLogPayload(level, phase, message string) LogPayload {
	return LogPayload{
		Level:     level,
		Message:   message,
		Phase:     phase,
		Timestamp: timestamp(time.Now()),
	}
}

// PhasePayload announces a build status / phase change.
type PhasePayload struct {
	BuildID   string `json:"buildId"`
	Status    string `json:"status"`
	Phase     string `json:"phase,omitempty"`
	Timestamp string `json:"timestamp"`
}

// StepPayload marks the start or completion of a pipeline step.
type StepPayload struct {
	BuildID    string `json:"buildId"`
	Phase      string `json:"phase"`
	Step       string `json:"step"`
	DurationMs int64  `json:"durationMs,omitempty"`
	Timestamp  string `json:"timestamp"`
}

// PatchPayload reports a live-edit file change that was applied.
type PatchPayload struct {
	Path      string `json:"path"`
	Summary   string `json:"summary,omitempty"`
	Timestamp string `json:"timestamp"`
}

// PlanPayload carries an oracle-produced plan for client approval:
// the agent's optimization plan or a live-edit change plan.
type PlanPayload struct {
	PlanID      string `json:"planId,omitempty"`
	RunID       string `json:"runId,omitempty"`
	Iteration   int    `json:"iteration,omitempty"`
	Description string `json:"description,omitempty"`
	Plan        any    `json:"plan"`
	Timestamp   string `json:"timestamp"`
}

// DeployPayload reports an edge deployment result.
type DeployPayload struct {
	BuildID   string `json:"buildId,omitempty"`
	EdgeURL   string `json:"edgeUrl"`
	Timestamp string `json:"timestamp"`
}

// VerificationPayload reports verification progress and results for an
// agent iteration.
type VerificationPayload struct {
	RunID     string `json:"runId"`
	Iteration int    `json:"iteration"`
	Check     string `json:"check,omitempty"`
	Verdict   string `json:"verdict,omitempty"`
	Details   any    `json:"details,omitempty"`
	Timestamp string `json:"timestamp"`
}

// DonePayload terminates a stream: the operation reached a terminal
// state.
type DonePayload struct {
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
	Timestamp string `json:"timestamp"`
}

// ErrorPayload reports a failure with its phase and sub-step for
// diagnosis.
type ErrorPayload struct {
	Phase     string `json:"phase,omitempty"`
	Step      string `json:"step,omitempty"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
	Timestamp string `json:"timestamp"`
}

// NewErrorPayload creates an error payload stamped with the current time.
func NewErrorPayload(phase, step, message string, retryable bool) ErrorPayload {
	return ErrorPayload{
		Phase:     phase,
		Step:      step,
		Message:   message,
		Retryable: retryable,
		Timestamp: timestamp(time.Now()),
	}
}

// Now returns the transport form of the current time. Payload
// constructors that are built inline use this for their Timestamp.
func Now() string {
	return timestamp(time.Now())
}
