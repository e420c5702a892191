// Package events provides the in-process event bus and the typed
// payloads published on it. Topics are strings of the form
// {kind}:{siteId} or {kind}:{siteId}:{stream} where kind is one of
// build, agent, live-edit. The bus holds no durable state and offers
// no replay: subscribers see only events published while subscribed.
package events

import "fmt"

// Event kinds (topic prefixes).
const (
	KindBuild    = "build"
	KindAgent    = "agent"
	KindLiveEdit = "live-edit"
)

// Event types carried in the envelope.
const (
	TypeLog                = "log"
	TypePhase              = "phase"
	TypeStepStart          = "step_start"
	TypeStepComplete       = "step_complete"
	TypePatch              = "patch"
	TypePlan               = "plan"
	TypeDeploy             = "deploy"
	TypeVerificationStart  = "verification_start"
	TypeVerificationResult = "verification_result"
	TypeDone               = "done"
	TypeError              = "error"
	TypeHeartbeat          = "heartbeat"
)

// Event is the envelope published on a topic. Payload is one of the
// typed structs in payloads.go, already shaped for JSON transport.
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// BuildTopic returns the topic carrying build progress for a site.
func BuildTopic(siteID string) string {
	return fmt.Sprintf("%s:%s", KindBuild, siteID)
}

// AgentTopic returns the topic carrying agent loop progress for a site.
func AgentTopic(siteID string) string {
	return fmt.Sprintf("%s:%s", KindAgent, siteID)
}

// LiveEditTopic returns the topic for a live-edit chat stream.
func LiveEditTopic(siteID, stream string) string {
	if stream == "" {
		return fmt.Sprintf("%s:%s", KindLiveEdit, siteID)
	}
	return fmt.Sprintf("%s:%s:%s", KindLiveEdit, siteID, stream)
}
