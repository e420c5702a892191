// Package agent drives the oracle-supervised optimization loop: plan,
// apply settings, build, verify, review — up to a bounded number of
// iterations, checkpointing before every build so an interrupted run
// resumes instead of restarting.
package agent

import (
	"encoding/json"
	"fmt"

	"github.com/metrics-lab/staticpress/pkg/oracle"
)

// iterationRecord summarizes one completed iteration for the oracle's
// review context.
type iterationRecord struct {
	Iteration int     `json:"iteration"`
	Verdict   string  `json:"verdict"`
	Reasoning string  `json:"reasoning,omitempty"`
	ScoreFrom float64 `json:"scoreFrom,omitempty"`
	ScoreTo   float64 `json:"scoreTo,omitempty"`
	BuildID   string  `json:"buildId,omitempty"`
}

// checkpoint is the full resumable state, persisted on the run row
// before each build.
type checkpoint struct {
	Iteration int `json:"iteration"`
	// SettingsBefore snapshots the site's sparse settings at run start,
	// restored on critical failure.
	SettingsBefore map[string]any `json:"settingsBefore"`
	// PendingDelta carries a needs-changes settings delta into the next
	// iteration, replacing a fresh plan.
	PendingDelta map[string]any    `json:"pendingDelta,omitempty"`
	History      []iterationRecord `json:"history,omitempty"`
	Usage        oracle.Usage      `json:"usage"`
	BuildID      string            `json:"buildId,omitempty"`
}

// encode flattens the checkpoint into the JSON map the run row stores.
func (c *checkpoint) encode() (map[string]any, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode checkpoint: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to encode checkpoint: %w", err)
	}
	return out, nil
}

// decodeCheckpoint restores a checkpoint from the run row. A nil or
// empty map yields a zero checkpoint.
func decodeCheckpoint(raw map[string]any) (*checkpoint, error) {
	if len(raw) == 0 {
		return &checkpoint{}, nil
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode checkpoint: %w", err)
	}
	var c checkpoint
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to decode checkpoint: %w", err)
	}
	return &c, nil
}
