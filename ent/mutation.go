// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/metrics-lab/staticpress/ent/agentrun"
	"github.com/metrics-lab/staticpress/ent/alertlog"
	"github.com/metrics-lab/staticpress/ent/alertrule"
	"github.com/metrics-lab/staticpress/ent/assetoverride"
	"github.com/metrics-lab/staticpress/ent/build"
	"github.com/metrics-lab/staticpress/ent/job"
	"github.com/metrics-lab/staticpress/ent/measurementcomparison"
	"github.com/metrics-lab/staticpress/ent/page"
	"github.com/metrics-lab/staticpress/ent/predicate"
	"github.com/metrics-lab/staticpress/ent/settingshistory"
	"github.com/metrics-lab/staticpress/ent/site"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentRun              = "AgentRun"
	TypeAlertLog              = "AlertLog"
	TypeAlertRule             = "AlertRule"
	TypeAssetOverride         = "AssetOverride"
	TypeBuild                 = "Build"
	TypeJob                   = "Job"
	TypeMeasurementComparison = "MeasurementComparison"
	TypePage                  = "Page"
	TypeSettingsHistory       = "SettingsHistory"
	TypeSite                  = "Site"
)

// AgentRunMutation represents an operation that mutates the AgentRun nodes in the graph.
type AgentRunMutation struct {
	config
	op                Op
	typ               string
	id                *string
	phase             *agentrun.Phase
	iteration         *int
	additeration      *int
	max_iterations    *int
	addmax_iterations *int
	phase_timings     *map[string]int64
	last_error        *string
	checkpoint        *map[string]interface{}
	current_build_id  *string
	workspace_dir     *string
	final_verdict     *string
	created_at        *time.Time
	updated_at        *time.Time
	completed_at      *time.Time
	clearedFields     map[string]struct{}
	site              *string
	clearedsite       bool
	done              bool
	oldValue          func(context.Context) (*AgentRun, error)
	predicates        []predicate.AgentRun
}

var _ ent.Mutation = (*AgentRunMutation)(nil)

// agentrunOption allows management of the mutation configuration using functional options.
type agentrunOption func(*AgentRunMutation)

// newAgentRunMutation creates new mutation for the AgentRun entity.
func newAgentRunMutation(c config, op Op, opts ...agentrunOption) *AgentRunMutation {
	m := &AgentRunMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentRunID sets the ID field of the mutation.
func withAgentRunID(id string) agentrunOption {
	return func(m *AgentRunMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentRun
		)
		m.oldValue = func(ctx context.Context) (*AgentRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentRun sets the old AgentRun of the mutation.
func withAgentRun(node *AgentRun) agentrunOption {
	return func(m *AgentRunMutation) {
		m.oldValue = func(context.Context) (*AgentRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentRun entities.
func (m *AgentRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSiteID sets the "site_id" field.
func (m *AgentRunMutation) SetSiteID(s string) {
	m.site = &s
}

// SiteID returns the value of the "site_id" field in the mutation.
func (m *AgentRunMutation) SiteID() (r string, exists bool) {
	v := m.site
	if v == nil {
		return
	}
	return *v, true
}

// OldSiteID returns the old "site_id" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldSiteID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSiteID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSiteID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSiteID: %w", err)
	}
	return oldValue.SiteID, nil
}

// ResetSiteID resets all changes to the "site_id" field.
func (m *AgentRunMutation) ResetSiteID() {
	m.site = nil
}

// SetPhase sets the "phase" field.
func (m *AgentRunMutation) SetPhase(a agentrun.Phase) {
	m.phase = &a
}

// Phase returns the value of the "phase" field in the mutation.
func (m *AgentRunMutation) Phase() (r agentrun.Phase, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldPhase(ctx context.Context) (v agentrun.Phase, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// ResetPhase resets all changes to the "phase" field.
func (m *AgentRunMutation) ResetPhase() {
	m.phase = nil
}

// SetIteration sets the "iteration" field.
func (m *AgentRunMutation) SetIteration(i int) {
	m.iteration = &i
	m.additeration = nil
}

// Iteration returns the value of the "iteration" field in the mutation.
func (m *AgentRunMutation) Iteration() (r int, exists bool) {
	v := m.iteration
	if v == nil {
		return
	}
	return *v, true
}

// OldIteration returns the old "iteration" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldIteration(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIteration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIteration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIteration: %w", err)
	}
	return oldValue.Iteration, nil
}

// AddIteration adds i to the "iteration" field.
func (m *AgentRunMutation) AddIteration(i int) {
	if m.additeration != nil {
		*m.additeration += i
	} else {
		m.additeration = &i
	}
}

// AddedIteration returns the value that was added to the "iteration" field in this mutation.
func (m *AgentRunMutation) AddedIteration() (r int, exists bool) {
	v := m.additeration
	if v == nil {
		return
	}
	return *v, true
}

// ResetIteration resets all changes to the "iteration" field.
func (m *AgentRunMutation) ResetIteration() {
	m.iteration = nil
	m.additeration = nil
}

// SetMaxIterations sets the "max_iterations" field.
func (m *AgentRunMutation) SetMaxIterations(i int) {
	m.max_iterations = &i
	m.addmax_iterations = nil
}

// MaxIterations returns the value of the "max_iterations" field in the mutation.
func (m *AgentRunMutation) MaxIterations() (r int, exists bool) {
	v := m.max_iterations
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxIterations returns the old "max_iterations" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldMaxIterations(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxIterations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxIterations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxIterations: %w", err)
	}
	return oldValue.MaxIterations, nil
}

// AddMaxIterations adds i to the "max_iterations" field.
func (m *AgentRunMutation) AddMaxIterations(i int) {
	if m.addmax_iterations != nil {
		*m.addmax_iterations += i
	} else {
		m.addmax_iterations = &i
	}
}

// AddedMaxIterations returns the value that was added to the "max_iterations" field in this mutation.
func (m *AgentRunMutation) AddedMaxIterations() (r int, exists bool) {
	v := m.addmax_iterations
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxIterations resets all changes to the "max_iterations" field.
func (m *AgentRunMutation) ResetMaxIterations() {
	m.max_iterations = nil
	m.addmax_iterations = nil
}

// SetPhaseTimings sets the "phase_timings" field.
func (m *AgentRunMutation) SetPhaseTimings(value map[string]int64) {
	m.phase_timings = &value
}

// PhaseTimings returns the value of the "phase_timings" field in the mutation.
func (m *AgentRunMutation) PhaseTimings() (r map[string]int64, exists bool) {
	v := m.phase_timings
	if v == nil {
		return
	}
	return *v, true
}

// OldPhaseTimings returns the old "phase_timings" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldPhaseTimings(ctx context.Context) (v map[string]int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhaseTimings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhaseTimings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhaseTimings: %w", err)
	}
	return oldValue.PhaseTimings, nil
}

// ClearPhaseTimings clears the value of the "phase_timings" field.
func (m *AgentRunMutation) ClearPhaseTimings() {
	m.phase_timings = nil
	m.clearedFields[agentrun.FieldPhaseTimings] = struct{}{}
}

// PhaseTimingsCleared returns if the "phase_timings" field was cleared in this mutation.
func (m *AgentRunMutation) PhaseTimingsCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldPhaseTimings]
	return ok
}

// ResetPhaseTimings resets all changes to the "phase_timings" field.
func (m *AgentRunMutation) ResetPhaseTimings() {
	m.phase_timings = nil
	delete(m.clearedFields, agentrun.FieldPhaseTimings)
}

// SetLastError sets the "last_error" field.
func (m *AgentRunMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *AgentRunMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *AgentRunMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[agentrun.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *AgentRunMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *AgentRunMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, agentrun.FieldLastError)
}

// SetCheckpoint sets the "checkpoint" field.
func (m *AgentRunMutation) SetCheckpoint(value map[string]interface{}) {
	m.checkpoint = &value
}

// Checkpoint returns the value of the "checkpoint" field in the mutation.
func (m *AgentRunMutation) Checkpoint() (r map[string]interface{}, exists bool) {
	v := m.checkpoint
	if v == nil {
		return
	}
	return *v, true
}

// OldCheckpoint returns the old "checkpoint" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldCheckpoint(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCheckpoint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCheckpoint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCheckpoint: %w", err)
	}
	return oldValue.Checkpoint, nil
}

// ClearCheckpoint clears the value of the "checkpoint" field.
func (m *AgentRunMutation) ClearCheckpoint() {
	m.checkpoint = nil
	m.clearedFields[agentrun.FieldCheckpoint] = struct{}{}
}

// CheckpointCleared returns if the "checkpoint" field was cleared in this mutation.
func (m *AgentRunMutation) CheckpointCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldCheckpoint]
	return ok
}

// ResetCheckpoint resets all changes to the "checkpoint" field.
func (m *AgentRunMutation) ResetCheckpoint() {
	m.checkpoint = nil
	delete(m.clearedFields, agentrun.FieldCheckpoint)
}

// SetCurrentBuildID sets the "current_build_id" field.
func (m *AgentRunMutation) SetCurrentBuildID(s string) {
	m.current_build_id = &s
}

// CurrentBuildID returns the value of the "current_build_id" field in the mutation.
func (m *AgentRunMutation) CurrentBuildID() (r string, exists bool) {
	v := m.current_build_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentBuildID returns the old "current_build_id" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldCurrentBuildID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentBuildID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentBuildID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentBuildID: %w", err)
	}
	return oldValue.CurrentBuildID, nil
}

// ClearCurrentBuildID clears the value of the "current_build_id" field.
func (m *AgentRunMutation) ClearCurrentBuildID() {
	m.current_build_id = nil
	m.clearedFields[agentrun.FieldCurrentBuildID] = struct{}{}
}

// CurrentBuildIDCleared returns if the "current_build_id" field was cleared in this mutation.
func (m *AgentRunMutation) CurrentBuildIDCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldCurrentBuildID]
	return ok
}

// ResetCurrentBuildID resets all changes to the "current_build_id" field.
func (m *AgentRunMutation) ResetCurrentBuildID() {
	m.current_build_id = nil
	delete(m.clearedFields, agentrun.FieldCurrentBuildID)
}

// SetWorkspaceDir sets the "workspace_dir" field.
func (m *AgentRunMutation) SetWorkspaceDir(s string) {
	m.workspace_dir = &s
}

// WorkspaceDir returns the value of the "workspace_dir" field in the mutation.
func (m *AgentRunMutation) WorkspaceDir() (r string, exists bool) {
	v := m.workspace_dir
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceDir returns the old "workspace_dir" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldWorkspaceDir(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceDir is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceDir requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceDir: %w", err)
	}
	return oldValue.WorkspaceDir, nil
}

// ClearWorkspaceDir clears the value of the "workspace_dir" field.
func (m *AgentRunMutation) ClearWorkspaceDir() {
	m.workspace_dir = nil
	m.clearedFields[agentrun.FieldWorkspaceDir] = struct{}{}
}

// WorkspaceDirCleared returns if the "workspace_dir" field was cleared in this mutation.
func (m *AgentRunMutation) WorkspaceDirCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldWorkspaceDir]
	return ok
}

// ResetWorkspaceDir resets all changes to the "workspace_dir" field.
func (m *AgentRunMutation) ResetWorkspaceDir() {
	m.workspace_dir = nil
	delete(m.clearedFields, agentrun.FieldWorkspaceDir)
}

// SetFinalVerdict sets the "final_verdict" field.
func (m *AgentRunMutation) SetFinalVerdict(s string) {
	m.final_verdict = &s
}

// FinalVerdict returns the value of the "final_verdict" field in the mutation.
func (m *AgentRunMutation) FinalVerdict() (r string, exists bool) {
	v := m.final_verdict
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalVerdict returns the old "final_verdict" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldFinalVerdict(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalVerdict is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalVerdict requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalVerdict: %w", err)
	}
	return oldValue.FinalVerdict, nil
}

// ClearFinalVerdict clears the value of the "final_verdict" field.
func (m *AgentRunMutation) ClearFinalVerdict() {
	m.final_verdict = nil
	m.clearedFields[agentrun.FieldFinalVerdict] = struct{}{}
}

// FinalVerdictCleared returns if the "final_verdict" field was cleared in this mutation.
func (m *AgentRunMutation) FinalVerdictCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldFinalVerdict]
	return ok
}

// ResetFinalVerdict resets all changes to the "final_verdict" field.
func (m *AgentRunMutation) ResetFinalVerdict() {
	m.final_verdict = nil
	delete(m.clearedFields, agentrun.FieldFinalVerdict)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentRunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentRunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentRunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentRunMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentRunMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentRunMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *AgentRunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *AgentRunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *AgentRunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[agentrun.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *AgentRunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *AgentRunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, agentrun.FieldCompletedAt)
}

// ClearSite clears the "site" edge to the Site entity.
func (m *AgentRunMutation) ClearSite() {
	m.clearedsite = true
	m.clearedFields[agentrun.FieldSiteID] = struct{}{}
}

// SiteCleared reports if the "site" edge to the Site entity was cleared.
func (m *AgentRunMutation) SiteCleared() bool {
	return m.clearedsite
}

// SiteIDs returns the "site" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SiteID instead. It exists only for internal usage by the builders.
func (m *AgentRunMutation) SiteIDs() (ids []string) {
	if id := m.site; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSite resets all changes to the "site" edge.
func (m *AgentRunMutation) ResetSite() {
	m.site = nil
	m.clearedsite = false
}

// Where appends a list predicates to the AgentRunMutation builder.
func (m *AgentRunMutation) Where(ps ...predicate.AgentRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentRun).
func (m *AgentRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentRunMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.site != nil {
		fields = append(fields, agentrun.FieldSiteID)
	}
	if m.phase != nil {
		fields = append(fields, agentrun.FieldPhase)
	}
	if m.iteration != nil {
		fields = append(fields, agentrun.FieldIteration)
	}
	if m.max_iterations != nil {
		fields = append(fields, agentrun.FieldMaxIterations)
	}
	if m.phase_timings != nil {
		fields = append(fields, agentrun.FieldPhaseTimings)
	}
	if m.last_error != nil {
		fields = append(fields, agentrun.FieldLastError)
	}
	if m.checkpoint != nil {
		fields = append(fields, agentrun.FieldCheckpoint)
	}
	if m.current_build_id != nil {
		fields = append(fields, agentrun.FieldCurrentBuildID)
	}
	if m.workspace_dir != nil {
		fields = append(fields, agentrun.FieldWorkspaceDir)
	}
	if m.final_verdict != nil {
		fields = append(fields, agentrun.FieldFinalVerdict)
	}
	if m.created_at != nil {
		fields = append(fields, agentrun.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agentrun.FieldUpdatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, agentrun.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentrun.FieldSiteID:
		return m.SiteID()
	case agentrun.FieldPhase:
		return m.Phase()
	case agentrun.FieldIteration:
		return m.Iteration()
	case agentrun.FieldMaxIterations:
		return m.MaxIterations()
	case agentrun.FieldPhaseTimings:
		return m.PhaseTimings()
	case agentrun.FieldLastError:
		return m.LastError()
	case agentrun.FieldCheckpoint:
		return m.Checkpoint()
	case agentrun.FieldCurrentBuildID:
		return m.CurrentBuildID()
	case agentrun.FieldWorkspaceDir:
		return m.WorkspaceDir()
	case agentrun.FieldFinalVerdict:
		return m.FinalVerdict()
	case agentrun.FieldCreatedAt:
		return m.CreatedAt()
	case agentrun.FieldUpdatedAt:
		return m.UpdatedAt()
	case agentrun.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentrun.FieldSiteID:
		return m.OldSiteID(ctx)
	case agentrun.FieldPhase:
		return m.OldPhase(ctx)
	case agentrun.FieldIteration:
		return m.OldIteration(ctx)
	case agentrun.FieldMaxIterations:
		return m.OldMaxIterations(ctx)
	case agentrun.FieldPhaseTimings:
		return m.OldPhaseTimings(ctx)
	case agentrun.FieldLastError:
		return m.OldLastError(ctx)
	case agentrun.FieldCheckpoint:
		return m.OldCheckpoint(ctx)
	case agentrun.FieldCurrentBuildID:
		return m.OldCurrentBuildID(ctx)
	case agentrun.FieldWorkspaceDir:
		return m.OldWorkspaceDir(ctx)
	case agentrun.FieldFinalVerdict:
		return m.OldFinalVerdict(ctx)
	case agentrun.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agentrun.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case agentrun.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentrun.FieldSiteID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSiteID(v)
		return nil
	case agentrun.FieldPhase:
		v, ok := value.(agentrun.Phase)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case agentrun.FieldIteration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIteration(v)
		return nil
	case agentrun.FieldMaxIterations:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxIterations(v)
		return nil
	case agentrun.FieldPhaseTimings:
		v, ok := value.(map[string]int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhaseTimings(v)
		return nil
	case agentrun.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case agentrun.FieldCheckpoint:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCheckpoint(v)
		return nil
	case agentrun.FieldCurrentBuildID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentBuildID(v)
		return nil
	case agentrun.FieldWorkspaceDir:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceDir(v)
		return nil
	case agentrun.FieldFinalVerdict:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalVerdict(v)
		return nil
	case agentrun.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agentrun.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case agentrun.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentRunMutation) AddedFields() []string {
	var fields []string
	if m.additeration != nil {
		fields = append(fields, agentrun.FieldIteration)
	}
	if m.addmax_iterations != nil {
		fields = append(fields, agentrun.FieldMaxIterations)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentrun.FieldIteration:
		return m.AddedIteration()
	case agentrun.FieldMaxIterations:
		return m.AddedMaxIterations()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentrun.FieldIteration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIteration(v)
		return nil
	case agentrun.FieldMaxIterations:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxIterations(v)
		return nil
	}
	return fmt.Errorf("unknown AgentRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentrun.FieldPhaseTimings) {
		fields = append(fields, agentrun.FieldPhaseTimings)
	}
	if m.FieldCleared(agentrun.FieldLastError) {
		fields = append(fields, agentrun.FieldLastError)
	}
	if m.FieldCleared(agentrun.FieldCheckpoint) {
		fields = append(fields, agentrun.FieldCheckpoint)
	}
	if m.FieldCleared(agentrun.FieldCurrentBuildID) {
		fields = append(fields, agentrun.FieldCurrentBuildID)
	}
	if m.FieldCleared(agentrun.FieldWorkspaceDir) {
		fields = append(fields, agentrun.FieldWorkspaceDir)
	}
	if m.FieldCleared(agentrun.FieldFinalVerdict) {
		fields = append(fields, agentrun.FieldFinalVerdict)
	}
	if m.FieldCleared(agentrun.FieldCompletedAt) {
		fields = append(fields, agentrun.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentRunMutation) ClearField(name string) error {
	switch name {
	case agentrun.FieldPhaseTimings:
		m.ClearPhaseTimings()
		return nil
	case agentrun.FieldLastError:
		m.ClearLastError()
		return nil
	case agentrun.FieldCheckpoint:
		m.ClearCheckpoint()
		return nil
	case agentrun.FieldCurrentBuildID:
		m.ClearCurrentBuildID()
		return nil
	case agentrun.FieldWorkspaceDir:
		m.ClearWorkspaceDir()
		return nil
	case agentrun.FieldFinalVerdict:
		m.ClearFinalVerdict()
		return nil
	case agentrun.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentRunMutation) ResetField(name string) error {
	switch name {
	case agentrun.FieldSiteID:
		m.ResetSiteID()
		return nil
	case agentrun.FieldPhase:
		m.ResetPhase()
		return nil
	case agentrun.FieldIteration:
		m.ResetIteration()
		return nil
	case agentrun.FieldMaxIterations:
		m.ResetMaxIterations()
		return nil
	case agentrun.FieldPhaseTimings:
		m.ResetPhaseTimings()
		return nil
	case agentrun.FieldLastError:
		m.ResetLastError()
		return nil
	case agentrun.FieldCheckpoint:
		m.ResetCheckpoint()
		return nil
	case agentrun.FieldCurrentBuildID:
		m.ResetCurrentBuildID()
		return nil
	case agentrun.FieldWorkspaceDir:
		m.ResetWorkspaceDir()
		return nil
	case agentrun.FieldFinalVerdict:
		m.ResetFinalVerdict()
		return nil
	case agentrun.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agentrun.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case agentrun.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.site != nil {
		edges = append(edges, agentrun.EdgeSite)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentrun.EdgeSite:
		if id := m.site; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsite {
		edges = append(edges, agentrun.EdgeSite)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentRunMutation) EdgeCleared(name string) bool {
	switch name {
	case agentrun.EdgeSite:
		return m.clearedsite
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentRunMutation) ClearEdge(name string) error {
	switch name {
	case agentrun.EdgeSite:
		m.ClearSite()
		return nil
	}
	return fmt.Errorf("unknown AgentRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentRunMutation) ResetEdge(name string) error {
	switch name {
	case agentrun.EdgeSite:
		m.ResetSite()
		return nil
	}
	return fmt.Errorf("unknown AgentRun edge %s", name)
}

// AlertLogMutation represents an operation that mutates the AlertLog nodes in the graph.
type AlertLogMutation struct {
	config
	op                Op
	typ               string
	id                *string
	rule_id           *string
	message           *string
	observed_value    *float64
	addobserved_value *float64
	fired_at          *time.Time
	clearedFields     map[string]struct{}
	site              *string
	clearedsite       bool
	done              bool
	oldValue          func(context.Context) (*AlertLog, error)
	predicates        []predicate.AlertLog
}

var _ ent.Mutation = (*AlertLogMutation)(nil)

// alertlogOption allows management of the mutation configuration using functional options.
type alertlogOption func(*AlertLogMutation)

// newAlertLogMutation creates new mutation for the AlertLog entity.
func newAlertLogMutation(c config, op Op, opts ...alertlogOption) *AlertLogMutation {
	m := &AlertLogMutation{
		config:        c,
		op:            op,
		typ:           TypeAlertLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAlertLogID sets the ID field of the mutation.
func withAlertLogID(id string) alertlogOption {
	return func(m *AlertLogMutation) {
		var (
			err   error
			once  sync.Once
			value *AlertLog
		)
		m.oldValue = func(ctx context.Context) (*AlertLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AlertLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAlertLog sets the old AlertLog of the mutation.
func withAlertLog(node *AlertLog) alertlogOption {
	return func(m *AlertLogMutation) {
		m.oldValue = func(context.Context) (*AlertLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AlertLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AlertLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AlertLog entities.
func (m *AlertLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AlertLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AlertLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AlertLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSiteID sets the "site_id" field.
func (m *AlertLogMutation) SetSiteID(s string) {
	m.site = &s
}

// SiteID returns the value of the "site_id" field in the mutation.
func (m *AlertLogMutation) SiteID() (r string, exists bool) {
	v := m.site
	if v == nil {
		return
	}
	return *v, true
}

// OldSiteID returns the old "site_id" field's value of the AlertLog entity.
// If the AlertLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertLogMutation) OldSiteID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSiteID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSiteID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSiteID: %w", err)
	}
	return oldValue.SiteID, nil
}

// ResetSiteID resets all changes to the "site_id" field.
func (m *AlertLogMutation) ResetSiteID() {
	m.site = nil
}

// SetRuleID sets the "rule_id" field.
func (m *AlertLogMutation) SetRuleID(s string) {
	m.rule_id = &s
}

// RuleID returns the value of the "rule_id" field in the mutation.
func (m *AlertLogMutation) RuleID() (r string, exists bool) {
	v := m.rule_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRuleID returns the old "rule_id" field's value of the AlertLog entity.
// If the AlertLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertLogMutation) OldRuleID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRuleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRuleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRuleID: %w", err)
	}
	return oldValue.RuleID, nil
}

// ResetRuleID resets all changes to the "rule_id" field.
func (m *AlertLogMutation) ResetRuleID() {
	m.rule_id = nil
}

// SetMessage sets the "message" field.
func (m *AlertLogMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *AlertLogMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the AlertLog entity.
// If the AlertLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertLogMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *AlertLogMutation) ResetMessage() {
	m.message = nil
}

// SetObservedValue sets the "observed_value" field.
func (m *AlertLogMutation) SetObservedValue(f float64) {
	m.observed_value = &f
	m.addobserved_value = nil
}

// ObservedValue returns the value of the "observed_value" field in the mutation.
func (m *AlertLogMutation) ObservedValue() (r float64, exists bool) {
	v := m.observed_value
	if v == nil {
		return
	}
	return *v, true
}

// OldObservedValue returns the old "observed_value" field's value of the AlertLog entity.
// If the AlertLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertLogMutation) OldObservedValue(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObservedValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObservedValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObservedValue: %w", err)
	}
	return oldValue.ObservedValue, nil
}

// AddObservedValue adds f to the "observed_value" field.
func (m *AlertLogMutation) AddObservedValue(f float64) {
	if m.addobserved_value != nil {
		*m.addobserved_value += f
	} else {
		m.addobserved_value = &f
	}
}

// AddedObservedValue returns the value that was added to the "observed_value" field in this mutation.
func (m *AlertLogMutation) AddedObservedValue() (r float64, exists bool) {
	v := m.addobserved_value
	if v == nil {
		return
	}
	return *v, true
}

// ResetObservedValue resets all changes to the "observed_value" field.
func (m *AlertLogMutation) ResetObservedValue() {
	m.observed_value = nil
	m.addobserved_value = nil
}

// SetFiredAt sets the "fired_at" field.
func (m *AlertLogMutation) SetFiredAt(t time.Time) {
	m.fired_at = &t
}

// FiredAt returns the value of the "fired_at" field in the mutation.
func (m *AlertLogMutation) FiredAt() (r time.Time, exists bool) {
	v := m.fired_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFiredAt returns the old "fired_at" field's value of the AlertLog entity.
// If the AlertLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertLogMutation) OldFiredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFiredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFiredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFiredAt: %w", err)
	}
	return oldValue.FiredAt, nil
}

// ResetFiredAt resets all changes to the "fired_at" field.
func (m *AlertLogMutation) ResetFiredAt() {
	m.fired_at = nil
}

// ClearSite clears the "site" edge to the Site entity.
func (m *AlertLogMutation) ClearSite() {
	m.clearedsite = true
	m.clearedFields[alertlog.FieldSiteID] = struct{}{}
}

// SiteCleared reports if the "site" edge to the Site entity was cleared.
func (m *AlertLogMutation) SiteCleared() bool {
	return m.clearedsite
}

// SiteIDs returns the "site" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SiteID instead. It exists only for internal usage by the builders.
func (m *AlertLogMutation) SiteIDs() (ids []string) {
	if id := m.site; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSite resets all changes to the "site" edge.
func (m *AlertLogMutation) ResetSite() {
	m.site = nil
	m.clearedsite = false
}

// Where appends a list predicates to the AlertLogMutation builder.
func (m *AlertLogMutation) Where(ps ...predicate.AlertLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AlertLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AlertLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AlertLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AlertLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AlertLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AlertLog).
func (m *AlertLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AlertLogMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.site != nil {
		fields = append(fields, alertlog.FieldSiteID)
	}
	if m.rule_id != nil {
		fields = append(fields, alertlog.FieldRuleID)
	}
	if m.message != nil {
		fields = append(fields, alertlog.FieldMessage)
	}
	if m.observed_value != nil {
		fields = append(fields, alertlog.FieldObservedValue)
	}
	if m.fired_at != nil {
		fields = append(fields, alertlog.FieldFiredAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AlertLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case alertlog.FieldSiteID:
		return m.SiteID()
	case alertlog.FieldRuleID:
		return m.RuleID()
	case alertlog.FieldMessage:
		return m.Message()
	case alertlog.FieldObservedValue:
		return m.ObservedValue()
	case alertlog.FieldFiredAt:
		return m.FiredAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AlertLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case alertlog.FieldSiteID:
		return m.OldSiteID(ctx)
	case alertlog.FieldRuleID:
		return m.OldRuleID(ctx)
	case alertlog.FieldMessage:
		return m.OldMessage(ctx)
	case alertlog.FieldObservedValue:
		return m.OldObservedValue(ctx)
	case alertlog.FieldFiredAt:
		return m.OldFiredAt(ctx)
	}
	return nil, fmt.Errorf("unknown AlertLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AlertLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case alertlog.FieldSiteID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSiteID(v)
		return nil
	case alertlog.FieldRuleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRuleID(v)
		return nil
	case alertlog.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case alertlog.FieldObservedValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObservedValue(v)
		return nil
	case alertlog.FieldFiredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFiredAt(v)
		return nil
	}
	return fmt.Errorf("unknown AlertLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AlertLogMutation) AddedFields() []string {
	var fields []string
	if m.addobserved_value != nil {
		fields = append(fields, alertlog.FieldObservedValue)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AlertLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case alertlog.FieldObservedValue:
		return m.AddedObservedValue()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AlertLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case alertlog.FieldObservedValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddObservedValue(v)
		return nil
	}
	return fmt.Errorf("unknown AlertLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AlertLogMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AlertLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AlertLogMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AlertLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AlertLogMutation) ResetField(name string) error {
	switch name {
	case alertlog.FieldSiteID:
		m.ResetSiteID()
		return nil
	case alertlog.FieldRuleID:
		m.ResetRuleID()
		return nil
	case alertlog.FieldMessage:
		m.ResetMessage()
		return nil
	case alertlog.FieldObservedValue:
		m.ResetObservedValue()
		return nil
	case alertlog.FieldFiredAt:
		m.ResetFiredAt()
		return nil
	}
	return fmt.Errorf("unknown AlertLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AlertLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.site != nil {
		edges = append(edges, alertlog.EdgeSite)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AlertLogMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case alertlog.EdgeSite:
		if id := m.site; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AlertLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AlertLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AlertLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsite {
		edges = append(edges, alertlog.EdgeSite)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AlertLogMutation) EdgeCleared(name string) bool {
	switch name {
	case alertlog.EdgeSite:
		return m.clearedsite
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AlertLogMutation) ClearEdge(name string) error {
	switch name {
	case alertlog.EdgeSite:
		m.ClearSite()
		return nil
	}
	return fmt.Errorf("unknown AlertLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AlertLogMutation) ResetEdge(name string) error {
	switch name {
	case alertlog.EdgeSite:
		m.ResetSite()
		return nil
	}
	return fmt.Errorf("unknown AlertLog edge %s", name)
}

// AlertRuleMutation represents an operation that mutates the AlertRule nodes in the graph.
type AlertRuleMutation struct {
	config
	op            Op
	typ           string
	id            *string
	metric        *string
	operator      *alertrule.Operator
	threshold     *float64
	addthreshold  *float64
	enabled       *bool
	created_at    *time.Time
	clearedFields map[string]struct{}
	site          *string
	clearedsite   bool
	done          bool
	oldValue      func(context.Context) (*AlertRule, error)
	predicates    []predicate.AlertRule
}

var _ ent.Mutation = (*AlertRuleMutation)(nil)

// alertruleOption allows management of the mutation configuration using functional options.
type alertruleOption func(*AlertRuleMutation)

// newAlertRuleMutation creates new mutation for the AlertRule entity.
func newAlertRuleMutation(c config, op Op, opts ...alertruleOption) *AlertRuleMutation {
	m := &AlertRuleMutation{
		config:        c,
		op:            op,
		typ:           TypeAlertRule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAlertRuleID sets the ID field of the mutation.
func withAlertRuleID(id string) alertruleOption {
	return func(m *AlertRuleMutation) {
		var (
			err   error
			once  sync.Once
			value *AlertRule
		)
		m.oldValue = func(ctx context.Context) (*AlertRule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AlertRule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAlertRule sets the old AlertRule of the mutation.
func withAlertRule(node *AlertRule) alertruleOption {
	return func(m *AlertRuleMutation) {
		m.oldValue = func(context.Context) (*AlertRule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AlertRuleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AlertRuleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AlertRule entities.
func (m *AlertRuleMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AlertRuleMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AlertRuleMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AlertRule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSiteID sets the "site_id" field.
func (m *AlertRuleMutation) SetSiteID(s string) {
	m.site = &s
}

// SiteID returns the value of the "site_id" field in the mutation.
func (m *AlertRuleMutation) SiteID() (r string, exists bool) {
	v := m.site
	if v == nil {
		return
	}
	return *v, true
}

// OldSiteID returns the old "site_id" field's value of the AlertRule entity.
// If the AlertRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertRuleMutation) OldSiteID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSiteID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSiteID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSiteID: %w", err)
	}
	return oldValue.SiteID, nil
}

// ResetSiteID resets all changes to the "site_id" field.
func (m *AlertRuleMutation) ResetSiteID() {
	m.site = nil
}

// SetMetric sets the "metric" field.
func (m *AlertRuleMutation) SetMetric(s string) {
	m.metric = &s
}

// Metric returns the value of the "metric" field in the mutation.
func (m *AlertRuleMutation) Metric() (r string, exists bool) {
	v := m.metric
	if v == nil {
		return
	}
	return *v, true
}

// OldMetric returns the old "metric" field's value of the AlertRule entity.
// If the AlertRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertRuleMutation) OldMetric(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetric is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetric requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetric: %w", err)
	}
	return oldValue.Metric, nil
}

// ResetMetric resets all changes to the "metric" field.
func (m *AlertRuleMutation) ResetMetric() {
	m.metric = nil
}

// SetOperator sets the "operator" field.
func (m *AlertRuleMutation) SetOperator(a alertrule.Operator) {
	m.operator = &a
}

// Operator returns the value of the "operator" field in the mutation.
func (m *AlertRuleMutation) Operator() (r alertrule.Operator, exists bool) {
	v := m.operator
	if v == nil {
		return
	}
	return *v, true
}

// OldOperator returns the old "operator" field's value of the AlertRule entity.
// If the AlertRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertRuleMutation) OldOperator(ctx context.Context) (v alertrule.Operator, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperator is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperator requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperator: %w", err)
	}
	return oldValue.Operator, nil
}

// ResetOperator resets all changes to the "operator" field.
func (m *AlertRuleMutation) ResetOperator() {
	m.operator = nil
}

// SetThreshold sets the "threshold" field.
func (m *AlertRuleMutation) SetThreshold(f float64) {
	m.threshold = &f
	m.addthreshold = nil
}

// Threshold returns the value of the "threshold" field in the mutation.
func (m *AlertRuleMutation) Threshold() (r float64, exists bool) {
	v := m.threshold
	if v == nil {
		return
	}
	return *v, true
}

// OldThreshold returns the old "threshold" field's value of the AlertRule entity.
// If the AlertRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertRuleMutation) OldThreshold(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThreshold is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThreshold requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThreshold: %w", err)
	}
	return oldValue.Threshold, nil
}

// AddThreshold adds f to the "threshold" field.
func (m *AlertRuleMutation) AddThreshold(f float64) {
	if m.addthreshold != nil {
		*m.addthreshold += f
	} else {
		m.addthreshold = &f
	}
}

// AddedThreshold returns the value that was added to the "threshold" field in this mutation.
func (m *AlertRuleMutation) AddedThreshold() (r float64, exists bool) {
	v := m.addthreshold
	if v == nil {
		return
	}
	return *v, true
}

// ResetThreshold resets all changes to the "threshold" field.
func (m *AlertRuleMutation) ResetThreshold() {
	m.threshold = nil
	m.addthreshold = nil
}

// SetEnabled sets the "enabled" field.
func (m *AlertRuleMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *AlertRuleMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the AlertRule entity.
// If the AlertRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertRuleMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *AlertRuleMutation) ResetEnabled() {
	m.enabled = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AlertRuleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AlertRuleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AlertRule entity.
// If the AlertRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertRuleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AlertRuleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSite clears the "site" edge to the Site entity.
func (m *AlertRuleMutation) ClearSite() {
	m.clearedsite = true
	m.clearedFields[alertrule.FieldSiteID] = struct{}{}
}

// SiteCleared reports if the "site" edge to the Site entity was cleared.
func (m *AlertRuleMutation) SiteCleared() bool {
	return m.clearedsite
}

// SiteIDs returns the "site" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SiteID instead. It exists only for internal usage by the builders.
func (m *AlertRuleMutation) SiteIDs() (ids []string) {
	if id := m.site; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSite resets all changes to the "site" edge.
func (m *AlertRuleMutation) ResetSite() {
	m.site = nil
	m.clearedsite = false
}

// Where appends a list predicates to the AlertRuleMutation builder.
func (m *AlertRuleMutation) Where(ps ...predicate.AlertRule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AlertRuleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AlertRuleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AlertRule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AlertRuleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AlertRuleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AlertRule).
func (m *AlertRuleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AlertRuleMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.site != nil {
		fields = append(fields, alertrule.FieldSiteID)
	}
	if m.metric != nil {
		fields = append(fields, alertrule.FieldMetric)
	}
	if m.operator != nil {
		fields = append(fields, alertrule.FieldOperator)
	}
	if m.threshold != nil {
		fields = append(fields, alertrule.FieldThreshold)
	}
	if m.enabled != nil {
		fields = append(fields, alertrule.FieldEnabled)
	}
	if m.created_at != nil {
		fields = append(fields, alertrule.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AlertRuleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case alertrule.FieldSiteID:
		return m.SiteID()
	case alertrule.FieldMetric:
		return m.Metric()
	case alertrule.FieldOperator:
		return m.Operator()
	case alertrule.FieldThreshold:
		return m.Threshold()
	case alertrule.FieldEnabled:
		return m.Enabled()
	case alertrule.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AlertRuleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case alertrule.FieldSiteID:
		return m.OldSiteID(ctx)
	case alertrule.FieldMetric:
		return m.OldMetric(ctx)
	case alertrule.FieldOperator:
		return m.OldOperator(ctx)
	case alertrule.FieldThreshold:
		return m.OldThreshold(ctx)
	case alertrule.FieldEnabled:
		return m.OldEnabled(ctx)
	case alertrule.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AlertRule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AlertRuleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case alertrule.FieldSiteID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSiteID(v)
		return nil
	case alertrule.FieldMetric:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetric(v)
		return nil
	case alertrule.FieldOperator:
		v, ok := value.(alertrule.Operator)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperator(v)
		return nil
	case alertrule.FieldThreshold:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThreshold(v)
		return nil
	case alertrule.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case alertrule.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AlertRule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AlertRuleMutation) AddedFields() []string {
	var fields []string
	if m.addthreshold != nil {
		fields = append(fields, alertrule.FieldThreshold)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AlertRuleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case alertrule.FieldThreshold:
		return m.AddedThreshold()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AlertRuleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case alertrule.FieldThreshold:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddThreshold(v)
		return nil
	}
	return fmt.Errorf("unknown AlertRule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AlertRuleMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AlertRuleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AlertRuleMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AlertRule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AlertRuleMutation) ResetField(name string) error {
	switch name {
	case alertrule.FieldSiteID:
		m.ResetSiteID()
		return nil
	case alertrule.FieldMetric:
		m.ResetMetric()
		return nil
	case alertrule.FieldOperator:
		m.ResetOperator()
		return nil
	case alertrule.FieldThreshold:
		m.ResetThreshold()
		return nil
	case alertrule.FieldEnabled:
		m.ResetEnabled()
		return nil
	case alertrule.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AlertRule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AlertRuleMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.site != nil {
		edges = append(edges, alertrule.EdgeSite)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AlertRuleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case alertrule.EdgeSite:
		if id := m.site; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AlertRuleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AlertRuleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AlertRuleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsite {
		edges = append(edges, alertrule.EdgeSite)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AlertRuleMutation) EdgeCleared(name string) bool {
	switch name {
	case alertrule.EdgeSite:
		return m.clearedsite
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AlertRuleMutation) ClearEdge(name string) error {
	switch name {
	case alertrule.EdgeSite:
		m.ClearSite()
		return nil
	}
	return fmt.Errorf("unknown AlertRule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AlertRuleMutation) ResetEdge(name string) error {
	switch name {
	case alertrule.EdgeSite:
		m.ResetSite()
		return nil
	}
	return fmt.Errorf("unknown AlertRule edge %s", name)
}

// AssetOverrideMutation represents an operation that mutates the AssetOverride nodes in the graph.
type AssetOverrideMutation struct {
	config
	op            Op
	typ           string
	id            *string
	url_pattern   *string
	asset_class   *string
	settings      *map[string]interface{}
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	site          *string
	clearedsite   bool
	done          bool
	oldValue      func(context.Context) (*AssetOverride, error)
	predicates    []predicate.AssetOverride
}

var _ ent.Mutation = (*AssetOverrideMutation)(nil)

// assetoverrideOption allows management of the mutation configuration using functional options.
type assetoverrideOption func(*AssetOverrideMutation)

// newAssetOverrideMutation creates new mutation for the AssetOverride entity.
func newAssetOverrideMutation(c config, op Op, opts ...assetoverrideOption) *AssetOverrideMutation {
	m := &AssetOverrideMutation{
		config:        c,
		op:            op,
		typ:           TypeAssetOverride,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAssetOverrideID sets the ID field of the mutation.
func withAssetOverrideID(id string) assetoverrideOption {
	return func(m *AssetOverrideMutation) {
		var (
			err   error
			once  sync.Once
			value *AssetOverride
		)
		m.oldValue = func(ctx context.Context) (*AssetOverride, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AssetOverride.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAssetOverride sets the old AssetOverride of the mutation.
func withAssetOverride(node *AssetOverride) assetoverrideOption {
	return func(m *AssetOverrideMutation) {
		m.oldValue = func(context.Context) (*AssetOverride, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AssetOverrideMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AssetOverrideMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AssetOverride entities.
func (m *AssetOverrideMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AssetOverrideMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AssetOverrideMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AssetOverride.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSiteID sets the "site_id" field.
func (m *AssetOverrideMutation) SetSiteID(s string) {
	m.site = &s
}

// SiteID returns the value of the "site_id" field in the mutation.
func (m *AssetOverrideMutation) SiteID() (r string, exists bool) {
	v := m.site
	if v == nil {
		return
	}
	return *v, true
}

// OldSiteID returns the old "site_id" field's value of the AssetOverride entity.
// If the AssetOverride object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetOverrideMutation) OldSiteID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSiteID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSiteID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSiteID: %w", err)
	}
	return oldValue.SiteID, nil
}

// ResetSiteID resets all changes to the "site_id" field.
func (m *AssetOverrideMutation) ResetSiteID() {
	m.site = nil
}

// SetURLPattern sets the "url_pattern" field.
func (m *AssetOverrideMutation) SetURLPattern(s string) {
	m.url_pattern = &s
}

// URLPattern returns the value of the "url_pattern" field in the mutation.
func (m *AssetOverrideMutation) URLPattern() (r string, exists bool) {
	v := m.url_pattern
	if v == nil {
		return
	}
	return *v, true
}

// OldURLPattern returns the old "url_pattern" field's value of the AssetOverride entity.
// If the AssetOverride object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetOverrideMutation) OldURLPattern(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURLPattern is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURLPattern requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURLPattern: %w", err)
	}
	return oldValue.URLPattern, nil
}

// ResetURLPattern resets all changes to the "url_pattern" field.
func (m *AssetOverrideMutation) ResetURLPattern() {
	m.url_pattern = nil
}

// SetAssetClass sets the "asset_class" field.
func (m *AssetOverrideMutation) SetAssetClass(s string) {
	m.asset_class = &s
}

// AssetClass returns the value of the "asset_class" field in the mutation.
func (m *AssetOverrideMutation) AssetClass() (r string, exists bool) {
	v := m.asset_class
	if v == nil {
		return
	}
	return *v, true
}

// OldAssetClass returns the old "asset_class" field's value of the AssetOverride entity.
// If the AssetOverride object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetOverrideMutation) OldAssetClass(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssetClass is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssetClass requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssetClass: %w", err)
	}
	return oldValue.AssetClass, nil
}

// ClearAssetClass clears the value of the "asset_class" field.
func (m *AssetOverrideMutation) ClearAssetClass() {
	m.asset_class = nil
	m.clearedFields[assetoverride.FieldAssetClass] = struct{}{}
}

// AssetClassCleared returns if the "asset_class" field was cleared in this mutation.
func (m *AssetOverrideMutation) AssetClassCleared() bool {
	_, ok := m.clearedFields[assetoverride.FieldAssetClass]
	return ok
}

// ResetAssetClass resets all changes to the "asset_class" field.
func (m *AssetOverrideMutation) ResetAssetClass() {
	m.asset_class = nil
	delete(m.clearedFields, assetoverride.FieldAssetClass)
}

// SetSettings sets the "settings" field.
func (m *AssetOverrideMutation) SetSettings(value map[string]interface{}) {
	m.settings = &value
}

// Settings returns the value of the "settings" field in the mutation.
func (m *AssetOverrideMutation) Settings() (r map[string]interface{}, exists bool) {
	v := m.settings
	if v == nil {
		return
	}
	return *v, true
}

// OldSettings returns the old "settings" field's value of the AssetOverride entity.
// If the AssetOverride object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetOverrideMutation) OldSettings(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSettings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSettings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSettings: %w", err)
	}
	return oldValue.Settings, nil
}

// ResetSettings resets all changes to the "settings" field.
func (m *AssetOverrideMutation) ResetSettings() {
	m.settings = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AssetOverrideMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AssetOverrideMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AssetOverride entity.
// If the AssetOverride object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetOverrideMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AssetOverrideMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AssetOverrideMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AssetOverrideMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AssetOverride entity.
// If the AssetOverride object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetOverrideMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AssetOverrideMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearSite clears the "site" edge to the Site entity.
func (m *AssetOverrideMutation) ClearSite() {
	m.clearedsite = true
	m.clearedFields[assetoverride.FieldSiteID] = struct{}{}
}

// SiteCleared reports if the "site" edge to the Site entity was cleared.
func (m *AssetOverrideMutation) SiteCleared() bool {
	return m.clearedsite
}

// SiteIDs returns the "site" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SiteID instead. It exists only for internal usage by the builders.
func (m *AssetOverrideMutation) SiteIDs() (ids []string) {
	if id := m.site; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSite resets all changes to the "site" edge.
func (m *AssetOverrideMutation) ResetSite() {
	m.site = nil
	m.clearedsite = false
}

// Where appends a list predicates to the AssetOverrideMutation builder.
func (m *AssetOverrideMutation) Where(ps ...predicate.AssetOverride) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AssetOverrideMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AssetOverrideMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AssetOverride, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AssetOverrideMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AssetOverrideMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AssetOverride).
func (m *AssetOverrideMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AssetOverrideMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.site != nil {
		fields = append(fields, assetoverride.FieldSiteID)
	}
	if m.url_pattern != nil {
		fields = append(fields, assetoverride.FieldURLPattern)
	}
	if m.asset_class != nil {
		fields = append(fields, assetoverride.FieldAssetClass)
	}
	if m.settings != nil {
		fields = append(fields, assetoverride.FieldSettings)
	}
	if m.created_at != nil {
		fields = append(fields, assetoverride.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, assetoverride.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AssetOverrideMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case assetoverride.FieldSiteID:
		return m.SiteID()
	case assetoverride.FieldURLPattern:
		return m.URLPattern()
	case assetoverride.FieldAssetClass:
		return m.AssetClass()
	case assetoverride.FieldSettings:
		return m.Settings()
	case assetoverride.FieldCreatedAt:
		return m.CreatedAt()
	case assetoverride.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AssetOverrideMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case assetoverride.FieldSiteID:
		return m.OldSiteID(ctx)
	case assetoverride.FieldURLPattern:
		return m.OldURLPattern(ctx)
	case assetoverride.FieldAssetClass:
		return m.OldAssetClass(ctx)
	case assetoverride.FieldSettings:
		return m.OldSettings(ctx)
	case assetoverride.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case assetoverride.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AssetOverride field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssetOverrideMutation) SetField(name string, value ent.Value) error {
	switch name {
	case assetoverride.FieldSiteID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSiteID(v)
		return nil
	case assetoverride.FieldURLPattern:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURLPattern(v)
		return nil
	case assetoverride.FieldAssetClass:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssetClass(v)
		return nil
	case assetoverride.FieldSettings:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSettings(v)
		return nil
	case assetoverride.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case assetoverride.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AssetOverride field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AssetOverrideMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AssetOverrideMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssetOverrideMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AssetOverride numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AssetOverrideMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(assetoverride.FieldAssetClass) {
		fields = append(fields, assetoverride.FieldAssetClass)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AssetOverrideMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AssetOverrideMutation) ClearField(name string) error {
	switch name {
	case assetoverride.FieldAssetClass:
		m.ClearAssetClass()
		return nil
	}
	return fmt.Errorf("unknown AssetOverride nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AssetOverrideMutation) ResetField(name string) error {
	switch name {
	case assetoverride.FieldSiteID:
		m.ResetSiteID()
		return nil
	case assetoverride.FieldURLPattern:
		m.ResetURLPattern()
		return nil
	case assetoverride.FieldAssetClass:
		m.ResetAssetClass()
		return nil
	case assetoverride.FieldSettings:
		m.ResetSettings()
		return nil
	case assetoverride.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case assetoverride.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AssetOverride field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AssetOverrideMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.site != nil {
		edges = append(edges, assetoverride.EdgeSite)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AssetOverrideMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case assetoverride.EdgeSite:
		if id := m.site; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AssetOverrideMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AssetOverrideMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AssetOverrideMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsite {
		edges = append(edges, assetoverride.EdgeSite)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AssetOverrideMutation) EdgeCleared(name string) bool {
	switch name {
	case assetoverride.EdgeSite:
		return m.clearedsite
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AssetOverrideMutation) ClearEdge(name string) error {
	switch name {
	case assetoverride.EdgeSite:
		m.ClearSite()
		return nil
	}
	return fmt.Errorf("unknown AssetOverride unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AssetOverrideMutation) ResetEdge(name string) error {
	switch name {
	case assetoverride.EdgeSite:
		m.ResetSite()
		return nil
	}
	return fmt.Errorf("unknown AssetOverride edge %s", name)
}

// BuildMutation represents an operation that mutates the Build nodes in the graph.
type BuildMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	scope               *build.Scope
	triggered_by        *build.TriggeredBy
	status              *build.Status
	current_phase       *string
	checkpoint_phase    *string
	pages_total         *int
	addpages_total      *int
	pages_processed     *int
	addpages_processed  *int
	original_bytes      *map[string]int64
	optimized_bytes     *map[string]int64
	iframes_replaced    *int
	addiframes_replaced *int
	scripts_removed     *int
	addscripts_removed  *int
	score_before        *float64
	addscore_before     *float64
	score_after         *float64
	addscore_after      *float64
	error_phase         *string
	error_step          *string
	error_message       *string
	error_retryable     *bool
	resolved_settings   *map[string]interface{}
	log                 *[]map[string]interface{}
	appendlog           []map[string]interface{}
	retry_count         *int
	addretry_count      *int
	created_at          *time.Time
	started_at          *time.Time
	completed_at        *time.Time
	clearedFields       map[string]struct{}
	site                *string
	clearedsite         bool
	done                bool
	oldValue            func(context.Context) (*Build, error)
	predicates          []predicate.Build
}

var _ ent.Mutation = (*BuildMutation)(nil)

// buildOption allows management of the mutation configuration using functional options.
type buildOption func(*BuildMutation)

// newBuildMutation creates new mutation for the Build entity.
func newBuildMutation(c config, op Op, opts ...buildOption) *BuildMutation {
	m := &BuildMutation{
		config:        c,
		op:            op,
		typ:           TypeBuild,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBuildID sets the ID field of the mutation.
func withBuildID(id string) buildOption {
	return func(m *BuildMutation) {
		var (
			err   error
			once  sync.Once
			value *Build
		)
		m.oldValue = func(ctx context.Context) (*Build, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Build.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBuild sets the old Build of the mutation.
func withBuild(node *Build) buildOption {
	return func(m *BuildMutation) {
		m.oldValue = func(context.Context) (*Build, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BuildMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BuildMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Build entities.
func (m *BuildMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BuildMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BuildMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Build.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSiteID sets the "site_id" field.
func (m *BuildMutation) SetSiteID(s string) {
	m.site = &s
}

// SiteID returns the value of the "site_id" field in the mutation.
func (m *BuildMutation) SiteID() (r string, exists bool) {
	v := m.site
	if v == nil {
		return
	}
	return *v, true
}

// OldSiteID returns the old "site_id" field's value of the Build entity.
// If the Build object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildMutation) OldSiteID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSiteID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSiteID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSiteID: %w", err)
	}
	return oldValue.SiteID, nil
}

// ResetSiteID resets all changes to the "site_id" field.
func (m *BuildMutation) ResetSiteID() {
	m.site = nil
}

// SetScope sets the "scope" field.
func (m *BuildMutation) SetScope(b build.Scope) {
	m.scope = &b
}

// Scope returns the value of the "scope" field in the mutation.
func (m *BuildMutation) Scope() (r build.Scope, exists bool) {
	v := m.scope
	if v == nil {
		return
	}
	return *v, true
}

// OldScope returns the old "scope" field's value of the Build entity.
// If the Build object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildMutation) OldScope(ctx context.Context) (v build.Scope, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScope is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScope requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScope: %w", err)
	}
	return oldValue.Scope, nil
}

// ResetScope resets all changes to the "scope" field.
func (m *BuildMutation) ResetScope() {
	m.scope = nil
}

// SetTriggeredBy sets the "triggered_by" field.
func (m *BuildMutation) SetTriggeredBy(bb build.TriggeredBy) {
	m.triggered_by = &bb
}

// TriggeredBy returns the value of the "triggered_by" field in the mutation.
func (m *BuildMutation) TriggeredBy() (r build.TriggeredBy, exists bool) {
	v := m.triggered_by
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggeredBy returns the old "triggered_by" field's value of the Build entity.
// If the Build object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildMutation) OldTriggeredBy(ctx context.Context) (v build.TriggeredBy, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggeredBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggeredBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggeredBy: %w", err)
	}
	return oldValue.TriggeredBy, nil
}

// ResetTriggeredBy resets all changes to the "triggered_by" field.
func (m *BuildMutation) ResetTriggeredBy() {
	m.triggered_by = nil
}

// SetStatus sets the "status" field.
func (m *BuildMutation) SetStatus(b build.Status) {
	m.status = &b
}

// Status returns the value of the "status" field in the mutation.
func (m *BuildMutation) Status() (r build.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Build entity.
// If the Build object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildMutation) OldStatus(ctx context.Context) (v build.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *BuildMutation) ResetStatus() {
	m.status = nil
}

// SetCurrentPhase sets the "current_phase" field.
func (m *BuildMutation) SetCurrentPhase(s string) {
	m.current_phase = &s
}

// CurrentPhase returns the value of the "current_phase" field in the mutation.
func (m *BuildMutation) CurrentPhase() (r string, exists bool) {
	v := m.current_phase
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentPhase returns the old "current_phase" field's value of the Build entity.
// If the Build object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildMutation) OldCurrentPhase(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentPhase: %w", err)
	}
	return oldValue.CurrentPhase, nil
}

// ClearCurrentPhase clears the value of the "current_phase" field.
func (m *BuildMutation) ClearCurrentPhase() {
	m.current_phase = nil
	m.clearedFields[build.FieldCurrentPhase] = struct{}{}
}

// CurrentPhaseCleared returns if the "current_phase" field was cleared in this mutation.
func (m *BuildMutation) CurrentPhaseCleared() bool {
	_, ok := m.clearedFields[build.FieldCurrentPhase]
	return ok
}

// ResetCurrentPhase resets all changes to the "current_phase" field.
func (m *BuildMutation) ResetCurrentPhase() {
	m.current_phase = nil
	delete(m.clearedFields, build.FieldCurrentPhase)
}

// SetCheckpointPhase sets the "checkpoint_phase" field.
func (m *BuildMutation) SetCheckpointPhase(s string) {
	m.checkpoint_phase = &s
}

// CheckpointPhase returns the value of the "checkpoint_phase" field in the mutation.
func (m *BuildMutation) CheckpointPhase() (r string, exists bool) {
	v := m.checkpoint_phase
	if v == nil {
		return
	}
	return *v, true
}

// OldCheckpointPhase returns the old "checkpoint_phase" field's value of the Build entity.
// If the Build object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildMutation) OldCheckpointPhase(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCheckpointPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCheckpointPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCheckpointPhase: %w", err)
	}
	return oldValue.CheckpointPhase, nil
}

// ClearCheckpointPhase clears the value of the "checkpoint_phase" field.
func (m *BuildMutation) ClearCheckpointPhase() {
	m.checkpoint_phase = nil
	m.clearedFields[build.FieldCheckpointPhase] = struct{}{}
}

// CheckpointPhaseCleared returns if the "checkpoint_phase" field was cleared in this mutation.
func (m *BuildMutation) CheckpointPhaseCleared() bool {
	_, ok := m.clearedFields[build.FieldCheckpointPhase]
	return ok
}

// ResetCheckpointPhase resets all changes to the "checkpoint_phase" field.
func (m *BuildMutation) ResetCheckpointPhase() {
	m.checkpoint_phase = nil
	delete(m.clearedFields, build.FieldCheckpointPhase)
}

// SetPagesTotal sets the "pages_total" field.
func (m *BuildMutation) SetPagesTotal(i int) {
	m.pages_total = &i
	m.addpages_total = nil
}

// PagesTotal returns the value of the "pages_total" field in the mutation.
func (m *BuildMutation) PagesTotal() (r int, exists bool) {
	v := m.pages_total
	if v == nil {
		return
	}
	return *v, true
}

// OldPagesTotal returns the old "pages_total" field's value of the Build entity.
// If the Build object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildMutation) OldPagesTotal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPagesTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPagesTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPagesTotal: %w", err)
	}
	return oldValue.PagesTotal, nil
}

// AddPagesTotal adds i to the "pages_total" field.
func (m *BuildMutation) AddPagesTotal(i int) {
	if m.addpages_total != nil {
		*m.addpages_total += i
	} else {
		m.addpages_total = &i
	}
}

// AddedPagesTotal returns the value that was added to the "pages_total" field in this mutation.
func (m *BuildMutation) AddedPagesTotal() (r int, exists bool) {
	v := m.addpages_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetPagesTotal resets all changes to the "pages_total" field.
func (m *BuildMutation) ResetPagesTotal() {
	m.pages_total = nil
	m.addpages_total = nil
}

// SetPagesProcessed sets the "pages_processed" field.
func (m *BuildMutation) SetPagesProcessed(i int) {
	m.pages_processed = &i
	m.addpages_processed = nil
}

// PagesProcessed returns the value of the "pages_processed" field in the mutation.
func (m *BuildMutation) PagesProcessed() (r int, exists bool) {
	v := m.pages_processed
	if v == nil {
		return
	}
	return *v, true
}

// OldPagesProcessed returns the old "pages_processed" field's value of the Build entity.
// If the Build object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildMutation) OldPagesProcessed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPagesProcessed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPagesProcessed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPagesProcessed: %w", err)
	}
	return oldValue.PagesProcessed, nil
}

// AddPagesProcessed adds i to the "pages_processed" field.
func (m *BuildMutation) AddPagesProcessed(i int) {
	if m.addpages_processed != nil {
		*m.addpages_processed += i
	} else {
		m.addpages_processed = &i
	}
}

// AddedPagesProcessed returns the value that was added to the "pages_processed" field in this mutation.
func (m *BuildMutation) AddedPagesProcessed() (r int, exists bool) {
	v := m.addpages_processed
	if v == nil {
		return
	}
	return *v, true
}

// ResetPagesProcessed resets all changes to the "pages_processed" field.
func (m *BuildMutation) ResetPagesProcessed() {
	m.pages_processed = nil
	m.addpages_processed = nil
}

// SetOriginalBytes sets the "original_bytes" field.
func (m *BuildMutation) SetOriginalBytes(value map[string]int64) {
	m.original_bytes = &value
}

// OriginalBytes returns the value of the "original_bytes" field in the mutation.
func (m *BuildMutation) OriginalBytes() (r map[string]int64, exists bool) {
	v := m.original_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalBytes returns the old "original_bytes" field's value of the Build entity.
// If the Build object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildMutation) OldOriginalBytes(ctx context.Context) (v map[string]int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalBytes: %w", err)
	}
	return oldValue.OriginalBytes, nil
}

// ClearOriginalBytes clears the value of the "original_bytes" field.
func (m *BuildMutation) ClearOriginalBytes() {
	m.original_bytes = nil
	m.clearedFields[build.FieldOriginalBytes] = struct{}{}
}

// OriginalBytesCleared returns if the "original_bytes" field was cleared in this mutation.
func (m *BuildMutation) OriginalBytesCleared() bool {
	_, ok := m.clearedFields[build.FieldOriginalBytes]
	return ok
}

// ResetOriginalBytes resets all changes to the "original_bytes" field.
func (m *BuildMutation) ResetOriginalBytes() {
	m.original_bytes = nil
	delete(m.clearedFields, build.FieldOriginalBytes)
}

// SetOptimizedBytes sets the "optimized_bytes" field.
func (m *BuildMutation) SetOptimizedBytes(value map[string]int64) {
	m.optimized_bytes = &value
}

// OptimizedBytes returns the value of the "optimized_bytes" field in the mutation.
func (m *BuildMutation) OptimizedBytes() (r map[string]int64, exists bool) {
	v := m.optimized_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldOptimizedBytes returns the old "optimized_bytes" field's value of the Build entity.
// If the Build object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildMutation) OldOptimizedBytes(ctx context.Context) (v map[string]int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptimizedBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptimizedBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptimizedBytes: %w", err)
	}
	return oldValue.OptimizedBytes, nil
}

// ClearOptimizedBytes clears the value of the "optimized_bytes" field.
func (m *BuildMutation) ClearOptimizedBytes() {
	m.optimized_bytes = nil
	m.clearedFields[build.FieldOptimizedBytes] = struct{}{}
}

// OptimizedBytesCleared returns if the "optimized_bytes" field was cleared in this mutation.
func (m *BuildMutation) OptimizedBytesCleared() bool {
	_, ok := m.clearedFields[build.FieldOptimizedBytes]
	return ok
}

// ResetOptimizedBytes resets all changes to the "optimized_bytes" field.
func (m *BuildMutation) ResetOptimizedBytes() {
	m.optimized_bytes = nil
	delete(m.clearedFields, build.FieldOptimizedBytes)
}

// SetIframesReplaced sets the "iframes_replaced" field.
func (m *BuildMutation) SetIframesReplaced(i int) {
	m.iframes_replaced = &i
	m.addiframes_replaced = nil
}

// IframesReplaced returns the value of the "iframes_replaced" field in the mutation.
func (m *BuildMutation) IframesReplaced() (r int, exists bool) {
	v := m.iframes_replaced
	if v == nil {
		return
	}
	return *v, true
}

// OldIframesReplaced returns the old "iframes_replaced" field's value of the Build entity.
// If the Build object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildMutation) OldIframesReplaced(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIframesReplaced is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIframesReplaced requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIframesReplaced: %w", err)
	}
	return oldValue.IframesReplaced, nil
}

// AddIframesReplaced adds i to the "iframes_replaced" field.
func (m *BuildMutation) AddIframesReplaced(i int) {
	if m.addiframes_replaced != nil {
		*m.addiframes_replaced += i
	} else {
		m.addiframes_replaced = &i
	}
}

// AddedIframesReplaced returns the value that was added to the "iframes_replaced" field in this mutation.
func (m *BuildMutation) AddedIframesReplaced() (r int, exists bool) {
	v := m.addiframes_replaced
	if v == nil {
		return
	}
	return *v, true
}

// ResetIframesReplaced resets all changes to the "iframes_replaced" field.
func (m *BuildMutation) ResetIframesReplaced() {
	m.iframes_replaced = nil
	m.addiframes_replaced = nil
}

// SetScriptsRemoved sets the "scripts_removed" field.
func (m *BuildMutation) SetScriptsRemoved(i int) {
	m.scripts_removed = &i
	m.addscripts_removed = nil
}

// ScriptsRemoved returns the value of the "scripts_removed" field in the mutation.
func (m *BuildMutation) ScriptsRemoved() (r int, exists bool) {
	v := m.scripts_removed
	if v == nil {
		return
	}
	return *v, true
}

// OldScriptsRemoved returns the old "scripts_removed" field's value of the Build entity.
// If the Build object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildMutation) OldScriptsRemoved(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScriptsRemoved is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScriptsRemoved requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScriptsRemoved: %w", err)
	}
	return oldValue.ScriptsRemoved, nil
}

// AddScriptsRemoved adds i to the "scripts_removed" field.
func (m *BuildMutation) AddScriptsRemoved(i int) {
	if m.addscripts_removed != nil {
		*m.addscripts_removed += i
	} else {
		m.addscripts_removed = &i
	}
}

// AddedScriptsRemoved returns the value that was added to the "scripts_removed" field in this mutation.
func (m *BuildMutation) AddedScriptsRemoved() (r int, exists bool) {
	v := m.addscripts_removed
	if v == nil {
		return
	}
	return *v, true
}

// ResetScriptsRemoved resets all changes to the "scripts_removed" field.
func (m *BuildMutation) ResetScriptsRemoved() {
	m.scripts_removed = nil
	m.addscripts_removed = nil
}

// SetScoreBefore sets the "score_before" field.
func (m *BuildMutation) SetScoreBefore(f float64) {
	m.score_before = &f
	m.addscore_before = nil
}

// ScoreBefore returns the value of the "score_before" field in the mutation.
func (m *BuildMutation) ScoreBefore() (r float64, exists bool) {
	v := m.score_before
	if v == nil {
		return
	}
	return *v, true
}

// OldScoreBefore returns the old "score_before" field's value of the Build entity.
// If the Build object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildMutation) OldScoreBefore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScoreBefore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScoreBefore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScoreBefore: %w", err)
	}
	return oldValue.ScoreBefore, nil
}

// AddScoreBefore adds f to the "score_before" field.
func (m *BuildMutation) AddScoreBefore(f float64) {
	if m.addscore_before != nil {
		*m.addscore_before += f
	} else {
		m.addscore_before = &f
	}
}

// AddedScoreBefore returns the value that was added to the "score_before" field in this mutation.
func (m *BuildMutation) AddedScoreBefore() (r float64, exists bool) {
	v := m.addscore_before
	if v == nil {
		return
	}
	return *v, true
}

// ClearScoreBefore clears the value of the "score_before" field.
func (m *BuildMutation) ClearScoreBefore() {
	m.score_before = nil
	m.addscore_before = nil
	m.clearedFields[build.FieldScoreBefore] = struct{}{}
}

// ScoreBeforeCleared returns if the "score_before" field was cleared in this mutation.
func (m *BuildMutation) ScoreBeforeCleared() bool {
	_, ok := m.clearedFields[build.FieldScoreBefore]
	return ok
}

// ResetScoreBefore resets all changes to the "score_before" field.
func (m *BuildMutation) ResetScoreBefore() {
	m.score_before = nil
	m.addscore_before = nil
	delete(m.clearedFields, build.FieldScoreBefore)
}

// SetScoreAfter sets the "score_after" field.
func (m *BuildMutation) SetScoreAfter(f float64) {
	m.score_after = &f
	m.addscore_after = nil
}

// ScoreAfter returns the value of the "score_after" field in the mutation.
func (m *BuildMutation) ScoreAfter() (r float64, exists bool) {
	v := m.score_after
	if v == nil {
		return
	}
	return *v, true
}

// OldScoreAfter returns the old "score_after" field's value of the Build entity.
// If the Build object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildMutation) OldScoreAfter(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScoreAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScoreAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScoreAfter: %w", err)
	}
	return oldValue.ScoreAfter, nil
}

// AddScoreAfter adds f to the "score_after" field.
func (m *BuildMutation) AddScoreAfter(f float64) {
	if m.addscore_after != nil {
		*m.addscore_after += f
	} else {
		m.addscore_after = &f
	}
}

// AddedScoreAfter returns the value that was added to the "score_after" field in this mutation.
func (m *BuildMutation) AddedScoreAfter() (r float64, exists bool) {
	v := m.addscore_after
	if v == nil {
		return
	}
	return *v, true
}

// ClearScoreAfter clears the value of the "score_after" field.
func (m *BuildMutation) ClearScoreAfter() {
	m.score_after = nil
	m.addscore_after = nil
	m.clearedFields[build.FieldScoreAfter] = struct{}{}
}

// ScoreAfterCleared returns if the "score_after" field was cleared in this mutation.
func (m *BuildMutation) ScoreAfterCleared() bool {
	_, ok := m.clearedFields[build.FieldScoreAfter]
	return ok
}

// ResetScoreAfter resets all changes to the "score_after" field.
func (m *BuildMutation) ResetScoreAfter() {
	m.score_after = nil
	m.addscore_after = nil
	delete(m.clearedFields, build.FieldScoreAfter)
}

// SetErrorPhase sets the "error_phase" field.
func (m *BuildMutation) SetErrorPhase(s string) {
	m.error_phase = &s
}

// ErrorPhase returns the value of the "error_phase" field in the mutation.
func (m *BuildMutation) ErrorPhase() (r string, exists bool) {
	v := m.error_phase
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorPhase returns the old "error_phase" field's value of the Build entity.
// If the Build object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildMutation) OldErrorPhase(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorPhase: %w", err)
	}
	return oldValue.ErrorPhase, nil
}

// ClearErrorPhase clears the value of the "error_phase" field.
func (m *BuildMutation) ClearErrorPhase() {
	m.error_phase = nil
	m.clearedFields[build.FieldErrorPhase] = struct{}{}
}

// ErrorPhaseCleared returns if the "error_phase" field was cleared in this mutation.
func (m *BuildMutation) ErrorPhaseCleared() bool {
	_, ok := m.clearedFields[build.FieldErrorPhase]
	return ok
}

// ResetErrorPhase resets all changes to the "error_phase" field.
func (m *BuildMutation) ResetErrorPhase() {
	m.error_phase = nil
	delete(m.clearedFields, build.FieldErrorPhase)
}

// SetErrorStep sets the "error_step" field.
func (m *BuildMutation) SetErrorStep(s string) {
	m.error_step = &s
}

// ErrorStep returns the value of the "error_step" field in the mutation.
func (m *BuildMutation) ErrorStep() (r string, exists bool) {
	v := m.error_step
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorStep returns the old "error_step" field's value of the Build entity.
// If the Build object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildMutation) OldErrorStep(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorStep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorStep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorStep: %w", err)
	}
	return oldValue.ErrorStep, nil
}

// ClearErrorStep clears the value of the "error_step" field.
func (m *BuildMutation) ClearErrorStep() {
	m.error_step = nil
	m.clearedFields[build.FieldErrorStep] = struct{}{}
}

// ErrorStepCleared returns if the "error_step" field was cleared in this mutation.
func (m *BuildMutation) ErrorStepCleared() bool {
	_, ok := m.clearedFields[build.FieldErrorStep]
	return ok
}

// ResetErrorStep resets all changes to the "error_step" field.
func (m *BuildMutation) ResetErrorStep() {
	m.error_step = nil
	delete(m.clearedFields, build.FieldErrorStep)
}

// SetErrorMessage sets the "error_message" field.
func (m *BuildMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *BuildMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Build entity.
// If the Build object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *BuildMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[build.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *BuildMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[build.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *BuildMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, build.FieldErrorMessage)
}

// SetErrorRetryable sets the "error_retryable" field.
func (m *BuildMutation) SetErrorRetryable(b bool) {
	m.error_retryable = &b
}

// ErrorRetryable returns the value of the "error_retryable" field in the mutation.
func (m *BuildMutation) ErrorRetryable() (r bool, exists bool) {
	v := m.error_retryable
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorRetryable returns the old "error_retryable" field's value of the Build entity.
// If the Build object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildMutation) OldErrorRetryable(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorRetryable is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorRetryable requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorRetryable: %w", err)
	}
	return oldValue.ErrorRetryable, nil
}

// ResetErrorRetryable resets all changes to the "error_retryable" field.
func (m *BuildMutation) ResetErrorRetryable() {
	m.error_retryable = nil
}

// SetResolvedSettings sets the "resolved_settings" field.
func (m *BuildMutation) SetResolvedSettings(value map[string]interface{}) {
	m.resolved_settings = &value
}

// ResolvedSettings returns the value of the "resolved_settings" field in the mutation.
func (m *BuildMutation) ResolvedSettings() (r map[string]interface{}, exists bool) {
	v := m.resolved_settings
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedSettings returns the old "resolved_settings" field's value of the Build entity.
// If the Build object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildMutation) OldResolvedSettings(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedSettings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedSettings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedSettings: %w", err)
	}
	return oldValue.ResolvedSettings, nil
}

// ClearResolvedSettings clears the value of the "resolved_settings" field.
func (m *BuildMutation) ClearResolvedSettings() {
	m.resolved_settings = nil
	m.clearedFields[build.FieldResolvedSettings] = struct{}{}
}

// ResolvedSettingsCleared returns if the "resolved_settings" field was cleared in this mutation.
func (m *BuildMutation) ResolvedSettingsCleared() bool {
	_, ok := m.clearedFields[build.FieldResolvedSettings]
	return ok
}

// ResetResolvedSettings resets all changes to the "resolved_settings" field.
func (m *BuildMutation) ResetResolvedSettings() {
	m.resolved_settings = nil
	delete(m.clearedFields, build.FieldResolvedSettings)
}

// SetLog sets the "log" field.
func (m *BuildMutation) SetLog(value []map[string]interface{}) {
	m.log = &value
	m.appendlog = nil
}

// Log returns the value of the "log" field in the mutation.
func (m *BuildMutation) Log() (r []map[string]interface{}, exists bool) {
	v := m.log
	if v == nil {
		return
	}
	return *v, true
}

// OldLog returns the old "log" field's value of the Build entity.
// If the Build object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildMutation) OldLog(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLog is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLog requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLog: %w", err)
	}
	return oldValue.Log, nil
}

// AppendLog adds value to the "log" field.
func (m *BuildMutation) AppendLog(value []map[string]interface{}) {
	m.appendlog = append(m.appendlog, value...)
}

// AppendedLog returns the list of values that were appended to the "log" field in this mutation.
func (m *BuildMutation) AppendedLog() ([]map[string]interface{}, bool) {
	if len(m.appendlog) == 0 {
		return nil, false
	}
	return m.appendlog, true
}

// ClearLog clears the value of the "log" field.
func (m *BuildMutation) ClearLog() {
	m.log = nil
	m.appendlog = nil
	m.clearedFields[build.FieldLog] = struct{}{}
}

// LogCleared returns if the "log" field was cleared in this mutation.
func (m *BuildMutation) LogCleared() bool {
	_, ok := m.clearedFields[build.FieldLog]
	return ok
}

// ResetLog resets all changes to the "log" field.
func (m *BuildMutation) ResetLog() {
	m.log = nil
	m.appendlog = nil
	delete(m.clearedFields, build.FieldLog)
}

// SetRetryCount sets the "retry_count" field.
func (m *BuildMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *BuildMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the Build entity.
// If the Build object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *BuildMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *BuildMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *BuildMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BuildMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BuildMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Build entity.
// If the Build object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BuildMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *BuildMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *BuildMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Build entity.
// If the Build object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *BuildMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[build.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *BuildMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[build.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *BuildMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, build.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *BuildMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *BuildMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Build entity.
// If the Build object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *BuildMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[build.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *BuildMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[build.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *BuildMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, build.FieldCompletedAt)
}

// ClearSite clears the "site" edge to the Site entity.
func (m *BuildMutation) ClearSite() {
	m.clearedsite = true
	m.clearedFields[build.FieldSiteID] = struct{}{}
}

// SiteCleared reports if the "site" edge to the Site entity was cleared.
func (m *BuildMutation) SiteCleared() bool {
	return m.clearedsite
}

// SiteIDs returns the "site" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SiteID instead. It exists only for internal usage by the builders.
func (m *BuildMutation) SiteIDs() (ids []string) {
	if id := m.site; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSite resets all changes to the "site" edge.
func (m *BuildMutation) ResetSite() {
	m.site = nil
	m.clearedsite = false
}

// Where appends a list predicates to the BuildMutation builder.
func (m *BuildMutation) Where(ps ...predicate.Build) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BuildMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BuildMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Build, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BuildMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BuildMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Build).
func (m *BuildMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BuildMutation) Fields() []string {
	fields := make([]string, 0, 24)
	if m.site != nil {
		fields = append(fields, build.FieldSiteID)
	}
	if m.scope != nil {
		fields = append(fields, build.FieldScope)
	}
	if m.triggered_by != nil {
		fields = append(fields, build.FieldTriggeredBy)
	}
	if m.status != nil {
		fields = append(fields, build.FieldStatus)
	}
	if m.current_phase != nil {
		fields = append(fields, build.FieldCurrentPhase)
	}
	if m.checkpoint_phase != nil {
		fields = append(fields, build.FieldCheckpointPhase)
	}
	if m.pages_total != nil {
		fields = append(fields, build.FieldPagesTotal)
	}
	if m.pages_processed != nil {
		fields = append(fields, build.FieldPagesProcessed)
	}
	if m.original_bytes != nil {
		fields = append(fields, build.FieldOriginalBytes)
	}
	if m.optimized_bytes != nil {
		fields = append(fields, build.FieldOptimizedBytes)
	}
	if m.iframes_replaced != nil {
		fields = append(fields, build.FieldIframesReplaced)
	}
	if m.scripts_removed != nil {
		fields = append(fields, build.FieldScriptsRemoved)
	}
	if m.score_before != nil {
		fields = append(fields, build.FieldScoreBefore)
	}
	if m.score_after != nil {
		fields = append(fields, build.FieldScoreAfter)
	}
	if m.error_phase != nil {
		fields = append(fields, build.FieldErrorPhase)
	}
	if m.error_step != nil {
		fields = append(fields, build.FieldErrorStep)
	}
	if m.error_message != nil {
		fields = append(fields, build.FieldErrorMessage)
	}
	if m.error_retryable != nil {
		fields = append(fields, build.FieldErrorRetryable)
	}
	if m.resolved_settings != nil {
		fields = append(fields, build.FieldResolvedSettings)
	}
	if m.log != nil {
		fields = append(fields, build.FieldLog)
	}
	if m.retry_count != nil {
		fields = append(fields, build.FieldRetryCount)
	}
	if m.created_at != nil {
		fields = append(fields, build.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, build.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, build.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BuildMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case build.FieldSiteID:
		return m.SiteID()
	case build.FieldScope:
		return m.Scope()
	case build.FieldTriggeredBy:
		return m.TriggeredBy()
	case build.FieldStatus:
		return m.Status()
	case build.FieldCurrentPhase:
		return m.CurrentPhase()
	case build.FieldCheckpointPhase:
		return m.CheckpointPhase()
	case build.FieldPagesTotal:
		return m.PagesTotal()
	case build.FieldPagesProcessed:
		return m.PagesProcessed()
	case build.FieldOriginalBytes:
		return m.OriginalBytes()
	case build.FieldOptimizedBytes:
		return m.OptimizedBytes()
	case build.FieldIframesReplaced:
		return m.IframesReplaced()
	case build.FieldScriptsRemoved:
		return m.ScriptsRemoved()
	case build.FieldScoreBefore:
		return m.ScoreBefore()
	case build.FieldScoreAfter:
		return m.ScoreAfter()
	case build.FieldErrorPhase:
		return m.ErrorPhase()
	case build.FieldErrorStep:
		return m.ErrorStep()
	case build.FieldErrorMessage:
		return m.ErrorMessage()
	case build.FieldErrorRetryable:
		return m.ErrorRetryable()
	case build.FieldResolvedSettings:
		return m.ResolvedSettings()
	case build.FieldLog:
		return m.Log()
	case build.FieldRetryCount:
		return m.RetryCount()
	case build.FieldCreatedAt:
		return m.CreatedAt()
	case build.FieldStartedAt:
		return m.StartedAt()
	case build.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BuildMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case build.FieldSiteID:
		return m.OldSiteID(ctx)
	case build.FieldScope:
		return m.OldScope(ctx)
	case build.FieldTriggeredBy:
		return m.OldTriggeredBy(ctx)
	case build.FieldStatus:
		return m.OldStatus(ctx)
	case build.FieldCurrentPhase:
		return m.OldCurrentPhase(ctx)
	case build.FieldCheckpointPhase:
		return m.OldCheckpointPhase(ctx)
	case build.FieldPagesTotal:
		return m.OldPagesTotal(ctx)
	case build.FieldPagesProcessed:
		return m.OldPagesProcessed(ctx)
	case build.FieldOriginalBytes:
		return m.OldOriginalBytes(ctx)
	case build.FieldOptimizedBytes:
		return m.OldOptimizedBytes(ctx)
	case build.FieldIframesReplaced:
		return m.OldIframesReplaced(ctx)
	case build.FieldScriptsRemoved:
		return m.OldScriptsRemoved(ctx)
	case build.FieldScoreBefore:
		return m.OldScoreBefore(ctx)
	case build.FieldScoreAfter:
		return m.OldScoreAfter(ctx)
	case build.FieldErrorPhase:
		return m.OldErrorPhase(ctx)
	case build.FieldErrorStep:
		return m.OldErrorStep(ctx)
	case build.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case build.FieldErrorRetryable:
		return m.OldErrorRetryable(ctx)
	case build.FieldResolvedSettings:
		return m.OldResolvedSettings(ctx)
	case build.FieldLog:
		return m.OldLog(ctx)
	case build.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case build.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case build.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case build.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Build field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BuildMutation) SetField(name string, value ent.Value) error {
	switch name {
	case build.FieldSiteID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSiteID(v)
		return nil
	case build.FieldScope:
		v, ok := value.(build.Scope)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScope(v)
		return nil
	case build.FieldTriggeredBy:
		v, ok := value.(build.TriggeredBy)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggeredBy(v)
		return nil
	case build.FieldStatus:
		v, ok := value.(build.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case build.FieldCurrentPhase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentPhase(v)
		return nil
	case build.FieldCheckpointPhase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCheckpointPhase(v)
		return nil
	case build.FieldPagesTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPagesTotal(v)
		return nil
	case build.FieldPagesProcessed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPagesProcessed(v)
		return nil
	case build.FieldOriginalBytes:
		v, ok := value.(map[string]int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalBytes(v)
		return nil
	case build.FieldOptimizedBytes:
		v, ok := value.(map[string]int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptimizedBytes(v)
		return nil
	case build.FieldIframesReplaced:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIframesReplaced(v)
		return nil
	case build.FieldScriptsRemoved:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScriptsRemoved(v)
		return nil
	case build.FieldScoreBefore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScoreBefore(v)
		return nil
	case build.FieldScoreAfter:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScoreAfter(v)
		return nil
	case build.FieldErrorPhase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorPhase(v)
		return nil
	case build.FieldErrorStep:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorStep(v)
		return nil
	case build.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case build.FieldErrorRetryable:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorRetryable(v)
		return nil
	case build.FieldResolvedSettings:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedSettings(v)
		return nil
	case build.FieldLog:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLog(v)
		return nil
	case build.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case build.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case build.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case build.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Build field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BuildMutation) AddedFields() []string {
	var fields []string
	if m.addpages_total != nil {
		fields = append(fields, build.FieldPagesTotal)
	}
	if m.addpages_processed != nil {
		fields = append(fields, build.FieldPagesProcessed)
	}
	if m.addiframes_replaced != nil {
		fields = append(fields, build.FieldIframesReplaced)
	}
	if m.addscripts_removed != nil {
		fields = append(fields, build.FieldScriptsRemoved)
	}
	if m.addscore_before != nil {
		fields = append(fields, build.FieldScoreBefore)
	}
	if m.addscore_after != nil {
		fields = append(fields, build.FieldScoreAfter)
	}
	if m.addretry_count != nil {
		fields = append(fields, build.FieldRetryCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BuildMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case build.FieldPagesTotal:
		return m.AddedPagesTotal()
	case build.FieldPagesProcessed:
		return m.AddedPagesProcessed()
	case build.FieldIframesReplaced:
		return m.AddedIframesReplaced()
	case build.FieldScriptsRemoved:
		return m.AddedScriptsRemoved()
	case build.FieldScoreBefore:
		return m.AddedScoreBefore()
	case build.FieldScoreAfter:
		return m.AddedScoreAfter()
	case build.FieldRetryCount:
		return m.AddedRetryCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BuildMutation) AddField(name string, value ent.Value) error {
	switch name {
	case build.FieldPagesTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPagesTotal(v)
		return nil
	case build.FieldPagesProcessed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPagesProcessed(v)
		return nil
	case build.FieldIframesReplaced:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIframesReplaced(v)
		return nil
	case build.FieldScriptsRemoved:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScriptsRemoved(v)
		return nil
	case build.FieldScoreBefore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScoreBefore(v)
		return nil
	case build.FieldScoreAfter:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScoreAfter(v)
		return nil
	case build.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	}
	return fmt.Errorf("unknown Build numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BuildMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(build.FieldCurrentPhase) {
		fields = append(fields, build.FieldCurrentPhase)
	}
	if m.FieldCleared(build.FieldCheckpointPhase) {
		fields = append(fields, build.FieldCheckpointPhase)
	}
	if m.FieldCleared(build.FieldOriginalBytes) {
		fields = append(fields, build.FieldOriginalBytes)
	}
	if m.FieldCleared(build.FieldOptimizedBytes) {
		fields = append(fields, build.FieldOptimizedBytes)
	}
	if m.FieldCleared(build.FieldScoreBefore) {
		fields = append(fields, build.FieldScoreBefore)
	}
	if m.FieldCleared(build.FieldScoreAfter) {
		fields = append(fields, build.FieldScoreAfter)
	}
	if m.FieldCleared(build.FieldErrorPhase) {
		fields = append(fields, build.FieldErrorPhase)
	}
	if m.FieldCleared(build.FieldErrorStep) {
		fields = append(fields, build.FieldErrorStep)
	}
	if m.FieldCleared(build.FieldErrorMessage) {
		fields = append(fields, build.FieldErrorMessage)
	}
	if m.FieldCleared(build.FieldResolvedSettings) {
		fields = append(fields, build.FieldResolvedSettings)
	}
	if m.FieldCleared(build.FieldLog) {
		fields = append(fields, build.FieldLog)
	}
	if m.FieldCleared(build.FieldStartedAt) {
		fields = append(fields, build.FieldStartedAt)
	}
	if m.FieldCleared(build.FieldCompletedAt) {
		fields = append(fields, build.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BuildMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BuildMutation) ClearField(name string) error {
	switch name {
	case build.FieldCurrentPhase:
		m.ClearCurrentPhase()
		return nil
	case build.FieldCheckpointPhase:
		m.ClearCheckpointPhase()
		return nil
	case build.FieldOriginalBytes:
		m.ClearOriginalBytes()
		return nil
	case build.FieldOptimizedBytes:
		m.ClearOptimizedBytes()
		return nil
	case build.FieldScoreBefore:
		m.ClearScoreBefore()
		return nil
	case build.FieldScoreAfter:
		m.ClearScoreAfter()
		return nil
	case build.FieldErrorPhase:
		m.ClearErrorPhase()
		return nil
	case build.FieldErrorStep:
		m.ClearErrorStep()
		return nil
	case build.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case build.FieldResolvedSettings:
		m.ClearResolvedSettings()
		return nil
	case build.FieldLog:
		m.ClearLog()
		return nil
	case build.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case build.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Build nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BuildMutation) ResetField(name string) error {
	switch name {
	case build.FieldSiteID:
		m.ResetSiteID()
		return nil
	case build.FieldScope:
		m.ResetScope()
		return nil
	case build.FieldTriggeredBy:
		m.ResetTriggeredBy()
		return nil
	case build.FieldStatus:
		m.ResetStatus()
		return nil
	case build.FieldCurrentPhase:
		m.ResetCurrentPhase()
		return nil
	case build.FieldCheckpointPhase:
		m.ResetCheckpointPhase()
		return nil
	case build.FieldPagesTotal:
		m.ResetPagesTotal()
		return nil
	case build.FieldPagesProcessed:
		m.ResetPagesProcessed()
		return nil
	case build.FieldOriginalBytes:
		m.ResetOriginalBytes()
		return nil
	case build.FieldOptimizedBytes:
		m.ResetOptimizedBytes()
		return nil
	case build.FieldIframesReplaced:
		m.ResetIframesReplaced()
		return nil
	case build.FieldScriptsRemoved:
		m.ResetScriptsRemoved()
		return nil
	case build.FieldScoreBefore:
		m.ResetScoreBefore()
		return nil
	case build.FieldScoreAfter:
		m.ResetScoreAfter()
		return nil
	case build.FieldErrorPhase:
		m.ResetErrorPhase()
		return nil
	case build.FieldErrorStep:
		m.ResetErrorStep()
		return nil
	case build.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case build.FieldErrorRetryable:
		m.ResetErrorRetryable()
		return nil
	case build.FieldResolvedSettings:
		m.ResetResolvedSettings()
		return nil
	case build.FieldLog:
		m.ResetLog()
		return nil
	case build.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case build.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case build.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case build.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Build field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BuildMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.site != nil {
		edges = append(edges, build.EdgeSite)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BuildMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case build.EdgeSite:
		if id := m.site; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BuildMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BuildMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BuildMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsite {
		edges = append(edges, build.EdgeSite)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BuildMutation) EdgeCleared(name string) bool {
	switch name {
	case build.EdgeSite:
		return m.clearedsite
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BuildMutation) ClearEdge(name string) error {
	switch name {
	case build.EdgeSite:
		m.ClearSite()
		return nil
	}
	return fmt.Errorf("unknown Build unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BuildMutation) ResetEdge(name string) error {
	switch name {
	case build.EdgeSite:
		m.ResetSite()
		return nil
	}
	return fmt.Errorf("unknown Build edge %s", name)
}

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op               Op
	typ              string
	id               *string
	kind             *job.Kind
	site_id          *string
	payload          *map[string]interface{}
	status           *job.Status
	attempts         *int
	addattempts      *int
	max_retries      *int
	addmax_retries   *int
	not_before       *time.Time
	lease_expires_at *time.Time
	pod_id           *string
	last_error       *string
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Job, error)
	predicates       []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id string) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKind sets the "kind" field.
func (m *JobMutation) SetKind(j job.Kind) {
	m.kind = &j
}

// Kind returns the value of the "kind" field in the mutation.
func (m *JobMutation) Kind() (r job.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldKind(ctx context.Context) (v job.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *JobMutation) ResetKind() {
	m.kind = nil
}

// SetSiteID sets the "site_id" field.
func (m *JobMutation) SetSiteID(s string) {
	m.site_id = &s
}

// SiteID returns the value of the "site_id" field in the mutation.
func (m *JobMutation) SiteID() (r string, exists bool) {
	v := m.site_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSiteID returns the old "site_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldSiteID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSiteID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSiteID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSiteID: %w", err)
	}
	return oldValue.SiteID, nil
}

// ResetSiteID resets all changes to the "site_id" field.
func (m *JobMutation) ResetSiteID() {
	m.site_id = nil
}

// SetPayload sets the "payload" field.
func (m *JobMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *JobMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *JobMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[job.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *JobMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[job.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *JobMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, job.FieldPayload)
}

// SetStatus sets the "status" field.
func (m *JobMutation) SetStatus(j job.Status) {
	m.status = &j
}

// Status returns the value of the "status" field in the mutation.
func (m *JobMutation) Status() (r job.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStatus(ctx context.Context) (v job.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *JobMutation) ResetStatus() {
	m.status = nil
}

// SetAttempts sets the "attempts" field.
func (m *JobMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *JobMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *JobMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *JobMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *JobMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetMaxRetries sets the "max_retries" field.
func (m *JobMutation) SetMaxRetries(i int) {
	m.max_retries = &i
	m.addmax_retries = nil
}

// MaxRetries returns the value of the "max_retries" field in the mutation.
func (m *JobMutation) MaxRetries() (r int, exists bool) {
	v := m.max_retries
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxRetries returns the old "max_retries" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldMaxRetries(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxRetries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxRetries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxRetries: %w", err)
	}
	return oldValue.MaxRetries, nil
}

// AddMaxRetries adds i to the "max_retries" field.
func (m *JobMutation) AddMaxRetries(i int) {
	if m.addmax_retries != nil {
		*m.addmax_retries += i
	} else {
		m.addmax_retries = &i
	}
}

// AddedMaxRetries returns the value that was added to the "max_retries" field in this mutation.
func (m *JobMutation) AddedMaxRetries() (r int, exists bool) {
	v := m.addmax_retries
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxRetries resets all changes to the "max_retries" field.
func (m *JobMutation) ResetMaxRetries() {
	m.max_retries = nil
	m.addmax_retries = nil
}

// SetNotBefore sets the "not_before" field.
func (m *JobMutation) SetNotBefore(t time.Time) {
	m.not_before = &t
}

// NotBefore returns the value of the "not_before" field in the mutation.
func (m *JobMutation) NotBefore() (r time.Time, exists bool) {
	v := m.not_before
	if v == nil {
		return
	}
	return *v, true
}

// OldNotBefore returns the old "not_before" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldNotBefore(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotBefore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotBefore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotBefore: %w", err)
	}
	return oldValue.NotBefore, nil
}

// ResetNotBefore resets all changes to the "not_before" field.
func (m *JobMutation) ResetNotBefore() {
	m.not_before = nil
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (m *JobMutation) SetLeaseExpiresAt(t time.Time) {
	m.lease_expires_at = &t
}

// LeaseExpiresAt returns the value of the "lease_expires_at" field in the mutation.
func (m *JobMutation) LeaseExpiresAt() (r time.Time, exists bool) {
	v := m.lease_expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLeaseExpiresAt returns the old "lease_expires_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLeaseExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeaseExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeaseExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeaseExpiresAt: %w", err)
	}
	return oldValue.LeaseExpiresAt, nil
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (m *JobMutation) ClearLeaseExpiresAt() {
	m.lease_expires_at = nil
	m.clearedFields[job.FieldLeaseExpiresAt] = struct{}{}
}

// LeaseExpiresAtCleared returns if the "lease_expires_at" field was cleared in this mutation.
func (m *JobMutation) LeaseExpiresAtCleared() bool {
	_, ok := m.clearedFields[job.FieldLeaseExpiresAt]
	return ok
}

// ResetLeaseExpiresAt resets all changes to the "lease_expires_at" field.
func (m *JobMutation) ResetLeaseExpiresAt() {
	m.lease_expires_at = nil
	delete(m.clearedFields, job.FieldLeaseExpiresAt)
}

// SetPodID sets the "pod_id" field.
func (m *JobMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *JobMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *JobMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[job.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *JobMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[job.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *JobMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, job.FieldPodID)
}

// SetLastError sets the "last_error" field.
func (m *JobMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *JobMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *JobMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[job.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *JobMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[job.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *JobMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, job.FieldLastError)
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *JobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *JobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *JobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.kind != nil {
		fields = append(fields, job.FieldKind)
	}
	if m.site_id != nil {
		fields = append(fields, job.FieldSiteID)
	}
	if m.payload != nil {
		fields = append(fields, job.FieldPayload)
	}
	if m.status != nil {
		fields = append(fields, job.FieldStatus)
	}
	if m.attempts != nil {
		fields = append(fields, job.FieldAttempts)
	}
	if m.max_retries != nil {
		fields = append(fields, job.FieldMaxRetries)
	}
	if m.not_before != nil {
		fields = append(fields, job.FieldNotBefore)
	}
	if m.lease_expires_at != nil {
		fields = append(fields, job.FieldLeaseExpiresAt)
	}
	if m.pod_id != nil {
		fields = append(fields, job.FieldPodID)
	}
	if m.last_error != nil {
		fields = append(fields, job.FieldLastError)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, job.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldKind:
		return m.Kind()
	case job.FieldSiteID:
		return m.SiteID()
	case job.FieldPayload:
		return m.Payload()
	case job.FieldStatus:
		return m.Status()
	case job.FieldAttempts:
		return m.Attempts()
	case job.FieldMaxRetries:
		return m.MaxRetries()
	case job.FieldNotBefore:
		return m.NotBefore()
	case job.FieldLeaseExpiresAt:
		return m.LeaseExpiresAt()
	case job.FieldPodID:
		return m.PodID()
	case job.FieldLastError:
		return m.LastError()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	case job.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldKind:
		return m.OldKind(ctx)
	case job.FieldSiteID:
		return m.OldSiteID(ctx)
	case job.FieldPayload:
		return m.OldPayload(ctx)
	case job.FieldStatus:
		return m.OldStatus(ctx)
	case job.FieldAttempts:
		return m.OldAttempts(ctx)
	case job.FieldMaxRetries:
		return m.OldMaxRetries(ctx)
	case job.FieldNotBefore:
		return m.OldNotBefore(ctx)
	case job.FieldLeaseExpiresAt:
		return m.OldLeaseExpiresAt(ctx)
	case job.FieldPodID:
		return m.OldPodID(ctx)
	case job.FieldLastError:
		return m.OldLastError(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case job.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldKind:
		v, ok := value.(job.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case job.FieldSiteID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSiteID(v)
		return nil
	case job.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case job.FieldStatus:
		v, ok := value.(job.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case job.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case job.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxRetries(v)
		return nil
	case job.FieldNotBefore:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotBefore(v)
		return nil
	case job.FieldLeaseExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeaseExpiresAt(v)
		return nil
	case job.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case job.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case job.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, job.FieldAttempts)
	}
	if m.addmax_retries != nil {
		fields = append(fields, job.FieldMaxRetries)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case job.FieldAttempts:
		return m.AddedAttempts()
	case job.FieldMaxRetries:
		return m.AddedMaxRetries()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case job.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	case job.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxRetries(v)
		return nil
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldPayload) {
		fields = append(fields, job.FieldPayload)
	}
	if m.FieldCleared(job.FieldLeaseExpiresAt) {
		fields = append(fields, job.FieldLeaseExpiresAt)
	}
	if m.FieldCleared(job.FieldPodID) {
		fields = append(fields, job.FieldPodID)
	}
	if m.FieldCleared(job.FieldLastError) {
		fields = append(fields, job.FieldLastError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldPayload:
		m.ClearPayload()
		return nil
	case job.FieldLeaseExpiresAt:
		m.ClearLeaseExpiresAt()
		return nil
	case job.FieldPodID:
		m.ClearPodID()
		return nil
	case job.FieldLastError:
		m.ClearLastError()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldKind:
		m.ResetKind()
		return nil
	case job.FieldSiteID:
		m.ResetSiteID()
		return nil
	case job.FieldPayload:
		m.ResetPayload()
		return nil
	case job.FieldStatus:
		m.ResetStatus()
		return nil
	case job.FieldAttempts:
		m.ResetAttempts()
		return nil
	case job.FieldMaxRetries:
		m.ResetMaxRetries()
		return nil
	case job.FieldNotBefore:
		m.ResetNotBefore()
		return nil
	case job.FieldLeaseExpiresAt:
		m.ResetLeaseExpiresAt()
		return nil
	case job.FieldPodID:
		m.ResetPodID()
		return nil
	case job.FieldLastError:
		m.ResetLastError()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case job.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Job edge %s", name)
}

// MeasurementComparisonMutation represents an operation that mutates the MeasurementComparison nodes in the graph.
type MeasurementComparisonMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	build_id                 *string
	strategy                 *measurementcomparison.Strategy
	original_score           *float64
	addoriginal_score        *float64
	optimized_score          *float64
	addoptimized_score       *float64
	original_vitals          *map[string]float64
	optimized_vitals         *map[string]float64
	improvements             *map[string]float64
	payload_savings_bytes    *int64
	addpayload_savings_bytes *int64
	original_raw             *map[string]interface{}
	optimized_raw            *map[string]interface{}
	created_at               *time.Time
	clearedFields            map[string]struct{}
	site                     *string
	clearedsite              bool
	done                     bool
	oldValue                 func(context.Context) (*MeasurementComparison, error)
	predicates               []predicate.MeasurementComparison
}

var _ ent.Mutation = (*MeasurementComparisonMutation)(nil)

// measurementcomparisonOption allows management of the mutation configuration using functional options.
type measurementcomparisonOption func(*MeasurementComparisonMutation)

// newMeasurementComparisonMutation creates new mutation for the MeasurementComparison entity.
func newMeasurementComparisonMutation(c config, op Op, opts ...measurementcomparisonOption) *MeasurementComparisonMutation {
	m := &MeasurementComparisonMutation{
		config:        c,
		op:            op,
		typ:           TypeMeasurementComparison,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMeasurementComparisonID sets the ID field of the mutation.
func withMeasurementComparisonID(id string) measurementcomparisonOption {
	return func(m *MeasurementComparisonMutation) {
		var (
			err   error
			once  sync.Once
			value *MeasurementComparison
		)
		m.oldValue = func(ctx context.Context) (*MeasurementComparison, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MeasurementComparison.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMeasurementComparison sets the old MeasurementComparison of the mutation.
func withMeasurementComparison(node *MeasurementComparison) measurementcomparisonOption {
	return func(m *MeasurementComparisonMutation) {
		m.oldValue = func(context.Context) (*MeasurementComparison, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MeasurementComparisonMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MeasurementComparisonMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MeasurementComparison entities.
func (m *MeasurementComparisonMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MeasurementComparisonMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MeasurementComparisonMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MeasurementComparison.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSiteID sets the "site_id" field.
func (m *MeasurementComparisonMutation) SetSiteID(s string) {
	m.site = &s
}

// SiteID returns the value of the "site_id" field in the mutation.
func (m *MeasurementComparisonMutation) SiteID() (r string, exists bool) {
	v := m.site
	if v == nil {
		return
	}
	return *v, true
}

// OldSiteID returns the old "site_id" field's value of the MeasurementComparison entity.
// If the MeasurementComparison object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeasurementComparisonMutation) OldSiteID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSiteID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSiteID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSiteID: %w", err)
	}
	return oldValue.SiteID, nil
}

// ResetSiteID resets all changes to the "site_id" field.
func (m *MeasurementComparisonMutation) ResetSiteID() {
	m.site = nil
}

// SetBuildID sets the "build_id" field.
func (m *MeasurementComparisonMutation) SetBuildID(s string) {
	m.build_id = &s
}

// BuildID returns the value of the "build_id" field in the mutation.
func (m *MeasurementComparisonMutation) BuildID() (r string, exists bool) {
	v := m.build_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBuildID returns the old "build_id" field's value of the MeasurementComparison entity.
// If the MeasurementComparison object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeasurementComparisonMutation) OldBuildID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuildID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuildID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuildID: %w", err)
	}
	return oldValue.BuildID, nil
}

// ClearBuildID clears the value of the "build_id" field.
func (m *MeasurementComparisonMutation) ClearBuildID() {
	m.build_id = nil
	m.clearedFields[measurementcomparison.FieldBuildID] = struct{}{}
}

// BuildIDCleared returns if the "build_id" field was cleared in this mutation.
func (m *MeasurementComparisonMutation) BuildIDCleared() bool {
	_, ok := m.clearedFields[measurementcomparison.FieldBuildID]
	return ok
}

// ResetBuildID resets all changes to the "build_id" field.
func (m *MeasurementComparisonMutation) ResetBuildID() {
	m.build_id = nil
	delete(m.clearedFields, measurementcomparison.FieldBuildID)
}

// SetStrategy sets the "strategy" field.
func (m *MeasurementComparisonMutation) SetStrategy(value measurementcomparison.Strategy) {
	m.strategy = &value
}

// Strategy returns the value of the "strategy" field in the mutation.
func (m *MeasurementComparisonMutation) Strategy() (r measurementcomparison.Strategy, exists bool) {
	v := m.strategy
	if v == nil {
		return
	}
	return *v, true
}

// OldStrategy returns the old "strategy" field's value of the MeasurementComparison entity.
// If the MeasurementComparison object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeasurementComparisonMutation) OldStrategy(ctx context.Context) (v measurementcomparison.Strategy, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrategy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrategy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrategy: %w", err)
	}
	return oldValue.Strategy, nil
}

// ResetStrategy resets all changes to the "strategy" field.
func (m *MeasurementComparisonMutation) ResetStrategy() {
	m.strategy = nil
}

// SetOriginalScore sets the "original_score" field.
func (m *MeasurementComparisonMutation) SetOriginalScore(f float64) {
	m.original_score = &f
	m.addoriginal_score = nil
}

// OriginalScore returns the value of the "original_score" field in the mutation.
func (m *MeasurementComparisonMutation) OriginalScore() (r float64, exists bool) {
	v := m.original_score
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalScore returns the old "original_score" field's value of the MeasurementComparison entity.
// If the MeasurementComparison object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeasurementComparisonMutation) OldOriginalScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalScore: %w", err)
	}
	return oldValue.OriginalScore, nil
}

// AddOriginalScore adds f to the "original_score" field.
func (m *MeasurementComparisonMutation) AddOriginalScore(f float64) {
	if m.addoriginal_score != nil {
		*m.addoriginal_score += f
	} else {
		m.addoriginal_score = &f
	}
}

// AddedOriginalScore returns the value that was added to the "original_score" field in this mutation.
func (m *MeasurementComparisonMutation) AddedOriginalScore() (r float64, exists bool) {
	v := m.addoriginal_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetOriginalScore resets all changes to the "original_score" field.
func (m *MeasurementComparisonMutation) ResetOriginalScore() {
	m.original_score = nil
	m.addoriginal_score = nil
}

// SetOptimizedScore sets the "optimized_score" field.
func (m *MeasurementComparisonMutation) SetOptimizedScore(f float64) {
	m.optimized_score = &f
	m.addoptimized_score = nil
}

// OptimizedScore returns the value of the "optimized_score" field in the mutation.
func (m *MeasurementComparisonMutation) OptimizedScore() (r float64, exists bool) {
	v := m.optimized_score
	if v == nil {
		return
	}
	return *v, true
}

// OldOptimizedScore returns the old "optimized_score" field's value of the MeasurementComparison entity.
// If the MeasurementComparison object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeasurementComparisonMutation) OldOptimizedScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptimizedScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptimizedScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptimizedScore: %w", err)
	}
	return oldValue.OptimizedScore, nil
}

// AddOptimizedScore adds f to the "optimized_score" field.
func (m *MeasurementComparisonMutation) AddOptimizedScore(f float64) {
	if m.addoptimized_score != nil {
		*m.addoptimized_score += f
	} else {
		m.addoptimized_score = &f
	}
}

// AddedOptimizedScore returns the value that was added to the "optimized_score" field in this mutation.
func (m *MeasurementComparisonMutation) AddedOptimizedScore() (r float64, exists bool) {
	v := m.addoptimized_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetOptimizedScore resets all changes to the "optimized_score" field.
func (m *MeasurementComparisonMutation) ResetOptimizedScore() {
	m.optimized_score = nil
	m.addoptimized_score = nil
}

// SetOriginalVitals sets the "original_vitals" field.
func (m *MeasurementComparisonMutation) SetOriginalVitals(value map[string]float64) {
	m.original_vitals = &value
}

// OriginalVitals returns the value of the "original_vitals" field in the mutation.
func (m *MeasurementComparisonMutation) OriginalVitals() (r map[string]float64, exists bool) {
	v := m.original_vitals
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalVitals returns the old "original_vitals" field's value of the MeasurementComparison entity.
// If the MeasurementComparison object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeasurementComparisonMutation) OldOriginalVitals(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalVitals is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalVitals requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalVitals: %w", err)
	}
	return oldValue.OriginalVitals, nil
}

// ClearOriginalVitals clears the value of the "original_vitals" field.
func (m *MeasurementComparisonMutation) ClearOriginalVitals() {
	m.original_vitals = nil
	m.clearedFields[measurementcomparison.FieldOriginalVitals] = struct{}{}
}

// OriginalVitalsCleared returns if the "original_vitals" field was cleared in this mutation.
func (m *MeasurementComparisonMutation) OriginalVitalsCleared() bool {
	_, ok := m.clearedFields[measurementcomparison.FieldOriginalVitals]
	return ok
}

// ResetOriginalVitals resets all changes to the "original_vitals" field.
func (m *MeasurementComparisonMutation) ResetOriginalVitals() {
	m.original_vitals = nil
	delete(m.clearedFields, measurementcomparison.FieldOriginalVitals)
}

// SetOptimizedVitals sets the "optimized_vitals" field.
func (m *MeasurementComparisonMutation) SetOptimizedVitals(value map[string]float64) {
	m.optimized_vitals = &value
}

// OptimizedVitals returns the value of the "optimized_vitals" field in the mutation.
func (m *MeasurementComparisonMutation) OptimizedVitals() (r map[string]float64, exists bool) {
	v := m.optimized_vitals
	if v == nil {
		return
	}
	return *v, true
}

// OldOptimizedVitals returns the old "optimized_vitals" field's value of the MeasurementComparison entity.
// If the MeasurementComparison object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeasurementComparisonMutation) OldOptimizedVitals(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptimizedVitals is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptimizedVitals requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptimizedVitals: %w", err)
	}
	return oldValue.OptimizedVitals, nil
}

// ClearOptimizedVitals clears the value of the "optimized_vitals" field.
func (m *MeasurementComparisonMutation) ClearOptimizedVitals() {
	m.optimized_vitals = nil
	m.clearedFields[measurementcomparison.FieldOptimizedVitals] = struct{}{}
}

// OptimizedVitalsCleared returns if the "optimized_vitals" field was cleared in this mutation.
func (m *MeasurementComparisonMutation) OptimizedVitalsCleared() bool {
	_, ok := m.clearedFields[measurementcomparison.FieldOptimizedVitals]
	return ok
}

// ResetOptimizedVitals resets all changes to the "optimized_vitals" field.
func (m *MeasurementComparisonMutation) ResetOptimizedVitals() {
	m.optimized_vitals = nil
	delete(m.clearedFields, measurementcomparison.FieldOptimizedVitals)
}

// SetImprovements sets the "improvements" field.
func (m *MeasurementComparisonMutation) SetImprovements(value map[string]float64) {
	m.improvements = &value
}

// Improvements returns the value of the "improvements" field in the mutation.
func (m *MeasurementComparisonMutation) Improvements() (r map[string]float64, exists bool) {
	v := m.improvements
	if v == nil {
		return
	}
	return *v, true
}

// OldImprovements returns the old "improvements" field's value of the MeasurementComparison entity.
// If the MeasurementComparison object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeasurementComparisonMutation) OldImprovements(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImprovements is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImprovements requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImprovements: %w", err)
	}
	return oldValue.Improvements, nil
}

// ClearImprovements clears the value of the "improvements" field.
func (m *MeasurementComparisonMutation) ClearImprovements() {
	m.improvements = nil
	m.clearedFields[measurementcomparison.FieldImprovements] = struct{}{}
}

// ImprovementsCleared returns if the "improvements" field was cleared in this mutation.
func (m *MeasurementComparisonMutation) ImprovementsCleared() bool {
	_, ok := m.clearedFields[measurementcomparison.FieldImprovements]
	return ok
}

// ResetImprovements resets all changes to the "improvements" field.
func (m *MeasurementComparisonMutation) ResetImprovements() {
	m.improvements = nil
	delete(m.clearedFields, measurementcomparison.FieldImprovements)
}

// SetPayloadSavingsBytes sets the "payload_savings_bytes" field.
func (m *MeasurementComparisonMutation) SetPayloadSavingsBytes(i int64) {
	m.payload_savings_bytes = &i
	m.addpayload_savings_bytes = nil
}

// PayloadSavingsBytes returns the value of the "payload_savings_bytes" field in the mutation.
func (m *MeasurementComparisonMutation) PayloadSavingsBytes() (r int64, exists bool) {
	v := m.payload_savings_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldPayloadSavingsBytes returns the old "payload_savings_bytes" field's value of the MeasurementComparison entity.
// If the MeasurementComparison object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeasurementComparisonMutation) OldPayloadSavingsBytes(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayloadSavingsBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayloadSavingsBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayloadSavingsBytes: %w", err)
	}
	return oldValue.PayloadSavingsBytes, nil
}

// AddPayloadSavingsBytes adds i to the "payload_savings_bytes" field.
func (m *MeasurementComparisonMutation) AddPayloadSavingsBytes(i int64) {
	if m.addpayload_savings_bytes != nil {
		*m.addpayload_savings_bytes += i
	} else {
		m.addpayload_savings_bytes = &i
	}
}

// AddedPayloadSavingsBytes returns the value that was added to the "payload_savings_bytes" field in this mutation.
func (m *MeasurementComparisonMutation) AddedPayloadSavingsBytes() (r int64, exists bool) {
	v := m.addpayload_savings_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ResetPayloadSavingsBytes resets all changes to the "payload_savings_bytes" field.
func (m *MeasurementComparisonMutation) ResetPayloadSavingsBytes() {
	m.payload_savings_bytes = nil
	m.addpayload_savings_bytes = nil
}

// SetOriginalRaw sets the "original_raw" field.
func (m *MeasurementComparisonMutation) SetOriginalRaw(value map[string]interface{}) {
	m.original_raw = &value
}

// OriginalRaw returns the value of the "original_raw" field in the mutation.
func (m *MeasurementComparisonMutation) OriginalRaw() (r map[string]interface{}, exists bool) {
	v := m.original_raw
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalRaw returns the old "original_raw" field's value of the MeasurementComparison entity.
// If the MeasurementComparison object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeasurementComparisonMutation) OldOriginalRaw(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalRaw is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalRaw requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalRaw: %w", err)
	}
	return oldValue.OriginalRaw, nil
}

// ClearOriginalRaw clears the value of the "original_raw" field.
func (m *MeasurementComparisonMutation) ClearOriginalRaw() {
	m.original_raw = nil
	m.clearedFields[measurementcomparison.FieldOriginalRaw] = struct{}{}
}

// OriginalRawCleared returns if the "original_raw" field was cleared in this mutation.
func (m *MeasurementComparisonMutation) OriginalRawCleared() bool {
	_, ok := m.clearedFields[measurementcomparison.FieldOriginalRaw]
	return ok
}

// ResetOriginalRaw resets all changes to the "original_raw" field.
func (m *MeasurementComparisonMutation) ResetOriginalRaw() {
	m.original_raw = nil
	delete(m.clearedFields, measurementcomparison.FieldOriginalRaw)
}

// SetOptimizedRaw sets the "optimized_raw" field.
func (m *MeasurementComparisonMutation) SetOptimizedRaw(value map[string]interface{}) {
	m.optimized_raw = &value
}

// OptimizedRaw returns the value of the "optimized_raw" field in the mutation.
func (m *MeasurementComparisonMutation) OptimizedRaw() (r map[string]interface{}, exists bool) {
	v := m.optimized_raw
	if v == nil {
		return
	}
	return *v, true
}

// OldOptimizedRaw returns the old "optimized_raw" field's value of the MeasurementComparison entity.
// If the MeasurementComparison object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeasurementComparisonMutation) OldOptimizedRaw(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptimizedRaw is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptimizedRaw requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptimizedRaw: %w", err)
	}
	return oldValue.OptimizedRaw, nil
}

// ClearOptimizedRaw clears the value of the "optimized_raw" field.
func (m *MeasurementComparisonMutation) ClearOptimizedRaw() {
	m.optimized_raw = nil
	m.clearedFields[measurementcomparison.FieldOptimizedRaw] = struct{}{}
}

// OptimizedRawCleared returns if the "optimized_raw" field was cleared in this mutation.
func (m *MeasurementComparisonMutation) OptimizedRawCleared() bool {
	_, ok := m.clearedFields[measurementcomparison.FieldOptimizedRaw]
	return ok
}

// ResetOptimizedRaw resets all changes to the "optimized_raw" field.
func (m *MeasurementComparisonMutation) ResetOptimizedRaw() {
	m.optimized_raw = nil
	delete(m.clearedFields, measurementcomparison.FieldOptimizedRaw)
}

// SetCreatedAt sets the "created_at" field.
func (m *MeasurementComparisonMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MeasurementComparisonMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MeasurementComparison entity.
// If the MeasurementComparison object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeasurementComparisonMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MeasurementComparisonMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSite clears the "site" edge to the Site entity.
func (m *MeasurementComparisonMutation) ClearSite() {
	m.clearedsite = true
	m.clearedFields[measurementcomparison.FieldSiteID] = struct{}{}
}

// SiteCleared reports if the "site" edge to the Site entity was cleared.
func (m *MeasurementComparisonMutation) SiteCleared() bool {
	return m.clearedsite
}

// SiteIDs returns the "site" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SiteID instead. It exists only for internal usage by the builders.
func (m *MeasurementComparisonMutation) SiteIDs() (ids []string) {
	if id := m.site; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSite resets all changes to the "site" edge.
func (m *MeasurementComparisonMutation) ResetSite() {
	m.site = nil
	m.clearedsite = false
}

// Where appends a list predicates to the MeasurementComparisonMutation builder.
func (m *MeasurementComparisonMutation) Where(ps ...predicate.MeasurementComparison) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MeasurementComparisonMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MeasurementComparisonMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MeasurementComparison, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MeasurementComparisonMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MeasurementComparisonMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MeasurementComparison).
func (m *MeasurementComparisonMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MeasurementComparisonMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.site != nil {
		fields = append(fields, measurementcomparison.FieldSiteID)
	}
	if m.build_id != nil {
		fields = append(fields, measurementcomparison.FieldBuildID)
	}
	if m.strategy != nil {
		fields = append(fields, measurementcomparison.FieldStrategy)
	}
	if m.original_score != nil {
		fields = append(fields, measurementcomparison.FieldOriginalScore)
	}
	if m.optimized_score != nil {
		fields = append(fields, measurementcomparison.FieldOptimizedScore)
	}
	if m.original_vitals != nil {
		fields = append(fields, measurementcomparison.FieldOriginalVitals)
	}
	if m.optimized_vitals != nil {
		fields = append(fields, measurementcomparison.FieldOptimizedVitals)
	}
	if m.improvements != nil {
		fields = append(fields, measurementcomparison.FieldImprovements)
	}
	if m.payload_savings_bytes != nil {
		fields = append(fields, measurementcomparison.FieldPayloadSavingsBytes)
	}
	if m.original_raw != nil {
		fields = append(fields, measurementcomparison.FieldOriginalRaw)
	}
	if m.optimized_raw != nil {
		fields = append(fields, measurementcomparison.FieldOptimizedRaw)
	}
	if m.created_at != nil {
		fields = append(fields, measurementcomparison.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MeasurementComparisonMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case measurementcomparison.FieldSiteID:
		return m.SiteID()
	case measurementcomparison.FieldBuildID:
		return m.BuildID()
	case measurementcomparison.FieldStrategy:
		return m.Strategy()
	case measurementcomparison.FieldOriginalScore:
		return m.OriginalScore()
	case measurementcomparison.FieldOptimizedScore:
		return m.OptimizedScore()
	case measurementcomparison.FieldOriginalVitals:
		return m.OriginalVitals()
	case measurementcomparison.FieldOptimizedVitals:
		return m.OptimizedVitals()
	case measurementcomparison.FieldImprovements:
		return m.Improvements()
	case measurementcomparison.FieldPayloadSavingsBytes:
		return m.PayloadSavingsBytes()
	case measurementcomparison.FieldOriginalRaw:
		return m.OriginalRaw()
	case measurementcomparison.FieldOptimizedRaw:
		return m.OptimizedRaw()
	case measurementcomparison.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MeasurementComparisonMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case measurementcomparison.FieldSiteID:
		return m.OldSiteID(ctx)
	case measurementcomparison.FieldBuildID:
		return m.OldBuildID(ctx)
	case measurementcomparison.FieldStrategy:
		return m.OldStrategy(ctx)
	case measurementcomparison.FieldOriginalScore:
		return m.OldOriginalScore(ctx)
	case measurementcomparison.FieldOptimizedScore:
		return m.OldOptimizedScore(ctx)
	case measurementcomparison.FieldOriginalVitals:
		return m.OldOriginalVitals(ctx)
	case measurementcomparison.FieldOptimizedVitals:
		return m.OldOptimizedVitals(ctx)
	case measurementcomparison.FieldImprovements:
		return m.OldImprovements(ctx)
	case measurementcomparison.FieldPayloadSavingsBytes:
		return m.OldPayloadSavingsBytes(ctx)
	case measurementcomparison.FieldOriginalRaw:
		return m.OldOriginalRaw(ctx)
	case measurementcomparison.FieldOptimizedRaw:
		return m.OldOptimizedRaw(ctx)
	case measurementcomparison.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MeasurementComparison field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MeasurementComparisonMutation) SetField(name string, value ent.Value) error {
	switch name {
	case measurementcomparison.FieldSiteID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSiteID(v)
		return nil
	case measurementcomparison.FieldBuildID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuildID(v)
		return nil
	case measurementcomparison.FieldStrategy:
		v, ok := value.(measurementcomparison.Strategy)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrategy(v)
		return nil
	case measurementcomparison.FieldOriginalScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalScore(v)
		return nil
	case measurementcomparison.FieldOptimizedScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptimizedScore(v)
		return nil
	case measurementcomparison.FieldOriginalVitals:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalVitals(v)
		return nil
	case measurementcomparison.FieldOptimizedVitals:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptimizedVitals(v)
		return nil
	case measurementcomparison.FieldImprovements:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImprovements(v)
		return nil
	case measurementcomparison.FieldPayloadSavingsBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayloadSavingsBytes(v)
		return nil
	case measurementcomparison.FieldOriginalRaw:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalRaw(v)
		return nil
	case measurementcomparison.FieldOptimizedRaw:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptimizedRaw(v)
		return nil
	case measurementcomparison.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MeasurementComparison field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MeasurementComparisonMutation) AddedFields() []string {
	var fields []string
	if m.addoriginal_score != nil {
		fields = append(fields, measurementcomparison.FieldOriginalScore)
	}
	if m.addoptimized_score != nil {
		fields = append(fields, measurementcomparison.FieldOptimizedScore)
	}
	if m.addpayload_savings_bytes != nil {
		fields = append(fields, measurementcomparison.FieldPayloadSavingsBytes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MeasurementComparisonMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case measurementcomparison.FieldOriginalScore:
		return m.AddedOriginalScore()
	case measurementcomparison.FieldOptimizedScore:
		return m.AddedOptimizedScore()
	case measurementcomparison.FieldPayloadSavingsBytes:
		return m.AddedPayloadSavingsBytes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MeasurementComparisonMutation) AddField(name string, value ent.Value) error {
	switch name {
	case measurementcomparison.FieldOriginalScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOriginalScore(v)
		return nil
	case measurementcomparison.FieldOptimizedScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOptimizedScore(v)
		return nil
	case measurementcomparison.FieldPayloadSavingsBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPayloadSavingsBytes(v)
		return nil
	}
	return fmt.Errorf("unknown MeasurementComparison numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MeasurementComparisonMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(measurementcomparison.FieldBuildID) {
		fields = append(fields, measurementcomparison.FieldBuildID)
	}
	if m.FieldCleared(measurementcomparison.FieldOriginalVitals) {
		fields = append(fields, measurementcomparison.FieldOriginalVitals)
	}
	if m.FieldCleared(measurementcomparison.FieldOptimizedVitals) {
		fields = append(fields, measurementcomparison.FieldOptimizedVitals)
	}
	if m.FieldCleared(measurementcomparison.FieldImprovements) {
		fields = append(fields, measurementcomparison.FieldImprovements)
	}
	if m.FieldCleared(measurementcomparison.FieldOriginalRaw) {
		fields = append(fields, measurementcomparison.FieldOriginalRaw)
	}
	if m.FieldCleared(measurementcomparison.FieldOptimizedRaw) {
		fields = append(fields, measurementcomparison.FieldOptimizedRaw)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MeasurementComparisonMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MeasurementComparisonMutation) ClearField(name string) error {
	switch name {
	case measurementcomparison.FieldBuildID:
		m.ClearBuildID()
		return nil
	case measurementcomparison.FieldOriginalVitals:
		m.ClearOriginalVitals()
		return nil
	case measurementcomparison.FieldOptimizedVitals:
		m.ClearOptimizedVitals()
		return nil
	case measurementcomparison.FieldImprovements:
		m.ClearImprovements()
		return nil
	case measurementcomparison.FieldOriginalRaw:
		m.ClearOriginalRaw()
		return nil
	case measurementcomparison.FieldOptimizedRaw:
		m.ClearOptimizedRaw()
		return nil
	}
	return fmt.Errorf("unknown MeasurementComparison nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MeasurementComparisonMutation) ResetField(name string) error {
	switch name {
	case measurementcomparison.FieldSiteID:
		m.ResetSiteID()
		return nil
	case measurementcomparison.FieldBuildID:
		m.ResetBuildID()
		return nil
	case measurementcomparison.FieldStrategy:
		m.ResetStrategy()
		return nil
	case measurementcomparison.FieldOriginalScore:
		m.ResetOriginalScore()
		return nil
	case measurementcomparison.FieldOptimizedScore:
		m.ResetOptimizedScore()
		return nil
	case measurementcomparison.FieldOriginalVitals:
		m.ResetOriginalVitals()
		return nil
	case measurementcomparison.FieldOptimizedVitals:
		m.ResetOptimizedVitals()
		return nil
	case measurementcomparison.FieldImprovements:
		m.ResetImprovements()
		return nil
	case measurementcomparison.FieldPayloadSavingsBytes:
		m.ResetPayloadSavingsBytes()
		return nil
	case measurementcomparison.FieldOriginalRaw:
		m.ResetOriginalRaw()
		return nil
	case measurementcomparison.FieldOptimizedRaw:
		m.ResetOptimizedRaw()
		return nil
	case measurementcomparison.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown MeasurementComparison field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MeasurementComparisonMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.site != nil {
		edges = append(edges, measurementcomparison.EdgeSite)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MeasurementComparisonMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case measurementcomparison.EdgeSite:
		if id := m.site; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MeasurementComparisonMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MeasurementComparisonMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MeasurementComparisonMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsite {
		edges = append(edges, measurementcomparison.EdgeSite)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MeasurementComparisonMutation) EdgeCleared(name string) bool {
	switch name {
	case measurementcomparison.EdgeSite:
		return m.clearedsite
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MeasurementComparisonMutation) ClearEdge(name string) error {
	switch name {
	case measurementcomparison.EdgeSite:
		m.ClearSite()
		return nil
	}
	return fmt.Errorf("unknown MeasurementComparison unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MeasurementComparisonMutation) ResetEdge(name string) error {
	switch name {
	case measurementcomparison.EdgeSite:
		m.ResetSite()
		return nil
	}
	return fmt.Errorf("unknown MeasurementComparison edge %s", name)
}

// PageMutation represents an operation that mutates the Page nodes in the graph.
type PageMutation struct {
	config
	op              Op
	typ             string
	id              *string
	_path           *string
	content_hash    *string
	last_crawled_at *time.Time
	clearedFields   map[string]struct{}
	site            *string
	clearedsite     bool
	done            bool
	oldValue        func(context.Context) (*Page, error)
	predicates      []predicate.Page
}

var _ ent.Mutation = (*PageMutation)(nil)

// pageOption allows management of the mutation configuration using functional options.
type pageOption func(*PageMutation)

// newPageMutation creates new mutation for the Page entity.
func newPageMutation(c config, op Op, opts ...pageOption) *PageMutation {
	m := &PageMutation{
		config:        c,
		op:            op,
		typ:           TypePage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPageID sets the ID field of the mutation.
func withPageID(id string) pageOption {
	return func(m *PageMutation) {
		var (
			err   error
			once  sync.Once
			value *Page
		)
		m.oldValue = func(ctx context.Context) (*Page, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Page.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPage sets the old Page of the mutation.
func withPage(node *Page) pageOption {
	return func(m *PageMutation) {
		m.oldValue = func(context.Context) (*Page, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Page entities.
func (m *PageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Page.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSiteID sets the "site_id" field.
func (m *PageMutation) SetSiteID(s string) {
	m.site = &s
}

// SiteID returns the value of the "site_id" field in the mutation.
func (m *PageMutation) SiteID() (r string, exists bool) {
	v := m.site
	if v == nil {
		return
	}
	return *v, true
}

// OldSiteID returns the old "site_id" field's value of the Page entity.
// If the Page object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageMutation) OldSiteID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSiteID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSiteID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSiteID: %w", err)
	}
	return oldValue.SiteID, nil
}

// ResetSiteID resets all changes to the "site_id" field.
func (m *PageMutation) ResetSiteID() {
	m.site = nil
}

// SetPath sets the "path" field.
func (m *PageMutation) SetPath(s string) {
	m._path = &s
}

// Path returns the value of the "path" field in the mutation.
func (m *PageMutation) Path() (r string, exists bool) {
	v := m._path
	if v == nil {
		return
	}
	return *v, true
}

// OldPath returns the old "path" field's value of the Page entity.
// If the Page object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageMutation) OldPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPath: %w", err)
	}
	return oldValue.Path, nil
}

// ResetPath resets all changes to the "path" field.
func (m *PageMutation) ResetPath() {
	m._path = nil
}

// SetContentHash sets the "content_hash" field.
func (m *PageMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *PageMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the Page entity.
// If the Page object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageMutation) OldContentHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *PageMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetLastCrawledAt sets the "last_crawled_at" field.
func (m *PageMutation) SetLastCrawledAt(t time.Time) {
	m.last_crawled_at = &t
}

// LastCrawledAt returns the value of the "last_crawled_at" field in the mutation.
func (m *PageMutation) LastCrawledAt() (r time.Time, exists bool) {
	v := m.last_crawled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastCrawledAt returns the old "last_crawled_at" field's value of the Page entity.
// If the Page object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageMutation) OldLastCrawledAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastCrawledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastCrawledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastCrawledAt: %w", err)
	}
	return oldValue.LastCrawledAt, nil
}

// ResetLastCrawledAt resets all changes to the "last_crawled_at" field.
func (m *PageMutation) ResetLastCrawledAt() {
	m.last_crawled_at = nil
}

// ClearSite clears the "site" edge to the Site entity.
func (m *PageMutation) ClearSite() {
	m.clearedsite = true
	m.clearedFields[page.FieldSiteID] = struct{}{}
}

// SiteCleared reports if the "site" edge to the Site entity was cleared.
func (m *PageMutation) SiteCleared() bool {
	return m.clearedsite
}

// SiteIDs returns the "site" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SiteID instead. It exists only for internal usage by the builders.
func (m *PageMutation) SiteIDs() (ids []string) {
	if id := m.site; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSite resets all changes to the "site" edge.
func (m *PageMutation) ResetSite() {
	m.site = nil
	m.clearedsite = false
}

// Where appends a list predicates to the PageMutation builder.
func (m *PageMutation) Where(ps ...predicate.Page) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Page, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Page).
func (m *PageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PageMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.site != nil {
		fields = append(fields, page.FieldSiteID)
	}
	if m._path != nil {
		fields = append(fields, page.FieldPath)
	}
	if m.content_hash != nil {
		fields = append(fields, page.FieldContentHash)
	}
	if m.last_crawled_at != nil {
		fields = append(fields, page.FieldLastCrawledAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case page.FieldSiteID:
		return m.SiteID()
	case page.FieldPath:
		return m.Path()
	case page.FieldContentHash:
		return m.ContentHash()
	case page.FieldLastCrawledAt:
		return m.LastCrawledAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case page.FieldSiteID:
		return m.OldSiteID(ctx)
	case page.FieldPath:
		return m.OldPath(ctx)
	case page.FieldContentHash:
		return m.OldContentHash(ctx)
	case page.FieldLastCrawledAt:
		return m.OldLastCrawledAt(ctx)
	}
	return nil, fmt.Errorf("unknown Page field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case page.FieldSiteID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSiteID(v)
		return nil
	case page.FieldPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPath(v)
		return nil
	case page.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case page.FieldLastCrawledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastCrawledAt(v)
		return nil
	}
	return fmt.Errorf("unknown Page field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Page numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PageMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PageMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Page nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PageMutation) ResetField(name string) error {
	switch name {
	case page.FieldSiteID:
		m.ResetSiteID()
		return nil
	case page.FieldPath:
		m.ResetPath()
		return nil
	case page.FieldContentHash:
		m.ResetContentHash()
		return nil
	case page.FieldLastCrawledAt:
		m.ResetLastCrawledAt()
		return nil
	}
	return fmt.Errorf("unknown Page field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.site != nil {
		edges = append(edges, page.EdgeSite)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case page.EdgeSite:
		if id := m.site; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsite {
		edges = append(edges, page.EdgeSite)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PageMutation) EdgeCleared(name string) bool {
	switch name {
	case page.EdgeSite:
		return m.clearedsite
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PageMutation) ClearEdge(name string) error {
	switch name {
	case page.EdgeSite:
		m.ClearSite()
		return nil
	}
	return fmt.Errorf("unknown Page unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PageMutation) ResetEdge(name string) error {
	switch name {
	case page.EdgeSite:
		m.ResetSite()
		return nil
	}
	return fmt.Errorf("unknown Page edge %s", name)
}

// SettingsHistoryMutation represents an operation that mutates the SettingsHistory nodes in the graph.
type SettingsHistoryMutation struct {
	config
	op            Op
	typ           string
	id            *string
	settings      *map[string]interface{}
	actor         *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	site          *string
	clearedsite   bool
	done          bool
	oldValue      func(context.Context) (*SettingsHistory, error)
	predicates    []predicate.SettingsHistory
}

var _ ent.Mutation = (*SettingsHistoryMutation)(nil)

// settingshistoryOption allows management of the mutation configuration using functional options.
type settingshistoryOption func(*SettingsHistoryMutation)

// newSettingsHistoryMutation creates new mutation for the SettingsHistory entity.
func newSettingsHistoryMutation(c config, op Op, opts ...settingshistoryOption) *SettingsHistoryMutation {
	m := &SettingsHistoryMutation{
		config:        c,
		op:            op,
		typ:           TypeSettingsHistory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSettingsHistoryID sets the ID field of the mutation.
func withSettingsHistoryID(id string) settingshistoryOption {
	return func(m *SettingsHistoryMutation) {
		var (
			err   error
			once  sync.Once
			value *SettingsHistory
		)
		m.oldValue = func(ctx context.Context) (*SettingsHistory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SettingsHistory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSettingsHistory sets the old SettingsHistory of the mutation.
func withSettingsHistory(node *SettingsHistory) settingshistoryOption {
	return func(m *SettingsHistoryMutation) {
		m.oldValue = func(context.Context) (*SettingsHistory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SettingsHistoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SettingsHistoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SettingsHistory entities.
func (m *SettingsHistoryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SettingsHistoryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SettingsHistoryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SettingsHistory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSiteID sets the "site_id" field.
func (m *SettingsHistoryMutation) SetSiteID(s string) {
	m.site = &s
}

// SiteID returns the value of the "site_id" field in the mutation.
func (m *SettingsHistoryMutation) SiteID() (r string, exists bool) {
	v := m.site
	if v == nil {
		return
	}
	return *v, true
}

// OldSiteID returns the old "site_id" field's value of the SettingsHistory entity.
// If the SettingsHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettingsHistoryMutation) OldSiteID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSiteID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSiteID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSiteID: %w", err)
	}
	return oldValue.SiteID, nil
}

// ResetSiteID resets all changes to the "site_id" field.
func (m *SettingsHistoryMutation) ResetSiteID() {
	m.site = nil
}

// SetSettings sets the "settings" field.
func (m *SettingsHistoryMutation) SetSettings(value map[string]interface{}) {
	m.settings = &value
}

// Settings returns the value of the "settings" field in the mutation.
func (m *SettingsHistoryMutation) Settings() (r map[string]interface{}, exists bool) {
	v := m.settings
	if v == nil {
		return
	}
	return *v, true
}

// OldSettings returns the old "settings" field's value of the SettingsHistory entity.
// If the SettingsHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettingsHistoryMutation) OldSettings(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSettings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSettings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSettings: %w", err)
	}
	return oldValue.Settings, nil
}

// ClearSettings clears the value of the "settings" field.
func (m *SettingsHistoryMutation) ClearSettings() {
	m.settings = nil
	m.clearedFields[settingshistory.FieldSettings] = struct{}{}
}

// SettingsCleared returns if the "settings" field was cleared in this mutation.
func (m *SettingsHistoryMutation) SettingsCleared() bool {
	_, ok := m.clearedFields[settingshistory.FieldSettings]
	return ok
}

// ResetSettings resets all changes to the "settings" field.
func (m *SettingsHistoryMutation) ResetSettings() {
	m.settings = nil
	delete(m.clearedFields, settingshistory.FieldSettings)
}

// SetActor sets the "actor" field.
func (m *SettingsHistoryMutation) SetActor(s string) {
	m.actor = &s
}

// Actor returns the value of the "actor" field in the mutation.
func (m *SettingsHistoryMutation) Actor() (r string, exists bool) {
	v := m.actor
	if v == nil {
		return
	}
	return *v, true
}

// OldActor returns the old "actor" field's value of the SettingsHistory entity.
// If the SettingsHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettingsHistoryMutation) OldActor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActor: %w", err)
	}
	return oldValue.Actor, nil
}

// ResetActor resets all changes to the "actor" field.
func (m *SettingsHistoryMutation) ResetActor() {
	m.actor = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SettingsHistoryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SettingsHistoryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SettingsHistory entity.
// If the SettingsHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettingsHistoryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SettingsHistoryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSite clears the "site" edge to the Site entity.
func (m *SettingsHistoryMutation) ClearSite() {
	m.clearedsite = true
	m.clearedFields[settingshistory.FieldSiteID] = struct{}{}
}

// SiteCleared reports if the "site" edge to the Site entity was cleared.
func (m *SettingsHistoryMutation) SiteCleared() bool {
	return m.clearedsite
}

// SiteIDs returns the "site" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SiteID instead. It exists only for internal usage by the builders.
func (m *SettingsHistoryMutation) SiteIDs() (ids []string) {
	if id := m.site; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSite resets all changes to the "site" edge.
func (m *SettingsHistoryMutation) ResetSite() {
	m.site = nil
	m.clearedsite = false
}

// Where appends a list predicates to the SettingsHistoryMutation builder.
func (m *SettingsHistoryMutation) Where(ps ...predicate.SettingsHistory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SettingsHistoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SettingsHistoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SettingsHistory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SettingsHistoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SettingsHistoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SettingsHistory).
func (m *SettingsHistoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SettingsHistoryMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.site != nil {
		fields = append(fields, settingshistory.FieldSiteID)
	}
	if m.settings != nil {
		fields = append(fields, settingshistory.FieldSettings)
	}
	if m.actor != nil {
		fields = append(fields, settingshistory.FieldActor)
	}
	if m.created_at != nil {
		fields = append(fields, settingshistory.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SettingsHistoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case settingshistory.FieldSiteID:
		return m.SiteID()
	case settingshistory.FieldSettings:
		return m.Settings()
	case settingshistory.FieldActor:
		return m.Actor()
	case settingshistory.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SettingsHistoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case settingshistory.FieldSiteID:
		return m.OldSiteID(ctx)
	case settingshistory.FieldSettings:
		return m.OldSettings(ctx)
	case settingshistory.FieldActor:
		return m.OldActor(ctx)
	case settingshistory.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SettingsHistory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SettingsHistoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case settingshistory.FieldSiteID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSiteID(v)
		return nil
	case settingshistory.FieldSettings:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSettings(v)
		return nil
	case settingshistory.FieldActor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActor(v)
		return nil
	case settingshistory.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SettingsHistory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SettingsHistoryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SettingsHistoryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SettingsHistoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SettingsHistory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SettingsHistoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(settingshistory.FieldSettings) {
		fields = append(fields, settingshistory.FieldSettings)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SettingsHistoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SettingsHistoryMutation) ClearField(name string) error {
	switch name {
	case settingshistory.FieldSettings:
		m.ClearSettings()
		return nil
	}
	return fmt.Errorf("unknown SettingsHistory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SettingsHistoryMutation) ResetField(name string) error {
	switch name {
	case settingshistory.FieldSiteID:
		m.ResetSiteID()
		return nil
	case settingshistory.FieldSettings:
		m.ResetSettings()
		return nil
	case settingshistory.FieldActor:
		m.ResetActor()
		return nil
	case settingshistory.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SettingsHistory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SettingsHistoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.site != nil {
		edges = append(edges, settingshistory.EdgeSite)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SettingsHistoryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case settingshistory.EdgeSite:
		if id := m.site; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SettingsHistoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SettingsHistoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SettingsHistoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsite {
		edges = append(edges, settingshistory.EdgeSite)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SettingsHistoryMutation) EdgeCleared(name string) bool {
	switch name {
	case settingshistory.EdgeSite:
		return m.clearedsite
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SettingsHistoryMutation) ClearEdge(name string) error {
	switch name {
	case settingshistory.EdgeSite:
		m.ClearSite()
		return nil
	}
	return fmt.Errorf("unknown SettingsHistory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SettingsHistoryMutation) ResetEdge(name string) error {
	switch name {
	case settingshistory.EdgeSite:
		m.ResetSite()
		return nil
	}
	return fmt.Errorf("unknown SettingsHistory edge %s", name)
}

// SiteMutation represents an operation that mutates the Site nodes in the graph.
type SiteMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	name                    *string
	source_url              *string
	status                  *site.Status
	last_build_id           *string
	last_build_status       *site.LastBuildStatus
	edge_url                *string
	edge_project            *string
	page_count              *int
	addpage_count           *int
	total_bytes             *int64
	addtotal_bytes          *int64
	settings                *map[string]interface{}
	webhook_secret          *string
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	builds                  map[string]struct{}
	removedbuilds           map[string]struct{}
	clearedbuilds           bool
	agent_runs              map[string]struct{}
	removedagent_runs       map[string]struct{}
	clearedagent_runs       bool
	asset_overrides         map[string]struct{}
	removedasset_overrides  map[string]struct{}
	clearedasset_overrides  bool
	settings_history        map[string]struct{}
	removedsettings_history map[string]struct{}
	clearedsettings_history bool
	measurements            map[string]struct{}
	removedmeasurements     map[string]struct{}
	clearedmeasurements     bool
	pages                   map[string]struct{}
	removedpages            map[string]struct{}
	clearedpages            bool
	alert_rules             map[string]struct{}
	removedalert_rules      map[string]struct{}
	clearedalert_rules      bool
	alert_logs              map[string]struct{}
	removedalert_logs       map[string]struct{}
	clearedalert_logs       bool
	done                    bool
	oldValue                func(context.Context) (*Site, error)
	predicates              []predicate.Site
}

var _ ent.Mutation = (*SiteMutation)(nil)

// siteOption allows management of the mutation configuration using functional options.
type siteOption func(*SiteMutation)

// newSiteMutation creates new mutation for the Site entity.
func newSiteMutation(c config, op Op, opts ...siteOption) *SiteMutation {
	m := &SiteMutation{
		config:        c,
		op:            op,
		typ:           TypeSite,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSiteID sets the ID field of the mutation.
func withSiteID(id string) siteOption {
	return func(m *SiteMutation) {
		var (
			err   error
			once  sync.Once
			value *Site
		)
		m.oldValue = func(ctx context.Context) (*Site, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Site.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSite sets the old Site of the mutation.
func withSite(node *Site) siteOption {
	return func(m *SiteMutation) {
		m.oldValue = func(context.Context) (*Site, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SiteMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SiteMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Site entities.
func (m *SiteMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SiteMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SiteMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Site.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *SiteMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SiteMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Site entity.
// If the Site object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SiteMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SiteMutation) ResetName() {
	m.name = nil
}

// SetSourceURL sets the "source_url" field.
func (m *SiteMutation) SetSourceURL(s string) {
	m.source_url = &s
}

// SourceURL returns the value of the "source_url" field in the mutation.
func (m *SiteMutation) SourceURL() (r string, exists bool) {
	v := m.source_url
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceURL returns the old "source_url" field's value of the Site entity.
// If the Site object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SiteMutation) OldSourceURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceURL: %w", err)
	}
	return oldValue.SourceURL, nil
}

// ResetSourceURL resets all changes to the "source_url" field.
func (m *SiteMutation) ResetSourceURL() {
	m.source_url = nil
}

// SetStatus sets the "status" field.
func (m *SiteMutation) SetStatus(s site.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SiteMutation) Status() (r site.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Site entity.
// If the Site object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SiteMutation) OldStatus(ctx context.Context) (v site.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SiteMutation) ResetStatus() {
	m.status = nil
}

// SetLastBuildID sets the "last_build_id" field.
func (m *SiteMutation) SetLastBuildID(s string) {
	m.last_build_id = &s
}

// LastBuildID returns the value of the "last_build_id" field in the mutation.
func (m *SiteMutation) LastBuildID() (r string, exists bool) {
	v := m.last_build_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastBuildID returns the old "last_build_id" field's value of the Site entity.
// If the Site object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SiteMutation) OldLastBuildID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastBuildID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastBuildID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastBuildID: %w", err)
	}
	return oldValue.LastBuildID, nil
}

// ClearLastBuildID clears the value of the "last_build_id" field.
func (m *SiteMutation) ClearLastBuildID() {
	m.last_build_id = nil
	m.clearedFields[site.FieldLastBuildID] = struct{}{}
}

// LastBuildIDCleared returns if the "last_build_id" field was cleared in this mutation.
func (m *SiteMutation) LastBuildIDCleared() bool {
	_, ok := m.clearedFields[site.FieldLastBuildID]
	return ok
}

// ResetLastBuildID resets all changes to the "last_build_id" field.
func (m *SiteMutation) ResetLastBuildID() {
	m.last_build_id = nil
	delete(m.clearedFields, site.FieldLastBuildID)
}

// SetLastBuildStatus sets the "last_build_status" field.
func (m *SiteMutation) SetLastBuildStatus(sbs site.LastBuildStatus) {
	m.last_build_status = &sbs
}

// LastBuildStatus returns the value of the "last_build_status" field in the mutation.
func (m *SiteMutation) LastBuildStatus() (r site.LastBuildStatus, exists bool) {
	v := m.last_build_status
	if v == nil {
		return
	}
	return *v, true
}

// OldLastBuildStatus returns the old "last_build_status" field's value of the Site entity.
// If the Site object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SiteMutation) OldLastBuildStatus(ctx context.Context) (v *site.LastBuildStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastBuildStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastBuildStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastBuildStatus: %w", err)
	}
	return oldValue.LastBuildStatus, nil
}

// ClearLastBuildStatus clears the value of the "last_build_status" field.
func (m *SiteMutation) ClearLastBuildStatus() {
	m.last_build_status = nil
	m.clearedFields[site.FieldLastBuildStatus] = struct{}{}
}

// LastBuildStatusCleared returns if the "last_build_status" field was cleared in this mutation.
func (m *SiteMutation) LastBuildStatusCleared() bool {
	_, ok := m.clearedFields[site.FieldLastBuildStatus]
	return ok
}

// ResetLastBuildStatus resets all changes to the "last_build_status" field.
func (m *SiteMutation) ResetLastBuildStatus() {
	m.last_build_status = nil
	delete(m.clearedFields, site.FieldLastBuildStatus)
}

// SetEdgeURL sets the "edge_url" field.
func (m *SiteMutation) SetEdgeURL(s string) {
	m.edge_url = &s
}

// EdgeURL returns the value of the "edge_url" field in the mutation.
func (m *SiteMutation) EdgeURL() (r string, exists bool) {
	v := m.edge_url
	if v == nil {
		return
	}
	return *v, true
}

// OldEdgeURL returns the old "edge_url" field's value of the Site entity.
// If the Site object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SiteMutation) OldEdgeURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEdgeURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEdgeURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEdgeURL: %w", err)
	}
	return oldValue.EdgeURL, nil
}

// ClearEdgeURL clears the value of the "edge_url" field.
func (m *SiteMutation) ClearEdgeURL() {
	m.edge_url = nil
	m.clearedFields[site.FieldEdgeURL] = struct{}{}
}

// EdgeURLCleared returns if the "edge_url" field was cleared in this mutation.
func (m *SiteMutation) EdgeURLCleared() bool {
	_, ok := m.clearedFields[site.FieldEdgeURL]
	return ok
}

// ResetEdgeURL resets all changes to the "edge_url" field.
func (m *SiteMutation) ResetEdgeURL() {
	m.edge_url = nil
	delete(m.clearedFields, site.FieldEdgeURL)
}

// SetEdgeProject sets the "edge_project" field.
func (m *SiteMutation) SetEdgeProject(s string) {
	m.edge_project = &s
}

// EdgeProject returns the value of the "edge_project" field in the mutation.
func (m *SiteMutation) EdgeProject() (r string, exists bool) {
	v := m.edge_project
	if v == nil {
		return
	}
	return *v, true
}

// OldEdgeProject returns the old "edge_project" field's value of the Site entity.
// If the Site object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SiteMutation) OldEdgeProject(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEdgeProject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEdgeProject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEdgeProject: %w", err)
	}
	return oldValue.EdgeProject, nil
}

// ClearEdgeProject clears the value of the "edge_project" field.
func (m *SiteMutation) ClearEdgeProject() {
	m.edge_project = nil
	m.clearedFields[site.FieldEdgeProject] = struct{}{}
}

// EdgeProjectCleared returns if the "edge_project" field was cleared in this mutation.
func (m *SiteMutation) EdgeProjectCleared() bool {
	_, ok := m.clearedFields[site.FieldEdgeProject]
	return ok
}

// ResetEdgeProject resets all changes to the "edge_project" field.
func (m *SiteMutation) ResetEdgeProject() {
	m.edge_project = nil
	delete(m.clearedFields, site.FieldEdgeProject)
}

// SetPageCount sets the "page_count" field.
func (m *SiteMutation) SetPageCount(i int) {
	m.page_count = &i
	m.addpage_count = nil
}

// PageCount returns the value of the "page_count" field in the mutation.
func (m *SiteMutation) PageCount() (r int, exists bool) {
	v := m.page_count
	if v == nil {
		return
	}
	return *v, true
}

// OldPageCount returns the old "page_count" field's value of the Site entity.
// If the Site object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SiteMutation) OldPageCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageCount: %w", err)
	}
	return oldValue.PageCount, nil
}

// AddPageCount adds i to the "page_count" field.
func (m *SiteMutation) AddPageCount(i int) {
	if m.addpage_count != nil {
		*m.addpage_count += i
	} else {
		m.addpage_count = &i
	}
}

// AddedPageCount returns the value that was added to the "page_count" field in this mutation.
func (m *SiteMutation) AddedPageCount() (r int, exists bool) {
	v := m.addpage_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetPageCount resets all changes to the "page_count" field.
func (m *SiteMutation) ResetPageCount() {
	m.page_count = nil
	m.addpage_count = nil
}

// SetTotalBytes sets the "total_bytes" field.
func (m *SiteMutation) SetTotalBytes(i int64) {
	m.total_bytes = &i
	m.addtotal_bytes = nil
}

// TotalBytes returns the value of the "total_bytes" field in the mutation.
func (m *SiteMutation) TotalBytes() (r int64, exists bool) {
	v := m.total_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalBytes returns the old "total_bytes" field's value of the Site entity.
// If the Site object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SiteMutation) OldTotalBytes(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalBytes: %w", err)
	}
	return oldValue.TotalBytes, nil
}

// AddTotalBytes adds i to the "total_bytes" field.
func (m *SiteMutation) AddTotalBytes(i int64) {
	if m.addtotal_bytes != nil {
		*m.addtotal_bytes += i
	} else {
		m.addtotal_bytes = &i
	}
}

// AddedTotalBytes returns the value that was added to the "total_bytes" field in this mutation.
func (m *SiteMutation) AddedTotalBytes() (r int64, exists bool) {
	v := m.addtotal_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalBytes resets all changes to the "total_bytes" field.
func (m *SiteMutation) ResetTotalBytes() {
	m.total_bytes = nil
	m.addtotal_bytes = nil
}

// SetSettings sets the "settings" field.
func (m *SiteMutation) SetSettings(value map[string]interface{}) {
	m.settings = &value
}

// Settings returns the value of the "settings" field in the mutation.
func (m *SiteMutation) Settings() (r map[string]interface{}, exists bool) {
	v := m.settings
	if v == nil {
		return
	}
	return *v, true
}

// OldSettings returns the old "settings" field's value of the Site entity.
// If the Site object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SiteMutation) OldSettings(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSettings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSettings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSettings: %w", err)
	}
	return oldValue.Settings, nil
}

// ClearSettings clears the value of the "settings" field.
func (m *SiteMutation) ClearSettings() {
	m.settings = nil
	m.clearedFields[site.FieldSettings] = struct{}{}
}

// SettingsCleared returns if the "settings" field was cleared in this mutation.
func (m *SiteMutation) SettingsCleared() bool {
	_, ok := m.clearedFields[site.FieldSettings]
	return ok
}

// ResetSettings resets all changes to the "settings" field.
func (m *SiteMutation) ResetSettings() {
	m.settings = nil
	delete(m.clearedFields, site.FieldSettings)
}

// SetWebhookSecret sets the "webhook_secret" field.
func (m *SiteMutation) SetWebhookSecret(s string) {
	m.webhook_secret = &s
}

// WebhookSecret returns the value of the "webhook_secret" field in the mutation.
func (m *SiteMutation) WebhookSecret() (r string, exists bool) {
	v := m.webhook_secret
	if v == nil {
		return
	}
	return *v, true
}

// OldWebhookSecret returns the old "webhook_secret" field's value of the Site entity.
// If the Site object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SiteMutation) OldWebhookSecret(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebhookSecret is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebhookSecret requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebhookSecret: %w", err)
	}
	return oldValue.WebhookSecret, nil
}

// ResetWebhookSecret resets all changes to the "webhook_secret" field.
func (m *SiteMutation) ResetWebhookSecret() {
	m.webhook_secret = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SiteMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SiteMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Site entity.
// If the Site object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SiteMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SiteMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SiteMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SiteMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Site entity.
// If the Site object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SiteMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SiteMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddBuildIDs adds the "builds" edge to the Build entity by ids.
func (m *SiteMutation) AddBuildIDs(ids ...string) {
	if m.builds == nil {
		m.builds = make(map[string]struct{})
	}
	for i := range ids {
		m.builds[ids[i]] = struct{}{}
	}
}

// ClearBuilds clears the "builds" edge to the Build entity.
func (m *SiteMutation) ClearBuilds() {
	m.clearedbuilds = true
}

// BuildsCleared reports if the "builds" edge to the Build entity was cleared.
func (m *SiteMutation) BuildsCleared() bool {
	return m.clearedbuilds
}

// RemoveBuildIDs removes the "builds" edge to the Build entity by IDs.
func (m *SiteMutation) RemoveBuildIDs(ids ...string) {
	if m.removedbuilds == nil {
		m.removedbuilds = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.builds, ids[i])
		m.removedbuilds[ids[i]] = struct{}{}
	}
}

// RemovedBuilds returns the removed IDs of the "builds" edge to the Build entity.
func (m *SiteMutation) RemovedBuildsIDs() (ids []string) {
	for id := range m.removedbuilds {
		ids = append(ids, id)
	}
	return
}

// BuildsIDs returns the "builds" edge IDs in the mutation.
func (m *SiteMutation) BuildsIDs() (ids []string) {
	for id := range m.builds {
		ids = append(ids, id)
	}
	return
}

// ResetBuilds resets all changes to the "builds" edge.
func (m *SiteMutation) ResetBuilds() {
	m.builds = nil
	m.clearedbuilds = false
	m.removedbuilds = nil
}

// AddAgentRunIDs adds the "agent_runs" edge to the AgentRun entity by ids.
func (m *SiteMutation) AddAgentRunIDs(ids ...string) {
	if m.agent_runs == nil {
		m.agent_runs = make(map[string]struct{})
	}
	for i := range ids {
		m.agent_runs[ids[i]] = struct{}{}
	}
}

// ClearAgentRuns clears the "agent_runs" edge to the AgentRun entity.
func (m *SiteMutation) ClearAgentRuns() {
	m.clearedagent_runs = true
}

// AgentRunsCleared reports if the "agent_runs" edge to the AgentRun entity was cleared.
func (m *SiteMutation) AgentRunsCleared() bool {
	return m.clearedagent_runs
}

// RemoveAgentRunIDs removes the "agent_runs" edge to the AgentRun entity by IDs.
func (m *SiteMutation) RemoveAgentRunIDs(ids ...string) {
	if m.removedagent_runs == nil {
		m.removedagent_runs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.agent_runs, ids[i])
		m.removedagent_runs[ids[i]] = struct{}{}
	}
}

// RemovedAgentRuns returns the removed IDs of the "agent_runs" edge to the AgentRun entity.
func (m *SiteMutation) RemovedAgentRunsIDs() (ids []string) {
	for id := range m.removedagent_runs {
		ids = append(ids, id)
	}
	return
}

// AgentRunsIDs returns the "agent_runs" edge IDs in the mutation.
func (m *SiteMutation) AgentRunsIDs() (ids []string) {
	for id := range m.agent_runs {
		ids = append(ids, id)
	}
	return
}

// ResetAgentRuns resets all changes to the "agent_runs" edge.
func (m *SiteMutation) ResetAgentRuns() {
	m.agent_runs = nil
	m.clearedagent_runs = false
	m.removedagent_runs = nil
}

// AddAssetOverrideIDs adds the "asset_overrides" edge to the AssetOverride entity by ids.
func (m *SiteMutation) AddAssetOverrideIDs(ids ...string) {
	if m.asset_overrides == nil {
		m.asset_overrides = make(map[string]struct{})
	}
	for i := range ids {
		m.asset_overrides[ids[i]] = struct{}{}
	}
}

// ClearAssetOverrides clears the "asset_overrides" edge to the AssetOverride entity.
func (m *SiteMutation) ClearAssetOverrides() {
	m.clearedasset_overrides = true
}

// AssetOverridesCleared reports if the "asset_overrides" edge to the AssetOverride entity was cleared.
func (m *SiteMutation) AssetOverridesCleared() bool {
	return m.clearedasset_overrides
}

// RemoveAssetOverrideIDs removes the "asset_overrides" edge to the AssetOverride entity by IDs.
func (m *SiteMutation) RemoveAssetOverrideIDs(ids ...string) {
	if m.removedasset_overrides == nil {
		m.removedasset_overrides = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.asset_overrides, ids[i])
		m.removedasset_overrides[ids[i]] = struct{}{}
	}
}

// RemovedAssetOverrides returns the removed IDs of the "asset_overrides" edge to the AssetOverride entity.
func (m *SiteMutation) RemovedAssetOverridesIDs() (ids []string) {
	for id := range m.removedasset_overrides {
		ids = append(ids, id)
	}
	return
}

// AssetOverridesIDs returns the "asset_overrides" edge IDs in the mutation.
func (m *SiteMutation) AssetOverridesIDs() (ids []string) {
	for id := range m.asset_overrides {
		ids = append(ids, id)
	}
	return
}

// ResetAssetOverrides resets all changes to the "asset_overrides" edge.
func (m *SiteMutation) ResetAssetOverrides() {
	m.asset_overrides = nil
	m.clearedasset_overrides = false
	m.removedasset_overrides = nil
}

// AddSettingsHistoryIDs adds the "settings_history" edge to the SettingsHistory entity by ids.
func (m *SiteMutation) AddSettingsHistoryIDs(ids ...string) {
	if m.settings_history == nil {
		m.settings_history = make(map[string]struct{})
	}
	for i := range ids {
		m.settings_history[ids[i]] = struct{}{}
	}
}

// ClearSettingsHistory clears the "settings_history" edge to the SettingsHistory entity.
func (m *SiteMutation) ClearSettingsHistory() {
	m.clearedsettings_history = true
}

// SettingsHistoryCleared reports if the "settings_history" edge to the SettingsHistory entity was cleared.
func (m *SiteMutation) SettingsHistoryCleared() bool {
	return m.clearedsettings_history
}

// RemoveSettingsHistoryIDs removes the "settings_history" edge to the SettingsHistory entity by IDs.
func (m *SiteMutation) RemoveSettingsHistoryIDs(ids ...string) {
	if m.removedsettings_history == nil {
		m.removedsettings_history = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.settings_history, ids[i])
		m.removedsettings_history[ids[i]] = struct{}{}
	}
}

// RemovedSettingsHistory returns the removed IDs of the "settings_history" edge to the SettingsHistory entity.
func (m *SiteMutation) RemovedSettingsHistoryIDs() (ids []string) {
	for id := range m.removedsettings_history {
		ids = append(ids, id)
	}
	return
}

// SettingsHistoryIDs returns the "settings_history" edge IDs in the mutation.
func (m *SiteMutation) SettingsHistoryIDs() (ids []string) {
	for id := range m.settings_history {
		ids = append(ids, id)
	}
	return
}

// ResetSettingsHistory resets all changes to the "settings_history" edge.
func (m *SiteMutation) ResetSettingsHistory() {
	m.settings_history = nil
	m.clearedsettings_history = false
	m.removedsettings_history = nil
}

// AddMeasurementIDs adds the "measurements" edge to the MeasurementComparison entity by ids.
func (m *SiteMutation) AddMeasurementIDs(ids ...string) {
	if m.measurements == nil {
		m.measurements = make(map[string]struct{})
	}
	for i := range ids {
		m.measurements[ids[i]] = struct{}{}
	}
}

// ClearMeasurements clears the "measurements" edge to the MeasurementComparison entity.
func (m *SiteMutation) ClearMeasurements() {
	m.clearedmeasurements = true
}

// MeasurementsCleared reports if the "measurements" edge to the MeasurementComparison entity was cleared.
func (m *SiteMutation) MeasurementsCleared() bool {
	return m.clearedmeasurements
}

// RemoveMeasurementIDs removes the "measurements" edge to the MeasurementComparison entity by IDs.
func (m *SiteMutation) RemoveMeasurementIDs(ids ...string) {
	if m.removedmeasurements == nil {
		m.removedmeasurements = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.measurements, ids[i])
		m.removedmeasurements[ids[i]] = struct{}{}
	}
}

// RemovedMeasurements returns the removed IDs of the "measurements" edge to the MeasurementComparison entity.
func (m *SiteMutation) RemovedMeasurementsIDs() (ids []string) {
	for id := range m.removedmeasurements {
		ids = append(ids, id)
	}
	return
}

// MeasurementsIDs returns the "measurements" edge IDs in the mutation.
func (m *SiteMutation) MeasurementsIDs() (ids []string) {
	for id := range m.measurements {
		ids = append(ids, id)
	}
	return
}

// ResetMeasurements resets all changes to the "measurements" edge.
func (m *SiteMutation) ResetMeasurements() {
	m.measurements = nil
	m.clearedmeasurements = false
	m.removedmeasurements = nil
}

// AddPageIDs adds the "pages" edge to the Page entity by ids.
func (m *SiteMutation) AddPageIDs(ids ...string) {
	if m.pages == nil {
		m.pages = make(map[string]struct{})
	}
	for i := range ids {
		m.pages[ids[i]] = struct{}{}
	}
}

// ClearPages clears the "pages" edge to the Page entity.
func (m *SiteMutation) ClearPages() {
	m.clearedpages = true
}

// PagesCleared reports if the "pages" edge to the Page entity was cleared.
func (m *SiteMutation) PagesCleared() bool {
	return m.clearedpages
}

// RemovePageIDs removes the "pages" edge to the Page entity by IDs.
func (m *SiteMutation) RemovePageIDs(ids ...string) {
	if m.removedpages == nil {
		m.removedpages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.pages, ids[i])
		m.removedpages[ids[i]] = struct{}{}
	}
}

// RemovedPages returns the removed IDs of the "pages" edge to the Page entity.
func (m *SiteMutation) RemovedPagesIDs() (ids []string) {
	for id := range m.removedpages {
		ids = append(ids, id)
	}
	return
}

// PagesIDs returns the "pages" edge IDs in the mutation.
func (m *SiteMutation) PagesIDs() (ids []string) {
	for id := range m.pages {
		ids = append(ids, id)
	}
	return
}

// ResetPages resets all changes to the "pages" edge.
func (m *SiteMutation) ResetPages() {
	m.pages = nil
	m.clearedpages = false
	m.removedpages = nil
}

// AddAlertRuleIDs adds the "alert_rules" edge to the AlertRule entity by ids.
func (m *SiteMutation) AddAlertRuleIDs(ids ...string) {
	if m.alert_rules == nil {
		m.alert_rules = make(map[string]struct{})
	}
	for i := range ids {
		m.alert_rules[ids[i]] = struct{}{}
	}
}

// ClearAlertRules clears the "alert_rules" edge to the AlertRule entity.
func (m *SiteMutation) ClearAlertRules() {
	m.clearedalert_rules = true
}

// AlertRulesCleared reports if the "alert_rules" edge to the AlertRule entity was cleared.
func (m *SiteMutation) AlertRulesCleared() bool {
	return m.clearedalert_rules
}

// RemoveAlertRuleIDs removes the "alert_rules" edge to the AlertRule entity by IDs.
func (m *SiteMutation) RemoveAlertRuleIDs(ids ...string) {
	if m.removedalert_rules == nil {
		m.removedalert_rules = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.alert_rules, ids[i])
		m.removedalert_rules[ids[i]] = struct{}{}
	}
}

// RemovedAlertRules returns the removed IDs of the "alert_rules" edge to the AlertRule entity.
func (m *SiteMutation) RemovedAlertRulesIDs() (ids []string) {
	for id := range m.removedalert_rules {
		ids = append(ids, id)
	}
	return
}

// AlertRulesIDs returns the "alert_rules" edge IDs in the mutation.
func (m *SiteMutation) AlertRulesIDs() (ids []string) {
	for id := range m.alert_rules {
		ids = append(ids, id)
	}
	return
}

// ResetAlertRules resets all changes to the "alert_rules" edge.
func (m *SiteMutation) ResetAlertRules() {
	m.alert_rules = nil
	m.clearedalert_rules = false
	m.removedalert_rules = nil
}

// AddAlertLogIDs adds the "alert_logs" edge to the AlertLog entity by ids.
func (m *SiteMutation) AddAlertLogIDs(ids ...string) {
	if m.alert_logs == nil {
		m.alert_logs = make(map[string]struct{})
	}
	for i := range ids {
		m.alert_logs[ids[i]] = struct{}{}
	}
}

// ClearAlertLogs clears the "alert_logs" edge to the AlertLog entity.
func (m *SiteMutation) ClearAlertLogs() {
	m.clearedalert_logs = true
}

// AlertLogsCleared reports if the "alert_logs" edge to the AlertLog entity was cleared.
func (m *SiteMutation) AlertLogsCleared() bool {
	return m.clearedalert_logs
}

// RemoveAlertLogIDs removes the "alert_logs" edge to the AlertLog entity by IDs.
func (m *SiteMutation) RemoveAlertLogIDs(ids ...string) {
	if m.removedalert_logs == nil {
		m.removedalert_logs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.alert_logs, ids[i])
		m.removedalert_logs[ids[i]] = struct{}{}
	}
}

// RemovedAlertLogs returns the removed IDs of the "alert_logs" edge to the AlertLog entity.
func (m *SiteMutation) RemovedAlertLogsIDs() (ids []string) {
	for id := range m.removedalert_logs {
		ids = append(ids, id)
	}
	return
}

// AlertLogsIDs returns the "alert_logs" edge IDs in the mutation.
func (m *SiteMutation) AlertLogsIDs() (ids []string) {
	for id := range m.alert_logs {
		ids = append(ids, id)
	}
	return
}

// ResetAlertLogs resets all changes to the "alert_logs" edge.
func (m *SiteMutation) ResetAlertLogs() {
	m.alert_logs = nil
	m.clearedalert_logs = false
	m.removedalert_logs = nil
}

// Where appends a list predicates to the SiteMutation builder.
func (m *SiteMutation) Where(ps ...predicate.Site) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SiteMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SiteMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Site, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SiteMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SiteMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Site).
func (m *SiteMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SiteMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.name != nil {
		fields = append(fields, site.FieldName)
	}
	if m.source_url != nil {
		fields = append(fields, site.FieldSourceURL)
	}
	if m.status != nil {
		fields = append(fields, site.FieldStatus)
	}
	if m.last_build_id != nil {
		fields = append(fields, site.FieldLastBuildID)
	}
	if m.last_build_status != nil {
		fields = append(fields, site.FieldLastBuildStatus)
	}
	if m.edge_url != nil {
		fields = append(fields, site.FieldEdgeURL)
	}
	if m.edge_project != nil {
		fields = append(fields, site.FieldEdgeProject)
	}
	if m.page_count != nil {
		fields = append(fields, site.FieldPageCount)
	}
	if m.total_bytes != nil {
		fields = append(fields, site.FieldTotalBytes)
	}
	if m.settings != nil {
		fields = append(fields, site.FieldSettings)
	}
	if m.webhook_secret != nil {
		fields = append(fields, site.FieldWebhookSecret)
	}
	if m.created_at != nil {
		fields = append(fields, site.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, site.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SiteMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case site.FieldName:
		return m.Name()
	case site.FieldSourceURL:
		return m.SourceURL()
	case site.FieldStatus:
		return m.Status()
	case site.FieldLastBuildID:
		return m.LastBuildID()
	case site.FieldLastBuildStatus:
		return m.LastBuildStatus()
	case site.FieldEdgeURL:
		return m.EdgeURL()
	case site.FieldEdgeProject:
		return m.EdgeProject()
	case site.FieldPageCount:
		return m.PageCount()
	case site.FieldTotalBytes:
		return m.TotalBytes()
	case site.FieldSettings:
		return m.Settings()
	case site.FieldWebhookSecret:
		return m.WebhookSecret()
	case site.FieldCreatedAt:
		return m.CreatedAt()
	case site.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SiteMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case site.FieldName:
		return m.OldName(ctx)
	case site.FieldSourceURL:
		return m.OldSourceURL(ctx)
	case site.FieldStatus:
		return m.OldStatus(ctx)
	case site.FieldLastBuildID:
		return m.OldLastBuildID(ctx)
	case site.FieldLastBuildStatus:
		return m.OldLastBuildStatus(ctx)
	case site.FieldEdgeURL:
		return m.OldEdgeURL(ctx)
	case site.FieldEdgeProject:
		return m.OldEdgeProject(ctx)
	case site.FieldPageCount:
		return m.OldPageCount(ctx)
	case site.FieldTotalBytes:
		return m.OldTotalBytes(ctx)
	case site.FieldSettings:
		return m.OldSettings(ctx)
	case site.FieldWebhookSecret:
		return m.OldWebhookSecret(ctx)
	case site.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case site.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Site field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SiteMutation) SetField(name string, value ent.Value) error {
	switch name {
	case site.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case site.FieldSourceURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceURL(v)
		return nil
	case site.FieldStatus:
		v, ok := value.(site.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case site.FieldLastBuildID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastBuildID(v)
		return nil
	case site.FieldLastBuildStatus:
		v, ok := value.(site.LastBuildStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastBuildStatus(v)
		return nil
	case site.FieldEdgeURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEdgeURL(v)
		return nil
	case site.FieldEdgeProject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEdgeProject(v)
		return nil
	case site.FieldPageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageCount(v)
		return nil
	case site.FieldTotalBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalBytes(v)
		return nil
	case site.FieldSettings:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSettings(v)
		return nil
	case site.FieldWebhookSecret:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebhookSecret(v)
		return nil
	case site.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case site.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Site field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SiteMutation) AddedFields() []string {
	var fields []string
	if m.addpage_count != nil {
		fields = append(fields, site.FieldPageCount)
	}
	if m.addtotal_bytes != nil {
		fields = append(fields, site.FieldTotalBytes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SiteMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case site.FieldPageCount:
		return m.AddedPageCount()
	case site.FieldTotalBytes:
		return m.AddedTotalBytes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SiteMutation) AddField(name string, value ent.Value) error {
	switch name {
	case site.FieldPageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPageCount(v)
		return nil
	case site.FieldTotalBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalBytes(v)
		return nil
	}
	return fmt.Errorf("unknown Site numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SiteMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(site.FieldLastBuildID) {
		fields = append(fields, site.FieldLastBuildID)
	}
	if m.FieldCleared(site.FieldLastBuildStatus) {
		fields = append(fields, site.FieldLastBuildStatus)
	}
	if m.FieldCleared(site.FieldEdgeURL) {
		fields = append(fields, site.FieldEdgeURL)
	}
	if m.FieldCleared(site.FieldEdgeProject) {
		fields = append(fields, site.FieldEdgeProject)
	}
	if m.FieldCleared(site.FieldSettings) {
		fields = append(fields, site.FieldSettings)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SiteMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SiteMutation) ClearField(name string) error {
	switch name {
	case site.FieldLastBuildID:
		m.ClearLastBuildID()
		return nil
	case site.FieldLastBuildStatus:
		m.ClearLastBuildStatus()
		return nil
	case site.FieldEdgeURL:
		m.ClearEdgeURL()
		return nil
	case site.FieldEdgeProject:
		m.ClearEdgeProject()
		return nil
	case site.FieldSettings:
		m.ClearSettings()
		return nil
	}
	return fmt.Errorf("unknown Site nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SiteMutation) ResetField(name string) error {
	switch name {
	case site.FieldName:
		m.ResetName()
		return nil
	case site.FieldSourceURL:
		m.ResetSourceURL()
		return nil
	case site.FieldStatus:
		m.ResetStatus()
		return nil
	case site.FieldLastBuildID:
		m.ResetLastBuildID()
		return nil
	case site.FieldLastBuildStatus:
		m.ResetLastBuildStatus()
		return nil
	case site.FieldEdgeURL:
		m.ResetEdgeURL()
		return nil
	case site.FieldEdgeProject:
		m.ResetEdgeProject()
		return nil
	case site.FieldPageCount:
		m.ResetPageCount()
		return nil
	case site.FieldTotalBytes:
		m.ResetTotalBytes()
		return nil
	case site.FieldSettings:
		m.ResetSettings()
		return nil
	case site.FieldWebhookSecret:
		m.ResetWebhookSecret()
		return nil
	case site.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case site.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Site field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SiteMutation) AddedEdges() []string {
	edges := make([]string, 0, 8)
	if m.builds != nil {
		edges = append(edges, site.EdgeBuilds)
	}
	if m.agent_runs != nil {
		edges = append(edges, site.EdgeAgentRuns)
	}
	if m.asset_overrides != nil {
		edges = append(edges, site.EdgeAssetOverrides)
	}
	if m.settings_history != nil {
		edges = append(edges, site.EdgeSettingsHistory)
	}
	if m.measurements != nil {
		edges = append(edges, site.EdgeMeasurements)
	}
	if m.pages != nil {
		edges = append(edges, site.EdgePages)
	}
	if m.alert_rules != nil {
		edges = append(edges, site.EdgeAlertRules)
	}
	if m.alert_logs != nil {
		edges = append(edges, site.EdgeAlertLogs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SiteMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case site.EdgeBuilds:
		ids := make([]ent.Value, 0, len(m.builds))
		for id := range m.builds {
			ids = append(ids, id)
		}
		return ids
	case site.EdgeAgentRuns:
		ids := make([]ent.Value, 0, len(m.agent_runs))
		for id := range m.agent_runs {
			ids = append(ids, id)
		}
		return ids
	case site.EdgeAssetOverrides:
		ids := make([]ent.Value, 0, len(m.asset_overrides))
		for id := range m.asset_overrides {
			ids = append(ids, id)
		}
		return ids
	case site.EdgeSettingsHistory:
		ids := make([]ent.Value, 0, len(m.settings_history))
		for id := range m.settings_history {
			ids = append(ids, id)
		}
		return ids
	case site.EdgeMeasurements:
		ids := make([]ent.Value, 0, len(m.measurements))
		for id := range m.measurements {
			ids = append(ids, id)
		}
		return ids
	case site.EdgePages:
		ids := make([]ent.Value, 0, len(m.pages))
		for id := range m.pages {
			ids = append(ids, id)
		}
		return ids
	case site.EdgeAlertRules:
		ids := make([]ent.Value, 0, len(m.alert_rules))
		for id := range m.alert_rules {
			ids = append(ids, id)
		}
		return ids
	case site.EdgeAlertLogs:
		ids := make([]ent.Value, 0, len(m.alert_logs))
		for id := range m.alert_logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SiteMutation) RemovedEdges() []string {
	edges := make([]string, 0, 8)
	if m.removedbuilds != nil {
		edges = append(edges, site.EdgeBuilds)
	}
	if m.removedagent_runs != nil {
		edges = append(edges, site.EdgeAgentRuns)
	}
	if m.removedasset_overrides != nil {
		edges = append(edges, site.EdgeAssetOverrides)
	}
	if m.removedsettings_history != nil {
		edges = append(edges, site.EdgeSettingsHistory)
	}
	if m.removedmeasurements != nil {
		edges = append(edges, site.EdgeMeasurements)
	}
	if m.removedpages != nil {
		edges = append(edges, site.EdgePages)
	}
	if m.removedalert_rules != nil {
		edges = append(edges, site.EdgeAlertRules)
	}
	if m.removedalert_logs != nil {
		edges = append(edges, site.EdgeAlertLogs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SiteMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case site.EdgeBuilds:
		ids := make([]ent.Value, 0, len(m.removedbuilds))
		for id := range m.removedbuilds {
			ids = append(ids, id)
		}
		return ids
	case site.EdgeAgentRuns:
		ids := make([]ent.Value, 0, len(m.removedagent_runs))
		for id := range m.removedagent_runs {
			ids = append(ids, id)
		}
		return ids
	case site.EdgeAssetOverrides:
		ids := make([]ent.Value, 0, len(m.removedasset_overrides))
		for id := range m.removedasset_overrides {
			ids = append(ids, id)
		}
		return ids
	case site.EdgeSettingsHistory:
		ids := make([]ent.Value, 0, len(m.removedsettings_history))
		for id := range m.removedsettings_history {
			ids = append(ids, id)
		}
		return ids
	case site.EdgeMeasurements:
		ids := make([]ent.Value, 0, len(m.removedmeasurements))
		for id := range m.removedmeasurements {
			ids = append(ids, id)
		}
		return ids
	case site.EdgePages:
		ids := make([]ent.Value, 0, len(m.removedpages))
		for id := range m.removedpages {
			ids = append(ids, id)
		}
		return ids
	case site.EdgeAlertRules:
		ids := make([]ent.Value, 0, len(m.removedalert_rules))
		for id := range m.removedalert_rules {
			ids = append(ids, id)
		}
		return ids
	case site.EdgeAlertLogs:
		ids := make([]ent.Value, 0, len(m.removedalert_logs))
		for id := range m.removedalert_logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SiteMutation) ClearedEdges() []string {
	edges := make([]string, 0, 8)
	if m.clearedbuilds {
		edges = append(edges, site.EdgeBuilds)
	}
	if m.clearedagent_runs {
		edges = append(edges, site.EdgeAgentRuns)
	}
	if m.clearedasset_overrides {
		edges = append(edges, site.EdgeAssetOverrides)
	}
	if m.clearedsettings_history {
		edges = append(edges, site.EdgeSettingsHistory)
	}
	if m.clearedmeasurements {
		edges = append(edges, site.EdgeMeasurements)
	}
	if m.clearedpages {
		edges = append(edges, site.EdgePages)
	}
	if m.clearedalert_rules {
		edges = append(edges, site.EdgeAlertRules)
	}
	if m.clearedalert_logs {
		edges = append(edges, site.EdgeAlertLogs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SiteMutation) EdgeCleared(name string) bool {
	switch name {
	case site.EdgeBuilds:
		return m.clearedbuilds
	case site.EdgeAgentRuns:
		return m.clearedagent_runs
	case site.EdgeAssetOverrides:
		return m.clearedasset_overrides
	case site.EdgeSettingsHistory:
		return m.clearedsettings_history
	case site.EdgeMeasurements:
		return m.clearedmeasurements
	case site.EdgePages:
		return m.clearedpages
	case site.EdgeAlertRules:
		return m.clearedalert_rules
	case site.EdgeAlertLogs:
		return m.clearedalert_logs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SiteMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Site unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SiteMutation) ResetEdge(name string) error {
	switch name {
	case site.EdgeBuilds:
		m.ResetBuilds()
		return nil
	case site.EdgeAgentRuns:
		m.ResetAgentRuns()
		return nil
	case site.EdgeAssetOverrides:
		m.ResetAssetOverrides()
		return nil
	case site.EdgeSettingsHistory:
		m.ResetSettingsHistory()
		return nil
	case site.EdgeMeasurements:
		m.ResetMeasurements()
		return nil
	case site.EdgePages:
		m.ResetPages()
		return nil
	case site.EdgeAlertRules:
		m.ResetAlertRules()
		return nil
	case site.EdgeAlertLogs:
		m.ResetAlertLogs()
		return nil
	}
	return fmt.Errorf("unknown Site edge %s", name)
}
