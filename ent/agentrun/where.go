// Code generated by ent, DO NOT EDIT.

package agentrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/metrics-lab/staticpress/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldContainsFold(FieldID, id))
}

// SiteID applies equality check predicate on the "site_id" field. It's identical to SiteIDEQ.
func SiteID(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldSiteID, v))
}

// Iteration applies equality check predicate on the "iteration" field. It's identical to IterationEQ.
func Iteration(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldIteration, v))
}

// MaxIterations applies equality check predicate on the "max_iterations" field. It's identical to MaxIterationsEQ.
func MaxIterations(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldMaxIterations, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldLastError, v))
}

// CurrentBuildID applies equality check predicate on the "current_build_id" field. It's identical to CurrentBuildIDEQ.
func CurrentBuildID(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldCurrentBuildID, v))
}

// WorkspaceDir applies equality check predicate on the "workspace_dir" field. It's identical to WorkspaceDirEQ.
func WorkspaceDir(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldWorkspaceDir, v))
}

// FinalVerdict applies equality check predicate on the "final_verdict" field. It's identical to FinalVerdictEQ.
func FinalVerdict(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldFinalVerdict, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldUpdatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldCompletedAt, v))
}

// SiteIDEQ applies the EQ predicate on the "site_id" field.
func SiteIDEQ(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldSiteID, v))
}

// SiteIDNEQ applies the NEQ predicate on the "site_id" field.
func SiteIDNEQ(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNEQ(FieldSiteID, v))
}

// SiteIDIn applies the In predicate on the "site_id" field.
func SiteIDIn(vs ...string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIn(FieldSiteID, vs...))
}

// SiteIDNotIn applies the NotIn predicate on the "site_id" field.
func SiteIDNotIn(vs ...string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotIn(FieldSiteID, vs...))
}

// SiteIDGT applies the GT predicate on the "site_id" field.
func SiteIDGT(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGT(FieldSiteID, v))
}

// SiteIDGTE applies the GTE predicate on the "site_id" field.
func SiteIDGTE(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGTE(FieldSiteID, v))
}

// SiteIDLT applies the LT predicate on the "site_id" field.
func SiteIDLT(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLT(FieldSiteID, v))
}

// SiteIDLTE applies the LTE predicate on the "site_id" field.
func SiteIDLTE(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLTE(FieldSiteID, v))
}

// SiteIDContains applies the Contains predicate on the "site_id" field.
func SiteIDContains(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldContains(FieldSiteID, v))
}

// SiteIDHasPrefix applies the HasPrefix predicate on the "site_id" field.
func SiteIDHasPrefix(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldHasPrefix(FieldSiteID, v))
}

// SiteIDHasSuffix applies the HasSuffix predicate on the "site_id" field.
func SiteIDHasSuffix(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldHasSuffix(FieldSiteID, v))
}

// SiteIDEqualFold applies the EqualFold predicate on the "site_id" field.
func SiteIDEqualFold(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEqualFold(FieldSiteID, v))
}

// SiteIDContainsFold applies the ContainsFold predicate on the "site_id" field.
func SiteIDContainsFold(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldContainsFold(FieldSiteID, v))
}

// PhaseEQ applies the EQ predicate on the "phase" field.
func PhaseEQ(v Phase) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldPhase, v))
}

// PhaseNEQ applies the NEQ predicate on the "phase" field.
func PhaseNEQ(v Phase) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNEQ(FieldPhase, v))
}

// PhaseIn applies the In predicate on the "phase" field.
func PhaseIn(vs ...Phase) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIn(FieldPhase, vs...))
}

// PhaseNotIn applies the NotIn predicate on the "phase" field.
func PhaseNotIn(vs ...Phase) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotIn(FieldPhase, vs...))
}

// IterationEQ applies the EQ predicate on the "iteration" field.
func IterationEQ(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldIteration, v))
}

// IterationNEQ applies the NEQ predicate on the "iteration" field.
func IterationNEQ(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNEQ(FieldIteration, v))
}

// IterationIn applies the In predicate on the "iteration" field.
func IterationIn(vs ...int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIn(FieldIteration, vs...))
}

// IterationNotIn applies the NotIn predicate on the "iteration" field.
func IterationNotIn(vs ...int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotIn(FieldIteration, vs...))
}

// IterationGT applies the GT predicate on the "iteration" field.
func IterationGT(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGT(FieldIteration, v))
}

// IterationGTE applies the GTE predicate on the "iteration" field.
func IterationGTE(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGTE(FieldIteration, v))
}

// IterationLT applies the LT predicate on the "iteration" field.
func IterationLT(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLT(FieldIteration, v))
}

// IterationLTE applies the LTE predicate on the "iteration" field.
func IterationLTE(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLTE(FieldIteration, v))
}

// MaxIterationsEQ applies the EQ predicate on the "max_iterations" field.
func MaxIterationsEQ(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldMaxIterations, v))
}

// MaxIterationsNEQ applies the NEQ predicate on the "max_iterations" field.
func MaxIterationsNEQ(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNEQ(FieldMaxIterations, v))
}

// MaxIterationsIn applies the In predicate on the "max_iterations" field.
func MaxIterationsIn(vs ...int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIn(FieldMaxIterations, vs...))
}

// MaxIterationsNotIn applies the NotIn predicate on the "max_iterations" field.
func MaxIterationsNotIn(vs ...int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotIn(FieldMaxIterations, vs...))
}

// MaxIterationsGT applies the GT predicate on the "max_iterations" field.
func MaxIterationsGT(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGT(FieldMaxIterations, v))
}

// MaxIterationsGTE applies the GTE predicate on the "max_iterations" field.
func MaxIterationsGTE(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGTE(FieldMaxIterations, v))
}

// MaxIterationsLT applies the LT predicate on the "max_iterations" field.
func MaxIterationsLT(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLT(FieldMaxIterations, v))
}

// MaxIterationsLTE applies the LTE predicate on the "max_iterations" field.
func MaxIterationsLTE(v int) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLTE(FieldMaxIterations, v))
}

// PhaseTimingsIsNil applies the IsNil predicate on the "phase_timings" field.
func PhaseTimingsIsNil() predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIsNull(FieldPhaseTimings))
}

// PhaseTimingsNotNil applies the NotNil predicate on the "phase_timings" field.
func PhaseTimingsNotNil() predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotNull(FieldPhaseTimings))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldContainsFold(FieldLastError, v))
}

// CheckpointIsNil applies the IsNil predicate on the "checkpoint" field.
func CheckpointIsNil() predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIsNull(FieldCheckpoint))
}

// CheckpointNotNil applies the NotNil predicate on the "checkpoint" field.
func CheckpointNotNil() predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotNull(FieldCheckpoint))
}

// CurrentBuildIDEQ applies the EQ predicate on the "current_build_id" field.
func CurrentBuildIDEQ(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldCurrentBuildID, v))
}

// CurrentBuildIDNEQ applies the NEQ predicate on the "current_build_id" field.
func CurrentBuildIDNEQ(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNEQ(FieldCurrentBuildID, v))
}

// CurrentBuildIDIn applies the In predicate on the "current_build_id" field.
func CurrentBuildIDIn(vs ...string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIn(FieldCurrentBuildID, vs...))
}

// CurrentBuildIDNotIn applies the NotIn predicate on the "current_build_id" field.
func CurrentBuildIDNotIn(vs ...string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotIn(FieldCurrentBuildID, vs...))
}

// CurrentBuildIDGT applies the GT predicate on the "current_build_id" field.
func CurrentBuildIDGT(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGT(FieldCurrentBuildID, v))
}

// CurrentBuildIDGTE applies the GTE predicate on the "current_build_id" field.
func CurrentBuildIDGTE(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGTE(FieldCurrentBuildID, v))
}

// CurrentBuildIDLT applies the LT predicate on the "current_build_id" field.
func CurrentBuildIDLT(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLT(FieldCurrentBuildID, v))
}

// CurrentBuildIDLTE applies the LTE predicate on the "current_build_id" field.
func CurrentBuildIDLTE(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLTE(FieldCurrentBuildID, v))
}

// CurrentBuildIDContains applies the Contains predicate on the "current_build_id" field.
func CurrentBuildIDContains(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldContains(FieldCurrentBuildID, v))
}

// CurrentBuildIDHasPrefix applies the HasPrefix predicate on the "current_build_id" field.
func CurrentBuildIDHasPrefix(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldHasPrefix(FieldCurrentBuildID, v))
}

// CurrentBuildIDHasSuffix applies the HasSuffix predicate on the "current_build_id" field.
func CurrentBuildIDHasSuffix(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldHasSuffix(FieldCurrentBuildID, v))
}

// CurrentBuildIDIsNil applies the IsNil predicate on the "current_build_id" field.
func CurrentBuildIDIsNil() predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIsNull(FieldCurrentBuildID))
}

// CurrentBuildIDNotNil applies the NotNil predicate on the "current_build_id" field.
func CurrentBuildIDNotNil() predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotNull(FieldCurrentBuildID))
}

// CurrentBuildIDEqualFold applies the EqualFold predicate on the "current_build_id" field.
func CurrentBuildIDEqualFold(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEqualFold(FieldCurrentBuildID, v))
}

// CurrentBuildIDContainsFold applies the ContainsFold predicate on the "current_build_id" field.
func CurrentBuildIDContainsFold(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldContainsFold(FieldCurrentBuildID, v))
}

// WorkspaceDirEQ applies the EQ predicate on the "workspace_dir" field.
func WorkspaceDirEQ(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldWorkspaceDir, v))
}

// WorkspaceDirNEQ applies the NEQ predicate on the "workspace_dir" field.
func WorkspaceDirNEQ(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNEQ(FieldWorkspaceDir, v))
}

// WorkspaceDirIn applies the In predicate on the "workspace_dir" field.
func WorkspaceDirIn(vs ...string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIn(FieldWorkspaceDir, vs...))
}

// WorkspaceDirNotIn applies the NotIn predicate on the "workspace_dir" field.
func WorkspaceDirNotIn(vs ...string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotIn(FieldWorkspaceDir, vs...))
}

// WorkspaceDirGT applies the GT predicate on the "workspace_dir" field.
func WorkspaceDirGT(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGT(FieldWorkspaceDir, v))
}

// WorkspaceDirGTE applies the GTE predicate on the "workspace_dir" field.
func WorkspaceDirGTE(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGTE(FieldWorkspaceDir, v))
}

// WorkspaceDirLT applies the LT predicate on the "workspace_dir" field.
func WorkspaceDirLT(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLT(FieldWorkspaceDir, v))
}

// WorkspaceDirLTE applies the LTE predicate on the "workspace_dir" field.
func WorkspaceDirLTE(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLTE(FieldWorkspaceDir, v))
}

// WorkspaceDirContains applies the Contains predicate on the "workspace_dir" field.
func WorkspaceDirContains(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldContains(FieldWorkspaceDir, v))
}

// WorkspaceDirHasPrefix applies the HasPrefix predicate on the "workspace_dir" field.
func WorkspaceDirHasPrefix(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldHasPrefix(FieldWorkspaceDir, v))
}

// WorkspaceDirHasSuffix applies the HasSuffix predicate on the "workspace_dir" field.
func WorkspaceDirHasSuffix(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldHasSuffix(FieldWorkspaceDir, v))
}

// WorkspaceDirIsNil applies the IsNil predicate on the "workspace_dir" field.
func WorkspaceDirIsNil() predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIsNull(FieldWorkspaceDir))
}

// WorkspaceDirNotNil applies the NotNil predicate on the "workspace_dir" field.
func WorkspaceDirNotNil() predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotNull(FieldWorkspaceDir))
}

// WorkspaceDirEqualFold applies the EqualFold predicate on the "workspace_dir" field.
func WorkspaceDirEqualFold(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEqualFold(FieldWorkspaceDir, v))
}

// WorkspaceDirContainsFold applies the ContainsFold predicate on the "workspace_dir" field.
func WorkspaceDirContainsFold(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldContainsFold(FieldWorkspaceDir, v))
}

// FinalVerdictEQ applies the EQ predicate on the "final_verdict" field.
func FinalVerdictEQ(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldFinalVerdict, v))
}

// FinalVerdictNEQ applies the NEQ predicate on the "final_verdict" field.
func FinalVerdictNEQ(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNEQ(FieldFinalVerdict, v))
}

// FinalVerdictIn applies the In predicate on the "final_verdict" field.
func FinalVerdictIn(vs ...string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIn(FieldFinalVerdict, vs...))
}

// FinalVerdictNotIn applies the NotIn predicate on the "final_verdict" field.
func FinalVerdictNotIn(vs ...string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotIn(FieldFinalVerdict, vs...))
}

// FinalVerdictGT applies the GT predicate on the "final_verdict" field.
func FinalVerdictGT(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGT(FieldFinalVerdict, v))
}

// FinalVerdictGTE applies the GTE predicate on the "final_verdict" field.
func FinalVerdictGTE(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGTE(FieldFinalVerdict, v))
}

// FinalVerdictLT applies the LT predicate on the "final_verdict" field.
func FinalVerdictLT(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLT(FieldFinalVerdict, v))
}

// FinalVerdictLTE applies the LTE predicate on the "final_verdict" field.
func FinalVerdictLTE(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLTE(FieldFinalVerdict, v))
}

// FinalVerdictContains applies the Contains predicate on the "final_verdict" field.
func FinalVerdictContains(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldContains(FieldFinalVerdict, v))
}

// FinalVerdictHasPrefix applies the HasPrefix predicate on the "final_verdict" field.
func FinalVerdictHasPrefix(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldHasPrefix(FieldFinalVerdict, v))
}

// FinalVerdictHasSuffix applies the HasSuffix predicate on the "final_verdict" field.
func FinalVerdictHasSuffix(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldHasSuffix(FieldFinalVerdict, v))
}

// FinalVerdictIsNil applies the IsNil predicate on the "final_verdict" field.
func FinalVerdictIsNil() predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIsNull(FieldFinalVerdict))
}

// FinalVerdictNotNil applies the NotNil predicate on the "final_verdict" field.
func FinalVerdictNotNil() predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotNull(FieldFinalVerdict))
}

// FinalVerdictEqualFold applies the EqualFold predicate on the "final_verdict" field.
func FinalVerdictEqualFold(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEqualFold(FieldFinalVerdict, v))
}

// FinalVerdictContainsFold applies the ContainsFold predicate on the "final_verdict" field.
func FinalVerdictContainsFold(v string) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldContainsFold(FieldFinalVerdict, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLTE(FieldUpdatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.AgentRun {
	return predicate.AgentRun(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.AgentRun {
	return predicate.AgentRun(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.AgentRun {
	return predicate.AgentRun(sql.FieldNotNull(FieldCompletedAt))
}

// HasSite applies the HasEdge predicate on the "site" edge.
func HasSite() predicate.AgentRun {
	return predicate.AgentRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SiteTable, SiteColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSiteWith applies the HasEdge predicate on the "site" edge with a given conditions (other predicates).
func HasSiteWith(preds ...predicate.Site) predicate.AgentRun {
	return predicate.AgentRun(func(s *sql.Selector) {
		step := newSiteStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentRun) predicate.AgentRun {
	return predicate.AgentRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentRun) predicate.AgentRun {
	return predicate.AgentRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentRun) predicate.AgentRun {
	return predicate.AgentRun(sql.NotPredicates(p))
}
