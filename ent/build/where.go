// Code generated by ent, DO NOT EDIT.

package build

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/metrics-lab/staticpress/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Build {
	return predicate.Build(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Build {
	return predicate.Build(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Build {
	return predicate.Build(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Build {
	return predicate.Build(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Build {
	return predicate.Build(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Build {
	return predicate.Build(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Build {
	return predicate.Build(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Build {
	return predicate.Build(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Build {
	return predicate.Build(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Build {
	return predicate.Build(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Build {
	return predicate.Build(sql.FieldContainsFold(FieldID, id))
}

// SiteID applies equality check predicate on the "site_id" field. It's identical to SiteIDEQ.
func SiteID(v string) predicate.Build {
	return predicate.Build(sql.FieldEQ(FieldSiteID, v))
}

// CurrentPhase applies equality check predicate on the "current_phase" field. It's identical to CurrentPhaseEQ.
func CurrentPhase(v string) predicate.Build {
	return predicate.Build(sql.FieldEQ(FieldCurrentPhase, v))
}

// CheckpointPhase applies equality check predicate on the "checkpoint_phase" field. It's identical to CheckpointPhaseEQ.
func CheckpointPhase(v string) predicate.Build {
	return predicate.Build(sql.FieldEQ(FieldCheckpointPhase, v))
}

// PagesTotal applies equality check predicate on the "pages_total" field. It's identical to PagesTotalEQ.
func PagesTotal(v int) predicate.Build {
	return predicate.Build(sql.FieldEQ(FieldPagesTotal, v))
}

// PagesProcessed applies equality check predicate on the "pages_processed" field. It's identical to PagesProcessedEQ.
func PagesProcessed(v int) predicate.Build {
	return predicate.Build(sql.FieldEQ(FieldPagesProcessed, v))
}

// IframesReplaced applies equality check predicate on the "iframes_replaced" field. It's identical to IframesReplacedEQ.
func IframesReplaced(v int) predicate.Build {
	return predicate.Build(sql.FieldEQ(FieldIframesReplaced, v))
}

// ScriptsRemoved applies equality check predicate on the "scripts_removed" field. It's identical to ScriptsRemovedEQ.
func ScriptsRemoved(v int) predicate.Build {
	return predicate.Build(sql.FieldEQ(FieldScriptsRemoved, v))
}

// ScoreBefore applies equality check predicate on the "score_before" field. It's identical to ScoreBeforeEQ.
func ScoreBefore(v float64) predicate.Build {
	return predicate.Build(sql.FieldEQ(FieldScoreBefore, v))
}

// ScoreAfter applies equality check predicate on the "score_after" field. It's identical to ScoreAfterEQ.
func ScoreAfter(v float64) predicate.Build {
	return predicate.Build(sql.FieldEQ(FieldScoreAfter, v))
}

// ErrorPhase applies equality check predicate on the "error_phase" field. It's identical to ErrorPhaseEQ.
func ErrorPhase(v string) predicate.Build {
	return predicate.Build(sql.FieldEQ(FieldErrorPhase, v))
}

// ErrorStep applies equality check predicate on the "error_step" field. It's identical to ErrorStepEQ.
func ErrorStep(v string) predicate.Build {
	return predicate.Build(sql.FieldEQ(FieldErrorStep, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Build {
	return predicate.Build(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorRetryable applies equality check predicate on the "error_retryable" field. It's identical to ErrorRetryableEQ.
func ErrorRetryable(v bool) predicate.Build {
	return predicate.Build(sql.FieldEQ(FieldErrorRetryable, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.Build {
	return predicate.Build(sql.FieldEQ(FieldRetryCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Build {
	return predicate.Build(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Build {
	return predicate.Build(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Build {
	return predicate.Build(sql.FieldEQ(FieldCompletedAt, v))
}

// SiteIDEQ applies the EQ predicate on the "site_id" field.
func SiteIDEQ(v string) predicate.Build {
	return predicate.Build(sql.FieldEQ(FieldSiteID, v))
}

// SiteIDNEQ applies the NEQ predicate on the "site_id" field.
func SiteIDNEQ(v string) predicate.Build {
	return predicate.Build(sql.FieldNEQ(FieldSiteID, v))
}

// SiteIDIn applies the In predicate on the "site_id" field.
func SiteIDIn(vs ...string) predicate.Build {
	return predicate.Build(sql.FieldIn(FieldSiteID, vs...))
}

// SiteIDNotIn applies the NotIn predicate on the "site_id" field.
func SiteIDNotIn(vs ...string) predicate.Build {
	return predicate.Build(sql.FieldNotIn(FieldSiteID, vs...))
}

// SiteIDGT applies the GT predicate on the "site_id" field.
func SiteIDGT(v string) predicate.Build {
	return predicate.Build(sql.FieldGT(FieldSiteID, v))
}

// SiteIDGTE applies the GTE predicate on the "site_id" field.
func SiteIDGTE(v string) predicate.Build {
	return predicate.Build(sql.FieldGTE(FieldSiteID, v))
}

// SiteIDLT applies the LT predicate on the "site_id" field.
func SiteIDLT(v string) predicate.Build {
	return predicate.Build(sql.FieldLT(FieldSiteID, v))
}

// SiteIDLTE applies the LTE predicate on the "site_id" field.
func SiteIDLTE(v string) predicate.Build {
	return predicate.Build(sql.FieldLTE(FieldSiteID, v))
}

// SiteIDContains applies the Contains predicate on the "site_id" field.
func SiteIDContains(v string) predicate.Build {
	return predicate.Build(sql.FieldContains(FieldSiteID, v))
}

// SiteIDHasPrefix applies the HasPrefix predicate on the "site_id" field.
func SiteIDHasPrefix(v string) predicate.Build {
	return predicate.Build(sql.FieldHasPrefix(FieldSiteID, v))
}

// SiteIDHasSuffix applies the HasSuffix predicate on the "site_id" field.
func SiteIDHasSuffix(v string) predicate.Build {
	return predicate.Build(sql.FieldHasSuffix(FieldSiteID, v))
}

// SiteIDEqualFold applies the EqualFold predicate on the "site_id" field.
func SiteIDEqualFold(v string) predicate.Build {
	return predicate.Build(sql.FieldEqualFold(FieldSiteID, v))
}

// SiteIDContainsFold applies the ContainsFold predicate on the "site_id" field.
func SiteIDContainsFold(v string) predicate.Build {
	return predicate.Build(sql.FieldContainsFold(FieldSiteID, v))
}

// ScopeEQ applies the EQ predicate on the "scope" field.
func ScopeEQ(v Scope) predicate.Build {
	return predicate.Build(sql.FieldEQ(FieldScope, v))
}

// ScopeNEQ applies the NEQ predicate on the "scope" field.
func ScopeNEQ(v Scope) predicate.Build {
	return predicate.Build(sql.FieldNEQ(FieldScope, v))
}

// ScopeIn applies the In predicate on the "scope" field.
func ScopeIn(vs ...Scope) predicate.Build {
	return predicate.Build(sql.FieldIn(FieldScope, vs...))
}

// ScopeNotIn applies the NotIn predicate on the "scope" field.
func ScopeNotIn(vs ...Scope) predicate.Build {
	return predicate.Build(sql.FieldNotIn(FieldScope, vs...))
}

// TriggeredByEQ applies the EQ predicate on the "triggered_by" field.
func TriggeredByEQ(v TriggeredBy) predicate.Build {
	return predicate.Build(sql.FieldEQ(FieldTriggeredBy, v))
}

// TriggeredByNEQ applies the NEQ predicate on the "triggered_by" field.
func TriggeredByNEQ(v TriggeredBy) predicate.Build {
	return predicate.Build(sql.FieldNEQ(FieldTriggeredBy, v))
}

// TriggeredByIn applies the In predicate on the "triggered_by" field.
func TriggeredByIn(vs ...TriggeredBy) predicate.Build {
	return predicate.Build(sql.FieldIn(FieldTriggeredBy, vs...))
}

// TriggeredByNotIn applies the NotIn predicate on the "triggered_by" field.
func TriggeredByNotIn(vs ...TriggeredBy) predicate.Build {
	return predicate.Build(sql.FieldNotIn(FieldTriggeredBy, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Build {
	return predicate.Build(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Build {
	return predicate.Build(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Build {
	return predicate.Build(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Build {
	return predicate.Build(sql.FieldNotIn(FieldStatus, vs...))
}

// CurrentPhaseEQ applies the EQ predicate on the "current_phase" field.
func CurrentPhaseEQ(v string) predicate.Build {
	return predicate.Build(sql.FieldEQ(FieldCurrentPhase, v))
}

// CurrentPhaseNEQ applies the NEQ predicate on the "current_phase" field.
func CurrentPhaseNEQ(v string) predicate.Build {
	return predicate.Build(sql.FieldNEQ(FieldCurrentPhase, v))
}

// CurrentPhaseIn applies the In predicate on the "current_phase" field.
func CurrentPhaseIn(vs ...string) predicate.Build {
	return predicate.Build(sql.FieldIn(FieldCurrentPhase, vs...))
}

// CurrentPhaseNotIn applies the NotIn predicate on the "current_phase" field.
func CurrentPhaseNotIn(vs ...string) predicate.Build {
	return predicate.Build(sql.FieldNotIn(FieldCurrentPhase, vs...))
}

// CurrentPhaseGT applies the GT predicate on the "current_phase" field.
func CurrentPhaseGT(v string) predicate.Build {
	return predicate.Build(sql.FieldGT(FieldCurrentPhase, v))
}

// CurrentPhaseGTE applies the GTE predicate on the "current_phase" field.
func CurrentPhaseGTE(v string) predicate.Build {
	return predicate.Build(sql.FieldGTE(FieldCurrentPhase, v))
}

// CurrentPhaseLT applies the LT predicate on the "current_phase" field.
func CurrentPhaseLT(v string) predicate.Build {
	return predicate.Build(sql.FieldLT(FieldCurrentPhase, v))
}

// CurrentPhaseLTE applies the LTE predicate on the "current_phase" field.
func CurrentPhaseLTE(v string) predicate.Build {
	return predicate.Build(sql.FieldLTE(FieldCurrentPhase, v))
}

// CurrentPhaseContains applies the Contains predicate on the "current_phase" field.
func CurrentPhaseContains(v string) predicate.Build {
	return predicate.Build(sql.FieldContains(FieldCurrentPhase, v))
}

// CurrentPhaseHasPrefix applies the HasPrefix predicate on the "current_phase" field.
func CurrentPhaseHasPrefix(v string) predicate.Build {
	return predicate.Build(sql.FieldHasPrefix(FieldCurrentPhase, v))
}

// CurrentPhaseHasSuffix applies the HasSuffix predicate on the "current_phase" field.
func CurrentPhaseHasSuffix(v string) predicate.Build {
	return predicate.Build(sql.FieldHasSuffix(FieldCurrentPhase, v))
}

// CurrentPhaseIsNil applies the IsNil predicate on the "current_phase" field.
func CurrentPhaseIsNil() predicate.Build {
	return predicate.Build(sql.FieldIsNull(FieldCurrentPhase))
}

// CurrentPhaseNotNil applies the NotNil predicate on the "current_phase" field.
func CurrentPhaseNotNil() predicate.Build {
	return predicate.Build(sql.FieldNotNull(FieldCurrentPhase))
}

// CurrentPhaseEqualFold applies the EqualFold predicate on the "current_phase" field.
func CurrentPhaseEqualFold(v string) predicate.Build {
	return predicate.Build(sql.FieldEqualFold(FieldCurrentPhase, v))
}

// CurrentPhaseContainsFold applies the ContainsFold predicate on the "current_phase" field.
func CurrentPhaseContainsFold(v string) predicate.Build {
	return predicate.Build(sql.FieldContainsFold(FieldCurrentPhase, v))
}

// CheckpointPhaseEQ applies the EQ predicate on the "checkpoint_phase" field.
func CheckpointPhaseEQ(v string) predicate.Build {
	return predicate.Build(sql.FieldEQ(FieldCheckpointPhase, v))
}

// CheckpointPhaseNEQ applies the NEQ predicate on the "checkpoint_phase" field.
func CheckpointPhaseNEQ(v string) predicate.Build {
	return predicate.Build(sql.FieldNEQ(FieldCheckpointPhase, v))
}

// CheckpointPhaseIn applies the In predicate on the "checkpoint_phase" field.
func CheckpointPhaseIn(vs ...string) predicate.Build {
	return predicate.Build(sql.FieldIn(FieldCheckpointPhase, vs...))
}

// CheckpointPhaseNotIn applies the NotIn predicate on the "checkpoint_phase" field.
func CheckpointPhaseNotIn(vs ...string) predicate.Build {
	return predicate.Build(sql.FieldNotIn(FieldCheckpointPhase, vs...))
}

// CheckpointPhaseGT applies the GT predicate on the "checkpoint_phase" field.
func CheckpointPhaseGT(v string) predicate.Build {
	return predicate.Build(sql.FieldGT(FieldCheckpointPhase, v))
}

// CheckpointPhaseGTE applies the GTE predicate on the "checkpoint_phase" field.
func CheckpointPhaseGTE(v string) predicate.Build {
	return predicate.Build(sql.FieldGTE(FieldCheckpointPhase, v))
}

// CheckpointPhaseLT applies the LT predicate on the "checkpoint_phase" field.
func CheckpointPhaseLT(v string) predicate.Build {
	return predicate.Build(sql.FieldLT(FieldCheckpointPhase, v))
}

// CheckpointPhaseLTE applies the LTE predicate on the "checkpoint_phase" field.
func CheckpointPhaseLTE(v string) predicate.Build {
	return predicate.Build(sql.FieldLTE(FieldCheckpointPhase, v))
}

// CheckpointPhaseContains applies the Contains predicate on the "checkpoint_phase" field.
func CheckpointPhaseContains(v string) predicate.Build {
	return predicate.Build(sql.FieldContains(FieldCheckpointPhase, v))
}

// CheckpointPhaseHasPrefix applies the HasPrefix predicate on the "checkpoint_phase" field.
func CheckpointPhaseHasPrefix(v string) predicate.Build {
	return predicate.Build(sql.FieldHasPrefix(FieldCheckpointPhase, v))
}

// CheckpointPhaseHasSuffix applies the HasSuffix predicate on the "checkpoint_phase" field.
func CheckpointPhaseHasSuffix(v string) predicate.Build {
	return predicate.Build(sql.FieldHasSuffix(FieldCheckpointPhase, v))
}

// CheckpointPhaseIsNil applies the IsNil predicate on the "checkpoint_phase" field.
func CheckpointPhaseIsNil() predicate.Build {
	return predicate.Build(sql.FieldIsNull(FieldCheckpointPhase))
}

// CheckpointPhaseNotNil applies the NotNil predicate on the "checkpoint_phase" field.
func CheckpointPhaseNotNil() predicate.Build {
	return predicate.Build(sql.FieldNotNull(FieldCheckpointPhase))
}

// CheckpointPhaseEqualFold applies the EqualFold predicate on the "checkpoint_phase" field.
func CheckpointPhaseEqualFold(v string) predicate.Build {
	return predicate.Build(sql.FieldEqualFold(FieldCheckpointPhase, v))
}

// CheckpointPhaseContainsFold applies the ContainsFold predicate on the "checkpoint_phase" field.
func CheckpointPhaseContainsFold(v string) predicate.Build {
	return predicate.Build(sql.FieldContainsFold(FieldCheckpointPhase, v))
}

// PagesTotalEQ applies the EQ predicate on the "pages_total" field.
func PagesTotalEQ(v int) predicate.Build {
	return predicate.Build(sql.FieldEQ(FieldPagesTotal, v))
}

// PagesTotalNEQ applies the NEQ predicate on the "pages_total" field.
func PagesTotalNEQ(v int) predicate.Build {
	return predicate.Build(sql.FieldNEQ(FieldPagesTotal, v))
}

// PagesTotalIn applies the In predicate on the "pages_total" field.
func PagesTotalIn(vs ...int) predicate.Build {
	return predicate.Build(sql.FieldIn(FieldPagesTotal, vs...))
}

// PagesTotalNotIn applies the NotIn predicate on the "pages_total" field.
func PagesTotalNotIn(vs ...int) predicate.Build {
	return predicate.Build(sql.FieldNotIn(FieldPagesTotal, vs...))
}

// PagesTotalGT applies the GT predicate on the "pages_total" field.
func PagesTotalGT(v int) predicate.Build {
	return predicate.Build(sql.FieldGT(FieldPagesTotal, v))
}

// PagesTotalGTE applies the GTE predicate on the "pages_total" field.
func PagesTotalGTE(v int) predicate.Build {
	return predicate.Build(sql.FieldGTE(FieldPagesTotal, v))
}

// PagesTotalLT applies the LT predicate on the "pages_total" field.
func PagesTotalLT(v int) predicate.Build {
	return predicate.Build(sql.FieldLT(FieldPagesTotal, v))
}

// PagesTotalLTE applies the LTE predicate on the "pages_total" field.
func PagesTotalLTE(v int) predicate.Build {
	return predicate.Build(sql.FieldLTE(FieldPagesTotal, v))
}

// PagesProcessedEQ applies the EQ predicate on the "pages_processed" field.
func PagesProcessedEQ(v int) predicate.Build {
	return predicate.Build(sql.FieldEQ(FieldPagesProcessed, v))
}

// PagesProcessedNEQ applies the NEQ predicate on the "pages_processed" field.
func PagesProcessedNEQ(v int) predicate.Build {
	return predicate.Build(sql.FieldNEQ(FieldPagesProcessed, v))
}

// PagesProcessedIn applies the In predicate on the "pages_processed" field.
func PagesProcessedIn(vs ...int) predicate.Build {
	return predicate.Build(sql.FieldIn(FieldPagesProcessed, vs...))
}

// PagesProcessedNotIn applies the NotIn predicate on the "pages_processed" field.
func PagesProcessedNotIn(vs ...int) predicate.Build {
	return predicate.Build(sql.FieldNotIn(FieldPagesProcessed, vs...))
}

// PagesProcessedGT applies the GT predicate on the "pages_processed" field.
func PagesProcessedGT(v int) predicate.Build {
	return predicate.Build(sql.FieldGT(FieldPagesProcessed, v))
}

// PagesProcessedGTE applies the GTE predicate on the "pages_processed" field.
func PagesProcessedGTE(v int) predicate.Build {
	return predicate.Build(sql.FieldGTE(FieldPagesProcessed, v))
}

// PagesProcessedLT applies the LT predicate on the "pages_processed" field.
func PagesProcessedLT(v int) predicate.Build {
	return predicate.Build(sql.FieldLT(FieldPagesProcessed, v))
}

// PagesProcessedLTE applies the LTE predicate on the "pages_processed" field.
func PagesProcessedLTE(v int) predicate.Build {
	return predicate.Build(sql.FieldLTE(FieldPagesProcessed, v))
}

// OriginalBytesIsNil applies the IsNil predicate on the "original_bytes" field.
func OriginalBytesIsNil() predicate.Build {
	return predicate.Build(sql.FieldIsNull(FieldOriginalBytes))
}

// OriginalBytesNotNil applies the NotNil predicate on the "original_bytes" field.
func OriginalBytesNotNil() predicate.Build {
	return predicate.Build(sql.FieldNotNull(FieldOriginalBytes))
}

// OptimizedBytesIsNil applies the IsNil predicate on the "optimized_bytes" field.
func OptimizedBytesIsNil() predicate.Build {
	return predicate.Build(sql.FieldIsNull(FieldOptimizedBytes))
}

// OptimizedBytesNotNil applies the NotNil predicate on the "optimized_bytes" field.
func OptimizedBytesNotNil() predicate.Build {
	return predicate.Build(sql.FieldNotNull(FieldOptimizedBytes))
}

// IframesReplacedEQ applies the EQ predicate on the "iframes_replaced" field.
func IframesReplacedEQ(v int) predicate.Build {
	return predicate.Build(sql.FieldEQ(FieldIframesReplaced, v))
}

// IframesReplacedNEQ applies the NEQ predicate on the "iframes_replaced" field.
func IframesReplacedNEQ(v int) predicate.Build {
	return predicate.Build(sql.FieldNEQ(FieldIframesReplaced, v))
}

// IframesReplacedIn applies the In predicate on the "iframes_replaced" field.
func IframesReplacedIn(vs ...int) predicate.Build {
	return predicate.Build(sql.FieldIn(FieldIframesReplaced, vs...))
}

// IframesReplacedNotIn applies the NotIn predicate on the "iframes_replaced" field.
func IframesReplacedNotIn(vs ...int) predicate.Build {
	return predicate.Build(sql.FieldNotIn(FieldIframesReplaced, vs...))
}

// IframesReplacedGT applies the GT predicate on the "iframes_replaced" field.
func IframesReplacedGT(v int) predicate.Build {
	return predicate.Build(sql.FieldGT(FieldIframesReplaced, v))
}

// IframesReplacedGTE applies the GTE predicate on the "iframes_replaced" field.
func IframesReplacedGTE(v int) predicate.Build {
	return predicate.Build(sql.FieldGTE(FieldIframesReplaced, v))
}

// IframesReplacedLT applies the LT predicate on the "iframes_replaced" field.
func IframesReplacedLT(v int) predicate.Build {
	return predicate.Build(sql.FieldLT(FieldIframesReplaced, v))
}

// IframesReplacedLTE applies the LTE predicate on the "iframes_replaced" field.
func IframesReplacedLTE(v int) predicate.Build {
	return predicate.Build(sql.FieldLTE(FieldIframesReplaced, v))
}

// ScriptsRemovedEQ applies the EQ predicate on the "scripts_removed" field.
func ScriptsRemovedEQ(v int) predicate.Build {
	return predicate.Build(sql.FieldEQ(FieldScriptsRemoved, v))
}

// ScriptsRemovedNEQ applies the NEQ predicate on the "scripts_removed" field.
func ScriptsRemovedNEQ(v int) predicate.Build {
	return predicate.Build(sql.FieldNEQ(FieldScriptsRemoved, v))
}

// ScriptsRemovedIn applies the In predicate on the "scripts_removed" field.
func ScriptsRemovedIn(vs ...int) predicate.Build {
	return predicate.Build(sql.FieldIn(FieldScriptsRemoved, vs...))
}

// ScriptsRemovedNotIn applies the NotIn predicate on the "scripts_removed" field.
func ScriptsRemovedNotIn(vs ...int) predicate.Build {
	return predicate.Build(sql.FieldNotIn(FieldScriptsRemoved, vs...))
}

// ScriptsRemovedGT applies the GT predicate on the "scripts_removed" field.
func ScriptsRemovedGT(v int) predicate.Build {
	return predicate.Build(sql.FieldGT(FieldScriptsRemoved, v))
}

// ScriptsRemovedGTE applies the GTE predicate on the "scripts_removed" field.
func ScriptsRemovedGTE(v int) predicate.Build {
	return predicate.Build(sql.FieldGTE(FieldScriptsRemoved, v))
}

// ScriptsRemovedLT applies the LT predicate on the "scripts_removed" field.
func ScriptsRemovedLT(v int) predicate.Build {
	return predicate.Build(sql.FieldLT(FieldScriptsRemoved, v))
}

// ScriptsRemovedLTE applies the LTE predicate on the "scripts_removed" field.
func ScriptsRemovedLTE(v int) predicate.Build {
	return predicate.Build(sql.FieldLTE(FieldScriptsRemoved, v))
}

// ScoreBeforeEQ applies the EQ predicate on the "score_before" field.
func ScoreBeforeEQ(v float64) predicate.Build {
	return predicate.Build(sql.FieldEQ(FieldScoreBefore, v))
}

// ScoreBeforeNEQ applies the NEQ predicate on the "score_before" field.
func ScoreBeforeNEQ(v float64) predicate.Build {
	return predicate.Build(sql.FieldNEQ(FieldScoreBefore, v))
}

// ScoreBeforeIn applies the In predicate on the "score_before" field.
func ScoreBeforeIn(vs ...float64) predicate.Build {
	return predicate.Build(sql.FieldIn(FieldScoreBefore, vs...))
}

// ScoreBeforeNotIn applies the NotIn predicate on the "score_before" field.
func ScoreBeforeNotIn(vs ...float64) predicate.Build {
	return predicate.Build(sql.FieldNotIn(FieldScoreBefore, vs...))
}

// ScoreBeforeGT applies the GT predicate on the "score_before" field.
func ScoreBeforeGT(v float64) predicate.Build {
	return predicate.Build(sql.FieldGT(FieldScoreBefore, v))
}

// ScoreBeforeGTE applies the GTE predicate on the "score_before" field.
func ScoreBeforeGTE(v float64) predicate.Build {
	return predicate.Build(sql.FieldGTE(FieldScoreBefore, v))
}

// ScoreBeforeLT applies the LT predicate on the "score_before" field.
func ScoreBeforeLT(v float64) predicate.Build {
	return predicate.Build(sql.FieldLT(FieldScoreBefore, v))
}

// ScoreBeforeLTE applies the LTE predicate on the "score_before" field.
func ScoreBeforeLTE(v float64) predicate.Build {
	return predicate.Build(sql.FieldLTE(FieldScoreBefore, v))
}

// ScoreBeforeIsNil applies the IsNil predicate on the "score_before" field.
func ScoreBeforeIsNil() predicate.Build {
	return predicate.Build(sql.FieldIsNull(FieldScoreBefore))
}

// ScoreBeforeNotNil applies the NotNil predicate on the "score_before" field.
func ScoreBeforeNotNil() predicate.Build {
	return predicate.Build(sql.FieldNotNull(FieldScoreBefore))
}

// ScoreAfterEQ applies the EQ predicate on the "score_after" field.
func ScoreAfterEQ(v float64) predicate.Build {
	return predicate.Build(sql.FieldEQ(FieldScoreAfter, v))
}

// ScoreAfterNEQ applies the NEQ predicate on the "score_after" field.
func ScoreAfterNEQ(v float64) predicate.Build {
	return predicate.Build(sql.FieldNEQ(FieldScoreAfter, v))
}

// ScoreAfterIn applies the In predicate on the "score_after" field.
func ScoreAfterIn(vs ...float64) predicate.Build {
	return predicate.Build(sql.FieldIn(FieldScoreAfter, vs...))
}

// ScoreAfterNotIn applies the NotIn predicate on the "score_after" field.
func ScoreAfterNotIn(vs ...float64) predicate.Build {
	return predicate.Build(sql.FieldNotIn(FieldScoreAfter, vs...))
}

// ScoreAfterGT applies the GT predicate on the "score_after" field.
func ScoreAfterGT(v float64) predicate.Build {
	return predicate.Build(sql.FieldGT(FieldScoreAfter, v))
}

// ScoreAfterGTE applies the GTE predicate on the "score_after" field.
func ScoreAfterGTE(v float64) predicate.Build {
	return predicate.Build(sql.FieldGTE(FieldScoreAfter, v))
}

// ScoreAfterLT applies the LT predicate on the "score_after" field.
func ScoreAfterLT(v float64) predicate.Build {
	return predicate.Build(sql.FieldLT(FieldScoreAfter, v))
}

// ScoreAfterLTE applies the LTE predicate on the "score_after" field.
func ScoreAfterLTE(v float64) predicate.Build {
	return predicate.Build(sql.FieldLTE(FieldScoreAfter, v))
}

// ScoreAfterIsNil applies the IsNil predicate on the "score_after" field.
func ScoreAfterIsNil() predicate.Build {
	return predicate.Build(sql.FieldIsNull(FieldScoreAfter))
}

// ScoreAfterNotNil applies the NotNil predicate on the "score_after" field.
func ScoreAfterNotNil() predicate.Build {
	return predicate.Build(sql.FieldNotNull(FieldScoreAfter))
}

// ErrorPhaseEQ applies the EQ predicate on the "error_phase" field.
func ErrorPhaseEQ(v string) predicate.Build {
	return predicate.Build(sql.FieldEQ(FieldErrorPhase, v))
}

// ErrorPhaseNEQ applies the NEQ predicate on the "error_phase" field.
func ErrorPhaseNEQ(v string) predicate.Build {
	return predicate.Build(sql.FieldNEQ(FieldErrorPhase, v))
}

// ErrorPhaseIn applies the In predicate on the "error_phase" field.
func ErrorPhaseIn(vs ...string) predicate.Build {
	return predicate.Build(sql.FieldIn(FieldErrorPhase, vs...))
}

// ErrorPhaseNotIn applies the NotIn predicate on the "error_phase" field.
func ErrorPhaseNotIn(vs ...string) predicate.Build {
	return predicate.Build(sql.FieldNotIn(FieldErrorPhase, vs...))
}

// ErrorPhaseGT applies the GT predicate on the "error_phase" field.
func ErrorPhaseGT(v string) predicate.Build {
	return predicate.Build(sql.FieldGT(FieldErrorPhase, v))
}

// ErrorPhaseGTE applies the GTE predicate on the "error_phase" field.
func ErrorPhaseGTE(v string) predicate.Build {
	return predicate.Build(sql.FieldGTE(FieldErrorPhase, v))
}

// ErrorPhaseLT applies the LT predicate on the "error_phase" field.
func ErrorPhaseLT(v string) predicate.Build {
	return predicate.Build(sql.FieldLT(FieldErrorPhase, v))
}

// ErrorPhaseLTE applies the LTE predicate on the "error_phase" field.
func ErrorPhaseLTE(v string) predicate.Build {
	return predicate.Build(sql.FieldLTE(FieldErrorPhase, v))
}

// ErrorPhaseContains applies the Contains predicate on the "error_phase" field.
func ErrorPhaseContains(v string) predicate.Build {
	return predicate.Build(sql.FieldContains(FieldErrorPhase, v))
}

// ErrorPhaseHasPrefix applies the HasPrefix predicate on the "error_phase" field.
func ErrorPhaseHasPrefix(v string) predicate.Build {
	return predicate.Build(sql.FieldHasPrefix(FieldErrorPhase, v))
}

// ErrorPhaseHasSuffix applies the HasSuffix predicate on the "error_phase" field.
func ErrorPhaseHasSuffix(v string) predicate.Build {
	return predicate.Build(sql.FieldHasSuffix(FieldErrorPhase, v))
}

// ErrorPhaseIsNil applies the IsNil predicate on the "error_phase" field.
func ErrorPhaseIsNil() predicate.Build {
	return predicate.Build(sql.FieldIsNull(FieldErrorPhase))
}

// ErrorPhaseNotNil applies the NotNil predicate on the "error_phase" field.
func ErrorPhaseNotNil() predicate.Build {
	return predicate.Build(sql.FieldNotNull(FieldErrorPhase))
}

// ErrorPhaseEqualFold applies the EqualFold predicate on the "error_phase" field.
func ErrorPhaseEqualFold(v string) predicate.Build {
	return predicate.Build(sql.FieldEqualFold(FieldErrorPhase, v))
}

// ErrorPhaseContainsFold applies the ContainsFold predicate on the "error_phase" field.
func ErrorPhaseContainsFold(v string) predicate.Build {
	return predicate.Build(sql.FieldContainsFold(FieldErrorPhase, v))
}

// ErrorStepEQ applies the EQ predicate on the "error_step" field.
func ErrorStepEQ(v string) predicate.Build {
	return predicate.Build(sql.FieldEQ(FieldErrorStep, v))
}

// ErrorStepNEQ applies the NEQ predicate on the "error_step" field.
func ErrorStepNEQ(v string) predicate.Build {
	return predicate.Build(sql.FieldNEQ(FieldErrorStep, v))
}

// ErrorStepIn applies the In predicate on the "error_step" field.
func ErrorStepIn(vs ...string) predicate.Build {
	return predicate.Build(sql.FieldIn(FieldErrorStep, vs...))
}

// ErrorStepNotIn applies the NotIn predicate on the "error_step" field.
func ErrorStepNotIn(vs ...string) predicate.Build {
	return predicate.Build(sql.FieldNotIn(FieldErrorStep, vs...))
}

// ErrorStepGT applies the GT predicate on the "error_step" field.
func ErrorStepGT(v string) predicate.Build {
	return predicate.Build(sql.FieldGT(FieldErrorStep, v))
}

// ErrorStepGTE applies the GTE predicate on the "error_step" field.
func ErrorStepGTE(v string) predicate.Build {
	return predicate.Build(sql.FieldGTE(FieldErrorStep, v))
}

// ErrorStepLT applies the LT predicate on the "error_step" field.
func ErrorStepLT(v string) predicate.Build {
	return predicate.Build(sql.FieldLT(FieldErrorStep, v))
}

// ErrorStepLTE applies the LTE predicate on the "error_step" field.
func ErrorStepLTE(v string) predicate.Build {
	return predicate.Build(sql.FieldLTE(FieldErrorStep, v))
}

// ErrorStepContains applies the Contains predicate on the "error_step" field.
func ErrorStepContains(v string) predicate.Build {
	return predicate.Build(sql.FieldContains(FieldErrorStep, v))
}

// ErrorStepHasPrefix applies the HasPrefix predicate on the "error_step" field.
func ErrorStepHasPrefix(v string) predicate.Build {
	return predicate.Build(sql.FieldHasPrefix(FieldErrorStep, v))
}

// ErrorStepHasSuffix applies the HasSuffix predicate on the "error_step" field.
func ErrorStepHasSuffix(v string) predicate.Build {
	return predicate.Build(sql.FieldHasSuffix(FieldErrorStep, v))
}

// ErrorStepIsNil applies the IsNil predicate on the "error_step" field.
func ErrorStepIsNil() predicate.Build {
	return predicate.Build(sql.FieldIsNull(FieldErrorStep))
}

// ErrorStepNotNil applies the NotNil predicate on the "error_step" field.
func ErrorStepNotNil() predicate.Build {
	return predicate.Build(sql.FieldNotNull(FieldErrorStep))
}

// ErrorStepEqualFold applies the EqualFold predicate on the "error_step" field.
func ErrorStepEqualFold(v string) predicate.Build {
	return predicate.Build(sql.FieldEqualFold(FieldErrorStep, v))
}

// ErrorStepContainsFold applies the ContainsFold predicate on the "error_step" field.
func ErrorStepContainsFold(v string) predicate.Build {
	return predicate.Build(sql.FieldContainsFold(FieldErrorStep, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Build {
	return predicate.Build(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Build {
	return predicate.Build(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Build {
	return predicate.Build(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Build {
	return predicate.Build(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Build {
	return predicate.Build(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Build {
	return predicate.Build(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Build {
	return predicate.Build(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Build {
	return predicate.Build(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Build {
	return predicate.Build(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Build {
	return predicate.Build(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Build {
	return predicate.Build(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Build {
	return predicate.Build(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Build {
	return predicate.Build(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Build {
	return predicate.Build(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Build {
	return predicate.Build(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ErrorRetryableEQ applies the EQ predicate on the "error_retryable" field.
func ErrorRetryableEQ(v bool) predicate.Build {
	return predicate.Build(sql.FieldEQ(FieldErrorRetryable, v))
}

// ErrorRetryableNEQ applies the NEQ predicate on the "error_retryable" field.
func ErrorRetryableNEQ(v bool) predicate.Build {
	return predicate.Build(sql.FieldNEQ(FieldErrorRetryable, v))
}

// ResolvedSettingsIsNil applies the IsNil predicate on the "resolved_settings" field.
func ResolvedSettingsIsNil() predicate.Build {
	return predicate.Build(sql.FieldIsNull(FieldResolvedSettings))
}

// ResolvedSettingsNotNil applies the NotNil predicate on the "resolved_settings" field.
func ResolvedSettingsNotNil() predicate.Build {
	return predicate.Build(sql.FieldNotNull(FieldResolvedSettings))
}

// LogIsNil applies the IsNil predicate on the "log" field.
func LogIsNil() predicate.Build {
	return predicate.Build(sql.FieldIsNull(FieldLog))
}

// LogNotNil applies the NotNil predicate on the "log" field.
func LogNotNil() predicate.Build {
	return predicate.Build(sql.FieldNotNull(FieldLog))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.Build {
	return predicate.Build(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.Build {
	return predicate.Build(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.Build {
	return predicate.Build(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.Build {
	return predicate.Build(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.Build {
	return predicate.Build(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.Build {
	return predicate.Build(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.Build {
	return predicate.Build(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.Build {
	return predicate.Build(sql.FieldLTE(FieldRetryCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Build {
	return predicate.Build(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Build {
	return predicate.Build(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Build {
	return predicate.Build(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Build {
	return predicate.Build(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Build {
	return predicate.Build(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Build {
	return predicate.Build(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Build {
	return predicate.Build(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Build {
	return predicate.Build(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Build {
	return predicate.Build(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Build {
	return predicate.Build(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Build {
	return predicate.Build(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Build {
	return predicate.Build(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Build {
	return predicate.Build(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Build {
	return predicate.Build(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Build {
	return predicate.Build(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Build {
	return predicate.Build(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Build {
	return predicate.Build(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Build {
	return predicate.Build(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Build {
	return predicate.Build(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Build {
	return predicate.Build(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Build {
	return predicate.Build(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Build {
	return predicate.Build(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Build {
	return predicate.Build(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Build {
	return predicate.Build(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Build {
	return predicate.Build(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Build {
	return predicate.Build(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Build {
	return predicate.Build(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Build {
	return predicate.Build(sql.FieldNotNull(FieldCompletedAt))
}

// HasSite applies the HasEdge predicate on the "site" edge.
func HasSite() predicate.Build {
	return predicate.Build(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SiteTable, SiteColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSiteWith applies the HasEdge predicate on the "site" edge with a given conditions (other predicates).
func HasSiteWith(preds ...predicate.Site) predicate.Build {
	return predicate.Build(func(s *sql.Selector) {
		step := newSiteStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Build) predicate.Build {
	return predicate.Build(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Build) predicate.Build {
	return predicate.Build(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Build) predicate.Build {
	return predicate.Build(sql.NotPredicates(p))
}
