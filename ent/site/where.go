// Code generated by ent, DO NOT EDIT.

package site

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/metrics-lab/staticpress/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Site {
	return predicate.Site(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Site {
	return predicate.Site(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Site {
	return predicate.Site(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Site {
	return predicate.Site(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Site {
	return predicate.Site(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Site {
	return predicate.Site(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Site {
	return predicate.Site(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Site {
	return predicate.Site(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Site {
	return predicate.Site(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Site {
	return predicate.Site(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Site {
	return predicate.Site(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Site {
	return predicate.Site(sql.FieldEQ(FieldName, v))
}

// SourceURL applies equality check predicate on the "source_url" field. It's identical to SourceURLEQ.
func SourceURL(v string) predicate.Site {
	return predicate.Site(sql.FieldEQ(FieldSourceURL, v))
}

// LastBuildID applies equality check predicate on the "last_build_id" field. It's identical to LastBuildIDEQ.
func LastBuildID(v string) predicate.Site {
	return predicate.Site(sql.FieldEQ(FieldLastBuildID, v))
}

// EdgeURL applies equality check predicate on the "edge_url" field. It's identical to EdgeURLEQ.
func EdgeURL(v string) predicate.Site {
	return predicate.Site(sql.FieldEQ(FieldEdgeURL, v))
}

// EdgeProject applies equality check predicate on the "edge_project" field. It's identical to EdgeProjectEQ.
func EdgeProject(v string) predicate.Site {
	return predicate.Site(sql.FieldEQ(FieldEdgeProject, v))
}

// PageCount applies equality check predicate on the "page_count" field. It's identical to PageCountEQ.
func PageCount(v int) predicate.Site {
	return predicate.Site(sql.FieldEQ(FieldPageCount, v))
}

// TotalBytes applies equality check predicate on the "total_bytes" field. It's identical to TotalBytesEQ.
func TotalBytes(v int64) predicate.Site {
	return predicate.Site(sql.FieldEQ(FieldTotalBytes, v))
}

// WebhookSecret applies equality check predicate on the "webhook_secret" field. It's identical to WebhookSecretEQ.
func WebhookSecret(v string) predicate.Site {
	return predicate.Site(sql.FieldEQ(FieldWebhookSecret, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Site {
	return predicate.Site(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Site {
	return predicate.Site(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Site {
	return predicate.Site(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Site {
	return predicate.Site(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Site {
	return predicate.Site(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Site {
	return predicate.Site(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Site {
	return predicate.Site(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Site {
	return predicate.Site(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Site {
	return predicate.Site(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Site {
	return predicate.Site(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Site {
	return predicate.Site(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Site {
	return predicate.Site(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Site {
	return predicate.Site(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Site {
	return predicate.Site(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Site {
	return predicate.Site(sql.FieldContainsFold(FieldName, v))
}

// SourceURLEQ applies the EQ predicate on the "source_url" field.
func SourceURLEQ(v string) predicate.Site {
	return predicate.Site(sql.FieldEQ(FieldSourceURL, v))
}

// SourceURLNEQ applies the NEQ predicate on the "source_url" field.
func SourceURLNEQ(v string) predicate.Site {
	return predicate.Site(sql.FieldNEQ(FieldSourceURL, v))
}

// SourceURLIn applies the In predicate on the "source_url" field.
func SourceURLIn(vs ...string) predicate.Site {
	return predicate.Site(sql.FieldIn(FieldSourceURL, vs...))
}

// SourceURLNotIn applies the NotIn predicate on the "source_url" field.
func SourceURLNotIn(vs ...string) predicate.Site {
	return predicate.Site(sql.FieldNotIn(FieldSourceURL, vs...))
}

// SourceURLGT applies the GT predicate on the "source_url" field.
func SourceURLGT(v string) predicate.Site {
	return predicate.Site(sql.FieldGT(FieldSourceURL, v))
}

// SourceURLGTE applies the GTE predicate on the "source_url" field.
func SourceURLGTE(v string) predicate.Site {
	return predicate.Site(sql.FieldGTE(FieldSourceURL, v))
}

// SourceURLLT applies the LT predicate on the "source_url" field.
func SourceURLLT(v string) predicate.Site {
	return predicate.Site(sql.FieldLT(FieldSourceURL, v))
}

// SourceURLLTE applies the LTE predicate on the "source_url" field.
func SourceURLLTE(v string) predicate.Site {
	return predicate.Site(sql.FieldLTE(FieldSourceURL, v))
}

// SourceURLContains applies the Contains predicate on the "source_url" field.
func SourceURLContains(v string) predicate.Site {
	return predicate.Site(sql.FieldContains(FieldSourceURL, v))
}

// SourceURLHasPrefix applies the HasPrefix predicate on the "source_url" field.
func SourceURLHasPrefix(v string) predicate.Site {
	return predicate.Site(sql.FieldHasPrefix(FieldSourceURL, v))
}

// SourceURLHasSuffix applies the HasSuffix predicate on the "source_url" field.
func SourceURLHasSuffix(v string) predicate.Site {
	return predicate.Site(sql.FieldHasSuffix(FieldSourceURL, v))
}

// SourceURLEqualFold applies the EqualFold predicate on the "source_url" field.
func SourceURLEqualFold(v string) predicate.Site {
	return predicate.Site(sql.FieldEqualFold(FieldSourceURL, v))
}

// SourceURLContainsFold applies the ContainsFold predicate on the "source_url" field.
func SourceURLContainsFold(v string) predicate.Site {
	return predicate.Site(sql.FieldContainsFold(FieldSourceURL, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Site {
	return predicate.Site(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Site {
	return predicate.Site(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Site {
	return predicate.Site(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Site {
	return predicate.Site(sql.FieldNotIn(FieldStatus, vs...))
}

// LastBuildIDEQ applies the EQ predicate on the "last_build_id" field.
func LastBuildIDEQ(v string) predicate.Site {
	return predicate.Site(sql.FieldEQ(FieldLastBuildID, v))
}

// LastBuildIDNEQ applies the NEQ predicate on the "last_build_id" field.
func LastBuildIDNEQ(v string) predicate.Site {
	return predicate.Site(sql.FieldNEQ(FieldLastBuildID, v))
}

// LastBuildIDIn applies the In predicate on the "last_build_id" field.
func LastBuildIDIn(vs ...string) predicate.Site {
	return predicate.Site(sql.FieldIn(FieldLastBuildID, vs...))
}

// LastBuildIDNotIn applies the NotIn predicate on the "last_build_id" field.
func LastBuildIDNotIn(vs ...string) predicate.Site {
	return predicate.Site(sql.FieldNotIn(FieldLastBuildID, vs...))
}

// LastBuildIDGT applies the GT predicate on the "last_build_id" field.
func LastBuildIDGT(v string) predicate.Site {
	return predicate.Site(sql.FieldGT(FieldLastBuildID, v))
}

// LastBuildIDGTE applies the GTE predicate on the "last_build_id" field.
func LastBuildIDGTE(v string) predicate.Site {
	return predicate.Site(sql.FieldGTE(FieldLastBuildID, v))
}

// LastBuildIDLT applies the LT predicate on the "last_build_id" field.
func LastBuildIDLT(v string) predicate.Site {
	return predicate.Site(sql.FieldLT(FieldLastBuildID, v))
}

// LastBuildIDLTE applies the LTE predicate on the "last_build_id" field.
func LastBuildIDLTE(v string) predicate.Site {
	return predicate.Site(sql.FieldLTE(FieldLastBuildID, v))
}

// LastBuildIDContains applies the Contains predicate on the "last_build_id" field.
func LastBuildIDContains(v string) predicate.Site {
	return predicate.Site(sql.FieldContains(FieldLastBuildID, v))
}

// LastBuildIDHasPrefix applies the HasPrefix predicate on the "last_build_id" field.
func LastBuildIDHasPrefix(v string) predicate.Site {
	return predicate.Site(sql.FieldHasPrefix(FieldLastBuildID, v))
}

// LastBuildIDHasSuffix applies the HasSuffix predicate on the "last_build_id" field.
func LastBuildIDHasSuffix(v string) predicate.Site {
	return predicate.Site(sql.FieldHasSuffix(FieldLastBuildID, v))
}

// LastBuildIDIsNil applies the IsNil predicate on the "last_build_id" field.
func LastBuildIDIsNil() predicate.Site {
	return predicate.Site(sql.FieldIsNull(FieldLastBuildID))
}

// LastBuildIDNotNil applies the NotNil predicate on the "last_build_id" field.
func LastBuildIDNotNil() predicate.Site {
	return predicate.Site(sql.FieldNotNull(FieldLastBuildID))
}

// LastBuildIDEqualFold applies the EqualFold predicate on the "last_build_id" field.
func LastBuildIDEqualFold(v string) predicate.Site {
	return predicate.Site(sql.FieldEqualFold(FieldLastBuildID, v))
}

// LastBuildIDContainsFold applies the ContainsFold predicate on the "last_build_id" field.
func LastBuildIDContainsFold(v string) predicate.Site {
	return predicate.Site(sql.FieldContainsFold(FieldLastBuildID, v))
}

// LastBuildStatusEQ applies the EQ predicate on the "last_build_status" field.
func LastBuildStatusEQ(v LastBuildStatus) predicate.Site {
	return predicate.Site(sql.FieldEQ(FieldLastBuildStatus, v))
}

// LastBuildStatusNEQ applies the NEQ predicate on the "last_build_status" field.
func LastBuildStatusNEQ(v LastBuildStatus) predicate.Site {
	return predicate.Site(sql.FieldNEQ(FieldLastBuildStatus, v))
}

// LastBuildStatusIn applies the In predicate on the "last_build_status" field.
func LastBuildStatusIn(vs ...LastBuildStatus) predicate.Site {
	return predicate.Site(sql.FieldIn(FieldLastBuildStatus, vs...))
}

// LastBuildStatusNotIn applies the NotIn predicate on the "last_build_status" field.
func LastBuildStatusNotIn(vs ...LastBuildStatus) predicate.Site {
	return predicate.Site(sql.FieldNotIn(FieldLastBuildStatus, vs...))
}

// LastBuildStatusIsNil applies the IsNil predicate on the "last_build_status" field.
func LastBuildStatusIsNil() predicate.Site {
	return predicate.Site(sql.FieldIsNull(FieldLastBuildStatus))
}

// LastBuildStatusNotNil applies the NotNil predicate on the "last_build_status" field.
func LastBuildStatusNotNil() predicate.Site {
	return predicate.Site(sql.FieldNotNull(FieldLastBuildStatus))
}

// EdgeURLEQ applies the EQ predicate on the "edge_url" field.
func EdgeURLEQ(v string) predicate.Site {
	return predicate.Site(sql.FieldEQ(FieldEdgeURL, v))
}

// EdgeURLNEQ applies the NEQ predicate on the "edge_url" field.
func EdgeURLNEQ(v string) predicate.Site {
	return predicate.Site(sql.FieldNEQ(FieldEdgeURL, v))
}

// EdgeURLIn applies the In predicate on the "edge_url" field.
func EdgeURLIn(vs ...string) predicate.Site {
	return predicate.Site(sql.FieldIn(FieldEdgeURL, vs...))
}

// EdgeURLNotIn applies the NotIn predicate on the "edge_url" field.
func EdgeURLNotIn(vs ...string) predicate.Site {
	return predicate.Site(sql.FieldNotIn(FieldEdgeURL, vs...))
}

// EdgeURLGT applies the GT predicate on the "edge_url" field.
func EdgeURLGT(v string) predicate.Site {
	return predicate.Site(sql.FieldGT(FieldEdgeURL, v))
}

// EdgeURLGTE applies the GTE predicate on the "edge_url" field.
func EdgeURLGTE(v string) predicate.Site {
	return predicate.Site(sql.FieldGTE(FieldEdgeURL, v))
}

// EdgeURLLT applies the LT predicate on the "edge_url" field.
func EdgeURLLT(v string) predicate.Site {
	return predicate.Site(sql.FieldLT(FieldEdgeURL, v))
}

// EdgeURLLTE applies the LTE predicate on the "edge_url" field.
func EdgeURLLTE(v string) predicate.Site {
	return predicate.Site(sql.FieldLTE(FieldEdgeURL, v))
}

// EdgeURLContains applies the Contains predicate on the "edge_url" field.
func EdgeURLContains(v string) predicate.Site {
	return predicate.Site(sql.FieldContains(FieldEdgeURL, v))
}

// EdgeURLHasPrefix applies the HasPrefix predicate on the "edge_url" field.
func EdgeURLHasPrefix(v string) predicate.Site {
	return predicate.Site(sql.FieldHasPrefix(FieldEdgeURL, v))
}

// EdgeURLHasSuffix applies the HasSuffix predicate on the "edge_url" field.
func EdgeURLHasSuffix(v string) predicate.Site {
	return predicate.Site(sql.FieldHasSuffix(FieldEdgeURL, v))
}

// EdgeURLIsNil applies the IsNil predicate on the "edge_url" field.
func EdgeURLIsNil() predicate.Site {
	return predicate.Site(sql.FieldIsNull(FieldEdgeURL))
}

// EdgeURLNotNil applies the NotNil predicate on the "edge_url" field.
func EdgeURLNotNil() predicate.Site {
	return predicate.Site(sql.FieldNotNull(FieldEdgeURL))
}

// EdgeURLEqualFold applies the EqualFold predicate on the "edge_url" field.
func EdgeURLEqualFold(v string) predicate.Site {
	return predicate.Site(sql.FieldEqualFold(FieldEdgeURL, v))
}

// EdgeURLContainsFold applies the ContainsFold predicate on the "edge_url" field.
func EdgeURLContainsFold(v string) predicate.Site {
	return predicate.Site(sql.FieldContainsFold(FieldEdgeURL, v))
}

// EdgeProjectEQ applies the EQ predicate on the "edge_project" field.
func EdgeProjectEQ(v string) predicate.Site {
	return predicate.Site(sql.FieldEQ(FieldEdgeProject, v))
}

// EdgeProjectNEQ applies the NEQ predicate on the "edge_project" field.
func EdgeProjectNEQ(v string) predicate.Site {
	return predicate.Site(sql.FieldNEQ(FieldEdgeProject, v))
}

// EdgeProjectIn applies the In predicate on the "edge_project" field.
func EdgeProjectIn(vs ...string) predicate.Site {
	return predicate.Site(sql.FieldIn(FieldEdgeProject, vs...))
}

// EdgeProjectNotIn applies the NotIn predicate on the "edge_project" field.
func EdgeProjectNotIn(vs ...string) predicate.Site {
	return predicate.Site(sql.FieldNotIn(FieldEdgeProject, vs...))
}

// EdgeProjectGT applies the GT predicate on the "edge_project" field.
func EdgeProjectGT(v string) predicate.Site {
	return predicate.Site(sql.FieldGT(FieldEdgeProject, v))
}

// EdgeProjectGTE applies the GTE predicate on the "edge_project" field.
func EdgeProjectGTE(v string) predicate.Site {
	return predicate.Site(sql.FieldGTE(FieldEdgeProject, v))
}

// EdgeProjectLT applies the LT predicate on the "edge_project" field.
func EdgeProjectLT(v string) predicate.Site {
	return predicate.Site(sql.FieldLT(FieldEdgeProject, v))
}

// EdgeProjectLTE applies the LTE predicate on the "edge_project" field.
func EdgeProjectLTE(v string) predicate.Site {
	return predicate.Site(sql.FieldLTE(FieldEdgeProject, v))
}

// EdgeProjectContains applies the Contains predicate on the "edge_project" field.
func EdgeProjectContains(v string) predicate.Site {
	return predicate.Site(sql.FieldContains(FieldEdgeProject, v))
}

// EdgeProjectHasPrefix applies the HasPrefix predicate on the "edge_project" field.
func EdgeProjectHasPrefix(v string) predicate.Site {
	return predicate.Site(sql.FieldHasPrefix(FieldEdgeProject, v))
}

// EdgeProjectHasSuffix applies the HasSuffix predicate on the "edge_project" field.
func EdgeProjectHasSuffix(v string) predicate.Site {
	return predicate.Site(sql.FieldHasSuffix(FieldEdgeProject, v))
}

// EdgeProjectIsNil applies the IsNil predicate on the "edge_project" field.
func EdgeProjectIsNil() predicate.Site {
	return predicate.Site(sql.FieldIsNull(FieldEdgeProject))
}

// EdgeProjectNotNil applies the NotNil predicate on the "edge_project" field.
func EdgeProjectNotNil() predicate.Site {
	return predicate.Site(sql.FieldNotNull(FieldEdgeProject))
}

// EdgeProjectEqualFold applies the EqualFold predicate on the "edge_project" field.
func EdgeProjectEqualFold(v string) predicate.Site {
	return predicate.Site(sql.FieldEqualFold(FieldEdgeProject, v))
}

// EdgeProjectContainsFold applies the ContainsFold predicate on the "edge_project" field.
func EdgeProjectContainsFold(v string) predicate.Site {
	return predicate.Site(sql.FieldContainsFold(FieldEdgeProject, v))
}

// PageCountEQ applies the EQ predicate on the "page_count" field.
func PageCountEQ(v int) predicate.Site {
	return predicate.Site(sql.FieldEQ(FieldPageCount, v))
}

// PageCountNEQ applies the NEQ predicate on the "page_count" field.
func PageCountNEQ(v int) predicate.Site {
	return predicate.Site(sql.FieldNEQ(FieldPageCount, v))
}

// PageCountIn applies the In predicate on the "page_count" field.
func PageCountIn(vs ...int) predicate.Site {
	return predicate.Site(sql.FieldIn(FieldPageCount, vs...))
}

// PageCountNotIn applies the NotIn predicate on the "page_count" field.
func PageCountNotIn(vs ...int) predicate.Site {
	return predicate.Site(sql.FieldNotIn(FieldPageCount, vs...))
}

// PageCountGT applies the GT predicate on the "page_count" field.
func PageCountGT(v int) predicate.Site {
	return predicate.Site(sql.FieldGT(FieldPageCount, v))
}

// PageCountGTE applies the GTE predicate on the "page_count" field.
func PageCountGTE(v int) predicate.Site {
	return predicate.Site(sql.FieldGTE(FieldPageCount, v))
}

// PageCountLT applies the LT predicate on the "page_count" field.
func PageCountLT(v int) predicate.Site {
	return predicate.Site(sql.FieldLT(FieldPageCount, v))
}

// PageCountLTE applies the LTE predicate on the "page_count" field.
func PageCountLTE(v int) predicate.Site {
	return predicate.Site(sql.FieldLTE(FieldPageCount, v))
}

// TotalBytesEQ applies the EQ predicate on the "total_bytes" field.
func TotalBytesEQ(v int64) predicate.Site {
	return predicate.Site(sql.FieldEQ(FieldTotalBytes, v))
}

// TotalBytesNEQ applies the NEQ predicate on the "total_bytes" field.
func TotalBytesNEQ(v int64) predicate.Site {
	return predicate.Site(sql.FieldNEQ(FieldTotalBytes, v))
}

// TotalBytesIn applies the In predicate on the "total_bytes" field.
func TotalBytesIn(vs ...int64) predicate.Site {
	return predicate.Site(sql.FieldIn(FieldTotalBytes, vs...))
}

// TotalBytesNotIn applies the NotIn predicate on the "total_bytes" field.
func TotalBytesNotIn(vs ...int64) predicate.Site {
	return predicate.Site(sql.FieldNotIn(FieldTotalBytes, vs...))
}

// TotalBytesGT applies the GT predicate on the "total_bytes" field.
func TotalBytesGT(v int64) predicate.Site {
	return predicate.Site(sql.FieldGT(FieldTotalBytes, v))
}

// TotalBytesGTE applies the GTE predicate on the "total_bytes" field.
func TotalBytesGTE(v int64) predicate.Site {
	return predicate.Site(sql.FieldGTE(FieldTotalBytes, v))
}

// TotalBytesLT applies the LT predicate on the "total_bytes" field.
func TotalBytesLT(v int64) predicate.Site {
	return predicate.Site(sql.FieldLT(FieldTotalBytes, v))
}

// TotalBytesLTE applies the LTE predicate on the "total_bytes" field.
func TotalBytesLTE(v int64) predicate.Site {
	return predicate.Site(sql.FieldLTE(FieldTotalBytes, v))
}

// SettingsIsNil applies the IsNil predicate on the "settings" field.
func SettingsIsNil() predicate.Site {
	return predicate.Site(sql.FieldIsNull(FieldSettings))
}

// SettingsNotNil applies the NotNil predicate on the "settings" field.
func SettingsNotNil() predicate.Site {
	return predicate.Site(sql.FieldNotNull(FieldSettings))
}

// WebhookSecretEQ applies the EQ predicate on the "webhook_secret" field.
func WebhookSecretEQ(v string) predicate.Site {
	return predicate.Site(sql.FieldEQ(FieldWebhookSecret, v))
}

// WebhookSecretNEQ applies the NEQ predicate on the "webhook_secret" field.
func WebhookSecretNEQ(v string) predicate.Site {
	return predicate.Site(sql.FieldNEQ(FieldWebhookSecret, v))
}

// WebhookSecretIn applies the In predicate on the "webhook_secret" field.
func WebhookSecretIn(vs ...string) predicate.Site {
	return predicate.Site(sql.FieldIn(FieldWebhookSecret, vs...))
}

// WebhookSecretNotIn applies the NotIn predicate on the "webhook_secret" field.
func WebhookSecretNotIn(vs ...string) predicate.Site {
	return predicate.Site(sql.FieldNotIn(FieldWebhookSecret, vs...))
}

// WebhookSecretGT applies the GT predicate on the "webhook_secret" field.
func WebhookSecretGT(v string) predicate.Site {
	return predicate.Site(sql.FieldGT(FieldWebhookSecret, v))
}

// WebhookSecretGTE applies the GTE predicate on the "webhook_secret" field.
func WebhookSecretGTE(v string) predicate.Site {
	return predicate.Site(sql.FieldGTE(FieldWebhookSecret, v))
}

// WebhookSecretLT applies the LT predicate on the "webhook_secret" field.
func WebhookSecretLT(v string) predicate.Site {
	return predicate.Site(sql.FieldLT(FieldWebhookSecret, v))
}

// WebhookSecretLTE applies the LTE predicate on the "webhook_secret" field.
func WebhookSecretLTE(v string) predicate.Site {
	return predicate.Site(sql.FieldLTE(FieldWebhookSecret, v))
}

// WebhookSecretContains applies the Contains predicate on the "webhook_secret" field.
func WebhookSecretContains(v string) predicate.Site {
	return predicate.Site(sql.FieldContains(FieldWebhookSecret, v))
}

// WebhookSecretHasPrefix applies the HasPrefix predicate on the "webhook_secret" field.
func WebhookSecretHasPrefix(v string) predicate.Site {
	return predicate.Site(sql.FieldHasPrefix(FieldWebhookSecret, v))
}

// WebhookSecretHasSuffix applies the HasSuffix predicate on the "webhook_secret" field.
func WebhookSecretHasSuffix(v string) predicate.Site {
	return predicate.Site(sql.FieldHasSuffix(FieldWebhookSecret, v))
}

// WebhookSecretEqualFold applies the EqualFold predicate on the "webhook_secret" field.
func WebhookSecretEqualFold(v string) predicate.Site {
	return predicate.Site(sql.FieldEqualFold(FieldWebhookSecret, v))
}

// WebhookSecretContainsFold applies the ContainsFold predicate on the "webhook_secret" field.
func WebhookSecretContainsFold(v string) predicate.Site {
	return predicate.Site(sql.FieldContainsFold(FieldWebhookSecret, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Site {
	return predicate.Site(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Site {
	return predicate.Site(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Site {
	return predicate.Site(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Site {
	return predicate.Site(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Site {
	return predicate.Site(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Site {
	return predicate.Site(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Site {
	return predicate.Site(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Site {
	return predicate.Site(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Site {
	return predicate.Site(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Site {
	return predicate.Site(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Site {
	return predicate.Site(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Site {
	return predicate.Site(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Site {
	return predicate.Site(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Site {
	return predicate.Site(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Site {
	return predicate.Site(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Site {
	return predicate.Site(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasBuilds applies the HasEdge predicate on the "builds" edge.
func HasBuilds() predicate.Site {
	return predicate.Site(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, BuildsTable, BuildsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBuildsWith applies the HasEdge predicate on the "builds" edge with a given conditions (other predicates).
func HasBuildsWith(preds ...predicate.Build) predicate.Site {
	return predicate.Site(func(s *sql.Selector) {
		step := newBuildsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAgentRuns applies the HasEdge predicate on the "agent_runs" edge.
func HasAgentRuns() predicate.Site {
	return predicate.Site(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AgentRunsTable, AgentRunsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentRunsWith applies the HasEdge predicate on the "agent_runs" edge with a given conditions (other predicates).
func HasAgentRunsWith(preds ...predicate.AgentRun) predicate.Site {
	return predicate.Site(func(s *sql.Selector) {
		step := newAgentRunsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAssetOverrides applies the HasEdge predicate on the "asset_overrides" edge.
func HasAssetOverrides() predicate.Site {
	return predicate.Site(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AssetOverridesTable, AssetOverridesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAssetOverridesWith applies the HasEdge predicate on the "asset_overrides" edge with a given conditions (other predicates).
func HasAssetOverridesWith(preds ...predicate.AssetOverride) predicate.Site {
	return predicate.Site(func(s *sql.Selector) {
		step := newAssetOverridesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSettingsHistory applies the HasEdge predicate on the "settings_history" edge.
func HasSettingsHistory() predicate.Site {
	return predicate.Site(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SettingsHistoryTable, SettingsHistoryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSettingsHistoryWith applies the HasEdge predicate on the "settings_history" edge with a given conditions (other predicates).
func HasSettingsHistoryWith(preds ...predicate.SettingsHistory) predicate.Site {
	return predicate.Site(func(s *sql.Selector) {
		step := newSettingsHistoryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMeasurements applies the HasEdge predicate on the "measurements" edge.
func HasMeasurements() predicate.Site {
	return predicate.Site(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MeasurementsTable, MeasurementsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMeasurementsWith applies the HasEdge predicate on the "measurements" edge with a given conditions (other predicates).
func HasMeasurementsWith(preds ...predicate.MeasurementComparison) predicate.Site {
	return predicate.Site(func(s *sql.Selector) {
		step := newMeasurementsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPages applies the HasEdge predicate on the "pages" edge.
func HasPages() predicate.Site {
	return predicate.Site(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PagesTable, PagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPagesWith applies the HasEdge predicate on the "pages" edge with a given conditions (other predicates).
func HasPagesWith(preds ...predicate.Page) predicate.Site {
	return predicate.Site(func(s *sql.Selector) {
		step := newPagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAlertRules applies the HasEdge predicate on the "alert_rules" edge.
func HasAlertRules() predicate.Site {
	return predicate.Site(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AlertRulesTable, AlertRulesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAlertRulesWith applies the HasEdge predicate on the "alert_rules" edge with a given conditions (other predicates).
func HasAlertRulesWith(preds ...predicate.AlertRule) predicate.Site {
	return predicate.Site(func(s *sql.Selector) {
		step := newAlertRulesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAlertLogs applies the HasEdge predicate on the "alert_logs" edge.
func HasAlertLogs() predicate.Site {
	return predicate.Site(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AlertLogsTable, AlertLogsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAlertLogsWith applies the HasEdge predicate on the "alert_logs" edge with a given conditions (other predicates).
func HasAlertLogsWith(preds ...predicate.AlertLog) predicate.Site {
	return predicate.Site(func(s *sql.Selector) {
		step := newAlertLogsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Site) predicate.Site {
	return predicate.Site(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Site) predicate.Site {
	return predicate.Site(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Site) predicate.Site {
	return predicate.Site(sql.NotPredicates(p))
}
