// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/metrics-lab/staticpress/ent/build"
	"github.com/metrics-lab/staticpress/ent/site"
)

// Build is the model entity for the Build schema.
type Build struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SiteID holds the value of the "site_id" field.
	SiteID string `json:"site_id,omitempty"`
	// Scope holds the value of the "scope" field.
	Scope build.Scope `json:"scope,omitempty"`
	// TriggeredBy holds the value of the "triggered_by" field.
	TriggeredBy build.TriggeredBy `json:"triggered_by,omitempty"`
	// Status holds the value of the "status" field.
	Status build.Status `json:"status,omitempty"`
	// Fine-grained pipeline phase (crawl, images, css, js, html, fonts, deploy, measure)
	CurrentPhase *string `json:"current_phase,omitempty"`
	// Last phase that completed and persisted its artifacts; resume re-enters after it
	CheckpointPhase *string `json:"checkpoint_phase,omitempty"`
	// PagesTotal holds the value of the "pages_total" field.
	PagesTotal int `json:"pages_total,omitempty"`
	// PagesProcessed holds the value of the "pages_processed" field.
	PagesProcessed int `json:"pages_processed,omitempty"`
	// Input size per asset class: html, css, js, images, fonts
	OriginalBytes map[string]int64 `json:"original_bytes,omitempty"`
	// Output size per asset class: html, css, js, images, fonts
	OptimizedBytes map[string]int64 `json:"optimized_bytes,omitempty"`
	// IframesReplaced holds the value of the "iframes_replaced" field.
	IframesReplaced int `json:"iframes_replaced,omitempty"`
	// ScriptsRemoved holds the value of the "scripts_removed" field.
	ScriptsRemoved int `json:"scripts_removed,omitempty"`
	// ScoreBefore holds the value of the "score_before" field.
	ScoreBefore *float64 `json:"score_before,omitempty"`
	// ScoreAfter holds the value of the "score_after" field.
	ScoreAfter *float64 `json:"score_after,omitempty"`
	// ErrorPhase holds the value of the "error_phase" field.
	ErrorPhase *string `json:"error_phase,omitempty"`
	// ErrorStep holds the value of the "error_step" field.
	ErrorStep *string `json:"error_step,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// ErrorRetryable holds the value of the "error_retryable" field.
	ErrorRetryable bool `json:"error_retryable,omitempty"`
	// Full settings snapshot the pipeline ran with
	ResolvedSettings map[string]interface{} `json:"resolved_settings,omitempty"`
	// Append-only structured log: {ts, level, message}
	Log []map[string]interface{} `json:"log,omitempty"`
	// RetryCount holds the value of the "retry_count" field.
	RetryCount int `json:"retry_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// Set iff status is terminal
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BuildQuery when eager-loading is set.
	Edges        BuildEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BuildEdges holds the relations/edges for other nodes in the graph.
type BuildEdges struct {
	// Site holds the value of the site edge.
	Site *Site `json:"site,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SiteOrErr returns the Site value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BuildEdges) SiteOrErr() (*Site, error) {
	if e.Site != nil {
		return e.Site, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: site.Label}
	}
	return nil, &NotLoadedError{edge: "site"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Build) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case build.FieldOriginalBytes, build.FieldOptimizedBytes, build.FieldResolvedSettings, build.FieldLog:
			values[i] = new([]byte)
		case build.FieldErrorRetryable:
			values[i] = new(sql.NullBool)
		case build.FieldScoreBefore, build.FieldScoreAfter:
			values[i] = new(sql.NullFloat64)
		case build.FieldPagesTotal, build.FieldPagesProcessed, build.FieldIframesReplaced, build.FieldScriptsRemoved, build.FieldRetryCount:
			values[i] = new(sql.NullInt64)
		case build.FieldID, build.FieldSiteID, build.FieldScope, build.FieldTriggeredBy, build.FieldStatus, build.FieldCurrentPhase, build.FieldCheckpointPhase, build.FieldErrorPhase, build.FieldErrorStep, build.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case build.FieldCreatedAt, build.FieldStartedAt, build.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Build fields.
func (_m *Build) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case build.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case build.FieldSiteID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field site_id", values[i])
			} else if value.Valid {
				_m.SiteID = value.String
			}
		case build.FieldScope:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scope", values[i])
			} else if value.Valid {
				_m.Scope = build.Scope(value.String)
			}
		case build.FieldTriggeredBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field triggered_by", values[i])
			} else if value.Valid {
				_m.TriggeredBy = build.TriggeredBy(value.String)
			}
		case build.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = build.Status(value.String)
			}
		case build.FieldCurrentPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_phase", values[i])
			} else if value.Valid {
				_m.CurrentPhase = new(string)
				*_m.CurrentPhase = value.String
			}
		case build.FieldCheckpointPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field checkpoint_phase", values[i])
			} else if value.Valid {
				_m.CheckpointPhase = new(string)
				*_m.CheckpointPhase = value.String
			}
		case build.FieldPagesTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field pages_total", values[i])
			} else if value.Valid {
				_m.PagesTotal = int(value.Int64)
			}
		case build.FieldPagesProcessed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field pages_processed", values[i])
			} else if value.Valid {
				_m.PagesProcessed = int(value.Int64)
			}
		case build.FieldOriginalBytes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field original_bytes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.OriginalBytes); err != nil {
					return fmt.Errorf("unmarshal field original_bytes: %w", err)
				}
			}
		case build.FieldOptimizedBytes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field optimized_bytes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.OptimizedBytes); err != nil {
					return fmt.Errorf("unmarshal field optimized_bytes: %w", err)
				}
			}
		case build.FieldIframesReplaced:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field iframes_replaced", values[i])
			} else if value.Valid {
				_m.IframesReplaced = int(value.Int64)
			}
		case build.FieldScriptsRemoved:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field scripts_removed", values[i])
			} else if value.Valid {
				_m.ScriptsRemoved = int(value.Int64)
			}
		case build.FieldScoreBefore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score_before", values[i])
			} else if value.Valid {
				_m.ScoreBefore = new(float64)
				*_m.ScoreBefore = value.Float64
			}
		case build.FieldScoreAfter:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score_after", values[i])
			} else if value.Valid {
				_m.ScoreAfter = new(float64)
				*_m.ScoreAfter = value.Float64
			}
		case build.FieldErrorPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_phase", values[i])
			} else if value.Valid {
				_m.ErrorPhase = new(string)
				*_m.ErrorPhase = value.String
			}
		case build.FieldErrorStep:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_step", values[i])
			} else if value.Valid {
				_m.ErrorStep = new(string)
				*_m.ErrorStep = value.String
			}
		case build.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case build.FieldErrorRetryable:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field error_retryable", values[i])
			} else if value.Valid {
				_m.ErrorRetryable = value.Bool
			}
		case build.FieldResolvedSettings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_settings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ResolvedSettings); err != nil {
					return fmt.Errorf("unmarshal field resolved_settings: %w", err)
				}
			}
		case build.FieldLog:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field log", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Log); err != nil {
					return fmt.Errorf("unmarshal field log: %w", err)
				}
			}
		case build.FieldRetryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retry_count", values[i])
			} else if value.Valid {
				_m.RetryCount = int(value.Int64)
			}
		case build.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case build.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case build.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Build.
// This includes values selected through modifiers, order, etc.
func (_m *Build) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySite queries the "site" edge of the Build entity.
func (_m *Build) QuerySite() *SiteQuery {
	return NewBuildClient(_m.config).QuerySite(_m)
}

// Update returns a builder for updating this Build.
// Note that you need to call Build.Unwrap() before calling this method if this Build
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Build) Update() *BuildUpdateOne {
	return NewBuildClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Build entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Build) Unwrap() *Build {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Build is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Build) String() string {
	var builder strings.Builder
	builder.WriteString("Build(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("site_id=")
	builder.WriteString(_m.SiteID)
	builder.WriteString(", ")
	builder.WriteString("scope=")
	builder.WriteString(fmt.Sprintf("%v", _m.Scope))
	builder.WriteString(", ")
	builder.WriteString("triggered_by=")
	builder.WriteString(fmt.Sprintf("%v", _m.TriggeredBy))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.CurrentPhase; v != nil {
		builder.WriteString("current_phase=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CheckpointPhase; v != nil {
		builder.WriteString("checkpoint_phase=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("pages_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.PagesTotal))
	builder.WriteString(", ")
	builder.WriteString("pages_processed=")
	builder.WriteString(fmt.Sprintf("%v", _m.PagesProcessed))
	builder.WriteString(", ")
	builder.WriteString("original_bytes=")
	builder.WriteString(fmt.Sprintf("%v", _m.OriginalBytes))
	builder.WriteString(", ")
	builder.WriteString("optimized_bytes=")
	builder.WriteString(fmt.Sprintf("%v", _m.OptimizedBytes))
	builder.WriteString(", ")
	builder.WriteString("iframes_replaced=")
	builder.WriteString(fmt.Sprintf("%v", _m.IframesReplaced))
	builder.WriteString(", ")
	builder.WriteString("scripts_removed=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScriptsRemoved))
	builder.WriteString(", ")
	if v := _m.ScoreBefore; v != nil {
		builder.WriteString("score_before=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ScoreAfter; v != nil {
		builder.WriteString("score_after=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ErrorPhase; v != nil {
		builder.WriteString("error_phase=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorStep; v != nil {
		builder.WriteString("error_step=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("error_retryable=")
	builder.WriteString(fmt.Sprintf("%v", _m.ErrorRetryable))
	builder.WriteString(", ")
	builder.WriteString("resolved_settings=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResolvedSettings))
	builder.WriteString(", ")
	builder.WriteString("log=")
	builder.WriteString(fmt.Sprintf("%v", _m.Log))
	builder.WriteString(", ")
	builder.WriteString("retry_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetryCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Builds is a parsable slice of Build.
type Builds []*Build
