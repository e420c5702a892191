// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/metrics-lab/staticpress/ent/site"
)

// Site is the model entity for the Site schema.
type Site struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Origin WordPress URL the crawler starts from
	SourceURL string `json:"source_url,omitempty"`
	// Status holds the value of the "status" field.
	Status site.Status `json:"status,omitempty"`
	// Denormalized pointer to the most recent build (best-effort)
	LastBuildID *string `json:"last_build_id,omitempty"`
	// LastBuildStatus holds the value of the "last_build_status" field.
	LastBuildStatus *site.LastBuildStatus `json:"last_build_status,omitempty"`
	// Public URL returned by the edge provider for the latest deploy
	EdgeURL *string `json:"edge_url,omitempty"`
	// Edge provider project name, form mls-{siteId}
	EdgeProject *string `json:"edge_project,omitempty"`
	// PageCount holds the value of the "page_count" field.
	PageCount int `json:"page_count,omitempty"`
	// TotalBytes holds the value of the "total_bytes" field.
	TotalBytes int64 `json:"total_bytes,omitempty"`
	// Sparse settings override merged over built-in defaults
	Settings map[string]interface{} `json:"settings,omitempty"`
	// HMAC secret for inbound WordPress webhooks
	WebhookSecret string `json:"-"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SiteQuery when eager-loading is set.
	Edges        SiteEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SiteEdges holds the relations/edges for other nodes in the graph.
type SiteEdges struct {
	// Builds holds the value of the builds edge.
	Builds []*Build `json:"builds,omitempty"`
	// AgentRuns holds the value of the agent_runs edge.
	AgentRuns []*AgentRun `json:"agent_runs,omitempty"`
	// AssetOverrides holds the value of the asset_overrides edge.
	AssetOverrides []*AssetOverride `json:"asset_overrides,omitempty"`
	// SettingsHistory holds the value of the settings_history edge.
	SettingsHistory []*SettingsHistory `json:"settings_history,omitempty"`
	// Measurements holds the value of the measurements edge.
	Measurements []*MeasurementComparison `json:"measurements,omitempty"`
	// Pages holds the value of the pages edge.
	Pages []*Page `json:"pages,omitempty"`
	// AlertRules holds the value of the alert_rules edge.
	AlertRules []*AlertRule `json:"alert_rules,omitempty"`
	// AlertLogs holds the value of the alert_logs edge.
	AlertLogs []*AlertLog `json:"alert_logs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [8]bool
}

// BuildsOrErr returns the Builds value or an error if the edge
// was not loaded in eager-loading.
func (e SiteEdges) BuildsOrErr() ([]*Build, error) {
	if e.loadedTypes[0] {
		return e.Builds, nil
	}
	return nil, &NotLoadedError{edge: "builds"}
}

// AgentRunsOrErr returns the AgentRuns value or an error if the edge
// was not loaded in eager-loading.
func (e SiteEdges) AgentRunsOrErr() ([]*AgentRun, error) {
	if e.loadedTypes[1] {
		return e.AgentRuns, nil
	}
	return nil, &NotLoadedError{edge: "agent_runs"}
}

// AssetOverridesOrErr returns the AssetOverrides value or an error if the edge
// was not loaded in eager-loading.
func (e SiteEdges) AssetOverridesOrErr() ([]*AssetOverride, error) {
	if e.loadedTypes[2] {
		return e.AssetOverrides, nil
	}
	return nil, &NotLoadedError{edge: "asset_overrides"}
}

// SettingsHistoryOrErr returns the SettingsHistory value or an error if the edge
// was not loaded in eager-loading.
func (e SiteEdges) SettingsHistoryOrErr() ([]*SettingsHistory, error) {
	if e.loadedTypes[3] {
		return e.SettingsHistory, nil
	}
	return nil, &NotLoadedError{edge: "settings_history"}
}

// MeasurementsOrErr returns the Measurements value or an error if the edge
// was not loaded in eager-loading.
func (e SiteEdges) MeasurementsOrErr() ([]*MeasurementComparison, error) {
	if e.loadedTypes[4] {
		return e.Measurements, nil
	}
	return nil, &NotLoadedError{edge: "measurements"}
}

// PagesOrErr returns the Pages value or an error if the edge
// was not loaded in eager-loading.
func (e SiteEdges) PagesOrErr() ([]*Page, error) {
	if e.loadedTypes[5] {
		return e.Pages, nil
	}
	return nil, &NotLoadedError{edge: "pages"}
}

// AlertRulesOrErr returns the AlertRules value or an error if the edge
// was not loaded in eager-loading.
func (e SiteEdges) AlertRulesOrErr() ([]*AlertRule, error) {
	if e.loadedTypes[6] {
		return e.AlertRules, nil
	}
	return nil, &NotLoadedError{edge: "alert_rules"}
}

// AlertLogsOrErr returns the AlertLogs value or an error if the edge
// was not loaded in eager-loading.
func (e SiteEdges) AlertLogsOrErr() ([]*AlertLog, error) {
	if e.loadedTypes[7] {
		return e.AlertLogs, nil
	}
	return nil, &NotLoadedError{edge: "alert_logs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Site) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case site.FieldSettings:
			values[i] = new([]byte)
		case site.FieldPageCount, site.FieldTotalBytes:
			values[i] = new(sql.NullInt64)
		case site.FieldID, site.FieldName, site.FieldSourceURL, site.FieldStatus, site.FieldLastBuildID, site.FieldLastBuildStatus, site.FieldEdgeURL, site.FieldEdgeProject, site.FieldWebhookSecret:
			values[i] = new(sql.NullString)
		case site.FieldCreatedAt, site.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Site fields.
func (_m *Site) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case site.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case site.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case site.FieldSourceURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_url", values[i])
			} else if value.Valid {
				_m.SourceURL = value.String
			}
		case site.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = site.Status(value.String)
			}
		case site.FieldLastBuildID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_build_id", values[i])
			} else if value.Valid {
				_m.LastBuildID = new(string)
				*_m.LastBuildID = value.String
			}
		case site.FieldLastBuildStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_build_status", values[i])
			} else if value.Valid {
				_m.LastBuildStatus = new(site.LastBuildStatus)
				*_m.LastBuildStatus = site.LastBuildStatus(value.String)
			}
		case site.FieldEdgeURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field edge_url", values[i])
			} else if value.Valid {
				_m.EdgeURL = new(string)
				*_m.EdgeURL = value.String
			}
		case site.FieldEdgeProject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field edge_project", values[i])
			} else if value.Valid {
				_m.EdgeProject = new(string)
				*_m.EdgeProject = value.String
			}
		case site.FieldPageCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field page_count", values[i])
			} else if value.Valid {
				_m.PageCount = int(value.Int64)
			}
		case site.FieldTotalBytes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_bytes", values[i])
			} else if value.Valid {
				_m.TotalBytes = value.Int64
			}
		case site.FieldSettings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field settings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Settings); err != nil {
					return fmt.Errorf("unmarshal field settings: %w", err)
				}
			}
		case site.FieldWebhookSecret:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field webhook_secret", values[i])
			} else if value.Valid {
				_m.WebhookSecret = value.String
			}
		case site.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case site.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Site.
// This includes values selected through modifiers, order, etc.
func (_m *Site) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBuilds queries the "builds" edge of the Site entity.
func (_m *Site) QueryBuilds() *BuildQuery {
	return NewSiteClient(_m.config).QueryBuilds(_m)
}

// QueryAgentRuns queries the "agent_runs" edge of the Site entity.
func (_m *Site) QueryAgentRuns() *AgentRunQuery {
	return NewSiteClient(_m.config).QueryAgentRuns(_m)
}

// QueryAssetOverrides queries the "asset_overrides" edge of the Site entity.
func (_m *Site) QueryAssetOverrides() *AssetOverrideQuery {
	return NewSiteClient(_m.config).QueryAssetOverrides(_m)
}

// QuerySettingsHistory queries the "settings_history" edge of the Site entity.
func (_m *Site) QuerySettingsHistory() *SettingsHistoryQuery {
	return NewSiteClient(_m.config).QuerySettingsHistory(_m)
}

// QueryMeasurements queries the "measurements" edge of the Site entity.
func (_m *Site) QueryMeasurements() *MeasurementComparisonQuery {
	return NewSiteClient(_m.config).QueryMeasurements(_m)
}

// QueryPages queries the "pages" edge of the Site entity.
func (_m *Site) QueryPages() *PageQuery {
	return NewSiteClient(_m.config).QueryPages(_m)
}

// QueryAlertRules queries the "alert_rules" edge of the Site entity.
func (_m *Site) QueryAlertRules() *AlertRuleQuery {
	return NewSiteClient(_m.config).QueryAlertRules(_m)
}

// QueryAlertLogs queries the "alert_logs" edge of the Site entity.
func (_m *Site) QueryAlertLogs() *AlertLogQuery {
	return NewSiteClient(_m.config).QueryAlertLogs(_m)
}

// Update returns a builder for updating this Site.
// Note that you need to call Site.Unwrap() before calling this method if this Site
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Site) Update() *SiteUpdateOne {
	return NewSiteClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Site entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Site) Unwrap() *Site {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Site is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Site) String() string {
	var builder strings.Builder
	builder.WriteString("Site(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("source_url=")
	builder.WriteString(_m.SourceURL)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.LastBuildID; v != nil {
		builder.WriteString("last_build_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastBuildStatus; v != nil {
		builder.WriteString("last_build_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.EdgeURL; v != nil {
		builder.WriteString("edge_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.EdgeProject; v != nil {
		builder.WriteString("edge_project=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("page_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.PageCount))
	builder.WriteString(", ")
	builder.WriteString("total_bytes=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalBytes))
	builder.WriteString(", ")
	builder.WriteString("settings=")
	builder.WriteString(fmt.Sprintf("%v", _m.Settings))
	builder.WriteString(", ")
	builder.WriteString("webhook_secret=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Sites is a parsable slice of Site.
type Sites []*Site
