// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/metrics-lab/staticpress/ent/settingshistory"
	"github.com/metrics-lab/staticpress/ent/site"
)

// SettingsHistory is the model entity for the SettingsHistory schema.
type SettingsHistory struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SiteID holds the value of the "site_id" field.
	SiteID string `json:"site_id,omitempty"`
	// The sparse settings value before the write that created this row
	Settings map[string]interface{} `json:"settings,omitempty"`
	// Who made the change: user identity, 'agent', or 'rollback'
	Actor string `json:"actor,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SettingsHistoryQuery when eager-loading is set.
	Edges        SettingsHistoryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SettingsHistoryEdges holds the relations/edges for other nodes in the graph.
type SettingsHistoryEdges struct {
	// Site holds the value of the site edge.
	Site *Site `json:"site,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SiteOrErr returns the Site value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SettingsHistoryEdges) SiteOrErr() (*Site, error) {
	if e.Site != nil {
		return e.Site, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: site.Label}
	}
	return nil, &NotLoadedError{edge: "site"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SettingsHistory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case settingshistory.FieldSettings:
			values[i] = new([]byte)
		case settingshistory.FieldID, settingshistory.FieldSiteID, settingshistory.FieldActor:
			values[i] = new(sql.NullString)
		case settingshistory.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SettingsHistory fields.
func (_m *SettingsHistory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case settingshistory.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case settingshistory.FieldSiteID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field site_id", values[i])
			} else if value.Valid {
				_m.SiteID = value.String
			}
		case settingshistory.FieldSettings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field settings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Settings); err != nil {
					return fmt.Errorf("unmarshal field settings: %w", err)
				}
			}
		case settingshistory.FieldActor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actor", values[i])
			} else if value.Valid {
				_m.Actor = value.String
			}
		case settingshistory.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SettingsHistory.
// This includes values selected through modifiers, order, etc.
func (_m *SettingsHistory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySite queries the "site" edge of the SettingsHistory entity.
func (_m *SettingsHistory) QuerySite() *SiteQuery {
	return NewSettingsHistoryClient(_m.config).QuerySite(_m)
}

// Update returns a builder for updating this SettingsHistory.
// Note that you need to call SettingsHistory.Unwrap() before calling this method if this SettingsHistory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SettingsHistory) Update() *SettingsHistoryUpdateOne {
	return NewSettingsHistoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SettingsHistory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SettingsHistory) Unwrap() *SettingsHistory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SettingsHistory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SettingsHistory) String() string {
	var builder strings.Builder
	builder.WriteString("SettingsHistory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("site_id=")
	builder.WriteString(_m.SiteID)
	builder.WriteString(", ")
	builder.WriteString("settings=")
	builder.WriteString(fmt.Sprintf("%v", _m.Settings))
	builder.WriteString(", ")
	builder.WriteString("actor=")
	builder.WriteString(_m.Actor)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SettingsHistories is a parsable slice of SettingsHistory.
type SettingsHistories []*SettingsHistory
