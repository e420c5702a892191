// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/metrics-lab/staticpress/ent/alertlog"
	"github.com/metrics-lab/staticpress/ent/site"
)

// AlertLog is the model entity for the AlertLog schema.
type AlertLog struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SiteID holds the value of the "site_id" field.
	SiteID string `json:"site_id,omitempty"`
	// RuleID holds the value of the "rule_id" field.
	RuleID string `json:"rule_id,omitempty"`
	// Message holds the value of the "message" field.
	Message string `json:"message,omitempty"`
	// ObservedValue holds the value of the "observed_value" field.
	ObservedValue float64 `json:"observed_value,omitempty"`
	// FiredAt holds the value of the "fired_at" field.
	FiredAt time.Time `json:"fired_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AlertLogQuery when eager-loading is set.
	Edges        AlertLogEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AlertLogEdges holds the relations/edges for other nodes in the graph.
type AlertLogEdges struct {
	// Site holds the value of the site edge.
	Site *Site `json:"site,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SiteOrErr returns the Site value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AlertLogEdges) SiteOrErr() (*Site, error) {
	if e.Site != nil {
		return e.Site, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: site.Label}
	}
	return nil, &NotLoadedError{edge: "site"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AlertLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case alertlog.FieldObservedValue:
			values[i] = new(sql.NullFloat64)
		case alertlog.FieldID, alertlog.FieldSiteID, alertlog.FieldRuleID, alertlog.FieldMessage:
			values[i] = new(sql.NullString)
		case alertlog.FieldFiredAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AlertLog fields.
func (_m *AlertLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case alertlog.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case alertlog.FieldSiteID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field site_id", values[i])
			} else if value.Valid {
				_m.SiteID = value.String
			}
		case alertlog.FieldRuleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rule_id", values[i])
			} else if value.Valid {
				_m.RuleID = value.String
			}
		case alertlog.FieldMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message", values[i])
			} else if value.Valid {
				_m.Message = value.String
			}
		case alertlog.FieldObservedValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field observed_value", values[i])
			} else if value.Valid {
				_m.ObservedValue = value.Float64
			}
		case alertlog.FieldFiredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field fired_at", values[i])
			} else if value.Valid {
				_m.FiredAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AlertLog.
// This includes values selected through modifiers, order, etc.
func (_m *AlertLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySite queries the "site" edge of the AlertLog entity.
func (_m *AlertLog) QuerySite() *SiteQuery {
	return NewAlertLogClient(_m.config).QuerySite(_m)
}

// Update returns a builder for updating this AlertLog.
// Note that you need to call AlertLog.Unwrap() before calling this method if this AlertLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AlertLog) Update() *AlertLogUpdateOne {
	return NewAlertLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AlertLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AlertLog) Unwrap() *AlertLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AlertLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AlertLog) String() string {
	var builder strings.Builder
	builder.WriteString("AlertLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("site_id=")
	builder.WriteString(_m.SiteID)
	builder.WriteString(", ")
	builder.WriteString("rule_id=")
	builder.WriteString(_m.RuleID)
	builder.WriteString(", ")
	builder.WriteString("message=")
	builder.WriteString(_m.Message)
	builder.WriteString(", ")
	builder.WriteString("observed_value=")
	builder.WriteString(fmt.Sprintf("%v", _m.ObservedValue))
	builder.WriteString(", ")
	builder.WriteString("fired_at=")
	builder.WriteString(_m.FiredAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AlertLogs is a parsable slice of AlertLog.
type AlertLogs []*AlertLog
