// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/metrics-lab/staticpress/ent/alertrule"
	"github.com/metrics-lab/staticpress/ent/site"
)

// AlertRule is the model entity for the AlertRule schema.
type AlertRule struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SiteID holds the value of the "site_id" field.
	SiteID string `json:"site_id,omitempty"`
	// Metric name, e.g. optimized_score or lcp_ms
	Metric string `json:"metric,omitempty"`
	// Operator holds the value of the "operator" field.
	Operator alertrule.Operator `json:"operator,omitempty"`
	// Threshold holds the value of the "threshold" field.
	Threshold float64 `json:"threshold,omitempty"`
	// Enabled holds the value of the "enabled" field.
	Enabled bool `json:"enabled,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AlertRuleQuery when eager-loading is set.
	Edges        AlertRuleEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AlertRuleEdges holds the relations/edges for other nodes in the graph.
type AlertRuleEdges struct {
	// Site holds the value of the site edge.
	Site *Site `json:"site,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SiteOrErr returns the Site value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AlertRuleEdges) SiteOrErr() (*Site, error) {
	if e.Site != nil {
		return e.Site, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: site.Label}
	}
	return nil, &NotLoadedError{edge: "site"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AlertRule) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case alertrule.FieldEnabled:
			values[i] = new(sql.NullBool)
		case alertrule.FieldThreshold:
			values[i] = new(sql.NullFloat64)
		case alertrule.FieldID, alertrule.FieldSiteID, alertrule.FieldMetric, alertrule.FieldOperator:
			values[i] = new(sql.NullString)
		case alertrule.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AlertRule fields.
func (_m *AlertRule) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case alertrule.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case alertrule.FieldSiteID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field site_id", values[i])
			} else if value.Valid {
				_m.SiteID = value.String
			}
		case alertrule.FieldMetric:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field metric", values[i])
			} else if value.Valid {
				_m.Metric = value.String
			}
		case alertrule.FieldOperator:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field operator", values[i])
			} else if value.Valid {
				_m.Operator = alertrule.Operator(value.String)
			}
		case alertrule.FieldThreshold:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field threshold", values[i])
			} else if value.Valid {
				_m.Threshold = value.Float64
			}
		case alertrule.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		case alertrule.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AlertRule.
// This includes values selected through modifiers, order, etc.
func (_m *AlertRule) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySite queries the "site" edge of the AlertRule entity.
func (_m *AlertRule) QuerySite() *SiteQuery {
	return NewAlertRuleClient(_m.config).QuerySite(_m)
}

// Update returns a builder for updating this AlertRule.
// Note that you need to call AlertRule.Unwrap() before calling this method if this AlertRule
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AlertRule) Update() *AlertRuleUpdateOne {
	return NewAlertRuleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AlertRule entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AlertRule) Unwrap() *AlertRule {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AlertRule is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AlertRule) String() string {
	var builder strings.Builder
	builder.WriteString("AlertRule(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("site_id=")
	builder.WriteString(_m.SiteID)
	builder.WriteString(", ")
	builder.WriteString("metric=")
	builder.WriteString(_m.Metric)
	builder.WriteString(", ")
	builder.WriteString("operator=")
	builder.WriteString(fmt.Sprintf("%v", _m.Operator))
	builder.WriteString(", ")
	builder.WriteString("threshold=")
	builder.WriteString(fmt.Sprintf("%v", _m.Threshold))
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enabled))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AlertRules is a parsable slice of AlertRule.
type AlertRules []*AlertRule
