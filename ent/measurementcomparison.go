// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/metrics-lab/staticpress/ent/measurementcomparison"
	"github.com/metrics-lab/staticpress/ent/site"
)

// MeasurementComparison is the model entity for the MeasurementComparison schema.
type MeasurementComparison struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SiteID holds the value of the "site_id" field.
	SiteID string `json:"site_id,omitempty"`
	// BuildID holds the value of the "build_id" field.
	BuildID *string `json:"build_id,omitempty"`
	// Strategy holds the value of the "strategy" field.
	Strategy measurementcomparison.Strategy `json:"strategy,omitempty"`
	// OriginalScore holds the value of the "original_score" field.
	OriginalScore float64 `json:"original_score,omitempty"`
	// OptimizedScore holds the value of the "optimized_score" field.
	OptimizedScore float64 `json:"optimized_score,omitempty"`
	// Core vitals for the origin: lcp_ms, fcp_ms, cls, tbt_ms, ttfb_ms
	OriginalVitals map[string]float64 `json:"original_vitals,omitempty"`
	// OptimizedVitals holds the value of the "optimized_vitals" field.
	OptimizedVitals map[string]float64 `json:"optimized_vitals,omitempty"`
	// Per-metric improvement percentages
	Improvements map[string]float64 `json:"improvements,omitempty"`
	// PayloadSavingsBytes holds the value of the "payload_savings_bytes" field.
	PayloadSavingsBytes int64 `json:"payload_savings_bytes,omitempty"`
	// Raw measurement endpoint response for the origin
	OriginalRaw map[string]interface{} `json:"original_raw,omitempty"`
	// OptimizedRaw holds the value of the "optimized_raw" field.
	OptimizedRaw map[string]interface{} `json:"optimized_raw,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MeasurementComparisonQuery when eager-loading is set.
	Edges        MeasurementComparisonEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MeasurementComparisonEdges holds the relations/edges for other nodes in the graph.
type MeasurementComparisonEdges struct {
	// Site holds the value of the site edge.
	Site *Site `json:"site,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SiteOrErr returns the Site value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MeasurementComparisonEdges) SiteOrErr() (*Site, error) {
	if e.Site != nil {
		return e.Site, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: site.Label}
	}
	return nil, &NotLoadedError{edge: "site"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MeasurementComparison) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case measurementcomparison.FieldOriginalVitals, measurementcomparison.FieldOptimizedVitals, measurementcomparison.FieldImprovements, measurementcomparison.FieldOriginalRaw, measurementcomparison.FieldOptimizedRaw:
			values[i] = new([]byte)
		case measurementcomparison.FieldOriginalScore, measurementcomparison.FieldOptimizedScore:
			values[i] = new(sql.NullFloat64)
		case measurementcomparison.FieldPayloadSavingsBytes:
			values[i] = new(sql.NullInt64)
		case measurementcomparison.FieldID, measurementcomparison.FieldSiteID, measurementcomparison.FieldBuildID, measurementcomparison.FieldStrategy:
			values[i] = new(sql.NullString)
		case measurementcomparison.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MeasurementComparison fields.
func (_m *MeasurementComparison) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case measurementcomparison.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case measurementcomparison.FieldSiteID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field site_id", values[i])
			} else if value.Valid {
				_m.SiteID = value.String
			}
		case measurementcomparison.FieldBuildID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field build_id", values[i])
			} else if value.Valid {
				_m.BuildID = new(string)
				*_m.BuildID = value.String
			}
		case measurementcomparison.FieldStrategy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field strategy", values[i])
			} else if value.Valid {
				_m.Strategy = measurementcomparison.Strategy(value.String)
			}
		case measurementcomparison.FieldOriginalScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field original_score", values[i])
			} else if value.Valid {
				_m.OriginalScore = value.Float64
			}
		case measurementcomparison.FieldOptimizedScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field optimized_score", values[i])
			} else if value.Valid {
				_m.OptimizedScore = value.Float64
			}
		case measurementcomparison.FieldOriginalVitals:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field original_vitals", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.OriginalVitals); err != nil {
					return fmt.Errorf("unmarshal field original_vitals: %w", err)
				}
			}
		case measurementcomparison.FieldOptimizedVitals:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field optimized_vitals", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.OptimizedVitals); err != nil {
					return fmt.Errorf("unmarshal field optimized_vitals: %w", err)
				}
			}
		case measurementcomparison.FieldImprovements:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field improvements", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Improvements); err != nil {
					return fmt.Errorf("unmarshal field improvements: %w", err)
				}
			}
		case measurementcomparison.FieldPayloadSavingsBytes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field payload_savings_bytes", values[i])
			} else if value.Valid {
				_m.PayloadSavingsBytes = value.Int64
			}
		case measurementcomparison.FieldOriginalRaw:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field original_raw", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.OriginalRaw); err != nil {
					return fmt.Errorf("unmarshal field original_raw: %w", err)
				}
			}
		case measurementcomparison.FieldOptimizedRaw:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field optimized_raw", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.OptimizedRaw); err != nil {
					return fmt.Errorf("unmarshal field optimized_raw: %w", err)
				}
			}
		case measurementcomparison.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the MeasurementComparison.
// This includes values selected through modifiers, order, etc.
func (_m *MeasurementComparison) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySite queries the "site" edge of the MeasurementComparison entity.
func (_m *MeasurementComparison) QuerySite() *SiteQuery {
	return NewMeasurementComparisonClient(_m.config).QuerySite(_m)
}

// Update returns a builder for updating this MeasurementComparison.
// Note that you need to call MeasurementComparison.Unwrap() before calling this method if this MeasurementComparison
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MeasurementComparison) Update() *MeasurementComparisonUpdateOne {
	return NewMeasurementComparisonClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MeasurementComparison entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MeasurementComparison) Unwrap() *MeasurementComparison {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MeasurementComparison is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MeasurementComparison) String() string {
	var builder strings.Builder
	builder.WriteString("MeasurementComparison(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("site_id=")
	builder.WriteString(_m.SiteID)
	builder.WriteString(", ")
	if v := _m.BuildID; v != nil {
		builder.WriteString("build_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("strategy=")
	builder.WriteString(fmt.Sprintf("%v", _m.Strategy))
	builder.WriteString(", ")
	builder.WriteString("original_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.OriginalScore))
	builder.WriteString(", ")
	builder.WriteString("optimized_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.OptimizedScore))
	builder.WriteString(", ")
	builder.WriteString("original_vitals=")
	builder.WriteString(fmt.Sprintf("%v", _m.OriginalVitals))
	builder.WriteString(", ")
	builder.WriteString("optimized_vitals=")
	builder.WriteString(fmt.Sprintf("%v", _m.OptimizedVitals))
	builder.WriteString(", ")
	builder.WriteString("improvements=")
	builder.WriteString(fmt.Sprintf("%v", _m.Improvements))
	builder.WriteString(", ")
	builder.WriteString("payload_savings_bytes=")
	builder.WriteString(fmt.Sprintf("%v", _m.PayloadSavingsBytes))
	builder.WriteString(", ")
	builder.WriteString("original_raw=")
	builder.WriteString(fmt.Sprintf("%v", _m.OriginalRaw))
	builder.WriteString(", ")
	builder.WriteString("optimized_raw=")
	builder.WriteString(fmt.Sprintf("%v", _m.OptimizedRaw))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MeasurementComparisons is a parsable slice of MeasurementComparison.
type MeasurementComparisons []*MeasurementComparison
