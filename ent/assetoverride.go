// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/metrics-lab/staticpress/ent/assetoverride"
	"github.com/metrics-lab/staticpress/ent/site"
)

// AssetOverride is the model entity for the AssetOverride schema.
type AssetOverride struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SiteID holds the value of the "site_id" field.
	SiteID string `json:"site_id,omitempty"`
	// Glob: * matches within a path segment, ** across segments
	URLPattern string `json:"url_pattern,omitempty"`
	// Optional restriction: html, css, js, image, font
	AssetClass *string `json:"asset_class,omitempty"`
	// Sparse settings merged for matching assets
	Settings map[string]interface{} `json:"settings,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AssetOverrideQuery when eager-loading is set.
	Edges        AssetOverrideEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AssetOverrideEdges holds the relations/edges for other nodes in the graph.
type AssetOverrideEdges struct {
	// Site holds the value of the site edge.
	Site *Site `json:"site,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SiteOrErr returns the Site value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AssetOverrideEdges) SiteOrErr() (*Site, error) {
	if e.Site != nil {
		return e.Site, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: site.Label}
	}
	return nil, &NotLoadedError{edge: "site"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AssetOverride) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case assetoverride.FieldSettings:
			values[i] = new([]byte)
		case assetoverride.FieldID, assetoverride.FieldSiteID, assetoverride.FieldURLPattern, assetoverride.FieldAssetClass:
			values[i] = new(sql.NullString)
		case assetoverride.FieldCreatedAt, assetoverride.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AssetOverride fields.
func (_m *AssetOverride) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case assetoverride.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case assetoverride.FieldSiteID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field site_id", values[i])
			} else if value.Valid {
				_m.SiteID = value.String
			}
		case assetoverride.FieldURLPattern:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url_pattern", values[i])
			} else if value.Valid {
				_m.URLPattern = value.String
			}
		case assetoverride.FieldAssetClass:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field asset_class", values[i])
			} else if value.Valid {
				_m.AssetClass = new(string)
				*_m.AssetClass = value.String
			}
		case assetoverride.FieldSettings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field settings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Settings); err != nil {
					return fmt.Errorf("unmarshal field settings: %w", err)
				}
			}
		case assetoverride.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case assetoverride.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AssetOverride.
// This includes values selected through modifiers, order, etc.
func (_m *AssetOverride) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySite queries the "site" edge of the AssetOverride entity.
func (_m *AssetOverride) QuerySite() *SiteQuery {
	return NewAssetOverrideClient(_m.config).QuerySite(_m)
}

// Update returns a builder for updating this AssetOverride.
// Note that you need to call AssetOverride.Unwrap() before calling this method if this AssetOverride
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AssetOverride) Update() *AssetOverrideUpdateOne {
	return NewAssetOverrideClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AssetOverride entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AssetOverride) Unwrap() *AssetOverride {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AssetOverride is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AssetOverride) String() string {
	var builder strings.Builder
	builder.WriteString("AssetOverride(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("site_id=")
	builder.WriteString(_m.SiteID)
	builder.WriteString(", ")
	builder.WriteString("url_pattern=")
	builder.WriteString(_m.URLPattern)
	builder.WriteString(", ")
	if v := _m.AssetClass; v != nil {
		builder.WriteString("asset_class=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("settings=")
	builder.WriteString(fmt.Sprintf("%v", _m.Settings))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AssetOverrides is a parsable slice of AssetOverride.
type AssetOverrides []*AssetOverride
