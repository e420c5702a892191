// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/metrics-lab/staticpress/ent/agentrun"
	"github.com/metrics-lab/staticpress/ent/site"
)

// AgentRun is the model entity for the AgentRun schema.
type AgentRun struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SiteID holds the value of the "site_id" field.
	SiteID string `json:"site_id,omitempty"`
	// Phase holds the value of the "phase" field.
	Phase agentrun.Phase `json:"phase,omitempty"`
	// Monotonically non-decreasing iteration counter
	Iteration int `json:"iteration,omitempty"`
	// MaxIterations holds the value of the "max_iterations" field.
	MaxIterations int `json:"max_iterations,omitempty"`
	// Milliseconds spent per phase, keyed phase:iteration
	PhaseTimings map[string]int64 `json:"phase_timings,omitempty"`
	// LastError holds the value of the "last_error" field.
	LastError *string `json:"last_error,omitempty"`
	// Full resumable state written before each build phase
	Checkpoint map[string]interface{} `json:"checkpoint,omitempty"`
	// CurrentBuildID holds the value of the "current_build_id" field.
	CurrentBuildID *string `json:"current_build_id,omitempty"`
	// On-disk working directory; presence gates resumability
	WorkspaceDir *string `json:"workspace_dir,omitempty"`
	// pass, needs-changes, or critical-failure from the last review
	FinalVerdict *string `json:"final_verdict,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentRunQuery when eager-loading is set.
	Edges        AgentRunEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentRunEdges holds the relations/edges for other nodes in the graph.
type AgentRunEdges struct {
	// Site holds the value of the site edge.
	Site *Site `json:"site,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SiteOrErr returns the Site value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentRunEdges) SiteOrErr() (*Site, error) {
	if e.Site != nil {
		return e.Site, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: site.Label}
	}
	return nil, &NotLoadedError{edge: "site"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentrun.FieldPhaseTimings, agentrun.FieldCheckpoint:
			values[i] = new([]byte)
		case agentrun.FieldIteration, agentrun.FieldMaxIterations:
			values[i] = new(sql.NullInt64)
		case agentrun.FieldID, agentrun.FieldSiteID, agentrun.FieldPhase, agentrun.FieldLastError, agentrun.FieldCurrentBuildID, agentrun.FieldWorkspaceDir, agentrun.FieldFinalVerdict:
			values[i] = new(sql.NullString)
		case agentrun.FieldCreatedAt, agentrun.FieldUpdatedAt, agentrun.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentRun fields.
func (_m *AgentRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentrun.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agentrun.FieldSiteID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field site_id", values[i])
			} else if value.Valid {
				_m.SiteID = value.String
			}
		case agentrun.FieldPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase", values[i])
			} else if value.Valid {
				_m.Phase = agentrun.Phase(value.String)
			}
		case agentrun.FieldIteration:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field iteration", values[i])
			} else if value.Valid {
				_m.Iteration = int(value.Int64)
			}
		case agentrun.FieldMaxIterations:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_iterations", values[i])
			} else if value.Valid {
				_m.MaxIterations = int(value.Int64)
			}
		case agentrun.FieldPhaseTimings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field phase_timings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PhaseTimings); err != nil {
					return fmt.Errorf("unmarshal field phase_timings: %w", err)
				}
			}
		case agentrun.FieldLastError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_error", values[i])
			} else if value.Valid {
				_m.LastError = new(string)
				*_m.LastError = value.String
			}
		case agentrun.FieldCheckpoint:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field checkpoint", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Checkpoint); err != nil {
					return fmt.Errorf("unmarshal field checkpoint: %w", err)
				}
			}
		case agentrun.FieldCurrentBuildID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_build_id", values[i])
			} else if value.Valid {
				_m.CurrentBuildID = new(string)
				*_m.CurrentBuildID = value.String
			}
		case agentrun.FieldWorkspaceDir:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_dir", values[i])
			} else if value.Valid {
				_m.WorkspaceDir = new(string)
				*_m.WorkspaceDir = value.String
			}
		case agentrun.FieldFinalVerdict:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field final_verdict", values[i])
			} else if value.Valid {
				_m.FinalVerdict = new(string)
				*_m.FinalVerdict = value.String
			}
		case agentrun.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case agentrun.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case agentrun.FieldCompletedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AgentRun.
// This includes values selected through modifiers, order, etc.
func (_m *AgentRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySite queries the "site" edge of the AgentRun entity.
func (_m *AgentRun) QuerySite() *SiteQuery {
	return NewAgentRunClient(_m.config).QuerySite(_m)
}

// Update returns a builder for updating this AgentRun.
// Note that you need to call AgentRun.Unwrap() before calling this method if this AgentRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentRun) Update() *AgentRunUpdateOne {
	return NewAgentRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentRun) Unwrap() *AgentRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentRun) String() string {
	var builder strings.Builder
	builder.WriteString("AgentRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("site_id=")
	builder.WriteString(_m.SiteID)
	builder.WriteString(", ")
	builder.WriteString("phase=")
	builder.WriteString(fmt.Sprintf("%v", _m.Phase))
	builder.WriteString(", ")
	builder.WriteString("iteration=")
	builder.WriteString(fmt.Sprintf("%v", _m.Iteration))
	builder.WriteString(", ")
	builder.WriteString("max_iterations=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxIterations))
	builder.WriteString(", ")
	builder.WriteString("phase_timings=")
	builder.WriteString(fmt.Sprintf("%v", _m.PhaseTimings))
	builder.WriteString(", ")
	if v := _m.LastError; v != nil {
		builder.WriteString("last_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("checkpoint=")
	builder.WriteString(fmt.Sprintf("%v", _m.Checkpoint))
	builder.WriteString(", ")
	if v := _m.CurrentBuildID; v != nil {
		builder.WriteString("current_build_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.WorkspaceDir; v != nil {
		builder.WriteString("workspace_dir=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FinalVerdict; v != nil {
		builder.WriteString("final_verdict=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// AgentRuns is a parsable slice of AgentRun.
type AgentRuns []*AgentRun
