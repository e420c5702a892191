// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/metrics-lab/staticpress/ent/measurementcomparison"
	"github.com/metrics-lab/staticpress/ent/site"
)

// MeasurementComparisonCreate is the builder for creating a MeasurementComparison entity.
type MeasurementComparisonCreate struct {
	config
	mutation *MeasurementComparisonMutation
	hooks    []Hook
}

// SetSiteID sets the "site_id" field.
func (_c *MeasurementComparisonCreate) SetSiteID(v string) *MeasurementComparisonCreate {
	_c.mutation.SetSiteID(v)
	return _c
}

// SetBuildID sets the "build_id" field.
func (_c *MeasurementComparisonCreate) SetBuildID(v string) *MeasurementComparisonCreate {
	_c.mutation.SetBuildID(v)
	return _c
}

// SetNillableBuildID sets the "build_id" field if the given value is not nil.
func (_c *MeasurementComparisonCreate) SetNillableBuildID(v *string) *MeasurementComparisonCreate {
	if v != nil {
		_c.SetBuildID(*v)
	}
	return _c
}

// SetStrategy sets the "strategy" field.
func (_c *MeasurementComparisonCreate) SetStrategy(v measurementcomparison.Strategy) *MeasurementComparisonCreate {
	_c.mutation.SetStrategy(v)
	return _c
}

// SetOriginalScore sets the "original_score" field.
func (_c *MeasurementComparisonCreate) SetOriginalScore(v float64) *MeasurementComparisonCreate {
	_c.mutation.SetOriginalScore(v)
	return _c
}

// SetOptimizedScore sets the "optimized_score" field.
func (_c *MeasurementComparisonCreate) SetOptimizedScore(v float64) *MeasurementComparisonCreate {
	_c.mutation.SetOptimizedScore(v)
	return _c
}

// SetOriginalVitals sets the "original_vitals" field.
func (_c *MeasurementComparisonCreate) SetOriginalVitals(v map[string]float64) *MeasurementComparisonCreate {
	_c.mutation.SetOriginalVitals(v)
	return _c
}

// SetOptimizedVitals sets the "optimized_vitals" field.
func (_c *MeasurementComparisonCreate) SetOptimizedVitals(v map[string]float64) *MeasurementComparisonCreate {
	_c.mutation.SetOptimizedVitals(v)
	return _c
}

// SetImprovements sets the "improvements" field.
func (_c *MeasurementComparisonCreate) SetImprovements(v map[string]float64) *MeasurementComparisonCreate {
	_c.mutation.SetImprovements(v)
	return _c
}

// SetPayloadSavingsBytes sets the "payload_savings_bytes" field.
func (_c *MeasurementComparisonCreate) SetPayloadSavingsBytes(v int64) *MeasurementComparisonCreate {
	_c.mutation.SetPayloadSavingsBytes(v)
	return _c
}

// SetNillablePayloadSavingsBytes sets the "payload_savings_bytes" field if the given value is not nil.
func (_c *MeasurementComparisonCreate) SetNillablePayloadSavingsBytes(v *int64) *MeasurementComparisonCreate {
	if v != nil {
		_c.SetPayloadSavingsBytes(*v)
	}
	return _c
}

// SetOriginalRaw sets the "original_raw" field.
func (_c *MeasurementComparisonCreate) SetOriginalRaw(v map[string]interface{}) *MeasurementComparisonCreate {
	_c.mutation.SetOriginalRaw(v)
	return _c
}

// SetOptimizedRaw sets the "optimized_raw" field.
func (_c *MeasurementComparisonCreate) SetOptimizedRaw(v map[string]interface{}) *MeasurementComparisonCreate {
	_c.mutation.SetOptimizedRaw(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MeasurementComparisonCreate) SetCreatedAt(v time.Time) *MeasurementComparisonCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MeasurementComparisonCreate) SetNillableCreatedAt(v *time.Time) *MeasurementComparisonCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MeasurementComparisonCreate) SetID(v string) *MeasurementComparisonCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSite sets the "site" edge to the Site entity.
func (_c *MeasurementComparisonCreate) SetSite(v *Site) *MeasurementComparisonCreate {
	return _c.SetSiteID(v.ID)
}

// Mutation returns the MeasurementComparisonMutation object of the builder.
func (_c *MeasurementComparisonCreate) Mutation() *MeasurementComparisonMutation {
	return _c.mutation
}

// Save creates the MeasurementComparison in the database.
func (_c *MeasurementComparisonCreate) Save(ctx context.Context) (*MeasurementComparison, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MeasurementComparisonCreate) SaveX(ctx context.Context) *MeasurementComparison {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MeasurementComparisonCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MeasurementComparisonCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MeasurementComparisonCreate) defaults() {
	if _, ok := _c.mutation.PayloadSavingsBytes(); !ok {
		v := measurementcomparison.DefaultPayloadSavingsBytes
		_c.mutation.SetPayloadSavingsBytes(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := measurementcomparison.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MeasurementComparisonCreate) check() error {
	if _, ok := _c.mutation.SiteID(); !ok {
		return &ValidationError{Name: "site_id", err: errors.New(`ent: missing required field "MeasurementComparison.site_id"`)}
	}
	if _, ok := _c.mutation.Strategy(); !ok {
		return &ValidationError{Name: "strategy", err: errors.New(`ent: missing required field "MeasurementComparison.strategy"`)}
	}
	if v, ok := _c.mutation.Strategy(); ok {
		if err := measurementcomparison.StrategyValidator(v); err != nil {
			return &ValidationError{Name: "strategy", err: fmt.Errorf(`ent: validator failed for field "MeasurementComparison.strategy": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OriginalScore(); !ok {
		return &ValidationError{Name: "original_score", err: errors.New(`ent: missing required field "MeasurementComparison.original_score"`)}
	}
	if _, ok := _c.mutation.OptimizedScore(); !ok {
		return &ValidationError{Name: "optimized_score", err: errors.New(`ent: missing required field "MeasurementComparison.optimized_score"`)}
	}
	if _, ok := _c.mutation.PayloadSavingsBytes(); !ok {
		return &ValidationError{Name: "payload_savings_bytes", err: errors.New(`ent: missing required field "MeasurementComparison.payload_savings_bytes"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MeasurementComparison.created_at"`)}
	}
	if len(_c.mutation.SiteIDs()) == 0 {
		return &ValidationError{Name: "site", err: errors.New(`ent: missing required edge "MeasurementComparison.site"`)}
	}
	return nil
}

func (_c *MeasurementComparisonCreate) sqlSave(ctx context.Context) (*MeasurementComparison, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected MeasurementComparison.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MeasurementComparisonCreate) createSpec() (*MeasurementComparison, *sqlgraph.CreateSpec) {
	var (
		_node = &MeasurementComparison{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(measurementcomparison.Table, sqlgraph.NewFieldSpec(measurementcomparison.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.BuildID(); ok {
		_spec.SetField(measurementcomparison.FieldBuildID, field.TypeString, value)
		_node.BuildID = &value
	}
	if value, ok := _c.mutation.Strategy(); ok {
		_spec.SetField(measurementcomparison.FieldStrategy, field.TypeEnum, value)
		_node.Strategy = value
	}
	if value, ok := _c.mutation.OriginalScore(); ok {
		_spec.SetField(measurementcomparison.FieldOriginalScore, field.TypeFloat64, value)
		_node.OriginalScore = value
	}
	if value, ok := _c.mutation.OptimizedScore(); ok {
		_spec.SetField(measurementcomparison.FieldOptimizedScore, field.TypeFloat64, value)
		_node.OptimizedScore = value
	}
	if value, ok := _c.mutation.OriginalVitals(); ok {
		_spec.SetField(measurementcomparison.FieldOriginalVitals, field.TypeJSON, value)
		_node.OriginalVitals = value
	}
	if value, ok := _c.mutation.OptimizedVitals(); ok {
		_spec.SetField(measurementcomparison.FieldOptimizedVitals, field.TypeJSON, value)
		_node.OptimizedVitals = value
	}
	if value, ok := _c.mutation.Improvements(); ok {
		_spec.SetField(measurementcomparison.FieldImprovements, field.TypeJSON, value)
		_node.Improvements = value
	}
	if value, ok := _c.mutation.PayloadSavingsBytes(); ok {
		_spec.SetField(measurementcomparison.FieldPayloadSavingsBytes, field.TypeInt64, value)
		_node.PayloadSavingsBytes = value
	}
	if value, ok := _c.mutation.OriginalRaw(); ok {
		_spec.SetField(measurementcomparison.FieldOriginalRaw, field.TypeJSON, value)
		_node.OriginalRaw = value
	}
	if value, ok := _c.mutation.OptimizedRaw(); ok {
		_spec.SetField(measurementcomparison.FieldOptimizedRaw, field.TypeJSON, value)
		_node.OptimizedRaw = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(measurementcomparison.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SiteIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   measurementcomparison.SiteTable,
			Columns: []string{measurementcomparison.SiteColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(site.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SiteID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MeasurementComparisonCreateBulk is the builder for creating many MeasurementComparison entities in bulk.
type MeasurementComparisonCreateBulk struct {
	config
	err      error
	builders []*MeasurementComparisonCreate
}

// Save creates the MeasurementComparison entities in the database.
func (_c *MeasurementComparisonCreateBulk) Save(ctx context.Context) ([]*MeasurementComparison, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MeasurementComparison, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MeasurementComparisonMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *MeasurementComparisonCreateBulk) SaveX(ctx context.Context) []*MeasurementComparison {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MeasurementComparisonCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MeasurementComparisonCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
