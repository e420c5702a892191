// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/metrics-lab/staticpress/ent/measurementcomparison"
	"github.com/metrics-lab/staticpress/ent/predicate"
	"github.com/metrics-lab/staticpress/ent/site"
)

// MeasurementComparisonUpdate is the builder for updating MeasurementComparison entities.
type MeasurementComparisonUpdate struct {
	config
	hooks    []Hook
	mutation *MeasurementComparisonMutation
}

// Where appends a list predicates to the MeasurementComparisonUpdate builder.
func (_u *MeasurementComparisonUpdate) Where(ps ...predicate.MeasurementComparison) *MeasurementComparisonUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSiteID sets the "site_id" field.
func (_u *MeasurementComparisonUpdate) SetSiteID(v string) *MeasurementComparisonUpdate {
	_u.mutation.SetSiteID(v)
	return _u
}

// SetNillableSiteID sets the "site_id" field if the given value is not nil.
func (_u *MeasurementComparisonUpdate) SetNillableSiteID(v *string) *MeasurementComparisonUpdate {
	if v != nil {
		_u.SetSiteID(*v)
	}
	return _u
}

// SetBuildID sets the "build_id" field.
func (_u *MeasurementComparisonUpdate) SetBuildID(v string) *MeasurementComparisonUpdate {
	_u.mutation.SetBuildID(v)
	return _u
}

// SetNillableBuildID sets the "build_id" field if the given value is not nil.
func (_u *MeasurementComparisonUpdate) SetNillableBuildID(v *string) *MeasurementComparisonUpdate {
	if v != nil {
		_u.SetBuildID(*v)
	}
	return _u
}

// ClearBuildID clears the value of the "build_id" field.
func (_u *MeasurementComparisonUpdate) ClearBuildID() *MeasurementComparisonUpdate {
	_u.mutation.ClearBuildID()
	return _u
}

// SetStrategy sets the "strategy" field.
func (_u *MeasurementComparisonUpdate) SetStrategy(v measurementcomparison.Strategy) *MeasurementComparisonUpdate {
	_u.mutation.SetStrategy(v)
	return _u
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (_u *MeasurementComparisonUpdate) SetNillableStrategy(v *measurementcomparison.Strategy) *MeasurementComparisonUpdate {
	if v != nil {
		_u.SetStrategy(*v)
	}
	return _u
}

// SetOriginalScore sets the "original_score" field.
func (_u *MeasurementComparisonUpdate) SetOriginalScore(v float64) *MeasurementComparisonUpdate {
	_u.mutation.ResetOriginalScore()
	_u.mutation.SetOriginalScore(v)
	return _u
}

// SetNillableOriginalScore sets the "original_score" field if the given value is not nil.
func (_u *MeasurementComparisonUpdate) SetNillableOriginalScore(v *float64) *MeasurementComparisonUpdate {
	if v != nil {
		_u.SetOriginalScore(*v)
	}
	return _u
}

// AddOriginalScore adds value to the "original_score" field.
func (_u *MeasurementComparisonUpdate) AddOriginalScore(v float64) *MeasurementComparisonUpdate {
	_u.mutation.AddOriginalScore(v)
	return _u
}

// SetOptimizedScore sets the "optimized_score" field.
func (_u *MeasurementComparisonUpdate) SetOptimizedScore(v float64) *MeasurementComparisonUpdate {
	_u.mutation.ResetOptimizedScore()
	_u.mutation.SetOptimizedScore(v)
	return _u
}

// SetNillableOptimizedScore sets the "optimized_score" field if the given value is not nil.
func (_u *MeasurementComparisonUpdate) SetNillableOptimizedScore(v *float64) *MeasurementComparisonUpdate {
	if v != nil {
		_u.SetOptimizedScore(*v)
	}
	return _u
}

// AddOptimizedScore adds value to the "optimized_score" field.
func (_u *MeasurementComparisonUpdate) AddOptimizedScore(v float64) *MeasurementComparisonUpdate {
	_u.mutation.AddOptimizedScore(v)
	return _u
}

// SetOriginalVitals sets the "original_vitals" field.
func (_u *MeasurementComparisonUpdate) SetOriginalVitals(v map[string]float64) *MeasurementComparisonUpdate {
	_u.mutation.SetOriginalVitals(v)
	return _u
}

// ClearOriginalVitals clears the value of the "original_vitals" field.
func (_u *MeasurementComparisonUpdate) ClearOriginalVitals() *MeasurementComparisonUpdate {
	_u.mutation.ClearOriginalVitals()
	return _u
}

// SetOptimizedVitals sets the "optimized_vitals" field.
func (_u *MeasurementComparisonUpdate) SetOptimizedVitals(v map[string]float64) *MeasurementComparisonUpdate {
	_u.mutation.SetOptimizedVitals(v)
	return _u
}

// ClearOptimizedVitals clears the value of the "optimized_vitals" field.
func (_u *MeasurementComparisonUpdate) ClearOptimizedVitals() *MeasurementComparisonUpdate {
	_u.mutation.ClearOptimizedVitals()
	return _u
}

// SetImprovements sets the "improvements" field.
func (_u *MeasurementComparisonUpdate) SetImprovements(v map[string]float64) *MeasurementComparisonUpdate {
	_u.mutation.SetImprovements(v)
	return _u
}

// ClearImprovements clears the value of the "improvements" field.
func (_u *MeasurementComparisonUpdate) ClearImprovements() *MeasurementComparisonUpdate {
	_u.mutation.ClearImprovements()
	return _u
}

// SetPayloadSavingsBytes sets the "payload_savings_bytes" field.
func (_u *MeasurementComparisonUpdate) SetPayloadSavingsBytes(v int64) *MeasurementComparisonUpdate {
	_u.mutation.ResetPayloadSavingsBytes()
	_u.mutation.SetPayloadSavingsBytes(v)
	return _u
}

// SetNillablePayloadSavingsBytes sets the "payload_savings_bytes" field if the given value is not nil.
func (_u *MeasurementComparisonUpdate) SetNillablePayloadSavingsBytes(v *int64) *MeasurementComparisonUpdate {
	if v != nil {
		_u.SetPayloadSavingsBytes(*v)
	}
	return _u
}

// AddPayloadSavingsBytes adds value to the "payload_savings_bytes" field.
func (_u *MeasurementComparisonUpdate) AddPayloadSavingsBytes(v int64) *MeasurementComparisonUpdate {
	_u.mutation.AddPayloadSavingsBytes(v)
	return _u
}

// SetOriginalRaw sets the "original_raw" field.
func (_u *MeasurementComparisonUpdate) SetOriginalRaw(v map[string]interface{}) *MeasurementComparisonUpdate {
	_u.mutation.SetOriginalRaw(v)
	return _u
}

// ClearOriginalRaw clears the value of the "original_raw" field.
func (_u *MeasurementComparisonUpdate) ClearOriginalRaw() *MeasurementComparisonUpdate {
	_u.mutation.ClearOriginalRaw()
	return _u
}

// SetOptimizedRaw sets the "optimized_raw" field.
func (_u *MeasurementComparisonUpdate) SetOptimizedRaw(v map[string]interface{}) *MeasurementComparisonUpdate {
	_u.mutation.SetOptimizedRaw(v)
	return _u
}

// ClearOptimizedRaw clears the value of the "optimized_raw" field.
func (_u *MeasurementComparisonUpdate) ClearOptimizedRaw() *MeasurementComparisonUpdate {
	_u.mutation.ClearOptimizedRaw()
	return _u
}

// SetSite sets the "site" edge to the Site entity.
func (_u *MeasurementComparisonUpdate) SetSite(v *Site) *MeasurementComparisonUpdate {
	return _u.SetSiteID(v.ID)
}

// Mutation returns the MeasurementComparisonMutation object of the builder.
func (_u *MeasurementComparisonUpdate) Mutation() *MeasurementComparisonMutation {
	return _u.mutation
}

// ClearSite clears the "site" edge to the Site entity.
func (_u *MeasurementComparisonUpdate) ClearSite() *MeasurementComparisonUpdate {
	_u.mutation.ClearSite()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MeasurementComparisonUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MeasurementComparisonUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MeasurementComparisonUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MeasurementComparisonUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MeasurementComparisonUpdate) check() error {
	if v, ok := _u.mutation.Strategy(); ok {
		if err := measurementcomparison.StrategyValidator(v); err != nil {
			return &ValidationError{Name: "strategy", err: fmt.Errorf(`ent: validator failed for field "MeasurementComparison.strategy": %w`, err)}
		}
	}
	if _u.mutation.SiteCleared() && len(_u.mutation.SiteIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MeasurementComparison.site"`)
	}
	return nil
}

func (_u *MeasurementComparisonUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(measurementcomparison.Table, measurementcomparison.Columns, sqlgraph.NewFieldSpec(measurementcomparison.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BuildID(); ok {
		_spec.SetField(measurementcomparison.FieldBuildID, field.TypeString, value)
	}
	if _u.mutation.BuildIDCleared() {
		_spec.ClearField(measurementcomparison.FieldBuildID, field.TypeString)
	}
	if value, ok := _u.mutation.Strategy(); ok {
		_spec.SetField(measurementcomparison.FieldStrategy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OriginalScore(); ok {
		_spec.SetField(measurementcomparison.FieldOriginalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOriginalScore(); ok {
		_spec.AddField(measurementcomparison.FieldOriginalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.OptimizedScore(); ok {
		_spec.SetField(measurementcomparison.FieldOptimizedScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOptimizedScore(); ok {
		_spec.AddField(measurementcomparison.FieldOptimizedScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.OriginalVitals(); ok {
		_spec.SetField(measurementcomparison.FieldOriginalVitals, field.TypeJSON, value)
	}
	if _u.mutation.OriginalVitalsCleared() {
		_spec.ClearField(measurementcomparison.FieldOriginalVitals, field.TypeJSON)
	}
	if value, ok := _u.mutation.OptimizedVitals(); ok {
		_spec.SetField(measurementcomparison.FieldOptimizedVitals, field.TypeJSON, value)
	}
	if _u.mutation.OptimizedVitalsCleared() {
		_spec.ClearField(measurementcomparison.FieldOptimizedVitals, field.TypeJSON)
	}
	if value, ok := _u.mutation.Improvements(); ok {
		_spec.SetField(measurementcomparison.FieldImprovements, field.TypeJSON, value)
	}
	if _u.mutation.ImprovementsCleared() {
		_spec.ClearField(measurementcomparison.FieldImprovements, field.TypeJSON)
	}
	if value, ok := _u.mutation.PayloadSavingsBytes(); ok {
		_spec.SetField(measurementcomparison.FieldPayloadSavingsBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPayloadSavingsBytes(); ok {
		_spec.AddField(measurementcomparison.FieldPayloadSavingsBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.OriginalRaw(); ok {
		_spec.SetField(measurementcomparison.FieldOriginalRaw, field.TypeJSON, value)
	}
	if _u.mutation.OriginalRawCleared() {
		_spec.ClearField(measurementcomparison.FieldOriginalRaw, field.TypeJSON)
	}
	if value, ok := _u.mutation.OptimizedRaw(); ok {
		_spec.SetField(measurementcomparison.FieldOptimizedRaw, field.TypeJSON, value)
	}
	if _u.mutation.OptimizedRawCleared() {
		_spec.ClearField(measurementcomparison.FieldOptimizedRaw, field.TypeJSON)
	}
	if _u.mutation.SiteCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SiteIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{measurementcomparison.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MeasurementComparisonUpdateOne is the builder for updating a single MeasurementComparison entity.
type MeasurementComparisonUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MeasurementComparisonMutation
}

// SetSiteID sets the "site_id" field.
func (_u *MeasurementComparisonUpdateOne) SetSiteID(v string) *MeasurementComparisonUpdateOne {
	_u.mutation.SetSiteID(v)
	return _u
}

// SetNillableSiteID sets the "site_id" field if the given value is not nil.
func (_u *MeasurementComparisonUpdateOne) SetNillableSiteID(v *string) *MeasurementComparisonUpdateOne {
	if v != nil {
		_u.SetSiteID(*v)
	}
	return _u
}

// SetBuildID sets the "build_id" field.
func (_u *MeasurementComparisonUpdateOne) SetBuildID(v string) *MeasurementComparisonUpdateOne {
	_u.mutation.SetBuildID(v)
	return _u
}

// SetNillableBuildID sets the "build_id" field if the given value is not nil.
func (_u *MeasurementComparisonUpdateOne) SetNillableBuildID(v *string) *MeasurementComparisonUpdateOne {
	if v != nil {
		_u.SetBuildID(*v)
	}
	return _u
}

// ClearBuildID clears the value of the "build_id" field.
func (_u *MeasurementComparisonUpdateOne) ClearBuildID() *MeasurementComparisonUpdateOne {
	_u.mutation.ClearBuildID()
	return _u
}

// SetStrategy sets the "strategy" field.
func (_u *MeasurementComparisonUpdateOne) SetStrategy(v measurementcomparison.Strategy) *MeasurementComparisonUpdateOne {
	_u.mutation.SetStrategy(v)
	return _u
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (_u *MeasurementComparisonUpdateOne) SetNillableStrategy(v *measurementcomparison.Strategy) *MeasurementComparisonUpdateOne {
	if v != nil {
		_u.SetStrategy(*v)
	}
	return _u
}

// SetOriginalScore sets the "original_score" field.
func (_u *MeasurementComparisonUpdateOne) SetOriginalScore(v float64) *MeasurementComparisonUpdateOne {
	_u.mutation.ResetOriginalScore()
	_u.mutation.SetOriginalScore(v)
	return _u
}

// SetNillableOriginalScore sets the "original_score" field if the given value is not nil.
func (_u *MeasurementComparisonUpdateOne) SetNillableOriginalScore(v *float64) *MeasurementComparisonUpdateOne {
	if v != nil {
		_u.SetOriginalScore(*v)
	}
	return _u
}

// AddOriginalScore adds value to the "original_score" field.
func (_u *MeasurementComparisonUpdateOne) AddOriginalScore(v float64) *MeasurementComparisonUpdateOne {
	_u.mutation.AddOriginalScore(v)
	return _u
}

// SetOptimizedScore sets the "optimized_score" field.
func (_u *MeasurementComparisonUpdateOne) SetOptimizedScore(v float64) *MeasurementComparisonUpdateOne {
	_u.mutation.ResetOptimizedScore()
	_u.mutation.SetOptimizedScore(v)
	return _u
}

// SetNillableOptimizedScore sets the "optimized_score" field if the given value is not nil.
func (_u *MeasurementComparisonUpdateOne) SetNillableOptimizedScore(v *float64) *MeasurementComparisonUpdateOne {
	if v != nil {
		_u.SetOptimizedScore(*v)
	}
	return _u
}

// AddOptimizedScore adds value to the "optimized_score" field.
func (_u *MeasurementComparisonUpdateOne) AddOptimizedScore(v float64) *MeasurementComparisonUpdateOne {
	_u.mutation.AddOptimizedScore(v)
	return _u
}

// SetOriginalVitals sets the "original_vitals" field.
func (_u *MeasurementComparisonUpdateOne) SetOriginalVitals(v map[string]float64) *MeasurementComparisonUpdateOne {
	_u.mutation.SetOriginalVitals(v)
	return _u
}

// ClearOriginalVitals clears the value of the "original_vitals" field.
func (_u *MeasurementComparisonUpdateOne) ClearOriginalVitals() *MeasurementComparisonUpdateOne {
	_u.mutation.ClearOriginalVitals()
	return _u
}

// SetOptimizedVitals sets the "optimized_vitals" field.
func (_u *MeasurementComparisonUpdateOne) SetOptimizedVitals(v map[string]float64) *MeasurementComparisonUpdateOne {
	_u.mutation.SetOptimizedVitals(v)
	return _u
}

// ClearOptimizedVitals clears the value of the "optimized_vitals" field.
func (_u *MeasurementComparisonUpdateOne) ClearOptimizedVitals() *MeasurementComparisonUpdateOne {
	_u.mutation.ClearOptimizedVitals()
	return _u
}

// SetImprovements sets the "improvements" field.
func (_u *MeasurementComparisonUpdateOne) SetImprovements(v map[string]float64) *MeasurementComparisonUpdateOne {
	_u.mutation.SetImprovements(v)
	return _u
}

// ClearImprovements clears the value of the "improvements" field.
func (_u *MeasurementComparisonUpdateOne) ClearImprovements() *MeasurementComparisonUpdateOne {
	_u.mutation.ClearImprovements()
	return _u
}

// SetPayloadSavingsBytes sets the "payload_savings_bytes" field.
func (_u *MeasurementComparisonUpdateOne) SetPayloadSavingsBytes(v int64) *MeasurementComparisonUpdateOne {
	_u.mutation.ResetPayloadSavingsBytes()
	_u.mutation.SetPayloadSavingsBytes(v)
	return _u
}

// SetNillablePayloadSavingsBytes sets the "payload_savings_bytes" field if the given value is not nil.
func (_u *MeasurementComparisonUpdateOne) SetNillablePayloadSavingsBytes(v *int64) *MeasurementComparisonUpdateOne {
	if v != nil {
		_u.SetPayloadSavingsBytes(*v)
	}
	return _u
}

// AddPayloadSavingsBytes adds value to the "payload_savings_bytes" field.
func (_u *MeasurementComparisonUpdateOne) AddPayloadSavingsBytes(v int64) *MeasurementComparisonUpdateOne {
	_u.mutation.AddPayloadSavingsBytes(v)
	return _u
}

// SetOriginalRaw sets the "original_raw" field.
func (_u *MeasurementComparisonUpdateOne) SetOriginalRaw(v map[string]interface{}) *MeasurementComparisonUpdateOne {
	_u.mutation.SetOriginalRaw(v)
	return _u
}

// ClearOriginalRaw clears the value of the "original_raw" field.
func (_u *MeasurementComparisonUpdateOne) ClearOriginalRaw() *MeasurementComparisonUpdateOne {
	_u.mutation.ClearOriginalRaw()
	return _u
}

// SetOptimizedRaw sets the "optimized_raw" field.
func (_u *MeasurementComparisonUpdateOne) SetOptimizedRaw(v map[string]interface{}) *MeasurementComparisonUpdateOne {
	_u.mutation.SetOptimizedRaw(v)
	return _u
}

// ClearOptimizedRaw clears the value of the "optimized_raw" field.
func (_u *MeasurementComparisonUpdateOne) ClearOptimizedRaw() *MeasurementComparisonUpdateOne {
	_u.mutation.ClearOptimizedRaw()
	return _u
}

// SetSite sets the "site" edge to the Site entity.
func (_u *MeasurementComparisonUpdateOne) SetSite(v *Site) *MeasurementComparisonUpdateOne {
	return _u.SetSiteID(v.ID)
}

// Mutation returns the MeasurementComparisonMutation object of the builder.
func (_u *MeasurementComparisonUpdateOne) Mutation() *MeasurementComparisonMutation {
	return _u.mutation
}

// ClearSite clears the "site" edge to the Site entity.
func (_u *MeasurementComparisonUpdateOne) ClearSite() *MeasurementComparisonUpdateOne {
	_u.mutation.ClearSite()
	return _u
}

// Where appends a list predicates to the MeasurementComparisonUpdate builder.
func (_u *MeasurementComparisonUpdateOne) Where(ps ...predicate.MeasurementComparison) *MeasurementComparisonUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MeasurementComparisonUpdateOne) Select(field string, fields ...string) *MeasurementComparisonUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MeasurementComparison entity.
func (_u *MeasurementComparisonUpdateOne) Save(ctx context.Context) (*MeasurementComparison, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MeasurementComparisonUpdateOne) SaveX(ctx context.Context) *MeasurementComparison {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MeasurementComparisonUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MeasurementComparisonUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MeasurementComparisonUpdateOne) check() error {
	if v, ok := _u.mutation.Strategy(); ok {
		if err := measurementcomparison.StrategyValidator(v); err != nil {
			return &ValidationError{Name: "strategy", err: fmt.Errorf(`ent: validator failed for field "MeasurementComparison.strategy": %w`, err)}
		}
	}
	if _u.mutation.SiteCleared() && len(_u.mutation.SiteIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MeasurementComparison.site"`)
	}
	return nil
}

func (_u *MeasurementComparisonUpdateOne) sqlSave(ctx context.Context) (_node *MeasurementComparison, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(measurementcomparison.Table, measurementcomparison.Columns, sqlgraph.NewFieldSpec(measurementcomparison.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MeasurementComparison.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, measurementcomparison.FieldID)
		for _, f := range fields {
			if !measurementcomparison.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != measurementcomparison.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BuildID(); ok {
		_spec.SetField(measurementcomparison.FieldBuildID, field.TypeString, value)
	}
	if _u.mutation.BuildIDCleared() {
		_spec.ClearField(measurementcomparison.FieldBuildID, field.TypeString)
	}
	if value, ok := _u.mutation.Strategy(); ok {
		_spec.SetField(measurementcomparison.FieldStrategy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OriginalScore(); ok {
		_spec.SetField(measurementcomparison.FieldOriginalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOriginalScore(); ok {
		_spec.AddField(measurementcomparison.FieldOriginalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.OptimizedScore(); ok {
		_spec.SetField(measurementcomparison.FieldOptimizedScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOptimizedScore(); ok {
		_spec.AddField(measurementcomparison.FieldOptimizedScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.OriginalVitals(); ok {
		_spec.SetField(measurementcomparison.FieldOriginalVitals, field.TypeJSON, value)
	}
	if _u.mutation.OriginalVitalsCleared() {
		_spec.ClearField(measurementcomparison.FieldOriginalVitals, field.TypeJSON)
	}
	if value, ok := _u.mutation.OptimizedVitals(); ok {
		_spec.SetField(measurementcomparison.FieldOptimizedVitals, field.TypeJSON, value)
	}
	if _u.mutation.OptimizedVitalsCleared() {
		_spec.ClearField(measurementcomparison.FieldOptimizedVitals, field.TypeJSON)
	}
	if value, ok := _u.mutation.Improvements(); ok {
		_spec.SetField(measurementcomparison.FieldImprovements, field.TypeJSON, value)
	}
	if _u.mutation.ImprovementsCleared() {
		_spec.ClearField(measurementcomparison.FieldImprovements, field.TypeJSON)
	}
	if value, ok := _u.mutation.PayloadSavingsBytes(); ok {
		_spec.SetField(measurementcomparison.FieldPayloadSavingsBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPayloadSavingsBytes(); ok {
		_spec.AddField(measurementcomparison.FieldPayloadSavingsBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.OriginalRaw(); ok {
		_spec.SetField(measurementcomparison.FieldOriginalRaw, field.TypeJSON, value)
	}
	if _u.mutation.OriginalRawCleared() {
		_spec.ClearField(measurementcomparison.FieldOriginalRaw, field.TypeJSON)
	}
	if value, ok := _u.mutation.OptimizedRaw(); ok {
		_spec.SetField(measurementcomparison.FieldOptimizedRaw, field.TypeJSON, value)
	}
	if _u.mutation.OptimizedRawCleared() {
		_spec.ClearField(measurementcomparison.FieldOptimizedRaw, field.TypeJSON)
	}
	if _u.mutation.SiteCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SiteIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &MeasurementComparison{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{measurementcomparison.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
