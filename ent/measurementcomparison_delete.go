// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/metrics-lab/staticpress/ent/measurementcomparison"
	"github.com/metrics-lab/staticpress/ent/predicate"
)

// MeasurementComparisonDelete is the builder for deleting a MeasurementComparison entity.
type MeasurementComparisonDelete struct {
	config
	hooks    []Hook
	mutation *MeasurementComparisonMutation
}

// Where appends a list predicates to the MeasurementComparisonDelete builder.
func (_d *MeasurementComparisonDelete) Where(ps ...predicate.MeasurementComparison) *MeasurementComparisonDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *MeasurementComparisonDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MeasurementComparisonDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *MeasurementComparisonDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(measurementcomparison.Table, sqlgraph.NewFieldSpec(measurementcomparison.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// MeasurementComparisonDeleteOne is the builder for deleting a single MeasurementComparison entity.
type MeasurementComparisonDeleteOne struct {
	_d *MeasurementComparisonDelete
}

// Where appends a list predicates to the MeasurementComparisonDelete builder.
func (_d *MeasurementComparisonDeleteOne) Where(ps ...predicate.MeasurementComparison) *MeasurementComparisonDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *MeasurementComparisonDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{measurementcomparison.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MeasurementComparisonDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
