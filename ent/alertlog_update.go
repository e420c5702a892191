// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/metrics-lab/staticpress/ent/alertlog"
	"github.com/metrics-lab/staticpress/ent/predicate"
	"github.com/metrics-lab/staticpress/ent/site"
)

// AlertLogUpdate is the builder for updating AlertLog entities.
type AlertLogUpdate struct {
	config
	hooks    []Hook
	mutation *AlertLogMutation
}

// Where appends a list predicates to the AlertLogUpdate builder.
func (_u *AlertLogUpdate) Where(ps ...predicate.AlertLog) *AlertLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSiteID sets the "site_id" field.
func (_u *AlertLogUpdate) SetSiteID(v string) *AlertLogUpdate {
	_u.mutation.SetSiteID(v)
	return _u
}

// SetNillableSiteID sets the "site_id" field if the given value is not nil.
func (_u *AlertLogUpdate) SetNillableSiteID(v *string) *AlertLogUpdate {
	if v != nil {
		_u.SetSiteID(*v)
	}
	return _u
}

// SetRuleID sets the "rule_id" field.
func (_u *AlertLogUpdate) SetRuleID(v string) *AlertLogUpdate {
	_u.mutation.SetRuleID(v)
	return _u
}

// SetNillableRuleID sets the "rule_id" field if the given value is not nil.
func (_u *AlertLogUpdate) SetNillableRuleID(v *string) *AlertLogUpdate {
	if v != nil {
		_u.SetRuleID(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *AlertLogUpdate) SetMessage(v string) *AlertLogUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *AlertLogUpdate) SetNillableMessage(v *string) *AlertLogUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetObservedValue sets the "observed_value" field.
func (_u *AlertLogUpdate) SetObservedValue(v float64) *AlertLogUpdate {
	_u.mutation.ResetObservedValue()
	_u.mutation.SetObservedValue(v)
	return _u
}

// SetNillableObservedValue sets the "observed_value" field if the given value is not nil.
func (_u *AlertLogUpdate) SetNillableObservedValue(v *float64) *AlertLogUpdate {
	if v != nil {
		_u.SetObservedValue(*v)
	}
	return _u
}

// AddObservedValue adds value to the "observed_value" field.
func (_u *AlertLogUpdate) AddObservedValue(v float64) *AlertLogUpdate {
	_u.mutation.AddObservedValue(v)
	return _u
}

// SetSite sets the "site" edge to the Site entity.
func (_u *AlertLogUpdate) SetSite(v *Site) *AlertLogUpdate {
	return _u.SetSiteID(v.ID)
}

// Mutation returns the AlertLogMutation object of the builder.
func (_u *AlertLogUpdate) Mutation() *AlertLogMutation {
	return _u.mutation
}

// ClearSite clears the "site" edge to the Site entity.
func (_u *AlertLogUpdate) ClearSite() *AlertLogUpdate {
	_u.mutation.ClearSite()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AlertLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AlertLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AlertLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AlertLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AlertLogUpdate) check() error {
	if _u.mutation.SiteCleared() && len(_u.mutation.SiteIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AlertLog.site"`)
	}
	return nil
}

func (_u *AlertLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(alertlog.Table, alertlog.Columns, sqlgraph.NewFieldSpec(alertlog.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RuleID(); ok {
		_spec.SetField(alertlog.FieldRuleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(alertlog.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.ObservedValue(); ok {
		_spec.SetField(alertlog.FieldObservedValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedObservedValue(); ok {
		_spec.AddField(alertlog.FieldObservedValue, field.TypeFloat64, value)
	}
	if _u.mutation.SiteCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   alertlog.SiteTable,
			Columns: []string{alertlog.SiteColumn},
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
			Table:   alertlog.SiteTable,
			Columns: []string{alertlog.SiteColumn},
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
			err = &NotFoundError{alertlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AlertLogUpdateOne is the builder for updating a single AlertLog entity.
type AlertLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AlertLogMutation
}

// SetSiteID sets the "site_id" field.
func (_u *AlertLogUpdateOne) SetSiteID(v string) *AlertLogUpdateOne {
	_u.mutation.SetSiteID(v)
	return _u
}

// SetNillableSiteID sets the "site_id" field if the given value is not nil.
func (_u *AlertLogUpdateOne) SetNillableSiteID(v *string) *AlertLogUpdateOne {
	if v != nil {
		_u.SetSiteID(*v)
	}
	return _u
}

// SetRuleID sets the "rule_id" field.
func (_u *AlertLogUpdateOne) SetRuleID(v string) *AlertLogUpdateOne {
	_u.mutation.SetRuleID(v)
	return _u
}

// SetNillableRuleID sets the "rule_id" field if the given value is not nil.
func (_u *AlertLogUpdateOne) SetNillableRuleID(v *string) *AlertLogUpdateOne {
	if v != nil {
		_u.SetRuleID(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *AlertLogUpdateOne) SetMessage(v string) *AlertLogUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *AlertLogUpdateOne) SetNillableMessage(v *string) *AlertLogUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetObservedValue sets the "observed_value" field.
func (_u *AlertLogUpdateOne) SetObservedValue(v float64) *AlertLogUpdateOne {
	_u.mutation.ResetObservedValue()
	_u.mutation.SetObservedValue(v)
	return _u
}

// SetNillableObservedValue sets the "observed_value" field if the given value is not nil.
func (_u *AlertLogUpdateOne) SetNillableObservedValue(v *float64) *AlertLogUpdateOne {
	if v != nil {
		_u.SetObservedValue(*v)
	}
	return _u
}

// AddObservedValue adds value to the "observed_value" field.
func (_u *AlertLogUpdateOne) AddObservedValue(v float64) *AlertLogUpdateOne {
	_u.mutation.AddObservedValue(v)
	return _u
}

// SetSite sets the "site" edge to the Site entity.
func (_u *AlertLogUpdateOne) SetSite(v *Site) *AlertLogUpdateOne {
	return _u.SetSiteID(v.ID)
}

// Mutation returns the AlertLogMutation object of the builder.
func (_u *AlertLogUpdateOne) Mutation() *AlertLogMutation {
	return _u.mutation
}

// ClearSite clears the "site" edge to the Site entity.
func (_u *AlertLogUpdateOne) ClearSite() *AlertLogUpdateOne {
	_u.mutation.ClearSite()
	return _u
}

// Where appends a list predicates to the AlertLogUpdate builder.
func (_u *AlertLogUpdateOne) Where(ps ...predicate.AlertLog) *AlertLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AlertLogUpdateOne) Select(field string, fields ...string) *AlertLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AlertLog entity.
func (_u *AlertLogUpdateOne) Save(ctx context.Context) (*AlertLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AlertLogUpdateOne) SaveX(ctx context.Context) *AlertLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AlertLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AlertLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AlertLogUpdateOne) check() error {
	if _u.mutation.SiteCleared() && len(_u.mutation.SiteIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AlertLog.site"`)
	}
	return nil
}

func (_u *AlertLogUpdateOne) sqlSave(ctx context.Context) (_node *AlertLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(alertlog.Table, alertlog.Columns, sqlgraph.NewFieldSpec(alertlog.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AlertLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, alertlog.FieldID)
		for _, f := range fields {
			if !alertlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != alertlog.FieldID {
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
	if value, ok := _u.mutation.RuleID(); ok {
		_spec.SetField(alertlog.FieldRuleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(alertlog.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.ObservedValue(); ok {
		_spec.SetField(alertlog.FieldObservedValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedObservedValue(); ok {
		_spec.AddField(alertlog.FieldObservedValue, field.TypeFloat64, value)
	}
	if _u.mutation.SiteCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   alertlog.SiteTable,
			Columns: []string{alertlog.SiteColumn},
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
			Table:   alertlog.SiteTable,
			Columns: []string{alertlog.SiteColumn},
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
	_node = &AlertLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{alertlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
