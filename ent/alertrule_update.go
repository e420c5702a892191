// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/metrics-lab/staticpress/ent/alertrule"
	"github.com/metrics-lab/staticpress/ent/predicate"
	"github.com/metrics-lab/staticpress/ent/site"
)

// AlertRuleUpdate is the builder for updating AlertRule entities.
type AlertRuleUpdate struct {
	config
	hooks    []Hook
	mutation *AlertRuleMutation
}

// Where appends a list predicates to the AlertRuleUpdate builder.
func (_u *AlertRuleUpdate) Where(ps ...predicate.AlertRule) *AlertRuleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSiteID sets the "site_id" field.
func (_u *AlertRuleUpdate) SetSiteID(v string) *AlertRuleUpdate {
	_u.mutation.SetSiteID(v)
	return _u
}

// SetNillableSiteID sets the "site_id" field if the given value is not nil.
func (_u *AlertRuleUpdate) SetNillableSiteID(v *string) *AlertRuleUpdate {
	if v != nil {
		_u.SetSiteID(*v)
	}
	return _u
}

// SetMetric sets the "metric" field.
func (_u *AlertRuleUpdate) SetMetric(v string) *AlertRuleUpdate {
	_u.mutation.SetMetric(v)
	return _u
}

// SetNillableMetric sets the "metric" field if the given value is not nil.
func (_u *AlertRuleUpdate) SetNillableMetric(v *string) *AlertRuleUpdate {
	if v != nil {
		_u.SetMetric(*v)
	}
	return _u
}

// SetOperator sets the "operator" field.
func (_u *AlertRuleUpdate) SetOperator(v alertrule.Operator) *AlertRuleUpdate {
	_u.mutation.SetOperator(v)
	return _u
}

// SetNillableOperator sets the "operator" field if the given value is not nil.
func (_u *AlertRuleUpdate) SetNillableOperator(v *alertrule.Operator) *AlertRuleUpdate {
	if v != nil {
		_u.SetOperator(*v)
	}
	return _u
}

// SetThreshold sets the "threshold" field.
func (_u *AlertRuleUpdate) SetThreshold(v float64) *AlertRuleUpdate {
	_u.mutation.ResetThreshold()
	_u.mutation.SetThreshold(v)
	return _u
}

// SetNillableThreshold sets the "threshold" field if the given value is not nil.
func (_u *AlertRuleUpdate) SetNillableThreshold(v *float64) *AlertRuleUpdate {
	if v != nil {
		_u.SetThreshold(*v)
	}
	return _u
}

// AddThreshold adds value to the "threshold" field.
func (_u *AlertRuleUpdate) AddThreshold(v float64) *AlertRuleUpdate {
	_u.mutation.AddThreshold(v)
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *AlertRuleUpdate) SetEnabled(v bool) *AlertRuleUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *AlertRuleUpdate) SetNillableEnabled(v *bool) *AlertRuleUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetSite sets the "site" edge to the Site entity.
func (_u *AlertRuleUpdate) SetSite(v *Site) *AlertRuleUpdate {
	return _u.SetSiteID(v.ID)
}

// Mutation returns the AlertRuleMutation object of the builder.
func (_u *AlertRuleUpdate) Mutation() *AlertRuleMutation {
	return _u.mutation
}

// ClearSite clears the "site" edge to the Site entity.
func (_u *AlertRuleUpdate) ClearSite() *AlertRuleUpdate {
	_u.mutation.ClearSite()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AlertRuleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AlertRuleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AlertRuleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AlertRuleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AlertRuleUpdate) check() error {
	if v, ok := _u.mutation.Operator(); ok {
		if err := alertrule.OperatorValidator(v); err != nil {
			return &ValidationError{Name: "operator", err: fmt.Errorf(`ent: validator failed for field "AlertRule.operator": %w`, err)}
		}
	}
	if _u.mutation.SiteCleared() && len(_u.mutation.SiteIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AlertRule.site"`)
	}
	return nil
}

func (_u *AlertRuleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(alertrule.Table, alertrule.Columns, sqlgraph.NewFieldSpec(alertrule.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Metric(); ok {
		_spec.SetField(alertrule.FieldMetric, field.TypeString, value)
	}
	if value, ok := _u.mutation.Operator(); ok {
		_spec.SetField(alertrule.FieldOperator, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Threshold(); ok {
		_spec.SetField(alertrule.FieldThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThreshold(); ok {
		_spec.AddField(alertrule.FieldThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(alertrule.FieldEnabled, field.TypeBool, value)
	}
	if _u.mutation.SiteCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   alertrule.SiteTable,
			Columns: []string{alertrule.SiteColumn},
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
			Table:   alertrule.SiteTable,
			Columns: []string{alertrule.SiteColumn},
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
			err = &NotFoundError{alertrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AlertRuleUpdateOne is the builder for updating a single AlertRule entity.
type AlertRuleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AlertRuleMutation
}

// SetSiteID sets the "site_id" field.
func (_u *AlertRuleUpdateOne) SetSiteID(v string) *AlertRuleUpdateOne {
	_u.mutation.SetSiteID(v)
	return _u
}

// SetNillableSiteID sets the "site_id" field if the given value is not nil.
func (_u *AlertRuleUpdateOne) SetNillableSiteID(v *string) *AlertRuleUpdateOne {
	if v != nil {
		_u.SetSiteID(*v)
	}
	return _u
}

// SetMetric sets the "metric" field.
func (_u *AlertRuleUpdateOne) SetMetric(v string) *AlertRuleUpdateOne {
	_u.mutation.SetMetric(v)
	return _u
}

// SetNillableMetric sets the "metric" field if the given value is not nil.
func (_u *AlertRuleUpdateOne) SetNillableMetric(v *string) *AlertRuleUpdateOne {
	if v != nil {
		_u.SetMetric(*v)
	}
	return _u
}

// SetOperator sets the "operator" field.
func (_u *AlertRuleUpdateOne) SetOperator(v alertrule.Operator) *AlertRuleUpdateOne {
	_u.mutation.SetOperator(v)
	return _u
}

// SetNillableOperator sets the "operator" field if the given value is not nil.
func (_u *AlertRuleUpdateOne) SetNillableOperator(v *alertrule.Operator) *AlertRuleUpdateOne {
	if v != nil {
		_u.SetOperator(*v)
	}
	return _u
}

// SetThreshold sets the "threshold" field.
func (_u *AlertRuleUpdateOne) SetThreshold(v float64) *AlertRuleUpdateOne {
	_u.mutation.ResetThreshold()
	_u.mutation.SetThreshold(v)
	return _u
}

// SetNillableThreshold sets the "threshold" field if the given value is not nil.
func (_u *AlertRuleUpdateOne) SetNillableThreshold(v *float64) *AlertRuleUpdateOne {
	if v != nil {
		_u.SetThreshold(*v)
	}
	return _u
}

// AddThreshold adds value to the "threshold" field.
func (_u *AlertRuleUpdateOne) AddThreshold(v float64) *AlertRuleUpdateOne {
	_u.mutation.AddThreshold(v)
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *AlertRuleUpdateOne) SetEnabled(v bool) *AlertRuleUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *AlertRuleUpdateOne) SetNillableEnabled(v *bool) *AlertRuleUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetSite sets the "site" edge to the Site entity.
func (_u *AlertRuleUpdateOne) SetSite(v *Site) *AlertRuleUpdateOne {
	return _u.SetSiteID(v.ID)
}

// Mutation returns the AlertRuleMutation object of the builder.
func (_u *AlertRuleUpdateOne) Mutation() *AlertRuleMutation {
	return _u.mutation
}

// ClearSite clears the "site" edge to the Site entity.
func (_u *AlertRuleUpdateOne) ClearSite() *AlertRuleUpdateOne {
	_u.mutation.ClearSite()
	return _u
}

// Where appends a list predicates to the AlertRuleUpdate builder.
func (_u *AlertRuleUpdateOne) Where(ps ...predicate.AlertRule) *AlertRuleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AlertRuleUpdateOne) Select(field string, fields ...string) *AlertRuleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AlertRule entity.
func (_u *AlertRuleUpdateOne) Save(ctx context.Context) (*AlertRule, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AlertRuleUpdateOne) SaveX(ctx context.Context) *AlertRule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AlertRuleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AlertRuleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AlertRuleUpdateOne) check() error {
	if v, ok := _u.mutation.Operator(); ok {
		if err := alertrule.OperatorValidator(v); err != nil {
			return &ValidationError{Name: "operator", err: fmt.Errorf(`ent: validator failed for field "AlertRule.operator": %w`, err)}
		}
	}
	if _u.mutation.SiteCleared() && len(_u.mutation.SiteIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AlertRule.site"`)
	}
	return nil
}

func (_u *AlertRuleUpdateOne) sqlSave(ctx context.Context) (_node *AlertRule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(alertrule.Table, alertrule.Columns, sqlgraph.NewFieldSpec(alertrule.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AlertRule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, alertrule.FieldID)
		for _, f := range fields {
			if !alertrule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != alertrule.FieldID {
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
	if value, ok := _u.mutation.Metric(); ok {
		_spec.SetField(alertrule.FieldMetric, field.TypeString, value)
	}
	if value, ok := _u.mutation.Operator(); ok {
		_spec.SetField(alertrule.FieldOperator, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Threshold(); ok {
		_spec.SetField(alertrule.FieldThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThreshold(); ok {
		_spec.AddField(alertrule.FieldThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(alertrule.FieldEnabled, field.TypeBool, value)
	}
	if _u.mutation.SiteCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   alertrule.SiteTable,
			Columns: []string{alertrule.SiteColumn},
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
			Table:   alertrule.SiteTable,
			Columns: []string{alertrule.SiteColumn},
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
	_node = &AlertRule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{alertrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
