// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/metrics-lab/staticpress/ent/alertrule"
	"github.com/metrics-lab/staticpress/ent/site"
)

// AlertRuleCreate is the builder for creating a AlertRule entity.
type AlertRuleCreate struct {
	config
	mutation *AlertRuleMutation
	hooks    []Hook
}

// SetSiteID sets the "site_id" field.
func (_c *AlertRuleCreate) SetSiteID(v string) *AlertRuleCreate {
	_c.mutation.SetSiteID(v)
	return _c
}

// SetMetric sets the "metric" field.
func (_c *AlertRuleCreate) SetMetric(v string) *AlertRuleCreate {
	_c.mutation.SetMetric(v)
	return _c
}

// SetOperator sets the "operator" field.
func (_c *AlertRuleCreate) SetOperator(v alertrule.Operator) *AlertRuleCreate {
	_c.mutation.SetOperator(v)
	return _c
}

// SetThreshold sets the "threshold" field.
func (_c *AlertRuleCreate) SetThreshold(v float64) *AlertRuleCreate {
	_c.mutation.SetThreshold(v)
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *AlertRuleCreate) SetEnabled(v bool) *AlertRuleCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *AlertRuleCreate) SetNillableEnabled(v *bool) *AlertRuleCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AlertRuleCreate) SetCreatedAt(v time.Time) *AlertRuleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AlertRuleCreate) SetNillableCreatedAt(v *time.Time) *AlertRuleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AlertRuleCreate) SetID(v string) *AlertRuleCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSite sets the "site" edge to the Site entity.
func (_c *AlertRuleCreate) SetSite(v *Site) *AlertRuleCreate {
	return _c.SetSiteID(v.ID)
}

// Mutation returns the AlertRuleMutation object of the builder.
func (_c *AlertRuleCreate) Mutation() *AlertRuleMutation {
	return _c.mutation
}

// Save creates the AlertRule in the database.
func (_c *AlertRuleCreate) Save(ctx context.Context) (*AlertRule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AlertRuleCreate) SaveX(ctx context.Context) *AlertRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AlertRuleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AlertRuleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AlertRuleCreate) defaults() {
	if _, ok := _c.mutation.Enabled(); !ok {
		v := alertrule.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := alertrule.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AlertRuleCreate) check() error {
	if _, ok := _c.mutation.SiteID(); !ok {
		return &ValidationError{Name: "site_id", err: errors.New(`ent: missing required field "AlertRule.site_id"`)}
	}
	if _, ok := _c.mutation.Metric(); !ok {
		return &ValidationError{Name: "metric", err: errors.New(`ent: missing required field "AlertRule.metric"`)}
	}
	if _, ok := _c.mutation.Operator(); !ok {
		return &ValidationError{Name: "operator", err: errors.New(`ent: missing required field "AlertRule.operator"`)}
	}
	if v, ok := _c.mutation.Operator(); ok {
		if err := alertrule.OperatorValidator(v); err != nil {
			return &ValidationError{Name: "operator", err: fmt.Errorf(`ent: validator failed for field "AlertRule.operator": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Threshold(); !ok {
		return &ValidationError{Name: "threshold", err: errors.New(`ent: missing required field "AlertRule.threshold"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "AlertRule.enabled"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AlertRule.created_at"`)}
	}
	if len(_c.mutation.SiteIDs()) == 0 {
		return &ValidationError{Name: "site", err: errors.New(`ent: missing required edge "AlertRule.site"`)}
	}
	return nil
}

func (_c *AlertRuleCreate) sqlSave(ctx context.Context) (*AlertRule, error) {
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
			return nil, fmt.Errorf("unexpected AlertRule.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AlertRuleCreate) createSpec() (*AlertRule, *sqlgraph.CreateSpec) {
	var (
		_node = &AlertRule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(alertrule.Table, sqlgraph.NewFieldSpec(alertrule.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Metric(); ok {
		_spec.SetField(alertrule.FieldMetric, field.TypeString, value)
		_node.Metric = value
	}
	if value, ok := _c.mutation.Operator(); ok {
		_spec.SetField(alertrule.FieldOperator, field.TypeEnum, value)
		_node.Operator = value
	}
	if value, ok := _c.mutation.Threshold(); ok {
		_spec.SetField(alertrule.FieldThreshold, field.TypeFloat64, value)
		_node.Threshold = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(alertrule.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(alertrule.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SiteIDs(); len(nodes) > 0 {
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
		_node.SiteID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AlertRuleCreateBulk is the builder for creating many AlertRule entities in bulk.
type AlertRuleCreateBulk struct {
	config
	err      error
	builders []*AlertRuleCreate
}

// Save creates the AlertRule entities in the database.
func (_c *AlertRuleCreateBulk) Save(ctx context.Context) ([]*AlertRule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AlertRule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AlertRuleMutation)
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
func (_c *AlertRuleCreateBulk) SaveX(ctx context.Context) []*AlertRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AlertRuleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AlertRuleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
