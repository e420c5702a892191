// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/metrics-lab/staticpress/ent/alertlog"
	"github.com/metrics-lab/staticpress/ent/site"
)

// AlertLogCreate is the builder for creating a AlertLog entity.
type AlertLogCreate struct {
	config
	mutation *AlertLogMutation
	hooks    []Hook
}

// SetSiteID sets the "site_id" field.
func (_c *AlertLogCreate) SetSiteID(v string) *AlertLogCreate {
	_c.mutation.SetSiteID(v)
	return _c
}

// SetRuleID sets the "rule_id" field.
func (_c *AlertLogCreate) SetRuleID(v string) *AlertLogCreate {
	_c.mutation.SetRuleID(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *AlertLogCreate) SetMessage(v string) *AlertLogCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetObservedValue sets the "observed_value" field.
func (_c *AlertLogCreate) SetObservedValue(v float64) *AlertLogCreate {
	_c.mutation.SetObservedValue(v)
	return _c
}

// SetFiredAt sets the "fired_at" field.
func (_c *AlertLogCreate) SetFiredAt(v time.Time) *AlertLogCreate {
	_c.mutation.SetFiredAt(v)
	return _c
}

// SetNillableFiredAt sets the "fired_at" field if the given value is not nil.
func (_c *AlertLogCreate) SetNillableFiredAt(v *time.Time) *AlertLogCreate {
	if v != nil {
		_c.SetFiredAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AlertLogCreate) SetID(v string) *AlertLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSite sets the "site" edge to the Site entity.
func (_c *AlertLogCreate) SetSite(v *Site) *AlertLogCreate {
	return _c.SetSiteID(v.ID)
}

// Mutation returns the AlertLogMutation object of the builder.
func (_c *AlertLogCreate) Mutation() *AlertLogMutation {
	return _c.mutation
}

// Save creates the AlertLog in the database.
func (_c *AlertLogCreate) Save(ctx context.Context) (*AlertLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AlertLogCreate) SaveX(ctx context.Context) *AlertLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AlertLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AlertLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AlertLogCreate) defaults() {
	if _, ok := _c.mutation.FiredAt(); !ok {
		v := alertlog.DefaultFiredAt()
		_c.mutation.SetFiredAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AlertLogCreate) check() error {
	if _, ok := _c.mutation.SiteID(); !ok {
		return &ValidationError{Name: "site_id", err: errors.New(`ent: missing required field "AlertLog.site_id"`)}
	}
	if _, ok := _c.mutation.RuleID(); !ok {
		return &ValidationError{Name: "rule_id", err: errors.New(`ent: missing required field "AlertLog.rule_id"`)}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "AlertLog.message"`)}
	}
	if _, ok := _c.mutation.ObservedValue(); !ok {
		return &ValidationError{Name: "observed_value", err: errors.New(`ent: missing required field "AlertLog.observed_value"`)}
	}
	if _, ok := _c.mutation.FiredAt(); !ok {
		return &ValidationError{Name: "fired_at", err: errors.New(`ent: missing required field "AlertLog.fired_at"`)}
	}
	if len(_c.mutation.SiteIDs()) == 0 {
		return &ValidationError{Name: "site", err: errors.New(`ent: missing required edge "AlertLog.site"`)}
	}
	return nil
}

func (_c *AlertLogCreate) sqlSave(ctx context.Context) (*AlertLog, error) {
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
			return nil, fmt.Errorf("unexpected AlertLog.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AlertLogCreate) createSpec() (*AlertLog, *sqlgraph.CreateSpec) {
	var (
		_node = &AlertLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(alertlog.Table, sqlgraph.NewFieldSpec(alertlog.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RuleID(); ok {
		_spec.SetField(alertlog.FieldRuleID, field.TypeString, value)
		_node.RuleID = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(alertlog.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.ObservedValue(); ok {
		_spec.SetField(alertlog.FieldObservedValue, field.TypeFloat64, value)
		_node.ObservedValue = value
	}
	if value, ok := _c.mutation.FiredAt(); ok {
		_spec.SetField(alertlog.FieldFiredAt, field.TypeTime, value)
		_node.FiredAt = value
	}
	if nodes := _c.mutation.SiteIDs(); len(nodes) > 0 {
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
		_node.SiteID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AlertLogCreateBulk is the builder for creating many AlertLog entities in bulk.
type AlertLogCreateBulk struct {
	config
	err      error
	builders []*AlertLogCreate
}

// Save creates the AlertLog entities in the database.
func (_c *AlertLogCreateBulk) Save(ctx context.Context) ([]*AlertLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AlertLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AlertLogMutation)
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
func (_c *AlertLogCreateBulk) SaveX(ctx context.Context) []*AlertLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AlertLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AlertLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
