// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/metrics-lab/staticpress/ent/settingshistory"
	"github.com/metrics-lab/staticpress/ent/site"
)

// SettingsHistoryCreate is the builder for creating a SettingsHistory entity.
type SettingsHistoryCreate struct {
	config
	mutation *SettingsHistoryMutation
	hooks    []Hook
}

// SetSiteID sets the "site_id" field.
func (_c *SettingsHistoryCreate) SetSiteID(v string) *SettingsHistoryCreate {
	_c.mutation.SetSiteID(v)
	return _c
}

// SetSettings sets the "settings" field.
func (_c *SettingsHistoryCreate) SetSettings(v map[string]interface{}) *SettingsHistoryCreate {
	_c.mutation.SetSettings(v)
	return _c
}

// SetActor sets the "actor" field.
func (_c *SettingsHistoryCreate) SetActor(v string) *SettingsHistoryCreate {
	_c.mutation.SetActor(v)
	return _c
}

// SetNillableActor sets the "actor" field if the given value is not nil.
func (_c *SettingsHistoryCreate) SetNillableActor(v *string) *SettingsHistoryCreate {
	if v != nil {
		_c.SetActor(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SettingsHistoryCreate) SetCreatedAt(v time.Time) *SettingsHistoryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SettingsHistoryCreate) SetNillableCreatedAt(v *time.Time) *SettingsHistoryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SettingsHistoryCreate) SetID(v string) *SettingsHistoryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSite sets the "site" edge to the Site entity.
func (_c *SettingsHistoryCreate) SetSite(v *Site) *SettingsHistoryCreate {
	return _c.SetSiteID(v.ID)
}

// Mutation returns the SettingsHistoryMutation object of the builder.
func (_c *SettingsHistoryCreate) Mutation() *SettingsHistoryMutation {
	return _c.mutation
}

// Save creates the SettingsHistory in the database.
func (_c *SettingsHistoryCreate) Save(ctx context.Context) (*SettingsHistory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SettingsHistoryCreate) SaveX(ctx context.Context) *SettingsHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SettingsHistoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SettingsHistoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SettingsHistoryCreate) defaults() {
	if _, ok := _c.mutation.Actor(); !ok {
		v := settingshistory.DefaultActor
		_c.mutation.SetActor(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := settingshistory.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SettingsHistoryCreate) check() error {
	if _, ok := _c.mutation.SiteID(); !ok {
		return &ValidationError{Name: "site_id", err: errors.New(`ent: missing required field "SettingsHistory.site_id"`)}
	}
	if _, ok := _c.mutation.Actor(); !ok {
		return &ValidationError{Name: "actor", err: errors.New(`ent: missing required field "SettingsHistory.actor"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SettingsHistory.created_at"`)}
	}
	if len(_c.mutation.SiteIDs()) == 0 {
		return &ValidationError{Name: "site", err: errors.New(`ent: missing required edge "SettingsHistory.site"`)}
	}
	return nil
}

func (_c *SettingsHistoryCreate) sqlSave(ctx context.Context) (*SettingsHistory, error) {
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
			return nil, fmt.Errorf("unexpected SettingsHistory.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SettingsHistoryCreate) createSpec() (*SettingsHistory, *sqlgraph.CreateSpec) {
	var (
		_node = &SettingsHistory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(settingshistory.Table, sqlgraph.NewFieldSpec(settingshistory.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Settings(); ok {
		_spec.SetField(settingshistory.FieldSettings, field.TypeJSON, value)
		_node.Settings = value
	}
	if value, ok := _c.mutation.Actor(); ok {
		_spec.SetField(settingshistory.FieldActor, field.TypeString, value)
		_node.Actor = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(settingshistory.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SiteIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   settingshistory.SiteTable,
			Columns: []string{settingshistory.SiteColumn},
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

// SettingsHistoryCreateBulk is the builder for creating many SettingsHistory entities in bulk.
type SettingsHistoryCreateBulk struct {
	config
	err      error
	builders []*SettingsHistoryCreate
}

// Save creates the SettingsHistory entities in the database.
func (_c *SettingsHistoryCreateBulk) Save(ctx context.Context) ([]*SettingsHistory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SettingsHistory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SettingsHistoryMutation)
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
func (_c *SettingsHistoryCreateBulk) SaveX(ctx context.Context) []*SettingsHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SettingsHistoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SettingsHistoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
