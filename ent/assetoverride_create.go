// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/metrics-lab/staticpress/ent/assetoverride"
	"github.com/metrics-lab/staticpress/ent/site"
)

// AssetOverrideCreate is the builder for creating a AssetOverride entity.
type AssetOverrideCreate struct {
	config
	mutation *AssetOverrideMutation
	hooks    []Hook
}

// SetSiteID sets the "site_id" field.
func (_c *AssetOverrideCreate) SetSiteID(v string) *AssetOverrideCreate {
	_c.mutation.SetSiteID(v)
	return _c
}

// SetURLPattern sets the "url_pattern" field.
func (_c *AssetOverrideCreate) SetURLPattern(v string) *AssetOverrideCreate {
	_c.mutation.SetURLPattern(v)
	return _c
}

// SetAssetClass sets the "asset_class" field.
func (_c *AssetOverrideCreate) SetAssetClass(v string) *AssetOverrideCreate {
	_c.mutation.SetAssetClass(v)
	return _c
}

// SetNillableAssetClass sets the "asset_class" field if the given value is not nil.
func (_c *AssetOverrideCreate) SetNillableAssetClass(v *string) *AssetOverrideCreate {
	if v != nil {
		_c.SetAssetClass(*v)
	}
	return _c
}

// SetSettings sets the "settings" field.
func (_c *AssetOverrideCreate) SetSettings(v map[string]interface{}) *AssetOverrideCreate {
	_c.mutation.SetSettings(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AssetOverrideCreate) SetCreatedAt(v time.Time) *AssetOverrideCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AssetOverrideCreate) SetNillableCreatedAt(v *time.Time) *AssetOverrideCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AssetOverrideCreate) SetUpdatedAt(v time.Time) *AssetOverrideCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AssetOverrideCreate) SetNillableUpdatedAt(v *time.Time) *AssetOverrideCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AssetOverrideCreate) SetID(v string) *AssetOverrideCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSite sets the "site" edge to the Site entity.
func (_c *AssetOverrideCreate) SetSite(v *Site) *AssetOverrideCreate {
	return _c.SetSiteID(v.ID)
}

// Mutation returns the AssetOverrideMutation object of the builder.
func (_c *AssetOverrideCreate) Mutation() *AssetOverrideMutation {
	return _c.mutation
}

// Save creates the AssetOverride in the database.
func (_c *AssetOverrideCreate) Save(ctx context.Context) (*AssetOverride, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssetOverrideCreate) SaveX(ctx context.Context) *AssetOverride {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssetOverrideCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssetOverrideCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssetOverrideCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := assetoverride.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := assetoverride.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssetOverrideCreate) check() error {
	if _, ok := _c.mutation.SiteID(); !ok {
		return &ValidationError{Name: "site_id", err: errors.New(`ent: missing required field "AssetOverride.site_id"`)}
	}
	if _, ok := _c.mutation.URLPattern(); !ok {
		return &ValidationError{Name: "url_pattern", err: errors.New(`ent: missing required field "AssetOverride.url_pattern"`)}
	}
	if _, ok := _c.mutation.Settings(); !ok {
		return &ValidationError{Name: "settings", err: errors.New(`ent: missing required field "AssetOverride.settings"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AssetOverride.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AssetOverride.updated_at"`)}
	}
	if len(_c.mutation.SiteIDs()) == 0 {
		return &ValidationError{Name: "site", err: errors.New(`ent: missing required edge "AssetOverride.site"`)}
	}
	return nil
}

func (_c *AssetOverrideCreate) sqlSave(ctx context.Context) (*AssetOverride, error) {
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
			return nil, fmt.Errorf("unexpected AssetOverride.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AssetOverrideCreate) createSpec() (*AssetOverride, *sqlgraph.CreateSpec) {
	var (
		_node = &AssetOverride{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assetoverride.Table, sqlgraph.NewFieldSpec(assetoverride.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.URLPattern(); ok {
		_spec.SetField(assetoverride.FieldURLPattern, field.TypeString, value)
		_node.URLPattern = value
	}
	if value, ok := _c.mutation.AssetClass(); ok {
		_spec.SetField(assetoverride.FieldAssetClass, field.TypeString, value)
		_node.AssetClass = &value
	}
	if value, ok := _c.mutation.Settings(); ok {
		_spec.SetField(assetoverride.FieldSettings, field.TypeJSON, value)
		_node.Settings = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(assetoverride.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(assetoverride.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SiteIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   assetoverride.SiteTable,
			Columns: []string{assetoverride.SiteColumn},
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

// AssetOverrideCreateBulk is the builder for creating many AssetOverride entities in bulk.
type AssetOverrideCreateBulk struct {
	config
	err      error
	builders []*AssetOverrideCreate
}

// Save creates the AssetOverride entities in the database.
func (_c *AssetOverrideCreateBulk) Save(ctx context.Context) ([]*AssetOverride, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AssetOverride, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssetOverrideMutation)
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
func (_c *AssetOverrideCreateBulk) SaveX(ctx context.Context) []*AssetOverride {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssetOverrideCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssetOverrideCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
