// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/metrics-lab/staticpress/ent/assetoverride"
	"github.com/metrics-lab/staticpress/ent/predicate"
	"github.com/metrics-lab/staticpress/ent/site"
)

// AssetOverrideUpdate is the builder for updating AssetOverride entities.
type AssetOverrideUpdate struct {
	config
	hooks    []Hook
	mutation *AssetOverrideMutation
}

// Where appends a list predicates to the AssetOverrideUpdate builder.
func (_u *AssetOverrideUpdate) Where(ps ...predicate.AssetOverride) *AssetOverrideUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSiteID sets the "site_id" field.
func (_u *AssetOverrideUpdate) SetSiteID(v string) *AssetOverrideUpdate {
	_u.mutation.SetSiteID(v)
	return _u
}

// SetNillableSiteID sets the "site_id" field if the given value is not nil.
func (_u *AssetOverrideUpdate) SetNillableSiteID(v *string) *AssetOverrideUpdate {
	if v != nil {
		_u.SetSiteID(*v)
	}
	return _u
}

// SetURLPattern sets the "url_pattern" field.
func (_u *AssetOverrideUpdate) SetURLPattern(v string) *AssetOverrideUpdate {
	_u.mutation.SetURLPattern(v)
	return _u
}

// SetNillableURLPattern sets the "url_pattern" field if the given value is not nil.
func (_u *AssetOverrideUpdate) SetNillableURLPattern(v *string) *AssetOverrideUpdate {
	if v != nil {
		_u.SetURLPattern(*v)
	}
	return _u
}

// SetAssetClass sets the "asset_class" field.
func (_u *AssetOverrideUpdate) SetAssetClass(v string) *AssetOverrideUpdate {
	_u.mutation.SetAssetClass(v)
	return _u
}

// SetNillableAssetClass sets the "asset_class" field if the given value is not nil.
func (_u *AssetOverrideUpdate) SetNillableAssetClass(v *string) *AssetOverrideUpdate {
	if v != nil {
		_u.SetAssetClass(*v)
	}
	return _u
}

// ClearAssetClass clears the value of the "asset_class" field.
func (_u *AssetOverrideUpdate) ClearAssetClass() *AssetOverrideUpdate {
	_u.mutation.ClearAssetClass()
	return _u
}

// SetSettings sets the "settings" field.
func (_u *AssetOverrideUpdate) SetSettings(v map[string]interface{}) *AssetOverrideUpdate {
	_u.mutation.SetSettings(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AssetOverrideUpdate) SetUpdatedAt(v time.Time) *AssetOverrideUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSite sets the "site" edge to the Site entity.
func (_u *AssetOverrideUpdate) SetSite(v *Site) *AssetOverrideUpdate {
	return _u.SetSiteID(v.ID)
}

// Mutation returns the AssetOverrideMutation object of the builder.
func (_u *AssetOverrideUpdate) Mutation() *AssetOverrideMutation {
	return _u.mutation
}

// ClearSite clears the "site" edge to the Site entity.
func (_u *AssetOverrideUpdate) ClearSite() *AssetOverrideUpdate {
	_u.mutation.ClearSite()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssetOverrideUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssetOverrideUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssetOverrideUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssetOverrideUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AssetOverrideUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := assetoverride.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssetOverrideUpdate) check() error {
	if _u.mutation.SiteCleared() && len(_u.mutation.SiteIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AssetOverride.site"`)
	}
	return nil
}

func (_u *AssetOverrideUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assetoverride.Table, assetoverride.Columns, sqlgraph.NewFieldSpec(assetoverride.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.URLPattern(); ok {
		_spec.SetField(assetoverride.FieldURLPattern, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssetClass(); ok {
		_spec.SetField(assetoverride.FieldAssetClass, field.TypeString, value)
	}
	if _u.mutation.AssetClassCleared() {
		_spec.ClearField(assetoverride.FieldAssetClass, field.TypeString)
	}
	if value, ok := _u.mutation.Settings(); ok {
		_spec.SetField(assetoverride.FieldSettings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(assetoverride.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SiteCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SiteIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assetoverride.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssetOverrideUpdateOne is the builder for updating a single AssetOverride entity.
type AssetOverrideUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssetOverrideMutation
}

// SetSiteID sets the "site_id" field.
func (_u *AssetOverrideUpdateOne) SetSiteID(v string) *AssetOverrideUpdateOne {
	_u.mutation.SetSiteID(v)
	return _u
}

// SetNillableSiteID sets the "site_id" field if the given value is not nil.
func (_u *AssetOverrideUpdateOne) SetNillableSiteID(v *string) *AssetOverrideUpdateOne {
	if v != nil {
		_u.SetSiteID(*v)
	}
	return _u
}

// SetURLPattern sets the "url_pattern" field.
func (_u *AssetOverrideUpdateOne) SetURLPattern(v string) *AssetOverrideUpdateOne {
	_u.mutation.SetURLPattern(v)
	return _u
}

// SetNillableURLPattern sets the "url_pattern" field if the given value is not nil.
func (_u *AssetOverrideUpdateOne) SetNillableURLPattern(v *string) *AssetOverrideUpdateOne {
	if v != nil {
		_u.SetURLPattern(*v)
	}
	return _u
}

// SetAssetClass sets the "asset_class" field.
func (_u *AssetOverrideUpdateOne) SetAssetClass(v string) *AssetOverrideUpdateOne {
	_u.mutation.SetAssetClass(v)
	return _u
}

// SetNillableAssetClass sets the "asset_class" field if the given value is not nil.
func (_u *AssetOverrideUpdateOne) SetNillableAssetClass(v *string) *AssetOverrideUpdateOne {
	if v != nil {
		_u.SetAssetClass(*v)
	}
	return _u
}

// ClearAssetClass clears the value of the "asset_class" field.
func (_u *AssetOverrideUpdateOne) ClearAssetClass() *AssetOverrideUpdateOne {
	_u.mutation.ClearAssetClass()
	return _u
}

// SetSettings sets the "settings" field.
func (_u *AssetOverrideUpdateOne) SetSettings(v map[string]interface{}) *AssetOverrideUpdateOne {
	_u.mutation.SetSettings(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AssetOverrideUpdateOne) SetUpdatedAt(v time.Time) *AssetOverrideUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSite sets the "site" edge to the Site entity.
func (_u *AssetOverrideUpdateOne) SetSite(v *Site) *AssetOverrideUpdateOne {
	return _u.SetSiteID(v.ID)
}

// Mutation returns the AssetOverrideMutation object of the builder.
func (_u *AssetOverrideUpdateOne) Mutation() *AssetOverrideMutation {
	return _u.mutation
}

// ClearSite clears the "site" edge to the Site entity.
func (_u *AssetOverrideUpdateOne) ClearSite() *AssetOverrideUpdateOne {
	_u.mutation.ClearSite()
	return _u
}

// Where appends a list predicates to the AssetOverrideUpdate builder.
func (_u *AssetOverrideUpdateOne) Where(ps ...predicate.AssetOverride) *AssetOverrideUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssetOverrideUpdateOne) Select(field string, fields ...string) *AssetOverrideUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AssetOverride entity.
func (_u *AssetOverrideUpdateOne) Save(ctx context.Context) (*AssetOverride, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssetOverrideUpdateOne) SaveX(ctx context.Context) *AssetOverride {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssetOverrideUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssetOverrideUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AssetOverrideUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := assetoverride.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssetOverrideUpdateOne) check() error {
	if _u.mutation.SiteCleared() && len(_u.mutation.SiteIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AssetOverride.site"`)
	}
	return nil
}

func (_u *AssetOverrideUpdateOne) sqlSave(ctx context.Context) (_node *AssetOverride, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assetoverride.Table, assetoverride.Columns, sqlgraph.NewFieldSpec(assetoverride.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AssetOverride.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assetoverride.FieldID)
		for _, f := range fields {
			if !assetoverride.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assetoverride.FieldID {
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
	if value, ok := _u.mutation.URLPattern(); ok {
		_spec.SetField(assetoverride.FieldURLPattern, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssetClass(); ok {
		_spec.SetField(assetoverride.FieldAssetClass, field.TypeString, value)
	}
	if _u.mutation.AssetClassCleared() {
		_spec.ClearField(assetoverride.FieldAssetClass, field.TypeString)
	}
	if value, ok := _u.mutation.Settings(); ok {
		_spec.SetField(assetoverride.FieldSettings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(assetoverride.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SiteCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SiteIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AssetOverride{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assetoverride.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
