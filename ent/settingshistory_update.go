// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/metrics-lab/staticpress/ent/predicate"
	"github.com/metrics-lab/staticpress/ent/settingshistory"
	"github.com/metrics-lab/staticpress/ent/site"
)

// SettingsHistoryUpdate is the builder for updating SettingsHistory entities.
type SettingsHistoryUpdate struct {
	config
	hooks    []Hook
	mutation *SettingsHistoryMutation
}

// Where appends a list predicates to the SettingsHistoryUpdate builder.
func (_u *SettingsHistoryUpdate) Where(ps ...predicate.SettingsHistory) *SettingsHistoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSiteID sets the "site_id" field.
func (_u *SettingsHistoryUpdate) SetSiteID(v string) *SettingsHistoryUpdate {
	_u.mutation.SetSiteID(v)
	return _u
}

// SetNillableSiteID sets the "site_id" field if the given value is not nil.
func (_u *SettingsHistoryUpdate) SetNillableSiteID(v *string) *SettingsHistoryUpdate {
	if v != nil {
		_u.SetSiteID(*v)
	}
	return _u
}

// SetSettings sets the "settings" field.
func (_u *SettingsHistoryUpdate) SetSettings(v map[string]interface{}) *SettingsHistoryUpdate {
	_u.mutation.SetSettings(v)
	return _u
}

// ClearSettings clears the value of the "settings" field.
func (_u *SettingsHistoryUpdate) ClearSettings() *SettingsHistoryUpdate {
	_u.mutation.ClearSettings()
	return _u
}

// SetActor sets the "actor" field.
func (_u *SettingsHistoryUpdate) SetActor(v string) *SettingsHistoryUpdate {
	_u.mutation.SetActor(v)
	return _u
}

// SetNillableActor sets the "actor" field if the given value is not nil.
func (_u *SettingsHistoryUpdate) SetNillableActor(v *string) *SettingsHistoryUpdate {
	if v != nil {
		_u.SetActor(*v)
	}
	return _u
}

// SetSite sets the "site" edge to the Site entity.
func (_u *SettingsHistoryUpdate) SetSite(v *Site) *SettingsHistoryUpdate {
	return _u.SetSiteID(v.ID)
}

// Mutation returns the SettingsHistoryMutation object of the builder.
func (_u *SettingsHistoryUpdate) Mutation() *SettingsHistoryMutation {
	return _u.mutation
}

// ClearSite clears the "site" edge to the Site entity.
func (_u *SettingsHistoryUpdate) ClearSite() *SettingsHistoryUpdate {
	_u.mutation.ClearSite()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SettingsHistoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SettingsHistoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SettingsHistoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SettingsHistoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SettingsHistoryUpdate) check() error {
	if _u.mutation.SiteCleared() && len(_u.mutation.SiteIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SettingsHistory.site"`)
	}
	return nil
}

func (_u *SettingsHistoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(settingshistory.Table, settingshistory.Columns, sqlgraph.NewFieldSpec(settingshistory.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Settings(); ok {
		_spec.SetField(settingshistory.FieldSettings, field.TypeJSON, value)
	}
	if _u.mutation.SettingsCleared() {
		_spec.ClearField(settingshistory.FieldSettings, field.TypeJSON)
	}
	if value, ok := _u.mutation.Actor(); ok {
		_spec.SetField(settingshistory.FieldActor, field.TypeString, value)
	}
	if _u.mutation.SiteCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SiteIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{settingshistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SettingsHistoryUpdateOne is the builder for updating a single SettingsHistory entity.
type SettingsHistoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SettingsHistoryMutation
}

// SetSiteID sets the "site_id" field.
func (_u *SettingsHistoryUpdateOne) SetSiteID(v string) *SettingsHistoryUpdateOne {
	_u.mutation.SetSiteID(v)
	return _u
}

// SetNillableSiteID sets the "site_id" field if the given value is not nil.
func (_u *SettingsHistoryUpdateOne) SetNillableSiteID(v *string) *SettingsHistoryUpdateOne {
	if v != nil {
		_u.SetSiteID(*v)
	}
	return _u
}

// SetSettings sets the "settings" field.
func (_u *SettingsHistoryUpdateOne) SetSettings(v map[string]interface{}) *SettingsHistoryUpdateOne {
	_u.mutation.SetSettings(v)
	return _u
}

// ClearSettings clears the value of the "settings" field.
func (_u *SettingsHistoryUpdateOne) ClearSettings() *SettingsHistoryUpdateOne {
	_u.mutation.ClearSettings()
	return _u
}

// SetActor sets the "actor" field.
func (_u *SettingsHistoryUpdateOne) SetActor(v string) *SettingsHistoryUpdateOne {
	_u.mutation.SetActor(v)
	return _u
}

// SetNillableActor sets the "actor" field if the given value is not nil.
func (_u *SettingsHistoryUpdateOne) SetNillableActor(v *string) *SettingsHistoryUpdateOne {
	if v != nil {
		_u.SetActor(*v)
	}
	return _u
}

// SetSite sets the "site" edge to the Site entity.
func (_u *SettingsHistoryUpdateOne) SetSite(v *Site) *SettingsHistoryUpdateOne {
	return _u.SetSiteID(v.ID)
}

// Mutation returns the SettingsHistoryMutation object of the builder.
func (_u *SettingsHistoryUpdateOne) Mutation() *SettingsHistoryMutation {
	return _u.mutation
}

// ClearSite clears the "site" edge to the Site entity.
func (_u *SettingsHistoryUpdateOne) ClearSite() *SettingsHistoryUpdateOne {
	_u.mutation.ClearSite()
	return _u
}

// Where appends a list predicates to the SettingsHistoryUpdate builder.
func (_u *SettingsHistoryUpdateOne) Where(ps ...predicate.SettingsHistory) *SettingsHistoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SettingsHistoryUpdateOne) Select(field string, fields ...string) *SettingsHistoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SettingsHistory entity.
func (_u *SettingsHistoryUpdateOne) Save(ctx context.Context) (*SettingsHistory, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SettingsHistoryUpdateOne) SaveX(ctx context.Context) *SettingsHistory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SettingsHistoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SettingsHistoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SettingsHistoryUpdateOne) check() error {
	if _u.mutation.SiteCleared() && len(_u.mutation.SiteIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SettingsHistory.site"`)
	}
	return nil
}

func (_u *SettingsHistoryUpdateOne) sqlSave(ctx context.Context) (_node *SettingsHistory, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(settingshistory.Table, settingshistory.Columns, sqlgraph.NewFieldSpec(settingshistory.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SettingsHistory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, settingshistory.FieldID)
		for _, f := range fields {
			if !settingshistory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != settingshistory.FieldID {
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
	if value, ok := _u.mutation.Settings(); ok {
		_spec.SetField(settingshistory.FieldSettings, field.TypeJSON, value)
	}
	if _u.mutation.SettingsCleared() {
		_spec.ClearField(settingshistory.FieldSettings, field.TypeJSON)
	}
	if value, ok := _u.mutation.Actor(); ok {
		_spec.SetField(settingshistory.FieldActor, field.TypeString, value)
	}
	if _u.mutation.SiteCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SiteIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SettingsHistory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{settingshistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
