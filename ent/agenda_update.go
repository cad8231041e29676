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
	"github.com/anzhiyu-c/arsip-app/ent/agenda"
	"github.com/anzhiyu-c/arsip-app/ent/partner"
	"github.com/anzhiyu-c/arsip-app/ent/predicate"
)

// AgendaUpdate is the builder for updating Agenda entities.
type AgendaUpdate struct {
	config
	hooks    []Hook
	mutation *AgendaMutation
}

// Where appends a list predicates to the AgendaUpdate builder.
func (au *AgendaUpdate) Where(ps ...predicate.Agenda) *AgendaUpdate {
	au.mutation.Where(ps...)
	return au
}

// SetIsActive sets the "is_active" field.
func (au *AgendaUpdate) SetIsActive(b bool) *AgendaUpdate {
	au.mutation.SetIsActive(b)
	return au
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (au *AgendaUpdate) SetNillableIsActive(b *bool) *AgendaUpdate {
	if b != nil {
		au.SetIsActive(*b)
	}
	return au
}

// SetUpdatedAt sets the "updated_at" field.
func (au *AgendaUpdate) SetUpdatedAt(t time.Time) *AgendaUpdate {
	au.mutation.SetUpdatedAt(t)
	return au
}

// SetName sets the "name" field.
func (au *AgendaUpdate) SetName(s string) *AgendaUpdate {
	au.mutation.SetName(s)
	return au
}

// SetNillableName sets the "name" field if the given value is not nil.
func (au *AgendaUpdate) SetNillableName(s *string) *AgendaUpdate {
	if s != nil {
		au.SetName(*s)
	}
	return au
}

// SetDate sets the "date" field.
func (au *AgendaUpdate) SetDate(t time.Time) *AgendaUpdate {
	au.mutation.SetDate(t)
	return au
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (au *AgendaUpdate) SetNillableDate(t *time.Time) *AgendaUpdate {
	if t != nil {
		au.SetDate(*t)
	}
	return au
}

// SetKind sets the "kind" field.
func (au *AgendaUpdate) SetKind(a agenda.Kind) *AgendaUpdate {
	au.mutation.SetKind(a)
	return au
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (au *AgendaUpdate) SetNillableKind(a *agenda.Kind) *AgendaUpdate {
	if a != nil {
		au.SetKind(*a)
	}
	return au
}

// SetStatus sets the "status" field.
func (au *AgendaUpdate) SetStatus(a agenda.Status) *AgendaUpdate {
	au.mutation.SetStatus(a)
	return au
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (au *AgendaUpdate) SetNillableStatus(a *agenda.Status) *AgendaUpdate {
	if a != nil {
		au.SetStatus(*a)
	}
	return au
}

// SetPartnerID sets the "partner_id" field.
func (au *AgendaUpdate) SetPartnerID(u uint) *AgendaUpdate {
	au.mutation.SetPartnerID(u)
	return au
}

// SetNillablePartnerID sets the "partner_id" field if the given value is not nil.
func (au *AgendaUpdate) SetNillablePartnerID(u *uint) *AgendaUpdate {
	if u != nil {
		au.SetPartnerID(*u)
	}
	return au
}

// ClearPartnerID clears the value of the "partner_id" field.
func (au *AgendaUpdate) ClearPartnerID() *AgendaUpdate {
	au.mutation.ClearPartnerID()
	return au
}

// SetResultNote sets the "result_note" field.
func (au *AgendaUpdate) SetResultNote(s string) *AgendaUpdate {
	au.mutation.SetResultNote(s)
	return au
}

// SetNillableResultNote sets the "result_note" field if the given value is not nil.
func (au *AgendaUpdate) SetNillableResultNote(s *string) *AgendaUpdate {
	if s != nil {
		au.SetResultNote(*s)
	}
	return au
}

// ClearResultNote clears the value of the "result_note" field.
func (au *AgendaUpdate) ClearResultNote() *AgendaUpdate {
	au.mutation.ClearResultNote()
	return au
}

// SetPartner sets the "partner" edge to the Partner entity.
func (au *AgendaUpdate) SetPartner(p *Partner) *AgendaUpdate {
	return au.SetPartnerID(p.ID)
}

// Mutation returns the AgendaMutation object of the builder.
func (au *AgendaUpdate) Mutation() *AgendaMutation {
	return au.mutation
}

// ClearPartner clears the "partner" edge to the Partner entity.
func (au *AgendaUpdate) ClearPartner() *AgendaUpdate {
	au.mutation.ClearPartner()
	return au
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (au *AgendaUpdate) Save(ctx context.Context) (int, error) {
	au.defaults()
	return withHooks(ctx, au.sqlSave, au.mutation, au.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (au *AgendaUpdate) SaveX(ctx context.Context) int {
	affected, err := au.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (au *AgendaUpdate) Exec(ctx context.Context) error {
	_, err := au.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (au *AgendaUpdate) ExecX(ctx context.Context) {
	if err := au.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (au *AgendaUpdate) defaults() {
	if _, ok := au.mutation.UpdatedAt(); !ok {
		v := agenda.UpdateDefaultUpdatedAt()
		au.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (au *AgendaUpdate) check() error {
	if v, ok := au.mutation.Name(); ok {
		if err := agenda.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Agenda.name": %w`, err)}
		}
	}
	if v, ok := au.mutation.Kind(); ok {
		if err := agenda.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Agenda.kind": %w`, err)}
		}
	}
	if v, ok := au.mutation.Status(); ok {
		if err := agenda.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Agenda.status": %w`, err)}
		}
	}
	return nil
}

func (au *AgendaUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := au.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(agenda.Table, agenda.Columns, sqlgraph.NewFieldSpec(agenda.FieldID, field.TypeUint))
	if ps := au.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := au.mutation.IsActive(); ok {
		_spec.SetField(agenda.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := au.mutation.UpdatedAt(); ok {
		_spec.SetField(agenda.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := au.mutation.Name(); ok {
		_spec.SetField(agenda.FieldName, field.TypeString, value)
	}
	if value, ok := au.mutation.Date(); ok {
		_spec.SetField(agenda.FieldDate, field.TypeTime, value)
	}
	if value, ok := au.mutation.Kind(); ok {
		_spec.SetField(agenda.FieldKind, field.TypeEnum, value)
	}
	if value, ok := au.mutation.Status(); ok {
		_spec.SetField(agenda.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := au.mutation.ResultNote(); ok {
		_spec.SetField(agenda.FieldResultNote, field.TypeString, value)
	}
	if au.mutation.ResultNoteCleared() {
		_spec.ClearField(agenda.FieldResultNote, field.TypeString)
	}
	if au.mutation.PartnerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agenda.PartnerTable,
			Columns: []string{agenda.PartnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(partner.FieldID, field.TypeUint),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := au.mutation.PartnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agenda.PartnerTable,
			Columns: []string{agenda.PartnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(partner.FieldID, field.TypeUint),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, au.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agenda.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	au.mutation.done = true
	return n, nil
}

// AgendaUpdateOne is the builder for updating a single Agenda entity.
type AgendaUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgendaMutation
}

// SetIsActive sets the "is_active" field.
func (auo *AgendaUpdateOne) SetIsActive(b bool) *AgendaUpdateOne {
	auo.mutation.SetIsActive(b)
	return auo
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (auo *AgendaUpdateOne) SetNillableIsActive(b *bool) *AgendaUpdateOne {
	if b != nil {
		auo.SetIsActive(*b)
	}
	return auo
}

// SetUpdatedAt sets the "updated_at" field.
func (auo *AgendaUpdateOne) SetUpdatedAt(t time.Time) *AgendaUpdateOne {
	auo.mutation.SetUpdatedAt(t)
	return auo
}

// SetName sets the "name" field.
func (auo *AgendaUpdateOne) SetName(s string) *AgendaUpdateOne {
	auo.mutation.SetName(s)
	return auo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (auo *AgendaUpdateOne) SetNillableName(s *string) *AgendaUpdateOne {
	if s != nil {
		auo.SetName(*s)
	}
	return auo
}

// SetDate sets the "date" field.
func (auo *AgendaUpdateOne) SetDate(t time.Time) *AgendaUpdateOne {
	auo.mutation.SetDate(t)
	return auo
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (auo *AgendaUpdateOne) SetNillableDate(t *time.Time) *AgendaUpdateOne {
	if t != nil {
		auo.SetDate(*t)
	}
	return auo
}

// SetKind sets the "kind" field.
func (auo *AgendaUpdateOne) SetKind(a agenda.Kind) *AgendaUpdateOne {
	auo.mutation.SetKind(a)
	return auo
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (auo *AgendaUpdateOne) SetNillableKind(a *agenda.Kind) *AgendaUpdateOne {
	if a != nil {
		auo.SetKind(*a)
	}
	return auo
}

// SetStatus sets the "status" field.
func (auo *AgendaUpdateOne) SetStatus(a agenda.Status) *AgendaUpdateOne {
	auo.mutation.SetStatus(a)
	return auo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (auo *AgendaUpdateOne) SetNillableStatus(a *agenda.Status) *AgendaUpdateOne {
	if a != nil {
		auo.SetStatus(*a)
	}
	return auo
}

// SetPartnerID sets the "partner_id" field.
func (auo *AgendaUpdateOne) SetPartnerID(u uint) *AgendaUpdateOne {
	auo.mutation.SetPartnerID(u)
	return auo
}

// SetNillablePartnerID sets the "partner_id" field if the given value is not nil.
func (auo *AgendaUpdateOne) SetNillablePartnerID(u *uint) *AgendaUpdateOne {
	if u != nil {
		auo.SetPartnerID(*u)
	}
	return auo
}

// ClearPartnerID clears the value of the "partner_id" field.
func (auo *AgendaUpdateOne) ClearPartnerID() *AgendaUpdateOne {
	auo.mutation.ClearPartnerID()
	return auo
}

// SetResultNote sets the "result_note" field.
func (auo *AgendaUpdateOne) SetResultNote(s string) *AgendaUpdateOne {
	auo.mutation.SetResultNote(s)
	return auo
}

// SetNillableResultNote sets the "result_note" field if the given value is not nil.
func (auo *AgendaUpdateOne) SetNillableResultNote(s *string) *AgendaUpdateOne {
	if s != nil {
		auo.SetResultNote(*s)
	}
	return auo
}

// ClearResultNote clears the value of the "result_note" field.
func (auo *AgendaUpdateOne) ClearResultNote() *AgendaUpdateOne {
	auo.mutation.ClearResultNote()
	return auo
}

// SetPartner sets the "partner" edge to the Partner entity.
func (auo *AgendaUpdateOne) SetPartner(p *Partner) *AgendaUpdateOne {
	return auo.SetPartnerID(p.ID)
}

// Mutation returns the AgendaMutation object of the builder.
func (auo *AgendaUpdateOne) Mutation() *AgendaMutation {
	return auo.mutation
}

// ClearPartner clears the "partner" edge to the Partner entity.
func (auo *AgendaUpdateOne) ClearPartner() *AgendaUpdateOne {
	auo.mutation.ClearPartner()
	return auo
}

// Where appends a list predicates to the AgendaUpdate builder.
func (auo *AgendaUpdateOne) Where(ps ...predicate.Agenda) *AgendaUpdateOne {
	auo.mutation.Where(ps...)
	return auo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (auo *AgendaUpdateOne) Select(field string, fields ...string) *AgendaUpdateOne {
	auo.fields = append([]string{field}, fields...)
	return auo
}

// Save executes the query and returns the updated Agenda entity.
func (auo *AgendaUpdateOne) Save(ctx context.Context) (*Agenda, error) {
	auo.defaults()
	return withHooks(ctx, auo.sqlSave, auo.mutation, auo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (auo *AgendaUpdateOne) SaveX(ctx context.Context) *Agenda {
	node, err := auo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (auo *AgendaUpdateOne) Exec(ctx context.Context) error {
	_, err := auo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (auo *AgendaUpdateOne) ExecX(ctx context.Context) {
	if err := auo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (auo *AgendaUpdateOne) defaults() {
	if _, ok := auo.mutation.UpdatedAt(); !ok {
		v := agenda.UpdateDefaultUpdatedAt()
		auo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (auo *AgendaUpdateOne) check() error {
	if v, ok := auo.mutation.Name(); ok {
		if err := agenda.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Agenda.name": %w`, err)}
		}
	}
	if v, ok := auo.mutation.Kind(); ok {
		if err := agenda.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Agenda.kind": %w`, err)}
		}
	}
	if v, ok := auo.mutation.Status(); ok {
		if err := agenda.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Agenda.status": %w`, err)}
		}
	}
	return nil
}

func (auo *AgendaUpdateOne) sqlSave(ctx context.Context) (_node *Agenda, err error) {
	if err := auo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agenda.Table, agenda.Columns, sqlgraph.NewFieldSpec(agenda.FieldID, field.TypeUint))
	id, ok := auo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Agenda.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := auo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agenda.FieldID)
		for _, f := range fields {
			if !agenda.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agenda.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := auo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := auo.mutation.IsActive(); ok {
		_spec.SetField(agenda.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := auo.mutation.UpdatedAt(); ok {
		_spec.SetField(agenda.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := auo.mutation.Name(); ok {
		_spec.SetField(agenda.FieldName, field.TypeString, value)
	}
	if value, ok := auo.mutation.Date(); ok {
		_spec.SetField(agenda.FieldDate, field.TypeTime, value)
	}
	if value, ok := auo.mutation.Kind(); ok {
		_spec.SetField(agenda.FieldKind, field.TypeEnum, value)
	}
	if value, ok := auo.mutation.Status(); ok {
		_spec.SetField(agenda.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := auo.mutation.ResultNote(); ok {
		_spec.SetField(agenda.FieldResultNote, field.TypeString, value)
	}
	if auo.mutation.ResultNoteCleared() {
		_spec.ClearField(agenda.FieldResultNote, field.TypeString)
	}
	if auo.mutation.PartnerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agenda.PartnerTable,
			Columns: []string{agenda.PartnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(partner.FieldID, field.TypeUint),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := auo.mutation.PartnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agenda.PartnerTable,
			Columns: []string{agenda.PartnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(partner.FieldID, field.TypeUint),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Agenda{config: auo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, auo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agenda.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	auo.mutation.done = true
	return _node, nil
}
