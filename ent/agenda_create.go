// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/arsip-app/ent/agenda"
	"github.com/anzhiyu-c/arsip-app/ent/partner"
)

// AgendaCreate is the builder for creating a Agenda entity.
type AgendaCreate struct {
	config
	mutation *AgendaMutation
	hooks    []Hook
}

// SetIsActive sets the "is_active" field.
func (ac *AgendaCreate) SetIsActive(b bool) *AgendaCreate {
	ac.mutation.SetIsActive(b)
	return ac
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (ac *AgendaCreate) SetNillableIsActive(b *bool) *AgendaCreate {
	if b != nil {
		ac.SetIsActive(*b)
	}
	return ac
}

// SetCreatedAt sets the "created_at" field.
func (ac *AgendaCreate) SetCreatedAt(t time.Time) *AgendaCreate {
	ac.mutation.SetCreatedAt(t)
	return ac
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (ac *AgendaCreate) SetNillableCreatedAt(t *time.Time) *AgendaCreate {
	if t != nil {
		ac.SetCreatedAt(*t)
	}
	return ac
}

// SetUpdatedAt sets the "updated_at" field.
func (ac *AgendaCreate) SetUpdatedAt(t time.Time) *AgendaCreate {
	ac.mutation.SetUpdatedAt(t)
	return ac
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (ac *AgendaCreate) SetNillableUpdatedAt(t *time.Time) *AgendaCreate {
	if t != nil {
		ac.SetUpdatedAt(*t)
	}
	return ac
}

// SetName sets the "name" field.
func (ac *AgendaCreate) SetName(s string) *AgendaCreate {
	ac.mutation.SetName(s)
	return ac
}

// SetDate sets the "date" field.
func (ac *AgendaCreate) SetDate(t time.Time) *AgendaCreate {
	ac.mutation.SetDate(t)
	return ac
}

// SetKind sets the "kind" field.
func (ac *AgendaCreate) SetKind(a agenda.Kind) *AgendaCreate {
	ac.mutation.SetKind(a)
	return ac
}

// SetStatus sets the "status" field.
func (ac *AgendaCreate) SetStatus(a agenda.Status) *AgendaCreate {
	ac.mutation.SetStatus(a)
	return ac
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (ac *AgendaCreate) SetNillableStatus(a *agenda.Status) *AgendaCreate {
	if a != nil {
		ac.SetStatus(*a)
	}
	return ac
}

// SetPartnerID sets the "partner_id" field.
func (ac *AgendaCreate) SetPartnerID(u uint) *AgendaCreate {
	ac.mutation.SetPartnerID(u)
	return ac
}

// SetNillablePartnerID sets the "partner_id" field if the given value is not nil.
func (ac *AgendaCreate) SetNillablePartnerID(u *uint) *AgendaCreate {
	if u != nil {
		ac.SetPartnerID(*u)
	}
	return ac
}

// SetResultNote sets the "result_note" field.
func (ac *AgendaCreate) SetResultNote(s string) *AgendaCreate {
	ac.mutation.SetResultNote(s)
	return ac
}

// SetNillableResultNote sets the "result_note" field if the given value is not nil.
func (ac *AgendaCreate) SetNillableResultNote(s *string) *AgendaCreate {
	if s != nil {
		ac.SetResultNote(*s)
	}
	return ac
}

// SetID sets the "id" field.
func (ac *AgendaCreate) SetID(u uint) *AgendaCreate {
	ac.mutation.SetID(u)
	return ac
}

// SetPartner sets the "partner" edge to the Partner entity.
func (ac *AgendaCreate) SetPartner(p *Partner) *AgendaCreate {
	return ac.SetPartnerID(p.ID)
}

// Mutation returns the AgendaMutation object of the builder.
func (ac *AgendaCreate) Mutation() *AgendaMutation {
	return ac.mutation
}

// Save creates the Agenda in the database.
func (ac *AgendaCreate) Save(ctx context.Context) (*Agenda, error) {
	ac.defaults()
	return withHooks(ctx, ac.sqlSave, ac.mutation, ac.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ac *AgendaCreate) SaveX(ctx context.Context) *Agenda {
	v, err := ac.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ac *AgendaCreate) Exec(ctx context.Context) error {
	_, err := ac.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ac *AgendaCreate) ExecX(ctx context.Context) {
	if err := ac.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ac *AgendaCreate) defaults() {
	if _, ok := ac.mutation.IsActive(); !ok {
		v := agenda.DefaultIsActive
		ac.mutation.SetIsActive(v)
	}
	if _, ok := ac.mutation.CreatedAt(); !ok {
		v := agenda.DefaultCreatedAt()
		ac.mutation.SetCreatedAt(v)
	}
	if _, ok := ac.mutation.UpdatedAt(); !ok {
		v := agenda.DefaultUpdatedAt()
		ac.mutation.SetUpdatedAt(v)
	}
	if _, ok := ac.mutation.Status(); !ok {
		v := agenda.DefaultStatus
		ac.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ac *AgendaCreate) check() error {
	if _, ok := ac.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "Agenda.is_active"`)}
	}
	if _, ok := ac.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Agenda.created_at"`)}
	}
	if _, ok := ac.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Agenda.updated_at"`)}
	}
	if _, ok := ac.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Agenda.name"`)}
	}
	if v, ok := ac.mutation.Name(); ok {
		if err := agenda.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Agenda.name": %w`, err)}
		}
	}
	if _, ok := ac.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`ent: missing required field "Agenda.date"`)}
	}
	if _, ok := ac.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "Agenda.kind"`)}
	}
	if v, ok := ac.mutation.Kind(); ok {
		if err := agenda.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Agenda.kind": %w`, err)}
		}
	}
	if _, ok := ac.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Agenda.status"`)}
	}
	if v, ok := ac.mutation.Status(); ok {
		if err := agenda.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Agenda.status": %w`, err)}
		}
	}
	return nil
}

func (ac *AgendaCreate) sqlSave(ctx context.Context) (*Agenda, error) {
	if err := ac.check(); err != nil {
		return nil, err
	}
	_node, _spec := ac.createSpec()
	if err := sqlgraph.CreateNode(ctx, ac.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = uint(id)
	}
	ac.mutation.id = &_node.ID
	ac.mutation.done = true
	return _node, nil
}

func (ac *AgendaCreate) createSpec() (*Agenda, *sqlgraph.CreateSpec) {
	var (
		_node = &Agenda{config: ac.config}
		_spec = sqlgraph.NewCreateSpec(agenda.Table, sqlgraph.NewFieldSpec(agenda.FieldID, field.TypeUint))
	)
	if id, ok := ac.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := ac.mutation.IsActive(); ok {
		_spec.SetField(agenda.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := ac.mutation.CreatedAt(); ok {
		_spec.SetField(agenda.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := ac.mutation.UpdatedAt(); ok {
		_spec.SetField(agenda.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := ac.mutation.Name(); ok {
		_spec.SetField(agenda.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := ac.mutation.Date(); ok {
		_spec.SetField(agenda.FieldDate, field.TypeTime, value)
		_node.Date = value
	}
	if value, ok := ac.mutation.Kind(); ok {
		_spec.SetField(agenda.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := ac.mutation.Status(); ok {
		_spec.SetField(agenda.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := ac.mutation.ResultNote(); ok {
		_spec.SetField(agenda.FieldResultNote, field.TypeString, value)
		_node.ResultNote = value
	}
	if nodes := ac.mutation.PartnerIDs(); len(nodes) > 0 {
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
		_node.PartnerID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AgendaCreateBulk is the builder for creating many Agenda entities in bulk.
type AgendaCreateBulk struct {
	config
	err      error
	builders []*AgendaCreate
}

// Save creates the Agenda entities in the database.
func (acb *AgendaCreateBulk) Save(ctx context.Context) ([]*Agenda, error) {
	if acb.err != nil {
		return nil, acb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(acb.builders))
	nodes := make([]*Agenda, len(acb.builders))
	mutators := make([]Mutator, len(acb.builders))
	for i := range acb.builders {
		func(i int, root context.Context) {
			builder := acb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgendaMutation)
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
					_, err = mutators[i+1].Mutate(root, acb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, acb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = uint(id)
				}
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
		if _, err := mutators[0].Mutate(ctx, acb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (acb *AgendaCreateBulk) SaveX(ctx context.Context) []*Agenda {
	v, err := acb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (acb *AgendaCreateBulk) Exec(ctx context.Context) error {
	_, err := acb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (acb *AgendaCreateBulk) ExecX(ctx context.Context) {
	if err := acb.Exec(ctx); err != nil {
		panic(err)
	}
}
