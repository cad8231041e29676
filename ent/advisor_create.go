// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/arsip-app/ent/advisor"
)

// AdvisorCreate is the builder for creating a Advisor entity.
type AdvisorCreate struct {
	config
	mutation *AdvisorMutation
	hooks    []Hook
}

// SetIsActive sets the "is_active" field.
func (ac *AdvisorCreate) SetIsActive(b bool) *AdvisorCreate {
	ac.mutation.SetIsActive(b)
	return ac
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (ac *AdvisorCreate) SetNillableIsActive(b *bool) *AdvisorCreate {
	if b != nil {
		ac.SetIsActive(*b)
	}
	return ac
}

// SetCreatedAt sets the "created_at" field.
func (ac *AdvisorCreate) SetCreatedAt(t time.Time) *AdvisorCreate {
	ac.mutation.SetCreatedAt(t)
	return ac
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (ac *AdvisorCreate) SetNillableCreatedAt(t *time.Time) *AdvisorCreate {
	if t != nil {
		ac.SetCreatedAt(*t)
	}
	return ac
}

// SetUpdatedAt sets the "updated_at" field.
func (ac *AdvisorCreate) SetUpdatedAt(t time.Time) *AdvisorCreate {
	ac.mutation.SetUpdatedAt(t)
	return ac
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (ac *AdvisorCreate) SetNillableUpdatedAt(t *time.Time) *AdvisorCreate {
	if t != nil {
		ac.SetUpdatedAt(*t)
	}
	return ac
}

// SetName sets the "name" field.
func (ac *AdvisorCreate) SetName(s string) *AdvisorCreate {
	ac.mutation.SetName(s)
	return ac
}

// SetRole sets the "role" field.
func (ac *AdvisorCreate) SetRole(s string) *AdvisorCreate {
	ac.mutation.SetRole(s)
	return ac
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (ac *AdvisorCreate) SetNillableRole(s *string) *AdvisorCreate {
	if s != nil {
		ac.SetRole(*s)
	}
	return ac
}

// SetContact sets the "contact" field.
func (ac *AdvisorCreate) SetContact(s string) *AdvisorCreate {
	ac.mutation.SetContact(s)
	return ac
}

// SetNillableContact sets the "contact" field if the given value is not nil.
func (ac *AdvisorCreate) SetNillableContact(s *string) *AdvisorCreate {
	if s != nil {
		ac.SetContact(*s)
	}
	return ac
}

// SetNote sets the "note" field.
func (ac *AdvisorCreate) SetNote(s string) *AdvisorCreate {
	ac.mutation.SetNote(s)
	return ac
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (ac *AdvisorCreate) SetNillableNote(s *string) *AdvisorCreate {
	if s != nil {
		ac.SetNote(*s)
	}
	return ac
}

// SetID sets the "id" field.
func (ac *AdvisorCreate) SetID(u uint) *AdvisorCreate {
	ac.mutation.SetID(u)
	return ac
}

// Mutation returns the AdvisorMutation object of the builder.
func (ac *AdvisorCreate) Mutation() *AdvisorMutation {
	return ac.mutation
}

// Save creates the Advisor in the database.
func (ac *AdvisorCreate) Save(ctx context.Context) (*Advisor, error) {
	ac.defaults()
	return withHooks(ctx, ac.sqlSave, ac.mutation, ac.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ac *AdvisorCreate) SaveX(ctx context.Context) *Advisor {
	v, err := ac.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ac *AdvisorCreate) Exec(ctx context.Context) error {
	_, err := ac.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ac *AdvisorCreate) ExecX(ctx context.Context) {
	if err := ac.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ac *AdvisorCreate) defaults() {
	if _, ok := ac.mutation.IsActive(); !ok {
		v := advisor.DefaultIsActive
		ac.mutation.SetIsActive(v)
	}
	if _, ok := ac.mutation.CreatedAt(); !ok {
		v := advisor.DefaultCreatedAt()
		ac.mutation.SetCreatedAt(v)
	}
	if _, ok := ac.mutation.UpdatedAt(); !ok {
		v := advisor.DefaultUpdatedAt()
		ac.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ac *AdvisorCreate) check() error {
	if _, ok := ac.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "Advisor.is_active"`)}
	}
	if _, ok := ac.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Advisor.created_at"`)}
	}
	if _, ok := ac.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Advisor.updated_at"`)}
	}
	if _, ok := ac.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Advisor.name"`)}
	}
	if v, ok := ac.mutation.Name(); ok {
		if err := advisor.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Advisor.name": %w`, err)}
		}
	}
	return nil
}

func (ac *AdvisorCreate) sqlSave(ctx context.Context) (*Advisor, error) {
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

func (ac *AdvisorCreate) createSpec() (*Advisor, *sqlgraph.CreateSpec) {
	var (
		_node = &Advisor{config: ac.config}
		_spec = sqlgraph.NewCreateSpec(advisor.Table, sqlgraph.NewFieldSpec(advisor.FieldID, field.TypeUint))
	)
	if id, ok := ac.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := ac.mutation.IsActive(); ok {
		_spec.SetField(advisor.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := ac.mutation.CreatedAt(); ok {
		_spec.SetField(advisor.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := ac.mutation.UpdatedAt(); ok {
		_spec.SetField(advisor.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := ac.mutation.Name(); ok {
		_spec.SetField(advisor.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := ac.mutation.Role(); ok {
		_spec.SetField(advisor.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := ac.mutation.Contact(); ok {
		_spec.SetField(advisor.FieldContact, field.TypeString, value)
		_node.Contact = value
	}
	if value, ok := ac.mutation.Note(); ok {
		_spec.SetField(advisor.FieldNote, field.TypeString, value)
		_node.Note = value
	}
	return _node, _spec
}

// AdvisorCreateBulk is the builder for creating many Advisor entities in bulk.
type AdvisorCreateBulk struct {
	config
	err      error
	builders []*AdvisorCreate
}

// Save creates the Advisor entities in the database.
func (acb *AdvisorCreateBulk) Save(ctx context.Context) ([]*Advisor, error) {
	if acb.err != nil {
		return nil, acb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(acb.builders))
	nodes := make([]*Advisor, len(acb.builders))
	mutators := make([]Mutator, len(acb.builders))
	for i := range acb.builders {
		func(i int, root context.Context) {
			builder := acb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AdvisorMutation)
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
func (acb *AdvisorCreateBulk) SaveX(ctx context.Context) []*Advisor {
	v, err := acb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (acb *AdvisorCreateBulk) Exec(ctx context.Context) error {
	_, err := acb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (acb *AdvisorCreateBulk) ExecX(ctx context.Context) {
	if err := acb.Exec(ctx); err != nil {
		panic(err)
	}
}
